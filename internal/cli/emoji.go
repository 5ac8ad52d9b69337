package cli

import (
	"github.com/yildizm/bfhlctl/internal/emoji"
)

// GetEmoji is a wrapper for the shared emoji package
func GetEmoji(key string) string {
	return emoji.GetEmoji(key)
}

// GetStatusEmoji returns the symbol for a submission outcome
func GetStatusEmoji(success bool) string {
	if success {
		return GetEmoji("success")
	}
	return GetEmoji("error")
}
