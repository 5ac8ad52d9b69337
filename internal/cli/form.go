package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yildizm/bfhlctl/internal/history"
	"github.com/yildizm/bfhlctl/internal/ui"
)

func newFormCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Launch the interactive submission form",
		Long: `Launch an interactive terminal form for composing and submitting payloads.

Type or paste the JSON payload, press Ctrl+S to submit, and toggle result
blocks with the number keys. The form keeps no state across runs beyond
the history log.

Keys:
  ctrl+s  submit
  tab     switch focus between the payload and the option row
  1/2/3   toggle alphabets / numbers / highest (when the payload is not focused)
  esc     quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetGlobalConfig()
			if cfg.API.BaseURL == "" {
				return fmt.Errorf("api base_url is not configured (set it in the config file or BFHLCTL_API_BASE_URL)")
			}

			store := history.NewStore(cfg.History)
			return ui.RunForm(cfg, store)
		},
	}
}
