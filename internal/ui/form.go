package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/bfhlctl/internal/bfhl"
	"github.com/yildizm/bfhlctl/internal/config"
	"github.com/yildizm/bfhlctl/internal/emoji"
	"github.com/yildizm/bfhlctl/internal/history"
)

// toastKind distinguishes the two notification flavors
type toastKind int

const (
	toastSuccess toastKind = iota
	toastFailure
)

// optionKeys maps the number row to the toggleable result categories
var optionKeys = map[string]bfhl.Option{
	"1": bfhl.OptionAlphabets,
	"2": bfhl.OptionNumbers,
	"3": bfhl.OptionHighest,
}

// FormModel is the interactive submission form.
// It owns the input text, the selected display options, the last
// successful response, the current error message and the loading flag.
type FormModel struct {
	width  int
	height int

	textarea textarea.Model
	spinner  spinner.Model
	styles   *Styles

	client *bfhl.Client
	store  *history.Store

	options  bfhl.OptionSet
	response *bfhl.Response
	errMsg   string
	loading  bool
	quitting bool

	toast         string
	toastStyle    toastKind
	toastSeq      int
	toastDuration time.Duration
}

// NewFormModel creates the form model
func NewFormModel(client *bfhl.Client, store *history.Store, toastDuration time.Duration) *FormModel {
	styles := GetStyles()

	ta := textarea.New()
	ta.Placeholder = `{"data": ["M", "1", "334", "4", "B"]}`
	ta.SetWidth(60)
	ta.SetHeight(6)
	ta.CharLimit = 0
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Theme.Primary)

	return &FormModel{
		textarea:      ta,
		spinner:       sp,
		styles:        styles,
		client:        client,
		store:         store,
		options:       bfhl.NewOptionSet(),
		toastDuration: toastDuration,
	}
}

// Init initializes the form model
func (m *FormModel) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, textarea.Blink)
}

// Update handles messages
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case submitResultMsg:
		return m.handleSubmitResult(msg)
	case submitErrorMsg:
		return m.handleSubmitError(msg)
	case toastExpiredMsg:
		return m.handleToastExpired(msg)
	}

	return m, nil
}

// handleWindowResize handles window resize events
func (m *FormModel) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.textarea.SetWidth(min(msg.Width-8, 76))
	return m, nil
}

// handleKeyPress handles keyboard input.
// Option toggles stay responsive while a request is in flight; only the
// submit action itself is disabled.
func (m *FormModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m.handleQuit()
	case "ctrl+s":
		return m.handleSubmit()
	case "tab":
		return m.handleFocusToggle()
	}

	if !m.textarea.Focused() {
		if opt, ok := optionKeys[msg.String()]; ok {
			m.options.Toggle(opt)
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// handleQuit handles quit commands
func (m *FormModel) handleQuit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// handleFocusToggle cycles focus between the textarea and the option row
func (m *FormModel) handleFocusToggle() (tea.Model, tea.Cmd) {
	if m.textarea.Focused() {
		m.textarea.Blur()
		return m, nil
	}
	return m, m.textarea.Focus()
}

// handleSubmit starts a submission unless one is already in flight.
// The error message is cleared at the start of every attempt; the last
// successful response is never cleared here.
func (m *FormModel) handleSubmit() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	m.errMsg = ""
	m.loading = true

	return m, tea.Batch(
		m.spinner.Tick,
		createSubmitCommand(m.client, m.textarea.Value(), m.options.Selected(), m.store),
	)
}

// handleSpinnerTick advances the spinner while loading
func (m *FormModel) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if !m.loading {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleSubmitResult handles a successful submission
func (m *FormModel) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.response = msg.record.Response
	return m, m.showToast("Data processed successfully", toastSuccess)
}

// handleSubmitError handles a failed submission.
// The previous response is retained; stale results render alongside the
// fresh error.
func (m *FormModel) handleSubmitError(msg submitErrorMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.errMsg = bfhl.UserMessage(msg.err)
	return m, m.showToast(m.errMsg, toastFailure)
}

// handleToastExpired clears the toast unless a newer one replaced it
func (m *FormModel) handleToastExpired(msg toastExpiredMsg) (tea.Model, tea.Cmd) {
	if msg.seq == m.toastSeq {
		m.toast = ""
	}
	return m, nil
}

// showToast displays a transient banner and schedules its expiry
func (m *FormModel) showToast(text string, kind toastKind) tea.Cmd {
	m.toast = text
	m.toastStyle = kind
	m.toastSeq++
	return expireToastCommand(m.toastDuration, m.toastSeq)
}

// View renders the form
func (m *FormModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.styles.Title.Render("bfhlctl"),
		"",
		m.styles.Label.Render("Payload"),
		m.textarea.View(),
		"",
		m.renderOptions(),
		m.renderStatus(),
		m.renderResults(),
		m.renderFooter(),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	box := m.styles.Box.Width(min(m.width-2, 80)).Render(content)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// renderOptions renders the toggle row in fixed display order
func (m *FormModel) renderOptions() string {
	labels := map[bfhl.Option]string{
		bfhl.OptionAlphabets: "1 Alphabets",
		bfhl.OptionNumbers:   "2 Numbers",
		bfhl.OptionHighest:   "3 Highest Lowercase",
	}

	items := make([]string, 0, len(bfhl.DisplayOrder))
	for _, opt := range bfhl.DisplayOrder {
		marker := "[ ] "
		style := m.styles.Muted
		if m.options.Has(opt) {
			marker = "[x] "
			style = m.styles.Selected
		}
		items = append(items, style.Render(marker+labels[opt]))
	}

	return m.styles.Label.Render("Show") + "  " + strings.Join(items, "  ")
}

// renderStatus renders the loading line, the toast banner and the error
func (m *FormModel) renderStatus() string {
	var lines []string

	if m.loading {
		lines = append(lines, m.spinner.View()+" Submitting...")
	}

	if m.toast != "" {
		style := m.styles.Toast.Foreground(m.styles.Theme.Success)
		symbol := emoji.GetEmoji("success")
		if m.toastStyle == toastFailure {
			style = m.styles.Toast.Foreground(m.styles.Theme.Error)
			symbol = emoji.GetEmoji("error")
		}
		lines = append(lines, style.Render(symbol+" "+m.toast))
	}

	if m.errMsg != "" && m.errMsg != m.toast {
		lines = append(lines, m.styles.Error.Render(emoji.GetEmoji("error")+" "+m.errMsg))
	}

	if len(lines) == 0 {
		return ""
	}
	return "\n" + strings.Join(lines, "\n")
}

// renderResults renders the selected blocks of the last successful response
func (m *FormModel) renderResults() string {
	blocks := bfhl.ResultBlocks(m.response, m.options)
	if len(blocks) == 0 {
		return ""
	}

	lines := make([]string, 0, len(blocks)+1)
	lines = append(lines, "\n"+m.styles.Label.Render("Results"))
	for _, block := range blocks {
		lines = append(lines, fmt.Sprintf("  %s: %s", m.styles.Muted.Render(block.Label), block.Value))
	}

	return strings.Join(lines, "\n")
}

// renderFooter renders the key help line
func (m *FormModel) renderFooter() string {
	help := "ctrl+s submit • tab focus • 1/2/3 toggle • esc quit"
	if m.textarea.Focused() {
		help = "ctrl+s submit • tab to options • esc quit"
	}
	return "\n" + m.styles.Muted.Render(help)
}

// RunForm launches the interactive form.
// The form submits with no timeout, matching the page it replaces: a
// hung request leaves the spinner up until the user quits.
func RunForm(cfg *config.Config, store *history.Store) error {
	SetThemeByName(cfg.UI.Theme)

	client, err := bfhl.NewClient(&bfhl.ClientConfig{BaseURL: cfg.API.BaseURL})
	if err != nil {
		return err
	}

	model := NewFormModel(client, store, cfg.UI.ToastDuration)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
