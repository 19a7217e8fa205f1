package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stepify-cli/internal/session"
)

var (
	loginTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	loginMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	loginErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	loginOKStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

type loginReport struct {
	Email         string `json:"email"`
	Name          string `json:"name,omitempty"`
	Authenticated bool   `json:"authenticated"`
}

func runLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	token := fs.String("token", "", "bearer token (prompted interactively when omitted)")
	configPath := fs.String("config", defaultConfigPath(), "client config path")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp(strings.TrimSpace(*configPath))
	if err != nil {
		return err
	}
	ctx := context.Background()

	// login is a login-only view: an already authenticated session is sent
	// back home instead of re-prompting
	if err := a.store.Initialize(ctx); err != nil {
		return err
	}
	snap := a.store.Snapshot()
	if session.Evaluate(snap, session.RouteLoginOnly) == session.DecisionRedirectHome {
		if *jsonOut {
			return printJSON(loginReport{Email: snap.User.Email, Name: snap.User.Name, Authenticated: true})
		}
		fmt.Printf("already logged in as %s (run `stepify-cli logout` to switch accounts)\n", snap.User.Email)
		return nil
	}

	value := strings.TrimSpace(*token)
	if value == "" {
		if !stdinIsTTY() {
			return errors.New("--token is required in non-interactive mode")
		}
		value, err = promptToken()
		if err != nil {
			return err
		}
	}

	if err := a.store.LoginWithToken(ctx, value); err != nil {
		if msg := a.store.Snapshot().Err; msg != "" && !*jsonOut {
			fmt.Fprintln(os.Stderr, loginErrStyle.Render("login failed: ")+msg)
		}
		return fmt.Errorf("login failed: %w", err)
	}
	snap = a.store.Snapshot()
	if *jsonOut {
		return printJSON(loginReport{Email: snap.User.Email, Name: snap.User.Name, Authenticated: true})
	}
	fmt.Println(loginOKStyle.Render("logged in") + " as " + snap.User.Email)
	return nil
}

type loginPromptModel struct {
	input     textinput.Model
	submitted bool
	canceled  bool
}

func newLoginPromptModel() loginPromptModel {
	input := textinput.New()
	input.Placeholder = "paste your access token"
	input.EchoMode = textinput.EchoPassword
	input.Focus()
	input.CharLimit = 4096
	return loginPromptModel{input: input}
}

func (m loginPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			if strings.TrimSpace(m.input.Value()) != "" {
				m.submitted = true
				return m, tea.Quit
			}
			return m, nil
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m loginPromptModel) View() string {
	if m.submitted || m.canceled {
		return ""
	}
	var b strings.Builder
	b.WriteString(loginTitleStyle.Render("stepify login") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(loginMutedStyle.Render("enter to submit, esc to cancel") + "\n")
	return b.String()
}

func promptToken() (string, error) {
	final, err := tea.NewProgram(newLoginPromptModel()).Run()
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "tty") {
			return "", errors.New("login prompt requires an interactive terminal (use --token)")
		}
		return "", err
	}
	m, ok := final.(loginPromptModel)
	if !ok || m.canceled || !m.submitted {
		return "", errors.New("login canceled")
	}
	return strings.TrimSpace(m.input.Value()), nil
}
