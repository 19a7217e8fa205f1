package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stepify-cli/internal/lifecycle"
	"stepify-cli/internal/model"
)

var (
	watchTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	watchMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type watchUpdateMsg model.Job

type watchDoneMsg struct {
	result *model.ProcessedVideo
	err    error
}

type watchModel struct {
	jobID   string
	spin    spinner.Model
	bar     progress.Model
	job     *model.Job
	updates <-chan model.Job
	done    <-chan watchDoneMsg
	result  *model.ProcessedVideo
	err     error
	cancel  context.CancelFunc
	poller  *lifecycle.Poller
}

func newWatchModel(jobID string, updates <-chan model.Job, done <-chan watchDoneMsg, cancel context.CancelFunc, poller *lifecycle.Poller) watchModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	return watchModel{
		jobID:   jobID,
		spin:    spin,
		bar:     progress.New(progress.WithDefaultGradient()),
		updates: updates,
		done:    done,
		cancel:  cancel,
		poller:  poller,
	}
}

func waitUpdate(ch <-chan model.Job) tea.Cmd {
	return func() tea.Msg {
		return watchUpdateMsg(<-ch)
	}
}

func waitDone(ch <-chan watchDoneMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitUpdate(m.updates), waitDone(m.done))
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			// view teardown must stop the loop on every exit path
			m.poller.Stop()
			m.cancel()
			m.err = lifecycle.ErrStopped
			return m, tea.Quit
		}
		return m, nil
	case watchUpdateMsg:
		job := model.Job(msg)
		m.job = &job
		return m, waitUpdate(m.updates)
	case watchDoneMsg:
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder
	b.WriteString(watchTitleStyle.Render("processing video") + "\n\n")

	status := model.StatusPending
	percent := 0.0
	if m.job != nil {
		status = m.job.Status
		percent = m.job.Progress
	}
	b.WriteString(m.spin.View() + string(status) + "\n")
	b.WriteString(m.bar.ViewAs(percent) + "\n\n")
	b.WriteString(watchMutedStyle.Render("job "+m.jobID+" | q to detach (the job keeps running server-side)") + "\n")
	return b.String()
}

// runWatchView hosts the poll loop inside a bubbletea program: the poller
// runs in its own goroutine and feeds the view through channels, and the
// view owns the teardown (Stop + context cancel) on every exit.
func runWatchView(ctx context.Context, poller *lifecycle.Poller, jobID, videoID string) (*model.ProcessedVideo, error) {
	updates := make(chan model.Job, 8)
	done := make(chan watchDoneMsg, 1)
	pollCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	poller.OnUpdate = func(job model.Job) {
		select {
		case updates <- job:
		default:
		}
	}
	go func() {
		result, err := poller.Run(pollCtx, jobID, videoID)
		done <- watchDoneMsg{result: result, err: err}
	}()

	final, err := tea.NewProgram(newWatchModel(jobID, updates, done, cancel, poller)).Run()
	if err != nil {
		poller.Stop()
		return nil, err
	}
	m, ok := final.(watchModel)
	if !ok {
		return nil, nil
	}
	return m.result, m.err
}
