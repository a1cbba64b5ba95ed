package ui

import (
	"os"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type percentMsg float64

type doneMsg struct{}

// progressModel renders a single bar while the engine chews through the
// program.
type progressModel struct {
	bar     progress.Model
	percent float64
}

func newProgressModel() progressModel {
	return progressModel{bar: progress.New(progress.WithDefaultGradient())}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case percentMsg:
		m.percent = float64(msg)
		return m, nil
	case doneMsg:
		m.percent = 1
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 4
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	return "  " + m.bar.ViewAs(m.percent) + "\n"
}

// RunWithProgress executes run while showing a progress bar on stderr.
// run receives a per-line callback to report completion; its error is
// returned after the bar shuts down.
func RunWithProgress(run func(onProgress func(done, total int)) error) error {
	p := tea.NewProgram(newProgressModel(), tea.WithOutput(os.Stderr))

	var runErr error
	go func() {
		last := -1
		runErr = run(func(done, total int) {
			if total == 0 {
				return
			}
			pct := done * 100 / total
			if pct != last {
				last = pct
				p.Send(percentMsg(float64(done) / float64(total)))
			}
		})
		p.Send(doneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return err
	}
	return runErr
}

// ShowProgress reports whether a progress bar should be drawn: only when
// stderr is a terminal.
func ShowProgress() bool {
	fi, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
