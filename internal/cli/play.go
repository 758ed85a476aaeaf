package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// playCommand creates the play command, an animated step-through of the solve.
func (c *CLI) playCommand() *cobra.Command {
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "play [disks]",
		Short: "Animate the solve in the terminal",
		Long: `Play records the solution and steps through it on a timer.

Keys: space pauses and resumes, n applies one move, q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.diskCount(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("delay") {
				delay = c.Config.Play.Delay.Duration
			}
			moves, _, err := hanoi.Record(cmd.Context(), n)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newPlayModel(n, moves, delay, c.drawBoard),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(playModel); ok && m.err != nil {
				return m.err
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", 300*time.Millisecond, "time between moves (default from config)")
	return cmd
}

// =============================================================================
// playModel - Animated solve
// =============================================================================

// tickMsg advances the animation. Ticks from an earlier run of the timer
// carry a stale id and are dropped.
type tickMsg struct{ id int }

// playModel replays a recorded move list on its own board.
type playModel struct {
	disks  int
	moves  []hanoi.Move
	board  *hanoi.Board
	step   int // moves applied so far
	delay  time.Duration
	paused bool
	tickID int
	draw   func(*hanoi.Board) string
	err    error
}

func newPlayModel(n int, moves []hanoi.Move, delay time.Duration, draw func(*hanoi.Board) string) playModel {
	return playModel{
		disks: n,
		moves: moves,
		board: hanoi.New(n),
		delay: delay,
		draw:  draw,
	}
}

func (m playModel) Init() tea.Cmd {
	return m.tick()
}

func (m playModel) tick() tea.Cmd {
	id := m.tickID
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return tickMsg{id: id} })
}

func (m playModel) finished() bool {
	return m.step >= len(m.moves)
}

// advance applies the next recorded move.
func (m playModel) advance() (playModel, tea.Cmd) {
	if m.finished() {
		return m, nil
	}
	mv := m.moves[m.step]
	if err := m.board.Move(mv.From, mv.To); err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.step++
	return m, nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
			if m.paused || m.finished() {
				return m, nil
			}
			m.tickID++
			return m, m.tick()
		case "n", "right":
			return m.advance()
		}
	case tickMsg:
		if msg.id != m.tickID || m.paused || m.finished() {
			return m, nil
		}
		var cmd tea.Cmd
		m, cmd = m.advance()
		if cmd != nil || m.finished() {
			return m, cmd
		}
		return m, m.tick()
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Tower of Hanoi · %d disks", m.disks)))
	b.WriteString("\n\n")
	b.WriteString(m.draw(m.board))
	b.WriteString("\n")

	switch {
	case m.step == 0:
		b.WriteString(StyleDim.Render("initial board"))
	default:
		b.WriteString(StyleValue.Render(m.moves[m.step-1].String()))
	}
	b.WriteString("\n")

	status := fmt.Sprintf("step %d/%d", m.step, len(m.moves))
	switch {
	case m.finished():
		status += " · solved"
	case m.paused:
		status += " · paused"
	}
	b.WriteString(StyleNumber.Render(status))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("space pause · n step · q quit"))
	b.WriteString("\n")

	return b.String()
}
