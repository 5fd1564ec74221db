package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
)

var (
	watchRandom        int
	watchStepsPerFrame int
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	solutionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var watchCmd = &cobra.Command{
	Use:   "watch [scramble moves...]",
	Short: "Watch a search run step by step",
	Long: `Run the solver incrementally inside a terminal UI, resuming the search a
few expansions per frame so progress (frontier size, states explored) is
visible while it works.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().IntVar(&watchRandom, "random", 8, "Random scramble length when no moves are given")
	watchCmd.Flags().IntVar(&watchStepsPerFrame, "steps", 200, "Search expansions per frame")
}

func runWatch(cmd *cobra.Command, args []string) error {
	var start *cubesolver.Cube
	var scramble []cubesolver.Move
	if len(args) > 0 {
		scramble = cubesolver.ParseMoves(strings.Join(args, " "))
		if len(scramble) == 0 {
			return fmt.Errorf("no valid moves in scramble")
		}
		start = cubesolver.Solved().ApplyMoves(scramble)
	} else {
		start, scramble = newScramble(watchRandom)
	}

	ctx := cmd.Context()
	model := &watchModel{
		ctx:      ctx,
		scramble: scramble,
		cube:     start,
		search:   cubesolver.NewSearch(ctx, start, cubesolver.WithLogger(newLogger())),
		steps:    watchStepsPerFrame,
	}

	p := tea.NewProgram(model)
	_, err := p.Run()
	return err
}

type watchTickMsg time.Time

type watchModel struct {
	ctx      context.Context
	scramble []cubesolver.Move
	cube     *cubesolver.Cube
	search   *cubesolver.Search
	steps    int
	status   cubesolver.Status
	quitting bool
}

func (m *watchModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *watchModel) tickCmd() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case watchTickMsg:
		// Resume the search for one frame's worth of expansions, then
		// yield back to the event loop.
		for i := 0; i < m.steps; i++ {
			if m.status = m.search.Step(m.ctx); m.status != cubesolver.StatusRunning {
				return m, nil
			}
		}
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *watchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("cubesolver watch"))
	b.WriteString("\n\n")
	b.WriteString("Scramble: " + cubesolver.FormatMoves(m.scramble) + "\n\n")
	b.WriteString(renderCube(m.cube))
	b.WriteByte('\n')

	result := m.search.Result()
	b.WriteString(statStyle.Render(fmt.Sprintf(
		"states explored: %d   frontier: %d   elapsed: %s",
		result.StatesExplored,
		m.search.FrontierLen(),
		result.Duration.Round(time.Millisecond),
	)))
	b.WriteByte('\n')

	switch m.status {
	case cubesolver.StatusSolved:
		b.WriteString(solutionStyle.Render(fmt.Sprintf(
			"Solved in %d moves: %s", len(result.Moves), result.Solution())))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("q to quit"))
	case cubesolver.StatusExhausted:
		b.WriteString("No solution found.\n")
		b.WriteString(helpStyle.Render("q to quit"))
	default:
		b.WriteString(helpStyle.Render("searching... q to quit"))
	}
	b.WriteByte('\n')

	return b.String()
}
