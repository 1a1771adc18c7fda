package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rushhour/internal/games/rushhour/core"
	"github.com/vovakirdan/rushhour/internal/games/rushhour/levels"
	"github.com/vovakirdan/rushhour/internal/games/rushhour/solver"
	"github.com/vovakirdan/rushhour/internal/platform/tui"
)

var (
	flagAlgo     string
	flagMaxDepth int
	flagTimeout  time.Duration
	flagPacked   bool
	flagShow     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <level-id|file>",
	Short: "Solve a level",
	Long: `Solve a level by ID (looked up in the level directory) or by file path.

Strategies:
  BFS   fewest slides
  DFS   first solution within --max-depth slides
  UCS   cheapest solution (cells moved times vehicle length)
  A*    cheapest solution, guided by the blocker estimate

Examples:
  rushhour solve lvl03
  rushhour solve lvl03 --algo BFS --show
  rushhour solve levels/custom.txt --algo DFS --max-depth 15 --timeout 5s`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&flagAlgo, "algo", "a", "", "Search strategy (BFS, DFS, UCS, A*)")
	solveCmd.Flags().IntVar(&flagMaxDepth, "max-depth", 0, "DFS depth bound in slides")
	solveCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Wall-clock budget, e.g. 10s")
	solveCmd.Flags().BoolVar(&flagPacked, "packed", false, "Store parent entries as packed byte strings")
	solveCmd.Flags().BoolVar(&flagShow, "show", false, "Draw the board after every slide")
}

func runSolve(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger()

	lvl, err := levels.NewLoader(cfg.Paths.Levels).Resolve(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'rushhour levels' to see available levels.")
		os.Exit(1)
	}

	algo := cfg.Solver.Algorithm
	if cmd.Flags().Changed("algo") {
		algo = flagAlgo
	}
	opts := cfg.Solver.Options()
	if cmd.Flags().Changed("max-depth") {
		opts.MaxDepth = flagMaxDepth
	}
	if cmd.Flags().Changed("timeout") {
		opts.MaxTime = flagTimeout
	}
	if cmd.Flags().Changed("packed") {
		opts.PackedTable = flagPacked
	}
	opts.Logger = logger

	strategy, err := solver.New(algo, lvl, opts)
	if err != nil {
		if errors.Is(err, solver.ErrUnknownStrategy) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: invalid level %s: %v\n", lvl.ID, err)
		}
		os.Exit(1)
	}

	res := strategy.Solve()

	fmt.Printf("Level:    %s (%s)\n", lvl.ID, lvl.Name)
	fmt.Printf("Strategy: %s\n", strategy.Name())
	fmt.Printf("Expanded: %d states in %s\n", res.NodesExpanded, res.Elapsed.Round(time.Microsecond))
	fmt.Println()

	theme := tui.DefaultTheme()
	switch {
	case res.Solved:
		slides := core.Coarsen(res.Path)
		fmt.Println(tui.Status(true, fmt.Sprintf("Solved: %d moves, cost %d", len(res.Path), res.FinalCost), theme))
		fmt.Println()
		for i, m := range slides {
			fmt.Printf("  %2d. %s\n", i+1, m)
		}
		if flagShow {
			fmt.Println()
			showSolution(lvl, slides, theme)
		}
	case res.TimedOut:
		fmt.Println(tui.Status(false, "Timed out before a solution was found", theme))
		os.Exit(2)
	default:
		fmt.Println(tui.Status(false, "No solution", theme))
		os.Exit(2)
	}
}

// showSolution draws the board before the first slide and after each one.
// Colour and side-by-side layout are used only when stdout is a terminal.
func showSolution(lvl levels.Level, slides []core.Move, theme tui.Theme) {
	p, err := lvl.Puzzle()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	states, err := core.Replay(p.Initial, p.Info, slides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying solution: %v\n", err)
		return
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		for i, s := range states {
			if i == 0 {
				fmt.Println("start")
			} else {
				fmt.Println(slides[i-1])
			}
			fmt.Println(p.Board(s))
		}
		return
	}

	width := 0
	if w, _, err := term.GetSize(fd); err == nil {
		width = w
	}

	steps := make([]tui.Step, len(states))
	for i, s := range states {
		b := p.Board(s)
		caption := "start"
		if i > 0 {
			caption = slides[i-1].String()
		}
		steps[i] = tui.Step{Caption: caption, Board: &b}
	}
	fmt.Println(tui.RenderSteps(steps, p.ExitRow, width, theme))
}
