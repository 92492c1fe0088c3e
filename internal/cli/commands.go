package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/patrol/internal/logging"
	"github.com/katalvlaran/patrol/labmap"
	"github.com/katalvlaran/patrol/search"
	"github.com/katalvlaran/patrol/simulate"
)

// visitedCmd returns the visited command
func visitedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "visited FILE",
		Short: "Count the distinct cells the guard visits before leaving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMap(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := a.patrol(cmd, m)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Visited.Len())
			return nil
		},
	}
}

// loopsCmd returns the loops command
func loopsCmd(a *app) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "loops FILE",
		Short: "Count the single obstructions that trap the guard in a loop",
		Long: `Count the cells on the guard's route where one new obstruction
makes the guard patrol forever. The guard's own start cell is never a
candidate. With --list, print each position as "row,col" after the count.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMap(cmd, args[0])
			if err != nil {
				return err
			}
			_, res, err := a.search(cmd, m)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Count)
			if list {
				for _, p := range res.Loops {
					fmt.Fprintf(out, "%d,%d\n", p.Row, p.Col)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "also print the loop positions")

	return cmd
}

// solveCmd returns the solve command
func solveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve FILE",
		Short: "Answer both questions for a map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMap(cmd, args[0])
			if err != nil {
				return err
			}
			base, res, err := a.search(cmd, m)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "visited: %d\n", base.Visited.Len())
			fmt.Fprintf(out, "loops: %d\n", res.Count)
			return nil
		},
	}
}

// renderCmd returns the render command
func renderCmd(a *app) *cobra.Command {
	var loops bool

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Print the map with the guard's route marked",
		Long: `Print the map after the patrol: X marks visited cells, # obstructions.
The guard is drawn where it stopped if it is still on the map.
With --loops, O marks every obstruction position that would cause a loop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMap(cmd, args[0])
			if err != nil {
				return err
			}

			var (
				base simulate.Result
				opts = []labmap.RenderOption{labmap.WithColor(a.cfg.Color)}
			)
			if loops {
				var res search.Result
				base, res, err = a.search(cmd, m)
				if err != nil {
					return err
				}
				opts = append(opts, labmap.WithLoops(res.Loops))
			} else {
				base, err = a.patrol(cmd, m)
				if err != nil {
					return err
				}
			}

			opts = append(opts, labmap.WithVisited(base.Visited))
			if base.Outcome == simulate.Exited {
				opts = append(opts, labmap.WithoutAgent())
			} else {
				opts = append(opts, labmap.WithAgent(base.Final))
			}
			return labmap.Render(cmd.OutOrStdout(), m, opts...)
		},
	}
	cmd.Flags().BoolVar(&loops, "loops", false, "mark loop-inducing obstruction positions")

	return cmd
}

// patrol runs the unmodified simulation.
func (a *app) patrol(cmd *cobra.Command, m *labmap.Map) (simulate.Result, error) {
	start := time.Now()
	opts := append(a.simulateOptions(), simulate.WithContext(cmd.Context()))
	res, err := simulate.Simulate(m.Grid, m.Guard, opts...)
	if err != nil {
		return simulate.Result{}, err
	}
	logging.With(a.log.Info(), logging.Component("simulate"), logging.Outcome(res.Outcome), logging.Duration(time.Since(start))).
		Int("visited", res.Visited.Len()).
		Int("steps", res.Steps).
		Msg("patrol finished")
	return res, nil
}

// search runs the baseline patrol and the obstruction search over its route.
func (a *app) search(cmd *cobra.Command, m *labmap.Map) (simulate.Result, search.Result, error) {
	base, err := a.patrol(cmd, m)
	if err != nil {
		return simulate.Result{}, search.Result{}, err
	}
	if base.Outcome != simulate.Exited {
		return base, search.Result{}, search.ErrBaselineCycle
	}

	start := time.Now()
	cands := search.Candidates(m.Grid, m.Guard, base.Visited)
	res, err := search.Find(m.Grid, m.Guard, base.Visited, a.searchOptions(cmd, len(cands))...)
	if err != nil {
		return base, search.Result{}, err
	}
	logging.With(a.log.Info(), logging.Component("search"), logging.Duration(time.Since(start))).
		Int("candidates", res.Evaluated).
		Int("loops", int(res.Count)).
		Msg("search finished")
	return base, res, nil
}
