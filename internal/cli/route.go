// Package cli - the route command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/acopath/acopath/antsystem"
	"github.com/acopath/acopath/dijkstra"
	"github.com/acopath/acopath/topoio"
)

// errNoPath drives the non-zero exit code when the colony exhausts its
// budget without any ant reaching the destination.
var errNoPath = errors.New("acopath: no path found within the configured budget")

func newRouteCmd() *cobra.Command {
	var (
		fromNode int64
		toNode   int64
		exact    bool
	)

	cmd := &cobra.Command{
		Use:   "route <topology-file>",
		Short: "Approximate a low-cost path between two nodes",
		Long: `Load a JSON or YAML topology document, run the ant colony, and print the
best route found. Exits non-zero when no ant reaches the destination.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			specs, err := topoio.LoadFile(args[0])
			if err != nil {
				return err
			}
			logger.Debug("topology loaded", "file", args[0], "edges", len(specs))

			opts, err := engineOptions()
			if err != nil {
				return err
			}

			colony, err := antsystem.NewFromEdges(specs, opts...)
			if err != nil {
				return err
			}

			started := time.Now()
			route := colony.Route(fromNode, toNode)
			logger.Info("colony run complete",
				"from", fromNode,
				"to", toNode,
				"ants", viper.GetInt(antsKey),
				"iterations", viper.GetInt(iterationsKey),
				"elapsed", time.Since(started).Round(time.Millisecond),
			)

			if exact {
				nodes, length, derr := dijkstra.ShortestPath(colony.Topology(), fromNode, toNode)
				if derr != nil {
					return derr
				}
				logger.Info("dijkstra baseline", "length", length, "hops", maxHops(nodes))
				renderRoute(cmd.OutOrStdout(), "exact", antsystem.Route{Nodes: nodes, Length: length})
			}

			renderRoute(cmd.OutOrStdout(), "colony", route)
			if len(route.Nodes) == 0 {
				return errNoPath
			}

			return nil
		},
	}

	cmd.Flags().Int64Var(&fromNode, "from", 0, "start node id")
	cmd.Flags().Int64Var(&toNode, "to", 0, "destination node id")
	cmd.Flags().BoolVar(&exact, "exact", false, "also compute the exact Dijkstra baseline")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	cmd.Flags().Int("ants", viper.GetInt(antsKey), "walk attempts per round")
	bindFlagToConfig(cmd.Flags().Lookup("ants"), antsKey)
	cmd.Flags().Int("iterations", viper.GetInt(iterationsKey), "number of rounds")
	bindFlagToConfig(cmd.Flags().Lookup("iterations"), iterationsKey)
	cmd.Flags().Int64("seed", viper.GetInt64(seedKey), "RNG seed (0 = fixed default stream)")
	bindFlagToConfig(cmd.Flags().Lookup("seed"), seedKey)
	cmd.Flags().Int("parallel", viper.GetInt(parallelKey), "max concurrent walks per round")
	bindFlagToConfig(cmd.Flags().Lookup("parallel"), parallelKey)

	return cmd
}

// bindFlagToConfig wires a cobra flag to a viper key so config/env values
// feed the flag default and explicit flags override both.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// renderRoute prints one route as a hop table followed by a summary row.
// An empty route prints only the "no path" summary.
func renderRoute(w io.Writer, label string, route antsystem.Route) {
	if len(route.Nodes) == 0 {
		fmt.Fprintf(w, "%s: no path\n", label)
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Hop", "Node"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	var i int
	var n int64
	for i, n = range route.Nodes {
		table.Append([]string{strconv.Itoa(i), strconv.FormatInt(n, 10)})
	}
	table.Render()

	fmt.Fprintf(w, "%s: length %g over %d hop(s)\n", label, route.Length, len(route.Nodes)-1)
}

// maxHops reports the hop count of a path, 0 for empty paths.
func maxHops(nodes []int64) int {
	if len(nodes) == 0 {
		return 0
	}

	return len(nodes) - 1
}
