package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hroute/planner"
)

func (c *CLI) newRouteCmd() *cobra.Command {
	var weighted, multiline bool
	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Print the shortest path between two vertices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}
			q := planner.Query{From: args[0], To: args[1], Weighted: weighted}
			res, err := s.planner.Route(cmd.Context(), q)
			if err != nil {
				return err
			}

			return s.writeResult(cmd.OutOrStdout(), q, res, !multiline)
		},
	}
	cmd.Flags().BoolVarP(&weighted, "weighted", "w", false, "blend both weights with alpha instead of using weight0")
	cmd.Flags().BoolVar(&multiline, "multiline", false, "print one vertex per line")

	return cmd
}

func (c *CLI) newFilteredCmd() *cobra.Command {
	var (
		weighted, multiline bool
		exclude             []string
	)
	cmd := &cobra.Command{
		Use:   "filtered FROM TO",
		Short: "Print the shortest path that avoids the excluded edge names",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}
			q := planner.Query{From: args[0], To: args[1], Weighted: weighted}
			res, err := s.planner.RouteFiltered(cmd.Context(), q, exclude)
			if err != nil {
				return err
			}

			return s.writeResult(cmd.OutOrStdout(), q, res, !multiline)
		},
	}
	cmd.Flags().BoolVarP(&weighted, "weighted", "w", false, "blend both weights with alpha instead of using weight0")
	cmd.Flags().BoolVar(&multiline, "multiline", false, "print one vertex per line")
	cmd.Flags().StringSliceVarP(&exclude, "exclude", "x", nil, "edge names to ignore (repeatable or comma separated)")

	return cmd
}

func (c *CLI) newDepthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "depth START EDGE",
		Short: "Print the hop eccentricity of START over edges named EDGE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}
			d, err := s.planner.Depth(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), d)

			return err
		},
	}
}

func (c *CLI) newMutualCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutual",
		Short: "Print the number of vertex pairs connected in both directions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.planner.Mutual(cmd.Context()))

			return err
		},
	}
}

func (c *CLI) newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print every vertex with its outgoing edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}

			return s.printer.Graph(s.planner.Graph())
		},
	}
}

// writeResult prints the path followed by a summary line, or a not-found line.
func (s *session) writeResult(w io.Writer, q planner.Query, res planner.Result, sameLine bool) error {
	if !res.Found {
		_, err := fmt.Fprintf(w, "no route from %s to %s\n", q.From, q.To)
		return err
	}
	if err := s.printer.Path(s.planner.Graph(), res.Path, res.Alpha, sameLine); err != nil {
		return err
	}
	names, err := res.Path.Names(s.planner.Graph())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "hops=%d cost=%g alpha=%g cached=%t via=%s\n",
		res.Path.Hops(), res.Cost, res.Alpha, res.Cached, strings.Join(names, ","))

	return err
}
