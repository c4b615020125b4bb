package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/katalvlaran/hroute/pathcache"
	"github.com/katalvlaran/hroute/planner"
)

// ErrBadQuery is returned for a batch line that is not "FROM TO [WEIGHTED]".
var ErrBadQuery = zerr.New("malformed query line")

func (c *CLI) newBatchCmd() *cobra.Command {
	var dumpCache, metrics bool
	cmd := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Answer route queries read line by line, reusing cached paths",
		Long: `Each line holds "FROM TO" or "FROM TO WEIGHTED", where WEIGHTED is a
boolean (true, false, 1, 0). Blank lines and lines starting with '#' are
skipped. Queries are read from FILE, or from standard input when FILE is
omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				// #nosec G304 -- path is supplied by the operator
				f, err := os.Open(args[0])
				if err != nil {
					return zerr.With(zerr.Wrap(err, "failed to open query file"), "path", args[0])
				}
				defer f.Close() //nolint:errcheck // read-only handle
				in = f
			}

			out := cmd.OutOrStdout()
			if err := s.runBatch(cmd, in, out); err != nil {
				return err
			}
			if dumpCache {
				if err := s.printer.Table(s.cache); err != nil {
					return err
				}
				if err := s.printer.SortedEntries(s.cache); err != nil {
					return err
				}
			}
			if metrics {
				return writeCacheMetrics(out, s.cache)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&dumpCache, "dump-cache", false, "print the cache slots and ranked entries afterwards")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "print the cache occupancy gauges afterwards")

	return cmd
}

func (s *session) runBatch(cmd *cobra.Command, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		q, err := parseQuery(line)
		if err != nil {
			return zerr.With(err, "line", lineNo)
		}
		res, err := s.planner.Route(cmd.Context(), q)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "query failed"), "line", lineNo)
		}
		if err := s.writeResult(out, q, res, true); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return zerr.Wrap(err, "failed to read queries")
	}

	return nil
}

func parseQuery(line string) (planner.Query, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 || len(tokens) > 3 {
		return planner.Query{}, zerr.With(ErrBadQuery, "tokens", len(tokens))
	}
	q := planner.Query{From: tokens[0], To: tokens[1]}
	if len(tokens) == 3 {
		w, err := strconv.ParseBool(tokens[2])
		if err != nil {
			return planner.Query{}, zerr.With(ErrBadQuery, "weighted", tokens[2])
		}
		q.Weighted = w
	}

	return q, nil
}

// writeCacheMetrics gathers the cache collector through a private registry
// and prints one "name value" line per gauge.
func writeCacheMetrics(w io.Writer, t *pathcache.Table) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(pathcache.NewCollector("routes", t)); err != nil {
		return zerr.Wrap(err, "failed to register cache collector")
	}
	families, err := reg.Gather()
	if err != nil {
		return zerr.Wrap(err, "failed to gather cache metrics")
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if _, err := fmt.Fprintf(w, "%s %g\n", mf.GetName(), m.GetGauge().GetValue()); err != nil {
				return err
			}
		}
	}

	return nil
}
