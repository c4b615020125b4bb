// Package loader builds a multigraph.Graph from a line-oriented description.
//
// Format:
//
//	# comment            lines starting with '#' are ignored
//	                     blank lines are ignored
//	Ankara               one token: a vertex
//	Ankara Izmir E5 3 7  five tokens: from to edgeName weight0 weight1
//
// Any other token count, and weights that do not parse as floats, are format
// warnings: the line is skipped, logged and recorded in the Report. Store
// errors (duplicate vertex, unknown endpoint, duplicate edge) abort the load.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"go.trai.ch/zerr"

	"github.com/katalvlaran/hroute/multigraph"
)

// Token counts of the two recognized line shapes.
const (
	vertexTokens = 1
	edgeTokens   = 5
)

// Warning describes a skipped line.
type Warning struct {
	Line   int
	Tokens int
	Reason string
	Text   string
}

// Report summarizes a load.
type Report struct {
	Vertices int
	Edges    int
	Warnings []Warning
}

// Option configures Parse and LoadFile.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	graphOpts []multigraph.GraphOption
	strict    bool
}

// WithLogger logs format warnings at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithGraphOptions forwards options to multigraph.NewGraph.
func WithGraphOptions(opts ...multigraph.GraphOption) Option {
	return func(o *options) { o.graphOpts = append(o.graphOpts, opts...) }
}

// Strict turns format warnings into errors.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// ErrFormat is returned by a Strict load on the first malformed line.
var ErrFormat = errors.New("loader: malformed line")

// Parse reads a graph description from r.
func Parse(r io.Reader, opts ...Option) (*multigraph.Graph, *Report, error) {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	g := multigraph.NewGraph(o.graphOpts...)
	rep := &Report{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		var warn string
		switch len(tokens) {
		case vertexTokens:
			if err := g.InsertVertex(tokens[0]); err != nil {
				return nil, rep, fmt.Errorf("loader: line %d: %w", lineNo, err)
			}
			rep.Vertices++
			continue
		case edgeTokens:
			w0, err0 := strconv.ParseFloat(tokens[3], 64)
			w1, err1 := strconv.ParseFloat(tokens[4], 64)
			if err0 != nil || err1 != nil {
				warn = "weight is not a number"
				break
			}
			if err := g.AddEdge(tokens[2], tokens[0], tokens[1], w0, w1); err != nil {
				return nil, rep, fmt.Errorf("loader: line %d: %w", lineNo, err)
			}
			rep.Edges++
			continue
		default:
			warn = "token count mismatch"
		}

		w := Warning{Line: lineNo, Tokens: len(tokens), Reason: warn, Text: line}
		if o.strict {
			return nil, rep, fmt.Errorf("%w: line %d: %s", ErrFormat, lineNo, warn)
		}
		rep.Warnings = append(rep.Warnings, w)
		o.logger.Warn("skipping graph line", "line", lineNo, "tokens", len(tokens), "reason", warn)
	}
	if err := sc.Err(); err != nil {
		return nil, rep, fmt.Errorf("loader: read: %w", err)
	}

	return g, rep, nil
}

// LoadFile opens path and parses it.
func LoadFile(path string, opts ...Option) (*multigraph.Graph, *Report, error) {
	f, err := os.Open(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to open graph file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	g, rep, err := Parse(f, opts...)
	if err != nil {
		return nil, rep, zerr.With(zerr.Wrap(err, "failed to load graph"), "path", path)
	}

	return g, rep, nil
}
