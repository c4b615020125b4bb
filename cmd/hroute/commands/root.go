// Package commands implements the CLI commands of hroute.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/katalvlaran/hroute/config"
	"github.com/katalvlaran/hroute/internal/build"
	"github.com/katalvlaran/hroute/internal/logging"
	"github.com/katalvlaran/hroute/loader"
	"github.com/katalvlaran/hroute/multigraph"
	"github.com/katalvlaran/hroute/pathcache"
	"github.com/katalvlaran/hroute/planner"
	"github.com/katalvlaran/hroute/render"
)

// ErrNoGraph is returned when neither --graph nor the config names a graph file.
var ErrNoGraph = zerr.New("no graph file given")

// CLI represents the command line interface for hroute.
type CLI struct {
	rootCmd *cobra.Command

	configPath string
	graphPath  string
	alpha      float64
	logLevel   string
	logJSON    bool
	strict     bool
}

// session is everything a graph command needs, built once per invocation.
type session struct {
	cfg     config.Config
	logger  *slog.Logger
	cache   *pathcache.Table
	planner *planner.Planner
	printer *render.Printer
}

// New creates the CLI with all subcommands registered.
func New() *CLI {
	rootCmd := &cobra.Command{
		Use:           "hroute",
		Short:         "Heuristic routing over a named weighted multigraph",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{rootCmd: rootCmd}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&c.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVarP(&c.graphPath, "graph", "g", "", "graph description file (overrides config)")
	pf.Float64Var(&c.alpha, "alpha", config.DefaultAlpha, "heuristic weight for weighted queries (overrides config)")
	pf.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	pf.BoolVar(&c.logJSON, "log-json", false, "log as JSON (overrides config)")
	pf.BoolVar(&c.strict, "strict", false, "fail on malformed graph lines instead of skipping them")

	rootCmd.AddCommand(c.newRouteCmd())
	rootCmd.AddCommand(c.newFilteredCmd())
	rootCmd.AddCommand(c.newDepthCmd())
	rootCmd.AddCommand(c.newMutualCmd())
	rootCmd.AddCommand(c.newDumpCmd())
	rootCmd.AddCommand(c.newBatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the input stream read by batch. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// open resolves the configuration, loads the graph and wires the planner.
func (c *CLI) open(cmd *cobra.Command) (*session, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if c.graphPath != "" {
		cfg.Graph = c.graphPath
	}
	if flags.Changed("alpha") {
		cfg.Routing.Alpha = c.alpha
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = c.logJSON
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Graph == "" {
		return nil, ErrNoGraph
	}

	logger := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		JSON:   cfg.Log.JSON,
		Writer: cmd.ErrOrStderr(),
	})

	opts := []loader.Option{
		loader.WithLogger(logger),
		loader.WithGraphOptions(multigraph.WithLogger(logger)),
	}
	if c.strict {
		opts = append(opts, loader.Strict())
	}
	g, rep, err := loader.LoadFile(cfg.Graph, opts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("graph loaded",
		"path", cfg.Graph,
		"vertices", rep.Vertices,
		"edges", rep.Edges,
		"warnings", len(rep.Warnings),
	)

	hash, _ := pathcache.HasherByName(cfg.Cache.Hash)
	cache, err := pathcache.New(cfg.Cache.Capacity,
		pathcache.WithHasher(hash),
		pathcache.WithLogger(logger),
	)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create path cache"), "capacity", cfg.Cache.Capacity)
	}

	p, err := planner.New(g, cache,
		planner.WithAlpha(cfg.Routing.Alpha),
		planner.WithEvictBatch(cfg.Cache.EvictBatch),
		planner.WithLogger(logger),
	)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create planner")
	}

	return &session{
		cfg:     cfg,
		logger:  logger,
		cache:   cache,
		planner: p,
		printer: render.New(cmd.OutOrStdout()),
	}, nil
}
