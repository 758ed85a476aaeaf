package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/buildinfo"
	"github.com/matzehuels/hanoi/pkg/cache"
	"github.com/matzehuels/hanoi/pkg/config"
	"github.com/matzehuels/hanoi/pkg/hanoi"
	"github.com/matzehuels/hanoi/pkg/pipeline"
	"github.com/matzehuels/hanoi/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

// redisKeyPrefix scopes keys when several deployments share one Redis.
const redisKeyPrefix = "hanoi:v1:"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	noColor    bool
}

// New creates a new CLI instance with a default logger and default config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand it behaves like "solve".
func (c *CLI) RootCommand() *cobra.Command {
	var opts solveOpts

	root := &cobra.Command{
		Use:   "hanoi [disks]",
		Short: "Solve and draw the Tower of Hanoi",
		Long: `hanoi moves a stack of disks from the left rod to the right rod, one disk at a
time, never placing a disk on a smaller one, and draws every step.

The disk count is taken from the first argument, then the config file, and
otherwise read from standard input.`,
		Version:      buildinfo.Get().Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, args, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/hanoi/config.toml)")
	root.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "draw boards without color")
	addSolveFlags(root, &opts)

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.movesCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads --config when given, otherwise the default location.
func (c *CLI) loadConfig() error {
	var (
		cfg config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.Load(c.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("loaded config", "max_disks", cfg.MaxDisks, "cache", cfg.Cache.Backend)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
// The caller closes runner.Cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	ch, keyer, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(ch, keyer, c.Logger)
	r.TTL = c.Config.Cache.TTL.Duration
	return r, nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, cache.Keyer, error) {
	if noCache {
		return cache.NewNullCache(), nil, nil
	}
	switch c.Config.Cache.Backend {
	case config.BackendRedis:
		ch, err := cache.NewRedisCache(ctx, c.Config.Cache.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return ch, cache.NewScopedKeyer(nil, redisKeyPrefix), nil
	case config.BackendNone:
		return cache.NewNullCache(), nil, nil
	}

	dir, err := config.CacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil, nil
	}
	ch, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, nil, err
	}
	return ch, nil, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// renderOptions returns the glyph options from the config.
func (c *CLI) renderOptions() []render.Option {
	return []render.Option{render.WithFill(c.Config.FillRune()), render.WithBase(c.Config.BaseRune())}
}

// pipelineOptions builds runner options for n disks.
func (c *CLI) pipelineOptions(n int) pipeline.Options {
	return pipeline.Options{
		Disks:    n,
		Fill:     c.Config.Render.Fill,
		Base:     c.Config.Render.Base,
		MaxDisks: c.Config.MaxDisks,
	}
}

// drawBoard renders b with color unless disabled by config or --no-color.
func (c *CLI) drawBoard(b *hanoi.Board) string {
	if c.Config.Render.Color && !c.noColor {
		return render.Styled(b, c.renderOptions()...)
	}
	return render.Text(b, c.renderOptions()...)
}
