package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cansdash/pkg/buildinfo"
	"github.com/matzehuels/cansdash/pkg/cache"
	"github.com/matzehuels/cansdash/pkg/config"
	"github.com/matzehuels/cansdash/pkg/dashboard"
	"github.com/matzehuels/cansdash/pkg/observability"
	"github.com/matzehuels/cansdash/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completions.
const appName = "cansdash"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands. Config is replaced by the
// loaded configuration before any command runs.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	configPath string
	verbose    bool
}

// New creates a CLI that logs to w.
func New(w io.Writer, level log.Level) *CLI {
	cfg := config.Default()
	return &CLI{Logger: newLogger(w, level), Config: &cfg}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "cansdash draws the Kentucky CMHC CANS outcomes dashboard",
		Long: `cansdash lays out and renders the statewide CANS dashboard for Kentucky's
14 Community Mental Health Centers: center comparisons, complexity by region,
intake-to-outcome flow, domain patterns, matched-pair improvement and trends.

Views can be written as SVG, PNG, PDF, JSON or interactive HTML, browsed in
the terminal, or served over HTTP.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (.yaml, .yml or .toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.summaryCommand())
	root.AddCommand(c.dataCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and applies the log level. --verbose wins
// over the configured level.
func (c *CLI) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx, c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		c.Logger.Warn("unknown log level, using info", "level", cfg.LogLevel)
		level = LogInfo
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	hooks := observability.NewLogHooks(c.Logger)
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)

	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(ch, nil, c.Logger)
	if c.Config.Cache.TTL > 0 {
		r.TTL = c.Config.Cache.TTL
	}
	return r, nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cc := c.Config.Cache
	if noCache || cc.Backend == config.BackendNone {
		return cache.NewNullCache(), nil
	}

	if cc.Backend == config.BackendRedis {
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cc.RedisAddr,
			Password: cc.RedisPassword,
			DB:       cc.RedisDB,
			Prefix:   cc.RedisPrefix,
			TTL:      cc.TTL,
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	}

	fc, err := cache.NewFileCache(cc.Dir)
	if err != nil {
		c.Logger.Warn("file cache unavailable, caching disabled", "dir", cc.Dir, "err", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadData reads path, falling back to the configured data file and then
// the bundled sample.
func (c *CLI) loadData(path string) (dashboard.Data, error) {
	if path == "" {
		path = c.Config.DataFile
	}
	return pipeline.LoadData(path)
}

// renderFlags are the flags shared by commands that draw views.
type renderFlags struct {
	width, height float64
	scale         float64
	theme         string
	selected      int
	data          string
	noCache       bool
	refresh       bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.width, "width", 0, "canvas width (default: the view's own size)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "canvas height (default: the view's own size)")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "PNG pixel density (default from config)")
	cmd.Flags().StringVar(&f.theme, "theme", "", "color theme: dark, light (default from config)")
	cmd.Flags().IntVar(&f.selected, "selected", 0, "center ID to drill into on the overview")
	cmd.Flags().StringVar(&f.data, "data", "", "dataset file (.json, .yaml, .toml; default: bundled sample)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "re-render even when cached")
}

// options merges the flags over the configuration.
func (c *CLI) options(f renderFlags, data *dashboard.Data) pipeline.Options {
	opts := pipeline.Options{
		Selected: f.selected,
		Width:    c.Config.Width,
		Height:   c.Config.Height,
		Theme:    c.Config.Theme,
		Scale:    c.Config.Scale,
		Formats:  c.Config.Formats,
		Refresh:  f.refresh,
		Data:     data,
	}
	if f.width != 0 {
		opts.Width = f.width
	}
	if f.height != 0 {
		opts.Height = f.height
	}
	if f.scale != 0 {
		opts.Scale = f.scale
	}
	if f.theme != "" {
		opts.Theme = f.theme
	}
	return opts
}
