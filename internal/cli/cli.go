// Package cli implements the scholarnet command-line interface.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scholarnet/internal/config"
	"github.com/matzehuels/scholarnet/pkg/buildinfo"
	"github.com/matzehuels/scholarnet/pkg/cache"
	"github.com/matzehuels/scholarnet/pkg/integrations"
	"github.com/matzehuels/scholarnet/pkg/integrations/dblp"
	"github.com/matzehuels/scholarnet/pkg/observability"
	"github.com/matzehuels/scholarnet/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "scholarnet"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ErrReported marks an error whose message a command already printed.
// main exits nonzero without printing it again.
var ErrReported = errors.New("error already reported")

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level. At debug level the CLI also
// logs pipeline, cache, and HTTP events.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		h := &debugHooks{logger: c.Logger}
		observability.SetPipelineHooks(h)
		observability.SetCacheHooks(h)
		observability.SetHTTPHooks(h)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "scholarnet maps a researcher's co-authorship network",
		Long:          `scholarnet looks up a researcher on DBLP, counts how often they published with each co-author, and renders the collaboration network as an interactive graph.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.Path()+")")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	if err := config.LoadDotEnv(); err != nil {
		c.Logger.Warn("could not load .env", "error", err)
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg
	return nil
}

// newCache opens the configured cache, or a null cache when noCache is set.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, cache.Keyer, error) {
	if noCache {
		return cache.NewNullCache(), cache.NewDefaultKeyer(), nil
	}
	opts := c.config.CacheOptions()
	cc, err := cache.Open(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	return cc, cache.KeyerFor(opts.Backend), nil
}

// newRunner creates a pipeline runner backed by the DBLP client.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, keyer, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	client := dblp.NewClient(cc, c.config.Cache.TTL.Duration, c.config.DBLPURL,
		integrations.WithKeyer(keyer),
		integrations.WithRateLimit(c.config.RateLimit, integrations.DefaultBurst),
	)
	return pipeline.NewRunner(client, cc, keyer, c.Logger), nil
}

// cacheDir returns the file cache directory from config, falling back to
// the XDG default (~/.cache/scholarnet).
func (c *CLI) cacheDir() (string, error) {
	if c.config.Cache.Dir != "" {
		return c.config.Cache.Dir, nil
	}
	return cache.DefaultDir()
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
