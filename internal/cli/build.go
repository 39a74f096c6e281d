package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scholarnet/pkg/analysis"
	"github.com/matzehuels/scholarnet/pkg/coauthor"
	apperr "github.com/matzehuels/scholarnet/pkg/errors"
	"github.com/matzehuels/scholarnet/pkg/pipeline"
)

// buildFlags holds flag values for the build command.
type buildFlags struct {
	depth     int
	out       string
	height    string
	width     string
	formats   string
	bgColor   string
	fontColor string
	detailed  bool
	refresh   bool
	noCache   bool
	stats     bool
	top       int
}

// buildCommand creates the build command: resolve, fetch, build, render.
func (c *CLI) buildCommand() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "build <name|url>",
		Short: "Build and render a researcher's co-authorship network",
		Long: `Build looks up a researcher on DBLP, counts shared papers with every
co-author, and renders the resulting network.

The argument is either a name to search for or a DBLP profile URL. With a
name, the first matching profile is used.`,
		Example: `  scholarnet build "Zeshan Khan"
  scholarnet build https://dblp.org/pid/12/3456.html --format html,svg -o khan.html
  scholarnet build "Zeshan Khan" --stats --no-cache`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd, args[0], flags)
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.depth, "depth", pipeline.DefaultDepth, "co-author hops to collect (only 1 is supported)")
	f.StringVarP(&flags.out, "out", "o", "", "output file (default from config, "+pipeline.DefaultOutput+")")
	f.StringVar(&flags.height, "height", "", "canvas height, e.g. 700px")
	f.StringVar(&flags.width, "width", "", "canvas width, e.g. 100%")
	f.StringVarP(&flags.formats, "format", "f", pipeline.FormatHTML, "output formats: "+strings.Join(pipeline.Formats, ","))
	f.StringVar(&flags.bgColor, "bg-color", "", "background color")
	f.StringVar(&flags.fontColor, "font-color", "", "label color")
	f.BoolVar(&flags.detailed, "detailed", false, "label static diagrams with full names")
	f.BoolVar(&flags.refresh, "refresh", false, "bypass cached responses")
	f.BoolVar(&flags.noCache, "no-cache", false, "disable caching entirely")
	f.BoolVar(&flags.stats, "stats", false, "print network statistics")
	f.IntVar(&flags.top, "top", 10, "co-authors listed by --stats")

	return cmd
}

// buildOptions merges flags over the render config.
func (c *CLI) buildOptions(query string, flags buildFlags) pipeline.Options {
	r := c.config.Render
	pick := func(flag, cfg string) string {
		if flag != "" {
			return flag
		}
		return cfg
	}
	return pipeline.Options{
		Query:     query,
		Depth:     flags.depth,
		Refresh:   flags.refresh,
		Formats:   []string{flags.formats},
		Height:    pick(flags.height, r.Height),
		Width:     pick(flags.width, r.Width),
		BgColor:   pick(flags.bgColor, r.BgColor),
		FontColor: pick(flags.fontColor, r.FontColor),
		Detailed:  flags.detailed,
		Logger:    c.Logger,
	}
}

func (c *CLI) runBuild(cmd *cobra.Command, query string, flags buildFlags) error {
	ctx := cmd.Context()
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	opts := c.buildOptions(query, flags)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if opts.DepthIgnored() {
		printWarning(stderr, "Only direct co-authors are collected; ignoring --depth %d.", opts.Depth)
	}

	outBase := flags.out
	userOut := outBase != ""
	if !userOut {
		outBase = c.config.Render.Output
	}
	paths := outputPaths(outBase, opts.Formats, userOut)
	for _, p := range paths {
		if err := apperr.ValidateOutputPath(p, ""); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := c.execute(ctx, runner, opts, stderr)
	if err != nil {
		if errors.Is(err, coauthor.ErrNotFound) {
			fmt.Fprintf(stderr, "Could not find a DBLP profile for \"%s\".\n", query)
			return ErrReported
		}
		return err
	}
	prog.done(fmt.Sprintf("Built network of %d authors", result.Stats.NodeCount))

	for _, format := range opts.Formats {
		path := paths[format]
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		if format == pipeline.FormatHTML {
			fmt.Fprintf(stdout, "Saved interactive graph to: %s\n", path)
		} else {
			fmt.Fprintf(stdout, "Saved %s to: %s\n", strings.ToUpper(format), path)
		}
	}
	printStats(stdout, result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.ProfileHit)

	if flags.stats {
		printSummary(stdout, analysis.Summarize(result.Graph, flags.top))
	}
	return nil
}

// execute runs the pipeline, showing a spinner on interactive terminals
// when debug logging is off.
func (c *CLI) execute(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, stderr io.Writer) (*pipeline.Result, error) {
	f, ok := stderr.(*os.File)
	if !ok || !isTerminal(f) || c.Logger.GetLevel() <= LogDebug {
		return runner.Execute(ctx, opts)
	}
	spin := newSpinnerWithContext(ctx, stderr, fmt.Sprintf("Building network for %s...", opts.Query))
	spin.Start()
	result, err := runner.Execute(ctx, opts)
	spin.Stop()
	return result, err
}

// outputPaths maps each format to its file. When the user named a file for
// a single format it is used unchanged; otherwise the extension follows the
// format.
func outputPaths(base string, formats []string, userOut bool) map[string]string {
	if base == "" {
		base = pipeline.DefaultOutput
	}
	multi := len(formats) > 1 || !userOut
	paths := make(map[string]string, len(formats))
	for _, f := range formats {
		paths[f] = pipeline.OutputPath(base, f, multi)
	}
	return paths
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
