package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/scholarnet/internal/server"
	"github.com/matzehuels/scholarnet/pkg/builds"
	"github.com/matzehuels/scholarnet/pkg/pipeline"
)

// serveCommand starts the HTTP server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve co-authorship networks over HTTP",
		Long: `Serve exposes the build pipeline over HTTP:

  GET    /graph?q=<name|url>        interactive HTML page
  GET    /graph.json?q=<name|url>   graph as JSON
  GET    /stats?q=<name|url>        network statistics
  POST   /graphs?q=<name|url>       store a build, returns its id
  GET    /graphs/{id}?format=svg    render a stored build
  DELETE /graphs/{id}               drop a stored build

Stored builds live in memory unless server.store_dir is configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.config.Server.Addr
			}

			store, err := c.newBuildStore()
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			r := c.config.Render
			srv := server.New(runner, store, server.Options{
				Render: pipeline.Options{
					Height:    r.Height,
					Width:     r.Width,
					BgColor:   r.BgColor,
					FontColor: r.FontColor,
				},
				Logger: c.Logger,
			})
			return srv.Run(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")
	return cmd
}

func (c *CLI) newBuildStore() (builds.Store, error) {
	if dir := c.config.Server.StoreDir; dir != "" {
		return builds.NewFileStore(dir)
	}
	return builds.NewMemoryStore(), nil
}
