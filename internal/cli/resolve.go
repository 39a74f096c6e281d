package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scholarnet/pkg/coauthor"
	apperr "github.com/matzehuels/scholarnet/pkg/errors"
)

// resolveCommand prints the profile URL a query resolves to.
func (c *CLI) resolveCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "resolve <name|url>",
		Short: "Print the DBLP profile URL for a researcher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			if err := apperr.ValidateQuery(query); err != nil {
				return err
			}
			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			locator, err := runner.Resolve(cmd.Context(), query)
			if errors.Is(err, coauthor.ErrNotFound) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Could not find a DBLP profile for \"%s\".\n", query)
				return ErrReported
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), locator)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")
	return cmd
}

// searchCommand lists every profile a name search returns.
func (c *CLI) searchCommand() *cobra.Command {
	var (
		noCache     bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "List DBLP profiles matching a name",
		Long: `Search lists the candidate profiles for a name in the order build would
try them. With --interactive, pick one and print its URL.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := apperr.ValidateQuery(name); err != nil {
				return err
			}
			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Search(cmd.Context(), name)
			if err != nil {
				return err
			}
			candidates := res.Candidates()
			if len(candidates) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Could not find a DBLP profile for \"%s\".\n", name)
				return ErrReported
			}

			if !interactive {
				for _, href := range candidates {
					fmt.Fprintln(cmd.OutOrStdout(), href)
				}
				return nil
			}

			selected, err := selectAuthor(cmd, candidates)
			if err != nil || selected == "" {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), selected)
			printNextStep(cmd.ErrOrStderr(), "Build its network", fmt.Sprintf("%s build %s", appName, selected))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a profile interactively")
	return cmd
}

// selectAuthor runs the profile picker and returns the chosen URL, or ""
// when the user quit without choosing.
func selectAuthor(cmd *cobra.Command, candidates []string) (string, error) {
	p := tea.NewProgram(NewAuthorListModel(candidates),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
	)
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}
	m, ok := final.(AuthorListModel)
	if !ok || m.Selected == "" {
		return "", nil
	}
	return m.Selected, nil
}
