package cli

import (
	"context"
	"fmt"

	"github.com/sarag5/mlcookiecutter/internal/branding"
	"github.com/sarag5/mlcookiecutter/internal/config"
	"github.com/sarag5/mlcookiecutter/internal/license"
	"github.com/sarag5/mlcookiecutter/internal/log"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates the directory structure of a new ML/data project:
sample data, stub modules, tests, CI workflows, a Dockerfile, a task runner,
a README, a LICENSE fetched from the GitHub licenses API, and a CODEOWNERS file.

Running it without a subcommand is the same as "` + branding.CLIName() + ` create".`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCreate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output")
	addCreateFlags(rootCmd)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(ctx context.Context, version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.ExecuteContext(ctx)
}

// newLogger returns a logger bound to the command's output streams.
func newLogger(cmd *cobra.Command) *log.Logger {
	return log.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), verbose)
}

// newResolver builds a license resolver from the loaded configuration.
func newResolver(logger *log.Logger) *license.Resolver {
	return license.New(
		license.WithBaseURL(config.LicenseAPIURL()),
		license.WithToken(config.GitHubToken()),
		license.WithTimeout(config.HTTPTimeout()),
		license.WithUserAgent(fmt.Sprintf("%s/%s", branding.CLIName(), buildVersion)),
		license.WithLogger(logger),
	)
}
