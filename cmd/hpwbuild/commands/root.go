// Package commands implements the CLI commands of hpwbuild.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/hpwbuild/internal/app"
	"go.trai.ch/hpwbuild/internal/build"
	"go.trai.ch/hpwbuild/internal/core/domain"
)

// CLI represents the command line interface for hpwbuild.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	Clean(ctx context.Context, opts app.RunOptions) error
	Plan(ctx context.Context, opts app.RunOptions, w io.Writer) error
	ConfigureLogging(jsonMode bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "hpwbuild",
		Short:         "Build and launch the HPW game",
		Long:          "Stamps the game version, builds the game and its graphic-effect plugin with scons, removes stale plugin archives and launches the game.",
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

	rootCmd.PersistentFlags().StringP("config", "c", domain.DefaultConfigFile, "Path to the config file, relative to --dir")
	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Project root directory")
	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonMode, _ := cmd.Flags().GetBool("json")
		c.app.ConfigureLogging(jsonMode)
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newPlanCmd())
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

// baseOptions reads the persistent flags shared by every command.
func baseOptions(cmd *cobra.Command) app.RunOptions {
	root, _ := cmd.Flags().GetString("dir")

	var configPath string
	if cmd.Flags().Changed("config") {
		configPath, _ = cmd.Flags().GetString("config")
	}

	return app.RunOptions{Root: root, ConfigPath: configPath}
}
