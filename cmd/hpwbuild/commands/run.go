package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hpwbuild/internal/app"
	"go.trai.ch/hpwbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Stamp the version, build the game and plugin, then launch the game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := buildOptions(cmd)
			if err != nil {
				return err
			}
			opts.NoLaunch, _ = cmd.Flags().GetBool("no-launch")

			if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
				return c.app.Plan(cmd.Context(), opts, cmd.OutOrStdout())
			}
			return c.app.Run(cmd.Context(), opts)
		},
	}
	addBuildFlags(cmd)
	cmd.Flags().Bool("no-launch", false, "Stop after the cleanup step")
	cmd.Flags().Bool("dry-run", false, "Print the steps without running them")
	return cmd
}

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Stamp the version and build the game and plugin without launching",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := buildOptions(cmd)
			if err != nil {
				return err
			}
			opts.NoLaunch = true
			return c.app.Run(cmd.Context(), opts)
		},
	}
	addBuildFlags(cmd)
	return cmd
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("release", false, "Build with debug=0")
	cmd.Flags().IntP("jobs", "j", domain.DefaultJobs, "Number of parallel build jobs")
	cmd.Flags().String("build-log", "", "Append the build tool output to this file")
}

func buildOptions(cmd *cobra.Command) (app.RunOptions, error) {
	opts := baseOptions(cmd)
	opts.Release, _ = cmd.Flags().GetBool("release")
	opts.BuildLog, _ = cmd.Flags().GetString("build-log")

	if cmd.Flags().Changed("jobs") {
		jobs, _ := cmd.Flags().GetInt("jobs")
		if jobs < 1 {
			err := zerr.Wrap(domain.ErrInvalidJobs, domain.ErrInvalidConfig.Error())
			return opts, zerr.With(err, "jobs", jobs)
		}
		opts.Jobs = jobs
	}
	return opts, nil
}
