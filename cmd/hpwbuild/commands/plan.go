package commands

import "github.com/spf13/cobra"

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the steps of a run without executing them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := buildOptions(cmd)
			if err != nil {
				return err
			}
			opts.NoLaunch, _ = cmd.Flags().GetBool("no-launch")
			return c.app.Plan(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}
	addBuildFlags(cmd)
	cmd.Flags().Bool("no-launch", false, "Leave out the launch step")
	return cmd
}
