package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dc",
		Short:         "DevConnect CLI (dc): feed, posts, comments and developer profiles",
		Long:          "dc is a terminal client for DevConnect. It signs you in, keeps your session alive by renewing the access credential when the server rejects it, and lets you browse the feed, post, comment, follow developers and edit your profile.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newVersionCmd(), newConfigCmd())

	// A wiring failure is reported by every command that needs the app, so the
	// cause is not masked by an unknown command error.
	wired, err := wireApp()
	if err != nil {
		wired = &app{wireErr: err}
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
	}

	rootCmd.AddCommand(
		newAuthCmd(wired),
		newFeedCmd(wired),
		newPostCmd(wired),
		newCommentCmd(wired),
		newUserCmd(wired),
		newProfileCmd(wired),
	)

	return rootCmd
}
