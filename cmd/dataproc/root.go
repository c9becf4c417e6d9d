package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "dataproc",
		Short:         "Submit JSON and files to the processing service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx.bootstrap(cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.baseURL, "base-url", "", "Processing service URL (default $DATAPROC_API_BASE_URL or http://localhost:3000)")
	pf.StringVar(&flags.sessionFile, "session-file", "", "Session file path (default $DATAPROC_SESSION_FILE)")
	pf.DurationVar(&flags.timeout, "timeout", 0, "HTTP timeout (default $DATAPROC_HTTP_TIMEOUT or 30s)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log pipeline steps to stderr")

	rootCmd.AddCommand(newLoginCommand(ctx))
	rootCmd.AddCommand(newRegisterCommand(ctx))
	rootCmd.AddCommand(newLogoutCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newSubmitCommand(ctx))
	rootCmd.AddCommand(newOpcodeCommand(ctx))

	return rootCmd
}
