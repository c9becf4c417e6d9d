package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dataproc/internal/adapters/bfhl"
	session "dataproc/internal/services/session/service"
)

func newOpcodeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "opcode",
		Short: "Fetch the operation code from the processing service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(sess *session.Service, client *bfhl.Client) error {
				token, _ := sess.Token(cmd.Context())
				code, err := client.OperationCode(cmd.Context(), token)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Operation code: %d\n", code)
				return nil
			})
		},
	}
}
