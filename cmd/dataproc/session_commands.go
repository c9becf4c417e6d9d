package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"dataproc/internal/adapters/bfhl"
	ptime "dataproc/internal/platform/time"
	"dataproc/internal/services/session/domain"
	session "dataproc/internal/services/session/service"
)

func newLoginCommand(ctx *commandContext) *cobra.Command {
	var creds domain.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the token in the session file",
		Long:  "Sign in and keep the token in the session file. When --password is omitted it is read from the first line of stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if creds.Password == "" {
				pw, err := readLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				creds.Password = pw
			}
			return ctx.withSession(func(svc *session.Service, _ *bfhl.Client) error {
				st, err := svc.Login(cmd.Context(), creds)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", dash(st.Email))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&creds.Email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "Account password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newRegisterCommand(ctx *commandContext) *cobra.Command {
	var reg domain.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account; does not sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if reg.Password == "" {
				pw, err := readLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				reg.Password = pw
			}
			return ctx.withSession(func(svc *session.Service, _ *bfhl.Client) error {
				raw, err := svc.Register(cmd.Context(), reg)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Registered %s\n", reg.Email)
				var pretty bytes.Buffer
				if json.Indent(&pretty, raw, "", "  ") == nil && pretty.Len() > 2 {
					fmt.Fprintln(out, pretty.String())
				}
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&reg.Email, "email", "e", "", "Account email")
	f.StringVarP(&reg.Password, "password", "p", "", "Account password (read from stdin when omitted)")
	f.StringVar(&reg.FullName, "full-name", "", "Full name")
	f.StringVar(&reg.RollNumber, "roll-number", "", "Roll number")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(svc *session.Service, _ *bfhl.Client) error {
				if err := svc.Logout(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
				return nil
			})
		},
	}
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(svc *session.Service, client *bfhl.Client) error {
				st, err := svc.Status(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !st.SignedIn {
					fmt.Fprintln(out, "Not signed in")
					return nil
				}
				fmt.Fprintln(out, renderKV("Session", statusRows(st, client.BaseURL())))
				return nil
			})
		},
	}
}

func statusRows(st domain.Status, remote string) [][]string {
	rows := [][]string{
		{"Service", remote},
		{"Email", dash(st.Email)},
		{"Token", dash(st.TokenHint)},
	}
	if st.Opaque {
		rows = append(rows, []string{"Claims", "opaque token"})
	}
	if st.Subject != "" {
		rows = append(rows, []string{"Subject", st.Subject})
	}
	if exp := ptime.Stamp(st.ExpiresAt); exp != "" {
		if st.Expired {
			exp += " (expired)"
		}
		rows = append(rows, []string{"Expires", exp})
	}
	if saved := ptime.Stamp(st.SavedAt); saved != "" {
		rows = append(rows, []string{"Saved", saved})
	}
	return rows
}

// readLine reads one line, trailing newline trimmed
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
