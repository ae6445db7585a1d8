package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"medinfo-be/internal/panel"

	"github.com/spf13/cobra"
)

var password string

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Sign in and remember the username",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAuth(cmd, panel.ModeLogin, args[0])
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create an account and sign in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAuth(cmd, panel.ModeRegister, args[0])
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.holder.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		session := a.holder.Current()
		if !session.Active() {
			return errNotSignedIn
		}
		fmt.Fprintln(cmd.OutOrStdout(), session.Username)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	}
}

func runAuth(cmd *cobra.Command, mode panel.Mode, username string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	pw := password
	if pw == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Password: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read password: %w", err)
		}
		pw = strings.TrimRight(line, "\r\n")
	}

	auth := panel.NewAuthController(a.api, a.holder, a.logger)
	auth.SetMode(mode)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := auth.Submit(ctx, username, pw); err != nil {
		return fmt.Errorf("%s failed: %s", mode, auth.State().Err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s.\n", a.holder.Current().Username)
	return nil
}
