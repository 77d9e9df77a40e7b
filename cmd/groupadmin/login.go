package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as the group administrator",
	Long: `Exchange the administrator credentials for a token and save it
to the config file, so later commands are authenticated.

Example:
  groupadmin login --server http://localhost:8080 --username admin`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringP("username", "u", "", "Administrator username")
	loginCmd.Flags().StringP("password", "p", "", "Administrator password (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, _ []string) error {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	var fields []huh.Field
	if username == "" {
		fields = append(fields, huh.NewInput().Title("Username").Value(&username))
	}
	if password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&password))
	}
	if len(fields) > 0 {
		if err := huh.NewForm(huh.NewGroup(fields...)).WithAccessible(cfg.Accessible).Run(); err != nil {
			return err
		}
	}

	token, err := api.Login(cmd.Context(), username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := cfg.SaveToken(token); err != nil {
		return err
	}

	path, _ := cfg.Path()
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s, token saved to %s\n", username, path)
	return nil
}
