package main

import (
	"fmt"

	"groupadmin/server/internal/models"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(
		flagCommand("ban", "Ban a group", models.FlagDisabled, true),
		flagCommand("unban", "Lift the ban on a group", models.FlagDisabled, false),
		flagCommand("mute", "Mute a group", models.FlagMute, true),
		flagCommand("unmute", "Unmute a group", models.FlagMute, false),
	)
}

// flagCommand builds a command that sets flag to value on one group after
// asking for confirmation
func flagCommand(use, short string, flag models.Flag, value bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := api.GetGroup(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load group %s: %w", args[0], err)
			}

			if !newConsole(cmd).RequestFlagChange(cmd.Context(), flag, value, *record, nil) {
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
