package main

import (
	"context"
	"io"

	"groupadmin/server/internal/client"
	"groupadmin/server/internal/console/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse groups in an interactive table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runTUI(cmd, nil)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Interactive table that reloads when another console changes a group",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(browseCmd, watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	events := make(chan client.Event, 16)
	go func() {
		defer close(events)
		err := api.Subscribe(ctx, func(ev client.Event) {
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		})
		if err != nil && ctx.Err() == nil {
			logrus.WithError(err).Warn("Event stream closed")
		}
	}()

	cmd.SetContext(ctx)
	return runTUI(cmd, events)
}

func runTUI(cmd *cobra.Command, events <-chan client.Event) error {
	// log lines would tear the alternate screen
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.SetOutput(io.Discard)
	}

	m := tui.NewModel(cmd.Context(), api).WithEvents(events)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
	return err
}
