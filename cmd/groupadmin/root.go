package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"groupadmin/server/internal/client"
	"groupadmin/server/internal/config"
	"groupadmin/server/internal/console"
	"groupadmin/server/internal/console/term"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errFailed is returned when the console has already told the operator
// that an action failed
var errFailed = errors.New("operation failed")

// Global configuration and API client, set before any command runs
var (
	cfg *config.Console
	api *client.Client
)

var rootCmd = &cobra.Command{
	Use:   "groupadmin",
	Short: "Administer chat groups",
	Long: `groupadmin manages the groups of the group admin service:
list and filter them, create and edit them, ban or mute them,
and browse them in an interactive table.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: preRunE,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is $XDG_CONFIG_HOME/groupadmin/config.yaml)")
	rootCmd.PersistentFlags().String("server", "", "Group admin API base URL (e.g., http://localhost:8080)")
	rootCmd.PersistentFlags().String("token", "", "Admin token, overrides the saved one")
	rootCmd.PersistentFlags().Bool("accessible", false, "Use plain line prompts instead of interactive forms")
}

func preRunE(cmd *cobra.Command, _ []string) error {
	logrus.SetLevel(logrus.WarnLevel)
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	v := config.NewConsoleViper(configFile)
	for _, name := range []string{"server", "token", "accessible"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind %s flag: %w", name, err)
		}
	}

	cfg, err = config.LoadConsole(v)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logrus.WithField("server", cfg.Server).Debug("Console configured")
	api = client.New(cfg.Server, cfg.Token)
	return nil
}

// newConsole wires the console to the API and the terminal. --yes skips
// confirmation prompts.
func newConsole(cmd *cobra.Command) *console.Console {
	var confirmer console.Confirmer = term.Confirm{Accessible: cfg.Accessible}
	if yes, err := cmd.Flags().GetBool("yes"); err == nil && yes {
		confirmer = console.Answer(true)
	}

	return console.New(api, term.NewNotifier(cmd.OutOrStdout()), confirmer)
}

// splitSorter turns a "field_order" token back into a sort event
func splitSorter(token string) (string, console.SortOrder, error) {
	i := strings.LastIndex(token, "_")
	if i <= 0 {
		return "", "", fmt.Errorf("invalid sort %q, expected field_ascend or field_descend", token)
	}

	order := console.SortOrder(token[i+1:])
	if order != console.Ascend && order != console.Descend {
		return "", "", fmt.Errorf("invalid sort order %q", order)
	}
	return token[:i], order, nil
}

// optionalBool parses a tri-state filter flag; empty means no filter
func optionalBool(s string) (*bool, error) {
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("invalid boolean %q: %w", s, err)
	}
	return &b, nil
}
