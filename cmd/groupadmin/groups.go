package main

import (
	"errors"
	"fmt"
	"strings"

	"groupadmin/server/internal/console"
	"groupadmin/server/internal/console/term"
	"groupadmin/server/internal/models"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List groups",
	Long: `List one page of groups as a table.

Example:
  groupadmin list --sort updatedAt_descend --mute true --page-size 50`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a group",
	Long: `Create a group. Without --name an interactive form asks for
the name and description.`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit the name and description of a group",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

var removeCmd = &cobra.Command{
	Use:   "remove <id>...",
	Short: "Delete groups",
	Args:  cobra.ArbitraryArgs,
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(listCmd, addCmd, updateCmd, removeCmd)

	listCmd.Flags().Int("page", 1, "Page number")
	listCmd.Flags().Int("page-size", 20, "Rows per page")
	listCmd.Flags().String("sort", "", "Sort token, e.g. updatedAt_ascend")
	listCmd.Flags().String("name", "", "Only groups whose name contains this text")
	listCmd.Flags().String("disabled", "", "Filter on the ban flag (true/false)")
	listCmd.Flags().String("mute", "", "Filter on the mute flag (true/false)")

	addCmd.Flags().String("name", "", "Group name")
	addCmd.Flags().String("desc", "", "Group description")
	addCmd.Flags().Int64("call-no", 0, "Initial service call counter")

	updateCmd.Flags().String("name", "", "New group name")
	updateCmd.Flags().String("desc", "", "New group description")
}

func runList(cmd *cobra.Command, _ []string) error {
	c := newConsole(cmd)
	flags := cmd.Flags()

	name, _ := flags.GetString("name")
	disabledFlag, _ := flags.GetString("disabled")
	muteFlag, _ := flags.GetString("mute")

	disabled, err := optionalBool(disabledFlag)
	if err != nil {
		return err
	}
	mute, err := optionalBool(muteFlag)
	if err != nil {
		return err
	}
	c.Table.SetFilters(console.Filters{Name: name, Disabled: disabled, Mute: mute})

	page, _ := flags.GetInt("page")
	pageSize, _ := flags.GetInt("page-size")
	c.Table.SetPage(page, pageSize)

	if sort, _ := flags.GetString("sort"); sort != "" {
		field, order, err := splitSorter(sort)
		if err != nil {
			return err
		}
		c.Table.OnSortChange(field, order)
	}

	if err := c.Table.Reload(cmd.Context()); err != nil {
		return fmt.Errorf("failed to list groups: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), term.RenderTable(c.Table))
	return nil
}

func runAdd(cmd *cobra.Command, _ []string) error {
	c := newConsole(cmd)

	name, _ := cmd.Flags().GetString("name")
	desc, _ := cmd.Flags().GetString("desc")
	callNo, _ := cmd.Flags().GetInt64("call-no")

	c.Dispatch(cmd.Context(), console.OpenCreate{})
	if name == "" {
		if err := groupForm(&name, &desc); err != nil {
			return err
		}
	}

	ok := c.Dispatch(cmd.Context(), console.SubmitCreate{Fields: models.CreateGroupRequest{
		Name:        strings.TrimSpace(name),
		Description: desc,
		CallNo:      callNo,
	}})
	if !ok {
		return errFailed
	}

	fmt.Fprintln(cmd.OutOrStdout(), term.RenderTable(c.Table))
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	record, err := api.GetGroup(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to load group %s: %w", args[0], err)
	}

	c := newConsole(cmd)
	c.Dispatch(cmd.Context(), console.OpenUpdate{Record: *record})

	name, desc := record.Name, record.Description
	nameSet, descSet := cmd.Flags().Changed("name"), cmd.Flags().Changed("desc")
	if nameSet {
		name, _ = cmd.Flags().GetString("name")
	}
	if descSet {
		desc, _ = cmd.Flags().GetString("desc")
	}
	if !nameSet && !descSet {
		if err := groupForm(&name, &desc); err != nil {
			c.Dispatch(cmd.Context(), console.CloseUpdate{})
			return err
		}
	}

	ok := c.Dispatch(cmd.Context(), console.SubmitUpdate{Fields: models.UpdateGroupRequest{
		Name:        strings.TrimSpace(name),
		Description: desc,
	}})
	if !ok {
		return errFailed
	}

	fmt.Fprintln(cmd.OutOrStdout(), term.RenderTable(c.Table))
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	selected := make([]models.Group, 0, len(args))
	for _, id := range args {
		selected = append(selected, models.Group{ID: id})
	}

	if !newConsole(cmd).HandleRemove(cmd.Context(), selected) {
		return errFailed
	}
	return nil
}

// groupForm asks for the create form columns, pre-filled with the current
// values
func groupForm(name, desc *string) error {
	var fields []huh.Field
	for _, col := range console.FormColumns() {
		switch col.ValueType {
		case console.ValueTextarea:
			fields = append(fields, huh.NewText().Title(col.Title).Value(desc))
		default:
			input := huh.NewInput().Title(col.Title).Value(name)
			if col.Required != "" {
				msg := col.Required
				input = input.Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New(msg)
					}
					return nil
				})
			}
			fields = append(fields, input)
		}
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithAccessible(cfg.Accessible).Run()
}
