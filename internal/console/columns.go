package console

import (
	"time"

	"groupadmin/server/internal/i18n"
	"groupadmin/server/internal/models"
)

// Status is the visual status of an enum value
type Status string

const (
	StatusSuccess Status = "Success"
	StatusError   Status = "Error"
)

// ValueType tells front ends how to render and edit a column
type ValueType string

const (
	ValueText     ValueType = "text"
	ValueTextarea ValueType = "textarea"
	ValueDateTime ValueType = "dateTime"
	ValueOption   ValueType = "option"
)

// EnumEntry is the label and status shown for one enum value
type EnumEntry struct {
	Text   string
	Status Status
}

// Column describes one column of the group table
type Column struct {
	Title      string
	DataIndex  string
	ValueType  ValueType
	Sortable   bool
	Filterable bool
	HideInForm bool
	// Required holds the validation message for required form fields.
	Required  string
	ValueEnum map[bool]EnumEntry
}

const DateTimeLayout = "2006-01-02 15:04:05"

// Columns returns the column definitions of the group table
func Columns() []Column {
	return []Column{
		{
			Title:     i18n.T(i18n.ColumnName),
			DataIndex: "name",
			ValueType: ValueText,
			Required:  i18n.T(i18n.NameRequired),
		},
		{
			Title:     i18n.T(i18n.ColumnDescription),
			DataIndex: "desc",
			ValueType: ValueTextarea,
		},
		{
			Title:      i18n.T(i18n.ColumnDisabled),
			DataIndex:  string(models.FlagDisabled),
			ValueType:  ValueText,
			Filterable: true,
			HideInForm: true,
			ValueEnum: map[bool]EnumEntry{
				false: {Text: i18n.T(i18n.DisabledFalse), Status: StatusSuccess},
				true:  {Text: i18n.T(i18n.DisabledTrue), Status: StatusError},
			},
		},
		{
			Title:      i18n.T(i18n.ColumnMute),
			DataIndex:  string(models.FlagMute),
			ValueType:  ValueText,
			Filterable: true,
			HideInForm: true,
			ValueEnum: map[bool]EnumEntry{
				false: {Text: i18n.T(i18n.MuteFalse), Status: StatusSuccess},
				true:  {Text: i18n.T(i18n.MuteTrue), Status: StatusError},
			},
		},
		{
			Title:      i18n.T(i18n.ColumnUpdatedAt),
			DataIndex:  "updatedAt",
			ValueType:  ValueDateTime,
			Sortable:   true,
			HideInForm: true,
		},
		{
			Title:     i18n.T(i18n.ColumnOption),
			DataIndex: "option",
			ValueType: ValueOption,
		},
	}
}

// Render returns the display text of this column for g, and the enum status
// when the column is an enum
func (c Column) Render(g models.Group) (string, Status) {
	switch c.DataIndex {
	case "name":
		return g.Name, ""
	case "desc":
		return g.Description, ""
	case string(models.FlagDisabled):
		e := c.ValueEnum[g.Disabled]
		return e.Text, e.Status
	case string(models.FlagMute):
		e := c.ValueEnum[g.Mute]
		return e.Text, e.Status
	case "updatedAt":
		if g.UpdatedAt.IsZero() {
			return "-", ""
		}
		return g.UpdatedAt.In(time.Local).Format(DateTimeLayout), ""
	case "option":
		actions := RowActions(g)
		return actions[0].Label + " | " + actions[1].Label, ""
	}
	return "", ""
}

// RowAction is one link of the option column
type RowAction struct {
	Label string
	Flag  models.Flag
	Value bool
}

// RowActions returns the ban and mute actions offered for g. Each link
// requests the opposite of the current flag value.
func RowActions(g models.Group) [2]RowAction {
	return [2]RowAction{
		rowAction(&g, models.FlagDisabled, i18n.ActionBan, i18n.ActionUnban),
		rowAction(&g, models.FlagMute, i18n.ActionMute, i18n.ActionUnmute),
	}
}

func rowAction(g *models.Group, flag models.Flag, set, unset string) RowAction {
	if g.FlagValue(flag) {
		return RowAction{Label: i18n.T(unset), Flag: flag, Value: false}
	}
	return RowAction{Label: i18n.T(set), Flag: flag, Value: true}
}

// FormColumns returns the columns shown in the create form
func FormColumns() []Column {
	var cols []Column
	for _, c := range Columns() {
		if !c.HideInForm && c.ValueType != ValueOption {
			cols = append(cols, c)
		}
	}
	return cols
}
