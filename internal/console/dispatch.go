package console

import (
	"context"

	"groupadmin/server/internal/i18n"
	"groupadmin/server/internal/models"

	"github.com/sirupsen/logrus"
)

// Action is a UI event handed to Console.Dispatch
type Action interface {
	action()
}

type (
	// OpenCreate shows the create modal.
	OpenCreate struct{}
	// CloseCreate hides the create modal.
	CloseCreate struct{}
	// SubmitCreate submits the create form.
	SubmitCreate struct{ Fields models.CreateGroupRequest }
	// OpenUpdate shows the update modal for Record.
	OpenUpdate struct{ Record models.Group }
	// CloseUpdate cancels the update modal.
	CloseUpdate struct{}
	// SubmitUpdate submits the update form.
	SubmitUpdate struct{ Fields models.UpdateGroupRequest }
	// Select toggles the selection of one row.
	Select struct {
		ID       string
		Selected bool
	}
	// RemoveSelected runs the batch delete menu entry.
	RemoveSelected struct{}
	// BatchApprove runs the batch approval menu entry.
	BatchApprove struct{}
	// ToggleFlag runs the moderation flow for one row.
	ToggleFlag struct {
		Flag   models.Flag
		Value  bool
		Record models.Group
	}
	// Sort records a column sort event and refetches.
	Sort struct {
		Field string
		Order SortOrder
	}
	// Filter replaces the filters and refetches.
	Filter struct{ Filters Filters }
	// Paginate moves to another page and refetches.
	Paginate struct{ Current, PageSize int }
	// Reload refetches the current page.
	Reload struct{}
)

func (OpenCreate) action()     {}
func (CloseCreate) action()    {}
func (SubmitCreate) action()   {}
func (OpenUpdate) action()     {}
func (CloseUpdate) action()    {}
func (SubmitUpdate) action()   {}
func (Select) action()         {}
func (RemoveSelected) action() {}
func (BatchApprove) action()   {}
func (ToggleFlag) action()     {}
func (Sort) action()           {}
func (Filter) action()         {}
func (Paginate) action()       {}
func (Reload) action()         {}

// Dispatch applies an action to the page and reports whether it succeeded
func (c *Console) Dispatch(ctx context.Context, a Action) bool {
	switch a := a.(type) {
	case OpenCreate:
		c.Page.OpenCreate()
	case CloseCreate:
		c.Page.CloseCreate()
	case SubmitCreate:
		return c.SubmitCreate(ctx, a.Fields)
	case OpenUpdate:
		c.Page.OpenUpdate(a.Record)
	case CloseUpdate:
		c.Page.CloseUpdate()
	case SubmitUpdate:
		return c.SubmitUpdate(ctx, a.Fields)
	case Select:
		c.Table.SetSelected(a.ID, a.Selected)
	case RemoveSelected:
		return c.RemoveSelected(ctx)
	case BatchApprove:
		c.Notifier.Error(i18n.T(i18n.ApproveUnhandled))
		return false
	case ToggleFlag:
		return c.RequestFlagChange(ctx, a.Flag, a.Value, a.Record, c.Table)
	case Sort:
		c.Table.OnSortChange(a.Field, a.Order)
		return c.refetch(ctx)
	case Filter:
		c.Table.SetFilters(a.Filters)
		return c.refetch(ctx)
	case Paginate:
		c.Table.SetPage(a.Current, a.PageSize)
		return c.refetch(ctx)
	case Reload:
		return c.refetch(ctx)
	default:
		logrus.WithField("action", a).Warn("Unknown console action")
		return false
	}
	return true
}

func (c *Console) refetch(ctx context.Context) bool {
	if err := c.Table.Reload(ctx); err != nil {
		logrus.WithError(err).Warn("Table reload failed")
		return false
	}
	return true
}
