// Package console implements the group administration page: the table
// controller, the add/update/remove handlers and the moderation flow.
//
// UI events are expressed as Actions handed to Console.Dispatch. Page and
// table state live in explicit stores (Page, Table) that front ends render.
package console

import (
	"context"

	"groupadmin/server/internal/models"
)

// Service is the data service the console drives
type Service interface {
	QueryGroups(ctx context.Context, q models.GroupQuery) (*models.GroupPage, error)
	AddGroup(ctx context.Context, req models.CreateGroupRequest) (*models.Group, error)
	UpdateGroup(ctx context.Context, req models.UpdateGroupRequest) (*models.Group, error)
	RemoveGroups(ctx context.Context, ids []string) error
	SetDisabled(ctx context.Context, id string, disabled bool) error
	SetMute(ctx context.Context, id string, mute bool) error
}

// Notifier shows transient feedback to the operator
type Notifier interface {
	// Loading shows a processing indicator until the returned func is called.
	Loading(text string) (hide func())
	Success(text string)
	Error(text string)
}

// Confirmer asks the operator to confirm a prompt
type Confirmer interface {
	Confirm(ctx context.Context, p Prompt) (bool, error)
}

// TableHandle is the imperative handle used to refresh the displayed rows
type TableHandle interface {
	Reload(ctx context.Context) error
	ReloadAndRest(ctx context.Context) error
}

// Console wires the page state to a data service and a front end
type Console struct {
	Service   Service
	Notifier  Notifier
	Confirmer Confirmer
	Table     *Table
	Page      *Page
}

// New creates a console with a fresh table and page state
func New(service Service, notifier Notifier, confirmer Confirmer) *Console {
	return &Console{
		Service:   service,
		Notifier:  notifier,
		Confirmer: confirmer,
		Table:     NewTable(service),
		Page:      &Page{},
	}
}
