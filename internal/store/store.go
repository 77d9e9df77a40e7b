// Package store persists group records behind the GroupStore interface.
package store

import (
	"context"
	"errors"

	"groupadmin/server/internal/models"
)

var (
	ErrNotFound      = errors.New("group not found")
	ErrInvalidSorter = errors.New("invalid sorter")
	ErrNameRequired  = errors.New("group name is required")
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Query selects one page of groups
type Query struct {
	Current  int
	PageSize int
	Sort     Sort
	Name     string
	Disabled *bool
	Mute     *bool
}

// Normalize clamps paging values into their valid ranges. A missing page
// size falls back to DefaultPageSize.
func (q *Query) Normalize() {
	if q.Current < 1 {
		q.Current = 1
	}
	switch {
	case q.PageSize < 1:
		q.PageSize = DefaultPageSize
	case q.PageSize > MaxPageSize:
		q.PageSize = MaxPageSize
	}
}

// Offset returns the number of rows to skip for the current page
func (q *Query) Offset() int {
	return (q.Current - 1) * q.PageSize
}

// GroupStore is implemented by PostgresStore and MemoryStore
type GroupStore interface {
	List(ctx context.Context, q Query) (*models.GroupPage, error)
	Get(ctx context.Context, id string) (*models.Group, error)
	Create(ctx context.Context, req models.CreateGroupRequest) (*models.Group, error)
	Update(ctx context.Context, id string, req models.UpdateGroupRequest) (*models.Group, error)
	Remove(ctx context.Context, ids []string) (int, error)
	SetFlag(ctx context.Context, id string, flag models.Flag, value bool) (*models.Group, error)
}
