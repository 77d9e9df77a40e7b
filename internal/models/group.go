package models

import "time"

// Flag names a boolean moderation attribute of a group
type Flag string

const (
	FlagDisabled Flag = "disabled"
	FlagMute     Flag = "mute"
)

// Valid reports whether f is one of the known moderation flags
func (f Flag) Valid() bool {
	return f == FlagDisabled || f == FlagMute
}

// Group represents a managed chat group
type Group struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"desc" db:"description"`
	Disabled    bool      `json:"disabled" db:"disabled"`
	Mute        bool      `json:"mute" db:"mute"`
	CallNo      int64     `json:"callNo" db:"call_no"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// FlagValue returns the current value of the given moderation flag
func (g *Group) FlagValue(flag Flag) bool {
	if flag == FlagDisabled {
		return g.Disabled
	}
	return g.Mute
}

// CreateGroupRequest represents create group request body
type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"desc,omitempty"`
	CallNo      int64  `json:"callNo,omitempty"`
}

// UpdateGroupRequest represents update group request body. Name and
// description are both written as given.
type UpdateGroupRequest struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"desc"`
}

// RemoveGroupsRequest represents batch delete request body
type RemoveGroupsRequest struct {
	Keys []string `json:"key"`
}

// DisabledRequest represents the ban toggle request body
type DisabledRequest struct {
	ID       string `json:"id,omitempty"`
	Disabled bool   `json:"disabled"`
}

// MuteRequest represents the mute toggle request body
type MuteRequest struct {
	ID   string `json:"id,omitempty"`
	Mute bool   `json:"mute"`
}

// Pagination describes the page returned by a list query
type Pagination struct {
	Current  int `json:"current"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// GroupPage is one page of groups plus its pagination
type GroupPage struct {
	Groups     []Group    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// GroupQuery holds the list parameters the console sends with every fetch
type GroupQuery struct {
	Current  int
	PageSize int
	Sorter   string
	Name     string
	Disabled *bool
	Mute     *bool
}
