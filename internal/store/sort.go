package store

import (
	"fmt"
	"strings"
)

// SortOrder is the direction half of a sorter token
type SortOrder string

const (
	Ascend  SortOrder = "ascend"
	Descend SortOrder = "descend"
)

// sortColumns maps sortable json field names to table columns
var sortColumns = map[string]string{
	"updatedAt": "updated_at",
	"createdAt": "created_at",
	"name":      "name",
	"callNo":    "call_no",
}

// Sort is a parsed sorter token such as "updatedAt_descend"
type Sort struct {
	Field string
	Order SortOrder
}

// IsZero reports whether no sort was requested
func (s Sort) IsZero() bool {
	return s.Field == ""
}

// String renders the sort back into its token form
func (s Sort) String() string {
	if s.IsZero() {
		return ""
	}
	return s.Field + "_" + string(s.Order)
}

// Column returns the table column for the sort field
func (s Sort) Column() string {
	return sortColumns[s.Field]
}

// ParseSorter parses a "field_order" token. An empty token yields the zero Sort.
func ParseSorter(token string) (Sort, error) {
	if token == "" {
		return Sort{}, nil
	}

	idx := strings.LastIndex(token, "_")
	if idx <= 0 {
		return Sort{}, fmt.Errorf("%w: %q", ErrInvalidSorter, token)
	}

	field, order := token[:idx], SortOrder(token[idx+1:])
	if _, ok := sortColumns[field]; !ok {
		return Sort{}, fmt.Errorf("%w: unknown field %q", ErrInvalidSorter, field)
	}
	if order != Ascend && order != Descend {
		return Sort{}, fmt.Errorf("%w: unknown order %q", ErrInvalidSorter, order)
	}

	return Sort{Field: field, Order: order}, nil
}
