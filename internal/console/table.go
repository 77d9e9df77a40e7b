package console

import (
	"context"
	"sync"

	"groupadmin/server/internal/i18n"
	"groupadmin/server/internal/models"
)

// SortOrder is the direction reported by a column sort event
type SortOrder string

const (
	Ascend  SortOrder = "ascend"
	Descend SortOrder = "descend"
)

const defaultPageSize = 20

// Filters narrows the rows fetched by the table
type Filters struct {
	Name     string
	Disabled *bool
	Mute     *bool
}

// Selection summarizes the selected rows
type Selection struct {
	Count       int
	CallNoTotal int64
}

// Table owns the sort token, filters, paging, rows and row selection of the
// group table. Reloads may complete off the UI goroutine, so state is guarded.
type Table struct {
	service Service

	mu       sync.RWMutex
	sorter   string
	filters  Filters
	current  int
	pageSize int
	rows     []models.Group
	total    int
	selected []models.Group
}

// NewTable creates a table that fetches from service
func NewTable(service Service) *Table {
	return &Table{
		service:  service,
		current:  1,
		pageSize: defaultPageSize,
	}
}

// OnSortChange records a column sort event as the "field_order" sort token.
// An event without a field is ignored; one without an order clears the token.
func (t *Table) OnSortChange(field string, order SortOrder) {
	if field == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if order == "" {
		t.sorter = ""
		return
	}
	t.sorter = field + "_" + string(order)
}

// Sorter returns the current sort token
func (t *Table) Sorter() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sorter
}

// SetFilters replaces the filters and returns to the first page
func (t *Table) SetFilters(f Filters) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.filters = f
	t.current = 1
}

// SetPage selects the page fetched by the next reload
func (t *Table) SetPage(current, pageSize int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if current >= 1 {
		t.current = current
	}
	if pageSize >= 1 {
		t.pageSize = pageSize
	}
}

// Params returns the query the next fetch will send
func (t *Table) Params() models.GroupQuery {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.paramsLocked()
}

func (t *Table) paramsLocked() models.GroupQuery {
	return models.GroupQuery{
		Current:  t.current,
		PageSize: t.pageSize,
		Sorter:   t.sorter,
		Name:     t.filters.Name,
		Disabled: t.filters.Disabled,
		Mute:     t.filters.Mute,
	}
}

// Reload refetches the current page keeping filters, sort and selection
func (t *Table) Reload(ctx context.Context) error {
	page, err := t.service.QueryGroups(ctx, t.Params())
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.apply(page)
	t.pruneSelection()
	return nil
}

// ReloadAndRest fetches the first page and clears the selection. A failed
// fetch leaves page and selection as they were.
func (t *Table) ReloadAndRest(ctx context.Context) error {
	params := t.Params()
	params.Current = 1

	page, err := t.service.QueryGroups(ctx, params)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = 1
	t.apply(page)
	t.selected = nil
	return nil
}

func (t *Table) apply(page *models.GroupPage) {
	t.rows = page.Groups
	t.total = page.Pagination.Total
	if page.Pagination.Current > 0 {
		t.current = page.Pagination.Current
	}
	if page.Pagination.PageSize > 0 {
		t.pageSize = page.Pagination.PageSize
	}
}

// pruneSelection drops selected rows that are no longer displayed and
// refreshes the ones that are
func (t *Table) pruneSelection() {
	kept := t.selected[:0]
	for _, sel := range t.selected {
		for _, row := range t.rows {
			if row.ID == sel.ID {
				kept = append(kept, row)
				break
			}
		}
	}
	t.selected = kept
}

// Rows returns a copy of the displayed rows
func (t *Table) Rows() []models.Group {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]models.Group, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Pagination returns the paging state of the displayed rows
func (t *Table) Pagination() models.Pagination {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return models.Pagination{
		Current:  t.current,
		PageSize: t.pageSize,
		Total:    t.total,
	}
}

// SetSelected selects or deselects a displayed row by id
func (t *Table) SetSelected(id string, selected bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, sel := range t.selected {
		if sel.ID == id {
			if !selected {
				t.selected = append(t.selected[:i], t.selected[i+1:]...)
			}
			return
		}
	}

	if !selected {
		return
	}
	for _, row := range t.rows {
		if row.ID == id {
			t.selected = append(t.selected, row)
			return
		}
	}
}

// IsSelected reports whether the row with id is selected
func (t *Table) IsSelected(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, sel := range t.selected {
		if sel.ID == id {
			return true
		}
	}
	return false
}

// SelectedRows returns the selected rows in selection order
func (t *Table) SelectedRows() []models.Group {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]models.Group, len(t.selected))
	copy(rows, t.selected)
	return rows
}

// Summary returns the selection count and the sum of their usage counters
func (t *Table) Summary() Selection {
	return Summarize(t.SelectedRows())
}

// Summarize aggregates a set of rows
func Summarize(rows []models.Group) Selection {
	s := Selection{Count: len(rows)}
	for _, row := range rows {
		s.CallNoTotal += row.CallNo
	}
	return s
}

// Text renders the selection alert line
func (s Selection) Text() string {
	return i18n.T(i18n.SelectionInfo, s.Count, s.CallNoTotal)
}
