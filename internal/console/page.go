package console

import (
	"context"
	"sync"

	"groupadmin/server/internal/models"

	"github.com/sirupsen/logrus"
)

// Page holds the modal state of the group page. The three fields are
// independent; the update modal renders only while a record is present.
type Page struct {
	mu                 sync.RWMutex
	createModalVisible bool
	updateModalVisible bool
	stepFormValues     *models.Group
}

// OpenCreate shows the create modal
func (p *Page) OpenCreate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.createModalVisible = true
}

// CloseCreate hides the create modal
func (p *Page) CloseCreate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.createModalVisible = false
}

// CreateVisible reports whether the create modal is shown
func (p *Page) CreateVisible() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.createModalVisible
}

// OpenUpdate shows the update modal for record
func (p *Page) OpenUpdate(record models.Group) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updateModalVisible = true
	p.stepFormValues = &record
}

// CloseUpdate hides the update modal and forgets the edited record
func (p *Page) CloseUpdate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updateModalVisible = false
	p.stepFormValues = nil
}

// UpdateRecord returns the record being edited, if any
func (p *Page) UpdateRecord() (models.Group, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stepFormValues == nil {
		return models.Group{}, false
	}
	return *p.stepFormValues, true
}

// UpdateVisible reports whether the update modal is rendered
func (p *Page) UpdateVisible() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.updateModalVisible && p.stepFormValues != nil
}

// SubmitCreate submits the create form; on success the modal closes and the
// table reloads
func (c *Console) SubmitCreate(ctx context.Context, fields models.CreateGroupRequest) bool {
	if !c.HandleAdd(ctx, fields) {
		return false
	}

	c.Page.CloseCreate()
	c.reload(ctx)
	return true
}

// SubmitUpdate submits the update form for the edited record
func (c *Console) SubmitUpdate(ctx context.Context, fields models.UpdateGroupRequest) bool {
	if fields.ID == "" {
		if record, ok := c.Page.UpdateRecord(); ok {
			fields.ID = record.ID
		}
	}

	if !c.HandleUpdate(ctx, fields) {
		return false
	}

	c.Page.CloseUpdate()
	c.reload(ctx)
	return true
}

// RemoveSelected deletes the selected rows and reloads on success
func (c *Console) RemoveSelected(ctx context.Context) bool {
	selected := c.Table.SelectedRows()
	if len(selected) == 0 {
		return c.HandleRemove(ctx, selected)
	}

	if !c.HandleRemove(ctx, selected) {
		return false
	}

	c.reload(ctx)
	return true
}

func (c *Console) reload(ctx context.Context) {
	if !live(c.Table) {
		return
	}
	if err := c.Table.Reload(ctx); err != nil {
		logrus.WithError(err).Warn("Table reload failed")
	}
}
