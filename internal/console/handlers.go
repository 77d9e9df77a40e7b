package console

import (
	"context"

	"groupadmin/server/internal/i18n"
	"groupadmin/server/internal/models"

	"github.com/sirupsen/logrus"
)

// HandleAdd creates a group and reports whether it succeeded
func (c *Console) HandleAdd(ctx context.Context, fields models.CreateGroupRequest) bool {
	hide := c.Notifier.Loading(i18n.T(i18n.AddLoading))

	_, err := c.Service.AddGroup(ctx, fields)
	hide()
	if err != nil {
		logrus.WithError(err).Debug("Add group failed")
		c.Notifier.Error(i18n.T(i18n.AddFailure))
		return false
	}

	c.Notifier.Success(i18n.T(i18n.AddSuccess))
	return true
}

// HandleUpdate saves the name and description of a group
func (c *Console) HandleUpdate(ctx context.Context, fields models.UpdateGroupRequest) bool {
	hide := c.Notifier.Loading(i18n.T(i18n.UpdateLoading))

	_, err := c.Service.UpdateGroup(ctx, models.UpdateGroupRequest{
		ID:          fields.ID,
		Name:        fields.Name,
		Description: fields.Description,
	})
	hide()
	if err != nil {
		logrus.WithError(err).WithField("group", fields.ID).Debug("Update group failed")
		c.Notifier.Error(i18n.T(i18n.UpdateFailure))
		return false
	}

	c.Notifier.Success(i18n.T(i18n.UpdateSuccess))
	return true
}

// HandleRemove deletes the selected rows. An empty selection is a no-op
// that reports success without calling the service.
func (c *Console) HandleRemove(ctx context.Context, selected []models.Group) bool {
	if len(selected) == 0 {
		return true
	}

	hide := c.Notifier.Loading(i18n.T(i18n.RemoveLoading))

	ids := make([]string, 0, len(selected))
	for _, row := range selected {
		ids = append(ids, row.ID)
	}

	err := c.Service.RemoveGroups(ctx, ids)
	hide()
	if err != nil {
		logrus.WithError(err).WithField("count", len(ids)).Debug("Remove groups failed")
		c.Notifier.Error(i18n.T(i18n.RemoveFailure))
		return false
	}

	c.Notifier.Success(i18n.T(i18n.RemoveSuccess))
	return true
}
