package console

import (
	"context"
	"fmt"

	"groupadmin/server/internal/i18n"
	"groupadmin/server/internal/models"

	"github.com/sirupsen/logrus"
)

// Prompt is the text of a confirmation dialog
type Prompt struct {
	Title      string
	Content    string
	OKText     string
	CancelText string
}

// FlagPrompt builds the confirmation shown before setting flag to value
func FlagPrompt(flag models.Flag, value bool) Prompt {
	p := Prompt{
		OKText:     i18n.T(i18n.ConfirmOK),
		CancelText: i18n.T(i18n.ConfirmCancel),
	}

	switch {
	case flag == models.FlagDisabled && value:
		p.Title, p.Content = i18n.T(i18n.TitleDisabled), i18n.T(i18n.ContentBan)
	case flag == models.FlagDisabled:
		p.Title, p.Content = i18n.T(i18n.TitleDisabled), i18n.T(i18n.ContentUnban)
	case value:
		p.Title, p.Content = i18n.T(i18n.TitleMute), i18n.T(i18n.ContentMute)
	default:
		p.Title, p.Content = i18n.T(i18n.TitleMute), i18n.T(i18n.ContentUnmute)
	}

	return p
}

// RequestFlagChange confirms and then applies a moderation flag change.
// It returns false when the operator cancels or the change fails.
func (c *Console) RequestFlagChange(ctx context.Context, flag models.Flag, value bool, record models.Group, table TableHandle) bool {
	ok, err := c.Confirmer.Confirm(ctx, FlagPrompt(flag, value))
	if err != nil {
		logrus.WithError(err).Debug("Confirmation aborted")
		return false
	}
	if !ok {
		return false
	}

	return c.ApplyFlag(ctx, flag, value, record, table)
}

// ApplyFlag sets flag on record without prompting. On success the table, if
// any, is reloaded and its selection cleared.
func (c *Console) ApplyFlag(ctx context.Context, flag models.Flag, value bool, record models.Group, table TableHandle) bool {
	hide := c.Notifier.Loading(i18n.T(i18n.FlagProcessing))

	var err error
	switch flag {
	case models.FlagDisabled:
		err = c.Service.SetDisabled(ctx, record.ID, value)
	case models.FlagMute:
		err = c.Service.SetMute(ctx, record.ID, value)
	default:
		err = fmt.Errorf("unknown flag %q", flag)
	}

	hide()

	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"group": record.ID,
			"flag":  flag,
			"value": value,
		}).Debug("Flag change failed")
		c.Notifier.Error(i18n.T(i18n.FlagFailure))
		return false
	}

	c.Notifier.Success(i18n.T(i18n.FlagSuccess))
	if live(table) {
		if err := table.ReloadAndRest(ctx); err != nil {
			logrus.WithError(err).Warn("Table reload failed")
		}
	}

	return true
}

// live reports whether table refers to a usable handle
func live(table TableHandle) bool {
	if table == nil {
		return false
	}
	if t, ok := table.(*Table); ok && t == nil {
		return false
	}
	return true
}
