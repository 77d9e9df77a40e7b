package term

import (
	"context"
	"errors"

	"groupadmin/server/internal/console"

	"github.com/charmbracelet/huh"
)

// Confirm asks for confirmation with an interactive huh form
type Confirm struct {
	// Accessible switches huh to plain line prompts, for screen readers and
	// dumb terminals.
	Accessible bool
}

func (c Confirm) Confirm(ctx context.Context, p console.Prompt) (bool, error) {
	var ok bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(p.Title).
				Description(p.Content).
				Affirmative(p.OKText).
				Negative(p.CancelText).
				Value(&ok),
		),
	).WithAccessible(c.Accessible)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}

	return ok, nil
}
