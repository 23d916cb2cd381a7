package commands

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"luxe-escape/internal/pkg/clock"
	"luxe-escape/internal/pkg/config"
	"luxe-escape/internal/pkg/errs"
)

var ErrInvalidEmail = errs.New("invalid email address")

// NewsletterCommands backs the footer subscribe box. Like every other
// transition here it is simulated: a short delay, then success.
type NewsletterCommands interface {
	Subscribe(ctx context.Context, email string) error
}

type newsletterCommandsImpl struct {
	sleeper clock.Sleeper
	delays  config.DelaysConfig
}

func NewNewsletterCommands(sleeper clock.Sleeper, cfg config.Config) NewsletterCommands {
	return &newsletterCommandsImpl{
		sleeper: sleeper,
		delays:  cfg.Delays,
	}
}

func (n *newsletterCommandsImpl) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.Mark(err, ErrInvalidEmail)
	}

	n.sleeper.Sleep(ctx, n.delays.Search)

	slog.Info("newsletter subscription recorded", "email", email)
	return nil
}
