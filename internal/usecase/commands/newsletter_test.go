//go:build unit

package commands_test

import (
	"context"
	"testing"

	"luxe-escape/internal/pkg/clock"
	"luxe-escape/internal/pkg/config"
	"luxe-escape/internal/pkg/errs"
	"luxe-escape/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsletterSubscribe(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewTestConfig()
	sleeper := clock.NewMockSleeper()
	newsletter := commands.NewNewsletterCommands(sleeper, cfg)

	t.Run("valid address", func(t *testing.T) {
		err := newsletter.Subscribe(ctx, "guest@example.com")
		require.NoError(t, err)
		assert.Contains(t, sleeper.Slept, cfg.Delays.Search)
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		require.NoError(t, newsletter.Subscribe(ctx, "  guest@example.com  "))
	})

	t.Run("invalid addresses", func(t *testing.T) {
		for _, email := range []string{"", "guest", "guest@", "@example.com"} {
			require.True(t, errs.Is(newsletter.Subscribe(ctx, email), commands.ErrInvalidEmail), "email %q", email)
		}
	})
}
