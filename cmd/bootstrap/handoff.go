package bootstrap

import (
	"luxe-escape/internal/infra/handoff"
	"luxe-escape/internal/pkg/config"
	"luxe-escape/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandoffModule = fx.Module("handoff",
	fx.Provide(
		fx.Annotate(
			NewDraftSigner,
			fx.As(new(commands.DraftSigner)),
		),
	),
)

func NewDraftSigner(cfg config.Config) *handoff.Signer {
	return handoff.NewSigner(cfg.Handoff)
}
