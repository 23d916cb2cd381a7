package components

import (
	"luxe-escape/internal/infra/catalog"
	"luxe-escape/internal/infra/sessions"
	"luxe-escape/internal/pkg/config"
	"luxe-escape/internal/usecase/commands"
	"luxe-escape/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			catalog.NewCatalog,
			fx.As(new(commands.CatalogRepository)),
			fx.As(new(queries.RoomQueries)),
			fx.As(new(queries.ContentQueries)),
		),
		fx.Annotate(
			NewFlowStore,
			fx.As(new(commands.FlowRepository)),
			fx.As(new(queries.FlowReader)),
		),
		fx.Annotate(
			NewFormStore,
			fx.As(new(commands.FormRepository)),
			fx.As(new(queries.FormReader)),
		),
	),
)

func NewFlowStore(cfg config.Config) *sessions.FlowStore {
	return sessions.NewFlowStore(cfg.Session)
}

func NewFormStore(cfg config.Config) *sessions.FormStore {
	return sessions.NewFormStore(cfg.Session)
}
