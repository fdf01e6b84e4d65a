package documentservice

import (
	"log/slog"

	distributioncommands "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/application/commands"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/adapters/distribution"
	httpadapter "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/adapters/http"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/adapters/memory"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/application/commands"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/application/queries"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Documents   ports.DocumentRepository
	Distributor ports.Distributor
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	commandUseCase := commands.UseCase{
		Documents:   deps.Documents,
		Distributor: deps.Distributor,
		Clock:       deps.Clock,
		IDGen:       deps.IDGen,
		Logger:      deps.Logger,
	}
	queryUseCase := queries.UseCase{
		Documents: deps.Documents,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Commands: commandUseCase,
			Queries:  queryUseCase,
			Logger:   deps.Logger,
		},
	}
}

// NewInMemoryModule wires the module against the in-memory store, delegating
// fan-out to the given distribution command use case.
func NewInMemoryModule(
	seed memory.Seed,
	distributor distributioncommands.UseCase,
	logger *slog.Logger,
) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Documents:   store,
		Distributor: distribution.Notifier{Commands: distributor},
		Clock:       store,
		IDGen:       store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
