package distributionservice

import (
	"log/slog"

	httpadapter "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/adapters/http"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/adapters/memory"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/application/commands"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/application/queries"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Rules         ports.RuleRepository
	Users         ports.UserDirectory
	Notifications ports.NotificationRepository
	EventLogs     ports.EventLogRepository
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Metrics       ports.Metrics
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	commandUseCase := commands.UseCase{
		Rules:         deps.Rules,
		Users:         deps.Users,
		Notifications: deps.Notifications,
		EventLogs:     deps.EventLogs,
		Clock:         deps.Clock,
		IDGen:         deps.IDGen,
		Metrics:       deps.Metrics,
		Logger:        deps.Logger,
	}
	queryUseCase := queries.UseCase{
		Rules:         deps.Rules,
		Notifications: deps.Notifications,
		EventLogs:     deps.EventLogs,
		Logger:        deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Commands: commandUseCase,
			Queries:  queryUseCase,
			Logger:   deps.Logger,
		},
	}
}

func NewInMemoryModule(seed memory.Seed, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Rules:         store,
		Users:         store,
		Notifications: store,
		EventLogs:     store,
		Clock:         store,
		IDGen:         store,
		Logger:        logger,
	})
	module.Store = store
	return module
}
