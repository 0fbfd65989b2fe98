package router

import (
	"github.com/tugaskita/tugaskita/internal/application"
	"github.com/tugaskita/tugaskita/internal/container"
	pginfra "github.com/tugaskita/tugaskita/internal/infrastructure/postgres"
	handlers "github.com/tugaskita/tugaskita/internal/interface/http"
	"github.com/tugaskita/tugaskita/internal/router/modules"
)

// InitModules wires repositories, services, and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	recorder := application.NewActivityRecorder(
		pginfra.NewActivityRepository(pool),
		container.GetRabbitPub(),
		logger,
	)
	authSvc := application.NewAuthService(
		pginfra.NewUserRepository(pool),
		container.GetJWT(),
		recorder,
		logger,
	)
	taskSvc := application.NewTaskService(
		pginfra.NewTaskRepository(pool),
		recorder,
		logger,
	)

	authHandler := handlers.NewAuthHandler(authSvc, logger)
	userHandler := handlers.NewUserHandler(recorder, logger)
	taskHandler := handlers.NewTaskHandler(taskSvc, logger)

	r.Add(modules.NewHomeModule())
	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewUserModule(userHandler, authSvc))
	r.Add(modules.NewTaskModule(taskHandler, authSvc))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
