package app

import (
	"net/http"

	"gorm.io/gorm"

	"carpooling-go/internal/config"
	"carpooling-go/internal/db"
	carpooldomain "carpooling-go/internal/domain/carpool"
	proposaldomain "carpooling-go/internal/domain/proposal"
	userdomain "carpooling-go/internal/domain/user"
	carpoolrepo "carpooling-go/internal/repository/postgres/carpool"
	proposalrepo "carpooling-go/internal/repository/postgres/proposal"
	userrepo "carpooling-go/internal/repository/postgres/user"
	"carpooling-go/internal/transport/httpserver"
	"carpooling-go/internal/transport/httpserver/handler"
	"carpooling-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	userService := userdomain.NewService(userrepo.NewPostgres(dbConn))
	carpoolService := carpooldomain.NewService(carpoolrepo.NewPostgres(dbConn))
	proposalService := proposaldomain.NewService(proposalrepo.NewPostgres(dbConn))

	handlers, err := handler.New(userService, carpoolService, proposalService, log)
	if err != nil {
		return nil, err
	}

	router := httpserver.NewRouter(cfg, handlers)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
