package app

import (
	"profkom/internal/config"
	"profkom/internal/db"
	"profkom/internal/handlers"
	"profkom/internal/repository"
	"profkom/internal/routes"
	"profkom/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	if err := db.RunMigrations(cfg); err != nil {
		return nil, err
	}

	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	// Репозитории
	articleRepo := repository.NewArticleRepo(conn)
	promoRepo := repository.NewPromoRepo(conn)
	profileRepo := repository.NewProfileRepo(conn)

	// Сервисы
	articleSvc := services.NewArticleService(articleRepo)
	promoSvc := services.NewPromoService(promoRepo)
	authSvc := services.NewAuthService(profileRepo)
	adminSvc := services.NewAdminService(articleSvc, promoSvc)
	statsSvc := services.NewStatsService(articleRepo, promoRepo)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authSvc, cfg)
	articleHandler := handlers.NewArticleHandler(articleSvc)
	promoHandler := handlers.NewPromoHandler(promoSvc)
	adminHandler := handlers.NewAdminHandler(adminSvc)
	statsHandler := handlers.NewStatsHandler(statsSvc)
	feedHandler := handlers.NewFeedHandler(articleSvc, cfg)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg, authHandler, articleHandler, promoHandler, adminHandler, statsHandler, feedHandler)

	return router, nil
}
