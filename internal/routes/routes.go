package routes

import (
	"profkom/internal/config"
	"profkom/internal/handlers"
	"profkom/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	articleHandler *handlers.ArticleHandler,
	promoHandler *handlers.PromoHandler,
	adminHandler *handlers.AdminHandler,
	statsHandler *handlers.StatsHandler,
	feedHandler *handlers.FeedHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)

	router.HandleFunc("/feed.xml", feedHandler.Articles).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/refresh", authHandler.Refresh).Methods("POST")

	api.HandleFunc("/articles", articleHandler.GetAll).Methods("GET")
	api.HandleFunc("/articles/{id}", articleHandler.GetByID).Methods("GET")

	api.HandleFunc("/promos", promoHandler.GetAll).Methods("GET")
	api.HandleFunc("/promos/{id}", promoHandler.GetByID).Methods("GET")

	api.HandleFunc("/stats", statsHandler.Portal).Methods("GET")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))

	protected.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	protected.HandleFunc("/profile", authHandler.Profile).Methods("GET")
	protected.HandleFunc("/profile", authHandler.UpdateProfile).Methods("PATCH")
	protected.HandleFunc("/promos/{id}/copy", promoHandler.CopyCode).Methods("POST")

	// --- Только админ ---
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminGate)
	admin.HandleFunc("/overview", adminHandler.Overview).Methods("GET")
	admin.HandleFunc("/articles", adminHandler.CreateArticle).Methods("POST")
	admin.HandleFunc("/articles/{id}", adminHandler.UpdateArticle).Methods("PATCH")
	admin.HandleFunc("/articles/{id}", adminHandler.DeleteArticle).Methods("DELETE")
	admin.HandleFunc("/promos", adminHandler.CreatePromo).Methods("POST")
	admin.HandleFunc("/promos/{id}", adminHandler.UpdatePromo).Methods("PATCH")
	admin.HandleFunc("/promos/{id}", adminHandler.DeletePromo).Methods("DELETE")
}
