package server

import (
	"fmt"
	"log"
	"net/http"

	"canvascal/internal/aggregator"
	"canvascal/internal/config"
	mw "canvascal/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func Routes(svc *aggregator.Service) *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Logger, // Log API Request Calls
		mw.RequestID(),
	)

	router.Route("/", func(r chi.Router) {
		r.Mount("/", aggregator.StatusRoutes())
	})

	router.Route("/api", func(r chi.Router) {
		r.Mount("/", aggregator.Routes(svc))
	})

	return router
}

func Start(cfg *config.ServerConfig, svc *aggregator.Service) {
	if cfg == nil {
		log.Panic("❌ Missing or invalid configuration!")
	}

	router := Routes(svc)
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	})

	handler := c.Handler(router)
	log.Printf("Server is listening on %s:%v\n", cfg.Host, cfg.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf("%s:%v", cfg.Host, cfg.Port), handler))
}
