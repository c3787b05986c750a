package aggregator

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// Routes returns the /api subtree.
func Routes(svc *Service) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/health", healthHandler)
	router.Get("/all", getAllHandler(svc))
	return router
}

// StatusRoutes returns the root status route.
func StatusRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", statusHandler)
	return router
}

// GET: /api/all
func getAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := svc.GetAll()
		if err != nil {
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, svc.shaper(err))
			return
		}
		render.JSON(w, r, resp)
	}
}

// GET: /api/health
func healthHandler(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GET: /
func statusHandler(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status": "running",
		"endpoints": map[string]string{
			"all":    "/api/all",
			"health": "/api/health",
		},
	})
}
