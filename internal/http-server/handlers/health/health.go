package health

import (
	"log/slog"
	"net/http"

	"CatalogBuilder/internal/lib/api/response"

	"github.com/go-chi/render"
)

// Health is a liveness probe. No inputs, no side effects.
func Health(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.Ok())
	}
}
