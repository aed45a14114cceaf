package generate

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"CatalogBuilder/entity"
	"CatalogBuilder/impl/core"
	"CatalogBuilder/internal/lib/api/response"
	"CatalogBuilder/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Generate handles POST /generate: validate the payload, run the content
// pipeline, map every upstream failure to a bad-gateway detail.
func Generate(log *slog.Logger, handler Core) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.generate")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("content generation not available")
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("Content generation not available"))
			return
		}

		var req entity.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}
		if req.Keywords == nil {
			req.Keywords = []string{}
		}

		if err := validate.Struct(req); err != nil {
			var validateErrs validator.ValidationErrors
			if errors.As(err, &validateErrs) {
				logger.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErrs))
				return
			}
			logger.Error("request validation", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		logger = logger.With(
			slog.String("product", req.ProductName),
			slog.String("country", req.Country),
			slog.String("language", req.Language),
		)

		resp, err := handler.GenerateContent(r.Context(), req)
		if err != nil {
			var coreErr *core.Error
			if errors.As(err, &coreErr) {
				logger.Error("generate content", slog.Int("kind", int(coreErr.Kind)), sl.Err(err))
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error(coreErr.Detail))
				return
			}
			logger.Error("generate content", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		logger.Debug("content generated")

		render.JSON(w, r, resp)
	}
}
