package deleteSpot

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"spotBooker/internal/http-server/middleware/mwauth"
	"spotBooker/internal/lib/api/response"
	"spotBooker/internal/lib/logger/sl"
	"spotBooker/internal/storage"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SpotDeleter
type SpotDeleter interface {
	DeleteSpot(ctx context.Context, spotID, userID int) error
}

func New(log *slog.Logger, spots SpotDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.spot.deleteSpot.New"

		log := log.With(slog.String("op", op))

		spotIdStr := chi.URLParam(r, "id")
		if spotIdStr == "" {
			log.Error("spot id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("spot id is required"))
			return
		}

		spotID, err := strconv.Atoi(spotIdStr)
		if err != nil {
			log.Error("invalid spot id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid spot id format"))
			return
		}

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			log.Error("request is not authenticated")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		log = log.With(slog.Int("spot_id", spotID), slog.Int("user_id", userID))

		if err = spots.DeleteSpot(r.Context(), spotID, userID); err != nil {
			switch {
			case errors.Is(err, storage.ErrSpotNotFound):
				log.Info("spot not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("spot couldn't be found"))
			case errors.Is(err, storage.ErrNotSpotOwner):
				log.Info("spot belongs to another user")
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden"))
			default:
				log.Error("failed to delete spot", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete spot"))
			}
			return
		}

		log.Info("spot deleted")

		render.JSON(w, r, response.OK())
	}
}
