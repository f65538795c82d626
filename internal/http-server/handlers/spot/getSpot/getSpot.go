package getSpot

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"spotBooker/internal/lib/api/response"
	"spotBooker/internal/lib/logger/sl"
	"spotBooker/internal/models"
	"spotBooker/internal/storage"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type SpotResponse struct {
	response.Response
	Spot *models.SpotDetails `json:"spot"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SpotGetter
type SpotGetter interface {
	GetSpotDetails(ctx context.Context, id int) (*models.SpotDetails, error)
}

func New(log *slog.Logger, spots SpotGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.spot.getSpot.New"

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

		spot, err := spots.GetSpotDetails(r.Context(), spotID)
		if err != nil {
			if errors.Is(err, storage.ErrSpotNotFound) {
				log.Info("spot not found", slog.Int("spot_id", spotID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("spot couldn't be found"))
				return
			}

			log.Error("failed to get spot", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get spot"))
			return
		}

		log.Info("spot retrieved successfully", slog.Int("spot_id", spot.ID))

		render.JSON(w, r, SpotResponse{
			Response: response.OK(),
			Spot:     spot,
		})
	}
}
