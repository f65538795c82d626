package getCurrentSpots

import (
	"context"
	"log/slog"
	"net/http"
	"spotBooker/internal/http-server/middleware/mwauth"
	"spotBooker/internal/lib/api/response"
	"spotBooker/internal/lib/logger/sl"
	"spotBooker/internal/models"

	"github.com/go-chi/render"
)

type SpotsResponse struct {
	response.Response
	Spots []models.SpotSummary `json:"spots"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OwnerSpotsGetter
type OwnerSpotsGetter interface {
	GetSpotsByOwner(ctx context.Context, ownerID int) ([]models.SpotSummary, error)
}

// New lists the spots owned by the authenticated user.
func New(log *slog.Logger, spots OwnerSpotsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.spot.getCurrentSpots.New"

		log := log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			log.Error("request is not authenticated")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		list, err := spots.GetSpotsByOwner(r.Context(), userID)
		if err != nil {
			log.Error("failed to get spots", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get spots"))
			return
		}

		if list == nil {
			list = []models.SpotSummary{}
		}

		log.Info("spots retrieved successfully", slog.Int("user_id", userID), slog.Int("count", len(list)))

		render.JSON(w, r, SpotsResponse{
			Response: response.OK(),
			Spots:    list,
		})
	}
}
