package getBookings

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"spotBooker/internal/http-server/middleware/mwauth"
	"spotBooker/internal/lib/api/response"
	"spotBooker/internal/lib/logger/sl"
	"spotBooker/internal/models"
	"spotBooker/internal/reservation"
	"spotBooker/internal/storage"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []reservation.BookingView `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsGetter
type BookingsGetter interface {
	GetSpotBookings(ctx context.Context, spotID int) (*models.Spot, []models.Booking, error)
}

// New lists the bookings of a spot. The spot owner sees every field and the
// guest identity; other callers see only the booked date ranges.
func New(log *slog.Logger, bookings BookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBookings.New"

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

		log = log.With(slog.Int("spot_id", spotID))

		spot, list, err := bookings.GetSpotBookings(r.Context(), spotID)
		if err != nil {
			if errors.Is(err, storage.ErrSpotNotFound) {
				log.Info("spot not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("spot couldn't be found"))
				return
			}

			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		isOwner := spot.OwnerID == userID

		log.Info("bookings retrieved successfully", slog.Int("count", len(list)), slog.Bool("owner", isOwner))

		responseOK(w, r, reservation.Project(list, isOwner))
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []reservation.BookingView) {
	render.JSON(w, r, BookingsResponse{
		Response: response.OK(),
		Bookings: bookings,
	})
}
