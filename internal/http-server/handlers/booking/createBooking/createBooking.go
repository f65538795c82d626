package createBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"spotBooker/internal/http-server/middleware/mwauth"
	"spotBooker/internal/lib/api/response"
	"spotBooker/internal/lib/logger/sl"
	"spotBooker/internal/lib/metrics"
	"spotBooker/internal/models"
	"spotBooker/internal/reservation"
	"spotBooker/internal/storage"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(ctx context.Context, spotID, userID int, start, end models.Date) (*models.Booking, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingPublisher
type BookingPublisher interface {
	PublishBookingCreated(ctx context.Context, booking models.Booking) error
}

func New(log *slog.Logger, booking BookingCreator, publisher BookingPublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

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

		var req BookingRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		// format is already checked by the validator
		start, _ := models.ParseDate(req.StartDate)
		end, _ := models.ParseDate(req.EndDate)

		created, err := booking.CreateBooking(r.Context(), spotID, userID, start, end)
		if err != nil {
			var rejection *reservation.Rejection

			switch {
			case errors.Is(err, storage.ErrSpotNotFound):
				log.Info("spot not found")
				metrics.BookingDecisions.WithLabelValues(string(reservation.KindNotFound)).Inc()
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("spot couldn't be found"))
			case errors.Is(err, storage.ErrUserNotFound):
				log.Warn("authenticated user does not exist")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user couldn't be found"))
			case errors.As(err, &rejection):
				log.Info("booking rejected", slog.String("kind", string(rejection.Kind)))
				metrics.BookingDecisions.WithLabelValues(string(rejection.Kind)).Inc()
				render.Status(r, statusFor(rejection.Kind))
				render.JSON(w, r, response.FieldErrors(rejection.Message, rejection.Fields))
			default:
				log.Error("failed to create booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}

			return
		}

		metrics.BookingDecisions.WithLabelValues(metrics.OutcomeAccepted).Inc()

		if err = publisher.PublishBookingCreated(r.Context(), *created); err != nil {
			log.Warn("failed to publish booking event", sl.Err(err))
		}

		log.Info("spot booked successfully", slog.Int("booking_id", created.ID))

		responseCreated(w, r, created)
	}
}

// statusFor maps a rejection to its status code. Conflicts are client errors.
func statusFor(kind reservation.Kind) int {
	switch kind {
	case reservation.KindNotFound:
		return http.StatusNotFound
	case reservation.KindForbiddenSelfBooking:
		return http.StatusForbidden
	case reservation.KindInvalidDateRange:
		return http.StatusBadRequest
	case reservation.KindDateConflict:
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, booking *models.Booking) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
