package createReview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"spotBooker/internal/http-server/middleware/mwauth"
	"spotBooker/internal/lib/api/response"
	"spotBooker/internal/lib/logger/sl"
	"spotBooker/internal/models"
	"spotBooker/internal/storage"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type ReviewRequest struct {
	Review string `json:"review" validate:"required"`
	Stars  int    `json:"stars" validate:"required,min=1,max=5"`
}

type ReviewResponse struct {
	response.Response
	Review *models.Review `json:"review"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReviewCreator
type ReviewCreator interface {
	CreateReview(ctx context.Context, spotID, userID int, text string, stars int) (*models.Review, error)
}

func New(log *slog.Logger, reviews ReviewCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.review.createReview.New"

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

		var req ReviewRequest

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		log = log.With(slog.Int("spot_id", spotID), slog.Int("user_id", userID))

		review, err := reviews.CreateReview(r.Context(), spotID, userID, req.Review, req.Stars)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrSpotNotFound):
				log.Info("spot not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("spot couldn't be found"))
			case errors.Is(err, storage.ErrUserNotFound):
				log.Warn("authenticated user does not exist")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user couldn't be found"))
			case errors.Is(err, storage.ErrReviewExists):
				log.Info("review already exists")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("user already has a review for this spot"))
			default:
				log.Error("failed to create review", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create review"))
			}
			return
		}

		log.Info("review created", slog.Int("id", review.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, ReviewResponse{
			Response: response.OK(),
			Review:   review,
		})
	}
}
