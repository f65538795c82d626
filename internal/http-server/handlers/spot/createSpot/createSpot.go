package createSpot

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

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type SpotRequest struct {
	Address     string   `json:"address" validate:"required"`
	City        string   `json:"city" validate:"required"`
	State       string   `json:"state" validate:"required"`
	Country     string   `json:"country" validate:"required"`
	Lat         *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng         *float64 `json:"lng" validate:"required,min=-180,max=180"`
	Name        string   `json:"name" validate:"required,max=50"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
}

type SpotResponse struct {
	response.Response
	Spot *models.Spot `json:"spot"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SpotCreator
type SpotCreator interface {
	CreateSpot(ctx context.Context, spot models.Spot) (*models.Spot, error)
}

func New(log *slog.Logger, spots SpotCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.spot.createSpot.New"

		log := log.With(
			slog.String("op", op),
		)

		ownerID, ok := mwauth.UserID(r.Context())
		if !ok {
			log.Error("request is not authenticated")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		var req SpotRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		spot, err := spots.CreateSpot(r.Context(), models.Spot{
			OwnerID:     ownerID,
			Address:     req.Address,
			City:        req.City,
			State:       req.State,
			Country:     req.Country,
			Lat:         *req.Lat,
			Lng:         *req.Lng,
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
		})
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("authenticated user does not exist", slog.Int("owner_id", ownerID))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("user couldn't be found"))

			return
		}
		if err != nil {
			log.Error("failed to add spot", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add spot"))

			return
		}

		log.Info("spot added", slog.Int("id", spot.ID))

		responseCreated(w, r, spot)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, spot *models.Spot) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, SpotResponse{
		Response: response.OK(),
		Spot:     spot,
	})
}
