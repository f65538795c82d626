package getSpots

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"reflect"
	"spotBooker/internal/lib/api/response"
	"spotBooker/internal/lib/logger/sl"
	"spotBooker/internal/models"
	"strconv"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const (
	defaultPage = 1
	defaultSize = 20
)

// SpotsQuery holds the parsed query string. Field names in errors are the
// query parameter names.
type SpotsQuery struct {
	Page     int      `query:"page" validate:"min=1"`
	Size     int      `query:"size" validate:"min=1,max=20"`
	MinLat   *float64 `query:"minLat" validate:"omitempty,min=-90,max=90"`
	MaxLat   *float64 `query:"maxLat" validate:"omitempty,min=-90,max=90"`
	MinLng   *float64 `query:"minLng" validate:"omitempty,min=-180,max=180"`
	MaxLng   *float64 `query:"maxLng" validate:"omitempty,min=-180,max=180"`
	MinPrice *float64 `query:"minPrice" validate:"omitempty,min=0"`
	MaxPrice *float64 `query:"maxPrice" validate:"omitempty,min=0"`
}

var paramMessages = map[string]string{
	"page":     "page must be greater than or equal to 1",
	"size":     "size must be between 1 and 20",
	"minLat":   "minLat must be a number between -90 and 90",
	"maxLat":   "maxLat must be a number between -90 and 90",
	"minLng":   "minLng must be a number between -180 and 180",
	"maxLng":   "maxLng must be a number between -180 and 180",
	"minPrice": "minPrice must be a number greater than or equal to 0",
	"maxPrice": "maxPrice must be a number greater than or equal to 0",
}

type SpotsResponse struct {
	response.Response
	Spots []models.SpotSummary `json:"spots"`
	Page  int                  `json:"page"`
	Size  int                  `json:"size"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SpotsLister
type SpotsLister interface {
	ListSpots(ctx context.Context, filter models.SpotFilter) ([]models.SpotSummary, error)
}

func New(log *slog.Logger, spots SpotsLister) http.HandlerFunc {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("query")
	})

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.spot.getSpots.New"

		log := log.With(slog.String("op", op))

		q, errs := parseQuery(r.URL.Query())

		if err := validate.Struct(q); err != nil {
			var validateErr validator.ValidationErrors
			if !errors.As(err, &validateErr) {
				log.Error("failed to validate query", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get spots"))
				return
			}

			for _, fe := range validateErr {
				if _, seen := errs[fe.Field()]; !seen {
					errs[fe.Field()] = paramMessages[fe.Field()]
				}
			}
		}

		if len(errs) > 0 {
			log.Info("invalid query", slog.Any("errors", errs))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldErrors("bad request", errs))
			return
		}

		list, err := spots.ListSpots(r.Context(), models.SpotFilter{
			Page:     q.Page,
			Size:     q.Size,
			MinLat:   q.MinLat,
			MaxLat:   q.MaxLat,
			MinLng:   q.MinLng,
			MaxLng:   q.MaxLng,
			MinPrice: q.MinPrice,
			MaxPrice: q.MaxPrice,
		})
		if err != nil {
			log.Error("failed to get spots", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get spots"))
			return
		}

		if list == nil {
			list = []models.SpotSummary{}
		}

		log.Info("spots retrieved successfully", slog.Int("count", len(list)))

		render.JSON(w, r, SpotsResponse{
			Response: response.OK(),
			Spots:    list,
			Page:     q.Page,
			Size:     q.Size,
		})
	}
}

// parseQuery converts the query string. Values that are not numbers are
// reported in the returned map and left at their zero value.
func parseQuery(values url.Values) (SpotsQuery, map[string]string) {
	errs := make(map[string]string)

	q := SpotsQuery{
		Page: parseInt(values, "page", defaultPage, errs),
		Size: parseInt(values, "size", defaultSize, errs),
	}

	q.MinLat = parseFloat(values, "minLat", errs)
	q.MaxLat = parseFloat(values, "maxLat", errs)
	q.MinLng = parseFloat(values, "minLng", errs)
	q.MaxLng = parseFloat(values, "maxLng", errs)
	q.MinPrice = parseFloat(values, "minPrice", errs)
	q.MaxPrice = parseFloat(values, "maxPrice", errs)

	return q, errs
}

func parseInt(values url.Values, name string, def int, errs map[string]string) int {
	raw := values.Get(name)
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		errs[name] = paramMessages[name]
		return def
	}

	return n
}

func parseFloat(values url.Values, name string, errs map[string]string) *float64 {
	raw := values.Get(name)
	if raw == "" {
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) {
		errs[name] = paramMessages[name]
		return nil
	}

	return &f
}
