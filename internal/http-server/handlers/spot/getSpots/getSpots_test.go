package getSpots

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"spotBooker/internal/http-server/handlers/spot/getSpots/mocks"
	"spotBooker/internal/lib/logger/handlers/slogdiscard"
	"spotBooker/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetSpotsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	summaries := []models.SpotSummary{
		{Spot: models.Spot{ID: 1, OwnerID: 7, Name: "App Academy", Price: 123}, AvgRating: 4.5},
	}

	testCases := []struct {
		name           string
		query          string
		mockSetup      func(m *mocks.SpotsLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:  "Defaults",
			query: "",
			mockSetup: func(m *mocks.SpotsLister) {
				m.On("ListSpots", mock.Anything, models.SpotFilter{Page: 1, Size: 20}).Return(summaries, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"avg_rating":4.5`)
				assert.Contains(t, body, `"page":1`)
				assert.Contains(t, body, `"size":20`)
			},
		},
		{
			name:  "Filters and page",
			query: "?page=2&size=5&minLat=0&maxPrice=150",
			mockSetup: func(m *mocks.SpotsLister) {
				m.On("ListSpots", mock.Anything, mock.MatchedBy(func(f models.SpotFilter) bool {
					return f.Page == 2 && f.Size == 5 &&
						f.MinLat != nil && *f.MinLat == 0 &&
						f.MaxPrice != nil && *f.MaxPrice == 150 &&
						f.MaxLat == nil && f.MinLng == nil && f.MaxLng == nil && f.MinPrice == nil
				})).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","spots":[],"page":2,"size":5}`,
		},
		{
			name:           "Page and size out of range",
			query:          "?page=0&size=21",
			mockSetup:      func(*mocks.SpotsLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"status":"Error","error":"bad request","errors":{
				"page":"page must be greater than or equal to 1",
				"size":"size must be between 1 and 20"}}`,
		},
		{
			name:           "Bounds out of range",
			query:          "?minLat=-91&maxLng=181&minPrice=-1",
			mockSetup:      func(*mocks.SpotsLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"status":"Error","error":"bad request","errors":{
				"minLat":"minLat must be a number between -90 and 90",
				"maxLng":"maxLng must be a number between -180 and 180",
				"minPrice":"minPrice must be a number greater than or equal to 0"}}`,
		},
		{
			name:           "Not a number",
			query:          "?maxLat=north&size=ten&minLng=NaN",
			mockSetup:      func(*mocks.SpotsLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"status":"Error","error":"bad request","errors":{
				"maxLat":"maxLat must be a number between -90 and 90",
				"minLng":"minLng must be a number between -180 and 180",
				"size":"size must be between 1 and 20"}}`,
		},
		{
			name:  "Storage error",
			query: "",
			mockSetup: func(m *mocks.SpotsLister) {
				m.On("ListSpots", mock.Anything, mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get spots"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewSpotsLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest(http.MethodGet, "/spots"+tc.query, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
