package deleteSpot

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"spotBooker/internal/http-server/handlers/spot/deleteSpot/mocks"
	"spotBooker/internal/http-server/middleware/mwauth"
	"spotBooker/internal/lib/logger/handlers/slogdiscard"
	"spotBooker/internal/storage"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteSpotHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		spotID         string
		userID         int
		mockSetup      func(m *mocks.SpotDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			spotID: "7",
			userID: 1,
			mockSetup: func(m *mocks.SpotDeleter) {
				m.On("DeleteSpot", mock.Anything, 7, 1).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Not authenticated",
			spotID:         "7",
			mockSetup:      func(*mocks.SpotDeleter) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authentication required"}`,
		},
		{
			name:           "Invalid spot ID",
			spotID:         "7a",
			userID:         1,
			mockSetup:      func(*mocks.SpotDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid spot id format"}`,
		},
		{
			name:   "Spot not found",
			spotID: "99",
			userID: 1,
			mockSetup: func(m *mocks.SpotDeleter) {
				m.On("DeleteSpot", mock.Anything, 99, 1).Return(fmt.Errorf("op: %w", storage.ErrSpotNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"spot couldn't be found"}`,
		},
		{
			name:   "Not the owner",
			spotID: "7",
			userID: 2,
			mockSetup: func(m *mocks.SpotDeleter) {
				m.On("DeleteSpot", mock.Anything, 7, 2).Return(fmt.Errorf("op: %w", storage.ErrNotSpotOwner))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"forbidden"}`,
		},
		{
			name:   "Storage error",
			spotID: "7",
			userID: 1,
			mockSetup: func(m *mocks.SpotDeleter) {
				m.On("DeleteSpot", mock.Anything, 7, 1).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete spot"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewSpotDeleter(t)
			tc.mockSetup(mockDeleter)

			r := chi.NewRouter()
			r.Delete("/spots/{id}", New(logger, mockDeleter))

			req, err := http.NewRequest(http.MethodDelete, "/spots/"+tc.spotID, nil)
			require.NoError(t, err)

			if tc.userID != 0 {
				req = req.WithContext(mwauth.WithUserID(req.Context(), tc.userID))
			}

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
