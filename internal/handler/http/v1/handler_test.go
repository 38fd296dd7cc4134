package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/spot_tracker/internal/config"
	"github.com/shenikar/spot_tracker/internal/models"
	"github.com/shenikar/spot_tracker/internal/service/mocks"
	"github.com/shenikar/spot_tracker/internal/spotlist"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var passcodeHeader = map[string]string{"X-Passcode": "1111"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockSpotService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSpotService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DeletePasscode: "1111",
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateSpot_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateSpotRequest{
		Name:        "Water Tower",
		Location:    "52.37,4.89",
		Status:      models.StatusCompleted,
		ExploreType: models.ExploreRoofing,
		Rating:      4,
		Again:       models.Yes,
	}

	mockService.EXPECT().
		CreateSpot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spot *models.Spot) error {
			assert.Equal(t, reqBody.Name, spot.Name)
			assert.Equal(t, 4, spot.Rating)
			spot.ID = 1714550400000
			spot.Tier = models.TierNoPower
			spot.CreatedAt = time.Now()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/spots", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SpotResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(1714550400000), resp.ID)
	assert.Equal(t, "Completed visit", resp.StatusLabel)
	assert.Equal(t, "Rating: 4/5 · Would go again", resp.RatingLine)
	assert.Equal(t, "https://www.google.com/maps?q=52.37%2C4.89&output=embed", resp.EmbedURL)
}

func TestCreateSpot_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateSpot(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/spots", bytes.NewBufferString(`{"name": "test"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateSpot_ValidationError(t *testing.T) {
	testCases := []struct {
		name     string
		body     CreateSpotRequest
		expected string
	}{
		{"missing name", CreateSpotRequest{Location: "x"}, "Error:Field validation for 'Name' failed on the 'required' tag"},
		{"missing location", CreateSpotRequest{Name: "x"}, "Error:Field validation for 'Location' failed on the 'required' tag"},
		{"unknown status", CreateSpotRequest{Name: "x", Location: "y", Status: "visited"}, "Error:Field validation for 'Status' failed on the 'oneof' tag"},
		{"rating too high", CreateSpotRequest{Name: "x", Location: "y", Rating: 6}, "Error:Field validation for 'Rating' failed on the 'max' tag"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().CreateSpot(gomock.Any(), gomock.Any()).Times(0)

			bodyBytes, _ := json.Marshal(tc.body)
			w := makeRequest(router, "POST", "/api/v1/spots", bytes.NewBuffer(bodyBytes))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.expected)
		})
	}
}

func TestCreateSpot_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateSpotRequest{Name: "Mill", Location: "river"}

	mockService.EXPECT().CreateSpot(gomock.Any(), gomock.Any()).Return(errors.New("db is down")).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/spots", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"could not save spot"}`, w.Body.String())
}

func TestGetSpot_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := &models.Spot{ID: 5, Name: "Drain", Location: "canal", Status: models.StatusToGo, ExploreType: models.ExploreDrain}

	mockService.EXPECT().GetSpot(gomock.Any(), int64(5)).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/spots/5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SpotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Drain", resp.Name)
	assert.Equal(t, "To go", resp.StatusLabel)
	assert.Empty(t, resp.RatingLine)
}

func TestGetSpot_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetSpot(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/spots/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid spot ID")
}

func TestGetSpot_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetSpot(gomock.Any(), int64(9)).
		Return(nil, fmt.Errorf("service: could not get spot: %w", models.ErrSpotNotFound)).Times(1)

	w := makeRequest(router, "GET", "/api/v1/spots/9", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"spot not found"}`, w.Body.String())
}

func TestGetSpot_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetSpot(gomock.Any(), int64(9)).Return(nil, errors.New("timeout")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/spots/9", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"could not load spots"}`, w.Body.String())
}

func TestListSpots_PassesFilter(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	spots := []*models.Spot{{ID: 2, Name: "B"}, {ID: 1, Name: "A"}}

	mockService.EXPECT().
		ListSpots(gomock.Any(), spotlist.Filter{Search: "tower", Status: "completed", ExploreType: "roofing"}).
		Return(spots, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/spots?search=tower&status=completed&explore_type=roofing", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []SpotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, int64(2), resp[0].ID)
}

func TestListSpots_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListSpots(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/spots", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"could not load spots"}`, w.Body.String())
}

func TestListSpotCards_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	spots := []*models.Spot{{ID: 3, Name: "<Roof>", Location: "city", Status: models.StatusPending}}

	mockService.EXPECT().ListSpots(gomock.Any(), spotlist.Filter{}).Return(spots, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/spots/cards", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "&lt;Roof&gt;")
	assert.Contains(t, w.Body.String(), `data-spot-id="3"`)
}

func TestListSpotCards_ServiceErrorFallsBackToEmptyList(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListSpots(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/spots/cards", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "could not load spots")
	assert.Contains(t, w.Body.String(), "No spots yet")
}

func TestSpotsGeoJSON_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	spots := []*models.Spot{
		{ID: 1, Name: "Pinned", Location: "52.37,4.89"},
		{ID: 2, Name: "Free text", Location: "behind the station"},
	}

	mockService.EXPECT().ListSpots(gomock.Any(), gomock.Any()).Return(spots, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/spots/geojson", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, []float64{4.89, 52.37}, fc.Features[0].Geometry.Coordinates)
	assert.Equal(t, "Pinned", fc.Features[0].Properties["name"])
}

func TestGetStats_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	stats := &models.SpotStats{Total: 3, Completed: 1, Pending: 2, Rated: 1, AverageRating: 4, ByExploreType: map[string]int{"urbex": 3}, ByTier: map[string]int{"no_power": 3}}

	mockService.EXPECT().GetStats(gomock.Any()).Return(stats, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/spots/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 4.0, resp.AverageRating)
}

func TestGetStats_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetStats(gomock.Any()).Return(nil, errors.New("db error")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/spots/stats", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdateSpot_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := UpdateSpotRequest{Name: "Mill", Location: "river", Status: models.StatusBeen, Rating: 2}

	mockService.EXPECT().
		UpdateSpot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spot *models.Spot) error {
			assert.Equal(t, int64(7), spot.ID)
			assert.Equal(t, "Mill", spot.Name)
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/spots/7", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SpotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
}

func TestUpdateSpot_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := UpdateSpotRequest{Name: "Mill", Location: "river"}

	mockService.EXPECT().UpdateSpot(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/spots/-1", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid spot ID")
}

func TestUpdateSpot_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := UpdateSpotRequest{Name: "Mill", Location: "river"}

	mockService.EXPECT().UpdateSpot(gomock.Any(), gomock.Any()).Return(models.ErrSpotNotFound).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/spots/7", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateSpot_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := UpdateSpotRequest{Name: "Mill", Location: "river"}

	mockService.EXPECT().UpdateSpot(gomock.Any(), gomock.Any()).Return(errors.New("db error")).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/spots/7", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"could not update spot"}`, w.Body.String())
}

func TestDeleteSpot_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().DeleteSpot(gomock.Any(), int64(4)).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/spots/4", nil, passcodeHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteSpot_PasscodeInQuery(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().DeleteSpot(gomock.Any(), int64(4)).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/spots/4?passcode=1111", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteSpot_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().DeleteSpot(gomock.Any(), int64(4)).Return(models.ErrSpotNotFound).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/spots/4", nil, passcodeHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSpot_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().DeleteSpot(gomock.Any(), int64(4)).Return(errors.New("db error")).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/spots/4", nil, passcodeHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"could not delete spot"}`, w.Body.String())
}

func TestClearSpots_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ClearSpots(gomock.Any()).Return(int64(12), nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/spots", nil, passcodeHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":12}`, w.Body.String())
}

func TestClearSpots_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ClearSpots(gomock.Any()).Return(int64(0), errors.New("db error")).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/spots", nil, passcodeHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"could not clear spots"}`, w.Body.String())
}

func TestMapLink_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/maps/link?location=52.37,4.89", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		EmbedURL string    `json:"embed_url"`
		OpenURL  string    `json:"open_url"`
		Point    []float64 `json:"point"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=52.37%2C4.89", resp.OpenURL)
	assert.Equal(t, []float64{4.89, 52.37}, resp.Point)
}

func TestMapLink_MissingLocation(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/maps/link?location=%20", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestPasscodeGateMiddleware(t *testing.T) {
	testCases := []struct {
		name         string
		method       string
		url          string
		headers      map[string]string
		expectedCode int
		expectedBody string
	}{
		{"delete without passcode", "DELETE", "/api/v1/spots/4", nil, http.StatusUnauthorized, "passcode required"},
		{"delete with wrong passcode", "DELETE", "/api/v1/spots/4", map[string]string{"X-Passcode": "0000"}, http.StatusForbidden, "incorrect passcode"},
		{"clear without passcode", "DELETE", "/api/v1/spots", nil, http.StatusUnauthorized, "passcode required"},
		{"clear with wrong query passcode", "DELETE", "/api/v1/spots?passcode=1234", nil, http.StatusForbidden, "incorrect passcode"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			// Сервис не должен вызываться
			mockService.EXPECT().DeleteSpot(gomock.Any(), gomock.Any()).Times(0)
			mockService.EXPECT().ClearSpots(gomock.Any()).Times(0)

			var w *httptest.ResponseRecorder
			if tc.headers != nil {
				w = makeRequest(router, tc.method, tc.url, nil, tc.headers)
			} else {
				w = makeRequest(router, tc.method, tc.url, nil)
			}

			assert.Equal(t, tc.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}
