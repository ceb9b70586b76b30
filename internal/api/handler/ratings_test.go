package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ocene/backend/internal/api/handler"
	"ocene/backend/internal/logging"
	"ocene/backend/internal/models"
	"ocene/backend/internal/storage"
	"ocene/backend/internal/subscribers"
)

func newTestRouter(s *MockStorage, d *MockDirectory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewHandler(s, d, logging.NewNop())
	h.Register(r)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestCreateRating_Scenario verifies the create contract end to end:
// subscriber 42 resolves to "Ana" and the response carries the resolved
// name, not the caller input.
func TestCreateRating_Scenario(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	directoryMock := new(MockDirectory)
	directoryMock.On("Lookup", mock.Anything, 42).Return("Ana", nil).Once()
	storageMock.On("SaveRating", mock.Anything, mock.AnythingOfType("*models.Rating")).Return(nil).Once()
	r := newTestRouter(storageMock, directoryMock)

	// Act
	w := doJSON(r, http.MethodPost, "/ratings", gin.H{
		"id": 1, "subscriber_id": 42, "rating": "great",
	})

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	var got models.Rating
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.Rating{ID: 1, Ime: "Ana", Ocena: "great"}, got)
	storageMock.AssertExpectations(t)
	directoryMock.AssertExpectations(t)
}

// TestCreateRating_LookupFails verifies that nothing is written when the
// subscriber lookup fails.
func TestCreateRating_LookupFails(t *testing.T) {
	storageMock := new(MockStorage)
	directoryMock := new(MockDirectory)
	directoryMock.On("Lookup", mock.Anything, 42).Return("", subscribers.ErrNotFound).Once()
	r := newTestRouter(storageMock, directoryMock)

	w := doJSON(r, http.MethodPost, "/ratings", gin.H{
		"id": 1, "subscriber_id": 42, "rating": "great",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "subscriber 42 not found")
	storageMock.AssertNotCalled(t, "SaveRating", mock.Anything, mock.Anything)
}

func TestCreateRating_DuplicateID(t *testing.T) {
	storageMock := new(MockStorage)
	directoryMock := new(MockDirectory)
	directoryMock.On("Lookup", mock.Anything, 42).Return("Ana", nil).Once()
	storageMock.On("SaveRating", mock.Anything, mock.Anything).Return(storage.ErrDuplicateID).Once()
	r := newTestRouter(storageMock, directoryMock)

	w := doJSON(r, http.MethodPost, "/ratings", gin.H{
		"id": 1, "subscriber_id": 42, "rating": "great",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateRating_BadBody(t *testing.T) {
	storageMock := new(MockStorage)
	directoryMock := new(MockDirectory)
	r := newTestRouter(storageMock, directoryMock)

	req := httptest.NewRequest(http.MethodPost, "/ratings", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	directoryMock.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
}

func TestGetRating_Found(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("GetRating", mock.Anything, 1).
		Return(&models.Rating{ID: 1, Ime: "Ana", Ocena: "great"}, nil).Once()
	r := newTestRouter(storageMock, new(MockDirectory))

	w := doJSON(r, http.MethodGet, "/ratings/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got models.Rating
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.Rating{ID: 1, Ime: "Ana", Ocena: "great"}, got)
}

func TestGetRating_Missing(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("GetRating", mock.Anything, 7).Return(nil, storage.ErrNotFound).Once()
	r := newTestRouter(storageMock, new(MockDirectory))

	w := doJSON(r, http.MethodGet, "/ratings/7", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRating_NonIntegerID(t *testing.T) {
	storageMock := new(MockStorage)
	r := newTestRouter(storageMock, new(MockDirectory))

	w := doJSON(r, http.MethodGet, "/ratings/abc", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	storageMock.AssertNotCalled(t, "GetRating", mock.Anything, mock.Anything)
}

// TestDeleteRating_Scenario verifies DELETE answers 204 with no body, and
// that a missing row answers 404.
func TestDeleteRating_Scenario(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("DeleteRating", mock.Anything, 1).Return(nil).Once()
	storageMock.On("GetRating", mock.Anything, 1).Return(nil, storage.ErrNotFound).Once()
	r := newTestRouter(storageMock, new(MockDirectory))

	w := doJSON(r, http.MethodDelete, "/ratings/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(r, http.MethodGet, "/ratings/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRating_Missing(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("DeleteRating", mock.Anything, 99).Return(storage.ErrNotFound).Once()
	r := newTestRouter(storageMock, new(MockDirectory))

	w := doJSON(r, http.MethodDelete, "/ratings/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRatings(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("ListRatings", mock.Anything).Return([]models.Rating{
		{ID: 1, Ime: "Ana", Ocena: "great"},
		{ID: 2, Ime: "Bojan", Ocena: "fine"},
	}, nil).Once()
	r := newTestRouter(storageMock, new(MockDirectory))

	w := doJSON(r, http.MethodGet, "/ratings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Ratings []models.Rating `json:"ratings"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.ElementsMatch(t, []models.Rating{
		{ID: 1, Ime: "Ana", Ocena: "great"},
		{ID: 2, Ime: "Bojan", Ocena: "fine"},
	}, got.Ratings)
}

func TestListRatings_Empty(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("ListRatings", mock.Anything).Return([]models.Rating{}, nil).Once()
	r := newTestRouter(storageMock, new(MockDirectory))

	w := doJSON(r, http.MethodGet, "/ratings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ratings": []}`, w.Body.String())
}
