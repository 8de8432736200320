package decorate_location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-VideoLinkService/internal/api/handlers"
	"github.com/m04kA/SMC-VideoLinkService/internal/service/locations"
	"github.com/m04kA/SMC-VideoLinkService/internal/service/locations/models"
	"github.com/m04kA/SMC-VideoLinkService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Decorate(ctx context.Context, req *models.DecorateRequest) (*models.LocationUsageResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.LocationUsageResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

const body = `{"prisonCode":"MDI","status":"ACTIVE","usage":"COURT","allowedParties":["DRBYMC"]}`

func serve(svc *mockService, id, user, payload string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/locations/{locationId}/usage", NewHandler(svc, logger.NewNop()).Handle)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/locations/"+id+"/usage", strings.NewReader(payload))
	if user != "" {
		req.Header.Set(handlers.UserHeader, user)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	id := uuid.New()
	svc := new(mockService)
	svc.On("Decorate", mock.Anything, mock.MatchedBy(func(req *models.DecorateRequest) bool {
		return req.LocationID == id && req.User == "admin" && req.Usage == "COURT" &&
			assert.ObjectsAreEqual([]string{"DRBYMC"}, req.AllowedParties)
	})).Return(&models.LocationUsageResponse{ID: 5, LocationID: id}, nil)

	rec := serve(svc, id.String(), "admin", body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		err  error
		code int
	}{
		{err: locations.ErrInvalidInput, code: http.StatusBadRequest},
		{err: locations.ErrLocationNotFound, code: http.StatusNotFound},
		{err: locations.ErrAlreadyDecorated, code: http.StatusConflict},
		{err: locations.ErrInternal, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := new(mockService)
			svc.On("Decorate", mock.Anything, mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.code, serve(svc, id.String(), "admin", body).Code)
		})
	}
}

func TestHandle_BadRequest(t *testing.T) {
	id := uuid.New().String()

	tests := map[string]*httptest.ResponseRecorder{}
	svc := new(mockService)
	tests["missing user"] = serve(svc, id, "", body)
	tests["bad id"] = serve(svc, "123", "admin", body)
	tests["bad body"] = serve(svc, id, "admin", `{"usage":`)

	for name, rec := range tests {
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
	svc.AssertNotCalled(t, "Decorate", mock.Anything, mock.Anything)
}
