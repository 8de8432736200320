package check_booking_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-VideoLinkService/internal/usecase/check_booking_availability"
	"github.com/m04kA/SMC-VideoLinkService/pkg/logger"
	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*checkAvailability.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

const validBody = `{
	"prisonCode": "MDI",
	"date": "2025-04-07",
	"bookingType": "court",
	"courtOrProbationCode": "DRBYMC",
	"vlbIdToExclude": 7,
	"preAppointment": {"prisonLocKey": "MDI-A-1-002", "startTime": "09:45", "endTime": "10:00"},
	"mainAppointment": {"prisonLocKey": "MDI-A-1-001", "startTime": "10:00", "endTime": "11:00"}
}`

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/availability/check", strings.NewReader(body)))
	return rec
}

func part(key, start, end string) domain.LocationAndInterval {
	return domain.LocationAndInterval{
		LocationKey: key,
		Interval:    domain.Interval{Start: types.TimeString(start), End: types.TimeString(end)},
	}
}

func TestHandle_Unavailable(t *testing.T) {
	uc := new(mockUseCase)
	h := NewHandler(uc, logger.NewNop())

	pre := part("MDI-A-1-002", "10:45", "11:00")
	alternative := domain.BookingOption{Pre: &pre, Main: part("MDI-A-1-001", "11:00", "12:00")}

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *checkAvailability.Request) bool {
		return req.PrisonCode == "MDI" &&
			req.PartyType == domain.BookingTypeCourt &&
			req.ExcludeBookingID != nil && *req.ExcludeBookingID == 7 &&
			req.Option.Pre != nil && req.Option.Pre.LocationKey == "MDI-A-1-002" &&
			req.Option.Main.Interval.Start == types.TimeString("10:00") &&
			req.Option.Post == nil
	})).Return(&checkAvailability.Response{Available: false, Alternatives: []domain.BookingOption{alternative}}, nil)

	rec := post(h, validBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.AvailabilityOk)
	require.Len(t, body.Alternatives, 1)
	assert.Equal(t, "10:45", body.Alternatives[0].Pre.StartTime)
	assert.Equal(t, "MDI-A-1-001", body.Alternatives[0].Main.LocationKey)
	assert.Nil(t, body.Alternatives[0].Post)
	uc.AssertExpectations(t)
}

func TestHandle_BadRequest(t *testing.T) {
	tests := map[string]string{
		"not json":      `{`,
		"unknown field": `{"prisonCode":"MDI","foo":1}`,
		"bad date":      `{"prisonCode":"MDI","date":"07/04/2025","mainAppointment":{"prisonLocKey":"X","startTime":"10:00","endTime":"11:00"}}`,
		"no main":       `{"prisonCode":"MDI","date":"2025-04-07"}`,
		"bad time":      `{"prisonCode":"MDI","date":"2025-04-07","mainAppointment":{"prisonLocKey":"X","startTime":"1000","endTime":"11:00"}}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			uc := new(mockUseCase)
			rec := post(NewHandler(uc, logger.NewNop()), body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{err: checkAvailability.ErrInvalidInput, code: http.StatusBadRequest},
		{err: checkAvailability.ErrBookingNotFound, code: http.StatusNotFound},
		{err: checkAvailability.ErrLocationNotFound, code: http.StatusNotFound},
		{err: checkAvailability.ErrInternal, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := post(NewHandler(uc, logger.NewNop()), validBody)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
