package find_available_rooms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	findAvailableRooms "github.com/m04kA/SMC-VideoLinkService/internal/usecase/find_available_rooms"
	"github.com/m04kA/SMC-VideoLinkService/pkg/logger"
	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *findAvailableRooms.Request) (*findAvailableRooms.Response, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*findAvailableRooms.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/prisons/{prisonCode}/available-rooms", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := new(mockUseCase)
	h := NewHandler(uc, logger.NewNop())

	date := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	roomID := uuid.New()

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *findAvailableRooms.Request) bool {
		return req.PrisonCode == "MDI" &&
			req.Date.Equal(date) &&
			req.DurationMinutes == 60 &&
			req.PartyType == domain.BookingTypeCourt &&
			req.PartyCode == "DRBYMC" &&
			assert.ObjectsAreEqual([]domain.TimeSlot{domain.TimeSlotAM, domain.TimeSlotPM}, req.TimeSlots) &&
			req.ExcludeBookingID != nil && *req.ExcludeBookingID == 42
	})).Return(&findAvailableRooms.Response{
		PrisonCode: "MDI",
		Date:       date,
		Slots: []domain.AvailableRoomSlot{{
			LocationID:   roomID,
			LocationKey:  "MDI-A-1-001",
			LocationName: "Room 1",
			Interval:     domain.Interval{Start: types.TimeString("09:00"), End: types.TimeString("10:00")},
			Availability: domain.AvailabilityCourtRoom,
			TimeSlot:     domain.TimeSlotAM,
		}},
	}, nil)

	rec := serve(h, "/api/v1/prisons/MDI/available-rooms?date=2025-04-07&duration=60&partyType=court&partyCode=DRBYMC&timeSlots=am,PM&excludeBookingId=42")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableRoomsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-04-07", body.Date)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, roomID, body.Slots[0].LocationID)
	assert.Equal(t, "09:00", body.Slots[0].StartTime)
	assert.Equal(t, "10:00", body.Slots[0].EndTime)
	assert.Equal(t, "COURT_ROOM", body.Slots[0].Availability)
	uc.AssertExpectations(t)
}

func TestHandle_ExactWindow(t *testing.T) {
	uc := new(mockUseCase)
	h := NewHandler(uc, logger.NewNop())

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *findAvailableRooms.Request) bool {
		return req.HasExactWindow() &&
			*req.StartTime == types.TimeString("10:00") &&
			*req.EndTime == types.TimeString("11:30")
	})).Return(&findAvailableRooms.Response{PrisonCode: "MDI"}, nil)

	rec := serve(h, "/api/v1/prisons/MDI/available-rooms?date=2025-04-07&partyType=PROBATION&startTime=10:00&endTime=11:30")
	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandle_BadQuery(t *testing.T) {
	tests := []string{
		"/api/v1/prisons/MDI/available-rooms",
		"/api/v1/prisons/MDI/available-rooms?date=07-04-2025",
		"/api/v1/prisons/MDI/available-rooms?date=2025-04-07&duration=abc",
		"/api/v1/prisons/MDI/available-rooms?date=2025-04-07&excludeBookingId=x",
		"/api/v1/prisons/MDI/available-rooms?date=2025-04-07&startTime=25:00",
	}

	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			uc := new(mockUseCase)
			rec := serve(NewHandler(uc, logger.NewNop()), target)
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
		{err: fmt.Errorf("%w: bad duration", findAvailableRooms.ErrInvalidInput), code: http.StatusBadRequest},
		{err: findAvailableRooms.ErrPrisonNotFound, code: http.StatusNotFound},
		{err: findAvailableRooms.ErrMixedPartyAvailability, code: http.StatusConflict},
		{err: findAvailableRooms.ErrInternal, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(NewHandler(uc, logger.NewNop()), "/api/v1/prisons/MDI/available-rooms?date=2025-04-07&partyType=COURT&duration=30")
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
