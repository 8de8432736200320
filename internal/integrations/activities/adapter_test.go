package activities

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkService/internal/service/occupancy"
	"github.com/m04kA/SMC-VideoLinkService/pkg/logger"
	"github.com/m04kA/SMC-VideoLinkService/pkg/ptr"
	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

func TestToExternalSlots(t *testing.T) {
	date := time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)

	appointments := []Appointment{
		{AppointmentID: 1, PrisonerNumber: "A1111AA", CategoryCode: "GYM", InternalLocKey: "MDI-A-1-001", StartDate: "2025-04-05", StartTime: "09:00", EndTime: ptr.Ptr("10:00")},
		{AppointmentID: 2, PrisonerNumber: "A2222AA", CategoryCode: "VLB", InternalLocKey: "MDI-A-1-001", StartDate: "2025-04-05", StartTime: "10:00", EndTime: ptr.Ptr("11:00")},
		{AppointmentID: 3, PrisonerNumber: "A3333AA", CategoryCode: "EDU", InternalLocKey: "MDI-A-1-001", StartDate: "2025-04-05", StartTime: "11:00"},
		{AppointmentID: 4, PrisonerNumber: "A4444AA", CategoryCode: "EDU", InternalLocKey: "MDI-A-1-001", StartDate: "2025-04-05", StartTime: "12:00", EndTime: ptr.Ptr("13:00"), IsCancelled: true},
		{AppointmentID: 5, PrisonerNumber: "A5555AA", CategoryCode: "EDU", InternalLocKey: "MDI-A-1-001", StartDate: "2025-04-05", StartTime: "bad", EndTime: ptr.Ptr("13:00")},
	}

	slots := ToExternalSlots(appointments, date, "MDI-A-1-001", logger.NewNop())

	require.Len(t, slots, 1)
	assert.Equal(t, int64(1), slots[0].AppointmentID)
	assert.Equal(t, "MDI-A-1-001", slots[0].LocationKey)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), slots[0].EndTime)
	assert.True(t, slots[0].Date.Equal(date))
}

func TestToExternalSlots_UsesRequestedLocation(t *testing.T) {
	date := time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)
	morning := domain.Interval{Start: "10:00", End: "10:30"}

	tests := []struct {
		name   string
		locKey string
	}{
		{name: "missing location key", locKey: ""},
		{name: "different location key", locKey: "MDI-VIDEO-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointments := []Appointment{
				{AppointmentID: 7, PrisonerNumber: "A1111AA", CategoryCode: "GYM", InternalLocKey: tt.locKey, StartDate: "2025-04-05", StartTime: "10:00", EndTime: ptr.Ptr("11:00")},
			}

			slots := ToExternalSlots(appointments, date, "MDI-A-1-001", logger.NewNop())

			require.Len(t, slots, 1)
			assert.Equal(t, "MDI-A-1-001", slots[0].LocationKey)

			idx := occupancy.NewIndex(nil, slots)
			assert.True(t, idx.IsOccupied("MDI-A-1-001", morning), "room with an external appointment must be busy")
		})
	}
}

func TestSlotSource_AppointmentsAt(t *testing.T) {
	date := time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Appointment{
			{AppointmentID: 9, PrisonerNumber: "A1111AA", CategoryCode: "EDU", StartDate: "2025-04-05", StartTime: "10:00", EndTime: ptr.Ptr("11:00")},
		})
	}))
	defer srv.Close()

	source := NewSlotSource(NewClient(srv.URL, time.Second, logger.NewNop()), logger.NewNop())

	slots, err := source.AppointmentsAt(context.Background(), "MDI", date, "MDI-A-1-001")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "MDI-A-1-001", slots[0].LocationKey)
	assert.True(t, occupancy.NewIndex(nil, slots).IsOccupied("MDI-A-1-001", domain.Interval{Start: "10:00", End: "10:30"}))
}
