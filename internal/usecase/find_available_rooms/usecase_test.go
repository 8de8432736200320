package find_available_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	locationsClient "github.com/m04kA/SMC-VideoLinkService/internal/integrations/locations"
	"github.com/m04kA/SMC-VideoLinkService/internal/service/occupancy"
	"github.com/m04kA/SMC-VideoLinkService/pkg/logger"
	"github.com/m04kA/SMC-VideoLinkService/pkg/ptr"
	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

type mockLocationsClient struct {
	mock.Mock
}

func (m *mockLocationsClient) GetVideoLinkRooms(ctx context.Context, prisonCode string, enabledOnly bool) ([]domain.Room, error) {
	args := m.Called(ctx, prisonCode, enabledOnly)
	if v := args.Get(0); v != nil {
		return v.([]domain.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPolicyLoader struct {
	mock.Mock
}

func (m *mockPolicyLoader) PoliciesFor(ctx context.Context, rooms []domain.Room) ([]domain.LocationPolicy, error) {
	args := m.Called(ctx, rooms)
	if v := args.Get(0); v != nil {
		return v.([]domain.LocationPolicy), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSlotGenerator struct {
	mock.Mock
}

func (m *mockSlotGenerator) Generate(ctx context.Context, prisonCode string, date time.Time, durationMinutes int, buckets []domain.TimeSlot) ([]domain.Interval, error) {
	args := m.Called(ctx, prisonCode, date, durationMinutes, buckets)
	if v := args.Get(0); v != nil {
		return v.([]domain.Interval), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockOccupancy struct {
	mock.Mock
}

func (m *mockOccupancy) Occupied(ctx context.Context, prisonCode string, date time.Time, locationKeys []string, excludeBookingID *int64) (*occupancy.Index, error) {
	args := m.Called(ctx, prisonCode, date, locationKeys, excludeBookingID)
	if v := args.Get(0); v != nil {
		return v.(*occupancy.Index), args.Error(1)
	}
	return nil, args.Error(1)
}

var testDate = time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)

func window(start, end string) domain.Interval {
	return domain.Interval{Start: types.TimeString(start), End: types.TimeString(end)}
}

func busy(key, start, end string) domain.InternalSlot {
	return domain.InternalSlot{SlotDetails: domain.SlotDetails{
		LocationKey: key, PrisonerNumber: "A1111AA", Date: testDate,
		StartTime: types.TimeString(start), EndTime: types.TimeString(end),
	}}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	roomA := room("MDI-A-1-001", "Room A")

	t.Run("unowned room with no bookings is shared from start of day", func(t *testing.T) {
		locations := &mockLocationsClient{}
		policies := &mockPolicyLoader{}
		generator := &mockSlotGenerator{}
		occ := &mockOccupancy{}

		rooms := []domain.Room{roomA}
		locations.On("GetVideoLinkRooms", ctx, "MDI", true).Return(rooms, nil)
		generator.On("Generate", ctx, "MDI", testDate, 30, []domain.TimeSlot(nil)).
			Return([]domain.Interval{window("08:00", "08:30"), window("08:15", "08:45")}, nil)
		policies.On("PoliciesFor", ctx, rooms).Return([]domain.LocationPolicy{{Room: roomA}}, nil)
		occ.On("Occupied", ctx, "MDI", testDate, []string{roomA.Key}, (*int64)(nil)).Return(occupancy.NewIndex(nil, nil), nil)

		uc := NewUseCase(locations, policies, generator, occ, logger.NewNop())
		resp, err := uc.Execute(ctx, &Request{
			PrisonCode:      "MDI",
			Date:            testDate,
			DurationMinutes: 30,
			PartyType:       domain.BookingTypeCourt,
			PartyCode:       "DRBYMC",
		})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 2)
		assert.Equal(t, window("08:00", "08:30"), resp.Slots[0].Interval)
		assert.Equal(t, domain.AvailabilityShared, resp.Slots[0].Availability)
		assert.Equal(t, "Room A", resp.Slots[0].LocationName)
	})

	t.Run("occupied and forbidden windows are skipped", func(t *testing.T) {
		locations := &mockLocationsClient{}
		policies := &mockPolicyLoader{}
		generator := &mockSlotGenerator{}
		occ := &mockOccupancy{}

		roomB := room("MDI-A-1-002", "Room B")
		rooms := []domain.Room{roomA, roomB}
		locations.On("GetVideoLinkRooms", ctx, "MDI", true).Return(rooms, nil)
		generator.On("Generate", ctx, "MDI", testDate, 60, []domain.TimeSlot{domain.TimeSlotAM}).
			Return([]domain.Interval{window("10:00", "11:00"), window("11:00", "12:00")}, nil)
		policies.On("PoliciesFor", ctx, rooms).Return([]domain.LocationPolicy{
			{Room: roomA, Record: &domain.LocationUsageRecord{Status: domain.LocationActive, Usage: domain.UsageCourt, AllowedParties: []string{"DRBYMC"}}},
			{Room: roomB, Record: &domain.LocationUsageRecord{Status: domain.LocationActive, Usage: domain.UsageProbation}},
		}, nil)
		occ.On("Occupied", ctx, "MDI", testDate, []string{roomA.Key, roomB.Key}, ptr.Ptr(int64(5))).
			Return(occupancy.NewIndex([]domain.InternalSlot{busy(roomA.Key, "10:30", "11:00")}, nil), nil)

		uc := NewUseCase(locations, policies, generator, occ, logger.NewNop())
		resp, err := uc.Execute(ctx, &Request{
			PrisonCode:       "MDI",
			Date:             testDate,
			DurationMinutes:  60,
			PartyType:        domain.BookingTypeCourt,
			PartyCode:        "DRBYMC",
			TimeSlots:        []domain.TimeSlot{domain.TimeSlotAM},
			ExcludeBookingID: ptr.Ptr(int64(5)),
		})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, window("11:00", "12:00"), resp.Slots[0].Interval)
		assert.Equal(t, domain.AvailabilityCourtRoom, resp.Slots[0].Availability)
	})

	t.Run("exact window skips the generator", func(t *testing.T) {
		locations := &mockLocationsClient{}
		policies := &mockPolicyLoader{}
		generator := &mockSlotGenerator{}
		occ := &mockOccupancy{}

		rooms := []domain.Room{roomA}
		locations.On("GetVideoLinkRooms", ctx, "MDI", true).Return(rooms, nil)
		policies.On("PoliciesFor", ctx, rooms).Return([]domain.LocationPolicy{{Room: roomA}}, nil)
		occ.On("Occupied", ctx, "MDI", testDate, []string{roomA.Key}, (*int64)(nil)).Return(occupancy.NewIndex(nil, nil), nil)

		uc := NewUseCase(locations, policies, generator, occ, logger.NewNop())
		resp, err := uc.Execute(ctx, &Request{
			PrisonCode: "MDI",
			Date:       testDate,
			PartyType:  domain.BookingTypeProbation,
			PartyCode:  "BLKPPP",
			StartTime:  ptr.Ptr(types.TimeString("14:00")),
			EndTime:    ptr.Ptr(types.TimeString("15:30")),
		})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, domain.TimeSlotPM, resp.Slots[0].TimeSlot)
		generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown prison", func(t *testing.T) {
		locations := &mockLocationsClient{}
		locations.On("GetVideoLinkRooms", ctx, "XXX", true).Return(nil, locationsClient.ErrPrisonNotFound)

		uc := NewUseCase(locations, &mockPolicyLoader{}, &mockSlotGenerator{}, &mockOccupancy{}, logger.NewNop())
		_, err := uc.Execute(ctx, &Request{
			PrisonCode: "XXX", Date: testDate, DurationMinutes: 30, PartyType: domain.BookingTypeCourt, PartyCode: "DRBYMC",
		})
		assert.ErrorIs(t, err, ErrPrisonNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		uc := NewUseCase(&mockLocationsClient{}, &mockPolicyLoader{}, &mockSlotGenerator{}, &mockOccupancy{}, logger.NewNop())

		tests := []struct {
			name string
			req  Request
		}{
			{name: "no prison", req: Request{Date: testDate, DurationMinutes: 30, PartyType: domain.BookingTypeCourt, PartyCode: "C"}},
			{name: "no date", req: Request{PrisonCode: "MDI", DurationMinutes: 30, PartyType: domain.BookingTypeCourt, PartyCode: "C"}},
			{name: "bad party", req: Request{PrisonCode: "MDI", Date: testDate, DurationMinutes: 30, PartyType: "OTHER", PartyCode: "C"}},
			{name: "short duration", req: Request{PrisonCode: "MDI", Date: testDate, DurationMinutes: 5, PartyType: domain.BookingTypeCourt, PartyCode: "C"}},
			{name: "bad bucket", req: Request{PrisonCode: "MDI", Date: testDate, DurationMinutes: 30, PartyType: domain.BookingTypeCourt, PartyCode: "C", TimeSlots: []domain.TimeSlot{"NIGHT"}}},
			{name: "reversed window", req: Request{PrisonCode: "MDI", Date: testDate, PartyType: domain.BookingTypeCourt, PartyCode: "C",
				StartTime: ptr.Ptr(types.TimeString("11:00")), EndTime: ptr.Ptr(types.TimeString("10:00"))}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, &tt.req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}
