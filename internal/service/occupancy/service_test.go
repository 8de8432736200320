package occupancy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkService/pkg/logger"
	"github.com/m04kA/SMC-VideoLinkService/pkg/ptr"
	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetActiveAppointments(ctx context.Context, prisonCode string, date time.Time, locationKeys []string) ([]domain.PrisonAppointment, error) {
	args := m.Called(ctx, prisonCode, date, locationKeys)
	if v := args.Get(0); v != nil {
		return v.([]domain.PrisonAppointment), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockExternalSource struct {
	mock.Mock
}

func (m *mockExternalSource) AppointmentsAt(ctx context.Context, prisonCode string, date time.Time, locationKey string) ([]domain.ExternalSlot, error) {
	args := m.Called(ctx, prisonCode, date, locationKey)
	if v := args.Get(0); v != nil {
		return v.([]domain.ExternalSlot), args.Error(1)
	}
	return nil, args.Error(1)
}

var date = time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)

func interval(start, end string) domain.Interval {
	return domain.Interval{Start: types.TimeString(start), End: types.TimeString(end)}
}

func appointment(bookingID int64, prisoner, room, start, end string) domain.PrisonAppointment {
	return domain.PrisonAppointment{
		VideoBookingID: bookingID,
		PrisonCode:     "MDI",
		PrisonerNumber: prisoner,
		LocationKey:    room,
		Date:           date,
		StartTime:      types.TimeString(start),
		EndTime:        types.TimeString(end),
	}
}

func external(id int64, prisoner, room, start, end string) domain.ExternalSlot {
	return domain.ExternalSlot{
		SlotDetails: domain.SlotDetails{
			LocationKey:    room,
			PrisonerNumber: prisoner,
			Date:           date,
			StartTime:      types.TimeString(start),
			EndTime:        types.TimeString(end),
		},
		AppointmentID: id,
		CategoryCode:  "GYM",
	}
}

func TestService_Occupied(t *testing.T) {
	ctx := context.Background()

	t.Run("merges sources and drops external duplicates of internal appointments", func(t *testing.T) {
		repo := &mockBookingRepo{}
		source := &mockExternalSource{}
		keys := []string{"X", "Y"}

		repo.On("GetActiveAppointments", ctx, "MDI", date, keys).Return([]domain.PrisonAppointment{
			appointment(1, "A1111AA", "X", "10:15", "10:45"),
		}, nil)
		source.On("AppointmentsAt", ctx, "MDI", date, "X").Return([]domain.ExternalSlot{
			external(100, "A1111AA", "X", "10:15", "10:45"),
		}, nil)
		source.On("AppointmentsAt", ctx, "MDI", date, "Y").Return([]domain.ExternalSlot{
			external(101, "A2222AA", "Y", "14:00", "15:00"),
		}, nil)

		svc := NewService(repo, source, logger.NewNop())
		idx, err := svc.Occupied(ctx, "MDI", date, []string{"X", "Y", "X"}, nil)
		require.NoError(t, err)

		assert.Len(t, idx.Slots(), 2)
		assert.True(t, idx.IsOccupied("X", interval("10:00", "10:30")))
		assert.False(t, idx.IsOccupied("X", interval("10:45", "11:15")), "touching end is free")
		assert.True(t, idx.IsOccupied("Y", interval("14:30", "14:45")))
		assert.False(t, idx.IsOccupied("Z", interval("10:00", "18:00")))

		repo.AssertExpectations(t)
		source.AssertExpectations(t)
	})

	t.Run("excludes the booking being amended", func(t *testing.T) {
		repo := &mockBookingRepo{}
		source := &mockExternalSource{}

		repo.On("GetActiveAppointments", ctx, "MDI", date, []string{"X"}).Return([]domain.PrisonAppointment{
			appointment(7, "A1111AA", "X", "10:00", "11:00"),
			appointment(8, "A2222AA", "X", "13:00", "14:00"),
		}, nil)
		source.On("AppointmentsAt", ctx, "MDI", date, "X").Return([]domain.ExternalSlot{}, nil)

		svc := NewService(repo, source, logger.NewNop())
		idx, err := svc.Occupied(ctx, "MDI", date, []string{"X"}, ptr.Ptr(int64(7)))
		require.NoError(t, err)

		assert.False(t, idx.IsOccupied("X", interval("10:00", "11:00")))
		assert.True(t, idx.IsOccupied("X", interval("13:30", "14:30")))
	})

	t.Run("no rooms means nothing to read", func(t *testing.T) {
		repo := &mockBookingRepo{}
		source := &mockExternalSource{}

		svc := NewService(repo, source, logger.NewNop())
		idx, err := svc.Occupied(ctx, "MDI", date, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, idx.Slots())

		repo.AssertNotCalled(t, "GetActiveAppointments", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("external source failure is propagated", func(t *testing.T) {
		repo := &mockBookingRepo{}
		source := &mockExternalSource{}

		repo.On("GetActiveAppointments", ctx, "MDI", date, []string{"X"}).Return([]domain.PrisonAppointment{}, nil)
		source.On("AppointmentsAt", ctx, "MDI", date, "X").Return(nil, errors.New("timeout"))

		svc := NewService(repo, source, logger.NewNop())
		_, err := svc.Occupied(ctx, "MDI", date, []string{"X"}, nil)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestIndex_IsFree(t *testing.T) {
	idx := NewIndex(
		[]domain.InternalSlot{appointment(1, "A1111AA", "X", "10:15", "10:45").ToInternalSlot()},
		nil,
	)

	free := domain.BookingOption{Main: domain.LocationAndInterval{LocationKey: "X", Interval: interval("11:00", "12:00")}}
	assert.True(t, idx.IsFree(free))

	busy := domain.BookingOption{
		Pre:  &domain.LocationAndInterval{LocationKey: "Y", Interval: interval("09:45", "10:00")},
		Main: domain.LocationAndInterval{LocationKey: "X", Interval: interval("10:00", "10:30")},
	}
	assert.False(t, idx.IsFree(busy))
}
