package find_available_rooms

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

func room(key, description string) domain.Room {
	return domain.Room{ID: uuid.New(), Key: key, PrisonCode: "MDI", Description: description, Enabled: true}
}

func candidate(r domain.Room, start, end string, status domain.AvailabilityStatus) Candidate {
	return Candidate{
		Room:         r,
		Interval:     domain.Interval{Start: types.TimeString(start), End: types.TimeString(end)},
		Availability: status,
	}
}

func TestBuildAvailableSlots(t *testing.T) {
	roomA := room("MDI-A-1-001", "Room A")
	roomB := room("MDI-A-1-002", "Room B")
	roomC := room("MDI-A-1-003", "Room C")

	t.Run("dedicated wins over any and shared for the same start", func(t *testing.T) {
		slots, err := BuildAvailableSlots([]Candidate{
			candidate(roomA, "09:00", "09:30", domain.AvailabilityShared),
			candidate(roomB, "09:00", "09:30", domain.AvailabilityCourtAny),
			candidate(roomC, "09:00", "09:30", domain.AvailabilityCourtRoom),
			candidate(roomA, "09:15", "09:45", domain.AvailabilityShared),
			candidate(roomB, "09:15", "09:45", domain.AvailabilityCourtAny),
			candidate(roomA, "08:45", "09:15", domain.AvailabilityShared),
		})
		require.NoError(t, err)
		require.Len(t, slots, 3)

		assert.Equal(t, types.TimeString("08:45"), slots[0].Interval.Start)
		assert.Equal(t, domain.AvailabilityShared, slots[0].Availability)

		assert.Equal(t, types.TimeString("09:00"), slots[1].Interval.Start)
		assert.Equal(t, domain.AvailabilityCourtRoom, slots[1].Availability)
		assert.Equal(t, roomC.ID, slots[1].LocationID)

		assert.Equal(t, types.TimeString("09:15"), slots[2].Interval.Start)
		assert.Equal(t, domain.AvailabilityCourtAny, slots[2].Availability)
		assert.Equal(t, domain.TimeSlotAM, slots[2].TimeSlot)
	})

	t.Run("two dedicated rooms at one start keep the first by name", func(t *testing.T) {
		slots, err := BuildAvailableSlots([]Candidate{
			candidate(roomB, "13:00", "14:00", domain.AvailabilityProbationTeam),
			candidate(roomA, "13:00", "14:00", domain.AvailabilityProbationTeam),
		})
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "Room A", slots[0].LocationName)
		assert.Equal(t, domain.TimeSlotPM, slots[0].TimeSlot)
	})

	t.Run("court and probation in one result is a configuration error", func(t *testing.T) {
		_, err := BuildAvailableSlots([]Candidate{
			candidate(roomA, "09:00", "09:30", domain.AvailabilityProbationAny),
			candidate(roomB, "10:00", "10:30", domain.AvailabilityCourtAny),
		})
		assert.ErrorIs(t, err, ErrMixedPartyAvailability)
	})

	t.Run("start times are unique", func(t *testing.T) {
		candidates := make([]Candidate, 0)
		for _, r := range []domain.Room{roomA, roomB, roomC} {
			candidates = append(candidates,
				candidate(r, "10:00", "10:30", domain.AvailabilityShared),
				candidate(r, "10:15", "10:45", domain.AvailabilityShared),
			)
		}

		slots, err := BuildAvailableSlots(candidates)
		require.NoError(t, err)

		seen := make(map[types.TimeString]bool)
		for _, s := range slots {
			assert.False(t, seen[s.Interval.Start], "duplicate start %s", s.Interval.Start)
			seen[s.Interval.Start] = true
		}
		assert.Len(t, slots, 2)
	})

	t.Run("no candidates", func(t *testing.T) {
		slots, err := BuildAvailableSlots(nil)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}
