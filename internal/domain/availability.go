package domain

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

// TimeSlot is a coarse part of the day used to filter candidate start times
type TimeSlot string

const (
	TimeSlotAM TimeSlot = "AM" // before 12:00
	TimeSlotPM TimeSlot = "PM" // 12:00-16:59
	TimeSlotED TimeSlot = "ED" // from 17:00
)

func (s TimeSlot) IsValid() bool {
	return s == TimeSlotAM || s == TimeSlotPM || s == TimeSlotED
}

// Matches reports whether a start time belongs to the time slot
func (s TimeSlot) Matches(start types.TimeString) bool {
	hour := start.Hour()
	switch s {
	case TimeSlotAM:
		return hour < 12
	case TimeSlotPM:
		return hour >= 12 && hour <= 16
	case TimeSlotED:
		return hour >= 17
	default:
		return false
	}
}

// TimeSlotOf classifies a start time
func TimeSlotOf(start types.TimeString) TimeSlot {
	switch {
	case TimeSlotAM.Matches(start):
		return TimeSlotAM
	case TimeSlotPM.Matches(start):
		return TimeSlotPM
	default:
		return TimeSlotED
	}
}

// AvailableRoomSlot is a free room offered to a requester
type AvailableRoomSlot struct {
	LocationID   uuid.UUID
	LocationKey  string
	LocationName string
	Interval     Interval
	Availability AvailabilityStatus
	TimeSlot     TimeSlot
}
