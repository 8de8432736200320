package domain

import (
	"time"

	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

// SlotSource tells where an occupied slot was read from
type SlotSource string

const (
	SlotSourceInternal SlotSource = "INTERNAL"
	SlotSourceExternal SlotSource = "EXTERNAL"
)

// SlotDetails are the attributes shared by every occupied slot
type SlotDetails struct {
	LocationKey    string
	PrisonerNumber string
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
}

// Details returns the slot attributes
func (s SlotDetails) Details() SlotDetails {
	return s
}

// Interval returns the slot time window
func (s SlotDetails) Interval() Interval {
	return Interval{Start: s.StartTime, End: s.EndTime}
}

// ConflictsWith reports whether both slots hold the same room at overlapping times on the same date
func (s SlotDetails) ConflictsWith(other SlotDetails) bool {
	return s.LocationKey == other.LocationKey &&
		sameDate(s.Date, other.Date) &&
		s.Interval().Overlaps(other.Interval())
}

// IsSameAppointment reports whether two slots describe one real-world
// appointment recorded in two systems
func (s SlotDetails) IsSameAppointment(other SlotDetails) bool {
	return s.PrisonerNumber == other.PrisonerNumber &&
		sameDate(s.Date, other.Date) &&
		s.StartTime.Equal(other.StartTime) &&
		s.EndTime.Equal(other.EndTime)
}

// OccupiedSlot is a room time window that is already taken
type OccupiedSlot interface {
	Details() SlotDetails
	Source() SlotSource
}

// InternalSlot is an appointment of an active booking made in this service
type InternalSlot struct {
	SlotDetails
	BookingID       int64
	AppointmentType AppointmentType
}

func (InternalSlot) Source() SlotSource { return SlotSourceInternal }

// ExternalSlot is an appointment read from the external scheduling system
type ExternalSlot struct {
	SlotDetails
	AppointmentID int64
	CategoryCode  string
}

func (ExternalSlot) Source() SlotSource { return SlotSourceExternal }
