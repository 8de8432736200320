package domain

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

// BookingType is the kind of party that owns a video link booking
type BookingType string

const (
	BookingTypeCourt     BookingType = "COURT"
	BookingTypeProbation BookingType = "PROBATION"
)

// IsValid reports whether the booking type is known
func (t BookingType) IsValid() bool {
	return t == BookingTypeCourt || t == BookingTypeProbation
}

// BookingStatus represents the status of a video link booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "ACTIVE"
	StatusCancelled BookingStatus = "CANCELLED"
)

// AppointmentType is the role of a prison appointment inside a booking
type AppointmentType string

const (
	AppointmentCourtPre  AppointmentType = "VLB_COURT_PRE"
	AppointmentCourtMain AppointmentType = "VLB_COURT_MAIN"
	AppointmentCourtPost AppointmentType = "VLB_COURT_POST"
	AppointmentProbation AppointmentType = "VLB_PROBATION"
)

// VideoBooking is a court hearing or probation meeting made in this service
type VideoBooking struct {
	ID                int64
	BookingType       BookingType
	CourtCode         *string
	ProbationTeamCode *string
	Status            BookingStatus
	Appointments      []PrisonAppointment

	CreatedBy string
	CreatedAt time.Time
	AmendedAt *time.Time
}

// IsActive returns true if the booking has not been cancelled
func (b *VideoBooking) IsActive() bool {
	return b.Status == StatusActive
}

// PrisonAppointment is one room reservation belonging to a booking
type PrisonAppointment struct {
	ID              int64
	VideoBookingID  int64
	PrisonCode      string
	PrisonerNumber  string
	AppointmentType AppointmentType
	LocationKey     string
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
}

// ToInternalSlot adapts the appointment to an occupied slot
func (a PrisonAppointment) ToInternalSlot() InternalSlot {
	return InternalSlot{
		SlotDetails: SlotDetails{
			LocationKey:    a.LocationKey,
			PrisonerNumber: a.PrisonerNumber,
			Date:           a.Date,
			StartTime:      a.StartTime,
			EndTime:        a.EndTime,
		},
		BookingID:       a.VideoBookingID,
		AppointmentType: a.AppointmentType,
	}
}

// MatchesOption reports whether the booking's appointments describe exactly
// the given date and pre/main/post rooms and times.
func (b *VideoBooking) MatchesOption(prisonCode string, date time.Time, option BookingOption) bool {
	requested := option.parts()
	if len(requested) != len(b.Appointments) {
		return false
	}

	current := make([]LocationAndInterval, 0, len(b.Appointments))
	for _, a := range b.Appointments {
		if a.PrisonCode != prisonCode || !sameDate(a.Date, date) {
			return false
		}
		current = append(current, LocationAndInterval{
			LocationKey: a.LocationKey,
			Interval:    Interval{Start: a.StartTime, End: a.EndTime},
		})
	}

	sortParts(requested)
	sortParts(current)
	for i := range requested {
		if !requested[i].Equal(current[i]) {
			return false
		}
	}
	return true
}

func sortParts(parts []LocationAndInterval) {
	sort.Slice(parts, func(i, j int) bool {
		if c := parts[i].Interval.Start.Compare(parts[j].Interval.Start); c != 0 {
			return c < 0
		}
		return parts[i].LocationKey < parts[j].LocationKey
	})
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
