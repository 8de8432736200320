package domain

import "github.com/m04kA/SMC-VideoLinkService/pkg/types"

// Slot generation
const (
	SlotStepMinutes        = 15
	MinMeetingDuration     = 15
	MaxMeetingDuration     = 480 // 8 hours
	DefaultMaxAlternatives = 0   // 0 = unlimited
)

// Prison regime used when a prison has no regime of its own
var (
	DefaultStartOfDay = types.TimeString("08:00")
	DefaultEndOfDay   = types.TimeString("18:00")
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// VideoLinkAppointmentCategories are the external appointment categories that
// mirror bookings made in this service. They are ignored when reading the
// external appointment system so the same appointment is not counted twice.
var VideoLinkAppointmentCategories = []string{
	"VLB",  // video link - court hearing
	"VLPM", // video link - probation meeting
	"VLOO", // video link - official other
	"VLLA", // video link - legal appointment
	"VLPA", // video link - parole hearing
}

// IsVideoLinkCategory reports whether the external category is owned by this service
func IsVideoLinkCategory(code string) bool {
	for _, c := range VideoLinkAppointmentCategories {
		if c == code {
			return true
		}
	}
	return false
}

// InactiveStatuses список статусов неактивных бронирований
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
