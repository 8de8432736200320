package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

var (
	// ErrInvalidScheduleRow is returned for a schedule row with bad days, hours or usage
	ErrInvalidScheduleRow = errors.New("domain: invalid schedule row")
)

// Room is a video link room as known by the location directory
type Room struct {
	ID          uuid.UUID
	Key         string // e.g. MDI-A-1-001
	PrisonCode  string
	Description string
	Enabled     bool
}

// Name is the display name, falling back to the key
func (r Room) Name() string {
	if r.Description != "" {
		return r.Description
	}
	return r.Key
}

// LocationStatus is the administrative status of a decorated room
type LocationStatus string

const (
	LocationActive             LocationStatus = "ACTIVE"
	LocationInactive           LocationStatus = "INACTIVE"
	LocationTemporarilyBlocked LocationStatus = "TEMPORARILY_BLOCKED"
)

func (s LocationStatus) IsValid() bool {
	switch s {
	case LocationActive, LocationInactive, LocationTemporarilyBlocked:
		return true
	}
	return false
}

// LocationUsage says who may use a decorated room
type LocationUsage string

const (
	UsageCourt     LocationUsage = "COURT"
	UsageProbation LocationUsage = "PROBATION"
	UsageShared    LocationUsage = "SHARED"
	UsageSchedule  LocationUsage = "SCHEDULE"
)

func (u LocationUsage) IsValid() bool {
	switch u {
	case UsageCourt, UsageProbation, UsageShared, UsageSchedule:
		return true
	}
	return false
}

// LocationUsageRecord is the ownership policy state of one room.
// A room without a record is shared with everyone.
type LocationUsageRecord struct {
	ID             int64
	DpsLocationID  uuid.UUID
	PrisonCode     string
	Status         LocationStatus
	Usage          LocationUsage
	AllowedParties []string // empty = any party of the usage type
	BlockedFrom    *time.Time
	BlockedTo      *time.Time
	Comments       *string

	CreatedBy string
	CreatedAt time.Time
	AmendedBy *string
	AmendedAt *time.Time
}

// IsBlockedAt reports whether the room is temporarily blocked on the date of t
func (r *LocationUsageRecord) IsBlockedAt(t time.Time) bool {
	if r.Status != LocationTemporarilyBlocked {
		return false
	}
	day := dateOnly(t)
	if r.BlockedFrom != nil && day.Before(dateOnly(*r.BlockedFrom)) {
		return false
	}
	if r.BlockedTo != nil && day.After(dateOnly(*r.BlockedTo)) {
		return false
	}
	return true
}

// BlockExpired reports whether a temporary block ended before today
func (r *LocationUsageRecord) BlockExpired(today time.Time) bool {
	return r.Status == LocationTemporarilyBlocked &&
		r.BlockedTo != nil &&
		dateOnly(*r.BlockedTo).Before(dateOnly(today))
}

// ScheduleUsage is the usage of a room inside one schedule row
type ScheduleUsage string

const (
	ScheduleShared    ScheduleUsage = "SHARED"
	ScheduleCourt     ScheduleUsage = "COURT"
	ScheduleProbation ScheduleUsage = "PROBATION"
)

func (u ScheduleUsage) IsValid() bool {
	switch u {
	case ScheduleShared, ScheduleCourt, ScheduleProbation:
		return true
	}
	return false
}

// ScheduleRow changes the ownership of a schedule-mode room for a range of
// weekdays (ISO: Monday=1 ... Sunday=7) and hours
type ScheduleRow struct {
	ID              int64
	LocationUsageID int64
	DayStart        int
	DayEnd          int
	StartTime       types.TimeString
	EndTime         types.TimeString
	Usage           ScheduleUsage
	AllowedParties  []string
	Notes           *string
	CreatedBy       string
	CreatedAt       time.Time
}

// Validate checks days, hours and usage
func (s ScheduleRow) Validate() error {
	if s.DayStart < 1 || s.DayStart > 7 || s.DayEnd < 1 || s.DayEnd > 7 {
		return fmt.Errorf("%w: days must be between 1 and 7", ErrInvalidScheduleRow)
	}
	if _, err := NewInterval(s.StartTime, s.EndTime); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScheduleRow, err)
	}
	if !s.Usage.IsValid() {
		return fmt.Errorf("%w: unknown usage %q", ErrInvalidScheduleRow, s.Usage)
	}
	return nil
}

// CoversDay reports whether the ISO weekday lies in the inclusive day range.
// The range wraps around the week when DayEnd < DayStart (Friday to Monday).
func (s ScheduleRow) CoversDay(isoWeekday int) bool {
	if s.DayStart <= s.DayEnd {
		return isoWeekday >= s.DayStart && isoWeekday <= s.DayEnd
	}
	return isoWeekday >= s.DayStart || isoWeekday <= s.DayEnd
}

// CoversTime reports whether the time of day lies in [StartTime, EndTime)
func (s ScheduleRow) CoversTime(t types.TimeString) bool {
	return !t.IsBefore(s.StartTime) && t.IsBefore(s.EndTime)
}

// IsDuplicateOf reports whether both rows have the same days, hours, usage and parties
func (s ScheduleRow) IsDuplicateOf(other ScheduleRow) bool {
	return s.DayStart == other.DayStart &&
		s.DayEnd == other.DayEnd &&
		s.StartTime.Equal(other.StartTime) &&
		s.EndTime.Equal(other.EndTime) &&
		s.Usage == other.Usage &&
		sameParties(s.AllowedParties, other.AllowedParties)
}

// AvailabilityStatus is how a room may be used by a requesting party
type AvailabilityStatus string

const (
	AvailabilityNone          AvailabilityStatus = "NONE"
	AvailabilityShared        AvailabilityStatus = "SHARED"
	AvailabilityCourtAny      AvailabilityStatus = "COURT_ANY"
	AvailabilityCourtRoom     AvailabilityStatus = "COURT_ROOM"
	AvailabilityProbationAny  AvailabilityStatus = "PROBATION_ANY"
	AvailabilityProbationTeam AvailabilityStatus = "PROBATION_TEAM"
)

// IsAvailable reports whether the requester may use the room at all
func (s AvailabilityStatus) IsAvailable() bool {
	return s != AvailabilityNone && s != ""
}

// AvailabilityFor evaluates the ownership policy of a room for a requester at a point in time.
// record is nil for a room that was never decorated; rows are only read in schedule mode.
func AvailabilityFor(
	record *LocationUsageRecord,
	rows []ScheduleRow,
	partyType BookingType,
	partyCode string,
	at time.Time,
) AvailabilityStatus {
	if record == nil {
		return AvailabilityShared
	}

	if record.Status == LocationInactive || record.IsBlockedAt(at) {
		return AvailabilityNone
	}

	switch record.Usage {
	case UsageShared:
		return AvailabilityShared
	case UsageCourt:
		return dedicatedAvailability(BookingTypeCourt, record.AllowedParties, partyType, partyCode)
	case UsageProbation:
		return dedicatedAvailability(BookingTypeProbation, record.AllowedParties, partyType, partyCode)
	case UsageSchedule:
		row := matchScheduleRow(rows, at)
		if row == nil {
			return AvailabilityShared
		}
		switch row.Usage {
		case ScheduleCourt:
			return dedicatedAvailability(BookingTypeCourt, row.AllowedParties, partyType, partyCode)
		case ScheduleProbation:
			return dedicatedAvailability(BookingTypeProbation, row.AllowedParties, partyType, partyCode)
		default:
			return AvailabilityShared
		}
	default:
		return AvailabilityNone
	}
}

// matchScheduleRow picks the row for the weekday of at.
// Among rows covering the weekday, one whose hours contain the time wins;
// otherwise the first covering row is used.
func matchScheduleRow(rows []ScheduleRow, at time.Time) *ScheduleRow {
	weekday := ISOWeekday(at)
	timeOfDay := types.NewTimeString(at)

	var first *ScheduleRow
	for i := range rows {
		if !rows[i].CoversDay(weekday) {
			continue
		}
		if rows[i].CoversTime(timeOfDay) {
			return &rows[i]
		}
		if first == nil {
			first = &rows[i]
		}
	}
	return first
}

func dedicatedAvailability(owner BookingType, allowed []string, partyType BookingType, partyCode string) AvailabilityStatus {
	if partyType != owner {
		return AvailabilityNone
	}

	if len(allowed) == 0 {
		if owner == BookingTypeCourt {
			return AvailabilityCourtAny
		}
		return AvailabilityProbationAny
	}

	for _, code := range allowed {
		if code == partyCode {
			if owner == BookingTypeCourt {
				return AvailabilityCourtRoom
			}
			return AvailabilityProbationTeam
		}
	}
	return AvailabilityNone
}

// ISOWeekday returns Monday=1 ... Sunday=7
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func sameParties(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, p := range a {
		counts[p]++
	}
	for _, p := range b {
		counts[p]--
		if counts[p] < 0 {
			return false
		}
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// LocationPolicy is a room together with its ownership record and schedule rows
type LocationPolicy struct {
	Room   Room
	Record *LocationUsageRecord
	Rows   []ScheduleRow
}

// AvailabilityFor evaluates the policy of the room for a requester at a point in time
func (p LocationPolicy) AvailabilityFor(partyType BookingType, partyCode string, at time.Time) AvailabilityStatus {
	return AvailabilityFor(p.Record, p.Rows, partyType, partyCode, at)
}
