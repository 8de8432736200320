package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

// ErrInvalidInterval is returned when an interval does not start before it ends
var ErrInvalidInterval = errors.New("domain: interval start must be before end")

// Interval is a time window within one day. Start is always before End.
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// NewInterval validates and builds an interval
func NewInterval(start, end types.TimeString) (Interval, error) {
	if err := start.Validate(); err != nil {
		return Interval{}, fmt.Errorf("%w: start: %v", ErrInvalidInterval, err)
	}
	if err := end.Validate(); err != nil {
		return Interval{}, fmt.Errorf("%w: end: %v", ErrInvalidInterval, err)
	}
	if !start.IsBefore(end) {
		return Interval{}, fmt.Errorf("%w: %s-%s", ErrInvalidInterval, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether the intervals share any time.
// Intervals that only touch (10:00-10:30 and 10:30-11:00) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && i.End.IsAfter(other.Start)
}

// DurationMinutes returns the length of the interval
func (i Interval) DurationMinutes() int {
	d, err := i.Start.MinutesUntil(i.End)
	if err != nil {
		return 0
	}
	return d
}

// Shift moves the interval by n minutes keeping its length
func (i Interval) Shift(minutes int) (Interval, error) {
	start, err := i.Start.AddMinutes(minutes)
	if err != nil {
		return Interval{}, err
	}
	end, err := i.End.AddMinutes(minutes)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

func (i Interval) Equal(other Interval) bool {
	return i.Start.Equal(other.Start) && i.End.Equal(other.End)
}

func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", i.Start, i.End)
}

// LocationAndInterval is a room reserved for an interval
type LocationAndInterval struct {
	LocationKey string
	Interval    Interval
}

// Shift moves the interval by n minutes keeping the room
func (l LocationAndInterval) Shift(minutes int) (LocationAndInterval, error) {
	shifted, err := l.Interval.Shift(minutes)
	if err != nil {
		return LocationAndInterval{}, err
	}
	return LocationAndInterval{LocationKey: l.LocationKey, Interval: shifted}, nil
}

func (l LocationAndInterval) Equal(other LocationAndInterval) bool {
	return l.LocationKey == other.LocationKey && l.Interval.Equal(other.Interval)
}

// BookingOption is a candidate booking: an optional pre-hearing, the main
// hearing and an optional post-hearing. Callers normally make the pre end when
// the main starts and the post start when the main ends; this is not enforced.
type BookingOption struct {
	Pre  *LocationAndInterval
	Main LocationAndInterval
	Post *LocationAndInterval
}

// Earliest is the start of the pre appointment, or of the main one without a pre
func (o BookingOption) Earliest() types.TimeString {
	if o.Pre != nil {
		return o.Pre.Interval.Start
	}
	return o.Main.Interval.Start
}

// Latest is the end of the post appointment, or of the main one without a post
func (o BookingOption) Latest() types.TimeString {
	if o.Post != nil {
		return o.Post.Interval.End
	}
	return o.Main.Interval.End
}

// SpanMinutes is the time from Earliest to Latest
func (o BookingOption) SpanMinutes() int {
	d, err := o.Earliest().MinutesUntil(o.Latest())
	if err != nil {
		return 0
	}
	return d
}

// ShiftBy moves every part of the option by the same number of minutes
func (o BookingOption) ShiftBy(minutes int) (BookingOption, error) {
	shifted := BookingOption{}

	main, err := o.Main.Shift(minutes)
	if err != nil {
		return BookingOption{}, fmt.Errorf("main: %w", err)
	}
	shifted.Main = main

	if o.Pre != nil {
		pre, err := o.Pre.Shift(minutes)
		if err != nil {
			return BookingOption{}, fmt.Errorf("pre: %w", err)
		}
		shifted.Pre = &pre
	}

	if o.Post != nil {
		post, err := o.Post.Shift(minutes)
		if err != nil {
			return BookingOption{}, fmt.Errorf("post: %w", err)
		}
		shifted.Post = &post
	}

	return shifted, nil
}

// ShiftTo moves the option so that its earliest boundary is start,
// preserving the gaps between pre, main and post
func (o BookingOption) ShiftTo(start types.TimeString) (BookingOption, error) {
	offset, err := o.Earliest().MinutesUntil(start)
	if err != nil {
		return BookingOption{}, err
	}
	return o.ShiftBy(offset)
}

// EndsOnOrBefore reports whether the whole option finishes by t
func (o BookingOption) EndsOnOrBefore(t types.TimeString) bool {
	return !o.Latest().IsAfter(t)
}

// LocationKeys returns the distinct rooms used by the option
func (o BookingOption) LocationKeys() []string {
	keys := make([]string, 0, 3)
	seen := make(map[string]struct{}, 3)
	for _, part := range o.parts() {
		if _, ok := seen[part.LocationKey]; ok {
			continue
		}
		seen[part.LocationKey] = struct{}{}
		keys = append(keys, part.LocationKey)
	}
	return keys
}

// Parts returns pre, main and post in that order, skipping absent ones
func (o BookingOption) Parts() []LocationAndInterval {
	return o.parts()
}

func (o BookingOption) parts() []LocationAndInterval {
	parts := make([]LocationAndInterval, 0, 3)
	if o.Pre != nil {
		parts = append(parts, *o.Pre)
	}
	parts = append(parts, o.Main)
	if o.Post != nil {
		parts = append(parts, *o.Post)
	}
	return parts
}

// Validate checks every part of the option
func (o BookingOption) Validate() error {
	for _, part := range o.parts() {
		if part.LocationKey == "" {
			return fmt.Errorf("%w: location is required", ErrInvalidInterval)
		}
		if _, err := NewInterval(part.Interval.Start, part.Interval.End); err != nil {
			return err
		}
	}
	return nil
}
