package find_available_rooms

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

// Candidate свободная комната в окне с классификацией владения
type Candidate struct {
	Room         domain.Room
	Interval     domain.Interval
	Availability domain.AvailabilityStatus
}

// buckets кандидаты, разложенные по классификации
type buckets struct {
	probationTeam []Candidate
	probationAny  []Candidate
	courtRoom     []Candidate
	courtAny      []Candidate
	shared        []Candidate
}

func bucketize(candidates []Candidate) buckets {
	var b buckets
	for _, c := range candidates {
		switch c.Availability {
		case domain.AvailabilityProbationTeam:
			b.probationTeam = append(b.probationTeam, c)
		case domain.AvailabilityProbationAny:
			b.probationAny = append(b.probationAny, c)
		case domain.AvailabilityCourtRoom:
			b.courtRoom = append(b.courtRoom, c)
		case domain.AvailabilityCourtAny:
			b.courtAny = append(b.courtAny, c)
		case domain.AvailabilityShared:
			b.shared = append(b.shared, c)
		}
	}
	return b
}

// BuildAvailableSlots собирает итоговый список свободных комнат
// Порядок добавления: выделенные пробации, любые пробации, выделенные суду, любые суды, общие.
// Кандидат пропускается, если его время начала уже представлено.
// Итог сортируется по началу и имени комнаты, на каждое время начала остается одна запись.
func BuildAvailableSlots(candidates []Candidate) ([]domain.AvailableRoomSlot, error) {
	b := bucketize(candidates)

	probation := len(b.probationTeam) + len(b.probationAny)
	court := len(b.courtRoom) + len(b.courtAny)
	if probation > 0 && court > 0 {
		return nil, fmt.Errorf("%w: %d probation and %d court candidates", ErrMixedPartyAvailability, probation, court)
	}

	result := make([]Candidate, 0, len(candidates))
	seen := make(map[types.TimeString]struct{})

	add := func(list []Candidate, skipSeen bool) {
		for _, c := range list {
			if _, ok := seen[c.Interval.Start]; ok && skipSeen {
				continue
			}
			seen[c.Interval.Start] = struct{}{}
			result = append(result, c)
		}
	}

	add(b.probationTeam, false)
	add(b.probationAny, true)
	add(b.courtRoom, true)
	add(b.courtAny, true)
	add(b.shared, true)

	sort.SliceStable(result, func(i, j int) bool {
		if cmp := result[i].Interval.Start.Compare(result[j].Interval.Start); cmp != 0 {
			return cmp < 0
		}
		return result[i].Room.Name() < result[j].Room.Name()
	})

	slots := make([]domain.AvailableRoomSlot, 0, len(result))
	var last types.TimeString
	for i, c := range result {
		if i > 0 && c.Interval.Start.Equal(last) {
			continue
		}
		last = c.Interval.Start
		slots = append(slots, toAvailableRoomSlot(c))
	}

	return slots, nil
}

func toAvailableRoomSlot(c Candidate) domain.AvailableRoomSlot {
	return domain.AvailableRoomSlot{
		LocationID:   c.Room.ID,
		LocationKey:  c.Room.Key,
		LocationName: c.Room.Name(),
		Interval:     c.Interval,
		Availability: c.Availability,
		TimeSlot:     domain.TimeSlotOf(c.Interval.Start),
	}
}
