package occupancy

import (
	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
)

// Index множество занятых слотов по комнатам на одну дату
type Index struct {
	slots      []domain.OccupiedSlot
	byLocation map[string][]domain.SlotDetails
}

// NewIndex объединяет внутренние и внешние слоты
// Внешний слот отбрасывается, если есть внутренний с тем же заключенным, датой, началом и концом
func NewIndex(internal []domain.InternalSlot, external []domain.ExternalSlot) *Index {
	idx := &Index{
		slots:      make([]domain.OccupiedSlot, 0, len(internal)+len(external)),
		byLocation: make(map[string][]domain.SlotDetails),
	}

	for _, slot := range internal {
		idx.add(slot)
	}

	for _, slot := range external {
		if duplicatesInternal(slot, internal) {
			continue
		}
		idx.add(slot)
	}

	return idx
}

func (idx *Index) add(slot domain.OccupiedSlot) {
	details := slot.Details()
	idx.slots = append(idx.slots, slot)
	idx.byLocation[details.LocationKey] = append(idx.byLocation[details.LocationKey], details)
}

func duplicatesInternal(slot domain.ExternalSlot, internal []domain.InternalSlot) bool {
	for _, in := range internal {
		if in.IsSameAppointment(slot.SlotDetails) {
			return true
		}
	}
	return false
}

// Slots возвращает все учтенные слоты
func (idx *Index) Slots() []domain.OccupiedSlot {
	return idx.slots
}

// IsOccupied сообщает, пересекается ли интервал с каким-либо слотом комнаты
func (idx *Index) IsOccupied(locationKey string, interval domain.Interval) bool {
	for _, details := range idx.byLocation[locationKey] {
		if details.Interval().Overlaps(interval) {
			return true
		}
	}
	return false
}

// IsFree сообщает, свободны ли все части варианта бронирования
func (idx *Index) IsFree(option domain.BookingOption) bool {
	for _, part := range option.Parts() {
		if idx.IsOccupied(part.LocationKey, part.Interval) {
			return false
		}
	}
	return true
}
