package find_available_rooms

import (
	"time"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

// Request модель запроса свободных комнат
type Request struct {
	PrisonCode       string
	Date             time.Time // Дата (без времени)
	DurationMinutes  int       // Длительность встречи; не используется при точном окне
	PartyType        domain.BookingType
	PartyCode        string            // Код суда или команды пробации
	TimeSlots        []domain.TimeSlot // Фильтр по частям дня, пустой = без фильтра
	ExcludeBookingID *int64            // Бронирование, которое изменяется
	StartTime        *types.TimeString // Точное окно: начало
	EndTime          *types.TimeString // Точное окно: конец
}

// HasExactWindow сообщает, запрошено ли точное окно
func (r *Request) HasExactWindow() bool {
	return r.StartTime != nil || r.EndTime != nil
}

// Response модель ответа со списком свободных комнат
type Response struct {
	PrisonCode string
	Date       time.Time
	Slots      []domain.AvailableRoomSlot
}
