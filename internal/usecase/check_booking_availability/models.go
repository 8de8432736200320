package check_booking_availability

import (
	"time"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
)

// Request модель запроса проверки доступности бронирования
type Request struct {
	PrisonCode       string
	Date             time.Time
	Option           domain.BookingOption // pre/main/post
	PartyType        domain.BookingType
	PartyCode        string
	ExcludeBookingID *int64 // Изменяемое бронирование
}

// Response модель ответа проверки доступности
type Response struct {
	Available    bool
	Alternatives []domain.BookingOption // По возрастанию времени начала; пусто, если вариант свободен
}
