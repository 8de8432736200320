package check_booking_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkService/internal/service/occupancy"
)

// findAlternatives ищет другие времена начала для того же варианта
// Вариант сдвигается целиком, промежутки между pre, main и post сохраняются.
// Кандидаты берутся из того же генератора, что и при поиске свободных комнат.
func (uc *UseCase) findAlternatives(ctx context.Context, req *Request, index *occupancy.Index) ([]domain.BookingOption, error) {
	// 1. Конец рабочего дня тюрьмы
	regime, err := uc.slotGenerator.Regime(ctx, req.PrisonCode)
	if err != nil {
		uc.logger.Error("CheckBookingAvailability: failed to get regime: %v", err)
		return nil, fmt.Errorf("%w: failed to get regime: %v", ErrInternal, err)
	}

	// 2. Кандидаты на всю длительность варианта
	candidates, err := uc.slotGenerator.Generate(ctx, req.PrisonCode, req.Date, req.Option.SpanMinutes(), nil)
	if err != nil {
		uc.logger.Error("CheckBookingAvailability: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	if len(candidates) == 0 {
		return []domain.BookingOption{}, nil
	}

	// 3. Политики владения комнатами варианта
	policies, err := uc.policiesByKey(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Перебираем кандидатов по возрастанию времени
	alternatives := make([]domain.BookingOption, 0)
	for _, candidate := range candidates {
		shifted, err := req.Option.ShiftTo(candidate.Start)
		if err != nil {
			continue
		}

		if !shifted.EndsOnOrBefore(regime.EndOfDay) {
			continue
		}

		if !index.IsFree(shifted) {
			continue
		}

		if !uc.allowed(shifted, policies, req) {
			continue
		}

		alternatives = append(alternatives, shifted)
		if uc.maxAlternatives > 0 && len(alternatives) >= uc.maxAlternatives {
			break
		}
	}

	return alternatives, nil
}

// policiesByKey загружает политики комнат варианта, ключ - код комнаты
func (uc *UseCase) policiesByKey(ctx context.Context, req *Request) (map[string]domain.LocationPolicy, error) {
	rooms, err := uc.locationsClient.GetVideoLinkRooms(ctx, req.PrisonCode, false)
	if err != nil {
		uc.logger.Error("CheckBookingAvailability: failed to get rooms for prison=%s: %v", req.PrisonCode, err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	byKey := make(map[string]domain.Room, len(rooms))
	for _, room := range rooms {
		byKey[room.Key] = room
	}

	keys := req.Option.LocationKeys()
	selected := make([]domain.Room, 0, len(keys))
	for _, key := range keys {
		room, ok := byKey[key]
		if !ok {
			uc.logger.Warn("CheckBookingAvailability: location=%s is not a video link room of prison=%s", key, req.PrisonCode)
			return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, key)
		}
		selected = append(selected, room)
	}

	policies, err := uc.policyLoader.PoliciesFor(ctx, selected)
	if err != nil {
		uc.logger.Error("CheckBookingAvailability: failed to load policies: %v", err)
		return nil, fmt.Errorf("%w: failed to load policies: %v", ErrInternal, err)
	}

	result := make(map[string]domain.LocationPolicy, len(policies))
	for _, p := range policies {
		result[p.Room.Key] = p
	}
	return result, nil
}

// allowed проверяет, что запрашивающая сторона может использовать каждую комнату варианта
func (uc *UseCase) allowed(option domain.BookingOption, policies map[string]domain.LocationPolicy, req *Request) bool {
	for _, part := range option.Parts() {
		policy, ok := policies[part.LocationKey]
		if !ok {
			return false
		}
		at := part.Interval.Start.On(req.Date)
		if !policy.AvailabilityFor(req.PartyType, req.PartyCode, at).IsAvailable() {
			return false
		}
	}
	return true
}
