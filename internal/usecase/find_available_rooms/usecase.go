package find_available_rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	locationsClient "github.com/m04kA/SMC-VideoLinkService/internal/integrations/locations"
)

// UseCase use case поиска свободных комнат видеосвязи
// Результат носит рекомендательный характер: это снимок занятости на момент запроса,
// окончательную уникальность гарантирует запись бронирования
type UseCase struct {
	locationsClient  LocationsClient
	policyLoader     PolicyLoader
	slotGenerator    SlotGenerator
	occupancyService OccupancyService
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	locationsClient LocationsClient,
	policyLoader PolicyLoader,
	slotGenerator SlotGenerator,
	occupancyService OccupancyService,
	logger Logger,
) *UseCase {
	return &UseCase{
		locationsClient:  locationsClient,
		policyLoader:     policyLoader,
		slotGenerator:    slotGenerator,
		occupancyService: occupancyService,
		logger:           logger,
	}
}

// Execute выполняет use case поиска свободных комнат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailableRooms: prison=%s, date=%s, duration=%d, party=%s/%s",
		req.PrisonCode, req.Date.Format(domain.DateFormat), req.DurationMinutes, req.PartyType, req.PartyCode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	response := &Response{
		PrisonCode: req.PrisonCode,
		Date:       req.Date,
		Slots:      []domain.AvailableRoomSlot{},
	}

	// 2. Получаем включенные комнаты видеосвязи
	rooms, err := uc.locationsClient.GetVideoLinkRooms(ctx, req.PrisonCode, true)
	if err != nil {
		if errors.Is(err, locationsClient.ErrPrisonNotFound) {
			uc.logger.Warn("FindAvailableRooms: prison=%s not found", req.PrisonCode)
			return nil, ErrPrisonNotFound
		}
		uc.logger.Error("FindAvailableRooms: failed to get rooms for prison=%s: %v", req.PrisonCode, err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	if len(rooms) == 0 {
		uc.logger.Info("FindAvailableRooms: prison=%s has no video link rooms", req.PrisonCode)
		return response, nil
	}

	// 3. Окна: точное окно или кандидаты генератора
	windows, err := uc.windows(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(windows) == 0 {
		uc.logger.Info("FindAvailableRooms: no candidate windows for prison=%s, date=%s",
			req.PrisonCode, req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 4. Загружаем политики владения комнатами
	policies, err := uc.policyLoader.PoliciesFor(ctx, rooms)
	if err != nil {
		uc.logger.Error("FindAvailableRooms: failed to load policies: %v", err)
		return nil, fmt.Errorf("%w: failed to load policies: %v", ErrInternal, err)
	}

	// 5. Строим индекс занятости по всем комнатам
	keys := make([]string, len(rooms))
	for i, room := range rooms {
		keys[i] = room.Key
	}

	index, err := uc.occupancyService.Occupied(ctx, req.PrisonCode, req.Date, keys, req.ExcludeBookingID)
	if err != nil {
		uc.logger.Error("FindAvailableRooms: failed to get occupancy: %v", err)
		return nil, fmt.Errorf("%w: failed to get occupancy: %v", ErrInternal, err)
	}

	// 6. Классифицируем свободные окна
	candidates := make([]Candidate, 0)
	for _, policy := range policies {
		for _, window := range windows {
			if index.IsOccupied(policy.Room.Key, window) {
				continue
			}

			status := policy.AvailabilityFor(req.PartyType, req.PartyCode, window.Start.On(req.Date))
			if !status.IsAvailable() {
				continue
			}

			candidates = append(candidates, Candidate{
				Room:         policy.Room,
				Interval:     window,
				Availability: status,
			})
		}
	}

	// 7. Собираем итоговый список
	slots, err := BuildAvailableSlots(candidates)
	if err != nil {
		uc.logger.Error("FindAvailableRooms: room configuration error for prison=%s: %v", req.PrisonCode, err)
		return nil, err
	}

	uc.logger.Info("FindAvailableRooms: found %d slots in %d rooms for prison=%s, date=%s",
		len(slots), len(rooms), req.PrisonCode, req.Date.Format(domain.DateFormat))

	response.Slots = slots
	return response, nil
}

func (uc *UseCase) windows(ctx context.Context, req *Request) ([]domain.Interval, error) {
	if req.HasExactWindow() {
		return []domain.Interval{{Start: *req.StartTime, End: *req.EndTime}}, nil
	}

	windows, err := uc.slotGenerator.Generate(ctx, req.PrisonCode, req.Date, req.DurationMinutes, req.TimeSlots)
	if err != nil {
		uc.logger.Error("FindAvailableRooms: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}
	return windows, nil
}
