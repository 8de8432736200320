package check_booking_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VideoLinkService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VideoLinkService/pkg/metrics"
)

// UseCase use case проверки доступности конкретного бронирования
// Результат носит рекомендательный характер: две параллельные проверки могут
// обе увидеть комнату свободной, уникальность обеспечивает запись бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	occupancyService OccupancyService
	slotGenerator    SlotGenerator
	locationsClient  LocationsClient
	policyLoader     PolicyLoader
	metrics          MetricsRecorder
	maxAlternatives  int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// maxAlternatives = 0 снимает ограничение на число альтернатив
func NewUseCase(
	bookingRepo BookingRepository,
	occupancyService OccupancyService,
	slotGenerator SlotGenerator,
	locationsClient LocationsClient,
	policyLoader PolicyLoader,
	metrics MetricsRecorder,
	maxAlternatives int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		occupancyService: occupancyService,
		slotGenerator:    slotGenerator,
		locationsClient:  locationsClient,
		policyLoader:     policyLoader,
		metrics:          metrics,
		maxAlternatives:  maxAlternatives,
		logger:           logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckBookingAvailability: prison=%s, date=%s, main=%s %s, party=%s/%s",
		req.PrisonCode, req.Date.Format(domain.DateFormat), req.Option.Main.LocationKey,
		req.Option.Main.Interval, req.PartyType, req.PartyCode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckBookingAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Изменение без смены времени и комнат всегда доступно
	if req.ExcludeBookingID != nil {
		unchanged, err := uc.isUnchanged(ctx, req)
		if err != nil {
			return nil, err
		}
		if unchanged {
			uc.logger.Info("CheckBookingAvailability: booking id=%d is unchanged", *req.ExcludeBookingID)
			uc.record(metrics.OutcomeUnchanged)
			return &Response{Available: true, Alternatives: []domain.BookingOption{}}, nil
		}
	}

	// 3. Индекс занятости по комнатам варианта без собственных встреч бронирования
	index, err := uc.occupancyService.Occupied(ctx, req.PrisonCode, req.Date, req.Option.LocationKeys(), req.ExcludeBookingID)
	if err != nil {
		uc.logger.Error("CheckBookingAvailability: failed to get occupancy: %v", err)
		return nil, fmt.Errorf("%w: failed to get occupancy: %v", ErrInternal, err)
	}

	// 4. Каждая часть должна быть свободна
	if index.IsFree(req.Option) {
		uc.record(metrics.OutcomeAvailable)
		return &Response{Available: true, Alternatives: []domain.BookingOption{}}, nil
	}

	// 5. Ищем альтернативы
	alternatives, err := uc.findAlternatives(ctx, req, index)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CheckBookingAvailability: requested option is unavailable, %d alternatives found", len(alternatives))
	uc.record(metrics.OutcomeUnavailable)

	return &Response{Available: false, Alternatives: alternatives}, nil
}

// isUnchanged сравнивает вариант с текущим состоянием изменяемого бронирования
func (uc *UseCase) isUnchanged(ctx context.Context, req *Request) (bool, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, *req.ExcludeBookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CheckBookingAvailability: booking id=%d not found", *req.ExcludeBookingID)
			return false, ErrBookingNotFound
		}
		uc.logger.Error("CheckBookingAvailability: failed to get booking id=%d: %v", *req.ExcludeBookingID, err)
		return false, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	return booking.IsActive() && booking.MatchesOption(req.PrisonCode, req.Date, req.Option), nil
}

func (uc *UseCase) record(outcome string) {
	if uc.metrics != nil {
		uc.metrics.RecordAvailabilityCheck(outcome)
	}
}
