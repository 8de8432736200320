package ownership

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	usageRepo "github.com/m04kA/SMC-VideoLinkService/internal/infra/storage/locationusage"
)

// Service загружает политики владения комнатами
type Service struct {
	usageRepo LocationUsageRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса
func NewService(usageRepo LocationUsageRepository, logger Logger) *Service {
	return &Service{
		usageRepo: usageRepo,
		logger:    logger,
	}
}

// PolicyFor загружает политику комнаты
// Отсутствие записи не ошибка: такая комната общая (Record == nil)
// Строки расписания читаются только для комнат в режиме SCHEDULE
func (s *Service) PolicyFor(ctx context.Context, room domain.Room) (domain.LocationPolicy, error) {
	policy := domain.LocationPolicy{Room: room}

	record, err := s.usageRepo.GetByLocationID(ctx, room.ID)
	if err != nil {
		if errors.Is(err, usageRepo.ErrLocationUsageNotFound) {
			return policy, nil
		}
		s.logger.Error("PolicyFor: failed to get usage for location=%s: %v", room.Key, err)
		return domain.LocationPolicy{}, fmt.Errorf("%w: PolicyFor - get usage: %v", ErrInternal, err)
	}
	policy.Record = record

	if record.Usage != domain.UsageSchedule {
		return policy, nil
	}

	rows, err := s.usageRepo.GetScheduleRows(ctx, record.ID)
	if err != nil {
		s.logger.Error("PolicyFor: failed to get schedule for location=%s: %v", room.Key, err)
		return domain.LocationPolicy{}, fmt.Errorf("%w: PolicyFor - get schedule rows: %v", ErrInternal, err)
	}
	policy.Rows = rows

	return policy, nil
}

// PoliciesFor загружает политики набора комнат в том же порядке
func (s *Service) PoliciesFor(ctx context.Context, rooms []domain.Room) ([]domain.LocationPolicy, error) {
	policies := make([]domain.LocationPolicy, 0, len(rooms))
	for _, room := range rooms {
		policy, err := s.PolicyFor(ctx, room)
		if err != nil {
			return nil, err
		}
		policies = append(policies, policy)
	}
	return policies, nil
}
