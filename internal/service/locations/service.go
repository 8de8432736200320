package locations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	usageRepo "github.com/m04kA/SMC-VideoLinkService/internal/infra/storage/locationusage"
	locationsClient "github.com/m04kA/SMC-VideoLinkService/internal/integrations/locations"
	"github.com/m04kA/SMC-VideoLinkService/internal/service/locations/models"
)

// Service сервис администрирования политик владения комнатами
type Service struct {
	usageRepo       LocationUsageRepository
	locationsClient LocationsClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	usageRepo LocationUsageRepository,
	locationsClient LocationsClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		usageRepo:       usageRepo,
		locationsClient: locationsClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Get получает запись об использовании комнаты вместе с расписанием
// Для недекорированной комнаты возвращается ErrLocationUsageNotFound
func (s *Service) Get(ctx context.Context, locationID uuid.UUID) (*models.LocationUsageResponse, error) {
	s.logger.Info("Get: fetching usage for location=%s", locationID)

	record, err := s.getRecord(ctx, "Get", locationID)
	if err != nil {
		return nil, err
	}

	rows, err := s.usageRepo.GetScheduleRows(ctx, record.ID)
	if err != nil {
		s.logger.Error("Get: failed to get schedule for location=%s: %v", locationID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomain(record, rows), nil
}

// Decorate подключает комнату к политике владения
// Комната должна быть комнатой видеосвязи указанной тюрьмы
func (s *Service) Decorate(ctx context.Context, req *models.DecorateRequest) (*models.LocationUsageResponse, error) {
	s.logger.Info("Decorate: location=%s, prison=%s, usage=%s by %s", req.LocationID, req.PrisonCode, req.Usage, req.User)

	// 1. Валидируем входные данные
	record := req.ToDomainRecord()
	if err := validateRecord(record); err != nil {
		s.logger.Warn("Decorate: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что комната есть в справочнике
	if err := s.checkRoomExists(ctx, req.PrisonCode, req.LocationID); err != nil {
		return nil, err
	}

	var created *domain.LocationUsageRecord
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 3. Проверяем, что комната еще не декорирована
		existing, err := s.usageRepo.GetByLocationID(ctx, req.LocationID)
		if err != nil && !errors.Is(err, usageRepo.ErrLocationUsageNotFound) {
			s.logger.Error("Decorate: failed to check existing usage: %v", err)
			return fmt.Errorf("%w: Decorate - repository error: %v", ErrInternal, err)
		}
		if existing != nil {
			s.logger.Warn("Decorate: location=%s is already decorated", req.LocationID)
			return ErrAlreadyDecorated
		}

		// 4. Создаем запись
		created, err = s.usageRepo.Create(ctx, record)
		if err != nil {
			s.logger.Error("Decorate: repository error: %v", err)
			return fmt.Errorf("%w: Decorate - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Decorate: created usage id=%d for location=%s", created.ID, req.LocationID)
	return models.FromDomain(created, nil), nil
}

// Amend изменяет запись об использовании комнаты
// Уход из режима SCHEDULE удаляет строки расписания
func (s *Service) Amend(ctx context.Context, req *models.AmendRequest) (*models.LocationUsageResponse, error) {
	s.logger.Info("Amend: location=%s by %s", req.LocationID, req.User)

	var (
		updated *domain.LocationUsageRecord
		rows    []domain.ScheduleRow
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Получаем запись под блокировкой
		record, err := s.getRecord(ctx, "Amend", req.LocationID)
		if err != nil {
			return err
		}
		previousUsage := record.Usage

		// 2. Применяем изменения и валидируем
		req.ApplyToRecord(record)
		if err := validateRecord(record); err != nil {
			s.logger.Warn("Amend: validation failed: %v", err)
			return err
		}

		// 3. Вне режима SCHEDULE строк расписания быть не должно
		if previousUsage == domain.UsageSchedule && record.Usage != domain.UsageSchedule {
			if err := s.usageRepo.DeleteScheduleRows(ctx, record.ID); err != nil {
				s.logger.Error("Amend: failed to delete schedule rows: %v", err)
				return fmt.Errorf("%w: Amend - repository error: %v", ErrInternal, err)
			}
			s.logger.Info("Amend: location=%s left schedule mode, schedule rows deleted", req.LocationID)
		}

		// 4. Сохраняем запись
		updated, err = s.usageRepo.Update(ctx, record)
		if err != nil {
			if errors.Is(err, usageRepo.ErrLocationUsageNotFound) {
				return ErrLocationUsageNotFound
			}
			s.logger.Error("Amend: repository error: %v", err)
			return fmt.Errorf("%w: Amend - repository error: %v", ErrInternal, err)
		}

		rows, err = s.usageRepo.GetScheduleRows(ctx, updated.ID)
		if err != nil {
			return fmt.Errorf("%w: Amend - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Amend: updated usage id=%d", updated.ID)
	return models.FromDomain(updated, rows), nil
}

// AddScheduleRow добавляет строку расписания комнате в режиме SCHEDULE
// Проверка дублей выполняется в сериализуемой транзакции под блокировкой записи
func (s *Service) AddScheduleRow(ctx context.Context, req *models.AddScheduleRowRequest) (*models.LocationUsageResponse, error) {
	s.logger.Info("AddScheduleRow: location=%s, days=%d-%d, %s-%s, usage=%s by %s",
		req.LocationID, req.DayStart, req.DayEnd, req.StartTime, req.EndTime, req.Usage, req.User)

	var (
		record *domain.LocationUsageRecord
		rows   []domain.ScheduleRow
	)

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		var err error

		// 1. Получаем запись под блокировкой
		record, err = s.getRecord(ctx, "AddScheduleRow", req.LocationID)
		if err != nil {
			return err
		}

		// 2. Расписание разрешено только в режиме SCHEDULE
		if record.Usage != domain.UsageSchedule {
			s.logger.Warn("AddScheduleRow: location=%s usage is %s", req.LocationID, record.Usage)
			return ErrNotScheduleMode
		}

		// 3. Валидируем строку
		row, err := req.ToDomainRow(record.ID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := row.Validate(); err != nil {
			s.logger.Warn("AddScheduleRow: validation failed: %v", err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		// 4. Проверяем дубли
		rows, err = s.usageRepo.GetScheduleRows(ctx, record.ID)
		if err != nil {
			s.logger.Error("AddScheduleRow: failed to get schedule rows: %v", err)
			return fmt.Errorf("%w: AddScheduleRow - repository error: %v", ErrInternal, err)
		}
		for _, existing := range rows {
			if row.IsDuplicateOf(existing) {
				s.logger.Warn("AddScheduleRow: duplicate of row id=%d", existing.ID)
				return ErrDuplicateScheduleRow
			}
		}

		// 5. Сохраняем строку
		created, err := s.usageRepo.CreateScheduleRow(ctx, row)
		if err != nil {
			s.logger.Error("AddScheduleRow: repository error: %v", err)
			return fmt.Errorf("%w: AddScheduleRow - repository error: %v", ErrInternal, err)
		}
		rows = append(rows, *created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("AddScheduleRow: location=%s now has %d schedule rows", req.LocationID, len(rows))
	return models.FromDomain(record, rows), nil
}

// ReactivateExpiredBlocks возвращает в ACTIVE комнаты, блокировка которых закончилась
func (s *Service) ReactivateExpiredBlocks(ctx context.Context) (int64, error) {
	today := s.timeProvider.Now()

	count, err := s.usageRepo.ReactivateExpiredBlocks(ctx, today)
	if err != nil {
		s.logger.Error("ReactivateExpiredBlocks: repository error: %v", err)
		return 0, fmt.Errorf("%w: ReactivateExpiredBlocks - repository error: %v", ErrInternal, err)
	}

	if count > 0 {
		s.logger.Info("ReactivateExpiredBlocks: reactivated %d locations", count)
	}
	return count, nil
}

// Вспомогательные методы

func (s *Service) getRecord(ctx context.Context, op string, locationID uuid.UUID) (*domain.LocationUsageRecord, error) {
	record, err := s.usageRepo.GetByLocationID(ctx, locationID)
	if err != nil {
		if errors.Is(err, usageRepo.ErrLocationUsageNotFound) {
			s.logger.Warn("%s: usage for location=%s not found", op, locationID)
			return nil, ErrLocationUsageNotFound
		}
		s.logger.Error("%s: repository error for location=%s: %v", op, locationID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return record, nil
}

// checkRoomExists проверяет, что комната является комнатой видеосвязи тюрьмы
func (s *Service) checkRoomExists(ctx context.Context, prisonCode string, locationID uuid.UUID) error {
	rooms, err := s.locationsClient.GetVideoLinkRooms(ctx, prisonCode, false)
	if err != nil {
		if errors.Is(err, locationsClient.ErrPrisonNotFound) {
			s.logger.Warn("Decorate: prison=%s not found", prisonCode)
			return ErrLocationNotFound
		}
		s.logger.Error("Decorate: failed to get rooms for prison=%s: %v", prisonCode, err)
		return fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	for _, room := range rooms {
		if room.ID == locationID {
			return nil
		}
	}

	s.logger.Warn("Decorate: location=%s is not a video link room of prison=%s", locationID, prisonCode)
	return ErrLocationNotFound
}

// validateRecord валидирует запись об использовании
func validateRecord(record *domain.LocationUsageRecord) error {
	if record.PrisonCode == "" {
		return fmt.Errorf("%w: prisonCode is required", ErrInvalidInput)
	}

	if !record.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, record.Status)
	}

	if !record.Usage.IsValid() {
		return fmt.Errorf("%w: unknown usage %q", ErrInvalidInput, record.Usage)
	}

	// Список сторон допустим только для выделенных комнат
	if len(record.AllowedParties) > 0 && record.Usage != domain.UsageCourt && record.Usage != domain.UsageProbation {
		return fmt.Errorf("%w: allowedParties require COURT or PROBATION usage", ErrInvalidInput)
	}

	if record.Status == domain.LocationTemporarilyBlocked {
		if record.BlockedTo == nil {
			return fmt.Errorf("%w: blockedTo is required for a temporary block", ErrInvalidInput)
		}
		if record.BlockedFrom != nil && record.BlockedTo.Before(*record.BlockedFrom) {
			return fmt.Errorf("%w: blockedTo is before blockedFrom", ErrInvalidInput)
		}
	}

	return nil
}
