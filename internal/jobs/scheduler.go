package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ErrInvalidSchedule возвращается при некорректном cron-выражении
var ErrInvalidSchedule = errors.New("jobs: invalid schedule")

// BlockReactivator снимает истекшие временные блокировки комнат
type BlockReactivator interface {
	ReactivateExpiredBlocks(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler фоновые задачи сервиса
type Scheduler struct {
	cron        *cron.Cron
	reactivator BlockReactivator
	timeout     time.Duration
	logger      Logger
}

// NewScheduler создает планировщик; задача реактивации запускается по schedule (cron-выражение)
func NewScheduler(reactivator BlockReactivator, schedule string, timeout time.Duration, logger Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:        cron.New(),
		reactivator: reactivator,
		timeout:     timeout,
		logger:      logger,
	}

	if _, err := s.cron.AddFunc(schedule, s.ReactivateBlocks); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, schedule, err)
	}

	return s, nil
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.logger.Info("Scheduler: starting %d jobs", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop останавливает планировщик и ждет завершения запущенных задач
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler: stopped")
}

// ReactivateBlocks одна итерация задачи реактивации
func (s *Scheduler) ReactivateBlocks() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	count, err := s.reactivator.ReactivateExpiredBlocks(ctx)
	if err != nil {
		s.logger.Error("Scheduler: block reactivation failed: %v", err)
		return
	}

	s.logger.Info("Scheduler: block reactivation done, %d locations reactivated", count)
}
