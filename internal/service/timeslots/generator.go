package timeslots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	regimeRepo "github.com/m04kA/SMC-VideoLinkService/internal/infra/storage/prisonregime"
	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

// Defaults режим и шаг по умолчанию для тюрем без собственного режима
type Defaults struct {
	StartOfDay  types.TimeString
	EndOfDay    types.TimeString
	StepMinutes int
}

// DefaultSettings значения по умолчанию из domain
func DefaultSettings() Defaults {
	return Defaults{
		StartOfDay:  domain.DefaultStartOfDay,
		EndOfDay:    domain.DefaultEndOfDay,
		StepMinutes: domain.SlotStepMinutes,
	}
}

// Generator генератор кандидатов времени встречи в пределах рабочего дня тюрьмы
type Generator struct {
	regimeRepo   RegimeRepository
	defaults     Defaults
	timeProvider TimeProvider
	logger       Logger
}

// NewGenerator создает новый генератор
func NewGenerator(regimeRepo RegimeRepository, defaults Defaults, logger Logger) *Generator {
	return NewGeneratorWithTimeProvider(regimeRepo, defaults, &RealTimeProvider{}, logger)
}

// NewGeneratorWithTimeProvider создает генератор с заданным источником времени
func NewGeneratorWithTimeProvider(regimeRepo RegimeRepository, defaults Defaults, timeProvider TimeProvider, logger Logger) *Generator {
	if defaults.StepMinutes <= 0 {
		defaults.StepMinutes = domain.SlotStepMinutes
	}
	return &Generator{
		regimeRepo:   regimeRepo,
		defaults:     defaults,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Regime возвращает режим тюрьмы; при его отсутствии используется режим по умолчанию
func (g *Generator) Regime(ctx context.Context, prisonCode string) (domain.PrisonRegime, error) {
	regime, err := g.regimeRepo.GetByPrisonCode(ctx, prisonCode)
	if err != nil {
		if errors.Is(err, regimeRepo.ErrRegimeNotFound) {
			g.logger.Warn("Regime: no regime for prison=%s, using default %s-%s",
				prisonCode, g.defaults.StartOfDay, g.defaults.EndOfDay)
			return domain.PrisonRegime{
				PrisonCode: prisonCode,
				StartOfDay: g.defaults.StartOfDay,
				EndOfDay:   g.defaults.EndOfDay,
			}, nil
		}
		g.logger.Error("Regime: failed to get regime for prison=%s: %v", prisonCode, err)
		return domain.PrisonRegime{}, fmt.Errorf("%w: Regime - repository error: %v", ErrInternal, err)
	}
	return *regime, nil
}

// Generate возвращает кандидатов длительностью durationMinutes на дату date
// Пустой список buckets означает отсутствие фильтра по части дня
func (g *Generator) Generate(
	ctx context.Context,
	prisonCode string,
	date time.Time,
	durationMinutes int,
	buckets []domain.TimeSlot,
) ([]domain.Interval, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, durationMinutes)
	}

	regime, err := g.Regime(ctx, prisonCode)
	if err != nil {
		return nil, err
	}

	return Candidates(regime, date, g.timeProvider.Now(), durationMinutes, g.defaults.StepMinutes, buckets), nil
}

// Now текущее время генератора
func (g *Generator) Now() time.Time {
	return g.timeProvider.Now()
}

// Candidates генерирует кандидатов с шагом stepMinutes от начала до конца дня режима
// Кандидат сохраняется, только если start+duration не выходит за конец дня
func Candidates(
	regime domain.PrisonRegime,
	date time.Time,
	now time.Time,
	durationMinutes int,
	stepMinutes int,
	buckets []domain.TimeSlot,
) []domain.Interval {
	result := make([]domain.Interval, 0)

	// Прошедшие даты не имеют кандидатов
	if isDateInPast(date, now) {
		return result
	}

	start := regime.StartOfDay

	// Сегодня: начинаем со следующей границы после текущего времени
	if isSameDay(date, now) && now.After(regime.StartOfDay.On(now)) {
		next, ok := nextBoundary(now)
		if !ok {
			return result
		}
		if next.IsAfter(start) {
			start = next
		}
	}

	for current := start; current.IsBefore(regime.EndOfDay); {
		end, err := current.AddMinutes(durationMinutes)
		if err != nil || end.IsAfter(regime.EndOfDay) {
			break
		}

		if matchesAny(current, buckets) {
			result = append(result, domain.Interval{Start: current, End: end})
		}

		current, err = current.AddMinutes(stepMinutes)
		if err != nil {
			break
		}
	}

	return result
}

// nextBoundary округляет время вперед до четверти часа:
// :00 -> :15, :01-:15 -> :30, :16-:30 -> :45, иначе следующий час :00
func nextBoundary(now time.Time) (types.TimeString, bool) {
	hour, minute := now.Hour(), now.Minute()

	var minutes int
	switch {
	case minute == 0:
		minutes = hour*60 + 15
	case minute <= 15:
		minutes = hour*60 + 30
	case minute <= 30:
		minutes = hour*60 + 45
	default:
		minutes = (hour + 1) * 60
	}

	t, err := types.FromMinutes(minutes)
	if err != nil {
		return "", false
	}
	return t, true
}

func matchesAny(start types.TimeString, buckets []domain.TimeSlot) bool {
	if len(buckets) == 0 {
		return true
	}
	for _, b := range buckets {
		if b.Matches(start) {
			return true
		}
	}
	return false
}

// isDateInPast проверяет, что дата раньше сегодняшней
func isDateInPast(date, now time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}

// isSameDay проверяет, что даты совпадают
func isSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
