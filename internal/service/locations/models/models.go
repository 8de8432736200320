package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

// Request модели

// DecorateRequest запрос на подключение комнаты к политике владения
type DecorateRequest struct {
	LocationID     uuid.UUID  `json:"-"`
	PrisonCode     string     `json:"prisonCode"`
	Status         string     `json:"status"`                   // ACTIVE, INACTIVE, TEMPORARILY_BLOCKED
	Usage          string     `json:"usage"`                    // COURT, PROBATION, SHARED, SCHEDULE
	AllowedParties []string   `json:"allowedParties,omitempty"` // пусто = любая сторона типа
	BlockedFrom    *time.Time `json:"blockedFrom,omitempty"`
	BlockedTo      *time.Time `json:"blockedTo,omitempty"`
	Comments       *string    `json:"comments,omitempty"`
	User           string     `json:"-"`
}

// AmendRequest запрос на изменение записи об использовании
// Все поля опциональны - обновляются только переданные значения
type AmendRequest struct {
	LocationID     uuid.UUID  `json:"-"`
	Status         *string    `json:"status,omitempty"`
	Usage          *string    `json:"usage,omitempty"`
	AllowedParties *[]string  `json:"allowedParties,omitempty"`
	BlockedFrom    *time.Time `json:"blockedFrom,omitempty"`
	BlockedTo      *time.Time `json:"blockedTo,omitempty"`
	Comments       *string    `json:"comments,omitempty"`
	User           string     `json:"-"`
}

// AddScheduleRowRequest запрос на добавление строки расписания
type AddScheduleRowRequest struct {
	LocationID     uuid.UUID `json:"-"`
	DayStart       int       `json:"dayStart"` // 1 = понедельник ... 7 = воскресенье
	DayEnd         int       `json:"dayEnd"`
	StartTime      string    `json:"startTime"` // HH:MM
	EndTime        string    `json:"endTime"`   // HH:MM
	Usage          string    `json:"usage"`     // SHARED, COURT, PROBATION
	AllowedParties []string  `json:"allowedParties,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
	User           string    `json:"-"`
}

// Response модели

// ScheduleRowResponse строка расписания
type ScheduleRowResponse struct {
	ID             int64            `json:"id"`
	DayStart       int              `json:"dayStart"`
	DayEnd         int              `json:"dayEnd"`
	StartTime      types.TimeString `json:"startTime"`
	EndTime        types.TimeString `json:"endTime"`
	Usage          string           `json:"usage"`
	AllowedParties []string         `json:"allowedParties"`
	Notes          *string          `json:"notes,omitempty"`
}

// LocationUsageResponse запись об использовании комнаты с расписанием
type LocationUsageResponse struct {
	ID             int64                 `json:"id"`
	LocationID     uuid.UUID             `json:"locationId"`
	PrisonCode     string                `json:"prisonCode"`
	Status         string                `json:"status"`
	Usage          string                `json:"usage"`
	AllowedParties []string              `json:"allowedParties"`
	BlockedFrom    *time.Time            `json:"blockedFrom,omitempty"`
	BlockedTo      *time.Time            `json:"blockedTo,omitempty"`
	Comments       *string               `json:"comments,omitempty"`
	Schedule       []ScheduleRowResponse `json:"schedule"`
	CreatedBy      string                `json:"createdBy"`
	CreatedAt      time.Time             `json:"createdAt"`
	AmendedBy      *string               `json:"amendedBy,omitempty"`
	AmendedAt      *time.Time            `json:"amendedAt,omitempty"`
}

// Методы конвертации

// ToDomainRecord конвертирует запрос в domain модель
func (r *DecorateRequest) ToDomainRecord() *domain.LocationUsageRecord {
	return &domain.LocationUsageRecord{
		DpsLocationID:  r.LocationID,
		PrisonCode:     r.PrisonCode,
		Status:         domain.LocationStatus(r.Status),
		Usage:          domain.LocationUsage(r.Usage),
		AllowedParties: nonNil(r.AllowedParties),
		BlockedFrom:    r.BlockedFrom,
		BlockedTo:      r.BlockedTo,
		Comments:       r.Comments,
		CreatedBy:      r.User,
	}
}

// ApplyToRecord применяет изменения к записи
func (r *AmendRequest) ApplyToRecord(record *domain.LocationUsageRecord) {
	if r.Status != nil {
		record.Status = domain.LocationStatus(*r.Status)
	}
	if r.Usage != nil {
		record.Usage = domain.LocationUsage(*r.Usage)
	}
	if r.AllowedParties != nil {
		record.AllowedParties = nonNil(*r.AllowedParties)
	}
	if r.Comments != nil {
		record.Comments = r.Comments
	}

	// Период блокировки имеет смысл только для временно заблокированной комнаты
	if record.Status == domain.LocationTemporarilyBlocked {
		if r.BlockedFrom != nil {
			record.BlockedFrom = r.BlockedFrom
		}
		if r.BlockedTo != nil {
			record.BlockedTo = r.BlockedTo
		}
	} else {
		record.BlockedFrom = nil
		record.BlockedTo = nil
	}

	user := r.User
	record.AmendedBy = &user
}

// ToDomainRow конвертирует запрос в строку расписания
func (r *AddScheduleRowRequest) ToDomainRow(locationUsageID int64) (*domain.ScheduleRow, error) {
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.ScheduleRow{
		LocationUsageID: locationUsageID,
		DayStart:        r.DayStart,
		DayEnd:          r.DayEnd,
		StartTime:       start,
		EndTime:         end,
		Usage:           domain.ScheduleUsage(r.Usage),
		AllowedParties:  nonNil(r.AllowedParties),
		Notes:           r.Notes,
		CreatedBy:       r.User,
	}, nil
}

// FromDomain конвертирует domain модели в DTO
func FromDomain(record *domain.LocationUsageRecord, rows []domain.ScheduleRow) *LocationUsageResponse {
	if record == nil {
		return nil
	}

	schedule := make([]ScheduleRowResponse, 0, len(rows))
	for _, row := range rows {
		schedule = append(schedule, FromDomainRow(row))
	}

	return &LocationUsageResponse{
		ID:             record.ID,
		LocationID:     record.DpsLocationID,
		PrisonCode:     record.PrisonCode,
		Status:         string(record.Status),
		Usage:          string(record.Usage),
		AllowedParties: nonNil(record.AllowedParties),
		BlockedFrom:    record.BlockedFrom,
		BlockedTo:      record.BlockedTo,
		Comments:       record.Comments,
		Schedule:       schedule,
		CreatedBy:      record.CreatedBy,
		CreatedAt:      record.CreatedAt,
		AmendedBy:      record.AmendedBy,
		AmendedAt:      record.AmendedAt,
	}
}

// FromDomainRow конвертирует строку расписания в DTO
func FromDomainRow(row domain.ScheduleRow) ScheduleRowResponse {
	return ScheduleRowResponse{
		ID:             row.ID,
		DayStart:       row.DayStart,
		DayEnd:         row.DayEnd,
		StartTime:      row.StartTime,
		EndTime:        row.EndTime,
		Usage:          string(row.Usage),
		AllowedParties: nonNil(row.AllowedParties),
		Notes:          row.Notes,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
