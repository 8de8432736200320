package locationusage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VideoLinkService/pkg/psqlbuilder"
)

const (
	usageTable    = "location_usage"
	scheduleTable = "location_schedule"
)

var usageColumns = []string{
	"location_usage_id",
	"dps_location_id",
	"prison_code",
	"status",
	"usage",
	"allowed_parties",
	"blocked_from",
	"blocked_to",
	"comments",
	"created_by",
	"created_time",
	"amended_by",
	"amended_time",
}

var scheduleColumns = []string{
	"location_schedule_id",
	"location_usage_id",
	"start_day_of_week",
	"end_day_of_week",
	"start_time",
	"end_time",
	"usage",
	"allowed_parties",
	"notes",
	"created_by",
	"created_time",
}

// Repository репозиторий записей об использовании комнат и их расписаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByLocationID получает запись об использовании комнаты
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы изменения расписания шли последовательно
func (r *Repository) GetByLocationID(ctx context.Context, locationID uuid.UUID) (*domain.LocationUsageRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(usageColumns...).
		From(usageTable).
		Where(squirrel.Eq{"dps_location_id": locationID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocationID - build select query: %v", ErrBuildQuery, err)
	}

	var record domain.LocationUsageRecord
	var blockedFrom, blockedTo, amendedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.DpsLocationID,
		&record.PrisonCode,
		&record.Status,
		&record.Usage,
		pq.Array(&record.AllowedParties),
		&blockedFrom,
		&blockedTo,
		&record.Comments,
		&record.CreatedBy,
		&record.CreatedAt,
		&record.AmendedBy,
		&amendedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrLocationUsageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocationID - scan location usage: %v", ErrScanRow, err)
	}

	record.BlockedFrom = nullTimePtr(blockedFrom)
	record.BlockedTo = nullTimePtr(blockedTo)
	record.AmendedAt = nullTimePtr(amendedAt)

	return &record, nil
}

// Create создает запись об использовании комнаты
func (r *Repository) Create(ctx context.Context, record *domain.LocationUsageRecord) (*domain.LocationUsageRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(usageTable).
		Columns(
			"dps_location_id",
			"prison_code",
			"status",
			"usage",
			"allowed_parties",
			"blocked_from",
			"blocked_to",
			"comments",
			"created_by",
		).
		Values(
			record.DpsLocationID,
			record.PrisonCode,
			record.Status,
			record.Usage,
			pq.Array(record.AllowedParties),
			record.BlockedFrom,
			record.BlockedTo,
			record.Comments,
			record.CreatedBy,
		).
		Suffix("RETURNING location_usage_id, created_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return record, nil
}

// Update изменяет статус, использование и список допущенных сторон
func (r *Repository) Update(ctx context.Context, record *domain.LocationUsageRecord) (*domain.LocationUsageRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(usageTable).
		Set("status", record.Status).
		Set("usage", record.Usage).
		Set("allowed_parties", pq.Array(record.AllowedParties)).
		Set("blocked_from", record.BlockedFrom).
		Set("blocked_to", record.BlockedTo).
		Set("comments", record.Comments).
		Set("amended_by", record.AmendedBy).
		Set("amended_time", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"location_usage_id": record.ID}).
		Suffix("RETURNING amended_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var amendedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&amendedAt)
	if err == sql.ErrNoRows {
		return nil, ErrLocationUsageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	record.AmendedAt = nullTimePtr(amendedAt)
	return record, nil
}

// ReactivateExpiredBlocks возвращает в ACTIVE комнаты, временная блокировка которых закончилась до today
func (r *Repository) ReactivateExpiredBlocks(ctx context.Context, today time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(usageTable).
		Set("status", domain.LocationActive).
		Set("blocked_from", nil).
		Set("blocked_to", nil).
		Set("amended_by", "SYSTEM").
		Set("amended_time", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.LocationTemporarilyBlocked}).
		Where(squirrel.Lt{"blocked_to": today.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ReactivateExpiredBlocks - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ReactivateExpiredBlocks - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ReactivateExpiredBlocks - get rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

// GetScheduleRows получает строки расписания записи в порядке добавления
func (r *Repository) GetScheduleRows(ctx context.Context, locationUsageID int64) ([]domain.ScheduleRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From(scheduleTable).
		Where(squirrel.Eq{"location_usage_id": locationUsageID}).
		OrderBy("location_schedule_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleRows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleRows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.ScheduleRow, 0)
	for rows.Next() {
		var row domain.ScheduleRow
		err := rows.Scan(
			&row.ID,
			&row.LocationUsageID,
			&row.DayStart,
			&row.DayEnd,
			&row.StartTime,
			&row.EndTime,
			&row.Usage,
			pq.Array(&row.AllowedParties),
			&row.Notes,
			&row.CreatedBy,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetScheduleRows - scan row: %v", ErrScanRow, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetScheduleRows - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// CreateScheduleRow добавляет строку расписания
func (r *Repository) CreateScheduleRow(ctx context.Context, row *domain.ScheduleRow) (*domain.ScheduleRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(scheduleTable).
		Columns(
			"location_usage_id",
			"start_day_of_week",
			"end_day_of_week",
			"start_time",
			"end_time",
			"usage",
			"allowed_parties",
			"notes",
			"created_by",
		).
		Values(
			row.LocationUsageID,
			row.DayStart,
			row.DayEnd,
			row.StartTime,
			row.EndTime,
			row.Usage,
			pq.Array(row.AllowedParties),
			row.Notes,
			row.CreatedBy,
		).
		Suffix("RETURNING location_schedule_id, created_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateScheduleRow - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&row.ID, &row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateScheduleRow - execute insert: %v", ErrExecQuery, err)
	}

	return row, nil
}

// DeleteScheduleRows удаляет все строки расписания записи
func (r *Repository) DeleteScheduleRows(ctx context.Context, locationUsageID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(scheduleTable).
		Where(squirrel.Eq{"location_usage_id": locationUsageID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteScheduleRows - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteScheduleRows - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
