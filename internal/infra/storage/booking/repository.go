package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VideoLinkService/pkg/psqlbuilder"
)

var appointmentColumns = []string{
	"pa.prison_appointment_id",
	"pa.video_booking_id",
	"pa.prison_code",
	"pa.prisoner_number",
	"pa.appointment_type",
	"pa.prison_loc_key",
	"pa.appointment_date",
	"pa.start_time",
	"pa.end_time",
}

// Repository репозиторий для чтения видео-бронирований и их тюремных встреч
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бронирование по ID вместе со всеми встречами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.VideoBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"video_booking_id",
		"booking_type",
		"court_code",
		"probation_team_code",
		"status_code",
		"created_by",
		"created_time",
		"amended_time",
	).
		From("video_booking").
		Where(squirrel.Eq{"video_booking_id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.VideoBooking
	var amendedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.BookingType,
		&booking.CourtCode,
		&booking.ProbationTeamCode,
		&booking.Status,
		&booking.CreatedBy,
		&booking.CreatedAt,
		&amendedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	if amendedAt.Valid {
		booking.AmendedAt = &amendedAt.Time
	}

	appointments, err := r.getAppointmentsByBookingID(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	booking.Appointments = appointments

	return &booking, nil
}

// GetActiveAppointments получает встречи активных бронирований в указанных комнатах на дату
// Отмененные бронирования не учитываются
func (r *Repository) GetActiveAppointments(ctx context.Context, prisonCode string, date time.Time, locationKeys []string) ([]domain.PrisonAppointment, error) {
	if len(locationKeys) == 0 {
		return []domain.PrisonAppointment{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	inactive := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactive[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("prison_appointment pa").
		Join("video_booking vb ON vb.video_booking_id = pa.video_booking_id").
		Where(squirrel.Eq{"pa.prison_code": prisonCode}).
		Where(squirrel.Eq{"pa.appointment_date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"pa.prison_loc_key": locationKeys}).
		Where(squirrel.NotEq{"vb.status_code": inactive}).
		OrderBy("pa.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveAppointments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveAppointments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

func (r *Repository) getAppointmentsByBookingID(ctx context.Context, executor DBExecutor, bookingID int64) ([]domain.PrisonAppointment, error) {
	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("prison_appointment pa").
		Where(squirrel.Eq{"pa.video_booking_id": bookingID}).
		OrderBy("pa.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getAppointmentsByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getAppointmentsByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// scanAppointments сканирует результаты запроса в слайс встреч
func (r *Repository) scanAppointments(rows *sql.Rows) ([]domain.PrisonAppointment, error) {
	appointments := make([]domain.PrisonAppointment, 0)

	for rows.Next() {
		var a domain.PrisonAppointment

		err := rows.Scan(
			&a.ID,
			&a.VideoBookingID,
			&a.PrisonCode,
			&a.PrisonerNumber,
			&a.AppointmentType,
			&a.LocationKey,
			&a.Date,
			&a.StartTime,
			&a.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
