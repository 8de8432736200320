package prisonregime

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VideoLinkService/pkg/psqlbuilder"
)

// Repository репозиторий режимов работы тюрем
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPrisonCode получает начало и конец рабочего дня тюрьмы
func (r *Repository) GetByPrisonCode(ctx context.Context, prisonCode string) (*domain.PrisonRegime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("prison_code", "start_of_day", "end_of_day").
		From("prison_regime").
		Where(squirrel.Eq{"prison_code": prisonCode}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPrisonCode - build select query: %v", ErrBuildQuery, err)
	}

	var regime domain.PrisonRegime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&regime.PrisonCode,
		&regime.StartOfDay,
		&regime.EndOfDay,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRegimeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPrisonCode - scan regime: %v", ErrScanRow, err)
	}

	return &regime, nil
}
