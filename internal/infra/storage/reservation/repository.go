package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kratvil/HES-HotelService/internal/domain"
	"github.com/kratvil/HES-HotelService/pkg/dbmetrics"
	"github.com/kratvil/HES-HotelService/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"name",
	"date_from",
	"date_to",
	"telephone",
	"email",
	"people",
	"info",
	"state",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её —
// создание всегда идёт в паре с проверкой доступности.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"name",
			"date_from",
			"date_to",
			"telephone",
			"email",
			"people",
			"info",
			"state",
		).
		Values(
			res.Name,
			res.DateFrom,
			res.DateTo,
			res.Telephone,
			res.Email,
			res.People,
			res.Info,
			res.State,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// Update обновляет все изменяемые поля бронирования.
// Обновление несуществующей записи — ошибка целостности, ErrReservationNotFound.
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("name", res.Name).
		Set("date_from", res.DateFrom).
		Set("date_to", res.DateTo).
		Set("telephone", res.Telephone).
		Set("email", res.Email).
		Set("people", res.People).
		Set("info", res.Info).
		Set("state", res.State).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if rows == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// UpdateState переводит бронирование в новое состояние.
// Вызывается только внутри транзакции вместе с сопутствующими записями.
func (r *Repository) UpdateState(ctx context.Context, id int64, state domain.ReservationState) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("state", state).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateState - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateState - execute update: %v", ErrExecQuery, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateState - rows affected: %v", ErrExecQuery, err)
	}
	if rows == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// List получает бронирования с фильтрацией.
// Фильтр по пересечению дат использует полуоткрытые интервалы:
// date_from < overlapsTo AND overlapsFrom < date_to.
//
// Примеры использования:
//
// 1. Все бронирования:
//    filter := domain.ReservationsFilter{}
//
// 2. Активные бронирования, пересекающиеся с кандидатом (проверка доступности):
//    filter := domain.ReservationsFilter{
//        States:       domain.ActiveStates,
//        OverlapsFrom: &candidate.DateFrom,
//        OverlapsTo:   &candidate.DateTo,
//        ExcludeID:    &candidate.ID,
//    }
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("date_from ASC, id ASC")

	if len(filter.States) > 0 {
		states := make([]string, len(filter.States))
		for i, s := range filter.States {
			states[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"state": states})
	}

	if filter.OverlapsFrom != nil && filter.OverlapsTo != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"date_from": *filter.OverlapsTo}).
			Where(squirrel.Gt{"date_to": *filter.OverlapsFrom})
	}

	if filter.ExcludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *filter.ExcludeID})
	}

	// Внутри транзакции проверка доступности блокирует строки до записи
	if dbmetrics.IsInTransaction(ctx) && filter.OverlapsFrom != nil && filter.OverlapsTo != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan reservation: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrExecQuery, err)
	}

	return reservations, nil
}

// Delete удаляет бронирование.
// Удаление несуществующей записи — ошибка целостности, ErrReservationNotFound.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if rows == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Name,
		&res.DateFrom,
		&res.DateTo,
		&res.Telephone,
		&res.Email,
		&res.People,
		&res.Info,
		&res.State,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
