package guest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kratvil/HES-HotelService/internal/domain"
	"github.com/kratvil/HES-HotelService/pkg/dbmetrics"
	"github.com/kratvil/HES-HotelService/pkg/psqlbuilder"
)

var guestColumns = []string{
	"id",
	"full_name",
	"room",
	"id_card",
	"generation",
	"info",
	"reservation_id",
}

// Repository репозиторий для работы с гостями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гостей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись гостя (при заселении по брони)
func (r *Repository) Create(ctx context.Context, g *domain.Guest) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("guests").
		Columns(
			"full_name",
			"room",
			"id_card",
			"generation",
			"info",
			"reservation_id",
		).
		Values(
			g.Name,
			g.Room,
			g.IDCard,
			g.Generation,
			g.Info,
			g.ReservationID,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&g.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return g, nil
}

// Update обновляет запись гостя.
// Обновление несуществующей записи — ошибка целостности, ErrGuestNotFound.
func (r *Repository) Update(ctx context.Context, g *domain.Guest) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("guests").
		Set("full_name", g.Name).
		Set("room", g.Room).
		Set("id_card", g.IDCard).
		Set("generation", g.Generation).
		Set("info", g.Info).
		Set("reservation_id", g.ReservationID).
		Where(squirrel.Eq{"id": g.ID}).
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
		return ErrGuestNotFound
	}

	return nil
}

// SetRoom переселяет гостя: записывает ключ комнаты ("" = без комнаты)
func (r *Repository) SetRoom(ctx context.Context, guestID int64, roomKey string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("guests").
		Set("room", roomKey).
		Where(squirrel.Eq{"id": guestID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetRoom - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetRoom - execute update: %v", ErrExecQuery, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetRoom - rows affected: %v", ErrExecQuery, err)
	}
	if rows == 0 {
		return ErrGuestNotFound
	}

	return nil
}

// Delete удаляет запись гостя (при выселении).
// Удаление несуществующей записи — ошибка целостности, ErrGuestNotFound.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("guests").
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
		return ErrGuestNotFound
	}

	return nil
}

// GetByID получает гостя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(guestColumns...).
		From("guests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var g domain.Guest
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&g.ID,
		&g.Name,
		&g.Room,
		&g.IDCard,
		&g.Generation,
		&g.Info,
		&g.ReservationID,
	)

	if err == sql.ErrNoRows {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan guest: %v", ErrScanRow, err)
	}

	return &g, nil
}

// ListAll получает всех гостей — живой снимок занятости
// для подбора комнат и пересчета статусов
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Guest, error) {
	return r.list(ctx, nil)
}

// ListByRoom получает гостей, заселенных в комнату
func (r *Repository) ListByRoom(ctx context.Context, roomKey string) ([]*domain.Guest, error) {
	return r.list(ctx, squirrel.Eq{"room": roomKey})
}

// ListByReservation получает гостей одной брони
func (r *Repository) ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Guest, error) {
	return r.list(ctx, squirrel.Eq{"reservation_id": reservationID})
}

func (r *Repository) list(ctx context.Context, where interface{}) ([]*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(guestColumns...).
		From("guests").
		OrderBy("room ASC, id ASC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	// При распределении комнат внутри транзакции снимок блокируется
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		var g domain.Guest
		err := rows.Scan(
			&g.ID,
			&g.Name,
			&g.Room,
			&g.IDCard,
			&g.Generation,
			&g.Info,
			&g.ReservationID,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan guest: %v", ErrScanRow, err)
		}
		guests = append(guests, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows iteration: %v", ErrExecQuery, err)
	}

	return guests, nil
}

// CountWithRoom считает заселенных гостей (для сводки занятости)
func (r *Repository) CountWithRoom(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("guests").
		Where(squirrel.NotEq{"room": ""}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountWithRoom - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountWithRoom - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountByReservation считает оставшихся гостей брони —
// ноль после выселения означает конец брони
func (r *Repository) CountByReservation(ctx context.Context, reservationID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("guests").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByReservation - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByReservation - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
