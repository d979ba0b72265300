package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kratvil/HES-HotelService/internal/domain"
	"github.com/kratvil/HES-HotelService/pkg/dbmetrics"
	"github.com/kratvil/HES-HotelService/pkg/psqlbuilder"
)

var roomColumns = []string{
	"room_key",
	"type",
	"beds",
	"status",
	"price",
}

// Repository репозиторий для работы с комнатами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает комнату
func (r *Repository) Create(ctx context.Context, rm *domain.Room) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns(roomColumns...).
		Values(
			rm.Key,
			rm.Type,
			rm.Beds,
			rm.Status,
			rm.Price,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return ErrRoomAlreadyExists
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByKey получает комнату по ключу
func (r *Repository) GetByKey(ctx context.Context, key string) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"room_key": key}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	var rm domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rm.Key,
		&rm.Type,
		&rm.Beds,
		&rm.Status,
		&rm.Price,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan room: %v", ErrScanRow, err)
	}

	return &rm, nil
}

// ListAll получает все комнаты, отсортированные по ключу
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("room_key ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		var rm domain.Room
		err := rows.Scan(
			&rm.Key,
			&rm.Type,
			&rm.Beds,
			&rm.Status,
			&rm.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan room: %v", ErrScanRow, err)
		}
		rooms = append(rooms, &rm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows iteration: %v", ErrExecQuery, err)
	}

	return rooms, nil
}

// UpdateBeds изменяет количество кроватей.
// Проверка на переполнение (гостей больше, чем кроватей) делается сервисом.
func (r *Repository) UpdateBeds(ctx context.Context, key string, beds int) error {
	return r.update(ctx, "UpdateBeds", key, squirrel.Eq{"beds": beds})
}

// UpdateStatus переключает производный статус занятости комнаты
func (r *Repository) UpdateStatus(ctx context.Context, key string, status domain.RoomStatus) error {
	return r.update(ctx, "UpdateStatus", key, squirrel.Eq{"status": status})
}

func (r *Repository) update(ctx context.Context, op string, key string, set squirrel.Eq) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("rooms").
		Where(squirrel.Eq{"room_key": key})
	for column, value := range set {
		updateBuilder = updateBuilder.Set(column, value)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if rows == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// TotalBeds возвращает суммарную вместимость отеля —
// верхнюю границу проверки доступности
func (r *Repository) TotalBeds(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(beds), 0)").
		From("rooms").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: TotalBeds - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: TotalBeds - scan sum: %v", ErrScanRow, err)
	}

	return total, nil
}

// CountAll считает все комнаты
func (r *Repository) CountAll(ctx context.Context) (int, error) {
	return r.count(ctx, "CountAll", nil)
}

// CountByStatus считает комнаты в заданном статусе
func (r *Repository) CountByStatus(ctx context.Context, status domain.RoomStatus) (int, error) {
	return r.count(ctx, "CountByStatus", squirrel.Eq{"status": status})
}

func (r *Repository) count(ctx context.Context, op string, where interface{}) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("rooms")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %v", ErrScanRow, op, err)
	}

	return count, nil
}
