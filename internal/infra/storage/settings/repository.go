package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kratvil/HES-HotelService/pkg/dbmetrics"
	"github.com/kratvil/HES-HotelService/pkg/psqlbuilder"
)

// Repository хранилище настроек вида ключ-значение (налоговая ставка и т.п.)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает значение настройки.
// Значение читается при каждом обращении, без кеширования.
func (r *Repository) Get(ctx context.Context, name string) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From("settings").
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get - scan value: %v", ErrScanRow, err)
	}

	return value, nil
}

// Set записывает значение настройки, создавая ключ при первом обращении
func (r *Repository) Set(ctx context.Context, name, value string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("settings").
		Columns("name", "value").
		Values(name, value).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
