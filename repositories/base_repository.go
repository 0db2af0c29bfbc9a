package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"undangan.link/pkg/queryparams"
)

// ErrNotFound catatan tidak ditemukan; service memetakannya ke error domain.
var ErrNotFound = errors.New("catatan tidak ditemukan")

// Kunci context untuk transaction yang sedang berjalan; repository memakai
// tx itu alih-alih koneksi utama bila ada.
type ctxKey string

const ctxTxKey ctxKey = "tx"

// ContextWithTx menempelkan transaction ke context.
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, ctxTxKey, tx)
}

func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(ctxTxKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return fallback.WithContext(ctx)
}

// SELECT ... FOR UPDATE untuk baris yang akan dimutasi dalam transaction.
func lockingClause() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

// IBaseRepository operasi CRUD generik dengan paginasi sederhana.
type IBaseRepository[T any] interface {
	SetAllowedSortColumns(columns []string)
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]T, int64, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
}

// BaseRepository implementasi generik IBaseRepository.
type BaseRepository[T any] struct {
	db          *gorm.DB
	sortColumns map[string]bool
}

// NewBaseRepository membuat base repository untuk satu model.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{
		db:          db,
		sortColumns: map[string]bool{"id": true, "created_at": true},
	}
}

// SetAllowedSortColumns membatasi kolom sort yang boleh diminta client.
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	allowed := make(map[string]bool, len(columns))
	for _, c := range columns {
		allowed[c] = true
	}
	r.sortColumns = allowed
}

func (r *BaseRepository[T]) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.getDB(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.getDB(ctx).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]T, int64, error) {
	var entities []T
	var total int64
	var model T

	query := r.getDB(ctx).Model(&model)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return entities, 0, nil
	}

	err := query.
		Order(r.orderClause(params)).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&entities).Error
	return entities, total, err
}

func (r *BaseRepository[T]) Update(ctx context.Context, entity *T) error {
	return r.getDB(ctx).Save(entity).Error
}

func (r *BaseRepository[T]) Delete(ctx context.Context, entity *T) error {
	result := r.getDB(ctx).Delete(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) orderClause(params queryparams.ListParams) string {
	column := "created_at"
	if r.sortColumns[params.SortBy] {
		column = params.SortBy
	}
	direction := strings.ToLower(params.OrderBy)
	if direction != "asc" && direction != "desc" {
		direction = queryparams.DefaultOrderBy
	}
	return column + " " + direction
}
