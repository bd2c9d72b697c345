package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound repository katmanının ortak "kayıt yok" hatasıdır.
// Servisler gorm.ErrRecordNotFound yerine bunu görür.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IBaseRepository tüm modellerin paylaştığı temel CRUD arayüzüdür.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	GetCount(ctx context.Context) (int64, error)
}

// BaseRepository IBaseRepository'nin GORM gerçeklemesidir.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns []string
}

// NewBaseRepository verilen bağlantı ile generik bir repository oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db}
}

// SetAllowedSortColumns sıralamaya açık kolonları belirler.
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	r.allowedSortColumns = columns
}

// IsSortColumnAllowed kolonun sıralamaya açık olup olmadığını söyler.
func (r *BaseRepository[T]) IsSortColumnAllowed(column string) bool {
	for _, c := range r.allowedSortColumns {
		if c == column {
			return true
		}
	}
	return false
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	var entity T
	result := r.db.WithContext(ctx).Model(&entity).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&entity).Where("id = ?", id).Count(&count).Error; err == nil && count == 0 {
			return ErrNotFound
		}
	}
	return nil
}

func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	result := r.db.WithContext(ctx).Delete(&entity, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) GetCount(ctx context.Context) (int64, error) {
	var entity T
	var count int64
	err := r.db.WithContext(ctx).Model(&entity).Count(&count).Error
	return count, err
}
