package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/queryparams"
)

// IMusicRepository operasi database pustaka musik.
type IMusicRepository interface {
	Create(ctx context.Context, music *models.Music) error
	FindByID(ctx context.Context, id uint) (*models.Music, error)
	FindAll(ctx context.Context) ([]models.Music, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Music, int64, error)
	Update(ctx context.Context, music *models.Music) error
	Delete(ctx context.Context, music *models.Music) error
}

// MusicRepository implementasi IMusicRepository.
type MusicRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Music]
}

// NewMusicRepository membuat repository musik dengan koneksi global.
func NewMusicRepository() IMusicRepository {
	return NewMusicRepositoryTx(configsdatabase.GetDB())
}

// NewMusicRepositoryTx membuat repository musik di atas tx/koneksi tertentu.
func NewMusicRepositoryTx(db *gorm.DB) IMusicRepository {
	base := NewBaseRepository[models.Music](db)
	base.SetAllowedSortColumns([]string{"id", "title", "category", "created_at"})
	return &MusicRepository{db: db, base: base}
}

func (r *MusicRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *MusicRepository) Create(ctx context.Context, music *models.Music) error {
	return r.base.Create(ctx, music)
}

func (r *MusicRepository) FindByID(ctx context.Context, id uint) (*models.Music, error) {
	if id == 0 {
		return nil, errors.New("ID musik tidak valid")
	}
	return r.base.FindByID(ctx, id)
}

// FindAll seluruh pustaka musik untuk dropdown pemilihan di form pesanan.
func (r *MusicRepository) FindAll(ctx context.Context) ([]models.Music, error) {
	var musics []models.Music
	err := r.getDB(ctx).Order("category asc, title asc").Find(&musics).Error
	if err != nil {
		configslog.Log.Error("MusicRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return musics, nil
}

func (r *MusicRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Music, int64, error) {
	var musics []models.Music
	var total int64
	query := r.getDB(ctx).Model(&models.Music{})

	if params.Status != "" {
		// Tab daftar musik memfilter per kategori lewat parameter status.
		query = query.Where("category = ?", params.Status)
	}
	if params.Name != "" {
		query = query.Where("title ILIKE ?", "%"+params.Name+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("MusicRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return musics, 0, nil
	}

	column := "created_at"
	if params.SortBy == "title" || params.SortBy == "category" || params.SortBy == "id" {
		column = params.SortBy
	}
	direction := params.OrderBy
	if direction != "asc" && direction != "desc" {
		direction = queryparams.DefaultOrderBy
	}

	err := query.
		Order(column + " " + direction).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&musics).Error
	if err != nil {
		configslog.Log.Error("MusicRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, total, err
	}
	return musics, total, nil
}

func (r *MusicRepository) Update(ctx context.Context, music *models.Music) error {
	if music == nil || music.ID == 0 {
		return errors.New("musik yang diupdate tidak valid")
	}
	return r.base.Update(ctx, music)
}

func (r *MusicRepository) Delete(ctx context.Context, music *models.Music) error {
	if music == nil || music.ID == 0 {
		return errors.New("musik yang dihapus tidak valid")
	}
	return r.base.Delete(ctx, music)
}

var _ IMusicRepository = (*MusicRepository)(nil)
