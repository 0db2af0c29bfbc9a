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

// ITemplateRepository operasi database tema undangan.
type ITemplateRepository interface {
	Create(ctx context.Context, template *models.Template) error
	FindByID(ctx context.Context, id uint) (*models.Template, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Template, int64, error)
	FindPublished(ctx context.Context) ([]models.Template, error)
	Update(ctx context.Context, template *models.Template) error
	Delete(ctx context.Context, template *models.Template) error
	CountOrdersUsing(ctx context.Context, templateID uint) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

// TemplateRepository implementasi ITemplateRepository.
type TemplateRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Template]
}

// NewTemplateRepository membuat repository tema dengan koneksi global.
func NewTemplateRepository() ITemplateRepository {
	return NewTemplateRepositoryTx(configsdatabase.GetDB())
}

// NewTemplateRepositoryTx membuat repository tema di atas tx/koneksi tertentu.
func NewTemplateRepositoryTx(db *gorm.DB) ITemplateRepository {
	base := NewBaseRepository[models.Template](db)
	base.SetAllowedSortColumns([]string{"id", "name", "price", "created_at", "status"})
	return &TemplateRepository{db: db, base: base}
}

func (r *TemplateRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *TemplateRepository) Create(ctx context.Context, template *models.Template) error {
	return r.base.Create(ctx, template)
}

func (r *TemplateRepository) FindByID(ctx context.Context, id uint) (*models.Template, error) {
	if id == 0 {
		return nil, errors.New("ID tema tidak valid")
	}
	return r.base.FindByID(ctx, id)
}

func (r *TemplateRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Template, int64, error) {
	var templates []models.Template
	var total int64
	query := r.getDB(ctx).Model(&models.Template{})

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Name != "" {
		query = query.Where("name ILIKE ?", "%"+params.Name+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("TemplateRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return templates, 0, nil
	}

	err := query.
		Order(r.orderClause(params)).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&templates).Error
	if err != nil {
		configslog.Log.Error("TemplateRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, total, err
	}
	return templates, total, nil
}

func (r *TemplateRepository) orderClause(params queryparams.ListParams) string {
	allowed := map[string]bool{"id": true, "name": true, "price": true, "created_at": true, "status": true}
	column := "created_at"
	if allowed[params.SortBy] {
		column = params.SortBy
	}
	direction := params.OrderBy
	if direction != "asc" && direction != "desc" {
		direction = queryparams.DefaultOrderBy
	}
	return column + " " + direction
}

// FindPublished tema yang tampil di katalog publik, terbaru dahulu.
func (r *TemplateRepository) FindPublished(ctx context.Context) ([]models.Template, error) {
	var templates []models.Template
	err := r.getDB(ctx).
		Where("status = ?", models.TemplateStatusPublish).
		Order("created_at desc").
		Find(&templates).Error
	if err != nil {
		configslog.Log.Error("TemplateRepository.FindPublished: DB error", zap.Error(err))
		return nil, err
	}
	return templates, nil
}

func (r *TemplateRepository) Update(ctx context.Context, template *models.Template) error {
	if template == nil || template.ID == 0 {
		return errors.New("tema yang diupdate tidak valid")
	}
	return r.base.Update(ctx, template)
}

func (r *TemplateRepository) Delete(ctx context.Context, template *models.Template) error {
	if template == nil || template.ID == 0 {
		return errors.New("tema yang dihapus tidak valid")
	}
	return r.base.Delete(ctx, template)
}

// CountOrdersUsing jumlah pesanan yang masih memakai tema; tema dengan
// pesanan tidak boleh dihapus.
func (r *TemplateRepository) CountOrdersUsing(ctx context.Context, templateID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).
		Model(&models.Order{}).
		Where("template_id = ?", templateID).
		Count(&count).Error
	return count, err
}

func (r *TemplateRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Template{}).Count(&count).Error
	return count, err
}

var _ ITemplateRepository = (*TemplateRepository)(nil)
