package repositories

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/queryparams"
)

// IOrderRepository operasi database pesanan.
type IOrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*models.Order, error)
	FindByInvitationSlug(ctx context.Context, slug string) (*models.Order, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Order, int64, error)
	AssignedLinksExcept(ctx context.Context, excludeID uint) ([]string, error)
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, order *models.Order, deletedByUserID uint) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

// OrderRepository implementasi IOrderRepository.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository membuat repository pesanan dengan koneksi global.
func NewOrderRepository() IOrderRepository {
	return NewOrderRepositoryTx(configsdatabase.GetDB())
}

// NewOrderRepositoryTx membuat repository pesanan di atas tx/koneksi tertentu.
func NewOrderRepositoryTx(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order == nil || order.TemplateID == 0 {
		return errors.New("pesanan tanpa template tidak bisa dibuat")
	}
	return r.getDB(ctx).Create(order).Error
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	if id == 0 {
		return nil, errors.New("ID pesanan tidak valid")
	}
	var order models.Order
	err := r.getDB(ctx).Preload("Template").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("OrderRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &order, nil
}

// FindByIDForUpdate mengambil pesanan dengan row lock; dipakai saat proses dan
// edit agar dua admin tidak menimpa hasil generate satu sama lain.
func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.Order, error) {
	if id == 0 {
		return nil, errors.New("ID pesanan tidak valid")
	}
	var order models.Order
	err := r.getDB(ctx).
		Clauses(lockingClause()).
		Preload("Template").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("OrderRepository.FindByIDForUpdate: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &order, nil
}

// FindByInvitationSlug mencari pesanan pemilik slug pada link undangannya.
// Pencocokan pada segmen path penuh agar "budi-sari" tidak menangkap
// "budi-sari-2".
func (r *OrderRepository) FindByInvitationSlug(ctx context.Context, slug string) (*models.Order, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	var order models.Order
	err := r.getDB(ctx).
		Where("invitation_link IS NOT NULL AND invitation_link LIKE ?", "%/invitation/"+slug).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("OrderRepository.FindByInvitationSlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64
	db := r.getDB(ctx)

	query := db.Model(&models.Order{})
	query = r.applyFilters(query, params)

	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("OrderRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return orders, 0, nil
	}

	err := query.
		Preload("Template").
		Order(r.orderClause(params)).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&orders).Error
	if err != nil {
		configslog.Log.Error("OrderRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, total, err
	}
	return orders, total, nil
}

func (r *OrderRepository) applyFilters(query *gorm.DB, params queryparams.ListParams) *gorm.DB {
	if params.Status != "" {
		// "processed" gabungan processing+completed, meniru tab dashboard.
		if params.Status == "processed" {
			query = query.Where("status IN ?", []string{models.OrderStatusProcessing, models.OrderStatusCompleted})
		} else {
			query = query.Where("status = ?", params.Status)
		}
	}
	if params.Name != "" {
		like := "%" + params.Name + "%"
		query = query.Where(
			"groom_name ILIKE ? OR bride_name ILIKE ? OR groom_nickname ILIKE ? OR bride_nickname ILIKE ?",
			like, like, like, like,
		)
	}
	return query
}

func (r *OrderRepository) orderClause(params queryparams.ListParams) string {
	allowed := map[string]bool{"id": true, "created_at": true, "status": true, "processed_at": true}
	column := "created_at"
	if allowed[params.SortBy] {
		column = params.SortBy
	}
	direction := strings.ToLower(params.OrderBy)
	if direction != "asc" && direction != "desc" {
		direction = queryparams.DefaultOrderBy
	}
	return column + " " + direction
}

// AssignedLinksExcept mengambil semua invitation_link milik pesanan lain;
// himpunan tabrakan untuk resolusi slug.
func (r *OrderRepository) AssignedLinksExcept(ctx context.Context, excludeID uint) ([]string, error) {
	var links []string
	err := r.getDB(ctx).
		Model(&models.Order{}).
		Where("invitation_link IS NOT NULL AND id <> ?", excludeID).
		Pluck("invitation_link", &links).Error
	if err != nil {
		configslog.Log.Error("OrderRepository.AssignedLinksExcept: DB error", zap.Uint("excludeID", excludeID), zap.Error(err))
		return nil, err
	}
	return links, nil
}

func (r *OrderRepository) Update(ctx context.Context, order *models.Order) error {
	if order == nil || order.ID == 0 {
		return errors.New("pesanan yang diupdate tidak valid")
	}
	return r.getDB(ctx).Save(order).Error
}

func (r *OrderRepository) Delete(ctx context.Context, order *models.Order, deletedByUserID uint) error {
	if order == nil || order.ID == 0 {
		return errors.New("pesanan yang dihapus tidak valid")
	}
	db := r.getDB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		if deletedByUserID != 0 {
			if err := tx.Model(order).UpdateColumn("deleted_by", &deletedByUserID).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(order)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *OrderRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *OrderRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Order{}).Count(&count).Error
	return count, err
}

var _ IOrderRepository = (*OrderRepository)(nil)
