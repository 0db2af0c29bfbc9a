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

// IUserRepository operasi database akun internal.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.User, int64, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, user *models.User) error
}

// UserRepository implementasi IUserRepository.
type UserRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.User]
}

// NewUserRepository membuat repository akun dengan koneksi global.
func NewUserRepository() IUserRepository {
	return NewUserRepositoryTx(configsdatabase.GetDB())
}

// NewUserRepositoryTx membuat repository akun di atas tx/koneksi tertentu.
func NewUserRepositoryTx(db *gorm.DB) IUserRepository {
	base := NewBaseRepository[models.User](db)
	base.SetAllowedSortColumns([]string{"id", "name", "email", "role", "created_at"})
	return &UserRepository{db: db, base: base}
}

func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.base.Create(ctx, user)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if id == 0 {
		return nil, errors.New("ID user tidak valid")
	}
	return r.base.FindByID(ctx, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrNotFound
	}
	var user models.User
	err := r.getDB(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByEmail: DB error", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.User, int64, error) {
	var users []models.User
	var total int64
	query := r.getDB(ctx).Model(&models.User{})

	if params.Status != "" {
		query = query.Where("role = ?", params.Status)
	}
	if params.Name != "" {
		like := "%" + params.Name + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("UserRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return users, 0, nil
	}

	column := "created_at"
	switch params.SortBy {
	case "id", "name", "email", "role":
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
		Find(&users).Error
	if err != nil {
		configslog.Log.Error("UserRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, total, err
	}
	return users, total, nil
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	if user == nil || user.ID == 0 {
		return errors.New("user yang diupdate tidak valid")
	}
	return r.base.Update(ctx, user)
}

func (r *UserRepository) Delete(ctx context.Context, user *models.User) error {
	if user == nil || user.ID == 0 {
		return errors.New("user yang dihapus tidak valid")
	}
	return r.base.Delete(ctx, user)
}

var _ IUserRepository = (*UserRepository)(nil)
