package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/models"
)

// ISettingRepository akses dua baris singleton: info pembayaran dan
// pengaturan situs. Baris dibuat sekali lewat FirstOrCreate.
type ISettingRepository interface {
	GetPaymentInfo(ctx context.Context) (*models.PaymentInfo, error)
	SavePaymentInfo(ctx context.Context, info *models.PaymentInfo) error
	GetSiteSetting(ctx context.Context) (*models.SiteSetting, error)
	SaveSiteSetting(ctx context.Context, setting *models.SiteSetting) error
}

// SettingRepository implementasi ISettingRepository.
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository membuat repository pengaturan dengan koneksi global.
func NewSettingRepository() ISettingRepository {
	return NewSettingRepositoryTx(configsdatabase.GetDB())
}

// NewSettingRepositoryTx membuat repository pengaturan di atas tx/koneksi tertentu.
func NewSettingRepositoryTx(db *gorm.DB) ISettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *SettingRepository) GetPaymentInfo(ctx context.Context) (*models.PaymentInfo, error) {
	var info models.PaymentInfo
	err := r.getDB(ctx).FirstOrCreate(&info, models.PaymentInfo{BaseModel: models.BaseModel{ID: 1}}).Error
	if err != nil {
		configslog.Log.Error("SettingRepository.GetPaymentInfo: DB error", zap.Error(err))
		return nil, err
	}
	return &info, nil
}

func (r *SettingRepository) SavePaymentInfo(ctx context.Context, info *models.PaymentInfo) error {
	if info == nil {
		return errors.New("info pembayaran kosong")
	}
	info.ID = 1
	return r.getDB(ctx).Save(info).Error
}

func (r *SettingRepository) GetSiteSetting(ctx context.Context) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	err := r.getDB(ctx).FirstOrCreate(&setting, models.SiteSetting{BaseModel: models.BaseModel{ID: 1}}).Error
	if err != nil {
		configslog.Log.Error("SettingRepository.GetSiteSetting: DB error", zap.Error(err))
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) SaveSiteSetting(ctx context.Context, setting *models.SiteSetting) error {
	if setting == nil {
		return errors.New("pengaturan situs kosong")
	}
	setting.ID = 1
	return r.getDB(ctx).Save(setting).Error
}

var _ ISettingRepository = (*SettingRepository)(nil)
