package services

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/repositories"
)

// SettingServiceError error domain layanan pengaturan.
type SettingServiceError string

func (e SettingServiceError) Error() string { return string(e) }

const (
	ErrSettingInvalidInput SettingServiceError = "data pengaturan tidak valid"
	ErrSettingSaveFailed   SettingServiceError = "pengaturan gagal disimpan"
)

// PaymentAccount satu rekening tujuan pembayaran di langkah checkout wizard.
type PaymentAccount struct {
	Name    string `json:"name" validate:"required,max=100"`
	Account string `json:"account" validate:"required,max=50"`
	Holder  string `json:"holder" validate:"required,max=150"`
}

// ISettingService operasi info pembayaran dan pengaturan situs.
type ISettingService interface {
	GetPaymentInfo(ctx context.Context) (banks []PaymentAccount, ewallets []PaymentAccount, err error)
	SavePaymentInfo(ctx context.Context, updatingUserID uint, banks []PaymentAccount, ewallets []PaymentAccount) error
	GetSiteSettings(ctx context.Context) (map[string]interface{}, error)
	// SaveSiteSettings me-merge kunci yang dikirim ke dokumen tersimpan;
	// kunci yang tidak dikirim tidak tersentuh.
	SaveSiteSettings(ctx context.Context, updatingUserID uint, data map[string]interface{}) error
}

// SettingService implementasi ISettingService.
type SettingService struct {
	repo repositories.ISettingRepository
}

// NewSettingService membuat service pengaturan dengan dependensi bawaan.
func NewSettingService() ISettingService {
	return &SettingService{repo: repositories.NewSettingRepository()}
}

func (s *SettingService) GetPaymentInfo(ctx context.Context) ([]PaymentAccount, []PaymentAccount, error) {
	info, err := s.repo.GetPaymentInfo(ctx)
	if err != nil {
		return nil, nil, err
	}
	return decodeAccounts(info.Banks), decodeAccounts(info.Ewallets), nil
}

func (s *SettingService) SavePaymentInfo(ctx context.Context, updatingUserID uint, banks []PaymentAccount, ewallets []PaymentAccount) error {
	for _, acc := range append(append([]PaymentAccount{}, banks...), ewallets...) {
		if err := validate.Struct(acc); err != nil {
			return fmt.Errorf("%w: %v", ErrSettingInvalidInput, err)
		}
	}

	info, err := s.repo.GetPaymentInfo(ctx)
	if err != nil {
		return err
	}

	banksJSON, err := json.Marshal(banks)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSettingInvalidInput, err)
	}
	ewalletsJSON, err := json.Marshal(ewallets)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSettingInvalidInput, err)
	}
	info.Banks = banksJSON
	info.Ewallets = ewalletsJSON

	ctx = models.ContextWithUserID(ctx, updatingUserID)
	if err := s.repo.SavePaymentInfo(ctx, info); err != nil {
		configslog.Log.Error("SavePaymentInfo: gagal menyimpan", zap.Error(err))
		return ErrSettingSaveFailed
	}

	configslog.SLog.Infof("Info pembayaran diperbarui: %d bank, %d e-wallet", len(banks), len(ewallets))
	return nil
}

func (s *SettingService) GetSiteSettings(ctx context.Context) (map[string]interface{}, error) {
	setting, err := s.repo.GetSiteSetting(ctx)
	if err != nil {
		return nil, err
	}
	if setting.Data == nil {
		return map[string]interface{}{}, nil
	}
	return setting.Data, nil
}

func (s *SettingService) SaveSiteSettings(ctx context.Context, updatingUserID uint, data map[string]interface{}) error {
	if len(data) == 0 {
		return nil
	}

	setting, err := s.repo.GetSiteSetting(ctx)
	if err != nil {
		return err
	}
	if setting.Data == nil {
		setting.Data = map[string]interface{}{}
	}
	for key, value := range data {
		setting.Data[key] = value
	}

	ctx = models.ContextWithUserID(ctx, updatingUserID)
	if err := s.repo.SaveSiteSetting(ctx, setting); err != nil {
		configslog.Log.Error("SaveSiteSettings: gagal menyimpan", zap.Error(err))
		return ErrSettingSaveFailed
	}
	return nil
}

func decodeAccounts(raw []byte) []PaymentAccount {
	if len(raw) == 0 {
		return nil
	}
	var accounts []PaymentAccount
	if err := json.Unmarshal(raw, &accounts); err != nil {
		configslog.Log.Warn("Dokumen rekening pembayaran rusak, diabaikan", zap.Error(err))
		return nil
	}
	return accounts
}

var _ ISettingService = (*SettingService)(nil)
