package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/invitation"
	"undangan.link/pkg/mediastore"
	"undangan.link/pkg/queryparams"
	"undangan.link/repositories"
)

// TemplateServiceError error domain layanan tema.
type TemplateServiceError string

func (e TemplateServiceError) Error() string { return string(e) }

const (
	ErrTemplateNotFound       TemplateServiceError = "tema tidak ditemukan"
	ErrTemplateInvalidInput   TemplateServiceError = "data tema tidak valid"
	ErrTemplateCreationFailed TemplateServiceError = "tema gagal dibuat"
	ErrTemplateUpdateFailed   TemplateServiceError = "tema gagal diupdate"
	ErrTemplateDeletionFailed TemplateServiceError = "tema gagal dihapus"
	ErrTemplateInUse          TemplateServiceError = "tema masih dipakai pesanan"
)

// TemplateInput data form tema dari dashboard desainer.
type TemplateInput struct {
	Name        string `form:"name" validate:"required,max=150"`
	Description string `form:"description"`
	Category    string `form:"category" validate:"max=50"`
	Price       int64  `form:"price" validate:"gte=0"`
	Discount    int    `form:"discount" validate:"gte=0,lte=100"`

	ThumbnailURL      string `form:"thumbnail_url" validate:"omitempty,url,max=500"`
	ThumbnailPublicID string `form:"thumbnail_public_id" validate:"max=255"`
}

// BuilderInput isi editor kode tema (HTML/CSS/JS), disimpan terpisah dari
// metadata agar autosave editor tidak menyentuh field lain.
type BuilderInput struct {
	HTML string `form:"html"`
	CSS  string `form:"css"`
	JS   string `form:"js"`
}

// ITemplateService operasi tema undangan.
type ITemplateService interface {
	CreateTemplate(ctx context.Context, creatorUserID uint, input TemplateInput) (*models.Template, error)
	GetTemplateByID(ctx context.Context, id uint) (*models.Template, error)
	GetTemplatesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetPublishedTemplates(ctx context.Context) ([]models.Template, error)
	UpdateTemplate(ctx context.Context, id uint, updatingUserID uint, input TemplateInput) error
	SaveBuilder(ctx context.Context, id uint, updatingUserID uint, input BuilderInput) error
	SetStatus(ctx context.Context, id uint, updatingUserID uint, status string) error
	DuplicateTemplate(ctx context.Context, id uint, creatorUserID uint) (*models.Template, error)
	// DeleteTemplate menghapus tema dan memerintahkan sidecar menghapus
	// thumbnail-nya. mediaDeleted false berarti metadata sudah hilang tapi
	// aset masih tertinggal di penyedia (sukses sebagian).
	DeleteTemplate(ctx context.Context, id uint, deletingUserID uint) (mediaDeleted bool, err error)
	PreviewDocument(ctx context.Context, id uint) (string, error)
	CountTemplates(ctx context.Context) (int64, error)
}

// TemplateService implementasi ITemplateService.
type TemplateService struct {
	repo    repositories.ITemplateRepository
	sidecar *mediastore.SidecarClient
	db      *gorm.DB
}

// NewTemplateService membuat service tema dengan dependensi bawaan.
func NewTemplateService(sidecar *mediastore.SidecarClient) ITemplateService {
	return &TemplateService{
		repo:    repositories.NewTemplateRepository(),
		sidecar: sidecar,
		db:      configsdatabase.GetDB(),
	}
}

func (s *TemplateService) CreateTemplate(ctx context.Context, creatorUserID uint, input TemplateInput) (*models.Template, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateInvalidInput, err)
	}
	if creatorUserID == 0 {
		return nil, fmt.Errorf("%w: user pembuat tidak valid", ErrTemplateInvalidInput)
	}

	template := &models.Template{Status: models.TemplateStatusDraft}
	applyTemplateInput(template, input)

	ctx = models.ContextWithUserID(ctx, creatorUserID)
	if err := s.repo.Create(ctx, template); err != nil {
		configslog.Log.Error("CreateTemplate: gagal menyimpan", zap.Error(err))
		return nil, ErrTemplateCreationFailed
	}

	configslog.SLog.Infof("Tema baru dibuat: ID %d (%s)", template.ID, template.Name)
	return template, nil
}

func (s *TemplateService) GetTemplateByID(ctx context.Context, id uint) (*models.Template, error) {
	template, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) GetTemplatesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	if params.SortBy == "" {
		params.SortBy = "created_at"
	}

	templates, total, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: templates,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  queryparams.CalculateTotalPages(total, params.PerPage),
		},
	}, nil
}

func (s *TemplateService) GetPublishedTemplates(ctx context.Context) ([]models.Template, error) {
	return s.repo.FindPublished(ctx)
}

func (s *TemplateService) UpdateTemplate(ctx context.Context, id uint, updatingUserID uint, input TemplateInput) error {
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateInvalidInput, err)
	}

	template, err := s.GetTemplateByID(ctx, id)
	if err != nil {
		return err
	}

	// Thumbnail lama ikut dihapus bila diganti dengan unggahan baru.
	oldPublicID := template.ThumbnailPublicID
	applyTemplateInput(template, input)

	ctx = models.ContextWithUserID(ctx, updatingUserID)
	if err := s.repo.Update(ctx, template); err != nil {
		configslog.Log.Error("UpdateTemplate: gagal menyimpan", zap.Uint("id", id), zap.Error(err))
		return ErrTemplateUpdateFailed
	}

	if oldPublicID != "" && oldPublicID != template.ThumbnailPublicID {
		s.deleteMediaQuietly(oldPublicID)
	}

	configslog.SLog.Infof("Tema diupdate: ID %d", id)
	return nil
}

func (s *TemplateService) SaveBuilder(ctx context.Context, id uint, updatingUserID uint, input BuilderInput) error {
	template, err := s.GetTemplateByID(ctx, id)
	if err != nil {
		return err
	}

	template.HTML = input.HTML
	template.CSS = input.CSS
	template.JS = input.JS

	ctx = models.ContextWithUserID(ctx, updatingUserID)
	if err := s.repo.Update(ctx, template); err != nil {
		configslog.Log.Error("SaveBuilder: gagal menyimpan", zap.Uint("id", id), zap.Error(err))
		return ErrTemplateUpdateFailed
	}
	return nil
}

func (s *TemplateService) SetStatus(ctx context.Context, id uint, updatingUserID uint, status string) error {
	if status != models.TemplateStatusDraft && status != models.TemplateStatusPublish {
		return fmt.Errorf("%w: status %q tidak dikenal", ErrTemplateInvalidInput, status)
	}

	template, err := s.GetTemplateByID(ctx, id)
	if err != nil {
		return err
	}
	if template.Status == status {
		return nil
	}

	template.Status = status
	ctx = models.ContextWithUserID(ctx, updatingUserID)
	if err := s.repo.Update(ctx, template); err != nil {
		configslog.Log.Error("SetStatus: gagal menyimpan", zap.Uint("id", id), zap.Error(err))
		return ErrTemplateUpdateFailed
	}

	configslog.SLog.Infof("Status tema ID %d menjadi %s", id, status)
	return nil
}

// DuplicateTemplate menyalin tema jadi draft baru; desainer memakai salinan
// sebagai titik awal varian. Thumbnail tidak ikut karena asetnya dimiliki
// tema asal.
func (s *TemplateService) DuplicateTemplate(ctx context.Context, id uint, creatorUserID uint) (*models.Template, error) {
	source, err := s.GetTemplateByID(ctx, id)
	if err != nil {
		return nil, err
	}

	clone := &models.Template{
		Name:        source.Name + " (salinan)",
		Description: source.Description,
		Category:    source.Category,
		Price:       source.Price,
		Discount:    source.Discount,
		HTML:        source.HTML,
		CSS:         source.CSS,
		JS:          source.JS,
		Status:      models.TemplateStatusDraft,
	}

	ctx = models.ContextWithUserID(ctx, creatorUserID)
	if err := s.repo.Create(ctx, clone); err != nil {
		configslog.Log.Error("DuplicateTemplate: gagal menyimpan salinan", zap.Uint("sourceID", id), zap.Error(err))
		return nil, ErrTemplateCreationFailed
	}

	configslog.SLog.Infof("Tema ID %d diduplikasi menjadi ID %d", id, clone.ID)
	return clone, nil
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, id uint, deletingUserID uint) (bool, error) {
	template, err := s.GetTemplateByID(ctx, id)
	if err != nil {
		return false, err
	}

	inUse, err := s.repo.CountOrdersUsing(ctx, id)
	if err != nil {
		return false, err
	}
	if inUse > 0 {
		return false, ErrTemplateInUse
	}

	ctx = models.ContextWithUserID(ctx, deletingUserID)
	if err := s.repo.Delete(ctx, template); err != nil {
		configslog.Log.Error("DeleteTemplate: gagal menghapus", zap.Uint("id", id), zap.Error(err))
		return false, ErrTemplateDeletionFailed
	}

	mediaDeleted := true
	if template.ThumbnailPublicID != "" {
		mediaDeleted = s.deleteMediaQuietly(template.ThumbnailPublicID)
	}

	configslog.SLog.Infof("Tema dihapus: ID %d (media terhapus: %v)", id, mediaDeleted)
	return mediaDeleted, nil
}

// PreviewDocument dokumen contoh untuk pratinjau editor, memakai data fiktif.
func (s *TemplateService) PreviewDocument(ctx context.Context, id uint) (string, error) {
	template, err := s.GetTemplateByID(ctx, id)
	if err != nil {
		return "", err
	}

	in := invitation.Input{
		Fields: map[string]string{
			"groomName":      "Muhammad Yusuf",
			"groomNickname":  "Yusuf",
			"brideName":      "Aisyah Putri",
			"brideNickname":  "Aisyah",
			"akadDate":       "Sabtu, 12 Desember 2026",
			"akadTime":       "08.00",
			"akadTimezone":   "WIB",
			"akadVenue":      "Masjid Raya Al-Falah",
			"receptionDate":  "Sabtu, 12 Desember 2026",
			"receptionTime":  "11.00",
			"receptionVenue": "Gedung Serbaguna Harmoni",
		},
		Gifts: []invitation.Gift{
			{Type: invitation.GiftTypeBank, Name: "BCA", Account: "1234567890", Holder: "Muhammad Yusuf"},
			{Type: invitation.GiftTypeEwallet, Name: "GoPay", Account: "081234567890", Holder: "Aisyah Putri"},
		},
	}
	return invitation.Generate(invitation.Template{
		HTML: template.HTML,
		CSS:  template.CSS,
		JS:   template.JS,
	}, in, nil), nil
}

func (s *TemplateService) CountTemplates(ctx context.Context) (int64, error) {
	return s.repo.CountAll(ctx)
}

// deleteMediaQuietly meminta sidecar menghapus aset; kegagalan hanya dicatat.
func (s *TemplateService) deleteMediaQuietly(publicID string) bool {
	if s.sidecar == nil {
		return false
	}
	if err := s.sidecar.DeleteAsset(publicID, "image"); err != nil {
		configslog.Log.Warn("Thumbnail tema gagal dihapus di penyedia media",
			zap.String("publicID", publicID), zap.Error(err))
		return false
	}
	return true
}

func applyTemplateInput(template *models.Template, input TemplateInput) {
	template.Name = input.Name
	template.Description = input.Description
	template.Category = input.Category
	template.Price = input.Price
	template.Discount = input.Discount
	if input.ThumbnailURL != "" {
		template.ThumbnailURL = input.ThumbnailURL
		template.ThumbnailPublicID = input.ThumbnailPublicID
	}
}

var _ ITemplateService = (*TemplateService)(nil)
