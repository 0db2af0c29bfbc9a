package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/mediastore"
	"undangan.link/pkg/queryparams"
	"undangan.link/repositories"
)

// MusicServiceError error domain layanan musik.
type MusicServiceError string

func (e MusicServiceError) Error() string { return string(e) }

const (
	ErrMusicNotFound       MusicServiceError = "musik tidak ditemukan"
	ErrMusicInvalidInput   MusicServiceError = "data musik tidak valid"
	ErrMusicCreationFailed MusicServiceError = "musik gagal disimpan"
	ErrMusicUpdateFailed   MusicServiceError = "musik gagal diupdate"
	ErrMusicDeletionFailed MusicServiceError = "musik gagal dihapus"
)

// MusicInput data form entri musik. URL dan PublicID datang dari hasil
// unggah browser langsung ke Cloudinary (unsigned preset).
type MusicInput struct {
	Title        string `form:"title" validate:"required,max=150"`
	Category     string `form:"category" validate:"required,oneof=quran nasyid"`
	FileName     string `form:"file_name" validate:"max=255"`
	URL          string `form:"url" validate:"required,url,max=500"`
	PublicID     string `form:"public_id" validate:"max=255"`
	ResourceType string `form:"resource_type" validate:"omitempty,oneof=video image raw auto"`
}

// IMusicService operasi pustaka musik latar.
type IMusicService interface {
	CreateMusic(ctx context.Context, creatorUserID uint, input MusicInput) (*models.Music, error)
	GetMusicByID(ctx context.Context, id uint) (*models.Music, error)
	GetAllMusic(ctx context.Context) ([]models.Music, error)
	GetMusicPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateMusic(ctx context.Context, id uint, updatingUserID uint, input MusicInput) error
	// DeleteMusic menghapus entri dan memerintahkan sidecar menghapus file
	// audionya. assetDeleted false berarti sukses sebagian: metadata hilang,
	// file masih di penyedia. Pesanan yang merujuk entri ini dibiarkan
	// dangling; generate berikutnya jatuh ke tanpa audio.
	DeleteMusic(ctx context.Context, id uint, deletingUserID uint) (assetDeleted bool, err error)
}

// MusicService implementasi IMusicService.
type MusicService struct {
	repo    repositories.IMusicRepository
	sidecar *mediastore.SidecarClient
}

// NewMusicService membuat service musik dengan dependensi bawaan.
func NewMusicService(sidecar *mediastore.SidecarClient) IMusicService {
	return &MusicService{
		repo:    repositories.NewMusicRepository(),
		sidecar: sidecar,
	}
}

func (s *MusicService) CreateMusic(ctx context.Context, creatorUserID uint, input MusicInput) (*models.Music, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMusicInvalidInput, err)
	}

	music := &models.Music{
		Title:        input.Title,
		Category:     input.Category,
		FileName:     input.FileName,
		URL:          input.URL,
		PublicID:     input.PublicID,
		ResourceType: defaultString(input.ResourceType, "video"),
	}
	if music.PublicID == "" {
		music.PublicID = mediastore.PublicIDFromURL(music.URL)
	}

	ctx = models.ContextWithUserID(ctx, creatorUserID)
	if err := s.repo.Create(ctx, music); err != nil {
		configslog.Log.Error("CreateMusic: gagal menyimpan", zap.Error(err))
		return nil, ErrMusicCreationFailed
	}

	configslog.SLog.Infof("Musik baru: ID %d (%s)", music.ID, music.Title)
	return music, nil
}

func (s *MusicService) GetMusicByID(ctx context.Context, id uint) (*models.Music, error) {
	music, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMusicNotFound
		}
		return nil, err
	}
	return music, nil
}

func (s *MusicService) GetAllMusic(ctx context.Context) ([]models.Music, error) {
	return s.repo.FindAll(ctx)
}

func (s *MusicService) GetMusicPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	if params.SortBy == "" {
		params.SortBy = "created_at"
	}

	musics, total, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: musics,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  queryparams.CalculateTotalPages(total, params.PerPage),
		},
	}, nil
}

func (s *MusicService) UpdateMusic(ctx context.Context, id uint, updatingUserID uint, input MusicInput) error {
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrMusicInvalidInput, err)
	}

	music, err := s.GetMusicByID(ctx, id)
	if err != nil {
		return err
	}

	// File audio lama dihapus bila entri menunjuk unggahan baru.
	oldPublicID := music.PublicID
	oldResourceType := music.ResourceType

	music.Title = input.Title
	music.Category = input.Category
	music.FileName = input.FileName
	music.URL = input.URL
	music.PublicID = input.PublicID
	if music.PublicID == "" {
		music.PublicID = mediastore.PublicIDFromURL(music.URL)
	}
	if input.ResourceType != "" {
		music.ResourceType = input.ResourceType
	}

	ctx = models.ContextWithUserID(ctx, updatingUserID)
	if err := s.repo.Update(ctx, music); err != nil {
		configslog.Log.Error("UpdateMusic: gagal menyimpan", zap.Uint("id", id), zap.Error(err))
		return ErrMusicUpdateFailed
	}

	if oldPublicID != "" && oldPublicID != music.PublicID {
		s.deleteAssetQuietly(oldPublicID, oldResourceType)
	}
	return nil
}

func (s *MusicService) DeleteMusic(ctx context.Context, id uint, deletingUserID uint) (bool, error) {
	music, err := s.GetMusicByID(ctx, id)
	if err != nil {
		return false, err
	}

	ctx = models.ContextWithUserID(ctx, deletingUserID)
	if err := s.repo.Delete(ctx, music); err != nil {
		configslog.Log.Error("DeleteMusic: gagal menghapus", zap.Uint("id", id), zap.Error(err))
		return false, ErrMusicDeletionFailed
	}

	assetDeleted := true
	if music.PublicID != "" {
		assetDeleted = s.deleteAssetQuietly(music.PublicID, music.ResourceType)
	}

	configslog.SLog.Infof("Musik dihapus: ID %d (aset terhapus: %v)", id, assetDeleted)
	return assetDeleted, nil
}

func (s *MusicService) deleteAssetQuietly(publicID, resourceType string) bool {
	if s.sidecar == nil {
		return false
	}
	if resourceType == "" {
		resourceType = "auto"
	}
	if err := s.sidecar.DeleteAsset(publicID, resourceType); err != nil {
		configslog.Log.Warn("File musik gagal dihapus di penyedia media",
			zap.String("publicID", publicID), zap.Error(err))
		return false
	}
	return true
}

var _ IMusicService = (*MusicService)(nil)
