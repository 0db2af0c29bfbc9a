package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/queryparams"
	"undangan.link/repositories"
)

// UserServiceError error domain layanan akun.
type UserServiceError string

func (e UserServiceError) Error() string { return string(e) }

const (
	ErrUserNotFound          UserServiceError = "user tidak ditemukan"
	ErrUserInvalidInput      UserServiceError = "data user tidak valid"
	ErrUserEmailTaken        UserServiceError = "email sudah terdaftar"
	ErrUserCreationFailed    UserServiceError = "user gagal dibuat"
	ErrUserUpdateFailed      UserServiceError = "user gagal diupdate"
	ErrUserDeletionFailed    UserServiceError = "user gagal dihapus"
	ErrInvalidCredentials    UserServiceError = "email atau password salah"
	ErrUserInactive          UserServiceError = "akun dinonaktifkan"
	ErrUserSelfDeleteBlocked UserServiceError = "tidak bisa menghapus akun sendiri"
)

// UserInput data form akun internal. Password kosong pada update berarti
// password lama dipertahankan.
type UserInput struct {
	Name     string `form:"name" validate:"required,max=100"`
	Email    string `form:"email" validate:"required,email,max=255"`
	Password string `form:"password" validate:"omitempty,min=8"`
	Role     string `form:"role" validate:"required,oneof=admin cs designer"`
	WhatsApp string `form:"whatsapp" validate:"max=30"`
	IsActive bool   `form:"is_active"`
}

// IUserService operasi akun internal dan autentikasi dashboard.
type IUserService interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	CreateUser(ctx context.Context, creatorUserID uint, input UserInput) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUsersPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateUser(ctx context.Context, id uint, updatingUserID uint, input UserInput) error
	DeleteUser(ctx context.Context, id uint, deletingUserID uint) error
}

// UserService implementasi IUserService.
type UserService struct {
	repo repositories.IUserRepository
}

// NewUserService membuat service akun dengan dependensi bawaan.
func NewUserService() IUserService {
	return &UserService{repo: repositories.NewUserRepository()}
}

// Authenticate memverifikasi kredensial login dashboard.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Tetap jalankan bcrypt supaya waktu respons tidak membocorkan
			// keberadaan email.
			_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$0000000000000000000000000000000000000000000000000000"), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		configslog.Log.Info("Percobaan login gagal", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, creatorUserID uint, input UserInput) (*models.User, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserInvalidInput, err)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password wajib untuk akun baru", ErrUserInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrUserCreationFailed
	}

	user := &models.User{
		Name:         input.Name,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		Role:         input.Role,
		WhatsApp:     input.WhatsApp,
		IsActive:     input.IsActive,
	}

	ctx = models.ContextWithUserID(ctx, creatorUserID)
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserEmailTaken
		}
		configslog.Log.Error("CreateUser: gagal menyimpan", zap.Error(err))
		return nil, ErrUserCreationFailed
	}

	configslog.SLog.Infof("Akun baru dibuat: ID %d (%s, %s)", user.ID, user.Email, user.Role)
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUsersPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	if params.SortBy == "" {
		params.SortBy = "created_at"
	}

	users, total, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: users,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  queryparams.CalculateTotalPages(total, params.PerPage),
		},
	}, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, updatingUserID uint, input UserInput) error {
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrUserInvalidInput, err)
	}

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	user.Name = input.Name
	user.Email = strings.ToLower(strings.TrimSpace(input.Email))
	user.Role = input.Role
	user.WhatsApp = input.WhatsApp
	user.IsActive = input.IsActive

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return ErrUserUpdateFailed
		}
		user.PasswordHash = string(hash)
	}

	ctx = models.ContextWithUserID(ctx, updatingUserID)
	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserEmailTaken
		}
		configslog.Log.Error("UpdateUser: gagal menyimpan", zap.Uint("id", id), zap.Error(err))
		return ErrUserUpdateFailed
	}

	configslog.SLog.Infof("Akun diupdate: ID %d", id)
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint, deletingUserID uint) error {
	if id == deletingUserID {
		return ErrUserSelfDeleteBlocked
	}

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	ctx = models.ContextWithUserID(ctx, deletingUserID)
	if err := s.repo.Delete(ctx, user); err != nil {
		configslog.Log.Error("DeleteUser: gagal menghapus", zap.Uint("id", id), zap.Error(err))
		return ErrUserDeletionFailed
	}

	configslog.SLog.Infof("Akun dihapus: ID %d oleh user %d", id, deletingUserID)
	return nil
}

var _ IUserService = (*UserService)(nil)
