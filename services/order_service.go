package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"undangan.link/configs/configsapp"
	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/invitation"
	"undangan.link/pkg/queryparams"
	"undangan.link/repositories"
)

// OrderServiceError error domain layanan pesanan.
type OrderServiceError string

func (e OrderServiceError) Error() string { return string(e) }

const (
	ErrOrderNotFound       OrderServiceError = "pesanan tidak ditemukan"
	ErrOrderInvalidInput   OrderServiceError = "data pesanan tidak valid"
	ErrOrderCreationFailed OrderServiceError = "pesanan gagal dibuat"
	ErrOrderUpdateFailed   OrderServiceError = "pesanan gagal diupdate"
	ErrOrderProcessFailed  OrderServiceError = "pesanan gagal diproses"
	ErrOrderDeletionFailed OrderServiceError = "pesanan gagal dihapus"
	ErrOrderLinkConflict   OrderServiceError = "link undangan bentrok, coba proses ulang"
	ErrOrderTemplateGone   OrderServiceError = "tema pesanan tidak ditemukan"
	ErrInvitationNotFound  OrderServiceError = "undangan tidak ditemukan"
)

var validate = validator.New()

// OrderInput data form pesanan, dipakai baik oleh wizard publik maupun form
// edit dashboard. Field acara dan orang tua opsional; template yang memakainya
// menandai lewat token di HTML-nya.
type OrderInput struct {
	TemplateID uint `form:"template_id" validate:"required,gt=0"`

	GroomName     string `form:"groom_name" validate:"required,max=150"`
	GroomNickname string `form:"groom_nickname" validate:"required,max=50"`
	BrideName     string `form:"bride_name" validate:"required,max=150"`
	BrideNickname string `form:"bride_nickname" validate:"required,max=50"`

	GroomFatherName string `form:"groom_father_name" validate:"max=150"`
	GroomMotherName string `form:"groom_mother_name" validate:"max=150"`
	BrideFatherName string `form:"bride_father_name" validate:"max=150"`
	BrideMotherName string `form:"bride_mother_name" validate:"max=150"`

	AkadDate     string `form:"akad_date" validate:"max=20"`
	AkadTime     string `form:"akad_time" validate:"max=10"`
	AkadTimezone string `form:"akad_timezone" validate:"max=10"`
	AkadVenue    string `form:"akad_venue" validate:"max=255"`
	AkadMapLink  string `form:"akad_map_link" validate:"omitempty,url,max=500"`

	ReceptionDate     string `form:"reception_date" validate:"max=20"`
	ReceptionTime     string `form:"reception_time" validate:"max=10"`
	ReceptionTimezone string `form:"reception_timezone" validate:"max=10"`
	ReceptionVenue    string `form:"reception_venue" validate:"max=255"`
	ReceptionMapLink  string `form:"reception_map_link" validate:"omitempty,url,max=500"`

	SelectedMusicID *uint

	// JSON array amplop digital apa adanya dari form; divalidasi per entri
	// saat render, entri tidak lengkap dilewati.
	WeddingGiftsJSON string

	ExtraFields map[string]interface{}
}

// IOrderService operasi pesanan undangan.
type IOrderService interface {
	CreateOrder(ctx context.Context, input OrderInput) (*models.Order, error)
	GetOrderByID(ctx context.Context, id uint) (*models.Order, error)
	GetOrdersPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	ProcessOrder(ctx context.Context, id uint, processingUserID uint) (*models.Order, error)
	UpdateOrder(ctx context.Context, id uint, updatingUserID uint, input OrderInput) (*models.Order, error)
	DeleteOrder(ctx context.Context, id uint, deletingUserID uint) error
	GetInvitationHTMLBySlug(ctx context.Context, slug string) (string, error)
	CountOrders(ctx context.Context) (total int64, pending int64, err error)
}

// OrderService implementasi IOrderService.
type OrderService struct {
	repo         repositories.IOrderRepository
	templateRepo repositories.ITemplateRepository
	musicRepo    repositories.IMusicRepository
	db           *gorm.DB
}

// NewOrderService membuat service pesanan dengan dependensi bawaan.
func NewOrderService() IOrderService {
	return &OrderService{
		repo:         repositories.NewOrderRepository(),
		templateRepo: repositories.NewTemplateRepository(),
		musicRepo:    repositories.NewMusicRepository(),
		db:           configsdatabase.GetDB(),
	}
}

// CreateOrder membuat pesanan baru berstatus pending dari wizard publik.
func (s *OrderService) CreateOrder(ctx context.Context, input OrderInput) (*models.Order, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderInvalidInput, err)
	}

	template, err := s.templateRepo.FindByID(ctx, input.TemplateID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderTemplateGone
		}
		return nil, err
	}
	if template.Status != models.TemplateStatusPublish {
		return nil, fmt.Errorf("%w: tema belum dipublikasikan", ErrOrderInvalidInput)
	}

	order := &models.Order{Status: models.OrderStatusPending}
	applyOrderInput(order, input)

	if err := s.repo.Create(ctx, order); err != nil {
		configslog.Log.Error("CreateOrder: gagal menyimpan pesanan", zap.Error(err))
		return nil, ErrOrderCreationFailed
	}

	configslog.SLog.Infof("Pesanan baru dibuat: ID %d (%s & %s)", order.ID, order.GroomNickname, order.BrideNickname)
	return order, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetOrdersPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	if params.SortBy == "" {
		params.SortBy = "created_at"
	}

	orders, total, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: orders,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  queryparams.CalculateTotalPages(total, params.PerPage),
		},
	}, nil
}

// ProcessOrder menggenerate undangan untuk satu pesanan dalam satu
// transaction: resolusi slug terhadap link pesanan lain, generate dokumen,
// lalu transisi ke completed. Pesanan yang sudah punya link mempertahankan
// link lamanya; hanya HTML yang digenerate ulang.
func (s *OrderService) ProcessOrder(ctx context.Context, id uint, processingUserID uint) (*models.Order, error) {
	if id == 0 || processingUserID == 0 {
		return nil, fmt.Errorf("%w: ID tidak valid", ErrOrderInvalidInput)
	}

	var processed *models.Order
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(models.ContextWithUserID(ctx, processingUserID), tx)
		orderRepoTx := repositories.NewOrderRepositoryTx(tx)

		order, err := orderRepoTx.FindByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if order.InvitationLink == nil {
			links, err := orderRepoTx.AssignedLinksExcept(txCtx, order.ID)
			if err != nil {
				return ErrOrderProcessFailed
			}
			existing := make(map[string]bool, len(links))
			for _, l := range links {
				if slug := invitation.SlugFromLink(l); slug != "" {
					existing[slug] = true
				}
			}

			base := invitation.CoupleSlug(order.GroomNickname, order.BrideNickname)
			slug := invitation.ResolveSlug(base, existing)
			link := invitation.InvitationLink(configsapp.GetConfig().BaseURL, slug)
			order.InvitationLink = &link
		}

		html, err := s.renderInvitation(txCtx, order)
		if err != nil {
			return err
		}

		now := time.Now()
		order.InvitationHTML = html
		order.ProcessedAt = &now
		order.Status = models.OrderStatusCompleted

		if err := orderRepoTx.Update(txCtx, order); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Index unik invitation_link menangkap balapan dua proses
				// bersamaan; pemanggil cukup mengulang.
				return ErrOrderLinkConflict
			}
			configslog.Log.Error("ProcessOrder: gagal menyimpan hasil", zap.Uint("id", id), zap.Error(err))
			return ErrOrderProcessFailed
		}

		processed = order
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Pesanan diproses: ID %d, link %s", processed.ID, *processed.InvitationLink)
	return processed, nil
}

// UpdateOrder menyimpan perubahan data pesanan. Bila undangan sudah pernah
// diproses, HTML digenerate ulang dengan data baru; link tidak pernah berubah.
func (s *OrderService) UpdateOrder(ctx context.Context, id uint, updatingUserID uint, input OrderInput) (*models.Order, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderInvalidInput, err)
	}
	if id == 0 || updatingUserID == 0 {
		return nil, fmt.Errorf("%w: ID tidak valid", ErrOrderInvalidInput)
	}

	var updated *models.Order
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(models.ContextWithUserID(ctx, updatingUserID), tx)
		orderRepoTx := repositories.NewOrderRepositoryTx(tx)

		order, err := orderRepoTx.FindByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if input.TemplateID != order.TemplateID {
			templateRepoTx := repositories.NewTemplateRepositoryTx(tx)
			if _, err := templateRepoTx.FindByID(txCtx, input.TemplateID); err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return ErrOrderTemplateGone
				}
				return err
			}
			// Relasi preload lama sudah tidak berlaku.
			order.Template = models.Template{}
		}
		applyOrderInput(order, input)

		if order.InvitationLink != nil {
			html, err := s.renderInvitation(txCtx, order)
			if err != nil {
				return err
			}
			order.InvitationHTML = html
		}

		if err := orderRepoTx.Update(txCtx, order); err != nil {
			configslog.Log.Error("UpdateOrder: gagal menyimpan", zap.Uint("id", id), zap.Error(err))
			return ErrOrderUpdateFailed
		}
		updated = order
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Pesanan diupdate: ID %d", updated.ID)
	return updated, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint, deletingUserID uint) error {
	if id == 0 || deletingUserID == 0 {
		return fmt.Errorf("%w: ID tidak valid", ErrOrderInvalidInput)
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	ctx = models.ContextWithUserID(ctx, deletingUserID)
	if err := s.repo.Delete(ctx, order, deletingUserID); err != nil {
		configslog.Log.Error("DeleteOrder: gagal menghapus", zap.Uint("id", id), zap.Error(err))
		return ErrOrderDeletionFailed
	}

	configslog.SLog.Infof("Pesanan dihapus: ID %d oleh user %d", id, deletingUserID)
	return nil
}

// GetInvitationHTMLBySlug dokumen undangan tersimpan untuk rute publik
// /invitation/:slug. Dokumen disajikan apa adanya, tanpa generate ulang.
func (s *OrderService) GetInvitationHTMLBySlug(ctx context.Context, slug string) (string, error) {
	order, err := s.repo.FindByInvitationSlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvitationNotFound
		}
		return "", err
	}
	if order.InvitationHTML == "" {
		return "", ErrInvitationNotFound
	}
	return order.InvitationHTML, nil
}

func (s *OrderService) CountOrders(ctx context.Context) (int64, int64, error) {
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return 0, 0, err
	}
	pending, err := s.repo.CountByStatus(ctx, models.OrderStatusPending)
	if err != nil {
		return 0, 0, err
	}
	return total, pending, nil
}

// renderInvitation memanggil mesin generate dengan template dan snapshot
// musik pesanan. Template yang raib (data lama tanpa constraint) diturunkan
// jadi dokumen placeholder alih-alih menggagalkan proses.
func (s *OrderService) renderInvitation(ctx context.Context, order *models.Order) (string, error) {
	template := order.Template
	if template.ID == 0 {
		found, err := repositories.NewTemplateRepositoryTx(s.db).FindByID(ctx, order.TemplateID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				configslog.Log.Warn("renderInvitation: tema pesanan raib, memakai placeholder",
					zap.Uint("orderID", order.ID), zap.Uint("templateID", order.TemplateID))
				return placeholderDocument(order), nil
			}
			return "", err
		}
		template = *found
		order.Template = template
	}

	in := invitation.Input{
		Fields:        order.PlaceholderFields(),
		Gifts:         invitation.ParseGifts(order.WeddingGifts),
		SelectedMusic: musicIDString(order.SelectedMusicID),
	}
	return invitation.Generate(invitation.Template{
		HTML: template.HTML,
		CSS:  template.CSS,
		JS:   template.JS,
	}, in, s.musicSnapshot(ctx, order)), nil
}

// musicSnapshot memuat entri musik yang dirujuk pesanan. Rujukan dangling
// (musik sudah dihapus) menghasilkan snapshot kosong, generate lanjut tanpa
// audio.
func (s *OrderService) musicSnapshot(ctx context.Context, order *models.Order) []invitation.Music {
	if order.SelectedMusicID == nil || *order.SelectedMusicID == 0 {
		return nil
	}
	music, err := s.musicRepo.FindByID(ctx, *order.SelectedMusicID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Error("musicSnapshot: DB error", zap.Uintp("musicID", order.SelectedMusicID), zap.Error(err))
		}
		return nil
	}
	return []invitation.Music{{
		ID:    strconv.FormatUint(uint64(music.ID), 10),
		Title: music.Title,
		URL:   music.URL,
	}}
}

func musicIDString(id *uint) string {
	if id == nil || *id == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(*id), 10)
}

// placeholderDocument dokumen sementara saat tema pesanan tidak bisa dimuat.
func placeholderDocument(order *models.Order) string {
	body := fmt.Sprintf("<main><h1>%s &amp; %s</h1><p>Undangan sedang disiapkan.</p></main>",
		order.GroomNickname, order.BrideNickname)
	return invitation.Assemble(body, "", "")
}

func applyOrderInput(order *models.Order, input OrderInput) {
	order.TemplateID = input.TemplateID
	order.GroomName = input.GroomName
	order.GroomNickname = input.GroomNickname
	order.BrideName = input.BrideName
	order.BrideNickname = input.BrideNickname
	order.GroomFatherName = input.GroomFatherName
	order.GroomMotherName = input.GroomMotherName
	order.BrideFatherName = input.BrideFatherName
	order.BrideMotherName = input.BrideMotherName
	order.AkadDate = input.AkadDate
	order.AkadTime = input.AkadTime
	order.AkadTimezone = defaultString(input.AkadTimezone, "WIB")
	order.AkadVenue = input.AkadVenue
	order.AkadMapLink = input.AkadMapLink
	order.ReceptionDate = input.ReceptionDate
	order.ReceptionTime = input.ReceptionTime
	order.ReceptionTimezone = defaultString(input.ReceptionTimezone, "WIB")
	order.ReceptionVenue = input.ReceptionVenue
	order.ReceptionMapLink = input.ReceptionMapLink
	order.SelectedMusicID = input.SelectedMusicID

	// Payload kado yang bukan JSON valid tidak disimpan; kolomnya jsonb.
	if input.WeddingGiftsJSON != "" && json.Valid([]byte(input.WeddingGiftsJSON)) {
		order.WeddingGifts = []byte(input.WeddingGiftsJSON)
	} else {
		order.WeddingGifts = nil
	}
	if input.ExtraFields != nil {
		order.ExtraFields = input.ExtraFields
	}
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

var _ IOrderService = (*OrderService)(nil)
