package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type contextKey string

// ContextUserIDKey kunci context untuk user pelaku operasi; dibaca hook
// BaseModel untuk mengisi kolom audit.
const ContextUserIDKey contextKey = "user_id"

// ContextWithUserID menempelkan user pelaku ke context untuk hook audit.
func ContextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, ContextUserIDKey, userID)
}

// BaseModel kolom standar semua tabel: primary key, timestamp, soft delete,
// dan audit pelaku (diisi dari context lewat hook).
type BaseModel struct {
	ID        uint           `gorm:"primarykey"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedBy *uint          `gorm:"index"`
	UpdatedBy *uint
	DeletedBy *uint
}

func userIDFromContext(ctx context.Context) *uint {
	if ctx == nil {
		return nil
	}
	if id, ok := ctx.Value(ContextUserIDKey).(uint); ok && id != 0 {
		return &id
	}
	return nil
}

// BeforeCreate mengisi CreatedBy dari context bila ada.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if id := userIDFromContext(tx.Statement.Context); id != nil {
		m.CreatedBy = id
	}
	return nil
}

// BeforeUpdate mengisi UpdatedBy dari context bila ada.
func (m *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if id := userIDFromContext(tx.Statement.Context); id != nil {
		m.UpdatedBy = id
	}
	return nil
}
