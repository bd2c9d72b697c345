package models

import (
	"time"

	"gorm.io/gorm"
)

type contextKey string

// ContextUserIDKey işlemi yapan kullanıcının ID'sini context üzerinden
// BaseModel hook'larına taşır. Servis katmanı mutasyonlardan önce
// context.WithValue ile bu anahtarı set eder.
const ContextUserIDKey contextKey = "user_id"

// BaseModel tüm tabloların paylaştığı kimlik ve denetim (audit) alanları.
type BaseModel struct {
	ID        uint           `gorm:"primarykey"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedBy *uint
	UpdatedBy *uint
	DeletedBy *uint
}

// BeforeCreate context'te user_id varsa CreatedBy alanını doldurur.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if userID, ok := tx.Statement.Context.Value(ContextUserIDKey).(uint); ok && userID != 0 {
		m.CreatedBy = &userID
	}
	return nil
}

// BeforeUpdate context'te user_id varsa UpdatedBy alanını doldurur.
func (m *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if userID, ok := tx.Statement.Context.Value(ContextUserIDKey).(uint); ok && userID != 0 {
		m.UpdatedBy = &userID
	}
	return nil
}
