package models

import "time"

// CardActivation tek kullanımlık aktivasyon biletidir. ActivationCode kart
// ambalajına basılır; kod kullanıldığında (IsUsed=true) kayıt bir daha değişmez.
// Normal işleyişte her kartın aynı anda tek bir kullanılmamış aktivasyonu olur.
type CardActivation struct {
	BaseModel
	ActivationCode string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	CardID         uint       `gorm:"index;not null"`
	IsUsed         bool       `gorm:"default:false;index"`
	UsedAt         *time.Time
	UserID         *uint      `gorm:"index"`

	Card Card `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
