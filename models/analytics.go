package models

import "time"

// LinkClick bir linke yapılan tek bir tıklamadır. UserID link sahibini
// tutar ki sahibin analitik sorguları tek kolondan süzülebilsin.
type LinkClick struct {
	BaseModel
	LinkID    uint      `gorm:"index;not null"`
	UserID    uint      `gorm:"index;not null"`
	Referrer  string    `gorm:"type:varchar(2048)"`
	ClickedAt time.Time `gorm:"index;not null"`

	Link Link `gorm:"foreignKey:LinkID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// PageView public profil sayfasının tek bir görüntülenmesidir.
type PageView struct {
	BaseModel
	UserID   uint      `gorm:"index;not null"` // profil sahibi
	Referrer string    `gorm:"type:varchar(2048)"`
	ViewedAt time.Time `gorm:"index;not null"`
}
