package models

// Product satışa sunulan fiziksel kart ürünüdür. Fiyat kuruş cinsindendir.
type Product struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	Price       int64  `gorm:"not null"`
	ImageURL    string `gorm:"type:varchar(500)"`
	IsActive    bool   `gorm:"default:true;index"`
}
