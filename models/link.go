package models

// Link kullanıcının public profilinde görünen tek bir dış bağlantıdır.
// SortOrder kullanıcı başına 0'dan başlayan görüntüleme sırasını belirler;
// ekleme her zaman max+1'e yapılır, araya boşluk girmesi tolere edilir.
type Link struct {
	BaseModel
	UserID      uint   `gorm:"index;not null"`
	Title       string `gorm:"type:varchar(100);not null"`
	URL         string `gorm:"type:varchar(2048);not null"`
	Icon        string `gorm:"type:varchar(50)"` // sembolik isim veya doğrudan emoji
	IsActive    bool   `gorm:"default:true;index"`
	SortOrder   int    `gorm:"default:0;index"`
	ClicksCount int    `gorm:"default:0"` // denormalize sayaç, worker artırır

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
