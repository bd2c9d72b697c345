package models

// Template ID sabitleri. Public profil sayfası bu şablonlardan biriyle çizilir.
const (
	TemplateClassic = "classic"
	TemplateCard    = "card"
	TemplateSplit   = "split"
)

// Profile her kullanıcının tek public profilidir. Username public sayfa
// adresini (/u/{username}) belirler ve platform genelinde benzersizdir.
type Profile struct {
	BaseModel
	UserID       uint    `gorm:"uniqueIndex;not null"`
	Username     *string `gorm:"type:varchar(30);uniqueIndex"`
	FullName     string  `gorm:"type:varchar(100)"`
	Bio          string  `gorm:"type:varchar(500)"`
	AvatarURL    string  `gorm:"type:varchar(500)"`
	TemplateID   string  `gorm:"type:varchar(20);default:classic"`
	ContactEmail string  `gorm:"type:varchar(100)"`
	ContactPhone string  `gorm:"type:varchar(20)"`
	Location     string  `gorm:"type:varchar(100)"`
	IsActive     bool    `gorm:"default:true;index"`

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
