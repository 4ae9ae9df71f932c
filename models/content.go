package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Marketing content rows managed from the admin dashboard. Independent of
// the commerce entities; each carries an ordering index and an active flag.

type HeroBanner struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	ImageURL    string    `gorm:"not null" json:"image_url"`
	Button1Text string    `json:"button1_text"`
	Button1URL  string    `json:"button1_url"`
	Button2Text string    `json:"button2_text"`
	Button2URL  string    `json:"button2_url"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type HeroBannerPatch struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	ImageURL    *string `json:"image_url"`
	Button1Text *string `json:"button1_text"`
	Button1URL  *string `json:"button1_url"`
	Button2Text *string `json:"button2_text"`
	Button2URL  *string `json:"button2_url"`
	IsActive    *bool   `json:"is_active"`
}

func (p HeroBannerPatch) Apply(b *HeroBanner) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Subtitle != nil {
		b.Subtitle = *p.Subtitle
	}
	if p.ImageURL != nil {
		b.ImageURL = *p.ImageURL
	}
	if p.Button1Text != nil {
		b.Button1Text = *p.Button1Text
	}
	if p.Button1URL != nil {
		b.Button1URL = *p.Button1URL
	}
	if p.Button2Text != nil {
		b.Button2Text = *p.Button2Text
	}
	if p.Button2URL != nil {
		b.Button2URL = *p.Button2URL
	}
	if p.IsActive != nil {
		b.IsActive = *p.IsActive
	}
}

type HeroSlide struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Subtitle   string    `json:"subtitle"`
	ImageURL   string    `gorm:"not null" json:"image_url"`
	ButtonText string    `json:"button_text"`
	ButtonLink string    `json:"button_link"`
	OrderIndex int       `gorm:"default:0" json:"order_index"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

type HeroSlidePatch struct {
	Title      *string `json:"title"`
	Subtitle   *string `json:"subtitle"`
	ImageURL   *string `json:"image_url"`
	ButtonText *string `json:"button_text"`
	ButtonLink *string `json:"button_link"`
	OrderIndex *int    `json:"order_index"`
	IsActive   *bool   `json:"is_active"`
}

func (p HeroSlidePatch) Apply(s *HeroSlide) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Subtitle != nil {
		s.Subtitle = *p.Subtitle
	}
	if p.ImageURL != nil {
		s.ImageURL = *p.ImageURL
	}
	if p.ButtonText != nil {
		s.ButtonText = *p.ButtonText
	}
	if p.ButtonLink != nil {
		s.ButtonLink = *p.ButtonLink
	}
	if p.OrderIndex != nil {
		s.OrderIndex = *p.OrderIndex
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
}

type Package struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Duration    string          `json:"duration"`
	Features    string          `gorm:"type:text" json:"features"` // JSON array of strings
	IsPopular   bool            `gorm:"default:false" json:"is_popular"`
	IsActive    bool            `gorm:"default:true" json:"is_active"`
	OrderIndex  int             `gorm:"default:0" json:"order_index"`
	ButtonText  string          `gorm:"default:'Get Started'" json:"button_text"`
	ButtonLink  string          `json:"button_link"`
	Icon        string          `json:"icon"`
	ColorScheme string          `json:"color_scheme"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type PackagePatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Duration    *string          `json:"duration"`
	Features    *string          `json:"features"`
	IsPopular   *bool            `json:"is_popular"`
	IsActive    *bool            `json:"is_active"`
	OrderIndex  *int             `json:"order_index"`
	ButtonText  *string          `json:"button_text"`
	ButtonLink  *string          `json:"button_link"`
	Icon        *string          `json:"icon"`
	ColorScheme *string          `json:"color_scheme"`
}

func (p PackagePatch) Apply(pkg *Package) {
	if p.Name != nil {
		pkg.Name = *p.Name
	}
	if p.Description != nil {
		pkg.Description = *p.Description
	}
	if p.Price != nil {
		pkg.Price = *p.Price
	}
	if p.Duration != nil {
		pkg.Duration = *p.Duration
	}
	if p.Features != nil {
		pkg.Features = *p.Features
	}
	if p.IsPopular != nil {
		pkg.IsPopular = *p.IsPopular
	}
	if p.IsActive != nil {
		pkg.IsActive = *p.IsActive
	}
	if p.OrderIndex != nil {
		pkg.OrderIndex = *p.OrderIndex
	}
	if p.ButtonText != nil {
		pkg.ButtonText = *p.ButtonText
	}
	if p.ButtonLink != nil {
		pkg.ButtonLink = *p.ButtonLink
	}
	if p.Icon != nil {
		pkg.Icon = *p.Icon
	}
	if p.ColorScheme != nil {
		pkg.ColorScheme = *p.ColorScheme
	}
}

// AboutPage is a singleton row.
type AboutPage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Subtitle  string    `json:"subtitle"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AboutPagePatch struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
}

func (p AboutPagePatch) Apply(a *AboutPage) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Subtitle != nil {
		a.Subtitle = *p.Subtitle
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
}

type HandcraftPhoto struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"not null" json:"image_url"`
	OrderIndex  int       `gorm:"default:0" json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

type HandcraftPhotoPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	OrderIndex  *int    `json:"order_index"`
}

func (p HandcraftPhotoPatch) Apply(h *HandcraftPhoto) {
	if p.Title != nil {
		h.Title = *p.Title
	}
	if p.Description != nil {
		h.Description = *p.Description
	}
	if p.ImageURL != nil {
		h.ImageURL = *p.ImageURL
	}
	if p.OrderIndex != nil {
		h.OrderIndex = *p.OrderIndex
	}
}
