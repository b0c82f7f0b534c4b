package domain

import "strings"

// BannerLayout is the closed set of banner render variants.
type BannerLayout string

const (
	LayoutHero  BannerLayout = "hero"
	LayoutStrip BannerLayout = "strip"
	LayoutCard  BannerLayout = "card"
)

// ParseBannerLayout validates a layout string; unknown input yields false.
func ParseBannerLayout(s string) (BannerLayout, bool) {
	switch BannerLayout(strings.ToLower(strings.TrimSpace(s))) {
	case LayoutHero:
		return LayoutHero, true
	case LayoutStrip:
		return LayoutStrip, true
	case LayoutCard:
		return LayoutCard, true
	default:
		return "", false
	}
}

type Banner struct {
	ID         int64        `json:"id"`
	Title      string       `json:"title"`
	ImageURL   string       `json:"imageUrl"`
	TargetURL  string       `json:"targetUrl,omitempty"`
	LayoutType BannerLayout `json:"layoutType"`
	SortOrder  int          `json:"sortOrder"`
	Active     bool         `json:"active"`
}

type Promo struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Active      bool   `json:"active"`
}

type FAQ struct {
	ID        int64  `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	SortOrder int    `json:"sortOrder"`
	Active    bool   `json:"active"`
}

type Testimonial struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	Message string `json:"message"`
	Rating  int    `json:"rating"`
	Active  bool   `json:"active"`
}

type Video struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
	Active   bool   `json:"active"`
}
