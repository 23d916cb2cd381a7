package queries

import "context"

// HeroView carries the landing hero video plus the static poster the client
// falls back to when the video asset fails to load. The fallback is a
// presentation concern; this layer only serves both references.
type HeroView struct {
	Headline    string
	Subtitle    string
	VideoURL    string
	VideoType   string
	FallbackURL string
}

type RestaurantSlideView struct {
	Image string
	Alt   string
}

type RestaurantView struct {
	Title       string
	Description string
	Slides      []RestaurantSlideView
}

type ContentQueries interface {
	Hero(ctx context.Context) (*HeroView, error)
	Restaurant(ctx context.Context) (*RestaurantView, error)
}
