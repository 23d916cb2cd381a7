package catalog

import (
	"context"

	"luxe-escape/internal/usecase/queries"
)

// Showcase and promo content for the marketing pages. Static, like the room
// inventory; served so the SPA renders no hardcoded copy of its own.

var showcaseSeeds = []queries.ShowcaseRoomView{
	{
		ID: "standard", Name: "Standard Room", Beds: "1 bed", Sleeps: "2 sleeps",
		Size: "32 m²", Price: "$199",
		Description: "Elegantly appointed with contemporary furnishings and premium amenities for the perfect urban retreat.",
		Amenities:   []string{"Free WiFi", "Coffee Machine", "Luxury Bath"},
		Image:       "https://images.unsplash.com/photo-1566665797739-1674de7a421a?auto=format&fit=crop&w=1374&q=80",
	},
	{
		ID: "junior-suite", Name: "Junior Suite", Beds: "1 bed", Sleeps: "2 sleeps",
		Size: "45 m²", Price: "$299",
		Description: "Spacious suite with separate living area, offering enhanced comfort and stunning city views.",
		Amenities:   []string{"Premium WiFi", "Nespresso", "Spa Bathroom"},
		Image:       "https://images.unsplash.com/photo-1578683010236-d716f9a3f461?auto=format&fit=crop&w=1470&q=80",
	},
	{
		ID: "deluxe-suite", Name: "Deluxe Suite", Beds: "1 bed", Sleeps: "4 sleeps",
		Size: "65 m²", Price: "$449",
		Description: "Sophisticated luxury with premium finishes, state-of-the-art technology, and personalized service.",
		Amenities:   []string{"Ultra WiFi", "Full Kitchen", "Master Spa"},
		Image:       "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?auto=format&fit=crop&w=1470&q=80",
	},
	{
		ID: "presidential-suite", Name: "Presidential Suite", Beds: "2 beds", Sleeps: "6 sleeps",
		Size: "120 m²", Price: "$899",
		Description: "The epitome of luxury with private terrace, butler service, and exclusive amenities.",
		Amenities:   []string{"Elite WiFi", "Full Bar", "Private Spa"},
		Image:       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&w=1470&q=80",
	},
}

var heroSeed = queries.HeroView{
	Headline:  "VISUALIZE OUR MODERN HOTEL",
	Subtitle:  "Experience luxury redefined through immersive visuals and cutting-edge design",
	VideoURL:  "https://player.vimeo.com/external/434045526.sd.mp4?s=c27eecc69856df2dcfb2ce7a0e67d8a4af5a5e6c&profile_id=164&oauth2_token_id=57447761",
	VideoType: "video/mp4",
	// Static decorative background shown when the video asset fails to load
	FallbackURL: "https://images.unsplash.com/photo-1566665797739-1674de7a421a?auto=format&fit=crop&w=1374&q=80",
}

var restaurantSeed = queries.RestaurantView{
	Title:       "FINE DINING AT OUR RESTAURANTS",
	Description: "Savor seasonal menus crafted by our chefs, from relaxed all-day dining to an intimate tasting room.",
	Slides: []queries.RestaurantSlideView{
		{Image: "https://images.unsplash.com/photo-1551218808-94e220e084d2?w=800&h=600&fit=crop&crop=center&auto=format&q=75", Alt: "Gourmet dish with wine"},
		{Image: "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=800&h=600&fit=crop&crop=center&auto=format&q=75", Alt: "Fine dining restaurant interior"},
		{Image: "https://images.unsplash.com/photo-1590846406792-0adc7f938f1d?w=800&h=600&fit=crop&crop=center&auto=format&q=75", Alt: "Elegant plated dish"},
	},
}

func (c *Catalog) ListShowcase(_ context.Context) ([]queries.ShowcaseRoomView, error) {
	out := make([]queries.ShowcaseRoomView, len(showcaseSeeds))
	copy(out, showcaseSeeds)
	return out, nil
}

func (c *Catalog) Hero(_ context.Context) (*queries.HeroView, error) {
	v := heroSeed
	return &v, nil
}

func (c *Catalog) Restaurant(_ context.Context) (*queries.RestaurantView, error) {
	v := restaurantSeed
	v.Slides = make([]queries.RestaurantSlideView, len(restaurantSeed.Slides))
	copy(v.Slides, restaurantSeed.Slides)
	return &v, nil
}
