package response

import "luxe-escape/internal/usecase/queries"

type HeroResponse struct {
	Headline    string `json:"headline"`
	Subtitle    string `json:"subtitle"`
	VideoURL    string `json:"videoUrl"`
	VideoType   string `json:"videoType"`
	FallbackURL string `json:"fallbackUrl"`
}

func FromHeroView(v *queries.HeroView) *HeroResponse {
	return &HeroResponse{
		Headline:    v.Headline,
		Subtitle:    v.Subtitle,
		VideoURL:    v.VideoURL,
		VideoType:   v.VideoType,
		FallbackURL: v.FallbackURL,
	}
}

type RestaurantSlideResponse struct {
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

type RestaurantResponse struct {
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Slides      []RestaurantSlideResponse `json:"slides"`
}

func FromRestaurantView(v *queries.RestaurantView) *RestaurantResponse {
	slides := make([]RestaurantSlideResponse, 0, len(v.Slides))
	for _, s := range v.Slides {
		slides = append(slides, RestaurantSlideResponse{Image: s.Image, Alt: s.Alt})
	}
	return &RestaurantResponse{
		Title:       v.Title,
		Description: v.Description,
		Slides:      slides,
	}
}

type SubscribeResponse struct {
	Message string `json:"message"`
}
