package response

import "luxe-escape/internal/usecase/queries"

type RoomResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Beds       string `json:"beds"`
	Sleeps     string `json:"sleeps"`
	MaxGuests  int    `json:"maxGuests"`
	PriceCents int64  `json:"priceCents"`
	Price      string `json:"price"`
	Image      string `json:"image"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:         v.ID,
		Name:       v.Name,
		Beds:       v.Beds,
		Sleeps:     v.Sleeps,
		MaxGuests:  v.MaxGuests,
		PriceCents: v.PriceCents,
		Price:      v.Price,
		Image:      v.Image,
	}
}

func FromRoomViews(views []queries.RoomView) []RoomResponse {
	rooms := make([]RoomResponse, 0, len(views))
	for i := range views {
		rooms = append(rooms, *FromRoomView(&views[i]))
	}
	return rooms
}

type ShowcaseRoomResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Beds        string   `json:"beds"`
	Sleeps      string   `json:"sleeps"`
	Size        string   `json:"size"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Image       string   `json:"image"`
}

func FromShowcaseViews(views []queries.ShowcaseRoomView) []ShowcaseRoomResponse {
	rooms := make([]ShowcaseRoomResponse, 0, len(views))
	for _, v := range views {
		rooms = append(rooms, ShowcaseRoomResponse{
			ID:          v.ID,
			Name:        v.Name,
			Beds:        v.Beds,
			Sleeps:      v.Sleeps,
			Size:        v.Size,
			Price:       v.Price,
			Description: v.Description,
			Amenities:   v.Amenities,
			Image:       v.Image,
		})
	}
	return rooms
}
