package catalog

import (
	"context"

	"luxe-escape/internal/domain/room"
	"luxe-escape/internal/pkg/errs"
	"luxe-escape/internal/usecase/queries"
)

// Catalog is the static room inventory. It is assembled once at startup and
// never mutated; an availability search never changes it.
type Catalog struct {
	rooms []*room.Room
	byID  map[string]*room.Room
}

type roomSeed struct {
	id        string
	name      string
	beds      string
	sleeps    string
	maxGuests int
	rateCents int64
	image     string
}

var seeds = []roomSeed{
	{"deluxe", "Deluxe Room", "1 bed", "2 sleeps", 2, 29900,
		"https://images.unsplash.com/photo-1566665797739-1674de7a421a?auto=format&fit=crop&w=1374&q=80"},
	{"junior-suite", "Junior Suite", "1 bed", "2 sleeps", 2, 39900,
		"https://images.unsplash.com/photo-1578683010236-d716f9a3f461?auto=format&fit=crop&w=1470&q=80"},
	{"suite", "Suite", "1 bed", "2 sleeps", 2, 54900,
		"https://images.unsplash.com/photo-1631049307264-da0ec9d70304?auto=format&fit=crop&w=1470&q=80"},
	{"twin", "Twin Room", "2 beds", "4 sleeps", 4, 19900,
		"https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?auto=format&fit=crop&w=1471&q=80"},
	{"superior", "Superior Room", "1 bed", "2 sleeps", 2, 24900,
		"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&w=1470&q=80"},
}

func NewCatalog() (*Catalog, error) {
	c := &Catalog{
		byID: make(map[string]*room.Room, len(seeds)),
	}
	for _, s := range seeds {
		r, err := room.NewRoom(s.id, s.name, s.beds, s.sleeps, s.maxGuests, room.NewMoney(s.rateCents), s.image)
		if err != nil {
			return nil, errs.Wrap(err, "failed to build room catalog")
		}
		c.rooms = append(c.rooms, r)
		c.byID[s.id] = r
	}
	return c, nil
}

// FindByID returns the domain room for selection by the booking flow.
func (c *Catalog) FindByID(_ context.Context, id string) (*room.Room, error) {
	r, ok := c.byID[id]
	if !ok {
		return nil, queries.ErrRoomNotFound
	}
	return r, nil
}

func (c *Catalog) ListRooms(_ context.Context) ([]queries.RoomView, error) {
	views := make([]queries.RoomView, len(c.rooms))
	for i, r := range c.rooms {
		views[i] = toRoomView(r)
	}
	return views, nil
}

func (c *Catalog) GetRoom(_ context.Context, id string) (*queries.RoomView, error) {
	r, ok := c.byID[id]
	if !ok {
		return nil, queries.ErrRoomNotFound
	}
	v := toRoomView(r)
	return &v, nil
}

func toRoomView(r *room.Room) queries.RoomView {
	return queries.RoomView{
		ID:         r.ID(),
		Name:       r.Name(),
		Beds:       r.Beds(),
		Sleeps:     r.Sleeps(),
		MaxGuests:  r.MaxGuests(),
		PriceCents: r.Rate().Cents(),
		Price:      r.Rate().Format(),
		Image:      r.Image(),
	}
}
