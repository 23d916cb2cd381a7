package sessions

import (
	"context"

	"luxe-escape/internal/domain/booking"
	"luxe-escape/internal/domain/checkout"
	"luxe-escape/internal/pkg/config"
	"luxe-escape/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/karlseguin/ccache/v3"
)

var ErrSessionNotFound = errs.New("session not found")

// FlowStore keeps in-progress booking flows in an expiring in-process cache.
// Nothing here survives a restart; the system holds no durable state.
// Find returns a detached copy: a stored session is only replaced by Save,
// never mutated in place, so concurrent readers need no locking here.
type FlowStore struct {
	cache *ccache.Cache[*booking.Flow]
	cfg   config.SessionConfig
}

func NewFlowStore(cfg config.SessionConfig) *FlowStore {
	return &FlowStore{
		cache: ccache.New(ccache.Configure[*booking.Flow]().MaxSize(cfg.MaxItems)),
		cfg:   cfg,
	}
}

func (s *FlowStore) Save(_ context.Context, flow *booking.Flow) error {
	s.cache.Set(flow.ID().String(), flow, s.cfg.TTL)
	return nil
}

func (s *FlowStore) Find(_ context.Context, id uuid.UUID) (*booking.Flow, error) {
	item := s.cache.Get(id.String())
	if item == nil || item.Expired() {
		return nil, ErrSessionNotFound
	}
	return item.Value().Clone(), nil
}

// FormStore is the checkout counterpart of FlowStore.
type FormStore struct {
	cache *ccache.Cache[*checkout.Form]
	cfg   config.SessionConfig
}

func NewFormStore(cfg config.SessionConfig) *FormStore {
	return &FormStore{
		cache: ccache.New(ccache.Configure[*checkout.Form]().MaxSize(cfg.MaxItems)),
		cfg:   cfg,
	}
}

func (s *FormStore) Save(_ context.Context, form *checkout.Form) error {
	s.cache.Set(form.ID().String(), form, s.cfg.TTL)
	return nil
}

func (s *FormStore) Find(_ context.Context, id uuid.UUID) (*checkout.Form, error) {
	item := s.cache.Get(id.String())
	if item == nil || item.Expired() {
		return nil, ErrSessionNotFound
	}
	return item.Value().Clone(), nil
}
