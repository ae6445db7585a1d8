package panel

import (
	"context"
	"sync"

	"medinfo-be/pkg/client"
)

// stubAPI answers from in-memory data; hooks override single calls.
type stubAPI struct {
	mu    sync.Mutex
	saved []client.Medicine
	calls map[string]int

	catalog map[uint]client.Medicine

	searchFn     func(ctx context.Context, query string) ([]client.Medicine, error)
	genericFn    func(ctx context.Context, name string) (client.GenericResult, error)
	essentialsFn func(ctx context.Context, category string) ([]client.Medicine, error)
	kendrasFn    func(ctx context.Context, loc client.Location) ([]client.Kendra, error)
	chatFn       func(ctx context.Context, message string) (string, error)
	categories   []string
}

func newStubAPI() *stubAPI {
	return &stubAPI{
		calls: map[string]int{},
		catalog: map[uint]client.Medicine{
			1: {ID: 1, Name: "Paracetamol", Generic: "Acetaminophen", Company: "BrandA", Price: 10},
			2: {ID: 2, Name: "Ibuprofen", Generic: "Ibuprofen", Company: "BrandB", Price: 15},
		},
		categories: []string{"pain", "cold", "fever"},
	}
}

func (s *stubAPI) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[name]++
}

func (s *stubAPI) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func (s *stubAPI) Search(ctx context.Context, query string) ([]client.Medicine, error) {
	s.record("search")
	if s.searchFn != nil {
		return s.searchFn(ctx, query)
	}
	return []client.Medicine{s.catalog[1]}, nil
}

func (s *stubAPI) Save(ctx context.Context, username string, medicineID uint) error {
	s.record("save")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.saved {
		if m.ID == medicineID {
			return nil
		}
	}
	s.saved = append(s.saved, s.catalog[medicineID])
	return nil
}

func (s *stubAPI) Saved(ctx context.Context, username string) ([]client.Medicine, error) {
	s.record("saved")
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]client.Medicine(nil), s.saved...), nil
}

func (s *stubAPI) Generic(ctx context.Context, name string) (client.GenericResult, error) {
	s.record("generic")
	if s.genericFn != nil {
		return s.genericFn(ctx, name)
	}
	return client.GenericResult{}, nil
}

func (s *stubAPI) Categories(ctx context.Context) ([]string, error) {
	s.record("categories")
	return s.categories, nil
}

func (s *stubAPI) Essentials(ctx context.Context, category string) ([]client.Medicine, error) {
	s.record("essentials")
	if s.essentialsFn != nil {
		return s.essentialsFn(ctx, category)
	}
	return nil, nil
}

func (s *stubAPI) NearbyKendras(ctx context.Context, loc client.Location) ([]client.Kendra, error) {
	s.record("kendras")
	if s.kendrasFn != nil {
		return s.kendrasFn(ctx, loc)
	}
	return nil, nil
}

func (s *stubAPI) Chat(ctx context.Context, message string) (string, error) {
	s.record("chat")
	if s.chatFn != nil {
		return s.chatFn(ctx, message)
	}
	return "AI says: You asked '" + message + "'", nil
}
