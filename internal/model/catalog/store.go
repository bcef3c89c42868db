package catalog

// Store exposes product retrieval for the simulator handlers.
type Store interface {
	List() []Product
	FindByID(id string) (Product, bool)
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Product
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied products.
func NewMemoryStore(items []Product) *MemoryStore {
	return &MemoryStore{items: append([]Product(nil), items...)}
}

// List returns every product.
func (s *MemoryStore) List() []Product {
	return append([]Product(nil), s.items...)
}

// FindByID looks up a product by identifier.
func (s *MemoryStore) FindByID(id string) (Product, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Product{}, false
}
