// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Se usa en los tests y como store efímero de desarrollo; el
// comportamiento observable (orden de listados, duplicados, referencias
// colgantes, conteos del tablero) replica al adaptador PostgreSQL.
package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Store contenedor compartido de las tres colecciones, protegido por un RWMutex.
type Store struct {
	mu        sync.RWMutex
	products  map[string]entity.Product
	locations map[string]entity.Location
	movements map[string]entity.Movement
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{
		products:  make(map[string]entity.Product),
		locations: make(map[string]entity.Location),
		movements: make(map[string]entity.Movement),
	}
}

func (s *Store) createProduct(p *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	s.products[p.ID] = *p
	return nil
}

func (s *Store) getProduct(id string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (s *Store) updateProduct(p *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	s.products[p.ID] = *p
	return nil
}

func (s *Store) listProducts(limit, offset int) ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var list []*entity.Product
	for _, id := range page(ids, limit, offset) {
		p := s.products[id]
		list = append(list, &p)
	}
	return list, nil
}

func (s *Store) createLocation(l *entity.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.locations[l.ID]; ok {
		return domain.ErrDuplicate
	}
	s.locations[l.ID] = *l
	return nil
}

func (s *Store) getLocation(id string) (*entity.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.locations[id]
	if !ok {
		return nil, nil
	}
	cp := l
	return &cp, nil
}

func (s *Store) updateLocation(l *entity.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.locations[l.ID]; !ok {
		return domain.ErrNotFound
	}
	s.locations[l.ID] = *l
	return nil
}

func (s *Store) listLocations(limit, offset int) ([]*entity.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.locations))
	for id := range s.locations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var list []*entity.Location
	for _, id := range page(ids, limit, offset) {
		l := s.locations[id]
		list = append(list, &l)
	}
	return list, nil
}

// DeleteProduct y DeleteLocation eliminan la entidad sin tocar el libro de
// movimientos. La API no expone borrado; existen para simular en los tests
// una entidad eliminada fuera de banda.
func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, id)
}

func (s *Store) DeleteLocation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locations, id)
}

func (s *Store) createMovement(m *entity.Movement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.movements[m.ID]; ok {
		return domain.ErrDuplicate
	}
	if err := s.checkMovementRefs(m); err != nil {
		return err
	}
	s.movements[m.ID] = *m
	return nil
}

func (s *Store) getMovement(id string) (*entity.Movement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.movements[id]
	if !ok {
		return nil, nil
	}
	cp := m
	return &cp, nil
}

func (s *Store) updateMovement(m *entity.Movement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.movements[m.ID]; !ok {
		return domain.ErrNotFound
	}
	if err := s.checkMovementRefs(m); err != nil {
		return err
	}
	s.movements[m.ID] = *m
	return nil
}

// checkMovementRefs replica las foreign keys del esquema SQL.
// Llamar con el lock de escritura tomado.
func (s *Store) checkMovementRefs(m *entity.Movement) error {
	if _, ok := s.products[m.ProductID]; !ok {
		return domain.ErrDanglingReference
	}
	if m.FromLocation != "" {
		if _, ok := s.locations[m.FromLocation]; !ok {
			return domain.ErrDanglingReference
		}
	}
	if m.ToLocation != "" {
		if _, ok := s.locations[m.ToLocation]; !ok {
			return domain.ErrDanglingReference
		}
	}
	return nil
}

func (s *Store) allMovements() ([]*entity.Movement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.Movement, 0, len(s.movements))
	for _, m := range s.movements {
		cp := m
		list = append(list, &cp)
	}
	return list, nil
}

func (s *Store) filterMovements(match func(entity.Movement) bool, limit, offset int) ([]*entity.Movement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []*entity.Movement
	for _, m := range s.movements {
		if match(m) {
			cp := m
			list = append(list, &cp)
		}
	}
	// más reciente primero; desempate por ID para que el orden sea estable
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Timestamp.Equal(list[j].Timestamp) {
			return list[i].Timestamp.After(list[j].Timestamp)
		}
		return list[i].ID > list[j].ID
	})
	return pageMovements(list, limit, offset), nil
}

func page(ids []string, limit, offset int) []string {
	if offset >= len(ids) {
		return nil
	}
	ids = ids[offset:]
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	return ids
}

func pageMovements(list []*entity.Movement, limit, offset int) []*entity.Movement {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
