package memory

import (
	"context"

	appledger "github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.LocationRepository = (*LocationRepo)(nil)
	_ repository.MovementRepository = (*MovementRepo)(nil)
	_ repository.ReportRepository   = (*ReportRepo)(nil)
	_ appledger.TxRunner            = (*TxRunner)(nil)
)

// ProductRepo adaptador de productos sobre el Store.
type ProductRepo struct{ s *Store }

// NewProductRepository construye el adaptador.
func NewProductRepository(s *Store) *ProductRepo { return &ProductRepo{s: s} }

func (r *ProductRepo) Create(p *entity.Product) error        { return r.s.createProduct(p) }
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) { return r.s.getProduct(id) }
func (r *ProductRepo) Update(p *entity.Product) error        { return r.s.updateProduct(p) }
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return r.s.listProducts(limit, offset)
}

// LocationRepo adaptador de ubicaciones sobre el Store.
type LocationRepo struct{ s *Store }

// NewLocationRepository construye el adaptador.
func NewLocationRepository(s *Store) *LocationRepo { return &LocationRepo{s: s} }

func (r *LocationRepo) Create(l *entity.Location) error        { return r.s.createLocation(l) }
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) { return r.s.getLocation(id) }
func (r *LocationRepo) Update(l *entity.Location) error        { return r.s.updateLocation(l) }
func (r *LocationRepo) List(limit, offset int) ([]*entity.Location, error) {
	return r.s.listLocations(limit, offset)
}

// MovementRepo adaptador del libro de movimientos sobre el Store.
type MovementRepo struct{ s *Store }

// NewMovementRepository construye el adaptador.
func NewMovementRepository(s *Store) *MovementRepo { return &MovementRepo{s: s} }

func (r *MovementRepo) Create(m *entity.Movement) error        { return r.s.createMovement(m) }
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) { return r.s.getMovement(id) }
func (r *MovementRepo) Update(m *entity.Movement) error        { return r.s.updateMovement(m) }
func (r *MovementRepo) All() ([]*entity.Movement, error)       { return r.s.allMovements() }

func (r *MovementRepo) List(limit, offset int) ([]*entity.Movement, error) {
	return r.s.filterMovements(func(entity.Movement) bool { return true }, limit, offset)
}

func (r *MovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	return r.s.filterMovements(func(m entity.Movement) bool { return m.ProductID == productID }, limit, offset)
}

func (r *MovementRepo) ListIncoming(locationID string, limit, offset int) ([]*entity.Movement, error) {
	return r.s.filterMovements(func(m entity.Movement) bool { return m.ToLocation == locationID }, limit, offset)
}

func (r *MovementRepo) ListOutgoing(locationID string, limit, offset int) ([]*entity.Movement, error) {
	return r.s.filterMovements(func(m entity.Movement) bool { return m.FromLocation == locationID }, limit, offset)
}

// TxRunner ejecuta el callback directamente: cada operación del Store ya es
// atómica bajo su mutex, que es la garantía que los tests necesitan.
type TxRunner struct{ s *Store }

// NewTxRunner construye el runner.
func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

func (r *TxRunner) Run(ctx context.Context, fn func(movRepo repository.MovementRepository) error) error {
	return fn(NewMovementRepository(r.s))
}

func (r *TxRunner) RunRead(ctx context.Context, fn func(movRepo repository.MovementRepository) error) error {
	return fn(NewMovementRepository(r.s))
}

// ReportRepo contadores del tablero sobre el Store.
type ReportRepo struct{ s *Store }

// NewReportRepository construye el adaptador.
func NewReportRepository(s *Store) *ReportRepo { return &ReportRepo{s: s} }

func (r *ReportRepo) GetEntityCounts(ctx context.Context) (*repository.EntityCounts, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return &repository.EntityCounts{
		Products:  int64(len(r.s.products)),
		Locations: int64(len(r.s.locations)),
		Movements: int64(len(r.s.movements)),
	}, nil
}

// GetActiveLocations replica el conteo distinct del adaptador PostgreSQL:
// cada lado por separado, y la frontera externa (valor vacío) cuenta como un
// valor distinto cuando aparece.
func (r *ReportRepo) GetActiveLocations(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	to := make(map[string]struct{})
	from := make(map[string]struct{})
	for _, m := range r.s.movements {
		to[m.ToLocation] = struct{}{}
		from[m.FromLocation] = struct{}{}
	}
	return int64(len(to) + len(from)), nil
}
