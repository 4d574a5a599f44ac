package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// MovementUseCase registra y corrige movimientos del libro.
//
// Las referencias a producto y ubicaciones se verifican explícitamente antes
// de escribir (no se delega solo en las foreign keys del store); las
// escrituras pasan por TxRunner para garantizar todo-o-nada por llamada.
type MovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// Record registra un movimiento nuevo.
//
// MovementID vacío recibe un UUID; Timestamp nulo recibe la hora actual.
// Qty se acepta con cualquier signo. FromLocation y ToLocation vacíos
// representan la frontera externa; ambos vacíos está permitido (neto cero).
func (uc *MovementUseCase) Record(ctx context.Context, in dto.RecordMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkReferences(in.ProductID, in.FromLocation, in.ToLocation); err != nil {
		return nil, err
	}

	id := in.MovementID
	if id == "" {
		id = uuid.New().String()
	} else {
		existing, err := uc.movementRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	now := time.Now()
	timestamp := now
	if in.Timestamp != nil {
		timestamp = *in.Timestamp
	}
	movement := &entity.Movement{
		ID:           id,
		Timestamp:    timestamp,
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		ProductID:    in.ProductID,
		Qty:          in.Qty,
		Notes:        in.Notes,
		CreatedAt:    now,
	}

	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository) error {
		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// Update corrige un movimiento existente. Campos nulos se conservan;
// devuelve (nil, nil) si el movimiento no existe.
func (uc *MovementUseCase) Update(ctx context.Context, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	movement, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, nil
	}
	if in.Timestamp != nil {
		movement.Timestamp = *in.Timestamp
	}
	if in.FromLocation != nil {
		movement.FromLocation = *in.FromLocation
	}
	if in.ToLocation != nil {
		movement.ToLocation = *in.ToLocation
	}
	if in.ProductID != nil {
		if *in.ProductID == "" {
			return nil, domain.ErrInvalidInput
		}
		movement.ProductID = *in.ProductID
	}
	if in.Qty != nil {
		movement.Qty = *in.Qty
	}
	if in.Notes != nil {
		movement.Notes = *in.Notes
	}
	if err := uc.checkReferences(movement.ProductID, movement.FromLocation, movement.ToLocation); err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository) error {
		return movRepo.Update(movement)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// GetByID obtiene un movimiento por ID. Devuelve (nil, nil) si no existe.
func (uc *MovementUseCase) GetByID(id string) (*dto.MovementResponse, error) {
	movement, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, nil
	}
	return toMovementResponse(movement), nil
}

// List lista el libro completo, más reciente primero, con paginación.
func (uc *MovementUseCase) List(limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.MovementListResponse{
		Items: toMovementResponses(list),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByProduct lista el historial de un producto, más reciente primero.
func (uc *MovementUseCase) ListByProduct(productID string, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.MovementListResponse{
		Items: toMovementResponses(list),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListForLocation lista el historial de una ubicación: entradas (ToLocation)
// y salidas (FromLocation), cada lista del más reciente al más antiguo.
func (uc *MovementUseCase) ListForLocation(locationID string, limit, offset int) (*dto.LocationMovementsResponse, error) {
	incoming, err := uc.movementRepo.ListIncoming(locationID, limit, offset)
	if err != nil {
		return nil, err
	}
	outgoing, err := uc.movementRepo.ListOutgoing(locationID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.LocationMovementsResponse{
		Incoming: toMovementResponses(incoming),
		Outgoing: toMovementResponses(outgoing),
		Page:     dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// checkReferences verifica que producto y ubicaciones (si presentes) existan.
func (uc *MovementUseCase) checkReferences(productID, fromLocation, toLocation string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrDanglingReference
	}
	for _, locID := range []string{fromLocation, toLocation} {
		if locID == "" {
			continue
		}
		location, err := uc.locationRepo.GetByID(locID)
		if err != nil {
			return err
		}
		if location == nil {
			return domain.ErrDanglingReference
		}
	}
	return nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		MovementID:   m.ID,
		Timestamp:    m.Timestamp,
		FromLocation: m.FromLocation,
		ToLocation:   m.ToLocation,
		ProductID:    m.ProductID,
		Qty:          m.Qty,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
	}
}

func toMovementResponses(list []*entity.Movement) []dto.MovementResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return items
}
