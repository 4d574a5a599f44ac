package usecase

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones. Misma forma que
// ProductUseCase: sin borrado.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create crea una ubicación con el ID asignado por el cliente.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.LocationID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	location := &entity.Location{
		ID:        in.LocationID,
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación por ID. Devuelve (nil, nil) si no existe.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// Update actualiza nombre y dirección. El ID y CreatedAt son inmutables.
func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		location.Name = *in.Name
	}
	if in.Address != nil {
		location.Address = *in.Address
	}
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lista ubicaciones en orden de clave primaria con paginación.
func (uc *LocationUseCase) List(limit, offset int) (*dto.LocationListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		LocationID: l.ID,
		Name:       l.Name,
		Address:    l.Address,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}
