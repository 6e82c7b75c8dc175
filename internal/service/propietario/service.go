package propietario

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/repository"
	"github.com/jfcevallos/vetclinica-api/pkg/apperror"
)

// Service manages pet owners.
type Service interface {
	Create(ctx context.Context, req *model.PropietarioRequest) (int64, error)
	Get(ctx context.Context, id int64) (*model.Propietario, error)
	GetByMascota(ctx context.Context, mascotaID int64) (*model.Propietario, error)
	List(ctx context.Context) ([]model.PropietarioResumen, error)
	ListConCelular(ctx context.Context) ([]model.PropietarioResumen, error)
	Update(ctx context.Context, id int64, req *model.PropietarioRequest) error
}

type service struct {
	propietarios repository.PropietarioRepository
	logger       zerolog.Logger
}

func NewService(propietarios repository.PropietarioRepository, logger zerolog.Logger) Service {
	return &service{
		propietarios: propietarios,
		logger:       logger.With().Str("service", "propietario").Logger(),
	}
}

func (s *service) Create(ctx context.Context, req *model.PropietarioRequest) (int64, error) {
	if req.Nombre == "" || req.Direccion == "" || req.Ciudad == "" ||
		req.Provincia == "" || req.Cedula == "" || req.Celular == "" {
		return 0, apperror.Validation("Todos los campos son obligatorios")
	}

	id, err := s.propietarios.Create(ctx, req)
	if err != nil {
		return 0, apperror.Internal("Error al registrar el propietario", err)
	}

	s.logger.Info().Int64("propietario_id", id).Msg("propietario registrado")
	return id, nil
}

func (s *service) Get(ctx context.Context, id int64) (*model.Propietario, error) {
	p, err := s.propietarios.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("Propietario no encontrado")
		}
		return nil, apperror.Internal("Error al obtener el propietario", err)
	}
	return p, nil
}

func (s *service) GetByMascota(ctx context.Context, mascotaID int64) (*model.Propietario, error) {
	p, err := s.propietarios.GetByMascota(ctx, mascotaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("Propietario no encontrado.")
		}
		return nil, apperror.Internal("Error al obtener el propietario.", err)
	}
	return p, nil
}

func (s *service) List(ctx context.Context) ([]model.PropietarioResumen, error) {
	propietarios, err := s.propietarios.List(ctx)
	if err != nil {
		return nil, apperror.Internal("Error al obtener propietarios.", err)
	}
	return propietarios, nil
}

func (s *service) ListConCelular(ctx context.Context) ([]model.PropietarioResumen, error) {
	propietarios, err := s.propietarios.ListConCelular(ctx)
	if err != nil {
		return nil, apperror.Internal("Error al obtener los propietarios", err)
	}
	return propietarios, nil
}

func (s *service) Update(ctx context.Context, id int64, req *model.PropietarioRequest) error {
	affected, err := s.propietarios.Update(ctx, id, req)
	if err != nil {
		return apperror.Internal("Error al actualizar el propietario.", err)
	}
	if affected == 0 {
		return apperror.NotFound("❌ Propietario no encontrado.")
	}
	return nil
}
