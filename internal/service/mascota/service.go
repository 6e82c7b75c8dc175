package mascota

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/repository"
	"github.com/jfcevallos/vetclinica-api/pkg/apperror"
)

// Service manages pets.
type Service interface {
	Create(ctx context.Context, req *model.MascotaRequest) (int64, error)
	Get(ctx context.Context, id int64) (*model.MascotaDetalle, error)
	List(ctx context.Context) ([]model.MascotaConPropietario, error)
	ListResumen(ctx context.Context) ([]model.MascotaResumen, error)
	ListResumenConPropietario(ctx context.Context) ([]model.MascotaResumen, error)
	Update(ctx context.Context, id int64, req *model.MascotaUpdateRequest) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	mascotas repository.MascotaRepository
	logger   zerolog.Logger
}

func NewService(mascotas repository.MascotaRepository, logger zerolog.Logger) Service {
	return &service{
		mascotas: mascotas,
		logger:   logger.With().Str("service", "mascota").Logger(),
	}
}

// Create requires the intake-form fields; color, chip and propietario_id
// are optional.
func (s *service) Create(ctx context.Context, req *model.MascotaRequest) (int64, error) {
	if req.Nombre == "" || req.Especie == "" || req.Raza == "" || req.Sexo == "" ||
		req.FechaNacimiento.IsZero() || req.Edad == 0 || req.Procedencia == "" {
		return 0, apperror.Validation("Todos los campos son obligatorios")
	}

	id, err := s.mascotas.Create(ctx, req)
	if err != nil {
		return 0, apperror.Internal("Error al registrar la mascota", err)
	}

	s.logger.Info().Int64("mascota_id", id).Str("nombre", req.Nombre).Msg("mascota registrada")
	return id, nil
}

func (s *service) Get(ctx context.Context, id int64) (*model.MascotaDetalle, error) {
	det, err := s.mascotas.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("Mascota no encontrada")
		}
		return nil, apperror.Internal("Error al obtener la mascota", err)
	}
	return det, nil
}

func (s *service) List(ctx context.Context) ([]model.MascotaConPropietario, error) {
	mascotas, err := s.mascotas.List(ctx)
	if err != nil {
		return nil, apperror.Internal("Error al obtener las mascotas", err)
	}
	return mascotas, nil
}

func (s *service) ListResumen(ctx context.Context) ([]model.MascotaResumen, error) {
	mascotas, err := s.mascotas.ListResumen(ctx)
	if err != nil {
		return nil, apperror.Internal("Error al obtener la lista de mascotas", err)
	}
	return mascotas, nil
}

func (s *service) ListResumenConPropietario(ctx context.Context) ([]model.MascotaResumen, error) {
	mascotas, err := s.mascotas.ListResumenConPropietario(ctx)
	if err != nil {
		return nil, apperror.Internal("Error al obtener las mascotas", err)
	}
	return mascotas, nil
}

func (s *service) Update(ctx context.Context, id int64, req *model.MascotaUpdateRequest) error {
	affected, err := s.mascotas.Update(ctx, id, req)
	if err != nil {
		return apperror.Internal("Error al actualizar la mascota", err)
	}
	if affected == 0 {
		return apperror.NotFound("Mascota no encontrada")
	}
	return nil
}

// Delete checks existence first, then deletes. The two steps are separate
// statements, so a concurrent delete between them still reports success.
func (s *service) Delete(ctx context.Context, id int64) error {
	exists, err := s.mascotas.Exists(ctx, id)
	if err != nil {
		return apperror.Internal("Error interno del servidor", err)
	}
	if !exists {
		return apperror.NotFound("Mascota no encontrada")
	}

	if _, err := s.mascotas.Delete(ctx, id); err != nil {
		return apperror.Internal("Error interno del servidor", err)
	}

	s.logger.Info().Int64("mascota_id", id).Msg("mascota eliminada")
	return nil
}
