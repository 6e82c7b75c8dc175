package historia

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/repository"
	"github.com/jfcevallos/vetclinica-api/pkg/apperror"
)

// Service manages clinical-history entries.
type Service interface {
	Create(ctx context.Context, req *model.HistoriaRequest) (int64, error)
	List(ctx context.Context) ([]model.HistoriaClinica, error)
	GetPrimeraPorMascota(ctx context.Context, mascotaID int64) (*model.HistoriaClinica, error)
	ListPorMascota(ctx context.Context, mascotaID int64) ([]model.HistoriaConVeterinario, error)
	GetDetalle(ctx context.Context, id int64) (*model.HistoriaConVeterinario, error)
	Update(ctx context.Context, id int64, req *model.HistoriaRequest) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	historias repository.HistoriaRepository
	logger    zerolog.Logger
}

func NewService(historias repository.HistoriaRepository, logger zerolog.Logger) Service {
	return &service{
		historias: historias,
		logger:    logger.With().Str("service", "historia").Logger(),
	}
}

func (s *service) Create(ctx context.Context, req *model.HistoriaRequest) (int64, error) {
	if req.MascotaID == 0 || req.Fecha.IsZero() || req.EstadoReproductivo == "" ||
		req.Alimentacion == "" || req.Habitat == "" || req.VeterinarioID == 0 {
		return 0, apperror.Validation("Faltan campos obligatorios.")
	}

	id, err := s.historias.Create(ctx, req)
	if err != nil {
		return 0, apperror.Internal("Error al registrar la historia clínica.", err)
	}

	s.logger.Info().Int64("historia_id", id).Int64("mascota_id", req.MascotaID).Msg("historia clínica registrada")
	return id, nil
}

func (s *service) List(ctx context.Context) ([]model.HistoriaClinica, error) {
	historias, err := s.historias.List(ctx)
	if err != nil {
		return nil, apperror.Internal("Error al obtener las historias clínicas", err)
	}
	return historias, nil
}

func (s *service) GetPrimeraPorMascota(ctx context.Context, mascotaID int64) (*model.HistoriaClinica, error) {
	h, err := s.historias.GetPrimeraPorMascota(ctx, mascotaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("Historia no encontrada")
		}
		return nil, apperror.Internal("Error al obtener la historia clínica", err)
	}
	return h, nil
}

func (s *service) ListPorMascota(ctx context.Context, mascotaID int64) ([]model.HistoriaConVeterinario, error) {
	historias, err := s.historias.ListPorMascota(ctx, mascotaID)
	if err != nil {
		return nil, apperror.Internal("Error al obtener la historia clínica.", err)
	}
	if len(historias) == 0 {
		return nil, apperror.NotFound("No se encontraron historias clínicas para esta mascota.")
	}
	return historias, nil
}

func (s *service) GetDetalle(ctx context.Context, id int64) (*model.HistoriaConVeterinario, error) {
	h, err := s.historias.GetDetalle(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("No se encontró la historia clínica.")
		}
		return nil, apperror.Internal("Error al obtener la historia clínica.", err)
	}
	return h, nil
}

func (s *service) Update(ctx context.Context, id int64, req *model.HistoriaRequest) error {
	affected, err := s.historias.Update(ctx, id, req)
	if err != nil {
		return apperror.Internal("Error al actualizar la historia clínica.", err)
	}
	if affected == 0 {
		return apperror.NotFound("No se encontró la historia clínica para actualizar.")
	}
	return nil
}

// Delete mirrors Update's existence handling but with a separate pre-check,
// which is how the frontend distinguishes "already gone" from a hard error.
func (s *service) Delete(ctx context.Context, id int64) error {
	exists, err := s.historias.Exists(ctx, id)
	if err != nil {
		return apperror.Internal("Error interno al eliminar la historia clínica.", err)
	}
	if !exists {
		return apperror.NotFound("No se encontró la historia clínica a eliminar.")
	}

	if _, err := s.historias.Delete(ctx, id); err != nil {
		return apperror.Internal("Error interno al eliminar la historia clínica.", err)
	}

	s.logger.Info().Int64("historia_id", id).Msg("historia clínica eliminada")
	return nil
}
