package examen

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/repository"
	"github.com/jfcevallos/vetclinica-api/pkg/apperror"
)

// Service manages physical exams.
type Service interface {
	Create(ctx context.Context, req *model.ExamenRequest) (int64, error)
	List(ctx context.Context) ([]model.ExamenClinico, error)
	GetPrimeroPorMascota(ctx context.Context, mascotaID int64) (*model.ExamenClinico, error)
	ListPorMascota(ctx context.Context, mascotaID int64) ([]model.ExamenConMascota, error)
	GetDetalle(ctx context.Context, id int64) (*model.ExamenClinico, error)
	Update(ctx context.Context, id int64, req *model.ExamenRequest) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	examenes repository.ExamenRepository
	logger   zerolog.Logger
}

func NewService(examenes repository.ExamenRepository, logger zerolog.Logger) Service {
	return &service{
		examenes: examenes,
		logger:   logger.With().Str("service", "examen").Logger(),
	}
}

// Create requires only the header block; every mucosa/system pair is
// optional.
func (s *service) Create(ctx context.Context, req *model.ExamenRequest) (int64, error) {
	if req.MascotaID == 0 || req.Fecha.IsZero() || req.Actitud == "" ||
		req.CondicionCorporal == "" || req.Hidratacion == "" {
		return 0, apperror.Validation("Faltan campos obligatorios.")
	}

	id, err := s.examenes.Create(ctx, req)
	if err != nil {
		return 0, apperror.Internal("Error al registrar el examen clínico.", err)
	}

	s.logger.Info().Int64("examen_id", id).Int64("mascota_id", req.MascotaID).Msg("examen clínico registrado")
	return id, nil
}

func (s *service) List(ctx context.Context) ([]model.ExamenClinico, error) {
	examenes, err := s.examenes.List(ctx)
	if err != nil {
		return nil, apperror.Internal("Error al obtener los examenes clinicos", err)
	}
	return examenes, nil
}

func (s *service) GetPrimeroPorMascota(ctx context.Context, mascotaID int64) (*model.ExamenClinico, error) {
	e, err := s.examenes.GetPrimeroPorMascota(ctx, mascotaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("Examen clínico no encontrado")
		}
		return nil, apperror.Internal("Error al obtener el examen clínico", err)
	}
	return e, nil
}

func (s *service) ListPorMascota(ctx context.Context, mascotaID int64) ([]model.ExamenConMascota, error) {
	examenes, err := s.examenes.ListPorMascota(ctx, mascotaID)
	if err != nil {
		return nil, apperror.Internal("Error interno al obtener los exámenes clínicos.", err)
	}
	if len(examenes) == 0 {
		return nil, apperror.NotFound("No se encontraron exámenes clínicos para esta mascota.")
	}
	return examenes, nil
}

func (s *service) GetDetalle(ctx context.Context, id int64) (*model.ExamenClinico, error) {
	e, err := s.examenes.GetDetalle(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("No se encontró el examen clínico.")
		}
		return nil, apperror.Internal("Error interno al obtener el examen clínico.", err)
	}
	return e, nil
}

// Update does not check the affected-row count: updating a missing exam
// reports success. The edit form always loads the exam first, so in
// practice the id exists.
func (s *service) Update(ctx context.Context, id int64, req *model.ExamenRequest) error {
	if _, err := s.examenes.Update(ctx, id, req); err != nil {
		return apperror.Internal("Error interno al actualizar el examen clínico.", err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	exists, err := s.examenes.Exists(ctx, id)
	if err != nil {
		return apperror.Internal("Error interno al eliminar el examen clinico", err)
	}
	if !exists {
		return apperror.NotFound("No se encontró el examen clínico a eliminar.")
	}

	if _, err := s.examenes.Delete(ctx, id); err != nil {
		return apperror.Internal("Error interno al eliminar el examen clinico", err)
	}

	s.logger.Info().Int64("examen_id", id).Msg("examen clínico eliminado")
	return nil
}
