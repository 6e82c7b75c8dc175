package cita

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jfcevallos/vetclinica-api/internal/email"
	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/repository"
	"github.com/jfcevallos/vetclinica-api/pkg/apperror"
	"github.com/jfcevallos/vetclinica-api/pkg/messaging"
)

const (
	eventCitaCreada      = "cita.creada"
	eventCitaActualizada = "cita.actualizada"
	eventCitaEliminada   = "cita.eliminada"

	eventsChannel = "citas.eventos"
)

// Service manages appointments. Creation publishes an event and notifies
// the assigned veterinarian; both side effects are best-effort and never
// fail the request.
type Service interface {
	Create(ctx context.Context, req *model.CitaRequest) (int64, error)
	List(ctx context.Context) ([]model.Cita, error)
	ListVista(ctx context.Context) ([]model.CitaVista, error)
	GetDetalle(ctx context.Context, id int64) (*model.CitaDetalle, error)
	Update(ctx context.Context, id int64, req *model.CitaUpdateRequest) error
	Delete(ctx context.Context, id int64) error
}

type citaEvent struct {
	Type   string `json:"type"`
	CitaID int64  `json:"cita_id"`
}

type service struct {
	citas    repository.CitaRepository
	usuarios repository.UsuarioRepository
	mascotas repository.MascotaRepository
	broker   messaging.Broker
	mailer   email.Service
	logger   zerolog.Logger
}

func NewService(
	citas repository.CitaRepository,
	usuarios repository.UsuarioRepository,
	mascotas repository.MascotaRepository,
	broker messaging.Broker,
	mailer email.Service,
	logger zerolog.Logger,
) Service {
	return &service{
		citas:    citas,
		usuarios: usuarios,
		mascotas: mascotas,
		broker:   broker,
		mailer:   mailer,
		logger:   logger.With().Str("service", "cita").Logger(),
	}
}

func (s *service) Create(ctx context.Context, req *model.CitaRequest) (int64, error) {
	if req.FechaHora.IsZero() || req.Motivo == "" || req.PropietarioID == 0 ||
		req.VeterinarioID == 0 || req.MascotaID == 0 {
		return 0, apperror.Validation("Todos los campos son obligatorios.")
	}

	id, err := s.citas.Create(ctx, req)
	if err != nil {
		return 0, apperror.Internal("Error interno del servidor", err)
	}

	s.logger.Info().Int64("cita_id", id).Int64("veterinario_id", req.VeterinarioID).Msg("cita registrada")
	s.publish(ctx, eventCitaCreada, id)
	s.notifyVeterinario(ctx, id, req)
	return id, nil
}

func (s *service) List(ctx context.Context) ([]model.Cita, error) {
	citas, err := s.citas.List(ctx)
	if err != nil {
		return nil, apperror.Internal("Error al obtener las citas", err)
	}
	return citas, nil
}

func (s *service) ListVista(ctx context.Context) ([]model.CitaVista, error) {
	citas, err := s.citas.ListVista(ctx)
	if err != nil {
		return nil, apperror.Internal("Error al obtener las citas.", err)
	}
	return citas, nil
}

func (s *service) GetDetalle(ctx context.Context, id int64) (*model.CitaDetalle, error) {
	det, err := s.citas.GetDetalle(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("❌ Cita no encontrada.")
		}
		return nil, apperror.Internal("❌ Error al obtener la cita.", err)
	}
	return det, nil
}

func (s *service) Update(ctx context.Context, id int64, req *model.CitaUpdateRequest) error {
	affected, err := s.citas.Update(ctx, id, req)
	if err != nil {
		return apperror.Internal("❌ Error al actualizar la cita.", err)
	}
	if affected == 0 {
		return apperror.NotFound("❌ Cita no encontrada.")
	}

	s.publish(ctx, eventCitaActualizada, id)
	return nil
}

// Delete reports success whether or not the row existed.
func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.citas.Delete(ctx, id); err != nil {
		return apperror.Internal("Error al eliminar la cita", err)
	}

	s.publish(ctx, eventCitaEliminada, id)
	return nil
}

func (s *service) publish(ctx context.Context, eventType string, citaID int64) {
	if s.broker == nil {
		return
	}
	if err := s.broker.Publish(ctx, eventsChannel, citaEvent{Type: eventType, CitaID: citaID}); err != nil {
		s.logger.Warn().Err(err).Int64("cita_id", citaID).Msg("failed to publish cita event")
	}
}

func (s *service) notifyVeterinario(ctx context.Context, citaID int64, req *model.CitaRequest) {
	vet, err := s.usuarios.Get(ctx, req.VeterinarioID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("cita_id", citaID).Msg("failed to load veterinario for notification")
		return
	}

	mascotaNombre := ""
	if resumen, err := s.mascotas.Get(ctx, req.MascotaID); err == nil {
		mascotaNombre = resumen.MascotaNombre
	}

	err = s.mailer.SendCitaNotification(
		vet.Correo, vet.Nombre, mascotaNombre,
		req.FechaHora.Format("2006-01-02 15:04:05"), req.Motivo,
	)
	if err != nil {
		s.logger.Warn().Err(err).Int64("cita_id", citaID).Msg("failed to notify veterinario")
	}
}
