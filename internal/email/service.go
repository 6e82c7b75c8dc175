package email

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/jfcevallos/vetclinica-api/config"
)

// Service sends transactional mail. When SMTP is not configured every send
// becomes a no-op, so local setups work without a mail server.
type Service interface {
	SendCitaNotification(to, veterinario, mascota, fechaHora, motivo string) error
}

type service struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
	logger zerolog.Logger
}

func NewService(cfg config.SMTPConfig, logger zerolog.Logger) Service {
	s := &service{
		cfg:    cfg,
		logger: logger.With().Str("service", "email").Logger(),
	}
	if cfg.Host != "" {
		s.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return s
}

func (s *service) SendCitaNotification(to, veterinario, mascota, fechaHora, motivo string) error {
	if s.dialer == nil {
		s.logger.Debug().Str("to", to).Msg("smtp not configured, skipping cita notification")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Nueva cita veterinaria asignada")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hola %s,\n\nSe te ha asignado una nueva cita.\n\nMascota: %s\nFecha y hora: %s\nMotivo: %s\n",
		veterinario, mascota, fechaHora, motivo,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send cita notification: %w", err)
	}
	return nil
}
