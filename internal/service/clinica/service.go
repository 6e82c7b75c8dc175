package clinica

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/repository"
	"github.com/jfcevallos/vetclinica-api/pkg/apperror"
)

const (
	cacheKey = "informacion_veterinaria"
	cacheTTL = 5 * time.Minute
)

// Service exposes the clinic info record. The row changes rarely and is
// requested on every page load, so reads go through an in-process cache.
type Service interface {
	Get(ctx context.Context) (*model.InformacionVeterinaria, error)
}

type service struct {
	clinica repository.ClinicaRepository
	cache   *cache.Cache
	logger  zerolog.Logger
}

func NewService(clinica repository.ClinicaRepository, logger zerolog.Logger) Service {
	return &service{
		clinica: clinica,
		cache:   cache.New(cacheTTL, 10*time.Minute),
		logger:  logger.With().Str("service", "clinica").Logger(),
	}
}

func (s *service) Get(ctx context.Context) (*model.InformacionVeterinaria, error) {
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(*model.InformacionVeterinaria), nil
	}

	info, err := s.clinica.Get(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("No se encontró información de la clínica")
		}
		return nil, apperror.Internal("Error al obtener la información de la clínica", err)
	}

	s.cache.Set(cacheKey, info, cache.DefaultExpiration)
	return info, nil
}
