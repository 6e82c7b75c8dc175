package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/jfcevallos/vetclinica-api/config"
	"github.com/jfcevallos/vetclinica-api/internal/email"
	"github.com/jfcevallos/vetclinica-api/internal/handler"
	authHandler "github.com/jfcevallos/vetclinica-api/internal/handler/auth"
	citaHandler "github.com/jfcevallos/vetclinica-api/internal/handler/cita"
	clinicaHandler "github.com/jfcevallos/vetclinica-api/internal/handler/clinica"
	examenHandler "github.com/jfcevallos/vetclinica-api/internal/handler/examen"
	historiaHandler "github.com/jfcevallos/vetclinica-api/internal/handler/historia"
	mascotaHandler "github.com/jfcevallos/vetclinica-api/internal/handler/mascota"
	propietarioHandler "github.com/jfcevallos/vetclinica-api/internal/handler/propietario"
	"github.com/jfcevallos/vetclinica-api/internal/middleware"
	"github.com/jfcevallos/vetclinica-api/internal/repository/postgres"
	"github.com/jfcevallos/vetclinica-api/internal/router"
	authService "github.com/jfcevallos/vetclinica-api/internal/service/auth"
	citaService "github.com/jfcevallos/vetclinica-api/internal/service/cita"
	clinicaService "github.com/jfcevallos/vetclinica-api/internal/service/clinica"
	examenService "github.com/jfcevallos/vetclinica-api/internal/service/examen"
	historiaService "github.com/jfcevallos/vetclinica-api/internal/service/historia"
	mascotaService "github.com/jfcevallos/vetclinica-api/internal/service/mascota"
	propietarioService "github.com/jfcevallos/vetclinica-api/internal/service/propietario"
	"github.com/jfcevallos/vetclinica-api/pkg/auth"
	"github.com/jfcevallos/vetclinica-api/pkg/logger"
	"github.com/jfcevallos/vetclinica-api/pkg/messaging"
	redisbroker "github.com/jfcevallos/vetclinica-api/pkg/messaging/redis"
	"github.com/jfcevallos/vetclinica-api/pkg/security"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:   zerolog.InfoLevel,
		Console: os.Getenv("LOG_CONSOLE") == "1",
	})
	zlog.Logger = log

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	usuarioRepo := postgres.NewUsuarioRepository(db)
	propietarioRepo := postgres.NewPropietarioRepository(db)
	mascotaRepo := postgres.NewMascotaRepository(db)
	historiaRepo := postgres.NewHistoriaRepository(db)
	examenRepo := postgres.NewExamenRepository(db)
	citaRepo := postgres.NewCitaRepository(db)
	clinicaRepo := postgres.NewClinicaRepository(db)

	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost)
	tokens := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	var broker messaging.Broker
	if cfg.Redis.Enabled {
		broker, err = redisbroker.NewBroker(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer broker.Close()
	}

	mailer := email.NewService(cfg.SMTP, log)

	authSvc := authService.NewService(usuarioRepo, hasher, tokens, log)
	propietarioSvc := propietarioService.NewService(propietarioRepo, log)
	mascotaSvc := mascotaService.NewService(mascotaRepo, log)
	historiaSvc := historiaService.NewService(historiaRepo, log)
	examenSvc := examenService.NewService(examenRepo, log)
	citaSvc := citaService.NewService(citaRepo, usuarioRepo, mascotaRepo, broker, mailer, log)
	clinicaSvc := clinicaService.NewService(clinicaRepo, log)

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.Security.AllowedOrigins
	}

	r := router.New(
		router.Config{
			RateLimitEnabled:  cfg.RateLimit.Enabled,
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			CORS:              corsCfg,
		},
		router.Handlers{
			Auth:        authHandler.NewHandler(authSvc),
			Propietario: propietarioHandler.NewHandler(propietarioSvc),
			Mascota:     mascotaHandler.NewHandler(mascotaSvc),
			Historia:    historiaHandler.NewHandler(historiaSvc),
			Examen:      examenHandler.NewHandler(examenSvc),
			Cita:        citaHandler.NewHandler(citaSvc),
			Clinica:     clinicaHandler.NewHandler(clinicaSvc),
			Health:      handler.NewHealthHandler(db),
		},
		tokens,
		log,
	)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
