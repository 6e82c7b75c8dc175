package auth

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/repository"
	"github.com/jfcevallos/vetclinica-api/pkg/apperror"
	"github.com/jfcevallos/vetclinica-api/pkg/auth"
	"github.com/jfcevallos/vetclinica-api/pkg/security"
)

// Service handles staff registration and login.
type Service interface {
	Register(ctx context.Context, req *model.RegistroRequest) (int64, error)
	RegisterAdmin(ctx context.Context, req *model.RegistroRequest) (int64, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ListVeterinarios(ctx context.Context) ([]model.UsuarioResumen, error)
	ListVeterinariosCita(ctx context.Context) ([]model.UsuarioResumen, error)
}

type service struct {
	usuarios repository.UsuarioRepository
	hasher   security.PasswordHasher
	tokens   auth.TokenService
	logger   zerolog.Logger
}

func NewService(usuarios repository.UsuarioRepository, hasher security.PasswordHasher, tokens auth.TokenService, logger zerolog.Logger) Service {
	return &service{
		usuarios: usuarios,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates a staff account after checking the correo is free.
func (s *service) Register(ctx context.Context, req *model.RegistroRequest) (int64, error) {
	if err := validateRegistro(req); err != nil {
		return 0, err
	}

	exists, err := s.usuarios.ExistsByCorreo(ctx, req.Correo)
	if err != nil {
		return 0, apperror.Internal("Error interno del servidor", err)
	}
	if exists {
		return 0, apperror.Conflict("El correo ya está registrado.")
	}

	return s.create(ctx, req)
}

// RegisterAdmin is the admin-console variant. It skips the pre-check and
// relies on the unique index to reject duplicate correos.
func (s *service) RegisterAdmin(ctx context.Context, req *model.RegistroRequest) (int64, error) {
	if err := validateRegistro(req); err != nil {
		return 0, err
	}
	return s.create(ctx, req)
}

func (s *service) create(ctx context.Context, req *model.RegistroRequest) (int64, error) {
	hash, err := s.hasher.Hash(req.Contrasena)
	if err != nil {
		return 0, apperror.Internal("Error interno del servidor", err)
	}

	u := &model.Usuario{
		Nombre:     req.Nombre,
		Correo:     req.Correo,
		Contrasena: hash,
		Rol:        req.Rol,
	}
	if req.Celular != "" {
		u.Celular = &req.Celular
	}

	id, err := s.usuarios.Create(ctx, u)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, apperror.Conflict("El correo ya está registrado.")
		}
		return 0, apperror.Internal("Error interno del servidor", err)
	}

	s.logger.Info().Int64("usuario_id", id).Str("rol", req.Rol).Msg("usuario registrado")
	return id, nil
}

func (s *service) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	usuario, err := s.usuarios.GetByCorreo(ctx, req.Correo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.Unauthorized("Usuario no encontrado")
		}
		return nil, apperror.Internal("Error interno del servidor", err)
	}

	if err := s.hasher.Compare(usuario.Contrasena, req.Contrasena); err != nil {
		return nil, apperror.Unauthorized("Contraseña incorrecta")
	}

	token, err := s.tokens.Generate(usuario.ID, usuario.Nombre, usuario.Rol)
	if err != nil {
		return nil, apperror.Internal("Error interno del servidor", err)
	}

	s.logger.Info().Int64("usuario_id", usuario.ID).Msg("inicio de sesión")
	return &model.LoginResponse{
		Message: "Inicio de sesión exitoso",
		Token:   token,
		Usuario: model.UsuarioPerfil{
			ID:     usuario.ID,
			Nombre: usuario.Nombre,
			Correo: usuario.Correo,
			Rol:    usuario.Rol,
		},
	}, nil
}

func (s *service) ListVeterinarios(ctx context.Context) ([]model.UsuarioResumen, error) {
	vets, err := s.usuarios.ListVeterinarios(ctx)
	if err != nil {
		return nil, apperror.Internal("Error al obtener veterinarios", err)
	}
	return vets, nil
}

// ListVeterinariosCita includes the phone the agenda shows next to each
// veterinarian, defaulting to a placeholder when unset.
func (s *service) ListVeterinariosCita(ctx context.Context) ([]model.UsuarioResumen, error) {
	vets, err := s.usuarios.ListVeterinariosCita(ctx)
	if err != nil {
		return nil, apperror.Internal("Error al obtener los veterinarios", err)
	}
	return vets, nil
}

// celular is the only optional field on the registration form.
func validateRegistro(req *model.RegistroRequest) error {
	if req.Nombre == "" || req.Correo == "" || req.Contrasena == "" || req.Rol == "" {
		return apperror.Validation("Todos los campos son obligatorios.")
	}
	return nil
}
