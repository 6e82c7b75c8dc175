package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/repository"
)

const pqUniqueViolation = "23505"

type usuarioRepository struct {
	db *sqlx.DB
}

func NewUsuarioRepository(db *sqlx.DB) repository.UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) Create(ctx context.Context, u *model.Usuario) (int64, error) {
	query := `
		INSERT INTO usuarios (nombre, correo, contrasena, celular, rol)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query, u.Nombre, u.Correo, u.Contrasena, u.Celular, u.Rol).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return 0, repository.ErrDuplicate
		}
		return 0, fmt.Errorf("failed to create usuario: %w", err)
	}
	return id, nil
}

func (r *usuarioRepository) Get(ctx context.Context, id int64) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.GetContext(ctx, &u, `SELECT * FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepository) GetByCorreo(ctx context.Context, correo string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.GetContext(ctx, &u, `SELECT * FROM usuarios WHERE correo = $1`, correo)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepository) ExistsByCorreo(ctx context.Context, correo string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM usuarios WHERE correo = $1)`, correo)
	if err != nil {
		return false, fmt.Errorf("failed to check correo: %w", err)
	}
	return exists, nil
}

func (r *usuarioRepository) ListVeterinarios(ctx context.Context) ([]model.UsuarioResumen, error) {
	query := `SELECT id, nombre FROM usuarios WHERE rol = 'veterinario'`
	vets := []model.UsuarioResumen{}
	if err := r.db.SelectContext(ctx, &vets, query); err != nil {
		return nil, fmt.Errorf("failed to list veterinarios: %w", err)
	}
	return vets, nil
}

func (r *usuarioRepository) ListVeterinariosCita(ctx context.Context) ([]model.UsuarioResumen, error) {
	query := `
		SELECT id, nombre, COALESCE(celular, 'Sin teléfono') AS celular
		FROM usuarios WHERE rol = 'veterinario'
	`
	vets := []model.UsuarioResumen{}
	if err := r.db.SelectContext(ctx, &vets, query); err != nil {
		return nil, fmt.Errorf("failed to list veterinarios: %w", err)
	}
	return vets, nil
}
