package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/repository"
)

type propietarioRepository struct {
	db *sqlx.DB
}

func NewPropietarioRepository(db *sqlx.DB) repository.PropietarioRepository {
	return &propietarioRepository{db: db}
}

func (r *propietarioRepository) Create(ctx context.Context, req *model.PropietarioRequest) (int64, error) {
	query := `
		INSERT INTO propietarios (nombre, direccion, ciudad, provincia, cedula, celular)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		req.Nombre, req.Direccion, req.Ciudad, req.Provincia, req.Cedula, req.Celular,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create propietario: %w", err)
	}
	return id, nil
}

func (r *propietarioRepository) Get(ctx context.Context, id int64) (*model.Propietario, error) {
	var p model.Propietario
	err := r.db.GetContext(ctx, &p, `SELECT * FROM propietarios WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByMascota resolves the owner through the pet: an unassigned pet has no
// row in this view.
func (r *propietarioRepository) GetByMascota(ctx context.Context, mascotaID int64) (*model.Propietario, error) {
	query := `
		SELECT p.id, p.nombre, p.direccion, p.ciudad, p.provincia, p.cedula, p.celular
		FROM propietarios p
		JOIN mascotas m ON p.id = m.propietario_id
		WHERE m.id = $1
	`
	var p model.Propietario
	err := r.db.GetContext(ctx, &p, query, mascotaID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propietarioRepository) List(ctx context.Context) ([]model.PropietarioResumen, error) {
	propietarios := []model.PropietarioResumen{}
	err := r.db.SelectContext(ctx, &propietarios, `SELECT id, nombre FROM propietarios`)
	if err != nil {
		return nil, fmt.Errorf("failed to list propietarios: %w", err)
	}
	return propietarios, nil
}

func (r *propietarioRepository) ListConCelular(ctx context.Context) ([]model.PropietarioResumen, error) {
	propietarios := []model.PropietarioResumen{}
	err := r.db.SelectContext(ctx, &propietarios, `SELECT id, nombre, celular FROM propietarios`)
	if err != nil {
		return nil, fmt.Errorf("failed to list propietarios: %w", err)
	}
	return propietarios, nil
}

func (r *propietarioRepository) Update(ctx context.Context, id int64, req *model.PropietarioRequest) (int64, error) {
	query := `
		UPDATE propietarios
		SET nombre = $1, direccion = $2, ciudad = $3, provincia = $4, cedula = $5, celular = $6
		WHERE id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		req.Nombre, req.Direccion, req.Ciudad, req.Provincia, req.Cedula, req.Celular, id,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update propietario: %w", err)
	}
	return res.RowsAffected()
}
