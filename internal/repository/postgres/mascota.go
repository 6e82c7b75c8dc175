package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/repository"
)

type mascotaRepository struct {
	db *sqlx.DB
}

func NewMascotaRepository(db *sqlx.DB) repository.MascotaRepository {
	return &mascotaRepository{db: db}
}

func (r *mascotaRepository) Create(ctx context.Context, req *model.MascotaRequest) (int64, error) {
	query := `
		INSERT INTO mascotas (nombre, especie, raza, sexo, color, fecha_nacimiento, edad, procedencia, chip, propietario_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		req.Nombre, req.Especie, req.Raza, req.Sexo, req.Color,
		req.FechaNacimiento, req.Edad, req.Procedencia, req.Chip, req.PropietarioID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create mascota: %w", err)
	}
	return id, nil
}

// Get is the by-id detail view. INNER JOIN on propietarios: pets without an
// owner do not appear here, which is long-standing behavior the frontend
// relies on.
func (r *mascotaRepository) Get(ctx context.Context, id int64) (*model.MascotaDetalle, error) {
	query := `
		SELECT
			m.id AS mascota_id,
			m.nombre AS mascota_nombre,
			m.especie,
			m.raza,
			m.sexo,
			m.color,
			m.fecha_nacimiento,
			m.edad,
			m.propietario_id,
			p.nombre AS propietario_nombre
		FROM mascotas m
		JOIN propietarios p ON m.propietario_id = p.id
		WHERE m.id = $1
	`
	var det model.MascotaDetalle
	if err := r.db.GetContext(ctx, &det, query, id); err != nil {
		return nil, err
	}
	return &det, nil
}

func (r *mascotaRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM mascotas WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check mascota: %w", err)
	}
	return exists, nil
}

// List keeps its LEFT JOIN so unassigned pets still show up with a null
// owner name.
func (r *mascotaRepository) List(ctx context.Context) ([]model.MascotaConPropietario, error) {
	query := `
		SELECT
			m.id,
			m.nombre,
			m.especie,
			m.raza,
			m.sexo,
			m.color,
			m.fecha_nacimiento,
			m.edad,
			m.procedencia,
			m.chip,
			p.nombre AS propietario_nombre
		FROM mascotas m
		LEFT JOIN propietarios p ON m.propietario_id = p.id
	`
	mascotas := []model.MascotaConPropietario{}
	if err := r.db.SelectContext(ctx, &mascotas, query); err != nil {
		return nil, fmt.Errorf("failed to list mascotas: %w", err)
	}
	return mascotas, nil
}

func (r *mascotaRepository) ListResumen(ctx context.Context) ([]model.MascotaResumen, error) {
	mascotas := []model.MascotaResumen{}
	if err := r.db.SelectContext(ctx, &mascotas, `SELECT id, nombre FROM mascotas`); err != nil {
		return nil, fmt.Errorf("failed to list mascotas: %w", err)
	}
	return mascotas, nil
}

func (r *mascotaRepository) ListResumenConPropietario(ctx context.Context) ([]model.MascotaResumen, error) {
	mascotas := []model.MascotaResumen{}
	if err := r.db.SelectContext(ctx, &mascotas, `SELECT id, nombre, propietario_id FROM mascotas`); err != nil {
		return nil, fmt.Errorf("failed to list mascotas: %w", err)
	}
	return mascotas, nil
}

// Update never touches nombre or chip; the edit form does not expose them.
func (r *mascotaRepository) Update(ctx context.Context, id int64, req *model.MascotaUpdateRequest) (int64, error) {
	query := `
		UPDATE mascotas SET
			especie = $1, raza = $2, sexo = $3, color = $4,
			fecha_nacimiento = $5, edad = $6, propietario_id = $7
		WHERE id = $8
	`
	res, err := r.db.ExecContext(ctx, query,
		req.Especie, req.Raza, req.Sexo, req.Color,
		req.FechaNacimiento, req.Edad, req.PropietarioID, id,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update mascota: %w", err)
	}
	return res.RowsAffected()
}

// Delete removes only the pet row. Histories and exams referencing it are
// left in place (no cascade) and disappear from the joined views.
func (r *mascotaRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mascotas WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete mascota: %w", err)
	}
	return res.RowsAffected()
}
