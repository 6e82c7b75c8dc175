package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/repository"
)

type citaRepository struct {
	db *sqlx.DB
}

func NewCitaRepository(db *sqlx.DB) repository.CitaRepository {
	return &citaRepository{db: db}
}

func (r *citaRepository) Create(ctx context.Context, req *model.CitaRequest) (int64, error) {
	query := `
		INSERT INTO citas_veterinarias (fecha_hora, motivo, propietario_id, veterinario_id, mascota_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		req.FechaHora, req.Motivo, req.PropietarioID, req.VeterinarioID, req.MascotaID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create cita: %w", err)
	}
	return id, nil
}

func (r *citaRepository) List(ctx context.Context) ([]model.Cita, error) {
	citas := []model.Cita{}
	if err := r.db.SelectContext(ctx, &citas, `SELECT * FROM citas_veterinarias`); err != nil {
		return nil, fmt.Errorf("failed to list citas: %w", err)
	}
	return citas, nil
}

// ListVista is the agenda feed. INNER JOINs on all three parties, so a cita
// pointing at a deleted pet or owner drops out of the agenda silently.
func (r *citaRepository) ListVista(ctx context.Context) ([]model.CitaVista, error) {
	query := `
		SELECT c.id, c.fecha_hora, c.motivo,
			m.nombre AS mascota,
			p.nombre AS propietario,
			p.celular AS propietario_celular,
			v.nombre AS veterinario
		FROM citas_veterinarias c
		JOIN mascotas m ON c.mascota_id = m.id
		JOIN propietarios p ON c.propietario_id = p.id
		JOIN usuarios v ON c.veterinario_id = v.id
		ORDER BY c.fecha_hora ASC
	`
	citas := []model.CitaVista{}
	if err := r.db.SelectContext(ctx, &citas, query); err != nil {
		return nil, fmt.Errorf("failed to list citas: %w", err)
	}
	return citas, nil
}

func (r *citaRepository) GetDetalle(ctx context.Context, id int64) (*model.CitaDetalle, error) {
	query := `
		SELECT c.id, c.fecha_hora, c.motivo,
			m.id AS mascota_id, m.nombre AS mascota,
			p.id AS propietario_id, p.nombre AS propietario, p.celular AS propietario_celular,
			v.id AS veterinario_id, v.nombre AS veterinario, v.celular AS veterinario_celular
		FROM citas_veterinarias c
		JOIN mascotas m ON c.mascota_id = m.id
		JOIN propietarios p ON c.propietario_id = p.id
		JOIN usuarios v ON c.veterinario_id = v.id
		WHERE c.id = $1
	`
	var det model.CitaDetalle
	if err := r.db.GetContext(ctx, &det, query, id); err != nil {
		return nil, err
	}
	return &det, nil
}

func (r *citaRepository) Update(ctx context.Context, id int64, req *model.CitaUpdateRequest) (int64, error) {
	query := `
		UPDATE citas_veterinarias
		SET fecha_hora = $1, motivo = $2, veterinario_id = $3
		WHERE id = $4
	`
	res, err := r.db.ExecContext(ctx, query, req.FechaHora, req.Motivo, req.VeterinarioID, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update cita: %w", err)
	}
	return res.RowsAffected()
}

func (r *citaRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM citas_veterinarias WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete cita: %w", err)
	}
	return res.RowsAffected()
}
