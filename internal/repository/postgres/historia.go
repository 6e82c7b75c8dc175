package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/repository"
)

type historiaRepository struct {
	db *sqlx.DB
}

func NewHistoriaRepository(db *sqlx.DB) repository.HistoriaRepository {
	return &historiaRepository{db: db}
}

func (r *historiaRepository) Create(ctx context.Context, req *model.HistoriaRequest) (int64, error) {
	query := `
		INSERT INTO historias_clinicas (
			mascota_id, fecha, vacunacion_tipo, vacunacion_fecha,
			desparasitacion_producto, desparasitacion_fecha, estado_reproductivo,
			alimentacion, habitat, alergias, cirugias, antecedentes,
			enfermedades_anteriores, observaciones, veterinario_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		req.MascotaID, req.Fecha, req.VacunacionTipo, req.VacunacionFecha,
		req.DesparasitacionProducto, req.DesparasitacionFecha, req.EstadoReproductivo,
		req.Alimentacion, req.Habitat, req.Alergias, req.Cirugias, req.Antecedentes,
		req.EnfermedadesAnteriores, req.Observaciones, req.VeterinarioID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create historia clinica: %w", err)
	}
	return id, nil
}

func (r *historiaRepository) List(ctx context.Context) ([]model.HistoriaClinica, error) {
	historias := []model.HistoriaClinica{}
	if err := r.db.SelectContext(ctx, &historias, `SELECT * FROM historias_clinicas`); err != nil {
		return nil, fmt.Errorf("failed to list historias clinicas: %w", err)
	}
	return historias, nil
}

func (r *historiaRepository) GetPrimeraPorMascota(ctx context.Context, mascotaID int64) (*model.HistoriaClinica, error) {
	var h model.HistoriaClinica
	err := r.db.GetContext(ctx, &h, `SELECT * FROM historias_clinicas WHERE mascota_id = $1 LIMIT 1`, mascotaID)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ListPorMascota joins the veterinarian name. INNER JOIN: entries whose
// author no longer exists are excluded.
func (r *historiaRepository) ListPorMascota(ctx context.Context, mascotaID int64) ([]model.HistoriaConVeterinario, error) {
	query := `
		SELECT hc.id AS historia_id, hc.*, v.nombre AS veterinario
		FROM historias_clinicas hc
		JOIN usuarios v ON hc.veterinario_id = v.id
		WHERE hc.mascota_id = $1
	`
	historias := []model.HistoriaConVeterinario{}
	if err := r.db.SelectContext(ctx, &historias, query, mascotaID); err != nil {
		return nil, fmt.Errorf("failed to list historias de la mascota: %w", err)
	}
	return historias, nil
}

func (r *historiaRepository) GetDetalle(ctx context.Context, id int64) (*model.HistoriaConVeterinario, error) {
	query := `
		SELECT hc.id AS historia_id, hc.*, v.nombre AS veterinario
		FROM historias_clinicas hc
		JOIN usuarios v ON hc.veterinario_id = v.id
		WHERE hc.id = $1
	`
	var h model.HistoriaConVeterinario
	if err := r.db.GetContext(ctx, &h, query, id); err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *historiaRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM historias_clinicas WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check historia clinica: %w", err)
	}
	return exists, nil
}

// Update is a full replace of every mutable column; mascota_id stays.
func (r *historiaRepository) Update(ctx context.Context, id int64, req *model.HistoriaRequest) (int64, error) {
	query := `
		UPDATE historias_clinicas SET
			fecha = $1,
			vacunacion_tipo = $2,
			vacunacion_fecha = $3,
			desparasitacion_producto = $4,
			desparasitacion_fecha = $5,
			estado_reproductivo = $6,
			alimentacion = $7,
			habitat = $8,
			alergias = $9,
			cirugias = $10,
			antecedentes = $11,
			enfermedades_anteriores = $12,
			observaciones = $13,
			veterinario_id = $14
		WHERE id = $15
	`
	res, err := r.db.ExecContext(ctx, query,
		req.Fecha, req.VacunacionTipo, req.VacunacionFecha,
		req.DesparasitacionProducto, req.DesparasitacionFecha, req.EstadoReproductivo,
		req.Alimentacion, req.Habitat, req.Alergias, req.Cirugias, req.Antecedentes,
		req.EnfermedadesAnteriores, req.Observaciones, req.VeterinarioID, id,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update historia clinica: %w", err)
	}
	return res.RowsAffected()
}

func (r *historiaRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM historias_clinicas WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete historia clinica: %w", err)
	}
	return res.RowsAffected()
}
