package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/repository"
)

type examenRepository struct {
	db *sqlx.DB
}

func NewExamenRepository(db *sqlx.DB) repository.ExamenRepository {
	return &examenRepository{db: db}
}

func (r *examenRepository) Create(ctx context.Context, req *model.ExamenRequest) (int64, error) {
	query := `
		INSERT INTO examenes_clinicos (
			mascota_id, fecha, actitud, condicion_corporal, hidratacion, observaciones,
			mucosa_conjuntiva, mucosa_conjuntiva_observaciones,
			mucosa_oral, mucosa_oral_observaciones,
			mucosa_vulvar_prepu, mucosa_vulvar_prepu_observaciones,
			mucosa_rectal, mucosa_rectal_observaciones,
			mucosa_ojos, mucosa_ojos_observaciones,
			mucosa_oidos, mucosa_oidos_observaciones,
			mucosa_nodulos, mucosa_nodulos_observaciones,
			mucosa_piel_anexos, mucosa_piel_anexos_observaciones,
			locomocion_estado, locomocion_observaciones,
			musculo_estado, musculo_observaciones,
			nervioso_estado, nervioso_observaciones,
			cardiovascular_estado, cardiovascular_observaciones,
			respiratorio_estado, respiratorio_observaciones,
			digestivo_estado, digestivo_observaciones,
			genitourinario_estado, genitourinario_observaciones
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36
		)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		req.MascotaID, req.Fecha, req.Actitud, req.CondicionCorporal, req.Hidratacion, req.Observaciones,
		req.MucosaConjuntiva, req.MucosaConjuntivaObservaciones,
		req.MucosaOral, req.MucosaOralObservaciones,
		req.MucosaVulvarPrepu, req.MucosaVulvarPrepuObservaciones,
		req.MucosaRectal, req.MucosaRectalObservaciones,
		req.MucosaOjos, req.MucosaOjosObservaciones,
		req.MucosaOidos, req.MucosaOidosObservaciones,
		req.MucosaNodulos, req.MucosaNodulosObservaciones,
		req.MucosaPielAnexos, req.MucosaPielAnexosObservaciones,
		req.LocomocionEstado, req.LocomocionObservaciones,
		req.MusculoEstado, req.MusculoObservaciones,
		req.NerviosoEstado, req.NerviosoObservaciones,
		req.CardiovascularEstado, req.CardiovascularObservaciones,
		req.RespiratorioEstado, req.RespiratorioObservaciones,
		req.DigestivoEstado, req.DigestivoObservaciones,
		req.GenitourinarioEstado, req.GenitourinarioObservaciones,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create examen clinico: %w", err)
	}
	return id, nil
}

func (r *examenRepository) List(ctx context.Context) ([]model.ExamenClinico, error) {
	examenes := []model.ExamenClinico{}
	if err := r.db.SelectContext(ctx, &examenes, `SELECT * FROM examenes_clinicos`); err != nil {
		return nil, fmt.Errorf("failed to list examenes clinicos: %w", err)
	}
	return examenes, nil
}

func (r *examenRepository) GetPrimeroPorMascota(ctx context.Context, mascotaID int64) (*model.ExamenClinico, error) {
	var e model.ExamenClinico
	err := r.db.GetContext(ctx, &e, `SELECT * FROM examenes_clinicos WHERE mascota_id = $1 LIMIT 1`, mascotaID)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *examenRepository) ListPorMascota(ctx context.Context, mascotaID int64) ([]model.ExamenConMascota, error) {
	query := `
		SELECT ec.*, m.nombre AS mascota_nombre
		FROM examenes_clinicos ec
		JOIN mascotas m ON ec.mascota_id = m.id
		WHERE ec.mascota_id = $1
	`
	examenes := []model.ExamenConMascota{}
	if err := r.db.SelectContext(ctx, &examenes, query, mascotaID); err != nil {
		return nil, fmt.Errorf("failed to list examenes de la mascota: %w", err)
	}
	return examenes, nil
}

func (r *examenRepository) GetDetalle(ctx context.Context, id int64) (*model.ExamenClinico, error) {
	var e model.ExamenClinico
	if err := r.db.GetContext(ctx, &e, `SELECT * FROM examenes_clinicos WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *examenRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM examenes_clinicos WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check examen clinico: %w", err)
	}
	return exists, nil
}

func (r *examenRepository) Update(ctx context.Context, id int64, req *model.ExamenRequest) (int64, error) {
	query := `
		UPDATE examenes_clinicos
		SET fecha = $1, actitud = $2, condicion_corporal = $3, hidratacion = $4, observaciones = $5,
			mucosa_conjuntiva = $6, mucosa_conjuntiva_observaciones = $7,
			mucosa_oral = $8, mucosa_oral_observaciones = $9,
			mucosa_vulvar_prepu = $10, mucosa_vulvar_prepu_observaciones = $11,
			mucosa_rectal = $12, mucosa_rectal_observaciones = $13,
			mucosa_ojos = $14, mucosa_ojos_observaciones = $15,
			mucosa_oidos = $16, mucosa_oidos_observaciones = $17,
			mucosa_nodulos = $18, mucosa_nodulos_observaciones = $19,
			mucosa_piel_anexos = $20, mucosa_piel_anexos_observaciones = $21,
			locomocion_estado = $22, locomocion_observaciones = $23,
			musculo_estado = $24, musculo_observaciones = $25,
			nervioso_estado = $26, nervioso_observaciones = $27,
			cardiovascular_estado = $28, cardiovascular_observaciones = $29,
			respiratorio_estado = $30, respiratorio_observaciones = $31,
			digestivo_estado = $32, digestivo_observaciones = $33,
			genitourinario_estado = $34, genitourinario_observaciones = $35
		WHERE id = $36
	`
	res, err := r.db.ExecContext(ctx, query,
		req.Fecha, req.Actitud, req.CondicionCorporal, req.Hidratacion, req.Observaciones,
		req.MucosaConjuntiva, req.MucosaConjuntivaObservaciones,
		req.MucosaOral, req.MucosaOralObservaciones,
		req.MucosaVulvarPrepu, req.MucosaVulvarPrepuObservaciones,
		req.MucosaRectal, req.MucosaRectalObservaciones,
		req.MucosaOjos, req.MucosaOjosObservaciones,
		req.MucosaOidos, req.MucosaOidosObservaciones,
		req.MucosaNodulos, req.MucosaNodulosObservaciones,
		req.MucosaPielAnexos, req.MucosaPielAnexosObservaciones,
		req.LocomocionEstado, req.LocomocionObservaciones,
		req.MusculoEstado, req.MusculoObservaciones,
		req.NerviosoEstado, req.NerviosoObservaciones,
		req.CardiovascularEstado, req.CardiovascularObservaciones,
		req.RespiratorioEstado, req.RespiratorioObservaciones,
		req.DigestivoEstado, req.DigestivoObservaciones,
		req.GenitourinarioEstado, req.GenitourinarioObservaciones,
		id,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update examen clinico: %w", err)
	}
	return res.RowsAffected()
}

func (r *examenRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM examenes_clinicos WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete examen clinico: %w", err)
	}
	return res.RowsAffected()
}
