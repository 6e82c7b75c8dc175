package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/repository"
)

type clinicaRepository struct {
	db *sqlx.DB
}

func NewClinicaRepository(db *sqlx.DB) repository.ClinicaRepository {
	return &clinicaRepository{db: db}
}

// Get returns the first clinic record; there is only ever one row.
func (r *clinicaRepository) Get(ctx context.Context) (*model.InformacionVeterinaria, error) {
	var info model.InformacionVeterinaria
	err := r.db.GetContext(ctx, &info, `SELECT * FROM informacion_veterinaria LIMIT 1`)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
