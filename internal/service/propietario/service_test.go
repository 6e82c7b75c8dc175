package propietario

import (
	"context"
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/pkg/apperror"
)

type fakeRepo struct {
	createID       int64
	updateAffected int64
	updateCalls    int
}

func (f *fakeRepo) Create(context.Context, *model.PropietarioRequest) (int64, error) {
	return f.createID, nil
}

func (f *fakeRepo) Get(context.Context, int64) (*model.Propietario, error) {
	return nil, sql.ErrNoRows
}

func (f *fakeRepo) GetByMascota(context.Context, int64) (*model.Propietario, error) {
	return nil, sql.ErrNoRows
}

func (f *fakeRepo) List(context.Context) ([]model.PropietarioResumen, error) { return nil, nil }

func (f *fakeRepo) ListConCelular(context.Context) ([]model.PropietarioResumen, error) {
	return nil, nil
}

func (f *fakeRepo) Update(context.Context, int64, *model.PropietarioRequest) (int64, error) {
	f.updateCalls++
	return f.updateAffected, nil
}

func propietarioReq() *model.PropietarioRequest {
	return &model.PropietarioRequest{
		Nombre:    "Juan Andrade",
		Direccion: "Av. Quito y Sucre",
		Ciudad:    "Esmeraldas",
		Provincia: "Esmeraldas",
		Cedula:    "0801234567",
		Celular:   "0991234567",
	}
}

func TestCreateMissingFields(t *testing.T) {
	svc := NewService(&fakeRepo{}, zerolog.Nop())

	req := propietarioReq()
	req.Cedula = ""

	_, err := svc.Create(context.Background(), req)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestUpdate(t *testing.T) {
	repo := &fakeRepo{updateAffected: 1}
	svc := NewService(repo, zerolog.Nop())

	err := svc.Update(context.Background(), 7, propietarioReq())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestUpdateMissingRow(t *testing.T) {
	svc := NewService(&fakeRepo{updateAffected: 0}, zerolog.Nop())

	err := svc.Update(context.Background(), 99, propietarioReq())
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestGetNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, zerolog.Nop())

	_, err := svc.Get(context.Background(), 1)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
