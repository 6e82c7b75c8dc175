package historia

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/pkg/apperror"
)

type fakeRepo struct {
	createID       int64
	createCalls    int
	porMascota     []model.HistoriaConVeterinario
	updateAffected int64
	exists         bool
	deleteCalls    int
}

func (f *fakeRepo) Create(context.Context, *model.HistoriaRequest) (int64, error) {
	f.createCalls++
	return f.createID, nil
}

func (f *fakeRepo) List(context.Context) ([]model.HistoriaClinica, error) { return nil, nil }

func (f *fakeRepo) GetPrimeraPorMascota(context.Context, int64) (*model.HistoriaClinica, error) {
	return nil, sql.ErrNoRows
}

func (f *fakeRepo) ListPorMascota(context.Context, int64) ([]model.HistoriaConVeterinario, error) {
	return f.porMascota, nil
}

func (f *fakeRepo) GetDetalle(context.Context, int64) (*model.HistoriaConVeterinario, error) {
	return nil, sql.ErrNoRows
}

func (f *fakeRepo) Exists(context.Context, int64) (bool, error) { return f.exists, nil }

func (f *fakeRepo) Update(context.Context, int64, *model.HistoriaRequest) (int64, error) {
	return f.updateAffected, nil
}

func (f *fakeRepo) Delete(context.Context, int64) (int64, error) {
	f.deleteCalls++
	return 1, nil
}

func historiaReq() *model.HistoriaRequest {
	return &model.HistoriaRequest{
		MascotaID:          5,
		Fecha:              model.NewFecha(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		EstadoReproductivo: "Entero",
		Alimentacion:       "Balanceado",
		Habitat:            "Casa",
		VeterinarioID:      2,
	}
}

func TestCreate(t *testing.T) {
	repo := &fakeRepo{createID: 4}
	svc := NewService(repo, zerolog.Nop())

	id, err := svc.Create(context.Background(), historiaReq())
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
}

// A create without the authoring veterinarian is rejected before the
// repository is touched, so no row is written.
func TestCreateMissingVeterinario(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, zerolog.Nop())

	req := historiaReq()
	req.VeterinarioID = 0

	_, err := svc.Create(context.Background(), req)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Zero(t, repo.createCalls)
}

func TestListPorMascotaEmpty(t *testing.T) {
	svc := NewService(&fakeRepo{}, zerolog.Nop())

	_, err := svc.ListPorMascota(context.Background(), 5)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestUpdateMissingRow(t *testing.T) {
	svc := NewService(&fakeRepo{updateAffected: 0}, zerolog.Nop())

	err := svc.Update(context.Background(), 9, historiaReq())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestDeleteMissingRow(t *testing.T) {
	repo := &fakeRepo{exists: false}
	svc := NewService(repo, zerolog.Nop())

	err := svc.Delete(context.Background(), 9)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.Zero(t, repo.deleteCalls)
}
