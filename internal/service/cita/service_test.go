package cita

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/pkg/apperror"
)

type fakeCitaRepo struct {
	createID       int64
	updateAffected int64
	deleteAffected int64
}

func (f *fakeCitaRepo) Create(context.Context, *model.CitaRequest) (int64, error) {
	return f.createID, nil
}

func (f *fakeCitaRepo) List(context.Context) ([]model.Cita, error) { return nil, nil }

func (f *fakeCitaRepo) ListVista(context.Context) ([]model.CitaVista, error) { return nil, nil }

func (f *fakeCitaRepo) GetDetalle(context.Context, int64) (*model.CitaDetalle, error) {
	return nil, sql.ErrNoRows
}

func (f *fakeCitaRepo) Update(context.Context, int64, *model.CitaUpdateRequest) (int64, error) {
	return f.updateAffected, nil
}

func (f *fakeCitaRepo) Delete(context.Context, int64) (int64, error) {
	return f.deleteAffected, nil
}

type fakeUsuarioRepo struct{}

func (fakeUsuarioRepo) Create(context.Context, *model.Usuario) (int64, error) { return 0, nil }

func (fakeUsuarioRepo) Get(context.Context, int64) (*model.Usuario, error) {
	return &model.Usuario{ID: 2, Nombre: "Dra. Pérez", Correo: "perez@vetclinica.test"}, nil
}

func (fakeUsuarioRepo) GetByCorreo(context.Context, string) (*model.Usuario, error) {
	return nil, sql.ErrNoRows
}

func (fakeUsuarioRepo) ExistsByCorreo(context.Context, string) (bool, error) { return false, nil }

func (fakeUsuarioRepo) ListVeterinarios(context.Context) ([]model.UsuarioResumen, error) {
	return nil, nil
}

func (fakeUsuarioRepo) ListVeterinariosCita(context.Context) ([]model.UsuarioResumen, error) {
	return nil, nil
}

type fakeMascotaRepo struct{}

func (fakeMascotaRepo) Create(context.Context, *model.MascotaRequest) (int64, error) { return 0, nil }

func (fakeMascotaRepo) Get(context.Context, int64) (*model.MascotaDetalle, error) {
	return &model.MascotaDetalle{MascotaID: 5, MascotaNombre: "Firulais"}, nil
}

func (fakeMascotaRepo) Exists(context.Context, int64) (bool, error) { return true, nil }

func (fakeMascotaRepo) List(context.Context) ([]model.MascotaConPropietario, error) {
	return nil, nil
}

func (fakeMascotaRepo) ListResumen(context.Context) ([]model.MascotaResumen, error) {
	return nil, nil
}

func (fakeMascotaRepo) ListResumenConPropietario(context.Context) ([]model.MascotaResumen, error) {
	return nil, nil
}

func (fakeMascotaRepo) Update(context.Context, int64, *model.MascotaUpdateRequest) (int64, error) {
	return 0, nil
}

func (fakeMascotaRepo) Delete(context.Context, int64) (int64, error) { return 0, nil }

type fakeBroker struct {
	published []string
	err       error
}

func (f *fakeBroker) Publish(_ context.Context, channel string, _ interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, channel)
	return nil
}

func (f *fakeBroker) Close() error { return nil }

type fakeMailer struct {
	sent int
	err  error
}

func (f *fakeMailer) SendCitaNotification(to, veterinario, mascota, fechaHora, motivo string) error {
	if f.err != nil {
		return f.err
	}
	f.sent++
	return nil
}

func citaReq() *model.CitaRequest {
	return &model.CitaRequest{
		FechaHora:     model.NewFechaHora(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)),
		Motivo:        "Vacunación",
		PropietarioID: 1,
		VeterinarioID: 2,
		MascotaID:     5,
	}
}

func TestCreatePublishesAndNotifies(t *testing.T) {
	broker := &fakeBroker{}
	mailer := &fakeMailer{}
	svc := NewService(&fakeCitaRepo{createID: 9}, fakeUsuarioRepo{}, fakeMascotaRepo{}, broker, mailer, zerolog.Nop())

	id, err := svc.Create(context.Background(), citaReq())
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.Equal(t, []string{eventsChannel}, broker.published)
	assert.Equal(t, 1, mailer.sent)
}

func TestCreateMissingFields(t *testing.T) {
	svc := NewService(&fakeCitaRepo{}, fakeUsuarioRepo{}, fakeMascotaRepo{}, nil, &fakeMailer{}, zerolog.Nop())

	req := citaReq()
	req.Motivo = ""

	_, err := svc.Create(context.Background(), req)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

// Side effects are best-effort: a dead broker or mail server never fails
// the request.
func TestCreateSurvivesSideEffectFailures(t *testing.T) {
	broker := &fakeBroker{err: errors.New("redis down")}
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := NewService(&fakeCitaRepo{createID: 9}, fakeUsuarioRepo{}, fakeMascotaRepo{}, broker, mailer, zerolog.Nop())

	id, err := svc.Create(context.Background(), citaReq())
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}

func TestCreateWithoutBroker(t *testing.T) {
	svc := NewService(&fakeCitaRepo{createID: 9}, fakeUsuarioRepo{}, fakeMascotaRepo{}, nil, &fakeMailer{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), citaReq())
	assert.NoError(t, err)
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewService(&fakeCitaRepo{updateAffected: 0}, fakeUsuarioRepo{}, fakeMascotaRepo{}, nil, &fakeMailer{}, zerolog.Nop())

	err := svc.Update(context.Background(), 99, &model.CitaUpdateRequest{
		FechaHora:     model.NewFechaHora(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)),
		Motivo:        "Control",
		VeterinarioID: 2,
	})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

// Deleting a nonexistent cita still succeeds.
func TestDeleteMissingRowSucceeds(t *testing.T) {
	broker := &fakeBroker{}
	svc := NewService(&fakeCitaRepo{deleteAffected: 0}, fakeUsuarioRepo{}, fakeMascotaRepo{}, broker, &fakeMailer{}, zerolog.Nop())

	err := svc.Delete(context.Background(), 123)
	require.NoError(t, err)
	assert.Equal(t, []string{eventsChannel}, broker.published)
}

func TestGetDetalleNotFound(t *testing.T) {
	svc := NewService(&fakeCitaRepo{}, fakeUsuarioRepo{}, fakeMascotaRepo{}, nil, &fakeMailer{}, zerolog.Nop())

	_, err := svc.GetDetalle(context.Background(), 1)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
