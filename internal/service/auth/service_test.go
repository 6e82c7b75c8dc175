package auth

import (
	"context"
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/repository"
	"github.com/jfcevallos/vetclinica-api/pkg/apperror"
	pkgauth "github.com/jfcevallos/vetclinica-api/pkg/auth"
	"github.com/jfcevallos/vetclinica-api/pkg/security"
)

type fakeUsuarioRepo struct {
	byCorreo map[string]*model.Usuario
	nextID   int64
	created  []*model.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{byCorreo: map[string]*model.Usuario{}, nextID: 1}
}

func (f *fakeUsuarioRepo) Create(_ context.Context, u *model.Usuario) (int64, error) {
	if _, ok := f.byCorreo[u.Correo]; ok {
		return 0, repository.ErrDuplicate
	}
	u.ID = f.nextID
	f.nextID++
	f.byCorreo[u.Correo] = u
	f.created = append(f.created, u)
	return u.ID, nil
}

func (f *fakeUsuarioRepo) Get(_ context.Context, id int64) (*model.Usuario, error) {
	for _, u := range f.byCorreo {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUsuarioRepo) GetByCorreo(_ context.Context, correo string) (*model.Usuario, error) {
	u, ok := f.byCorreo[correo]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeUsuarioRepo) ExistsByCorreo(_ context.Context, correo string) (bool, error) {
	_, ok := f.byCorreo[correo]
	return ok, nil
}

func (f *fakeUsuarioRepo) ListVeterinarios(_ context.Context) ([]model.UsuarioResumen, error) {
	return nil, nil
}

func (f *fakeUsuarioRepo) ListVeterinariosCita(_ context.Context) ([]model.UsuarioResumen, error) {
	return nil, nil
}

type stubTokens struct{}

func (stubTokens) Generate(usuarioID int64, nombre, rol string) (string, error) {
	return "token-for-" + nombre, nil
}

func (stubTokens) Verify(string) (*pkgauth.Claims, error) {
	return nil, pkgauth.ErrTokenInvalid
}

func newTestService(repo repository.UsuarioRepository) Service {
	return NewService(repo, security.NewBcryptHasher(4), stubTokens{}, zerolog.Nop())
}

func registroReq() *model.RegistroRequest {
	return &model.RegistroRequest{
		Nombre:     "Dra. Pérez",
		Correo:     "perez@vetclinica.test",
		Contrasena: "secreta123",
		Celular:    "0991234567",
		Rol:        model.RolVeterinario,
	}
}

func TestRegister(t *testing.T) {
	repo := newFakeUsuarioRepo()
	svc := newTestService(repo)

	id, err := svc.Register(context.Background(), registroReq())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	stored := repo.created[0]
	assert.NotEqual(t, "secreta123", stored.Contrasena, "password must be hashed")
	require.NotNil(t, stored.Celular)
	assert.Equal(t, "0991234567", *stored.Celular)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newTestService(newFakeUsuarioRepo())

	req := registroReq()
	req.Rol = ""

	_, err := svc.Register(context.Background(), req)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestRegisterDuplicateCorreo(t *testing.T) {
	repo := newFakeUsuarioRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), registroReq())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registroReq())
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

// The admin variant has no pre-check, so the duplicate surfaces from the
// unique index instead.
func TestRegisterAdminDuplicateCorreo(t *testing.T) {
	repo := newFakeUsuarioRepo()
	svc := newTestService(repo)

	_, err := svc.RegisterAdmin(context.Background(), registroReq())
	require.NoError(t, err)

	_, err = svc.RegisterAdmin(context.Background(), registroReq())
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestLogin(t *testing.T) {
	repo := newFakeUsuarioRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), registroReq())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Correo:     "perez@vetclinica.test",
		Contrasena: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Inicio de sesión exitoso", resp.Message)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Dra. Pérez", resp.Usuario.Nombre)
	assert.Equal(t, model.RolVeterinario, resp.Usuario.Rol)
}

func TestLoginUnknownCorreo(t *testing.T) {
	svc := newTestService(newFakeUsuarioRepo())

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Correo:     "nadie@vetclinica.test",
		Contrasena: "x",
	})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindUnauthorized, appErr.Kind)
	assert.Equal(t, "Usuario no encontrado", appErr.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUsuarioRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), registroReq())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Correo:     "perez@vetclinica.test",
		Contrasena: "equivocada",
	})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindUnauthorized, appErr.Kind)
	assert.Equal(t, "Contraseña incorrecta", appErr.Message)
}
