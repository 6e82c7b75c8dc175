package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/pkg/apperror"
)

type fakeService struct {
	registerID  int64
	registerErr error
	loginResp   *model.LoginResponse
	loginErr    error
}

func (f *fakeService) Register(context.Context, *model.RegistroRequest) (int64, error) {
	return f.registerID, f.registerErr
}

func (f *fakeService) RegisterAdmin(context.Context, *model.RegistroRequest) (int64, error) {
	return f.registerID, f.registerErr
}

func (f *fakeService) Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeService) ListVeterinarios(context.Context) ([]model.UsuarioResumen, error) {
	return []model.UsuarioResumen{{ID: 1, Nombre: "Dra. Pérez"}}, nil
}

func (f *fakeService) ListVeterinariosCita(context.Context) ([]model.UsuarioResumen, error) {
	return nil, nil
}

func setupRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	noop := func(c *gin.Context) { c.Next() }
	NewHandler(svc).RegisterRoutes(r.Group("/api"), noop)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegistrarUsuario(t *testing.T) {
	r := setupRouter(&fakeService{registerID: 3})

	w := postJSON(r, "/api/registrar-usuario",
		`{"nombre":"Dra. Pérez","correo":"perez@vetclinica.test","contrasena":"secreta123","rol":"veterinario"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Usuario registrado correctamente","usuarioId":3}`, w.Body.String())
}

func TestRegistrarUsuarioDuplicado(t *testing.T) {
	r := setupRouter(&fakeService{registerErr: apperror.Conflict("El correo ya está registrado.")})

	w := postJSON(r, "/api/registrar-usuario",
		`{"nombre":"Dra. Pérez","correo":"perez@vetclinica.test","contrasena":"secreta123","rol":"veterinario"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"El correo ya está registrado."}`, w.Body.String())
}

func TestLogin(t *testing.T) {
	r := setupRouter(&fakeService{loginResp: &model.LoginResponse{
		Message: "Inicio de sesión exitoso",
		Token:   "jwt-token",
		Usuario: model.UsuarioPerfil{ID: 3, Nombre: "Dra. Pérez", Correo: "perez@vetclinica.test", Rol: "veterinario"},
	}})

	w := postJSON(r, "/api/login", `{"correo":"perez@vetclinica.test","contrasena":"secreta123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"jwt-token"`)
	assert.Contains(t, w.Body.String(), `"message":"Inicio de sesión exitoso"`)
}

func TestLoginRejected(t *testing.T) {
	r := setupRouter(&fakeService{loginErr: apperror.Unauthorized("Contraseña incorrecta")})

	w := postJSON(r, "/api/login", `{"correo":"perez@vetclinica.test","contrasena":"mala"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Contraseña incorrecta"}`, w.Body.String())
}

func TestListVeterinarios(t *testing.T) {
	r := setupRouter(&fakeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/veterinarios", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nombre":"Dra. Pérez"`)
}
