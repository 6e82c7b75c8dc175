package model

// Rol values stored in usuarios.rol.
const (
	RolVeterinario   = "veterinario"
	RolAdministrador = "administrador"
)

// Usuario is a staff account. Contrasena always holds the bcrypt digest,
// never a plaintext; it is excluded from JSON.
type Usuario struct {
	ID         int64   `db:"id" json:"id"`
	Nombre     string  `db:"nombre" json:"nombre"`
	Correo     string  `db:"correo" json:"correo"`
	Contrasena string  `db:"contrasena" json:"-"`
	Celular    *string `db:"celular" json:"celular,omitempty"`
	Rol        string  `db:"rol" json:"rol"`
}

// UsuarioResumen is the id/nombre projection used by the veterinarian
// pickers on the frontend.
type UsuarioResumen struct {
	ID      int64   `db:"id" json:"id"`
	Nombre  string  `db:"nombre" json:"nombre"`
	Celular *string `db:"celular" json:"celular,omitempty"`
}

type RegistroRequest struct {
	Nombre     string `json:"nombre"`
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
	Celular    string `json:"celular"`
	Rol        string `json:"rol"`
}

type LoginRequest struct {
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

// LoginResponse mirrors the shape the frontend expects from /api/login.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	Usuario UsuarioPerfil `json:"usuario"`
}

type UsuarioPerfil struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
	Rol    string `json:"rol"`
}
