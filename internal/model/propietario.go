package model

// Propietario is a pet owner.
type Propietario struct {
	ID        int64  `db:"id" json:"id"`
	Nombre    string `db:"nombre" json:"nombre"`
	Direccion string `db:"direccion" json:"direccion"`
	Ciudad    string `db:"ciudad" json:"ciudad"`
	Provincia string `db:"provincia" json:"provincia"`
	Cedula    string `db:"cedula" json:"cedula"`
	Celular   string `db:"celular" json:"celular"`
}

// PropietarioResumen is the projection used by list and picker endpoints.
type PropietarioResumen struct {
	ID      int64   `db:"id" json:"id"`
	Nombre  string  `db:"nombre" json:"nombre"`
	Celular *string `db:"celular" json:"celular,omitempty"`
}

type PropietarioRequest struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Ciudad    string `json:"ciudad"`
	Provincia string `json:"provincia"`
	Cedula    string `json:"cedula"`
	Celular   string `json:"celular"`
}
