package model

// InformacionVeterinaria is the singleton record describing the clinic
// itself. Read-only through the API.
type InformacionVeterinaria struct {
	ID        int64   `db:"id" json:"id"`
	Nombre    string  `db:"nombre" json:"nombre"`
	Direccion *string `db:"direccion" json:"direccion"`
	Telefono  *string `db:"telefono" json:"telefono"`
	Correo    *string `db:"correo" json:"correo"`
	Horario   *string `db:"horario" json:"horario"`
}
