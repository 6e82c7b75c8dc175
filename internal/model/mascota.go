package model

// Mascota is a pet. PropietarioID is nullable: a pet can be registered
// before its owner is.
type Mascota struct {
	ID              int64   `db:"id" json:"id"`
	Nombre          string  `db:"nombre" json:"nombre"`
	Especie         string  `db:"especie" json:"especie"`
	Raza            string  `db:"raza" json:"raza"`
	Sexo            string  `db:"sexo" json:"sexo"`
	Color           *string `db:"color" json:"color,omitempty"`
	FechaNacimiento Fecha   `db:"fecha_nacimiento" json:"fecha_nacimiento"`
	Edad            int     `db:"edad" json:"edad"`
	Procedencia     string  `db:"procedencia" json:"procedencia"`
	Chip            *string `db:"chip" json:"chip,omitempty"`
	PropietarioID   *int64  `db:"propietario_id" json:"propietario_id,omitempty"`
}

// MascotaConPropietario is the list view row: LEFT JOIN, so the owner name
// may be null for unassigned pets.
type MascotaConPropietario struct {
	ID                int64   `db:"id" json:"id"`
	Nombre            string  `db:"nombre" json:"nombre"`
	Especie           string  `db:"especie" json:"especie"`
	Raza              string  `db:"raza" json:"raza"`
	Sexo              string  `db:"sexo" json:"sexo"`
	Color             *string `db:"color" json:"color"`
	FechaNacimiento   Fecha   `db:"fecha_nacimiento" json:"fecha_nacimiento"`
	Edad              int     `db:"edad" json:"edad"`
	Procedencia       string  `db:"procedencia" json:"procedencia"`
	Chip              *string `db:"chip" json:"chip"`
	PropietarioNombre *string `db:"propietario_nombre" json:"propietario_nombre"`
}

// MascotaDetalle is the by-id view row: INNER JOIN with propietarios, so a
// pet without owner is absent from this view.
type MascotaDetalle struct {
	MascotaID         int64   `db:"mascota_id" json:"mascota_id"`
	MascotaNombre     string  `db:"mascota_nombre" json:"mascota_nombre"`
	Especie           string  `db:"especie" json:"especie"`
	Raza              string  `db:"raza" json:"raza"`
	Sexo              string  `db:"sexo" json:"sexo"`
	Color             *string `db:"color" json:"color"`
	FechaNacimiento   Fecha   `db:"fecha_nacimiento" json:"fecha_nacimiento"`
	Edad              int     `db:"edad" json:"edad"`
	PropietarioID     int64   `db:"propietario_id" json:"propietario_id"`
	PropietarioNombre string  `db:"propietario_nombre" json:"propietario_nombre"`
}

// MascotaResumen feeds the id/nombre pickers.
type MascotaResumen struct {
	ID            int64  `db:"id" json:"id"`
	Nombre        string `db:"nombre" json:"nombre"`
	PropietarioID *int64 `db:"propietario_id" json:"propietario_id,omitempty"`
}

type MascotaRequest struct {
	Nombre          string  `json:"nombre"`
	Especie         string  `json:"especie"`
	Raza            string  `json:"raza"`
	Sexo            string  `json:"sexo"`
	Color           *string `json:"color"`
	FechaNacimiento Fecha   `json:"fecha_nacimiento"`
	Edad            int     `json:"edad"`
	Procedencia     string  `json:"procedencia"`
	Chip            *string `json:"chip"`
	PropietarioID   *int64  `json:"propietario_id"`
}

// MascotaUpdateRequest deliberately omits nombre and chip: the edit
// endpoint never changes them.
type MascotaUpdateRequest struct {
	Especie         string  `json:"especie"`
	Raza            string  `json:"raza"`
	Sexo            string  `json:"sexo"`
	Color           *string `json:"color"`
	FechaNacimiento Fecha   `json:"fecha_nacimiento"`
	Edad            int     `json:"edad"`
	PropietarioID   *int64  `json:"propietario_id"`
}
