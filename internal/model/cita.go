package model

// Cita is a veterinary appointment linking a pet, its owner and the
// attending veterinarian.
type Cita struct {
	ID            int64     `db:"id" json:"id"`
	FechaHora     FechaHora `db:"fecha_hora" json:"fecha_hora"`
	Motivo        string    `db:"motivo" json:"motivo"`
	PropietarioID int64     `db:"propietario_id" json:"propietario_id"`
	VeterinarioID int64     `db:"veterinario_id" json:"veterinario_id"`
	MascotaID     int64     `db:"mascota_id" json:"mascota_id"`
}

// CitaVista is the agenda view: every name resolved via INNER JOIN, ordered
// by fecha_hora ascending.
type CitaVista struct {
	ID                 int64     `db:"id" json:"id"`
	FechaHora          FechaHora `db:"fecha_hora" json:"fecha_hora"`
	Motivo             string    `db:"motivo" json:"motivo"`
	Mascota            string    `db:"mascota" json:"mascota"`
	Propietario        string    `db:"propietario" json:"propietario"`
	PropietarioCelular *string   `db:"propietario_celular" json:"propietario_celular"`
	Veterinario        string    `db:"veterinario" json:"veterinario"`
}

// CitaDetalle is the single-appointment view with ids alongside names.
type CitaDetalle struct {
	ID                 int64     `db:"id" json:"id"`
	FechaHora          FechaHora `db:"fecha_hora" json:"fecha_hora"`
	Motivo             string    `db:"motivo" json:"motivo"`
	MascotaID          int64     `db:"mascota_id" json:"mascota_id"`
	Mascota            string    `db:"mascota" json:"mascota"`
	PropietarioID      int64     `db:"propietario_id" json:"propietario_id"`
	Propietario        string    `db:"propietario" json:"propietario"`
	PropietarioCelular *string   `db:"propietario_celular" json:"propietario_celular"`
	VeterinarioID      int64     `db:"veterinario_id" json:"veterinario_id"`
	Veterinario        string    `db:"veterinario" json:"veterinario"`
	VeterinarioCelular *string   `db:"veterinario_celular" json:"veterinario_celular"`
}

type CitaRequest struct {
	FechaHora     FechaHora `json:"fecha_hora"`
	Motivo        string    `json:"motivo"`
	PropietarioID int64     `json:"propietario_id"`
	VeterinarioID int64     `json:"veterinario_id"`
	MascotaID     int64     `json:"mascota_id"`
}

// CitaUpdateRequest: only the schedule, reason and veterinarian are
// editable; the pet/owner linkage is immutable after creation.
type CitaUpdateRequest struct {
	FechaHora     FechaHora `json:"fecha_hora"`
	Motivo        string    `json:"motivo"`
	VeterinarioID int64     `json:"veterinario_id"`
}
