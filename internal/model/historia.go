package model

// HistoriaClinica is one clinical-history entry for a pet, authored by a
// veterinarian. Only the reproductive/diet/habitat block is mandatory.
type HistoriaClinica struct {
	ID                      int64   `db:"id" json:"id"`
	MascotaID               int64   `db:"mascota_id" json:"mascota_id"`
	Fecha                   Fecha   `db:"fecha" json:"fecha"`
	VacunacionTipo          *string `db:"vacunacion_tipo" json:"vacunacion_tipo"`
	VacunacionFecha         *Fecha  `db:"vacunacion_fecha" json:"vacunacion_fecha"`
	DesparasitacionProducto *string `db:"desparasitacion_producto" json:"desparasitacion_producto"`
	DesparasitacionFecha    *Fecha  `db:"desparasitacion_fecha" json:"desparasitacion_fecha"`
	EstadoReproductivo      string  `db:"estado_reproductivo" json:"estado_reproductivo"`
	Alimentacion            string  `db:"alimentacion" json:"alimentacion"`
	Habitat                 string  `db:"habitat" json:"habitat"`
	Alergias                *string `db:"alergias" json:"alergias"`
	Cirugias                *string `db:"cirugias" json:"cirugias"`
	Antecedentes            *string `db:"antecedentes" json:"antecedentes"`
	EnfermedadesAnteriores  *string `db:"enfermedades_anteriores" json:"EnfermedadesAnteriores"`
	Observaciones           *string `db:"observaciones" json:"observaciones"`
	VeterinarioID           int64   `db:"veterinario_id" json:"veterinario_id"`
}

// HistoriaConVeterinario joins the authoring veterinarian's name onto the
// history row (INNER JOIN usuarios).
type HistoriaConVeterinario struct {
	HistoriaID int64 `db:"historia_id" json:"historia_id"`
	HistoriaClinica
	Veterinario string `db:"veterinario" json:"veterinario"`
}

type HistoriaRequest struct {
	MascotaID               int64   `json:"mascota_id"`
	Fecha                   Fecha   `json:"fecha"`
	VacunacionTipo          *string `json:"vacunacion_tipo"`
	VacunacionFecha         *Fecha  `json:"vacunacion_fecha"`
	DesparasitacionProducto *string `json:"desparasitacion_producto"`
	DesparasitacionFecha    *Fecha  `json:"desparasitacion_fecha"`
	EstadoReproductivo      string  `json:"estado_reproductivo"`
	Alimentacion            string  `json:"alimentacion"`
	Habitat                 string  `json:"habitat"`
	Alergias                *string `json:"alergias"`
	Cirugias                *string `json:"cirugias"`
	Antecedentes            *string `json:"antecedentes"`
	EnfermedadesAnteriores  *string `json:"EnfermedadesAnteriores"`
	Observaciones           *string `json:"observaciones"`
	VeterinarioID           int64   `json:"veterinario_id"`
}
