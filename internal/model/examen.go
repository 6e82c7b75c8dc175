package model

// ExamenClinico is a structured physical exam. Besides the header block
// (fecha, actitud, condicion_corporal, hidratacion) every field is a
// nullable state/observations pair per mucosa or body system.
type ExamenClinico struct {
	ID                             int64   `db:"id" json:"id"`
	MascotaID                      int64   `db:"mascota_id" json:"mascota_id"`
	Fecha                          Fecha   `db:"fecha" json:"fecha"`
	Actitud                        string  `db:"actitud" json:"actitud"`
	CondicionCorporal              string  `db:"condicion_corporal" json:"condicion_corporal"`
	Hidratacion                    string  `db:"hidratacion" json:"hidratacion"`
	Observaciones                  *string `db:"observaciones" json:"observaciones"`
	MucosaConjuntiva               *string `db:"mucosa_conjuntiva" json:"mucosa_conjuntiva"`
	MucosaConjuntivaObservaciones  *string `db:"mucosa_conjuntiva_observaciones" json:"mucosa_conjuntiva_observaciones"`
	MucosaOral                     *string `db:"mucosa_oral" json:"mucosa_oral"`
	MucosaOralObservaciones        *string `db:"mucosa_oral_observaciones" json:"mucosa_oral_observaciones"`
	MucosaVulvarPrepu              *string `db:"mucosa_vulvar_prepu" json:"mucosa_vulvar_prepu"`
	MucosaVulvarPrepuObservaciones *string `db:"mucosa_vulvar_prepu_observaciones" json:"mucosa_vulvar_prepu_observaciones"`
	MucosaRectal                   *string `db:"mucosa_rectal" json:"mucosa_rectal"`
	MucosaRectalObservaciones      *string `db:"mucosa_rectal_observaciones" json:"mucosa_rectal_observaciones"`
	MucosaOjos                     *string `db:"mucosa_ojos" json:"mucosa_ojos"`
	MucosaOjosObservaciones        *string `db:"mucosa_ojos_observaciones" json:"mucosa_ojos_observaciones"`
	MucosaOidos                    *string `db:"mucosa_oidos" json:"mucosa_oidos"`
	MucosaOidosObservaciones       *string `db:"mucosa_oidos_observaciones" json:"mucosa_oidos_observaciones"`
	MucosaNodulos                  *string `db:"mucosa_nodulos" json:"mucosa_nodulos"`
	MucosaNodulosObservaciones     *string `db:"mucosa_nodulos_observaciones" json:"mucosa_nodulos_observaciones"`
	MucosaPielAnexos               *string `db:"mucosa_piel_anexos" json:"mucosa_piel_anexos"`
	MucosaPielAnexosObservaciones  *string `db:"mucosa_piel_anexos_observaciones" json:"mucosa_piel_anexos_observaciones"`
	LocomocionEstado               *string `db:"locomocion_estado" json:"locomocion_estado"`
	LocomocionObservaciones        *string `db:"locomocion_observaciones" json:"locomocion_observaciones"`
	MusculoEstado                  *string `db:"musculo_estado" json:"musculo_estado"`
	MusculoObservaciones           *string `db:"musculo_observaciones" json:"musculo_observaciones"`
	NerviosoEstado                 *string `db:"nervioso_estado" json:"nervioso_estado"`
	NerviosoObservaciones          *string `db:"nervioso_observaciones" json:"nervioso_observaciones"`
	CardiovascularEstado           *string `db:"cardiovascular_estado" json:"cardiovascular_estado"`
	CardiovascularObservaciones    *string `db:"cardiovascular_observaciones" json:"cardiovascular_observaciones"`
	RespiratorioEstado             *string `db:"respiratorio_estado" json:"respiratorio_estado"`
	RespiratorioObservaciones      *string `db:"respiratorio_observaciones" json:"respiratorio_observaciones"`
	DigestivoEstado                *string `db:"digestivo_estado" json:"digestivo_estado"`
	DigestivoObservaciones         *string `db:"digestivo_observaciones" json:"digestivo_observaciones"`
	GenitourinarioEstado           *string `db:"genitourinario_estado" json:"genitourinario_estado"`
	GenitourinarioObservaciones    *string `db:"genitourinario_observaciones" json:"genitourinario_observaciones"`
}

// ExamenConMascota adds the pet name to the exam row (INNER JOIN mascotas).
type ExamenConMascota struct {
	ExamenClinico
	MascotaNombre string `db:"mascota_nombre" json:"mascota_nombre"`
}

// ExamenRequest carries the mutable exam fields. The same struct serves
// create and update; update ignores MascotaID because the exam's pet link
// is immutable.
type ExamenRequest struct {
	MascotaID                      int64   `json:"mascota_id"`
	Fecha                          Fecha   `json:"fecha"`
	Actitud                        string  `json:"actitud"`
	CondicionCorporal              string  `json:"condicion_corporal"`
	Hidratacion                    string  `json:"hidratacion"`
	Observaciones                  *string `json:"observaciones"`
	MucosaConjuntiva               *string `json:"mucosa_conjuntiva"`
	MucosaConjuntivaObservaciones  *string `json:"mucosa_conjuntiva_observaciones"`
	MucosaOral                     *string `json:"mucosa_oral"`
	MucosaOralObservaciones        *string `json:"mucosa_oral_observaciones"`
	MucosaVulvarPrepu              *string `json:"mucosa_vulvar_prepu"`
	MucosaVulvarPrepuObservaciones *string `json:"mucosa_vulvar_prepu_observaciones"`
	MucosaRectal                   *string `json:"mucosa_rectal"`
	MucosaRectalObservaciones      *string `json:"mucosa_rectal_observaciones"`
	MucosaOjos                     *string `json:"mucosa_ojos"`
	MucosaOjosObservaciones        *string `json:"mucosa_ojos_observaciones"`
	MucosaOidos                    *string `json:"mucosa_oidos"`
	MucosaOidosObservaciones       *string `json:"mucosa_oidos_observaciones"`
	MucosaNodulos                  *string `json:"mucosa_nodulos"`
	MucosaNodulosObservaciones     *string `json:"mucosa_nodulos_observaciones"`
	MucosaPielAnexos               *string `json:"mucosa_piel_anexos"`
	MucosaPielAnexosObservaciones  *string `json:"mucosa_piel_anexos_observaciones"`
	LocomocionEstado               *string `json:"locomocion_estado"`
	LocomocionObservaciones        *string `json:"locomocion_observaciones"`
	MusculoEstado                  *string `json:"musculo_estado"`
	MusculoObservaciones           *string `json:"musculo_observaciones"`
	NerviosoEstado                 *string `json:"nervioso_estado"`
	NerviosoObservaciones          *string `json:"nervioso_observaciones"`
	CardiovascularEstado           *string `json:"cardiovascular_estado"`
	CardiovascularObservaciones    *string `json:"cardiovascular_observaciones"`
	RespiratorioEstado             *string `json:"respiratorio_estado"`
	RespiratorioObservaciones      *string `json:"respiratorio_observaciones"`
	DigestivoEstado                *string `json:"digestivo_estado"`
	DigestivoObservaciones         *string `json:"digestivo_observaciones"`
	GenitourinarioEstado           *string `json:"genitourinario_estado"`
	GenitourinarioObservaciones    *string `json:"genitourinario_observaciones"`
}
