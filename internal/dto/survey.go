package dto

// Survey submissions arrive as a tagged payload: the type selects which
// section shape the data must satisfy. Sections are maps of leaf field
// to value; nesting below a section is allowed and handled by the
// flattening step.

// CreateSurveyRequest is the top-level submission envelope.
type CreateSurveyRequest struct {
	Tipo string                 `json:"tipo" validate:"required,oneof=ESTUDIANTIL COLABORADORES_JEFES"`
	Data map[string]interface{} `json:"data" validate:"required"`
}

// StudentSurveyData is the validated shape of an ESTUDIANTIL payload.
type StudentSurveyData struct {
	NombreEstudiante           string                 `json:"nombreEstudiante"`
	NombreTalleristaSupervisor string                 `json:"nombreTalleristaSupervisor"`
	NombreDocenteColaborador   string                 `json:"nombreDocenteColaborador"`
	Establecimiento            string                 `json:"establecimiento"`
	FechaEvaluacion            string                 `json:"fechaEvaluacion"`
	MejoraCoordinacion         string                 `json:"mejoraCoordinacion"`
	Semestre                   string                 `json:"semestre"`
	SecI                       map[string]interface{} `json:"secI"`
	SecIIA                     map[string]interface{} `json:"secII_A"`
	SecIIB                     map[string]interface{} `json:"secII_B"`
	SecIIIA                    map[string]interface{} `json:"secIII_A"`
	SecIIIB                    map[string]interface{} `json:"secIII_B"`
	SecIIIC                    map[string]interface{} `json:"secIII_C"`
	SecIVT                     map[string]interface{} `json:"secIV_T"`
	SecIVS                     map[string]interface{} `json:"secIV_S"`
	SecV                       map[string]interface{} `json:"secV"`
	ComentariosAdicionales     string                 `json:"comentariosAdicionales"`
}

// Sections returns the named section maps in submission order.
func (d StudentSurveyData) Sections() []NamedSection {
	return []NamedSection{
		{"secI", d.SecI},
		{"secII_A", d.SecIIA},
		{"secII_B", d.SecIIB},
		{"secIII_A", d.SecIIIA},
		{"secIII_B", d.SecIIIB},
		{"secIII_C", d.SecIIIC},
		{"secIV_T", d.SecIVT},
		{"secIV_S", d.SecIVS},
		{"secV", d.SecV},
	}
}

// CollaboratorSurveyData is the validated shape of a
// COLABORADORES_JEFES payload.
type CollaboratorSurveyData struct {
	NombreColaborador              string                 `json:"nombreColaborador"`
	CentroEducativo                string                 `json:"centroEducativo"`
	FechaEvaluacion                string                 `json:"fechaEvaluacion"`
	Semestre                       string                 `json:"semestre"`
	SecI                           map[string]interface{} `json:"secI"`
	SecII                          map[string]interface{} `json:"secII"`
	SecIII                         map[string]interface{} `json:"secIII"`
	Sugerencias                    string                 `json:"sugerencias"`
	CumplePerfilEgreso             string                 `json:"cumplePerfilEgreso"`
	ComentariosAdicionalesPractica string                 `json:"comentariosAdicionalesPractica"`
	ComentariosAdicionales         string                 `json:"comentariosAdicionales"`
}

// Sections returns the named section maps in submission order.
func (d CollaboratorSurveyData) Sections() []NamedSection {
	return []NamedSection{
		{"secI", d.SecI},
		{"secII", d.SecII},
		{"secIII", d.SecIII},
	}
}

// NamedSection pairs a section prefix with its payload.
type NamedSection struct {
	Prefix string
	Value  map[string]interface{}
}
