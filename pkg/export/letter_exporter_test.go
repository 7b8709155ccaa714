package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetterExporterRender(t *testing.T) {
	exporter := NewLetterExporter()
	doc := LetterDocument{
		Code:            "CARTA-7",
		RefTitle:        "SOLICITUD DE AUTORIZACIÓN DE PRÁCTICA",
		City:            "ARICA",
		LetterDate:      "2 DE MARZO DE 2026",
		AddresseeName:   "María Rojas",
		AddresseeRole:   "Directora",
		Institution:     "Liceo Bicentenario Arica",
		InstitutionAddr: "Av. Santa María 1000",
		PracticeType:    "Práctica Profesional",
		Period:          "02/03/2026 al 30/06/2026",
		Degree:          "Pedagogía en Historia y Geografía",
		Students:        []string{"• Ana Estudiante, Rut. 12.345.678-5"},
		Signer:          "Dr. Ignacio Jara Parra",
		SignerRole:      "Jefe de Carrera",
	}

	pdfBytes, err := exporter.Render(doc)
	require.NoError(t, err)
	assert.True(t, len(pdfBytes) > 500)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestLetterExporterRequiresRefTitle(t *testing.T) {
	exporter := NewLetterExporter()
	_, err := exporter.Render(LetterDocument{Institution: "Liceo"})
	require.Error(t, err)
}

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()
	data := Dataset{
		Headers: []string{"ID", "Nombre"},
		Rows:    []map[string]string{{"ID": "1", "Nombre": "Ana"}},
	}
	out, err := exporter.Render(data)
	require.NoError(t, err)
	assert.Equal(t, "ID,Nombre\n1,Ana\n", string(out))
}
