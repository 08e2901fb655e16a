package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	"github.com/jhoicas/directorio-escolar/internal/infrastructure/export"
)

func people() []entity.Person {
	return []entity.Person{
		entity.NewStudent(entity.Student{DocumentNumber: "70000001", StudentCode: "000070000001", FullName: "Ángel Quispe, Jr.", Grade: "5to", Section: "A"}, entity.StatusActive, "Delegado"),
		entity.NewGuardian(entity.Guardian{DNI: "10000001", Name: "Rosa Quispe", Email: "rosa@gmail.com", Relation: "Madre"}, entity.StatusPending),
	}
}

func TestCSVExporter_RegistroPlano(t *testing.T) {
	art, err := export.NewCSVExporter(export.Options{}).Export(context.Background(), people())
	require.NoError(t, err)
	assert.Equal(t, "export_usuarios_seleccionados.csv", art.Filename)

	rows, err := csv.NewReader(bytes.NewReader(art.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Nombre", "Email", "Roles", "Estado"}, rows[0])
	assert.Equal(t, []string{"70000001", "Ángel Quispe, Jr.", "70000001@colegio.edu.pe", "Estudiante", "Activo"}, rows[1],
		"las comas del nombre quedan entrecomilladas")
	assert.Equal(t, []string{"10000001", "Rosa Quispe", "rosa@gmail.com", "Apoderado", "Pendiente"}, rows[2])
}

func TestCSVExporter_Detallado(t *testing.T) {
	art, err := export.NewCSVExporter(export.Options{Detailed: true, EmailDomain: "otro.edu"}).Export(context.Background(), people())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(art.Data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Nivel/Área", rows[0][5])
	assert.Equal(t, "5to A", rows[1][5])
	assert.Equal(t, "70000001@otro.edu", rows[1][2])
	assert.Equal(t, "Madre", rows[2][6])
}

func TestXMLExporter_DigestCanonico(t *testing.T) {
	exp := export.NewXMLExporter(export.Options{})
	a1, err := exp.Export(context.Background(), people())
	require.NoError(t, err)
	a2, err := exp.Export(context.Background(), people())
	require.NoError(t, err)

	assert.NotEmpty(t, a1.Digest)
	assert.Equal(t, a1.Digest, a2.Digest, "mismo contenido, misma huella")

	again, err := export.Digest(a1.Data)
	require.NoError(t, err)
	assert.Equal(t, a1.Digest, again)

	other, err := exp.Export(context.Background(), people()[:1])
	require.NoError(t, err)
	assert.NotEqual(t, a1.Digest, other.Digest)
}

func TestXMLExporter_Estructura(t *testing.T) {
	art, err := export.NewXMLExporter(export.Options{Filename: "padron"}).Export(context.Background(), people())
	require.NoError(t, err)
	assert.Equal(t, "padron.xml", art.Filename)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(art.Data))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Padron", root.Tag)
	assert.Equal(t, "2", root.SelectAttrValue("total", ""))

	users := root.SelectElements("Usuario")
	require.Len(t, users, 2)
	assert.Equal(t, "estudiante", users[0].SelectAttrValue("tipo", ""))
	assert.Equal(t, "Estudiante", users[0].SelectElement("rol").Text())
	assert.True(t, strings.Contains(string(art.Data), "<etiqueta>Delegado</etiqueta>"))
}
