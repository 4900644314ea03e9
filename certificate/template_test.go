package certificate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDocumentSubstitutesAllFields(t *testing.T) {
	body, err := renderDocument(documentData{
		StudentName:       "Ana Martínez",
		CourseTitle:       "Programación con Python",
		CompletionDate:    "10 de marzo de 2024",
		CertificateNumber: "CERT-2024-000001",
	})
	require.NoError(t, err)

	html := string(body)
	assert.Contains(t, html, "Ana Martínez")
	assert.Contains(t, html, "Programación con Python")
	assert.Contains(t, html, "10 de marzo de 2024")
	assert.Contains(t, html, "CERT-2024-000001")
	assert.Contains(t, html, "CERTIFICADO")
	assert.Contains(t, html, "size: A4 landscape")
}

func TestRenderDocumentIsSelfContained(t *testing.T) {
	body, err := renderDocument(documentData{
		StudentName:       "Ana",
		CourseTitle:       "Curso",
		CompletionDate:    "1 de enero de 2024",
		CertificateNumber: "CERT-2024-000002",
	})
	require.NoError(t, err)

	// The document must render offline: no scripts, no external assets.
	html := strings.ToLower(string(body))
	assert.NotContains(t, html, "<script")
	assert.NotContains(t, html, "src=")
	assert.NotContains(t, html, "@import")
	assert.NotContains(t, html, "url(")
}

func TestRenderDocumentEscapesMarkup(t *testing.T) {
	body, err := renderDocument(documentData{
		StudentName:       `<b>Ana</b>`,
		CourseTitle:       "Curso",
		CompletionDate:    "1 de enero de 2024",
		CertificateNumber: "CERT-2024-000003",
	})
	require.NoError(t, err)

	assert.NotContains(t, string(body), "<b>Ana</b>")
}
