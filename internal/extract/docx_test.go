// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Senior Go</w:t></w:r><w:r><w:t xml:space="preserve"> developer</w:t></w:r></w:p>
<w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t>gRPC</w:t><w:br/><w:t>Kubernetes</w:t></w:r></w:p>
</w:body>
</w:document>`

// buildDocx assembles a minimal Word document in memory.
func buildDocx(t *testing.T, document string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml":            document,
	}
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWordDocument_Extract(t *testing.T) {
	data := buildDocx(t, testDocumentXML)
	text, err := WordDocument{}.Extract(context.Background(), "cv.docx", data)
	require.NoError(t, err)
	assert.Equal(t, "Senior Go developer\nSkills: gRPC\nKubernetes", text)
}

func TestWordDocument_Garbage(t *testing.T) {
	_, err := WordDocument{}.Extract(context.Background(), "cv.docx", []byte("not a zip"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cv.docx")
}

func TestByExtension_Docx(t *testing.T) {
	data := buildDocx(t, testDocumentXML)
	text, err := ByExtension{PDF: NativePDF{}}.Extract(context.Background(), "CV.DOCX", data)
	require.NoError(t, err)
	assert.Contains(t, text, "Kubernetes")
}

func TestDocumentText(t *testing.T) {
	text, err := documentText(`<w:document xmlns:w="x"><w:body><w:p><w:r><w:t>a &amp; b</w:t></w:r></w:p><w:p/></w:body></w:document>`)
	require.NoError(t, err)
	assert.Equal(t, "a & b", text)

	_, err = documentText(`<w:document><w:p>`)
	assert.Error(t, err)
}
