package export

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibdaa-school/docgen-api/internal/compose"
	"github.com/ibdaa-school/docgen-api/internal/models"
)

func pageWithImage(value string) compose.Document {
	return compose.Document{
		Variant: models.VariantAnnex5Warning,
		Title:   "استمارة إنذار",
		Found:   true,
		Sections: []compose.Section{
			{Kind: compose.SectionHeader, Lines: []compose.Line{
				{Fragments: []compose.Fragment{
					{Kind: compose.FragmentImage, Asset: "ministryLogo", Value: value},
				}},
			}},
			{Kind: compose.SectionBody, Lines: []compose.Line{
				{Fragments: []compose.Fragment{
					{Kind: compose.FragmentText, Text: "نحيطكم علماً"},
					{Kind: compose.FragmentBlank, Field: "studentName", Value: "أحمد علي"},
				}},
			}},
		},
	}
}

func TestRenderWithoutImages(t *testing.T) {
	doc := pageWithImage("")
	payload, err := NewPDFExporter().Render(doc)
	require.NoError(t, err)
	require.NotEmpty(t, payload)
	require.Equal(t, "%PDF", string(payload[:4]))
}

func TestRenderSurvivesCorruptImage(t *testing.T) {
	// Valid base64, but the decoded bytes are not a PNG. The sticky gofpdf
	// error must not survive to Output.
	corrupt := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not an image"))
	payload, err := NewPDFExporter().Render(pageWithImage(corrupt))
	require.NoError(t, err)
	require.NotEmpty(t, payload)
	require.Equal(t, "%PDF", string(payload[:4]))
}

func TestRenderSkipsUndecodableImagePayload(t *testing.T) {
	payload, err := NewPDFExporter().Render(pageWithImage("data:image/png;base64,@@not-base64@@"))
	require.NoError(t, err)
	require.NotEmpty(t, payload)
}
