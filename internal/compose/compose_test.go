package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibdaa-school/docgen-api/internal/models"
)

func testComposer() *Composer {
	return New(DefaultLetterhead("المديرية العامة للتعليم بمحافظة شمال الباطنة", "مدرسة الإبداع للبنين (5-8)"))
}

func sampleDraft() models.ActionData {
	return models.ActionData{
		StudentName:        "خالد بن سعيد",
		GuardianName:       "سعيد بن حمد",
		Grade:              "5/1",
		IncidentDate:       "2025-01-15",
		ReasonLateness:     true,
		LatenessDates:      "2025-01-10، 2025-01-12",
		BehaviorDetails:    "مشاجرة أثناء الفسحة",
		InvitationDeadline: "2",
		TeacherName:        "أحمد",
		SubjectName:        "الرياضيات",
	}
}

func fieldsOfKind(doc Document, kind FragmentKind) []string {
	var fields []string
	for _, s := range doc.Sections {
		for _, l := range s.Lines {
			for _, f := range l.Fragments {
				if f.Kind == kind {
					fields = append(fields, f.Field)
				}
			}
		}
	}
	return fields
}

func sectionByKind(doc Document, kind SectionKind) (Section, bool) {
	for _, s := range doc.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

func TestComposeIsDeterministic(t *testing.T) {
	c := testComposer()
	data := sampleDraft()
	settings := models.SchoolSettings{}

	for _, variant := range models.Variants {
		first := c.Compose(variant, data, settings)
		second := c.Compose(variant, data, settings)
		require.Equal(t, first, second, "variant %s", variant)
		assert.True(t, first.Found)
		assert.Equal(t, variant.Title(), first.Title)
	}
}

func TestComposeUnknownVariant(t *testing.T) {
	c := testComposer()
	doc := c.Compose("annex_99_expulsion", models.ActionData{}, models.SchoolSettings{})

	assert.False(t, doc.Found)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, SectionNotFound, doc.Sections[0].Kind)
}

func TestComposeDeadlineSingleChoice(t *testing.T) {
	c := testComposer()
	for _, choice := range []string{"1", "2", "3"} {
		data := sampleDraft()
		data.InvitationDeadline = choice

		doc := c.Compose(models.VariantInvitationGeneral, data, models.SchoolSettings{})
		deadline, ok := sectionByKind(doc, SectionDeadline)
		require.True(t, ok)

		checked := 0
		for _, l := range deadline.Lines {
			for _, f := range l.Fragments {
				if f.Kind == FragmentSquareBox && f.Checked {
					checked++
				}
			}
		}
		assert.Equal(t, 1, checked, "choice %s", choice)
	}
}

func TestComposeTeacherInvitationCarriesSubject(t *testing.T) {
	c := testComposer()
	data := sampleDraft()

	teacher := c.Compose(models.VariantInvitationTeacher, data, models.SchoolSettings{})
	general := c.Compose(models.VariantInvitationGeneral, data, models.SchoolSettings{})

	assert.Contains(t, fieldsOfKind(teacher, FragmentBlank), "teacherName")
	assert.Contains(t, fieldsOfKind(teacher, FragmentBlank), "subjectName")
	assert.NotContains(t, fieldsOfKind(general, FragmentBlank), "teacherName")
}

func TestComposeReasonDetailGating(t *testing.T) {
	c := testComposer()
	data := sampleDraft()
	data.ReasonLateness = true
	data.ReasonAbsence = false
	data.AbsenceDates = "should not leak"

	doc := c.Compose(models.VariantAnnex3Advice, data, models.SchoolSettings{})
	reasons, ok := sectionByKind(doc, SectionReasons)
	require.True(t, ok)

	byField := map[string]Fragment{}
	for _, l := range reasons.Lines {
		for _, f := range l.Fragments {
			if f.Kind == FragmentBlank {
				byField[f.Field] = f
			}
		}
	}
	assert.Equal(t, data.LatenessDates, byField["latenessDates"].Value)
	assert.Empty(t, byField["absenceDates"].Value, "unchecked reason must render an empty blank")
}

func TestComposePledgeNeverShowsDetails(t *testing.T) {
	c := testComposer()
	data := sampleDraft()
	data.ReasonLateness = true
	data.ReasonAbsence = true
	data.ReasonBehavior = true
	data.LatenessDates = "detail"
	data.AbsenceDates = "detail"
	data.BehaviorDetails = "detail"

	doc := c.Compose(models.VariantAnnex6Pledge, data, models.SchoolSettings{})
	for _, field := range fieldsOfKind(doc, FragmentBlank) {
		assert.NotContains(t, []string{"latenessDates", "absenceDates", "behaviorDetails"}, field)
	}

	pledge, ok := sectionByKind(doc, SectionPledge)
	require.True(t, ok)
	checkboxes := 0
	for _, l := range pledge.Lines {
		for _, f := range l.Fragments {
			assert.NotEqual(t, FragmentBlank, f.Kind)
			if f.Kind == FragmentCheckbox {
				checkboxes++
			}
		}
	}
	assert.Equal(t, 3, checkboxes)
}

func TestComposeAnnex5LetterReferences(t *testing.T) {
	c := testComposer()
	data := sampleDraft()
	data.Annex5Letter1No = "101"
	data.Annex5Letter2No = "205"

	doc := c.Compose(models.VariantAnnex5Warning, data, models.SchoolSettings{})
	fields := fieldsOfKind(doc, FragmentBlank)
	assert.Contains(t, fields, "annex5_letter1No")
	assert.Contains(t, fields, "annex5_letter2No")
	assert.Contains(t, fields, "annex5_articleNo")
}

func TestComposeAnnex14SingleNarrative(t *testing.T) {
	c := testComposer()
	data := sampleDraft()

	doc := c.Compose(models.VariantAnnex14Suspension, data, models.SchoolSettings{})
	reasons, ok := sectionByKind(doc, SectionReasons)
	require.True(t, ok)

	// Narrative only: the suspension decision has no reason checkboxes.
	for _, l := range reasons.Lines {
		for _, f := range l.Fragments {
			assert.NotEqual(t, FragmentCheckbox, f.Kind)
		}
	}
	assert.Contains(t, fieldsOfKind(doc, FragmentBlank), "annex14_suspensionDays")
}

func TestComposeMissingImagesRenderEmpty(t *testing.T) {
	c := testComposer()
	doc := c.Compose(models.VariantAnnex3Advice, sampleDraft(), models.SchoolSettings{})

	header, ok := sectionByKind(doc, SectionHeader)
	require.True(t, ok)
	for _, l := range header.Lines {
		for _, f := range l.Fragments {
			if f.Kind == FragmentImage {
				assert.Empty(t, f.Value)
			}
		}
	}
}

func TestComposeWithConfiguredImages(t *testing.T) {
	c := testComposer()
	logo := "data:image/png;base64,AAAA"
	settings := models.SchoolSettings{MinistryLogo: &logo}

	doc := c.Compose(models.VariantInvitationGeneral, sampleDraft(), settings)
	header, ok := sectionByKind(doc, SectionHeader)
	require.True(t, ok)
	require.Len(t, header.Lines, 1)
	require.Len(t, header.Lines[0].Fragments, 1)
	assert.Equal(t, logo, header.Lines[0].Fragments[0].Value)
}
