package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultActionDataSeeds(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	data := DefaultActionData(now)
	require.Equal(t, "2025-03-10", data.IncidentDate)
	require.Equal(t, "1", data.InvitationDeadline)
	require.Equal(t, "مدير المدرسة", data.AdminName)
}

func TestApplyFieldCoercion(t *testing.T) {
	data := DefaultActionData(time.Now())

	require.NoError(t, data.ApplyField("studentName", "أحمد علي"))
	require.Equal(t, "أحمد علي", data.StudentName)

	require.NoError(t, data.ApplyField("reasonLateness", true))
	require.True(t, data.ReasonLateness)

	// JSON booleans arrive as strings from form-style clients too.
	require.NoError(t, data.ApplyField("reasonAbsence", "true"))
	require.True(t, data.ReasonAbsence)
	require.NoError(t, data.ApplyField("reasonAbsence", "off"))
	require.False(t, data.ReasonAbsence)

	// Numbers are stringified for text fields.
	require.NoError(t, data.ApplyField("adminNumber", float64(42)))
	require.Equal(t, "42", data.AdminNumber)
}

func TestApplyFieldUnknownName(t *testing.T) {
	data := DefaultActionData(time.Now())
	require.Error(t, data.ApplyField("noSuchField", "x"))
}

func TestApplyFieldDeadlineChoice(t *testing.T) {
	data := DefaultActionData(time.Now())

	require.NoError(t, data.ApplyField("invitationDeadline", "3"))
	require.Equal(t, "3", data.InvitationDeadline)

	// Only the three printed choices exist; anything else would render a
	// deadline line with no box checked.
	require.Error(t, data.ApplyField("invitationDeadline", "5"))
	require.Error(t, data.ApplyField("invitationDeadline", ""))
	require.Equal(t, "3", data.InvitationDeadline)
}

func TestVariantTitleFallback(t *testing.T) {
	require.Equal(t, "وثيقة", DocumentVariant("annex_99").Title())
	require.False(t, DocumentVariant("annex_99").Valid())
	for _, v := range Variants {
		require.True(t, v.Valid())
		require.NotEqual(t, "وثيقة", v.Title())
	}
}
