package models

// DocumentVariant identifies one of the fixed document kinds the school
// issues for a disciplinary or administrative action.
type DocumentVariant string

const (
	VariantInvitationGeneral    DocumentVariant = "invitation_general"
	VariantInvitationTeacher    DocumentVariant = "invitation_teacher"
	VariantInvitationSuspension DocumentVariant = "invitation_suspension"
	VariantAnnex3Advice         DocumentVariant = "annex_3_advice"
	VariantAnnex4Alert          DocumentVariant = "annex_4_alert"
	VariantAnnex5Warning        DocumentVariant = "annex_5_warning"
	VariantAnnex6Pledge         DocumentVariant = "annex_6_pledge"
	VariantAnnex14Suspension    DocumentVariant = "annex_14_suspension"
)

// Variants lists all known variants in menu order.
var Variants = []DocumentVariant{
	VariantInvitationGeneral,
	VariantInvitationTeacher,
	VariantInvitationSuspension,
	VariantAnnex3Advice,
	VariantAnnex4Alert,
	VariantAnnex5Warning,
	VariantAnnex6Pledge,
	VariantAnnex14Suspension,
}

var variantTitles = map[DocumentVariant]string{
	VariantInvitationGeneral:    "دعوة ولي أمر (عام)",
	VariantInvitationTeacher:    "دعوة ولي أمر (معلم)",
	VariantInvitationSuspension: "استدعاء ولي أمر (مخالفة)",
	VariantAnnex3Advice:         "ملحق (3) إخطار بنصح",
	VariantAnnex4Alert:          "ملحق (4) تنبيه طالب",
	VariantAnnex5Warning:        "ملحق (5) استمارة إنذار طالب",
	VariantAnnex6Pledge:         "ملحق (6) تعهد طالب",
	VariantAnnex14Suspension:    "ملحق (14) قرار فصل مؤقت",
}

// Valid reports whether the variant is one of the known document kinds.
func (v DocumentVariant) Valid() bool {
	_, ok := variantTitles[v]
	return ok
}

// Title returns the human-readable Arabic title, or the generic document
// label for an unrecognised variant.
func (v DocumentVariant) Title() string {
	if title, ok := variantTitles[v]; ok {
		return title
	}
	return "وثيقة"
}
