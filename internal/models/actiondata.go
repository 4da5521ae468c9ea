package models

import (
	"fmt"
	"slices"
	"time"
)

// ActionData is the mutable draft holding everything the document templates
// can bind to. All fields are optional; missing values render as blank
// placeholders. Variant-specific fields are only consulted by the variants
// that declare them.
type ActionData struct {
	StudentName    string `json:"studentName"`
	GuardianName   string `json:"guardianName"`
	Grade          string `json:"grade"`
	DocumentNumber string `json:"documentNumber"`
	GuardianPhone  string `json:"guardianPhone"`
	IncidentDate   string `json:"incidentDate"`
	AdminNumber    string `json:"adminNumber"`

	ReasonLateness bool `json:"reasonLateness"`
	ReasonAbsence  bool `json:"reasonAbsence"`
	ReasonBehavior bool `json:"reasonBehavior"`

	LatenessDates   string `json:"latenessDates"`
	AbsenceDates    string `json:"absenceDates"`
	BehaviorDetails string `json:"behaviorDetails"`

	// One of "1", "2", "3" (days). Single choice for invitation variants.
	InvitationDeadline string `json:"invitationDeadline"`

	TeacherName string `json:"teacherName"`
	SubjectName string `json:"subjectName"`

	Annex3ArticleNo string `json:"annex3_articleNo"`

	Annex4LetterNo   string `json:"annex4_letterNo"`
	Annex4LetterDate string `json:"annex4_letterDate"`
	Annex4Regarding  string `json:"annex4_regarding"`
	Annex4ArticleNo  string `json:"annex4_articleNo"`

	Annex5Letter1No   string `json:"annex5_letter1No"`
	Annex5Letter1Date string `json:"annex5_letter1Date"`
	Annex5Letter2No   string `json:"annex5_letter2No"`
	Annex5Letter2Date string `json:"annex5_letter2Date"`
	Annex5ArticleNo   string `json:"annex5_articleNo"`

	RecipientName     string `json:"annex5_recipientName"`
	RecipientRelation string `json:"annex5_recipientRelation"`
	RecipientCivilID  string `json:"annex5_recipientCivilId"`
	RecipientPhone    string `json:"annex5_recipientPhone"`
	RecipientDate     string `json:"annex5_recipientDate"`

	GuardianCivilID string `json:"guardianCivilId"`
	AcademicYear    string `json:"academicYear"`

	Annex14Letter1No      string `json:"annex14_letter1No"`
	Annex14Letter1Date    string `json:"annex14_letter1Date"`
	Annex14Letter1Subject string `json:"annex14_letter1Subj"`
	Annex14Letter2No      string `json:"annex14_letter2No"`
	Annex14Letter2Date    string `json:"annex14_letter2Date"`
	Annex14Letter2Subject string `json:"annex14_letter2Subj"`
	Annex14ArticleNo      string `json:"annex14_articleNo"`
	Annex14SuspensionDays string `json:"annex14_suspensionDays"`

	AdminName        string `json:"adminName"`
	SocialWorkerName string `json:"socialWorkerName"`
}

// DefaultActionData returns a fresh draft seeded with today's date and the
// standing signatory defaults.
func DefaultActionData(now time.Time) ActionData {
	return ActionData{
		IncidentDate:       now.Format("2006-01-02"),
		InvitationDeadline: "1",
		AcademicYear:       "2024 / 2025",
		AdminName:          "مدير المدرسة",
	}
}

// Reason labels in the fixed summary order.
const (
	ReasonLabelLateness   = "تأخر"
	ReasonLabelAbsence    = "غياب"
	ReasonLabelBehavior   = "سلوك"
	ReasonLabelSuspension = "فصل مؤقت"

	// GenericReasonLabel is used when no reason flag is active.
	GenericReasonLabel = "إجراء عام"
)

type draftField struct {
	boolean bool
	oneOf   []string
	set     func(*ActionData, string, bool)
}

var draftFields = map[string]draftField{
	"studentName":    {set: func(d *ActionData, s string, _ bool) { d.StudentName = s }},
	"guardianName":   {set: func(d *ActionData, s string, _ bool) { d.GuardianName = s }},
	"grade":          {set: func(d *ActionData, s string, _ bool) { d.Grade = s }},
	"documentNumber": {set: func(d *ActionData, s string, _ bool) { d.DocumentNumber = s }},
	"guardianPhone":  {set: func(d *ActionData, s string, _ bool) { d.GuardianPhone = s }},
	"incidentDate":   {set: func(d *ActionData, s string, _ bool) { d.IncidentDate = s }},
	"adminNumber":    {set: func(d *ActionData, s string, _ bool) { d.AdminNumber = s }},

	"reasonLateness": {boolean: true, set: func(d *ActionData, _ string, b bool) { d.ReasonLateness = b }},
	"reasonAbsence":  {boolean: true, set: func(d *ActionData, _ string, b bool) { d.ReasonAbsence = b }},
	"reasonBehavior": {boolean: true, set: func(d *ActionData, _ string, b bool) { d.ReasonBehavior = b }},

	"latenessDates":   {set: func(d *ActionData, s string, _ bool) { d.LatenessDates = s }},
	"absenceDates":    {set: func(d *ActionData, s string, _ bool) { d.AbsenceDates = s }},
	"behaviorDetails": {set: func(d *ActionData, s string, _ bool) { d.BehaviorDetails = s }},

	"invitationDeadline": {oneOf: []string{"1", "2", "3"}, set: func(d *ActionData, s string, _ bool) { d.InvitationDeadline = s }},
	"teacherName":        {set: func(d *ActionData, s string, _ bool) { d.TeacherName = s }},
	"subjectName":        {set: func(d *ActionData, s string, _ bool) { d.SubjectName = s }},

	"annex3_articleNo": {set: func(d *ActionData, s string, _ bool) { d.Annex3ArticleNo = s }},

	"annex4_letterNo":   {set: func(d *ActionData, s string, _ bool) { d.Annex4LetterNo = s }},
	"annex4_letterDate": {set: func(d *ActionData, s string, _ bool) { d.Annex4LetterDate = s }},
	"annex4_regarding":  {set: func(d *ActionData, s string, _ bool) { d.Annex4Regarding = s }},
	"annex4_articleNo":  {set: func(d *ActionData, s string, _ bool) { d.Annex4ArticleNo = s }},

	"annex5_letter1No":   {set: func(d *ActionData, s string, _ bool) { d.Annex5Letter1No = s }},
	"annex5_letter1Date": {set: func(d *ActionData, s string, _ bool) { d.Annex5Letter1Date = s }},
	"annex5_letter2No":   {set: func(d *ActionData, s string, _ bool) { d.Annex5Letter2No = s }},
	"annex5_letter2Date": {set: func(d *ActionData, s string, _ bool) { d.Annex5Letter2Date = s }},
	"annex5_articleNo":   {set: func(d *ActionData, s string, _ bool) { d.Annex5ArticleNo = s }},

	"annex5_recipientName":     {set: func(d *ActionData, s string, _ bool) { d.RecipientName = s }},
	"annex5_recipientRelation": {set: func(d *ActionData, s string, _ bool) { d.RecipientRelation = s }},
	"annex5_recipientCivilId":  {set: func(d *ActionData, s string, _ bool) { d.RecipientCivilID = s }},
	"annex5_recipientPhone":    {set: func(d *ActionData, s string, _ bool) { d.RecipientPhone = s }},
	"annex5_recipientDate":     {set: func(d *ActionData, s string, _ bool) { d.RecipientDate = s }},

	"guardianCivilId": {set: func(d *ActionData, s string, _ bool) { d.GuardianCivilID = s }},
	"academicYear":    {set: func(d *ActionData, s string, _ bool) { d.AcademicYear = s }},

	"annex14_letter1No":      {set: func(d *ActionData, s string, _ bool) { d.Annex14Letter1No = s }},
	"annex14_letter1Date":    {set: func(d *ActionData, s string, _ bool) { d.Annex14Letter1Date = s }},
	"annex14_letter1Subj":    {set: func(d *ActionData, s string, _ bool) { d.Annex14Letter1Subject = s }},
	"annex14_letter2No":      {set: func(d *ActionData, s string, _ bool) { d.Annex14Letter2No = s }},
	"annex14_letter2Date":    {set: func(d *ActionData, s string, _ bool) { d.Annex14Letter2Date = s }},
	"annex14_letter2Subj":    {set: func(d *ActionData, s string, _ bool) { d.Annex14Letter2Subject = s }},
	"annex14_articleNo":      {set: func(d *ActionData, s string, _ bool) { d.Annex14ArticleNo = s }},
	"annex14_suspensionDays": {set: func(d *ActionData, s string, _ bool) { d.Annex14SuspensionDays = s }},

	"adminName":        {set: func(d *ActionData, s string, _ bool) { d.AdminName = s }},
	"socialWorkerName": {set: func(d *ActionData, s string, _ bool) { d.SocialWorkerName = s }},
}

// ApplyField merges a single named field into the draft. Checkbox fields
// coerce the value to bool, everything else to string. Unknown names and
// out-of-range choice values are rejected.
func (d *ActionData) ApplyField(name string, value interface{}) error {
	field, ok := draftFields[name]
	if !ok {
		return fmt.Errorf("unknown draft field %q", name)
	}
	if field.boolean {
		field.set(d, "", coerceBool(value))
		return nil
	}
	s := coerceString(value)
	if len(field.oneOf) > 0 && !slices.Contains(field.oneOf, s) {
		return fmt.Errorf("field %q accepts one of %v, got %q", name, field.oneOf, s)
	}
	field.set(d, s, false)
	return nil
}

func coerceBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "on" || v == "1"
	case float64:
		return v != 0
	default:
		return false
	}
}

func coerceString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
