package compose

import "github.com/ibdaa-school/docgen-api/internal/models"

// input bundles everything a section builder may bind to.
type input struct {
	data       models.ActionData
	settings   models.SchoolSettings
	letterhead Letterhead
}

// builder produces one section from the draft. Builders are pure.
type builder func(input) Section

// logoHeader is the plain letterhead used by the invitation variants: the
// ministry logo centered above the page.
func logoHeader(in input) Section {
	return section(SectionHeader,
		line(image(models.AssetMinistryLogo, in.settings.Asset(models.AssetMinistryLogo))),
	)
}

// ministryHeader builds the annex letterhead: identity lines on the right,
// logo centered, annex number with reference fields on the left.
func ministryHeader(annexNo string) builder {
	return func(in input) Section {
		return section(SectionHeader,
			line(text(in.letterhead.Country)),
			line(text(in.letterhead.Ministry)),
			line(text(in.letterhead.Directorate)),
			line(text(in.letterhead.School)),
			line(image(models.AssetMinistryLogo, in.settings.Asset(models.AssetMinistryLogo))),
			line(text("ملحق رقم ( "+annexNo+" )")),
			line(text("الرقم :"), blank("documentNumber", in.data.DocumentNumber)),
			line(text("التاريخ :"), blank("incidentDate", in.data.IncidentDate)),
		)
	}
}

// ministryHeaderWithYear is the annex 6 letterhead, which shows the academic
// year instead of a document number.
func ministryHeaderWithYear(annexNo string) builder {
	return func(in input) Section {
		return section(SectionHeader,
			line(text(in.letterhead.Country)),
			line(text(in.letterhead.Ministry)),
			line(text(in.letterhead.Directorate)),
			line(text(in.letterhead.School)),
			line(image(models.AssetMinistryLogo, in.settings.Asset(models.AssetMinistryLogo))),
			line(text("ملحق رقم ( "+annexNo+" )")),
			line(text("العام الدراسي :"), blank("academicYear", in.data.AcademicYear)),
			line(text("التاريخ :"), blank("incidentDate", in.data.IncidentDate)),
		)
	}
}

func title(heading string) builder {
	return func(input) Section {
		return section(SectionTitle, line(text(heading)))
	}
}

// guardianSalutation addresses the guardian by name.
func guardianSalutation(in input) Section {
	return section(SectionSalutation,
		line(
			text("الفاضل ولي أمر الطالب /"),
			blank("guardianName", in.data.GuardianName),
			text("المحترم"),
		),
		line(text("السلام عليكم ورحمة الله وبركاته ،،،")),
	)
}

// invitationOpening carries the invitation date and the student identity
// lines shared by the two dated invitation variants.
func invitationOpening(in input) Section {
	return section(SectionSalutation,
		line(text("تاريخ الدعوة :"), blank("incidentDate", in.data.IncidentDate)),
		line(text("الفاضل ولي أمر الطالب :"), blank("studentName", in.data.StudentName)),
		line(text("المقيد بالصف :"), blank("grade", in.data.Grade)),
		line(text("السلام عليكم ورحمة الله وبركاته")),
	)
}

// annexAddressee is the student identity opening used by the annex forms.
func annexAddressee(in input) Section {
	return section(SectionSalutation,
		line(
			text("الفاضل ولي أمر الطالب / الطالبة :"),
			blank("studentName", in.data.StudentName),
			text("المسجل / المسجلة"),
		),
		line(text("بالصف :"), blank("grade", in.data.Grade)),
		line(text("السلام عليكم ورحمة الله وبركاته .. وبعد ...")),
	)
}

func bodyText(paragraphs ...string) builder {
	return func(input) Section {
		lines := make([]Line, 0, len(paragraphs))
		for _, p := range paragraphs {
			lines = append(lines, line(text(p)))
		}
		return section(SectionBody, lines...)
	}
}

const invitationBody = "نظراً لأهمية التعاون بين المدرسة وولي الأمر فيما يخدم مصلحة الطالب ، ويحقق له النجاح ، ونأمل منكم الحضور إلى المدرسة لبحث بعض الأمور المتعلقة بابنكم ، ولنا في حضوركم أمل بهدف التعاون بين البيت والمدرسة لتحقيق الرسالة التربوية الهادفة التي نسعى إليها ، وتأمل المدرسة حضوركم في أقرب فرصة ممكنة لديكم ، بحيث لا تتجاوز :"

// deadlineChoice renders the mutually exclusive 1/2/3 day boxes. Exactly one
// is filled because InvitationDeadline holds a single value.
func deadlineChoice(in input) Section {
	return section(SectionDeadline,
		line(squarebox(in.data.InvitationDeadline == "1"), text("يوماً واحداً")),
		line(squarebox(in.data.InvitationDeadline == "2"), text("يومين")),
		line(squarebox(in.data.InvitationDeadline == "3"), text("ثلاثة أيام")),
	)
}

func committeeNote(input) Section {
	return section(SectionBody, line(text("ومراجعة لجنة شؤون الطلاب")))
}

// teacherSubject adds the subject/teacher line of the teacher invitation.
func teacherSubject(in input) Section {
	return section(SectionBody,
		line(text("المادة :"), blank("subjectName", in.data.SubjectName)),
		line(text("المعلم :"), blank("teacherName", in.data.TeacherName)),
	)
}

// reasonRows lists the three disciplinary reasons. A detail blank appears
// only when its flag is set; an unchecked reason renders an empty blank.
func reasonRows(in input) Section {
	lateness := ""
	if in.data.ReasonLateness {
		lateness = in.data.LatenessDates
	}
	absence := ""
	if in.data.ReasonAbsence {
		absence = in.data.AbsenceDates
	}
	behavior := ""
	if in.data.ReasonBehavior {
		behavior = in.data.BehaviorDetails
	}
	return section(SectionReasons,
		line(checkbox(in.data.ReasonLateness), text("التأخر الصباحي :"), blank("latenessDates", lateness)),
		line(checkbox(in.data.ReasonAbsence), text("الغياب بدون عذر :"), blank("absenceDates", absence)),
		line(checkbox(in.data.ReasonBehavior), text("إتيان السلوكيات الآتية :"), blank("behaviorDetails", behavior)),
	)
}

// pledgeCommitments lists the annex 6 commitments. Check-only: no detail
// field ever appears here regardless of flag state.
func pledgeCommitments(in input) Section {
	return section(SectionPledge,
		line(text("وقد تعهد الطالب وولي أمره بـ :")),
		line(checkbox(in.data.ReasonLateness), text("عدم التأخر عن موعد بدء اليوم الدراسي بدون عذر مقبول .")),
		line(checkbox(in.data.ReasonAbsence), text("عدم الغياب عن المدرسة بدون عذر مقبول .")),
		line(checkbox(in.data.ReasonBehavior), text("عدم تكرار السلوكيات المنسوبة إليه، والالتزام بأنظمة وقواعد الانضباط السلوكي.")),
	)
}

// committeeSignatures is the annex signing block: committee member on one
// side, stamp centered, principal on the other.
func committeeSignatures(in input) Section {
	return section(SectionSignatures,
		line(
			text("عضو لجنة شؤون الطلاب"),
			image(models.AssetCommitteeHeadSignature, in.settings.Asset(models.AssetCommitteeHeadSignature)),
		),
		line(image(models.AssetSchoolStamp, in.settings.Asset(models.AssetSchoolStamp))),
		line(
			text("يعتمد مدير المدرسة"),
			image(models.AssetPrincipalSignature, in.settings.Asset(models.AssetPrincipalSignature)),
		),
	)
}

// closingSignatures is the invitation footer naming the signatories.
func closingSignatures(in input) Section {
	return section(SectionSignatures,
		line(text("الأخصائي الاجتماعي :"), blank("socialWorkerName", in.data.SocialWorkerName)),
		line(
			text("يعتمد :"),
			blank("adminName", in.data.AdminName),
			image(models.AssetPrincipalSignature, in.settings.Asset(models.AssetPrincipalSignature)),
		),
		line(image(models.AssetSchoolStamp, in.settings.Asset(models.AssetSchoolStamp))),
	)
}

// recipientBlock records who received the notice.
func recipientBlock(in input) Section {
	return section(SectionRecipient,
		line(text("اسم المتسلم :"), blank("annex5_recipientName", in.data.RecipientName)),
		line(text("الرقم المدني :"), blank("annex5_recipientCivilId", in.data.RecipientCivilID)),
		line(text("صلته بالطالب :"), blank("annex5_recipientRelation", in.data.RecipientRelation)),
		line(text("رقم الهاتف :"), blank("annex5_recipientPhone", in.data.RecipientPhone)),
		line(text("التاريخ :"), blank("annex5_recipientDate", in.data.RecipientDate)),
		line(text("التوقيع :"), blank("", "")),
	)
}

func copyToFile(input) Section {
	return section(SectionFootnote, line(text("نسخة إلى :"), text("- ملف الطالب")))
}

// guardianAcknowledgment closes the suspension summons.
func guardianAcknowledgment(in input) Section {
	return section(SectionAcknowledgment,
		line(
			text("أنا ولي أمر الطالب"),
			blank("studentName", in.data.StudentName),
			text("أقر باستلامي الدعوة وسأقوم بالحضور في الموعد المحدد."),
		),
	)
}
