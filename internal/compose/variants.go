package compose

import "github.com/ibdaa-school/docgen-api/internal/models"

// variantLayouts is the declarative composition table: each variant maps to
// its ordered section builders. Adding a document kind means adding a row
// here, not another branch in a renderer.
var variantLayouts = map[models.DocumentVariant][]builder{
	models.VariantInvitationGeneral: {
		logoHeader,
		title("دعوة ولي أمر لحضور المدرسة لأمر يتعلق بالطالب"),
		invitationOpening,
		bodyText(invitationBody),
		deadlineChoice,
		committeeNote,
		closingSignatures,
	},
	models.VariantInvitationTeacher: {
		logoHeader,
		title("دعوة ولي أمر لحضور المدرسة لأمر يتعلق بالطالب"),
		invitationOpening,
		bodyText(invitationBody),
		deadlineChoice,
		teacherSubject,
		closingSignatures,
	},
	models.VariantInvitationSuspension: {
		logoHeader,
		guardianSalutation,
		bodyText(
			"الموضوع: طلب حضور لمناقشة مستوى الطالب / سلوك الطالب",
			"نهديكم أطيب التحيات، ونظراً لأهمية التواصل المستمر بين البيت والمدرسة لما فيه مصلحة الطالب ومستقبله الدراسي والسلوكي.",
			"عليه، يرجى التكرم بالحضور إلى مبنى المدرسة لمقابلة لجنة شؤون الطلاب وذلك يوم .................... الموافق .................... في تمام الساعة .................... صباحاً.",
			"وذلك لمناقشة بعض المخالفات السلوكية الصادرة من الطالب واتخاذ الإجراءات التربوية اللازمة.",
			"شاكرين لكم حسن تعاونكم واهتمامكم ،،،",
		),
		closingSignatures,
		guardianAcknowledgment,
	},
	models.VariantAnnex3Advice: {
		ministryHeader("3"),
		title("استمارة إخطار ولي الأمر بنصح الطالب"),
		annexAddressee,
		annex3Article,
		reasonRows,
		bodyText(
			"وقد قامت إدارة المدرسة بتوجيه الطالب شفوياً وإرشاده إلى عدم تكرار التأخير / الغياب / السلوك.",
			"وتفضلوا بقبول فائق الاحترام والتقدير ....",
		),
		committeeSignatures,
		recipientBlock,
		copyToFile,
	},
	models.VariantAnnex4Alert: {
		ministryHeader("4"),
		title("استمارة تنبيه طالب"),
		annexAddressee,
		annex4LetterReference,
		reasonRows,
		bodyText("وقد قامت إدارة المدرسة بتوجيه الطالب كتابةً وإحاطته علماً بنتائج المخالفة."),
		committeeSignatures,
		recipientBlock,
		copyToFile,
	},
	models.VariantAnnex5Warning: {
		ministryHeader("5"),
		title("استمارة إنذار طالب"),
		annexAddressee,
		annex5LetterReferences,
		reasonRows,
		bodyText("لمناقشة موضوع الطالب واستكمال بقية الاجراءات."),
		committeeSignatures,
		recipientBlock,
		copyToFile,
	},
	models.VariantAnnex6Pledge: {
		ministryHeaderWithYear("6"),
		title("استمارة تعهد الطالب وولي أمره"),
		annex6Attendance,
		pledgeCommitments,
		bodyText("وأنه في حال عدم التزامه ستقوم إدارة المدرسة باتخاذ الإجراء الذي تراه مناسباً وفق لائحة شؤون الطلاب."),
		committeeSignatures,
		recipientBlock,
	},
	models.VariantAnnex14Suspension: {
		ministryHeader("14"),
		title("قرار فصل الطالب مؤقتاً"),
		annexAddressee,
		annex14Decision,
		annex14Narrative,
		bodyText("عليه ، يرجى التكرم بمراجعة إدارة المدرسة خلال مدة الفصل، لمناقشة موضوع الطالب واستكمال بقية الاجراءات."),
		committeeSignatures,
		recipientBlock,
	},
}

func annex3Article(in input) Section {
	return section(SectionBody,
		line(
			text("عملاً بالمادة رقم ("),
			blank("annex3_articleNo", in.data.Annex3ArticleNo),
			text(") من لائحة شؤون الطلاب بالمدارس الحكومية ، نفيدكم بأن إدارة المدرسة قد قامت بتقديم النصح للطالب ، وذلك بسبب :"),
		),
	)
}

func annex4LetterReference(in input) Section {
	return section(SectionBody,
		line(
			text("إلحاقاً برسالتنا رقم ("),
			blank("annex4_letterNo", in.data.Annex4LetterNo),
			text(") بتاريخ :"),
			blank("annex4_letterDate", in.data.Annex4LetterDate),
			text("، بشأن"),
			blank("annex4_regarding", in.data.Annex4Regarding),
			text("، وعملاً بالمادة ("),
			blank("annex4_articleNo", in.data.Annex4ArticleNo),
			text(") من لائحة شؤون الطلاب، نفيدكم بأن لجنة شؤون الطلاب قد قامت بتنبيه الطالب، وذلك بسبب :"),
		),
	)
}

func annex5LetterReferences(in input) Section {
	return section(SectionBody,
		line(
			text("إلحاقاً برسالتنا رقم ("),
			blank("annex5_letter1No", in.data.Annex5Letter1No),
			text(") بتاريخ :"),
			blank("annex5_letter1Date", in.data.Annex5Letter1Date),
			text("، وبرسالتنا رقم ("),
			blank("annex5_letter2No", in.data.Annex5Letter2No),
			text(") بتاريخ :"),
			blank("annex5_letter2Date", in.data.Annex5Letter2Date),
			text("بشأن"),
		),
		line(
			text("وعملاً بالمادة ("),
			blank("annex5_articleNo", in.data.Annex5ArticleNo),
			text(") من لائحة شؤون الطلاب، نفيدكم بأن إدارة المدرسة قد أنذرت الطالب المذكور، وذلك بسبب :"),
		),
	)
}

// annex6Attendance records the guardian's attendance for the pledge session.
func annex6Attendance(in input) Section {
	return section(SectionBody,
		line(
			text("حضر إلى المدرسة الفاضل / الفاضلة :"),
			blank("guardianName", in.data.GuardianName),
			text("الرقم المدني ("),
			blank("guardianCivilId", in.data.GuardianCivilID),
			text(")"),
		),
		line(
			text("ولي أمر الطالب / الطالبة :"),
			blank("studentName", in.data.StudentName),
			text("المسجل بالصف :"),
			blank("grade", in.data.Grade),
		),
		line(
			text("يوم : ............. الموافق :"),
			blank("incidentDate", in.data.IncidentDate),
			text("، لمناقشة موضوع الإنذار الموجه إلى ابنه."),
		),
	)
}

func annex14Decision(in input) Section {
	return section(SectionBody,
		line(
			text("إلحاقاً برسالتنا رقم ("),
			blank("annex14_letter1No", in.data.Annex14Letter1No),
			text(") بتاريخ :"),
			blank("annex14_letter1Date", in.data.Annex14Letter1Date),
			text("، بشأن"),
			blank("annex14_letter1Subj", in.data.Annex14Letter1Subject),
		),
		line(
			text("وبرسالتنا رقم ("),
			blank("annex14_letter2No", in.data.Annex14Letter2No),
			text(") بتاريخ :"),
			blank("annex14_letter2Date", in.data.Annex14Letter2Date),
			text("بشأن"),
			blank("annex14_letter2Subj", in.data.Annex14Letter2Subject),
		),
		line(
			text("وعملاً بالمادة ("),
			blank("annex14_articleNo", in.data.Annex14ArticleNo),
			text(") من لائحة شؤون الطلاب، نفيدكم بأن لجنة شؤون الطلاب قد قررت فصل الطالب المذكور مؤقتاً لمدة ("),
			blank("annex14_suspensionDays", in.data.Annex14SuspensionDays),
			text(") أيام ، وذلك بسبب إتيان السلوكيات الآتية :"),
		),
	)
}

// annex14Narrative is a single free-text behavior narrative; the temporary
// suspension decision carries no per-reason checkboxes.
func annex14Narrative(in input) Section {
	return section(SectionReasons,
		line(blank("behaviorDetails", in.data.BehaviorDetails)),
	)
}
