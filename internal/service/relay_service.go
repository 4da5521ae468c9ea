package service

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/ibdaa-school/docgen-api/pkg/config"
	appErrors "github.com/ibdaa-school/docgen-api/pkg/errors"
)

// RelayHandoff is everything the caller needs to hand a document to the
// guardian over the messaging deep link. The attachment itself cannot be
// pushed through the link, so Notice tells the operator what to do manually.
type RelayHandoff struct {
	Phone    string `json:"phone"`
	DeepLink string `json:"deepLink"`
	Message  string `json:"message"`
	Notice   string `json:"notice"`
	Filename string `json:"filename"`
}

// RelayService builds messaging handoffs for the active draft.
type RelayService struct {
	workspace *WorkspaceService
	cfg       config.RelayConfig
	school    string
	logger    *zap.Logger
}

// NewRelayService constructs a relay service.
func NewRelayService(workspace *WorkspaceService, cfg config.RelayConfig, schoolName string, logger *zap.Logger) *RelayService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RelayService{workspace: workspace, cfg: cfg, school: schoolName, logger: logger}
}

// BuildHandoff normalises the guardian phone number and assembles the deep
// link. A bare local number gets the country code prefixed; anything longer
// is taken as already international.
func (s *RelayService) BuildHandoff() (RelayHandoff, error) {
	variant, draft, _, err := s.workspace.CurrentDocument()
	if err != nil {
		return RelayHandoff{}, err
	}

	phone := stripNonDigits(draft.GuardianPhone)
	if phone == "" {
		return RelayHandoff{}, appErrors.Clone(appErrors.ErrValidation, "يرجى إدخال رقم هاتف ولي الأمر")
	}
	if len(phone) == s.cfg.LocalDigits {
		phone = s.cfg.CountryCode + phone
	}

	message := fmt.Sprintf(
		"السلام عليكم ولي أمر الطالب: %s\n\nيرجى التكرم بالاطلاع على ملف \"%s\" المرفق أدناه.\n\nشاكرين تعاونكم،،\n%s",
		draft.StudentName, variant.Title(), s.school)

	deepLink := fmt.Sprintf("%s?phone=%s&text=%s", s.cfg.DeepLinkBase, phone, url.QueryEscape(message))

	filename, err := s.workspace.ExportFilename()
	if err != nil {
		return RelayHandoff{}, err
	}

	s.logger.Info("relay handoff built", zap.String("variant", string(variant)))
	return RelayHandoff{
		Phone:    phone,
		DeepLink: deepLink,
		Message:  message,
		Notice:   relayNotice,
		Filename: filename,
	}, nil
}

// The deep link only opens a chat; the rendered file has to be attached by
// hand. This text is surfaced to the operator before the link is followed.
const relayNotice = "تنبيه هام جداً:\n" +
	"سيقوم النظام الآن بفتح محادثة واتساب باستخدام الرابط العميق (API).\n\n" +
	"ملاحظة: بسبب قيود واتساب الأمنية، لا يمكن للبرنامج إرفاق الملف تلقائياً.\n\n" +
	"لإرسال الملف بنجاح:\n" +
	"1. قم بحفظ المستند (PDF) على جهازك.\n" +
	"2. سيفتح تطبيق واتساب تلقائياً.\n" +
	"3. قم بسحب ملف PDF وإفلاته داخل المحادثة يدوياً."

func stripNonDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
