package service

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibdaa-school/docgen-api/internal/models"
	"github.com/ibdaa-school/docgen-api/pkg/config"
	appErrors "github.com/ibdaa-school/docgen-api/pkg/errors"
)

func relayFixture(t *testing.T) (*RelayService, *workspaceFixture) {
	t.Helper()
	fx := loadedWorkspace(t)
	cfg := config.RelayConfig{
		CountryCode:  "968",
		LocalDigits:  8,
		DeepLinkBase: "https://api.whatsapp.com/send",
	}
	return NewRelayService(fx.svc, cfg, "إدارة مدرسة الإبداع للبنين", nil), fx
}

func TestBuildHandoffPrefixesLocalNumber(t *testing.T) {
	relay, fx := relayFixture(t)

	_, err := fx.svc.UpdateFields(map[string]interface{}{
		"studentName":   "أحمد علي",
		"guardianPhone": "99123456",
	})
	require.NoError(t, err)

	handoff, err := relay.BuildHandoff()
	require.NoError(t, err)
	require.Equal(t, "96899123456", handoff.Phone)
	require.True(t, strings.HasPrefix(handoff.DeepLink, "https://api.whatsapp.com/send?phone=96899123456&text="), handoff.DeepLink)
	require.Contains(t, handoff.Message, "أحمد علي")
	require.Contains(t, handoff.Message, "إدارة مدرسة الإبداع للبنين")
	require.NotEmpty(t, handoff.Notice)
	require.NotEmpty(t, handoff.Filename)

	parsed, err := url.Parse(handoff.DeepLink)
	require.NoError(t, err)
	require.Equal(t, handoff.Message, parsed.Query().Get("text"))
}

func TestBuildHandoffStripsFormatting(t *testing.T) {
	relay, fx := relayFixture(t)

	_, err := fx.svc.UpdateFields(map[string]interface{}{"guardianPhone": "+968 9912-3456"})
	require.NoError(t, err)

	handoff, err := relay.BuildHandoff()
	require.NoError(t, err)
	// Eleven digits survive stripping, so no extra prefix is applied.
	require.Equal(t, "96899123456", handoff.Phone)
}

func TestBuildHandoffRequiresPhone(t *testing.T) {
	relay, _ := relayFixture(t)

	_, err := relay.BuildHandoff()
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestBuildHandoffGatedUntilLoaded(t *testing.T) {
	fx := newWorkspaceFixture(t)
	relay := NewRelayService(fx.svc, config.RelayConfig{CountryCode: "968", LocalDigits: 8, DeepLinkBase: "https://api.whatsapp.com/send"}, "المدرسة", nil)

	_, err := relay.BuildHandoff()
	require.ErrorIs(t, err, appErrors.ErrNotLoaded)

	_, err = fx.svc.LoadAll(context.Background())
	require.NoError(t, err)
	_, err = fx.svc.UpdateFields(map[string]interface{}{"guardianPhone": "91234567"})
	require.NoError(t, err)

	handoff, err := relay.BuildHandoff()
	require.NoError(t, err)
	require.Equal(t, "96891234567", handoff.Phone)
	require.Equal(t, models.VariantInvitationGeneral.Title(), variantTitleIn(handoff.Message))
}

func variantTitleIn(message string) string {
	start := strings.Index(message, "\"")
	if start < 0 {
		return ""
	}
	rest := message[start+1:]
	end := strings.Index(rest, "\"")
	if end < 0 {
		return ""
	}
	return rest[:end]
}
