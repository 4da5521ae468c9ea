package models

// SchoolSettings holds the branding assets stamped onto documents. Each
// image is a base64 data payload, nil until configured. Absent images render
// as empty space.
type SchoolSettings struct {
	MinistryLogo           *string `json:"ministryLogo"`
	SchoolStamp            *string `json:"schoolStamp"`
	PrincipalSignature     *string `json:"principalSignature"`
	CommitteeHeadSignature *string `json:"committeeHeadSignature"`
}

// Asset returns the named image payload, or empty when unset.
func (s SchoolSettings) Asset(key string) string {
	var v *string
	switch key {
	case AssetMinistryLogo:
		v = s.MinistryLogo
	case AssetSchoolStamp:
		v = s.SchoolStamp
	case AssetPrincipalSignature:
		v = s.PrincipalSignature
	case AssetCommitteeHeadSignature:
		v = s.CommitteeHeadSignature
	}
	if v == nil {
		return ""
	}
	return *v
}

// Branding asset keys.
const (
	AssetMinistryLogo           = "ministryLogo"
	AssetSchoolStamp            = "schoolStamp"
	AssetPrincipalSignature     = "principalSignature"
	AssetCommitteeHeadSignature = "committeeHeadSignature"
)
