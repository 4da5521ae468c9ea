package compose

import "github.com/ibdaa-school/docgen-api/internal/models"

// FragmentKind discriminates the inline pieces a document line is made of.
type FragmentKind string

const (
	// FragmentText is fixed template prose.
	FragmentText FragmentKind = "text"
	// FragmentBlank is a dotted placeholder bound to a draft field. An empty
	// value renders as a blank underline, never as an error.
	FragmentBlank FragmentKind = "blank"
	// FragmentCheckbox renders as ( ✔ ) or (   ).
	FragmentCheckbox FragmentKind = "checkbox"
	// FragmentSquareBox renders as a square, filled when checked.
	FragmentSquareBox FragmentKind = "squarebox"
	// FragmentImage is a branding asset slot. An absent asset renders as
	// empty space.
	FragmentImage FragmentKind = "image"
)

// Fragment is one inline piece of a line.
type Fragment struct {
	Kind    FragmentKind `json:"kind"`
	Text    string       `json:"text,omitempty"`
	Field   string       `json:"field,omitempty"`
	Value   string       `json:"value,omitempty"`
	Checked bool         `json:"checked,omitempty"`
	Asset   string       `json:"asset,omitempty"`
}

// Line is an ordered run of fragments laid out together.
type Line struct {
	Fragments []Fragment `json:"fragments"`
}

// SectionKind names the block-level role of a section.
type SectionKind string

const (
	SectionHeader         SectionKind = "header"
	SectionTitle          SectionKind = "title"
	SectionSalutation     SectionKind = "salutation"
	SectionBody           SectionKind = "body"
	SectionReasons        SectionKind = "reasons"
	SectionDeadline       SectionKind = "deadline"
	SectionPledge         SectionKind = "pledge"
	SectionSignatures     SectionKind = "signatures"
	SectionRecipient      SectionKind = "recipient"
	SectionAcknowledgment SectionKind = "acknowledgment"
	SectionFootnote       SectionKind = "footnote"
	SectionNotFound       SectionKind = "not_found"
)

// Section is one block of the printable document.
type Section struct {
	Kind  SectionKind `json:"kind"`
	Lines []Line      `json:"lines"`
}

// Document is the renderable output of the composer: a deterministic,
// side-effect-free description of one printable page.
type Document struct {
	Variant  models.DocumentVariant `json:"variant"`
	Title    string                 `json:"title"`
	Found    bool                   `json:"found"`
	Sections []Section              `json:"sections"`
}
