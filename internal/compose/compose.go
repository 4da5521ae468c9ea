// Package compose turns a document variant and an action draft into a
// renderable document tree. Composition is a pure function of its inputs:
// no I/O, no clock, no randomness.
package compose

import "github.com/ibdaa-school/docgen-api/internal/models"

// Letterhead carries the fixed identity lines printed on annex documents.
type Letterhead struct {
	Country     string
	Ministry    string
	Directorate string
	School      string
}

// DefaultLetterhead returns the standing ministry identity.
func DefaultLetterhead(directorate, school string) Letterhead {
	return Letterhead{
		Country:     "سلطنة عمان",
		Ministry:    "وزارة التعليم",
		Directorate: directorate,
		School:      school,
	}
}

// Composer maps (variant, draft, settings) to a document tree.
type Composer struct {
	letterhead Letterhead
}

// New constructs a Composer with the provided letterhead.
func New(letterhead Letterhead) *Composer {
	return &Composer{letterhead: letterhead}
}

// Compose builds the printable document for the variant. An unrecognised
// variant yields the "document not found" placeholder: a terminal display
// state, not an error.
func (c *Composer) Compose(variant models.DocumentVariant, data models.ActionData, settings models.SchoolSettings) Document {
	builders, ok := variantLayouts[variant]
	if !ok {
		return Document{
			Variant: variant,
			Title:   variant.Title(),
			Found:   false,
			Sections: []Section{
				section(SectionNotFound, line(text("الوثيقة غير موجودة"))),
			},
		}
	}

	in := input{data: data, settings: settings, letterhead: c.letterhead}
	sections := make([]Section, 0, len(builders))
	for _, build := range builders {
		sections = append(sections, build(in))
	}

	return Document{
		Variant:  variant,
		Title:    variant.Title(),
		Found:    true,
		Sections: sections,
	}
}
