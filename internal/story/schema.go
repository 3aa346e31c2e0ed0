// internal/story/schema.go
//
// Per-slot schema descriptors for the confirmation screens. The three
// slots share one generic renderer; these descriptors are what makes
// each slot's form different.

package story

import "github.com/ganghq/profile360/internal/draft"

// FieldKind tells the renderer what widget a field needs.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldTextArea
	FieldTagList  // free-form list entered one item at a time
	FieldEntryset // repeated structured rows (schools, jobs, ...)
)

// FieldSpec describes one field of a confirmation form.
type FieldSpec struct {
	Key         string
	Label       string
	Placeholder string
	Kind        FieldKind
	Required    bool
	MaxWords    int // non-zero for word-bounded fields
	MaxItems    int // non-zero for capped lists
}

// Confirm1Fields returns the first confirmation form's schema for slot.
func Confirm1Fields(slot draft.Slot) []FieldSpec {
	summary := func(placeholder string) FieldSpec {
		return FieldSpec{
			Key:         "summary",
			Label:       "Summary",
			Placeholder: placeholder,
			Kind:        FieldTextArea,
			Required:    true,
			MaxWords:    draft.MaxSummaryWords,
		}
	}
	switch slot {
	case draft.SlotEarlyLife:
		return []FieldSpec{
			summary("A brief summary of your early life..."),
			{Key: "bornIn", Label: "Born In", Placeholder: "City where you were born", Kind: FieldText, Required: true},
			{Key: "hometown", Label: "Hometown", Placeholder: "Your hometown", Kind: FieldText, Required: true},
			{Key: "schools", Label: "Schools", Kind: FieldEntryset, Required: true},
		}
	case draft.SlotProfessional:
		return []FieldSpec{
			summary("A brief summary of your professional journey..."),
			{Key: "company", Label: "First Company", Placeholder: "Company name", Kind: FieldText, Required: true},
			{Key: "titles", Label: "Job Titles", Kind: FieldTagList, Required: true},
		}
	case draft.SlotCurrent:
		return []FieldSpec{
			summary("A brief summary of your current life..."),
			{Key: "currentCities", Label: "Current Cities", Placeholder: "Add a city and press Enter", Kind: FieldTagList, Required: true},
		}
	default:
		panic("story: unknown slot " + string(slot))
	}
}

// Confirm2Fields returns the second confirmation form's schema for slot.
func Confirm2Fields(slot draft.Slot) []FieldSpec {
	tags := FieldSpec{
		Key:      "tags",
		Label:    "Tags",
		Kind:     FieldTagList,
		Required: true,
		MaxItems: draft.MaxTags,
	}
	switch slot {
	case draft.SlotEarlyLife:
		return []FieldSpec{
			{Key: "universities", Label: "Universities", Kind: FieldEntryset, Required: true},
			tags,
		}
	case draft.SlotProfessional:
		return []FieldSpec{
			{Key: "subsequentJobs", Label: "Subsequent Jobs", Kind: FieldEntryset},
			tags,
		}
	case draft.SlotCurrent:
		return []FieldSpec{
			{Key: "organizations", Label: "Organizations", Kind: FieldEntryset, Required: true},
			{Key: "travelCities", Label: "Travel Cities", Kind: FieldTagList},
			tags,
		}
	default:
		panic("story: unknown slot " + string(slot))
	}
}
