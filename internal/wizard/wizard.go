// internal/wizard/wizard.go
//
// The top-level onboarding wizard: a cursor over a fixed ordered list of
// stages. All transitions are total functions over the cursor; requests
// outside the stage range are clamped or ignored, never errors.

package wizard

import (
	"math"
	"strings"

	"github.com/ganghq/profile360/internal/draft"
)

// Stage is one node in the wizard's linear sequence.
type Stage int

const (
	StageWelcome Stage = iota
	StageShare360
	StageBasicInfo
	StageProfessional
	StageQuote
	StageIntro
	StageLocation
	StageJoy
	StageSocial
	StageContent
	StageLifeStories
	StageComplete
)

// TotalStages is the fixed length of the onboarding sequence.
const TotalStages = 12

// completionMilestone is the stage index at which the wizard reads 100%.
// Reaching Life Stories is the terminal review gate, so progress maxes
// out there even though the Complete stage still follows.
const completionMilestone = int(StageLifeStories)

// String returns a human-readable name for the stage.
func (s Stage) String() string {
	switch s {
	case StageWelcome:
		return "Welcome"
	case StageShare360:
		return "Share Your 360"
	case StageBasicInfo:
		return "Basic Info"
	case StageProfessional:
		return "Professional Info"
	case StageQuote:
		return "Inspiring Quote"
	case StageIntro:
		return "Introduction"
	case StageLocation:
		return "Location"
	case StageJoy:
		return "Joy Outside Work"
	case StageSocial:
		return "Social Coordinates"
	case StageContent:
		return "Content Links"
	case StageLifeStories:
		return "Life Stories"
	case StageComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Wizard owns the current stage cursor.
type Wizard struct {
	cursor int
}

// New creates a wizard positioned at the Welcome stage.
func New() *Wizard {
	return &Wizard{}
}

// Current resolves the cursor to a stage, defaulting to Welcome if the
// cursor is ever out of range.
func (w *Wizard) Current() Stage {
	if w.cursor < 0 || w.cursor >= TotalStages {
		return StageWelcome
	}
	return Stage(w.cursor)
}

// Step returns the raw cursor index.
func (w *Wizard) Step() int {
	return w.cursor
}

// Next advances one stage, saturating at the last index. Validation is
// each stage's own responsibility before it calls Next.
func (w *Wizard) Next() {
	if w.cursor < TotalStages-1 {
		w.cursor++
	}
}

// Prev steps back one stage, saturating at zero.
func (w *Wizard) Prev() {
	if w.cursor > 0 {
		w.cursor--
	}
}

// GoTo jumps to an absolute stage index. Out-of-range requests are
// ignored.
func (w *Wizard) GoTo(step int) {
	if step >= 0 && step < TotalStages {
		w.cursor = step
	}
}

// ProgressPercent maps the cursor to the display percentage: linear up
// to the Life Stories milestone, clamped to 100 from there on.
func (w *Wizard) ProgressPercent() int {
	if w.cursor >= completionMilestone {
		return 100
	}
	return int(math.Round(float64(w.cursor) / float64(completionMilestone) * 100))
}

// CompletionPercentage reports how much of the core profile has been
// filled in, as a percentage over the ten identity and narrative fields
// shown on the Complete stage.
func CompletionPercentage(d *draft.Draft) int {
	fields := []string{
		d.FirstName,
		d.LastName,
		d.CurrentOrganization,
		d.CurrentRole,
		d.InspiringQuote,
		d.JoyOutsideWork,
		d.Introduction,
		d.Locality,
		d.City,
		d.Pincode,
	}
	filled := 0
	for _, field := range fields {
		if strings.TrimSpace(field) != "" {
			filled++
		}
	}
	return int(math.Round(float64(filled) / float64(len(fields)) * 100))
}
