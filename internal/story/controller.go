// internal/story/controller.go
//
// The life-story sub-flow controller. Each invocation walks one story
// slot through its capture pipeline. The pipeline is not fixed-length:
// it branches on the chosen input method (text skips straight to the
// confirmation forms, audio skips the thumbnail stage), and
// back-navigation reconstructs the prior state from the same branch
// rules instead of decrementing a counter.
//
// The stage graph is closed and statically known, so calling a
// transition from the wrong sub-stage, or with an unknown slot, is a
// programming error and panics rather than being silently absorbed.

package story

import (
	"fmt"
	"time"

	"github.com/ganghq/profile360/internal/draft"
)

// SubStage is one node in the sub-flow's state graph.
type SubStage int

const (
	StageSelection SubStage = iota
	StagePrompts
	StageInputMethod
	StageInput
	StageUploadComplete
	StageProcessing
	StageThumbnail
	StageConfirm1
	StageConfirm2
)

// String returns a human-readable name for the sub-stage.
func (s SubStage) String() string {
	switch s {
	case StageSelection:
		return "selection"
	case StagePrompts:
		return "prompts"
	case StageInputMethod:
		return "input method"
	case StageInput:
		return "input"
	case StageUploadComplete:
		return "upload complete"
	case StageProcessing:
		return "processing"
	case StageThumbnail:
		return "thumbnail"
	case StageConfirm1:
		return "confirmation 1"
	case StageConfirm2:
		return "confirmation 2"
	default:
		return "unknown"
	}
}

// Processing simulation timing. The progress bar and the auto-redirect
// run on independent schedules: the bar reaches 100% at ~5.0s while the
// redirect fires at 5.5s, matching the product's pacing.
const (
	ProcessingTickInterval  = 100 * time.Millisecond
	ProcessingTickStep      = 2
	ProcessingRedirectDelay = 5500 * time.Millisecond
)

// Controller manages navigation across one story slot's capture
// pipeline. A zero slot means the controller sits at the selection menu.
type Controller struct {
	store    *draft.Store
	slot     draft.Slot
	subStage SubStage

	// processingEpoch is the cancellation token for the processing
	// simulation: timers carry the epoch they were started under, and
	// stale ticks are ignored.
	processingEpoch int
	processingPct   int
}

// NewController creates a controller at the selection menu.
func NewController(store *draft.Store) *Controller {
	return &Controller{store: store, subStage: StageSelection}
}

// Slot returns the selected story slot, empty at the selection menu.
func (c *Controller) Slot() draft.Slot {
	return c.slot
}

// SubStage returns the active sub-stage.
func (c *Controller) SubStage() SubStage {
	return c.subStage
}

// ActiveStory returns the record for the selected slot.
func (c *Controller) ActiveStory() *draft.StoryRecord {
	if c.slot == "" {
		panic("story: no slot selected")
	}
	return c.store.Story(c.slot)
}

func (c *Controller) mustBe(stage SubStage) {
	if c.subStage != stage {
		panic(fmt.Sprintf("story: transition requires sub-stage %s, at %s", stage, c.subStage))
	}
}

// SelectStory picks a slot from the selection menu and opens its
// prompt-review screen.
func (c *Controller) SelectStory(slot draft.Slot) {
	c.mustBe(StageSelection)
	if !slot.Valid() {
		panic("story: unknown slot " + string(slot))
	}
	c.slot = slot
	c.subStage = StagePrompts
}

// GoToInputMethodSelection moves from the prompt review to the
// input-method choice.
func (c *Controller) GoToInputMethodSelection() {
	c.mustBe(StagePrompts)
	c.subStage = StageInputMethod
}

// SelectInputMethod records the chosen method on the active story and
// branches: video and audio continue to the capture screen, text skips
// straight to the first confirmation form.
func (c *Controller) SelectInputMethod(method draft.InputMethod) {
	c.mustBe(StageInputMethod)
	switch method {
	case draft.InputVideo, draft.InputAudio, draft.InputText:
	default:
		panic("story: unknown input method " + string(method))
	}
	c.store.ApplyStory(c.slot, draft.StoryUpdate{InputMethod: &method})
	if method == draft.InputText {
		c.subStage = StageConfirm1
	} else {
		c.subStage = StageInput
	}
}

// GoToUploadComplete stores the finalized recording on the active story
// and moves to the upload-complete interstitial.
func (c *Controller) GoToUploadComplete(ref draft.MediaRef) {
	c.mustBe(StageInput)
	switch c.ActiveStory().InputMethod {
	case draft.InputVideo:
		c.store.ApplyStory(c.slot, draft.StoryUpdate{VideoRef: &ref})
	case draft.InputAudio:
		c.store.ApplyStory(c.slot, draft.StoryUpdate{AudioRef: &ref})
	default:
		panic("story: upload requires a media input method")
	}
	c.subStage = StageUploadComplete
}

// GoToProcessing enters the processing simulation and returns the epoch
// that this run's timers must carry. Re-entry always restarts the
// progress from zero; timers from an earlier run become stale.
func (c *Controller) GoToProcessing() int {
	c.mustBe(StageUploadComplete)
	c.subStage = StageProcessing
	c.processingEpoch++
	c.processingPct = 0
	return c.processingEpoch
}

// AdvanceProcessing applies one display tick for the given epoch.
// Returns the current percentage and whether the tick was accepted;
// stale epochs and ticks outside the processing sub-stage are ignored.
func (c *Controller) AdvanceProcessing(epoch int) (int, bool) {
	if epoch != c.processingEpoch || c.subStage != StageProcessing {
		return c.processingPct, false
	}
	if c.processingPct < 100 {
		c.processingPct += ProcessingTickStep
		if c.processingPct > 100 {
			c.processingPct = 100
		}
	}
	return c.processingPct, true
}

// ProcessingPercent returns the simulated processing progress.
func (c *Controller) ProcessingPercent() int {
	return c.processingPct
}

// FinishProcessing handles the one-shot redirect timer. For video the
// flow continues to thumbnail selection; audio has no thumbnail stage,
// so it re-delegates directly to the first confirmation form. Reports
// whether the transition happened.
func (c *Controller) FinishProcessing(epoch int) bool {
	if epoch != c.processingEpoch || c.subStage != StageProcessing {
		return false
	}
	if c.ActiveStory().InputMethod == draft.InputVideo {
		c.subStage = StageThumbnail
	} else {
		c.subStage = StageConfirm1
	}
	return true
}

// GoToConfirmation stores the chosen thumbnail and moves to the first
// confirmation form.
func (c *Controller) GoToConfirmation(thumbnail string) {
	c.mustBe(StageThumbnail)
	c.store.ApplyStory(c.slot, draft.StoryUpdate{Thumbnail: &thumbnail})
	c.subStage = StageConfirm1
}

// BackTarget reconstructs the sub-stage a back-navigation would land on.
// The second return is false when back-navigation is disabled: the
// upload, processing and thumbnail screens are an irreversible
// capture/commit step.
func (c *Controller) BackTarget() (SubStage, bool) {
	switch c.subStage {
	case StagePrompts:
		return StageSelection, true
	case StageInputMethod:
		return StagePrompts, true
	case StageInput:
		return StageInputMethod, true
	case StageUploadComplete, StageProcessing, StageThumbnail:
		return c.subStage, false
	case StageConfirm1:
		// Reconstruct the forward skip: only video passed through the
		// thumbnail stage on the way here.
		if c.ActiveStory().InputMethod == draft.InputVideo {
			return StageThumbnail, true
		}
		return StageInputMethod, true
	case StageConfirm2:
		return StageConfirm1, true
	case StageSelection:
		return StageSelection, false
	default:
		panic(fmt.Sprintf("story: unknown sub-stage %d", int(c.subStage)))
	}
}

// Back applies the reconstructed back-navigation. Landing back on the
// selection menu clears the selected slot. Reports whether navigation
// happened.
func (c *Controller) Back() bool {
	target, ok := c.BackTarget()
	if !ok {
		return false
	}
	c.subStage = target
	if target == StageSelection {
		c.slot = ""
	}
	return true
}

// CompleteStory finishes the active slot's pipeline and returns to the
// selection menu.
func (c *Controller) CompleteStory() {
	c.mustBe(StageConfirm2)
	c.slot = ""
	c.subStage = StageSelection
}

// ProgressPercent maps the active sub-stage to its display anchor. The
// second return is false at the selection menu, where the wizard's own
// default percentage is shown instead.
func (c *Controller) ProgressPercent() (int, bool) {
	switch c.subStage {
	case StagePrompts:
		return 0, true
	case StageInputMethod:
		return 15, true
	case StageInput:
		return 30, true
	case StageUploadComplete:
		return 45, true
	case StageProcessing:
		return 55, true
	case StageThumbnail:
		return 65, true
	case StageConfirm1:
		return 75, true
	case StageConfirm2:
		return 90, true
	default:
		return 0, false
	}
}

// Complete reports whether a slot counts as done: its summary is
// non-empty after trimming. Nothing else is checked; the structured
// fields are enforced at confirmation submit time instead.
func (c *Controller) Complete(slot draft.Slot) bool {
	return draft.WordCount(c.store.Story(slot).Summary) > 0
}

// SelectionCTA returns the call-to-action label for the selection menu,
// based on how many slots are complete.
func (c *Controller) SelectionCTA() string {
	all := true
	some := false
	for _, slot := range draft.Slots() {
		if c.Complete(slot) {
			some = true
		} else {
			all = false
		}
	}
	switch {
	case all:
		return "Continue"
	case some:
		return "Continue (you can add more later)"
	default:
		return "Skip for now"
	}
}
