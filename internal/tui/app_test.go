package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ganghq/profile360/internal/draft"
	"github.com/ganghq/profile360/internal/media"
	"github.com/ganghq/profile360/internal/story"
	"github.com/ganghq/profile360/internal/wizard"
)

func newTestApp(t *testing.T, opts ...AppOption) *App {
	t.Helper()
	baseOpts := []AppOption{WithThumbnailGenerator(media.NewSeededFrameSampler(7))}
	baseOpts = append(baseOpts, opts...)
	app, err := NewApp(t.TempDir(), baseOpts...)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app
}

func pressKey(t *testing.T, app *App, key string) tea.Cmd {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	model, cmd := app.Update(msg)
	if _, ok := model.(*App); !ok {
		t.Fatalf("unexpected model type: %T", model)
	}
	return cmd
}

func setFormValue(t *testing.T, form *stageForm, key, value string) {
	t.Helper()
	if form == nil {
		t.Fatalf("no active form")
	}
	for i := range form.fields {
		if form.fields[i].key == key {
			if form.fields[i].multiline {
				form.fields[i].area.SetValue(value)
			} else {
				form.fields[i].input.SetValue(value)
			}
			return
		}
	}
	t.Fatalf("form has no field %q", key)
}

func TestWelcomeThroughBasicInfo(t *testing.T) {
	app := newTestApp(t)
	if got := app.wizard.Current(); got != wizard.StageWelcome {
		t.Fatalf("expected welcome stage, got %s", got)
	}

	pressKey(t, app, "enter") // welcome -> share360
	pressKey(t, app, "enter") // share360 -> basic info
	if got := app.wizard.Current(); got != wizard.StageBasicInfo {
		t.Fatalf("expected basic info stage, got %s", got)
	}
	if app.form == nil {
		t.Fatalf("basic info should build a form")
	}

	// Validation blocks forward navigation until the names are present.
	app.form.focus = len(app.form.fields) - 1
	pressKey(t, app, "enter")
	if got := app.wizard.Current(); got != wizard.StageBasicInfo {
		t.Fatalf("invalid form must not advance, got %s", got)
	}
	if _, ok := app.form.errs["firstName"]; !ok {
		t.Fatalf("expected firstName error, got %v", app.form.errs)
	}

	setFormValue(t, app.form, "firstName", "Asha")
	setFormValue(t, app.form, "lastName", "Rao")
	app.form.focus = len(app.form.fields) - 1
	pressKey(t, app, "enter")
	if got := app.wizard.Current(); got != wizard.StageProfessional {
		t.Fatalf("expected professional stage, got %s", got)
	}
	if got := app.store.Draft().FirstName; got != "Asha" {
		t.Fatalf("draft first name = %q", got)
	}
}

func TestBackKeepsEnteredValues(t *testing.T) {
	app := newTestApp(t)
	app.goToStage(wizard.StageQuote)
	setFormValue(t, app.form, "inspiringQuote", "Make it count")

	pressKey(t, app, "esc")
	if got := app.wizard.Current(); got != wizard.StageProfessional {
		t.Fatalf("expected professional stage after back, got %s", got)
	}
	if got := app.store.Draft().InspiringQuote; got != "Make it count" {
		t.Fatalf("back must keep draft values, got %q", got)
	}

	app.goToStage(wizard.StageQuote)
	if got := app.form.fields[0].value(); got != "Make it count" {
		t.Fatalf("form should be prefilled from draft, got %q", got)
	}
}

func TestLocationValidation(t *testing.T) {
	app := newTestApp(t)
	app.goToStage(wizard.StageLocation)
	setFormValue(t, app.form, "locality", "Indiranagar")
	setFormValue(t, app.form, "city", "Bengaluru")
	setFormValue(t, app.form, "pincode", "56003")
	app.form.focus = len(app.form.fields) - 1
	pressKey(t, app, "enter")
	if got := app.wizard.Current(); got != wizard.StageLocation {
		t.Fatalf("bad pincode must not advance, got %s", got)
	}
	if msg := app.form.errs["pincode"]; !strings.Contains(msg, "6 digits") {
		t.Fatalf("pincode error = %q", msg)
	}

	setFormValue(t, app.form, "pincode", "560038")
	app.form.focus = len(app.form.fields) - 1
	pressKey(t, app, "enter")
	if got := app.wizard.Current(); got != wizard.StageJoy {
		t.Fatalf("expected joy stage, got %s", got)
	}
}

func TestLifeStoryTextFlow(t *testing.T) {
	app := newTestApp(t)
	app.goToStage(wizard.StageLifeStories)
	view := app.storyView

	pressKey(t, app, "enter") // select early life
	if got := view.ctrl.SubStage(); got != story.StagePrompts {
		t.Fatalf("expected prompts, got %s", got)
	}
	pressKey(t, app, "enter") // prompts reviewed
	pressKey(t, app, "down")  // video -> audio
	pressKey(t, app, "down")  // audio -> text
	pressKey(t, app, "enter")
	if got := view.ctrl.SubStage(); got != story.StageConfirm1 {
		t.Fatalf("text should skip to confirm1, got %s", got)
	}
	if view.form == nil {
		t.Fatalf("confirm1 should build a form")
	}

	setFormValue(t, view.form, "storyText", "The long version of my story.")
	setFormValue(t, view.form, "summary", "Grew up by the sea")
	setFormValue(t, view.form, "bornIn", "Kochi")
	setFormValue(t, view.form, "hometown", "Kochi")
	setFormValue(t, view.form, "schools", "Bishop's, Kochi")
	if cmd := view.submitConfirm1(); cmd != nil {
		t.Fatalf("confirm1 should not produce a command")
	}
	if got := view.ctrl.SubStage(); got != story.StageConfirm2 {
		t.Fatalf("expected confirm2, got %s; errors %v", got, view.form.errs)
	}

	setFormValue(t, view.form, "universities", "IISc, Physics, Bengaluru")
	setFormValue(t, view.form, "tags", "books, sailing")
	cmd := view.submitConfirm2()
	if cmd == nil {
		t.Fatalf("confirm2 should submit the story; errors %v", view.form.errs)
	}
	msg := cmd()
	submitted, ok := msg.(storySubmittedMsg)
	if !ok {
		t.Fatalf("expected storySubmittedMsg, got %T", msg)
	}
	if submitted.err != nil {
		t.Fatalf("story submission failed: %v", submitted.err)
	}
	app.Update(msg)

	if got := view.ctrl.SubStage(); got != story.StageSelection {
		t.Fatalf("expected return to selection, got %s", got)
	}
	rec := app.store.Story(draft.SlotEarlyLife)
	if rec.Summary != "Grew up by the sea" {
		t.Fatalf("summary = %q", rec.Summary)
	}
	if rec.Text != "The long version of my story." {
		t.Fatalf("text = %q", rec.Text)
	}
	if !view.ctrl.Complete(draft.SlotEarlyLife) {
		t.Fatalf("slot should be complete")
	}
	if _, err := os.Stat(submitted.receipt.Path); err != nil {
		t.Fatalf("submission document missing: %v", err)
	}
}

func TestLifeStoryRecordingAndProcessing(t *testing.T) {
	app := newTestApp(t)
	app.goToStage(wizard.StageLifeStories)
	view := app.storyView

	pressKey(t, app, "enter") // select early life
	pressKey(t, app, "enter") // prompts
	pressKey(t, app, "down")  // audio
	pressKey(t, app, "enter")
	if got := view.ctrl.SubStage(); got != story.StageInput {
		t.Fatalf("expected input stage, got %s", got)
	}

	pressKey(t, app, "r")
	if !view.recording {
		t.Fatalf("recording should have started")
	}
	pressKey(t, app, "s")
	if got := view.ctrl.SubStage(); got != story.StageUploadComplete {
		t.Fatalf("expected upload complete, got %s", got)
	}

	cmd := pressKey(t, app, "enter")
	if cmd == nil {
		t.Fatalf("processing should schedule timers")
	}
	if got := view.ctrl.SubStage(); got != story.StageProcessing {
		t.Fatalf("expected processing, got %s", got)
	}

	epoch := 1
	app.Update(storyTickMsg{epoch: epoch})
	if got := view.ctrl.ProcessingPercent(); got != story.ProcessingTickStep {
		t.Fatalf("processing pct = %d", got)
	}
	app.Update(storyTickMsg{epoch: epoch - 1})
	if got := view.ctrl.ProcessingPercent(); got != story.ProcessingTickStep {
		t.Fatalf("stale tick must be ignored, pct = %d", got)
	}

	app.Update(storyRedirectMsg{epoch: epoch})
	if got := view.ctrl.SubStage(); got != story.StageConfirm1 {
		t.Fatalf("audio should land on confirm1, got %s", got)
	}
	app.Update(storyRedirectMsg{epoch: epoch})
	if got := view.ctrl.SubStage(); got != story.StageConfirm1 {
		t.Fatalf("duplicate redirect must be ignored, got %s", got)
	}
}

func TestBackDisabledDuringUpload(t *testing.T) {
	app := newTestApp(t)
	app.goToStage(wizard.StageLifeStories)
	view := app.storyView

	pressKey(t, app, "enter")
	pressKey(t, app, "enter")
	pressKey(t, app, "enter") // video
	pressKey(t, app, "r")
	pressKey(t, app, "s")
	if got := view.ctrl.SubStage(); got != story.StageUploadComplete {
		t.Fatalf("expected upload complete, got %s", got)
	}
	pressKey(t, app, "esc")
	if got := view.ctrl.SubStage(); got != story.StageUploadComplete {
		t.Fatalf("esc must not leave upload complete, got %s", got)
	}
	if got := app.wizard.Current(); got != wizard.StageLifeStories {
		t.Fatalf("esc must not leave the life stories stage, got %s", got)
	}
}

func TestSelectionContinueAdvancesWizard(t *testing.T) {
	app := newTestApp(t)
	app.goToStage(wizard.StageLifeStories)
	if got := app.storyView.ctrl.SelectionCTA(); got != "Skip for now" {
		t.Fatalf("CTA = %q", got)
	}
	pressKey(t, app, "c")
	if got := app.wizard.Current(); got != wizard.StageComplete {
		t.Fatalf("expected complete stage, got %s", got)
	}
}

func TestSubmitDraftFromCompleteStage(t *testing.T) {
	app := newTestApp(t)
	first := "Asha"
	app.store.ApplyProfile(draft.ProfileUpdate{FirstName: &first})
	app.goToStage(wizard.StageComplete)

	cmd := pressKey(t, app, "enter")
	if cmd == nil {
		t.Fatalf("expected submission command")
	}
	msg := cmd()
	app.Update(msg)
	if !app.submitted {
		t.Fatalf("draft should be marked submitted")
	}
	if _, err := os.Stat(app.receipt.Path); err != nil {
		t.Fatalf("submission document missing: %v", err)
	}
	view := app.View()
	if !strings.Contains(view, app.receipt.ID) {
		t.Fatalf("view should show the receipt id")
	}
}

func TestViewRendersEveryStage(t *testing.T) {
	app := newTestApp(t)
	for step := 0; step < wizard.TotalStages; step++ {
		app.goToStage(wizard.Stage(step))
		if out := app.View(); strings.TrimSpace(out) == "" {
			t.Fatalf("empty view at stage %s", wizard.Stage(step))
		}
	}
}
