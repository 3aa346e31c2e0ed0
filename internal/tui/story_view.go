package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ganghq/profile360/internal/draft"
	"github.com/ganghq/profile360/internal/media"
	"github.com/ganghq/profile360/internal/story"
	"github.com/ganghq/profile360/internal/submit"
)

var (
	storyTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	storyBadgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	storySelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7B801"))
	storyWarnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	storyDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

type storyTickMsg struct {
	epoch int
}

type storyRedirectMsg struct {
	epoch int
}

type storySubmittedMsg struct {
	slot    draft.Slot
	receipt submit.Receipt
	err     error
}

var inputMethods = []draft.InputMethod{draft.InputVideo, draft.InputAudio, draft.InputText}

// storyView drives the life-story sub-flow. All navigation decisions
// live in the controller; the view owns widget state (menus, forms,
// thumbnails, recording flags) and rebuilds it after every transition.
type storyView struct {
	app  *App
	ctrl *story.Controller

	selection    int
	methodCursor int
	form         *stageForm

	recording bool
	paused    bool

	thumbnails []string
	thumbSel   int
	customIn   textinput.Model
	customMode bool
}

func newStoryView(app *App, ctrl *story.Controller) *storyView {
	custom := textinput.New()
	custom.Placeholder = "Path or URL to a custom thumbnail"
	custom.Prompt = "> "
	return &storyView{app: app, ctrl: ctrl, customIn: custom}
}

// AtSelection reports whether the sub-flow sits at its selection menu,
// where back-navigation belongs to the outer wizard.
func (v *storyView) AtSelection() bool {
	return v.ctrl.SubStage() == story.StageSelection
}

// ProgressPercent proxies the controller's sub-stage anchors.
func (v *storyView) ProgressPercent() (int, bool) {
	return v.ctrl.ProgressPercent()
}

// sync rebuilds widget state after a controller transition.
func (v *storyView) sync() {
	v.form = nil
	v.customMode = false
	switch v.ctrl.SubStage() {
	case story.StageSelection:
		v.recording = false
		v.paused = false
		v.thumbnails = nil
	case story.StageThumbnail:
		v.refreshThumbnails()
	case story.StageConfirm1:
		v.form = v.buildConfirm1Form()
	case story.StageConfirm2:
		v.form = v.buildConfirm2Form()
	}
}

func (v *storyView) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case storyTickMsg:
		pct, ok := v.ctrl.AdvanceProcessing(m.epoch)
		if ok && pct < 100 {
			return v.tickCmd(m.epoch)
		}
		return nil
	case storyRedirectMsg:
		if v.ctrl.FinishProcessing(m.epoch) {
			v.sync()
			v.app.setStatus(fmt.Sprintf("%s story processed", story.Title(v.ctrl.Slot())))
		}
		return nil
	case storySubmittedMsg:
		return v.handleStorySubmitted(m)
	case tea.KeyMsg:
		return v.handleKey(m)
	default:
		if v.form != nil {
			return v.form.Update(msg)
		}
		if v.customMode {
			var cmd tea.Cmd
			v.customIn, cmd = v.customIn.Update(msg)
			return cmd
		}
		return nil
	}
}

func (v *storyView) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if key == "esc" {
		return v.goBack()
	}

	switch v.ctrl.SubStage() {
	case story.StageSelection:
		return v.handleSelectionKey(key)
	case story.StagePrompts:
		if key == "enter" {
			v.ctrl.GoToInputMethodSelection()
			v.sync()
			v.app.logbook.Story(string(v.ctrl.Slot()), "prompts reviewed")
		}
	case story.StageInputMethod:
		return v.handleMethodKey(key)
	case story.StageInput:
		return v.handleInputKey(key)
	case story.StageUploadComplete:
		if key == "enter" {
			epoch := v.ctrl.GoToProcessing()
			v.sync()
			v.app.logbook.Story(string(v.ctrl.Slot()), "processing started")
			return tea.Batch(v.tickCmd(epoch), v.redirectCmd(epoch))
		}
	case story.StageThumbnail:
		return v.handleThumbnailKey(msg)
	case story.StageConfirm1:
		return v.handleConfirmKey(msg, 1)
	case story.StageConfirm2:
		return v.handleConfirmKey(msg, 2)
	}
	return nil
}

func (v *storyView) goBack() tea.Cmd {
	if v.ctrl.SubStage() == story.StageInput && v.recording {
		v.app.recorder.Release()
		v.recording = false
		v.paused = false
		v.app.setStatus("Recording discarded")
	}
	if v.ctrl.Back() {
		v.sync()
	} else {
		v.app.setStatus("You cannot go back from this step")
	}
	return nil
}

func (v *storyView) handleSelectionKey(key string) tea.Cmd {
	slots := draft.Slots()
	switch key {
	case "up", "k":
		if v.selection > 0 {
			v.selection--
		}
	case "down", "j":
		if v.selection < len(slots)-1 {
			v.selection++
		}
	case "enter":
		slot := slots[v.selection]
		v.ctrl.SelectStory(slot)
		v.sync()
		v.app.logbook.Story(string(slot), "selected")
	case "c":
		// The CTA: move on regardless of how many stories are told.
		v.app.goToStage(v.app.wizard.Current() + 1)
	}
	return nil
}

func (v *storyView) handleMethodKey(key string) tea.Cmd {
	switch key {
	case "up", "k":
		if v.methodCursor > 0 {
			v.methodCursor--
		}
	case "down", "j":
		if v.methodCursor < len(inputMethods)-1 {
			v.methodCursor++
		}
	case "enter":
		method := inputMethods[v.methodCursor]
		v.ctrl.SelectInputMethod(method)
		v.sync()
		v.app.logbook.Story(string(v.ctrl.Slot()), "input method: "+string(method))
	}
	return nil
}

func (v *storyView) handleInputKey(key string) tea.Cmd {
	switch key {
	case "r":
		if v.recording {
			v.app.setStatus("Already recording")
			return nil
		}
		method := v.ctrl.ActiveStory().InputMethod
		if err := v.app.recorder.Start(method); err != nil {
			v.app.setStatus(recorderErrorMessage(err))
			return nil
		}
		v.recording = true
		v.paused = false
		v.app.logbook.Story(string(v.ctrl.Slot()), "recording started")
	case "p":
		if !v.recording {
			return nil
		}
		if v.paused {
			if err := v.app.recorder.Resume(); err == nil {
				v.paused = false
			}
		} else {
			if err := v.app.recorder.Pause(); err == nil {
				v.paused = true
			}
		}
	case "s":
		if !v.recording {
			return nil
		}
		clip, err := v.app.recorder.Stop()
		if err != nil {
			v.app.setStatus(recorderErrorMessage(err))
			return nil
		}
		v.recording = false
		v.paused = false
		v.ctrl.GoToUploadComplete(clip.Ref())
		v.sync()
		v.app.logbook.Story(string(v.ctrl.Slot()), fmt.Sprintf("clip finalized · %s", clip.Duration))
	}
	return nil
}

func recorderErrorMessage(err error) string {
	switch {
	case errors.Is(err, media.ErrDeviceBusy):
		return "The camera/microphone is already in use. Stop the other recording first."
	case errors.Is(err, media.ErrDeviceUnavailable):
		return "Could not open the camera/microphone. Check the device and try again."
	case errors.Is(err, media.ErrNotRecording):
		return "No active recording"
	default:
		return fmt.Sprintf("Recording error: %v", err)
	}
}

func (v *storyView) handleThumbnailKey(msg tea.KeyMsg) tea.Cmd {
	if v.customMode {
		switch msg.String() {
		case "enter":
			chosen := strings.TrimSpace(v.customIn.Value())
			if chosen == "" {
				v.app.setStatus("Enter a thumbnail path or press esc")
				return nil
			}
			v.ctrl.GoToConfirmation(chosen)
			v.sync()
			return nil
		default:
			var cmd tea.Cmd
			v.customIn, cmd = v.customIn.Update(msg)
			return cmd
		}
	}
	switch msg.String() {
	case "left", "h":
		if v.thumbSel > 0 {
			v.thumbSel--
		}
	case "right", "l":
		if v.thumbSel < len(v.thumbnails)-1 {
			v.thumbSel++
		}
	case "r":
		v.refreshThumbnails()
	case "c":
		v.customMode = true
		v.customIn.SetValue("")
		return v.customIn.Focus()
	case "enter":
		if len(v.thumbnails) == 0 {
			v.app.setStatus("No thumbnails generated; refresh or add a custom one")
			return nil
		}
		v.ctrl.GoToConfirmation(v.thumbnails[v.thumbSel])
		v.sync()
	}
	return nil
}

func (v *storyView) refreshThumbnails() {
	rec := v.ctrl.ActiveStory()
	if rec.VideoRef == nil {
		v.thumbnails = nil
		return
	}
	thumbs, err := v.app.thumbs.Generate(rec.VideoRef.URI, media.DefaultThumbnailCount)
	if err != nil {
		v.app.setStatus(fmt.Sprintf("Thumbnail generation failed: %v", err))
		return
	}
	v.thumbnails = thumbs
	v.thumbSel = 0
}

func (v *storyView) handleConfirmKey(msg tea.KeyMsg, step int) tea.Cmd {
	switch msg.String() {
	case "tab":
		return v.form.nextField()
	case "shift+tab":
		return v.form.prevField()
	case "enter":
		// Enter moves through single-line fields; the focused textarea
		// keeps it as a newline. Submit from the last field.
		if field := &v.form.fields[v.form.focus]; field.multiline {
			return v.form.Update(msg)
		}
		if !v.form.atLastField() {
			return v.form.nextField()
		}
		if step == 1 {
			return v.submitConfirm1()
		}
		return v.submitConfirm2()
	default:
		return v.form.Update(msg)
	}
}

func (v *storyView) submitConfirm1() tea.Cmd {
	slot := v.ctrl.Slot()
	values := v.form.Values()
	form := story.Confirm1Form{
		Summary:   values["summary"],
		Thumbnail: strings.TrimSpace(values["thumbnail"]),
		BornIn:    values["bornIn"],
		Hometown:  values["hometown"],
	}
	switch slot {
	case draft.SlotEarlyLife:
		form.Schools = parseSchools(values["schools"])
	case draft.SlotProfessional:
		form.FirstJob = draft.JobEntry{
			Company: strings.TrimSpace(values["company"]),
			Titles:  splitList(values["titles"]),
		}
	case draft.SlotCurrent:
		form.CurrentCities = splitList(values["currentCities"])
	}
	if errs := v.ctrl.SubmitConfirm1(form); errs.Any() {
		v.form.SetErrors(errs)
		v.app.setStatus("Please fix the highlighted fields")
		return nil
	}
	// A written story has no media capture step; the narrative itself
	// is the committed text.
	if text, ok := values["storyText"]; ok && strings.TrimSpace(text) != "" {
		v.app.store.ApplyStory(slot, draft.StoryUpdate{Text: &text})
	}
	v.sync()
	v.app.logbook.Story(string(slot), "confirmation 1 accepted")
	return nil
}

func (v *storyView) submitConfirm2() tea.Cmd {
	slot := v.ctrl.Slot()
	values := v.form.Values()
	form := story.Confirm2Form{Tags: splitList(values["tags"])}
	switch slot {
	case draft.SlotEarlyLife:
		form.Universities = parseUniversities(values["universities"])
	case draft.SlotProfessional:
		form.SubsequentJobs = parseJobs(values["subsequentJobs"])
	case draft.SlotCurrent:
		form.Organizations = parseOrganizations(values["organizations"])
		form.TravelCities = splitList(values["travelCities"])
	}
	if errs := v.ctrl.SubmitConfirm2(form); errs.Any() {
		v.form.SetErrors(errs)
		v.app.setStatus("Please fix the highlighted fields")
		return nil
	}
	rec := v.ctrl.ActiveStory().Clone()
	submitter := v.app.submitter
	v.app.logbook.Story(string(slot), "submitting for review")
	return func() tea.Msg {
		receipt, err := submitter.SubmitStory(slot, rec)
		return storySubmittedMsg{slot: slot, receipt: receipt, err: err}
	}
}

func (v *storyView) handleStorySubmitted(msg storySubmittedMsg) tea.Cmd {
	if msg.err != nil {
		v.app.setStatus(fmt.Sprintf("Story submission failed: %v", msg.err))
		v.app.logError("Story %s submission failed: %v", msg.slot, msg.err)
		return nil
	}
	v.ctrl.CompleteStory()
	v.sync()
	v.app.setStatus(fmt.Sprintf("%s story submitted · receipt %s", story.Title(msg.slot), msg.receipt.ID))
	return nil
}

func (v *storyView) tickCmd(epoch int) tea.Cmd {
	return tea.Tick(story.ProcessingTickInterval, func(time.Time) tea.Msg {
		return storyTickMsg{epoch: epoch}
	})
}

func (v *storyView) redirectCmd(epoch int) tea.Cmd {
	return tea.Tick(story.ProcessingRedirectDelay, func(time.Time) tea.Msg {
		return storyRedirectMsg{epoch: epoch}
	})
}

// buildConfirm1Form materializes the first confirmation form from the
// slot's schema, prefilled from the draft record.
func (v *storyView) buildConfirm1Form() *stageForm {
	slot := v.ctrl.Slot()
	rec := v.ctrl.ActiveStory()
	var fields []formField
	if rec.InputMethod == draft.InputText {
		fields = append(fields,
			newAreaField("storyText", "Your Story", "Write your story here...", 0).
				withValue(rec.Text))
	}
	if rec.InputMethod == draft.InputVideo {
		fields = append(fields,
			newTextField("thumbnail", "Thumbnail", "Path or URL to the cover image").
				withValue(rec.Thumbnail).
				withHint("Replace the chosen still here if it doesn't fit"))
	}
	for _, spec := range story.Confirm1Fields(slot) {
		fields = append(fields, v.fieldFromSpec(spec, v.prefillConfirm1(spec.Key, rec)))
	}
	title := fmt.Sprintf("%s · Review & Confirm (1/2)", story.Title(slot))
	return newStageForm(title, "", fields...)
}

func (v *storyView) buildConfirm2Form() *stageForm {
	slot := v.ctrl.Slot()
	rec := v.ctrl.ActiveStory()
	var fields []formField
	for _, spec := range story.Confirm2Fields(slot) {
		fields = append(fields, v.fieldFromSpec(spec, v.prefillConfirm2(spec.Key, rec)))
	}
	title := fmt.Sprintf("%s · Review & Confirm (2/2)", story.Title(slot))
	return newStageForm(title, "", fields...)
}

func (v *storyView) fieldFromSpec(spec story.FieldSpec, value string) formField {
	var field formField
	switch spec.Kind {
	case story.FieldTextArea:
		field = newAreaField(spec.Key, spec.Label, spec.Placeholder, spec.MaxWords)
	case story.FieldTagList:
		field = newTextField(spec.Key, spec.Label, spec.Placeholder)
		hint := "Comma separated"
		if spec.MaxItems > 0 {
			hint = fmt.Sprintf("Comma separated · up to %d", spec.MaxItems)
		}
		field = field.withHint(hint)
	case story.FieldEntryset:
		field = newTextField(spec.Key, spec.Label, entrysetPlaceholder(spec.Key))
		field = field.withHint(entrysetHint(spec.Key))
	default:
		field = newTextField(spec.Key, spec.Label, spec.Placeholder)
	}
	field.required = spec.Required
	return field.withValue(value)
}

func (v *storyView) prefillConfirm1(key string, rec *draft.StoryRecord) string {
	switch key {
	case "summary":
		return rec.Summary
	case "bornIn":
		return rec.BornIn
	case "hometown":
		return rec.Hometown
	case "schools":
		return joinSchools(rec.Schools)
	case "company":
		if rec.FirstJob != nil {
			return rec.FirstJob.Company
		}
	case "titles":
		if rec.FirstJob != nil {
			return strings.Join(rec.FirstJob.Titles, ", ")
		}
	case "currentCities":
		return strings.Join(rec.CurrentCities, ", ")
	}
	return ""
}

func (v *storyView) prefillConfirm2(key string, rec *draft.StoryRecord) string {
	switch key {
	case "tags":
		return strings.Join(rec.Tags, ", ")
	case "universities":
		return joinUniversities(rec.Universities)
	case "subsequentJobs":
		return joinJobs(rec.SubsequentJobs)
	case "organizations":
		return joinOrganizations(rec.Organizations)
	case "travelCities":
		return strings.Join(rec.TravelCities, ", ")
	}
	return ""
}

func (v *storyView) View(width int) string {
	switch v.ctrl.SubStage() {
	case story.StageSelection:
		return v.renderSelection()
	case story.StagePrompts:
		return v.renderPrompts()
	case story.StageInputMethod:
		return v.renderInputMethod()
	case story.StageInput:
		return v.renderInput()
	case story.StageUploadComplete:
		return v.renderUploadComplete()
	case story.StageProcessing:
		return v.renderProcessing()
	case story.StageThumbnail:
		return v.renderThumbnails()
	case story.StageConfirm1, story.StageConfirm2:
		if v.form != nil {
			return v.form.View(width)
		}
	}
	return ""
}

func (v *storyView) renderSelection() string {
	lines := []string{storyTitleStyle.Render("Your Life Stories"), ""}
	for i, slot := range draft.Slots() {
		set := story.Prompts(slot)
		row := fmt.Sprintf("%s %s", set.Icon, story.Title(slot))
		if v.ctrl.Complete(slot) {
			row += "  " + storyBadgeStyle.Render("✓ "+completionBadge(v.app.store.Story(slot).InputMethod))
		}
		if i == v.selection {
			row = storySelectedStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, row, storyDimStyle.Render("    "+set.Subtitle), "")
	}
	lines = append(lines, storyTitleStyle.Render(fmt.Sprintf("[c] %s", v.ctrl.SelectionCTA())))
	return strings.Join(lines, "\n")
}

func completionBadge(method draft.InputMethod) string {
	switch method {
	case draft.InputVideo:
		return "Video added"
	case draft.InputAudio:
		return "Audio added"
	case draft.InputText:
		return "Story added"
	default:
		return "added"
	}
}

func (v *storyView) renderPrompts() string {
	set := story.Prompts(v.ctrl.Slot())
	lines := []string{
		storyTitleStyle.Render(fmt.Sprintf("%s %s", set.Icon, set.Title)),
		storyDimStyle.Render(set.Subtitle),
		"",
	}
	if set.Intro != "" {
		lines = append(lines, set.Intro, "")
	}
	if set.Highlight != "" {
		lines = append(lines, storyWarnStyle.Render(set.Highlight), "")
	}
	for _, section := range set.Sections {
		if section.Title != "" {
			lines = append(lines, storyTitleStyle.Render(section.Title))
		}
		for _, prompt := range section.Prompts {
			lines = append(lines, "  · "+prompt)
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (v *storyView) renderInputMethod() string {
	labels := map[draft.InputMethod]string{
		draft.InputVideo: "🎥 Record a video",
		draft.InputAudio: "🎙 Record audio",
		draft.InputText:  "✍️ Write it down",
	}
	lines := []string{storyTitleStyle.Render("How would you like to tell it?"), ""}
	for i, method := range inputMethods {
		row := labels[method]
		if i == v.methodCursor {
			row = storySelectedStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (v *storyView) renderInput() string {
	method := v.ctrl.ActiveStory().InputMethod
	state := "idle"
	if v.recording && v.paused {
		state = "paused"
	} else if v.recording {
		state = "recording"
	}
	lines := []string{
		storyTitleStyle.Render(fmt.Sprintf("Recording · %s", method)),
		"",
		fmt.Sprintf("Device: %s", state),
		"",
		"r=start  p=pause/resume  s=stop & upload",
	}
	if !v.recording {
		lines = append(lines, storyDimStyle.Render("esc=choose another method"))
	}
	return strings.Join(lines, "\n")
}

func (v *storyView) renderUploadComplete() string {
	return strings.Join([]string{
		storyBadgeStyle.Render("✓ Upload complete"),
		"",
		storyWarnStyle.Render("Please don't close this window while we process your recording."),
		"",
		"Press Enter to continue.",
	}, "\n")
}

func (v *storyView) renderProcessing() string {
	pct := v.ctrl.ProcessingPercent()
	bar := v.app.progress.ViewAs(float64(pct) / 100)
	return strings.Join([]string{
		storyTitleStyle.Render(fmt.Sprintf("Processing your %s story...", story.Title(v.ctrl.Slot()))),
		"",
		fmt.Sprintf("%s %d%%", bar, pct),
		"",
		storyDimStyle.Render("This takes a few seconds."),
	}, "\n")
}

func (v *storyView) renderThumbnails() string {
	lines := []string{storyTitleStyle.Render("Pick a thumbnail"), ""}
	if v.customMode {
		lines = append(lines, "Custom thumbnail:", v.customIn.View(), "",
			storyDimStyle.Render("enter=use  esc=back to generated stills"))
		return strings.Join(lines, "\n")
	}
	if len(v.thumbnails) == 0 {
		lines = append(lines, storyDimStyle.Render("No stills generated."))
	}
	for i, thumb := range v.thumbnails {
		row := fmt.Sprintf("[%d] %s", i+1, thumb)
		if i == v.thumbSel {
			row = storySelectedStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}
	lines = append(lines, "", "enter=choose  ←/→=move  r=regenerate  c=custom image")
	return strings.Join(lines, "\n")
}

// Footer returns the key hints for the active sub-stage.
func (v *storyView) Footer() string {
	switch v.ctrl.SubStage() {
	case story.StageSelection:
		return "enter=open story  c=continue  esc=back"
	case story.StagePrompts:
		return "enter=continue  esc=back"
	case story.StageInputMethod:
		return "enter=choose  esc=back"
	case story.StageInput:
		return "r=record  p=pause  s=stop  esc=back"
	case story.StageUploadComplete, story.StageProcessing:
		return "please wait..."
	case story.StageThumbnail:
		return "enter=choose  r=regenerate  c=custom"
	default:
		return "enter=next field / submit  tab=move  esc=back"
	}
}

// Entryset encoding: rows split on ';', columns on ','. One row per
// school/university/organization; jobs use 'company: title, title'.

func entrysetPlaceholder(key string) string {
	switch key {
	case "schools":
		return "Name, Location; Name, Location"
	case "universities":
		return "Name, Course, Location; ..."
	case "subsequentJobs":
		return "Company: Title, Title; Company: Title"
	case "organizations":
		return "Name, Role; Name, Role"
	default:
		return ""
	}
}

func entrysetHint(key string) string {
	switch key {
	case "schools":
		return "One school per ';' · name and location separated by ','"
	case "universities":
		return "One university per ';' · name, course and location separated by ','"
	case "subsequentJobs":
		return "One job per ';' · 'Company: Title, Title'"
	case "organizations":
		return "One organization per ';' · name and role separated by ','"
	default:
		return ""
	}
}

func splitRows(value string) []string {
	var rows []string
	for _, row := range strings.Split(value, ";") {
		row = strings.TrimSpace(row)
		if row != "" {
			rows = append(rows, row)
		}
	}
	return rows
}

func parseSchools(value string) []draft.SchoolEntry {
	var out []draft.SchoolEntry
	for _, row := range splitRows(value) {
		cols := splitList(row)
		if len(cols) == 0 {
			continue
		}
		entry := draft.SchoolEntry{Name: cols[0]}
		if len(cols) > 1 {
			entry.Location = cols[1]
		}
		out = append(out, entry)
	}
	return out
}

func parseUniversities(value string) []draft.UniversityEntry {
	var out []draft.UniversityEntry
	for _, row := range splitRows(value) {
		cols := splitList(row)
		if len(cols) == 0 {
			continue
		}
		entry := draft.UniversityEntry{Name: cols[0]}
		if len(cols) > 1 {
			entry.Course = cols[1]
		}
		if len(cols) > 2 {
			entry.Location = cols[2]
		}
		out = append(out, entry)
	}
	return out
}

func parseJobs(value string) []draft.JobEntry {
	var out []draft.JobEntry
	for _, row := range splitRows(value) {
		entry := draft.JobEntry{Company: row}
		if idx := strings.Index(row, ":"); idx >= 0 {
			entry.Company = strings.TrimSpace(row[:idx])
			entry.Titles = splitList(row[idx+1:])
		}
		out = append(out, entry)
	}
	return out
}

func parseOrganizations(value string) []draft.OrganizationEntry {
	var out []draft.OrganizationEntry
	for _, row := range splitRows(value) {
		cols := splitList(row)
		if len(cols) == 0 {
			continue
		}
		entry := draft.OrganizationEntry{Name: cols[0]}
		if len(cols) > 1 {
			entry.Role = cols[1]
		}
		out = append(out, entry)
	}
	return out
}

func joinSchools(schools []draft.SchoolEntry) string {
	rows := make([]string, 0, len(schools))
	for _, s := range schools {
		rows = append(rows, strings.TrimRight(fmt.Sprintf("%s, %s", s.Name, s.Location), ", "))
	}
	return strings.Join(rows, "; ")
}

func joinUniversities(unis []draft.UniversityEntry) string {
	rows := make([]string, 0, len(unis))
	for _, u := range unis {
		rows = append(rows, strings.TrimRight(fmt.Sprintf("%s, %s, %s", u.Name, u.Course, u.Location), ", "))
	}
	return strings.Join(rows, "; ")
}

func joinJobs(jobs []draft.JobEntry) string {
	rows := make([]string, 0, len(jobs))
	for _, j := range jobs {
		if len(j.Titles) > 0 {
			rows = append(rows, fmt.Sprintf("%s: %s", j.Company, strings.Join(j.Titles, ", ")))
		} else {
			rows = append(rows, j.Company)
		}
	}
	return strings.Join(rows, "; ")
}

func joinOrganizations(orgs []draft.OrganizationEntry) string {
	rows := make([]string, 0, len(orgs))
	for _, o := range orgs {
		rows = append(rows, strings.TrimRight(fmt.Sprintf("%s, %s", o.Name, o.Role), ", "))
	}
	return strings.Join(rows, "; ")
}
