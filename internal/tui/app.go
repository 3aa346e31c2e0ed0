// internal/tui/app.go
//
// This is the main TUI (Terminal User Interface) for profile360.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen
//
// The wizard itself is a fixed twelve-stage sequence. Most stages are
// a stageForm over the draft; the Life Stories stage hosts a nested
// storyView with its own sub-flow.

package tui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ganghq/profile360/internal/config"
	"github.com/ganghq/profile360/internal/draft"
	"github.com/ganghq/profile360/internal/logbook"
	"github.com/ganghq/profile360/internal/media"
	"github.com/ganghq/profile360/internal/story"
	"github.com/ganghq/profile360/internal/submit"
	"github.com/ganghq/profile360/internal/wizard"
)

var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithSubmitter overrides the submission collaborator.
func WithSubmitter(s submit.Submitter) AppOption {
	return func(a *App) {
		if s != nil {
			a.submitter = s
		}
	}
}

// WithRecorder overrides the capture collaborator.
func WithRecorder(r media.Recorder) AppOption {
	return func(a *App) {
		if r != nil {
			a.recorder = r
		}
	}
}

// WithThumbnailGenerator overrides the thumbnail collaborator.
func WithThumbnailGenerator(g media.ThumbnailGenerator) AppOption {
	return func(a *App) {
		if g != nil {
			a.thumbs = g
		}
	}
}

type draftSubmittedMsg struct {
	receipt submit.Receipt
	err     error
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	config  *config.Config
	logbook *logbook.Logbook
	store   *draft.Store
	wizard  *wizard.Wizard

	submitter submit.Submitter
	recorder  media.Recorder
	thumbs    media.ThumbnailGenerator

	storyView *storyView
	form      *stageForm
	progress  progress.Model

	statusMsg     string
	lastLogStatus string
	submitted     bool
	receipt       submit.Receipt
	submitErr     error

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// NewApp creates a new App instance rooted at projectDir.
func NewApp(projectDir string, opts ...AppOption) (*App, error) {
	if err := config.InitAppDir(projectDir); err != nil {
		return nil, err
	}
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	lb, err := logbook.New(cfg.LogPath())
	if err == nil {
		lb.Info("Session opened · community: %s", cfg.CommunityName())
	}

	store := draft.NewStore()
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	app := &App{
		config:    cfg,
		logbook:   lb,
		store:     store,
		wizard:    wizard.New(),
		submitter: submit.NewFileSubmitter(cfg.SubmissionsDir()),
		recorder:  media.NewLocalRecorder(cfg.MediaDir(), nil),
		thumbs:    media.NewFrameSampler(),
		progress:  bar,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	app.storyView = newStoryView(app, story.NewController(store))
	return app, nil
}

// Store exposes the draft store, mainly for tests.
func (a *App) Store() *draft.Store {
	return a.store
}

// Wizard exposes the stage cursor, mainly for tests.
func (a *App) Wizard() *wizard.Wizard {
	return a.wizard
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

func (a *App) logProgress(status string) {
	status = strings.TrimSpace(status)
	if status == "" || status == a.lastLogStatus {
		return
	}
	a.lastLogStatus = status
	a.logInfo(status)
}

func (a *App) setStatus(message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	a.statusMsg = message
	a.logProgress(message)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.progress.Width = max(20, min(60, msg.Width-8))
		return a, nil

	case draftSubmittedMsg:
		if msg.err != nil {
			a.submitErr = msg.err
			a.setStatus(fmt.Sprintf("Submission failed: %v", msg.err))
			a.logError("Profile submission failed: %v", msg.err)
			return a, nil
		}
		a.submitted = true
		a.receipt = msg.receipt
		a.submitErr = nil
		a.setStatus(fmt.Sprintf("Profile submitted · receipt %s", msg.receipt.ID))
		return a, nil

	case storyTickMsg, storyRedirectMsg, storySubmittedMsg:
		if a.storyView != nil {
			return a, a.storyView.Update(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if cmd, handled := a.handleKey(msg); handled {
			return a, cmd
		}
	}

	// Unhandled input flows to the active stage's component.
	if a.wizard.Current() == wizard.StageLifeStories && a.storyView != nil {
		return a, a.storyView.Update(msg)
	}
	if a.form != nil {
		return a, a.form.Update(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()
	stage := a.wizard.Current()

	if key == "ctrl+c" {
		if a.recorder != nil {
			a.recorder.Release()
		}
		return tea.Quit, true
	}

	if stage == wizard.StageLifeStories {
		// The sub-flow owns every key except quit; back out of the
		// selection menu returns to the previous wizard stage.
		if key == "esc" && a.storyView.AtSelection() {
			a.goToStage(stage - 1)
			return nil, true
		}
		return a.storyView.Update(msg), true
	}

	switch key {
	case "esc":
		if stage > wizard.StageWelcome && stage != wizard.StageComplete {
			a.commitStage(stage)
			a.goToStage(stage - 1)
			return nil, true
		}
	case "enter":
		return a.handleEnter(stage)
	case "q":
		if stage == wizard.StageWelcome || stage == wizard.StageComplete {
			return tea.Quit, true
		}
	case "tab", "down":
		if a.form != nil {
			return a.form.nextField(), true
		}
	case "shift+tab", "up":
		if a.form != nil {
			return a.form.prevField(), true
		}
	}
	return nil, false
}

func (a *App) handleEnter(stage wizard.Stage) (tea.Cmd, bool) {
	switch stage {
	case wizard.StageWelcome, wizard.StageShare360:
		a.goToStage(stage + 1)
		return nil, true
	case wizard.StageComplete:
		if a.submitted {
			return tea.Quit, true
		}
		return a.submitDraft(), true
	default:
		if a.form == nil {
			a.goToStage(stage + 1)
			return nil, true
		}
		if !a.form.atLastField() {
			return a.form.nextField(), true
		}
		if !a.form.Validate() {
			a.setStatus("Please fix the highlighted fields")
			return nil, true
		}
		a.commitStage(stage)
		a.goToStage(stage + 1)
		return nil, true
	}
}

// goToStage moves the wizard cursor and rebuilds the stage's component.
func (a *App) goToStage(target wizard.Stage) {
	a.commitStageForm(a.wizard.Current())
	a.wizard.GoTo(int(target))
	a.form = a.buildStageForm(a.wizard.Current())
	a.logbook.Stage(a.wizard.Current().String())
	a.statusMsg = ""
}

// commitStage persists the current form values into the draft without
// validating them. Drafts keep whatever the user typed; validation only
// gates forward navigation.
func (a *App) commitStage(stage wizard.Stage) {
	a.commitStageForm(stage)
}

func (a *App) commitStageForm(stage wizard.Stage) {
	if a.form == nil {
		return
	}
	values := a.form.Values()
	str := func(key string) *string {
		v := values[key]
		return &v
	}
	switch stage {
	case wizard.StageBasicInfo:
		a.store.ApplyProfile(draft.ProfileUpdate{
			FirstName:      str("firstName"),
			MiddleName:     str("middleName"),
			LastName:       str("lastName"),
			ProfilePicture: str("profilePicture"),
		})
	case wizard.StageProfessional:
		a.store.ApplyProfile(draft.ProfileUpdate{
			CurrentOrganization: str("currentOrganization"),
			CurrentRole:         str("currentRole"),
		})
	case wizard.StageQuote:
		a.store.ApplyProfile(draft.ProfileUpdate{InspiringQuote: str("inspiringQuote")})
	case wizard.StageIntro:
		a.store.ApplyProfile(draft.ProfileUpdate{Introduction: str("introduction")})
	case wizard.StageLocation:
		a.store.ApplyProfile(draft.ProfileUpdate{
			LivesIn:  str("livesIn"),
			Locality: str("locality"),
			City:     str("city"),
			Pincode:  str("pincode"),
		})
	case wizard.StageJoy:
		a.store.ApplyProfile(draft.ProfileUpdate{JoyOutsideWork: str("joyOutsideWork")})
	case wizard.StageSocial:
		a.store.ApplyProfile(draft.ProfileUpdate{
			Email:     str("email"),
			Mobile:    str("mobile"),
			LinkedIn:  str("linkedin"),
			Twitter:   str("twitter"),
			Instagram: str("instagram"),
		})
	case wizard.StageContent:
		links := parseContentLinks(values["contentLinks"])
		other := splitList(values["otherSocialLinks"])
		a.store.ApplyProfile(draft.ProfileUpdate{
			ContentLinks:     &links,
			OtherSocialLinks: &other,
		})
	}
}

// buildStageForm constructs the data-entry form for a stage, prefilled
// from the draft. Stages without a form return nil.
func (a *App) buildStageForm(stage wizard.Stage) *stageForm {
	d := a.store.Draft()
	switch stage {
	case wizard.StageBasicInfo:
		return newStageForm("Basic Info", "Tell the community who you are.",
			newTextField("firstName", "First Name", "Your first name").
				withValue(d.FirstName).
				withRequired("Please enter your first name"),
			newTextField("middleName", "Middle Name", "Optional").
				withValue(d.MiddleName),
			newTextField("lastName", "Last Name", "Your last name").
				withValue(d.LastName).
				withRequired("Please enter your last name"),
			newTextField("profilePicture", "Profile Picture", "Path or URL to a photo").
				withValue(d.ProfilePicture),
		)
	case wizard.StageProfessional:
		return newStageForm("Professional Info", "Where do you work right now?",
			newTextField("currentOrganization", "Current Organization", "Organization name").
				withValue(d.CurrentOrganization).
				withRequired("Please enter your current organization"),
			newTextField("currentRole", "Current Role", "Your role or title").
				withValue(d.CurrentRole).
				withRequired("Please enter your current role"),
		)
	case wizard.StageQuote:
		return newStageForm("Inspiring Quote", "A quote that inspires you, shown on your profile.",
			newTextField("inspiringQuote", "Quote", "\"...\"").
				withValue(d.InspiringQuote),
		)
	case wizard.StageIntro:
		return newStageForm("Introduction", "Introduce yourself to the community.",
			newAreaField("introduction", "Introduction", "A short introduction...", draft.MaxIntroductionWords).
				withValue(d.Introduction),
		)
	case wizard.StageLocation:
		return newStageForm("Location", "Where are you based?",
			newTextField("livesIn", "Lives In", "Area or neighbourhood").
				withValue(d.LivesIn),
			newTextField("locality", "Locality", "Locality").
				withValue(d.Locality).
				withRequired("Please enter your locality"),
			newTextField("city", "City", "City").
				withValue(d.City).
				withRequired("Please enter your city"),
			newTextField("pincode", "Pincode", "6-digit pincode").
				withValue(d.Pincode).
				withRequired("Please enter your pincode").
				withRule(func(value string) string {
					if !pincodePattern.MatchString(strings.TrimSpace(value)) {
						return "Pincode must be exactly 6 digits"
					}
					return ""
				}),
		)
	case wizard.StageJoy:
		return newStageForm("Joy Outside Work", "What brings you joy outside work?",
			newAreaField("joyOutsideWork", "Joy Outside Work", "Hobbies, passions, people...", 0).
				withValue(d.JoyOutsideWork),
		)
	case wizard.StageSocial:
		return newStageForm("Social Coordinates", "How can members reach you? All fields optional.",
			newTextField("email", "Email", "you@example.com").withValue(d.Email),
			newTextField("mobile", "Mobile", "+91 ...").withValue(d.Mobile),
			newTextField("linkedin", "LinkedIn", "Profile URL").withValue(d.LinkedIn),
			newTextField("twitter", "Twitter / X", "Profile URL").withValue(d.Twitter),
			newTextField("instagram", "Instagram", "Profile URL").withValue(d.Instagram),
		)
	case wizard.StageContent:
		return newStageForm("Content Links", "Articles, talks, or anything you have created.",
			newTextField("contentLinks", "Content Links", "url | description; url | description").
				withValue(joinContentLinks(d.ContentLinks)).
				withHint("Separate links with ';', add an optional description after '|'"),
			newTextField("otherSocialLinks", "Other Links", "url, url").
				withValue(strings.Join(d.OtherSocialLinks, ", ")).
				withHint("Comma separated"),
		)
	default:
		return nil
	}
}

func (a *App) submitDraft() tea.Cmd {
	d := a.store.Draft().Clone()
	submitter := a.submitter
	a.logInfo("Submitting profile draft")
	return func() tea.Msg {
		receipt, err := submitter.SubmitDraft(d)
		return draftSubmittedMsg{receipt: receipt, err: err}
	}
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	stage := a.wizard.Current()

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		Render(fmt.Sprintf("⬡ PROFILE360 · %s", a.config.CommunityName()))

	var content string
	switch stage {
	case wizard.StageWelcome:
		content = a.renderWelcome()
	case wizard.StageShare360:
		content = a.renderShare360()
	case wizard.StageLifeStories:
		content = a.storyView.View(width - 8)
	case wizard.StageComplete:
		content = a.renderComplete()
	default:
		if a.form != nil {
			content = a.form.View(width - 8)
		}
	}

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Width(max(40, width-4)).
		Render(content)

	sections := []string{header, a.renderProgressLine(stage), body}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render(a.renderFooter(stage))
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (a *App) renderProgressLine(stage wizard.Stage) string {
	pct := a.wizard.ProgressPercent()
	if stage == wizard.StageLifeStories {
		if anchored, ok := a.storyView.ProgressPercent(); ok {
			pct = anchored
		}
	}
	label := fmt.Sprintf("Step %d/%d · %s", a.wizard.Step()+1, wizard.TotalStages, stage)
	bar := a.progress.ViewAs(float64(pct) / 100)
	return fmt.Sprintf("%s\n%s %d%%", label, bar, pct)
}

func (a *App) renderWelcome() string {
	return strings.Join([]string{
		fmt.Sprintf("Welcome to %s!", a.config.CommunityName()),
		"",
		"This short onboarding builds your member profile: who you are,",
		"what you do, and the life stories behind it all.",
		"",
		"Everything you enter stays a draft until you submit at the end.",
	}, "\n")
}

func (a *App) renderShare360() string {
	return strings.Join([]string{
		"Share Your 360",
		"",
		"Your profile has two halves:",
		"  · the facts: name, work, location, coordinates",
		"  · the stories: early life, professional journey, life today",
		"",
		"You can tell each story on video, on audio, or in writing.",
	}, "\n")
}

func (a *App) renderComplete() string {
	d := a.store.Draft()
	pct := wizard.CompletionPercentage(d)
	lines := []string{
		"🎉 You made it!",
		"",
		fmt.Sprintf("Profile completion: %d%%", pct),
	}
	stories := 0
	for _, slot := range draft.Slots() {
		if draft.WordCount(a.store.Story(slot).Summary) > 0 {
			stories++
		}
	}
	lines = append(lines, fmt.Sprintf("Life stories told: %d/3", stories), "")
	switch {
	case a.submitErr != nil:
		lines = append(lines, formErrorStyle.Render(fmt.Sprintf("Submission failed: %v", a.submitErr)))
	case a.submitted:
		lines = append(lines,
			fmt.Sprintf("Submitted · receipt %s", a.receipt.ID),
			formHintStyle.Render(a.receipt.Path),
		)
	default:
		lines = append(lines, "Press Enter to submit your profile for review.")
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderFooter(stage wizard.Stage) string {
	if a.statusMsg != "" {
		return a.statusMsg
	}
	switch stage {
	case wizard.StageWelcome:
		return "enter=start  q=quit"
	case wizard.StageShare360:
		return "enter=continue  esc=back"
	case wizard.StageLifeStories:
		return a.storyView.Footer()
	case wizard.StageComplete:
		if a.submitted {
			return "enter=finish  q=quit"
		}
		return "enter=submit  q=quit"
	default:
		return "enter=next field / continue  tab=move  esc=back"
	}
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines := a.logbook.Tail(5)
	if len(lines) == 0 {
		return ""
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("JOURNEY")
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}

// parseContentLinks splits "url | description; url" style input.
func parseContentLinks(value string) []draft.ContentLink {
	var out []draft.ContentLink
	for _, row := range strings.Split(value, ";") {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}
		link := draft.ContentLink{URL: row}
		if idx := strings.Index(row, "|"); idx >= 0 {
			link.URL = strings.TrimSpace(row[:idx])
			link.Description = strings.TrimSpace(row[idx+1:])
		}
		if link.URL == "" {
			continue
		}
		out = append(out, link)
	}
	return out
}

func joinContentLinks(links []draft.ContentLink) string {
	rows := make([]string, 0, len(links))
	for _, link := range links {
		if link.Description != "" {
			rows = append(rows, fmt.Sprintf("%s | %s", link.URL, link.Description))
		} else {
			rows = append(rows, link.URL)
		}
	}
	return strings.Join(rows, "; ")
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
