package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ganghq/profile360/internal/draft"
)

var (
	formLabelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	formErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	formHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	formRequiredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801"))
)

// fieldRule validates one committed value and returns a user-visible
// message, empty when the value passes.
type fieldRule func(value string) string

// formField is one input row of a stage form. Single-line fields ride a
// textinput, word-bounded narrative fields ride a textarea.
type formField struct {
	key         string
	label       string
	placeholder string
	hint        string
	multiline   bool
	maxWords    int
	required    bool
	rules       []fieldRule

	input textinput.Model
	area  textarea.Model
}

func newTextField(key, label, placeholder string) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	return formField{key: key, label: label, placeholder: placeholder, input: ti}
}

func newAreaField(key, label, placeholder string, maxWords int) formField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	return formField{key: key, label: label, placeholder: placeholder, multiline: true, maxWords: maxWords, area: ta}
}

func (f formField) withRequired(message string) formField {
	f.required = true
	f.rules = append(f.rules, func(value string) string {
		if strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	})
	return f
}

func (f formField) withRule(rule fieldRule) formField {
	f.rules = append(f.rules, rule)
	return f
}

func (f formField) withHint(hint string) formField {
	f.hint = hint
	return f
}

func (f formField) withValue(value string) formField {
	if f.multiline {
		f.area.SetValue(value)
	} else {
		f.input.SetValue(value)
	}
	return f
}

func (f *formField) value() string {
	if f.multiline {
		return f.area.Value()
	}
	return f.input.Value()
}

func (f *formField) focus() tea.Cmd {
	if f.multiline {
		return f.area.Focus()
	}
	return f.input.Focus()
}

func (f *formField) blur() {
	if f.multiline {
		f.area.Blur()
	} else {
		f.input.Blur()
	}
}

// stageForm is the shared renderer for every data-entry stage. Fields
// come from per-stage constructors; the form only owns focus movement,
// editing, and validation display.
type stageForm struct {
	title  string
	intro  string
	fields []formField
	focus  int
	errs   map[string]string
}

func newStageForm(title, intro string, fields ...formField) *stageForm {
	form := &stageForm{title: title, intro: intro, fields: fields, errs: map[string]string{}}
	if len(form.fields) > 0 {
		form.fields[0].focus()
	}
	return form
}

// atLastField reports whether focus sits on the final field, where
// callers treat enter as the form's submit.
func (sf *stageForm) atLastField() bool {
	return sf.focus == len(sf.fields)-1
}

func (sf *stageForm) focusField(idx int) tea.Cmd {
	if idx < 0 || idx >= len(sf.fields) {
		return nil
	}
	for i := range sf.fields {
		sf.fields[i].blur()
	}
	sf.focus = idx
	return sf.fields[idx].focus()
}

func (sf *stageForm) nextField() tea.Cmd {
	return sf.focusField((sf.focus + 1) % len(sf.fields))
}

func (sf *stageForm) prevField() tea.Cmd {
	idx := sf.focus - 1
	if idx < 0 {
		idx = len(sf.fields) - 1
	}
	return sf.focusField(idx)
}

// Update edits the focused field. Word-bounded fields reject keystrokes
// that would grow the text past the cap; shrinking is always allowed, so
// text that somehow got over the cap can still be edited down.
func (sf *stageForm) Update(msg tea.Msg) tea.Cmd {
	if len(sf.fields) == 0 {
		return nil
	}
	field := &sf.fields[sf.focus]
	before := field.value()
	var cmd tea.Cmd
	if field.multiline {
		field.area, cmd = field.area.Update(msg)
	} else {
		field.input, cmd = field.input.Update(msg)
	}
	if field.maxWords > 0 {
		after := field.value()
		words := draft.WordCount(after)
		if words > field.maxWords && words >= draft.WordCount(before) {
			if field.multiline {
				field.area.SetValue(before)
			} else {
				field.input.SetValue(before)
			}
		}
	}
	return cmd
}

// Validate runs every field rule and records the failures. Only failing
// fields get an entry.
func (sf *stageForm) Validate() bool {
	sf.errs = map[string]string{}
	for i := range sf.fields {
		field := &sf.fields[i]
		value := field.value()
		for _, rule := range field.rules {
			if msg := rule(value); msg != "" {
				sf.errs[field.key] = msg
				break
			}
		}
	}
	return len(sf.errs) == 0
}

// Values snapshots every field keyed by its schema key.
func (sf *stageForm) Values() map[string]string {
	out := make(map[string]string, len(sf.fields))
	for i := range sf.fields {
		out[sf.fields[i].key] = sf.fields[i].value()
	}
	return out
}

func (sf *stageForm) SetErrors(errs map[string]string) {
	if errs == nil {
		errs = map[string]string{}
	}
	sf.errs = errs
}

func (sf *stageForm) View(width int) string {
	var lines []string
	if sf.title != "" {
		lines = append(lines, formLabelStyle.Render(sf.title), "")
	}
	if sf.intro != "" {
		lines = append(lines, formHintStyle.Render(sf.intro), "")
	}
	for i := range sf.fields {
		field := &sf.fields[i]
		label := field.label
		if field.required {
			label += formRequiredStyle.Render(" *")
		}
		if field.maxWords > 0 {
			label += formHintStyle.Render(fmt.Sprintf("  (%d/%d words)", draft.WordCount(field.value()), field.maxWords))
		}
		lines = append(lines, label)
		if field.multiline {
			field.area.SetWidth(max(20, width-4))
			lines = append(lines, field.area.View())
		} else {
			field.input.Width = max(20, width-8)
			lines = append(lines, field.input.View())
		}
		if msg, ok := sf.errs[field.key]; ok {
			lines = append(lines, formErrorStyle.Render("  ⚠ "+msg))
		} else if field.hint != "" {
			lines = append(lines, formHintStyle.Render("  "+field.hint))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
