// internal/story/confirm.go
//
// The two-stage confirmation pipeline. One generic submit path serves
// all three slots; what differs per slot is the schema descriptor (which
// fields exist, their labels) and the validation rules. Failed
// validation surfaces field errors and blocks the transition; it never
// propagates past the sub-stage.

package story

import (
	"strings"

	"github.com/ganghq/profile360/internal/draft"
)

// FieldErrors maps field keys to user-visible messages. Only failing
// fields are present.
type FieldErrors map[string]string

// Any reports whether at least one field failed validation.
func (e FieldErrors) Any() bool {
	return len(e) > 0
}

// Confirm1Form carries the first confirmation screen's pending values.
// Only the fields for the active slot are consulted.
type Confirm1Form struct {
	Thumbnail string
	Summary   string

	// Early life
	BornIn   string
	Hometown string
	Schools  []draft.SchoolEntry

	// Professional
	FirstJob draft.JobEntry

	// Current
	CurrentCities []string
}

// Confirm2Form carries the second confirmation screen's pending values.
type Confirm2Form struct {
	Tags []string

	// Early life
	Universities []draft.UniversityEntry

	// Professional
	SubsequentJobs []draft.JobEntry

	// Current
	Organizations []draft.OrganizationEntry
	TravelCities  []string
}

// SubmitConfirm1 validates the first confirmation form for the active
// slot. On success it commits the summary and the slot's primary
// structured fields and advances to the second form; on failure it
// returns the field errors and stays put.
func (c *Controller) SubmitConfirm1(f Confirm1Form) FieldErrors {
	c.mustBe(StageConfirm1)
	errs := validateConfirm1(c.slot, f)
	if errs.Any() {
		return errs
	}
	u := draft.StoryUpdate{Summary: &f.Summary}
	if f.Thumbnail != "" {
		u.Thumbnail = &f.Thumbnail
	}
	switch c.slot {
	case draft.SlotEarlyLife:
		schools := namedSchools(f.Schools)
		u.BornIn = &f.BornIn
		u.Hometown = &f.Hometown
		u.Schools = &schools
	case draft.SlotProfessional:
		job := f.FirstJob
		job.Titles = trimmedTitles(job.Titles)
		u.FirstJob = &job
	case draft.SlotCurrent:
		u.CurrentCities = &f.CurrentCities
	}
	c.store.ApplyStory(c.slot, u)
	c.subStage = StageConfirm2
	return nil
}

// SubmitConfirm2 validates the second confirmation form. On success it
// commits the remaining structured fields and tags; the caller then
// hands the story to the submission collaborator and calls
// CompleteStory once the acknowledgment is shown.
func (c *Controller) SubmitConfirm2(f Confirm2Form) FieldErrors {
	c.mustBe(StageConfirm2)
	errs := validateConfirm2(c.slot, f)
	if errs.Any() {
		return errs
	}
	u := draft.StoryUpdate{Tags: &f.Tags}
	switch c.slot {
	case draft.SlotEarlyLife:
		unis := namedUniversities(f.Universities)
		u.Universities = &unis
	case draft.SlotProfessional:
		jobs := namedJobs(f.SubsequentJobs)
		u.SubsequentJobs = &jobs
	case draft.SlotCurrent:
		orgs := namedOrganizations(f.Organizations)
		u.Organizations = &orgs
		u.TravelCities = &f.TravelCities
	}
	c.store.ApplyStory(c.slot, u)
	return nil
}

func validateConfirm1(slot draft.Slot, f Confirm1Form) FieldErrors {
	errs := FieldErrors{}
	switch slot {
	case draft.SlotEarlyLife:
		if strings.TrimSpace(f.Summary) == "" {
			errs["summary"] = "Please share a brief summary of your early life"
		}
		if strings.TrimSpace(f.BornIn) == "" {
			errs["bornIn"] = "Please enter the city where you were born"
		}
		if strings.TrimSpace(f.Hometown) == "" {
			errs["hometown"] = "Please enter your hometown"
		}
		if countValidSchools(f.Schools) == 0 {
			errs["schools"] = "Please add at least one school with name and location"
		}
	case draft.SlotProfessional:
		if strings.TrimSpace(f.Summary) == "" {
			errs["summary"] = "Please share a brief summary of your professional journey"
		}
		if strings.TrimSpace(f.FirstJob.Company) == "" {
			errs["company"] = "Please enter your first company name"
		}
		if len(trimmedTitles(f.FirstJob.Titles)) == 0 {
			errs["titles"] = "Please add at least one job title"
		}
	case draft.SlotCurrent:
		if strings.TrimSpace(f.Summary) == "" {
			errs["summary"] = "Please share a brief summary of your current life"
		}
		if len(f.CurrentCities) == 0 {
			errs["currentCities"] = "Please add at least one city where you currently live"
		}
	default:
		panic("story: unknown slot " + string(slot))
	}
	return errs
}

func validateConfirm2(slot draft.Slot, f Confirm2Form) FieldErrors {
	errs := FieldErrors{}
	switch slot {
	case draft.SlotEarlyLife:
		if countValidUniversities(f.Universities) == 0 {
			errs["universities"] = "Please add at least one university with name, course and location"
		}
		if len(f.Tags) == 0 {
			errs["tags"] = "Please add at least one tag to describe your early life interests"
		}
	case draft.SlotProfessional:
		// Subsequent jobs are optional; only tags are required.
		if len(f.Tags) == 0 {
			errs["tags"] = "Please add at least one tag to describe your professional skills"
		}
	case draft.SlotCurrent:
		if countValidOrganizations(f.Organizations) == 0 {
			errs["organizations"] = "Please add at least one organization with name and role"
		}
		if len(f.Tags) == 0 {
			errs["tags"] = "Please add at least one tag to describe your current interests"
		}
	default:
		panic("story: unknown slot " + string(slot))
	}
	return errs
}

func countValidSchools(schools []draft.SchoolEntry) int {
	n := 0
	for _, s := range schools {
		if strings.TrimSpace(s.Name) != "" && strings.TrimSpace(s.Location) != "" {
			n++
		}
	}
	return n
}

func countValidUniversities(unis []draft.UniversityEntry) int {
	n := 0
	for _, u := range unis {
		if strings.TrimSpace(u.Name) != "" && strings.TrimSpace(u.Course) != "" && strings.TrimSpace(u.Location) != "" {
			n++
		}
	}
	return n
}

func countValidOrganizations(orgs []draft.OrganizationEntry) int {
	n := 0
	for _, o := range orgs {
		if strings.TrimSpace(o.Name) != "" && strings.TrimSpace(o.Role) != "" {
			n++
		}
	}
	return n
}

// namedSchools keeps entries with at least a name, matching the commit
// behavior of the confirmation forms: rows the user started but left
// half-filled are dropped only when fully blank on the name.
func namedSchools(schools []draft.SchoolEntry) []draft.SchoolEntry {
	out := make([]draft.SchoolEntry, 0, len(schools))
	for _, s := range schools {
		if strings.TrimSpace(s.Name) != "" {
			out = append(out, s)
		}
	}
	return out
}

func namedUniversities(unis []draft.UniversityEntry) []draft.UniversityEntry {
	out := make([]draft.UniversityEntry, 0, len(unis))
	for _, u := range unis {
		if strings.TrimSpace(u.Name) != "" {
			out = append(out, u)
		}
	}
	return out
}

func namedJobs(jobs []draft.JobEntry) []draft.JobEntry {
	out := make([]draft.JobEntry, 0, len(jobs))
	for _, j := range jobs {
		if strings.TrimSpace(j.Company) == "" {
			continue
		}
		j.Titles = trimmedTitles(j.Titles)
		out = append(out, j)
	}
	return out
}

func namedOrganizations(orgs []draft.OrganizationEntry) []draft.OrganizationEntry {
	out := make([]draft.OrganizationEntry, 0, len(orgs))
	for _, o := range orgs {
		if strings.TrimSpace(o.Name) != "" {
			out = append(out, o)
		}
	}
	return out
}

func trimmedTitles(titles []string) []string {
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
