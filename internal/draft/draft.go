// internal/draft/draft.go
//
// The draft is the single in-memory aggregate for one onboarding session:
// every field the wizard collects, plus the three life-story records.
// It lives for exactly as long as the session and is handed to the
// submission collaborator when the user finishes.

package draft

import (
	"strings"
	"time"
)

// Word and list caps enforced by the store. These are structural caps,
// not validation rules: validation stays with the stage views.
const (
	MaxIntroductionWords = 100
	MaxSummaryWords      = 100
	MaxTags              = 15
)

// InputMethod identifies how a life story is being told.
type InputMethod string

const (
	InputNone  InputMethod = ""
	InputVideo InputMethod = "video"
	InputAudio InputMethod = "audio"
	InputText  InputMethod = "text"
)

// Slot names one of the three fixed life-story categories.
type Slot string

const (
	SlotEarlyLife    Slot = "earlyLife"
	SlotProfessional Slot = "professional"
	SlotCurrent      Slot = "current"
)

// Slots returns the three story slots in presentation order.
func Slots() []Slot {
	return []Slot{SlotEarlyLife, SlotProfessional, SlotCurrent}
}

// Valid reports whether s is one of the three known slots.
func (s Slot) Valid() bool {
	switch s {
	case SlotEarlyLife, SlotProfessional, SlotCurrent:
		return true
	}
	return false
}

// MediaRef points at a finalized recording: a URI-addressable blob plus
// whatever the capture collaborator told us about it.
type MediaRef struct {
	URI      string        `yaml:"uri"`
	Size     int64         `yaml:"size,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
}

// ContentLink is one entry of the "content you have created" list.
type ContentLink struct {
	URL         string `yaml:"url"`
	Description string `yaml:"description,omitempty"`
}

// SchoolEntry is one school attended during early life.
type SchoolEntry struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

// UniversityEntry is one university/college attended.
type UniversityEntry struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
	Course   string `yaml:"course"`
}

// JobEntry is one employer with the titles held there.
type JobEntry struct {
	Company string   `yaml:"company"`
	Titles  []string `yaml:"titles"`
}

// OrganizationEntry is one current organization and the role held in it.
type OrganizationEntry struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// StoryRecord holds one life story's draft data. The media fields are
// mutually exclusive: exactly one of VideoRef, AudioRef and Text is
// populated, consistent with InputMethod. Thumbnail is meaningful only
// for video input. The structured fields past Summary/Tags are
// slot-specific; the unused ones stay at their zero values.
type StoryRecord struct {
	InputMethod InputMethod `yaml:"inputMethod,omitempty"`

	VideoRef  *MediaRef `yaml:"video,omitempty"`
	AudioRef  *MediaRef `yaml:"audio,omitempty"`
	Text      string    `yaml:"text,omitempty"`
	Thumbnail string    `yaml:"thumbnail,omitempty"`

	Summary string   `yaml:"summary,omitempty"`
	Tags    []string `yaml:"tags,omitempty"`

	// Early life
	BornIn       string            `yaml:"bornIn,omitempty"`
	Hometown     string            `yaml:"hometown,omitempty"`
	Schools      []SchoolEntry     `yaml:"schools,omitempty"`
	Universities []UniversityEntry `yaml:"universities,omitempty"`

	// Professional
	FirstJob       *JobEntry  `yaml:"firstJob,omitempty"`
	SubsequentJobs []JobEntry `yaml:"subsequentJobs,omitempty"`

	// Current
	CurrentCities []string            `yaml:"currentCities,omitempty"`
	Organizations []OrganizationEntry `yaml:"organizations,omitempty"`
	TravelCities  []string            `yaml:"travelCities,omitempty"`
}

// Draft is the aggregate root for one onboarding session.
type Draft struct {
	// Basic info
	ProfilePicture        string `yaml:"profilePicture,omitempty"`
	ProfilePicturePreview string `yaml:"profilePicturePreview,omitempty"`
	FirstName             string `yaml:"firstName,omitempty"`
	MiddleName            string `yaml:"middleName,omitempty"`
	LastName              string `yaml:"lastName,omitempty"`
	CurrentOrganization   string `yaml:"currentOrganization,omitempty"`
	CurrentRole           string `yaml:"currentRole,omitempty"`
	InspiringQuote        string `yaml:"inspiringQuote,omitempty"`

	// About
	Introduction   string `yaml:"introduction,omitempty"`
	LivesIn        string `yaml:"livesIn,omitempty"`
	City           string `yaml:"city,omitempty"`
	Pincode        string `yaml:"pincode,omitempty"`
	Locality       string `yaml:"locality,omitempty"`
	JoyOutsideWork string `yaml:"joyOutsideWork,omitempty"`

	// Coordinates / social
	Email            string        `yaml:"email,omitempty"`
	Mobile           string        `yaml:"mobile,omitempty"`
	Twitter          string        `yaml:"twitter,omitempty"`
	Instagram        string        `yaml:"instagram,omitempty"`
	LinkedIn         string        `yaml:"linkedin,omitempty"`
	ContentLinks     []ContentLink `yaml:"contentLinks,omitempty"`
	OtherSocialLinks []string      `yaml:"otherSocialLinks,omitempty"`

	LifeStories map[Slot]*StoryRecord `yaml:"lifeStories"`
}

// WordCount counts whitespace-separated words after trimming.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Clone returns a deep copy of the draft, safe to hand to the
// submission collaborator while the session keeps mutating the original.
func (d *Draft) Clone() Draft {
	dup := *d
	dup.ContentLinks = append([]ContentLink(nil), d.ContentLinks...)
	dup.OtherSocialLinks = append([]string(nil), d.OtherSocialLinks...)
	dup.LifeStories = make(map[Slot]*StoryRecord, len(d.LifeStories))
	for slot, rec := range d.LifeStories {
		copied := rec.Clone()
		dup.LifeStories[slot] = &copied
	}
	return dup
}

// Clone returns a deep copy of the record.
func (r *StoryRecord) Clone() StoryRecord {
	dup := *r
	if r.VideoRef != nil {
		ref := *r.VideoRef
		dup.VideoRef = &ref
	}
	if r.AudioRef != nil {
		ref := *r.AudioRef
		dup.AudioRef = &ref
	}
	dup.Tags = append([]string(nil), r.Tags...)
	dup.Schools = append([]SchoolEntry(nil), r.Schools...)
	dup.Universities = append([]UniversityEntry(nil), r.Universities...)
	if r.FirstJob != nil {
		job := *r.FirstJob
		job.Titles = append([]string(nil), r.FirstJob.Titles...)
		dup.FirstJob = &job
	}
	dup.SubsequentJobs = make([]JobEntry, len(r.SubsequentJobs))
	for i, job := range r.SubsequentJobs {
		dup.SubsequentJobs[i] = JobEntry{
			Company: job.Company,
			Titles:  append([]string(nil), job.Titles...),
		}
	}
	dup.CurrentCities = append([]string(nil), r.CurrentCities...)
	dup.Organizations = append([]OrganizationEntry(nil), r.Organizations...)
	dup.TravelCities = append([]string(nil), r.TravelCities...)
	return dup
}
