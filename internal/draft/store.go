// internal/draft/store.go
//
// Store is the single source of truth for all onboarding-entered data.
// Mutations are shallow merges: non-nil fields of an update win, field by
// field. There is a single writer (the active view) at a time, so no
// locking or versioning is needed.

package draft

import "strings"

// Store owns the Draft for one onboarding session.
type Store struct {
	draft Draft
}

// NewStore creates a store with all-empty defaults and the three fixed
// story slots initialized.
func NewStore() *Store {
	s := &Store{}
	s.draft.LifeStories = map[Slot]*StoryRecord{
		SlotEarlyLife:    {},
		SlotProfessional: {},
		SlotCurrent:      {},
	}
	return s
}

// Draft exposes the aggregate for reading. Callers mutate through the
// Apply methods, never directly.
func (s *Store) Draft() *Draft {
	return &s.draft
}

// Story returns the record for slot. Unknown slots are a programming
// error: the slot set is closed.
func (s *Store) Story(slot Slot) *StoryRecord {
	rec, ok := s.draft.LifeStories[slot]
	if !ok {
		panic("draft: unknown story slot " + string(slot))
	}
	return rec
}

// ProfileUpdate is a partial merge into the top-level draft. Nil fields
// are left untouched.
type ProfileUpdate struct {
	ProfilePicture        *string
	ProfilePicturePreview *string
	FirstName             *string
	MiddleName            *string
	LastName              *string
	CurrentOrganization   *string
	CurrentRole           *string
	InspiringQuote        *string

	Introduction   *string // capped at MaxIntroductionWords
	LivesIn        *string
	City           *string
	Pincode        *string
	Locality       *string
	JoyOutsideWork *string

	Email            *string
	Mobile           *string
	Twitter          *string
	Instagram        *string
	LinkedIn         *string
	ContentLinks     *[]ContentLink
	OtherSocialLinks *[]string
}

// StoryUpdate is a partial merge into one story record. Nil fields are
// left untouched. Setting InputMethod to a different value resets the
// downstream media state; setting a media field clears its rivals so the
// exclusivity invariant holds.
type StoryUpdate struct {
	InputMethod *InputMethod
	VideoRef    *MediaRef
	AudioRef    *MediaRef
	Text        *string
	Thumbnail   *string

	Summary *string   // capped at MaxSummaryWords
	Tags    *[]string // capped at MaxTags

	BornIn       *string
	Hometown     *string
	Schools      *[]SchoolEntry
	Universities *[]UniversityEntry

	FirstJob       *JobEntry
	SubsequentJobs *[]JobEntry

	CurrentCities *[]string
	Organizations *[]OrganizationEntry
	TravelCities  *[]string
}

// ApplyProfile merges u into the draft, last write wins per field.
func (s *Store) ApplyProfile(u ProfileUpdate) {
	d := &s.draft
	setString(&d.ProfilePicture, u.ProfilePicture)
	setString(&d.ProfilePicturePreview, u.ProfilePicturePreview)
	setString(&d.FirstName, u.FirstName)
	setString(&d.MiddleName, u.MiddleName)
	setString(&d.LastName, u.LastName)
	setString(&d.CurrentOrganization, u.CurrentOrganization)
	setString(&d.CurrentRole, u.CurrentRole)
	setString(&d.InspiringQuote, u.InspiringQuote)
	if u.Introduction != nil {
		setBoundedWords(&d.Introduction, *u.Introduction, MaxIntroductionWords)
	}
	setString(&d.LivesIn, u.LivesIn)
	setString(&d.City, u.City)
	setString(&d.Pincode, u.Pincode)
	setString(&d.Locality, u.Locality)
	setString(&d.JoyOutsideWork, u.JoyOutsideWork)
	setString(&d.Email, u.Email)
	setString(&d.Mobile, u.Mobile)
	setString(&d.Twitter, u.Twitter)
	setString(&d.Instagram, u.Instagram)
	setString(&d.LinkedIn, u.LinkedIn)
	if u.ContentLinks != nil {
		d.ContentLinks = append([]ContentLink(nil), (*u.ContentLinks)...)
	}
	if u.OtherSocialLinks != nil {
		d.OtherSocialLinks = append([]string(nil), (*u.OtherSocialLinks)...)
	}
}

// ApplyStory merges u into the record for slot.
func (s *Store) ApplyStory(slot Slot, u StoryUpdate) {
	rec := s.Story(slot)
	if u.InputMethod != nil && *u.InputMethod != rec.InputMethod {
		rec.InputMethod = *u.InputMethod
		rec.VideoRef = nil
		rec.AudioRef = nil
		rec.Text = ""
		rec.Thumbnail = ""
	}
	if u.VideoRef != nil {
		ref := *u.VideoRef
		rec.VideoRef = &ref
		rec.AudioRef = nil
		rec.Text = ""
	}
	if u.AudioRef != nil {
		ref := *u.AudioRef
		rec.AudioRef = &ref
		rec.VideoRef = nil
		rec.Text = ""
		rec.Thumbnail = ""
	}
	if u.Text != nil {
		rec.Text = *u.Text
		rec.VideoRef = nil
		rec.AudioRef = nil
		rec.Thumbnail = ""
	}
	if u.Thumbnail != nil && rec.InputMethod == InputVideo {
		rec.Thumbnail = *u.Thumbnail
	}
	if u.Summary != nil {
		setBoundedWords(&rec.Summary, *u.Summary, MaxSummaryWords)
	}
	if u.Tags != nil && len(*u.Tags) <= MaxTags {
		rec.Tags = append([]string(nil), (*u.Tags)...)
	}
	setString(&rec.BornIn, u.BornIn)
	setString(&rec.Hometown, u.Hometown)
	if u.Schools != nil {
		rec.Schools = append([]SchoolEntry(nil), (*u.Schools)...)
	}
	if u.Universities != nil {
		rec.Universities = append([]UniversityEntry(nil), (*u.Universities)...)
	}
	if u.FirstJob != nil {
		job := *u.FirstJob
		job.Titles = append([]string(nil), u.FirstJob.Titles...)
		rec.FirstJob = &job
	}
	if u.SubsequentJobs != nil {
		rec.SubsequentJobs = append([]JobEntry(nil), (*u.SubsequentJobs)...)
	}
	if u.CurrentCities != nil {
		rec.CurrentCities = append([]string(nil), (*u.CurrentCities)...)
	}
	if u.Organizations != nil {
		rec.Organizations = append([]OrganizationEntry(nil), (*u.Organizations)...)
	}
	if u.TravelCities != nil {
		rec.TravelCities = append([]string(nil), (*u.TravelCities)...)
	}
}

// AppendStoryTag appends one trimmed tag to the slot's tag list.
// Appending past MaxTags is a no-op; reports whether the tag was added.
func (s *Store) AppendStoryTag(slot Slot, tag string) bool {
	rec := s.Story(slot)
	tag = strings.TrimSpace(tag)
	if tag == "" || len(rec.Tags) >= MaxTags {
		return false
	}
	rec.Tags = append(rec.Tags, tag)
	return true
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// setBoundedWords assigns value unless it would grow the field past the
// word cap. Shrinking is always allowed, so a value that is already over
// cap (set programmatically) can still be edited down.
func setBoundedWords(dst *string, value string, limit int) bool {
	words := WordCount(value)
	if words > limit && words >= WordCount(*dst) {
		return false
	}
	*dst = value
	return true
}
