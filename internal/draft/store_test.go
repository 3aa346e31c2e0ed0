package draft

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestApplyProfileMergesOnlySetFields(t *testing.T) {
	s := NewStore()
	s.ApplyProfile(ProfileUpdate{FirstName: strp("Asha"), LastName: strp("Rao")})
	s.ApplyProfile(ProfileUpdate{FirstName: strp("Aisha")})

	d := s.Draft()
	assert.Equal(t, "Aisha", d.FirstName, "last write wins")
	assert.Equal(t, "Rao", d.LastName, "unset fields are untouched")
	assert.Empty(t, d.City)
}

func TestApplyProfileIntroductionWordCap(t *testing.T) {
	s := NewStore()

	within := strings.Repeat("word ", MaxIntroductionWords)
	s.ApplyProfile(ProfileUpdate{Introduction: strp(strings.TrimSpace(within))})
	require.Equal(t, MaxIntroductionWords, WordCount(s.Draft().Introduction))

	over := strings.Repeat("word ", MaxIntroductionWords+1)
	s.ApplyProfile(ProfileUpdate{Introduction: strp(strings.TrimSpace(over))})
	assert.Equal(t, MaxIntroductionWords, WordCount(s.Draft().Introduction), "growth past the cap is rejected")

	s.ApplyProfile(ProfileUpdate{Introduction: strp("short again")})
	assert.Equal(t, "short again", s.Draft().Introduction, "shrinking is always allowed")
}

func TestWordCapAllowsEditingDownOverCapValue(t *testing.T) {
	s := NewStore()
	rec := s.Story(SlotEarlyLife)
	// Summaries can land over cap programmatically; typing must still be
	// able to shrink them.
	rec.Summary = strings.TrimSpace(strings.Repeat("w ", MaxSummaryWords+20))

	shorter := strings.TrimSpace(strings.Repeat("w ", MaxSummaryWords+10))
	s.ApplyStory(SlotEarlyLife, StoryUpdate{Summary: &shorter})
	assert.Equal(t, MaxSummaryWords+10, WordCount(s.Story(SlotEarlyLife).Summary))
}

func TestInputMethodChangeResetsMediaState(t *testing.T) {
	s := NewStore()
	video := InputVideo
	s.ApplyStory(SlotEarlyLife, StoryUpdate{InputMethod: &video})
	ref := MediaRef{URI: "clip.webm", Size: 10}
	s.ApplyStory(SlotEarlyLife, StoryUpdate{VideoRef: &ref})
	thumb := "clip.webm#t=0.25"
	s.ApplyStory(SlotEarlyLife, StoryUpdate{Thumbnail: &thumb})

	rec := s.Story(SlotEarlyLife)
	require.NotNil(t, rec.VideoRef)
	require.Equal(t, thumb, rec.Thumbnail)

	audio := InputAudio
	s.ApplyStory(SlotEarlyLife, StoryUpdate{InputMethod: &audio})
	rec = s.Story(SlotEarlyLife)
	assert.Nil(t, rec.VideoRef, "method change clears media")
	assert.Empty(t, rec.Thumbnail)
	assert.Equal(t, InputAudio, rec.InputMethod)

	// Re-applying the same method is not a reset.
	s.ApplyStory(SlotEarlyLife, StoryUpdate{AudioRef: &MediaRef{URI: "clip.ogg"}})
	s.ApplyStory(SlotEarlyLife, StoryUpdate{InputMethod: &audio})
	assert.NotNil(t, s.Story(SlotEarlyLife).AudioRef)
}

func TestMediaFieldsAreMutuallyExclusive(t *testing.T) {
	s := NewStore()
	video := InputVideo
	s.ApplyStory(SlotCurrent, StoryUpdate{InputMethod: &video})
	s.ApplyStory(SlotCurrent, StoryUpdate{VideoRef: &MediaRef{URI: "a.webm"}})

	text := "my story in writing"
	s.ApplyStory(SlotCurrent, StoryUpdate{Text: &text})
	rec := s.Story(SlotCurrent)
	assert.Nil(t, rec.VideoRef)
	assert.Nil(t, rec.AudioRef)
	assert.Equal(t, text, rec.Text)
	assert.Empty(t, rec.Thumbnail)
}

func TestThumbnailOnlyAppliesToVideo(t *testing.T) {
	s := NewStore()
	audio := InputAudio
	s.ApplyStory(SlotProfessional, StoryUpdate{InputMethod: &audio})
	thumb := "still.png"
	s.ApplyStory(SlotProfessional, StoryUpdate{Thumbnail: &thumb})
	assert.Empty(t, s.Story(SlotProfessional).Thumbnail)
}

func TestTagCap(t *testing.T) {
	s := NewStore()
	for i := 0; i < MaxTags; i++ {
		require.True(t, s.AppendStoryTag(SlotEarlyLife, "tag"))
	}
	assert.False(t, s.AppendStoryTag(SlotEarlyLife, "one too many"), "append past cap is a no-op")
	assert.Len(t, s.Story(SlotEarlyLife).Tags, MaxTags)

	over := make([]string, MaxTags+1)
	for i := range over {
		over[i] = "t"
	}
	s.ApplyStory(SlotEarlyLife, StoryUpdate{Tags: &over})
	assert.Len(t, s.Story(SlotEarlyLife).Tags, MaxTags, "oversized assignment is rejected")

	replacement := []string{"a", "b"}
	s.ApplyStory(SlotEarlyLife, StoryUpdate{Tags: &replacement})
	assert.Equal(t, replacement, s.Story(SlotEarlyLife).Tags)
}

func TestAppendStoryTagTrims(t *testing.T) {
	s := NewStore()
	assert.False(t, s.AppendStoryTag(SlotCurrent, "   "))
	assert.True(t, s.AppendStoryTag(SlotCurrent, "  cricket  "))
	assert.Equal(t, []string{"cricket"}, s.Story(SlotCurrent).Tags)
}

func TestStoryPanicsOnUnknownSlot(t *testing.T) {
	s := NewStore()
	assert.Panics(t, func() { s.Story(Slot("pastLives")) })
}

func TestCloneIsDeep(t *testing.T) {
	s := NewStore()
	s.ApplyProfile(ProfileUpdate{FirstName: strp("Asha")})
	s.AppendStoryTag(SlotEarlyLife, "books")
	links := []ContentLink{{URL: "https://example.com/talk"}}
	s.ApplyProfile(ProfileUpdate{ContentLinks: &links})

	dup := s.Draft().Clone()
	dup.LifeStories[SlotEarlyLife].Tags[0] = "mutated"
	dup.ContentLinks[0].URL = "mutated"

	assert.Equal(t, "books", s.Story(SlotEarlyLife).Tags[0])
	assert.Equal(t, "https://example.com/talk", s.Draft().ContentLinks[0].URL)
}
