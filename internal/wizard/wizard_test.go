package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ganghq/profile360/internal/draft"
)

func TestStageSequenceAndSaturation(t *testing.T) {
	w := New()
	assert.Equal(t, StageWelcome, w.Current())

	w.Prev()
	assert.Equal(t, StageWelcome, w.Current(), "back saturates at the first stage")

	for i := 0; i < TotalStages+5; i++ {
		w.Next()
	}
	assert.Equal(t, StageComplete, w.Current(), "forward saturates at the last stage")
	assert.Equal(t, TotalStages-1, w.Step())

	w.Prev()
	assert.Equal(t, StageLifeStories, w.Current())
}

func TestGoToIgnoresOutOfRange(t *testing.T) {
	w := New()
	w.GoTo(int(StageLocation))
	assert.Equal(t, StageLocation, w.Current())

	w.GoTo(-1)
	assert.Equal(t, StageLocation, w.Current())
	w.GoTo(TotalStages)
	assert.Equal(t, StageLocation, w.Current())
}

func TestProgressPercent(t *testing.T) {
	w := New()
	cases := []struct {
		stage Stage
		want  int
	}{
		{StageWelcome, 0},
		{StageShare360, 10},
		{StageBasicInfo, 20},
		{StageQuote, 40},
		{StageJoy, 70},
		{StageContent, 90},
		{StageLifeStories, 100},
		{StageComplete, 100},
	}
	for _, tc := range cases {
		w.GoTo(int(tc.stage))
		assert.Equalf(t, tc.want, w.ProgressPercent(), "stage %s", tc.stage)
	}
}

func TestCompletionPercentage(t *testing.T) {
	d := &draft.Draft{}
	assert.Equal(t, 0, CompletionPercentage(d))

	d.FirstName = "Asha"
	d.LastName = "Rao"
	d.CurrentOrganization = "Night Owls Labs"
	d.CurrentRole = "Engineer"
	d.InspiringQuote = "Make it count"
	assert.Equal(t, 50, CompletionPercentage(d))

	d.JoyOutsideWork = "trail running"
	d.Introduction = "Hello"
	d.Locality = "Indiranagar"
	d.City = "Bengaluru"
	d.Pincode = "560038"
	assert.Equal(t, 100, CompletionPercentage(d))

	d.City = "   "
	assert.Equal(t, 90, CompletionPercentage(d), "whitespace-only fields do not count")
}
