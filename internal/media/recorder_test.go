package media

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganghq/profile360/internal/draft"
)

// fakeClock advances only when told, so durations are deterministic.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestRecorder(t *testing.T) (*LocalRecorder, *DeviceGuard, *fakeClock) {
	t.Helper()
	guard := &DeviceGuard{}
	r := NewLocalRecorder(t.TempDir(), guard)
	clock := &fakeClock{now: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)}
	r.now = clock.Now
	return r, guard, clock
}

func TestRecordingLifecycle(t *testing.T) {
	r, guard, clock := newTestRecorder(t)

	require.NoError(t, r.Start(draft.InputVideo))
	assert.True(t, guard.Held(), "device is held while recording")
	assert.True(t, r.Recording())

	clock.Advance(3 * time.Second)
	clip, err := r.Stop()
	require.NoError(t, err)
	assert.Equal(t, draft.InputVideo, clip.Method)
	assert.Equal(t, 3*time.Second, clip.Duration)
	assert.True(t, strings.HasSuffix(clip.URI, ".webm"))
	assert.False(t, guard.Held(), "device is released on stop")

	if _, err := os.Stat(clip.URI); err != nil {
		t.Fatalf("clip file missing: %v", err)
	}

	ref := clip.Ref()
	assert.Equal(t, clip.URI, ref.URI)
	assert.Equal(t, clip.Duration, ref.Duration)
}

func TestAudioClipExtension(t *testing.T) {
	r, _, clock := newTestRecorder(t)
	require.NoError(t, r.Start(draft.InputAudio))
	clock.Advance(time.Second)
	clip, err := r.Stop()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(clip.URI, ".ogg"))
}

func TestPauseExcludedFromDuration(t *testing.T) {
	r, _, clock := newTestRecorder(t)
	require.NoError(t, r.Start(draft.InputAudio))

	clock.Advance(2 * time.Second)
	require.NoError(t, r.Pause())
	assert.True(t, r.Paused())

	clock.Advance(10 * time.Second)
	require.NoError(t, r.Resume())
	assert.False(t, r.Paused())

	clock.Advance(1 * time.Second)
	clip, err := r.Stop()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, clip.Duration, "paused time does not count")
}

func TestStopWhilePausedCountsActiveTimeOnly(t *testing.T) {
	r, _, clock := newTestRecorder(t)
	require.NoError(t, r.Start(draft.InputAudio))
	clock.Advance(4 * time.Second)
	require.NoError(t, r.Pause())
	clock.Advance(30 * time.Second)
	clip, err := r.Stop()
	require.NoError(t, err)
	assert.Equal(t, 4*time.Second, clip.Duration)
}

func TestDeviceBusy(t *testing.T) {
	guard := &DeviceGuard{}
	first := NewLocalRecorder(t.TempDir(), guard)
	second := NewLocalRecorder(t.TempDir(), guard)

	require.NoError(t, first.Start(draft.InputVideo))
	err := second.Start(draft.InputAudio)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeviceBusy)

	first.Release()
	assert.NoError(t, second.Start(draft.InputAudio))
}

func TestReleaseAbortsRecording(t *testing.T) {
	r, guard, _ := newTestRecorder(t)
	require.NoError(t, r.Start(draft.InputVideo))
	r.Release()
	assert.False(t, r.Recording())
	assert.False(t, guard.Held())
	_, err := r.Stop()
	assert.ErrorIs(t, err, ErrNotRecording)
}

func TestOperationsWithoutRecording(t *testing.T) {
	r, _, _ := newTestRecorder(t)
	assert.ErrorIs(t, r.Pause(), ErrNotRecording)
	assert.ErrorIs(t, r.Resume(), ErrNotRecording)
	_, err := r.Stop()
	assert.ErrorIs(t, err, ErrNotRecording)

	err = r.Start(draft.InputText)
	require.Error(t, err, "text is not a recordable method")
}

func TestFrameSamplerGeneratesFragmentURIs(t *testing.T) {
	sampler := NewSeededFrameSampler(42)
	thumbs, err := sampler.Generate("clip.webm", DefaultThumbnailCount)
	require.NoError(t, err)
	require.Len(t, thumbs, DefaultThumbnailCount)
	for _, thumb := range thumbs {
		assert.Contains(t, thumb, "clip.webm#t=")
	}

	again, err := NewSeededFrameSampler(42).Generate("clip.webm", DefaultThumbnailCount)
	require.NoError(t, err)
	assert.Equal(t, thumbs, again, "same seed yields the same stills")

	refreshed, err := sampler.Generate("clip.webm", DefaultThumbnailCount)
	require.NoError(t, err)
	assert.NotEqual(t, thumbs, refreshed, "refresh draws new offsets")
}

func TestFrameSamplerValidation(t *testing.T) {
	sampler := NewSeededFrameSampler(1)
	_, err := sampler.Generate("", 4)
	require.Error(t, err)

	thumbs, err := sampler.Generate("clip.webm", 0)
	require.NoError(t, err)
	assert.Len(t, thumbs, DefaultThumbnailCount, "non-positive count falls back to the default")
}
