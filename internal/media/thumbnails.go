// internal/media/thumbnails.go
//
// The thumbnail collaborator: given a video URI, yield still-image URIs
// sampled at non-deterministic offsets. Refresh is just another call,
// which regenerates with new offsets. A user-supplied custom image
// always wins once selected; that precedence lives with the caller.

package media

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultThumbnailCount is how many stills one generation pass yields.
const DefaultThumbnailCount = 4

// ThumbnailGenerator produces still-image URIs for a video.
type ThumbnailGenerator interface {
	Generate(videoURI string, count int) ([]string, error)
}

// FrameSampler derives thumbnails as media-fragment URIs into the
// source video, each pointing at a randomized offset within a fixed
// band of the timeline.
type FrameSampler struct {
	rng *rand.Rand
}

// NewFrameSampler creates a sampler seeded from the clock.
func NewFrameSampler() *FrameSampler {
	return &FrameSampler{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededFrameSampler creates a deterministic sampler for tests.
func NewSeededFrameSampler(seed int64) *FrameSampler {
	return &FrameSampler{rng: rand.New(rand.NewSource(seed))}
}

// Generate yields count still URIs for videoURI. Offsets are fractions
// of the video timeline: each sample lands in its own band so the
// stills spread across the recording.
func (s *FrameSampler) Generate(videoURI string, count int) ([]string, error) {
	if videoURI == "" {
		return nil, fmt.Errorf("media: no video to sample")
	}
	if count <= 0 {
		count = DefaultThumbnailCount
	}
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		band := float64(i) / float64(count)
		width := 1.0/float64(count) + 0.05
		offset := band + s.rng.Float64()*width
		if offset > 0.95 {
			offset = 0.95
		}
		out = append(out, fmt.Sprintf("%s#t=%.2f", videoURI, offset))
	}
	return out, nil
}
