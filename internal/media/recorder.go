// internal/media/recorder.go
//
// The capture collaborator. The onboarding core only needs three things
// from it: an exclusive device for the recording's lifetime, a
// pause/resume toggle that keeps the device held, and a finalized
// URI-addressable clip on stop. The local recorder simulates the device
// and writes clips under the project's media directory.

package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ganghq/profile360/internal/draft"
)

var (
	// ErrDeviceUnavailable means the camera/microphone could not be
	// opened. Non-fatal: the input sub-stage stays put and the user can
	// retry.
	ErrDeviceUnavailable = errors.New("media: capture device unavailable")

	// ErrDeviceBusy means another recording already holds the device.
	ErrDeviceBusy = errors.New("media: capture device already in use")

	// ErrNotRecording is returned by Pause/Resume/Stop without an
	// active recording.
	ErrNotRecording = errors.New("media: no active recording")
)

// Clip is a finalized recording.
type Clip struct {
	Method   draft.InputMethod
	URI      string
	Size     int64
	Duration time.Duration
}

// Ref converts the clip into the draft's media reference shape.
func (c Clip) Ref() draft.MediaRef {
	return draft.MediaRef{URI: c.URI, Size: c.Size, Duration: c.Duration}
}

// Recorder is the contract the input sub-stage drives.
type Recorder interface {
	// Start acquires the device and begins recording with the given
	// method (video or audio).
	Start(method draft.InputMethod) error
	// Pause suspends recording without releasing the device.
	Pause() error
	// Resume continues a paused recording.
	Resume() error
	// Stop finalizes the recording into a clip and releases the device.
	Stop() (Clip, error)
	// Release aborts any active recording and frees the device. Safe to
	// call on teardown regardless of state.
	Release()
}

// DeviceGuard models the exclusive camera/microphone handle. It exists
// so tests and the TUI can observe that the device is held for exactly
// the recording's lifetime.
type DeviceGuard struct {
	held bool
}

// Acquire takes the device, failing if something already holds it.
func (g *DeviceGuard) Acquire() error {
	if g.held {
		return ErrDeviceBusy
	}
	g.held = true
	return nil
}

// Release frees the device. Releasing an unheld device is a no-op.
func (g *DeviceGuard) Release() {
	g.held = false
}

// Held reports whether the device is currently acquired.
func (g *DeviceGuard) Held() bool {
	return g.held
}

// LocalRecorder simulates a capture device and persists clips as files
// under mediaDir. The file stands in for the encoded blob; its path is
// the clip URI.
type LocalRecorder struct {
	mediaDir string
	guard    *DeviceGuard

	method      draft.InputMethod
	recording   bool
	paused      bool
	startedAt   time.Time
	pausedAt    time.Time
	pausedTotal time.Duration

	now func() time.Time
}

// NewLocalRecorder creates a recorder writing clips into mediaDir,
// sharing guard with whoever else might contend for the device.
func NewLocalRecorder(mediaDir string, guard *DeviceGuard) *LocalRecorder {
	if guard == nil {
		guard = &DeviceGuard{}
	}
	return &LocalRecorder{mediaDir: mediaDir, guard: guard, now: time.Now}
}

// Start acquires the device and begins recording.
func (r *LocalRecorder) Start(method draft.InputMethod) error {
	if method != draft.InputVideo && method != draft.InputAudio {
		return fmt.Errorf("media: cannot record with method %q", method)
	}
	if err := r.guard.Acquire(); err != nil {
		return err
	}
	if err := os.MkdirAll(r.mediaDir, 0o755); err != nil {
		r.guard.Release()
		return fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	r.method = method
	r.recording = true
	r.paused = false
	r.startedAt = r.now()
	r.pausedTotal = 0
	return nil
}

// Pause suspends the recording, keeping the device held.
func (r *LocalRecorder) Pause() error {
	if !r.recording {
		return ErrNotRecording
	}
	if !r.paused {
		r.paused = true
		r.pausedAt = r.now()
	}
	return nil
}

// Resume continues a paused recording.
func (r *LocalRecorder) Resume() error {
	if !r.recording {
		return ErrNotRecording
	}
	if r.paused {
		r.pausedTotal += r.now().Sub(r.pausedAt)
		r.paused = false
	}
	return nil
}

// Stop finalizes the recording into a clip file and releases the
// device.
func (r *LocalRecorder) Stop() (Clip, error) {
	if !r.recording {
		return Clip{}, ErrNotRecording
	}
	if r.paused {
		r.pausedTotal += r.now().Sub(r.pausedAt)
		r.paused = false
	}
	duration := r.now().Sub(r.startedAt) - r.pausedTotal
	ext := ".webm"
	if r.method == draft.InputAudio {
		ext = ".ogg"
	}
	path := filepath.Join(r.mediaDir, uuid.NewString()+ext)
	payload := fmt.Sprintf("%s recording · %s\n", r.method, duration)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		r.Release()
		return Clip{}, fmt.Errorf("media: finalize clip: %w", err)
	}
	clip := Clip{
		Method:   r.method,
		URI:      path,
		Size:     int64(len(payload)),
		Duration: duration,
	}
	r.recording = false
	r.guard.Release()
	return clip, nil
}

// Release aborts the recording and frees the device.
func (r *LocalRecorder) Release() {
	r.recording = false
	r.paused = false
	r.guard.Release()
}

// Recording reports whether a recording is in progress.
func (r *LocalRecorder) Recording() bool {
	return r.recording
}

// Paused reports whether the active recording is paused.
func (r *LocalRecorder) Paused() bool {
	return r.recording && r.paused
}
