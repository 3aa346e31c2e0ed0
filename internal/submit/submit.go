// internal/submit/submit.go
//
// The submission collaborator. The core's contract ends at a
// synchronous acknowledgment: hand over a finished draft (or one story
// for review) and get a receipt back. Delivery to the actual backend is
// this collaborator's concern, not the wizard's; the file submitter
// spools submission documents for a later sync.

package submit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ganghq/profile360/internal/draft"
)

// Receipt is the synchronous acknowledgment for a submission.
type Receipt struct {
	ID          string    `yaml:"id"`
	Kind        string    `yaml:"kind"`
	SubmittedAt time.Time `yaml:"submittedAt"`
	Path        string    `yaml:"-"`
}

// Submitter accepts finished onboarding data for backend review.
type Submitter interface {
	SubmitDraft(d draft.Draft) (Receipt, error)
	SubmitStory(slot draft.Slot, rec draft.StoryRecord) (Receipt, error)
}

type draftDocument struct {
	ID          string      `yaml:"id"`
	Kind        string      `yaml:"kind"`
	SubmittedAt time.Time   `yaml:"submittedAt"`
	Profile     draft.Draft `yaml:"profile"`
}

type storyDocument struct {
	ID          string            `yaml:"id"`
	Kind        string            `yaml:"kind"`
	SubmittedAt time.Time         `yaml:"submittedAt"`
	Slot        draft.Slot        `yaml:"slot"`
	Story       draft.StoryRecord `yaml:"story"`
}

// FileSubmitter writes submission documents as YAML files under dir.
type FileSubmitter struct {
	dir string
	now func() time.Time
}

// NewFileSubmitter creates a submitter spooling into dir.
func NewFileSubmitter(dir string) *FileSubmitter {
	return &FileSubmitter{dir: dir, now: time.Now}
}

// SubmitDraft accepts the full profile draft.
func (s *FileSubmitter) SubmitDraft(d draft.Draft) (Receipt, error) {
	receipt := s.newReceipt("profile")
	doc := draftDocument{
		ID:          receipt.ID,
		Kind:        receipt.Kind,
		SubmittedAt: receipt.SubmittedAt,
		Profile:     d,
	}
	path, err := s.write(receipt.ID, doc)
	if err != nil {
		return Receipt{}, err
	}
	receipt.Path = path
	return receipt, nil
}

// SubmitStory accepts one life story for review.
func (s *FileSubmitter) SubmitStory(slot draft.Slot, rec draft.StoryRecord) (Receipt, error) {
	if !slot.Valid() {
		return Receipt{}, fmt.Errorf("submit: unknown story slot %q", slot)
	}
	receipt := s.newReceipt("life-story")
	doc := storyDocument{
		ID:          receipt.ID,
		Kind:        receipt.Kind,
		SubmittedAt: receipt.SubmittedAt,
		Slot:        slot,
		Story:       rec,
	}
	path, err := s.write(receipt.ID, doc)
	if err != nil {
		return Receipt{}, err
	}
	receipt.Path = path
	return receipt, nil
}

func (s *FileSubmitter) newReceipt(kind string) Receipt {
	return Receipt{
		ID:          uuid.NewString(),
		Kind:        kind,
		SubmittedAt: s.now().UTC(),
	}
}

func (s *FileSubmitter) write(id string, doc any) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("submit: prepare spool dir: %w", err)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("submit: encode document: %w", err)
	}
	path := filepath.Join(s.dir, id+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("submit: write document: %w", err)
	}
	return path, nil
}
