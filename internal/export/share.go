package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrShareCancelled is returned by a Sharer when the user backed out of the
// share. The pipeline treats it as a normal, silent completion.
var ErrShareCancelled = errors.New("share cancelled")

// Capability is the share capability of the running platform, detected once
// at startup and consumed uniformly by the pipeline.
type Capability int

const (
	// FileShareCapable platforms take the PDF as an attachment.
	FileShareCapable Capability = iota
	// LinkOnly platforms only get a messaging deep link; the PDF has to be
	// attached by hand.
	LinkOnly
)

// Attachment is a built PDF plus the text that accompanies it.
type Attachment struct {
	FileName string
	Data     []byte
	Title    string
	Text     string
}

// Sharer hands a finished export to the platform's share mechanism.
type Sharer interface {
	Capability() Capability
	ShareFile(ctx context.Context, destination string, att Attachment) error
}

// OutboxSharer is the file-capable sharer: it delivers the attachment by
// dropping it into the outbox directory, where the companion messaging
// client picks it up.
type OutboxSharer struct {
	dir string
}

func NewOutboxSharer(dir string) *OutboxSharer {
	return &OutboxSharer{dir: dir}
}

func (s *OutboxSharer) Capability() Capability {
	return FileShareCapable
}

func (s *OutboxSharer) ShareFile(_ context.Context, _ string, att Attachment) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating outbox: %w", err)
	}
	path := filepath.Join(s.dir, att.FileName)
	if err := os.WriteFile(path, att.Data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", att.FileName, err)
	}
	return nil
}

// LinkOnlySharer is the fallback for platforms without file sharing. It
// never accepts a file; callers fall back to the messaging deep link.
type LinkOnlySharer struct{}

func (LinkOnlySharer) Capability() Capability {
	return LinkOnly
}

func (LinkOnlySharer) ShareFile(context.Context, string, Attachment) error {
	return errors.New("file sharing not supported")
}

// DetectSharer picks the share capability once at startup: platforms where
// the outbox directory is usable are file-share capable, everything else is
// link-only.
func DetectSharer(outboxDir string) Sharer {
	if outboxDir == "" {
		return LinkOnlySharer{}
	}
	if err := os.MkdirAll(outboxDir, 0o755); err != nil {
		return LinkOnlySharer{}
	}
	return NewOutboxSharer(outboxDir)
}

// MessagingLink is the manual-share deep link for a destination number
// (country code included, no plus sign).
func MessagingLink(destination string) string {
	return "https://wa.me/" + destination
}
