package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"rajubill/internal/config"
	"rajubill/internal/domain"
	apperrors "rajubill/internal/errors"

	"go.uber.org/zap"
)

// Status is the export flow state. Each invocation runs the full chain
// Idle -> Rendering -> Capturing -> BuildingPdf -> {Sharing|Printing} ->
// {Success|Error}; nothing persists across invocations.
type Status string

const (
	StatusIdle        Status = "idle"
	StatusRendering   Status = "rendering"
	StatusCapturing   Status = "capturing"
	StatusBuildingPdf Status = "building_pdf"
	StatusSharing     Status = "sharing"
	StatusPrinting    Status = "printing"
	StatusSuccess     Status = "success"
	StatusError       Status = "error"
)

// ShareResult reports how a share ended. Exactly one of Delivered,
// Cancelled or Link describes the path taken.
type ShareResult struct {
	FileName  string `json:"fileName"`
	Delivered bool   `json:"delivered"`
	Cancelled bool   `json:"cancelled"`
	Link      string `json:"link,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Pipeline turns one bill into a delivered PDF. It is not safe for
// concurrent invocations and is not meant to be: exports are serial,
// user-triggered actions.
type Pipeline struct {
	sharer      Sharer
	outboxDir   string
	pageWidthMM float64
	resetDelay  time.Duration
	logger      *zap.Logger

	mu         sync.Mutex
	status     Status
	lastError  string
	resetTimer *time.Timer
}

func NewPipeline(sharer Sharer, cfg config.ExportConfig, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		sharer:      sharer,
		outboxDir:   cfg.OutboxDir,
		pageWidthMM: cfg.PageWidthMM,
		resetDelay:  cfg.SuccessResetDelay,
		logger:      logger,
		status:      StatusIdle,
	}
}

// Status returns the current flow state and, after a failure, the
// user-visible message of the last error.
func (p *Pipeline) Status() (Status, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status, p.lastError
}

// BuildPDF is the standalone download flow: render -> capture -> build,
// finishing the state machine on success like the share and print flows do.
func (p *Pipeline) BuildPDF(bill domain.Bill) ([]byte, error) {
	pdf, err := p.buildPDF(bill)
	if err != nil {
		return nil, err
	}
	p.succeed()
	return pdf, nil
}

// buildPDF runs render -> capture -> build and leaves the terminal step to
// the caller.
func (p *Pipeline) buildPDF(bill domain.Bill) ([]byte, error) {
	p.transition(StatusRendering)
	view := Document(bill)

	p.transition(StatusCapturing)
	img, err := Capture(view)
	if err != nil {
		p.fail(err)
		return nil, err
	}

	p.transition(StatusBuildingPdf)
	pdf, err := BuildPDF(img, p.pageWidthMM)
	if err != nil {
		p.fail(err)
		return nil, err
	}

	return pdf, nil
}

// SaveLocally is the print/save-as-PDF flow: the built PDF lands in the
// outbox under the deterministic file name.
func (p *Pipeline) SaveLocally(bill domain.Bill) (string, error) {
	pdf, err := p.buildPDF(bill)
	if err != nil {
		return "", err
	}

	p.transition(StatusPrinting)
	if err := os.MkdirAll(p.outboxDir, 0o755); err != nil {
		err = apperrors.NewStorageUnavailableError("creating outbox", err)
		p.fail(err)
		return "", err
	}

	path := filepath.Join(p.outboxDir, FileName(bill))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		err = apperrors.NewStorageUnavailableError("saving pdf", err)
		p.fail(err)
		return "", err
	}

	p.succeed()
	p.logger.Info("bill pdf saved", zap.String("path", path))
	return path, nil
}

// Share delivers the bill to the destination number. An empty destination
// aborts before any rendering happens. With a file-capable sharer the PDF
// goes out as an attachment and a cancelled share completes silently;
// otherwise the caller gets the messaging deep link plus an instruction to
// attach the saved PDF by hand.
func (p *Pipeline) Share(ctx context.Context, bill domain.Bill, destination string) (*ShareResult, error) {
	if destination == "" {
		err := apperrors.NewMissingDestinationError("Please set WhatsApp number in settings first")
		p.fail(err)
		return nil, err
	}

	pdf, err := p.buildPDF(bill)
	if err != nil {
		return nil, err
	}

	p.transition(StatusSharing)

	fileName := FileName(bill)
	result := &ShareResult{FileName: fileName}

	if p.sharer.Capability() == FileShareCapable {
		att := Attachment{
			FileName: fileName,
			Data:     pdf,
			Title:    "Bill " + bill.OrderNumber,
			Text:     SummaryText(bill),
		}
		err := p.sharer.ShareFile(ctx, destination, att)
		switch {
		case err == nil:
			result.Delivered = true
		case errors.Is(err, ErrShareCancelled):
			// User backed out; not an error.
			result.Cancelled = true
		default:
			p.fail(err)
			return nil, err
		}

		p.succeed()
		p.logger.Info("bill shared",
			zap.String("billId", bill.ID),
			zap.String("fileName", fileName),
			zap.Bool("cancelled", result.Cancelled),
		)
		return result, nil
	}

	// Link-only fallback: keep a local copy for the manual attach.
	if mkErr := os.MkdirAll(p.outboxDir, 0o755); mkErr == nil {
		_ = os.WriteFile(filepath.Join(p.outboxDir, fileName), pdf, 0o644)
	}

	result.Link = MessagingLink(destination)
	result.Message = "Direct file sharing is not supported. Please use the downloaded PDF."

	p.succeed()
	p.logger.Info("bill share fell back to link",
		zap.String("billId", bill.ID),
		zap.String("link", result.Link),
	)
	return result, nil
}

func (p *Pipeline) transition(next Status) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopResetTimer()
	p.status = next
	p.lastError = ""
}

// succeed marks the flow done and schedules the revert to idle.
func (p *Pipeline) succeed() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopResetTimer()
	p.status = StatusSuccess
	p.lastError = ""
	p.resetTimer = time.AfterFunc(p.resetDelay, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.status == StatusSuccess {
			p.status = StatusIdle
		}
	})
}

// fail reports the error state with its user-visible message, then reverts
// to idle. The message survives the revert until the next invocation.
func (p *Pipeline) fail(err error) {
	p.logger.Warn("export failed", zap.Error(err))
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopResetTimer()
	p.status = StatusError
	p.lastError = err.Error()
	p.resetTimer = time.AfterFunc(p.resetDelay, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.status == StatusError {
			p.status = StatusIdle
		}
	})
}

func (p *Pipeline) stopResetTimer() {
	if p.resetTimer != nil {
		p.resetTimer.Stop()
		p.resetTimer = nil
	}
}
