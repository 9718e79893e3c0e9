package export

import (
	"rajubill/internal/config"

	"go.uber.org/zap"
)

// NewModule detects the share capability once and builds the pipeline
// around it.
func NewModule(cfg config.ExportConfig, logger *zap.Logger) *Pipeline {
	sharer := DetectSharer(cfg.OutboxDir)
	if sharer.Capability() == LinkOnly {
		logger.Warn("file sharing unavailable, falling back to messaging links")
	}
	return NewPipeline(sharer, cfg, logger)
}
