package service

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// BatchProgressReporter reports progress across a batch of (benign,
// malicious) pairs as each pair finishes.
type BatchProgressReporter interface {
	// Add advances the reporter by delta completed pairs.
	Add(delta int) error
	// Finish marks the batch as complete.
	Finish() error
}

// noOpBatchProgressReporter reports nothing; used when progress is
// disabled, stderr isn't an interactive terminal, or no reporter is given.
type noOpBatchProgressReporter struct{}

// NewNoOpBatchProgressReporter creates a progress reporter that discards
// every update.
func NewNoOpBatchProgressReporter() BatchProgressReporter {
	return noOpBatchProgressReporter{}
}

func (noOpBatchProgressReporter) Add(int) error { return nil }
func (noOpBatchProgressReporter) Finish() error { return nil }

// progressBarReporter adapts schollz/progressbar/v3 to BatchProgressReporter.
type progressBarReporter struct {
	bar *progressbar.ProgressBar
}

// NewBatchProgressBar creates a BatchProgressReporter backed by a
// terminal progress bar tracking total pairs, writing to w.
func NewBatchProgressBar(w io.Writer, total int) BatchProgressReporter {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("detecting clones"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return &progressBarReporter{bar: bar}
}

func (p *progressBarReporter) Add(delta int) error {
	return p.bar.Add(delta)
}

func (p *progressBarReporter) Finish() error {
	return p.bar.Finish()
}
