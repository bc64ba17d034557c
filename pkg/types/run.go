// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunStatus indicates the outcome of one generation run.
type RunStatus string

const (
	RunSucceeded RunStatus = "succeeded"
	RunFailed    RunStatus = "failed"
)

// RunStats counts what a build produced.
type RunStats struct {
	Slides         int  `json:"slides" yaml:"slides"`
	ContentSlides  int  `json:"content_slides" yaml:"content_slides"`
	TOC            bool `json:"toc" yaml:"toc"`
	ImagesInserted int  `json:"images_inserted" yaml:"images_inserted"`
	ImagesSkipped  int  `json:"images_skipped" yaml:"images_skipped"`
	TablesSkipped  int  `json:"tables_skipped" yaml:"tables_skipped"`
}

// RunRecord is one row of the run history.
type RunRecord struct {
	// ID is a random UUID assigned when the run starts.
	ID string `json:"id" yaml:"id"`

	// Input is the deck document path.
	Input string `json:"input" yaml:"input"`

	// Output is the written .pptx path; empty when the run failed.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	Status RunStatus `json:"status" yaml:"status"`

	// Error holds the failure message for failed runs.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	Stats RunStats `json:"stats" yaml:"stats"`

	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
}

// Duration returns how long the run took.
func (r RunRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
