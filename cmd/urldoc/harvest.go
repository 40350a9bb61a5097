package main

import (
	"fmt"

	"github.com/fwojciec/urldoc"
	"github.com/fwojciec/urldoc/harvest"
	"github.com/mattn/go-runewidth"
)

// progressWidth is the display width of the "row/total" column.
const progressWidth = 10

// Run executes the harvest command.
func (c *HarvestCmd) Run(deps *Dependencies) error {
	progress := func(e harvest.ProgressEvent) {
		switch e.Type {
		case harvest.ProgressStarted:
			deps.Logger.Info("starting batch", "input", c.InputCSV, "column", c.URLField, "urls", e.Total)
		case harvest.ProgressProcessing:
			deps.Logger.Info("processing", "progress", formatProgress(e.Row, e.Total), "url", e.URL)
		case harvest.ProgressFailed:
			deps.Logger.Warn("skipping url", "row", e.Row, "url", e.URL, "err", e.Error)
		case harvest.ProgressOverwrite:
			deps.Logger.Warn("file name already used, overwriting", "row", e.Row, "url", e.URL, "file", e.Filename)
		case harvest.ProgressFinished:
			// Summary logged after the batch completes
		}
	}

	result, err := deps.Batch.Run(deps.Ctx, c.URLField, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", urldoc.ErrorMessage(err))
		return err
	}

	deps.Logger.Info("batch complete",
		"total", result.Total,
		"written", len(result.Records),
		"failed", result.Failed,
		"output", deps.Layout.Root,
	)
	return nil
}

// formatProgress renders "row/total" padded to a fixed width.
func formatProgress(row, total int) string {
	return runewidth.FillRight(fmt.Sprintf("%d/%d", row, total), progressWidth)
}
