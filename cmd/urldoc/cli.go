package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/urldoc/fs"
	"github.com/fwojciec/urldoc/harvest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Layout *fs.Layout
	Batch  *harvest.Batch
}

// HarvestCmd downloads every URL of the input table and writes the
// content table.
type HarvestCmd struct {
	InputCSV string
	URLField string
}
