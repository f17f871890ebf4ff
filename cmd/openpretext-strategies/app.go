package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	strategies "github.com/shandley/openpretext-strategies"
	"github.com/shandley/openpretext-strategies/i18n"
)

// errValidationFailed signals a completed run that found errors. The report
// has already been written; main maps this onto exit status 1 without extra
// noise on stderr.
var errValidationFailed = errors.New("validation failed")

// runValidate executes one full catalog pass and renders the report.
func runValidate(out io.Writer, dir string, s settings) error {
	i18n.SetLanguage(s.Lang)
	opt := s.options()

	slog.Debug("validating catalog",
		"dir", dir,
		"duplicate_keys", s.DuplicateKeys,
		"fail_fast", s.FailFast)

	rep, err := strategies.ValidateDir(dir, opt)
	if err != nil {
		return err
	}

	switch s.Format {
	case "json":
		err = strategies.WriteJSON(out, rep)
	default:
		err = strategies.WriteText(out, rep)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	slog.Debug("catalog validated",
		"files", len(rep.Files),
		"passed", rep.Passed(),
		"failed", rep.Failed(),
		"warnings", rep.TotalWarnings())

	if !rep.Ok() {
		return errValidationFailed
	}
	return nil
}

func setupLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
