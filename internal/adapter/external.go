package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	m "prism.dev/pkg/prism/internal/model"
)

// ExternalScanner runs a third-party similarity tool as an optional
// second-opinion backend. It lives behind its own interface so it can never
// leak into the engine's control flow; a failed or missing scanner degrades
// to "no external report", not to a failed run.
type ExternalScanner interface {
	// Available reports whether the external tool can be invoked.
	Available() bool

	// Scan runs the tool over inputDir and leaves its raw report under
	// outputDir.
	Scan(ctx context.Context, inputDir, outputDir m.Path) error
}

// CopydetectScanner shells out to the copydetect fingerprinting tool.
type CopydetectScanner struct {
	command string
}

// NewCopydetectScanner constructs a scanner invoking the given command
// (normally "copydetect").
func NewCopydetectScanner(command string) *CopydetectScanner {
	return &CopydetectScanner{command: command}
}

// Available checks the command on PATH.
func (s *CopydetectScanner) Available() bool {
	_, err := exec.LookPath(s.command)
	return err == nil
}

// Scan invokes the tool with a JSON report target.
func (s *CopydetectScanner) Scan(ctx context.Context, inputDir, outputDir m.Path) error {
	cmd := exec.CommandContext(ctx, s.command,
		"--dir", string(inputDir),
		"--out", string(outputDir),
		"--format", "json",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		slog.Warn("external scan failed", "command", s.command, "output", string(output), "error", err)
		return fmt.Errorf("run %s: %w", s.command, err)
	}

	slog.Info("external scan complete", "command", s.command, "input", inputDir, "output", outputDir)

	return nil
}
