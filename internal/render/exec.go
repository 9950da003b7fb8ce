package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultRenderTimeout bounds one external renderer invocation.
const DefaultRenderTimeout = 60 * time.Second

// Document types passed to the external renderer command as --type.
const (
	DocTypeResume      = "resume"
	DocTypeCoverLetter = "cover-letter"
	DocTypeCV          = "cv"
)

// ExternalRenderer invokes a user-supplied renderer command. The command
// receives the document type, the payload JSON path, and the output path, and
// must create the output file on success.
type ExternalRenderer struct {
	Command string
	Timeout time.Duration
}

// NewExternalRenderer creates an ExternalRenderer. timeout <= 0 selects
// DefaultRenderTimeout.
func NewExternalRenderer(command string, timeout time.Duration) *ExternalRenderer {
	if timeout <= 0 {
		timeout = DefaultRenderTimeout
	}
	return &ExternalRenderer{Command: command, Timeout: timeout}
}

// Render runs the external command for one document. The command writes to a
// temp path which is renamed into place afterward, so a crashed renderer
// never leaves a partial document at outPath.
func (r *ExternalRenderer) Render(ctx context.Context, docType, payloadPath, outPath string) error {
	if r.Command == "" {
		return &RenderError{Message: "no external renderer command configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	tmpPath := filepath.Join(filepath.Dir(outPath), fmt.Sprintf(".render-%d-%s", os.Getpid(), filepath.Base(outPath)))
	defer func() { _ = os.Remove(tmpPath) }()

	cmd := exec.CommandContext(ctx, r.Command,
		"--type", docType,
		"--payload", payloadPath,
		"--output", tmpPath,
	)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return &RenderError{
			Message: fmt.Sprintf("renderer timed out after %s", r.Timeout),
			Cause:   runErr,
		}
	}
	if runErr != nil {
		return &RenderError{
			Message: fmt.Sprintf("renderer command failed: %s", strings.TrimSpace(stderr.String())),
			Cause:   runErr,
		}
	}

	if _, err := os.Stat(tmpPath); os.IsNotExist(err) {
		return &RenderError{Message: "renderer exited cleanly but produced no output"}
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return &RenderError{Message: "failed to move rendered output into place", Cause: err}
	}
	return nil
}
