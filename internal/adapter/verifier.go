package adapter

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	m "github.com/redress-dev/redress/internal/model"
)

// BuildVerifier runs the configured build command and reports only whether it
// exited cleanly. Output is captured for diagnostics, never parsed.
type BuildVerifier interface {
	Verify(command []string, dir m.Path) error
}

// VerifyError carries the verifier's combined output alongside the exit error.
type VerifyError struct {
	Err    error
	Output string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("build verifier: %v", e.Err)
}

func (e *VerifyError) Unwrap() error {
	return e.Err
}

// CommandVerifier shells out to the verify command.
type CommandVerifier struct {
	log zerolog.Logger
}

// NewCommandVerifier constructs a CommandVerifier logging through the given
// logger.
func NewCommandVerifier(log zerolog.Logger) *CommandVerifier {
	return &CommandVerifier{log: log}
}

// Verify runs the command in dir and waits for it. The combined output is
// logged verbatim at debug level; on failure it is attached to the returned
// VerifyError.
func (v *CommandVerifier) Verify(command []string, dir m.Path) error {
	if len(command) == 0 {
		return fmt.Errorf("verify command is empty")
	}

	cmd := exec.Command(command[0], command[1:]...)
	if dir != "" {
		cmd.Dir = string(dir)
	}

	out, err := cmd.CombinedOutput()
	v.log.Debug().
		Str("command", strings.Join(command, " ")).
		Str("output", string(out)).
		Err(err).
		Msg("build verifier finished")

	if err != nil {
		return &VerifyError{Err: err, Output: strings.TrimSpace(string(out))}
	}

	return nil
}
