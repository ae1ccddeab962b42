// Package editor launches the user's editor on a settings file.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// EnvEditor prepares an external editor command using $VISUAL or $EDITOR
// (fallback: "vi"). It does not run the editor; the caller wires stdio.
type EnvEditor struct {
	getenv func(string) string
}

// NewEnvEditor creates an EnvEditor reading the process environment.
func NewEnvEditor() *EnvEditor {
	return &EnvEditor{getenv: os.Getenv}
}

// Program is the editor command line, split into fields so values like
// "code --wait" work.
func (e *EnvEditor) Program() []string {
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(e.getenv(name)); len(fields) > 0 {
			return fields
		}
	}
	return []string{"vi"}
}

// Cmd prepares an *exec.Cmd editing path in place. A missing file is
// created first with template as its content.
func (e *EnvEditor) Cmd(path, template string) (*exec.Cmd, error) {
	if err := ensureFile(path, template); err != nil {
		return nil, err
	}
	prog := e.Program()
	args := append(prog[1:len(prog):len(prog)], path)
	return exec.Command(prog[0], args...), nil
}

func ensureFile(path, template string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(template), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
