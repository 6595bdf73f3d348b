// Package editor opens the user's text editor on a temp file for
// manual JSON entry.
package editor

import (
	"fmt"
	"os"
	"os/exec"
)

var (
	execCommandFn = exec.Command
	lookPathFn    = exec.LookPath
)

// Command resolves the editor to run: $EDITOR, then nano, vim, vi.
func Command() (string, error) {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor, nil
	}
	for _, cmd := range []string{"nano", "vim", "vi"} {
		if _, err := lookPathFn(cmd); err == nil {
			return cmd, nil
		}
	}
	return "", fmt.Errorf("no editor found; set the EDITOR environment variable")
}

// EditJSON writes initial to a temp file, runs the editor on it
// attached to the terminal, and returns the saved content. The temp
// file is removed either way.
func EditJSON(initial []byte) ([]byte, error) {
	editorCmd, err := Command()
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp("", "mcpsync-*.json")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(initial); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("closing temp file: %w", err)
	}

	cmd := execCommandFn(editorCmd, tmpPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("editor closed without saving: %w", err)
	}

	return os.ReadFile(tmpPath)
}
