// Package share hands product links to the platform: a configured share
// command first, then the system clipboard, then an OSC 52 copy.
package share

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/productfinder/productfinder/app"
	"github.com/productfinder/productfinder/domain"
)

// Sharer implements app.Sharer.
type Sharer struct {
	command []string

	run       func(ctx context.Context, title, name string, args ...string) error
	clipboard func(text string) error
	terminal  func(text string) error
}

// New builds a Sharer. command is split on whitespace; the link is appended
// as its last argument and the title is exported as PRODUCTFINDER_SHARE_TITLE.
func New(command string) *Sharer {
	return &Sharer{
		command:   strings.Fields(command),
		run:       runCommand,
		clipboard: clipboard.WriteAll,
		terminal:  writeOSC52,
	}
}

func (s *Sharer) Share(ctx context.Context, title, url string) (app.ShareOutcome, error) {
	if len(s.command) > 0 {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		args := append(append([]string(nil), s.command[1:]...), url)
		if err := s.run(ctx, title, s.command[0], args...); err == nil {
			return app.ShareNative, nil
		}
	}
	if !clipboard.Unsupported {
		if err := s.clipboard(url); err == nil {
			return app.ShareCopied, nil
		}
	}
	if err := s.terminal(url); err == nil {
		return app.ShareCopied, nil
	}
	return app.ShareUnavailable, domain.ErrShareUnavailable
}

func runCommand(ctx context.Context, title, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), "PRODUCTFINDER_SHARE_TITLE="+title)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("share command: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// writeOSC52 asks the terminal to set its clipboard. Bubble Tea owns stdout,
// so the sequence goes straight to the controlling tty.
func writeOSC52(text string) error {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer tty.Close()

	seq := osc52.New(text)
	term := os.Getenv("TERM")
	switch {
	case os.Getenv("TMUX") != "" || strings.HasPrefix(term, "tmux"):
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	_, err = seq.WriteTo(tty)
	return err
}
