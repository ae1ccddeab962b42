package share

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Opener launches URLs with the platform handler.
type Opener struct {
	start func(name string, args ...string) error
}

func NewOpener() *Opener {
	return &Opener{start: func(name string, args ...string) error {
		return exec.Command(name, args...).Start()
	}}
}

func (o *Opener) Open(rawURL string) error {
	if !IsSafeExternalURL(rawURL) {
		return fmt.Errorf("refusing to open %q", rawURL)
	}
	switch runtime.GOOS {
	case "darwin":
		return o.start("open", rawURL)
	case "windows":
		return o.start("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		return o.start("xdg-open", rawURL)
	}
}

// IsSafeExternalURL accepts absolute http(s) URLs only.
func IsSafeExternalURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}
