package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application-level configuration.
type Config struct {
	APIBaseURL   string // e.g. "http://localhost:5000"
	ShareBaseURL string // Base of canonical product links
	ShareCommand string // Optional native share command; receives the URL as its last argument
	StateDir     string // Liked set, UI state, feed tuning
	LikesBackend string // "file" or "sqlite"
	LogFile      string
	UIStatePath  string
	TuningPath   string
}

const (
	LikesBackendFile   = "file"
	LikesBackendSQLite = "sqlite"
)

// Load reads configuration from environment variables.
//
//	PRODUCTFINDER_API_BASE_URL    - search API base URL (default: http://localhost:5000)
//	PRODUCTFINDER_SHARE_BASE_URL  - canonical product link base (default: API base URL)
//	PRODUCTFINDER_SHARE_CMD       - native share command (default: none, clipboard fallback)
//	PRODUCTFINDER_STATE_DIR       - state directory (default: ~/.config/productfinder)
//	PRODUCTFINDER_LIKES_BACKEND   - "file" or "sqlite" (default: file)
//	PRODUCTFINDER_LOG_FILE        - log file (default: <state>/productfinder.log)
func Load() (Config, error) {
	base, err := AbsoluteURL("PRODUCTFINDER_API_BASE_URL", envOr("PRODUCTFINDER_API_BASE_URL", "http://localhost:5000"))
	if err != nil {
		return Config{}, err
	}

	shareBase := base
	if v := strings.TrimSpace(os.Getenv("PRODUCTFINDER_SHARE_BASE_URL")); v != "" {
		shareBase, err = AbsoluteURL("PRODUCTFINDER_SHARE_BASE_URL", v)
		if err != nil {
			return Config{}, err
		}
	}

	stateDir := strings.TrimSpace(os.Getenv("PRODUCTFINDER_STATE_DIR"))
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		stateDir = filepath.Join(home, ".config", "productfinder")
	}

	backend := strings.ToLower(envOr("PRODUCTFINDER_LIKES_BACKEND", LikesBackendFile))
	if backend != LikesBackendFile && backend != LikesBackendSQLite {
		return Config{}, fmt.Errorf("invalid PRODUCTFINDER_LIKES_BACKEND %q: want %q or %q", backend, LikesBackendFile, LikesBackendSQLite)
	}

	return Config{
		APIBaseURL:   base,
		ShareBaseURL: shareBase,
		ShareCommand: strings.TrimSpace(os.Getenv("PRODUCTFINDER_SHARE_CMD")),
		StateDir:     stateDir,
		LikesBackend: backend,
		LogFile:      envOr("PRODUCTFINDER_LOG_FILE", filepath.Join(stateDir, "productfinder.log")),
		UIStatePath:  filepath.Join(stateDir, "ui_state.json"),
		TuningPath:   filepath.Join(stateDir, "feed.yaml"),
	}, nil
}

// LikesPath is where the selected liked-set backend keeps its data.
func (c Config) LikesPath() string {
	if c.LikesBackend == LikesBackendSQLite {
		return filepath.Join(c.StateDir, "likes.db")
	}
	return filepath.Join(c.StateDir, "likes.json")
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// AbsoluteURL validates an http(s) URL named name and trims trailing slashes.
func AbsoluteURL(name, raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid %s: must be an absolute URL", name)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid %s: only http and https are allowed", name)
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}
