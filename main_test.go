package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/productfinder/productfinder/infra/config"
	"github.com/productfinder/productfinder/infra/server"
	"github.com/productfinder/productfinder/infra/store"
)

func TestResolveVersionInfo(t *testing.T) {
	tests := []struct {
		name          string
		in            [3]string
		moduleVersion string
		settings      map[string]string
		want          [3]string
	}{
		{
			name:          "ldflags win",
			in:            [3]string{"v1.2.0", "abc", "2026-01-01"},
			moduleVersion: "v9.9.9",
			settings:      map[string]string{"vcs.revision": "zzz"},
			want:          [3]string{"v1.2.0", "abc", "2026-01-01"},
		},
		{
			name:          "build info fills defaults",
			in:            [3]string{"dev", "none", "unknown"},
			moduleVersion: "v0.3.1",
			settings:      map[string]string{"vcs.revision": "0123456789abcdef", "vcs.time": "2026-02-03T04:05:06Z"},
			want:          [3]string{"v0.3.1", "0123456789ab", "2026-02-03T04:05:06Z"},
		},
		{
			name:          "devel module keeps dev",
			in:            [3]string{"dev", "none", "unknown"},
			moduleVersion: "(devel)",
			want:          [3]string{"dev", "none", "unknown"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, c, d := resolveVersionInfo(tc.in[0], tc.in[1], tc.in[2], tc.moduleVersion, tc.settings)
			if got := [3]string{v, c, d}; got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestRootCmd_Version(t *testing.T) {
	for _, args := range [][]string{{"--version"}, {"version"}} {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs(args)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		if !strings.HasPrefix(out.String(), "Product Finder ") || !strings.Contains(out.String(), "commit: ") {
			t.Fatalf("%v: unexpected output %q", args, out.String())
		}
	}
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--bogus"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for an unknown flag")
	}
}

func TestServeCmd_Flags(t *testing.T) {
	cmd := newServeCmd()
	if err := cmd.ParseFlags([]string{"--upstream"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := cmd.Flags().Lookup("upstream").Value.String(); got != server.DefaultUpstream {
		t.Fatalf("bare --upstream should select %s, got %q", server.DefaultUpstream, got)
	}
	if got := cmd.Flags().Lookup("addr").Value.String(); got != ":5000" {
		t.Fatalf("unexpected default addr %q", got)
	}
}

func TestNewSource(t *testing.T) {
	src, err := newSource("")
	if err != nil || src == nil {
		t.Fatalf("expected the embedded catalog, err=%v", err)
	}
	if _, err := newSource("ftp://example.com"); err == nil {
		t.Fatalf("expected a non-http upstream to be rejected")
	}
	if _, err := newSource("https://dummyjson.com/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOpenStore_Backends(t *testing.T) {
	dir := t.TempDir()

	kv, closeStore, err := openStore(config.Config{StateDir: dir, LikesBackend: config.LikesBackendFile})
	if err != nil {
		t.Fatalf("file backend: %v", err)
	}
	closeStore()
	if _, ok := kv.(*store.FileStore); !ok {
		t.Fatalf("expected a file store, got %T", kv)
	}

	kv, closeStore, err = openStore(config.Config{StateDir: filepath.Join(dir, "nested"), LikesBackend: config.LikesBackendSQLite})
	if err != nil {
		t.Fatalf("sqlite backend: %v", err)
	}
	defer closeStore()
	if err := kv.Set("k", []byte(`"v"`)); err != nil {
		t.Fatalf("set: %v", err)
	}
}
