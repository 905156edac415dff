package peerconf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	r := NewResolver("/etc/wireguard", "wgvpn0")

	if got := r.Resolve(""); got != "/etc/wireguard/wgvpn0.conf" {
		t.Fatalf("unexpected default path: %s", got)
	}
	if got := r.Resolve("work"); got != "/etc/wireguard/wgvpn0-work.conf" {
		t.Fatalf("unexpected identifier path: %s", got)
	}
}

func TestResolveExisting(t *testing.T) {
	dir := t.TempDir()
	r := NewResolver(dir, "wgvpn0")

	if _, err := r.ResolveExisting(""); err == nil {
		t.Fatal("expected error for missing file")
	}

	if err := os.WriteFile(filepath.Join(dir, "wgvpn0.conf"), []byte("[Interface]\n"), 0600); err != nil {
		t.Fatal(err)
	}
	path, err := r.ResolveExisting("")
	if err != nil || path != filepath.Join(dir, "wgvpn0.conf") {
		t.Fatalf("unexpected result: %s, %v", path, err)
	}
}

func TestObserve(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"wgvpn0.conf", "wgvpn0-work.conf", "wgvpn0-travel.conf", "other.conf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("[Interface]\n"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	identifiers, err := NewDefaultObserver(NewResolver(dir, "wgvpn0")).Observe()
	if err != nil {
		t.Fatal(err)
	}
	if len(identifiers) != 2 {
		t.Fatalf("expected 2 identifiers, got %v", identifiers)
	}
	seen := map[string]bool{}
	for _, id := range identifiers {
		seen[id] = true
	}
	if !seen["work"] || !seen["travel"] {
		t.Fatalf("unexpected identifiers: %v", identifiers)
	}
}

func TestObserve_Empty(t *testing.T) {
	identifiers, err := NewDefaultObserver(NewResolver(t.TempDir(), "wgvpn0")).Observe()
	if err != nil || len(identifiers) != 0 {
		t.Fatalf("expected no identifiers, got %v, %v", identifiers, err)
	}
}
