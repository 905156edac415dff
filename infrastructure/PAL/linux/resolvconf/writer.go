package resolvconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wgns/infrastructure/PAL/linux/fsattr"
)

const (
	defaultRootPath = "/etc/resolv.conf"
	defaultNetnsDir = "/etc/netns"
)

// Writer implements Contract over the real filesystem.
type Writer struct {
	attrs    fsattr.Contract
	rootPath string
	netnsDir string
}

func NewWriter(attrs fsattr.Contract) Contract {
	return NewWriterWithPaths(attrs, defaultRootPath, defaultNetnsDir)
}

// NewWriterWithPaths allows redirecting the managed paths, mainly for tests.
func NewWriterWithPaths(attrs fsattr.Contract, rootPath, netnsDir string) Contract {
	return &Writer{
		attrs:    attrs,
		rootPath: rootPath,
		netnsDir: netnsDir,
	}
}

func (w *Writer) WriteRoot(servers []string) error {
	if writeErr := os.WriteFile(w.rootPath, nameserverLines(servers), 0644); writeErr != nil {
		return fmt.Errorf("failed to write %s: %v", w.rootPath, writeErr)
	}
	return nil
}

func (w *Writer) WriteNamespace(nsName string, servers []string) error {
	path := w.namespacePath(nsName)
	if mkdirErr := os.MkdirAll(filepath.Dir(path), 0755); mkdirErr != nil {
		return fmt.Errorf("failed to create %s: %v", filepath.Dir(path), mkdirErr)
	}

	// trust-ad: the stub resolver on loopback validates DNSSEC itself
	content := append(nameserverLines(servers), []byte("options trust-ad\n")...)
	if writeErr := os.WriteFile(path, content, 0644); writeErr != nil {
		return fmt.Errorf("failed to write %s: %v", path, writeErr)
	}
	return nil
}

func (w *Writer) Lock(nsName string) error {
	for _, path := range w.paths(nsName) {
		if err := w.attrs.SetImmutable(path); err != nil {
			return fmt.Errorf("failed to protect %s: %v", path, err)
		}
	}
	return nil
}

func (w *Writer) Unlock(nsName string) error {
	for _, path := range w.paths(nsName) {
		if err := w.attrs.ClearImmutable(path); err != nil {
			return fmt.Errorf("failed to unprotect %s: %v", path, err)
		}
	}
	return nil
}

func (w *Writer) Blank(nsName string) error {
	for _, path := range w.paths(nsName) {
		if err := os.WriteFile(path, nil, 0644); err != nil {
			return fmt.Errorf("failed to blank %s: %v", path, err)
		}
	}
	return nil
}

func (w *Writer) Locked(nsName string) (bool, error) {
	for _, path := range w.paths(nsName) {
		locked, err := w.attrs.IsImmutable(path)
		if err != nil {
			return false, err
		}
		if !locked {
			return false, nil
		}
	}
	return true, nil
}

func (w *Writer) namespacePath(nsName string) string {
	return filepath.Join(w.netnsDir, nsName, "resolv.conf")
}

func (w *Writer) paths(nsName string) []string {
	return []string{w.rootPath, w.namespacePath(nsName)}
}

func nameserverLines(servers []string) []byte {
	var b strings.Builder
	for _, server := range servers {
		b.WriteString("nameserver ")
		b.WriteString(server)
		b.WriteString("\n")
	}
	return []byte(b.String())
}
