package fsattr

import (
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"
)

type mockIoctl struct {
	flags    int32
	getErr   unix.Errno
	setErr   unix.Errno
	setCalls int
}

func (m *mockIoctl) Ioctl(_ uintptr, request uintptr, arg uintptr) (uintptr, uintptr, unix.Errno) {
	switch request {
	case unix.FS_IOC_GETFLAGS:
		if m.getErr != 0 {
			return 0, 0, m.getErr
		}
		*(*int32)(unsafe.Pointer(arg)) = m.flags
	case unix.FS_IOC_SETFLAGS:
		if m.setErr != 0 {
			return 0, 0, m.setErr
		}
		m.flags = *(*int32)(unsafe.Pointer(arg))
		m.setCalls++
	}
	return 0, 0, 0
}

func tempFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resolv.conf")
	if err := os.WriteFile(path, []byte("nameserver 1.1.1.1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSetImmutable(t *testing.T) {
	mock := &mockIoctl{}
	w := NewWrapper(mock)
	path := tempFile(t)

	if err := w.SetImmutable(path); err != nil {
		t.Fatal(err)
	}
	if mock.flags&fsImmutableFL == 0 {
		t.Fatal("expected immutable bit to be set")
	}

	// already set: no second SETFLAGS call
	if err := w.SetImmutable(path); err != nil {
		t.Fatal(err)
	}
	if mock.setCalls != 1 {
		t.Fatalf("expected 1 set call, got %d", mock.setCalls)
	}
}

func TestClearImmutable(t *testing.T) {
	mock := &mockIoctl{flags: fsImmutableFL}
	w := NewWrapper(mock)
	path := tempFile(t)

	if err := w.ClearImmutable(path); err != nil {
		t.Fatal(err)
	}
	if mock.flags&fsImmutableFL != 0 {
		t.Fatal("expected immutable bit to be cleared")
	}
}

func TestClearImmutable_MissingFileTolerated(t *testing.T) {
	w := NewWrapper(&mockIoctl{})
	if err := w.ClearImmutable(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Fatalf("expected missing file to be tolerated, got %v", err)
	}
}

func TestSetImmutable_MissingFileFails(t *testing.T) {
	w := NewWrapper(&mockIoctl{})
	if err := w.SetImmutable(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestIsImmutable(t *testing.T) {
	path := tempFile(t)

	locked, err := NewWrapper(&mockIoctl{flags: fsImmutableFL}).IsImmutable(path)
	if err != nil || !locked {
		t.Fatalf("expected locked, got %v, %v", locked, err)
	}

	locked, err = NewWrapper(&mockIoctl{}).IsImmutable(path)
	if err != nil || locked {
		t.Fatalf("expected unlocked, got %v, %v", locked, err)
	}
}

func TestIoctlError(t *testing.T) {
	w := NewWrapper(&mockIoctl{getErr: unix.ENOTTY})
	if err := w.SetImmutable(tempFile(t)); err == nil {
		t.Fatal("expected error from ioctl")
	}
}
