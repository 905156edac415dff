package fsattr

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// fsImmutableFL is FS_IMMUTABLE_FL from <linux/fs.h>, which
// golang.org/x/sys/unix does not export.
const fsImmutableFL int32 = 0x00000010

// Wrapper toggles the immutable attribute through FS_IOC_GETFLAGS /
// FS_IOC_SETFLAGS ioctls, the same calls chattr(1) makes.
type Wrapper struct {
	commander Commander
}

func NewWrapper(commander Commander) Contract {
	return &Wrapper{commander: commander}
}

func (w *Wrapper) SetImmutable(path string) error {
	return w.updateFlags(path, func(flags int32) int32 {
		return flags | fsImmutableFL
	})
}

func (w *Wrapper) ClearImmutable(path string) error {
	err := w.updateFlags(path, func(flags int32) int32 {
		return flags &^ fsImmutableFL
	})
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (w *Wrapper) IsImmutable(path string) (bool, error) {
	file, openErr := os.Open(path)
	if openErr != nil {
		return false, openErr
	}
	defer func() {
		_ = file.Close()
	}()

	flags, flagsErr := w.getFlags(file.Fd())
	if flagsErr != nil {
		return false, fmt.Errorf("failed to read attributes of %s: %v", path, flagsErr)
	}

	return flags&fsImmutableFL != 0, nil
}

func (w *Wrapper) updateFlags(path string, update func(int32) int32) error {
	file, openErr := os.Open(path)
	if openErr != nil {
		return openErr
	}
	defer func() {
		_ = file.Close()
	}()

	flags, flagsErr := w.getFlags(file.Fd())
	if flagsErr != nil {
		return fmt.Errorf("failed to read attributes of %s: %v", path, flagsErr)
	}

	updated := update(flags)
	if updated == flags {
		return nil
	}

	if setErr := w.setFlags(file.Fd(), updated); setErr != nil {
		return fmt.Errorf("failed to update attributes of %s: %v", path, setErr)
	}

	return nil
}

func (w *Wrapper) getFlags(fd uintptr) (int32, error) {
	var flags int32
	_, _, errno := w.commander.Ioctl(fd, unix.FS_IOC_GETFLAGS, uintptr(unsafe.Pointer(&flags)))
	if errno != 0 {
		return 0, errno
	}
	return flags, nil
}

func (w *Wrapper) setFlags(fd uintptr, flags int32) error {
	_, _, errno := w.commander.Ioctl(fd, unix.FS_IOC_SETFLAGS, uintptr(unsafe.Pointer(&flags)))
	if errno != 0 {
		return errno
	}
	return nil
}
