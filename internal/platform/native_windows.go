//go:build windows

package platform

import (
	"encoding/binary"
	"errors"
	"os"
	"strings"
	"syscall"
	"unicode/utf16"

	"golang.org/x/sys/windows"
)

const (
	// ReparseTag, ReparseDataLength, Reserved.
	reparseHeaderSize = 8
	// SubstituteNameOffset/Length, PrintNameOffset/Length.
	mountPointFieldsSize = 8
	pathBufferOffset     = reparseHeaderSize + mountPointFieldsSize

	ntPathPrefix = `\??\`
)

type native struct{}

// Native returns the host's junction primitive.
func Native() Primitive {
	return native{}
}

// Supported reports whether Native can manipulate junctions on this host.
func Supported() bool {
	return true
}

// classify maps Win32 error codes onto the package categories.
func classify(err error) error {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return classifyGeneric(err)
	}
	switch errno {
	case windows.ERROR_NOT_A_REPARSE_POINT, windows.ERROR_REPARSE_TAG_MISMATCH:
		return Categorize(ErrNotReparsePoint, err)
	case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND:
		return Categorize(ErrNotExist, err)
	}
	return err
}

func wrap(op, path string, err error) error {
	return &PathError{Op: op, Path: path, Err: classify(err)}
}

func (native) IsJunction(path string) (bool, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, wrap("query", path, err)
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false, wrap("query", path, err)
	}
	if attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT == 0 {
		return false, nil
	}
	buf, err := readReparseData(path)
	if err != nil {
		return false, wrap("query", path, err)
	}
	return binary.LittleEndian.Uint32(buf) == windows.IO_REPARSE_TAG_MOUNT_POINT, nil
}

func (native) Target(path string) (string, error) {
	buf, err := readReparseData(path)
	if err != nil {
		return "", wrap("readlink", path, err)
	}
	target, err := decodeMountPoint(buf)
	if err != nil {
		return "", &PathError{Op: "readlink", Path: path, Err: err}
	}
	return target, nil
}

func (native) Create(path, target string) error {
	data, err := encodeMountPoint(target)
	if err != nil {
		return &PathError{Op: "create", Path: path, Err: err}
	}

	created := false
	if _, err := os.Lstat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.Mkdir(path, 0o755); err != nil {
			return wrap("create", path, err)
		}
		created = true
	}

	if err := withReparseHandle(path, windows.GENERIC_WRITE, func(h windows.Handle) error {
		var n uint32
		return windows.DeviceIoControl(h, windows.FSCTL_SET_REPARSE_POINT, &data[0], uint32(len(data)), nil, 0, &n, nil)
	}); err != nil {
		if created {
			_ = os.Remove(path)
		}
		return wrap("create", path, err)
	}
	return nil
}

func (native) Delete(path string) error {
	hdr := make([]byte, reparseHeaderSize)
	binary.LittleEndian.PutUint32(hdr, windows.IO_REPARSE_TAG_MOUNT_POINT)

	err := withReparseHandle(path, windows.GENERIC_WRITE, func(h windows.Handle) error {
		var n uint32
		return windows.DeviceIoControl(h, windows.FSCTL_DELETE_REPARSE_POINT, &hdr[0], uint32(len(hdr)), nil, 0, &n, nil)
	})
	if err != nil {
		return wrap("delete", path, err)
	}
	return nil
}

// withReparseHandle opens the reparse point itself, never its target, and
// closes the handle before returning.
func withReparseHandle(path string, access uint32, fn func(windows.Handle) error) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	h, err := windows.CreateFile(p, access,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING,
		windows.FILE_FLAG_OPEN_REPARSE_POINT|windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)
	return fn(h)
}

func readReparseData(path string) ([]byte, error) {
	buf := make([]byte, windows.MAXIMUM_REPARSE_DATA_BUFFER_SIZE)
	var n uint32
	err := withReparseHandle(path, 0, func(h windows.Handle) error {
		return windows.DeviceIoControl(h, windows.FSCTL_GET_REPARSE_POINT, nil, 0, &buf[0], uint32(len(buf)), &n, nil)
	})
	if err != nil {
		return nil, err
	}
	if n < reparseHeaderSize {
		return nil, errors.New("short reparse data buffer")
	}
	return buf[:n], nil
}

// decodeMountPoint extracts the substitute name from a mount-point reparse
// buffer, without the NT namespace prefix.
func decodeMountPoint(buf []byte) (string, error) {
	if binary.LittleEndian.Uint32(buf) != windows.IO_REPARSE_TAG_MOUNT_POINT {
		return "", Categorize(ErrNotReparsePoint, nil)
	}
	if len(buf) < pathBufferOffset {
		return "", errors.New("truncated mount point reparse data")
	}
	off := int(binary.LittleEndian.Uint16(buf[8:]))
	length := int(binary.LittleEndian.Uint16(buf[10:]))
	start := pathBufferOffset + off
	if length%2 != 0 || start+length > len(buf) {
		return "", errors.New("malformed mount point reparse data")
	}

	u := make([]uint16, length/2)
	for i := range u {
		u[i] = binary.LittleEndian.Uint16(buf[start+2*i:])
	}
	return strings.TrimPrefix(string(utf16.Decode(u)), ntPathPrefix), nil
}

// encodeMountPoint builds the FSCTL_SET_REPARSE_POINT input for a junction to
// target, which must already be absolute.
func encodeMountPoint(target string) ([]byte, error) {
	subst, err := windows.UTF16FromString(ntPathPrefix + target)
	if err != nil {
		return nil, err
	}
	printName, err := windows.UTF16FromString(target)
	if err != nil {
		return nil, err
	}

	// Both names keep their NUL terminator in the path buffer.
	substLen := (len(subst) - 1) * 2
	printLen := (len(printName) - 1) * 2
	pathBytes := len(subst)*2 + len(printName)*2
	dataLen := mountPointFieldsSize + pathBytes
	if reparseHeaderSize+dataLen > windows.MAXIMUM_REPARSE_DATA_BUFFER_SIZE {
		return nil, errors.New("junction target path too long")
	}

	buf := make([]byte, reparseHeaderSize+dataLen)
	binary.LittleEndian.PutUint32(buf[0:], windows.IO_REPARSE_TAG_MOUNT_POINT)
	binary.LittleEndian.PutUint16(buf[4:], uint16(dataLen))
	binary.LittleEndian.PutUint16(buf[8:], 0)
	binary.LittleEndian.PutUint16(buf[10:], uint16(substLen))
	binary.LittleEndian.PutUint16(buf[12:], uint16(len(subst)*2))
	binary.LittleEndian.PutUint16(buf[14:], uint16(printLen))

	pos := pathBufferOffset
	for _, c := range subst {
		binary.LittleEndian.PutUint16(buf[pos:], c)
		pos += 2
	}
	for _, c := range printName {
		binary.LittleEndian.PutUint16(buf[pos:], c)
		pos += 2
	}
	return buf, nil
}
