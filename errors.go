package audiotags

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFileExtension is returned when a path has no extension to
	// infer the tag format from.
	ErrUnknownFileExtension = errors.New("unknown file extension")
	// ErrUnsupportedFormat is returned for extensions outside the supported table.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrNotAPicture is returned when cover data is not an image in a
	// recognized encoding.
	ErrNotAPicture = errors.New("not a picture")
	// ErrUnsupportedMimeType is returned when a MIME string has no MimeType.
	ErrUnsupportedMimeType = errors.New("unsupported mime type")
)

// UnknownFileExtensionError reports a path without an extension.
type UnknownFileExtensionError struct {
	Path string
}

func (e *UnknownFileExtensionError) Error() string {
	return fmt.Sprintf("unknown file extension: %q", e.Path)
}

func (e *UnknownFileExtensionError) Is(target error) bool {
	return target == ErrUnknownFileExtension
}

// UnsupportedFormatError reports an extension no adapter handles.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s", e.Ext)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// UnsupportedMimeTypeError reports a MIME string outside the MimeType set.
type UnsupportedMimeTypeError struct {
	MimeType string
}

func (e *UnsupportedMimeTypeError) Error() string {
	return fmt.Sprintf("unsupported mime type: %s", e.MimeType)
}

func (e *UnsupportedMimeTypeError) Is(target error) bool {
	return target == ErrUnsupportedMimeType
}

// CodecError wraps a failure reported by one of the format codecs while
// reading or writing a file.
type CodecError struct {
	Type TagType
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *CodecError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s %s: %v", e.Type, e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s %s: %v", e.Type, e.Op, e.Path, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

func codecErr(tt TagType, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &CodecError{Type: tt, Op: op, Path: path, Err: err}
}
