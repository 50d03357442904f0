package audiotags

import (
	"bytes"
	"net/http"
	"strings"
)

// MimeType is the encoding of an embedded picture.
type MimeType int

const (
	MimePng MimeType = iota + 1
	MimeJpeg
	MimeTiff
	MimeBmp
	MimeGif
)

const (
	mimeJPEG = "image/jpeg"
	mimePNG  = "image/png"
	mimeTIFF = "image/tiff"
	mimeBMP  = "image/bmp"
	mimeGIF  = "image/gif"
)

// String returns the MIME string, e.g. "image/jpeg".
func (m MimeType) String() string {
	switch m {
	case MimePng:
		return mimePNG
	case MimeJpeg:
		return mimeJPEG
	case MimeTiff:
		return mimeTIFF
	case MimeBmp:
		return mimeBMP
	case MimeGif:
		return mimeGIF
	}
	return ""
}

// ParseMimeType converts a MIME string to a MimeType. Matching is
// case-insensitive and "image/jpg" is accepted as JPEG.
func ParseMimeType(s string) (MimeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case mimePNG:
		return MimePng, nil
	case mimeJPEG, "image/jpg":
		return MimeJpeg, nil
	case mimeTIFF:
		return MimeTiff, nil
	case mimeBMP, "image/x-ms-bmp":
		return MimeBmp, nil
	case mimeGIF:
		return MimeGif, nil
	}
	return 0, &UnsupportedMimeTypeError{MimeType: s}
}

var (
	tiffLittleEndian = []byte{'I', 'I', 0x2a, 0x00}
	tiffBigEndian    = []byte{'M', 'M', 0x00, 0x2a}
)

// SniffMimeType detects the picture encoding from its content.
// Data that is not a recognized image fails with ErrNotAPicture.
func SniffMimeType(data []byte) (MimeType, error) {
	if bytes.HasPrefix(data, tiffLittleEndian) || bytes.HasPrefix(data, tiffBigEndian) {
		return MimeTiff, nil
	}
	contentType := http.DetectContentType(data)
	if m, err := ParseMimeType(contentType); err == nil {
		return m, nil
	}
	return 0, ErrNotAPicture
}

// Picture is embedded cover art. Data is shared with the tag it came from;
// copy it before mutating.
type Picture struct {
	Data     []byte
	MimeType MimeType
}

// NewPicture builds a Picture from raw bytes and a MIME string.
func NewPicture(data []byte, mime string) (Picture, error) {
	m, err := ParseMimeType(mime)
	if err != nil {
		return Picture{}, err
	}
	return Picture{Data: data, MimeType: m}, nil
}

// Equal reports whether both pictures hold the same bytes and MIME type.
func (p Picture) Equal(o Picture) bool {
	return p.MimeType == o.MimeType && bytes.Equal(p.Data, o.Data)
}

// IsZero reports whether the picture holds no data.
func (p Picture) IsZero() bool {
	return len(p.Data) == 0 && p.MimeType == 0
}
