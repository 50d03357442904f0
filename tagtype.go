package audiotags

import (
	"path/filepath"
	"strings"
)

// TagType identifies the on-disk metadata format handled by an adapter.
type TagType int

const (
	// ID3v2 is the tag format of MP3 files. Tags are always written as ID3v2.4.
	ID3v2 TagType = iota + 1
	// FLAC is the Vorbis comment block of a FLAC stream.
	FLAC
	// MP4 is the iTunes-style atom metadata of MPEG-4 containers
	// (.m4a, .m4b, .m4p, .m4v, .mp4).
	MP4
)

// File extensions recognized by the dispatcher, without the leading dot.
const (
	ExtMP3  = "mp3"
	ExtFLAC = "flac"
	ExtM4A  = "m4a"
	ExtM4B  = "m4b"
	ExtM4P  = "m4p"
	ExtM4V  = "m4v"
	ExtISOM = "isom"
	ExtMP4  = "mp4"
)

var extTagTypes = map[string]TagType{
	ExtMP3:  ID3v2,
	ExtM4A:  MP4,
	ExtM4B:  MP4,
	ExtM4P:  MP4,
	ExtM4V:  MP4,
	ExtISOM: MP4,
	ExtMP4:  MP4,
	ExtFLAC: FLAC,
}

func (t TagType) String() string {
	switch t {
	case ID3v2:
		return "id3v2"
	case FLAC:
		return "flac"
	case MP4:
		return "mp4"
	}
	return "unknown"
}

// ParseTagType parses a format name as printed by String.
// File extensions are accepted too, so "mp3" and "m4a" work.
func ParseTagType(s string) (TagType, error) {
	switch strings.ToLower(s) {
	case "id3v2", "id3":
		return ID3v2, nil
	case "flac":
		return FLAC, nil
	case "mp4":
		return MP4, nil
	}
	return TagTypeFromExt(s)
}

// TagTypeFromExt maps a file extension (with or without the leading dot,
// any case) to its tag type.
func TagTypeFromExt(ext string) (TagType, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if t, ok := extTagTypes[ext]; ok {
		return t, nil
	}
	return 0, &UnsupportedFormatError{Ext: ext}
}

// ResolveTagType infers the tag type from the extension of path.
// A path without an extension fails with ErrUnknownFileExtension.
func ResolveTagType(path string) (TagType, error) {
	ext := filepath.Ext(path)
	if ext == "" || ext == "." {
		return 0, &UnknownFileExtensionError{Path: path}
	}
	return TagTypeFromExt(ext)
}

// IsSupported returns true if the path has an extension the dispatcher can resolve.
func IsSupported(path string) bool {
	_, err := ResolveTagType(path)
	return err == nil
}
