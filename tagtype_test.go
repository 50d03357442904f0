package audiotags

import (
	"errors"
	"testing"
)

func TestTagTypeFromExt(t *testing.T) {
	tests := []struct {
		ext  string
		want TagType
	}{
		{"mp3", ID3v2},
		{"MP3", ID3v2},
		{".mp3", ID3v2},
		{"m4a", MP4},
		{"m4b", MP4},
		{"m4p", MP4},
		{"m4v", MP4},
		{"isom", MP4},
		{"mp4", MP4},
		{"M4A", MP4},
		{"flac", FLAC},
		{".FLAC", FLAC},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			got, err := TagTypeFromExt(tt.ext)
			if err != nil {
				t.Fatalf("TagTypeFromExt(%q) error: %v", tt.ext, err)
			}
			if got != tt.want {
				t.Errorf("TagTypeFromExt(%q) = %v, want %v", tt.ext, got, tt.want)
			}
		})
	}
}

func TestTagTypeFromExt_Unsupported(t *testing.T) {
	for _, ext := range []string{"wav", "ogg", "opus", "aiff", ""} {
		_, err := TagTypeFromExt(ext)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("TagTypeFromExt(%q) error = %v, want ErrUnsupportedFormat", ext, err)
		}
	}
}

func TestResolveTagType(t *testing.T) {
	tests := []struct {
		path    string
		want    TagType
		wantErr error
	}{
		{"/music/song.mp3", ID3v2, nil},
		{"/music/Song.FLAC", FLAC, nil},
		{"album/track.m4a", MP4, nil},
		{"dir.with.dots/track.isom", MP4, nil},
		{"/music/song.wav", 0, ErrUnsupportedFormat},
		{"/music/song", 0, ErrUnknownFileExtension},
		{"/music/song.", 0, ErrUnknownFileExtension},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ResolveTagType(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveTagType(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveTagType(%q) error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("ResolveTagType(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestResolveTagType_ErrorCarriesContext(t *testing.T) {
	_, err := ResolveTagType("song.wav")
	var formatErr *UnsupportedFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("error = %T, want *UnsupportedFormatError", err)
	}
	if formatErr.Ext != "wav" {
		t.Errorf("Ext = %q, want %q", formatErr.Ext, "wav")
	}

	_, err = ResolveTagType("README")
	var extErr *UnknownFileExtensionError
	if !errors.As(err, &extErr) {
		t.Fatalf("error = %T, want *UnknownFileExtensionError", err)
	}
	if extErr.Path != "README" {
		t.Errorf("Path = %q, want %q", extErr.Path, "README")
	}
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.flac", true},
		{"song.m4b", true},
		{"song.opus", false},
		{"song", false},
	}
	for _, tt := range tests {
		if got := IsSupported(tt.path); got != tt.want {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestParseTagType(t *testing.T) {
	tests := []struct {
		in   string
		want TagType
	}{
		{"id3v2", ID3v2},
		{"ID3", ID3v2},
		{"flac", FLAC},
		{"mp4", MP4},
		{"m4a", MP4},
		{"mp3", ID3v2},
	}
	for _, tt := range tests {
		got, err := ParseTagType(tt.in)
		if err != nil {
			t.Fatalf("ParseTagType(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseTagType(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if back, err := ParseTagType(got.String()); err != nil || back != got {
			t.Errorf("ParseTagType(%q) = %v, %v; want %v", got.String(), back, err, got)
		}
	}

	if _, err := ParseTagType("vorbis"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ParseTagType(vorbis) error = %v, want ErrUnsupportedFormat", err)
	}
}
