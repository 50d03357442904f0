package audiotags

import (
	"bytes"
	"encoding/binary"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// mp3Frame returns a minimal MPEG1 Layer3 frame (128kbps, 44100Hz, stereo).
func mp3Frame() []byte {
	frame := make([]byte, 417)
	frame[0] = 0xff
	frame[1] = 0xfb
	frame[2] = 0x90
	frame[3] = 0x00
	return frame
}

// createTestMP3 writes an MP3 file whose ID3v2 tag is filled by build.
// A nil build writes no tag at all.
func createTestMP3(t *testing.T, dir string, build func(tag *id3v2.Tag)) string {
	t.Helper()
	path := filepath.Join(dir, "test.mp3")

	var buf bytes.Buffer
	if build != nil {
		tag := id3v2.NewEmptyTag()
		build(tag)
		if _, err := tag.WriteTo(&buf); err != nil {
			t.Fatalf("failed to encode ID3v2 tag: %v", err)
		}
	}
	buf.Write(mp3Frame())

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("failed to create test MP3: %v", err)
	}
	return path
}

// createTestMP3v22 writes an MP3 file behind an empty ID3v2.2 tag.
func createTestMP3v22(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "old.mp3")

	header := []byte{'I', 'D', '3', 2, 0, 0, 0, 0, 0, 10}
	data := append(header, make([]byte, 10)...)
	data = append(data, mp3Frame()...)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to create test MP3: %v", err)
	}
	return path
}

const (
	testSampleRate  = 44100
	testSampleCount = 441000
)

// streamInfoData encodes a 34-byte STREAMINFO block body.
func streamInfoData(sampleRate uint32, samples uint64) []byte {
	data := make([]byte, 34)
	binary.BigEndian.PutUint16(data[0:], 4096)
	binary.BigEndian.PutUint16(data[2:], 4096)
	// sample rate (20 bits), channels-1 (3), bits per sample-1 (5), samples (36)
	packed := uint64(sampleRate)<<44 | 1<<41 | 15<<36 | samples&(1<<36-1)
	binary.BigEndian.PutUint64(data[10:], packed)
	return data
}

// flacBytes builds a FLAC stream with STREAMINFO, a Vorbis comment block
// holding the given "KEY=value" comments, and a few bytes of frame data.
func flacBytes(t *testing.T, comments ...string) []byte {
	t.Helper()

	cmts := flacvorbis.New()
	cmts.Comments = append(cmts.Comments, comments...)
	cmtBlock := cmts.Marshal()

	f := &flac.File{
		Meta: []*flac.MetaDataBlock{
			{Type: flac.StreamInfo, Data: streamInfoData(testSampleRate, testSampleCount)},
			&cmtBlock,
			{Type: flac.Padding, Data: make([]byte, 64)},
		},
		Frames: []byte{0xff, 0xf8, 0x69, 0x08, 0x00, 0x00, 0x00, 0x00},
	}
	return f.Marshal()
}

// createTestFLAC writes a FLAC file holding the given comments.
func createTestFLAC(t *testing.T, dir string, comments ...string) string {
	t.Helper()
	path := filepath.Join(dir, "test.flac")
	if err := os.WriteFile(path, flacBytes(t, comments...), 0o600); err != nil {
		t.Fatalf("failed to create test FLAC: %v", err)
	}
	return path
}

// createTestM4A creates a one-second AAC file using ffmpeg.
func createTestM4A(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "test.m4a")

	cmd := exec.Command("ffmpeg", "-y", "-f", "lavfi", "-i", "sine=frequency=440:duration=1", "-c:a", "aac", path)
	cmd.Stderr = nil
	cmd.Stdout = nil
	if err := cmd.Run(); err != nil {
		t.Skipf("ffmpeg not available: %v", err)
	}
	return path
}

func assertEqual[T comparable](t *testing.T, field string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", field, got, want)
	}
}

func assertPresent[T comparable](t *testing.T, field string, got T, ok bool, want T) {
	t.Helper()
	if !ok {
		t.Errorf("%s absent, want %v", field, want)
		return
	}
	if got != want {
		t.Errorf("%s = %v, want %v", field, got, want)
	}
}

func assertAbsent[T any](t *testing.T, field string, got T, ok bool) {
	t.Helper()
	if ok {
		t.Errorf("%s = %v, want absent", field, got)
	}
}
