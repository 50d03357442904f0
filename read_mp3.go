package audiotags

import (
	"errors"
	"io"
	"os"

	"github.com/bogem/id3v2/v2"
	"github.com/llehouerou/go-mp3"
)

// ReadID3v2FromPath reads the ID3v2 tag of an MP3 file and measures the
// stream length. A file without a tag yields an empty ID3v2.4 tag.
func ReadID3v2FromPath(path string) (*Id3v2Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, codecErr(ID3v2, "read", path, err)
	}
	defer f.Close()

	t, err := readID3v2(f)
	if err != nil {
		return nil, codecErr(ID3v2, "read", path, err)
	}
	return t, nil
}

// ReadID3v2From reads an ID3v2 tag from a stream positioned at its start.
// The stream length is measured only when r can seek.
func ReadID3v2From(r io.Reader) (*Id3v2Tag, error) {
	t, err := readID3v2(r)
	if err != nil {
		return nil, codecErr(ID3v2, "read", "", err)
	}
	return t, nil
}

func readID3v2(r io.Reader) (*Id3v2Tag, error) {
	inner, err := id3v2.ParseReader(r, id3v2.Options{Parse: true})
	if errors.Is(err, id3v2.ErrUnsupportedVersion) {
		// ID3v2.2 or older: read as empty, the tag is replaced on write.
		inner, err = nil, nil
	}
	if err != nil {
		return nil, err
	}
	t := NewID3v2Tag(inner)
	if rs, ok := r.(io.ReadSeeker); ok {
		t.duration = measureMP3Duration(rs)
	}
	return t, nil
}

// measureMP3Duration measures the MPEG stream. Failures leave the duration
// unknown rather than failing the read.
func measureMP3Duration(rs io.ReadSeeker) float64 {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0
	}
	decoder, err := mp3.NewDecoder(rs)
	if err != nil {
		return 0
	}
	sampleRate := decoder.SampleRate()
	if sampleRate == 0 {
		return 0
	}
	sampleCount := max(decoder.SampleCount(), 0)
	return float64(sampleCount) / float64(sampleRate)
}
