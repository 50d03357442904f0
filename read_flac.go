package audiotags

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// ReadFlacFromPath reads the tag of a FLAC file.
func ReadFlacFromPath(path string) (*FlacTag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, codecErr(FLAC, "read", path, err)
	}
	defer f.Close()

	t, err := readFlac(bufio.NewReader(f))
	if err != nil {
		return nil, codecErr(FLAC, "read", path, err)
	}
	return t, nil
}

// ReadFlacFrom reads a FLAC tag from a stream positioned at its start.
// A leading ID3v2 tag, as written by some taggers, is skipped.
func ReadFlacFrom(r io.Reader) (*FlacTag, error) {
	t, err := readFlac(bufio.NewReader(r))
	if err != nil {
		return nil, codecErr(FLAC, "read", "", err)
	}
	return t, nil
}

func readFlac(br *bufio.Reader) (*FlacTag, error) {
	f, err := parseFLACMetadata(br)
	if err != nil {
		return nil, err
	}
	return flacTagFromFile(f)
}

// parseFLACMetadata parses the metadata blocks, skipping a prepended ID3v2
// header. The reader is left at the first audio frame.
func parseFLACMetadata(br *bufio.Reader) (*flac.File, error) {
	if _, err := skipID3v2(br); err != nil {
		return nil, err
	}
	f, err := flac.ParseMetadata(br)
	if err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}
	return f, nil
}

func flacTagFromFile(f *flac.File) (*FlacTag, error) {
	t := &FlacTag{config: DefaultConfig()}
	for _, meta := range f.Meta {
		switch meta.Type {
		case flac.VorbisComment:
			if t.comments != nil {
				continue
			}
			cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
			if err != nil {
				return nil, fmt.Errorf("parse vorbis comment: %w", err)
			}
			t.comments = cmts
		case flac.Picture:
			pic, err := flacpicture.ParseFromMetaDataBlock(*meta)
			if err != nil {
				return nil, fmt.Errorf("parse picture: %w", err)
			}
			t.pictures = append(t.pictures, pic)
		}
	}
	if t.comments == nil {
		t.comments = flacvorbis.New()
	}

	// STREAMINFO must be the first block; a file without it has no duration.
	if info, err := f.GetStreamInfo(); err == nil && info.SampleRate > 0 {
		t.duration = float64(info.SampleCount) / float64(info.SampleRate)
	}
	return t, nil
}
