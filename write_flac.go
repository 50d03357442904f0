package audiotags

import (
	"fmt"
	"io"
	"os"

	"github.com/go-flac/go-flac"
)

// WriteTo replaces the Vorbis comment and PICTURE blocks of the FLAC
// stream in f. Other metadata blocks and the audio frames are kept; a
// prepended ID3v2 header is dropped.
func (t *FlacTag) WriteTo(f *os.File) error {
	if err := t.writeTo(f); err != nil {
		return codecErr(FLAC, "write", f.Name(), err)
	}
	return nil
}

// WriteToPath applies the tag to the FLAC file at path.
func (t *FlacTag) WriteToPath(path string) error {
	return writeToPath(path, t.WriteTo)
}

func (t *FlacTag) writeTo(f *os.File) error {
	br, err := readAllFrom(f)
	if err != nil {
		return err
	}
	file, err := parseFLACMetadata(br)
	if err != nil {
		return fmt.Errorf("parse file: %w", err)
	}
	frames, err := io.ReadAll(br)
	if err != nil {
		return fmt.Errorf("read frames: %w", err)
	}
	file.Frames = frames

	t.replaceBlocks(file)

	return rewriteFile(f, file.Marshal())
}

// replaceBlocks swaps the tag's blocks into file. The comment block keeps
// the position of the one it replaces; pictures follow it.
func (t *FlacTag) replaceBlocks(file *flac.File) {
	cmtBlock := t.comments.Marshal()
	blocks := make([]*flac.MetaDataBlock, 0, len(file.Meta)+len(t.pictures)+1)
	inserted := false
	insert := func() {
		blocks = append(blocks, &cmtBlock)
		for _, pic := range t.pictures {
			picBlock := pic.Marshal()
			blocks = append(blocks, &picBlock)
		}
		inserted = true
	}

	for _, meta := range file.Meta {
		switch meta.Type {
		case flac.VorbisComment:
			if !inserted {
				insert()
			}
		case flac.Picture:
		default:
			blocks = append(blocks, meta)
		}
	}
	if !inserted {
		insert()
	}
	file.Meta = blocks
}
