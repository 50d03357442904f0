package audiotags

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/bogem/id3v2/v2"
)

// v2.3-only frames dropped when a tag is upgraded to v2.4.
var v23OnlyFrames = map[string]bool{
	frameYear:         true,
	frameDayMonth:     true,
	frameTime:         true,
	frameOriginalYear: true,
	"TRDA":            true,
	"TSIZ":            true,
}

// WriteTo replaces the leading ID3v2 tag of f, whatever its version, with
// this tag encoded as ID3v2.4. The audio that follows is kept.
func (t *Id3v2Tag) WriteTo(f *os.File) error {
	if err := t.writeTo(f); err != nil {
		return codecErr(ID3v2, "write", f.Name(), err)
	}
	return nil
}

// WriteToPath applies the tag to the MP3 file at path.
func (t *Id3v2Tag) WriteToPath(path string) error {
	return writeToPath(path, t.WriteTo)
}

func (t *Id3v2Tag) writeTo(f *os.File) error {
	br, err := readAllFrom(f)
	if err != nil {
		return err
	}
	if _, err := skipID3v2(br); err != nil {
		return err
	}
	audio, err := io.ReadAll(br)
	if err != nil {
		return fmt.Errorf("read audio: %w", err)
	}

	var buf bytes.Buffer
	if _, err := t.upgraded().WriteTo(&buf); err != nil {
		return fmt.Errorf("encode tag: %w", err)
	}
	buf.Write(audio)

	return rewriteFile(f, buf.Bytes())
}

// upgraded returns a v2.4 copy of the tag with v2.3 dates moved to
// TDRC and TDOR. The receiver is left untouched.
func (t *Id3v2Tag) upgraded() *id3v2.Tag {
	out := id3v2.NewEmptyTag()
	out.SetVersion(4)
	out.SetDefaultEncoding(id3v2.EncodingUTF8)

	for id, frames := range t.inner.AllFrames() {
		if t.isV23() && v23OnlyFrames[id] {
			continue
		}
		for _, frame := range frames {
			out.AddFrame(id, frame)
		}
	}
	if !t.isV23() {
		return out
	}

	if len(out.GetFrames(frameRecording)) == 0 {
		if date, ok := t.v23Date(); ok {
			out.AddTextFrame(frameRecording, id3v2.EncodingUTF8, date.String())
		}
	}
	if len(out.GetFrames(frameOriginalDate)) == 0 {
		if date, ok := t.timestamp(frameOriginalYear); ok {
			out.AddTextFrame(frameOriginalDate, id3v2.EncodingUTF8, date.String())
		}
	}
	return out
}
