package audiotags

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

const id3HeaderSize = 10

// id3TagSize returns the full on-disk size of the ID3v2 tag described by a
// 10-byte header, including the header and the optional footer.
func id3TagSize(header []byte) (int64, bool) {
	if len(header) < id3HeaderSize || !bytes.Equal(header[:3], []byte(id3Magic)) {
		return 0, false
	}
	// Size is stored in bytes 6-9 as syncsafe integer (7 bits per byte)
	size := int64(header[6]&0x7f)<<21 |
		int64(header[7]&0x7f)<<14 |
		int64(header[8]&0x7f)<<7 |
		int64(header[9]&0x7f)
	size += id3HeaderSize
	// Footer flag (bit 4 of flags byte), ID3v2.4 only
	if header[5]&0x10 != 0 {
		size += id3HeaderSize
	}
	return size, true
}

// skipID3v2 discards a leading ID3v2 tag, if any, and returns its size.
func skipID3v2(br *bufio.Reader) (int64, error) {
	header, err := br.Peek(id3HeaderSize)
	if err != nil {
		return 0, nil //nolint:nilerr // too short for a tag, the codec reports it
	}
	size, ok := id3TagSize(header)
	if !ok {
		return 0, nil
	}
	if _, err := br.Discard(int(size)); err != nil {
		return 0, fmt.Errorf("skip ID3v2 header: %w", err)
	}
	return size, nil
}

// rewriteFile replaces the whole content of f.
func rewriteFile(f *os.File, data []byte) error {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek: %w", err)
	}
	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return f.Sync()
}

// readAllFrom reads f from the start.
func readAllFrom(f *os.File) (*bufio.Reader, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek: %w", err)
	}
	return bufio.NewReader(f), nil
}

// writeToPath opens path for writing and hands it to write.
func writeToPath(path string, write func(*os.File) error) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
