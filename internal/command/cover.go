package command

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/llehouerou/audiotags"
)

// ErrNoCover is returned when the file has no front cover.
var ErrNoCover = errors.New("no album cover")

// Cover writes the front cover of path to out. When out is empty the cover
// is saved next to path as "cover" with the extension of its encoding.
// It returns the path written.
func (r *Runner) Cover(path, out string) (string, error) {
	tag, err := r.reader.ReadFromPath(path)
	if err != nil {
		return "", err
	}

	cover, ok := tag.AlbumCover()
	if !ok {
		return "", ErrNoCover
	}

	if out == "" {
		out = filepath.Join(filepath.Dir(path), "cover"+coverExt(cover.MimeType))
	} else if filepath.Ext(out) == "" {
		out += coverExt(cover.MimeType)
	}

	if err := os.WriteFile(out, cover.Data, 0o644); err != nil { //nolint:gosec // cover images are not sensitive
		return "", err
	}
	_, err = fmt.Fprintf(r.out, "Saved %s (%s, %s)\n", out, strings.TrimPrefix(cover.MimeType.String(), "image/"), formatSize(len(cover.Data)))
	return out, err
}

// coverExt returns the usual file extension for a cover encoding.
func coverExt(m audiotags.MimeType) string {
	switch m {
	case audiotags.MimeJpeg:
		return ".jpg"
	case audiotags.MimePng:
		return ".png"
	case audiotags.MimeTiff:
		return ".tif"
	case audiotags.MimeBmp:
		return ".bmp"
	case audiotags.MimeGif:
		return ".gif"
	}
	return ""
}
