package command

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/llehouerou/audiotags"
)

var (
	// ErrUnknownField is returned for a field name outside Fields.
	ErrUnknownField = errors.New("unknown field")
	// ErrCoverFormat is returned when the target format cannot embed the
	// cover's encoding.
	ErrCoverFormat = errors.New("cover encoding not supported by this format")
)

// Edit sets one field from its text form.
type Edit struct {
	Field string
	Value string
}

type field struct {
	set    func(t audiotags.AudioTag, value string) error
	remove func(t audiotags.AudioTag)
}

var fields = map[string]field{
	"title":         text(audiotags.AudioTag.SetTitle, audiotags.AudioTag.RemoveTitle),
	"artist":        text(audiotags.AudioTag.SetArtist, audiotags.AudioTag.RemoveArtist),
	"album":         text(audiotags.AudioTag.SetAlbumTitle, audiotags.AudioTag.RemoveAlbumTitle),
	"album-artist":  text(audiotags.AudioTag.SetAlbumArtist, audiotags.AudioTag.RemoveAlbumArtist),
	"composer":      text(audiotags.AudioTag.SetComposer, audiotags.AudioTag.RemoveComposer),
	"genre":         text(audiotags.AudioTag.SetGenre, audiotags.AudioTag.RemoveGenre),
	"comment":       text(audiotags.AudioTag.SetComment, audiotags.AudioTag.RemoveComment),
	"date":          timestamp(audiotags.AudioTag.SetDate, audiotags.AudioTag.RemoveDate),
	"original-date": timestamp(audiotags.AudioTag.SetOriginalDate, audiotags.AudioTag.RemoveOriginalDate),
	"track":         number(audiotags.AudioTag.SetTrackNumber, audiotags.AudioTag.RemoveTrackNumber),
	"total-tracks":  number(audiotags.AudioTag.SetTotalTracks, audiotags.AudioTag.RemoveTotalTracks),
	"disc":          number(audiotags.AudioTag.SetDiscNumber, audiotags.AudioTag.RemoveDiscNumber),
	"total-discs":   number(audiotags.AudioTag.SetTotalDiscs, audiotags.AudioTag.RemoveTotalDiscs),
	"year": {
		set: func(t audiotags.AudioTag, v string) error {
			year, err := strconv.Atoi(v)
			if err != nil || year <= 0 || year > audiotags.MaxYear {
				return fmt.Errorf("invalid year %q", v)
			}
			t.SetYear(year)
			return nil
		},
		remove: audiotags.AudioTag.RemoveYear,
	},
	"cover": {
		set:    setCover,
		remove: audiotags.AudioTag.RemoveAlbumCover,
	},
}

func text(set func(audiotags.AudioTag, string), remove func(audiotags.AudioTag)) field {
	return field{
		set: func(t audiotags.AudioTag, v string) error {
			set(t, v)
			return nil
		},
		remove: remove,
	}
}

func number(set func(audiotags.AudioTag, uint16), remove func(audiotags.AudioTag)) field {
	return field{
		set: func(t audiotags.AudioTag, v string) error {
			n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 16)
			if err != nil {
				return fmt.Errorf("invalid number %q", v)
			}
			set(t, uint16(n))
			return nil
		},
		remove: remove,
	}
}

func timestamp(set func(audiotags.AudioTag, audiotags.Timestamp), remove func(audiotags.AudioTag)) field {
	return field{
		set: func(t audiotags.AudioTag, v string) error {
			ts, err := audiotags.ParseTimestamp(v)
			if err != nil {
				return err
			}
			set(t, ts)
			return nil
		},
		remove: remove,
	}
}

// setCover embeds the image file at path as the front cover.
func setCover(t audiotags.AudioTag, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	mime, err := audiotags.SniffMimeType(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if t.Type() == audiotags.MP4 && mime != audiotags.MimePng && mime != audiotags.MimeJpeg {
		return fmt.Errorf("%w: %s", ErrCoverFormat, mime)
	}
	t.SetAlbumCover(audiotags.Picture{Data: data, MimeType: mime})
	return nil
}

// Fields returns the field names accepted by Set, sorted.
func Fields() []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseFieldList splits a comma-separated list of field names.
func ParseFieldList(s string) ([]string, error) {
	var names []string
	for part := range strings.SplitSeq(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if _, ok := fields[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		names = append(names, name)
	}
	return names, nil
}

// Set removes the named fields, applies the edits and writes the tag back
// to path. Nothing is written when any edit fails.
func (r *Runner) Set(path string, edits []Edit, remove []string) error {
	tag, err := r.reader.ReadFromPath(path)
	if err != nil {
		return err
	}

	for _, name := range remove {
		f, ok := fields[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		f.remove(tag)
	}
	for _, e := range edits {
		f, ok := fields[e.Field]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, e.Field)
		}
		if err := f.set(tag, e.Value); err != nil {
			return fmt.Errorf("%s: %w", e.Field, err)
		}
	}

	if err := tag.WriteToPath(path); err != nil {
		return err
	}
	r.logger.Info("tags written",
		zap.String("path", path),
		zap.Int("edits", len(edits)),
		zap.Int("removed", len(remove)),
	)
	_, err = fmt.Fprintf(r.out, "Updated %s\n", path)
	return err
}
