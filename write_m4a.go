package audiotags

import (
	"fmt"
	"os"

	"github.com/Sorrow446/go-mp4tag"
)

// go-mp4tag delete names for fields absent from the tag. Write merges the
// tag into the file's atoms and leaves a field untouched unless it is
// listed here.
const (
	mp4DelTitle       = "title"
	mp4DelArtist      = "artist"
	mp4DelAlbum       = "album"
	mp4DelAlbumArtist = "albumartist"
	mp4DelComment     = "comment"
	mp4DelComposer    = "composer"
	mp4DelCustomGenre = "customgenre"
	mp4DelGenre       = "genre"
	mp4DelDate        = "date"
	mp4DelYear        = "year"
	mp4DelTrackNumber = "tracknumber"
	mp4DelTrackTotal  = "tracktotal"
	mp4DelDiscNumber  = "discnumber"
	mp4DelDiscTotal   = "disctotal"
	mp4DelPictures    = "allpictures"

	// The in-memory freeform maps hold every atom read from the file, so
	// the file's copies are dropped and the maps written as they are.
	mp4DelCustom      = "allcustom"
	mp4DelOtherCustom = "allothercustom"
)

// WriteTo rewrites the ilst of the MPEG-4 file f. go-mp4tag works on
// paths, so the file is reopened by name.
func (t *Mp4Tag) WriteTo(f *os.File) error {
	return t.WriteToPath(f.Name())
}

// WriteToPath rewrites the ilst of the MPEG-4 file at path. Fields absent
// from the tag are deleted from the file.
func (t *Mp4Tag) WriteToPath(path string) error {
	if err := t.write(path); err != nil {
		return codecErr(MP4, "write", path, err)
	}
	return nil
}

func (t *Mp4Tag) write(path string) error {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer mp4.Close()

	if err := mp4.Write(t.inner, t.deletions()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// deletions lists the go-mp4tag fields that are empty in memory.
func (t *Mp4Tag) deletions() []string {
	var del []string
	addIf := func(empty bool, name string) {
		if empty {
			del = append(del, name)
		}
	}
	in := t.inner
	addIf(in.Title == "", mp4DelTitle)
	addIf(in.Artist == "", mp4DelArtist)
	addIf(in.Album == "", mp4DelAlbum)
	addIf(in.AlbumArtist == "", mp4DelAlbumArtist)
	addIf(in.Comment == "", mp4DelComment)
	addIf(in.Composer == "", mp4DelComposer)
	addIf(in.CustomGenre == "", mp4DelCustomGenre)
	addIf(in.Genre == mp4tag.GenreNone, mp4DelGenre)
	addIf(in.Date == "", mp4DelDate)
	addIf(in.Year <= 0, mp4DelYear)
	addIf(in.TrackNumber <= 0, mp4DelTrackNumber)
	addIf(in.TrackTotal <= 0, mp4DelTrackTotal)
	addIf(in.DiscNumber <= 0, mp4DelDiscNumber)
	addIf(in.DiscTotal <= 0, mp4DelDiscTotal)
	addIf(len(in.Pictures) == 0, mp4DelPictures)
	return append(del, mp4DelCustom, mp4DelOtherCustom)
}
