package audiotags

import "os"

// TagEditor is the field-level contract every format adapter implements.
//
// Getters return the value and whether it is present; a value that cannot
// be parsed from the underlying storage is reported as absent. Setters and
// removers only touch the in-memory tag, and removing an absent field is
// a no-op. Nothing reaches the disk until the tag is written.
type TagEditor interface {
	Title() (string, bool)
	SetTitle(title string)
	RemoveTitle()

	// Artist is the stored artist string; Artists splits it when the
	// format keeps a single string.
	Artist() (string, bool)
	SetArtist(artist string)
	AddArtist(artist string)
	Artists() []string
	RemoveArtist()

	Date() (Timestamp, bool)
	SetDate(date Timestamp)
	RemoveDate()

	OriginalDate() (Timestamp, bool)
	SetOriginalDate(date Timestamp)
	RemoveOriginalDate()

	Year() (int, bool)
	// SetYear ignores years outside 0..MaxYear.
	SetYear(year int)
	RemoveYear()

	// Duration is the stream length in seconds. It is derived from the
	// audio stream and cannot be set.
	Duration() (float64, bool)

	AlbumTitle() (string, bool)
	SetAlbumTitle(title string)
	RemoveAlbumTitle()

	AlbumArtist() (string, bool)
	SetAlbumArtist(artist string)
	AddAlbumArtist(artist string)
	AlbumArtists() []string
	RemoveAlbumArtist()

	AlbumCover() (Picture, bool)
	SetAlbumCover(cover Picture)
	RemoveAlbumCover()

	Composer() (string, bool)
	SetComposer(composer string)
	RemoveComposer()

	TrackNumber() (uint16, bool)
	SetTrackNumber(n uint16)
	RemoveTrackNumber()

	TotalTracks() (uint16, bool)
	SetTotalTracks(n uint16)
	RemoveTotalTracks()

	DiscNumber() (uint16, bool)
	SetDiscNumber(n uint16)
	RemoveDiscNumber()

	TotalDiscs() (uint16, bool)
	SetTotalDiscs(n uint16)
	RemoveTotalDiscs()

	Genre() (string, bool)
	SetGenre(genre string)
	RemoveGenre()

	Comment() (string, bool)
	SetComment(comment string)
	RemoveComment()
}

// TagWriter persists a tag to disk.
type TagWriter interface {
	// WriteTo applies the tag to an open file, keeping its audio.
	WriteTo(f *os.File) error
	// WriteToPath applies the tag to the file at path.
	WriteToPath(path string) error
}

// AudioTag is the format-independent handle returned by the dispatcher.
type AudioTag interface {
	TagEditor
	TagWriter

	Type() TagType
	Config() Config
	SetConfig(c Config)

	// ToAnyTag snapshots the tag into the format-neutral record.
	ToAnyTag() AnyTag
	// ToTag transcodes the tag into a new, independent tag of another
	// format. The receiver is unchanged.
	ToTag(tt TagType) AudioTag
}

// Track returns the track number and total, zero when absent.
func Track(t TagEditor) (num, total uint16) {
	num, _ = t.TrackNumber()
	total, _ = t.TotalTracks()
	return num, total
}

// RemoveTrack removes both the track number and the total.
func RemoveTrack(t TagEditor) {
	t.RemoveTrackNumber()
	t.RemoveTotalTracks()
}

// Disc returns the disc number and total, zero when absent.
func Disc(t TagEditor) (num, total uint16) {
	num, _ = t.DiscNumber()
	total, _ = t.TotalDiscs()
	return num, total
}

// RemoveDisc removes both the disc number and the total.
func RemoveDisc(t TagEditor) {
	t.RemoveDiscNumber()
	t.RemoveTotalDiscs()
}

// New returns an empty tag of the given type.
func New(tt TagType, c Config) AudioTag {
	switch tt {
	case ID3v2:
		t := NewID3v2Tag(nil)
		t.SetConfig(c)
		return t
	case FLAC:
		t := NewFlacTag(nil)
		t.SetConfig(c)
		return t
	case MP4:
		t := NewMp4Tag(nil)
		t.SetConfig(c)
		return t
	}
	panic("audiotags: unknown tag type " + tt.String())
}
