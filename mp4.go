package audiotags

import (
	"strings"

	"github.com/Sorrow446/go-mp4tag"
)

// Freeform atoms holding the original release date, as written by Picard.
const (
	mp4OriginalDate = "ORIGINALDATE"
	mp4OriginalYear = "ORIGINALYEAR"
)

// Mp4Tag is the ilst metadata of an MPEG-4 container. Artist fields keep
// one entry per artist in memory; they are joined with the configured
// separator in the single atom go-mp4tag writes.
type Mp4Tag struct {
	inner        *mp4tag.MP4Tags
	artists      []string
	albumArtists []string
	duration     float64
	config       Config

	// Atoms as wrapped, split again whenever the config changes until
	// the artists are edited.
	storedArtist      string
	storedAlbumArtist string
	seeded            bool
}

// NewMp4Tag wraps parsed MP4 tags. A nil value starts an empty tag.
func NewMp4Tag(inner *mp4tag.MP4Tags) *Mp4Tag {
	if inner == nil {
		inner = &mp4tag.MP4Tags{}
	}
	t := &Mp4Tag{
		inner:             inner,
		config:            DefaultConfig(),
		storedArtist:      inner.Artist,
		storedAlbumArtist: inner.AlbumArtist,
		seeded:            true,
	}
	t.seedArtists()
	return t
}

// seedArtists splits the wrapped atoms into entries.
func (t *Mp4Tag) seedArtists() {
	t.artists = splitArtists(t.storedArtist, t.config)
	t.albumArtists = splitArtists(t.storedAlbumArtist, t.config)
}

// Inner returns the underlying tags.
func (t *Mp4Tag) Inner() *mp4tag.MP4Tags { return t.inner }

func (t *Mp4Tag) Type() TagType             { return MP4 }
func (t *Mp4Tag) Config() Config            { return t.config }
func (t *Mp4Tag) ToAnyTag() AnyTag          { return FromTag(t, t.config) }
func (t *Mp4Tag) ToTag(tt TagType) AudioTag { return convertTag(t, tt) }

// SetConfig also refolds the stored artist atoms with the new separator.
func (t *Mp4Tag) SetConfig(c Config) {
	t.config = c
	if t.seeded {
		t.seedArtists()
	}
	t.syncArtists()
}

func (t *Mp4Tag) multiValueArtists() bool { return true }

func (t *Mp4Tag) supportsCover(m MimeType) bool {
	return m == MimePng || m == MimeJpeg
}

// editArtists stops re-splitting the wrapped atoms.
func (t *Mp4Tag) editArtists() { t.seeded = false }

func (t *Mp4Tag) syncArtists() {
	t.inner.Artist = strings.Join(t.artists, t.config.separator())
	t.inner.AlbumArtist = strings.Join(t.albumArtists, t.config.separator())
}

func optional(s string) (string, bool) {
	return s, s != ""
}

func (t *Mp4Tag) Title() (string, bool) { return optional(t.inner.Title) }
func (t *Mp4Tag) SetTitle(title string) { t.inner.Title = title }
func (t *Mp4Tag) RemoveTitle()          { t.inner.Title = "" }

// Artist returns the first artist entry.
func (t *Mp4Tag) Artist() (string, bool) {
	if len(t.artists) == 0 {
		return "", false
	}
	return t.artists[0], true
}

func (t *Mp4Tag) SetArtist(artist string) {
	t.editArtists()
	t.artists = []string{artist}
	t.syncArtists()
}

func (t *Mp4Tag) AddArtist(artist string) {
	t.editArtists()
	t.artists = append(t.artists, artist)
	t.syncArtists()
}

func (t *Mp4Tag) RemoveArtist() {
	t.editArtists()
	t.artists = nil
	t.syncArtists()
}

// Artists returns every artist entry. Entries read from a file, where
// they share one atom, are split on the configured separator.
func (t *Mp4Tag) Artists() []string {
	return t.expand(t.artists)
}

func (t *Mp4Tag) expand(entries []string) []string {
	var out []string
	for _, e := range entries {
		out = append(out, splitArtists(e, t.config)...)
	}
	return out
}

// Date reads ©day. go-mp4tag keeps an all-digit ©day in Year and any
// other value in Date.
func (t *Mp4Tag) Date() (Timestamp, bool) {
	if t.inner.Date != "" {
		return parseOptionalTimestamp(t.inner.Date)
	}
	if t.inner.Year > 0 {
		return YearOnly(int(t.inner.Year)), true
	}
	return Timestamp{}, false
}

func (t *Mp4Tag) SetDate(date Timestamp) {
	t.inner.Date = date.String()
	t.inner.Year = 0
}

func (t *Mp4Tag) RemoveDate() {
	t.inner.Date = ""
	t.inner.Year = 0
}

func parseOptionalTimestamp(s string) (Timestamp, bool) {
	if s == "" {
		return Timestamp{}, false
	}
	ts, err := ParseTimestamp(s)
	if err != nil {
		return Timestamp{}, false
	}
	return ts, true
}

// Year is the year of the ©day atom.
func (t *Mp4Tag) Year() (int, bool) {
	ts, ok := t.Date()
	return ts.Year, ok
}

// SetYear replaces the year of ©day and keeps the rest of the date.
func (t *Mp4Tag) SetYear(year int) {
	if !validYear(year) {
		return
	}
	ts, _ := t.Date()
	t.SetDate(ts.WithYear(year))
}

func (t *Mp4Tag) RemoveYear() { t.RemoveDate() }

// custom looks up a freeform atom case-insensitively; older taggers wrote
// lowercase names.
func (t *Mp4Tag) custom(key string) (string, bool) {
	for k, v := range t.inner.Custom {
		if strings.EqualFold(k, key) && v != "" {
			return v, true
		}
	}
	return "", false
}

func (t *Mp4Tag) setCustom(key, value string) {
	t.removeCustom(key)
	if t.inner.Custom == nil {
		t.inner.Custom = make(map[string]string)
	}
	t.inner.Custom[key] = value
}

func (t *Mp4Tag) removeCustom(keys ...string) {
	for k := range t.inner.Custom {
		if matchesAny(k, keys) {
			delete(t.inner.Custom, k)
		}
	}
}

func (t *Mp4Tag) OriginalDate() (Timestamp, bool) {
	for _, key := range []string{mp4OriginalDate, mp4OriginalYear} {
		if v, ok := t.custom(key); ok {
			return parseOptionalTimestamp(v)
		}
	}
	return Timestamp{}, false
}

func (t *Mp4Tag) SetOriginalDate(date Timestamp) {
	t.setCustom(mp4OriginalDate, date.String())
	t.setCustom(mp4OriginalYear, YearOnly(date.Year).String())
}

func (t *Mp4Tag) RemoveOriginalDate() {
	t.removeCustom(mp4OriginalDate, mp4OriginalYear)
}

// Duration is the container's media duration, measured when the file
// was read.
func (t *Mp4Tag) Duration() (float64, bool) {
	return t.duration, t.duration > 0
}

func (t *Mp4Tag) AlbumTitle() (string, bool) { return optional(t.inner.Album) }
func (t *Mp4Tag) SetAlbumTitle(title string) { t.inner.Album = title }
func (t *Mp4Tag) RemoveAlbumTitle()          { t.inner.Album = "" }

func (t *Mp4Tag) AlbumArtist() (string, bool) {
	if len(t.albumArtists) == 0 {
		return "", false
	}
	return t.albumArtists[0], true
}

func (t *Mp4Tag) SetAlbumArtist(artist string) {
	t.editArtists()
	t.albumArtists = []string{artist}
	t.syncArtists()
}

func (t *Mp4Tag) AddAlbumArtist(artist string) {
	t.editArtists()
	t.albumArtists = append(t.albumArtists, artist)
	t.syncArtists()
}

func (t *Mp4Tag) RemoveAlbumArtist() {
	t.editArtists()
	t.albumArtists = nil
	t.syncArtists()
}

func (t *Mp4Tag) AlbumArtists() []string {
	return t.expand(t.albumArtists)
}

// AlbumCover returns the first artwork entry. Only PNG and JPEG artwork
// is recognized; anything else reads as no cover.
func (t *Mp4Tag) AlbumCover() (Picture, bool) {
	if len(t.inner.Pictures) == 0 || t.inner.Pictures[0] == nil {
		return Picture{}, false
	}
	pic := t.inner.Pictures[0]
	var m MimeType
	switch pic.Format {
	case mp4tag.ImageTypePNG:
		m = MimePng
	case mp4tag.ImageTypeJPEG:
		m = MimeJpeg
	default:
		sniffed, err := SniffMimeType(pic.Data)
		if err != nil || !t.supportsCover(sniffed) {
			return Picture{}, false
		}
		m = sniffed
	}
	return Picture{Data: pic.Data, MimeType: m}, true
}

// SetAlbumCover replaces the artwork. MP4 artwork can only be PNG or
// JPEG; any other MIME type panics.
func (t *Mp4Tag) SetAlbumCover(cover Picture) {
	var format mp4tag.ImageType
	switch cover.MimeType {
	case MimePng:
		format = mp4tag.ImageTypePNG
	case MimeJpeg:
		format = mp4tag.ImageTypeJPEG
	default:
		panic("audiotags: only png and jpeg are supported in mp4, got " + cover.MimeType.String())
	}
	t.inner.Pictures = []*mp4tag.MP4Picture{{Format: format, Data: cover.Data}}
}

func (t *Mp4Tag) RemoveAlbumCover() { t.inner.Pictures = nil }

func (t *Mp4Tag) Composer() (string, bool)    { return optional(t.inner.Composer) }
func (t *Mp4Tag) SetComposer(composer string) { t.inner.Composer = composer }
func (t *Mp4Tag) RemoveComposer()             { t.inner.Composer = "" }

func (t *Mp4Tag) TrackNumber() (uint16, bool) { return fromInt16(t.inner.TrackNumber) }
func (t *Mp4Tag) SetTrackNumber(n uint16)     { t.inner.TrackNumber = safeInt16(n) }
func (t *Mp4Tag) RemoveTrackNumber()          { t.inner.TrackNumber = 0 }
func (t *Mp4Tag) TotalTracks() (uint16, bool) { return fromInt16(t.inner.TrackTotal) }
func (t *Mp4Tag) SetTotalTracks(n uint16)     { t.inner.TrackTotal = safeInt16(n) }
func (t *Mp4Tag) RemoveTotalTracks()          { t.inner.TrackTotal = 0 }

func (t *Mp4Tag) DiscNumber() (uint16, bool) { return fromInt16(t.inner.DiscNumber) }
func (t *Mp4Tag) SetDiscNumber(n uint16)     { t.inner.DiscNumber = safeInt16(n) }
func (t *Mp4Tag) RemoveDiscNumber()          { t.inner.DiscNumber = 0 }
func (t *Mp4Tag) TotalDiscs() (uint16, bool) { return fromInt16(t.inner.DiscTotal) }
func (t *Mp4Tag) SetTotalDiscs(n uint16)     { t.inner.DiscTotal = safeInt16(n) }
func (t *Mp4Tag) RemoveTotalDiscs()          { t.inner.DiscTotal = 0 }

// Genre reads ©gen, then the standard gnre atom.
func (t *Mp4Tag) Genre() (string, bool) {
	if t.inner.CustomGenre != "" {
		return t.inner.CustomGenre, true
	}
	name, ok := mp4GenreNames[t.inner.Genre]
	return name, ok
}

// SetGenre writes ©gen and drops gnre.
func (t *Mp4Tag) SetGenre(genre string) {
	t.inner.CustomGenre = genre
	t.inner.Genre = mp4tag.GenreNone
}

func (t *Mp4Tag) RemoveGenre() {
	t.inner.CustomGenre = ""
	t.inner.Genre = mp4tag.GenreNone
}

func (t *Mp4Tag) Comment() (string, bool)   { return optional(t.inner.Comment) }
func (t *Mp4Tag) SetComment(comment string) { t.inner.Comment = comment }
func (t *Mp4Tag) RemoveComment()            { t.inner.Comment = "" }
