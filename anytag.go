package audiotags

import "strings"

// AnyTag is the format-neutral record used to move metadata between
// formats. Zero values mean absent: empty strings, nil slices, zero
// numbers, zero timestamps and a nil cover.
//
// AnyTag never touches disk. Build it with ToAnyTag or FromTag and apply it
// with ApplyTo or AudioTag's ToTag.
type AnyTag struct {
	Config Config

	Title        string
	Artists      []string
	Date         Timestamp
	OriginalDate Timestamp
	Year         int
	// Duration is in seconds. It is copied from the source and never written.
	Duration     float64
	AlbumTitle   string
	AlbumArtists []string
	AlbumCover   *Picture
	TrackNumber  uint16
	TotalTracks  uint16
	DiscNumber   uint16
	TotalDiscs   uint16
	Genre        string
	Composer     string
	Comment      string
}

// ArtistsAsString joins Artists with the configured separator. It reports
// false when there are no artists.
func (a *AnyTag) ArtistsAsString() (string, bool) {
	return joinArtists(a.Artists, a.Config.separator())
}

// AlbumArtistsAsString joins AlbumArtists with the configured separator.
func (a *AnyTag) AlbumArtistsAsString() (string, bool) {
	return joinArtists(a.AlbumArtists, a.Config.separator())
}

// Track returns the track number and total.
func (a *AnyTag) Track() (num, total uint16) {
	return a.TrackNumber, a.TotalTracks
}

// Disc returns the disc number and total.
func (a *AnyTag) Disc() (num, total uint16) {
	return a.DiscNumber, a.TotalDiscs
}

// FromTag reads every present field of t into an AnyTag. It never fails;
// fields the source does not hold stay zero.
func FromTag(t TagEditor, c Config) AnyTag {
	a := AnyTag{Config: c}
	a.Title, _ = t.Title()
	a.Artists = t.Artists()
	a.Date, _ = t.Date()
	a.OriginalDate, _ = t.OriginalDate()
	a.Year, _ = t.Year()
	a.Duration, _ = t.Duration()
	a.AlbumTitle, _ = t.AlbumTitle()
	a.AlbumArtists = t.AlbumArtists()
	if cover, ok := t.AlbumCover(); ok {
		a.AlbumCover = &cover
	}
	a.TrackNumber, _ = t.TrackNumber()
	a.TotalTracks, _ = t.TotalTracks()
	a.DiscNumber, _ = t.DiscNumber()
	a.TotalDiscs, _ = t.TotalDiscs()
	a.Genre, _ = t.Genre()
	a.Composer, _ = t.Composer()
	a.Comment, _ = t.Comment()
	return a
}

// ApplyTo sets every present field of a on t. Fields t cannot express are
// dropped; covers in an encoding t does not accept are skipped rather
// than failing the whole transfer.
func (a *AnyTag) ApplyTo(t TagEditor) {
	if a.Title != "" {
		t.SetTitle(a.Title)
	}
	applyArtists(a.Artists, a.Config, t.SetArtist, t.AddArtist, isMultiValue(t))
	// Year first: a full date must win over the year alone.
	if a.Year != 0 {
		t.SetYear(a.Year)
	}
	if !a.Date.IsZero() {
		t.SetDate(a.Date)
	}
	if !a.OriginalDate.IsZero() {
		t.SetOriginalDate(a.OriginalDate)
	}
	if a.AlbumTitle != "" {
		t.SetAlbumTitle(a.AlbumTitle)
	}
	applyArtists(a.AlbumArtists, a.Config, t.SetAlbumArtist, t.AddAlbumArtist, isMultiValue(t))
	if a.AlbumCover != nil && coverSupported(t, a.AlbumCover.MimeType) {
		t.SetAlbumCover(*a.AlbumCover)
	}
	if a.TrackNumber != 0 {
		t.SetTrackNumber(a.TrackNumber)
	}
	if a.TotalTracks != 0 {
		t.SetTotalTracks(a.TotalTracks)
	}
	if a.DiscNumber != 0 {
		t.SetDiscNumber(a.DiscNumber)
	}
	if a.TotalDiscs != 0 {
		t.SetTotalDiscs(a.TotalDiscs)
	}
	if a.Genre != "" {
		t.SetGenre(a.Genre)
	}
	if a.Composer != "" {
		t.SetComposer(a.Composer)
	}
	if a.Comment != "" {
		t.SetComment(a.Comment)
	}
}

// multiValuer is implemented by adapters whose artist fields hold a real
// list rather than a joined string.
type multiValuer interface {
	multiValueArtists() bool
}

func isMultiValue(t TagEditor) bool {
	mv, ok := t.(multiValuer)
	return ok && mv.multiValueArtists()
}

// coverChecker is implemented by adapters that accept only some encodings.
type coverChecker interface {
	supportsCover(m MimeType) bool
}

func coverSupported(t TagEditor, m MimeType) bool {
	cc, ok := t.(coverChecker)
	return !ok || cc.supportsCover(m)
}

func applyArtists(artists []string, c Config, set, add func(string), multi bool) {
	if len(artists) == 0 {
		return
	}
	if !multi {
		joined, _ := joinArtists(artists, c.separator())
		set(joined)
		return
	}
	set(artists[0])
	for _, artist := range artists[1:] {
		add(artist)
	}
}

func joinArtists(artists []string, sep string) (string, bool) {
	if len(artists) == 0 {
		return "", false
	}
	return strings.Join(artists, sep), true
}

// splitArtists expands a stored single-string artist field.
func splitArtists(s string, c Config) []string {
	if s == "" {
		return nil
	}
	if !c.ParseMultipleArtists {
		return []string{s}
	}
	parts := strings.Split(s, c.separator())
	artists := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			artists = append(artists, p)
		}
	}
	if len(artists) == 0 {
		return []string{s}
	}
	return artists
}

// appendArtist appends to a stored single-string artist field.
func appendArtist(stored, artist string, c Config) string {
	if stored == "" {
		return artist
	}
	return stored + c.separator() + artist
}
