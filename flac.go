package audiotags

import (
	"strconv"
	"strings"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
)

// Vorbis comment keys. TOTALTRACKS and TOTALDISCS are an informal
// convention; TRACKTOTAL and DISCTOTAL are read as fallbacks.
const (
	vorbisTitle        = "TITLE"
	vorbisArtist       = "ARTIST"
	vorbisAlbum        = "ALBUM"
	vorbisAlbumArtist  = "ALBUMARTIST"
	vorbisDate         = "DATE"
	vorbisYear         = "YEAR"
	vorbisOriginalDate = "ORIGINALDATE"
	vorbisOriginalYear = "ORIGINALYEAR"
	vorbisTrackNumber  = "TRACKNUMBER"
	vorbisTotalTracks  = "TOTALTRACKS"
	vorbisTrackTotal   = "TRACKTOTAL"
	vorbisDiscNumber   = "DISCNUMBER"
	vorbisTotalDiscs   = "TOTALDISCS"
	vorbisDiscTotal    = "DISCTOTAL"
	vorbisGenre        = "GENRE"
	vorbisComposer     = "COMPOSER"
	vorbisComment      = "COMMENT"
)

const coverDescription = "Front Cover"

// positionKeys names the comments holding one track or disc position.
type positionKeys struct {
	number, total, altTotal string
}

var (
	trackKeys = positionKeys{vorbisTrackNumber, vorbisTotalTracks, vorbisTrackTotal}
	discKeys  = positionKeys{vorbisDiscNumber, vorbisTotalDiscs, vorbisDiscTotal}
)

// FlacTag is the Vorbis comment block and PICTURE blocks of a FLAC stream.
type FlacTag struct {
	comments *flacvorbis.MetaDataBlockVorbisComment
	pictures []*flacpicture.MetadataBlockPicture
	duration float64
	config   Config
}

// NewFlacTag wraps a parsed comment block. A nil block starts an empty tag.
func NewFlacTag(comments *flacvorbis.MetaDataBlockVorbisComment) *FlacTag {
	if comments == nil {
		comments = flacvorbis.New()
	}
	return &FlacTag{comments: comments, config: DefaultConfig()}
}

// Comments returns the underlying Vorbis comment block.
func (t *FlacTag) Comments() *flacvorbis.MetaDataBlockVorbisComment { return t.comments }

// Pictures returns the PICTURE blocks held by the tag.
func (t *FlacTag) Pictures() []*flacpicture.MetadataBlockPicture { return t.pictures }

func (t *FlacTag) Type() TagType       { return FLAC }
func (t *FlacTag) Config() Config      { return t.config }
func (t *FlacTag) SetConfig(c Config)  { t.config = c }
func (t *FlacTag) ToAnyTag() AnyTag    { return FromTag(t, t.config) }
func (t *FlacTag) ToTag(tt TagType) AudioTag { return convertTag(t, tt) }

// Get returns every value stored under key, matched case-insensitively.
// Malformed entries without '=' are skipped.
func (t *FlacTag) Get(key string) []string {
	var values []string
	for _, cmt := range t.comments.Comments {
		k, v, ok := strings.Cut(cmt, "=")
		if ok && strings.EqualFold(k, key) {
			values = append(values, v)
		}
	}
	return values
}

// GetFirst returns the first value stored under key.
func (t *FlacTag) GetFirst(key string) (string, bool) {
	for _, cmt := range t.comments.Comments {
		k, v, ok := strings.Cut(cmt, "=")
		if ok && strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// SetFirst replaces every value of key with a single one.
func (t *FlacTag) SetFirst(key, value string) {
	t.Remove(key)
	// Keys are checked by Add; invalid ones are dropped.
	_ = t.comments.Add(key, value)
}

// Remove deletes every value of the given keys.
func (t *FlacTag) Remove(keys ...string) {
	kept := t.comments.Comments[:0]
	for _, cmt := range t.comments.Comments {
		k, _, _ := strings.Cut(cmt, "=")
		if !matchesAny(k, keys) {
			kept = append(kept, cmt)
		}
	}
	t.comments.Comments = kept
}

func matchesAny(key string, keys []string) bool {
	for _, k := range keys {
		if strings.EqualFold(key, k) {
			return true
		}
	}
	return false
}

func (t *FlacTag) Title() (string, bool) { return t.GetFirst(vorbisTitle) }
func (t *FlacTag) SetTitle(title string) { t.SetFirst(vorbisTitle, title) }
func (t *FlacTag) RemoveTitle()          { t.Remove(vorbisTitle) }

func (t *FlacTag) Artist() (string, bool)  { return t.GetFirst(vorbisArtist) }
func (t *FlacTag) SetArtist(artist string) { t.SetFirst(vorbisArtist, artist) }
func (t *FlacTag) RemoveArtist()           { t.Remove(vorbisArtist) }

func (t *FlacTag) AddArtist(artist string) {
	stored, _ := t.Artist()
	t.SetFirst(vorbisArtist, appendArtist(stored, artist, t.config))
}

// Artists splits every ARTIST comment on the configured separator.
func (t *FlacTag) Artists() []string {
	return t.splitAll(vorbisArtist)
}

func (t *FlacTag) splitAll(key string) []string {
	var artists []string
	for _, v := range t.Get(key) {
		artists = append(artists, splitArtists(v, t.config)...)
	}
	return artists
}

func (t *FlacTag) Date() (Timestamp, bool) {
	return t.timestamp(vorbisDate)
}

func (t *FlacTag) SetDate(date Timestamp) {
	t.SetFirst(vorbisDate, date.String())
	if _, ok := t.GetFirst(vorbisYear); ok {
		t.SetFirst(vorbisYear, strconv.Itoa(date.Year))
	}
}

func (t *FlacTag) RemoveDate() { t.Remove(vorbisDate) }

func (t *FlacTag) OriginalDate() (Timestamp, bool) {
	if ts, ok := t.timestamp(vorbisOriginalDate); ok {
		return ts, true
	}
	return t.timestamp(vorbisOriginalYear)
}

func (t *FlacTag) SetOriginalDate(date Timestamp) {
	t.SetFirst(vorbisOriginalDate, date.String())
	t.SetFirst(vorbisOriginalYear, strconv.Itoa(date.Year))
}

func (t *FlacTag) RemoveOriginalDate() { t.Remove(vorbisOriginalDate, vorbisOriginalYear) }

func (t *FlacTag) timestamp(key string) (Timestamp, bool) {
	v, ok := t.GetFirst(key)
	if !ok {
		return Timestamp{}, false
	}
	ts, err := ParseTimestamp(v)
	if err != nil {
		return Timestamp{}, false
	}
	return ts, true
}

// Year reads YEAR, falling back to the first four characters of DATE.
func (t *FlacTag) Year() (int, bool) {
	if v, ok := t.GetFirst(vorbisYear); ok {
		if y, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return y, true
		}
	}
	if v, ok := t.GetFirst(vorbisDate); ok && len(v) >= 4 {
		if y, err := strconv.Atoi(v[:4]); err == nil {
			return y, true
		}
	}
	return 0, false
}

func (t *FlacTag) SetYear(year int) {
	if !validYear(year) {
		return
	}
	t.SetFirst(vorbisYear, strconv.Itoa(year))
}

// RemoveYear removes YEAR and DATE, since DATE also carries the year.
func (t *FlacTag) RemoveYear() { t.Remove(vorbisYear, vorbisDate) }

// Duration is derived from STREAMINFO; it is absent for tags not read
// from a file or when the stream does not declare its length.
func (t *FlacTag) Duration() (float64, bool) {
	return t.duration, t.duration > 0
}

func (t *FlacTag) AlbumTitle() (string, bool) { return t.GetFirst(vorbisAlbum) }
func (t *FlacTag) SetAlbumTitle(title string) { t.SetFirst(vorbisAlbum, title) }
func (t *FlacTag) RemoveAlbumTitle()          { t.Remove(vorbisAlbum) }

func (t *FlacTag) AlbumArtist() (string, bool)  { return t.GetFirst(vorbisAlbumArtist) }
func (t *FlacTag) SetAlbumArtist(artist string) { t.SetFirst(vorbisAlbumArtist, artist) }
func (t *FlacTag) RemoveAlbumArtist()           { t.Remove(vorbisAlbumArtist) }
func (t *FlacTag) AlbumArtists() []string       { return t.splitAll(vorbisAlbumArtist) }

func (t *FlacTag) AddAlbumArtist(artist string) {
	stored, _ := t.AlbumArtist()
	t.SetFirst(vorbisAlbumArtist, appendArtist(stored, artist, t.config))
}

// AlbumCover returns the first front-cover picture. Pictures whose MIME
// string is not recognized are sniffed from their content.
func (t *FlacTag) AlbumCover() (Picture, bool) {
	for _, pic := range t.pictures {
		if pic.PictureType != flacpicture.PictureTypeFrontCover {
			continue
		}
		m, err := ParseMimeType(pic.MIME)
		if err != nil {
			if m, err = SniffMimeType(pic.ImageData); err != nil {
				continue
			}
		}
		return Picture{Data: pic.ImageData, MimeType: m}, true
	}
	return Picture{}, false
}

func (t *FlacTag) SetAlbumCover(cover Picture) {
	t.RemoveAlbumCover()
	// Built directly: NewFromImageData decodes the image and rejects
	// anything image.DecodeConfig cannot read.
	t.pictures = append(t.pictures, &flacpicture.MetadataBlockPicture{
		PictureType: flacpicture.PictureTypeFrontCover,
		MIME:        cover.MimeType.String(),
		Description: coverDescription,
		ImageData:   cover.Data,
	})
}

func (t *FlacTag) RemoveAlbumCover() {
	kept := t.pictures[:0]
	for _, pic := range t.pictures {
		if pic.PictureType != flacpicture.PictureTypeFrontCover {
			kept = append(kept, pic)
		}
	}
	t.pictures = kept
}

func (t *FlacTag) Composer() (string, bool)    { return t.GetFirst(vorbisComposer) }
func (t *FlacTag) SetComposer(composer string) { t.SetFirst(vorbisComposer, composer) }
func (t *FlacTag) RemoveComposer()             { t.Remove(vorbisComposer) }

func (t *FlacTag) TrackNumber() (uint16, bool) { return t.number(trackKeys) }
func (t *FlacTag) SetTrackNumber(n uint16)     { t.setNumber(trackKeys, n) }
func (t *FlacTag) RemoveTrackNumber()          { t.removeNumber(trackKeys) }
func (t *FlacTag) TotalTracks() (uint16, bool) { return t.total(trackKeys) }
func (t *FlacTag) SetTotalTracks(n uint16)     { t.setTotal(trackKeys, n) }
func (t *FlacTag) RemoveTotalTracks()          { t.removeTotal(trackKeys) }

func (t *FlacTag) DiscNumber() (uint16, bool) { return t.number(discKeys) }
func (t *FlacTag) SetDiscNumber(n uint16)     { t.setNumber(discKeys, n) }
func (t *FlacTag) RemoveDiscNumber()          { t.removeNumber(discKeys) }
func (t *FlacTag) TotalDiscs() (uint16, bool) { return t.total(discKeys) }
func (t *FlacTag) SetTotalDiscs(n uint16)     { t.setTotal(discKeys, n) }
func (t *FlacTag) RemoveTotalDiscs()          { t.removeTotal(discKeys) }

func (t *FlacTag) position(keys positionKeys) numberPair {
	v, _ := t.GetFirst(keys.number)
	return parseNumberPair(v)
}

func (t *FlacTag) number(keys positionKeys) (uint16, bool) {
	p := t.position(keys)
	return p.num, p.hasNum
}

// total reads the dedicated total key, then the alternative spelling,
// then the "N/M" form of the number key.
func (t *FlacTag) total(keys positionKeys) (uint16, bool) {
	for _, key := range []string{keys.total, keys.altTotal} {
		if v, ok := t.GetFirst(key); ok {
			return parseUint16(v)
		}
	}
	p := t.position(keys)
	return p.total, p.hasTotal
}

// detachTotal moves a total stored as "N/M" into the total key so the
// number key can be rewritten on its own.
func (t *FlacTag) detachTotal(keys positionKeys) {
	p := t.position(keys)
	if !p.combined {
		return
	}
	if _, ok := t.GetFirst(keys.total); !ok && p.hasTotal {
		if _, alt := t.GetFirst(keys.altTotal); !alt {
			t.SetFirst(keys.total, formatUint16(p.total))
		}
	}
	if p.hasNum {
		t.SetFirst(keys.number, formatUint16(p.num))
	} else {
		t.Remove(keys.number)
	}
}

func (t *FlacTag) setNumber(keys positionKeys, n uint16) {
	t.detachTotal(keys)
	t.SetFirst(keys.number, formatUint16(n))
}

func (t *FlacTag) removeNumber(keys positionKeys) {
	t.detachTotal(keys)
	t.Remove(keys.number)
}

func (t *FlacTag) setTotal(keys positionKeys, n uint16) {
	t.detachTotal(keys)
	t.Remove(keys.altTotal)
	t.SetFirst(keys.total, formatUint16(n))
}

func (t *FlacTag) removeTotal(keys positionKeys) {
	t.detachTotal(keys)
	t.Remove(keys.total, keys.altTotal)
}

func (t *FlacTag) Genre() (string, bool) { return t.GetFirst(vorbisGenre) }
func (t *FlacTag) SetGenre(genre string) { t.SetFirst(vorbisGenre, genre) }
func (t *FlacTag) RemoveGenre()          { t.Remove(vorbisGenre) }

func (t *FlacTag) Comment() (string, bool)   { return t.GetFirst(vorbisComment) }
func (t *FlacTag) SetComment(comment string) { t.SetFirst(vorbisComment, comment) }
func (t *FlacTag) RemoveComment()            { t.Remove(vorbisComment) }
