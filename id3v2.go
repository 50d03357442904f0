package audiotags

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// ID3v2 frame IDs. v2.3 dates are split across TYER, TDAT (DDMM) and
// TIME (HHMM); v2.4 replaces them with TDRC and TORY with TDOR.
const (
	frameTitle        = "TIT2"
	frameArtist       = "TPE1"
	frameAlbum        = "TALB"
	frameAlbumArtist  = "TPE2"
	frameGenre        = "TCON"
	frameComposer     = "TCOM"
	frameTrack        = "TRCK"
	frameDisc         = "TPOS"
	frameLength       = "TLEN"
	frameComment      = "COMM"
	framePicture      = "APIC"
	frameUserText     = "TXXX"
	frameRecording    = "TDRC"
	frameOriginalDate = "TDOR"
	frameYear         = "TYER"
	frameDayMonth     = "TDAT"
	frameTime         = "TIME"
	frameOriginalYear = "TORY"
)

// commentLanguage is written into COMM frames created by SetComment.
const commentLanguage = "XXX"

// Id3v2Tag is the ID3v2 tag of an MP3 file. Tags read as v2.3 keep their
// v2.3 date frames in memory and are upgraded to v2.4 when written.
type Id3v2Tag struct {
	inner    *id3v2.Tag
	duration float64
	config   Config
}

// NewID3v2Tag wraps a parsed tag. A nil tag starts an empty ID3v2.4 tag.
func NewID3v2Tag(inner *id3v2.Tag) *Id3v2Tag {
	if inner == nil {
		inner = id3v2.NewEmptyTag()
		inner.SetVersion(4)
		inner.SetDefaultEncoding(id3v2.EncodingUTF8)
	}
	return &Id3v2Tag{inner: inner, config: DefaultConfig()}
}

// Inner returns the underlying tag.
func (t *Id3v2Tag) Inner() *id3v2.Tag { return t.inner }

// Version returns the major version the tag was read as (3 or 4).
func (t *Id3v2Tag) Version() byte { return t.inner.Version() }

func (t *Id3v2Tag) isV23() bool { return t.inner.Version() < 4 }

func (t *Id3v2Tag) Type() TagType             { return ID3v2 }
func (t *Id3v2Tag) Config() Config            { return t.config }
func (t *Id3v2Tag) SetConfig(c Config)        { t.config = c }
func (t *Id3v2Tag) ToAnyTag() AnyTag          { return FromTag(t, t.config) }
func (t *Id3v2Tag) ToTag(tt TagType) AudioTag { return convertTag(t, tt) }

// text returns the first text frame with the given ID.
func (t *Id3v2Tag) text(id string) (string, bool) {
	frames := t.inner.GetFrames(id)
	if len(frames) == 0 {
		return "", false
	}
	tf, ok := frames[0].(id3v2.TextFrame)
	if !ok {
		return "", false
	}
	return strings.TrimRight(tf.Text, "\x00"), true
}

func (t *Id3v2Tag) setText(id, value string) {
	t.inner.DeleteFrames(id)
	t.inner.AddTextFrame(id, id3v2.EncodingUTF8, value)
}

func (t *Id3v2Tag) remove(ids ...string) {
	for _, id := range ids {
		t.inner.DeleteFrames(id)
	}
}

// userText reads a TXXX frame by description.
func (t *Id3v2Tag) userText(description string) (string, bool) {
	for _, frame := range t.inner.GetFrames(frameUserText) {
		if udf, ok := frame.(id3v2.UserDefinedTextFrame); ok && udf.Description == description {
			return udf.Value, true
		}
	}
	return "", false
}

func (t *Id3v2Tag) Title() (string, bool) { return t.text(frameTitle) }
func (t *Id3v2Tag) SetTitle(title string) { t.setText(frameTitle, title) }
func (t *Id3v2Tag) RemoveTitle()          { t.remove(frameTitle) }

func (t *Id3v2Tag) Artist() (string, bool)  { return t.text(frameArtist) }
func (t *Id3v2Tag) SetArtist(artist string) { t.setText(frameArtist, artist) }
func (t *Id3v2Tag) RemoveArtist()           { t.remove(frameArtist) }

func (t *Id3v2Tag) AddArtist(artist string) {
	stored, _ := t.Artist()
	t.setText(frameArtist, appendArtist(stored, artist, t.config))
}

// Artists splits TPE1 on the configured separator. ID3v2.4 null
// separators are treated the same way.
func (t *Id3v2Tag) Artists() []string {
	v, _ := t.text(frameArtist)
	return t.splitText(v)
}

func (t *Id3v2Tag) splitText(v string) []string {
	if t.config.ParseMultipleArtists {
		v = strings.ReplaceAll(v, "\x00", t.config.separator())
	}
	return splitArtists(v, t.config)
}

// Date reads TDRC, or TYER/TDAT/TIME for v2.3 tags. Each version falls
// back to the other's frames.
func (t *Id3v2Tag) Date() (Timestamp, bool) {
	if t.isV23() {
		if ts, ok := t.v23Date(); ok {
			return ts, true
		}
		return t.timestamp(frameRecording)
	}
	if ts, ok := t.timestamp(frameRecording); ok {
		return ts, true
	}
	return t.v23Date()
}

func (t *Id3v2Tag) timestamp(id string) (Timestamp, bool) {
	v, ok := t.text(id)
	if !ok {
		return Timestamp{}, false
	}
	ts, err := ParseTimestamp(v)
	if err != nil {
		return Timestamp{}, false
	}
	return ts, true
}

// v23Date combines TYER with TDAT (DDMM) and TIME (HHMM).
func (t *Id3v2Tag) v23Date() (Timestamp, bool) {
	year, ok := t.text(frameYear)
	if !ok {
		return Timestamp{}, false
	}
	ts, err := ParseTimestamp(year)
	if err != nil {
		return Timestamp{}, false
	}
	ts = YearOnly(ts.Year)
	tdat, _ := t.text(frameDayMonth)
	day, dayOK := parseComponent(sub(tdat, 0, 2), 2, 1, 31)
	month, monthOK := parseComponent(sub(tdat, 2, 4), 2, 1, 12)
	if len(tdat) != 4 || !dayOK || !monthOK {
		return ts, true
	}
	ts.Month, ts.Day, ts.Precision = month, day, PrecisionDay
	tm, _ := t.text(frameTime)
	hour, hourOK := parseComponent(sub(tm, 0, 2), 2, 0, 23)
	minute, minuteOK := parseComponent(sub(tm, 2, 4), 2, 0, 59)
	if len(tm) != 4 || !hourOK || !minuteOK {
		return ts, true
	}
	ts.Hour, ts.Minute, ts.Precision = hour, minute, PrecisionMinute
	return ts, true
}

func sub(s string, from, to int) string {
	if len(s) < to {
		return ""
	}
	return s[from:to]
}

// SetDate writes TDRC on v2.4 tags and TYER/TDAT/TIME on v2.3 tags,
// clearing the other version's frames.
func (t *Id3v2Tag) SetDate(date Timestamp) {
	if !t.isV23() {
		t.remove(frameYear, frameDayMonth, frameTime)
		t.setText(frameRecording, date.String())
		return
	}
	t.remove(frameRecording, frameDayMonth, frameTime)
	t.setText(frameYear, fmt.Sprintf("%04d", date.Year))
	if date.Precision >= PrecisionDay {
		t.setText(frameDayMonth, fmt.Sprintf("%02d%02d", date.Day, date.Month))
	}
	if date.Precision >= PrecisionMinute {
		t.setText(frameTime, fmt.Sprintf("%02d%02d", date.Hour, date.Minute))
	}
}

// RemoveDate removes every date frame of both versions.
func (t *Id3v2Tag) RemoveDate() {
	t.remove(frameRecording, frameYear, frameDayMonth, frameTime)
}

// Year reads TYER on v2.3 tags and the year of TDRC otherwise.
func (t *Id3v2Tag) Year() (int, bool) {
	ts, ok := t.Date()
	if !ok {
		return 0, false
	}
	return ts.Year, true
}

// SetYear replaces the year and keeps the month, day and time already set.
func (t *Id3v2Tag) SetYear(year int) {
	if !validYear(year) {
		return
	}
	ts, _ := t.Date()
	t.SetDate(ts.WithYear(year))
}

// RemoveYear removes the date frames, since they all carry the year.
func (t *Id3v2Tag) RemoveYear() { t.RemoveDate() }

// OriginalDate reads TDOR, TORY, then a TXXX ORIGINALYEAR frame.
func (t *Id3v2Tag) OriginalDate() (Timestamp, bool) {
	ids := []string{frameOriginalDate, frameOriginalYear}
	if t.isV23() {
		ids = []string{frameOriginalYear, frameOriginalDate}
	}
	for _, id := range ids {
		if ts, ok := t.timestamp(id); ok {
			return ts, true
		}
	}
	if v, ok := t.userText("ORIGINALYEAR"); ok {
		if ts, err := ParseTimestamp(v); err == nil {
			return ts, true
		}
	}
	return Timestamp{}, false
}

// SetOriginalDate writes TDOR on v2.4 tags. v2.3 only has TORY, which
// holds the year.
func (t *Id3v2Tag) SetOriginalDate(date Timestamp) {
	if t.isV23() {
		t.remove(frameOriginalDate)
		t.setText(frameOriginalYear, fmt.Sprintf("%04d", date.Year))
		return
	}
	t.remove(frameOriginalYear)
	t.setText(frameOriginalDate, date.String())
}

func (t *Id3v2Tag) RemoveOriginalDate() {
	t.remove(frameOriginalDate, frameOriginalYear)
	t.removeUserText("ORIGINALYEAR")
}

func (t *Id3v2Tag) removeUserText(description string) {
	frames := t.inner.GetFrames(frameUserText)
	t.inner.DeleteFrames(frameUserText)
	for _, frame := range frames {
		if udf, ok := frame.(id3v2.UserDefinedTextFrame); ok && udf.Description == description {
			continue
		}
		t.inner.AddFrame(frameUserText, frame)
	}
}

// Duration reads TLEN (milliseconds), falling back to the length of the
// MPEG stream measured when the file was read.
func (t *Id3v2Tag) Duration() (float64, bool) {
	if v, ok := t.text(frameLength); ok {
		if ms, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && ms > 0 {
			return ms / 1000, true
		}
	}
	return t.duration, t.duration > 0
}

func (t *Id3v2Tag) AlbumTitle() (string, bool) { return t.text(frameAlbum) }
func (t *Id3v2Tag) SetAlbumTitle(title string) { t.setText(frameAlbum, title) }
func (t *Id3v2Tag) RemoveAlbumTitle()          { t.remove(frameAlbum) }

func (t *Id3v2Tag) AlbumArtist() (string, bool)  { return t.text(frameAlbumArtist) }
func (t *Id3v2Tag) SetAlbumArtist(artist string) { t.setText(frameAlbumArtist, artist) }
func (t *Id3v2Tag) RemoveAlbumArtist()           { t.remove(frameAlbumArtist) }

func (t *Id3v2Tag) AddAlbumArtist(artist string) {
	stored, _ := t.AlbumArtist()
	t.setText(frameAlbumArtist, appendArtist(stored, artist, t.config))
}

func (t *Id3v2Tag) AlbumArtists() []string {
	v, _ := t.text(frameAlbumArtist)
	return t.splitText(v)
}

// AlbumCover returns the first front-cover APIC frame.
func (t *Id3v2Tag) AlbumCover() (Picture, bool) {
	for _, frame := range t.inner.GetFrames(framePicture) {
		pf, ok := frame.(id3v2.PictureFrame)
		if !ok || pf.PictureType != id3v2.PTFrontCover {
			continue
		}
		m, err := ParseMimeType(pf.MimeType)
		if err != nil {
			if m, err = SniffMimeType(pf.Picture); err != nil {
				continue
			}
		}
		return Picture{Data: pf.Picture, MimeType: m}, true
	}
	return Picture{}, false
}

func (t *Id3v2Tag) SetAlbumCover(cover Picture) {
	t.RemoveAlbumCover()
	t.inner.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    cover.MimeType.String(),
		PictureType: id3v2.PTFrontCover,
		Description: coverDescription,
		Picture:     cover.Data,
	})
}

// RemoveAlbumCover removes front-cover pictures and keeps the others.
func (t *Id3v2Tag) RemoveAlbumCover() {
	frames := t.inner.GetFrames(framePicture)
	t.inner.DeleteFrames(framePicture)
	for _, frame := range frames {
		if pf, ok := frame.(id3v2.PictureFrame); ok && pf.PictureType == id3v2.PTFrontCover {
			continue
		}
		t.inner.AddFrame(framePicture, frame)
	}
}

func (t *Id3v2Tag) Composer() (string, bool)    { return t.text(frameComposer) }
func (t *Id3v2Tag) SetComposer(composer string) { t.setText(frameComposer, composer) }
func (t *Id3v2Tag) RemoveComposer()             { t.remove(frameComposer) }

func (t *Id3v2Tag) TrackNumber() (uint16, bool) { return t.number(frameTrack) }
func (t *Id3v2Tag) SetTrackNumber(n uint16)     { t.setNumber(frameTrack, n) }
func (t *Id3v2Tag) RemoveTrackNumber()          { t.removeNumber(frameTrack) }
func (t *Id3v2Tag) TotalTracks() (uint16, bool) { return t.total(frameTrack) }
func (t *Id3v2Tag) SetTotalTracks(n uint16)     { t.setTotal(frameTrack, n) }
func (t *Id3v2Tag) RemoveTotalTracks()          { t.removeTotal(frameTrack) }

func (t *Id3v2Tag) DiscNumber() (uint16, bool) { return t.number(frameDisc) }
func (t *Id3v2Tag) SetDiscNumber(n uint16)     { t.setNumber(frameDisc, n) }
func (t *Id3v2Tag) RemoveDiscNumber()          { t.removeNumber(frameDisc) }
func (t *Id3v2Tag) TotalDiscs() (uint16, bool) { return t.total(frameDisc) }
func (t *Id3v2Tag) SetTotalDiscs(n uint16)     { t.setTotal(frameDisc, n) }
func (t *Id3v2Tag) RemoveTotalDiscs()          { t.removeTotal(frameDisc) }

func (t *Id3v2Tag) position(id string) numberPair {
	v, _ := t.text(id)
	return parseNumberPair(v)
}

func (t *Id3v2Tag) number(id string) (uint16, bool) {
	p := t.position(id)
	return p.num, p.hasNum
}

func (t *Id3v2Tag) total(id string) (uint16, bool) {
	p := t.position(id)
	return p.total, p.hasTotal
}

func (t *Id3v2Tag) writePosition(id string, p numberPair) {
	if !p.hasNum && !p.hasTotal {
		t.remove(id)
		return
	}
	t.setText(id, p.String())
}

func (t *Id3v2Tag) setNumber(id string, n uint16) {
	p := t.position(id)
	p.num, p.hasNum = n, true
	t.writePosition(id, p)
}

func (t *Id3v2Tag) removeNumber(id string) {
	p := t.position(id)
	p.num, p.hasNum = 0, false
	t.writePosition(id, p)
}

func (t *Id3v2Tag) setTotal(id string, n uint16) {
	p := t.position(id)
	p.total, p.hasTotal = n, true
	t.writePosition(id, p)
}

func (t *Id3v2Tag) removeTotal(id string) {
	p := t.position(id)
	p.total, p.hasTotal = 0, false
	t.writePosition(id, p)
}

func (t *Id3v2Tag) Genre() (string, bool) { return t.text(frameGenre) }
func (t *Id3v2Tag) SetGenre(genre string) { t.setText(frameGenre, genre) }
func (t *Id3v2Tag) RemoveGenre()          { t.remove(frameGenre) }

// Comment returns the first COMM frame with an empty description.
func (t *Id3v2Tag) Comment() (string, bool) {
	for _, frame := range t.inner.GetFrames(frameComment) {
		if cf, ok := frame.(id3v2.CommentFrame); ok && cf.Description == "" {
			return cf.Text, true
		}
	}
	return "", false
}

func (t *Id3v2Tag) SetComment(comment string) {
	t.RemoveComment()
	t.inner.AddCommentFrame(id3v2.CommentFrame{
		Encoding: id3v2.EncodingUTF8,
		Language: commentLanguage,
		Text:     comment,
	})
}

// RemoveComment removes comments without a description. Described
// comments, such as iTunes metadata, are kept.
func (t *Id3v2Tag) RemoveComment() {
	frames := t.inner.GetFrames(frameComment)
	t.inner.DeleteFrames(frameComment)
	for _, frame := range frames {
		if cf, ok := frame.(id3v2.CommentFrame); ok && cf.Description == "" {
			continue
		}
		t.inner.AddFrame(frameComment, frame)
	}
}
