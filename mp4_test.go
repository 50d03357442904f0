package audiotags

import (
	"slices"
	"testing"

	"github.com/Sorrow446/go-mp4tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMp4Tag_SeedsArtists(t *testing.T) {
	tag := NewMp4Tag(&mp4tag.MP4Tags{Artist: "A;B", AlbumArtist: "X"})

	assert.Equal(t, []string{"A", "B"}, tag.Artists())
	assert.Equal(t, []string{"X"}, tag.AlbumArtists())

	artist, ok := tag.Artist()
	assert.True(t, ok)
	assert.Equal(t, "A", artist)
	assert.Equal(t, "A;B", tag.Inner().Artist)
}

func TestMp4Tag_ArtistStableAfterReread(t *testing.T) {
	tag := NewMp4Tag(nil)
	tag.SetArtist("A")
	tag.AddArtist("B")

	reread := NewMp4Tag(&mp4tag.MP4Tags{Artist: tag.Inner().Artist})

	before, _ := tag.Artist()
	after, _ := reread.Artist()
	assert.Equal(t, before, after)
	assert.Equal(t, tag.Artists(), reread.Artists())
}

func TestMp4Tag_SetConfigResplitsStoredArtists(t *testing.T) {
	tag := NewMp4Tag(&mp4tag.MP4Tags{Artist: "A / B", AlbumArtist: "X;Y"})
	assert.Equal(t, []string{"A / B"}, tag.Artists())

	tag.SetConfig(Config{ArtistSeparator: " / ", ParseMultipleArtists: true})
	artist, _ := tag.Artist()
	assert.Equal(t, "A", artist)
	assert.Equal(t, []string{"A", "B"}, tag.Artists())
	assert.Equal(t, "A / B", tag.Inner().Artist)
	assert.Equal(t, []string{"X;Y"}, tag.AlbumArtists())

	tag.SetConfig(Config{ArtistSeparator: ";", ParseMultipleArtists: false})
	artist, _ = tag.Artist()
	assert.Equal(t, "A / B", artist)

	// Once edited, entries are kept as they are.
	tag.AddArtist("C")
	tag.SetConfig(Config{ArtistSeparator: " & ", ParseMultipleArtists: true})
	assert.Equal(t, "A / B & C", tag.Inner().Artist)
}

func TestMp4Tag_MultiValueArtists(t *testing.T) {
	tag := NewMp4Tag(nil)
	tag.SetArtist("A")
	tag.AddArtist("B")

	artist, ok := tag.Artist()
	require.True(t, ok)
	assert.Equal(t, "A", artist)
	assert.Equal(t, []string{"A", "B"}, tag.Artists())
	assert.Equal(t, "A;B", tag.Inner().Artist)

	tag.SetConfig(Config{ArtistSeparator: " & ", ParseMultipleArtists: true})
	assert.Equal(t, "A & B", tag.Inner().Artist)

	tag.RemoveArtist()
	assert.Empty(t, tag.Artists())
	assert.Empty(t, tag.Inner().Artist)
}

func TestMp4Tag_Positions(t *testing.T) {
	tag := NewMp4Tag(nil)

	_, ok := tag.TrackNumber()
	assert.False(t, ok)

	tag.SetTrackNumber(3)
	tag.SetTotalTracks(12)
	tag.SetDiscNumber(1)
	tag.SetTotalDiscs(2)
	assert.Equal(t, int16(3), tag.Inner().TrackNumber)
	assert.Equal(t, int16(12), tag.Inner().TrackTotal)

	num, total := Track(tag)
	assert.Equal(t, uint16(3), num)
	assert.Equal(t, uint16(12), total)
	num, total = Disc(tag)
	assert.Equal(t, uint16(1), num)
	assert.Equal(t, uint16(2), total)

	tag.SetTrackNumber(40000)
	assert.Equal(t, int16(32767), tag.Inner().TrackNumber)

	RemoveDisc(tag)
	_, ok = tag.DiscNumber()
	assert.False(t, ok)
	_, ok = tag.TotalDiscs()
	assert.False(t, ok)
}

func TestMp4Tag_DateAndYear(t *testing.T) {
	tag := NewMp4Tag(&mp4tag.MP4Tags{Date: "2020-05-22"})

	year, ok := tag.Year()
	require.True(t, ok)
	assert.Equal(t, 2020, year)

	tag.SetYear(1999)
	assert.Equal(t, "1999-05-22", tag.Inner().Date)

	tag.RemoveYear()
	_, ok = tag.Date()
	assert.False(t, ok)

	tag.SetYear(2001)
	assert.Equal(t, "2001", tag.Inner().Date)
}

func TestMp4Tag_PlainYearAtom(t *testing.T) {
	// go-mp4tag reads an all-digit ©day into Year and leaves Date empty.
	tag := NewMp4Tag(&mp4tag.MP4Tags{Year: 2020})

	year, ok := tag.Year()
	require.True(t, ok)
	assert.Equal(t, 2020, year)
	date, ok := tag.Date()
	require.True(t, ok)
	assert.Equal(t, YearOnly(2020), date)
	assert.NotContains(t, tag.deletions(), mp4DelYear)

	tag.SetYear(2021)
	assert.Equal(t, "2021", tag.Inner().Date)
	assert.Zero(t, tag.Inner().Year)
	assert.Contains(t, tag.deletions(), mp4DelYear)
	assert.NotContains(t, tag.deletions(), mp4DelDate)
}

func TestMp4Tag_SetDateReplacesYearAtom(t *testing.T) {
	tag := NewMp4Tag(&mp4tag.MP4Tags{Year: 2020})

	tag.SetDate(Date(2021, 3, 4))

	assert.Zero(t, tag.Inner().Year)
	assert.Equal(t, "2021-03-04", tag.Inner().Date)
	date, _ := tag.Date()
	assert.Equal(t, Date(2021, 3, 4), date)
	assert.Contains(t, tag.deletions(), mp4DelYear)
}

func TestMp4Tag_RemoveYearAtom(t *testing.T) {
	for _, remove := range []func(*Mp4Tag){(*Mp4Tag).RemoveYear, (*Mp4Tag).RemoveDate} {
		tag := NewMp4Tag(&mp4tag.MP4Tags{Year: 2020})

		remove(tag)

		_, ok := tag.Year()
		assert.False(t, ok)
		del := tag.deletions()
		assert.Contains(t, del, mp4DelYear)
		assert.Contains(t, del, mp4DelDate)
	}
}

func TestMp4Tag_StandardGenre(t *testing.T) {
	tag := NewMp4Tag(&mp4tag.MP4Tags{Genre: mp4tag.GenreRock})

	genre, ok := tag.Genre()
	require.True(t, ok)
	assert.Equal(t, "Rock", genre)
	assert.NotContains(t, tag.deletions(), mp4DelGenre)

	tag = NewMp4Tag(&mp4tag.MP4Tags{Genre: mp4tag.GenreRock, CustomGenre: "Krautrock"})
	genre, _ = tag.Genre()
	assert.Equal(t, "Krautrock", genre, "©gen wins over gnre")

	tag.SetGenre("Post-Rock")
	assert.Equal(t, mp4tag.GenreNone, tag.Inner().Genre)
	genre, _ = tag.Genre()
	assert.Equal(t, "Post-Rock", genre)
	assert.Contains(t, tag.deletions(), mp4DelGenre)
}

func TestMp4Tag_RemoveGenreClearsBothAtoms(t *testing.T) {
	tag := NewMp4Tag(&mp4tag.MP4Tags{Genre: mp4tag.GenreJazz, CustomGenre: "Jazz"})

	tag.RemoveGenre()

	_, ok := tag.Genre()
	assert.False(t, ok)
	assert.Equal(t, mp4tag.GenreNone, tag.Inner().Genre)
	del := tag.deletions()
	assert.Contains(t, del, mp4DelGenre)
	assert.Contains(t, del, mp4DelCustomGenre)
}

func TestMp4Tag_RemoveOriginalDateDropsFreeformAtoms(t *testing.T) {
	tag := NewMp4Tag(&mp4tag.MP4Tags{Custom: map[string]string{
		"ORIGINALDATE": "1981-11-23",
		"ORIGINALYEAR": "1981",
		"MOOD":         "calm",
	}})

	tag.RemoveOriginalDate()

	assert.Equal(t, map[string]string{"MOOD": "calm"}, tag.Inner().Custom)
	// The file's freeform atoms are replaced by the in-memory map.
	del := tag.deletions()
	assert.Contains(t, del, mp4DelCustom)
	assert.Contains(t, del, mp4DelOtherCustom)
}

func TestMp4Tag_OriginalDate(t *testing.T) {
	tag := NewMp4Tag(&mp4tag.MP4Tags{Custom: map[string]string{"originaldate": "1981-11-23"}})

	date, ok := tag.OriginalDate()
	require.True(t, ok)
	assert.Equal(t, Date(1981, 11, 23), date)

	tag.SetOriginalDate(Date(1990, 1, 2))
	assert.Equal(t, map[string]string{
		"ORIGINALDATE": "1990-01-02",
		"ORIGINALYEAR": "1990",
	}, tag.Inner().Custom)

	tag.RemoveOriginalDate()
	_, ok = tag.OriginalDate()
	assert.False(t, ok)
}

func TestMp4Tag_AlbumCover(t *testing.T) {
	tag := NewMp4Tag(nil)

	cover := Picture{Data: make([]byte, 10), MimeType: MimeJpeg}
	tag.SetAlbumCover(cover)
	got, ok := tag.AlbumCover()
	require.True(t, ok)
	assert.True(t, got.Equal(cover))

	tag.SetAlbumCover(Picture{Data: pngHeader, MimeType: MimePng})
	require.Len(t, tag.Inner().Pictures, 1)
	assert.Equal(t, mp4tag.ImageTypePNG, tag.Inner().Pictures[0].Format)

	tag.RemoveAlbumCover()
	tag.RemoveAlbumCover()
	_, ok = tag.AlbumCover()
	assert.False(t, ok)
}

func TestMp4Tag_AlbumCoverRejectsOtherFormats(t *testing.T) {
	tag := NewMp4Tag(nil)

	for _, m := range []MimeType{MimeTiff, MimeBmp, MimeGif} {
		assert.Panics(t, func() {
			tag.SetAlbumCover(Picture{Data: []byte{1, 2, 3}, MimeType: m})
		}, "SetAlbumCover(%v)", m)
	}
	_, ok := tag.AlbumCover()
	assert.False(t, ok)
}

func TestMp4Tag_AlbumCoverSniffsUntypedData(t *testing.T) {
	tag := NewMp4Tag(&mp4tag.MP4Tags{
		Pictures: []*mp4tag.MP4Picture{{Data: pngHeader}},
	})
	got, ok := tag.AlbumCover()
	require.True(t, ok)
	assert.Equal(t, MimePng, got.MimeType)

	tag = NewMp4Tag(&mp4tag.MP4Tags{
		Pictures: []*mp4tag.MP4Picture{{Data: []byte("GIF89a\x01\x00\x01\x00")}},
	})
	_, ok = tag.AlbumCover()
	assert.False(t, ok, "gif artwork should read as absent")
}

func TestMp4Tag_Deletions(t *testing.T) {
	tag := NewMp4Tag(nil)
	tag.SetTitle("Song")
	tag.SetTrackNumber(1)

	del := tag.deletions()
	assert.NotContains(t, del, mp4DelTitle)
	assert.NotContains(t, del, mp4DelTrackNumber)
	for _, name := range []string{mp4DelArtist, mp4DelAlbum, mp4DelDate, mp4DelPictures, mp4DelTrackTotal} {
		assert.True(t, slices.Contains(del, name), "deletions missing %q", name)
	}
}

func TestMp4Tag_WriteAndRead(t *testing.T) {
	path := createTestM4A(t, t.TempDir())

	tag, err := ReadMp4FromPath(path)
	require.NoError(t, err)
	tag.SetTitle("Song")
	tag.SetArtist("A")
	tag.AddArtist("B")
	tag.SetOriginalDate(Date(1981, 11, 23))
	require.NoError(t, tag.WriteToPath(path))

	got, err := ReadMp4FromPath(path)
	require.NoError(t, err)
	title, ok := got.Title()
	assert.True(t, ok)
	assert.Equal(t, "Song", title)
	assert.Equal(t, []string{"A", "B"}, got.Artists())
	orig, ok := got.OriginalDate()
	assert.True(t, ok)
	assert.Equal(t, Date(1981, 11, 23), orig)
	artist, _ := got.Artist()
	assert.Equal(t, "A", artist)

	got.SetYear(2020)
	got.RemoveOriginalDate()
	require.NoError(t, got.WriteToPath(path))

	got, err = ReadMp4FromPath(path)
	require.NoError(t, err)
	year, ok := got.Year()
	assert.True(t, ok)
	assert.Equal(t, 2020, year)
	_, ok = got.OriginalDate()
	assert.False(t, ok)

	got.SetDate(Date(2021, 3, 4))
	got.SetGenre("Rock")
	require.NoError(t, got.WriteToPath(path))

	got, err = ReadMp4FromPath(path)
	require.NoError(t, err)
	date, ok := got.Date()
	assert.True(t, ok)
	assert.Equal(t, Date(2021, 3, 4), date)

	got.RemoveYear()
	got.RemoveGenre()
	require.NoError(t, got.WriteToPath(path))

	got, err = ReadMp4FromPath(path)
	require.NoError(t, err)
	_, ok = got.Year()
	assert.False(t, ok)
	_, ok = got.Genre()
	assert.False(t, ok)
}
