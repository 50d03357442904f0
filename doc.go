// Package audiotags reads, edits and writes the metadata of MP3, FLAC and
// MPEG-4 audio files through one interface, and converts tags between
// those formats.
//
// Each format has its own adapter (Id3v2Tag, FlacTag, Mp4Tag) backed by a
// codec library: bogem/id3v2 for ID3v2, go-flac for Vorbis comments and
// pictures, go-mp4tag for MP4 atoms. All adapters implement AudioTag.
// Tag picks the adapter from a file extension, an explicit type, or the
// file header:
//
//	t, err := audiotags.ReadFromPath("song.mp3")
//	if err != nil {
//		return err
//	}
//	t.SetTitle("New Title")
//	t.SetAlbumCover(cover)
//	if err := t.WriteToPath("song.mp3"); err != nil {
//		return err
//	}
//
// AnyTag is the format-neutral record used for conversion:
//
//	flacTag := mp3Tag.ToTag(audiotags.FLAC)
//	err := flacTag.WriteToPath("song.flac")
//
// Fields a target format cannot store are dropped during conversion.
package audiotags
