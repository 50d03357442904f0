package audiotags

// ToTag builds a new tag of type tt holding every field of a that the
// format can express.
func (a *AnyTag) ToTag(tt TagType) AudioTag {
	dst := New(tt, a.Config)
	a.ApplyTo(dst)
	return dst
}

// ToFlacTag builds a FLAC tag from a.
func (a *AnyTag) ToFlacTag() *FlacTag {
	t := NewFlacTag(nil)
	t.SetConfig(a.Config)
	a.ApplyTo(t)
	return t
}

// ToID3v2Tag builds an ID3v2.4 tag from a.
func (a *AnyTag) ToID3v2Tag() *Id3v2Tag {
	t := NewID3v2Tag(nil)
	t.SetConfig(a.Config)
	a.ApplyTo(t)
	return t
}

// ToMp4Tag builds an MP4 tag from a. Covers other than PNG and JPEG are
// dropped.
func (a *AnyTag) ToMp4Tag() *Mp4Tag {
	t := NewMp4Tag(nil)
	t.SetConfig(a.Config)
	a.ApplyTo(t)
	return t
}

func convertTag(src AudioTag, tt TagType) AudioTag {
	a := src.ToAnyTag()
	return a.ToTag(tt)
}
