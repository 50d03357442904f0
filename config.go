package audiotags

// Config carries formatting choices shared by every tag. It is copied by
// value into each tag instance.
type Config struct {
	// ArtistSeparator joins multiple artists into a single stored string,
	// and splits them back when ParseMultipleArtists is set.
	ArtistSeparator string
	// ParseMultipleArtists makes Artists and AlbumArtists split stored
	// single-string values on ArtistSeparator.
	ParseMultipleArtists bool
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		ArtistSeparator:      ";",
		ParseMultipleArtists: true,
	}
}

func (c Config) separator() string {
	if c.ArtistSeparator == "" {
		return DefaultConfig().ArtistSeparator
	}
	return c.ArtistSeparator
}
