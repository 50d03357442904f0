package audiotags

import (
	"io"
	"os"

	"github.com/dhowden/tag"
	"go.uber.org/zap"
)

// Tag selects and reads the right adapter for a file.
//
//	t, err := audiotags.NewTag().WithConfig(cfg).ReadFromPath("song.flac")
//
// Without WithType the format is inferred from the file extension, or from
// the file content when WithContentDetection is enabled.
type Tag struct {
	tagType       TagType
	config        Config
	logger        *zap.Logger
	detectContent bool
}

// NewTag returns a builder with the default configuration.
func NewTag() *Tag {
	return &Tag{
		config: DefaultConfig(),
		logger: zap.NewNop(),
	}
}

// WithType fixes the format, bypassing inference.
func (b *Tag) WithType(tt TagType) *Tag {
	b.tagType = tt
	return b
}

// WithConfig sets the configuration attached to every tag read.
func (b *Tag) WithConfig(c Config) *Tag {
	b.config = c
	return b
}

// WithLogger sets the logger used for debug output.
func (b *Tag) WithLogger(l *zap.Logger) *Tag {
	if l == nil {
		l = zap.NewNop()
	}
	b.logger = l
	return b
}

// WithContentDetection makes the builder identify the format from the file
// header before falling back to the extension.
func (b *Tag) WithContentDetection(on bool) *Tag {
	b.detectContent = on
	return b
}

// ReadFromPath reads the tag of the file at path.
func ReadFromPath(path string) (AudioTag, error) {
	return NewTag().ReadFromPath(path)
}

// ReadFromPath resolves the format of path and reads its tag.
func (b *Tag) ReadFromPath(path string) (AudioTag, error) {
	tt, err := b.resolvePath(path)
	if err != nil {
		return nil, err
	}

	var t AudioTag
	switch tt {
	case ID3v2:
		t, err = ReadID3v2FromPath(path)
	case FLAC:
		t, err = ReadFlacFromPath(path)
	case MP4:
		t, err = ReadMp4FromPath(path)
	default:
		return nil, &UnsupportedFormatError{Ext: tt.String()}
	}
	if err != nil {
		return nil, err
	}
	return b.finish(t, path), nil
}

// ReadFromFile reads the tag of an open file. The format is resolved from
// the file name unless fixed with WithType.
func (b *Tag) ReadFromFile(f *os.File) (AudioTag, error) {
	tt, err := b.resolvePath(f.Name())
	if err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, codecErr(tt, "read", f.Name(), err)
	}

	var t AudioTag
	switch tt {
	case ID3v2:
		t, err = ReadID3v2From(f)
	case FLAC:
		t, err = ReadFlacFrom(f)
	case MP4:
		t, err = ReadMp4From(f)
	default:
		return nil, &UnsupportedFormatError{Ext: tt.String()}
	}
	if err != nil {
		return nil, err
	}
	return b.finish(t, f.Name()), nil
}

func (b *Tag) finish(t AudioTag, path string) AudioTag {
	t.SetConfig(b.config)
	if _, ok := t.Duration(); !ok {
		b.logger.Debug("stream duration unavailable", zap.String("path", path))
	}
	return t
}

// resolvePath picks the format: the fixed type, then the content when
// detection is on, then the extension.
func (b *Tag) resolvePath(path string) (TagType, error) {
	if b.tagType != 0 {
		b.logger.Debug("tag type fixed", zap.String("path", path), zap.Stringer("type", b.tagType))
		return b.tagType, nil
	}

	byExt, extErr := ResolveTagType(path)
	if b.detectContent {
		if tt, ok := b.detect(path); ok {
			// A FLAC stream behind an ID3v2 header identifies as MP3.
			if tt == ID3v2 && extErr == nil && byExt == FLAC {
				tt = FLAC
			}
			return tt, nil
		}
	}
	if extErr != nil {
		return 0, extErr
	}
	b.logger.Debug("tag type from extension", zap.String("path", path), zap.Stringer("type", byExt))
	return byExt, nil
}

// detect identifies the format from the file header.
func (b *Tag) detect(path string) (TagType, bool) {
	f, err := os.Open(path)
	if err != nil {
		b.logger.Debug("content detection skipped", zap.String("path", path), zap.Error(err))
		return 0, false
	}
	defer f.Close()

	format, fileType, err := tag.Identify(f)
	if err != nil {
		b.logger.Debug("content detection failed", zap.String("path", path), zap.Error(err))
		return 0, false
	}
	tt, ok := tagTypeFromFormat(format, fileType)
	b.logger.Debug("content detected",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.String("file_type", string(fileType)),
		zap.Bool("supported", ok),
	)
	return tt, ok
}

func tagTypeFromFormat(format tag.Format, fileType tag.FileType) (TagType, bool) {
	switch format {
	case tag.ID3v2_3, tag.ID3v2_4, tag.ID3v2_2, tag.ID3v1:
		return ID3v2, true
	case tag.MP4:
		return MP4, true
	case tag.VORBIS:
		if fileType == tag.FLAC {
			return FLAC, true
		}
	}
	return 0, false
}

