package command

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/llehouerou/audiotags"
)

// Convert copies the tag of src onto dst, transcoding it to the format
// named by to. An empty to resolves the format from dst's extension.
// dst must already hold audio; its existing tag is replaced.
func (r *Runner) Convert(src, dst, to string) error {
	tt, err := targetType(dst, to)
	if err != nil {
		return err
	}

	tag, err := r.reader.ReadFromPath(src)
	if err != nil {
		return err
	}

	out := tag.ToTag(tt)
	if err := out.WriteToPath(dst); err != nil {
		return err
	}
	r.logger.Info("tags converted",
		zap.String("src", src),
		zap.String("dst", dst),
		zap.Stringer("from", tag.Type()),
		zap.Stringer("to", tt),
	)
	_, err = fmt.Fprintf(r.out, "Converted %s (%s) -> %s (%s)\n", src, tag.Type(), dst, tt)
	return err
}

func targetType(dst, to string) (audiotags.TagType, error) {
	if to != "" {
		return audiotags.ParseTagType(to)
	}
	return audiotags.ResolveTagType(dst)
}
