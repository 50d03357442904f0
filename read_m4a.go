package audiotags

import (
	"os"

	"github.com/Sorrow446/go-mp4tag"
	"github.com/llehouerou/go-m4a"
)

// ReadMp4FromPath reads the ilst metadata of an MPEG-4 file and its
// media duration.
func ReadMp4FromPath(path string) (*Mp4Tag, error) {
	t, err := readMp4(path)
	if err != nil {
		return nil, codecErr(MP4, "read", path, err)
	}
	return t, nil
}

// ReadMp4From reads the tag of an open MPEG-4 file. go-mp4tag works on
// paths, so the file is reopened by name.
func ReadMp4From(f *os.File) (*Mp4Tag, error) {
	return ReadMp4FromPath(f.Name())
}

func readMp4(path string) (*Mp4Tag, error) {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return nil, err
	}
	defer mp4.Close()

	tags, err := mp4.Read()
	if err != nil {
		return nil, err
	}

	t := NewMp4Tag(tags)
	t.duration = measureMP4Duration(path)
	return t, nil
}

// measureMP4Duration reads the movie header duration. Failures leave the
// duration unknown.
func measureMP4Duration(path string) float64 {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	container, err := m4a.Open(f)
	if err != nil {
		return 0
	}
	return container.Duration().Seconds()
}
