package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const labelWidth = 15

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(labelWidth)
)

// Show prints every field present in the tag of path.
func (r *Runner) Show(path string) error {
	tag, err := r.reader.ReadFromPath(path)
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%s (%s)", path, tag.Type())))
	sb.WriteString("\n")

	a := tag.ToAnyTag()
	line := func(label, value string) {
		if value == "" {
			return
		}
		sb.WriteString(labelStyle.Render(label))
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	line("Title", a.Title)
	if s, ok := a.ArtistsAsString(); ok {
		line("Artist", s)
	}
	line("Album", a.AlbumTitle)
	if s, ok := a.AlbumArtistsAsString(); ok {
		line("Album artist", s)
	}
	line("Composer", a.Composer)
	line("Genre", a.Genre)
	if !a.Date.IsZero() {
		line("Date", a.Date.String())
	} else if a.Year != 0 {
		line("Year", fmt.Sprint(a.Year))
	}
	if !a.OriginalDate.IsZero() {
		line("Original date", a.OriginalDate.String())
	}
	line("Track", formatPosition(a.Track()))
	line("Disc", formatPosition(a.Disc()))
	line("Comment", a.Comment)
	if a.AlbumCover != nil {
		line("Cover", fmt.Sprintf("%s, %s", a.AlbumCover.MimeType, formatSize(len(a.AlbumCover.Data))))
	}
	if a.Duration > 0 {
		line("Duration", formatDuration(a.Duration))
	}

	_, err = fmt.Fprint(r.out, sb.String())
	return err
}

// formatPosition renders a number and total as "n/total", "n" or "/total".
func formatPosition(num, total uint16) string {
	switch {
	case num == 0 && total == 0:
		return ""
	case total == 0:
		return fmt.Sprint(num)
	case num == 0:
		return fmt.Sprintf("/%d", total)
	}
	return fmt.Sprintf("%d/%d", num, total)
}

// formatSize formats a byte count in human-readable form.
func formatSize(n int) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n)) //nolint:gosec // n is guaranteed non-negative above
}

func formatDuration(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second))
	return d.Round(time.Millisecond).String()
}
