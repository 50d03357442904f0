// Command audiotags reads, edits and converts audio file tags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/llehouerou/audiotags"
	"github.com/llehouerou/audiotags/internal/command"
	"github.com/llehouerou/audiotags/internal/config"
	"github.com/llehouerou/audiotags/internal/errmsg"
)

const usage = `Usage: audiotags [-type FORMAT] [-config FILE] [-v] COMMAND [ARGS]

Commands:
  show FILE                 print the tag of FILE
  set [FIELD FLAGS] FILE    edit the tag of FILE in place
  convert [-to FORMAT] SRC DST
                            copy the tag of SRC onto DST
  cover FILE [OUT]          save the front cover of FILE

Formats: id3v2, flac, mp4 (or a file extension)
`

var errUsage = errors.New("invalid usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("audiotags", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	tagType := fs.String("type", "", "force the tag format instead of inferring it")
	configFile := fs.String("config", "", "extra configuration file")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(stderr, errmsg.FormatWith(errmsg.OpLoadConfig, *configFile, err))
		return 1
	}

	logger, err := newLogger(cfg, *verbose)
	if err != nil {
		fmt.Fprintln(stderr, errmsg.Format(errmsg.OpInitialize, err))
		return 1
	}
	defer func() { _ = logger.Sync() }()

	reader := audiotags.NewTag().
		WithConfig(cfg.TagConfig()).
		WithContentDetection(cfg.DetectFormat)
	if *tagType != "" {
		tt, err := audiotags.ParseTagType(*tagType)
		if err != nil {
			fmt.Fprintln(stderr, errmsg.FormatWith(errmsg.OpReadTags, *tagType, err))
			return 2
		}
		reader = reader.WithType(tt)
	}

	r := command.New(stdout, reader, logger)
	name, rest := fs.Arg(0), fs.Args()[1:]

	switch name {
	case "show":
		err = runShow(r, rest, stderr)
	case "set":
		err = runSet(r, rest, stderr)
	case "convert":
		err = runConvert(r, rest, stderr)
	case "cover":
		err = runCover(r, rest, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", name)
		fs.Usage()
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		return 2
	}
	logger.Debug("command failed", zap.String("command", name), zap.Error(err))
	return 1
}

func newLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.Level())
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zc.Build()
}

func runShow(r *command.Runner, args []string, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "usage: audiotags show FILE...")
		return errUsage
	}
	var failed error
	for _, path := range args {
		if err := r.Show(path); err != nil {
			fmt.Fprintln(stderr, errmsg.FormatWith(errmsg.OpReadTags, path, err))
			failed = err
		}
	}
	return failed
}

func runSet(r *command.Runner, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	fs.SetOutput(stderr)
	for _, name := range command.Fields() {
		help := "set the " + strings.ReplaceAll(name, "-", " ")
		if name == "cover" {
			help = "embed the image at this path as the front cover"
		}
		fs.String(name, "", help)
	}
	removeList := fs.String("remove", "", "comma-separated fields to remove")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: audiotags set [FIELD FLAGS] [-remove LIST] FILE")
		return errUsage
	}
	path := fs.Arg(0)

	remove, err := command.ParseFieldList(*removeList)
	if err != nil {
		fmt.Fprintln(stderr, errmsg.FormatWith(errmsg.OpEditTags, path, err))
		return err
	}

	var edits []command.Edit
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "remove" {
			return
		}
		edits = append(edits, command.Edit{Field: f.Name, Value: f.Value.String()})
	})
	if len(edits) == 0 && len(remove) == 0 {
		fmt.Fprintln(stderr, "set: nothing to change")
		return errUsage
	}

	if err := r.Set(path, edits, remove); err != nil {
		fmt.Fprintln(stderr, errmsg.FormatWith(errmsg.OpWriteTags, path, err))
		return err
	}
	return nil
}

func runConvert(r *command.Runner, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	to := fs.String("to", "", "target format (default: from DST's extension)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "usage: audiotags convert [-to FORMAT] SRC DST")
		return errUsage
	}

	src, dst := fs.Arg(0), fs.Arg(1)
	if err := r.Convert(src, dst, *to); err != nil {
		fmt.Fprintln(stderr, errmsg.FormatWith(errmsg.OpConvert, src, err))
		return err
	}
	return nil
}

func runCover(r *command.Runner, args []string, stderr io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(stderr, "usage: audiotags cover FILE [OUT]")
		return errUsage
	}
	var out string
	if len(args) == 2 {
		out = args[1]
	}
	if _, err := r.Cover(args[0], out); err != nil {
		fmt.Fprintln(stderr, errmsg.FormatWith(errmsg.OpExtractCover, args[0], err))
		return err
	}
	return nil
}
