// Command plexschema checks, formats and drafts Plex metadata documents.
//
// Usage:
//
//	plexschema check [-strict] [-entity name] files...
//	plexschema fmt [-format-text] [-entity name] files...
//	plexschema watch [-strict] dir
//	plexschema tags [-artist] dir
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliceplex/schema/codec"
	"github.com/aliceplex/schema/internal/check"
	"github.com/aliceplex/schema/internal/config"
	"github.com/aliceplex/schema/internal/logging"
	"github.com/aliceplex/schema/internal/tagimport"
	"github.com/aliceplex/schema/schema"
)

const usage = `usage: plexschema <command> [flags] [args]

commands:
  check   validate document files
  fmt     rewrite document files in canonical form
  watch   validate documents under a directory as they change
  tags    draft an album or artist document from audio file tags
`

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "check":
		err = runCheck(ctx, cfg, logger, rest, stdout, stderr)
	case "fmt":
		err = runFormat(cfg, logger, rest, stderr)
	case "watch":
		err = runWatch(ctx, cfg, logger, rest, stdout, stderr)
	case "tags":
		err = runTags(rest, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", cmd, usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintln(stderr, err)
		return 1
	}
}

func parse(fs *flag.FlagSet, args []string, stderr io.Writer) error {
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	return nil
}

func runCheck(ctx context.Context, cfg *config.Config, logger *zap.Logger, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	strict := fs.Bool("strict", cfg.Check.Strict, "use the strict schemas")
	entity := fs.String("entity", "", "entity of every file instead of inferring it from the file name")

	if err := parse(fs, args, stderr); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "check: no files given")
		return errUsage
	}

	checker := check.New(
		check.WithLogger(logger),
		check.WithWorkers(cfg.Check.Workers),
		check.WithStrict(*strict),
		check.WithEntity(*entity),
	)

	failed := 0

	for _, report := range checker.CheckFiles(ctx, fs.Args()) {
		printReport(stdout, report)

		if !report.OK() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", failed, fs.NArg())
	}

	return nil
}

func runFormat(cfg *config.Config, logger *zap.Logger, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	formatText := fs.Bool("format-text", cfg.Check.FormatText, "clean up the prose of text fields")
	entity := fs.String("entity", "", "entity of every file instead of inferring it from the file name")

	if err := parse(fs, args, stderr); err != nil {
		return err
	}

	opts := []check.Option{
		check.WithLogger(logger),
		check.WithEntity(*entity),
	}
	if *formatText {
		opts = append(opts, check.WithTextFields(cfg.Check.TextFields...))
	}

	checker := check.New(opts...)

	var errs []error

	for _, path := range fs.Args() {
		if err := checker.Format(path); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func runWatch(ctx context.Context, cfg *config.Config, logger *zap.Logger, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	strict := fs.Bool("strict", cfg.Check.Strict, "use the strict schemas")

	if err := parse(fs, args, stderr); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "watch: expected exactly one directory")
		return errUsage
	}

	checker := check.New(
		check.WithLogger(logger),
		check.WithWorkers(cfg.Check.Workers),
		check.WithStrict(*strict),
	)

	logger.Info("watching", zap.String("dir", fs.Arg(0)), zap.Duration("debounce", cfg.Watch.Debounce()))

	err := checker.Watch(ctx, fs.Arg(0), cfg.Watch.Debounce(), func(report check.Report) {
		printReport(stdout, report)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

func runTags(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tags", flag.ContinueOnError)
	artist := fs.Bool("artist", false, "draft an artist instead of an album")

	if err := parse(fs, args, stderr); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "tags: expected exactly one directory")
		return errUsage
	}

	metas, err := tagimport.ReadDir(fs.Arg(0))
	if err != nil {
		return err
	}

	var conv schema.Converter = schema.Album

	draft := tagimport.Album(metas)
	if *artist {
		draft, conv = tagimport.Artist(metas), schema.Artist
	}

	canon, err := conv.Canonicalize(draft)
	if err != nil {
		return err
	}

	out, err := codec.Marshal(canon, conv.Fields())
	if err != nil {
		return err
	}

	_, err = stdout.Write(out)

	return err
}

func printReport(w io.Writer, report check.Report) {
	if report.Err != nil {
		fmt.Fprintf(w, "%s: %v\n", report.Path, report.Err)
		return
	}

	status := "ok"
	if !report.OK() {
		status = "FAIL"
	}

	fmt.Fprintf(w, "%s: %s (%s)\n", report.Path, status, report.Entity)

	for i, d := range report.Documents {
		prefix := ""
		if len(report.Documents) > 1 {
			prefix = fmt.Sprintf("document %d: ", i)
		}

		for _, e := range d.Errors {
			fmt.Fprintf(w, "  %s%s\n", prefix, e)
		}

		for _, info := range d.Infos {
			fmt.Fprintf(w, "  %s%s\n", prefix, info)
		}
	}
}
