// Command msgcheck prints and checks validation messages.
//
// It resolves messages the way an application would, from a directory
// holding a validations/messages.{yaml,json,toml} file and the bundled
// defaults:
//
//	msgcheck --dir ./app                   # list every key and template
//	msgcheck --dir ./app --key tooShort    # print one formatted message
//	msgcheck --dir ./app --check           # fail on keys unknown to the defaults
//
// Configuration is also read from VALIDMSG_* environment variables and an
// optional .env file. With VALIDMSG_SENTRY_DSN set, failures are reported to
// Sentry.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/napalu/goopt/v2"

	"github.com/dmitrymomot/validmsg"
	"github.com/dmitrymomot/validmsg/pkg/logger"
	"github.com/dmitrymomot/validmsg/pkg/modules"
)

const (
	exitOK       = 0
	exitFailed   = 1
	exitUsage    = 2
	flushTimeout = 2 * time.Second
)

var errNoModule = errors.New("no validations/messages module found")

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "msgcheck: %v\n", err)
		return exitUsage
	}

	flags := &Flags{}
	parser, err := goopt.NewParserFromStruct(flags)
	if err != nil {
		fmt.Fprintf(stderr, "msgcheck: %v\n", err)
		return exitUsage
	}

	if !parser.Parse(args) {
		for _, parseErr := range parser.GetErrors() {
			fmt.Fprintf(stderr, " - %s\n", parseErr)
		}
		parser.PrintUsageWithGroups(stderr)
		return exitUsage
	}

	cfg.apply(flags)

	log := logger.NewWithSentry(stderr, logger.ParseLevel(cfg.LogLevel), cfg.Sentry)
	defer logger.Flush(flushTimeout)

	code, err := execute(cfg, flags, stdout, log)
	if err != nil {
		log.Error("msgcheck failed", slog.String("dir", cfg.Dir), slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "msgcheck: %v\n", err)
	}
	return code
}

func execute(cfg Config, flags *Flags, out io.Writer, log *slog.Logger) (int, error) {
	var mods modules.Map
	if cfg.Dir != "" {
		loaded, err := modules.LoadDir(cfg.Dir)
		if err != nil {
			return exitFailed, err
		}
		mods = loaded
	}

	set, err := validmsg.New(validmsg.WithModules(mods), validmsg.WithLogger(log)).Messages()
	if err != nil {
		return exitFailed, err
	}

	switch {
	case flags.Check:
		return check(mods, out)
	case flags.Key != "":
		return show(set, flags.Key, flags.Description, out)
	default:
		return list(set, out)
	}
}

func list(set *validmsg.Set, out io.Writer) (int, error) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, key := range set.Keys() {
		fmt.Fprintf(w, "%s\t%s\n", key, set.Get(key))
	}
	if err := w.Flush(); err != nil {
		return exitFailed, err
	}
	return exitOK, nil
}

func show(set *validmsg.Set, key, description string, out io.Writer) (int, error) {
	if !set.Has(key) {
		return exitFailed, fmt.Errorf("unknown key %q", key)
	}
	if description == "" {
		description = set.DescriptionFor(key)
	}

	fmt.Fprintln(out, set.MessageFor(key, validmsg.M{"description": description}))
	return exitOK, nil
}

func check(mods modules.Map, out io.Writer) (int, error) {
	path, mod, ok := mods.Find()
	if !ok {
		return exitFailed, errNoModule
	}

	defaults := validmsg.Defaults()
	unknown := 0
	for _, key := range mod.Default.Keys() {
		if _, known := defaults[key]; !known {
			fmt.Fprintf(out, "%s: unknown key %q\n", path, key)
			unknown++
		}
	}

	if unknown > 0 {
		return exitFailed, nil
	}

	fmt.Fprintf(out, "%s: ok (%d keys)\n", path, len(mod.Default))
	return exitOK, nil
}
