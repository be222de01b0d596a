// Command htmlpurify sanitizes HTML from a file or stdin and writes
// the result to stdout or a file.
//
// Usage:
//
//	htmlpurify [-settings policy.json] [-keep-comments] [-strip] [-o out.html] [input.html]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/njchilds90/htmlpurifier"
)

func main() {
	settingsPath := flag.String("settings", "", "JSON settings file (default: built-in allow-list)")
	keepComments := flag.Bool("keep-comments", false, "pass HTML comments through instead of removing them")
	strip := flag.Bool("strip", false, "output plain text with all markup removed")
	outPath := flag.String("o", "", "write output to this file instead of stdout")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() > 1 {
		usage()
		os.Exit(2)
	}

	settings := htmlpurifier.DefaultSettings()
	if *settingsPath != "" {
		data, err := os.ReadFile(*settingsPath)
		if err != nil {
			fatal(err)
		}
		settings, err = htmlpurifier.ParseSettings(data)
		if err != nil {
			fatal(err)
		}
	}
	if *keepComments {
		settings.RemoveComments = false
	}

	var in io.Reader = os.Stdin
	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	var outFile *os.File
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fatal(err)
		}
		out = f
		outFile = f
	}

	if err := run(in, out, settings, *strip); err != nil {
		fatal(err)
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			fatal(err)
		}
	}
}

func run(in io.Reader, out io.Writer, settings *htmlpurifier.Settings, strip bool) error {
	if strip {
		data, err := io.ReadAll(in)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, htmlpurifier.StripTags(string(data)))
		return err
	}
	return settings.Compile().PurifyReaderToWriter(in, out)
}

func usage() {
	exe := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s [options] [input.html]\n", exe)
	fmt.Fprintf(os.Stderr, "\nReads HTML from input.html (or stdin) and writes sanitized HTML to stdout.\n\nOptions:\n")
	flag.PrintDefaults()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "htmlpurify: %v\n", err)
	os.Exit(1)
}
