// Command tinygrep is a line-oriented search utility built on tinyregex.
//
// Usage:
//
//	tinygrep [-n] pattern [file]
//
// Reads file, or stdin when no file is given, and prints every line the
// pattern matches. With -n each line is prefixed with its line number.
// Exits 0 when at least one line matched, 1 when none did, and 2 on a
// usage, compile, or I/O error.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/coregx/tinyregex"
	"github.com/coregx/tinyregex/prog"
)

func main() {
	lineNumbers := flag.Bool("n", false, "prefix matching lines with their line number")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: tinygrep [-n] pattern [file]\n")
		fmt.Fprintf(os.Stderr, `  e.g. tinygrep '[Hh]ello\s+[Ww]orld\s{1,3}' input.txt`+"\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}

	re, err := tinyregex.Compile(args[0])
	if err != nil {
		var perr *prog.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintf(os.Stderr, "tinygrep: %v\n", perr)
		} else {
			fmt.Fprintf(os.Stderr, "tinygrep: compiling %q: %v\n", args[0], err)
		}
		os.Exit(2)
	}

	in := os.Stdin
	if len(args) == 2 {
		f, err := os.Open(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "tinygrep: %v\n", err)
			os.Exit(2)
		}
		defer f.Close()
		in = f
	}

	matched, err := grep(re, in, os.Stdout, *lineNumbers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tinygrep: %v\n", err)
		os.Exit(2)
	}
	if !matched {
		os.Exit(1)
	}
}

// grep scans r line by line, writing matching lines to w. It reports
// whether any line matched.
func grep(re *tinyregex.Regex, r io.Reader, w io.Writer, lineNumbers bool) (bool, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	matched := false
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if !re.Match(line) {
			continue
		}
		matched = true
		if lineNumbers {
			fmt.Fprintf(w, "%d:%s\n", lineNo, line)
		} else {
			fmt.Fprintf(w, "%s\n", line)
		}
	}
	return matched, scanner.Err()
}
