// Command jamotab maintains the decomposition reference data that package
// jamo embeds: it validates reference files, re-emits them in normalized
// form, and looks up standardized Hangul character names while editing.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/npillmayer/jamo/jamotab"
	"github.com/npillmayer/jamo/ucd"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

const usage = `usage:
  jamotab check <file>       validate a decomposition reference file
  jamotab parse <in> <out>   validate a reference file and re-emit it normalized
  jamotab name <prefix...>   list standardized Hangul character names by prefix
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "jamotab:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := ff.NewFlagSet("jamotab")
	nocheck := fs.BoolLong("nocheck", "emit without validating first")
	sparse := fs.BoolLong("sparse", "treat the input as an auxiliary (non-contiguous) file")
	if err := ff.Parse(fs, args); err != nil {
		fmt.Print(usage)
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	rest := fs.GetArgs()
	if len(rest) == 0 {
		fmt.Print(usage)
		return fmt.Errorf("missing command")
	}
	switch rest[0] {
	case "check":
		if len(rest) != 2 {
			return fmt.Errorf("check: want exactly one file argument")
		}
		return check(rest[1], *sparse)
	case "parse":
		if len(rest) != 3 {
			return fmt.Errorf("parse: want input and output file arguments")
		}
		return parse(rest[1], rest[2], *nocheck, *sparse)
	case "name":
		if len(rest) < 2 {
			return fmt.Errorf("name: want a name prefix")
		}
		return names(strings.ToUpper(strings.Join(rest[1:], " ")))
	}
	return fmt.Errorf("unknown command %q", rest[0])
}

func check(path string, sparse bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := validate(data, sparse); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Printf("ok %s\n", path)
	return nil
}

func validate(data []byte, sparse bool) error {
	if sparse {
		return jamotab.ValidateSparse(bytes.NewReader(data))
	}
	return jamotab.Validate(bytes.NewReader(data))
}

func parse(in, out string, nocheck, sparse bool) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	if !nocheck {
		if err := validate(data, sparse); err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	reader := jamotab.NewReader(bytes.NewReader(data))
	last := rune(0)
	for {
		entry, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if last != 0 && entry.Code != last+1 {
			fmt.Fprintln(w)
		}
		last = entry.Code
		fmt.Fprintln(w, formatEntry(entry))
	}
	return w.Flush()
}

func formatEntry(entry jamotab.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04X", entry.Code)
	for _, token := range entry.Tokens {
		if token.IsMarker() {
			fmt.Fprintf(&b, " %s", token.Marker)
		} else {
			fmt.Fprintf(&b, " %04X", token.Rune)
		}
	}
	fmt.Fprintf(&b, " # %c %s", entry.Code, ucd.Name(entry.Code))
	return b.String()
}

func names(prefix string) error {
	matches := ucd.NamesWithPrefix(prefix)
	if len(matches) == 0 {
		return fmt.Errorf("no Hangul character name starts with %q", prefix)
	}
	sort.Strings(matches)
	for _, name := range matches {
		r, _ := ucd.Lookup(name)
		fmt.Printf("%04X %c %s\n", r, r, name)
	}
	return nil
}
