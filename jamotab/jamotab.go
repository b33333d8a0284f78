package jamotab

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/jamo/ucd"
)

// Token is one element of a decomposition entry: either a code point or an
// opaque marker (for example "<filler>") that is never recursed into.
type Token struct {
	Rune   rune
	Marker string
}

// IsMarker reports whether the token is an opaque marker.
func (t Token) IsMarker() bool {
	return t.Marker != ""
}

// Entry is one line of a decomposition reference file: a code point together
// with its decomposition tokens. Tokens may be empty for non-compound
// reference lines.
type Entry struct {
	Code   rune
	Tokens []Token
}

// Reader streams decomposition entries from line-oriented reference files.
//
// Relevant lines begin with a 4-hex-digit code point, followed by
// whitespace-delimited decomposition tokens, terminated by a '#' comment
// carrying the character and its standardized Unicode name:
//
//	1101 1100 1100 # ᄁ HANGUL CHOSEONG SSANGKIYEOK
//
// Tokens are either 4-hex-digit code points or opaque markers enclosed in
// angle brackets. Blank lines separate contiguous blocks; lines starting
// with '#' are comments.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next entry. It returns io.EOF when exhausted.
func (r *Reader) Next() (Entry, error) {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if !isEntryLine(line) {
			continue
		}
		entry, err := decodeEntryLine(line)
		if err != nil {
			return Entry{}, err
		}
		return entry, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Entry{}, err
	}
	return Entry{}, io.EOF
}

func isEntryLine(line string) bool {
	if len(line) < 4 || strings.HasPrefix(line, "#") {
		return false
	}
	_, err := strconv.ParseUint(line[:4], 16, 32)
	return err == nil
}

func decodeEntryLine(line string) (Entry, error) {
	body := line
	if i := strings.IndexByte(line, '#'); i >= 0 {
		body = line[:i]
	}
	fields := strings.Fields(body)
	code, err := strconv.ParseUint(fields[0], 16, 32)
	if err != nil {
		return Entry{}, fmt.Errorf("malformed code point %q", fields[0])
	}
	entry := Entry{Code: rune(code)}
	for _, field := range fields[1:] {
		token, err := decodeToken(field)
		if err != nil {
			return Entry{}, fmt.Errorf("entry %04X: %w", code, err)
		}
		entry.Tokens = append(entry.Tokens, token)
	}
	return entry, nil
}

func decodeToken(field string) (Token, error) {
	if strings.HasPrefix(field, "<") && strings.HasSuffix(field, ">") {
		return Token{Marker: field}, nil
	}
	code, err := strconv.ParseUint(field, 16, 32)
	if err != nil {
		return Token{}, fmt.Errorf("malformed token %q", field)
	}
	return Token{Rune: rune(code)}, nil
}

// Validate checks a canonical reference file before its table is trusted.
//
// Within each block (blocks are separated by blank lines) code points must be
// strictly increasing and contiguous. The trailing comment of every entry
// must carry the entry's own character, and the recorded name must agree
// with the standardized Unicode name of the code point.
func Validate(reader io.Reader) error {
	return validate(reader, true)
}

// ValidateSparse checks an auxiliary reference file. Auxiliary files list
// scattered entries, so code points must be strictly increasing but need not
// be contiguous; comment checks are the same as for Validate.
func ValidateSparse(reader io.Reader) error {
	return validate(reader, false)
}

func validate(reader io.Reader, contiguous bool) error {
	scanner := bufio.NewScanner(reader)
	lineno := 0
	last := rune(0)
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			last = 0 // block break
			continue
		}
		if !isEntryLine(line) {
			continue
		}
		entry, err := decodeEntryLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		if last != 0 && contiguous && entry.Code != last+1 {
			return fmt.Errorf("line %d: skipped code point, %04X does not follow %04X",
				lineno, entry.Code, last)
		}
		if last != 0 && entry.Code <= last {
			return fmt.Errorf("line %d: code points out of order, %04X after %04X",
				lineno, entry.Code, last)
		}
		last = entry.Code
		if err := validateComment(line, entry.Code); err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	return scanner.Err()
}

func validateComment(line string, code rune) error {
	i := strings.IndexByte(line, '#')
	if i < 0 {
		return fmt.Errorf("entry %04X: missing comment", code)
	}
	comment := strings.TrimSpace(line[i+1:])
	char, rest, err := splitComment(comment)
	if err != nil {
		return fmt.Errorf("entry %04X: %w", code, err)
	}
	if char != code {
		return fmt.Errorf("entry %04X: code does not match comment character U+%04X", code, char)
	}
	if name := ucd.Name(code); name != "" && rest != name {
		return fmt.Errorf("entry %04X: recorded name %q, standardized name is %q", code, rest, name)
	}
	return nil
}

func splitComment(comment string) (rune, string, error) {
	runes := []rune(comment)
	if len(runes) < 2 || runes[1] != ' ' {
		return 0, "", fmt.Errorf("comment %q does not start with a character", comment)
	}
	return runes[0], string(runes[2:]), nil
}
