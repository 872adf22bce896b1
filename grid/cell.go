package grid

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// narrow measures runes independently of the locale, so ambiguous-width
// box-drawing glyphs always count as one column.
var narrow = &runewidth.Condition{EastAsianWidth: false}

// CheckRune returns an error wrapping ErrInvalidCell unless r occupies exactly
// one terminal column. Control characters, combining marks and wide (CJK,
// emoji) runes are rejected.
func CheckRune(r rune) error {
	if w := narrow.RuneWidth(r); w != 1 {
		return fmt.Errorf("%w: %q has display width %d", ErrInvalidCell, r, w)
	}
	return nil
}

// AppendCell appends the text form of v to buf. Runes are encoded as UTF-8,
// bytes as a single character, strings verbatim and fmt.Stringers through
// String; any other value is formatted with fmt.
func AppendCell[T any](buf []byte, v T) []byte {
	switch c := any(v).(type) {
	case rune:
		return utf8.AppendRune(buf, c)
	case byte:
		return append(buf, c)
	case string:
		return append(buf, c...)
	case fmt.Stringer:
		return append(buf, c.String()...)
	default:
		return fmt.Append(buf, c)
	}
}

// WriteRows writes height rows to w. For each row, appendRow appends the
// row's cells to the buffer it is given; WriteRows terminates the row with
// "\n" and writes it out. The first write error stops rendering and is
// returned as is.
func WriteRows(w io.Writer, height int, appendRow func(buf []byte, y int) []byte) (int64, error) {
	var total int64
	var buf []byte
	for y := 0; y < height; y++ {
		buf = appendRow(buf[:0], y)
		buf = append(buf, '\n')
		n, err := w.Write(buf)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
