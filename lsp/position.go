package lsp

import "unicode/utf8"

// LSP clients count columns in UTF-16 code units; Problem and Complete
// work in byte offsets. These helpers convert at the server boundary.

// utf16Len returns the number of codes in the UTF-16 transcoding of s.
func utf16Len(s string) int {
	var n int
	for len(s) > 0 {
		n++

		if s[0] < utf8.RuneSelf {
			s = s[1:]
			continue
		}

		r, size := utf8.DecodeRuneInString(s)
		if r >= 0x10000 {
			n++ // surrogate pair
		}
		s = s[size:]
	}
	return n
}

// utf16Column converts a byte offset in line to a UTF-16 column.
func utf16Column(line string, offset int) int {
	offset = min(max(offset, 0), len(line))
	return utf16Len(line[:offset])
}

// byteOffset converts a UTF-16 column in line to a byte offset. A column
// inside a surrogate pair or past the end of the line snaps forward to the
// next rune boundary or to len(line).
func byteOffset(line string, col int) int {
	n := 0
	for i := 0; i < len(line); {
		if n >= col {
			return i
		}
		r, size := utf8.DecodeRuneInString(line[i:])
		n++
		if r >= 0x10000 {
			n++
		}
		i += size
	}
	return len(line)
}
