package console

import "github.com/mattn/go-runewidth"

// layoutCells splits s into display cells. fn receives the column offset of
// each cell, its main rune, any zero-width runes that combine with it, and
// its width in columns (1 or 2). Zero-width runes with nothing to attach to
// are dropped.
func layoutCells(s string, fn func(col int, mainc rune, combc []rune, width int)) {
	var (
		col   int
		mainc rune
		combc []rune
		width int
		have  bool
	)

	flush := func() {
		if have {
			fn(col, mainc, combc, width)
			col += width
		}
	}

	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			if have {
				combc = append(combc, r)
			}
			continue
		}
		flush()
		mainc, combc, width, have = r, nil, rw, true
	}
	flush()
}

// StringWidth returns the number of columns s occupies when printed.
func StringWidth(s string) int {
	n := 0
	layoutCells(s, func(_ int, _ rune, _ []rune, width int) {
		n += width
	})
	return n
}
