package console

// Cell is one character cell of a NullConsole.
type Cell struct {
	Rune rune
	Comb []rune
	Fg   Color
	Bg   Color
}

// NullConsole is an in-memory console for testing.
// Events are delivered in the order they were posted.
type NullConsole struct {
	displayW, displayH int
	width, height      int
	opts               Options
	cells              [][]Cell
	fg, bg             Color
	events             []Event
	active             bool
	initErr            error
	inits              int
	flushes            int
	finis              int
}

// NewNullConsole creates a null console on a display of the given size.
// The display size bounds the logical console the same way a terminal does.
func NewNullConsole(displayWidth, displayHeight int) *NullConsole {
	return &NullConsole{
		displayW: displayWidth,
		displayH: displayHeight,
	}
}

// FailInit makes the next Init call return err.
func (c *NullConsole) FailInit(err error) {
	c.initErr = err
}

func (c *NullConsole) Init(opts Options) error {
	if c.active {
		return ErrAlreadyActive
	}
	if c.initErr != nil {
		err := c.initErr
		c.initErr = nil
		return err
	}

	c.opts = opts
	c.inits++
	c.active = true
	c.resizeGrid(c.logicalSize())
	return nil
}

func (c *NullConsole) Fini() {
	if !c.active {
		return
	}
	c.active = false
	c.finis++
}

func (c *NullConsole) Active() bool {
	return c.active
}

// SetActive overrides the active flag, simulating a display that went away.
func (c *NullConsole) SetActive(active bool) {
	c.active = active
}

func (c *NullConsole) Size() (int, int) {
	return c.width, c.height
}

func (c *NullConsole) SetTitle(title string) {
	c.opts.Title = title
}

// Title returns the last title set.
func (c *NullConsole) Title() string {
	return c.opts.Title
}

// Options returns the options passed to Init, with later title changes.
func (c *NullConsole) Options() Options {
	return c.opts
}

func (c *NullConsole) SetColors(fg, bg Color) {
	c.fg, c.bg = fg, bg
}

// Colors returns the current default colors.
func (c *NullConsole) Colors() (fg, bg Color) {
	return c.fg, c.bg
}

func (c *NullConsole) Print(x, y int, s string) {
	if y < 0 || y >= c.height {
		return
	}
	layoutCells(s, func(col int, mainc rune, combc []rune, width int) {
		cx := x + col
		if cx < 0 || cx+width > c.width {
			return
		}
		c.cells[y][cx] = Cell{Rune: mainc, Comb: combc, Fg: c.fg, Bg: c.bg}
	})
}

func (c *NullConsole) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' ', Fg: c.fg, Bg: c.bg}
		}
	}
}

func (c *NullConsole) Flush() {
	c.flushes++
}

func (c *NullConsole) CheckForEvent() (Event, bool) {
	if len(c.events) == 0 {
		return Event{}, false
	}
	ev := c.events[0]
	c.events = c.events[1:]
	return ev, true
}

// Post queues a native event.
func (c *NullConsole) Post(ev Event) {
	c.events = append(c.events, ev)
}

// Pending returns the number of queued events.
func (c *NullConsole) Pending() int {
	return len(c.events)
}

// Resize simulates a display resize and queues the resulting event.
func (c *NullConsole) Resize(displayWidth, displayHeight int) {
	c.displayW, c.displayH = displayWidth, displayHeight
	w, h := c.logicalSize()
	c.resizeGrid(w, h)
	c.Post(Event{Type: EventResize, Width: w, Height: h})
}

// Cell returns the cell at (x, y), or a zero Cell outside the console.
func (c *NullConsole) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Cell{}
	}
	return c.cells[y][x]
}

// Row returns the main runes of row y as a string, blanks included.
func (c *NullConsole) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	out := make([]rune, 0, c.width)
	for _, cell := range c.cells[y] {
		if cell.Rune == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, cell.Rune)
	}
	return string(out)
}

// Flushes returns how many times Flush was called.
func (c *NullConsole) Flushes() int {
	return c.flushes
}

// Inits returns how many times Init succeeded.
func (c *NullConsole) Inits() int {
	return c.inits
}

// Finis returns how many times an active console was finalized.
func (c *NullConsole) Finis() int {
	return c.finis
}

func (c *NullConsole) logicalSize() (int, int) {
	if c.opts.Fullscreen {
		return c.displayW, c.displayH
	}
	return min(c.opts.Width, c.displayW), min(c.opts.Height, c.displayH)
}

func (c *NullConsole) resizeGrid(w, h int) {
	cells := make([][]Cell, h)
	for y := range cells {
		cells[y] = make([]Cell, w)
		if y < len(c.cells) {
			copy(cells[y], c.cells[y])
		}
	}
	c.width, c.height = w, h
	c.cells = cells
}
