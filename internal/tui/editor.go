// Package tui is the interactive terminal demo for the command/undo core.
// Typed runes become type commands, Backspace becomes a delete command and
// Ctrl-Z undoes the most recent command.
package tui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gopatterns/internal/editor/buffer"
	"github.com/dshills/gopatterns/internal/editor/history"
	"github.com/dshills/gopatterns/internal/logging"
)

// Editor renders a buffer and drives its history from key events.
type Editor struct {
	screen tcell.Screen
	buf    *buffer.Buffer
	hist   *history.History
	logger *logging.Logger
	status string
}

// New creates an editor on a real terminal screen.
func New(buf *buffer.Buffer, hist *history.History, logger *logging.Logger) (*Editor, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, buf, hist, logger), nil
}

// NewWithScreen creates an editor on the given screen. Tests use it with a
// tcell simulation screen.
func NewWithScreen(screen tcell.Screen, buf *buffer.Buffer, hist *history.History, logger *logging.Logger) *Editor {
	if logger == nil {
		logger = logging.Nop
	}
	return &Editor{
		screen: screen,
		buf:    buf,
		hist:   hist,
		logger: logger.WithComponent("tui"),
	}
}

// Run initializes the screen and processes events until quit.
func (e *Editor) Run() error {
	if err := e.screen.Init(); err != nil {
		return err
	}
	defer e.screen.Fini()

	for {
		e.render()

		switch ev := e.screen.PollEvent().(type) {
		case *tcell.EventResize:
			e.screen.Sync()
		case *tcell.EventKey:
			if quit := e.HandleKey(ev); quit {
				return nil
			}
		case nil:
			// Screen finalized underneath us.
			return nil
		}
	}
}

// HandleKey applies one key event and reports whether the editor should quit.
func (e *Editor) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlQ:
		return true

	case tcell.KeyCtrlZ:
		e.undo()

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.run(history.NewDeleteCommand(e.buf, 1))

	case tcell.KeyEnter:
		e.run(history.NewTypeCommand(e.buf, "\n"))

	case tcell.KeyRune:
		e.run(history.NewTypeCommand(e.buf, string(ev.Rune())))
	}

	return false
}

func (e *Editor) run(cmd history.Command) {
	if err := e.hist.Run(cmd); err != nil {
		e.status = err.Error()
		e.logger.Error("command failed: %v", err)
		return
	}
	e.status = ""
}

func (e *Editor) undo() {
	err := e.hist.Undo()
	if errors.Is(err, history.ErrNothingToUndo) {
		e.status = "nothing to undo"
		return
	}
	if err != nil {
		e.status = err.Error()
		e.logger.Error("undo failed: %v", err)
		return
	}
	e.status = ""
}

// render draws the buffer content and a status line.
func (e *Editor) render() {
	e.screen.Clear()
	width, height := e.screen.Size()
	if width == 0 || height == 0 {
		e.screen.Show()
		return
	}

	x, y := 0, 0
	for _, r := range e.buf.String() {
		if r == '\n' || x >= width {
			x = 0
			y++
		}
		if y >= height-1 {
			break
		}
		if r != '\n' {
			e.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}
	e.screen.ShowCursor(x, y)

	e.drawStatus(width, height)
	e.screen.Show()
}

// drawStatus draws the bottom status line: history depth, the next undo
// candidate and any transient message.
func (e *Editor) drawStatus(width, height int) {
	line := fmt.Sprintf(" %d undoable", e.hist.Len())
	if desc, ok := e.hist.PeekUndo(); ok {
		line += " | ^Z " + desc
	}
	if e.status != "" {
		line += " | " + e.status
	}
	line += " | ^Q quit"

	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range line {
		if x >= width {
			break
		}
		e.screen.SetContent(x, height-1, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		e.screen.SetContent(x, height-1, ' ', nil, style)
	}
}

// Status returns the transient status message, if any.
func (e *Editor) Status() string {
	return e.status
}
