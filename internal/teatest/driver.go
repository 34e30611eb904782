// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of starting a tea.Program, the Driver calls Update directly and
// drains returned Cmds inline, which keeps TUI tests deterministic and free
// of goroutines. Cmds that block (cursor blink timers) are abandoned after a
// short timeout.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth bounds recursive command draining.
const maxDrainDepth = 100

// cmdTimeout separates real Cmds (which return in microseconds) from blink
// timers (which block for ~500ms).
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous harness around one tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quit is set when a tea.QuitMsg passes through the drain loop. The
	// bubbletea runtime normally swallows it, so the driver tracks it itself.
	Quit bool
}

func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	return &Driver{T: t, Model: model}
}

// Start sends an initial window size and drains the model's Init command.
func (d *Driver) Start(width, height int) {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
	d.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// Send dispatches one message and drains everything it triggers.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quit {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// Type sends a single character key.
func (d *Driver) Type(r rune) {
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// TypeString sends each character of s as a key press.
func (d *Driver) TypeString(s string) {
	for _, r := range s {
		d.Type(r)
	}
}

func (d *Driver) Enter() { d.Send(tea.KeyMsg{Type: tea.KeyEnter}) }
func (d *Driver) Esc()   { d.Send(tea.KeyMsg{Type: tea.KeyEsc}) }
func (d *Driver) Up()    { d.Send(tea.KeyMsg{Type: tea.KeyUp}) }
func (d *Driver) Down()  { d.Send(tea.KeyMsg{Type: tea.KeyDown}) }

// View returns the model's current rendering.
func (d *Driver) View() string {
	return d.Model.View()
}

// drain executes a Cmd tree depth-first, feeding every produced message back
// through Update.
func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil || d.Quit {
		return
	}
	if depth > maxDrainDepth {
		d.T.Fatalf("command drain exceeded depth %d; likely a message loop", maxDrainDepth)
	}

	msg := runWithTimeout(cmd)
	if msg == nil {
		return
	}

	switch m := msg.(type) {
	case tea.QuitMsg:
		d.Quit = true
		return
	case tea.BatchMsg:
		for _, c := range m {
			d.drain(c, depth+1)
		}
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drain(next, depth+1)
}

// runWithTimeout executes a Cmd, giving up on ones that block.
func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}
