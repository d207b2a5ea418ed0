package terminput

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTarget struct {
	events []string
}

func (r *recordingTarget) SignifyNewpress(p int) {
	r.events = append(r.events, fmt.Sprintf("newpress(%d)", p))
}
func (r *recordingTarget) SignifyReleased(p int) {
	r.events = append(r.events, fmt.Sprintf("released(%d)", p))
}
func (r *recordingTarget) SignifyButtonNewpress(c, b int) {
	r.events = append(r.events, fmt.Sprintf("buttonNewpress(%d,%d)", c, b))
}
func (r *recordingTarget) SignifyButtonReleased(c, b int) {
	r.events = append(r.events, fmt.Sprintf("buttonReleased(%d,%d)", c, b))
}

func TestSource_Mouse(t *testing.T) {
	target := &recordingTarget{}
	s := New(target, nil)

	s.Handle(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))
	s.Handle(tcell.NewEventMouse(5, 4, tcell.Button1, tcell.ModNone))
	s.Handle(tcell.NewEventMouse(5, 4, tcell.ButtonNone, tcell.ModNone))
	s.Handle(tcell.NewEventMouse(5, 4, tcell.Button2, tcell.ModNone))

	assert.Equal(t, []string{"newpress(0)", "released(0)"}, target.events)
}

func TestSource_Keys(t *testing.T) {
	target := &recordingTarget{}
	s := New(target, map[rune]int{'x': 7})

	s.Handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	s.Handle(tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone))

	assert.Equal(t, []string{"buttonNewpress(0,7)", "buttonReleased(0,7)"}, target.events)
}

func TestSource_QuitAndResize(t *testing.T) {
	target := &recordingTarget{}
	s := New(target, nil)
	quits := 0
	var size [2]int
	s.OnQuit = func() { quits++ }
	s.OnResize = func(w, h int) { size = [2]int{w, h} }

	s.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	s.Handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	s.Handle(tcell.NewEventResize(120, 40))

	assert.Equal(t, 2, quits)
	assert.Equal(t, [2]int{120, 40}, size)
	assert.Empty(t, target.events)
}

func TestSource_RunStopsOnFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	target := &recordingTarget{}
	s := New(target, nil)

	done := make(chan struct{})
	go func() {
		s.Run(screen)
		close(done)
	}()
	screen.Fini()
	<-done
}
