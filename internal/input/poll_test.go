package input

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKeys map[Key]bool

func (f fakeKeys) IsKeyDown(k Key) bool { return f[k] }

type fakePointer struct {
	x, y        float64
	left, right bool
	scroll      float64
}

func (p fakePointer) PointerPosition() (float64, float64) { return p.x, p.y }
func (p fakePointer) PointerButtons() (bool, bool)        { return p.left, p.right }
func (p fakePointer) ScrollDelta() float64                { return p.scroll }

func TestPoll_HeldSnapshot(t *testing.T) {
	p := NewPoller(DefaultBindings())

	f := p.Poll(fakeKeys{KeyW: true, KeyLeft: true}, nil)
	assert.True(t, f.Held.Accelerate)
	assert.True(t, f.Held.Left)
	assert.False(t, f.Held.Brake)
	assert.False(t, f.Held.Right)
	assert.False(t, f.Held.Reset)
	assert.Empty(t, f.Pressed)

	// Held keys stay held on every frame.
	f = p.Poll(fakeKeys{KeyW: true, KeyLeft: true}, nil)
	assert.True(t, f.Held.Accelerate)
}

func TestPoll_PressFiresOncePerKeyDown(t *testing.T) {
	p := NewPoller(DefaultBindings())

	f := p.Poll(fakeKeys{KeyN: true}, nil)
	assert.Equal(t, []Action{ActionToggleNight}, f.Pressed)

	for i := 0; i < 5; i++ {
		f = p.Poll(fakeKeys{KeyN: true}, nil)
		require.Empty(t, f.Pressed, "frame %d", i)
	}

	p.Poll(fakeKeys{}, nil)
	f = p.Poll(fakeKeys{KeyN: true}, nil)
	assert.Contains(t, f.Pressed, ActionToggleNight)
}

func TestPoll_ActionsInTableOrder(t *testing.T) {
	p := NewPoller(DefaultBindings())
	f := p.Poll(fakeKeys{KeyFour: true, KeyEscape: true, KeyL: true}, nil)
	assert.Equal(t, []Action{ActionQuit, ActionToggleHeadlights, ActionCameraOrbital}, f.Pressed)
}

func TestPoll_Pointer(t *testing.T) {
	p := NewPoller(DefaultBindings())
	f := p.Poll(fakeKeys{}, fakePointer{x: 10, y: 20, right: true, scroll: -1})
	assert.Equal(t, Pointer{X: 10, Y: 20, Right: true, Scroll: -1}, f.Pointer)
}

func TestDefaultBindings_EveryActionBound(t *testing.T) {
	bound := map[Action]bool{}
	for _, b := range DefaultBindings().Press {
		assert.False(t, bound[b.Action], "%s bound twice", b.Action)
		bound[b.Action] = true
	}
	for a := ActionQuit; a <= ActionTogglePointer; a++ {
		assert.True(t, bound[a], "%s unbound", a)
		assert.NotEqual(t, "unknown", a.String())
	}
}

func TestBindings_KeysDeduplicated(t *testing.T) {
	b := Bindings{
		Held:  []HeldBinding{{KeyW, ControlAccelerate}},
		Press: []PressBinding{{KeyW, ActionReset}, {KeyR, ActionReset}},
	}
	assert.Equal(t, []Key{KeyW, KeyR}, b.Keys())
}

func TestPrintLegend(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintLegend(&buf))
	out := buf.String()
	assert.Contains(t, out, "Racing Car Simulator controls")
	assert.Contains(t, out, "ESC")
	assert.Contains(t, out, "toggle headlights")
}
