package headless

import (
	"fmt"
	"sync"

	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/shared/sim"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
)

// TerminalView draws a spectator view of the fight into a terminal and
// turns key presses into loop commands.
type TerminalView struct {
	screen   tcell.Screen
	commands chan Command
	done     chan struct{}
	every    int

	closeOnce sync.Once
}

// NewTerminalView takes over the terminal. Call Close to restore it.
func NewTerminalView() (*TerminalView, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewTerminalViewOn(screen)
}

// NewTerminalViewOn uses an existing screen, such as a simulation screen.
func NewTerminalViewOn(screen tcell.Screen) (*TerminalView, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.HideCursor()
	return &TerminalView{
		screen:   screen,
		commands: make(chan Command, 8),
		done:     make(chan struct{}),
		every:    2,
	}, nil
}

// Start reads terminal events on their own goroutine.
func (v *TerminalView) Start() {
	go v.pollEvents()
}

// Commands delivers quit and pause requests to the tick goroutine.
func (v *TerminalView) Commands() <-chan Command {
	return v.commands
}

// Close restores the terminal.
func (v *TerminalView) Close() {
	v.closeOnce.Do(func() {
		close(v.done)
		v.screen.Fini()
	})
}

func (v *TerminalView) pollEvents() {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if cmd, ok := commandFor(ev); ok {
				select {
				case v.commands <- cmd:
				case <-v.done:
					return
				}
			}
		case *tcell.EventResize:
			v.screen.Sync()
		}
	}
}

func commandFor(ev *tcell.EventKey) (Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return CommandQuit, true
		case 'p', ' ':
			return CommandTogglePause, true
		}
	}
	return 0, false
}

// Observe redraws the arena every few ticks.
func (v *TerminalView) Observe(w donburi.World, tick int) {
	if v.every > 1 && tick%v.every != 0 {
		return
	}
	v.Draw(w)
}

// Draw renders the match state scaled to the terminal.
func (v *TerminalView) Draw(w donburi.World) {
	s := v.screen
	s.Clear()
	width, height := s.Size()
	if width < 20 || height < 8 {
		s.Show()
		return
	}

	// Rows 0-2 are the status lines, the last row is the key hint
	top := 3
	rows := height - top - 2
	scaleX := float64(cfg.Arena.Width) / float64(width)
	scaleY := float64(cfg.Arena.GroundY) / float64(rows)

	ground := tcell.StyleDefault.Foreground(tcell.ColorOlive)
	for x := 0; x < width; x++ {
		s.SetContent(x, top+rows, '▀', nil, ground)
	}

	m := sim.MatchOf(w)
	components.Fighter.Each(w, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		style := fighterStyle(f)

		r := f.Rect()
		x0, x1 := int(float64(r.X)/scaleX), int(float64(r.Right()-1)/scaleX)
		y0, y1 := int(float64(r.Y)/scaleY), int(float64(r.Bottom()-1)/scaleY)
		glyph := rune('1' + f.Index)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				s.SetContent(x, top+y, glyph, nil, style)
			}
		}

		if f.IsAttackActive() {
			a := f.AttackRect()
			ax0, ax1 := int(float64(a.X)/scaleX), int(float64(a.Right()-1)/scaleX)
			ay := int(float64(a.Y+a.H/2) / scaleY)
			ch := '-'
			if f.IsSuperActive {
				ch = '='
			}
			for x := ax0; x <= ax1; x++ {
				s.SetContent(x, top+ay, ch, nil, tcell.StyleDefault.Foreground(tcell.ColorRed))
			}
		}

		line := fmt.Sprintf("P%d %3d HP %3d MP %-6s", f.Index+1, f.Health, f.SuperMeter, sim.AnimationFor(f))
		if m != nil {
			line += fmt.Sprintf(" stocks %d", m.Stocks[f.Index%2])
		}
		col := 0
		if f.Index == 1 {
			col = max(width-len(line), 0)
		}
		drawText(s, col, 0, line, style)
	})

	if m != nil {
		status := fmt.Sprintf("Round %d  %02ds", m.Round, m.SecondsRemaining())
		drawText(s, max((width-len(status))/2, 0), 1, status, tcell.StyleDefault.Bold(true))
		if m.Message != "" {
			drawText(s, max((width-len(m.Message))/2, 0), 2, m.Message, tcell.StyleDefault.Foreground(tcell.ColorYellow))
		}
	}
	drawText(s, 0, height-1, "q: quit  p: pause", tcell.StyleDefault.Dim(true))
	s.Show()
}

func fighterStyle(f *components.FighterData) tcell.Style {
	c := cfg.StateColors[sim.AnimationFor(f)]
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func drawText(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
