// Package tui is the terminal back end: it rasterizes frames into a cell
// screen, schedules ticks with Bubble Tea and serves the same program over
// SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// DefaultFPS is the tick rate when none is configured.
var DefaultFPS = core.TerminalViewport.FPS

// FrameMsg asks the game model to run one loop frame.
type FrameMsg time.Time

// frameCmd schedules the next frame. Bubble Tea only delivers it after the
// current Update returns, so frames never overlap.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
