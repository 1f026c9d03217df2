package symcode

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/symcode/symcode/geom"
)

// Debugger observes each pipeline stage without participating in its
// result. A production pipeline runs with NopDebugger; a LogDebugger is
// useful while tuning a physical code layout against real photographs.
type Debugger interface {
	// Log records a free-form pipeline event.
	Log(msg string)

	// Stage records a named stage's output image, for visual
	// inspection of where recognition diverged from expectation.
	Stage(name string, image geom.BinaryImage)

	// Rect records a region of interest a stage singled out, such as
	// a finder candidate or a glyph cluster's bounding box.
	Rect(label string, r geom.Rect)
}

// NopDebugger discards every observation. It's the zero-cost default a
// Pipeline uses when no Debugger is supplied.
type NopDebugger struct{}

func (NopDebugger) Log(string)                    {}
func (NopDebugger) Stage(string, geom.BinaryImage) {}
func (NopDebugger) Rect(string, geom.Rect)         {}

// LogDebugger reports every observation as a structured zerolog event,
// summarizing each image by its dimensions and foreground pixel count
// rather than rendering it, since there's no canvas to draw on outside
// a browser.
type LogDebugger struct {
	logger zerolog.Logger
}

// NewLogDebugger returns a LogDebugger writing to w.
func NewLogDebugger(w io.Writer) LogDebugger {
	return LogDebugger{logger: zerolog.New(w).With().Timestamp().Logger()}
}

func (d LogDebugger) Log(msg string) {
	d.logger.Info().Msg(msg)
}

func (d LogDebugger) Stage(name string, image geom.BinaryImage) {
	d.logger.Debug().
		Str("stage", name).
		Int("width", image.Width).
		Int("height", image.Height).
		Int("area", image.Area()).
		Msg("stage image")
}

func (d LogDebugger) Rect(label string, r geom.Rect) {
	d.logger.Debug().
		Str("label", label).
		Int("left", r.Left).Int("top", r.Top).
		Int("width", r.Width()).Int("height", r.Height()).
		Msg("rect")
}
