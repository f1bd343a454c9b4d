package loop

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tomz197/goalpong/internal/draw"
	"github.com/tomz197/goalpong/internal/input"
	"github.com/tomz197/goalpong/internal/loop/config"
	"github.com/tomz197/goalpong/internal/object"
)

// Options configures a Run.
type Options struct {
	TermSizeFunc   draw.TermSizeFunc // defaults to the local stdout size
	TickRate       int               // simulation ticks per second; 0 uses config.TickTime
	FrameRate      int               // frames drawn per second; 0 uses config.FrameTime
	HoldDuration   time.Duration     // key hold emulation; 0 uses input.DefaultHoldDuration
	IdleWarn       time.Duration     // show a warning after this long without input; 0 disables
	IdleTimeout    time.Duration     // end the match after this long without input; 0 disables
	EnemyDirection object.Direction
	Log            *logrus.Entry // nil discards
}

func (o Options) withDefaults() Options {
	if o.TermSizeFunc == nil {
		o.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if o.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Log = logrus.NewEntry(l)
	}
	return o
}

// tickTime is the fixed simulation step.
func (o Options) tickTime() time.Duration {
	if o.TickRate <= 0 {
		return config.TickTime
	}
	return time.Second / time.Duration(o.TickRate)
}

// frameTime is the target time between drawn frames.
func (o Options) frameTime() time.Duration {
	if o.FrameRate <= 0 {
		return config.FrameTime
	}
	return time.Second / time.Duration(o.FrameRate)
}

// runner ties one match to one terminal.
type runner struct {
	opts     Options
	state    *State
	stream   *input.Stream
	canvas   *draw.Canvas
	cw       *draw.ChunkWriter
	styles   draw.Styles
	writer   io.Writer
	layout   layout
	input    object.Input
	running  bool
	idle     bool
	wasIdle  bool
	lastSeen time.Time
}

// Run plays one match on the terminal behind r and w with the standard
// Input → Update → Draw cycle. The simulation advances in fixed ticks
// independent of the frame rate. Run returns the final score when the player
// quits, the input ends or the session goes idle.
func Run(r *bufio.Reader, w io.Writer, opts Options) (object.Scoreboard, error) {
	opts = opts.withDefaults()

	rn := &runner{
		opts:     opts,
		state:    NewState(opts.EnemyDirection),
		stream:   input.StartStream(r, opts.HoldDuration),
		canvas:   draw.NewScaledCanvas(0, 0, config.ViewWidth, config.ViewHeight),
		cw:       draw.NewChunkWriter(w, 0, 0),
		styles:   draw.NewStyles(w),
		writer:   w,
		running:  true,
		lastSeen: time.Now(),
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	tickTime := opts.tickTime()
	frameTime := opts.frameTime()

	var acc time.Duration
	lastTime := time.Now()

	for rn.running {
		frameStart := time.Now()
		acc += frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		rn.processInput(frameStart)

		// ===== UPDATE PHASE =====
		ticks := 0
		for acc >= tickTime && ticks < config.MaxTicksPerFrame {
			if ev, ok := rn.state.Step(tickTime, rn.input); ok {
				opts.Log.WithFields(logrus.Fields{
					"goal":         ev.Goal.String(),
					"scorer":       ev.Scorer.String(),
					"player_score": rn.state.Score.Player,
					"enemy_score":  rn.state.Score.Enemy,
				}).Debug("goal")
			}
			acc -= tickTime
			ticks++
		}
		if ticks == config.MaxTicksPerFrame {
			// Drop the backlog after a stall instead of fast-forwarding.
			acc = 0
		}

		// ===== DRAW PHASE =====
		if err := rn.drawFrame(); err != nil {
			return rn.state.Score, fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return rn.state.Score, nil
}

// processInput reads pending input and applies quit and inactivity rules.
func (rn *runner) processInput(now time.Time) {
	rn.input = input.ReadInput(rn.stream)

	if rn.input.Quit || rn.stream.Closed() {
		rn.running = false
		return
	}

	if len(rn.input.Pressed) > 0 {
		rn.lastSeen = now
		if rn.idle {
			// The key that dismisses the warning does not move the paddle.
			input.ResetKeyInput(rn.stream)
			rn.input = object.Input{Pressed: rn.input.Pressed}
			rn.idle = false
		}
		return
	}

	idleFor := now.Sub(rn.lastSeen)
	if rn.opts.IdleTimeout > 0 && idleFor > rn.opts.IdleTimeout {
		rn.opts.Log.WithField("idle", idleFor.Round(time.Second).String()).Info("disconnecting idle session")
		rn.running = false
		return
	}
	if rn.opts.IdleWarn > 0 && idleFor > rn.opts.IdleWarn {
		rn.idle = true
	}
}
