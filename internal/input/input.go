// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// DefaultHoldDuration is how long a key is considered "held" after its last press.
// Terminals report auto-repeat presses but never releases, so a held key is a key
// seen recently.
const DefaultHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool // q or Escape
	Up      bool
	Down    bool
	Escape  bool
	Pressed []byte // raw bytes read this frame
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit   time.Time
	up     time.Time
	down   time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and tracks key state for hold detection.
type Stream struct {
	ch     chan byte
	closed bool
	hold   time.Duration
	state  keyState
	now    func() time.Time

	// An escape sequence cut off at the end of a drain waits here for the
	// rest of its bytes. A bare Escape key looks the same until hold passes.
	pending      []byte
	pendingSince time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// hold <= 0 selects DefaultHoldDuration.
func StartStream(r *bufio.Reader, hold time.Duration) *Stream {
	s := newStream(hold)
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream(hold time.Duration) *Stream {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &Stream{
		ch:   make(chan byte, 128),
		hold: hold,
		now:  time.Now,
	}
}

// Closed reports whether the underlying reader has ended (EOF or error).
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Escape sequences may arrive split across drains; an incomplete one is kept
// for the next call. Bytes still pending are not reported in Pressed.
func ReadInput(s *Stream) Input {
	now := s.now()

	buf := s.pending
	carried := len(buf)
	since := s.pendingSince
	s.pending = nil
	s.pendingSince = time.Time{}

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			applyByteToState(&s.state, b, now)
			continue
		}

		n, complete := escapeLen(buf[i:])
		if complete {
			applySequence(&s.state, buf[i:i+n], now)
			i += n - 1
			continue
		}

		// Only a carried prefix with nothing new after it can be stale.
		waiting := carried > 0 && len(buf) == carried
		stale := waiting && now.Sub(since) >= s.hold
		if !s.closed && !stale {
			s.pending = append([]byte(nil), buf[i:]...)
			s.pendingSince = now
			if waiting {
				s.pendingSince = since
			}
			buf = buf[:i]
			break
		}

		// No more bytes are coming: it was the Escape key.
		s.state.escape = now
		break
	}

	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) < s.hold
	}

	escape := held(s.state.escape)
	return Input{
		Quit:    held(s.state.quit) || escape,
		Up:      held(s.state.up),
		Down:    held(s.state.down),
		Escape:  escape,
		Pressed: buf,
	}
}

// escapeLen returns the length of the escape sequence at the start of seq,
// or complete=false when seq ends before the sequence does. An ESC followed
// by anything but '[' or 'O' is the Escape key on its own.
func escapeLen(seq []byte) (n int, complete bool) {
	if len(seq) < 2 {
		return 0, false
	}
	switch seq[1] {
	case '[': // CSI: parameters, then a final byte in 0x40-0x7E
		for j := 2; j < len(seq); j++ {
			if seq[j] >= 0x40 && seq[j] <= 0x7e {
				return j + 1, true
			}
		}
		return 0, false
	case 'O': // SS3, sent for arrows in application cursor mode
		if len(seq) < 3 {
			return 0, false
		}
		return 3, true
	default:
		return 1, true
	}
}

// applySequence updates the key state for one complete escape sequence.
// Right/Left arrows and other keys are ignored.
func applySequence(state *keyState, seq []byte, now time.Time) {
	if len(seq) == 1 {
		state.escape = now
		return
	}
	switch seq[len(seq)-1] {
	case 'A': // Up arrow
		state.up = now
	case 'B': // Down arrow
		state.down = now
	}
}

// ResetKeyInput forgets all held keys, e.g. after a key press that only
// dismissed a prompt.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		state.quit = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	}
}
