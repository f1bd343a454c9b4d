package loop

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/goalpong/internal/input"
	"github.com/tomz197/goalpong/internal/loop/config"
	"github.com/tomz197/goalpong/internal/object"
	"github.com/tomz197/goalpong/internal/physics"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func TestNewState(t *testing.T) {
	s := NewState(object.DirectionDown)

	if s.Ball.Pos != (physics.Vec2{}) {
		t.Errorf("ball starts at %+v, want the origin", s.Ball.Pos)
	}
	if s.Enemy.Direction != object.DirectionDown {
		t.Errorf("enemy direction = %v, want down", s.Enemy.Direction)
	}
	if s.PlayerPaddle.Pos.X >= 0 || s.EnemyPaddle.Pos.X <= 0 {
		t.Errorf("paddles at x=%v and x=%v, want player left and enemy right",
			s.PlayerPaddle.Pos.X, s.EnemyPaddle.Pos.X)
	}
	if s.Score != (object.Scoreboard{}) {
		t.Errorf("score = %+v, want zero", s.Score)
	}
}

func TestCollidersOrder(t *testing.T) {
	s := NewState(object.DirectionUp)
	got := s.Colliders()

	want := []object.ColliderKind{
		object.ColliderWall, object.ColliderWall, object.ColliderWall, object.ColliderWall,
		object.ColliderPaddle, object.ColliderPaddle,
		object.ColliderGoal, object.ColliderGoal,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d colliders, want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.Kind != want[i] {
			t.Errorf("collider %d is a %v, want %v", i, c.Kind, want[i])
		}
	}
}

func TestObjectsPaintOrder(t *testing.T) {
	s := NewState(object.DirectionUp)
	objs := s.Objects()

	if len(objs) != 9 {
		t.Fatalf("got %d objects, want 9", len(objs))
	}
	if _, ok := objs[4].(*object.Goal); !ok {
		t.Errorf("object 4 is %T, want goals after walls", objs[4])
	}
	if _, ok := objs[len(objs)-1].(*object.Ball); !ok {
		t.Errorf("last object is %T, want the ball on top", objs[len(objs)-1])
	}
}

func TestStepMovesEverything(t *testing.T) {
	s := NewState(object.DirectionUp)
	dt := config.TickTime
	secs := dt.Seconds()

	if _, scored := s.Step(dt, object.Input{Up: true}); scored {
		t.Fatal("unexpected goal on the first tick")
	}

	if want := config.PlayerSpeed * secs; !approx(s.PlayerPaddle.Pos.Y, want) {
		t.Errorf("player y = %v, want %v", s.PlayerPaddle.Pos.Y, want)
	}
	if want := config.EnemySpeed * secs; !approx(s.EnemyPaddle.Pos.Y, want) {
		t.Errorf("enemy y = %v, want %v", s.EnemyPaddle.Pos.Y, want)
	}
	v := object.BallInitialVelocity()
	if !approx(s.Ball.Pos.X, v.X*secs) || !approx(s.Ball.Pos.Y, v.Y*secs) {
		t.Errorf("ball at %+v, want %v,%v", s.Ball.Pos, v.X*secs, v.Y*secs)
	}
}

func TestStepScoresAfterMovingBall(t *testing.T) {
	s := NewState(object.DirectionUp)
	s.Ball.Pos = physics.Vec2{X: 420, Y: 0}
	s.Ball.Vel = physics.Vec2{X: 1200, Y: 0}

	// 420 + 20 puts the right edge past the goal face at 442.5.
	ev, scored := s.Step(config.TickTime, object.Input{})
	if !scored {
		t.Fatal("expected a goal")
	}
	if ev.Scorer != object.SidePlayer || s.Score.Player != 1 {
		t.Errorf("event %+v, score %+v", ev, s.Score)
	}
	if s.Ball.Pos != object.BallStart {
		t.Errorf("ball at %+v after goal", s.Ball.Pos)
	}
}

func TestStepZeroDelta(t *testing.T) {
	s := NewState(object.DirectionUp)
	s.Step(0, object.Input{Down: true})

	if s.PlayerPaddle.Pos.Y != 0 || s.EnemyPaddle.Pos.Y != 0 || s.Ball.Pos != (physics.Vec2{}) {
		t.Errorf("zero step moved something: player %v enemy %v ball %+v",
			s.PlayerPaddle.Pos.Y, s.EnemyPaddle.Pos.Y, s.Ball.Pos)
	}
}

func TestBallStaysInArena(t *testing.T) {
	s := NewState(object.DirectionDown)
	goals := 0
	for i := 0; i < 60*60; i++ {
		if _, scored := s.Step(config.TickTime, object.Input{}); scored {
			goals++
		}
		p := s.Ball.Pos
		if p.X < config.LeftWall || p.X > config.RightWall || p.Y < config.BottomWall || p.Y > config.TopWall {
			t.Fatalf("tick %d: ball escaped to %+v", i, p)
		}
	}
	if s.Score.Player+s.Score.Enemy != goals {
		t.Errorf("score %+v does not match %d goals", s.Score, goals)
	}
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		want      layout
		wantEmpty bool
	}{
		{
			name: "small terminal",
			w:    80,
			h:    24,
			want: layout{termW: 80, termH: 24, renderW: 80, renderH: 22, offsetCol: 0, offsetRow: 1},
		},
		{
			name: "large terminal is centered",
			w:    200,
			h:    60,
			want: layout{termW: 200, termH: 60, renderW: 160, renderH: 50, offsetCol: 20, offsetRow: 5},
		},
		{
			name:      "too short",
			w:         40,
			h:         2,
			want:      layout{termW: 40, termH: 2, renderW: 40, renderH: 0, offsetCol: 0, offsetRow: 1},
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampTermSize(tt.w, tt.h)
			if got != tt.want {
				t.Errorf("clampTermSize(%d,%d) = %+v, want %+v", tt.w, tt.h, got, tt.want)
			}
			if got.empty() != tt.wantEmpty {
				t.Errorf("empty() = %v, want %v", got.empty(), tt.wantEmpty)
			}
		})
	}
}

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func TestRunQuits(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"end of input", ""},
		{"q key", "q"},
		{"escape", "\x1b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			score, err := Run(bufio.NewReader(strings.NewReader(tt.input)), &out, Options{
				TermSizeFunc: fixedSize(80, 24),
			})
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if score != (object.Scoreboard{}) {
				t.Errorf("score = %+v, want zero", score)
			}
			s := out.String()
			for _, want := range []string{"Player: 0", "Enemy: 0", controlsHint} {
				if !strings.Contains(s, want) {
					t.Errorf("output is missing %q", want)
				}
			}
			if !strings.HasSuffix(s, "\033[?25h") {
				t.Error("expected the cursor to be shown again on exit")
			}
		})
	}
}

func TestRunIdleTimeout(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	done := make(chan error, 1)
	go func() {
		_, err := Run(bufio.NewReader(pr), io.Discard, Options{
			TermSizeFunc: fixedSize(80, 24),
			IdleWarn:     10 * time.Millisecond,
			IdleTimeout:  50 * time.Millisecond,
		})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not end an idle session")
	}
}

func TestRunSkipsDrawingWithoutRoom(t *testing.T) {
	var out bytes.Buffer
	_, err := Run(bufio.NewReader(strings.NewReader("")), &out, Options{
		TermSizeFunc: fixedSize(0, 0),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(out.String(), "Player:") {
		t.Error("expected no HUD on a zero-size terminal")
	}
}

func TestOptionsStepTimes(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		tick  time.Duration
		frame time.Duration
	}{
		{"defaults", Options{}, config.TickTime, config.FrameTime},
		{"custom rates", Options{TickRate: 30, FrameRate: 20}, time.Second / 30, time.Second / 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.tickTime(); got != tt.tick {
				t.Errorf("tickTime = %v, want %v", got, tt.tick)
			}
			if got := tt.opts.frameTime(); got != tt.frame {
				t.Errorf("frameTime = %v, want %v", got, tt.frame)
			}
		})
	}
}

func TestKeyDismissingIdleWarningIsNotHeld(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	rn := &runner{
		opts:     Options{}.withDefaults(),
		stream:   input.StartStream(bufio.NewReader(pr), time.Hour),
		running:  true,
		idle:     true,
		lastSeen: time.Now(),
	}
	go pw.Write([]byte("w"))

	deadline := time.Now().Add(time.Second)
	for rn.idle && time.Now().Before(deadline) {
		rn.processInput(time.Now())
		time.Sleep(time.Millisecond)
	}
	if rn.idle {
		t.Fatal("key press did not dismiss the idle warning")
	}
	if rn.input.Up {
		t.Error("dismissing key moved the paddle")
	}

	rn.processInput(time.Now())
	if rn.input.Up {
		t.Error("dismissing key is still held on the next frame")
	}
	if !rn.running {
		t.Error("runner stopped")
	}
}
