package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	wishlog "github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tomz197/goalpong/internal/config"
	"github.com/tomz197/goalpong/internal/draw"
	"github.com/tomz197/goalpong/internal/logging"
	"github.com/tomz197/goalpong/internal/loop"
	"github.com/tomz197/goalpong/internal/object"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(settings.Log, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close(log)

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		log.WithError(workErr).Warn("failed to get working directory")
	}
	log.WithFields(logrus.Fields{
		"host":         settings.SSH.Host,
		"port":         settings.SSH.Port,
		"host_key":     settings.SSH.HostKey,
		"idle_timeout": settings.SSH.IdleTimeout.String(),
		"working_dir":  workingDir,
	}).Info("ssh config")

	sessions := newSessionSet()
	games := &gameHandler{
		log:      log,
		settings: settings,
		sessions: sessions,
		rng:      object.NewRand(settings.EnemySeed),
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(settings.SSH.Host, settings.SSH.Port)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			wishlog.MiddlewareWithLogger(log),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if settings.SSH.HostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSH.HostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.WithError(err).Fatal("failed to create server")
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Infof("Starting SSH server on %s", net.JoinHostPort(settings.SSH.Host, settings.SSH.Port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-done
	log.Info("Shutting down server...")

	// Ending the sessions lets each match loop see end of input and return.
	if n := sessions.closeAll(); n > 0 {
		log.WithField("sessions", n).Info("closed active sessions")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown error")
	}
}

// gameHandler runs one independent match per SSH session.
type gameHandler struct {
	log      *logrus.Logger
	settings config.Settings
	sessions *sessionSet

	mu  sync.Mutex
	rng *rand.Rand
}

// enemyDirection draws the next enemy start direction from the shared source.
func (g *gameHandler) enemyDirection() object.Direction {
	g.mu.Lock()
	defer g.mu.Unlock()
	return object.RandomDirection(g.rng)
}

// middleware handles SSH sessions and runs the game.
func (g *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		id := uuid.NewString()
		entry := g.log.WithFields(logrus.Fields{
			"session": id,
			"user":    sess.User(),
			"term":    pty.Term,
		})
		entry.WithField("size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height)).Info("session started")

		g.sessions.add(id, sess)
		defer g.sessions.remove(id)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		idle := g.settings.SSH.IdleTimeout
		score, err := loop.Run(bufio.NewReader(sess), sess, loop.Options{
			TermSizeFunc:   sizeTracker.getSize,
			TickRate:       g.settings.TickRate,
			FrameRate:      g.settings.FrameRate,
			HoldDuration:   g.settings.HoldDuration,
			IdleWarn:       idle * 3 / 4,
			IdleTimeout:    idle,
			EnemyDirection: g.enemyDirection(),
			Log:            entry,
		})
		if err != nil {
			entry.WithError(err).Error("game error")
		}

		entry.WithFields(logrus.Fields{
			"player_score": score.Player,
			"enemy_score":  score.Enemy,
		}).Info("session ended")
		next(sess)
	}
}

// sessionSet tracks live sessions so shutdown can end them.
type sessionSet struct {
	mu       sync.Mutex
	sessions map[string]ssh.Session
}

func newSessionSet() *sessionSet {
	return &sessionSet{sessions: make(map[string]ssh.Session)}
}

func (s *sessionSet) add(id string, sess ssh.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

func (s *sessionSet) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// closeAll tells every player the server is going away and closes their
// sessions. It returns how many were closed.
func (s *sessionSet) closeAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		draw.ClearScreen(sess)
		fmt.Fprintln(sess, "Server is shutting down. Thanks for playing!")
		_ = sess.Close()
	}
	return len(s.sessions)
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
