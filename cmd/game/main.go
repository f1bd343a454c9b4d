package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/tomz197/goalpong/internal/config"
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

	// The terminal is the game screen, so logs only go to the file.
	log, err := logging.New(settings.Log, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close(log)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}

	score, err := loop.Run(bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		TickRate:       settings.TickRate,
		FrameRate:      settings.FrameRate,
		HoldDuration:   settings.HoldDuration,
		EnemyDirection: object.RandomDirection(object.NewRand(settings.EnemySeed)),
		Log:            log.WithField("session", "local"),
	})
	_ = term.Restore(fd, oldState)

	if err != nil {
		log.WithError(err).Error("game ended with an error")
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{
		"player_score": score.Player,
		"enemy_score":  score.Enemy,
	}).Info("game over")
	fmt.Printf("Player: %d  Enemy: %d\n", score.Player, score.Enemy)
}
