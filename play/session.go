package play

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/sweeper/game"
)

// Session holds the current game of one terminal play-through and swaps it
// for the controller's successor after every move.
type Session struct {
	config   Config
	rand     *rand.Rand
	director game.Director
	game     *game.Game
	out      io.Writer

	now func() time.Time
}

func NewSession(config Config, out io.Writer) (*Session, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	session := &Session{
		config: config,
		rand:   rand.New(rand.NewSource(config.seed())),
		out:    out,
		now:    time.Now,
	}
	session.director = config.newDirector(session.rand.Int63())

	if err := session.reset(); err != nil {
		return nil, err
	}
	return session, nil
}

func (session *Session) Game() *game.Game {
	return session.game
}

func (session *Session) reset() error {
	g, err := session.config.createGame(session.rand)
	if err != nil {
		return err
	}
	session.game = g
	return nil
}

// Play applies move to the current game
func (session *Session) Play(move game.Move) error {
	next, err := session.game.Apply(move)
	if err != nil {
		return err
	}
	if next == session.game {
		return nil
	}

	session.game = next
	if next.Status().IsOver() {
		session.onGameEnd()
	}
	return nil
}

func (session *Session) onGameEnd() {
	path, err := session.config.saveSnapshot(session.game, session.now())
	if err != nil {
		log.WithError(err).Error("could not save snapshot")
		return
	}
	if path != "" {
		log.WithFields(logrus.Fields{
			"path":   path,
			"status": session.game.Status(),
		}).Info("saved snapshot")
	}
}

// Run plays until the input ends or the player quits. With a director
// configured, the director plays a single game to the end instead.
func (session *Session) Run(in io.Reader) error {
	if session.director != nil {
		return session.runDirector()
	}

	if err := Render(session.out, session.game); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd, err := parseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(session.out, err)
			continue
		}

		switch cmd.kind {
		case cmdQuit:
			return nil
		case cmdHelp:
			fmt.Fprint(session.out, helpText)
			continue
		case cmdNew:
			if err := session.reset(); err != nil {
				return err
			}
		case cmdMove:
			if err := session.Play(cmd.move); err != nil {
				fmt.Fprintln(session.out, err)
				continue
			}
		}

		if err := Render(session.out, session.game); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (session *Session) runDirector() error {
	for session.game.Status() == game.Playing {
		move, ok := session.director.Next(session.game)
		if !ok {
			break
		}

		log.WithField("move", move).Debug("director move")
		if err := session.Play(move); err != nil {
			return err
		}
	}
	return Render(session.out, session.game)
}
