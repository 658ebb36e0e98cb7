// Package line implements the line-oriented game loop: print the board,
// read one token per turn, re-prompt on bad input. It works on any
// io.Reader/io.Writer pair, so it also serves pipes and tests.
package line

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/render"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// ID is the registry identifier of this frontend.
const ID = "line"

// Prompt is printed before every read.
const Prompt = "ENTER THE MOVE (w=up, a=left, s=down, d=right, q=quit): "

func init() {
	registry.Register(ID, "Line prompt", func(env registry.Env) registry.Frontend {
		return New(env)
	})
}

// Frontend is the prompt-driven game loop.
type Frontend struct {
	in       io.Reader
	out      io.Writer
	renderer *render.Renderer
	logger   *log.Logger
}

// New creates a line frontend bound to env.
func New(env registry.Env) *Frontend {
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Frontend{
		in:       env.In,
		out:      env.Out,
		renderer: render.New(env.Out, env.Config.ColorEnabled),
		logger:   logger.WithPrefix("t2048/" + ID),
	}
}

// ID returns the frontend identifier.
func (f *Frontend) ID() string {
	return ID
}

// Title returns the display name.
func (f *Frontend) Title() string {
	return "Line prompt"
}

// Run plays until the game ends, the player quits, input runs out or ctx
// is cancelled. Running out of input or being interrupted is not an error.
func (f *Frontend) Run(ctx context.Context, g *game.Game) error {
	f.logger.Info("session started", "color", f.renderer.ColorEnabled())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	tokens := readTokens(ctx, f.in)

	for {
		f.printf("%s%s\n", f.renderer.Board(g.Board()), f.renderer.Score(g.Score()))

		status := g.Status()
		if status.Terminal() {
			f.printf("%s\n", f.renderer.Outcome(status))
			return nil
		}

		quit, err := f.turn(ctx, g, tokens)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// turn prompts until one move changes the board.
// Returns quit=true when the session should stop early.
func (f *Frontend) turn(ctx context.Context, g *game.Game, tokens <-chan tokenResult) (quit bool, err error) {
	for {
		f.printf("%s", Prompt)

		var tok tokenResult
		var ok bool
		select {
		case <-ctx.Done():
			f.printf("\n")
			f.logger.Info("interrupted", "reason", ctx.Err())
			return true, nil
		case tok, ok = <-tokens:
		}

		if !ok {
			f.printf("\n")
			f.logger.Info("input closed")
			return true, nil
		}
		if tok.err != nil {
			return true, fmt.Errorf("line: reading input: %w", tok.err)
		}

		action := core.ActionFromKey(tok.text)
		if action == core.ActionQuit {
			f.logger.Info("player quit")
			return true, nil
		}

		dir, valid := game.DirectionFor(action)
		if !valid {
			f.logger.Debug("invalid token", "token", tok.text)
			f.printf("%s\n", f.renderer.Notice(render.InvalidMessage))
			continue
		}

		res := g.Play(dir)
		f.logger.Debug("move", "dir", dir, "changed", res.Changed, "gained", res.Gained, "status", res.Status)

		if !res.Changed {
			f.printf("%s\n", f.renderer.Notice(render.NoChangeMessage))
			continue
		}
		return false, nil
	}
}

// printf writes to the output, ignoring write errors the way fmt.Printf callers do.
func (f *Frontend) printf(format string, args ...any) {
	//nolint:errcheck // Terminal output is best-effort
	fmt.Fprintf(f.out, format, args...)
}

// tokenResult is one input line or a read error.
type tokenResult struct {
	text string
	err  error
}

// maxTokenLen caps how much of one input line is kept. Longer lines are
// truncated, which makes them invalid tokens rather than read errors.
const maxTokenLen = 64

// readTokens reads lines in a goroutine so the loop can also wait on ctx.
// The channel is closed at EOF; a read error is delivered before closing.
// The goroutine stops at the next line once ctx is done.
func readTokens(ctx context.Context, r io.Reader) <-chan tokenResult {
	ch := make(chan tokenResult)
	go func() {
		defer close(ch)
		br := bufio.NewReader(r)
		for {
			res := tokenResult{}
			res.text, res.err = readLine(br)
			if errors.Is(res.err, io.EOF) {
				return
			}
			select {
			case ch <- res:
			case <-ctx.Done():
				return
			}
			if res.err != nil {
				return
			}
		}
	}()
	return ch
}

// readLine returns the next line without its line ending, keeping at most
// maxTokenLen bytes of it. The remainder of a long line is consumed.
func readLine(br *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return "", err
		}
		if room := maxTokenLen - sb.Len(); room > 0 {
			sb.Write(chunk[:min(len(chunk), room)])
		}
		if !isPrefix {
			return sb.String(), nil
		}
	}
}
