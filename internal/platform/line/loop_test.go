package line

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/render"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func newTestFrontend(in io.Reader, out *bytes.Buffer) *Frontend {
	return New(registry.Env{
		In:     in,
		Out:    out,
		Config: core.RuntimeConfig{Seed: 1},
	})
}

func TestRunInvalidThenMove(t *testing.T) {
	g := game.FromBoard(game.Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, core.RuntimeConfig{Seed: 1})

	var out bytes.Buffer
	f := newTestFrontend(strings.NewReader("x\nA\n"), &out)

	if err := f.Run(context.Background(), g); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	text := out.String()
	if strings.Count(text, render.InvalidMessage) != 1 {
		t.Errorf("expected one invalid-move message, output:\n%s", text)
	}
	if !strings.Contains(text, "SCORE: 4") {
		t.Errorf("expected score 4 after merge, output:\n%s", text)
	}
	// x, A, then the prompt that hits EOF
	if n := strings.Count(text, Prompt); n != 3 {
		t.Errorf("prompt shown %d times, want 3", n)
	}
	if g.Score() != 4 || g.Turns() != 1 {
		t.Errorf("score=%d turns=%d, want 4/1", g.Score(), g.Turns())
	}
}

func TestRunNoChangeDoesNotConsumeTurn(t *testing.T) {
	start := game.Board{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g := game.FromBoard(start, core.RuntimeConfig{Seed: 1})

	var out bytes.Buffer
	f := newTestFrontend(strings.NewReader("a\nq\n"), &out)

	if err := f.Run(context.Background(), g); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if !strings.Contains(out.String(), render.NoChangeMessage) {
		t.Errorf("expected no-change message, output:\n%s", out.String())
	}
	if g.Board() != start || g.Turns() != 0 {
		t.Errorf("no-op move changed the game: turns=%d board=%v", g.Turns(), g.Board())
	}
	// The board is printed once; a rejected move does not redraw it
	if n := strings.Count(out.String(), "SCORE: 0"); n != 1 {
		t.Errorf("board printed %d times, want 1", n)
	}
}

func TestRunWin(t *testing.T) {
	g := game.FromBoard(game.Board{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, core.RuntimeConfig{Seed: 1})

	var out bytes.Buffer
	f := newTestFrontend(strings.NewReader("a\nd\nd\n"), &out)

	if err := f.Run(context.Background(), g); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, render.WinMessage) {
		t.Errorf("expected win banner, output:\n%s", text)
	}
	if !strings.Contains(text, "SCORE: 2048") {
		t.Errorf("expected final score 2048, output:\n%s", text)
	}
	if g.Turns() != 1 {
		t.Errorf("Turns() = %d, input after the win should be ignored", g.Turns())
	}
}

func TestRunAlreadyLost(t *testing.T) {
	g := game.FromBoard(game.Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}, core.RuntimeConfig{Seed: 1})

	var out bytes.Buffer
	f := newTestFrontend(strings.NewReader(""), &out)

	if err := f.Run(context.Background(), g); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, render.LoseMessage) {
		t.Errorf("expected loss banner, output:\n%s", text)
	}
	if strings.Contains(text, Prompt) {
		t.Error("a finished game should not prompt")
	}
}

func TestRunCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	g := game.New(core.RuntimeConfig{Seed: 5})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	f := newTestFrontend(pr, &out)

	if err := f.Run(ctx, g); err != nil {
		t.Fatalf("Run() with cancelled context = %v, want nil", err)
	}
	if g.Turns() != 0 {
		t.Errorf("Turns() = %d after cancellation, want 0", g.Turns())
	}
}

func TestRunReadError(t *testing.T) {
	boom := errors.New("boom")
	g := game.New(core.RuntimeConfig{Seed: 5})

	var out bytes.Buffer
	f := newTestFrontend(iotest.ErrReader(boom), &out)

	err := f.Run(context.Background(), g)
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want wrapped boom", err)
	}
}

func TestRunOverlongLineIsInvalid(t *testing.T) {
	g := game.FromBoard(game.Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, core.RuntimeConfig{Seed: 1})

	// Longer than bufio's default buffer and bufio.Scanner's token limit
	input := strings.Repeat("w", 70*1024) + "\na\n"

	var out bytes.Buffer
	f := newTestFrontend(strings.NewReader(input), &out)

	if err := f.Run(context.Background(), g); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	text := out.String()
	if strings.Count(text, render.InvalidMessage) != 1 {
		t.Errorf("expected one invalid-move message, output:\n%s", text)
	}
	if g.Score() != 4 || g.Turns() != 1 {
		t.Errorf("score=%d turns=%d, want 4/1", g.Score(), g.Turns())
	}
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"crlf", "w\r\nd\r\n", []string{"w", "d"}},
		{"no trailing newline", "w\na", []string{"w", "a"}},
		{"truncated", strings.Repeat("x", 5000) + "\nq\n", []string{strings.Repeat("x", maxTokenLen), "q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			br := bufio.NewReaderSize(strings.NewReader(tt.input), 16)
			var got []string
			for {
				line, err := readLine(br)
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					t.Fatalf("readLine() failed: %v", err)
				}
				got = append(got, line)
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("frontend %q not registered", ID)
	}

	fe, err := registry.Create(ID, registry.Env{In: strings.NewReader(""), Out: io.Discard})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if fe.ID() != ID {
		t.Errorf("ID() = %q, want %q", fe.ID(), ID)
	}
}
