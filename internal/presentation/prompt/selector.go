package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	derr "github.com/ozzus/team-fixtures/internal/domain/errors"
	"go.uber.org/zap"
)

const invalidInput = "Invalid input, please try again."

type Selector struct {
	log *zap.Logger
	in  *bufio.Reader
	out io.Writer
	// maxAttempts bounds rejected answers per Select; zero means no bound.
	maxAttempts int
}

func NewSelector(log *zap.Logger, in io.Reader, out io.Writer, maxAttempts int) *Selector {
	if maxAttempts < 0 {
		maxAttempts = 0
	}
	return &Selector{
		log:         log,
		in:          bufio.NewReader(in),
		out:         out,
		maxAttempts: maxAttempts,
	}
}

// Select lists options with 1-based numbers and returns the chosen one.
func (s *Selector) Select(ctx context.Context, options []string, promptText string) (string, error) {
	const op = "prompt.Select"

	if len(options) == 0 {
		return "", fmt.Errorf("%s: %w", op, derr.ErrNoOptions)
	}

	for i, option := range options {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, option)
	}

	for attempt := 1; ; attempt++ {
		line, err := s.ReadLine(ctx, promptText)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}

		if idx, ok := parseChoice(line, len(options)); ok {
			return options[idx], nil
		}

		s.log.Debug("selection rejected", zap.String("input", line), zap.Int("attempt", attempt))
		fmt.Fprintln(s.out, invalidInput)

		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return "", fmt.Errorf("%s: %w", op, derr.ErrTooManyAttempts)
		}
	}
}

type readResult struct {
	line string
	err  error
}

// ReadLine prints promptText and returns one line without its line ending.
// A final line without a newline is still returned; EOF with nothing read is
// ErrInputClosed. Cancelling ctx abandons the pending read.
func (s *Selector) ReadLine(ctx context.Context, promptText string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(s.out, promptText)

	done := make(chan readResult, 1)
	go func() {
		line, err := s.in.ReadString('\n')
		done <- readResult{line: line, err: err}
	}()

	var res readResult
	select {
	case <-ctx.Done():
		fmt.Fprintln(s.out)
		return "", ctx.Err()
	case res = <-done:
	}

	if res.err != nil {
		if !errors.Is(res.err, io.EOF) {
			return "", fmt.Errorf("read input: %w", res.err)
		}
		if res.line == "" {
			fmt.Fprintln(s.out)
			return "", derr.ErrInputClosed
		}
	}

	return strings.TrimRight(res.line, "\r\n"), nil
}

func parseChoice(line string, n int) (int, bool) {
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false
	}
	idx := choice - 1
	if idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}
