package input

import (
	"bufio"
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"payroll/core/ui"
	"payroll/internal/errors"
	"payroll/internal/logging"
)

const (
	// QuitSentinel requests the end of the session at any field prompt
	QuitSentinel = "End"

	confirmPrompt = "You entered 'End'. Do you want to quit? (y/n): "
	confirmRetry  = "Please enter 'y' or 'n'."
)

// Field describes how to obtain one value. Parse receives trimmed,
// non-sentinel text and returns an input error carrying the diagnostic
// to show when the text is rejected.
type Field[T any] struct {
	Name   string
	Prompt string
	Parse  func(text string) (T, error)
}

// Reader reads operator lines and writes prompts and diagnostics
type Reader struct {
	lines <-chan string
	stop  context.CancelFunc
	w     *ui.Writer
	log   *zap.Logger
}

// NewReader starts reading lines from in. Lines are handed over one at a
// time so a cancelled ctx is noticed between reads. Close releases the
// line pump once the caller is done.
func NewReader(ctx context.Context, in io.Reader, w *ui.Writer, log *zap.Logger) *Reader {
	if log == nil {
		log = logging.Logger
	}
	pumpCtx, stop := context.WithCancel(ctx)
	return &Reader{
		lines: readLines(pumpCtx, in, log),
		stop:  stop,
		w:     w,
		log:   log,
	}
}

// Close stops handing over lines. A pump blocked inside in.Read exits
// after that read returns.
func (r *Reader) Close() {
	r.stop()
}

// readLines has no line length limit; a final line without a newline is
// still delivered.
func readLines(ctx context.Context, in io.Reader, log *zap.Logger) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		br := bufio.NewReader(in)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
				select {
				case ch <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					log.Warn("reading input failed", zap.Error(err))
				}
				return
			}
		}
	}()
	return ch
}

// readLine blocks for the next line. Cancellation wins over pending input.
func (r *Reader) readLine(ctx context.Context) (string, Stop) {
	select {
	case <-ctx.Done():
		return "", Interrupted
	default:
	}

	select {
	case <-ctx.Done():
		return "", Interrupted
	case line, ok := <-r.lines:
		if !ok {
			return "", InputClosed
		}
		return line, Proceed
	}
}

// IsQuitSentinel reports whether text asks to quit
func IsQuitSentinel(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), QuitSentinel)
}

// ReadField prompts until f accepts a value or the session stops.
// Typing End opens the quit confirmation; declining re-asks the same field.
func ReadField[T any](ctx context.Context, r *Reader, f Field[T]) Result[T] {
	for {
		r.w.Prompt(f.Prompt)
		line, stop := r.readLine(ctx)
		if stop != Proceed {
			return stopped[T](stop)
		}

		text := strings.TrimSpace(line)
		if IsQuitSentinel(text) {
			quit, stop := r.Confirm(ctx)
			if stop != Proceed {
				return stopped[T](stop)
			}
			if quit {
				return stopped[T](QuitConfirmed)
			}
			continue
		}

		v, err := f.Parse(text)
		if err != nil {
			fields := []zap.Field{zap.String("field", f.Name), zap.Error(err)}
			if e, ok := err.(*errors.Error); ok && e.Context != nil {
				fields = append(fields, zap.Any("context", e.Context))
			}
			r.log.Debug("field rejected", fields...)
			r.w.Diagnostic(errors.Message(err))
			continue
		}
		return value(v)
	}
}

// Confirm asks whether the operator really wants to quit. End typed here
// is just an invalid answer.
func (r *Reader) Confirm(ctx context.Context) (bool, Stop) {
	for {
		r.w.Prompt(confirmPrompt)
		line, stop := r.readLine(ctx)
		if stop != Proceed {
			return false, stop
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, Proceed
		case "n", "no":
			return false, Proceed
		}
		r.w.Diagnostic(confirmRetry)
	}
}
