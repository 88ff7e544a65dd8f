// Package session - Interactive payroll session
// Collects employees until the operator quits or the session is
// interrupted, then prints the accumulated totals exactly once.
package session

import (
	"context"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"payroll/core/input"
	"payroll/core/payroll"
	"payroll/core/ui"
	"payroll/internal/logging"
)

// Session owns the running totals. Nothing outside Run mutates them.
type Session struct {
	ID     string
	w      *ui.Writer
	log    *zap.Logger
	totals payroll.Totals
}

// New creates a session writing to w
func New(w *ui.Writer, log *zap.Logger) *Session {
	if log == nil {
		log = logging.Logger
	}
	id := uuid.NewString()
	return &Session{
		ID:  id,
		w:   w,
		log: log.With(zap.String("session_id", id)),
	}
}

// Totals returns a copy of the accumulated totals
func (s *Session) Totals() payroll.Totals {
	return s.totals
}

// Run drives the session over in until it terminates and returns why.
// Termination always prints the cause notice followed by the totals.
func (s *Session) Run(ctx context.Context, in io.Reader) ui.Cause {
	s.log.Info("session started")
	s.w.Banner()

	r := input.NewReader(ctx, in, s.w, s.log)
	defer r.Close()
	var stop input.Stop
	for {
		var e payroll.Employee
		e, stop = collect(ctx, r)
		if stop != input.Proceed {
			break
		}
		pay := e.Pay()
		s.w.Employee(e, pay)
		s.totals.Add(e, pay)
		s.log.Info("employee accumulated",
			zap.String("name", e.Name),
			zap.String("gross", pay.Gross.String()),
			zap.String("net", pay.Net.String()),
			zap.Int("count", s.totals.Count))
	}

	cause := causeOf(stop)
	s.w.Notice(cause)
	s.w.Totals(s.totals)
	s.log.Info("session terminated", zap.Stringer("cause", cause), zap.Int("count", s.totals.Count))
	return cause
}

// collect reads one employee in field order. Any stop abandons the record.
func collect(ctx context.Context, r *input.Reader) (payroll.Employee, input.Stop) {
	name := input.ReadField(ctx, r, input.Name())
	if !name.OK() {
		return payroll.Employee{}, name.Stop
	}
	hours := input.ReadField(ctx, r, input.Hours())
	if !hours.OK() {
		return payroll.Employee{}, hours.Stop
	}
	rate := input.ReadField(ctx, r, input.HourlyRate())
	if !rate.OK() {
		return payroll.Employee{}, rate.Stop
	}
	tax := input.ReadField(ctx, r, input.TaxRate())
	if !tax.OK() {
		return payroll.Employee{}, tax.Stop
	}
	return payroll.Employee{
		Name:       name.Value,
		Hours:      hours.Value,
		HourlyRate: rate.Value,
		TaxRate:    tax.Value,
	}, input.Proceed
}

func causeOf(s input.Stop) ui.Cause {
	switch s {
	case input.QuitConfirmed:
		return ui.CauseQuit
	case input.Interrupted:
		return ui.CauseInterrupted
	default:
		return ui.CauseInputClosed
	}
}
