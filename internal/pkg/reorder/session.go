// Package reorder drives one interactive sort of a phone's busy lamp fields:
// ask for a device name until a valid phone with entries is found, then
// sort the entries and write them back once.
package reorder

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/anicoll/blf-reorder/internal/pkg/axl"
	"github.com/anicoll/blf-reorder/internal/pkg/blf"
	"github.com/anicoll/blf-reorder/internal/pkg/model"
)

var (
	ErrEmptyConfiguration = errors.New("phone has no busy lamp fields")
	ErrAborted            = errors.New("aborted by operator")
)

const (
	badLengthMsg    = "INVALID: Enter the phone name as a 15-character string ('SEP<MAC>')"
	badPrefixMsg    = "INVALID: Phone name must start with SEP."
	noEntriesMsg    = "Phone must have BLFs to sort. Please try again."
	fetchFailedMsg  = "FAILED:"
	successMsg      = "SUCCESS: Device %s has been sorted successfully!\n"
	commitFailedMsg = "FAILED. Please check the log file and determine next steps."
)

type axlService interface {
	GetPhone(ctx context.Context, name model.DeviceName) (*model.Phone, error)
	UpdatePhone(ctx context.Context, req model.UpdatePhoneRequest) error
}

type prompter interface {
	DeviceName() (string, error)
}

type Session struct {
	axl    axlService
	prompt prompter
	out    io.Writer
	logger *zap.Logger

	state   State
	input   string
	name    model.DeviceName
	phone   *model.Phone
	entries []model.BusyLampField
	payload model.UpdatePhoneRequest
	failure error
}

// New returns a Session in AwaitIdentifier. Operator messages go to out.
func New(svc axlService, p prompter, out io.Writer) *Session {
	return &Session{
		axl:    svc,
		prompt: p,
		out:    out,
		logger: zap.L(), // returns the global logger.
		state:  AwaitIdentifier,
	}
}

func (s *Session) State() State {
	return s.state
}

// Run steps the session until it is Done or Failed. It also returns early
// with an error when ctx is done, when the prompt fails (ErrAborted) or when
// the server cannot be reached while fetching. A rejected commit ends in
// Failed and is never retried.
func (s *Session) Run(ctx context.Context) (State, error) {
	for !s.state.Terminal() {
		if err := ctx.Err(); err != nil {
			return s.state, err
		}
		next, err := s.step(ctx)
		if err != nil {
			return s.state, err
		}
		s.transition(next)
	}
	if s.state == Failed {
		return Failed, fmt.Errorf("sorting %s: %w", s.name, s.failure)
	}
	return Done, nil
}

func (s *Session) step(ctx context.Context) (State, error) {
	switch s.state {
	case AwaitIdentifier:
		input, err := s.prompt.DeviceName()
		if err != nil {
			return s.state, fmt.Errorf("%w: %w", ErrAborted, err)
		}
		s.input = input
		return Validating, nil

	case Validating:
		name, err := model.ParseDeviceName(s.input)
		if err != nil {
			s.logger.Debug("invalid device name", zap.String("input", s.input), zap.Error(err))
			fmt.Fprintln(s.out, invalidNameMsg(err))
			return AwaitIdentifier, nil
		}
		s.name = name
		return Fetching, nil

	case Fetching:
		return s.fetch(ctx)

	case CheckingPreconditions:
		if len(s.phone.BusyLampFields) == 0 {
			s.logger.Info("precondition failed", zap.Stringer("device", s.name), zap.Error(ErrEmptyConfiguration))
			fmt.Fprintln(s.out, noEntriesMsg)
			return AwaitIdentifier, nil
		}
		return Normalizing, nil

	case Normalizing:
		s.entries = blf.NormalizeAll(s.phone.BusyLampFields)
		return Reordering, nil

	case Reordering:
		s.entries = blf.Reorder(s.entries)
		return Assembling, nil

	case Assembling:
		s.payload = blf.Assemble(s.name, s.entries)
		return Committing, nil

	case Committing:
		return s.commit(ctx), nil
	}
	return s.state, fmt.Errorf("no step for state %s", s.state)
}

func (s *Session) fetch(ctx context.Context) (State, error) {
	phone, err := s.axl.GetPhone(ctx, s.name)
	var fault *axl.Fault
	switch {
	case errors.As(err, &fault):
		s.logger.Error("fetch rejected", zap.Stringer("device", s.name), zap.Error(err))
		fmt.Fprintln(s.out, fetchFailedMsg)
		fmt.Fprint(s.out, fault.History)
		return AwaitIdentifier, nil
	case err != nil:
		s.logger.Error("fetch failed", zap.Stringer("device", s.name), zap.Error(err))
		return s.state, fmt.Errorf("fetching %s: %w", s.name, err)
	}
	s.phone = phone
	return CheckingPreconditions, nil
}

func (s *Session) commit(ctx context.Context) State {
	err := s.axl.UpdatePhone(ctx, s.payload)
	if err == nil {
		s.logger.Info("phone sorted", zap.Stringer("device", s.name), zap.Int("entries", len(s.payload.BusyLampFields)))
		fmt.Fprintf(s.out, successMsg, s.name)
		return Done
	}

	s.failure = err
	s.logger.Error("commit rejected", zap.Stringer("device", s.name), zap.Error(err))
	fmt.Fprintln(s.out, commitFailedMsg)
	var fault *axl.Fault
	if errors.As(err, &fault) {
		fmt.Fprint(s.out, fault.History)
	}
	return Failed
}

func invalidNameMsg(err error) string {
	switch {
	case errors.Is(err, model.ErrBadLength):
		return badLengthMsg
	case errors.Is(err, model.ErrBadPrefix):
		return badPrefixMsg
	}
	return err.Error()
}

func (s *Session) transition(next State) {
	s.logger.Debug("state transition", zap.Stringer("from", s.state), zap.Stringer("to", next))
	s.state = next
}
