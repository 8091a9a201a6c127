package reorder

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/anicoll/blf-reorder/internal/pkg/axl"
	"github.com/anicoll/blf-reorder/internal/pkg/model"
)

const validName = "SEPAABBCCDDEEFF"

func newTestSession(t *testing.T, svc axlService, inputs ...string) (*Session, *bytes.Buffer, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	originalLogger := zap.L()
	zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(func() {
		zap.ReplaceGlobals(originalLogger)
	})

	out := &bytes.Buffer{}
	return New(svc, &MockPrompter{inputs: inputs}, out), out, logs
}

func phoneWith(labels ...string) *model.Phone {
	phone := &model.Phone{Name: validName}
	for i, label := range labels {
		phone.BusyLampFields = append(phone.BusyLampFields, model.RawBusyLampField{
			Index:       lo.ToPtr(i + 1),
			Label:       label,
			Destination: lo.ToPtr("55510" + label),
		})
	}
	return phone
}

func testFault(operation string) *axl.Fault {
	return &axl.Fault{
		Operation: operation,
		Code:      "soapenv:Client",
		Message:   "Item not valid",
		AXLCode:   5007,
		History: axl.History{
			LastSent:     []byte("<sent/>"),
			LastReceived: []byte("<received/>"),
		},
	}
}

func TestRun_SortsAndCommits(t *testing.T) {
	svc := &MockAXLService{
		GetPhoneFunc: func(ctx context.Context, name model.DeviceName) (*model.Phone, error) {
			return phoneWith("Zed", "amy", "Bob"), nil
		},
		UpdatePhoneFunc: func(ctx context.Context, req model.UpdatePhoneRequest) error {
			return nil
		},
	}
	s, out, _ := newTestSession(t, svc, validName)

	state, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Done, state)
	assert.Equal(t, Done, s.State())

	require.Len(t, svc.UpdatePhoneCalls, 1)
	req := svc.UpdatePhoneCalls[0]
	assert.Equal(t, model.DeviceName(validName), req.Name)
	require.Len(t, req.BusyLampFields, 3)
	for i, label := range []string{"amy", "Bob", "Zed"} {
		assert.Equal(t, i+1, req.BusyLampFields[i].Index)
		assert.Equal(t, label, req.BusyLampFields[i].Label)
		assert.Equal(t, model.DestinationTarget{Number: "55510" + label}, req.BusyLampFields[i].Target)
	}
	assert.Contains(t, out.String(), "SUCCESS: Device SEPAABBCCDDEEFF has been sorted successfully!")
}

func TestRun_BadLengthReprompts(t *testing.T) {
	svc := &MockAXLService{}
	s, out, _ := newTestSession(t, svc, "SEPAABBCCDDEE1")

	state, err := s.Run(context.Background())
	assert.ErrorIs(t, err, ErrAborted)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, AwaitIdentifier, state)
	assert.Empty(t, svc.GetPhoneCalls)
	assert.Contains(t, out.String(), "INVALID: Enter the phone name as a 15-character string ('SEP<MAC>')")
}

func TestRun_BadPrefixThenValid(t *testing.T) {
	svc := &MockAXLService{
		GetPhoneFunc: func(ctx context.Context, name model.DeviceName) (*model.Phone, error) {
			return phoneWith("b", "a"), nil
		},
		UpdatePhoneFunc: func(ctx context.Context, req model.UpdatePhoneRequest) error {
			return nil
		},
	}
	s, out, _ := newTestSession(t, svc, "ATAAABBCCDDEEFF", validName)

	state, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Done, state)
	assert.Equal(t, []model.DeviceName{validName}, svc.GetPhoneCalls)
	assert.Contains(t, out.String(), "INVALID: Phone name must start with SEP.")
}

func TestRun_EmptyConfigurationReprompts(t *testing.T) {
	svc := &MockAXLService{
		GetPhoneFunc: func(ctx context.Context, name model.DeviceName) (*model.Phone, error) {
			return &model.Phone{Name: name.String()}, nil
		},
	}
	s, out, _ := newTestSession(t, svc, validName)

	state, err := s.Run(context.Background())
	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, AwaitIdentifier, state)
	assert.Len(t, svc.GetPhoneCalls, 1)
	assert.Empty(t, svc.UpdatePhoneCalls)
	assert.Contains(t, out.String(), "Phone must have BLFs to sort. Please try again.")
}

func TestRun_EmptyConfigurationThenPopulatedDevice(t *testing.T) {
	const other = "SEP001122334455"
	svc := &MockAXLService{
		GetPhoneFunc: func(ctx context.Context, name model.DeviceName) (*model.Phone, error) {
			if name == validName {
				return &model.Phone{Name: validName}, nil
			}
			phone := phoneWith("x")
			phone.Name = other
			return phone, nil
		},
		UpdatePhoneFunc: func(ctx context.Context, req model.UpdatePhoneRequest) error {
			return nil
		},
	}
	s, _, _ := newTestSession(t, svc, validName, other)

	state, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Done, state)
	assert.Equal(t, []model.DeviceName{validName, other}, svc.GetPhoneCalls)
	require.Len(t, svc.UpdatePhoneCalls, 1)
	assert.Equal(t, model.DeviceName(other), svc.UpdatePhoneCalls[0].Name)
}

func TestRun_FetchFaultReprompts(t *testing.T) {
	calls := 0
	svc := &MockAXLService{
		GetPhoneFunc: func(ctx context.Context, name model.DeviceName) (*model.Phone, error) {
			calls++
			if calls == 1 {
				return nil, testFault("getPhone")
			}
			return phoneWith("a"), nil
		},
		UpdatePhoneFunc: func(ctx context.Context, req model.UpdatePhoneRequest) error {
			return nil
		},
	}
	s, out, logs := newTestSession(t, svc, validName, validName)

	state, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Done, state)
	assert.Len(t, svc.GetPhoneCalls, 2)
	assert.Contains(t, out.String(), "FAILED:\n<sent></sent>\n<received></received>\n")
	assert.Equal(t, 1, logs.FilterMessage("fetch rejected").Len())
}

func TestRun_FetchTransportErrorStops(t *testing.T) {
	unreachable := errors.New("dial tcp: connection refused")
	svc := &MockAXLService{
		GetPhoneFunc: func(ctx context.Context, name model.DeviceName) (*model.Phone, error) {
			return nil, unreachable
		},
	}
	s, _, _ := newTestSession(t, svc, validName, validName)

	state, err := s.Run(context.Background())
	assert.ErrorIs(t, err, unreachable)
	assert.Equal(t, Fetching, state)
	assert.Len(t, svc.GetPhoneCalls, 1)
}

func TestRun_CommitFaultFails(t *testing.T) {
	svc := &MockAXLService{
		GetPhoneFunc: func(ctx context.Context, name model.DeviceName) (*model.Phone, error) {
			return phoneWith("b", "a"), nil
		},
		UpdatePhoneFunc: func(ctx context.Context, req model.UpdatePhoneRequest) error {
			return testFault("updatePhone")
		},
	}
	// a second name is queued to prove the commit is not retried.
	s, out, logs := newTestSession(t, svc, validName, validName)

	state, err := s.Run(context.Background())
	assert.Equal(t, Failed, state)
	assert.Equal(t, Failed, s.State())

	var fault *axl.Fault
	require.True(t, errors.As(err, &fault))
	assert.Equal(t, "updatePhone", fault.Operation)
	assert.Len(t, svc.GetPhoneCalls, 1)
	assert.Len(t, svc.UpdatePhoneCalls, 1)
	assert.Contains(t, out.String(), "FAILED. Please check the log file and determine next steps.\n<sent></sent>\n<received></received>\n")
	assert.NotContains(t, out.String(), "SUCCESS")
	assert.Equal(t, 1, logs.FilterMessage("commit rejected").Len())
}

func TestRun_CommitTransportErrorFails(t *testing.T) {
	svc := &MockAXLService{
		GetPhoneFunc: func(ctx context.Context, name model.DeviceName) (*model.Phone, error) {
			return phoneWith("a"), nil
		},
	}
	s, out, _ := newTestSession(t, svc, validName)

	state, err := s.Run(context.Background())
	assert.Equal(t, Failed, state)
	assert.Error(t, err)
	assert.Contains(t, out.String(), "FAILED. Please check the log file")
}

func TestRun_ContextCancelled(t *testing.T) {
	svc := &MockAXLService{}
	s, _, _ := newTestSession(t, svc, validName)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state, err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, AwaitIdentifier, state)
	assert.Empty(t, svc.GetPhoneCalls)
}

func TestRun_LogsEveryTransition(t *testing.T) {
	svc := &MockAXLService{
		GetPhoneFunc: func(ctx context.Context, name model.DeviceName) (*model.Phone, error) {
			return phoneWith("a"), nil
		},
		UpdatePhoneFunc: func(ctx context.Context, req model.UpdatePhoneRequest) error {
			return nil
		},
	}
	s, _, logs := newTestSession(t, svc, validName)

	_, err := s.Run(context.Background())
	require.NoError(t, err)

	var path []string
	for _, entry := range logs.FilterMessage("state transition").All() {
		path = append(path, entry.ContextMap()["to"].(string))
	}
	assert.Equal(t, []string{
		"validating", "fetching", "checking_preconditions", "normalizing",
		"reordering", "assembling", "committing", "done",
	}, path)
}

func TestState_Terminal(t *testing.T) {
	assert.True(t, Done.Terminal())
	assert.True(t, Failed.Terminal())
	for _, s := range []State{AwaitIdentifier, Validating, Fetching, CheckingPreconditions, Normalizing, Reordering, Assembling, Committing} {
		assert.False(t, s.Terminal(), s.String())
	}
}

func TestInvalidNameMsg(t *testing.T) {
	tests := map[string]struct {
		input string
		want  string
	}{
		"bad length": {
			input: "SEP123",
			want:  "INVALID: Enter the phone name as a 15-character string ('SEP<MAC>')",
		},
		"bad prefix": {
			input: "ATAAABBCCDDEEFF",
			want:  "INVALID: Phone name must start with SEP.",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := model.ParseDeviceName(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.want, invalidNameMsg(err))
			assert.NotEqual(t, tt.want, err.Error())
		})
	}
}
