package reorder

import (
	"context"
	"errors"
	"io"

	"github.com/anicoll/blf-reorder/internal/pkg/model"
)

// MockAXLService is a mock implementation of axlService that records calls.
type MockAXLService struct {
	GetPhoneFunc    func(ctx context.Context, name model.DeviceName) (*model.Phone, error)
	UpdatePhoneFunc func(ctx context.Context, req model.UpdatePhoneRequest) error

	GetPhoneCalls    []model.DeviceName
	UpdatePhoneCalls []model.UpdatePhoneRequest
}

func (m *MockAXLService) GetPhone(ctx context.Context, name model.DeviceName) (*model.Phone, error) {
	m.GetPhoneCalls = append(m.GetPhoneCalls, name)
	if m.GetPhoneFunc != nil {
		return m.GetPhoneFunc(ctx, name)
	}
	return nil, errors.New("mocked GetPhone not implemented")
}

func (m *MockAXLService) UpdatePhone(ctx context.Context, req model.UpdatePhoneRequest) error {
	m.UpdatePhoneCalls = append(m.UpdatePhoneCalls, req)
	if m.UpdatePhoneFunc != nil {
		return m.UpdatePhoneFunc(ctx, req)
	}
	return errors.New("mocked UpdatePhone not implemented")
}

// MockPrompter answers DeviceName with inputs in order, then io.EOF.
type MockPrompter struct {
	inputs []string
	calls  int
}

func (m *MockPrompter) DeviceName() (string, error) {
	if m.calls >= len(m.inputs) {
		m.calls++
		return "", io.EOF
	}
	input := m.inputs[m.calls]
	m.calls++
	return input, nil
}
