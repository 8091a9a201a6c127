package cmd

import (
	"context"
	"errors"

	"github.com/anicoll/blf-reorder/internal/pkg/model"
)

// MockAXLService is a mock implementation of the AXLService interface.
type MockAXLService struct {
	GetPhoneFunc    func(ctx context.Context, name model.DeviceName) (*model.Phone, error)
	UpdatePhoneFunc func(ctx context.Context, req model.UpdatePhoneRequest) error
}

func (m *MockAXLService) GetPhone(ctx context.Context, name model.DeviceName) (*model.Phone, error) {
	if m.GetPhoneFunc != nil {
		return m.GetPhoneFunc(ctx, name)
	}
	return nil, errors.New("mocked GetPhone not implemented")
}

func (m *MockAXLService) UpdatePhone(ctx context.Context, req model.UpdatePhoneRequest) error {
	if m.UpdatePhoneFunc != nil {
		return m.UpdatePhoneFunc(ctx, req)
	}
	return errors.New("mocked UpdatePhone not implemented")
}

// MockPrompter is a mock implementation of the Prompter interface.
type MockPrompter struct {
	LineFunc       func(prompt string) (string, error)
	PasswordFunc   func(prompt string) (string, error)
	DeviceNameFunc func() (string, error)
	CloseFunc      func() error
}

func (m *MockPrompter) Line(prompt string) (string, error) {
	if m.LineFunc != nil {
		return m.LineFunc(prompt)
	}
	return "", errors.New("mocked Line not implemented")
}

func (m *MockPrompter) Password(prompt string) (string, error) {
	if m.PasswordFunc != nil {
		return m.PasswordFunc(prompt)
	}
	return "", errors.New("mocked Password not implemented")
}

func (m *MockPrompter) DeviceName() (string, error) {
	if m.DeviceNameFunc != nil {
		return m.DeviceNameFunc()
	}
	return "", errors.New("mocked DeviceName not implemented")
}

func (m *MockPrompter) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
