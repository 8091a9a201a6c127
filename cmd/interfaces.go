package cmd

import (
	"context"
	"io"

	"github.com/anicoll/blf-reorder/internal/pkg/model"
)

// AXLService defines the interface that cmd.run expects from an AXL client.
type AXLService interface {
	GetPhone(ctx context.Context, name model.DeviceName) (*model.Phone, error)
	UpdatePhone(ctx context.Context, req model.UpdatePhoneRequest) error
}

// Prompter defines the operator prompts used at startup and by the session.
type Prompter interface {
	Line(prompt string) (string, error)
	Password(prompt string) (string, error)
	DeviceName() (string, error)
	io.Closer
}
