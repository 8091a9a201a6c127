package blf

import "github.com/anicoll/blf-reorder/internal/pkg/model"

// Assemble builds the updatePhone payload. Only the name and the entries are
// set so every other phone setting stays untouched on the server.
func Assemble(name model.DeviceName, entries []model.BusyLampField) model.UpdatePhoneRequest {
	return model.UpdatePhoneRequest{
		Name:           name,
		BusyLampFields: entries,
	}
}
