package axl

import (
	"context"
	"encoding/xml"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/anicoll/blf-reorder/internal/pkg/model"
)

const (
	getPhone    = "getPhone"
	updatePhone = "updatePhone"
)

// ################################
// getPhone

type getPhoneRequest struct {
	XMLName xml.Name `xml:"ns:getPhone"`
	NS      string   `xml:"xmlns:ns,attr"`
	Name    string   `xml:"name"`
}

type getPhoneResponse struct {
	Return struct {
		Phone wirePhone `xml:"phone"`
	} `xml:"return"`
}

type wirePhone struct {
	UUID           string              `xml:"uuid,attr"`
	Name           string              `xml:"name"`
	Description    string              `xml:"description"`
	Model          string              `xml:"model"`
	BusyLampFields *wireBusyLampFields `xml:"busyLampFields"`
}

// ################################

// ################################
// updatePhone

type updatePhoneRequest struct {
	XMLName        xml.Name           `xml:"ns:updatePhone"`
	NS             string             `xml:"xmlns:ns,attr"`
	Name           string             `xml:"name"`
	BusyLampFields wireBusyLampFields `xml:"busyLampFields"`
}

type updatePhoneResponse struct {
	// Return is the uuid of the updated phone.
	Return string `xml:"return"`
}

// ################################

type wireBusyLampFields struct {
	BusyLampField []wireBusyLampField `xml:"busyLampField"`
}

// Element order follows the AXL schema.
type wireBusyLampField struct {
	Destination     *string       `xml:"blfDest,omitempty"`
	DirectoryNumber *string       `xml:"blfDirn,omitempty"`
	RoutePartition  *string       `xml:"routePartition,omitempty"`
	Label           string        `xml:"label"`
	Features        *wireFeatures `xml:"associatedBlfSdFeatures,omitempty"`
	Index           *int          `xml:"index,omitempty"`
}

type wireFeatures struct {
	Feature []string `xml:"feature"`
}

// GetPhone fetches the phone called name.
func (s *service) GetPhone(ctx context.Context, name model.DeviceName) (*model.Phone, error) {
	res := getPhoneResponse{}
	if err := s.call(ctx, getPhone, &getPhoneRequest{NS: s.namespace(), Name: name.String()}, &res); err != nil {
		return nil, err
	}

	wp := res.Return.Phone
	phone := &model.Phone{
		UUID:        wp.UUID,
		Name:        wp.Name,
		Description: wp.Description,
		Model:       wp.Model,
	}
	if wp.BusyLampFields != nil && len(wp.BusyLampFields.BusyLampField) > 0 {
		phone.BusyLampFields = lo.Map(wp.BusyLampFields.BusyLampField, func(w wireBusyLampField, _ int) model.RawBusyLampField {
			return w.toModel()
		})
	}
	s.logger.Info("fetched phone", zap.String("device", phone.Name), zap.Int("entries", len(phone.BusyLampFields)))
	return phone, nil
}

// UpdatePhone writes req back. Only the name and the busy lamp fields are sent.
func (s *service) UpdatePhone(ctx context.Context, req model.UpdatePhoneRequest) error {
	res := updatePhoneResponse{}
	if err := s.call(ctx, updatePhone, &updatePhoneRequest{
		NS:   s.namespace(),
		Name: req.Name.String(),
		BusyLampFields: wireBusyLampFields{
			BusyLampField: lo.Map(req.BusyLampFields, func(b model.BusyLampField, _ int) wireBusyLampField {
				return fromModel(b.Raw())
			}),
		},
	}, &res); err != nil {
		return err
	}
	s.logger.Info("updated phone",
		zap.String("device", req.Name.String()),
		zap.String("uuid", res.Return),
		zap.Int("entries", len(req.BusyLampFields)),
	)
	return nil
}

func (w wireBusyLampField) toModel() model.RawBusyLampField {
	raw := model.RawBusyLampField{
		Index:           w.Index,
		Label:           w.Label,
		Destination:     present(w.Destination),
		DirectoryNumber: present(w.DirectoryNumber),
		RoutePartition:  present(w.RoutePartition),
	}
	if w.Features != nil && len(w.Features.Feature) > 0 {
		raw.Features = w.Features.Feature
	}
	return raw
}

func fromModel(raw model.RawBusyLampField) wireBusyLampField {
	w := wireBusyLampField{
		Index:           raw.Index,
		Label:           raw.Label,
		Destination:     raw.Destination,
		DirectoryNumber: raw.DirectoryNumber,
		RoutePartition:  raw.RoutePartition,
	}
	if len(raw.Features) > 0 {
		w.Features = &wireFeatures{Feature: raw.Features}
	}
	return w
}

// present maps an empty element to absent.
func present(v *string) *string {
	if strings.TrimSpace(lo.FromPtr(v)) == "" {
		return nil
	}
	return v
}
