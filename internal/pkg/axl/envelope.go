package axl

import (
	"encoding/xml"

	"github.com/hooklift/gowsdl/soap"
)

// faultEnvelope picks the AXL error detail out of a fault response. Tags use
// local names so any namespace prefix works.
type faultEnvelope struct {
	AXLError struct {
		Code    int    `xml:"axlcode"`
		Message string `xml:"axlmessage"`
		Request string `xml:"request"`
	} `xml:"Body>Fault>detail>axlError"`
}

func newFault(operation string, sf *soap.SOAPFault, history History) *Fault {
	fault := &Fault{
		Operation: operation,
		Code:      sf.Code,
		Message:   sf.String,
		History:   history,
	}
	env := faultEnvelope{}
	if err := xml.Unmarshal(history.LastReceived, &env); err == nil {
		fault.AXLCode = env.AXLError.Code
		fault.AXLMessage = env.AXLError.Message
	}
	return fault
}
