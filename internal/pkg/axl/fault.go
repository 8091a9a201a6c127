package axl

import "fmt"

// Fault is a SOAP fault returned by the server. History holds the exchange
// that produced it so an operator can see what was rejected.
type Fault struct {
	Operation  string
	Code       string
	Message    string
	AXLCode    int
	AXLMessage string
	History    History
}

func (f *Fault) Error() string {
	if f.AXLCode != 0 {
		return fmt.Sprintf("axl %s fault %s: %s (axl code %d)", f.Operation, f.Code, f.Message, f.AXLCode)
	}
	return fmt.Sprintf("axl %s fault %s: %s", f.Operation, f.Code, f.Message)
}
