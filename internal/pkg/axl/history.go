package axl

import (
	"slices"
	"strings"

	"github.com/beevik/etree"
)

// History is the last envelope sent and the last one received.
type History struct {
	LastSent     []byte
	LastReceived []byte
}

// String pretty prints both envelopes, sent first.
func (h History) String() string {
	var sb strings.Builder
	for _, envelope := range [][]byte{h.LastSent, h.LastReceived} {
		if len(envelope) == 0 {
			continue
		}
		sb.WriteString(prettyXML(envelope))
		sb.WriteString("\n")
	}
	return sb.String()
}

// prettyXML indents data by two spaces, keeping namespace prefixes as
// written. Input that is not a well formed document is returned unchanged.
func prettyXML(data []byte) string {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil || doc.Root() == nil {
		return string(data)
	}
	for _, tok := range slices.Clone(doc.Child) {
		if _, ok := tok.(*etree.ProcInst); ok {
			doc.RemoveChild(tok)
		}
	}
	doc.Indent(2)

	out, err := doc.WriteToString()
	if err != nil {
		return string(data)
	}
	return strings.TrimRight(out, "\n")
}
