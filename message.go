package fednowmsg

import (
	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/fednow"
)

// Message is the top-level union of the two message directions. Zero or both
// slots populated is accepted; each populated slot validates independently.
type Message struct {
	Incoming *fednow.Incoming `json:"FedNowIncoming,omitempty" xml:"FedNowIncoming,omitempty"`
	Outgoing *fednow.Outgoing `json:"FedNowOutgoing,omitempty" xml:"FedNowOutgoing,omitempty"`
}

func (m *Message) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("fed_now_incoming", m.Incoming),
		constraint.ValidIf("fed_now_outgoing", m.Outgoing),
	)
}
