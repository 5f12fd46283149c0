package fednow

import (
	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/iso20022"
)

// Envelope pairs a business application header with the document it frames.
type Envelope struct {
	AppHdr   iso20022.BusinessApplicationHeaderV02 `json:"AppHdr" xml:"AppHdr"`
	Document Document                              `json:"Document" xml:"Document"`
}

func (e *Envelope) Validate() error {
	return constraint.Apply(
		constraint.Valid("app_hdr", &e.AppHdr),
		constraint.Valid("document", &e.Document),
	)
}

// TechnicalHeader is the transport-level header the service may prepend to a
// container. It carries no validated content at this layer.
type TechnicalHeader struct{}

func (t *TechnicalHeader) Validate() error { return nil }
