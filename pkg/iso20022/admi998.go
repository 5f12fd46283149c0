package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// admi.998.001.02 Administration Proprietary Message.

type ProprietaryData5 struct {
	Tp   string                     `json:"Tp" xml:"Tp"`
	Data SupplementaryDataEnvelope1 `json:"Data" xml:"Data"`
}

func (p *ProprietaryData5) Validate() error {
	return constraint.Apply(
		constraint.MinLength("tp", p.Tp, 1),
		constraint.MaxLength("tp", p.Tp, 35),
	)
}

// AdministrationProprietaryMessageV02 carries service-defined content that
// has no dedicated message definition of its own.
type AdministrationProprietaryMessageV02 struct {
	MsgId     *MessageReference `json:"MsgId,omitempty" xml:"MsgId,omitempty"`
	Rltd      *MessageReference `json:"Rltd,omitempty" xml:"Rltd,omitempty"`
	Prvs      *MessageReference `json:"Prvs,omitempty" xml:"Prvs,omitempty"`
	Othr      *MessageReference `json:"Othr,omitempty" xml:"Othr,omitempty"`
	PrtryData ProprietaryData5  `json:"PrtryData" xml:"PrtryData"`
}

func (a *AdministrationProprietaryMessageV02) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("msg_id", a.MsgId),
		constraint.ValidIf("rltd", a.Rltd),
		constraint.ValidIf("prvs", a.Prvs),
		constraint.ValidIf("othr", a.Othr),
		constraint.Valid("prtry_data", &a.PrtryData),
	)
}
