package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// admi.004.001.02 System Event Notification.

type Event2 struct {
	EvtCd    string   `json:"EvtCd" xml:"EvtCd"`
	EvtParam []string `json:"EvtParam,omitempty" xml:"EvtParam,omitempty"`
	EvtDesc  *string  `json:"EvtDesc,omitempty" xml:"EvtDesc,omitempty"`
	EvtTm    *string  `json:"EvtTm,omitempty" xml:"EvtTm,omitempty"`
}

func (e *Event2) Validate() error {
	return constraint.Apply(
		constraint.Pattern("evt_cd", e.EvtCd, PatternMax4AlphaNumeric),
		constraint.LengthEach("evt_param", e.EvtParam, 1, 35),
		constraint.MinLengthOpt("evt_desc", e.EvtDesc, 1),
		constraint.MaxLengthOpt("evt_desc", e.EvtDesc, 1000),
	)
}

// SystemEventNotificationV02 notifies participants of a system event, such as
// the start or close of a processing cycle.
type SystemEventNotificationV02 struct {
	EvtInf Event2 `json:"EvtInf" xml:"EvtInf"`
}

func (s *SystemEventNotificationV02) Validate() error {
	return constraint.Apply(
		constraint.Valid("evt_inf", &s.EvtInf),
	)
}
