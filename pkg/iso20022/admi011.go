package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// admi.011.001.01 System Event Acknowledgement.

type Event1 struct {
	EvtCd    string   `json:"EvtCd" xml:"EvtCd"`
	EvtParam []string `json:"EvtParam,omitempty" xml:"EvtParam,omitempty"`
	EvtDesc  *string  `json:"EvtDesc,omitempty" xml:"EvtDesc,omitempty"`
	EvtTm    *string  `json:"EvtTm,omitempty" xml:"EvtTm,omitempty"`
}

func (e *Event1) Validate() error {
	return constraint.Apply(
		constraint.Pattern("evt_cd", e.EvtCd, PatternMax4AlphaNumeric),
		constraint.LengthEach("evt_param", e.EvtParam, 1, 35),
		constraint.MinLengthOpt("evt_desc", e.EvtDesc, 1),
		constraint.MaxLengthOpt("evt_desc", e.EvtDesc, 350),
	)
}

// SystemEventAcknowledgementV01 acknowledges a system event notification
// received from the service operator.
type SystemEventAcknowledgementV01 struct {
	MsgId       string               `json:"MsgId" xml:"MsgId"`
	OrgtrRef    *string              `json:"OrgtrRef,omitempty" xml:"OrgtrRef,omitempty"`
	SttlmSsnIdr *string              `json:"SttlmSsnIdr,omitempty" xml:"SttlmSsnIdr,omitempty"`
	AckDtls     *Event1              `json:"AckDtls,omitempty" xml:"AckDtls,omitempty"`
	SplmtryData []SupplementaryData1 `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (s *SystemEventAcknowledgementV01) Validate() error {
	return constraint.Apply(
		constraint.MinLength("msg_id", s.MsgId, 1),
		constraint.MaxLength("msg_id", s.MsgId, 35),
		constraint.MinLengthOpt("orgtr_ref", s.OrgtrRef, 1),
		constraint.MaxLengthOpt("orgtr_ref", s.OrgtrRef, 35),
		constraint.PatternOpt("sttlm_ssn_idr", s.SttlmSsnIdr, PatternExact4AlphaNumeric),
		constraint.ValidIf("ack_dtls", s.AckDtls),
		constraint.Each("splmtry_data", s.SplmtryData),
	)
}
