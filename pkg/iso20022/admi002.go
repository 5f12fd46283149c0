package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// admi.002.001.01 Message Reject.

type MessageReference struct {
	Ref string `json:"Ref" xml:"Ref"`
}

func (m *MessageReference) Validate() error {
	return constraint.Apply(
		constraint.MinLength("ref", m.Ref, 1),
		constraint.MaxLength("ref", m.Ref, 35),
	)
}

type RejectionReason2 struct {
	RjctgPtyRsn string  `json:"RjctgPtyRsn" xml:"RjctgPtyRsn"`
	RjctnDtTm   *string `json:"RjctnDtTm,omitempty" xml:"RjctnDtTm,omitempty"`
	ErrLctn     *string `json:"ErrLctn,omitempty" xml:"ErrLctn,omitempty"`
	RsnDesc     *string `json:"RsnDesc,omitempty" xml:"RsnDesc,omitempty"`
	AddtlData   *string `json:"AddtlData,omitempty" xml:"AddtlData,omitempty"`
}

func (r *RejectionReason2) Validate() error {
	return constraint.Apply(
		constraint.MinLength("rjctg_pty_rsn", r.RjctgPtyRsn, 1),
		constraint.MaxLength("rjctg_pty_rsn", r.RjctgPtyRsn, 35),
		constraint.MinLengthOpt("err_lctn", r.ErrLctn, 1),
		constraint.MaxLengthOpt("err_lctn", r.ErrLctn, 350),
		constraint.MinLengthOpt("rsn_desc", r.RsnDesc, 1),
		constraint.MaxLengthOpt("rsn_desc", r.RsnDesc, 350),
		constraint.MinLengthOpt("addtl_data", r.AddtlData, 1),
		constraint.MaxLengthOpt("addtl_data", r.AddtlData, 20000),
	)
}

// MessageRejectV01 reports that a previously received message was rejected.
type MessageRejectV01 struct {
	RltdRef MessageReference `json:"RltdRef" xml:"RltdRef"`
	Rsn     RejectionReason2 `json:"Rsn" xml:"Rsn"`
}

func (m *MessageRejectV01) Validate() error {
	return constraint.Apply(
		constraint.Valid("rltd_ref", &m.RltdRef),
		constraint.Valid("rsn", &m.Rsn),
	)
}
