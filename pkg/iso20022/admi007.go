package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// admi.007.001.01 Receipt Acknowledgement.

type MessageHeader10 struct {
	MsgId   *string `json:"MsgId,omitempty" xml:"MsgId,omitempty"`
	CreDtTm *string `json:"CreDtTm,omitempty" xml:"CreDtTm,omitempty"`
	QryNm   *string `json:"QryNm,omitempty" xml:"QryNm,omitempty"`
}

func (m *MessageHeader10) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("msg_id", m.MsgId, 1),
		constraint.MaxLengthOpt("msg_id", m.MsgId, 35),
		constraint.MinLengthOpt("qry_nm", m.QryNm, 1),
		constraint.MaxLengthOpt("qry_nm", m.QryNm, 35),
	)
}

type MessageReference1 struct {
	Ref     string                  `json:"Ref" xml:"Ref"`
	MsgNm   *string                 `json:"MsgNm,omitempty" xml:"MsgNm,omitempty"`
	RefIssr *PartyIdentification136 `json:"RefIssr,omitempty" xml:"RefIssr,omitempty"`
}

func (m *MessageReference1) Validate() error {
	return constraint.Apply(
		constraint.MinLength("ref", m.Ref, 1),
		constraint.MaxLength("ref", m.Ref, 35),
		constraint.MinLengthOpt("msg_nm", m.MsgNm, 1),
		constraint.MaxLengthOpt("msg_nm", m.MsgNm, 35),
		constraint.ValidIf("ref_issr", m.RefIssr),
	)
}

type RequestHandling2 struct {
	StsCd   string  `json:"StsCd" xml:"StsCd"`
	StsDtTm *string `json:"StsDtTm,omitempty" xml:"StsDtTm,omitempty"`
	Desc    *string `json:"Desc,omitempty" xml:"Desc,omitempty"`
}

func (r *RequestHandling2) Validate() error {
	return constraint.Apply(
		constraint.MinLength("sts_cd", r.StsCd, 1),
		constraint.MaxLength("sts_cd", r.StsCd, 4),
		constraint.MinLengthOpt("desc", r.Desc, 1),
		constraint.MaxLengthOpt("desc", r.Desc, 140),
	)
}

type ReceiptAcknowledgementReport2 struct {
	RltdRef MessageReference1 `json:"RltdRef" xml:"RltdRef"`
	ReqHdlg RequestHandling2  `json:"ReqHdlg" xml:"ReqHdlg"`
}

func (r *ReceiptAcknowledgementReport2) Validate() error {
	return constraint.Apply(
		constraint.Valid("rltd_ref", &r.RltdRef),
		constraint.Valid("req_hdlg", &r.ReqHdlg),
	)
}

// ReceiptAcknowledgementV01 confirms receipt and handling status of one or
// more previously submitted messages.
type ReceiptAcknowledgementV01 struct {
	MsgId       MessageHeader10                 `json:"MsgId" xml:"MsgId"`
	Rpt         []ReceiptAcknowledgementReport2 `json:"Rpt" xml:"Rpt"`
	SplmtryData []SupplementaryData1            `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (r *ReceiptAcknowledgementV01) Validate() error {
	return constraint.Apply(
		constraint.Valid("msg_id", &r.MsgId),
		constraint.Each("rpt", r.Rpt),
		constraint.Each("splmtry_data", r.SplmtryData),
	)
}
