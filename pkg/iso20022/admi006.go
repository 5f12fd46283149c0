package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// admi.006.001.01 Resend Request.

type GenericIdentification1 struct {
	Id      string  `json:"Id" xml:"Id"`
	SchmeNm *string `json:"SchmeNm,omitempty" xml:"SchmeNm,omitempty"`
	Issr    *string `json:"Issr,omitempty" xml:"Issr,omitempty"`
}

func (g *GenericIdentification1) Validate() error {
	return constraint.Apply(
		constraint.MinLength("id", g.Id, 1),
		constraint.MaxLength("id", g.Id, 35),
		constraint.MinLengthOpt("schme_nm", g.SchmeNm, 1),
		constraint.MaxLengthOpt("schme_nm", g.SchmeNm, 35),
		constraint.MinLengthOpt("issr", g.Issr, 1),
		constraint.MaxLengthOpt("issr", g.Issr, 35),
	)
}

type RequestType4Choice struct {
	PmtCtrl *string                 `json:"PmtCtrl,omitempty" xml:"PmtCtrl,omitempty"`
	Enqry   *string                 `json:"Enqry,omitempty" xml:"Enqry,omitempty"`
	Prtry   *GenericIdentification1 `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (r *RequestType4Choice) Validate() error {
	return constraint.Apply(
		constraint.PatternOpt("pmt_ctrl", r.PmtCtrl, PatternMax4AlphaNumeric),
		constraint.PatternOpt("enqry", r.Enqry, PatternMax4AlphaNumeric),
		constraint.ValidIf("prtry", r.Prtry),
	)
}

type OriginalBusinessQuery1 struct {
	MsgId   string  `json:"MsgId" xml:"MsgId"`
	MsgNmId *string `json:"MsgNmId,omitempty" xml:"MsgNmId,omitempty"`
	CreDtTm *string `json:"CreDtTm,omitempty" xml:"CreDtTm,omitempty"`
}

func (o *OriginalBusinessQuery1) Validate() error {
	return constraint.Apply(
		constraint.MinLength("msg_id", o.MsgId, 1),
		constraint.MaxLength("msg_id", o.MsgId, 35),
		constraint.MinLengthOpt("msg_nm_id", o.MsgNmId, 1),
		constraint.MaxLengthOpt("msg_nm_id", o.MsgNmId, 35),
	)
}

type MessageHeader7 struct {
	MsgId       string                  `json:"MsgId" xml:"MsgId"`
	CreDtTm     *string                 `json:"CreDtTm,omitempty" xml:"CreDtTm,omitempty"`
	ReqTp       *RequestType4Choice     `json:"ReqTp,omitempty" xml:"ReqTp,omitempty"`
	OrgnlBizQry *OriginalBusinessQuery1 `json:"OrgnlBizQry,omitempty" xml:"OrgnlBizQry,omitempty"`
	QryNm       *string                 `json:"QryNm,omitempty" xml:"QryNm,omitempty"`
}

func (m *MessageHeader7) Validate() error {
	return constraint.Apply(
		constraint.MinLength("msg_id", m.MsgId, 1),
		constraint.MaxLength("msg_id", m.MsgId, 35),
		constraint.ValidIf("req_tp", m.ReqTp),
		constraint.ValidIf("orgnl_biz_qry", m.OrgnlBizQry),
		constraint.MinLengthOpt("qry_nm", m.QryNm, 1),
		constraint.MaxLengthOpt("qry_nm", m.QryNm, 35),
	)
}

type SequenceRange1 struct {
	FrSeq string `json:"FrSeq" xml:"FrSeq"`
	ToSeq string `json:"ToSeq" xml:"ToSeq"`
}

func (s *SequenceRange1) Validate() error {
	return constraint.Apply(
		constraint.MinLength("fr_seq", s.FrSeq, 1),
		constraint.MaxLength("fr_seq", s.FrSeq, 35),
		constraint.MinLength("to_seq", s.ToSeq, 1),
		constraint.MaxLength("to_seq", s.ToSeq, 35),
	)
}

type SequenceRange1Choice struct {
	FrSeq   *string          `json:"FrSeq,omitempty" xml:"FrSeq,omitempty"`
	ToSeq   *string          `json:"ToSeq,omitempty" xml:"ToSeq,omitempty"`
	FrToSeq []SequenceRange1 `json:"FrToSeq,omitempty" xml:"FrToSeq,omitempty"`
	EQSeq   []string         `json:"EQSeq,omitempty" xml:"EQSeq,omitempty"`
	NEQSeq  []string         `json:"NEQSeq,omitempty" xml:"NEQSeq,omitempty"`
}

func (s *SequenceRange1Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("fr_seq", s.FrSeq, 1),
		constraint.MaxLengthOpt("fr_seq", s.FrSeq, 35),
		constraint.MinLengthOpt("to_seq", s.ToSeq, 1),
		constraint.MaxLengthOpt("to_seq", s.ToSeq, 35),
		constraint.Each("fr_to_seq", s.FrToSeq),
		constraint.LengthEach("eq_seq", s.EQSeq, 1, 35),
		constraint.LengthEach("neq_seq", s.NEQSeq, 1, 35),
	)
}

type ResendSearchCriteria2 struct {
	BizDt        *string                `json:"BizDt,omitempty" xml:"BizDt,omitempty"`
	SeqNb        *string                `json:"SeqNb,omitempty" xml:"SeqNb,omitempty"`
	SeqRg        *SequenceRange1Choice  `json:"SeqRg,omitempty" xml:"SeqRg,omitempty"`
	OrgnlMsgNmId *string                `json:"OrgnlMsgNmId,omitempty" xml:"OrgnlMsgNmId,omitempty"`
	FileRef      *string                `json:"FileRef,omitempty" xml:"FileRef,omitempty"`
	Rcpt         PartyIdentification136 `json:"Rcpt" xml:"Rcpt"`
}

func (r *ResendSearchCriteria2) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("seq_nb", r.SeqNb, 1),
		constraint.MaxLengthOpt("seq_nb", r.SeqNb, 35),
		constraint.ValidIf("seq_rg", r.SeqRg),
		constraint.MinLengthOpt("orgnl_msg_nm_id", r.OrgnlMsgNmId, 1),
		constraint.MaxLengthOpt("orgnl_msg_nm_id", r.OrgnlMsgNmId, 35),
		constraint.MinLengthOpt("file_ref", r.FileRef, 1),
		constraint.MaxLengthOpt("file_ref", r.FileRef, 35),
		constraint.Valid("rcpt", &r.Rcpt),
	)
}

// ResendRequestV01 asks the service to resend previously delivered messages
// matching the search criteria.
type ResendRequestV01 struct {
	MsgHdr      MessageHeader7          `json:"MsgHdr" xml:"MsgHdr"`
	RsndSchCrit []ResendSearchCriteria2 `json:"RsndSchCrit" xml:"RsndSchCrit"`
	SplmtryData []SupplementaryData1    `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (r *ResendRequestV01) Validate() error {
	return constraint.Apply(
		constraint.Valid("msg_hdr", &r.MsgHdr),
		constraint.Each("rsnd_sch_crit", r.RsndSchCrit),
		constraint.Each("splmtry_data", r.SplmtryData),
	)
}
