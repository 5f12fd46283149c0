package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// Shared exceptions-and-investigations building blocks used by the camt
// case-management messages.

type CaseAssignment5 struct {
	Id      string        `json:"Id" xml:"Id"`
	Assgnr  Party40Choice `json:"Assgnr" xml:"Assgnr"`
	Assgne  Party40Choice `json:"Assgne" xml:"Assgne"`
	CreDtTm string        `json:"CreDtTm" xml:"CreDtTm"`
}

func (c *CaseAssignment5) Validate() error {
	return constraint.Apply(
		constraint.MinLength("id", c.Id, 1),
		constraint.MaxLength("id", c.Id, 35),
		constraint.Valid("assgnr", &c.Assgnr),
		constraint.Valid("assgne", &c.Assgne),
	)
}

type Case5 struct {
	Id             string        `json:"Id" xml:"Id"`
	Cretr          Party40Choice `json:"Cretr" xml:"Cretr"`
	ReopCaseIndctn *bool         `json:"ReopCaseIndctn,omitempty" xml:"ReopCaseIndctn,omitempty"`
}

func (c *Case5) Validate() error {
	return constraint.Apply(
		constraint.MinLength("id", c.Id, 1),
		constraint.MaxLength("id", c.Id, 35),
		constraint.Valid("cretr", &c.Cretr),
	)
}

type ControlData1 struct {
	NbOfTxs string   `json:"NbOfTxs" xml:"NbOfTxs"`
	CtrlSum *float64 `json:"CtrlSum,omitempty" xml:"CtrlSum,omitempty"`
}

func (c *ControlData1) Validate() error {
	return constraint.Apply(
		constraint.Pattern("nb_of_txs", c.NbOfTxs, PatternMax15Numeric),
		constraint.MinOpt("ctrl_sum", c.CtrlSum, 0),
	)
}

type CancellationReason33Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *CancellationReason33Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", c.Cd, 1),
		constraint.MaxLengthOpt("cd", c.Cd, 4),
		constraint.MinLengthOpt("prtry", c.Prtry, 1),
		constraint.MaxLengthOpt("prtry", c.Prtry, 35),
	)
}

type PaymentCancellationReason5 struct {
	Orgtr    *PartyIdentification135     `json:"Orgtr,omitempty" xml:"Orgtr,omitempty"`
	Rsn      *CancellationReason33Choice `json:"Rsn,omitempty" xml:"Rsn,omitempty"`
	AddtlInf []string                    `json:"AddtlInf,omitempty" xml:"AddtlInf,omitempty"`
}

func (p *PaymentCancellationReason5) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("orgtr", p.Orgtr),
		constraint.ValidIf("rsn", p.Rsn),
		constraint.LengthEach("addtl_inf", p.AddtlInf, 1, 105),
	)
}

type UnderlyingGroupInformation1 struct {
	OrgnlMsgId         string  `json:"OrgnlMsgId" xml:"OrgnlMsgId"`
	OrgnlMsgNmId       string  `json:"OrgnlMsgNmId" xml:"OrgnlMsgNmId"`
	OrgnlCreDtTm       *string `json:"OrgnlCreDtTm,omitempty" xml:"OrgnlCreDtTm,omitempty"`
	OrgnlMsgDlvryChanl *string `json:"OrgnlMsgDlvryChanl,omitempty" xml:"OrgnlMsgDlvryChanl,omitempty"`
}

func (u *UnderlyingGroupInformation1) Validate() error {
	return constraint.Apply(
		constraint.MinLength("orgnl_msg_id", u.OrgnlMsgId, 1),
		constraint.MaxLength("orgnl_msg_id", u.OrgnlMsgId, 35),
		constraint.MinLength("orgnl_msg_nm_id", u.OrgnlMsgNmId, 1),
		constraint.MaxLength("orgnl_msg_nm_id", u.OrgnlMsgNmId, 35),
		constraint.MinLengthOpt("orgnl_msg_dlvry_chanl", u.OrgnlMsgDlvryChanl, 1),
		constraint.MaxLengthOpt("orgnl_msg_dlvry_chanl", u.OrgnlMsgDlvryChanl, 35),
	)
}

type UnderlyingPaymentInstruction5 struct {
	OrgnlGrpInf     *UnderlyingGroupInformation1      `json:"OrgnlGrpInf,omitempty" xml:"OrgnlGrpInf,omitempty"`
	OrgnlPmtInfId   *string                           `json:"OrgnlPmtInfId,omitempty" xml:"OrgnlPmtInfId,omitempty"`
	OrgnlInstrId    *string                           `json:"OrgnlInstrId,omitempty" xml:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId *string                           `json:"OrgnlEndToEndId,omitempty" xml:"OrgnlEndToEndId,omitempty"`
	OrgnlUETR       *string                           `json:"OrgnlUETR,omitempty" xml:"OrgnlUETR,omitempty"`
	OrgnlInstdAmt   ActiveOrHistoricCurrencyAndAmount `json:"OrgnlInstdAmt" xml:"OrgnlInstdAmt"`
	ReqdExctnDt     *DateAndDateTime2Choice           `json:"ReqdExctnDt,omitempty" xml:"ReqdExctnDt,omitempty"`
	ReqdColltnDt    *string                           `json:"ReqdColltnDt,omitempty" xml:"ReqdColltnDt,omitempty"`
	OrgnlTxRef      *OriginalTransactionReference28   `json:"OrgnlTxRef,omitempty" xml:"OrgnlTxRef,omitempty"`
}

func (u *UnderlyingPaymentInstruction5) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("orgnl_grp_inf", u.OrgnlGrpInf),
		constraint.MinLengthOpt("orgnl_pmt_inf_id", u.OrgnlPmtInfId, 1),
		constraint.MaxLengthOpt("orgnl_pmt_inf_id", u.OrgnlPmtInfId, 35),
		constraint.MinLengthOpt("orgnl_instr_id", u.OrgnlInstrId, 1),
		constraint.MaxLengthOpt("orgnl_instr_id", u.OrgnlInstrId, 35),
		constraint.MinLengthOpt("orgnl_end_to_end_id", u.OrgnlEndToEndId, 1),
		constraint.MaxLengthOpt("orgnl_end_to_end_id", u.OrgnlEndToEndId, 35),
		constraint.PatternOpt("orgnl_uetr", u.OrgnlUETR, PatternUETR),
		constraint.Valid("orgnl_instd_amt", &u.OrgnlInstdAmt),
		constraint.ValidIf("orgnl_tx_ref", u.OrgnlTxRef),
	)
}

type UnderlyingPaymentTransaction4 struct {
	OrgnlGrpInf         *UnderlyingGroupInformation1      `json:"OrgnlGrpInf,omitempty" xml:"OrgnlGrpInf,omitempty"`
	OrgnlInstrId        *string                           `json:"OrgnlInstrId,omitempty" xml:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId     *string                           `json:"OrgnlEndToEndId,omitempty" xml:"OrgnlEndToEndId,omitempty"`
	OrgnlTxId           *string                           `json:"OrgnlTxId,omitempty" xml:"OrgnlTxId,omitempty"`
	OrgnlUETR           *string                           `json:"OrgnlUETR,omitempty" xml:"OrgnlUETR,omitempty"`
	OrgnlIntrBkSttlmAmt ActiveOrHistoricCurrencyAndAmount `json:"OrgnlIntrBkSttlmAmt" xml:"OrgnlIntrBkSttlmAmt"`
	OrgnlIntrBkSttlmDt  string                            `json:"OrgnlIntrBkSttlmDt" xml:"OrgnlIntrBkSttlmDt"`
	OrgnlTxRef          *OriginalTransactionReference28   `json:"OrgnlTxRef,omitempty" xml:"OrgnlTxRef,omitempty"`
}

func (u *UnderlyingPaymentTransaction4) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("orgnl_grp_inf", u.OrgnlGrpInf),
		constraint.MinLengthOpt("orgnl_instr_id", u.OrgnlInstrId, 1),
		constraint.MaxLengthOpt("orgnl_instr_id", u.OrgnlInstrId, 35),
		constraint.MinLengthOpt("orgnl_end_to_end_id", u.OrgnlEndToEndId, 1),
		constraint.MaxLengthOpt("orgnl_end_to_end_id", u.OrgnlEndToEndId, 35),
		constraint.MinLengthOpt("orgnl_tx_id", u.OrgnlTxId, 1),
		constraint.MaxLengthOpt("orgnl_tx_id", u.OrgnlTxId, 35),
		constraint.PatternOpt("orgnl_uetr", u.OrgnlUETR, PatternUETR),
		constraint.Valid("orgnl_intr_bk_sttlm_amt", &u.OrgnlIntrBkSttlmAmt),
		constraint.ValidIf("orgnl_tx_ref", u.OrgnlTxRef),
	)
}

type UnderlyingStatementEntry3 struct {
	OrgnlGrpInf *OriginalGroupInformation29 `json:"OrgnlGrpInf,omitempty" xml:"OrgnlGrpInf,omitempty"`
	OrgnlStmtId *string                     `json:"OrgnlStmtId,omitempty" xml:"OrgnlStmtId,omitempty"`
	OrgnlNtryId *string                     `json:"OrgnlNtryId,omitempty" xml:"OrgnlNtryId,omitempty"`
	OrgnlUETR   *string                     `json:"OrgnlUETR,omitempty" xml:"OrgnlUETR,omitempty"`
}

func (u *UnderlyingStatementEntry3) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("orgnl_grp_inf", u.OrgnlGrpInf),
		constraint.MinLengthOpt("orgnl_stmt_id", u.OrgnlStmtId, 1),
		constraint.MaxLengthOpt("orgnl_stmt_id", u.OrgnlStmtId, 35),
		constraint.MinLengthOpt("orgnl_ntry_id", u.OrgnlNtryId, 1),
		constraint.MaxLengthOpt("orgnl_ntry_id", u.OrgnlNtryId, 35),
		constraint.PatternOpt("orgnl_uetr", u.OrgnlUETR, PatternUETR),
	)
}

type UnderlyingTransaction5Choice struct {
	Initn    *UnderlyingPaymentInstruction5 `json:"Initn,omitempty" xml:"Initn,omitempty"`
	IntrBk   *UnderlyingPaymentTransaction4 `json:"IntrBk,omitempty" xml:"IntrBk,omitempty"`
	StmtNtry *UnderlyingStatementEntry3     `json:"StmtNtry,omitempty" xml:"StmtNtry,omitempty"`
}

func (u *UnderlyingTransaction5Choice) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("initn", u.Initn),
		constraint.ValidIf("intr_bk", u.IntrBk),
		constraint.ValidIf("stmt_ntry", u.StmtNtry),
	)
}
