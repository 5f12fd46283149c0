package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// camt.055.001.09 Customer Payment Cancellation Request.

type OriginalGroupHeader15 struct {
	GrpCxlId     *string                      `json:"GrpCxlId,omitempty" xml:"GrpCxlId,omitempty"`
	Case         *Case5                       `json:"Case,omitempty" xml:"Case,omitempty"`
	OrgnlMsgId   string                       `json:"OrgnlMsgId" xml:"OrgnlMsgId"`
	OrgnlMsgNmId string                       `json:"OrgnlMsgNmId" xml:"OrgnlMsgNmId"`
	OrgnlCreDtTm *string                      `json:"OrgnlCreDtTm,omitempty" xml:"OrgnlCreDtTm,omitempty"`
	NbOfTxs      *string                      `json:"NbOfTxs,omitempty" xml:"NbOfTxs,omitempty"`
	CtrlSum      *float64                     `json:"CtrlSum,omitempty" xml:"CtrlSum,omitempty"`
	GrpCxl       *bool                        `json:"GrpCxl,omitempty" xml:"GrpCxl,omitempty"`
	CxlRsnInf    []PaymentCancellationReason5 `json:"CxlRsnInf,omitempty" xml:"CxlRsnInf,omitempty"`
}

func (o *OriginalGroupHeader15) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("grp_cxl_id", o.GrpCxlId, 1),
		constraint.MaxLengthOpt("grp_cxl_id", o.GrpCxlId, 35),
		constraint.ValidIf("case", o.Case),
		constraint.MinLength("orgnl_msg_id", o.OrgnlMsgId, 1),
		constraint.MaxLength("orgnl_msg_id", o.OrgnlMsgId, 35),
		constraint.MinLength("orgnl_msg_nm_id", o.OrgnlMsgNmId, 1),
		constraint.MaxLength("orgnl_msg_nm_id", o.OrgnlMsgNmId, 35),
		constraint.PatternOpt("nb_of_txs", o.NbOfTxs, PatternMax15Numeric),
		constraint.MinOpt("ctrl_sum", o.CtrlSum, 0),
		constraint.Each("cxl_rsn_inf", o.CxlRsnInf),
	)
}

type PaymentTransaction124 struct {
	CxlId             *string                            `json:"CxlId,omitempty" xml:"CxlId,omitempty"`
	Case              *Case5                             `json:"Case,omitempty" xml:"Case,omitempty"`
	OrgnlInstrId      *string                            `json:"OrgnlInstrId,omitempty" xml:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId   *string                            `json:"OrgnlEndToEndId,omitempty" xml:"OrgnlEndToEndId,omitempty"`
	OrgnlUETR         *string                            `json:"OrgnlUETR,omitempty" xml:"OrgnlUETR,omitempty"`
	OrgnlInstdAmt     *ActiveOrHistoricCurrencyAndAmount `json:"OrgnlInstdAmt,omitempty" xml:"OrgnlInstdAmt,omitempty"`
	OrgnlReqdExctnDt  *DateAndDateTime2Choice            `json:"OrgnlReqdExctnDt,omitempty" xml:"OrgnlReqdExctnDt,omitempty"`
	OrgnlReqdColltnDt *string                            `json:"OrgnlReqdColltnDt,omitempty" xml:"OrgnlReqdColltnDt,omitempty"`
	CxlRsnInf         []PaymentCancellationReason5       `json:"CxlRsnInf,omitempty" xml:"CxlRsnInf,omitempty"`
	OrgnlTxRef        *OriginalTransactionReference28    `json:"OrgnlTxRef,omitempty" xml:"OrgnlTxRef,omitempty"`
	SplmtryData       []SupplementaryData1               `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (p *PaymentTransaction124) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cxl_id", p.CxlId, 1),
		constraint.MaxLengthOpt("cxl_id", p.CxlId, 35),
		constraint.ValidIf("case", p.Case),
		constraint.MinLengthOpt("orgnl_instr_id", p.OrgnlInstrId, 1),
		constraint.MaxLengthOpt("orgnl_instr_id", p.OrgnlInstrId, 35),
		constraint.MinLengthOpt("orgnl_end_to_end_id", p.OrgnlEndToEndId, 1),
		constraint.MaxLengthOpt("orgnl_end_to_end_id", p.OrgnlEndToEndId, 35),
		constraint.PatternOpt("orgnl_uetr", p.OrgnlUETR, PatternUETR),
		constraint.ValidIf("orgnl_instd_amt", p.OrgnlInstdAmt),
		constraint.Each("cxl_rsn_inf", p.CxlRsnInf),
		constraint.ValidIf("orgnl_tx_ref", p.OrgnlTxRef),
		constraint.Each("splmtry_data", p.SplmtryData),
	)
}

type OriginalPaymentInstruction36 struct {
	PmtCxlId      *string                      `json:"PmtCxlId,omitempty" xml:"PmtCxlId,omitempty"`
	Case          *Case5                       `json:"Case,omitempty" xml:"Case,omitempty"`
	OrgnlPmtInfId string                       `json:"OrgnlPmtInfId" xml:"OrgnlPmtInfId"`
	OrgnlGrpInf   *OriginalGroupInformation29  `json:"OrgnlGrpInf,omitempty" xml:"OrgnlGrpInf,omitempty"`
	NbOfTxs       *string                      `json:"NbOfTxs,omitempty" xml:"NbOfTxs,omitempty"`
	CtrlSum       *float64                     `json:"CtrlSum,omitempty" xml:"CtrlSum,omitempty"`
	PmtInfCxl     *bool                        `json:"PmtInfCxl,omitempty" xml:"PmtInfCxl,omitempty"`
	CxlRsnInf     []PaymentCancellationReason5 `json:"CxlRsnInf,omitempty" xml:"CxlRsnInf,omitempty"`
	TxInf         []PaymentTransaction124      `json:"TxInf,omitempty" xml:"TxInf,omitempty"`
}

func (o *OriginalPaymentInstruction36) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("pmt_cxl_id", o.PmtCxlId, 1),
		constraint.MaxLengthOpt("pmt_cxl_id", o.PmtCxlId, 35),
		constraint.ValidIf("case", o.Case),
		constraint.MinLength("orgnl_pmt_inf_id", o.OrgnlPmtInfId, 1),
		constraint.MaxLength("orgnl_pmt_inf_id", o.OrgnlPmtInfId, 35),
		constraint.ValidIf("orgnl_grp_inf", o.OrgnlGrpInf),
		constraint.PatternOpt("nb_of_txs", o.NbOfTxs, PatternMax15Numeric),
		constraint.MinOpt("ctrl_sum", o.CtrlSum, 0),
		constraint.Each("cxl_rsn_inf", o.CxlRsnInf),
		constraint.Each("tx_inf", o.TxInf),
	)
}

type UnderlyingTransaction27 struct {
	OrgnlGrpInfAndCxl *OriginalGroupHeader15         `json:"OrgnlGrpInfAndCxl,omitempty" xml:"OrgnlGrpInfAndCxl,omitempty"`
	OrgnlPmtInfAndCxl []OriginalPaymentInstruction36 `json:"OrgnlPmtInfAndCxl,omitempty" xml:"OrgnlPmtInfAndCxl,omitempty"`
}

func (u *UnderlyingTransaction27) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("orgnl_grp_inf_and_cxl", u.OrgnlGrpInfAndCxl),
		constraint.Each("orgnl_pmt_inf_and_cxl", u.OrgnlPmtInfAndCxl),
	)
}

// CustomerPaymentCancellationRequestV09 asks the next party in the chain to
// cancel a previously sent payment initiation.
type CustomerPaymentCancellationRequestV09 struct {
	Assgnmt     CaseAssignment5           `json:"Assgnmt" xml:"Assgnmt"`
	Case        *Case5                    `json:"Case,omitempty" xml:"Case,omitempty"`
	CtrlData    *ControlData1             `json:"CtrlData,omitempty" xml:"CtrlData,omitempty"`
	Undrlyg     []UnderlyingTransaction27 `json:"Undrlyg" xml:"Undrlyg"`
	SplmtryData []SupplementaryData1      `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (c *CustomerPaymentCancellationRequestV09) Validate() error {
	return constraint.Apply(
		constraint.Valid("assgnmt", &c.Assgnmt),
		constraint.ValidIf("case", c.Case),
		constraint.ValidIf("ctrl_data", c.CtrlData),
		constraint.Each("undrlyg", c.Undrlyg),
		constraint.Each("splmtry_data", c.SplmtryData),
	)
}
