package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// camt.056.001.08 FI To FI Payment Cancellation Request.

type PaymentTransaction106 struct {
	CxlId               *string                                       `json:"CxlId,omitempty" xml:"CxlId,omitempty"`
	Case                *Case5                                        `json:"Case,omitempty" xml:"Case,omitempty"`
	OrgnlGrpInf         *OriginalGroupInformation29                   `json:"OrgnlGrpInf,omitempty" xml:"OrgnlGrpInf,omitempty"`
	OrgnlInstrId        *string                                       `json:"OrgnlInstrId,omitempty" xml:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId     *string                                       `json:"OrgnlEndToEndId,omitempty" xml:"OrgnlEndToEndId,omitempty"`
	OrgnlTxId           *string                                       `json:"OrgnlTxId,omitempty" xml:"OrgnlTxId,omitempty"`
	OrgnlUETR           *string                                       `json:"OrgnlUETR,omitempty" xml:"OrgnlUETR,omitempty"`
	OrgnlClrSysRef      *string                                       `json:"OrgnlClrSysRef,omitempty" xml:"OrgnlClrSysRef,omitempty"`
	OrgnlIntrBkSttlmAmt *ActiveOrHistoricCurrencyAndAmount            `json:"OrgnlIntrBkSttlmAmt,omitempty" xml:"OrgnlIntrBkSttlmAmt,omitempty"`
	OrgnlIntrBkSttlmDt  *string                                       `json:"OrgnlIntrBkSttlmDt,omitempty" xml:"OrgnlIntrBkSttlmDt,omitempty"`
	Assgnr              *BranchAndFinancialInstitutionIdentification6 `json:"Assgnr,omitempty" xml:"Assgnr,omitempty"`
	Assgne              *BranchAndFinancialInstitutionIdentification6 `json:"Assgne,omitempty" xml:"Assgne,omitempty"`
	CxlRsnInf           []PaymentCancellationReason5                  `json:"CxlRsnInf,omitempty" xml:"CxlRsnInf,omitempty"`
	OrgnlTxRef          *OriginalTransactionReference28               `json:"OrgnlTxRef,omitempty" xml:"OrgnlTxRef,omitempty"`
	SplmtryData         []SupplementaryData1                          `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (p *PaymentTransaction106) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cxl_id", p.CxlId, 1),
		constraint.MaxLengthOpt("cxl_id", p.CxlId, 35),
		constraint.ValidIf("case", p.Case),
		constraint.ValidIf("orgnl_grp_inf", p.OrgnlGrpInf),
		constraint.MinLengthOpt("orgnl_instr_id", p.OrgnlInstrId, 1),
		constraint.MaxLengthOpt("orgnl_instr_id", p.OrgnlInstrId, 35),
		constraint.MinLengthOpt("orgnl_end_to_end_id", p.OrgnlEndToEndId, 1),
		constraint.MaxLengthOpt("orgnl_end_to_end_id", p.OrgnlEndToEndId, 35),
		constraint.MinLengthOpt("orgnl_tx_id", p.OrgnlTxId, 1),
		constraint.MaxLengthOpt("orgnl_tx_id", p.OrgnlTxId, 35),
		constraint.PatternOpt("orgnl_uetr", p.OrgnlUETR, PatternUETR),
		constraint.MinLengthOpt("orgnl_clr_sys_ref", p.OrgnlClrSysRef, 1),
		constraint.MaxLengthOpt("orgnl_clr_sys_ref", p.OrgnlClrSysRef, 35),
		constraint.ValidIf("orgnl_intr_bk_sttlm_amt", p.OrgnlIntrBkSttlmAmt),
		constraint.ValidIf("assgnr", p.Assgnr),
		constraint.ValidIf("assgne", p.Assgne),
		constraint.Each("cxl_rsn_inf", p.CxlRsnInf),
		constraint.ValidIf("orgnl_tx_ref", p.OrgnlTxRef),
		constraint.Each("splmtry_data", p.SplmtryData),
	)
}

type UnderlyingTransaction23 struct {
	OrgnlGrpInfAndCxl *OriginalGroupHeader15  `json:"OrgnlGrpInfAndCxl,omitempty" xml:"OrgnlGrpInfAndCxl,omitempty"`
	TxInf             []PaymentTransaction106 `json:"TxInf,omitempty" xml:"TxInf,omitempty"`
}

func (u *UnderlyingTransaction23) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("orgnl_grp_inf_and_cxl", u.OrgnlGrpInfAndCxl),
		constraint.Each("tx_inf", u.TxInf),
	)
}

// FIToFIPaymentCancellationRequestV08 asks the assignee agent to cancel an
// interbank payment it received earlier.
type FIToFIPaymentCancellationRequestV08 struct {
	Assgnmt     CaseAssignment5           `json:"Assgnmt" xml:"Assgnmt"`
	Case        *Case5                    `json:"Case,omitempty" xml:"Case,omitempty"`
	CtrlData    *ControlData1             `json:"CtrlData,omitempty" xml:"CtrlData,omitempty"`
	Undrlyg     []UnderlyingTransaction23 `json:"Undrlyg" xml:"Undrlyg"`
	SplmtryData []SupplementaryData1      `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (f *FIToFIPaymentCancellationRequestV08) Validate() error {
	return constraint.Apply(
		constraint.Valid("assgnmt", &f.Assgnmt),
		constraint.ValidIf("case", f.Case),
		constraint.ValidIf("ctrl_data", f.CtrlData),
		constraint.Each("undrlyg", f.Undrlyg),
		constraint.Each("splmtry_data", f.SplmtryData),
	)
}
