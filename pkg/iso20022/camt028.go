package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// camt.028.001.09 Additional Payment Information.

type PaymentComplementaryInformation9 struct {
	InstrId         *string                                       `json:"InstrId,omitempty" xml:"InstrId,omitempty"`
	EndToEndId      *string                                       `json:"EndToEndId,omitempty" xml:"EndToEndId,omitempty"`
	TxId            *string                                       `json:"TxId,omitempty" xml:"TxId,omitempty"`
	PmtTpInf        *PaymentTypeInformation28                     `json:"PmtTpInf,omitempty" xml:"PmtTpInf,omitempty"`
	ReqdExctnDt     *DateAndDateTime2Choice                       `json:"ReqdExctnDt,omitempty" xml:"ReqdExctnDt,omitempty"`
	IntrBkSttlmAmt  *ActiveOrHistoricCurrencyAndAmount            `json:"IntrBkSttlmAmt,omitempty" xml:"IntrBkSttlmAmt,omitempty"`
	Amt             *AmountType4Choice                            `json:"Amt,omitempty" xml:"Amt,omitempty"`
	IntrBkSttlmDt   *string                                       `json:"IntrBkSttlmDt,omitempty" xml:"IntrBkSttlmDt,omitempty"`
	UltmtDbtr       *Party40Choice                                `json:"UltmtDbtr,omitempty" xml:"UltmtDbtr,omitempty"`
	Dbtr            *Party40Choice                                `json:"Dbtr,omitempty" xml:"Dbtr,omitempty"`
	DbtrAcct        *CashAccount38                                `json:"DbtrAcct,omitempty" xml:"DbtrAcct,omitempty"`
	DbtrAgt         *BranchAndFinancialInstitutionIdentification6 `json:"DbtrAgt,omitempty" xml:"DbtrAgt,omitempty"`
	DbtrAgtAcct     *CashAccount38                                `json:"DbtrAgtAcct,omitempty" xml:"DbtrAgtAcct,omitempty"`
	IntrmyAgt1      *BranchAndFinancialInstitutionIdentification6 `json:"IntrmyAgt1,omitempty" xml:"IntrmyAgt1,omitempty"`
	CdtrAgt         *BranchAndFinancialInstitutionIdentification6 `json:"CdtrAgt,omitempty" xml:"CdtrAgt,omitempty"`
	CdtrAgtAcct     *CashAccount38                                `json:"CdtrAgtAcct,omitempty" xml:"CdtrAgtAcct,omitempty"`
	Cdtr            *Party40Choice                                `json:"Cdtr,omitempty" xml:"Cdtr,omitempty"`
	CdtrAcct        *CashAccount38                                `json:"CdtrAcct,omitempty" xml:"CdtrAcct,omitempty"`
	UltmtCdtr       *Party40Choice                                `json:"UltmtCdtr,omitempty" xml:"UltmtCdtr,omitempty"`
	Purp            *Purpose2Choice                               `json:"Purp,omitempty" xml:"Purp,omitempty"`
	InstrForDbtrAgt *string                                       `json:"InstrForDbtrAgt,omitempty" xml:"InstrForDbtrAgt,omitempty"`
	InstrForNxtAgt  []InstructionForNextAgent1                    `json:"InstrForNxtAgt,omitempty" xml:"InstrForNxtAgt,omitempty"`
	InstrForCdtrAgt []InstructionForCreditorAgent1                `json:"InstrForCdtrAgt,omitempty" xml:"InstrForCdtrAgt,omitempty"`
	RmtInf          *RemittanceInformation16                      `json:"RmtInf,omitempty" xml:"RmtInf,omitempty"`
}

func (p *PaymentComplementaryInformation9) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("instr_id", p.InstrId, 1),
		constraint.MaxLengthOpt("instr_id", p.InstrId, 35),
		constraint.MinLengthOpt("end_to_end_id", p.EndToEndId, 1),
		constraint.MaxLengthOpt("end_to_end_id", p.EndToEndId, 35),
		constraint.MinLengthOpt("tx_id", p.TxId, 1),
		constraint.MaxLengthOpt("tx_id", p.TxId, 35),
		constraint.ValidIf("pmt_tp_inf", p.PmtTpInf),
		constraint.ValidIf("intr_bk_sttlm_amt", p.IntrBkSttlmAmt),
		constraint.ValidIf("amt", p.Amt),
		constraint.ValidIf("ultmt_dbtr", p.UltmtDbtr),
		constraint.ValidIf("dbtr", p.Dbtr),
		constraint.ValidIf("dbtr_acct", p.DbtrAcct),
		constraint.ValidIf("dbtr_agt", p.DbtrAgt),
		constraint.ValidIf("dbtr_agt_acct", p.DbtrAgtAcct),
		constraint.ValidIf("intrmy_agt1", p.IntrmyAgt1),
		constraint.ValidIf("cdtr_agt", p.CdtrAgt),
		constraint.ValidIf("cdtr_agt_acct", p.CdtrAgtAcct),
		constraint.ValidIf("cdtr", p.Cdtr),
		constraint.ValidIf("cdtr_acct", p.CdtrAcct),
		constraint.ValidIf("ultmt_cdtr", p.UltmtCdtr),
		constraint.ValidIf("purp", p.Purp),
		constraint.MinLengthOpt("instr_for_dbtr_agt", p.InstrForDbtrAgt, 1),
		constraint.MaxLengthOpt("instr_for_dbtr_agt", p.InstrForDbtrAgt, 140),
		constraint.Each("instr_for_nxt_agt", p.InstrForNxtAgt),
		constraint.Each("instr_for_cdtr_agt", p.InstrForCdtrAgt),
		constraint.ValidIf("rmt_inf", p.RmtInf),
	)
}

// AdditionalPaymentInformationV09 supplies the complementary details a case
// assignee asked for about an underlying payment.
type AdditionalPaymentInformationV09 struct {
	Assgnmt     CaseAssignment5                  `json:"Assgnmt" xml:"Assgnmt"`
	Case        *Case5                           `json:"Case,omitempty" xml:"Case,omitempty"`
	Undrlyg     UnderlyingTransaction5Choice     `json:"Undrlyg" xml:"Undrlyg"`
	Inf         PaymentComplementaryInformation9 `json:"Inf" xml:"Inf"`
	SplmtryData []SupplementaryData1             `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (a *AdditionalPaymentInformationV09) Validate() error {
	return constraint.Apply(
		constraint.Valid("assgnmt", &a.Assgnmt),
		constraint.ValidIf("case", a.Case),
		constraint.Valid("undrlyg", &a.Undrlyg),
		constraint.Valid("inf", &a.Inf),
		constraint.Each("splmtry_data", a.SplmtryData),
	)
}
