package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// pain.013.001.07 Creditor Payment Activation Request.

type GroupHeader78 struct {
	MsgId    string                 `json:"MsgId" xml:"MsgId"`
	CreDtTm  string                 `json:"CreDtTm" xml:"CreDtTm"`
	NbOfTxs  string                 `json:"NbOfTxs" xml:"NbOfTxs"`
	CtrlSum  *float64               `json:"CtrlSum,omitempty" xml:"CtrlSum,omitempty"`
	InitgPty PartyIdentification135 `json:"InitgPty" xml:"InitgPty"`
}

func (g *GroupHeader78) Validate() error {
	return constraint.Apply(
		constraint.MinLength("msg_id", g.MsgId, 1),
		constraint.MaxLength("msg_id", g.MsgId, 35),
		constraint.Pattern("nb_of_txs", g.NbOfTxs, PatternMax15Numeric),
		constraint.MinOpt("ctrl_sum", g.CtrlSum, 0),
		constraint.Valid("initg_pty", &g.InitgPty),
	)
}

type PaymentTypeInformation26 struct {
	InstrPrty *Priority2Code          `json:"InstrPrty,omitempty" xml:"InstrPrty,omitempty"`
	SvcLvl    []ServiceLevel8Choice   `json:"SvcLvl,omitempty" xml:"SvcLvl,omitempty"`
	LclInstrm *LocalInstrument2Choice `json:"LclInstrm,omitempty" xml:"LclInstrm,omitempty"`
	CtgyPurp  *CategoryPurpose1Choice `json:"CtgyPurp,omitempty" xml:"CtgyPurp,omitempty"`
}

func (p *PaymentTypeInformation26) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("instr_prty", p.InstrPrty),
		constraint.Each("svc_lvl", p.SvcLvl),
		constraint.ValidIf("lcl_instrm", p.LclInstrm),
		constraint.ValidIf("ctgy_purp", p.CtgyPurp),
	)
}

type PaymentIdentification6 struct {
	InstrId    *string `json:"InstrId,omitempty" xml:"InstrId,omitempty"`
	EndToEndId string  `json:"EndToEndId" xml:"EndToEndId"`
	UETR       *string `json:"UETR,omitempty" xml:"UETR,omitempty"`
}

func (p *PaymentIdentification6) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("instr_id", p.InstrId, 1),
		constraint.MaxLengthOpt("instr_id", p.InstrId, 35),
		constraint.MinLength("end_to_end_id", p.EndToEndId, 1),
		constraint.MaxLength("end_to_end_id", p.EndToEndId, 35),
		constraint.PatternOpt("uetr", p.UETR, PatternUETR),
	)
}

type AmountOrRate1Choice struct {
	Amt  *ActiveCurrencyAndAmount `json:"Amt,omitempty" xml:"Amt,omitempty"`
	Rate *float64                 `json:"Rate,omitempty" xml:"Rate,omitempty"`
}

func (c *AmountOrRate1Choice) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("amt", c.Amt),
	)
}

// PaymentCondition1 states the terms under which the debtor may act on the
// request.
type PaymentCondition1 struct {
	AmtModAllwd   bool                 `json:"AmtModAllwd" xml:"AmtModAllwd"`
	EarlyPmtAllwd bool                 `json:"EarlyPmtAllwd" xml:"EarlyPmtAllwd"`
	DelyPnlty     *string              `json:"DelyPnlty,omitempty" xml:"DelyPnlty,omitempty"`
	ImdtPmtRbt    *AmountOrRate1Choice `json:"ImdtPmtRbt,omitempty" xml:"ImdtPmtRbt,omitempty"`
	GrntedPmtReqd bool                 `json:"GrntedPmtReqd" xml:"GrntedPmtReqd"`
}

func (p *PaymentCondition1) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("dely_pnlty", p.DelyPnlty, 1),
		constraint.MaxLengthOpt("dely_pnlty", p.DelyPnlty, 140),
		constraint.ValidIf("imdt_pmt_rbt", p.ImdtPmtRbt),
	)
}

type CreditTransferTransaction35 struct {
	PmtId           PaymentIdentification6                        `json:"PmtId" xml:"PmtId"`
	PmtTpInf        *PaymentTypeInformation26                     `json:"PmtTpInf,omitempty" xml:"PmtTpInf,omitempty"`
	PmtCond         *PaymentCondition1                            `json:"PmtCond,omitempty" xml:"PmtCond,omitempty"`
	Amt             AmountType4Choice                             `json:"Amt" xml:"Amt"`
	ChrgBr          ChargeBearerType1Code                         `json:"ChrgBr" xml:"ChrgBr"`
	UltmtDbtr       *PartyIdentification135                       `json:"UltmtDbtr,omitempty" xml:"UltmtDbtr,omitempty"`
	IntrmyAgt1      *BranchAndFinancialInstitutionIdentification6 `json:"IntrmyAgt1,omitempty" xml:"IntrmyAgt1,omitempty"`
	IntrmyAgt2      *BranchAndFinancialInstitutionIdentification6 `json:"IntrmyAgt2,omitempty" xml:"IntrmyAgt2,omitempty"`
	IntrmyAgt3      *BranchAndFinancialInstitutionIdentification6 `json:"IntrmyAgt3,omitempty" xml:"IntrmyAgt3,omitempty"`
	CdtrAgt         BranchAndFinancialInstitutionIdentification6  `json:"CdtrAgt" xml:"CdtrAgt"`
	Cdtr            PartyIdentification135                        `json:"Cdtr" xml:"Cdtr"`
	CdtrAcct        *CashAccount38                                `json:"CdtrAcct,omitempty" xml:"CdtrAcct,omitempty"`
	UltmtCdtr       *PartyIdentification135                       `json:"UltmtCdtr,omitempty" xml:"UltmtCdtr,omitempty"`
	InstrForCdtrAgt []InstructionForCreditorAgent1                `json:"InstrForCdtrAgt,omitempty" xml:"InstrForCdtrAgt,omitempty"`
	Purp            *Purpose2Choice                               `json:"Purp,omitempty" xml:"Purp,omitempty"`
	RgltryRptg      []RegulatoryReporting3                        `json:"RgltryRptg,omitempty" xml:"RgltryRptg,omitempty"`
	RmtInf          *RemittanceInformation16                      `json:"RmtInf,omitempty" xml:"RmtInf,omitempty"`
	SplmtryData     []SupplementaryData1                          `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (c *CreditTransferTransaction35) Validate() error {
	return constraint.Apply(
		constraint.Valid("pmt_id", &c.PmtId),
		constraint.ValidIf("pmt_tp_inf", c.PmtTpInf),
		constraint.ValidIf("pmt_cond", c.PmtCond),
		constraint.Valid("amt", &c.Amt),
		constraint.Valid("chrg_br", &c.ChrgBr),
		constraint.ValidIf("ultmt_dbtr", c.UltmtDbtr),
		constraint.ValidIf("intrmy_agt1", c.IntrmyAgt1),
		constraint.ValidIf("intrmy_agt2", c.IntrmyAgt2),
		constraint.ValidIf("intrmy_agt3", c.IntrmyAgt3),
		constraint.Valid("cdtr_agt", &c.CdtrAgt),
		constraint.Valid("cdtr", &c.Cdtr),
		constraint.ValidIf("cdtr_acct", c.CdtrAcct),
		constraint.ValidIf("ultmt_cdtr", c.UltmtCdtr),
		constraint.Each("instr_for_cdtr_agt", c.InstrForCdtrAgt),
		constraint.ValidIf("purp", c.Purp),
		constraint.Each("rgltry_rptg", c.RgltryRptg),
		constraint.ValidIf("rmt_inf", c.RmtInf),
		constraint.Each("splmtry_data", c.SplmtryData),
	)
}

type PaymentInstruction31 struct {
	PmtInfId    *string                                      `json:"PmtInfId,omitempty" xml:"PmtInfId,omitempty"`
	PmtMtd      PaymentMethod7Code                           `json:"PmtMtd" xml:"PmtMtd"`
	PmtTpInf    *PaymentTypeInformation26                    `json:"PmtTpInf,omitempty" xml:"PmtTpInf,omitempty"`
	ReqdExctnDt DateAndDateTime2Choice                       `json:"ReqdExctnDt" xml:"ReqdExctnDt"`
	XpryDt      *DateAndDateTime2Choice                      `json:"XpryDt,omitempty" xml:"XpryDt,omitempty"`
	PmtCond     *PaymentCondition1                           `json:"PmtCond,omitempty" xml:"PmtCond,omitempty"`
	Dbtr        PartyIdentification135                       `json:"Dbtr" xml:"Dbtr"`
	DbtrAcct    *CashAccount38                               `json:"DbtrAcct,omitempty" xml:"DbtrAcct,omitempty"`
	DbtrAgt     BranchAndFinancialInstitutionIdentification6 `json:"DbtrAgt" xml:"DbtrAgt"`
	UltmtDbtr   *PartyIdentification135                      `json:"UltmtDbtr,omitempty" xml:"UltmtDbtr,omitempty"`
	ChrgBr      *ChargeBearerType1Code                       `json:"ChrgBr,omitempty" xml:"ChrgBr,omitempty"`
	CdtTrfTx    []CreditTransferTransaction35                `json:"CdtTrfTx" xml:"CdtTrfTx"`
}

func (p *PaymentInstruction31) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("pmt_inf_id", p.PmtInfId, 1),
		constraint.MaxLengthOpt("pmt_inf_id", p.PmtInfId, 35),
		constraint.Valid("pmt_mtd", &p.PmtMtd),
		constraint.ValidIf("pmt_tp_inf", p.PmtTpInf),
		constraint.ValidIf("pmt_cond", p.PmtCond),
		constraint.Valid("dbtr", &p.Dbtr),
		constraint.ValidIf("dbtr_acct", p.DbtrAcct),
		constraint.Valid("dbtr_agt", &p.DbtrAgt),
		constraint.ValidIf("ultmt_dbtr", p.UltmtDbtr),
		constraint.ValidIf("chrg_br", p.ChrgBr),
		constraint.Each("cdt_trf_tx", p.CdtTrfTx),
	)
}

// CreditorPaymentActivationRequestV07 lets a creditor request payment from a
// debtor, the request-for-payment leg of an instant payment.
type CreditorPaymentActivationRequestV07 struct {
	GrpHdr      GroupHeader78          `json:"GrpHdr" xml:"GrpHdr"`
	PmtInf      []PaymentInstruction31 `json:"PmtInf" xml:"PmtInf"`
	SplmtryData []SupplementaryData1   `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (c *CreditorPaymentActivationRequestV07) Validate() error {
	return constraint.Apply(
		constraint.Valid("grp_hdr", &c.GrpHdr),
		constraint.Each("pmt_inf", c.PmtInf),
		constraint.Each("splmtry_data", c.SplmtryData),
	)
}
