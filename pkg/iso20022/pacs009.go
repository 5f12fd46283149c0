package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// pacs.009.001.08 Financial Institution Credit Transfer.

type RemittanceInformation2 struct {
	Ustrd []string `json:"Ustrd,omitempty" xml:"Ustrd,omitempty"`
}

func (r *RemittanceInformation2) Validate() error {
	return constraint.Apply(
		constraint.LengthEach("ustrd", r.Ustrd, 1, 140),
	)
}

type InstructionForCreditorAgent2 struct {
	Cd       *Instruction5Code `json:"Cd,omitempty" xml:"Cd,omitempty"`
	InstrInf *string           `json:"InstrInf,omitempty" xml:"InstrInf,omitempty"`
}

func (i *InstructionForCreditorAgent2) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("cd", i.Cd),
		constraint.MinLengthOpt("instr_inf", i.InstrInf, 1),
		constraint.MaxLengthOpt("instr_inf", i.InstrInf, 140),
	)
}

// CreditTransferTransaction37 describes the customer credit transfer that
// underlies a cover payment between institutions.
type CreditTransferTransaction37 struct {
	UltmtDbtr       *PartyIdentification135                       `json:"UltmtDbtr,omitempty" xml:"UltmtDbtr,omitempty"`
	InitgPty        *PartyIdentification135                       `json:"InitgPty,omitempty" xml:"InitgPty,omitempty"`
	Dbtr            PartyIdentification135                        `json:"Dbtr" xml:"Dbtr"`
	DbtrAcct        *CashAccount38                                `json:"DbtrAcct,omitempty" xml:"DbtrAcct,omitempty"`
	DbtrAgt         BranchAndFinancialInstitutionIdentification6  `json:"DbtrAgt" xml:"DbtrAgt"`
	DbtrAgtAcct     *CashAccount38                                `json:"DbtrAgtAcct,omitempty" xml:"DbtrAgtAcct,omitempty"`
	IntrmyAgt1      *BranchAndFinancialInstitutionIdentification6 `json:"IntrmyAgt1,omitempty" xml:"IntrmyAgt1,omitempty"`
	IntrmyAgt1Acct  *CashAccount38                                `json:"IntrmyAgt1Acct,omitempty" xml:"IntrmyAgt1Acct,omitempty"`
	CdtrAgt         BranchAndFinancialInstitutionIdentification6  `json:"CdtrAgt" xml:"CdtrAgt"`
	CdtrAgtAcct     *CashAccount38                                `json:"CdtrAgtAcct,omitempty" xml:"CdtrAgtAcct,omitempty"`
	Cdtr            PartyIdentification135                        `json:"Cdtr" xml:"Cdtr"`
	CdtrAcct        *CashAccount38                                `json:"CdtrAcct,omitempty" xml:"CdtrAcct,omitempty"`
	UltmtCdtr       *PartyIdentification135                       `json:"UltmtCdtr,omitempty" xml:"UltmtCdtr,omitempty"`
	InstrForCdtrAgt []InstructionForCreditorAgent1                `json:"InstrForCdtrAgt,omitempty" xml:"InstrForCdtrAgt,omitempty"`
	InstrForNxtAgt  []InstructionForNextAgent1                    `json:"InstrForNxtAgt,omitempty" xml:"InstrForNxtAgt,omitempty"`
	RmtInf          *RemittanceInformation16                      `json:"RmtInf,omitempty" xml:"RmtInf,omitempty"`
	InstdAmt        *ActiveOrHistoricCurrencyAndAmount            `json:"InstdAmt,omitempty" xml:"InstdAmt,omitempty"`
}

func (c *CreditTransferTransaction37) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("ultmt_dbtr", c.UltmtDbtr),
		constraint.ValidIf("initg_pty", c.InitgPty),
		constraint.Valid("dbtr", &c.Dbtr),
		constraint.ValidIf("dbtr_acct", c.DbtrAcct),
		constraint.Valid("dbtr_agt", &c.DbtrAgt),
		constraint.ValidIf("dbtr_agt_acct", c.DbtrAgtAcct),
		constraint.ValidIf("intrmy_agt1", c.IntrmyAgt1),
		constraint.ValidIf("intrmy_agt1_acct", c.IntrmyAgt1Acct),
		constraint.Valid("cdtr_agt", &c.CdtrAgt),
		constraint.ValidIf("cdtr_agt_acct", c.CdtrAgtAcct),
		constraint.Valid("cdtr", &c.Cdtr),
		constraint.ValidIf("cdtr_acct", c.CdtrAcct),
		constraint.ValidIf("ultmt_cdtr", c.UltmtCdtr),
		constraint.Each("instr_for_cdtr_agt", c.InstrForCdtrAgt),
		constraint.Each("instr_for_nxt_agt", c.InstrForNxtAgt),
		constraint.ValidIf("rmt_inf", c.RmtInf),
		constraint.ValidIf("instd_amt", c.InstdAmt),
	)
}

type CreditTransferTransaction36 struct {
	PmtId              PaymentIdentification7                        `json:"PmtId" xml:"PmtId"`
	PmtTpInf           *PaymentTypeInformation28                     `json:"PmtTpInf,omitempty" xml:"PmtTpInf,omitempty"`
	IntrBkSttlmAmt     ActiveCurrencyAndAmount                       `json:"IntrBkSttlmAmt" xml:"IntrBkSttlmAmt"`
	IntrBkSttlmDt      *string                                       `json:"IntrBkSttlmDt,omitempty" xml:"IntrBkSttlmDt,omitempty"`
	SttlmPrty          *Priority3Code                                `json:"SttlmPrty,omitempty" xml:"SttlmPrty,omitempty"`
	SttlmTmIndctn      *SettlementDateTimeIndication1                `json:"SttlmTmIndctn,omitempty" xml:"SttlmTmIndctn,omitempty"`
	SttlmTmReq         *SettlementTimeRequest2                       `json:"SttlmTmReq,omitempty" xml:"SttlmTmReq,omitempty"`
	PrvsInstgAgt1      *BranchAndFinancialInstitutionIdentification6 `json:"PrvsInstgAgt1,omitempty" xml:"PrvsInstgAgt1,omitempty"`
	PrvsInstgAgt1Acct  *CashAccount38                                `json:"PrvsInstgAgt1Acct,omitempty" xml:"PrvsInstgAgt1Acct,omitempty"`
	InstgAgt           *BranchAndFinancialInstitutionIdentification6 `json:"InstgAgt,omitempty" xml:"InstgAgt,omitempty"`
	InstdAgt           *BranchAndFinancialInstitutionIdentification6 `json:"InstdAgt,omitempty" xml:"InstdAgt,omitempty"`
	IntrmyAgt1         *BranchAndFinancialInstitutionIdentification6 `json:"IntrmyAgt1,omitempty" xml:"IntrmyAgt1,omitempty"`
	IntrmyAgt1Acct     *CashAccount38                                `json:"IntrmyAgt1Acct,omitempty" xml:"IntrmyAgt1Acct,omitempty"`
	UltmtDbtr          *BranchAndFinancialInstitutionIdentification6 `json:"UltmtDbtr,omitempty" xml:"UltmtDbtr,omitempty"`
	Dbtr               BranchAndFinancialInstitutionIdentification6  `json:"Dbtr" xml:"Dbtr"`
	DbtrAcct           *CashAccount38                                `json:"DbtrAcct,omitempty" xml:"DbtrAcct,omitempty"`
	DbtrAgt            *BranchAndFinancialInstitutionIdentification6 `json:"DbtrAgt,omitempty" xml:"DbtrAgt,omitempty"`
	DbtrAgtAcct        *CashAccount38                                `json:"DbtrAgtAcct,omitempty" xml:"DbtrAgtAcct,omitempty"`
	CdtrAgt            *BranchAndFinancialInstitutionIdentification6 `json:"CdtrAgt,omitempty" xml:"CdtrAgt,omitempty"`
	CdtrAgtAcct        *CashAccount38                                `json:"CdtrAgtAcct,omitempty" xml:"CdtrAgtAcct,omitempty"`
	Cdtr               BranchAndFinancialInstitutionIdentification6  `json:"Cdtr" xml:"Cdtr"`
	CdtrAcct           *CashAccount38                                `json:"CdtrAcct,omitempty" xml:"CdtrAcct,omitempty"`
	UltmtCdtr          *BranchAndFinancialInstitutionIdentification6 `json:"UltmtCdtr,omitempty" xml:"UltmtCdtr,omitempty"`
	InstrForCdtrAgt    []InstructionForCreditorAgent2                `json:"InstrForCdtrAgt,omitempty" xml:"InstrForCdtrAgt,omitempty"`
	InstrForNxtAgt     []InstructionForNextAgent1                    `json:"InstrForNxtAgt,omitempty" xml:"InstrForNxtAgt,omitempty"`
	Purp               *Purpose2Choice                               `json:"Purp,omitempty" xml:"Purp,omitempty"`
	RmtInf             *RemittanceInformation2                       `json:"RmtInf,omitempty" xml:"RmtInf,omitempty"`
	UndrlygCstmrCdtTrf *CreditTransferTransaction37                  `json:"UndrlygCstmrCdtTrf,omitempty" xml:"UndrlygCstmrCdtTrf,omitempty"`
	SplmtryData        []SupplementaryData1                          `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (c *CreditTransferTransaction36) Validate() error {
	return constraint.Apply(
		constraint.Valid("pmt_id", &c.PmtId),
		constraint.ValidIf("pmt_tp_inf", c.PmtTpInf),
		constraint.Valid("intr_bk_sttlm_amt", &c.IntrBkSttlmAmt),
		constraint.ValidIf("sttlm_prty", c.SttlmPrty),
		constraint.ValidIf("sttlm_tm_indctn", c.SttlmTmIndctn),
		constraint.ValidIf("sttlm_tm_req", c.SttlmTmReq),
		constraint.ValidIf("prvs_instg_agt1", c.PrvsInstgAgt1),
		constraint.ValidIf("prvs_instg_agt1_acct", c.PrvsInstgAgt1Acct),
		constraint.ValidIf("instg_agt", c.InstgAgt),
		constraint.ValidIf("instd_agt", c.InstdAgt),
		constraint.ValidIf("intrmy_agt1", c.IntrmyAgt1),
		constraint.ValidIf("intrmy_agt1_acct", c.IntrmyAgt1Acct),
		constraint.ValidIf("ultmt_dbtr", c.UltmtDbtr),
		constraint.Valid("dbtr", &c.Dbtr),
		constraint.ValidIf("dbtr_acct", c.DbtrAcct),
		constraint.ValidIf("dbtr_agt", c.DbtrAgt),
		constraint.ValidIf("dbtr_agt_acct", c.DbtrAgtAcct),
		constraint.ValidIf("cdtr_agt", c.CdtrAgt),
		constraint.ValidIf("cdtr_agt_acct", c.CdtrAgtAcct),
		constraint.Valid("cdtr", &c.Cdtr),
		constraint.ValidIf("cdtr_acct", c.CdtrAcct),
		constraint.ValidIf("ultmt_cdtr", c.UltmtCdtr),
		constraint.Each("instr_for_cdtr_agt", c.InstrForCdtrAgt),
		constraint.Each("instr_for_nxt_agt", c.InstrForNxtAgt),
		constraint.ValidIf("purp", c.Purp),
		constraint.ValidIf("rmt_inf", c.RmtInf),
		constraint.ValidIf("undrlyg_cstmr_cdt_trf", c.UndrlygCstmrCdtTrf),
		constraint.Each("splmtry_data", c.SplmtryData),
	)
}

// FinancialInstitutionCreditTransferV08 moves funds between financial
// institutions, including the cover leg of customer payments.
type FinancialInstitutionCreditTransferV08 struct {
	GrpHdr      GroupHeader93                 `json:"GrpHdr" xml:"GrpHdr"`
	CdtTrfTxInf []CreditTransferTransaction36 `json:"CdtTrfTxInf" xml:"CdtTrfTxInf"`
	SplmtryData []SupplementaryData1          `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (f *FinancialInstitutionCreditTransferV08) Validate() error {
	return constraint.Apply(
		constraint.Valid("grp_hdr", &f.GrpHdr),
		constraint.Each("cdt_trf_tx_inf", f.CdtTrfTxInf),
		constraint.Each("splmtry_data", f.SplmtryData),
	)
}
