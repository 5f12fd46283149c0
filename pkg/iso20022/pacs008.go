package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// pacs.008.001.08 FI To FI Customer Credit Transfer.

type SettlementInstruction7 struct {
	SttlmMtd             SettlementMethod1Code                         `json:"SttlmMtd" xml:"SttlmMtd"`
	SttlmAcct            *CashAccount38                                `json:"SttlmAcct,omitempty" xml:"SttlmAcct,omitempty"`
	ClrSys               *ClearingSystemIdentification3Choice          `json:"ClrSys,omitempty" xml:"ClrSys,omitempty"`
	InstgRmbrsmntAgt     *BranchAndFinancialInstitutionIdentification6 `json:"InstgRmbrsmntAgt,omitempty" xml:"InstgRmbrsmntAgt,omitempty"`
	InstgRmbrsmntAgtAcct *CashAccount38                                `json:"InstgRmbrsmntAgtAcct,omitempty" xml:"InstgRmbrsmntAgtAcct,omitempty"`
	InstdRmbrsmntAgt     *BranchAndFinancialInstitutionIdentification6 `json:"InstdRmbrsmntAgt,omitempty" xml:"InstdRmbrsmntAgt,omitempty"`
	InstdRmbrsmntAgtAcct *CashAccount38                                `json:"InstdRmbrsmntAgtAcct,omitempty" xml:"InstdRmbrsmntAgtAcct,omitempty"`
	ThrdRmbrsmntAgt      *BranchAndFinancialInstitutionIdentification6 `json:"ThrdRmbrsmntAgt,omitempty" xml:"ThrdRmbrsmntAgt,omitempty"`
	ThrdRmbrsmntAgtAcct  *CashAccount38                                `json:"ThrdRmbrsmntAgtAcct,omitempty" xml:"ThrdRmbrsmntAgtAcct,omitempty"`
}

func (s *SettlementInstruction7) Validate() error {
	return constraint.Apply(
		constraint.Valid("sttlm_mtd", &s.SttlmMtd),
		constraint.ValidIf("sttlm_acct", s.SttlmAcct),
		constraint.ValidIf("clr_sys", s.ClrSys),
		constraint.ValidIf("instg_rmbrsmnt_agt", s.InstgRmbrsmntAgt),
		constraint.ValidIf("instg_rmbrsmnt_agt_acct", s.InstgRmbrsmntAgtAcct),
		constraint.ValidIf("instd_rmbrsmnt_agt", s.InstdRmbrsmntAgt),
		constraint.ValidIf("instd_rmbrsmnt_agt_acct", s.InstdRmbrsmntAgtAcct),
		constraint.ValidIf("thrd_rmbrsmnt_agt", s.ThrdRmbrsmntAgt),
		constraint.ValidIf("thrd_rmbrsmnt_agt_acct", s.ThrdRmbrsmntAgtAcct),
	)
}

type GroupHeader93 struct {
	MsgId             string                                        `json:"MsgId" xml:"MsgId"`
	CreDtTm           string                                        `json:"CreDtTm" xml:"CreDtTm"`
	BtchBookg         *bool                                         `json:"BtchBookg,omitempty" xml:"BtchBookg,omitempty"`
	NbOfTxs           string                                        `json:"NbOfTxs" xml:"NbOfTxs"`
	CtrlSum           *float64                                      `json:"CtrlSum,omitempty" xml:"CtrlSum,omitempty"`
	TtlIntrBkSttlmAmt *ActiveCurrencyAndAmount                      `json:"TtlIntrBkSttlmAmt,omitempty" xml:"TtlIntrBkSttlmAmt,omitempty"`
	IntrBkSttlmDt     *string                                       `json:"IntrBkSttlmDt,omitempty" xml:"IntrBkSttlmDt,omitempty"`
	SttlmInf          SettlementInstruction7                        `json:"SttlmInf" xml:"SttlmInf"`
	PmtTpInf          *PaymentTypeInformation28                     `json:"PmtTpInf,omitempty" xml:"PmtTpInf,omitempty"`
	InstgAgt          *BranchAndFinancialInstitutionIdentification6 `json:"InstgAgt,omitempty" xml:"InstgAgt,omitempty"`
	InstdAgt          *BranchAndFinancialInstitutionIdentification6 `json:"InstdAgt,omitempty" xml:"InstdAgt,omitempty"`
}

func (g *GroupHeader93) Validate() error {
	return constraint.Apply(
		constraint.MinLength("msg_id", g.MsgId, 1),
		constraint.MaxLength("msg_id", g.MsgId, 35),
		constraint.Pattern("nb_of_txs", g.NbOfTxs, PatternMax15Numeric),
		constraint.MinOpt("ctrl_sum", g.CtrlSum, 0),
		constraint.ValidIf("ttl_intr_bk_sttlm_amt", g.TtlIntrBkSttlmAmt),
		constraint.Valid("sttlm_inf", &g.SttlmInf),
		constraint.ValidIf("pmt_tp_inf", g.PmtTpInf),
		constraint.ValidIf("instg_agt", g.InstgAgt),
		constraint.ValidIf("instd_agt", g.InstdAgt),
	)
}

type ServiceLevel8Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (s *ServiceLevel8Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", s.Cd, 1),
		constraint.MaxLengthOpt("cd", s.Cd, 4),
		constraint.MinLengthOpt("prtry", s.Prtry, 1),
		constraint.MaxLengthOpt("prtry", s.Prtry, 35),
	)
}

type LocalInstrument2Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (l *LocalInstrument2Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", l.Cd, 1),
		constraint.MaxLengthOpt("cd", l.Cd, 35),
		constraint.MinLengthOpt("prtry", l.Prtry, 1),
		constraint.MaxLengthOpt("prtry", l.Prtry, 35),
	)
}

type CategoryPurpose1Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *CategoryPurpose1Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", c.Cd, 1),
		constraint.MaxLengthOpt("cd", c.Cd, 4),
		constraint.MinLengthOpt("prtry", c.Prtry, 1),
		constraint.MaxLengthOpt("prtry", c.Prtry, 35),
	)
}

type PaymentTypeInformation28 struct {
	InstrPrty *Priority2Code          `json:"InstrPrty,omitempty" xml:"InstrPrty,omitempty"`
	ClrChanl  *ClearingChannel2Code   `json:"ClrChanl,omitempty" xml:"ClrChanl,omitempty"`
	SvcLvl    []ServiceLevel8Choice   `json:"SvcLvl,omitempty" xml:"SvcLvl,omitempty"`
	LclInstrm *LocalInstrument2Choice `json:"LclInstrm,omitempty" xml:"LclInstrm,omitempty"`
	CtgyPurp  *CategoryPurpose1Choice `json:"CtgyPurp,omitempty" xml:"CtgyPurp,omitempty"`
}

func (p *PaymentTypeInformation28) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("instr_prty", p.InstrPrty),
		constraint.ValidIf("clr_chanl", p.ClrChanl),
		constraint.Each("svc_lvl", p.SvcLvl),
		constraint.ValidIf("lcl_instrm", p.LclInstrm),
		constraint.ValidIf("ctgy_purp", p.CtgyPurp),
	)
}

type PaymentIdentification7 struct {
	InstrId    *string `json:"InstrId,omitempty" xml:"InstrId,omitempty"`
	EndToEndId string  `json:"EndToEndId" xml:"EndToEndId"`
	TxId       *string `json:"TxId,omitempty" xml:"TxId,omitempty"`
	UETR       *string `json:"UETR,omitempty" xml:"UETR,omitempty"`
	ClrSysRef  *string `json:"ClrSysRef,omitempty" xml:"ClrSysRef,omitempty"`
}

func (p *PaymentIdentification7) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("instr_id", p.InstrId, 1),
		constraint.MaxLengthOpt("instr_id", p.InstrId, 35),
		constraint.MinLength("end_to_end_id", p.EndToEndId, 1),
		constraint.MaxLength("end_to_end_id", p.EndToEndId, 35),
		constraint.MinLengthOpt("tx_id", p.TxId, 1),
		constraint.MaxLengthOpt("tx_id", p.TxId, 35),
		constraint.PatternOpt("uetr", p.UETR, PatternUETR),
		constraint.MinLengthOpt("clr_sys_ref", p.ClrSysRef, 1),
		constraint.MaxLengthOpt("clr_sys_ref", p.ClrSysRef, 35),
	)
}

type Charges7 struct {
	Amt ActiveOrHistoricCurrencyAndAmount            `json:"Amt" xml:"Amt"`
	Agt BranchAndFinancialInstitutionIdentification6 `json:"Agt" xml:"Agt"`
}

func (c *Charges7) Validate() error {
	return constraint.Apply(
		constraint.Valid("amt", &c.Amt),
		constraint.Valid("agt", &c.Agt),
	)
}

type SettlementDateTimeIndication1 struct {
	DbtDtTm *string `json:"DbtDtTm,omitempty" xml:"DbtDtTm,omitempty"`
	CdtDtTm *string `json:"CdtDtTm,omitempty" xml:"CdtDtTm,omitempty"`
}

func (s *SettlementDateTimeIndication1) Validate() error { return nil }

type SettlementTimeRequest2 struct {
	CLSTm  *string `json:"CLSTm,omitempty" xml:"CLSTm,omitempty"`
	TillTm *string `json:"TillTm,omitempty" xml:"TillTm,omitempty"`
	FrTm   *string `json:"FrTm,omitempty" xml:"FrTm,omitempty"`
	RjctTm *string `json:"RjctTm,omitempty" xml:"RjctTm,omitempty"`
}

func (s *SettlementTimeRequest2) Validate() error { return nil }

type InstructionForCreditorAgent1 struct {
	Cd       *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	InstrInf *string `json:"InstrInf,omitempty" xml:"InstrInf,omitempty"`
}

func (i *InstructionForCreditorAgent1) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("instr_inf", i.InstrInf, 1),
		constraint.MaxLengthOpt("instr_inf", i.InstrInf, 140),
	)
}

type InstructionForNextAgent1 struct {
	Cd       *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	InstrInf *string `json:"InstrInf,omitempty" xml:"InstrInf,omitempty"`
}

func (i *InstructionForNextAgent1) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("instr_inf", i.InstrInf, 1),
		constraint.MaxLengthOpt("instr_inf", i.InstrInf, 140),
	)
}

type Purpose2Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (p *Purpose2Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", p.Cd, 1),
		constraint.MaxLengthOpt("cd", p.Cd, 4),
		constraint.MinLengthOpt("prtry", p.Prtry, 1),
		constraint.MaxLengthOpt("prtry", p.Prtry, 35),
	)
}

type CreditorReferenceType1Choice struct {
	Cd    *DocumentType3Code `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string            `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *CreditorReferenceType1Choice) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("cd", c.Cd),
		constraint.MinLengthOpt("prtry", c.Prtry, 1),
		constraint.MaxLengthOpt("prtry", c.Prtry, 35),
	)
}

type CreditorReferenceType2 struct {
	CdOrPrtry CreditorReferenceType1Choice `json:"CdOrPrtry" xml:"CdOrPrtry"`
	Issr      *string                      `json:"Issr,omitempty" xml:"Issr,omitempty"`
}

func (c *CreditorReferenceType2) Validate() error {
	return constraint.Apply(
		constraint.Valid("cd_or_prtry", &c.CdOrPrtry),
		constraint.MinLengthOpt("issr", c.Issr, 1),
		constraint.MaxLengthOpt("issr", c.Issr, 35),
	)
}

type CreditorReferenceInformation2 struct {
	Tp  *CreditorReferenceType2 `json:"Tp,omitempty" xml:"Tp,omitempty"`
	Ref *string                 `json:"Ref,omitempty" xml:"Ref,omitempty"`
}

func (c *CreditorReferenceInformation2) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("tp", c.Tp),
		constraint.MinLengthOpt("ref", c.Ref, 1),
		constraint.MaxLengthOpt("ref", c.Ref, 35),
	)
}

type StructuredRemittanceInformation16 struct {
	CdtrRefInf  *CreditorReferenceInformation2 `json:"CdtrRefInf,omitempty" xml:"CdtrRefInf,omitempty"`
	AddtlRmtInf []string                       `json:"AddtlRmtInf,omitempty" xml:"AddtlRmtInf,omitempty"`
}

func (s *StructuredRemittanceInformation16) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("cdtr_ref_inf", s.CdtrRefInf),
		constraint.LengthEach("addtl_rmt_inf", s.AddtlRmtInf, 1, 140),
	)
}

type RemittanceInformation16 struct {
	Ustrd []string                            `json:"Ustrd,omitempty" xml:"Ustrd,omitempty"`
	Strd  []StructuredRemittanceInformation16 `json:"Strd,omitempty" xml:"Strd,omitempty"`
}

func (r *RemittanceInformation16) Validate() error {
	return constraint.Apply(
		constraint.LengthEach("ustrd", r.Ustrd, 1, 140),
		constraint.Each("strd", r.Strd),
	)
}

type RegulatoryAuthority2 struct {
	Nm   *string `json:"Nm,omitempty" xml:"Nm,omitempty"`
	Ctry *string `json:"Ctry,omitempty" xml:"Ctry,omitempty"`
}

func (r *RegulatoryAuthority2) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("nm", r.Nm, 1),
		constraint.MaxLengthOpt("nm", r.Nm, 140),
		constraint.PatternOpt("ctry", r.Ctry, PatternCountryCode),
	)
}

type StructuredRegulatoryReporting3 struct {
	Tp   *string                            `json:"Tp,omitempty" xml:"Tp,omitempty"`
	Dt   *string                            `json:"Dt,omitempty" xml:"Dt,omitempty"`
	Ctry *string                            `json:"Ctry,omitempty" xml:"Ctry,omitempty"`
	Cd   *string                            `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Amt  *ActiveOrHistoricCurrencyAndAmount `json:"Amt,omitempty" xml:"Amt,omitempty"`
	Inf  []string                           `json:"Inf,omitempty" xml:"Inf,omitempty"`
}

func (s *StructuredRegulatoryReporting3) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("tp", s.Tp, 1),
		constraint.MaxLengthOpt("tp", s.Tp, 35),
		constraint.PatternOpt("ctry", s.Ctry, PatternCountryCode),
		constraint.MinLengthOpt("cd", s.Cd, 1),
		constraint.MaxLengthOpt("cd", s.Cd, 10),
		constraint.ValidIf("amt", s.Amt),
		constraint.LengthEach("inf", s.Inf, 1, 35),
	)
}

type RegulatoryReporting3 struct {
	Authrty *RegulatoryAuthority2            `json:"Authrty,omitempty" xml:"Authrty,omitempty"`
	Dtls    []StructuredRegulatoryReporting3 `json:"Dtls,omitempty" xml:"Dtls,omitempty"`
}

func (r *RegulatoryReporting3) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("authrty", r.Authrty),
		constraint.Each("dtls", r.Dtls),
	)
}

type CreditTransferTransaction39 struct {
	PmtId             PaymentIdentification7                        `json:"PmtId" xml:"PmtId"`
	PmtTpInf          *PaymentTypeInformation28                     `json:"PmtTpInf,omitempty" xml:"PmtTpInf,omitempty"`
	IntrBkSttlmAmt    ActiveCurrencyAndAmount                       `json:"IntrBkSttlmAmt" xml:"IntrBkSttlmAmt"`
	IntrBkSttlmDt     *string                                       `json:"IntrBkSttlmDt,omitempty" xml:"IntrBkSttlmDt,omitempty"`
	SttlmPrty         *Priority3Code                                `json:"SttlmPrty,omitempty" xml:"SttlmPrty,omitempty"`
	SttlmTmIndctn     *SettlementDateTimeIndication1                `json:"SttlmTmIndctn,omitempty" xml:"SttlmTmIndctn,omitempty"`
	SttlmTmReq        *SettlementTimeRequest2                       `json:"SttlmTmReq,omitempty" xml:"SttlmTmReq,omitempty"`
	AccptncDtTm       *string                                       `json:"AccptncDtTm,omitempty" xml:"AccptncDtTm,omitempty"`
	InstdAmt          *ActiveOrHistoricCurrencyAndAmount            `json:"InstdAmt,omitempty" xml:"InstdAmt,omitempty"`
	XchgRate          *float64                                      `json:"XchgRate,omitempty" xml:"XchgRate,omitempty"`
	ChrgBr            ChargeBearerType1Code                         `json:"ChrgBr" xml:"ChrgBr"`
	ChrgsInf          []Charges7                                    `json:"ChrgsInf,omitempty" xml:"ChrgsInf,omitempty"`
	PrvsInstgAgt1     *BranchAndFinancialInstitutionIdentification6 `json:"PrvsInstgAgt1,omitempty" xml:"PrvsInstgAgt1,omitempty"`
	PrvsInstgAgt1Acct *CashAccount38                                `json:"PrvsInstgAgt1Acct,omitempty" xml:"PrvsInstgAgt1Acct,omitempty"`
	InstgAgt          *BranchAndFinancialInstitutionIdentification6 `json:"InstgAgt,omitempty" xml:"InstgAgt,omitempty"`
	InstdAgt          *BranchAndFinancialInstitutionIdentification6 `json:"InstdAgt,omitempty" xml:"InstdAgt,omitempty"`
	IntrmyAgt1        *BranchAndFinancialInstitutionIdentification6 `json:"IntrmyAgt1,omitempty" xml:"IntrmyAgt1,omitempty"`
	IntrmyAgt1Acct    *CashAccount38                                `json:"IntrmyAgt1Acct,omitempty" xml:"IntrmyAgt1Acct,omitempty"`
	UltmtDbtr         *PartyIdentification135                       `json:"UltmtDbtr,omitempty" xml:"UltmtDbtr,omitempty"`
	InitgPty          *PartyIdentification135                       `json:"InitgPty,omitempty" xml:"InitgPty,omitempty"`
	Dbtr              PartyIdentification135                        `json:"Dbtr" xml:"Dbtr"`
	DbtrAcct          *CashAccount38                                `json:"DbtrAcct,omitempty" xml:"DbtrAcct,omitempty"`
	DbtrAgt           BranchAndFinancialInstitutionIdentification6  `json:"DbtrAgt" xml:"DbtrAgt"`
	DbtrAgtAcct       *CashAccount38                                `json:"DbtrAgtAcct,omitempty" xml:"DbtrAgtAcct,omitempty"`
	CdtrAgt           BranchAndFinancialInstitutionIdentification6  `json:"CdtrAgt" xml:"CdtrAgt"`
	CdtrAgtAcct       *CashAccount38                                `json:"CdtrAgtAcct,omitempty" xml:"CdtrAgtAcct,omitempty"`
	Cdtr              PartyIdentification135                        `json:"Cdtr" xml:"Cdtr"`
	CdtrAcct          *CashAccount38                                `json:"CdtrAcct,omitempty" xml:"CdtrAcct,omitempty"`
	UltmtCdtr         *PartyIdentification135                       `json:"UltmtCdtr,omitempty" xml:"UltmtCdtr,omitempty"`
	InstrForCdtrAgt   []InstructionForCreditorAgent1                `json:"InstrForCdtrAgt,omitempty" xml:"InstrForCdtrAgt,omitempty"`
	InstrForNxtAgt    []InstructionForNextAgent1                    `json:"InstrForNxtAgt,omitempty" xml:"InstrForNxtAgt,omitempty"`
	Purp              *Purpose2Choice                               `json:"Purp,omitempty" xml:"Purp,omitempty"`
	RgltryRptg        []RegulatoryReporting3                        `json:"RgltryRptg,omitempty" xml:"RgltryRptg,omitempty"`
	RmtInf            *RemittanceInformation16                      `json:"RmtInf,omitempty" xml:"RmtInf,omitempty"`
	SplmtryData       []SupplementaryData1                          `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (c *CreditTransferTransaction39) Validate() error {
	return constraint.Apply(
		constraint.Valid("pmt_id", &c.PmtId),
		constraint.ValidIf("pmt_tp_inf", c.PmtTpInf),
		constraint.Valid("intr_bk_sttlm_amt", &c.IntrBkSttlmAmt),
		constraint.ValidIf("sttlm_prty", c.SttlmPrty),
		constraint.ValidIf("sttlm_tm_indctn", c.SttlmTmIndctn),
		constraint.ValidIf("sttlm_tm_req", c.SttlmTmReq),
		constraint.ValidIf("instd_amt", c.InstdAmt),
		constraint.Valid("chrg_br", &c.ChrgBr),
		constraint.Each("chrgs_inf", c.ChrgsInf),
		constraint.ValidIf("prvs_instg_agt1", c.PrvsInstgAgt1),
		constraint.ValidIf("prvs_instg_agt1_acct", c.PrvsInstgAgt1Acct),
		constraint.ValidIf("instg_agt", c.InstgAgt),
		constraint.ValidIf("instd_agt", c.InstdAgt),
		constraint.ValidIf("intrmy_agt1", c.IntrmyAgt1),
		constraint.ValidIf("intrmy_agt1_acct", c.IntrmyAgt1Acct),
		constraint.ValidIf("ultmt_dbtr", c.UltmtDbtr),
		constraint.ValidIf("initg_pty", c.InitgPty),
		constraint.Valid("dbtr", &c.Dbtr),
		constraint.ValidIf("dbtr_acct", c.DbtrAcct),
		constraint.Valid("dbtr_agt", &c.DbtrAgt),
		constraint.ValidIf("dbtr_agt_acct", c.DbtrAgtAcct),
		constraint.Valid("cdtr_agt", &c.CdtrAgt),
		constraint.ValidIf("cdtr_agt_acct", c.CdtrAgtAcct),
		constraint.Valid("cdtr", &c.Cdtr),
		constraint.ValidIf("cdtr_acct", c.CdtrAcct),
		constraint.ValidIf("ultmt_cdtr", c.UltmtCdtr),
		constraint.Each("instr_for_cdtr_agt", c.InstrForCdtrAgt),
		constraint.Each("instr_for_nxt_agt", c.InstrForNxtAgt),
		constraint.ValidIf("purp", c.Purp),
		constraint.Each("rgltry_rptg", c.RgltryRptg),
		constraint.ValidIf("rmt_inf", c.RmtInf),
		constraint.Each("splmtry_data", c.SplmtryData),
	)
}

// FIToFICustomerCreditTransferV08 moves funds between debtor and creditor
// accounts across financial institutions.
type FIToFICustomerCreditTransferV08 struct {
	GrpHdr      GroupHeader93                 `json:"GrpHdr" xml:"GrpHdr"`
	CdtTrfTxInf []CreditTransferTransaction39 `json:"CdtTrfTxInf" xml:"CdtTrfTxInf"`
	SplmtryData []SupplementaryData1          `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (f *FIToFICustomerCreditTransferV08) Validate() error {
	return constraint.Apply(
		constraint.Valid("grp_hdr", &f.GrpHdr),
		constraint.Each("cdt_trf_tx_inf", f.CdtTrfTxInf),
		constraint.Each("splmtry_data", f.SplmtryData),
	)
}
