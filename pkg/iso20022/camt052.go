package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// camt.052.001.08 Bank To Customer Account Report.

type Pagination1 struct {
	PgNb      string `json:"PgNb" xml:"PgNb"`
	LastPgInd bool   `json:"LastPgInd" xml:"LastPgInd"`
}

func (p *Pagination1) Validate() error {
	return constraint.Apply(
		constraint.Pattern("pg_nb", p.PgNb, PatternMax5Numeric),
	)
}

type GroupHeader81 struct {
	MsgId       string                  `json:"MsgId" xml:"MsgId"`
	CreDtTm     string                  `json:"CreDtTm" xml:"CreDtTm"`
	MsgRcpt     *PartyIdentification135 `json:"MsgRcpt,omitempty" xml:"MsgRcpt,omitempty"`
	MsgPgntn    *Pagination1            `json:"MsgPgntn,omitempty" xml:"MsgPgntn,omitempty"`
	OrgnlBizQry *OriginalBusinessQuery1 `json:"OrgnlBizQry,omitempty" xml:"OrgnlBizQry,omitempty"`
	AddtlInf    *string                 `json:"AddtlInf,omitempty" xml:"AddtlInf,omitempty"`
}

func (g *GroupHeader81) Validate() error {
	return constraint.Apply(
		constraint.MinLength("msg_id", g.MsgId, 1),
		constraint.MaxLength("msg_id", g.MsgId, 35),
		constraint.ValidIf("msg_rcpt", g.MsgRcpt),
		constraint.ValidIf("msg_pgntn", g.MsgPgntn),
		constraint.ValidIf("orgnl_biz_qry", g.OrgnlBizQry),
		constraint.MinLengthOpt("addtl_inf", g.AddtlInf, 1),
		constraint.MaxLengthOpt("addtl_inf", g.AddtlInf, 500),
	)
}

type ReportingSource1Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (r *ReportingSource1Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", r.Cd, 1),
		constraint.MaxLengthOpt("cd", r.Cd, 4),
		constraint.MinLengthOpt("prtry", r.Prtry, 1),
		constraint.MaxLengthOpt("prtry", r.Prtry, 35),
	)
}

type CashAccount39 struct {
	Id   AccountIdentification4Choice                  `json:"Id" xml:"Id"`
	Tp   *CashAccountType2Choice                       `json:"Tp,omitempty" xml:"Tp,omitempty"`
	Ccy  *string                                       `json:"Ccy,omitempty" xml:"Ccy,omitempty"`
	Nm   *string                                       `json:"Nm,omitempty" xml:"Nm,omitempty"`
	Prxy *ProxyAccountIdentification1                  `json:"Prxy,omitempty" xml:"Prxy,omitempty"`
	Ownr *PartyIdentification135                       `json:"Ownr,omitempty" xml:"Ownr,omitempty"`
	Svcr *BranchAndFinancialInstitutionIdentification6 `json:"Svcr,omitempty" xml:"Svcr,omitempty"`
}

func (c *CashAccount39) Validate() error {
	return constraint.Apply(
		constraint.Valid("id", &c.Id),
		constraint.ValidIf("tp", c.Tp),
		constraint.PatternOpt("ccy", c.Ccy, PatternCurrencyCode),
		constraint.MinLengthOpt("nm", c.Nm, 1),
		constraint.MaxLengthOpt("nm", c.Nm, 70),
		constraint.ValidIf("prxy", c.Prxy),
		constraint.ValidIf("ownr", c.Ownr),
		constraint.ValidIf("svcr", c.Svcr),
	)
}

type BalanceType10Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (b *BalanceType10Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", b.Cd, 1),
		constraint.MaxLengthOpt("cd", b.Cd, 4),
		constraint.MinLengthOpt("prtry", b.Prtry, 1),
		constraint.MaxLengthOpt("prtry", b.Prtry, 35),
	)
}

type BalanceSubType1Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (b *BalanceSubType1Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", b.Cd, 1),
		constraint.MaxLengthOpt("cd", b.Cd, 4),
		constraint.MinLengthOpt("prtry", b.Prtry, 1),
		constraint.MaxLengthOpt("prtry", b.Prtry, 35),
	)
}

type BalanceType13 struct {
	CdOrPrtry BalanceType10Choice    `json:"CdOrPrtry" xml:"CdOrPrtry"`
	SubTp     *BalanceSubType1Choice `json:"SubTp,omitempty" xml:"SubTp,omitempty"`
}

func (b *BalanceType13) Validate() error {
	return constraint.Apply(
		constraint.Valid("cd_or_prtry", &b.CdOrPrtry),
		constraint.ValidIf("sub_tp", b.SubTp),
	)
}

type CashBalance8 struct {
	Tp        BalanceType13                     `json:"Tp" xml:"Tp"`
	Amt       ActiveOrHistoricCurrencyAndAmount `json:"Amt" xml:"Amt"`
	CdtDbtInd CreditDebitCode                   `json:"CdtDbtInd" xml:"CdtDbtInd"`
	Dt        DateAndDateTime2Choice            `json:"Dt" xml:"Dt"`
}

func (c *CashBalance8) Validate() error {
	return constraint.Apply(
		constraint.Valid("tp", &c.Tp),
		constraint.Valid("amt", &c.Amt),
		constraint.Valid("cdt_dbt_ind", &c.CdtDbtInd),
		constraint.Valid("dt", &c.Dt),
	)
}

type NumberAndSumOfTransactions1 struct {
	NbOfNtries *string  `json:"NbOfNtries,omitempty" xml:"NbOfNtries,omitempty"`
	Sum        *float64 `json:"Sum,omitempty" xml:"Sum,omitempty"`
}

func (n *NumberAndSumOfTransactions1) Validate() error {
	return constraint.Apply(
		constraint.PatternOpt("nb_of_ntries", n.NbOfNtries, PatternMax15Numeric),
		constraint.MinOpt("sum", n.Sum, 0),
	)
}

type NumberAndSumOfTransactions4 struct {
	NbOfNtries *string               `json:"NbOfNtries,omitempty" xml:"NbOfNtries,omitempty"`
	Sum        *float64              `json:"Sum,omitempty" xml:"Sum,omitempty"`
	TtlNetNtry *AmountAndDirection35 `json:"TtlNetNtry,omitempty" xml:"TtlNetNtry,omitempty"`
}

func (n *NumberAndSumOfTransactions4) Validate() error {
	return constraint.Apply(
		constraint.PatternOpt("nb_of_ntries", n.NbOfNtries, PatternMax15Numeric),
		constraint.MinOpt("sum", n.Sum, 0),
		constraint.ValidIf("ttl_net_ntry", n.TtlNetNtry),
	)
}

type TotalTransactions6 struct {
	TtlNtries    *NumberAndSumOfTransactions4 `json:"TtlNtries,omitempty" xml:"TtlNtries,omitempty"`
	TtlCdtNtries *NumberAndSumOfTransactions1 `json:"TtlCdtNtries,omitempty" xml:"TtlCdtNtries,omitempty"`
	TtlDbtNtries *NumberAndSumOfTransactions1 `json:"TtlDbtNtries,omitempty" xml:"TtlDbtNtries,omitempty"`
}

func (t *TotalTransactions6) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("ttl_ntries", t.TtlNtries),
		constraint.ValidIf("ttl_cdt_ntries", t.TtlCdtNtries),
		constraint.ValidIf("ttl_dbt_ntries", t.TtlDbtNtries),
	)
}

type EntryStatus1Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (e *EntryStatus1Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", e.Cd, 1),
		constraint.MaxLengthOpt("cd", e.Cd, 4),
		constraint.MinLengthOpt("prtry", e.Prtry, 1),
		constraint.MaxLengthOpt("prtry", e.Prtry, 35),
	)
}

type BankTransactionCodeStructure6 struct {
	Cd        string `json:"Cd" xml:"Cd"`
	SubFmlyCd string `json:"SubFmlyCd" xml:"SubFmlyCd"`
}

func (b *BankTransactionCodeStructure6) Validate() error {
	return constraint.Apply(
		constraint.MinLength("cd", b.Cd, 1),
		constraint.MaxLength("cd", b.Cd, 4),
		constraint.MinLength("sub_fmly_cd", b.SubFmlyCd, 1),
		constraint.MaxLength("sub_fmly_cd", b.SubFmlyCd, 4),
	)
}

type BankTransactionCodeStructure5 struct {
	Cd   string                        `json:"Cd" xml:"Cd"`
	Fmly BankTransactionCodeStructure6 `json:"Fmly" xml:"Fmly"`
}

func (b *BankTransactionCodeStructure5) Validate() error {
	return constraint.Apply(
		constraint.MinLength("cd", b.Cd, 1),
		constraint.MaxLength("cd", b.Cd, 4),
		constraint.Valid("fmly", &b.Fmly),
	)
}

type ProprietaryBankTransactionCodeStructure1 struct {
	Cd   string  `json:"Cd" xml:"Cd"`
	Issr *string `json:"Issr,omitempty" xml:"Issr,omitempty"`
}

func (p *ProprietaryBankTransactionCodeStructure1) Validate() error {
	return constraint.Apply(
		constraint.MinLength("cd", p.Cd, 1),
		constraint.MaxLength("cd", p.Cd, 35),
		constraint.MinLengthOpt("issr", p.Issr, 1),
		constraint.MaxLengthOpt("issr", p.Issr, 35),
	)
}

type BankTransactionCodeStructure4 struct {
	Domn  *BankTransactionCodeStructure5            `json:"Domn,omitempty" xml:"Domn,omitempty"`
	Prtry *ProprietaryBankTransactionCodeStructure1 `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (b *BankTransactionCodeStructure4) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("domn", b.Domn),
		constraint.ValidIf("prtry", b.Prtry),
	)
}

type MessageIdentification2 struct {
	MsgNmId *string `json:"MsgNmId,omitempty" xml:"MsgNmId,omitempty"`
	MsgId   *string `json:"MsgId,omitempty" xml:"MsgId,omitempty"`
}

func (m *MessageIdentification2) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("msg_nm_id", m.MsgNmId, 1),
		constraint.MaxLengthOpt("msg_nm_id", m.MsgNmId, 35),
		constraint.MinLengthOpt("msg_id", m.MsgId, 1),
		constraint.MaxLengthOpt("msg_id", m.MsgId, 35),
	)
}

type BatchInformation2 struct {
	MsgId     *string                            `json:"MsgId,omitempty" xml:"MsgId,omitempty"`
	PmtInfId  *string                            `json:"PmtInfId,omitempty" xml:"PmtInfId,omitempty"`
	NbOfTxs   *string                            `json:"NbOfTxs,omitempty" xml:"NbOfTxs,omitempty"`
	TtlAmt    *ActiveOrHistoricCurrencyAndAmount `json:"TtlAmt,omitempty" xml:"TtlAmt,omitempty"`
	CdtDbtInd *CreditDebitCode                   `json:"CdtDbtInd,omitempty" xml:"CdtDbtInd,omitempty"`
}

func (b *BatchInformation2) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("msg_id", b.MsgId, 1),
		constraint.MaxLengthOpt("msg_id", b.MsgId, 35),
		constraint.MinLengthOpt("pmt_inf_id", b.PmtInfId, 1),
		constraint.MaxLengthOpt("pmt_inf_id", b.PmtInfId, 35),
		constraint.PatternOpt("nb_of_txs", b.NbOfTxs, PatternMax15Numeric),
		constraint.ValidIf("ttl_amt", b.TtlAmt),
		constraint.ValidIf("cdt_dbt_ind", b.CdtDbtInd),
	)
}

type TransactionReferences6 struct {
	MsgId       *string `json:"MsgId,omitempty" xml:"MsgId,omitempty"`
	AcctSvcrRef *string `json:"AcctSvcrRef,omitempty" xml:"AcctSvcrRef,omitempty"`
	PmtInfId    *string `json:"PmtInfId,omitempty" xml:"PmtInfId,omitempty"`
	InstrId     *string `json:"InstrId,omitempty" xml:"InstrId,omitempty"`
	EndToEndId  *string `json:"EndToEndId,omitempty" xml:"EndToEndId,omitempty"`
	UETR        *string `json:"UETR,omitempty" xml:"UETR,omitempty"`
	TxId        *string `json:"TxId,omitempty" xml:"TxId,omitempty"`
	ClrSysRef   *string `json:"ClrSysRef,omitempty" xml:"ClrSysRef,omitempty"`
}

func (t *TransactionReferences6) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("msg_id", t.MsgId, 1),
		constraint.MaxLengthOpt("msg_id", t.MsgId, 35),
		constraint.MinLengthOpt("acct_svcr_ref", t.AcctSvcrRef, 1),
		constraint.MaxLengthOpt("acct_svcr_ref", t.AcctSvcrRef, 35),
		constraint.MinLengthOpt("pmt_inf_id", t.PmtInfId, 1),
		constraint.MaxLengthOpt("pmt_inf_id", t.PmtInfId, 35),
		constraint.MinLengthOpt("instr_id", t.InstrId, 1),
		constraint.MaxLengthOpt("instr_id", t.InstrId, 35),
		constraint.MinLengthOpt("end_to_end_id", t.EndToEndId, 1),
		constraint.MaxLengthOpt("end_to_end_id", t.EndToEndId, 35),
		constraint.PatternOpt("uetr", t.UETR, PatternUETR),
		constraint.MinLengthOpt("tx_id", t.TxId, 1),
		constraint.MaxLengthOpt("tx_id", t.TxId, 35),
		constraint.MinLengthOpt("clr_sys_ref", t.ClrSysRef, 1),
		constraint.MaxLengthOpt("clr_sys_ref", t.ClrSysRef, 35),
	)
}

type TransactionParties6 struct {
	InitgPty  *Party40Choice `json:"InitgPty,omitempty" xml:"InitgPty,omitempty"`
	Dbtr      *Party40Choice `json:"Dbtr,omitempty" xml:"Dbtr,omitempty"`
	DbtrAcct  *CashAccount38 `json:"DbtrAcct,omitempty" xml:"DbtrAcct,omitempty"`
	UltmtDbtr *Party40Choice `json:"UltmtDbtr,omitempty" xml:"UltmtDbtr,omitempty"`
	Cdtr      *Party40Choice `json:"Cdtr,omitempty" xml:"Cdtr,omitempty"`
	CdtrAcct  *CashAccount38 `json:"CdtrAcct,omitempty" xml:"CdtrAcct,omitempty"`
	UltmtCdtr *Party40Choice `json:"UltmtCdtr,omitempty" xml:"UltmtCdtr,omitempty"`
}

func (t *TransactionParties6) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("initg_pty", t.InitgPty),
		constraint.ValidIf("dbtr", t.Dbtr),
		constraint.ValidIf("dbtr_acct", t.DbtrAcct),
		constraint.ValidIf("ultmt_dbtr", t.UltmtDbtr),
		constraint.ValidIf("cdtr", t.Cdtr),
		constraint.ValidIf("cdtr_acct", t.CdtrAcct),
		constraint.ValidIf("ultmt_cdtr", t.UltmtCdtr),
	)
}

type TransactionAgents5 struct {
	InstgAgt   *BranchAndFinancialInstitutionIdentification6 `json:"InstgAgt,omitempty" xml:"InstgAgt,omitempty"`
	InstdAgt   *BranchAndFinancialInstitutionIdentification6 `json:"InstdAgt,omitempty" xml:"InstdAgt,omitempty"`
	DbtrAgt    *BranchAndFinancialInstitutionIdentification6 `json:"DbtrAgt,omitempty" xml:"DbtrAgt,omitempty"`
	CdtrAgt    *BranchAndFinancialInstitutionIdentification6 `json:"CdtrAgt,omitempty" xml:"CdtrAgt,omitempty"`
	IntrmyAgt1 *BranchAndFinancialInstitutionIdentification6 `json:"IntrmyAgt1,omitempty" xml:"IntrmyAgt1,omitempty"`
}

func (t *TransactionAgents5) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("instg_agt", t.InstgAgt),
		constraint.ValidIf("instd_agt", t.InstdAgt),
		constraint.ValidIf("dbtr_agt", t.DbtrAgt),
		constraint.ValidIf("cdtr_agt", t.CdtrAgt),
		constraint.ValidIf("intrmy_agt1", t.IntrmyAgt1),
	)
}

type EntryTransaction10 struct {
	Refs        *TransactionReferences6            `json:"Refs,omitempty" xml:"Refs,omitempty"`
	Amt         *ActiveOrHistoricCurrencyAndAmount `json:"Amt,omitempty" xml:"Amt,omitempty"`
	CdtDbtInd   *CreditDebitCode                   `json:"CdtDbtInd,omitempty" xml:"CdtDbtInd,omitempty"`
	BkTxCd      *BankTransactionCodeStructure4     `json:"BkTxCd,omitempty" xml:"BkTxCd,omitempty"`
	RltdPties   *TransactionParties6               `json:"RltdPties,omitempty" xml:"RltdPties,omitempty"`
	RltdAgts    *TransactionAgents5                `json:"RltdAgts,omitempty" xml:"RltdAgts,omitempty"`
	LclInstrm   *LocalInstrument2Choice            `json:"LclInstrm,omitempty" xml:"LclInstrm,omitempty"`
	Purp        *Purpose2Choice                    `json:"Purp,omitempty" xml:"Purp,omitempty"`
	RmtInf      *RemittanceInformation16           `json:"RmtInf,omitempty" xml:"RmtInf,omitempty"`
	AddtlTxInf  *string                            `json:"AddtlTxInf,omitempty" xml:"AddtlTxInf,omitempty"`
	SplmtryData []SupplementaryData1               `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (e *EntryTransaction10) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("refs", e.Refs),
		constraint.ValidIf("amt", e.Amt),
		constraint.ValidIf("cdt_dbt_ind", e.CdtDbtInd),
		constraint.ValidIf("bk_tx_cd", e.BkTxCd),
		constraint.ValidIf("rltd_pties", e.RltdPties),
		constraint.ValidIf("rltd_agts", e.RltdAgts),
		constraint.ValidIf("lcl_instrm", e.LclInstrm),
		constraint.ValidIf("purp", e.Purp),
		constraint.ValidIf("rmt_inf", e.RmtInf),
		constraint.MinLengthOpt("addtl_tx_inf", e.AddtlTxInf, 1),
		constraint.MaxLengthOpt("addtl_tx_inf", e.AddtlTxInf, 500),
		constraint.Each("splmtry_data", e.SplmtryData),
	)
}

type EntryDetails9 struct {
	Btch   *BatchInformation2   `json:"Btch,omitempty" xml:"Btch,omitempty"`
	TxDtls []EntryTransaction10 `json:"TxDtls,omitempty" xml:"TxDtls,omitempty"`
}

func (e *EntryDetails9) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("btch", e.Btch),
		constraint.Each("tx_dtls", e.TxDtls),
	)
}

type ReportEntry10 struct {
	NtryRef      *string                           `json:"NtryRef,omitempty" xml:"NtryRef,omitempty"`
	Amt          ActiveOrHistoricCurrencyAndAmount `json:"Amt" xml:"Amt"`
	CdtDbtInd    CreditDebitCode                   `json:"CdtDbtInd" xml:"CdtDbtInd"`
	RvslInd      *bool                             `json:"RvslInd,omitempty" xml:"RvslInd,omitempty"`
	Sts          EntryStatus1Choice                `json:"Sts" xml:"Sts"`
	BookgDt      *DateAndDateTime2Choice           `json:"BookgDt,omitempty" xml:"BookgDt,omitempty"`
	ValDt        *DateAndDateTime2Choice           `json:"ValDt,omitempty" xml:"ValDt,omitempty"`
	AcctSvcrRef  *string                           `json:"AcctSvcrRef,omitempty" xml:"AcctSvcrRef,omitempty"`
	BkTxCd       BankTransactionCodeStructure4     `json:"BkTxCd" xml:"BkTxCd"`
	AddtlInfInd  *MessageIdentification2           `json:"AddtlInfInd,omitempty" xml:"AddtlInfInd,omitempty"`
	NtryDtls     []EntryDetails9                   `json:"NtryDtls,omitempty" xml:"NtryDtls,omitempty"`
	AddtlNtryInf *string                           `json:"AddtlNtryInf,omitempty" xml:"AddtlNtryInf,omitempty"`
}

func (r *ReportEntry10) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("ntry_ref", r.NtryRef, 1),
		constraint.MaxLengthOpt("ntry_ref", r.NtryRef, 35),
		constraint.Valid("amt", &r.Amt),
		constraint.Valid("cdt_dbt_ind", &r.CdtDbtInd),
		constraint.Valid("sts", &r.Sts),
		constraint.MinLengthOpt("acct_svcr_ref", r.AcctSvcrRef, 1),
		constraint.MaxLengthOpt("acct_svcr_ref", r.AcctSvcrRef, 35),
		constraint.Valid("bk_tx_cd", &r.BkTxCd),
		constraint.ValidIf("addtl_inf_ind", r.AddtlInfInd),
		constraint.Each("ntry_dtls", r.NtryDtls),
		constraint.MinLengthOpt("addtl_ntry_inf", r.AddtlNtryInf, 1),
		constraint.MaxLengthOpt("addtl_ntry_inf", r.AddtlNtryInf, 500),
	)
}

type AccountReport25 struct {
	Id           string                  `json:"Id" xml:"Id"`
	RptPgntn     *Pagination1            `json:"RptPgntn,omitempty" xml:"RptPgntn,omitempty"`
	ElctrncSeqNb *float64                `json:"ElctrncSeqNb,omitempty" xml:"ElctrncSeqNb,omitempty"`
	LglSeqNb     *float64                `json:"LglSeqNb,omitempty" xml:"LglSeqNb,omitempty"`
	CreDtTm      *string                 `json:"CreDtTm,omitempty" xml:"CreDtTm,omitempty"`
	FrToDt       *DateTimePeriod1        `json:"FrToDt,omitempty" xml:"FrToDt,omitempty"`
	RptgSrc      *ReportingSource1Choice `json:"RptgSrc,omitempty" xml:"RptgSrc,omitempty"`
	Acct         CashAccount39           `json:"Acct" xml:"Acct"`
	RltdAcct     *CashAccount38          `json:"RltdAcct,omitempty" xml:"RltdAcct,omitempty"`
	Bal          []CashBalance8          `json:"Bal,omitempty" xml:"Bal,omitempty"`
	TxsSummry    *TotalTransactions6     `json:"TxsSummry,omitempty" xml:"TxsSummry,omitempty"`
	Ntry         []ReportEntry10         `json:"Ntry,omitempty" xml:"Ntry,omitempty"`
	AddtlRptInf  *string                 `json:"AddtlRptInf,omitempty" xml:"AddtlRptInf,omitempty"`
}

func (a *AccountReport25) Validate() error {
	return constraint.Apply(
		constraint.MinLength("id", a.Id, 1),
		constraint.MaxLength("id", a.Id, 35),
		constraint.ValidIf("rpt_pgntn", a.RptPgntn),
		constraint.ValidIf("rptg_src", a.RptgSrc),
		constraint.Valid("acct", &a.Acct),
		constraint.ValidIf("rltd_acct", a.RltdAcct),
		constraint.Each("bal", a.Bal),
		constraint.ValidIf("txs_summry", a.TxsSummry),
		constraint.Each("ntry", a.Ntry),
		constraint.MinLengthOpt("addtl_rpt_inf", a.AddtlRptInf, 1),
		constraint.MaxLengthOpt("addtl_rpt_inf", a.AddtlRptInf, 500),
	)
}

// BankToCustomerAccountReportV08 delivers balance and entry information for
// an account, paginated when the report spans multiple messages.
type BankToCustomerAccountReportV08 struct {
	GrpHdr      GroupHeader81        `json:"GrpHdr" xml:"GrpHdr"`
	Rpt         []AccountReport25    `json:"Rpt" xml:"Rpt"`
	SplmtryData []SupplementaryData1 `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (b *BankToCustomerAccountReportV08) Validate() error {
	return constraint.Apply(
		constraint.Valid("grp_hdr", &b.GrpHdr),
		constraint.Each("rpt", b.Rpt),
		constraint.Each("splmtry_data", b.SplmtryData),
	)
}
