package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// pain.014.001.07 Creditor Payment Activation Request Status Report.

type GroupHeader87 struct {
	MsgId    string                                        `json:"MsgId" xml:"MsgId"`
	CreDtTm  string                                        `json:"CreDtTm" xml:"CreDtTm"`
	InitgPty PartyIdentification135                        `json:"InitgPty" xml:"InitgPty"`
	DbtrAgt  *BranchAndFinancialInstitutionIdentification6 `json:"DbtrAgt,omitempty" xml:"DbtrAgt,omitempty"`
	CdtrAgt  *BranchAndFinancialInstitutionIdentification6 `json:"CdtrAgt,omitempty" xml:"CdtrAgt,omitempty"`
}

func (g *GroupHeader87) Validate() error {
	return constraint.Apply(
		constraint.MinLength("msg_id", g.MsgId, 1),
		constraint.MaxLength("msg_id", g.MsgId, 35),
		constraint.Valid("initg_pty", &g.InitgPty),
		constraint.ValidIf("dbtr_agt", g.DbtrAgt),
		constraint.ValidIf("cdtr_agt", g.CdtrAgt),
	)
}

type NumberOfTransactionsPerStatus5 struct {
	DtldNbOfTxs string   `json:"DtldNbOfTxs" xml:"DtldNbOfTxs"`
	DtldSts     string   `json:"DtldSts" xml:"DtldSts"`
	DtldCtrlSum *float64 `json:"DtldCtrlSum,omitempty" xml:"DtldCtrlSum,omitempty"`
}

func (n *NumberOfTransactionsPerStatus5) Validate() error {
	return constraint.Apply(
		constraint.Pattern("dtld_nb_of_txs", n.DtldNbOfTxs, PatternMax15Numeric),
		constraint.MinLength("dtld_sts", n.DtldSts, 1),
		constraint.MaxLength("dtld_sts", n.DtldSts, 4),
		constraint.MinOpt("dtld_ctrl_sum", n.DtldCtrlSum, 0),
	)
}

type OriginalGroupInformation30 struct {
	OrgnlMsgId    string                           `json:"OrgnlMsgId" xml:"OrgnlMsgId"`
	OrgnlMsgNmId  string                           `json:"OrgnlMsgNmId" xml:"OrgnlMsgNmId"`
	OrgnlCreDtTm  *string                          `json:"OrgnlCreDtTm,omitempty" xml:"OrgnlCreDtTm,omitempty"`
	OrgnlNbOfTxs  *string                          `json:"OrgnlNbOfTxs,omitempty" xml:"OrgnlNbOfTxs,omitempty"`
	OrgnlCtrlSum  *float64                         `json:"OrgnlCtrlSum,omitempty" xml:"OrgnlCtrlSum,omitempty"`
	GrpSts        *string                          `json:"GrpSts,omitempty" xml:"GrpSts,omitempty"`
	StsRsnInf     []StatusReasonInformation12      `json:"StsRsnInf,omitempty" xml:"StsRsnInf,omitempty"`
	NbOfTxsPerSts []NumberOfTransactionsPerStatus5 `json:"NbOfTxsPerSts,omitempty" xml:"NbOfTxsPerSts,omitempty"`
}

func (o *OriginalGroupInformation30) Validate() error {
	return constraint.Apply(
		constraint.MinLength("orgnl_msg_id", o.OrgnlMsgId, 1),
		constraint.MaxLength("orgnl_msg_id", o.OrgnlMsgId, 35),
		constraint.MinLength("orgnl_msg_nm_id", o.OrgnlMsgNmId, 1),
		constraint.MaxLength("orgnl_msg_nm_id", o.OrgnlMsgNmId, 35),
		constraint.PatternOpt("orgnl_nb_of_txs", o.OrgnlNbOfTxs, PatternMax15Numeric),
		constraint.MinOpt("orgnl_ctrl_sum", o.OrgnlCtrlSum, 0),
		constraint.MinLengthOpt("grp_sts", o.GrpSts, 1),
		constraint.MaxLengthOpt("grp_sts", o.GrpSts, 4),
		constraint.Each("sts_rsn_inf", o.StsRsnInf),
		constraint.Each("nb_of_txs_per_sts", o.NbOfTxsPerSts),
	)
}

type PaymentConditionStatus1 struct {
	AccptdAmt *ActiveCurrencyAndAmount `json:"AccptdAmt,omitempty" xml:"AccptdAmt,omitempty"`
	GrntedPmt bool                     `json:"GrntedPmt" xml:"GrntedPmt"`
	EarlyPmt  bool                     `json:"EarlyPmt" xml:"EarlyPmt"`
}

func (p *PaymentConditionStatus1) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("accptd_amt", p.AccptdAmt),
	)
}

// OriginalTransactionReference29 carries the key content of the original
// request-for-payment alongside its status.
type OriginalTransactionReference29 struct {
	Amt         *AmountType4Choice                            `json:"Amt,omitempty" xml:"Amt,omitempty"`
	ReqdExctnDt *DateAndDateTime2Choice                       `json:"ReqdExctnDt,omitempty" xml:"ReqdExctnDt,omitempty"`
	XpryDt      *DateAndDateTime2Choice                       `json:"XpryDt,omitempty" xml:"XpryDt,omitempty"`
	PmtCond     *PaymentCondition1                            `json:"PmtCond,omitempty" xml:"PmtCond,omitempty"`
	PmtTpInf    *PaymentTypeInformation26                     `json:"PmtTpInf,omitempty" xml:"PmtTpInf,omitempty"`
	PmtMtd      *PaymentMethod4Code                           `json:"PmtMtd,omitempty" xml:"PmtMtd,omitempty"`
	RmtInf      *RemittanceInformation16                      `json:"RmtInf,omitempty" xml:"RmtInf,omitempty"`
	UltmtDbtr   *PartyIdentification135                       `json:"UltmtDbtr,omitempty" xml:"UltmtDbtr,omitempty"`
	Dbtr        *PartyIdentification135                       `json:"Dbtr,omitempty" xml:"Dbtr,omitempty"`
	DbtrAcct    *CashAccount38                                `json:"DbtrAcct,omitempty" xml:"DbtrAcct,omitempty"`
	DbtrAgt     *BranchAndFinancialInstitutionIdentification6 `json:"DbtrAgt,omitempty" xml:"DbtrAgt,omitempty"`
	CdtrAgt     BranchAndFinancialInstitutionIdentification6  `json:"CdtrAgt" xml:"CdtrAgt"`
	Cdtr        PartyIdentification135                        `json:"Cdtr" xml:"Cdtr"`
	CdtrAcct    *CashAccount38                                `json:"CdtrAcct,omitempty" xml:"CdtrAcct,omitempty"`
	UltmtCdtr   *PartyIdentification135                       `json:"UltmtCdtr,omitempty" xml:"UltmtCdtr,omitempty"`
}

func (o *OriginalTransactionReference29) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("amt", o.Amt),
		constraint.ValidIf("pmt_cond", o.PmtCond),
		constraint.ValidIf("pmt_tp_inf", o.PmtTpInf),
		constraint.ValidIf("pmt_mtd", o.PmtMtd),
		constraint.ValidIf("rmt_inf", o.RmtInf),
		constraint.ValidIf("ultmt_dbtr", o.UltmtDbtr),
		constraint.ValidIf("dbtr", o.Dbtr),
		constraint.ValidIf("dbtr_acct", o.DbtrAcct),
		constraint.ValidIf("dbtr_agt", o.DbtrAgt),
		constraint.Valid("cdtr_agt", &o.CdtrAgt),
		constraint.Valid("cdtr", &o.Cdtr),
		constraint.ValidIf("cdtr_acct", o.CdtrAcct),
		constraint.ValidIf("ultmt_cdtr", o.UltmtCdtr),
	)
}

type PaymentTransaction104 struct {
	StsId           *string                         `json:"StsId,omitempty" xml:"StsId,omitempty"`
	OrgnlInstrId    *string                         `json:"OrgnlInstrId,omitempty" xml:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId *string                         `json:"OrgnlEndToEndId,omitempty" xml:"OrgnlEndToEndId,omitempty"`
	OrgnlUETR       *string                         `json:"OrgnlUETR,omitempty" xml:"OrgnlUETR,omitempty"`
	TxSts           *string                         `json:"TxSts,omitempty" xml:"TxSts,omitempty"`
	StsRsnInf       []StatusReasonInformation12     `json:"StsRsnInf,omitempty" xml:"StsRsnInf,omitempty"`
	PmtCondSts      *PaymentConditionStatus1        `json:"PmtCondSts,omitempty" xml:"PmtCondSts,omitempty"`
	ChrgsInf        []Charges7                      `json:"ChrgsInf,omitempty" xml:"ChrgsInf,omitempty"`
	DbtrDcsnDtTm    *string                         `json:"DbtrDcsnDtTm,omitempty" xml:"DbtrDcsnDtTm,omitempty"`
	AccptncDtTm     *string                         `json:"AccptncDtTm,omitempty" xml:"AccptncDtTm,omitempty"`
	AcctSvcrRef     *string                         `json:"AcctSvcrRef,omitempty" xml:"AcctSvcrRef,omitempty"`
	ClrSysRef       *string                         `json:"ClrSysRef,omitempty" xml:"ClrSysRef,omitempty"`
	OrgnlTxRef      *OriginalTransactionReference29 `json:"OrgnlTxRef,omitempty" xml:"OrgnlTxRef,omitempty"`
	SplmtryData     []SupplementaryData1            `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (p *PaymentTransaction104) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("sts_id", p.StsId, 1),
		constraint.MaxLengthOpt("sts_id", p.StsId, 35),
		constraint.MinLengthOpt("orgnl_instr_id", p.OrgnlInstrId, 1),
		constraint.MaxLengthOpt("orgnl_instr_id", p.OrgnlInstrId, 35),
		constraint.MinLengthOpt("orgnl_end_to_end_id", p.OrgnlEndToEndId, 1),
		constraint.MaxLengthOpt("orgnl_end_to_end_id", p.OrgnlEndToEndId, 35),
		constraint.PatternOpt("orgnl_uetr", p.OrgnlUETR, PatternUETR),
		constraint.MinLengthOpt("tx_sts", p.TxSts, 1),
		constraint.MaxLengthOpt("tx_sts", p.TxSts, 4),
		constraint.Each("sts_rsn_inf", p.StsRsnInf),
		constraint.ValidIf("pmt_cond_sts", p.PmtCondSts),
		constraint.Each("chrgs_inf", p.ChrgsInf),
		constraint.MinLengthOpt("acct_svcr_ref", p.AcctSvcrRef, 1),
		constraint.MaxLengthOpt("acct_svcr_ref", p.AcctSvcrRef, 35),
		constraint.MinLengthOpt("clr_sys_ref", p.ClrSysRef, 1),
		constraint.MaxLengthOpt("clr_sys_ref", p.ClrSysRef, 35),
		constraint.ValidIf("orgnl_tx_ref", p.OrgnlTxRef),
		constraint.Each("splmtry_data", p.SplmtryData),
	)
}

type OriginalPaymentInstruction31 struct {
	OrgnlPmtInfId string                           `json:"OrgnlPmtInfId" xml:"OrgnlPmtInfId"`
	OrgnlNbOfTxs  *string                          `json:"OrgnlNbOfTxs,omitempty" xml:"OrgnlNbOfTxs,omitempty"`
	OrgnlCtrlSum  *float64                         `json:"OrgnlCtrlSum,omitempty" xml:"OrgnlCtrlSum,omitempty"`
	PmtInfSts     *string                          `json:"PmtInfSts,omitempty" xml:"PmtInfSts,omitempty"`
	StsRsnInf     []StatusReasonInformation12      `json:"StsRsnInf,omitempty" xml:"StsRsnInf,omitempty"`
	NbOfTxsPerSts []NumberOfTransactionsPerStatus5 `json:"NbOfTxsPerSts,omitempty" xml:"NbOfTxsPerSts,omitempty"`
	TxInfAndSts   []PaymentTransaction104          `json:"TxInfAndSts,omitempty" xml:"TxInfAndSts,omitempty"`
}

func (o *OriginalPaymentInstruction31) Validate() error {
	return constraint.Apply(
		constraint.MinLength("orgnl_pmt_inf_id", o.OrgnlPmtInfId, 1),
		constraint.MaxLength("orgnl_pmt_inf_id", o.OrgnlPmtInfId, 35),
		constraint.PatternOpt("orgnl_nb_of_txs", o.OrgnlNbOfTxs, PatternMax15Numeric),
		constraint.MinOpt("orgnl_ctrl_sum", o.OrgnlCtrlSum, 0),
		constraint.MinLengthOpt("pmt_inf_sts", o.PmtInfSts, 1),
		constraint.MaxLengthOpt("pmt_inf_sts", o.PmtInfSts, 4),
		constraint.Each("sts_rsn_inf", o.StsRsnInf),
		constraint.Each("nb_of_txs_per_sts", o.NbOfTxsPerSts),
		constraint.Each("tx_inf_and_sts", o.TxInfAndSts),
	)
}

// CreditorPaymentActivationRequestStatusReportV07 reports the debtor side's
// decision on a request for payment.
type CreditorPaymentActivationRequestStatusReportV07 struct {
	GrpHdr            GroupHeader87                  `json:"GrpHdr" xml:"GrpHdr"`
	OrgnlGrpInfAndSts OriginalGroupInformation30     `json:"OrgnlGrpInfAndSts" xml:"OrgnlGrpInfAndSts"`
	OrgnlPmtInfAndSts []OriginalPaymentInstruction31 `json:"OrgnlPmtInfAndSts,omitempty" xml:"OrgnlPmtInfAndSts,omitempty"`
	SplmtryData       []SupplementaryData1           `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (c *CreditorPaymentActivationRequestStatusReportV07) Validate() error {
	return constraint.Apply(
		constraint.Valid("grp_hdr", &c.GrpHdr),
		constraint.Valid("orgnl_grp_inf_and_sts", &c.OrgnlGrpInfAndSts),
		constraint.Each("orgnl_pmt_inf_and_sts", c.OrgnlPmtInfAndSts),
		constraint.Each("splmtry_data", c.SplmtryData),
	)
}
