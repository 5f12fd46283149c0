package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// pacs.002.001.10 FI To FI Payment Status Report.

type GroupHeader91 struct {
	MsgId    string                                        `json:"MsgId" xml:"MsgId"`
	CreDtTm  string                                        `json:"CreDtTm" xml:"CreDtTm"`
	InstgAgt *BranchAndFinancialInstitutionIdentification6 `json:"InstgAgt,omitempty" xml:"InstgAgt,omitempty"`
	InstdAgt *BranchAndFinancialInstitutionIdentification6 `json:"InstdAgt,omitempty" xml:"InstdAgt,omitempty"`
}

func (g *GroupHeader91) Validate() error {
	return constraint.Apply(
		constraint.MinLength("msg_id", g.MsgId, 1),
		constraint.MaxLength("msg_id", g.MsgId, 35),
		constraint.ValidIf("instg_agt", g.InstgAgt),
		constraint.ValidIf("instd_agt", g.InstdAgt),
	)
}

type StatusReason6Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (s *StatusReason6Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", s.Cd, 1),
		constraint.MaxLengthOpt("cd", s.Cd, 4),
		constraint.MinLengthOpt("prtry", s.Prtry, 1),
		constraint.MaxLengthOpt("prtry", s.Prtry, 35),
	)
}

type StatusReasonInformation12 struct {
	Orgtr    *PartyIdentification135 `json:"Orgtr,omitempty" xml:"Orgtr,omitempty"`
	Rsn      *StatusReason6Choice    `json:"Rsn,omitempty" xml:"Rsn,omitempty"`
	AddtlInf []string                `json:"AddtlInf,omitempty" xml:"AddtlInf,omitempty"`
}

func (s *StatusReasonInformation12) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("orgtr", s.Orgtr),
		constraint.ValidIf("rsn", s.Rsn),
		constraint.LengthEach("addtl_inf", s.AddtlInf, 1, 105),
	)
}

type OriginalGroupInformation29 struct {
	OrgnlMsgId   string  `json:"OrgnlMsgId" xml:"OrgnlMsgId"`
	OrgnlMsgNmId string  `json:"OrgnlMsgNmId" xml:"OrgnlMsgNmId"`
	OrgnlCreDtTm *string `json:"OrgnlCreDtTm,omitempty" xml:"OrgnlCreDtTm,omitempty"`
}

func (o *OriginalGroupInformation29) Validate() error {
	return constraint.Apply(
		constraint.MinLength("orgnl_msg_id", o.OrgnlMsgId, 1),
		constraint.MaxLength("orgnl_msg_id", o.OrgnlMsgId, 35),
		constraint.MinLength("orgnl_msg_nm_id", o.OrgnlMsgNmId, 1),
		constraint.MaxLength("orgnl_msg_nm_id", o.OrgnlMsgNmId, 35),
	)
}

type OriginalGroupHeader17 struct {
	OrgnlMsgId   string                      `json:"OrgnlMsgId" xml:"OrgnlMsgId"`
	OrgnlMsgNmId string                      `json:"OrgnlMsgNmId" xml:"OrgnlMsgNmId"`
	OrgnlCreDtTm *string                     `json:"OrgnlCreDtTm,omitempty" xml:"OrgnlCreDtTm,omitempty"`
	OrgnlNbOfTxs *string                     `json:"OrgnlNbOfTxs,omitempty" xml:"OrgnlNbOfTxs,omitempty"`
	OrgnlCtrlSum *float64                    `json:"OrgnlCtrlSum,omitempty" xml:"OrgnlCtrlSum,omitempty"`
	GrpSts       *string                     `json:"GrpSts,omitempty" xml:"GrpSts,omitempty"`
	StsRsnInf    []StatusReasonInformation12 `json:"StsRsnInf,omitempty" xml:"StsRsnInf,omitempty"`
}

func (o *OriginalGroupHeader17) Validate() error {
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
	)
}

// OriginalTransactionReference28 echoes key elements of the transaction a
// status or return refers to.
type OriginalTransactionReference28 struct {
	IntrBkSttlmAmt *ActiveOrHistoricCurrencyAndAmount            `json:"IntrBkSttlmAmt,omitempty" xml:"IntrBkSttlmAmt,omitempty"`
	IntrBkSttlmDt  *string                                       `json:"IntrBkSttlmDt,omitempty" xml:"IntrBkSttlmDt,omitempty"`
	PmtTpInf       *PaymentTypeInformation28                     `json:"PmtTpInf,omitempty" xml:"PmtTpInf,omitempty"`
	RmtInf         *RemittanceInformation16                      `json:"RmtInf,omitempty" xml:"RmtInf,omitempty"`
	UltmtDbtr      *Party40Choice                                `json:"UltmtDbtr,omitempty" xml:"UltmtDbtr,omitempty"`
	Dbtr           *Party40Choice                                `json:"Dbtr,omitempty" xml:"Dbtr,omitempty"`
	DbtrAcct       *CashAccount38                                `json:"DbtrAcct,omitempty" xml:"DbtrAcct,omitempty"`
	DbtrAgt        *BranchAndFinancialInstitutionIdentification6 `json:"DbtrAgt,omitempty" xml:"DbtrAgt,omitempty"`
	CdtrAgt        *BranchAndFinancialInstitutionIdentification6 `json:"CdtrAgt,omitempty" xml:"CdtrAgt,omitempty"`
	Cdtr           *Party40Choice                                `json:"Cdtr,omitempty" xml:"Cdtr,omitempty"`
	CdtrAcct       *CashAccount38                                `json:"CdtrAcct,omitempty" xml:"CdtrAcct,omitempty"`
	UltmtCdtr      *Party40Choice                                `json:"UltmtCdtr,omitempty" xml:"UltmtCdtr,omitempty"`
}

func (o *OriginalTransactionReference28) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("intr_bk_sttlm_amt", o.IntrBkSttlmAmt),
		constraint.ValidIf("pmt_tp_inf", o.PmtTpInf),
		constraint.ValidIf("rmt_inf", o.RmtInf),
		constraint.ValidIf("ultmt_dbtr", o.UltmtDbtr),
		constraint.ValidIf("dbtr", o.Dbtr),
		constraint.ValidIf("dbtr_acct", o.DbtrAcct),
		constraint.ValidIf("dbtr_agt", o.DbtrAgt),
		constraint.ValidIf("cdtr_agt", o.CdtrAgt),
		constraint.ValidIf("cdtr", o.Cdtr),
		constraint.ValidIf("cdtr_acct", o.CdtrAcct),
		constraint.ValidIf("ultmt_cdtr", o.UltmtCdtr),
	)
}

type PaymentTransaction110 struct {
	StsId           *string                                       `json:"StsId,omitempty" xml:"StsId,omitempty"`
	OrgnlGrpInf     *OriginalGroupInformation29                   `json:"OrgnlGrpInf,omitempty" xml:"OrgnlGrpInf,omitempty"`
	OrgnlInstrId    *string                                       `json:"OrgnlInstrId,omitempty" xml:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId *string                                       `json:"OrgnlEndToEndId,omitempty" xml:"OrgnlEndToEndId,omitempty"`
	OrgnlTxId       *string                                       `json:"OrgnlTxId,omitempty" xml:"OrgnlTxId,omitempty"`
	OrgnlUETR       *string                                       `json:"OrgnlUETR,omitempty" xml:"OrgnlUETR,omitempty"`
	TxSts           *string                                       `json:"TxSts,omitempty" xml:"TxSts,omitempty"`
	StsRsnInf       []StatusReasonInformation12                   `json:"StsRsnInf,omitempty" xml:"StsRsnInf,omitempty"`
	ChrgsInf        []Charges7                                    `json:"ChrgsInf,omitempty" xml:"ChrgsInf,omitempty"`
	AccptncDtTm     *string                                       `json:"AccptncDtTm,omitempty" xml:"AccptncDtTm,omitempty"`
	ClrSysRef       *string                                       `json:"ClrSysRef,omitempty" xml:"ClrSysRef,omitempty"`
	InstgAgt        *BranchAndFinancialInstitutionIdentification6 `json:"InstgAgt,omitempty" xml:"InstgAgt,omitempty"`
	InstdAgt        *BranchAndFinancialInstitutionIdentification6 `json:"InstdAgt,omitempty" xml:"InstdAgt,omitempty"`
	OrgnlTxRef      *OriginalTransactionReference28               `json:"OrgnlTxRef,omitempty" xml:"OrgnlTxRef,omitempty"`
	SplmtryData     []SupplementaryData1                          `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (p *PaymentTransaction110) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("sts_id", p.StsId, 1),
		constraint.MaxLengthOpt("sts_id", p.StsId, 35),
		constraint.ValidIf("orgnl_grp_inf", p.OrgnlGrpInf),
		constraint.MinLengthOpt("orgnl_instr_id", p.OrgnlInstrId, 1),
		constraint.MaxLengthOpt("orgnl_instr_id", p.OrgnlInstrId, 35),
		constraint.MinLengthOpt("orgnl_end_to_end_id", p.OrgnlEndToEndId, 1),
		constraint.MaxLengthOpt("orgnl_end_to_end_id", p.OrgnlEndToEndId, 35),
		constraint.MinLengthOpt("orgnl_tx_id", p.OrgnlTxId, 1),
		constraint.MaxLengthOpt("orgnl_tx_id", p.OrgnlTxId, 35),
		constraint.PatternOpt("orgnl_uetr", p.OrgnlUETR, PatternUETR),
		constraint.MinLengthOpt("tx_sts", p.TxSts, 1),
		constraint.MaxLengthOpt("tx_sts", p.TxSts, 4),
		constraint.Each("sts_rsn_inf", p.StsRsnInf),
		constraint.Each("chrgs_inf", p.ChrgsInf),
		constraint.MinLengthOpt("clr_sys_ref", p.ClrSysRef, 1),
		constraint.MaxLengthOpt("clr_sys_ref", p.ClrSysRef, 35),
		constraint.ValidIf("instg_agt", p.InstgAgt),
		constraint.ValidIf("instd_agt", p.InstdAgt),
		constraint.ValidIf("orgnl_tx_ref", p.OrgnlTxRef),
		constraint.Each("splmtry_data", p.SplmtryData),
	)
}

// FIToFIPaymentStatusReportV10 informs agents of the processing status of
// previously sent instructions.
type FIToFIPaymentStatusReportV10 struct {
	GrpHdr            GroupHeader91           `json:"GrpHdr" xml:"GrpHdr"`
	OrgnlGrpInfAndSts []OriginalGroupHeader17 `json:"OrgnlGrpInfAndSts,omitempty" xml:"OrgnlGrpInfAndSts,omitempty"`
	TxInfAndSts       []PaymentTransaction110 `json:"TxInfAndSts,omitempty" xml:"TxInfAndSts,omitempty"`
	SplmtryData       []SupplementaryData1    `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (f *FIToFIPaymentStatusReportV10) Validate() error {
	return constraint.Apply(
		constraint.Valid("grp_hdr", &f.GrpHdr),
		constraint.Each("orgnl_grp_inf_and_sts", f.OrgnlGrpInfAndSts),
		constraint.Each("tx_inf_and_sts", f.TxInfAndSts),
		constraint.Each("splmtry_data", f.SplmtryData),
	)
}
