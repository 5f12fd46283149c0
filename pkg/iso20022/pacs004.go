package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// pacs.004.001.10 Payment Return.

type GroupHeader90 struct {
	MsgId    string                                        `json:"MsgId" xml:"MsgId"`
	CreDtTm  string                                        `json:"CreDtTm" xml:"CreDtTm"`
	NbOfTxs  string                                        `json:"NbOfTxs" xml:"NbOfTxs"`
	CtrlSum  *float64                                      `json:"CtrlSum,omitempty" xml:"CtrlSum,omitempty"`
	SttlmInf SettlementInstruction7                        `json:"SttlmInf" xml:"SttlmInf"`
	InstgAgt *BranchAndFinancialInstitutionIdentification6 `json:"InstgAgt,omitempty" xml:"InstgAgt,omitempty"`
	InstdAgt *BranchAndFinancialInstitutionIdentification6 `json:"InstdAgt,omitempty" xml:"InstdAgt,omitempty"`
}

func (g *GroupHeader90) Validate() error {
	return constraint.Apply(
		constraint.MinLength("msg_id", g.MsgId, 1),
		constraint.MaxLength("msg_id", g.MsgId, 35),
		constraint.Pattern("nb_of_txs", g.NbOfTxs, PatternMax15Numeric),
		constraint.MinOpt("ctrl_sum", g.CtrlSum, 0),
		constraint.Valid("sttlm_inf", &g.SttlmInf),
		constraint.ValidIf("instg_agt", g.InstgAgt),
		constraint.ValidIf("instd_agt", g.InstdAgt),
	)
}

type OriginalGroupHeader18 struct {
	OrgnlMsgId   string                 `json:"OrgnlMsgId" xml:"OrgnlMsgId"`
	OrgnlMsgNmId string                 `json:"OrgnlMsgNmId" xml:"OrgnlMsgNmId"`
	OrgnlCreDtTm *string                `json:"OrgnlCreDtTm,omitempty" xml:"OrgnlCreDtTm,omitempty"`
	RtrRsnInf    []PaymentReturnReason6 `json:"RtrRsnInf,omitempty" xml:"RtrRsnInf,omitempty"`
}

func (o *OriginalGroupHeader18) Validate() error {
	return constraint.Apply(
		constraint.MinLength("orgnl_msg_id", o.OrgnlMsgId, 1),
		constraint.MaxLength("orgnl_msg_id", o.OrgnlMsgId, 35),
		constraint.MinLength("orgnl_msg_nm_id", o.OrgnlMsgNmId, 1),
		constraint.MaxLength("orgnl_msg_nm_id", o.OrgnlMsgNmId, 35),
		constraint.Each("rtr_rsn_inf", o.RtrRsnInf),
	)
}

type ReturnReason5Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (r *ReturnReason5Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", r.Cd, 1),
		constraint.MaxLengthOpt("cd", r.Cd, 4),
		constraint.MinLengthOpt("prtry", r.Prtry, 1),
		constraint.MaxLengthOpt("prtry", r.Prtry, 35),
	)
}

type PaymentReturnReason6 struct {
	Orgtr    *PartyIdentification135 `json:"Orgtr,omitempty" xml:"Orgtr,omitempty"`
	Rsn      *ReturnReason5Choice    `json:"Rsn,omitempty" xml:"Rsn,omitempty"`
	AddtlInf []string                `json:"AddtlInf,omitempty" xml:"AddtlInf,omitempty"`
}

func (p *PaymentReturnReason6) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("orgtr", p.Orgtr),
		constraint.ValidIf("rsn", p.Rsn),
		constraint.LengthEach("addtl_inf", p.AddtlInf, 1, 105),
	)
}

type PaymentTransaction118 struct {
	RtrId               *string                                       `json:"RtrId,omitempty" xml:"RtrId,omitempty"`
	OrgnlGrpInf         *OriginalGroupInformation29                   `json:"OrgnlGrpInf,omitempty" xml:"OrgnlGrpInf,omitempty"`
	OrgnlInstrId        *string                                       `json:"OrgnlInstrId,omitempty" xml:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId     *string                                       `json:"OrgnlEndToEndId,omitempty" xml:"OrgnlEndToEndId,omitempty"`
	OrgnlTxId           *string                                       `json:"OrgnlTxId,omitempty" xml:"OrgnlTxId,omitempty"`
	OrgnlUETR           *string                                       `json:"OrgnlUETR,omitempty" xml:"OrgnlUETR,omitempty"`
	OrgnlClrSysRef      *string                                       `json:"OrgnlClrSysRef,omitempty" xml:"OrgnlClrSysRef,omitempty"`
	OrgnlIntrBkSttlmAmt *ActiveOrHistoricCurrencyAndAmount            `json:"OrgnlIntrBkSttlmAmt,omitempty" xml:"OrgnlIntrBkSttlmAmt,omitempty"`
	OrgnlIntrBkSttlmDt  *string                                       `json:"OrgnlIntrBkSttlmDt,omitempty" xml:"OrgnlIntrBkSttlmDt,omitempty"`
	RtrdIntrBkSttlmAmt  ActiveCurrencyAndAmount                       `json:"RtrdIntrBkSttlmAmt" xml:"RtrdIntrBkSttlmAmt"`
	IntrBkSttlmDt       *string                                       `json:"IntrBkSttlmDt,omitempty" xml:"IntrBkSttlmDt,omitempty"`
	SttlmPrty           *Priority3Code                                `json:"SttlmPrty,omitempty" xml:"SttlmPrty,omitempty"`
	SttlmTmIndctn       *SettlementDateTimeIndication1                `json:"SttlmTmIndctn,omitempty" xml:"SttlmTmIndctn,omitempty"`
	RtrdInstdAmt        *ActiveOrHistoricCurrencyAndAmount            `json:"RtrdInstdAmt,omitempty" xml:"RtrdInstdAmt,omitempty"`
	XchgRate            *float64                                      `json:"XchgRate,omitempty" xml:"XchgRate,omitempty"`
	ChrgBr              *ChargeBearerType1Code                        `json:"ChrgBr,omitempty" xml:"ChrgBr,omitempty"`
	ChrgsInf            []Charges7                                    `json:"ChrgsInf,omitempty" xml:"ChrgsInf,omitempty"`
	ClrSysRef           *string                                       `json:"ClrSysRef,omitempty" xml:"ClrSysRef,omitempty"`
	InstgAgt            *BranchAndFinancialInstitutionIdentification6 `json:"InstgAgt,omitempty" xml:"InstgAgt,omitempty"`
	InstdAgt            *BranchAndFinancialInstitutionIdentification6 `json:"InstdAgt,omitempty" xml:"InstdAgt,omitempty"`
	RtrChain            *TransactionParties7                          `json:"RtrChain,omitempty" xml:"RtrChain,omitempty"`
	RtrRsnInf           []PaymentReturnReason6                        `json:"RtrRsnInf,omitempty" xml:"RtrRsnInf,omitempty"`
	OrgnlTxRef          *OriginalTransactionReference28               `json:"OrgnlTxRef,omitempty" xml:"OrgnlTxRef,omitempty"`
	SplmtryData         []SupplementaryData1                          `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (p *PaymentTransaction118) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("rtr_id", p.RtrId, 1),
		constraint.MaxLengthOpt("rtr_id", p.RtrId, 35),
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
		constraint.Valid("rtrd_intr_bk_sttlm_amt", &p.RtrdIntrBkSttlmAmt),
		constraint.ValidIf("sttlm_prty", p.SttlmPrty),
		constraint.ValidIf("sttlm_tm_indctn", p.SttlmTmIndctn),
		constraint.ValidIf("rtrd_instd_amt", p.RtrdInstdAmt),
		constraint.ValidIf("chrg_br", p.ChrgBr),
		constraint.Each("chrgs_inf", p.ChrgsInf),
		constraint.MinLengthOpt("clr_sys_ref", p.ClrSysRef, 1),
		constraint.MaxLengthOpt("clr_sys_ref", p.ClrSysRef, 35),
		constraint.ValidIf("instg_agt", p.InstgAgt),
		constraint.ValidIf("instd_agt", p.InstdAgt),
		constraint.ValidIf("rtr_chain", p.RtrChain),
		constraint.Each("rtr_rsn_inf", p.RtrRsnInf),
		constraint.ValidIf("orgnl_tx_ref", p.OrgnlTxRef),
		constraint.Each("splmtry_data", p.SplmtryData),
	)
}

// TransactionParties7 carries the party chain of a returned transaction.
type TransactionParties7 struct {
	UltmtDbtr *Party40Choice                                `json:"UltmtDbtr,omitempty" xml:"UltmtDbtr,omitempty"`
	Dbtr      Party40Choice                                 `json:"Dbtr" xml:"Dbtr"`
	DbtrAcct  *CashAccount38                                `json:"DbtrAcct,omitempty" xml:"DbtrAcct,omitempty"`
	DbtrAgt   *BranchAndFinancialInstitutionIdentification6 `json:"DbtrAgt,omitempty" xml:"DbtrAgt,omitempty"`
	CdtrAgt   *BranchAndFinancialInstitutionIdentification6 `json:"CdtrAgt,omitempty" xml:"CdtrAgt,omitempty"`
	Cdtr      Party40Choice                                 `json:"Cdtr" xml:"Cdtr"`
	CdtrAcct  *CashAccount38                                `json:"CdtrAcct,omitempty" xml:"CdtrAcct,omitempty"`
	UltmtCdtr *Party40Choice                                `json:"UltmtCdtr,omitempty" xml:"UltmtCdtr,omitempty"`
}

func (t *TransactionParties7) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("ultmt_dbtr", t.UltmtDbtr),
		constraint.Valid("dbtr", &t.Dbtr),
		constraint.ValidIf("dbtr_acct", t.DbtrAcct),
		constraint.ValidIf("dbtr_agt", t.DbtrAgt),
		constraint.ValidIf("cdtr_agt", t.CdtrAgt),
		constraint.Valid("cdtr", &t.Cdtr),
		constraint.ValidIf("cdtr_acct", t.CdtrAcct),
		constraint.ValidIf("ultmt_cdtr", t.UltmtCdtr),
	)
}

// PaymentReturnV10 returns previously settled funds to the original sender.
type PaymentReturnV10 struct {
	GrpHdr      GroupHeader90           `json:"GrpHdr" xml:"GrpHdr"`
	OrgnlGrpInf *OriginalGroupHeader18  `json:"OrgnlGrpInf,omitempty" xml:"OrgnlGrpInf,omitempty"`
	TxInf       []PaymentTransaction118 `json:"TxInf,omitempty" xml:"TxInf,omitempty"`
	SplmtryData []SupplementaryData1    `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (p *PaymentReturnV10) Validate() error {
	return constraint.Apply(
		constraint.Valid("grp_hdr", &p.GrpHdr),
		constraint.ValidIf("orgnl_grp_inf", p.OrgnlGrpInf),
		constraint.Each("tx_inf", p.TxInf),
		constraint.Each("splmtry_data", p.SplmtryData),
	)
}
