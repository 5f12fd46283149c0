package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// camt.029.001.09 Resolution Of Investigation.

type ModificationStatusReason1Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *ModificationStatusReason1Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", c.Cd, 1),
		constraint.MaxLengthOpt("cd", c.Cd, 4),
		constraint.MinLengthOpt("prtry", c.Prtry, 1),
		constraint.MaxLengthOpt("prtry", c.Prtry, 35),
	)
}

type ModificationStatusReason2 struct {
	Orgtr    *PartyIdentification135          `json:"Orgtr,omitempty" xml:"Orgtr,omitempty"`
	Rsn      *ModificationStatusReason1Choice `json:"Rsn,omitempty" xml:"Rsn,omitempty"`
	AddtlInf []string                         `json:"AddtlInf,omitempty" xml:"AddtlInf,omitempty"`
}

func (m *ModificationStatusReason2) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("orgtr", m.Orgtr),
		constraint.ValidIf("rsn", m.Rsn),
		constraint.LengthEach("addtl_inf", m.AddtlInf, 1, 105),
	)
}

type InvestigationStatus5Choice struct {
	Conf           *string                           `json:"Conf,omitempty" xml:"Conf,omitempty"`
	RjctdMod       []ModificationStatusReason1Choice `json:"RjctdMod,omitempty" xml:"RjctdMod,omitempty"`
	DplctOf        *Case5                            `json:"DplctOf,omitempty" xml:"DplctOf,omitempty"`
	AssgnmtCxlConf *bool                             `json:"AssgnmtCxlConf,omitempty" xml:"AssgnmtCxlConf,omitempty"`
}

func (i *InvestigationStatus5Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("conf", i.Conf, 1),
		constraint.MaxLengthOpt("conf", i.Conf, 4),
		constraint.Each("rjctd_mod", i.RjctdMod),
		constraint.ValidIf("dplct_of", i.DplctOf),
	)
}

type CancellationStatusReason3Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *CancellationStatusReason3Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", c.Cd, 1),
		constraint.MaxLengthOpt("cd", c.Cd, 4),
		constraint.MinLengthOpt("prtry", c.Prtry, 1),
		constraint.MaxLengthOpt("prtry", c.Prtry, 35),
	)
}

type CancellationStatusReason4 struct {
	Orgtr    *PartyIdentification135          `json:"Orgtr,omitempty" xml:"Orgtr,omitempty"`
	Rsn      *CancellationStatusReason3Choice `json:"Rsn,omitempty" xml:"Rsn,omitempty"`
	AddtlInf []string                         `json:"AddtlInf,omitempty" xml:"AddtlInf,omitempty"`
}

func (c *CancellationStatusReason4) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("orgtr", c.Orgtr),
		constraint.ValidIf("rsn", c.Rsn),
		constraint.LengthEach("addtl_inf", c.AddtlInf, 1, 105),
	)
}

type NumberOfTransactionsPerStatus1 struct {
	DtldNbOfTxs string   `json:"DtldNbOfTxs" xml:"DtldNbOfTxs"`
	DtldSts     string   `json:"DtldSts" xml:"DtldSts"`
	DtldCtrlSum *float64 `json:"DtldCtrlSum,omitempty" xml:"DtldCtrlSum,omitempty"`
}

func (n *NumberOfTransactionsPerStatus1) Validate() error {
	return constraint.Apply(
		constraint.Pattern("dtld_nb_of_txs", n.DtldNbOfTxs, PatternMax15Numeric),
		constraint.MinLength("dtld_sts", n.DtldSts, 1),
		constraint.MaxLength("dtld_sts", n.DtldSts, 4),
		constraint.MinOpt("dtld_ctrl_sum", n.DtldCtrlSum, 0),
	)
}

type OriginalGroupHeader14 struct {
	OrgnlGrpCxlId    *string                          `json:"OrgnlGrpCxlId,omitempty" xml:"OrgnlGrpCxlId,omitempty"`
	RslvdCase        *Case5                           `json:"RslvdCase,omitempty" xml:"RslvdCase,omitempty"`
	OrgnlMsgId       string                           `json:"OrgnlMsgId" xml:"OrgnlMsgId"`
	OrgnlMsgNmId     string                           `json:"OrgnlMsgNmId" xml:"OrgnlMsgNmId"`
	OrgnlCreDtTm     *string                          `json:"OrgnlCreDtTm,omitempty" xml:"OrgnlCreDtTm,omitempty"`
	OrgnlNbOfTxs     *string                          `json:"OrgnlNbOfTxs,omitempty" xml:"OrgnlNbOfTxs,omitempty"`
	OrgnlCtrlSum     *float64                         `json:"OrgnlCtrlSum,omitempty" xml:"OrgnlCtrlSum,omitempty"`
	GrpCxlSts        *GroupCancellationStatus1Code    `json:"GrpCxlSts,omitempty" xml:"GrpCxlSts,omitempty"`
	CxlStsRsnInf     []CancellationStatusReason4      `json:"CxlStsRsnInf,omitempty" xml:"CxlStsRsnInf,omitempty"`
	NbOfTxsPerCxlSts []NumberOfTransactionsPerStatus1 `json:"NbOfTxsPerCxlSts,omitempty" xml:"NbOfTxsPerCxlSts,omitempty"`
}

func (o *OriginalGroupHeader14) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("orgnl_grp_cxl_id", o.OrgnlGrpCxlId, 1),
		constraint.MaxLengthOpt("orgnl_grp_cxl_id", o.OrgnlGrpCxlId, 35),
		constraint.ValidIf("rslvd_case", o.RslvdCase),
		constraint.MinLength("orgnl_msg_id", o.OrgnlMsgId, 1),
		constraint.MaxLength("orgnl_msg_id", o.OrgnlMsgId, 35),
		constraint.MinLength("orgnl_msg_nm_id", o.OrgnlMsgNmId, 1),
		constraint.MaxLength("orgnl_msg_nm_id", o.OrgnlMsgNmId, 35),
		constraint.PatternOpt("orgnl_nb_of_txs", o.OrgnlNbOfTxs, PatternMax15Numeric),
		constraint.MinOpt("orgnl_ctrl_sum", o.OrgnlCtrlSum, 0),
		constraint.ValidIf("grp_cxl_sts", o.GrpCxlSts),
		constraint.Each("cxl_sts_rsn_inf", o.CxlStsRsnInf),
		constraint.Each("nb_of_txs_per_cxl_sts", o.NbOfTxsPerCxlSts),
	)
}

type ResolutionData1 struct {
	EndToEndId     *string                            `json:"EndToEndId,omitempty" xml:"EndToEndId,omitempty"`
	TxId           *string                            `json:"TxId,omitempty" xml:"TxId,omitempty"`
	UETR           *string                            `json:"UETR,omitempty" xml:"UETR,omitempty"`
	IntrBkSttlmAmt *ActiveOrHistoricCurrencyAndAmount `json:"IntrBkSttlmAmt,omitempty" xml:"IntrBkSttlmAmt,omitempty"`
	IntrBkSttlmDt  *string                            `json:"IntrBkSttlmDt,omitempty" xml:"IntrBkSttlmDt,omitempty"`
	ClrChanl       *string                            `json:"ClrChanl,omitempty" xml:"ClrChanl,omitempty"`
}

func (r *ResolutionData1) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("end_to_end_id", r.EndToEndId, 1),
		constraint.MaxLengthOpt("end_to_end_id", r.EndToEndId, 35),
		constraint.MinLengthOpt("tx_id", r.TxId, 1),
		constraint.MaxLengthOpt("tx_id", r.TxId, 35),
		constraint.PatternOpt("uetr", r.UETR, PatternUETR),
		constraint.ValidIf("intr_bk_sttlm_amt", r.IntrBkSttlmAmt),
		constraint.MinLengthOpt("clr_chanl", r.ClrChanl, 1),
		constraint.MaxLengthOpt("clr_chanl", r.ClrChanl, 4),
	)
}

type PaymentTransaction102 struct {
	CxlStsId            *string                            `json:"CxlStsId,omitempty" xml:"CxlStsId,omitempty"`
	RslvdCase           *Case5                             `json:"RslvdCase,omitempty" xml:"RslvdCase,omitempty"`
	OrgnlGrpInf         *OriginalGroupInformation29        `json:"OrgnlGrpInf,omitempty" xml:"OrgnlGrpInf,omitempty"`
	OrgnlInstrId        *string                            `json:"OrgnlInstrId,omitempty" xml:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId     *string                            `json:"OrgnlEndToEndId,omitempty" xml:"OrgnlEndToEndId,omitempty"`
	OrgnlTxId           *string                            `json:"OrgnlTxId,omitempty" xml:"OrgnlTxId,omitempty"`
	OrgnlClrSysRef      *string                            `json:"OrgnlClrSysRef,omitempty" xml:"OrgnlClrSysRef,omitempty"`
	OrgnlUETR           *string                            `json:"OrgnlUETR,omitempty" xml:"OrgnlUETR,omitempty"`
	TxCxlSts            *string                            `json:"TxCxlSts,omitempty" xml:"TxCxlSts,omitempty"`
	CxlStsRsnInf        []CancellationStatusReason4        `json:"CxlStsRsnInf,omitempty" xml:"CxlStsRsnInf,omitempty"`
	RsltnRltdInf        *ResolutionData1                   `json:"RsltnRltdInf,omitempty" xml:"RsltnRltdInf,omitempty"`
	OrgnlIntrBkSttlmAmt *ActiveOrHistoricCurrencyAndAmount `json:"OrgnlIntrBkSttlmAmt,omitempty" xml:"OrgnlIntrBkSttlmAmt,omitempty"`
	OrgnlIntrBkSttlmDt  *string                            `json:"OrgnlIntrBkSttlmDt,omitempty" xml:"OrgnlIntrBkSttlmDt,omitempty"`
	Assgnr              *Party40Choice                     `json:"Assgnr,omitempty" xml:"Assgnr,omitempty"`
	Assgne              *Party40Choice                     `json:"Assgne,omitempty" xml:"Assgne,omitempty"`
	OrgnlTxRef          *OriginalTransactionReference28    `json:"OrgnlTxRef,omitempty" xml:"OrgnlTxRef,omitempty"`
}

func (p *PaymentTransaction102) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cxl_sts_id", p.CxlStsId, 1),
		constraint.MaxLengthOpt("cxl_sts_id", p.CxlStsId, 35),
		constraint.ValidIf("rslvd_case", p.RslvdCase),
		constraint.ValidIf("orgnl_grp_inf", p.OrgnlGrpInf),
		constraint.MinLengthOpt("orgnl_instr_id", p.OrgnlInstrId, 1),
		constraint.MaxLengthOpt("orgnl_instr_id", p.OrgnlInstrId, 35),
		constraint.MinLengthOpt("orgnl_end_to_end_id", p.OrgnlEndToEndId, 1),
		constraint.MaxLengthOpt("orgnl_end_to_end_id", p.OrgnlEndToEndId, 35),
		constraint.MinLengthOpt("orgnl_tx_id", p.OrgnlTxId, 1),
		constraint.MaxLengthOpt("orgnl_tx_id", p.OrgnlTxId, 35),
		constraint.MinLengthOpt("orgnl_clr_sys_ref", p.OrgnlClrSysRef, 1),
		constraint.MaxLengthOpt("orgnl_clr_sys_ref", p.OrgnlClrSysRef, 35),
		constraint.PatternOpt("orgnl_uetr", p.OrgnlUETR, PatternUETR),
		constraint.MinLengthOpt("tx_cxl_sts", p.TxCxlSts, 1),
		constraint.MaxLengthOpt("tx_cxl_sts", p.TxCxlSts, 4),
		constraint.Each("cxl_sts_rsn_inf", p.CxlStsRsnInf),
		constraint.ValidIf("rsltn_rltd_inf", p.RsltnRltdInf),
		constraint.ValidIf("orgnl_intr_bk_sttlm_amt", p.OrgnlIntrBkSttlmAmt),
		constraint.ValidIf("assgnr", p.Assgnr),
		constraint.ValidIf("assgne", p.Assgne),
		constraint.ValidIf("orgnl_tx_ref", p.OrgnlTxRef),
	)
}

type UnderlyingTransaction22 struct {
	OrgnlGrpInfAndSts *OriginalGroupHeader14  `json:"OrgnlGrpInfAndSts,omitempty" xml:"OrgnlGrpInfAndSts,omitempty"`
	TxInfAndSts       []PaymentTransaction102 `json:"TxInfAndSts,omitempty" xml:"TxInfAndSts,omitempty"`
}

func (u *UnderlyingTransaction22) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("orgnl_grp_inf_and_sts", u.OrgnlGrpInfAndSts),
		constraint.Each("tx_inf_and_sts", u.TxInfAndSts),
	)
}

type PaymentTransaction107 struct {
	ModStsId        *string                         `json:"ModStsId,omitempty" xml:"ModStsId,omitempty"`
	RslvdCase       *Case5                          `json:"RslvdCase,omitempty" xml:"RslvdCase,omitempty"`
	OrgnlGrpInf     OriginalGroupInformation29      `json:"OrgnlGrpInf" xml:"OrgnlGrpInf"`
	OrgnlInstrId    *string                         `json:"OrgnlInstrId,omitempty" xml:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId *string                         `json:"OrgnlEndToEndId,omitempty" xml:"OrgnlEndToEndId,omitempty"`
	OrgnlTxId       *string                         `json:"OrgnlTxId,omitempty" xml:"OrgnlTxId,omitempty"`
	OrgnlClrSysRef  *string                         `json:"OrgnlClrSysRef,omitempty" xml:"OrgnlClrSysRef,omitempty"`
	OrgnlUETR       *string                         `json:"OrgnlUETR,omitempty" xml:"OrgnlUETR,omitempty"`
	ModStsRsnInf    []ModificationStatusReason2     `json:"ModStsRsnInf,omitempty" xml:"ModStsRsnInf,omitempty"`
	RsltnRltdInf    *ResolutionData1                `json:"RsltnRltdInf,omitempty" xml:"RsltnRltdInf,omitempty"`
	Assgnr          *Party40Choice                  `json:"Assgnr,omitempty" xml:"Assgnr,omitempty"`
	Assgne          *Party40Choice                  `json:"Assgne,omitempty" xml:"Assgne,omitempty"`
	OrgnlTxRef      *OriginalTransactionReference28 `json:"OrgnlTxRef,omitempty" xml:"OrgnlTxRef,omitempty"`
}

func (p *PaymentTransaction107) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("mod_sts_id", p.ModStsId, 1),
		constraint.MaxLengthOpt("mod_sts_id", p.ModStsId, 35),
		constraint.ValidIf("rslvd_case", p.RslvdCase),
		constraint.Valid("orgnl_grp_inf", &p.OrgnlGrpInf),
		constraint.MinLengthOpt("orgnl_instr_id", p.OrgnlInstrId, 1),
		constraint.MaxLengthOpt("orgnl_instr_id", p.OrgnlInstrId, 35),
		constraint.MinLengthOpt("orgnl_end_to_end_id", p.OrgnlEndToEndId, 1),
		constraint.MaxLengthOpt("orgnl_end_to_end_id", p.OrgnlEndToEndId, 35),
		constraint.MinLengthOpt("orgnl_tx_id", p.OrgnlTxId, 1),
		constraint.MaxLengthOpt("orgnl_tx_id", p.OrgnlTxId, 35),
		constraint.MinLengthOpt("orgnl_clr_sys_ref", p.OrgnlClrSysRef, 1),
		constraint.MaxLengthOpt("orgnl_clr_sys_ref", p.OrgnlClrSysRef, 35),
		constraint.PatternOpt("orgnl_uetr", p.OrgnlUETR, PatternUETR),
		constraint.Each("mod_sts_rsn_inf", p.ModStsRsnInf),
		constraint.ValidIf("rsltn_rltd_inf", p.RsltnRltdInf),
		constraint.ValidIf("assgnr", p.Assgnr),
		constraint.ValidIf("assgne", p.Assgne),
		constraint.ValidIf("orgnl_tx_ref", p.OrgnlTxRef),
	)
}

type ClaimNonReceipt2 struct {
	DtPrcd      string                                        `json:"DtPrcd" xml:"DtPrcd"`
	OrgnlNxtAgt *BranchAndFinancialInstitutionIdentification6 `json:"OrgnlNxtAgt,omitempty" xml:"OrgnlNxtAgt,omitempty"`
}

func (c *ClaimNonReceipt2) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("orgnl_nxt_agt", c.OrgnlNxtAgt),
	)
}

type ClaimNonReceiptRejectReason1Choice struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c *ClaimNonReceiptRejectReason1Choice) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("cd", c.Cd, 1),
		constraint.MaxLengthOpt("cd", c.Cd, 4),
		constraint.MinLengthOpt("prtry", c.Prtry, 1),
		constraint.MaxLengthOpt("prtry", c.Prtry, 35),
	)
}

type ClaimNonReceipt2Choice struct {
	Accptd *ClaimNonReceipt2                   `json:"Accptd,omitempty" xml:"Accptd,omitempty"`
	Rjctd  *ClaimNonReceiptRejectReason1Choice `json:"Rjctd,omitempty" xml:"Rjctd,omitempty"`
}

func (c *ClaimNonReceipt2Choice) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("accptd", c.Accptd),
		constraint.ValidIf("rjctd", c.Rjctd),
	)
}

type StatementResolutionEntry4 struct {
	OrgnlGrpInf *OriginalGroupInformation29        `json:"OrgnlGrpInf,omitempty" xml:"OrgnlGrpInf,omitempty"`
	OrgnlStmtId *string                            `json:"OrgnlStmtId,omitempty" xml:"OrgnlStmtId,omitempty"`
	UETR        *string                            `json:"UETR,omitempty" xml:"UETR,omitempty"`
	AcctSvcrRef *string                            `json:"AcctSvcrRef,omitempty" xml:"AcctSvcrRef,omitempty"`
	CrrctdAmt   *ActiveOrHistoricCurrencyAndAmount `json:"CrrctdAmt,omitempty" xml:"CrrctdAmt,omitempty"`
	Purp        *Purpose2Choice                    `json:"Purp,omitempty" xml:"Purp,omitempty"`
}

func (s *StatementResolutionEntry4) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("orgnl_grp_inf", s.OrgnlGrpInf),
		constraint.MinLengthOpt("orgnl_stmt_id", s.OrgnlStmtId, 1),
		constraint.MaxLengthOpt("orgnl_stmt_id", s.OrgnlStmtId, 35),
		constraint.PatternOpt("uetr", s.UETR, PatternUETR),
		constraint.MinLengthOpt("acct_svcr_ref", s.AcctSvcrRef, 1),
		constraint.MaxLengthOpt("acct_svcr_ref", s.AcctSvcrRef, 35),
		constraint.ValidIf("crrctd_amt", s.CrrctdAmt),
		constraint.ValidIf("purp", s.Purp),
	)
}

type CorrectiveGroupInformation1 struct {
	MsgId   string  `json:"MsgId" xml:"MsgId"`
	MsgNmId string  `json:"MsgNmId" xml:"MsgNmId"`
	CreDtTm *string `json:"CreDtTm,omitempty" xml:"CreDtTm,omitempty"`
}

func (c *CorrectiveGroupInformation1) Validate() error {
	return constraint.Apply(
		constraint.MinLength("msg_id", c.MsgId, 1),
		constraint.MaxLength("msg_id", c.MsgId, 35),
		constraint.MinLength("msg_nm_id", c.MsgNmId, 1),
		constraint.MaxLength("msg_nm_id", c.MsgNmId, 35),
	)
}

type CorrectivePaymentInitiation4 struct {
	GrpHdr       *CorrectiveGroupInformation1      `json:"GrpHdr,omitempty" xml:"GrpHdr,omitempty"`
	PmtInfId     *string                           `json:"PmtInfId,omitempty" xml:"PmtInfId,omitempty"`
	InstrId      *string                           `json:"InstrId,omitempty" xml:"InstrId,omitempty"`
	EndToEndId   *string                           `json:"EndToEndId,omitempty" xml:"EndToEndId,omitempty"`
	UETR         *string                           `json:"UETR,omitempty" xml:"UETR,omitempty"`
	InstdAmt     ActiveOrHistoricCurrencyAndAmount `json:"InstdAmt" xml:"InstdAmt"`
	ReqdExctnDt  *DateAndDateTime2Choice           `json:"ReqdExctnDt,omitempty" xml:"ReqdExctnDt,omitempty"`
	ReqdColltnDt *string                           `json:"ReqdColltnDt,omitempty" xml:"ReqdColltnDt,omitempty"`
}

func (c *CorrectivePaymentInitiation4) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("grp_hdr", c.GrpHdr),
		constraint.MinLengthOpt("pmt_inf_id", c.PmtInfId, 1),
		constraint.MaxLengthOpt("pmt_inf_id", c.PmtInfId, 35),
		constraint.MinLengthOpt("instr_id", c.InstrId, 1),
		constraint.MaxLengthOpt("instr_id", c.InstrId, 35),
		constraint.MinLengthOpt("end_to_end_id", c.EndToEndId, 1),
		constraint.MaxLengthOpt("end_to_end_id", c.EndToEndId, 35),
		constraint.PatternOpt("uetr", c.UETR, PatternUETR),
		constraint.Valid("instd_amt", &c.InstdAmt),
	)
}

type CorrectiveInterbankTransaction2 struct {
	GrpHdr         *CorrectiveGroupInformation1      `json:"GrpHdr,omitempty" xml:"GrpHdr,omitempty"`
	InstrId        *string                           `json:"InstrId,omitempty" xml:"InstrId,omitempty"`
	EndToEndId     *string                           `json:"EndToEndId,omitempty" xml:"EndToEndId,omitempty"`
	TxId           *string                           `json:"TxId,omitempty" xml:"TxId,omitempty"`
	UETR           *string                           `json:"UETR,omitempty" xml:"UETR,omitempty"`
	IntrBkSttlmAmt ActiveOrHistoricCurrencyAndAmount `json:"IntrBkSttlmAmt" xml:"IntrBkSttlmAmt"`
	IntrBkSttlmDt  string                            `json:"IntrBkSttlmDt" xml:"IntrBkSttlmDt"`
}

func (c *CorrectiveInterbankTransaction2) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("grp_hdr", c.GrpHdr),
		constraint.MinLengthOpt("instr_id", c.InstrId, 1),
		constraint.MaxLengthOpt("instr_id", c.InstrId, 35),
		constraint.MinLengthOpt("end_to_end_id", c.EndToEndId, 1),
		constraint.MaxLengthOpt("end_to_end_id", c.EndToEndId, 35),
		constraint.MinLengthOpt("tx_id", c.TxId, 1),
		constraint.MaxLengthOpt("tx_id", c.TxId, 35),
		constraint.PatternOpt("uetr", c.UETR, PatternUETR),
		constraint.Valid("intr_bk_sttlm_amt", &c.IntrBkSttlmAmt),
	)
}

type CorrectiveTransaction4Choice struct {
	Initn  *CorrectivePaymentInitiation4    `json:"Initn,omitempty" xml:"Initn,omitempty"`
	IntrBk *CorrectiveInterbankTransaction2 `json:"IntrBk,omitempty" xml:"IntrBk,omitempty"`
}

func (c *CorrectiveTransaction4Choice) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("initn", c.Initn),
		constraint.ValidIf("intr_bk", c.IntrBk),
	)
}

// ResolutionOfInvestigationV09 closes out a case opened against a payment,
// reporting the outcome of a cancellation or modification request.
type ResolutionOfInvestigationV09 struct {
	Assgnmt       CaseAssignment5               `json:"Assgnmt" xml:"Assgnmt"`
	RslvdCase     *Case5                        `json:"RslvdCase,omitempty" xml:"RslvdCase,omitempty"`
	Sts           InvestigationStatus5Choice    `json:"Sts" xml:"Sts"`
	CxlDtls       []UnderlyingTransaction22     `json:"CxlDtls,omitempty" xml:"CxlDtls,omitempty"`
	ModDtls       *PaymentTransaction107        `json:"ModDtls,omitempty" xml:"ModDtls,omitempty"`
	ClmNonRctDtls *ClaimNonReceipt2Choice       `json:"ClmNonRctDtls,omitempty" xml:"ClmNonRctDtls,omitempty"`
	StmtDtls      *StatementResolutionEntry4    `json:"StmtDtls,omitempty" xml:"StmtDtls,omitempty"`
	CrrctnTx      *CorrectiveTransaction4Choice `json:"CrrctnTx,omitempty" xml:"CrrctnTx,omitempty"`
	RsltnRltdInf  *ResolutionData1              `json:"RsltnRltdInf,omitempty" xml:"RsltnRltdInf,omitempty"`
	SplmtryData   []SupplementaryData1          `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (r *ResolutionOfInvestigationV09) Validate() error {
	return constraint.Apply(
		constraint.Valid("assgnmt", &r.Assgnmt),
		constraint.ValidIf("rslvd_case", r.RslvdCase),
		constraint.Valid("sts", &r.Sts),
		constraint.Each("cxl_dtls", r.CxlDtls),
		constraint.ValidIf("mod_dtls", r.ModDtls),
		constraint.ValidIf("clm_non_rct_dtls", r.ClmNonRctDtls),
		constraint.ValidIf("stmt_dtls", r.StmtDtls),
		constraint.ValidIf("crrctn_tx", r.CrrctnTx),
		constraint.ValidIf("rsltn_rltd_inf", r.RsltnRltdInf),
		constraint.Each("splmtry_data", r.SplmtryData),
	)
}
