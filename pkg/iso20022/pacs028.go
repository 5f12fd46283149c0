package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// pacs.028.001.03 FI To FI Payment Status Request.

type OriginalGroupInformation27 struct {
	OrgnlMsgId   string   `json:"OrgnlMsgId" xml:"OrgnlMsgId"`
	OrgnlMsgNmId string   `json:"OrgnlMsgNmId" xml:"OrgnlMsgNmId"`
	OrgnlCreDtTm *string  `json:"OrgnlCreDtTm,omitempty" xml:"OrgnlCreDtTm,omitempty"`
	OrgnlNbOfTxs *string  `json:"OrgnlNbOfTxs,omitempty" xml:"OrgnlNbOfTxs,omitempty"`
	OrgnlCtrlSum *float64 `json:"OrgnlCtrlSum,omitempty" xml:"OrgnlCtrlSum,omitempty"`
}

func (o *OriginalGroupInformation27) Validate() error {
	return constraint.Apply(
		constraint.MinLength("orgnl_msg_id", o.OrgnlMsgId, 1),
		constraint.MaxLength("orgnl_msg_id", o.OrgnlMsgId, 35),
		constraint.MinLength("orgnl_msg_nm_id", o.OrgnlMsgNmId, 1),
		constraint.MaxLength("orgnl_msg_nm_id", o.OrgnlMsgNmId, 35),
		constraint.PatternOpt("orgnl_nb_of_txs", o.OrgnlNbOfTxs, PatternMax15Numeric),
		constraint.MinOpt("orgnl_ctrl_sum", o.OrgnlCtrlSum, 0),
	)
}

type PaymentTransaction113 struct {
	StsReqId        *string                                       `json:"StsReqId,omitempty" xml:"StsReqId,omitempty"`
	OrgnlGrpInf     *OriginalGroupInformation29                   `json:"OrgnlGrpInf,omitempty" xml:"OrgnlGrpInf,omitempty"`
	OrgnlInstrId    *string                                       `json:"OrgnlInstrId,omitempty" xml:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId *string                                       `json:"OrgnlEndToEndId,omitempty" xml:"OrgnlEndToEndId,omitempty"`
	OrgnlTxId       *string                                       `json:"OrgnlTxId,omitempty" xml:"OrgnlTxId,omitempty"`
	OrgnlUETR       *string                                       `json:"OrgnlUETR,omitempty" xml:"OrgnlUETR,omitempty"`
	AccptncDtTm     *string                                       `json:"AccptncDtTm,omitempty" xml:"AccptncDtTm,omitempty"`
	ClrSysRef       *string                                       `json:"ClrSysRef,omitempty" xml:"ClrSysRef,omitempty"`
	InstgAgt        *BranchAndFinancialInstitutionIdentification6 `json:"InstgAgt,omitempty" xml:"InstgAgt,omitempty"`
	InstdAgt        *BranchAndFinancialInstitutionIdentification6 `json:"InstdAgt,omitempty" xml:"InstdAgt,omitempty"`
	OrgnlTxRef      *OriginalTransactionReference28               `json:"OrgnlTxRef,omitempty" xml:"OrgnlTxRef,omitempty"`
	SplmtryData     []SupplementaryData1                          `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (p *PaymentTransaction113) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("sts_req_id", p.StsReqId, 1),
		constraint.MaxLengthOpt("sts_req_id", p.StsReqId, 35),
		constraint.ValidIf("orgnl_grp_inf", p.OrgnlGrpInf),
		constraint.MinLengthOpt("orgnl_instr_id", p.OrgnlInstrId, 1),
		constraint.MaxLengthOpt("orgnl_instr_id", p.OrgnlInstrId, 35),
		constraint.MinLengthOpt("orgnl_end_to_end_id", p.OrgnlEndToEndId, 1),
		constraint.MaxLengthOpt("orgnl_end_to_end_id", p.OrgnlEndToEndId, 35),
		constraint.MinLengthOpt("orgnl_tx_id", p.OrgnlTxId, 1),
		constraint.MaxLengthOpt("orgnl_tx_id", p.OrgnlTxId, 35),
		constraint.PatternOpt("orgnl_uetr", p.OrgnlUETR, PatternUETR),
		constraint.MinLengthOpt("clr_sys_ref", p.ClrSysRef, 1),
		constraint.MaxLengthOpt("clr_sys_ref", p.ClrSysRef, 35),
		constraint.ValidIf("instg_agt", p.InstgAgt),
		constraint.ValidIf("instd_agt", p.InstdAgt),
		constraint.ValidIf("orgnl_tx_ref", p.OrgnlTxRef),
		constraint.Each("splmtry_data", p.SplmtryData),
	)
}

// FIToFIPaymentStatusRequestV03 asks for the current status of a previously
// sent instruction.
type FIToFIPaymentStatusRequestV03 struct {
	GrpHdr      GroupHeader91                `json:"GrpHdr" xml:"GrpHdr"`
	OrgnlGrpInf []OriginalGroupInformation27 `json:"OrgnlGrpInf,omitempty" xml:"OrgnlGrpInf,omitempty"`
	TxInf       []PaymentTransaction113      `json:"TxInf,omitempty" xml:"TxInf,omitempty"`
	SplmtryData []SupplementaryData1         `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (f *FIToFIPaymentStatusRequestV03) Validate() error {
	return constraint.Apply(
		constraint.Valid("grp_hdr", &f.GrpHdr),
		constraint.Each("orgnl_grp_inf", f.OrgnlGrpInf),
		constraint.Each("tx_inf", f.TxInf),
		constraint.Each("splmtry_data", f.SplmtryData),
	)
}
