package fednow

import (
	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/iso20022"
)

// Document is the choice of ISO 20022 payloads an envelope can carry. Each
// slot is keyed by the document's root element name. Zero or several
// populated slots are accepted; each populated slot validates on its own.
type Document struct {
	MsgRjct                *iso20022.MessageRejectV01                                `json:"MsgRjct,omitempty" xml:"MsgRjct,omitempty"`
	SysEvtNtfctn           *iso20022.SystemEventNotificationV02                      `json:"SysEvtNtfctn,omitempty" xml:"SysEvtNtfctn,omitempty"`
	RsndReq                *iso20022.ResendRequestV01                                `json:"RsndReq,omitempty" xml:"RsndReq,omitempty"`
	RctAck                 *iso20022.ReceiptAcknowledgementV01                       `json:"RctAck,omitempty" xml:"RctAck,omitempty"`
	FIToFIPmtStsRpt        *iso20022.FIToFIPaymentStatusReportV10                    `json:"FIToFIPmtStsRpt,omitempty" xml:"FIToFIPmtStsRpt,omitempty"`
	PmtRtr                 *iso20022.PaymentReturnV10                                `json:"PmtRtr,omitempty" xml:"PmtRtr,omitempty"`
	FIToFICstmrCdtTrf      *iso20022.FIToFICustomerCreditTransferV08                 `json:"FIToFICstmrCdtTrf,omitempty" xml:"FIToFICstmrCdtTrf,omitempty"`
	FICdtTrf               *iso20022.FinancialInstitutionCreditTransferV08           `json:"FICdtTrf,omitempty" xml:"FICdtTrf,omitempty"`
	FIToFIPmtStsReq        *iso20022.FIToFIPaymentStatusRequestV03                   `json:"FIToFIPmtStsReq,omitempty" xml:"FIToFIPmtStsReq,omitempty"`
	CdtrPmtActvtnReq       *iso20022.CreditorPaymentActivationRequestV07             `json:"CdtrPmtActvtnReq,omitempty" xml:"CdtrPmtActvtnReq,omitempty"`
	CdtrPmtActvtnReqStsRpt *iso20022.CreditorPaymentActivationRequestStatusReportV07 `json:"CdtrPmtActvtnReqStsRpt,omitempty" xml:"CdtrPmtActvtnReqStsRpt,omitempty"`
	UblToApply             *iso20022.UnableToApplyV07                                `json:"UblToApply,omitempty" xml:"UblToApply,omitempty"`
	AddtlPmtInf            *iso20022.AdditionalPaymentInformationV09                 `json:"AddtlPmtInf,omitempty" xml:"AddtlPmtInf,omitempty"`
	RsltnOfInvstgtn        *iso20022.ResolutionOfInvestigationV09                    `json:"RsltnOfInvstgtn,omitempty" xml:"RsltnOfInvstgtn,omitempty"`
	CstmrPmtCxlReq         *iso20022.CustomerPaymentCancellationRequestV09           `json:"CstmrPmtCxlReq,omitempty" xml:"CstmrPmtCxlReq,omitempty"`
	FIToFIPmtCxlReq        *iso20022.FIToFIPaymentCancellationRequestV08             `json:"FIToFIPmtCxlReq,omitempty" xml:"FIToFIPmtCxlReq,omitempty"`
	AcctRptgReq            *iso20022.AccountReportingRequestV05                      `json:"AcctRptgReq,omitempty" xml:"AcctRptgReq,omitempty"`
	SysEvtAck              *iso20022.SystemEventAcknowledgementV01                   `json:"SysEvtAck,omitempty" xml:"SysEvtAck,omitempty"`
	AdmstnPrtryMsg         *iso20022.AdministrationProprietaryMessageV02             `json:"AdmstnPrtryMsg,omitempty" xml:"AdmstnPrtryMsg,omitempty"`
	BkToCstmrAcctRpt       *iso20022.BankToCustomerAccountReportV08                  `json:"BkToCstmrAcctRpt,omitempty" xml:"BkToCstmrAcctRpt,omitempty"`
	BkToCstmrDbtCdtNtfctn  *iso20022.BankToCustomerDebitCreditNotificationV08        `json:"BkToCstmrDbtCdtNtfctn,omitempty" xml:"BkToCstmrDbtCdtNtfctn,omitempty"`
	PtcptFile              *Admi998SuplDataV01                                       `json:"PtcptFile,omitempty" xml:"PtcptFile,omitempty"`
}

// Populated reports the element names of the slots currently set, in
// declaration order.
func (d *Document) Populated() []string {
	var names []string
	if d.MsgRjct != nil {
		names = append(names, "MsgRjct")
	}
	if d.SysEvtNtfctn != nil {
		names = append(names, "SysEvtNtfctn")
	}
	if d.RsndReq != nil {
		names = append(names, "RsndReq")
	}
	if d.RctAck != nil {
		names = append(names, "RctAck")
	}
	if d.FIToFIPmtStsRpt != nil {
		names = append(names, "FIToFIPmtStsRpt")
	}
	if d.PmtRtr != nil {
		names = append(names, "PmtRtr")
	}
	if d.FIToFICstmrCdtTrf != nil {
		names = append(names, "FIToFICstmrCdtTrf")
	}
	if d.FICdtTrf != nil {
		names = append(names, "FICdtTrf")
	}
	if d.FIToFIPmtStsReq != nil {
		names = append(names, "FIToFIPmtStsReq")
	}
	if d.CdtrPmtActvtnReq != nil {
		names = append(names, "CdtrPmtActvtnReq")
	}
	if d.CdtrPmtActvtnReqStsRpt != nil {
		names = append(names, "CdtrPmtActvtnReqStsRpt")
	}
	if d.UblToApply != nil {
		names = append(names, "UblToApply")
	}
	if d.AddtlPmtInf != nil {
		names = append(names, "AddtlPmtInf")
	}
	if d.RsltnOfInvstgtn != nil {
		names = append(names, "RsltnOfInvstgtn")
	}
	if d.CstmrPmtCxlReq != nil {
		names = append(names, "CstmrPmtCxlReq")
	}
	if d.FIToFIPmtCxlReq != nil {
		names = append(names, "FIToFIPmtCxlReq")
	}
	if d.AcctRptgReq != nil {
		names = append(names, "AcctRptgReq")
	}
	if d.SysEvtAck != nil {
		names = append(names, "SysEvtAck")
	}
	if d.AdmstnPrtryMsg != nil {
		names = append(names, "AdmstnPrtryMsg")
	}
	if d.BkToCstmrAcctRpt != nil {
		names = append(names, "BkToCstmrAcctRpt")
	}
	if d.BkToCstmrDbtCdtNtfctn != nil {
		names = append(names, "BkToCstmrDbtCdtNtfctn")
	}
	if d.PtcptFile != nil {
		names = append(names, "PtcptFile")
	}
	return names
}

func (d *Document) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("msg_rjct", d.MsgRjct),
		constraint.ValidIf("sys_evt_ntfctn", d.SysEvtNtfctn),
		constraint.ValidIf("rsnd_req", d.RsndReq),
		constraint.ValidIf("rct_ack", d.RctAck),
		constraint.ValidIf("fi_to_fi_pmt_sts_rpt", d.FIToFIPmtStsRpt),
		constraint.ValidIf("pmt_rtr", d.PmtRtr),
		constraint.ValidIf("fi_to_fi_cstmr_cdt_trf", d.FIToFICstmrCdtTrf),
		constraint.ValidIf("fi_cdt_trf", d.FICdtTrf),
		constraint.ValidIf("fi_to_fi_pmt_sts_req", d.FIToFIPmtStsReq),
		constraint.ValidIf("cdtr_pmt_actvtn_req", d.CdtrPmtActvtnReq),
		constraint.ValidIf("cdtr_pmt_actvtn_req_sts_rpt", d.CdtrPmtActvtnReqStsRpt),
		constraint.ValidIf("ubl_to_apply", d.UblToApply),
		constraint.ValidIf("addtl_pmt_inf", d.AddtlPmtInf),
		constraint.ValidIf("rsltn_of_invstgtn", d.RsltnOfInvstgtn),
		constraint.ValidIf("cstmr_pmt_cxl_req", d.CstmrPmtCxlReq),
		constraint.ValidIf("fi_to_fi_pmt_cxl_req", d.FIToFIPmtCxlReq),
		constraint.ValidIf("acct_rptg_req", d.AcctRptgReq),
		constraint.ValidIf("sys_evt_ack", d.SysEvtAck),
		constraint.ValidIf("admstn_prtry_msg", d.AdmstnPrtryMsg),
		constraint.ValidIf("bk_to_cstmr_acct_rpt", d.BkToCstmrAcctRpt),
		constraint.ValidIf("bk_to_cstmr_dbt_cdt_ntfctn", d.BkToCstmrDbtCdtNtfctn),
		constraint.ValidIf("ptcpt_file", d.PtcptFile),
	)
}
