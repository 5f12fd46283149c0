package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// camt.060.001.05 Account Reporting Request.

type GroupHeader77 struct {
	MsgId   string         `json:"MsgId" xml:"MsgId"`
	CreDtTm string         `json:"CreDtTm" xml:"CreDtTm"`
	MsgSndr *Party40Choice `json:"MsgSndr,omitempty" xml:"MsgSndr,omitempty"`
}

func (g *GroupHeader77) Validate() error {
	return constraint.Apply(
		constraint.MinLength("msg_id", g.MsgId, 1),
		constraint.MaxLength("msg_id", g.MsgId, 35),
		constraint.ValidIf("msg_sndr", g.MsgSndr),
	)
}

type DatePeriodDetails1 struct {
	FrDt string  `json:"FrDt" xml:"FrDt"`
	ToDt *string `json:"ToDt,omitempty" xml:"ToDt,omitempty"`
}

func (d *DatePeriodDetails1) Validate() error { return nil }

type TimePeriodDetails1 struct {
	FrTm string  `json:"FrTm" xml:"FrTm"`
	ToTm *string `json:"ToTm,omitempty" xml:"ToTm,omitempty"`
}

func (t *TimePeriodDetails1) Validate() error { return nil }

type ReportingPeriod2 struct {
	FrToDt DatePeriodDetails1  `json:"FrToDt" xml:"FrToDt"`
	FrToTm *TimePeriodDetails1 `json:"FrToTm,omitempty" xml:"FrToTm,omitempty"`
	Tp     QueryType3Code      `json:"Tp" xml:"Tp"`
}

func (r *ReportingPeriod2) Validate() error {
	return constraint.Apply(
		constraint.Valid("fr_to_dt", &r.FrToDt),
		constraint.ValidIf("fr_to_tm", r.FrToTm),
		constraint.Valid("tp", &r.Tp),
	)
}

type ReportingRequest5 struct {
	Id          *string                                       `json:"Id,omitempty" xml:"Id,omitempty"`
	ReqdMsgNmId string                                        `json:"ReqdMsgNmId" xml:"ReqdMsgNmId"`
	Acct        *CashAccount38                                `json:"Acct,omitempty" xml:"Acct,omitempty"`
	AcctOwnr    Party40Choice                                 `json:"AcctOwnr" xml:"AcctOwnr"`
	AcctSvcr    *BranchAndFinancialInstitutionIdentification6 `json:"AcctSvcr,omitempty" xml:"AcctSvcr,omitempty"`
	RptgPrd     *ReportingPeriod2                             `json:"RptgPrd,omitempty" xml:"RptgPrd,omitempty"`
}

func (r *ReportingRequest5) Validate() error {
	return constraint.Apply(
		constraint.MinLengthOpt("id", r.Id, 1),
		constraint.MaxLengthOpt("id", r.Id, 35),
		constraint.MinLength("reqd_msg_nm_id", r.ReqdMsgNmId, 1),
		constraint.MaxLength("reqd_msg_nm_id", r.ReqdMsgNmId, 35),
		constraint.ValidIf("acct", r.Acct),
		constraint.Valid("acct_ownr", &r.AcctOwnr),
		constraint.ValidIf("acct_svcr", r.AcctSvcr),
		constraint.ValidIf("rptg_prd", r.RptgPrd),
	)
}

// AccountReportingRequestV05 asks an account servicer to produce an account
// report or statement for the requested period.
type AccountReportingRequestV05 struct {
	GrpHdr      GroupHeader77        `json:"GrpHdr" xml:"GrpHdr"`
	RptgReq     []ReportingRequest5  `json:"RptgReq" xml:"RptgReq"`
	SplmtryData []SupplementaryData1 `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (a *AccountReportingRequestV05) Validate() error {
	return constraint.Apply(
		constraint.Valid("grp_hdr", &a.GrpHdr),
		constraint.Each("rptg_req", a.RptgReq),
		constraint.Each("splmtry_data", a.SplmtryData),
	)
}
