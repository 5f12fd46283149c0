package iso20022

import "github.com/openfin/fednowmsg/pkg/constraint"

// camt.054.001.08 Bank To Customer Debit Credit Notification.

type AccountNotification17 struct {
	Id             string                  `json:"Id" xml:"Id"`
	NtfctnPgntn    *Pagination1            `json:"NtfctnPgntn,omitempty" xml:"NtfctnPgntn,omitempty"`
	ElctrncSeqNb   *float64                `json:"ElctrncSeqNb,omitempty" xml:"ElctrncSeqNb,omitempty"`
	LglSeqNb       *float64                `json:"LglSeqNb,omitempty" xml:"LglSeqNb,omitempty"`
	CreDtTm        *string                 `json:"CreDtTm,omitempty" xml:"CreDtTm,omitempty"`
	FrToDt         *DateTimePeriod1        `json:"FrToDt,omitempty" xml:"FrToDt,omitempty"`
	RptgSrc        *ReportingSource1Choice `json:"RptgSrc,omitempty" xml:"RptgSrc,omitempty"`
	Acct           CashAccount39           `json:"Acct" xml:"Acct"`
	RltdAcct       *CashAccount38          `json:"RltdAcct,omitempty" xml:"RltdAcct,omitempty"`
	TxsSummry      *TotalTransactions6     `json:"TxsSummry,omitempty" xml:"TxsSummry,omitempty"`
	Ntry           []ReportEntry10         `json:"Ntry,omitempty" xml:"Ntry,omitempty"`
	AddtlNtfctnInf *string                 `json:"AddtlNtfctnInf,omitempty" xml:"AddtlNtfctnInf,omitempty"`
}

func (a *AccountNotification17) Validate() error {
	return constraint.Apply(
		constraint.MinLength("id", a.Id, 1),
		constraint.MaxLength("id", a.Id, 35),
		constraint.ValidIf("ntfctn_pgntn", a.NtfctnPgntn),
		constraint.ValidIf("rptg_src", a.RptgSrc),
		constraint.Valid("acct", &a.Acct),
		constraint.ValidIf("rltd_acct", a.RltdAcct),
		constraint.ValidIf("txs_summry", a.TxsSummry),
		constraint.Each("ntry", a.Ntry),
		constraint.MinLengthOpt("addtl_ntfctn_inf", a.AddtlNtfctnInf, 1),
		constraint.MaxLengthOpt("addtl_ntfctn_inf", a.AddtlNtfctnInf, 500),
	)
}

// BankToCustomerDebitCreditNotificationV08 notifies the account owner of
// entries booked to its account.
type BankToCustomerDebitCreditNotificationV08 struct {
	GrpHdr      GroupHeader81           `json:"GrpHdr" xml:"GrpHdr"`
	Ntfctn      []AccountNotification17 `json:"Ntfctn" xml:"Ntfctn"`
	SplmtryData []SupplementaryData1    `json:"SplmtryData,omitempty" xml:"SplmtryData,omitempty"`
}

func (b *BankToCustomerDebitCreditNotificationV08) Validate() error {
	return constraint.Apply(
		constraint.Valid("grp_hdr", &b.GrpHdr),
		constraint.Each("ntfctn", b.Ntfctn),
		constraint.Each("splmtry_data", b.SplmtryData),
	)
}
