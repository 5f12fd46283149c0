package iso20022_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/iso20022"
)

func accountReport() iso20022.BankToCustomerAccountReportV08 {
	return iso20022.BankToCustomerAccountReportV08{
		GrpHdr: iso20022.GroupHeader81{
			MsgId:   "M20260829021000021E1",
			CreDtTm: "2026-08-29T18:00:00Z",
		},
		Rpt: []iso20022.AccountReport25{
			{
				Id:   "RPT-2026-08-29-1",
				Acct: iso20022.CashAccount39{Id: iso20022.AccountIdentification4Choice{}},
				Bal: []iso20022.CashBalance8{
					{
						Tp: iso20022.BalanceType13{
							CdOrPrtry: iso20022.BalanceType10Choice{Cd: strptr("OPBD")},
						},
						Amt:       iso20022.ActiveOrHistoricCurrencyAndAmount{Ccy: "USD", Value: 1000000.0},
						CdtDbtInd: iso20022.CreditDebitCredit,
						Dt:        iso20022.DateAndDateTime2Choice{Dt: strptr("2026-08-29")},
					},
				},
			},
		},
	}
}

func TestBankToCustomerAccountReportV08(t *testing.T) {
	t.Run("minimal valid report passes", func(t *testing.T) {
		msg := accountReport()
		assert.NoError(t, msg.Validate())
	})

	t.Run("non numeric page number fails in the header", func(t *testing.T) {
		msg := accountReport()
		msg.GrpHdr.MsgPgntn = &iso20022.Pagination1{PgNb: "one", LastPgInd: true}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "grp_hdr.msg_pgntn.pg_nb", verr.Path)
	})

	t.Run("overlong balance type code fails inside the report", func(t *testing.T) {
		msg := accountReport()
		msg.Rpt[0].Bal[0].Tp.CdOrPrtry.Cd = strptr("OPENING")
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "rpt[0].bal[0].tp.cd_or_prtry.cd", verr.Path)
	})

	t.Run("entry transaction references are traversed", func(t *testing.T) {
		msg := accountReport()
		msg.Rpt[0].Ntry = []iso20022.ReportEntry10{
			{
				Amt:       iso20022.ActiveOrHistoricCurrencyAndAmount{Ccy: "USD", Value: 250.0},
				CdtDbtInd: iso20022.CreditDebitDebit,
				Sts:       iso20022.EntryStatus1Choice{Cd: strptr("BOOK")},
				BkTxCd: iso20022.BankTransactionCodeStructure4{
					Prtry: &iso20022.ProprietaryBankTransactionCodeStructure1{Cd: "FDWCT"},
				},
				NtryDtls: []iso20022.EntryDetails9{
					{
						TxDtls: []iso20022.EntryTransaction10{
							{Refs: &iso20022.TransactionReferences6{UETR: strptr("not-a-uetr")}},
						},
					},
				},
			},
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "rpt[0].ntry[0].ntry_dtls[0].tx_dtls[0].refs.uetr", verr.Path)
	})

	t.Run("overlong additional report information fails", func(t *testing.T) {
		msg := accountReport()
		msg.Rpt[0].AddtlRptInf = strptr(strings.Repeat("x", 501))
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "rpt[0].addtl_rpt_inf", verr.Path)
	})
}

func TestBankToCustomerDebitCreditNotificationV08(t *testing.T) {
	notification := func() iso20022.BankToCustomerDebitCreditNotificationV08 {
		return iso20022.BankToCustomerDebitCreditNotificationV08{
			GrpHdr: iso20022.GroupHeader81{
				MsgId:   "M20260829021000021E2",
				CreDtTm: "2026-08-29T18:00:00Z",
			},
			Ntfctn: []iso20022.AccountNotification17{
				{
					Id:   "NTFCTN-2026-08-29-1",
					Acct: iso20022.CashAccount39{Id: iso20022.AccountIdentification4Choice{}},
				},
			},
		}
	}

	t.Run("minimal valid notification passes", func(t *testing.T) {
		msg := notification()
		assert.NoError(t, msg.Validate())
	})

	t.Run("empty notification id is addressed by index", func(t *testing.T) {
		msg := notification()
		msg.Ntfctn[0].Id = ""
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
		assert.Equal(t, "ntfctn[0].id", verr.Path)
	})

	t.Run("account currency is pattern checked", func(t *testing.T) {
		msg := notification()
		msg.Ntfctn[0].Acct.Ccy = strptr("usd")
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "ntfctn[0].acct.ccy", verr.Path)
	})
}
