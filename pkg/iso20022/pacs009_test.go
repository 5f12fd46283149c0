package iso20022_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/iso20022"
)

func strptr(s string) *string { return &s }

func institutionCreditTransfer() iso20022.FinancialInstitutionCreditTransferV08 {
	return iso20022.FinancialInstitutionCreditTransferV08{
		GrpHdr: iso20022.GroupHeader93{
			MsgId:   "M20260829021000021C1",
			CreDtTm: "2026-08-29T10:15:00Z",
			NbOfTxs: "1",
			SttlmInf: iso20022.SettlementInstruction7{
				SttlmMtd: iso20022.SettlementClearingSystem,
			},
		},
		CdtTrfTxInf: []iso20022.CreditTransferTransaction36{
			{
				PmtId: iso20022.PaymentIdentification7{
					EndToEndId: "E2E-0002",
				},
				IntrBkSttlmAmt: iso20022.ActiveCurrencyAndAmount{Ccy: "USD", Value: 250000.0},
				Dbtr:           iso20022.BranchAndFinancialInstitutionIdentification6{},
				Cdtr:           iso20022.BranchAndFinancialInstitutionIdentification6{},
			},
		},
	}
}

func TestFinancialInstitutionCreditTransferV08(t *testing.T) {
	t.Run("minimal valid message passes", func(t *testing.T) {
		msg := institutionCreditTransfer()
		assert.NoError(t, msg.Validate())
	})

	t.Run("empty group header message id fails", func(t *testing.T) {
		msg := institutionCreditTransfer()
		msg.GrpHdr.MsgId = ""
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
		assert.Equal(t, "grp_hdr.msg_id", verr.Path)
	})

	t.Run("invalid settlement currency surfaces through the transaction", func(t *testing.T) {
		msg := institutionCreditTransfer()
		msg.CdtTrfTxInf[0].IntrBkSttlmAmt.Ccy = "dollars"
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "cdt_trf_tx_inf[0].intr_bk_sttlm_amt.ccy", verr.Path)
	})

	t.Run("overlong remittance line is addressed by index", func(t *testing.T) {
		msg := institutionCreditTransfer()
		msg.CdtTrfTxInf[0].RmtInf = &iso20022.RemittanceInformation2{
			Ustrd: []string{"invoice 42", strings.Repeat("x", 141)},
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "cdt_trf_tx_inf[0].rmt_inf.ustrd[1]", verr.Path)
	})

	t.Run("underlying customer leg is traversed", func(t *testing.T) {
		msg := institutionCreditTransfer()
		instd := iso20022.ActiveOrHistoricCurrencyAndAmount{Ccy: "usd", Value: 250000.0}
		msg.CdtTrfTxInf[0].UndrlygCstmrCdtTrf = &iso20022.CreditTransferTransaction37{
			Dbtr:     iso20022.PartyIdentification135{},
			DbtrAgt:  iso20022.BranchAndFinancialInstitutionIdentification6{},
			CdtrAgt:  iso20022.BranchAndFinancialInstitutionIdentification6{},
			Cdtr:     iso20022.PartyIdentification135{},
			InstdAmt: &instd,
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "cdt_trf_tx_inf[0].undrlyg_cstmr_cdt_trf.instd_amt.ccy", verr.Path)
	})
}

func TestFIToFIPaymentStatusRequestV03(t *testing.T) {
	statusRequest := func() iso20022.FIToFIPaymentStatusRequestV03 {
		return iso20022.FIToFIPaymentStatusRequestV03{
			GrpHdr: iso20022.GroupHeader91{
				MsgId:   "M20260829021000021C2",
				CreDtTm: "2026-08-29T10:15:00Z",
			},
			TxInf: []iso20022.PaymentTransaction113{
				{OrgnlTxId: strptr("T20260829021000021C2")},
			},
		}
	}

	t.Run("minimal valid request passes", func(t *testing.T) {
		msg := statusRequest()
		assert.NoError(t, msg.Validate())
	})

	t.Run("malformed original uetr fails in the transaction", func(t *testing.T) {
		msg := statusRequest()
		msg.TxInf[0].OrgnlUETR = strptr("not-a-uetr")
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "tx_inf[0].orgnl_uetr", verr.Path)
	})

	t.Run("non numeric original transaction count fails", func(t *testing.T) {
		msg := statusRequest()
		msg.OrgnlGrpInf = []iso20022.OriginalGroupInformation27{
			{
				OrgnlMsgId:   "M20260829021000021A1",
				OrgnlMsgNmId: "pacs.008.001.08",
				OrgnlNbOfTxs: strptr("one"),
			},
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "orgnl_grp_inf[0].orgnl_nb_of_txs", verr.Path)
	})
}
