package iso20022_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/iso20022"
)

func creditTransfer() iso20022.FIToFICustomerCreditTransferV08 {
	return iso20022.FIToFICustomerCreditTransferV08{
		GrpHdr: iso20022.GroupHeader93{
			MsgId:   "M20260829021000021B1",
			CreDtTm: "2026-08-29T10:15:00Z",
			NbOfTxs: "1",
			SttlmInf: iso20022.SettlementInstruction7{
				SttlmMtd: iso20022.SettlementClearingSystem,
			},
		},
		CdtTrfTxInf: []iso20022.CreditTransferTransaction39{
			{
				PmtId: iso20022.PaymentIdentification7{
					EndToEndId: "E2E-0001",
				},
				IntrBkSttlmAmt: iso20022.ActiveCurrencyAndAmount{Ccy: "USD", Value: 100.0},
				ChrgBr:         iso20022.ChargeBearerService,
				Dbtr:           iso20022.PartyIdentification135{},
				DbtrAgt:        iso20022.BranchAndFinancialInstitutionIdentification6{},
				CdtrAgt:        iso20022.BranchAndFinancialInstitutionIdentification6{},
				Cdtr:           iso20022.PartyIdentification135{},
			},
		},
	}
}

func TestFIToFICustomerCreditTransferV08(t *testing.T) {
	t.Run("minimal valid message passes", func(t *testing.T) {
		msg := creditTransfer()
		assert.NoError(t, msg.Validate())
	})

	t.Run("overlong end to end id reports the full path", func(t *testing.T) {
		msg := creditTransfer()
		msg.CdtTrfTxInf[0].PmtId.EndToEndId = strings.Repeat("x", 36)
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "cdt_trf_tx_inf[0].pmt_id.end_to_end_id", verr.Path)
		assert.Equal(t, "end_to_end_id exceeds the maximum length of 35", verr.Message)
	})

	t.Run("malformed uetr fails the pattern", func(t *testing.T) {
		msg := creditTransfer()
		uetr := "not-a-uetr"
		msg.CdtTrfTxInf[0].PmtId.UETR = &uetr
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "cdt_trf_tx_inf[0].pmt_id.uetr", verr.Path)
	})

	t.Run("generated uetr is accepted", func(t *testing.T) {
		msg := creditTransfer()
		uetr := iso20022.NewUETR()
		msg.CdtTrfTxInf[0].PmtId.UETR = &uetr
		assert.NoError(t, msg.Validate())
	})

	t.Run("invalid settlement amount surfaces through the transaction", func(t *testing.T) {
		msg := creditTransfer()
		msg.CdtTrfTxInf[0].IntrBkSttlmAmt.Ccy = "dollars"
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "cdt_trf_tx_inf[0].intr_bk_sttlm_amt.ccy", verr.Path)
	})

	t.Run("non numeric nb of txs fails in the group header", func(t *testing.T) {
		msg := creditTransfer()
		msg.GrpHdr.NbOfTxs = "one"
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "grp_hdr.nb_of_txs", verr.Path)
	})

	t.Run("group header is checked before transactions", func(t *testing.T) {
		msg := creditTransfer()
		msg.GrpHdr.MsgId = ""
		msg.CdtTrfTxInf[0].PmtId.EndToEndId = ""
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, "grp_hdr.msg_id", verr.Path)
	})

	t.Run("validation is idempotent", func(t *testing.T) {
		msg := creditTransfer()
		msg.CdtTrfTxInf[0].PmtId.EndToEndId = ""
		first := constraint.ExtractValidationError(msg.Validate())
		second := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, first)
		assert.Equal(t, first, second)
	})
}

func TestPostalAddress24(t *testing.T) {
	t.Run("overlong address line is addressed by index", func(t *testing.T) {
		addr := iso20022.PostalAddress24{
			AdrLine: []string{"1 Main St", strings.Repeat("x", 71)},
		}
		verr := constraint.ExtractValidationError(addr.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "adr_line[1]", verr.Path)
	})

	t.Run("invalid country code fails", func(t *testing.T) {
		ctry := "usa"
		addr := iso20022.PostalAddress24{Ctry: &ctry}
		verr := constraint.ExtractValidationError(addr.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "ctry", verr.Path)
	})
}
