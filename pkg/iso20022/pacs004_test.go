package iso20022_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/iso20022"
)

func paymentReturn() iso20022.PaymentReturnV10 {
	return iso20022.PaymentReturnV10{
		GrpHdr: iso20022.GroupHeader90{
			MsgId:   "R20260829021000021B1",
			CreDtTm: "2026-08-29T10:15:00Z",
			NbOfTxs: "1",
			SttlmInf: iso20022.SettlementInstruction7{
				SttlmMtd: iso20022.SettlementClearingSystem,
			},
		},
		TxInf: []iso20022.PaymentTransaction118{
			{
				RtrdIntrBkSttlmAmt: iso20022.ActiveCurrencyAndAmount{Ccy: "USD", Value: 25.0},
			},
		},
	}
}

func TestPaymentReturnV10(t *testing.T) {
	t.Run("minimal valid message passes", func(t *testing.T) {
		msg := paymentReturn()
		assert.NoError(t, msg.Validate())
	})

	t.Run("overlong return reason code reports the full path", func(t *testing.T) {
		msg := paymentReturn()
		cd := "TOOLONG"
		msg.TxInf[0].RtrRsnInf = []iso20022.PaymentReturnReason6{
			{Rsn: &iso20022.ReturnReason5Choice{Cd: &cd}},
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "tx_inf[0].rtr_rsn_inf[0].rsn.cd", verr.Path)
	})

	t.Run("overlong additional info is addressed by index", func(t *testing.T) {
		msg := paymentReturn()
		msg.TxInf[0].RtrRsnInf = []iso20022.PaymentReturnReason6{
			{AddtlInf: []string{strings.Repeat("x", 106)}},
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, "tx_inf[0].rtr_rsn_inf[0].addtl_inf[0]", verr.Path)
	})

	t.Run("negative returned amount fails", func(t *testing.T) {
		msg := paymentReturn()
		msg.TxInf[0].RtrdIntrBkSttlmAmt.Value = -1
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeBelowMinimum, verr.Code)
		assert.Equal(t, "tx_inf[0].rtrd_intr_bk_sttlm_amt.value", verr.Path)
	})
}

func TestFIToFIPaymentStatusReportV10(t *testing.T) {
	t.Run("report with no transaction info passes", func(t *testing.T) {
		msg := iso20022.FIToFIPaymentStatusReportV10{
			GrpHdr: iso20022.GroupHeader91{
				MsgId:   "S20260829021000021B1",
				CreDtTm: "2026-08-29T10:15:00Z",
			},
		}
		assert.NoError(t, msg.Validate())
	})

	t.Run("overlong transaction status fails", func(t *testing.T) {
		sts := "ACCEPTED"
		msg := iso20022.FIToFIPaymentStatusReportV10{
			GrpHdr: iso20022.GroupHeader91{
				MsgId:   "S20260829021000021B1",
				CreDtTm: "2026-08-29T10:15:00Z",
			},
			TxInfAndSts: []iso20022.PaymentTransaction110{{TxSts: &sts}},
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "tx_inf_and_sts[0].tx_sts", verr.Path)
	})
}
