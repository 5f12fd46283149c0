package iso20022_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/iso20022"
)

func requestForPaymentStatus() iso20022.CreditorPaymentActivationRequestStatusReportV07 {
	return iso20022.CreditorPaymentActivationRequestStatusReportV07{
		GrpHdr: iso20022.GroupHeader87{
			MsgId:    "M20260829021000021D2",
			CreDtTm:  "2026-08-29T10:15:00Z",
			InitgPty: iso20022.PartyIdentification135{},
		},
		OrgnlGrpInfAndSts: iso20022.OriginalGroupInformation30{
			OrgnlMsgId:   "M20260829021000021D1",
			OrgnlMsgNmId: "pain.013.001.07",
		},
	}
}

func TestCreditorPaymentActivationRequestStatusReportV07(t *testing.T) {
	t.Run("minimal valid report passes", func(t *testing.T) {
		msg := requestForPaymentStatus()
		assert.NoError(t, msg.Validate())
	})

	t.Run("overlong group status fails", func(t *testing.T) {
		msg := requestForPaymentStatus()
		msg.OrgnlGrpInfAndSts.GrpSts = strptr("RJCTD")
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "orgnl_grp_inf_and_sts.grp_sts", verr.Path)
	})

	t.Run("transaction status detail is traversed", func(t *testing.T) {
		msg := requestForPaymentStatus()
		msg.OrgnlPmtInfAndSts = []iso20022.OriginalPaymentInstruction31{
			{
				OrgnlPmtInfId: "P20260829021000021D1",
				TxInfAndSts: []iso20022.PaymentTransaction104{
					{OrgnlUETR: strptr("not-a-uetr")},
				},
			},
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "orgnl_pmt_inf_and_sts[0].tx_inf_and_sts[0].orgnl_uetr", verr.Path)
	})

	t.Run("status report echoes the original payment condition", func(t *testing.T) {
		accepted := iso20022.ActiveCurrencyAndAmount{Ccy: "eur", Value: 100.0}
		msg := requestForPaymentStatus()
		msg.OrgnlPmtInfAndSts = []iso20022.OriginalPaymentInstruction31{
			{
				OrgnlPmtInfId: "P20260829021000021D1",
				TxInfAndSts: []iso20022.PaymentTransaction104{
					{PmtCondSts: &iso20022.PaymentConditionStatus1{AccptdAmt: &accepted}},
				},
			},
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "orgnl_pmt_inf_and_sts[0].tx_inf_and_sts[0].pmt_cond_sts.accptd_amt.ccy", verr.Path)
	})
}
