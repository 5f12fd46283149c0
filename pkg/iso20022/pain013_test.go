package iso20022_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/iso20022"
)

func requestForPayment() iso20022.CreditorPaymentActivationRequestV07 {
	instd := iso20022.ActiveOrHistoricCurrencyAndAmount{Ccy: "USD", Value: 1250.5}
	return iso20022.CreditorPaymentActivationRequestV07{
		GrpHdr: iso20022.GroupHeader78{
			MsgId:    "M20260829021000021D1",
			CreDtTm:  "2026-08-29T10:15:00Z",
			NbOfTxs:  "1",
			InitgPty: iso20022.PartyIdentification135{},
		},
		PmtInf: []iso20022.PaymentInstruction31{
			{
				PmtMtd:      iso20022.PaymentMethodTransfer,
				ReqdExctnDt: iso20022.DateAndDateTime2Choice{Dt: strptr("2026-08-29")},
				Dbtr:        iso20022.PartyIdentification135{},
				DbtrAgt:     iso20022.BranchAndFinancialInstitutionIdentification6{},
				CdtTrfTx: []iso20022.CreditTransferTransaction35{
					{
						PmtId: iso20022.PaymentIdentification6{EndToEndId: "E2E-0003"},
						Amt: iso20022.AmountType4Choice{
							InstdAmt: &instd,
						},
						ChrgBr:  iso20022.ChargeBearerShared,
						CdtrAgt: iso20022.BranchAndFinancialInstitutionIdentification6{},
						Cdtr:    iso20022.PartyIdentification135{},
					},
				},
			},
		},
	}
}

func TestCreditorPaymentActivationRequestV07(t *testing.T) {
	t.Run("minimal valid request passes", func(t *testing.T) {
		msg := requestForPayment()
		assert.NoError(t, msg.Validate())
	})

	t.Run("empty end to end id reports the full path", func(t *testing.T) {
		msg := requestForPayment()
		msg.PmtInf[0].CdtTrfTx[0].PmtId.EndToEndId = ""
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
		assert.Equal(t, "pmt_inf[0].cdt_trf_tx[0].pmt_id.end_to_end_id", verr.Path)
	})

	t.Run("overlong delay penalty fails in the payment condition", func(t *testing.T) {
		msg := requestForPayment()
		msg.PmtInf[0].PmtCond = &iso20022.PaymentCondition1{
			AmtModAllwd: true,
			DelyPnlty:   strptr(strings.Repeat("x", 141)),
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "pmt_inf[0].pmt_cond.dely_pnlty", verr.Path)
	})

	t.Run("equivalent amount currency of transfer is pattern checked", func(t *testing.T) {
		msg := requestForPayment()
		msg.PmtInf[0].CdtTrfTx[0].Amt = iso20022.AmountType4Choice{
			EqvtAmt: &iso20022.EquivalentAmount2{
				Amt:      iso20022.ActiveOrHistoricCurrencyAndAmount{Ccy: "USD", Value: 1250.5},
				CcyOfTrf: "usd",
			},
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "pmt_inf[0].cdt_trf_tx[0].amt.eqvt_amt.ccy_of_trf", verr.Path)
	})
}
