package iso20022_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/iso20022"
)

func TestCustomerPaymentCancellationRequestV09(t *testing.T) {
	cancellation := func() iso20022.CustomerPaymentCancellationRequestV09 {
		return iso20022.CustomerPaymentCancellationRequestV09{
			Assgnmt: caseAssignment(),
			Undrlyg: []iso20022.UnderlyingTransaction27{
				{
					OrgnlPmtInfAndCxl: []iso20022.OriginalPaymentInstruction36{
						{
							OrgnlPmtInfId: "P20260829021000021F1",
							TxInf: []iso20022.PaymentTransaction124{
								{OrgnlEndToEndId: strptr("E2E-0003")},
							},
						},
					},
				},
			},
		}
	}

	t.Run("minimal valid request passes", func(t *testing.T) {
		msg := cancellation()
		assert.NoError(t, msg.Validate())
	})

	t.Run("empty original payment information id fails", func(t *testing.T) {
		msg := cancellation()
		msg.Undrlyg[0].OrgnlPmtInfAndCxl[0].OrgnlPmtInfId = ""
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
		assert.Equal(t, "undrlyg[0].orgnl_pmt_inf_and_cxl[0].orgnl_pmt_inf_id", verr.Path)
	})

	t.Run("overlong cancellation reason detail is addressed by index", func(t *testing.T) {
		msg := cancellation()
		msg.Undrlyg[0].OrgnlPmtInfAndCxl[0].TxInf[0].CxlRsnInf = []iso20022.PaymentCancellationReason5{
			{
				Rsn:      &iso20022.CancellationReason33Choice{Cd: strptr("DUPL")},
				AddtlInf: []string{strings.Repeat("x", 106)},
			},
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t,
			"undrlyg[0].orgnl_pmt_inf_and_cxl[0].tx_inf[0].cxl_rsn_inf[0].addtl_inf[0]",
			verr.Path)
	})

	t.Run("non numeric control data count fails", func(t *testing.T) {
		msg := cancellation()
		msg.CtrlData = &iso20022.ControlData1{NbOfTxs: "one"}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "ctrl_data.nb_of_txs", verr.Path)
	})
}

func TestFIToFIPaymentCancellationRequestV08(t *testing.T) {
	returnRequest := func() iso20022.FIToFIPaymentCancellationRequestV08 {
		amt := iso20022.ActiveOrHistoricCurrencyAndAmount{Ccy: "USD", Value: 100.0}
		return iso20022.FIToFIPaymentCancellationRequestV08{
			Assgnmt: caseAssignment(),
			Undrlyg: []iso20022.UnderlyingTransaction23{
				{
					TxInf: []iso20022.PaymentTransaction106{
						{
							OrgnlTxId:           strptr("T20260829021000021F2"),
							OrgnlIntrBkSttlmAmt: &amt,
						},
					},
				},
			},
		}
	}

	t.Run("minimal valid request passes", func(t *testing.T) {
		msg := returnRequest()
		assert.NoError(t, msg.Validate())
	})

	t.Run("malformed original uetr fails in the transaction", func(t *testing.T) {
		msg := returnRequest()
		msg.Undrlyg[0].TxInf[0].OrgnlUETR = strptr("not-a-uetr")
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "undrlyg[0].tx_inf[0].orgnl_uetr", verr.Path)
	})

	t.Run("group level cancellation header is traversed", func(t *testing.T) {
		msg := returnRequest()
		msg.Undrlyg[0].OrgnlGrpInfAndCxl = &iso20022.OriginalGroupHeader15{
			OrgnlMsgId:   "",
			OrgnlMsgNmId: "pacs.008.001.08",
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
		assert.Equal(t, "undrlyg[0].orgnl_grp_inf_and_cxl.orgnl_msg_id", verr.Path)
	})
}
