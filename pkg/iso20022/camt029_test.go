package iso20022_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/iso20022"
)

func caseAssignment() iso20022.CaseAssignment5 {
	return iso20022.CaseAssignment5{
		Id:      "CASE-20260829-0001",
		Assgnr:  iso20022.Party40Choice{},
		Assgne:  iso20022.Party40Choice{},
		CreDtTm: "2026-08-29T10:15:00Z",
	}
}

func TestResolutionOfInvestigationV09(t *testing.T) {
	resolution := func() iso20022.ResolutionOfInvestigationV09 {
		return iso20022.ResolutionOfInvestigationV09{
			Assgnmt: caseAssignment(),
			Sts:     iso20022.InvestigationStatus5Choice{Conf: strptr("CNCL")},
		}
	}

	t.Run("minimal valid resolution passes", func(t *testing.T) {
		msg := resolution()
		assert.NoError(t, msg.Validate())
	})

	t.Run("overlong confirmation code fails", func(t *testing.T) {
		msg := resolution()
		msg.Sts.Conf = strptr("CANCELLED")
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "sts.conf", verr.Path)
	})

	t.Run("cancellation detail reason is addressed by index", func(t *testing.T) {
		msg := resolution()
		msg.CxlDtls = []iso20022.UnderlyingTransaction22{
			{
				TxInfAndSts: []iso20022.PaymentTransaction102{
					{
						CxlStsRsnInf: []iso20022.CancellationStatusReason4{
							{AddtlInf: []string{strings.Repeat("x", 106)}},
						},
					},
				},
			},
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "cxl_dtls[0].tx_inf_and_sts[0].cxl_sts_rsn_inf[0].addtl_inf[0]", verr.Path)
	})

	t.Run("corrective interbank transaction is traversed", func(t *testing.T) {
		msg := resolution()
		msg.CrrctnTx = &iso20022.CorrectiveTransaction4Choice{
			IntrBk: &iso20022.CorrectiveInterbankTransaction2{
				IntrBkSttlmAmt: iso20022.ActiveOrHistoricCurrencyAndAmount{Ccy: "us", Value: 50.0},
				IntrBkSttlmDt:  "2026-08-29",
			},
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "crrctn_tx.intr_bk.intr_bk_sttlm_amt.ccy", verr.Path)
	})
}

func TestUnableToApplyV07(t *testing.T) {
	unableToApply := func() iso20022.UnableToApplyV07 {
		return iso20022.UnableToApplyV07{
			Assgnmt: caseAssignment(),
			Undrlyg: iso20022.UnderlyingTransaction5Choice{
				IntrBk: &iso20022.UnderlyingPaymentTransaction4{
					OrgnlIntrBkSttlmAmt: iso20022.ActiveOrHistoricCurrencyAndAmount{Ccy: "USD", Value: 100.0},
					OrgnlIntrBkSttlmDt:  "2026-08-29",
				},
			},
			Justfn: iso20022.UnableToApplyJustification3Choice{
				MssngOrIncrrctInf: &iso20022.MissingOrIncorrectInformation3{
					MssngInf: []iso20022.UnableToApplyMissing1{
						{Tp: iso20022.UnableToApplyMissingInformation3Choice{Cd: strptr("MS03")}},
					},
				},
			},
		}
	}

	t.Run("minimal valid request passes", func(t *testing.T) {
		msg := unableToApply()
		assert.NoError(t, msg.Validate())
	})

	t.Run("empty assignment id fails", func(t *testing.T) {
		msg := unableToApply()
		msg.Assgnmt.Id = ""
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
		assert.Equal(t, "assgnmt.id", verr.Path)
	})

	t.Run("overlong missing information code fails", func(t *testing.T) {
		msg := unableToApply()
		msg.Justfn.MssngOrIncrrctInf.MssngInf[0].Tp.Cd = strptr("MISSING")
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "justfn.mssng_or_incrrct_inf.mssng_inf[0].tp.cd", verr.Path)
	})
}

func TestAdditionalPaymentInformationV09(t *testing.T) {
	t.Run("complementary remittance detail is traversed", func(t *testing.T) {
		msg := iso20022.AdditionalPaymentInformationV09{
			Assgnmt: caseAssignment(),
			Undrlyg: iso20022.UnderlyingTransaction5Choice{
				IntrBk: &iso20022.UnderlyingPaymentTransaction4{
					OrgnlIntrBkSttlmAmt: iso20022.ActiveOrHistoricCurrencyAndAmount{Ccy: "USD", Value: 100.0},
					OrgnlIntrBkSttlmDt:  "2026-08-29",
				},
			},
			Inf: iso20022.PaymentComplementaryInformation9{
				InstrForDbtrAgt: strptr(strings.Repeat("x", 141)),
			},
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "inf.instr_for_dbtr_agt", verr.Path)
	})
}
