package iso20022_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/iso20022"
)

func TestSystemEventAcknowledgementV01(t *testing.T) {
	acknowledgement := func() iso20022.SystemEventAcknowledgementV01 {
		return iso20022.SystemEventAcknowledgementV01{
			MsgId: "M20260829021000021G1",
			AckDtls: &iso20022.Event1{
				EvtCd:    "ADHC",
				EvtParam: []string{"FRB2"},
			},
		}
	}

	t.Run("minimal valid acknowledgement passes", func(t *testing.T) {
		msg := acknowledgement()
		assert.NoError(t, msg.Validate())
	})

	t.Run("malformed settlement session identifier fails", func(t *testing.T) {
		msg := acknowledgement()
		msg.SttlmSsnIdr = strptr("TOOLONG")
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "sttlm_ssn_idr", verr.Path)
	})

	t.Run("overlong event parameter is addressed by index", func(t *testing.T) {
		msg := acknowledgement()
		msg.AckDtls.EvtParam = []string{"FRB2", strings.Repeat("x", 36)}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "ack_dtls.evt_param[1]", verr.Path)
	})

	t.Run("overlong event description fails", func(t *testing.T) {
		msg := acknowledgement()
		msg.AckDtls.EvtDesc = strptr(strings.Repeat("x", 351))
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "ack_dtls.evt_desc", verr.Path)
	})
}

func TestAdministrationProprietaryMessageV02(t *testing.T) {
	proprietary := func() iso20022.AdministrationProprietaryMessageV02 {
		return iso20022.AdministrationProprietaryMessageV02{
			MsgId: &iso20022.MessageReference{Ref: "M20260829021000021G2"},
			PrtryData: iso20022.ProprietaryData5{
				Tp:   "FedNowPtcptFile",
				Data: iso20022.SupplementaryDataEnvelope1{},
			},
		}
	}

	t.Run("minimal valid message passes", func(t *testing.T) {
		msg := proprietary()
		assert.NoError(t, msg.Validate())
	})

	t.Run("empty proprietary data type fails", func(t *testing.T) {
		msg := proprietary()
		msg.PrtryData.Tp = ""
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
		assert.Equal(t, "prtry_data.tp", verr.Path)
	})

	t.Run("empty related reference fails", func(t *testing.T) {
		msg := proprietary()
		msg.Rltd = &iso20022.MessageReference{Ref: ""}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
		assert.Equal(t, "rltd.ref", verr.Path)
	})
}
