package fednow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/fednow"
)

func TestFedNowParticipantFile1(t *testing.T) {
	t.Run("valid roster passes", func(t *testing.T) {
		file := fednow.FedNowParticipantFile1{
			BizDay: "2026-08-29",
			PtcptPrfl: []fednow.FedNowParticipantProfile1{
				{
					Id:   "021000021",
					Nm:   "First Example Bank",
					Svcs: []fednow.ParticipantService{fednow.ServiceCreditTransferSendReceive},
				},
				{
					Id:   "011000015",
					Nm:   "Second Example Bank",
					Svcs: []fednow.ParticipantService{fednow.ServiceRequestForPaymentReceive},
				},
			},
		}
		assert.NoError(t, file.Validate())
	})

	t.Run("malformed routing number is addressed by index", func(t *testing.T) {
		file := fednow.FedNowParticipantFile1{
			BizDay: "2026-08-29",
			PtcptPrfl: []fednow.FedNowParticipantProfile1{
				{Id: "021000021", Nm: "First Example Bank"},
				{Id: "21000021", Nm: "Short Routing Bank"},
			},
		}
		verr := constraint.ExtractValidationError(file.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "ptcpt_prfl[1].id", verr.Path)
	})

	t.Run("unknown service code is addressed by index", func(t *testing.T) {
		file := fednow.FedNowParticipantFile1{
			BizDay: "2026-08-29",
			PtcptPrfl: []fednow.FedNowParticipantProfile1{
				{
					Id: "021000021",
					Nm: "First Example Bank",
					Svcs: []fednow.ParticipantService{
						fednow.ServiceCreditTransferSendReceive,
						fednow.ParticipantService("XXXX"),
					},
				},
			},
		}
		verr := constraint.ExtractValidationError(file.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "ptcpt_prfl[0].svcs[1]", verr.Path)
	})

	t.Run("empty participant name fails", func(t *testing.T) {
		file := fednow.FedNowParticipantFile1{
			BizDay:    "2026-08-29",
			PtcptPrfl: []fednow.FedNowParticipantProfile1{{Id: "021000021", Nm: ""}},
		}
		verr := constraint.ExtractValidationError(file.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
		assert.Equal(t, "ptcpt_prfl[0].nm", verr.Path)
	})
}

func TestAdmi998SuplDataV01(t *testing.T) {
	t.Run("wraps the participant file with its path", func(t *testing.T) {
		msg := fednow.Admi998SuplDataV01{
			PtcptFile: fednow.FedNowParticipantFile1{
				BizDay:    "2026-08-29",
				PtcptPrfl: []fednow.FedNowParticipantProfile1{{Id: "bad", Nm: "Bank"}},
			},
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, "ptcpt_file.ptcpt_prfl[0].id", verr.Path)
	})
}
