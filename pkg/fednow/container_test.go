package fednow_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/fednow"
	"github.com/openfin/fednowmsg/pkg/iso20022"
)

func rejectEnvelope() *fednow.Envelope {
	return &fednow.Envelope{
		AppHdr: iso20022.BusinessApplicationHeaderV02{
			BizMsgIdr: "B20260829021000021B1",
			MsgDefIdr: "admi.002.001.01",
			CreDt:     "2026-08-29T10:15:00Z",
		},
		Document: fednow.Document{
			MsgRjct: &iso20022.MessageRejectV01{
				RltdRef: iso20022.MessageReference{Ref: "B20260829021000021A9"},
				Rsn:     iso20022.RejectionReason2{RjctgPtyRsn: "E1001"},
			},
		},
	}
}

func TestIncoming(t *testing.T) {
	t.Run("container with no populated slot validates", func(t *testing.T) {
		var in fednow.Incoming
		assert.NoError(t, in.Validate())
	})

	t.Run("container with several populated slots validates", func(t *testing.T) {
		in := fednow.Incoming{
			Message: fednow.IncomingMessage{
				MessageReject:          rejectEnvelope(),
				ReceiptAcknowledgement: rejectEnvelope(),
			},
		}
		assert.NoError(t, in.Validate())
	})

	t.Run("invalid populated slot propagates its path", func(t *testing.T) {
		env := rejectEnvelope()
		env.AppHdr.BizMsgIdr = ""
		in := fednow.Incoming{
			Message: fednow.IncomingMessage{MessageReject: env},
		}
		verr := constraint.ExtractValidationError(in.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
		assert.Equal(t, "message.message_reject.app_hdr.biz_msg_idr", verr.Path)
	})

	t.Run("decoded institution credit transfer keeps its document", func(t *testing.T) {
		raw := []byte(`{
			"FedNowIncomingMessage": {
				"FedNowInstitutionCreditTransfer": {
					"AppHdr": {
						"BizMsgIdr": "B20260829021000021C4",
						"MsgDefIdr": "pacs.009.001.08",
						"CreDt": "2026-08-29T10:15:00Z"
					},
					"Document": {"FICdtTrf": {"GrpHdr": {"MsgId": ""}}}
				}
			}
		}`)
		var in fednow.Incoming
		require.NoError(t, json.Unmarshal(raw, &in))
		env := in.Message.InstitutionCreditTransfer
		require.NotNil(t, env)
		assert.Equal(t, []string{"FICdtTrf"}, env.Document.Populated())

		verr := constraint.ExtractValidationError(in.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
		assert.Equal(t, "message.institution_credit_transfer.document.fi_cdt_trf.grp_hdr.msg_id", verr.Path)
	})

	t.Run("decoded return request keeps its document", func(t *testing.T) {
		raw := []byte(`{
			"FedNowIncomingMessage": {
				"FedNowReturnRequest": {
					"AppHdr": {
						"BizMsgIdr": "B20260829021000021C5",
						"MsgDefIdr": "camt.056.001.08",
						"CreDt": "2026-08-29T10:15:00Z"
					},
					"Document": {"FIToFIPmtCxlReq": {"Assgnmt": {"Id": ""}}}
				}
			}
		}`)
		var in fednow.Incoming
		require.NoError(t, json.Unmarshal(raw, &in))
		env := in.Message.ReturnRequest
		require.NotNil(t, env)
		assert.Equal(t, []string{"FIToFIPmtCxlReq"}, env.Document.Populated())

		verr := constraint.ExtractValidationError(in.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
		assert.Equal(t, "message.return_request.document.fi_to_fi_pmt_cxl_req.assgnmt.id", verr.Path)
	})

	t.Run("invalid document surfaces through the envelope", func(t *testing.T) {
		env := rejectEnvelope()
		env.Document.MsgRjct.RltdRef.Ref = ""
		in := fednow.Incoming{
			Message: fednow.IncomingMessage{MessageReject: env},
		}
		verr := constraint.ExtractValidationError(in.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, "message.message_reject.document.msg_rjct.rltd_ref.ref", verr.Path)
	})
}

func TestOutgoing(t *testing.T) {
	t.Run("container with no populated slot validates", func(t *testing.T) {
		var out fednow.Outgoing
		assert.NoError(t, out.Validate())
	})

	t.Run("invalid populated slot propagates its path", func(t *testing.T) {
		env := rejectEnvelope()
		env.AppHdr.MsgDefIdr = ""
		out := fednow.Outgoing{
			Message: fednow.OutgoingMessage{PaymentStatus: env},
		}
		verr := constraint.ExtractValidationError(out.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, "message.payment_status.app_hdr.msg_def_idr", verr.Path)
	})
}

func TestDocumentPopulated(t *testing.T) {
	t.Run("empty document reports no slots", func(t *testing.T) {
		var doc fednow.Document
		assert.Empty(t, doc.Populated())
	})

	t.Run("reports populated slots in declaration order", func(t *testing.T) {
		doc := fednow.Document{
			MsgRjct:     &iso20022.MessageRejectV01{},
			AcctRptgReq: &iso20022.AccountReportingRequestV05{},
		}
		assert.Equal(t, []string{"MsgRjct", "AcctRptgReq"}, doc.Populated())
	})

	t.Run("payment and investigation slots report in declaration order", func(t *testing.T) {
		doc := fednow.Document{
			CdtrPmtActvtnReq: &iso20022.CreditorPaymentActivationRequestV07{},
			SysEvtAck:        &iso20022.SystemEventAcknowledgementV01{},
			BkToCstmrAcctRpt: &iso20022.BankToCustomerAccountReportV08{},
		}
		assert.Equal(t,
			[]string{"CdtrPmtActvtnReq", "SysEvtAck", "BkToCstmrAcctRpt"},
			doc.Populated())
	})

	t.Run("empty document validates", func(t *testing.T) {
		var doc fednow.Document
		assert.NoError(t, doc.Validate())
	})
}
