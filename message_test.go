package fednowmsg_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg"
	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/fednow"
	"github.com/openfin/fednowmsg/pkg/iso20022"
)

func TestMessage(t *testing.T) {
	t.Run("empty message validates", func(t *testing.T) {
		var msg fednowmsg.Message
		assert.NoError(t, msg.Validate())
	})

	t.Run("incoming violation carries the direction prefix", func(t *testing.T) {
		msg := fednowmsg.Message{
			Incoming: &fednow.Incoming{
				Message: fednow.IncomingMessage{
					MessageReject: &fednow.Envelope{
						AppHdr: iso20022.BusinessApplicationHeaderV02{
							BizMsgIdr: "",
							MsgDefIdr: "admi.002.001.01",
							CreDt:     "2026-08-29T10:15:00Z",
						},
					},
				},
			},
		}
		verr := constraint.ExtractValidationError(msg.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
		assert.Equal(t, "fed_now_incoming.message.message_reject.app_hdr.biz_msg_idr", verr.Path)
	})

	t.Run("decoded sample validates end to end", func(t *testing.T) {
		sample := `{
			"FedNowIncoming": {
				"FedNowIncomingMessage": {
					"FedNowMessageReject": {
						"AppHdr": {
							"Fr": {},
							"To": {},
							"BizMsgIdr": "B20260829021000021B1",
							"MsgDefIdr": "admi.002.001.01",
							"CreDt": "2026-08-29T10:15:00Z"
						},
						"Document": {
							"MsgRjct": {
								"RltdRef": {"Ref": "B20260829021000021A9"},
								"Rsn": {"RjctgPtyRsn": "E1001"}
							}
						}
					}
				}
			}
		}`
		var msg fednowmsg.Message
		require.NoError(t, json.Unmarshal([]byte(sample), &msg))
		require.NotNil(t, msg.Incoming)
		require.NotNil(t, msg.Incoming.Message.MessageReject)
		assert.Equal(t, []string{"MsgRjct"}, msg.Incoming.Message.MessageReject.Document.Populated())
		assert.NoError(t, msg.Validate())
	})

	t.Run("both directions may be populated", func(t *testing.T) {
		msg := fednowmsg.Message{
			Incoming: &fednow.Incoming{},
			Outgoing: &fednow.Outgoing{},
		}
		assert.NoError(t, msg.Validate())
	})
}
