package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSample(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRun(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("counts valid and invalid samples", func(t *testing.T) {
		dir := t.TempDir()
		writeSample(t, dir, "valid.json", `{
			"FedNowIncoming": {
				"FedNowIncomingMessage": {
					"FedNowMessageReject": {
						"AppHdr": {
							"Fr": {}, "To": {},
							"BizMsgIdr": "B1", "MsgDefIdr": "admi.002.001.01",
							"CreDt": "2026-08-29T10:15:00Z"
						},
						"Document": {
							"MsgRjct": {
								"RltdRef": {"Ref": "A9"},
								"Rsn": {"RjctgPtyRsn": "E1001"}
							}
						}
					}
				}
			}
		}`)
		writeSample(t, dir, "invalid.json", `{
			"FedNowIncoming": {
				"FedNowIncomingMessage": {
					"FedNowMessageReject": {
						"AppHdr": {
							"Fr": {}, "To": {},
							"BizMsgIdr": "", "MsgDefIdr": "admi.002.001.01",
							"CreDt": "2026-08-29T10:15:00Z"
						},
						"Document": {}
					}
				}
			}
		}`)
		writeSample(t, dir, "garbage.json", `{not json`)
		writeSample(t, dir, "ignored.txt", `not a sample`)

		valid, invalid, err := run(log, dir)
		require.NoError(t, err)
		assert.Equal(t, 1, valid)
		assert.Equal(t, 2, invalid)
	})

	t.Run("empty directory yields zero counts", func(t *testing.T) {
		valid, invalid, err := run(log, t.TempDir())
		require.NoError(t, err)
		assert.Zero(t, valid)
		assert.Zero(t, invalid)
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		_, _, err := run(log, filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})
}
