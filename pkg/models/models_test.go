package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRequest_WireFormat(t *testing.T) {
	b, err := json.Marshal(SubmitRequest{VideoURL: "https://youtu.be/dQw4w9WgXcQ"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"video_url":"https://youtu.be/dQw4w9WgXcQ"}`, string(b))
}

func TestSubmitResponse_Validate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"service envelope", `{"data":{"filename":"3f1c0e9a-8d5e-4b7a-9c1f-2f0b6a1d4e55"},"message":"The request has been sent","message_code":"REQUEST_SUBMITED","http_code":201,"error_fields":{}}`, false},
		{"bare data", `{"data":{"filename":"song.mp3"}}`, false},
		{"no data", `{"message":"x"}`, true},
		{"null", `null`, true},
		{"empty data", `{"data":{}}`, true},
		{"empty filename", `{"data":{"filename":""}}`, true},
		{"nested path", `{"data":{"filename":"a/b.mp3"}}`, true},
		{"traversal", `{"data":{"filename":".."}}`, true},
		{"backslash", `{"data":{"filename":"a\\b"}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res SubmitResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &res))

			err := res.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDownloadPath(t *testing.T) {
	assert.Equal(t, "/download-music/song.mp3", DownloadPath("song.mp3"))
}
