package models

import (
	"errors"
	"fmt"
	"strings"
)

// Message codes the conversion service puts in its response envelope.
const (
	CodeRequestSubmitted   = "REQUEST_SUBMITED"
	CodeVideoInvalid       = "VIDEO_DONT_EXISTS_INVALID"
	CodeVideoDoesNotExist  = "VIDEO_DONT_EXISTS"
	DownloadPathPrefix     = "/download-music/"
	SubmitPath             = "/submit"
	DefaultServiceEndpoint = "http://127.0.0.1:8080" + SubmitPath
)

type SubmitRequest struct {
	VideoURL string `json:"video_url"`
}

type SubmitData struct {
	Filename string `json:"filename"`
}

// SubmitResponse mirrors the envelope every service endpoint answers with.
// Only Data.Filename is required on success; the rest is informational.
type SubmitResponse struct {
	Data        *SubmitData    `json:"data"`
	Message     string         `json:"message,omitempty"`
	MessageCode string         `json:"message_code,omitempty"`
	HTTPCode    int            `json:"http_code,omitempty"`
	ErrorFields map[string]any `json:"error_fields,omitempty"`
}

// Validate checks the fields the success path depends on.
func (r *SubmitResponse) Validate() error {
	if r.Data == nil {
		return errors.New("missing data object")
	}
	name := r.Data.Filename
	if name == "" {
		return errors.New("missing data.filename")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("data.filename %q is not a single path segment", name)
	}
	return nil
}

// DownloadPath builds the link the page offers once a file is queued.
func DownloadPath(filename string) string {
	return DownloadPathPrefix + filename
}
