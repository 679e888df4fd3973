package client

import (
	"fmt"
	"net/http"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// HTTPClient is the subset of *http.Client the submit handler needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config tunes the transport used to reach the conversion service.
type Config struct {
	// TimeoutSec bounds a whole request. Zero leaves requests unbounded.
	TimeoutSec int
	// InsecureSkipVerify disables certificate checks (self-hosted services).
	InsecureSkipVerify bool
}

type tlsWrapper struct {
	innerClient tls_client.HttpClient
}

func (w *tlsWrapper) Do(req *http.Request) (*http.Response, error) {
	fReq := &fhttp.Request{
		Method:        req.Method,
		URL:           req.URL,
		Proto:         req.Proto,
		ProtoMajor:    req.ProtoMajor,
		ProtoMinor:    req.ProtoMinor,
		Header:        toFHeader(req.Header),
		Body:          req.Body,
		ContentLength: req.ContentLength,
		Host:          req.Host,
	}
	fReq = fReq.WithContext(req.Context())

	resp, err := w.innerClient.Do(fReq)
	if err != nil {
		return nil, err
	}

	return &http.Response{
		Status:           resp.Status,
		StatusCode:       resp.StatusCode,
		Proto:            resp.Proto,
		ProtoMajor:       resp.ProtoMajor,
		ProtoMinor:       resp.ProtoMinor,
		ContentLength:    resp.ContentLength,
		Body:             resp.Body,
		Header:           toHeader(resp.Header),
		Uncompressed:     resp.Uncompressed,
		TransferEncoding: resp.TransferEncoding,
		Request:          req,
	}, nil
}

func toFHeader(h http.Header) fhttp.Header {
	out := make(fhttp.Header, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}

func toHeader(h fhttp.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}

func NewHttpClient(cfg Config) (HTTPClient, error) {
	if cfg.TimeoutSec < 0 {
		return nil, fmt.Errorf("negative timeout: %d", cfg.TimeoutSec)
	}

	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(cfg.TimeoutSec),
		tls_client.WithClientProfile(profiles.DefaultClientProfile),
		tls_client.WithCookieJar(tls_client.NewCookieJar()),
	}
	if cfg.InsecureSkipVerify {
		options = append(options, tls_client.WithInsecureSkipVerify())
	}

	c, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tls client: %w", err)
	}

	return &tlsWrapper{innerClient: c}, nil
}
