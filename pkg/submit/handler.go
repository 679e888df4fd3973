package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/imbecility/mp3-submit/pkg/client"
	"github.com/imbecility/mp3-submit/pkg/dom"
	"github.com/imbecility/mp3-submit/pkg/models"
)

type Valuer interface {
	Value() string
}

type ClassToggler interface {
	AddClass(class string)
	RemoveClass(class string)
}

type AttributeSetter interface {
	SetAttribute(key, value string)
}

// Elements are the page handles a Handler writes to. They are resolved
// once at construction and never looked up again.
type Elements struct {
	Input            Valuer
	ErrorIndicator   ClassToggler
	SuccessIndicator ClassToggler
	DownloadLink     AttributeSetter
}

type Handler struct {
	Endpoint string
	Client   client.HTTPClient
	elements Elements
	uiMu     sync.Mutex
}

// Result is what one activation settled with.
type Result struct {
	ID       string
	Response *models.SubmitResponse
	Err      error
}

func NewHandler(el Elements, endpoint string, httpClient client.HTTPClient) (*Handler, error) {
	if el.Input == nil || el.ErrorIndicator == nil || el.SuccessIndicator == nil || el.DownloadLink == nil {
		return nil, errors.New("all page elements must be bound")
	}
	if httpClient == nil {
		return nil, errors.New("http client is required")
	}
	if endpoint == "" {
		endpoint = models.DefaultServiceEndpoint
	}
	return &Handler{
		Endpoint: endpoint,
		Client:   httpClient,
		elements: el,
	}, nil
}

// Handle runs one activation: submit the current input value and flip
// the page to the success or the error state.
func (h *Handler) Handle(ctx context.Context) (*models.SubmitResponse, error) {
	return h.handle(ctx, uuid.NewString(), h.elements.Input.Value())
}

// Submit runs one activation for a value the caller already captured
// from the input, so a later write to the input cannot change it.
func (h *Handler) Submit(ctx context.Context, videoURL string) (*models.SubmitResponse, error) {
	return h.handle(ctx, uuid.NewString(), videoURL)
}

// Activate reads the input now and submits it in the background.
// Activations are independent: nothing is debounced, and whichever
// settles last owns the page.
func (h *Handler) Activate(ctx context.Context) <-chan Result {
	out := make(chan Result, 1)
	id := uuid.NewString()
	videoURL := h.elements.Input.Value()
	go func() {
		defer close(out)
		res, err := h.handle(ctx, id, videoURL)
		out <- Result{ID: id, Response: res, Err: err}
	}()
	return out
}

func (h *Handler) handle(ctx context.Context, id, videoURL string) (*models.SubmitResponse, error) {
	log := slog.With("activation", id)

	log.Debug("Submitting video", "video_url", videoURL, "endpoint", h.Endpoint)

	res, err := h.submit(ctx, videoURL)
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.MessageCode != "" {
			log.Error("Conversion request failed", "err", err, "code", httpErr.MessageCode, "msg", httpErr.Message)
		} else {
			log.Error("Conversion request failed", "err", err)
		}
		h.showError()
		return nil, err
	}

	log.Info("Conversion queued", "filename", res.Data.Filename, "code", res.MessageCode)
	h.showSuccess(res.Data.Filename)
	return res, nil
}

// The page update of one activation is applied as a unit so a concurrent
// activation cannot interleave with it.
func (h *Handler) showSuccess(filename string) {
	h.uiMu.Lock()
	defer h.uiMu.Unlock()
	h.elements.ErrorIndicator.AddClass(dom.HiddenClass)
	h.elements.SuccessIndicator.RemoveClass(dom.HiddenClass)
	h.elements.DownloadLink.SetAttribute(dom.HrefAttr, models.DownloadPath(filename))
}

func (h *Handler) showError() {
	h.uiMu.Lock()
	defer h.uiMu.Unlock()
	h.elements.SuccessIndicator.AddClass(dom.HiddenClass)
	h.elements.ErrorIndicator.RemoveClass(dom.HiddenClass)
}

func (h *Handler) submit(ctx context.Context, videoURL string) (*models.SubmitResponse, error) {
	bodyBytes, err := json.Marshal(models.SubmitRequest{VideoURL: videoURL})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.Endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func(Body io.ReadCloser) {
		cerr := Body.Close()
		if cerr != nil {
			slog.Warn("Failed to close response body", "err", cerr)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp.StatusCode, resp.Status),
		}
		var envelope models.SubmitResponse
		if raw, rerr := io.ReadAll(resp.Body); rerr == nil && json.Unmarshal(raw, &envelope) == nil {
			httpErr.MessageCode = envelope.MessageCode
			httpErr.Message = envelope.Message
		}
		return nil, httpErr
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return decodeResponse(raw)
}

func decodeResponse(raw []byte) (*models.SubmitResponse, error) {
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, &ParseError{Err: err}
	}

	var res models.SubmitResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &SchemaError{Err: err}
	}
	if err := res.Validate(); err != nil {
		return nil, &SchemaError{Err: err}
	}
	return &res, nil
}
