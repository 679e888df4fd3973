package submit

import (
	"fmt"

	"github.com/imbecility/mp3-submit/pkg/client"
	"github.com/imbecility/mp3-submit/pkg/config"
	"github.com/imbecility/mp3-submit/pkg/dom"
)

// BindPage resolves the handles the handler writes to from the page markup.
func BindPage(p *dom.ConvertPage) (Elements, error) {
	control := p.ByID(dom.ConvertID)
	input := p.ByName(dom.VideoURLName)
	errEl := p.ByID(dom.ErrorID)
	okEl := p.ByID(dom.SuccessID)
	link := p.ByID(dom.DownloadLinkID)

	switch {
	case control == nil:
		return Elements{}, fmt.Errorf("no control with id %q to bind", dom.ConvertID)
	case input == nil:
		return Elements{}, fmt.Errorf("no element named %q", dom.VideoURLName)
	case errEl == nil:
		return Elements{}, fmt.Errorf("no element with id %q", dom.ErrorID)
	case okEl == nil:
		return Elements{}, fmt.Errorf("no element with id %q", dom.SuccessID)
	case link == nil:
		return Elements{}, fmt.Errorf("no element with id %q", dom.DownloadLinkID)
	case link.Tag() != "a":
		return Elements{}, fmt.Errorf("element %q is a <%s>, want an anchor", dom.DownloadLinkID, link.Tag())
	}

	return Elements{
		Input:            input,
		ErrorIndicator:   errEl,
		SuccessIndicator: okEl,
		DownloadLink:     link,
	}, nil
}

// New wires a handler for page using the TLS transport described by cfg.
func New(cfg config.Config, page *dom.ConvertPage) (*Handler, error) {
	el, err := BindPage(page)
	if err != nil {
		return nil, fmt.Errorf("bind page: %w", err)
	}

	httpClient, err := client.NewHttpClient(client.Config{
		TimeoutSec:         cfg.TimeoutSec,
		InsecureSkipVerify: cfg.Insecure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init http client: %w", err)
	}

	return NewHandler(el, cfg.Endpoint, httpClient)
}
