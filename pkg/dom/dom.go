package dom

import (
	"slices"
	"sync"
)

// HiddenClass is the class the page stylesheet uses to hide an element.
const HiddenClass = "is-hidden"

// Ids and names of the convert page markup.
const (
	ConvertID       = "convert"
	VideoURLName    = "video_url"
	ErrorID         = "convert_error"
	SuccessID       = "convert_success"
	DownloadLinkID  = "mp3_download_link"
	HrefAttr        = "href"
	defaultLinkHref = "#"
)

// Document owns a set of elements. Every element mutation takes the
// document lock, so only one writer touches the page at a time.
type Document struct {
	mu       sync.RWMutex
	elements []*Element
	byID     map[string]*Element
}

func NewDocument() *Document {
	return &Document{byID: make(map[string]*Element)}
}

// Element is created and owned by a Document.
type Element struct {
	doc     *Document
	id      string
	name    string
	tag     string
	classes []string
	attrs   map[string]string
	value   string
}

// Create appends a new element. An empty id leaves it reachable only by name.
func (d *Document) Create(tag, id, name string, classes ...string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()

	el := &Element{
		doc:   d,
		id:    id,
		name:  name,
		tag:   tag,
		attrs: make(map[string]string),
	}
	for _, c := range classes {
		if !slices.Contains(el.classes, c) {
			el.classes = append(el.classes, c)
		}
	}

	d.elements = append(d.elements, el)
	if id != "" {
		d.byID[id] = el
	}
	return el
}

func (d *Document) ByID(id string) *Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.byID[id]
}

// ByName returns the first element carrying name, or nil.
func (d *Document) ByName(name string) *Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, el := range d.elements {
		if el.name == name {
			return el
		}
	}
	return nil
}

func (e *Element) Tag() string { return e.tag }

func (e *Element) AddClass(class string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if !slices.Contains(e.classes, class) {
		e.classes = append(e.classes, class)
	}
}

func (e *Element) RemoveClass(class string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == class })
}

func (e *Element) HasClass(class string) bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return slices.Contains(e.classes, class)
}

func (e *Element) Classes() []string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return slices.Clone(e.classes)
}

func (e *Element) Hidden() bool {
	return e.HasClass(HiddenClass)
}

func (e *Element) SetAttribute(key, value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.attrs[key] = value
}

func (e *Element) Attribute(key string) (string, bool) {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	v, ok := e.attrs[key]
	return v, ok
}

func (e *Element) Value() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.value
}

func (e *Element) SetValue(v string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.value = v
}
