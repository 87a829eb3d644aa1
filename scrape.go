package scrapeview

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
)

// UntitledSection is the header shown for a section without a label or id.
const UntitledSection = "Untitled Section"

// ScrapeRequest is the body posted to the extraction service.
type ScrapeRequest struct {
	URL string `json:"url"`
}

// Section is one unit of extracted content. It is kept as the exact JSON
// bytes received so that key order, number spelling and nested values
// survive rendering and export untouched. Only "label" and "id" have meaning
// to this package, and only as display hints.
type Section json.RawMessage

// MarshalJSON returns the section bytes unchanged.
func (s Section) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return s, nil
}

// UnmarshalJSON stores a copy of data.
func (s *Section) UnmarshalJSON(data []byte) error {
	if s == nil {
		return errors.New("scrapeview.Section: UnmarshalJSON on nil pointer")
	}
	*s = append((*s)[0:0], data...)
	return nil
}

// Header returns the label if present, else the id, else UntitledSection.
// Hints that are not non-empty strings count as absent.
func (s Section) Header() string {
	var hints struct {
		Label json.RawMessage `json:"label"`
		ID    json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(s, &hints); err != nil {
		return UntitledSection
	}
	if v := stringHint(hints.Label); v != "" {
		return v
	}
	if v := stringHint(hints.ID); v != "" {
		return v
	}
	return UntitledSection
}

// Pretty returns the whole section indented with two spaces.
// Only whitespace between tokens changes.
func (s Section) Pretty() (string, error) {
	return indent(s)
}

func stringHint(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v
}

func indent(raw []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ScrapeResponse is a response from the extraction service. It keeps the
// exact body received; the sections are a parsed view over those bytes.
type ScrapeResponse struct {
	raw      []byte
	sections []Section
}

// ParseScrapeResponse validates a response body and extracts
// result.sections. The body must be a JSON object. A missing or null
// result or sections is not an error; a sections value that is not an
// array is.
func ParseScrapeResponse(data []byte) (*ScrapeResponse, error) {
	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return nil, Errorf(ETRANSPORT, "response is not valid JSON")
	}
	if data[0] != '{' {
		return nil, Errorf(ETRANSPORT, "response is not a JSON object")
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, Errorf(ETRANSPORT, "decode response: %v", err)
	}

	resp := &ScrapeResponse{raw: append([]byte(nil), data...)}

	// Only an object result can carry sections; anything else is treated
	// as a response without content.
	result := bytes.TrimSpace(envelope.Result)
	if len(result) == 0 || result[0] != '{' {
		return resp, nil
	}

	var body struct {
		Sections json.RawMessage `json:"sections"`
	}
	if err := json.Unmarshal(result, &body); err != nil {
		return nil, Errorf(ETRANSPORT, "decode result: %v", err)
	}
	sections := bytes.TrimSpace(body.Sections)
	if len(sections) == 0 || bytes.Equal(sections, []byte("null")) {
		return resp, nil
	}
	if sections[0] != '[' {
		return nil, Errorf(ETRANSPORT, "result.sections is not an array")
	}
	if err := json.Unmarshal(sections, &resp.sections); err != nil {
		return nil, Errorf(ETRANSPORT, "decode sections: %v", err)
	}
	return resp, nil
}

// Raw returns a copy of the response body as received.
func (r *ScrapeResponse) Raw() []byte {
	return append([]byte(nil), r.raw...)
}

// Sections returns result.sections in received order.
func (r *ScrapeResponse) Sections() []Section {
	return r.sections
}

// HasSections reports whether the response carries at least one section.
func (r *ScrapeResponse) HasSections() bool {
	return len(r.sections) > 0
}

// Pretty returns the whole response indented with two spaces.
func (r *ScrapeResponse) Pretty() (string, error) {
	return indent(r.raw)
}

// Scraper submits a URL to the extraction service.
type Scraper interface {
	// Scrape posts the request and returns the parsed response.
	// Transport, status and decoding problems all return ETRANSPORT.
	Scrape(ctx context.Context, req *ScrapeRequest) (*ScrapeResponse, error)
}
