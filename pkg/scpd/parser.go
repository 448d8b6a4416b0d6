package scpd

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultUserAgent = "upnpkit-scpd/1.0"

// Parser fetches and parses SCPD documents. Parsing itself is pure and
// synchronous; the HTTP client is only touched by ParseFromURL. A single
// Parser may be used from multiple goroutines as long as the builder
// options are not called concurrently.
type Parser struct {
	client  *http.Client
	headers map[string]string
}

// NewParser creates an SCPD parser with a default HTTP client.
func NewParser() *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
	}
}

// WithHeaders sets custom headers sent with document fetches.
func (p *Parser) WithHeaders(headers map[string]string) *Parser {
	p.headers = headers
	return p
}

// WithClient sets a custom HTTP client.
func (p *Parser) WithClient(client *http.Client) *Parser {
	p.client = client
	return p
}

// WithTimeout sets the fetch timeout on the parser's HTTP client.
func (p *Parser) WithTimeout(timeout time.Duration) *Parser {
	p.client.Timeout = timeout
	return p
}

// ParseFromURL fetches the SCPD document at url, parses it, and registers
// it under urn. Transport failures surface as *NetworkError, malformed
// documents as *ParseError. There is no retry and no partial success.
func (p *Parser) ParseFromURL(url, urn string) (*ServiceDescription, error) {
	data, err := p.fetchDocument(url)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	return p.ParseFromBytes(data, urn)
}

// ParseFromBytes parses an SCPD document and registers it under urn. The
// urn is not read from the document; supplying it here is what completes
// the description, so a ServiceDescription is never observable without one.
func (p *Parser) ParseFromBytes(data []byte, urn string) (*ServiceDescription, error) {
	var raw rawSCPD
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Reason: "malformed XML", Err: err}
	}

	doc, err := convertRawSCPD(&raw)
	if err != nil {
		return nil, err
	}

	doc.urn = urn
	return doc, nil
}

// fetchDocument retrieves a document from url.
func (p *Parser) fetchDocument(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "text/xml, application/xml")
	req.Header.Set("User-Agent", defaultUserAgent)

	for key, value := range p.headers {
		req.Header.Set(key, value)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	return body, nil
}

// convertRawSCPD converts raw XML structures to the domain model, applying
// field validation and documented defaults. It returns *ParseError on the
// first violation; nothing partial escapes.
func convertRawSCPD(raw *rawSCPD) (*ServiceDescription, error) {
	doc := &ServiceDescription{
		stateVariables: make([]StateVariable, 0, len(raw.StateVariables)),
		actions:        make([]Action, 0, len(raw.Actions)),
	}

	if raw.SpecVersion != nil {
		doc.specVersion = SpecVersion{
			Major: raw.SpecVersion.Major,
			Minor: raw.SpecVersion.Minor,
		}
	}

	for i := range raw.StateVariables {
		sv, err := convertRawStateVariable(&raw.StateVariables[i])
		if err != nil {
			return nil, err
		}
		doc.stateVariables = append(doc.stateVariables, sv)
	}

	for i := range raw.Actions {
		action, err := convertRawAction(&raw.Actions[i])
		if err != nil {
			return nil, err
		}
		doc.actions = append(doc.actions, action)
	}

	return doc, nil
}

func convertRawAction(raw *rawAction) (Action, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return Action{}, parseErrorf("action missing name")
	}

	action := Action{
		name:      name,
		arguments: make([]Argument, 0, len(raw.Arguments)),
	}

	for i := range raw.Arguments {
		arg, err := convertRawArgument(&raw.Arguments[i], name)
		if err != nil {
			return Action{}, err
		}
		action.arguments = append(action.arguments, arg)
	}

	return action, nil
}

func convertRawArgument(raw *rawArgument, actionName string) (Argument, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return Argument{}, parseErrorf("action %q: argument missing name", actionName)
	}

	direction, err := ParseDirection(strings.TrimSpace(raw.Direction))
	if err != nil {
		return Argument{}, &ParseError{
			Reason: fmt.Sprintf("action %q argument %q", actionName, name),
			Err:    err,
		}
	}

	related := strings.TrimSpace(raw.RelatedStateVariable)
	if related == "" {
		return Argument{}, parseErrorf("action %q argument %q missing relatedStateVariable", actionName, name)
	}

	return Argument{
		name:                 name,
		direction:            direction,
		relatedStateVariable: related,
	}, nil
}

func convertRawStateVariable(raw *rawStateVariable) (StateVariable, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return StateVariable{}, parseErrorf("state variable missing name")
	}

	if strings.TrimSpace(raw.DataType) == "" {
		return StateVariable{}, parseErrorf("state variable %q missing dataType", name)
	}
	dataType, err := ParseDataType(strings.TrimSpace(raw.DataType))
	if err != nil {
		return StateVariable{}, &ParseError{
			Reason: fmt.Sprintf("state variable %q", name),
			Err:    err,
		}
	}

	// Attribute absent means yes for sendEvents and no for multicast.
	sendEvents := BoolYes
	if raw.SendEvents != nil {
		sendEvents, err = ParseBool(strings.TrimSpace(*raw.SendEvents))
		if err != nil {
			return StateVariable{}, &ParseError{
				Reason: fmt.Sprintf("state variable %q sendEvents", name),
				Err:    err,
			}
		}
	}

	multicast := BoolNo
	if raw.Multicast != nil {
		multicast, err = ParseBool(strings.TrimSpace(*raw.Multicast))
		if err != nil {
			return StateVariable{}, &ParseError{
				Reason: fmt.Sprintf("state variable %q multicast", name),
				Err:    err,
			}
		}
	}

	sv := StateVariable{
		name:         name,
		sendEvents:   sendEvents,
		multicast:    multicast,
		dataType:     dataType,
		defaultValue: raw.DefaultValue,
		optional:     raw.Optional != nil,
	}

	if raw.AllowedValueList != nil {
		sv.allowedValues = make([]string, 0, len(raw.AllowedValueList.Values))
		for _, value := range raw.AllowedValueList.Values {
			sv.allowedValues = append(sv.allowedValues, strings.TrimSpace(value))
		}
	}

	if raw.AllowedValueRange != nil {
		sv.allowedRange = convertRawRange(raw.AllowedValueRange)
	}

	return sv, nil
}

// convertRawRange applies the documented default of 1 to omitted sub-fields.
func convertRawRange(raw *rawAllowedValueRange) *AllowedValueRange {
	r := &AllowedValueRange{minimum: 1, maximum: 1, step: 1}
	if raw.Minimum != nil {
		r.minimum = *raw.Minimum
	}
	if raw.Maximum != nil {
		r.maximum = *raw.Maximum
	}
	if raw.Step != nil {
		r.step = *raw.Step
	}
	return r
}
