package specapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driven"
)

// extractionEnvelope is the /process-document response format. The
// specifications payload stays raw so its shape can be resolved here,
// once, instead of being re-sniffed downstream.
type extractionEnvelope struct {
	FileID         string          `json:"file_id"`
	Specifications json.RawMessage `json:"specifications"`
}

// wireSpec is one extracted field as the service reports it. Confidences
// are fractional (0-1); the ingest service rescales them.
type wireSpec struct {
	Value            flexString        `json:"value"`
	Confidence       *float64          `json:"confidence"`
	SourceConfidence *float64          `json:"source_confidence"`
	Calculated       bool              `json:"is_calculated"`
	RulePassed       *bool             `json:"rule_passed"`
	RuleViolations   []string          `json:"rule_violations"`
	RequiresReview   bool              `json:"requires_review"`
	Verification     *wireVerification `json:"verification_result"`
}

// wireVerification is the citation sub-object; every field is optional.
type wireVerification struct {
	PageIndex   *int      `json:"page_index"`
	MatchedText string    `json:"matched_text"`
	BBox        []float64 `json:"bbox"`
	Reason      string    `json:"reason"`
}

// flexString accepts values the service serialises either as JSON strings
// or as bare numbers.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = flexString(str)
		return nil
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = ""
		return nil
	}
	*s = flexString(bytes.TrimSpace(data))
	return nil
}

// decodeExtractionResponse parses a 2xx /process-document body. Any shape
// problem is reported as a malformed response.
func decodeExtractionResponse(r io.Reader) (*driven.ExtractionResult, error) {
	var env extractionEnvelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if len(env.Specifications) == 0 {
		return nil, fmt.Errorf("%w: missing specifications", domain.ErrMalformedResponse)
	}

	mapping, err := unwrapSpecifications(env.Specifications)
	if err != nil {
		return nil, err
	}
	specs, err := decodeOrderedSpecs(mapping)
	if err != nil {
		return nil, err
	}

	return &driven.ExtractionResult{
		FileID: env.FileID,
		Specs:  specs,
	}, nil
}

// unwrapSpecifications resolves the payload to the canonical mapping form.
// The service historically sent either the mapping directly or a list
// whose first element is the mapping.
func unwrapSpecifications(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty specifications", domain.ErrMalformedResponse)
	}

	switch trimmed[0] {
	case '{':
		return trimmed, nil
	case '[':
		var elements []json.RawMessage
		if err := json.Unmarshal(trimmed, &elements); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
		}
		if len(elements) == 0 {
			return nil, fmt.Errorf("%w: empty specifications list", domain.ErrMalformedResponse)
		}
		first := bytes.TrimSpace(elements[0])
		if len(first) == 0 || first[0] != '{' {
			return nil, fmt.Errorf("%w: specifications list element is not a mapping", domain.ErrMalformedResponse)
		}
		return first, nil
	default:
		return nil, fmt.Errorf("%w: specifications is neither mapping nor list", domain.ErrMalformedResponse)
	}
}

// decodeOrderedSpecs walks the mapping token by token so the wire order
// of the field ids is preserved; a plain map decode would lose it.
func decodeOrderedSpecs(mapping json.RawMessage) ([]driven.ExtractedSpec, error) {
	dec := json.NewDecoder(bytes.NewReader(mapping))

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	var specs []driven.ExtractedSpec
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
		}
		fieldID, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string field id", domain.ErrMalformedResponse)
		}

		var ws wireSpec
		if err := dec.Decode(&ws); err != nil {
			return nil, fmt.Errorf("%w: field %s: %v", domain.ErrMalformedResponse, fieldID, err)
		}
		specs = append(specs, translateWireSpec(fieldID, ws))
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return specs, nil
}

// translateWireSpec converts one wire record to the port type.
func translateWireSpec(fieldID string, ws wireSpec) driven.ExtractedSpec {
	spec := driven.ExtractedSpec{
		FieldID:          fieldID,
		Value:            string(ws.Value),
		Confidence:       ws.Confidence,
		SourceConfidence: ws.SourceConfidence,
		Calculated:       ws.Calculated,
		RulePassed:       ws.RulePassed,
		RuleViolations:   ws.RuleViolations,
		RequiresReview:   ws.RequiresReview,
	}
	if ws.Verification != nil {
		spec.Verification = &driven.VerificationResult{
			PageIndex:   ws.Verification.PageIndex,
			MatchedText: ws.Verification.MatchedText,
			BBox:        ws.Verification.BBox,
			Reason:      ws.Verification.Reason,
		}
	}
	return spec
}
