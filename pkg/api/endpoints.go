package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/metaconomy/phone-number/pkg/kit"
	"github.com/metaconomy/phone-number/pkg/phonetext"
	"github.com/metaconomy/phone-number/pkg/scan"
	"github.com/metaconomy/phone-number/pkg/vanity"
)

// Shared request/response types used by both HTTP and MCP transports.

// NumberReport is the outcome of running one raw text through the full
// preprocessing chain: candidate extraction, viability check, extension
// stripping, and the three normalizations.
type NumberReport struct {
	Input      string `json:"input"`
	Candidate  string `json:"candidate,omitempty"`
	Viable     bool   `json:"viable"`
	Normalized string `json:"normalized,omitempty"`
	DigitsOnly string `json:"digits_only,omitempty"`
	Display    string `json:"display,omitempty"`
	Extension  string `json:"extension,omitempty"`
}

// Preprocess runs the chain on one raw text. Non-viable inputs still
// report their extracted candidate so callers can see what was rejected.
func Preprocess(text string) *NumberReport {
	rep := &NumberReport{Input: text}
	candidate := phonetext.ExtractPossibleNumber(text)
	if candidate == "" {
		return rep
	}
	rep.Candidate = candidate
	if !phonetext.IsViablePhoneNumber(candidate) {
		return rep
	}
	rep.Viable = true
	number, extn := phonetext.MaybeStripExtension(candidate)
	rep.Extension = extn
	rep.Normalized = phonetext.Normalize(number)
	rep.DigitsOnly = phonetext.NormalizeDigitsOnly(number)
	rep.Display = phonetext.ConvertAlphaCharactersInNumber(number)
	return rep
}

type batchResponse struct {
	Results []*NumberReport `json:"results"`
}

type dictsResponse struct {
	Wordlists []vanity.DictInfo `json:"wordlists"`
}

type preprocessReq struct {
	Text string
}

type preprocessBatchReq struct {
	Texts []string
}

type vanityLookupReq struct {
	Digits string
	Opts   *vanity.LookupOptions
}

type scanReq struct {
	Source string
	Text   string
}

// Endpoints shared by the HTTP router and the MCP tools.

func preprocessEndpoint() kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*preprocessReq)
		return Preprocess(req.Text), nil
	}
}

func preprocessBatchEndpoint() kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*preprocessBatchReq)
		if len(req.Texts) == 0 {
			return nil, fmt.Errorf("texts array is empty")
		}
		if len(req.Texts) > 100 {
			return nil, fmt.Errorf("too many texts (max 100, got %d)", len(req.Texts))
		}
		results := make([]*NumberReport, len(req.Texts))
		for i, text := range req.Texts {
			results[i] = Preprocess(text)
		}
		return batchResponse{Results: results}, nil
	}
}

func vanityLookupEndpoint(reg *vanity.Registry) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*vanityLookupReq)
		if req.Digits == "" {
			return nil, fmt.Errorf("digits is empty")
		}
		for _, r := range req.Digits {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("digits must be 0-9, got %q", req.Digits)
			}
		}
		return reg.Lookup(req.Digits, req.Opts), nil
	}
}

func listDictsEndpoint(reg *vanity.Registry) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return dictsResponse{Wordlists: reg.ListDicts()}, nil
	}
}

func scanEndpoint(scn *scan.Scanner) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*scanReq)
		if req.Text == "" {
			return nil, fmt.Errorf("text is empty")
		}
		source := req.Source
		if source == "" {
			source = "api"
		}
		return scn.ScanReader(ctx, source, strings.NewReader(req.Text))
	}
}
