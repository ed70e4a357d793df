package api

import (
	"context"
	"fmt"

	"github.com/hazyhaar/phonekey/pkg/kit"
	"github.com/hazyhaar/phonekey/pkg/langpack"
	"github.com/hazyhaar/phonekey/pkg/phonetic"
)

// Shared request/response types used by both HTTP and MCP transports.

// EncodeOptions are optional per-request overrides of the active
// configuration.
type EncodeOptions struct {
	Mode     string // "exact" or "approx"
	NameType string // "generic", "ashkenazi", "sephardic"
}

// NamePair is one comparison in a batch request.
type NamePair struct {
	A string `json:"a"`
	B string `json:"b"`
}

type encodeReq struct {
	Name string
	Opts *EncodeOptions
}

type matchReq struct {
	A, B string
	Opts *EncodeOptions
}

type matchBatchReq struct {
	Pairs []NamePair
	Opts  *EncodeOptions
}

type encodeResponse struct {
	Name    string                  `json:"name"`
	Results []phonetic.EncodeResult `json:"results"`
}

type matchResponse struct {
	A          string  `json:"a"`
	B          string  `json:"b"`
	Match      bool    `json:"match"`
	Similarity float64 `json:"similarity"`
}

type batchResponse struct {
	Results []matchResponse `json:"results"`
}

type languagesResponse struct {
	Languages []langpack.LanguageInfo `json:"languages"`
}

// configFor resolves the effective configuration for a request, cloning the
// active one only when the request overrides something.
func configFor(reg *langpack.Registry, opts *EncodeOptions) (*phonetic.Config, error) {
	cfg := reg.Config()
	if opts == nil || (opts.Mode == "" && opts.NameType == "") {
		return cfg, nil
	}

	cfg = cfg.Clone()
	switch opts.Mode {
	case "":
	case string(phonetic.Exact):
		cfg.Mode = phonetic.Exact
		cfg.CollapseDuplicates = false
	case string(phonetic.Approx):
		cfg.Mode = phonetic.Approx
	default:
		return nil, fmt.Errorf("unknown mode %q", opts.Mode)
	}
	switch opts.NameType {
	case "":
	case string(phonetic.Generic), string(phonetic.Ashkenazi), string(phonetic.Sephardic):
		cfg.NameType = phonetic.NameType(opts.NameType)
	default:
		return nil, fmt.Errorf("unknown name type %q", opts.NameType)
	}
	return cfg, nil
}

// Endpoints return the core kit.Endpoints backed by the registry.

func encodeEndpoint(reg *langpack.Registry) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*encodeReq)
		cfg, err := configFor(reg, req.Opts)
		if err != nil {
			return nil, err
		}
		results := phonetic.Encode(req.Name, cfg)
		if results == nil {
			results = []phonetic.EncodeResult{}
		}
		return encodeResponse{Name: req.Name, Results: results}, nil
	}
}

func matchEndpoint(reg *langpack.Registry) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*matchReq)
		cfg, err := configFor(reg, req.Opts)
		if err != nil {
			return nil, err
		}
		return matchResponse{
			A:          req.A,
			B:          req.B,
			Match:      phonetic.Match(req.A, req.B, cfg),
			Similarity: phonetic.Similarity(req.A, req.B, cfg),
		}, nil
	}
}

func matchBatchEndpoint(reg *langpack.Registry) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*matchBatchReq)
		if len(req.Pairs) == 0 {
			return nil, fmt.Errorf("pairs array is empty")
		}
		if len(req.Pairs) > 100 {
			return nil, fmt.Errorf("too many pairs (max 100, got %d)", len(req.Pairs))
		}
		cfg, err := configFor(reg, req.Opts)
		if err != nil {
			return nil, err
		}
		results := make([]matchResponse, len(req.Pairs))
		for i, p := range req.Pairs {
			results[i] = matchResponse{
				A:          p.A,
				B:          p.B,
				Match:      phonetic.Match(p.A, p.B, cfg),
				Similarity: phonetic.Similarity(p.A, p.B, cfg),
			}
		}
		return batchResponse{Results: results}, nil
	}
}

func listLanguagesEndpoint(reg *langpack.Registry) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return languagesResponse{Languages: reg.Languages()}, nil
	}
}
