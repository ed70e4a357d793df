package api

import (
	"strings"

	"github.com/hazyhaar/phonekey/pkg/kit"
	"github.com/hazyhaar/phonekey/pkg/langpack"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterMCPTools registers the Phonekey MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, reg *langpack.Registry) {
	registerEncodeName(srv, reg)
	registerMatchNames(srv, reg)
	registerNameSimilarity(srv, reg)
	registerMatchBatch(srv, reg)
	registerListLanguages(srv, reg)
}

func mcpOpts(args map[string]any) *EncodeOptions {
	opts := &EncodeOptions{}
	if v, _ := args["mode"].(string); v != "" {
		opts.Mode = v
	}
	if v, _ := args["name_type"].(string); v != "" {
		opts.NameType = v
	}
	return opts
}

func registerEncodeName(srv *server.MCPServer, reg *langpack.Registry) {
	tool := mcp.NewTool("encode_name",
		mcp.WithDescription("Encode a personal name into language-specific phonetic keys for fuzzy cross-script comparison."),
		mcp.WithString("name", mcp.Required(), mcp.Description("The name to encode")),
		mcp.WithString("mode", mcp.Description("Rule mode: exact or approx (default approx)")),
		mcp.WithString("name_type", mcp.Description("Default language pool: generic, ashkenazi or sephardic")),
	)

	kit.RegisterMCPTool(srv, tool, encodeEndpoint(reg), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		name, _ := args["name"].(string)
		return &kit.MCPDecodeResult{Request: &encodeReq{Name: name, Opts: mcpOpts(args)}}, nil
	})
}

func registerMatchNames(srv *server.MCPServer, reg *langpack.Registry) {
	tool := mcp.NewTool("match_names",
		mcp.WithDescription("Compare two personal names phonetically across languages; returns a boolean match and a Jaccard similarity in [0,1]."),
		mcp.WithString("a", mcp.Required(), mcp.Description("First name")),
		mcp.WithString("b", mcp.Required(), mcp.Description("Second name")),
		mcp.WithString("mode", mcp.Description("Rule mode: exact or approx (default approx)")),
		mcp.WithString("name_type", mcp.Description("Default language pool: generic, ashkenazi or sephardic")),
	)

	kit.RegisterMCPTool(srv, tool, matchEndpoint(reg), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		a, _ := args["a"].(string)
		b, _ := args["b"].(string)
		return &kit.MCPDecodeResult{Request: &matchReq{A: a, B: b, Opts: mcpOpts(args)}}, nil
	})
}

func registerNameSimilarity(srv *server.MCPServer, reg *langpack.Registry) {
	tool := mcp.NewTool("name_similarity",
		mcp.WithDescription("Return the Jaccard similarity of two names' phonetic key sets, in [0,1]."),
		mcp.WithString("a", mcp.Required(), mcp.Description("First name")),
		mcp.WithString("b", mcp.Required(), mcp.Description("Second name")),
		mcp.WithString("mode", mcp.Description("Rule mode: exact or approx (default approx)")),
		mcp.WithString("name_type", mcp.Description("Default language pool: generic, ashkenazi or sephardic")),
	)

	kit.RegisterMCPTool(srv, tool, matchEndpoint(reg), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		a, _ := args["a"].(string)
		b, _ := args["b"].(string)
		return &kit.MCPDecodeResult{Request: &matchReq{A: a, B: b, Opts: mcpOpts(args)}}, nil
	})
}

func registerMatchBatch(srv *server.MCPServer, reg *langpack.Registry) {
	tool := mcp.NewTool("match_batch",
		mcp.WithDescription("Compare up to 100 name pairs phonetically. Pairs are given as 'a|b' entries separated by commas."),
		mcp.WithString("pairs", mcp.Required(), mcp.Description("Comma-separated list of pipe-separated name pairs (e.g. Schmidt|Smith,Meyer|Maier)")),
		mcp.WithString("mode", mcp.Description("Rule mode: exact or approx (default approx)")),
	)

	kit.RegisterMCPTool(srv, tool, matchBatchEndpoint(reg), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		pairsStr, _ := args["pairs"].(string)
		var pairs []NamePair
		for _, entry := range strings.Split(pairsStr, ",") {
			a, b, _ := strings.Cut(entry, "|")
			pairs = append(pairs, NamePair{A: strings.TrimSpace(a), B: strings.TrimSpace(b)})
		}
		return &kit.MCPDecodeResult{Request: &matchBatchReq{Pairs: pairs, Opts: mcpOpts(args)}}, nil
	})
}

func registerListLanguages(srv *server.MCPServer, reg *langpack.Registry) {
	tool := mcp.NewTool("list_languages",
		mcp.WithDescription("List all configured phonetic languages with rule counts and transliterator availability."),
	)

	kit.RegisterMCPTool(srv, tool, listLanguagesEndpoint(reg), func(_ mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	})
}
