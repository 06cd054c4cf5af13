package api

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/metaconomy/phone-number/pkg/kit"
	"github.com/metaconomy/phone-number/pkg/vanity"
)

// RegisterMCPTools registers the Phonescan MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, reg *vanity.Registry) {
	registerPreprocessNumber(srv)
	registerPreprocessBatch(srv)
	registerVanityLookup(srv, reg)
	registerListWordlists(srv, reg)
}

func registerPreprocessNumber(srv *server.MCPServer) {
	tool := mcp.NewTool("preprocess_number",
		mcp.WithDescription("Extract and normalize a phone number from raw text: candidate extraction, viability check, extension stripping, keypad letter conversion, digit script folding."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The raw text to preprocess (e.g. \"Call 1-800-FLOWERS ext. 7\")")),
	)

	kit.RegisterMCPTool(srv, tool, preprocessEndpoint(), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		text, _ := args["text"].(string)
		return &kit.MCPDecodeResult{Request: &preprocessReq{Text: text}}, nil
	})
}

func registerPreprocessBatch(srv *server.MCPServer) {
	tool := mcp.NewTool("preprocess_batch",
		mcp.WithDescription("Preprocess multiple raw texts (up to 100), one phone number candidate per text."),
		mcp.WithString("texts", mcp.Required(), mcp.Description("Raw texts to preprocess, one per line")),
	)

	kit.RegisterMCPTool(srv, tool, preprocessBatchEndpoint(), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		textsStr, _ := args["texts"].(string)
		var texts []string
		for _, line := range strings.Split(textsStr, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				texts = append(texts, line)
			}
		}
		return &kit.MCPDecodeResult{Request: &preprocessBatchReq{Texts: texts}}, nil
	})
}

func registerVanityLookup(srv *server.MCPServer, reg *vanity.Registry) {
	tool := mcp.NewTool("vanity_lookup",
		mcp.WithDescription("Find the dictionary words spelling a keypad digit string (e.g. 3569377 -> FLOWERS)."),
		mcp.WithString("digits", mcp.Required(), mcp.Description("The keypad digit string to look up")),
		mcp.WithString("languages", mcp.Description("Comma-separated language filter (e.g. en,fr)")),
		mcp.WithString("dicts", mcp.Description("Comma-separated wordlist filter (e.g. words-en)")),
	)

	kit.RegisterMCPTool(srv, tool, vanityLookupEndpoint(reg), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		digits, _ := args["digits"].(string)
		opts := &vanity.LookupOptions{}
		if v, _ := args["languages"].(string); v != "" {
			opts.Languages = strings.Split(v, ",")
		}
		if v, _ := args["dicts"].(string); v != "" {
			opts.Dicts = strings.Split(v, ",")
		}
		return &kit.MCPDecodeResult{Request: &vanityLookupReq{Digits: digits, Opts: opts}}, nil
	})
}

func registerListWordlists(srv *server.MCPServer, reg *vanity.Registry) {
	tool := mcp.NewTool("list_wordlists",
		mcp.WithDescription("List all loaded vanity wordlists with metadata (language, word count, source)."),
	)

	kit.RegisterMCPTool(srv, tool, listDictsEndpoint(reg), func(_ mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	})
}
