package langsvr

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dhamidi/parsec"
	"github.com/dhamidi/parsec/exprlang"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const languageServerName = "parsec-exprlang"

// Server is a glsp-backed Language Server Protocol server for
// exprlang, scoped to a single concern: re-parse on every change and
// publish diagnostics.
type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
	log     commonlog.Logger
}

// NewServer builds a Server that hasn't started listening yet. version
// is reported to the client in the initialize response.
func NewServer(version string) *Server {
	ls := &Server{
		version: version,
		log:     commonlog.GetLogger(languageServerName),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidSave:   ls.textDocumentDidSave,
		TextDocumentDidClose:  ls.textDocumentDidClose,
	}

	ls.server = server.NewServer(&ls.handler, languageServerName, false)

	return ls
}

// RunStdio runs the server over stdin/stdout, the transport cmd/parsec's
// "lsp" subcommand uses.
func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = protocol.TextDocumentSyncKindFull

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    languageServerName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.analyzeAndPublish(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.analyzeAndPublish(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.analyzeAndPublish(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

// analyzeAndPublish parses text as an exprlang expression and notifies
// the client of the result. A clean parse publishes an empty
// diagnostics list, clearing any previously reported error.
func (ls *Server) analyzeAndPublish(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	diagnostics := []protocol.Diagnostic{}
	if _, err := exprlang.Parse(text); err != nil {
		if path, pathErr := uriToPath(string(uri)); pathErr == nil {
			ls.log.Debugf("parse error in %s: %s", path, err)
		}
		diagnostics = append(diagnostics, diagnosticFromParseError(err))
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func diagnosticFromParseError(err *parsec.ParseError) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	line := protocol.UInteger(0)
	character := protocol.UInteger(err.Position)

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: character},
			End:   protocol.Position{Line: line, Character: character + 1},
		},
		Severity: &severity,
		Source:   strPtr(languageServerName),
		Message:  err.Error(),
	}
}

func strPtr(s string) *string { return &s }

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}
