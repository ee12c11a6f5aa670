/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lsp implements a language server that publishes property
// value diagnostics for open stylesheets.
package lsp

import (
	"net/url"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"bennypowers.dev/propcheck/internal/logger"
	"bennypowers.dev/propcheck/internal/version"
	"bennypowers.dev/propcheck/sheet"
	"bennypowers.dev/propcheck/validator"
)

const serverName = "propcheck"

type document struct {
	text string
	lang sheet.Language
}

// Server is a full-sync language server.
type Server struct {
	validator *validator.Validator
	handler   protocol.Handler

	mu        sync.Mutex
	documents map[protocol.DocumentUri]document
}

// NewServer returns a server validating documents with v.
func NewServer(v *validator.Validator) *Server {
	s := &Server{
		validator: v,
		documents: make(map[protocol.DocumentUri]document),
	}
	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.didOpen,
		TextDocumentDidChange: s.didChange,
		TextDocumentDidClose:  s.didClose,
	}
	return s
}

// Run serves the protocol over stdin and stdout until the client exits.
func (s *Server) Run() error {
	return server.NewServer(&s.handler, serverName, false).RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.ClientInfo != nil {
		logger.Debug("initialize from %s", params.ClientInfo.Name)
	}

	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = protocol.TextDocumentSyncKindFull

	v := version.Get()
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &v,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := params.TextDocument
	lang, ok := documentLanguage(doc.URI, doc.LanguageID)
	if !ok {
		logger.Debug("ignoring %s (%s)", doc.URI, doc.LanguageID)
		return nil
	}

	s.mu.Lock()
	s.documents[doc.URI] = document{text: doc.Text, lang: lang}
	s.mu.Unlock()

	return s.publish(ctx, doc.URI)
}

func (s *Server) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI

	s.mu.Lock()
	doc, ok := s.documents[uri]
	if ok {
		for _, change := range params.ContentChanges {
			switch c := change.(type) {
			case protocol.TextDocumentContentChangeEventWhole:
				doc.text = c.Text
			case *protocol.TextDocumentContentChangeEventWhole:
				doc.text = c.Text
			}
		}
		s.documents[uri] = doc
	}
	s.mu.Unlock()

	if !ok {
		return nil
	}
	return s.publish(ctx, uri)
}

func (s *Server) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI

	s.mu.Lock()
	_, ok := s.documents[uri]
	delete(s.documents, uri)
	s.mu.Unlock()

	if ok {
		ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}

func (s *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri) error {
	s.mu.Lock()
	doc, ok := s.documents[uri]
	s.mu.Unlock()
	if !ok {
		return nil
	}

	diagnostics, err := Diagnostics(doc.text, doc.lang, s.validator)
	if err != nil {
		logger.Warn("failed to check %s: %v", uri, err)
		return nil
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
	return nil
}

// documentLanguage picks a language from the client's language id,
// falling back to the document's file extension.
func documentLanguage(uri protocol.DocumentUri, languageID string) (sheet.Language, bool) {
	if lang, err := sheet.LanguageFromString(languageID); err == nil {
		return lang, true
	}
	path := string(uri)
	if u, err := url.Parse(path); err == nil && u.Path != "" {
		path = u.Path
	}
	lang, err := sheet.LanguageForPath(path)
	return lang, err == nil
}
