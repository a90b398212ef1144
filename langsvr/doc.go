// Package langsvr is a minimal Language Server Protocol server for
// exprlang, built on glsp and commonlog. Where a fuller language server
// maintains an in-memory project index and answers completion requests,
// this server's only job is to keep re-parsing whatever document the
// client has open and publish the resulting diagnostics: the natural
// next step once a combinator parser sits behind an LSP handler.
package langsvr
