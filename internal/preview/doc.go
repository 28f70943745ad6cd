// Package preview serves an enhanced rendering of an HTML page over HTTP
// with live reload.
//
// The server reads a source HTML file from disk, runs the enhancement
// passes at a simulated viewport width and serves the result. A small
// script injected into the served page opens a WebSocket back to the
// server; when the source file changes on disk the server broadcasts a
// reload message and every connected browser refreshes.
//
// Components:
//   - server.go: HTTP server, enhanced page rendering, file watching
//   - websocket.go: WebSocket endpoint and connected-client registry
//
// The simulated width defaults to the server's configured width and can
// be overridden per request with a ?width= query parameter, so a single
// preview instance can show the page at several breakpoints at once.
package preview
