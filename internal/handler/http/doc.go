// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the
// REST API. Cross-cutting concerns (request identification, access
// logging, API-key gating, panic recovery) are handled in this package
// before requests are delegated to the service layer. Every error
// leaves the package wrapped in the uniform JSON envelope.
package http
