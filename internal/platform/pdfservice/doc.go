// Package pdfservice is the HTTP adapter for the external document
// generation service. It implements the pdfgen.Service boundary interface
// against the service's JSON API.
package pdfservice
