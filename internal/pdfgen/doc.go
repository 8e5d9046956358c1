// Package pdfgen defines the boundary between the application core and the
// external document generation service that materializes PDF reports from
// report parameters. The core consumes this interface; concrete adapters
// live under internal/platform.
package pdfgen
