// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects, the store
// interfaces (internal/store) and the document generation boundary
// (internal/pdfgen) to fulfill application features.
//
// This is the module's exposed surface: a transport layer (or embedding
// application) calls these services with plain identifiers and DTOs and
// receives domain entities or primitives, never a transport-specific type.
// All invariant enforcement (selection uniqueness, document ownership,
// existence checks) lives here, while persistence and generation remain
// injected collaborators.
package service
