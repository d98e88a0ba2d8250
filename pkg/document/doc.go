// Package document defines the canonical JSON serialization format for
// diagram graphs and the conversions between the two representations.
//
// The format is designed for round-trip fidelity: save → load produces a
// graph whose node set, edge set, and all per-entity fields are deeply equal
// to the original, with the same IDs. Deserialization validates referential
// integrity - edges referencing nodes or ports absent from the document's
// node set are dropped and counted rather than loaded, so a reconstructed
// graph never violates the model's invariants.
package document
