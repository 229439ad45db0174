// Package tlv owns a small TLV field codec built on the octseq core.
//
// Ownership boundary:
// - field wire shape and type codes
// - encode/parse primitives over octseq builders and parsers
// - schema validation entry points
package tlv
