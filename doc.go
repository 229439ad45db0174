// Package octseq owns generic byte-sequence parsing and building primitives.
//
// Ownership boundary:
// - octets and builder contracts over interchangeable backing storage
// - bounds-checked cursor parsing over in-memory sequences (Parser)
// - fixed-width and varint compose helpers for builders
// - utf-8 validated sequences (Str, StrBuilder)
//
// The package defines no wire format of its own. Concrete formats live with
// their consumers; see the tlv package for one built on these primitives.
package octseq
