// Package blogsmith turns a web page into structured source content and
// fans it out through text and image generation backends into several
// independent derivative articles with illustrations.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, openai/).
package blogsmith
