// Package newsrag provides a local, CLI-based question answering tool over a
// news site. It crawls the site breadth-first, extracts article text and
// metadata, stores it, indexes it for semantic search, and answers natural
// language questions using the retrieved articles.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gemini/).
package newsrag
