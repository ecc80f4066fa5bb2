// Package linkscan checks the hyperlinks embedded in Markdown and HTML
// documents of a directory tree. It classifies every link target, validates
// it with a per-protocol strategy (HTTP, local file, mail) and reports each
// outcome with a severity.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, sqlite/).
package linkscan
