// Package notestrip provides a documentation build helper. It mirrors a
// directory of HTML chapter files into a "full-notes" tree and writes a
// second "chapters" tree with hidden sections (teaching notes, answer keys)
// stripped out. Hidden sections are div elements carrying the class token
// "hide"; they are removed structurally, together with their descendants.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/).
package notestrip
