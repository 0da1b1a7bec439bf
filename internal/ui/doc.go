// Package ui is the Bubble Tea front end for the applicant document intake
// screen.
//
// Layout, top to bottom:
//   - Header: title and the "Add Applicant" toggle
//   - Tab strip: one tab per applicant, selected tab underlined in accent
//   - Detail pane: drop zone and the selected applicant's documents
//   - Footer: Back/Next buttons and key help
//
// Every frame is derived from intake.State. The only state owned here is
// presentational: the document cursor, terminal size and open overlays
// (add-applicant modal, file browser). User input becomes intake Actions
// that the AppModel dispatches to its intake.Store.
package ui
