package intake

import (
	"fmt"
	"slices"
	"strings"
)

// State is the whole view state of the intake screen.
//
// Reducers take State by value and return the next State. They never write
// through the receiver's slices or maps, so a previous State stays valid
// after a transition.
type State struct {
	ModalOpen  bool
	Draft      string
	Applicants []Applicant
	Documents  map[ApplicantID][]Document
	Selected   int
}

// NewState returns an empty state with no applicants.
func NewState() State {
	return State{Documents: make(map[ApplicantID][]Document)}
}

// Len returns the number of applicants.
func (s State) Len() int {
	return len(s.Applicants)
}

// Current returns the selected applicant, if any.
func (s State) Current() (Applicant, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Applicants) {
		return Applicant{}, false
	}
	return s.Applicants[s.Selected], true
}

// CurrentDocuments returns the selected applicant's documents, or nil.
func (s State) CurrentDocuments() []Document {
	a, ok := s.Current()
	if !ok {
		return nil
	}
	return s.Documents[a.ID]
}

// DocumentsFor returns the documents of the applicant with the given ID.
func (s State) DocumentsFor(id ApplicantID) []Document {
	return s.Documents[id]
}

// CanGoBack reports whether Previous would move the selection.
func (s State) CanGoBack() bool {
	return s.Selected > 0
}

// CanGoNext reports whether Next would move the selection.
func (s State) CanGoNext() bool {
	return s.Selected < len(s.Applicants)-1
}

// ToggleModal flips the add-applicant modal.
func (s State) ToggleModal() (State, error) {
	s.ModalOpen = !s.ModalOpen
	return s, nil
}

// OpenModal shows the add-applicant modal.
func (s State) OpenModal() (State, error) {
	s.ModalOpen = true
	return s, nil
}

// CloseModal hides the modal without touching the draft.
func (s State) CloseModal() (State, error) {
	s.ModalOpen = false
	return s, nil
}

// SetDraft replaces the modal's name draft.
func (s State) SetDraft(v string) (State, error) {
	s.Draft = v
	return s, nil
}

// Submit appends the trimmed draft as a new applicant and selects it.
// The modal closes and the draft clears whether or not the name was
// accepted; a blank name yields ErrBlankName.
func (s State) Submit() (State, error) {
	name := strings.TrimSpace(s.Draft)
	s.Draft = ""
	s.ModalOpen = false
	if name == "" {
		return s, ErrBlankName
	}

	a := Applicant{ID: NewApplicantID(), Name: name}
	selected := len(s.Applicants)
	s.Applicants = append(slices.Clip(s.Applicants), a)
	s.Documents = cloneDocuments(s.Documents)
	s.Documents[a.ID] = []Document{}
	s.Selected = selected
	return s, nil
}

// Cancel clears the draft and closes the modal.
func (s State) Cancel() (State, error) {
	s.Draft = ""
	s.ModalOpen = false
	return s, nil
}

// DeleteApplicant removes the applicant at index i together with its
// documents. The selection is clamped if it fell off the end.
func (s State) DeleteApplicant(i int) (State, error) {
	if i < 0 || i >= len(s.Applicants) {
		return s, fmt.Errorf("delete applicant %d of %d: %w", i, len(s.Applicants), ErrIndexOutOfRange)
	}
	removed := s.Applicants[i]
	s.Applicants = slices.Delete(slices.Clone(s.Applicants), i, i+1)
	s.Documents = cloneDocuments(s.Documents)
	delete(s.Documents, removed.ID)
	if s.Selected >= len(s.Applicants) {
		s.Selected = max(0, len(s.Applicants)-1)
	}
	return s, nil
}

// Select makes the applicant at index i current.
func (s State) Select(i int) (State, error) {
	if i < 0 || i >= len(s.Applicants) {
		return s, fmt.Errorf("select applicant %d of %d: %w", i, len(s.Applicants), ErrIndexOutOfRange)
	}
	s.Selected = i
	return s, nil
}

// Next advances the selection by one; no-op on the last applicant.
func (s State) Next() (State, error) {
	if s.CanGoNext() {
		s.Selected++
	}
	return s, nil
}

// Previous moves the selection back by one; no-op on the first applicant.
func (s State) Previous() (State, error) {
	if s.CanGoBack() {
		s.Selected--
	}
	return s, nil
}

// Upload appends one pending document per file name to the current
// applicant. Names are not validated or deduplicated.
func (s State) Upload(files ...string) (State, error) {
	a, ok := s.Current()
	if !ok {
		return s, fmt.Errorf("upload %d file(s): %w", len(files), ErrNoApplicant)
	}
	if len(files) == 0 {
		return s, nil
	}
	existing := s.Documents[a.ID]
	docs := make([]Document, 0, len(existing)+len(files))
	docs = append(docs, existing...)
	for _, name := range files {
		docs = append(docs, Document{ID: NewDocumentID(), Name: name, Status: StatusPendingUpload})
	}
	s.Documents = cloneDocuments(s.Documents)
	s.Documents[a.ID] = docs
	return s, nil
}

// SetDocumentStatus moves one of the current applicant's documents to
// status next. Only Pending Upload -> Success is allowed.
func (s State) SetDocumentStatus(id DocumentID, next Status) (State, error) {
	a, ok := s.Current()
	if !ok {
		return s, fmt.Errorf("set status of %s: %w", id, ErrNoApplicant)
	}
	docs := s.Documents[a.ID]
	idx := indexOfDocument(docs, id)
	if idx < 0 {
		return s, fmt.Errorf("set status of %s: %w", id, ErrDocumentNotFound)
	}
	cur := docs[idx].Status
	if cur == next {
		return s, nil
	}
	if !cur.CanTransitionTo(next) {
		return s, fmt.Errorf("%s -> %s: %w", cur, next, ErrInvalidTransition)
	}
	updated := slices.Clone(docs)
	updated[idx].Status = next
	s.Documents = cloneDocuments(s.Documents)
	s.Documents[a.ID] = updated
	return s, nil
}

// MarkUploaded marks a pending document as Success.
func (s State) MarkUploaded(id DocumentID) (State, error) {
	return s.SetDocumentStatus(id, StatusSuccess)
}

// DeleteDocument removes one document from the current applicant.
func (s State) DeleteDocument(id DocumentID) (State, error) {
	a, ok := s.Current()
	if !ok {
		return s, fmt.Errorf("delete document %s: %w", id, ErrNoApplicant)
	}
	docs := s.Documents[a.ID]
	idx := indexOfDocument(docs, id)
	if idx < 0 {
		return s, fmt.Errorf("delete document %s: %w", id, ErrDocumentNotFound)
	}
	s.Documents = cloneDocuments(s.Documents)
	s.Documents[a.ID] = slices.Delete(slices.Clone(docs), idx, idx+1)
	return s, nil
}

func indexOfDocument(docs []Document, id DocumentID) int {
	return slices.IndexFunc(docs, func(d Document) bool { return d.ID == id })
}

// cloneDocuments copies the map header; the lists themselves are replaced,
// never edited, by the reducers.
func cloneDocuments(m map[ApplicantID][]Document) map[ApplicantID][]Document {
	out := make(map[ApplicantID][]Document, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
