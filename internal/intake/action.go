package intake

// Action is one user interaction, applied to a State by the Store.
type Action interface {
	Name() string
	Apply(State) (State, error)
}

// ToggleModal flips the add-applicant modal (header button).
type ToggleModal struct{}

func (ToggleModal) Name() string { return "toggle_modal" }
func (ToggleModal) Apply(s State) (State, error) { return s.ToggleModal() }

// OpenModal shows the add-applicant modal.
type OpenModal struct{}

func (OpenModal) Name() string { return "open_modal" }
func (OpenModal) Apply(s State) (State, error) { return s.OpenModal() }

// CloseModal hides the modal, keeping the draft.
type CloseModal struct{}

func (CloseModal) Name() string { return "close_modal" }
func (CloseModal) Apply(s State) (State, error) { return s.CloseModal() }

// SetDraft mirrors the modal's text field.
type SetDraft struct {
	Value string
}

func (SetDraft) Name() string { return "set_draft" }
func (a SetDraft) Apply(s State) (State, error) { return s.SetDraft(a.Value) }

// SubmitDraft is the modal's Save action.
type SubmitDraft struct{}

func (SubmitDraft) Name() string { return "submit_draft" }
func (SubmitDraft) Apply(s State) (State, error) { return s.Submit() }

// CancelDraft is the modal's Cancel action.
type CancelDraft struct{}

func (CancelDraft) Name() string { return "cancel_draft" }
func (CancelDraft) Apply(s State) (State, error) { return s.Cancel() }

// DeleteApplicant removes the applicant at Index.
type DeleteApplicant struct {
	Index int
}

func (DeleteApplicant) Name() string { return "delete_applicant" }
func (a DeleteApplicant) Apply(s State) (State, error) { return s.DeleteApplicant(a.Index) }

// SelectApplicant selects a tab directly.
type SelectApplicant struct {
	Index int
}

func (SelectApplicant) Name() string { return "select_applicant" }
func (a SelectApplicant) Apply(s State) (State, error) { return s.Select(a.Index) }

// NextApplicant is the footer's Next button.
type NextApplicant struct{}

func (NextApplicant) Name() string { return "next_applicant" }
func (NextApplicant) Apply(s State) (State, error) { return s.Next() }

// PreviousApplicant is the footer's Back button.
type PreviousApplicant struct{}

func (PreviousApplicant) Name() string { return "previous_applicant" }
func (PreviousApplicant) Apply(s State) (State, error) { return s.Previous() }

// UploadDocuments attaches files, by name, to the current applicant.
type UploadDocuments struct {
	Files  []string
	Source string // "browse" or "drop"; recorded on the span only
}

func (UploadDocuments) Name() string { return "upload_documents" }
func (a UploadDocuments) Apply(s State) (State, error) { return s.Upload(a.Files...) }

// SetDocumentStatus sets a document's status.
type SetDocumentStatus struct {
	ID     DocumentID
	Status Status
}

func (SetDocumentStatus) Name() string { return "set_document_status" }
func (a SetDocumentStatus) Apply(s State) (State, error) { return s.SetDocumentStatus(a.ID, a.Status) }

// MarkUploaded is the per-row Upload button.
type MarkUploaded struct {
	ID DocumentID
}

func (MarkUploaded) Name() string { return "mark_uploaded" }
func (a MarkUploaded) Apply(s State) (State, error) { return s.MarkUploaded(a.ID) }

// DeleteDocument is the per-row cancel button.
type DeleteDocument struct {
	ID DocumentID
}

func (DeleteDocument) Name() string { return "delete_document" }
func (a DeleteDocument) Apply(s State) (State, error) { return s.DeleteDocument(a.ID) }
