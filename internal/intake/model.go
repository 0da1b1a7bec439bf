package intake

import "github.com/google/uuid"

// ApplicantID identifies an applicant independently of its display name.
type ApplicantID string

// DocumentID identifies a document independently of its list position.
type DocumentID string

// NewApplicantID returns a fresh random applicant ID.
func NewApplicantID() ApplicantID {
	return ApplicantID(uuid.NewString())
}

// NewDocumentID returns a fresh random document ID.
func NewDocumentID() DocumentID {
	return DocumentID(uuid.NewString())
}

// Status is the upload state of a single document.
type Status int

const (
	StatusPendingUpload Status = iota
	StatusSuccess
)

// String returns the label shown in the status chip.
func (s Status) String() string {
	switch s {
	case StatusPendingUpload:
		return "Pending Upload"
	case StatusSuccess:
		return "Success"
	default:
		return "Unknown"
	}
}

// CanTransitionTo reports whether a document in status s may move to next.
// Pending Upload -> Success is the only transition; Success is terminal.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPendingUpload && next == StatusSuccess
}

// Applicant is one entry in the managed list.
type Applicant struct {
	ID   ApplicantID
	Name string
}

// Document is a file record attached to exactly one applicant.
// Only the file name is ever recorded; contents are never read.
type Document struct {
	ID     DocumentID
	Name   string
	Status Status
}
