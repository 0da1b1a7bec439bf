package intake

import "errors"

// Sentinel errors returned by reducers. Callers match them with errors.Is;
// reducers wrap them with the offending index or ID.
var (
	ErrBlankName         = errors.New("applicant name is blank")
	ErrIndexOutOfRange   = errors.New("applicant index out of range")
	ErrNoApplicant       = errors.New("no applicant selected")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)
