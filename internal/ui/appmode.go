package ui

import "docintake/internal/intake"

// AppMode is derived from the store and filters which key hints are shown.
type AppMode int

const (
	ModeNoApplicants AppMode = iota
	ModeApplicant
)

func (m AppMode) String() string {
	switch m {
	case ModeNoApplicants:
		return "NoApplicants"
	case ModeApplicant:
		return "Applicant"
	default:
		return "Unknown"
	}
}

// modeFor returns the mode for the given state.
func modeFor(s intake.State) AppMode {
	if _, ok := s.Current(); ok {
		return ModeApplicant
	}
	return ModeNoApplicants
}
