package domain

// Phase represents the lifecycle state of one carousel session.
type Phase string

const (
	// PhaseIdle is the state before the first load.
	PhaseIdle Phase = "IDLE"
	// PhaseLoading means an offers fetch is in flight.
	PhaseLoading Phase = "LOADING"
	// PhaseDisplaying means a non-empty offer set is loaded and one
	// offer is current.
	PhaseDisplaying Phase = "DISPLAYING"
	// PhaseClosed is terminal for the session.
	PhaseClosed Phase = "CLOSED"
	// PhaseErrored means the last fetch failed; a reload may retry.
	PhaseErrored Phase = "ERRORED"
)
