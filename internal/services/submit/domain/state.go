package domain

import (
	"strings"
	"time"
)

// State is the pipeline's position within one submission
type State int

// States
const (
	StateIdle State = iota
	StateValidating
	StateEncoding
	StateDispatching
	StateSucceeded
	StateFailed
)

var stateNames = [...]string{"idle", "validating", "encoding", "dispatching", "succeeded", "failed"}

// String names the state
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// MarshalText lets State render by name in JSON
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Transition is one state change of a submission
type Transition struct {
	SubmissionID string
	From, To     State
	At           time.Time
}

// DisplayPolicy decides what a failure does to the result on display
type DisplayPolicy int

// Policies
const (
	// ClearOnFailure drops the previous result so it is not shown beside a new error
	ClearOnFailure DisplayPolicy = iota
	// KeepOnFailure leaves the previous result on display
	KeepOnFailure
)

// ParseDisplayPolicy reads "clear" or "keep"; anything else is ClearOnFailure
func ParseDisplayPolicy(s string) DisplayPolicy {
	if strings.EqualFold(strings.TrimSpace(s), "keep") {
		return KeepOnFailure
	}
	return ClearOnFailure
}

// String names the policy
func (p DisplayPolicy) String() string {
	if p == KeepOnFailure {
		return "keep"
	}
	return "clear"
}

// Outcome is what one submission produced
type Outcome struct {
	SubmissionID string           `json:"submission_id"`
	State        State            `json:"state"`
	Message      string           `json:"message"`
	Kind         Kind             `json:"kind,omitempty"`
	Status       int              `json:"upstream_status,omitempty"`
	Result       *ProcessedResult `json:"result,omitempty"`
	FileAttached bool             `json:"file_attached"`
	StartedAt    time.Time        `json:"started_at"`
	Elapsed      time.Duration    `json:"elapsed_ns"`
}

// Display is the current state a front end renders
type Display struct {
	State      State            `json:"state"`
	Submitting bool             `json:"submitting"`
	Result     *ProcessedResult `json:"result,omitempty"`
	Last       *Outcome         `json:"last_outcome,omitempty"`
}
