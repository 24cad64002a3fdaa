package cleanup

import "wistia-clean/core/reconcile"

// State is a step of a cleanup run.
type State string

const (
	StateLoadingLocal         State = "loading_local"
	StateLoadingRemote        State = "loading_remote"
	StateReconciling          State = "reconciling"
	StatePresenting           State = "presenting"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateDeleting             State = "deleting"
	StateDone                 State = "done"
	StateFailed               State = "failed"
)

// Result describes how a run ended.
type Result struct {
	// State is the terminal state, StateDone or StateFailed.
	State State
	// Trace lists every state entered, in order.
	Trace []State
	// Plan is nil when loading failed.
	Plan *reconcile.Plan
	// Confirmed is true when the user (or --yes) approved the deletions.
	Confirmed bool

	ProjectsDeleted int
	MediasDeleted   int
}
