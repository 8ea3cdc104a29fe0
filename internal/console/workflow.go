package console

import (
	"context"
	"errors"
	"sync"

	"github.com/appetiteclub/apt"

	"github.com/tableside/foh/internal/posapi"
)

// FlowState is where the take-order modal currently stands.
type FlowState string

const (
	// FlowIdle means no modal interaction is underway.
	FlowIdle FlowState = "idle"
	// FlowSelectingAction means the modal is open and the operator is
	// choosing between starting a new order and extending one.
	FlowSelectingAction FlowState = "selecting_action"
	// FlowComposing means a customer is bound and items are being edited.
	FlowComposing FlowState = "composing"
)

// OrderAction is the operator's choice inside the modal.
type OrderAction string

const (
	ActionNone   OrderAction = ""
	ActionNew    OrderAction = "new"
	ActionUpdate OrderAction = "update"
)

var (
	ErrFlowClosed     = errors.New("take-order flow is not open")
	ErrNoActionChosen = errors.New("choose new order or add to existing first")
	ErrNotComposing   = errors.New("no order is being composed")
	ErrMissingOrder   = errors.New("existing order required for this action")
)

// Workflow drives the take-order modal through its states. Each transition
// either succeeds or returns an error naming what the operator skipped;
// the composer is reset at every entry point so stale edits never leak
// between sessions.
type Workflow struct {
	mu       sync.Mutex
	state    FlowState
	action   OrderAction
	composer *Composer
	log      apt.Logger
}

// NewWorkflow creates an idle workflow around a composer.
func NewWorkflow(composer *Composer, log apt.Logger) *Workflow {
	if log == nil {
		log = apt.NewNoopLogger()
	}
	return &Workflow{state: FlowIdle, composer: composer, log: log}
}

// State returns the current flow position.
func (w *Workflow) State() FlowState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Action returns the operator's current choice.
func (w *Workflow) Action() OrderAction {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.action
}

// Open starts a fresh modal session. Reopening while already open starts
// over: the composer is cleared either way.
func (w *Workflow) Open() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.composer.Reset()
	w.action = ActionNone
	w.state = FlowSelectingAction
	w.log.Debug("take-order flow opened", "session", w.composer.SessionID())
}

// ChooseAction records whether the operator is starting a new order or
// extending an existing one. Switching the choice discards any edits made
// under the previous one.
func (w *Workflow) ChooseAction(action OrderAction) error {
	if action != ActionNew && action != ActionUpdate {
		return ErrNoActionChosen
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == FlowIdle {
		return ErrFlowClosed
	}
	w.composer.Reset()
	w.action = action
	w.state = FlowSelectingAction
	return nil
}

// SelectPatron binds the session to a customer and moves to composing.
// For ActionUpdate the patron's persisted order must be supplied so its
// lines seed the read-only collection; for ActionNew the session starts
// empty against the given patron.
func (w *Workflow) SelectPatron(patronID int, order *posapi.Order) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.state {
	case FlowIdle:
		return ErrFlowClosed
	case FlowComposing:
		// Re-selecting mid-composition starts the item list over.
	}
	if w.action == ActionNone {
		return ErrNoActionChosen
	}
	if w.action == ActionUpdate {
		if order == nil {
			return ErrMissingOrder
		}
		w.composer.LoadExisting(*order)
	} else {
		w.composer.Reset()
		w.composer.SetPatron(patronID)
	}
	w.state = FlowComposing
	return nil
}

// Composing reports whether item edits are currently legal.
func (w *Workflow) Composing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state == FlowComposing
}

// Submit sends the composed items through the composer. On success the
// flow returns to idle; on failure it stays in composing so the operator
// can fix the session and retry.
func (w *Workflow) Submit(ctx context.Context) (posapi.OrderReceiptUpdate, error) {
	w.mu.Lock()
	if w.state != FlowComposing {
		w.mu.Unlock()
		return posapi.OrderReceiptUpdate{}, ErrNotComposing
	}
	w.mu.Unlock()

	update, err := w.composer.Submit(ctx)
	if err != nil {
		return posapi.OrderReceiptUpdate{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.action = ActionNone
	w.state = FlowIdle
	return update, nil
}

// Close abandons the modal session and clears all composition state.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.composer.Reset()
	w.action = ActionNone
	w.state = FlowIdle
}
