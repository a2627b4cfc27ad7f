package gateway

import "sync"

type State string

const (
	StateIdle       State = "IDLE"
	StateProcessing State = "PROCESSING"
	StateSuccess    State = "SUCCESS"
	StateFailed     State = "FAILED"
)

// ProcessingPhases are the scripted authorization steps of the standard flow,
// in the exact order the gateway emits them.
var ProcessingPhases = []string{
	"Encrypting data...",
	"Contacting bank...",
	"Verifying credentials...",
	"Authorizing transaction...",
}

const (
	PhaseApproved       = "Payment Approved!"
	PhaseDeclined       = "Transaction Declined"
	PhaseContactingBank = "Contacting bank..."
)

// Observer receives the attempt's side effects: phase labels for the
// processing overlay, state changes, and the deferred navigation signal.
type Observer interface {
	OnPhase(regID, label string)
	OnState(regID string, state State)
	OnNavigate(regID, dest string)
}

type NopObserver struct{}

func (NopObserver) OnPhase(string, string)    {}
func (NopObserver) OnState(string, State)     {}
func (NopObserver) OnNavigate(string, string) {}

// Attempt is one run of the state machine against one donation. Snapshots
// are safe to read while the attempt is still running.
type Attempt struct {
	mu sync.Mutex

	regID         string
	amount        float64
	authenticated bool
	observer      Observer

	state      State
	phase      string
	navigateTo string
	err        error
}

// Status is a point-in-time snapshot of an attempt.
type Status struct {
	State      State
	Phase      string
	Amount     float64
	NavigateTo string
	Err        error
}

func newAttempt(regID string, amount float64, authenticated bool, observer Observer) *Attempt {
	return &Attempt{
		regID:         regID,
		amount:        amount,
		authenticated: authenticated,
		observer:      observer,
		state:         StateIdle,
	}
}

func (a *Attempt) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Status{
		State:      a.state,
		Phase:      a.phase,
		Amount:     a.amount,
		NavigateTo: a.navigateTo,
		Err:        a.err,
	}
}

func (a *Attempt) setState(state State) {
	a.mu.Lock()
	a.state = state
	a.mu.Unlock()
	a.observer.OnState(a.regID, state)
}

func (a *Attempt) setPhase(label string) {
	a.mu.Lock()
	a.phase = label
	a.mu.Unlock()
	a.observer.OnPhase(a.regID, label)
}

func (a *Attempt) navigate(dest string) {
	a.mu.Lock()
	a.navigateTo = dest
	a.mu.Unlock()
	a.observer.OnNavigate(a.regID, dest)
}

func (a *Attempt) fail(err error) {
	a.mu.Lock()
	a.state = StateFailed
	a.err = err
	a.mu.Unlock()
	a.observer.OnState(a.regID, StateFailed)
}
