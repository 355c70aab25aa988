package service

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/seftechub/checkout.api.seftechub.com/models"
)

// DispatchState Enum Type
type DispatchState int

// States of a single payment submission. A dispatcher models the lifecycle of
// one payment button: it accepts exactly one submission at a time.
const (
	StateIdle DispatchState = 1 + iota
	StateSubmitting
	StateRedirecting
	StateError
)

var dispatchStates = [...]string{
	"idle",
	"submitting",
	"redirecting",
	"error",
}

func (state DispatchState) String() string {
	return dispatchStates[state-1]
}

// StubProviders are the providers referenced by the marketplace UI that have
// no gateway integration. Dispatching to one of these completes synchronously
// via the completion callback with no server round trip.
var StubProviders = map[string]bool{
	"flutterwave": true,
	"paystack":    true,
	"wise":        true,
	"payoneer":    true,
}

// DispatchOutcome describes how a submission ended: either the caller must
// redirect to NextURL, or a stub provider completed synchronously.
type DispatchOutcome struct {
	NextURL   string
	Completed bool
}

// Dispatcher routes a payment intent to the matching provider path while
// enforcing the single-submission invariant through an explicit state
// machine.
type Dispatcher struct {
	mu         sync.Mutex
	state      DispatchState
	providers  map[string]PaymentProviderService
	onComplete func(models.PaymentIntent)
}

// NewDispatcher returns an idle dispatcher. onComplete is invoked
// synchronously for stub providers.
func NewDispatcher(providers map[string]PaymentProviderService, onComplete func(models.PaymentIntent)) *Dispatcher {
	return &Dispatcher{
		state:      StateIdle,
		providers:  providers,
		onComplete: onComplete,
	}
}

// State returns the current submission state
func (d *Dispatcher) State() DispatchState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Reset returns the dispatcher to idle after the browser comes back from a
// redirect
func (d *Dispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = StateIdle
}

// Submit routes the intent by provider. Legal only from idle or error - the
// error state is retryable, a submission already in flight is not.
func (d *Dispatcher) Submit(req *http.Request, intent models.PaymentIntent) (*DispatchOutcome, ResponseType, error) {
	d.mu.Lock()
	if d.state == StateSubmitting || d.state == StateRedirecting {
		state := d.state
		d.mu.Unlock()
		return nil, InvalidData, fmt.Errorf("submission already in flight, state: [%s]", state)
	}
	d.state = StateSubmitting
	d.mu.Unlock()

	if err := validateIntent(intent); err != nil {
		d.setState(StateIdle)
		return nil, InvalidData, err
	}

	// Stub path: no session is created and the flow completes immediately
	if StubProviders[intent.Provider] {
		if d.onComplete != nil {
			d.onComplete(intent)
		}
		d.setState(StateIdle)
		return &DispatchOutcome{Completed: true}, Success, nil
	}

	provider, ok := d.providers[intent.Provider]
	if !ok {
		d.setState(StateIdle)
		return nil, InvalidData, fmt.Errorf("payment provider [%s] not recognised", intent.Provider)
	}

	nextURL, responseType, err := provider.CreatePaymentAndGenerateNextURL(req, &intent)
	if err != nil {
		d.setState(StateError)
		return nil, responseType, err
	}
	if nextURL == "" {
		d.setState(StateError)
		return nil, Error, fmt.Errorf("no next URL returned from provider [%s]", intent.Provider)
	}

	// Control now passes to the provider's hosted page; the flow stays
	// suspended until Reset
	d.setState(StateRedirecting)
	return &DispatchOutcome{NextURL: nextURL}, Success, nil
}

func (d *Dispatcher) setState(state DispatchState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = state
}

func validateIntent(intent models.PaymentIntent) error {
	if _, err := convertToMinorUnits(intent.Amount); err != nil {
		return err
	}
	if len(intent.Currency) != 3 {
		return fmt.Errorf("currency [%s] is not a 3-letter code", intent.Currency)
	}
	if intent.Provider == "" {
		return fmt.Errorf("payment provider not supplied")
	}
	return nil
}
