package adminclient

import (
	"errors"
	"sync"
)

// Mode is the state of a form controller's edit surface.
type Mode string

const (
	// ModeClosed means no form is open.
	ModeClosed Mode = ""
	// ModeAdd means the form creates a new record on submit.
	ModeAdd Mode = "add"
	// ModeEdit means the form updates the selected record on submit.
	ModeEdit Mode = "edit"
)

var (
	// ErrRequestInFlight is returned when a controller is asked to start a
	// request while a previous one has not finished. Callers disable the
	// triggering control until the outstanding call returns.
	ErrRequestInFlight = errors.New("request already in flight")

	// ErrConfirmRequired is returned when ConfirmDelete is called with no
	// delete pending. Deletion always goes through RequestDelete first; a
	// bare confirm issues no request.
	ErrConfirmRequired = errors.New("no delete pending confirmation")

	// ErrInvalidBenefits is returned when the benefits free-text field does
	// not parse as JSON. The submission is aborted before any network call.
	ErrInvalidBenefits = errors.New("invalid benefits JSON format")
)

// requestGuard serializes a controller's network activity: while one request
// is outstanding every further trigger fails fast with ErrRequestInFlight.
// There is no queueing and no cancellation of the running request.
type requestGuard struct {
	mu       sync.Mutex
	inFlight bool
}

func (g *requestGuard) begin() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inFlight {
		return ErrRequestInFlight
	}
	g.inFlight = true
	return nil
}

func (g *requestGuard) end() {
	g.mu.Lock()
	g.inFlight = false
	g.mu.Unlock()
}
