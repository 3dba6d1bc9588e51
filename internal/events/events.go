// Package events records the national focus events and on-action hooks that
// composed focus trees refer to.
package events

import (
	"slices"
	"sync"
)

// Events is the collaborator that creates the events fired by focuses. A
// focus refers to its event by the number returned from
// CurrentNationFocusEventNum before the matching Create call.
type Events interface {
	CurrentNationFocusEventNum() int
	CreateAnnexEvent(home, target string)
	CreateSudetenEvent(home, target string, states []int)
	CreateFactionEvents(home, ally string)
}

// OnActions collects the focuses that must trigger an on-action when
// completed.
type OnActions interface {
	AddFocusEvent(tag, focusID string)
}

// Kind names the flavour of a recorded event.
type Kind string

const (
	KindAnnex   Kind = "annex"
	KindSudeten Kind = "sudeten"
	KindFaction Kind = "faction"
)

// Event is a single recorded event.
type Event struct {
	Num    int
	Kind   Kind
	Home   string
	Target string
	States []int
}

// FocusHook is a focus registered with OnActions.
type FocusHook struct {
	Tag     string
	FocusID string
}

// Recorder implements Events and OnActions by keeping everything in memory.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	next   int
	events []Event
	hooks  []FocusHook
}

// NewRecorder returns a recorder whose first event number is 1.
func NewRecorder() *Recorder {
	return &Recorder{next: 1}
}

// CurrentNationFocusEventNum implements Events.
func (r *Recorder) CurrentNationFocusEventNum() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next
}

// CreateAnnexEvent implements Events.
func (r *Recorder) CreateAnnexEvent(home, target string) {
	r.record(Event{Kind: KindAnnex, Home: home, Target: target})
}

// CreateSudetenEvent implements Events.
func (r *Recorder) CreateSudetenEvent(home, target string, states []int) {
	r.record(Event{Kind: KindSudeten, Home: home, Target: target, States: slices.Clone(states)})
}

// CreateFactionEvents implements Events.
func (r *Recorder) CreateFactionEvents(home, ally string) {
	r.record(Event{Kind: KindFaction, Home: home, Target: ally})
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.Num = r.next
	r.next++
	r.events = append(r.events, e)
}

// AddFocusEvent implements OnActions.
func (r *Recorder) AddFocusEvent(tag, focusID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = append(r.hooks, FocusHook{Tag: tag, FocusID: focusID})
}

// Events returns a copy of the recorded events in creation order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}

// FocusHooks returns a copy of the registered focus hooks.
func (r *Recorder) FocusHooks() []FocusHook {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.hooks)
}
