package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/leengari/csvjoin/internal/domain/schema"
	"github.com/leengari/csvjoin/internal/query/operations/join"
)

// Engine is the main entry point for running joins
type Engine struct {
	observers []Observer // Observers for lifecycle events
}

// New creates a new Engine instance
func New() *Engine {
	return &Engine{
		observers: make([]Observer, 0),
	}
}

// JoinRequest describes the inputs of a join, carried in the start event
type JoinRequest struct {
	Left  string // left table name
	Right string // right table name
	Key   string // join column
}

// InnerJoin runs a sort-merge inner join and reports it to observers.
// Both inputs are reordered by their key column; see join.InnerJoin.
func (e *Engine) InnerJoin(left, right *schema.Table, key string) (*schema.Table, error) {
	runID := uuid.New().String()

	req := JoinRequest{Key: key}
	if left != nil {
		req.Left = left.Name
	}
	if right != nil {
		req.Right = right.Name
	}

	e.notify(Event{Type: EventJoinStart, RunID: runID, Data: req})

	out, stats, err := join.InnerJoinWithStats(left, right, key)
	if err != nil {
		e.notify(Event{Type: EventJoinError, RunID: runID, Data: err})
		return nil, err
	}

	e.notify(Event{Type: EventJoinEnd, RunID: runID, Data: stats})
	return out, nil
}

// AddObserver registers an observer for lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
