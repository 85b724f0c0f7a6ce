package operation

import (
	"errors"
	"fmt"
	"slices"

	"logistics/internal/pkg/errs"
)

// TransitionTable is an immutable mapping from a status to the statuses it may
// move to. A status without an entry has no outgoing edges.
type TransitionTable struct {
	edges map[Status][]Status
}

// NewTransitionTable copies edges into a new table. Every key and target must
// be a valid status and a status may not list itself.
func NewTransitionTable(edges map[Status][]Status) (TransitionTable, error) {
	table := TransitionTable{edges: make(map[Status][]Status, len(edges))}

	var errList []error
	for from, targets := range edges {
		if err := from.Validate(); err != nil {
			errList = append(errList, err)
			continue
		}

		allowed := make([]Status, 0, len(targets))
		for _, to := range targets {
			if err := to.Validate(); err != nil {
				errList = append(errList, err)
				continue
			}
			if to == from {
				errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
					"transition table",
					fmt.Errorf("%s lists itself as a target", from),
				))
				continue
			}
			if !slices.Contains(allowed, to) {
				allowed = append(allowed, to)
			}
		}
		slices.Sort(allowed)
		table.edges[from] = allowed
	}

	if err := errors.Join(errList...); err != nil {
		return TransitionTable{}, err
	}

	return table, nil
}

// DefaultTransitionTable returns the shipment pipeline: pickup, hub routing,
// delivery, with cancellation available from every non-terminal state.
func DefaultTransitionTable() TransitionTable {
	table, err := NewTransitionTable(map[Status][]Status{
		Created:   {AtOrigin, Canceled},
		AtOrigin:  {Loaded, Canceled},
		Loaded:    {InTransit, Canceled},
		InTransit: {AtHub, Unloaded, Canceled},
		AtHub:     {InTransit, Unloaded, Canceled},
		Unloaded:  {Completed, Canceled},
	})
	if err != nil {
		panic(err)
	}
	return table
}

// Allows reports whether from -> to is an edge of the table.
func (t TransitionTable) Allows(from, to Status) bool {
	return slices.Contains(t.edges[from], to)
}

// Allowed returns a sorted copy of the targets reachable from from.
func (t TransitionTable) Allowed(from Status) []Status {
	return slices.Clone(t.edges[from])
}
