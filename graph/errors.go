package graph

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/agnivade/levenshtein"
)

// MetadataNotFoundError is raised by GetRequired when no item of the
// requested type exists in the collection.
type MetadataNotFoundError struct {
	Want reflect.Type
	Have map[reflect.Type]struct{}
}

func (e *MetadataNotFoundError) Error() string {
	names := make([]string, 0, len(e.Have))
	for t := range e.Have {
		names = append(names, t.String())
	}
	sort.Strings(names)
	if suggestion := nearestName(e.Want.String(), names); suggestion != "" {
		return fmt.Sprintf("metadata: no item of type %s found (did you mean %q?)", e.Want, suggestion)
	}
	return fmt.Sprintf("metadata: no item of type %s found", e.Want)
}

// ProtocolNotRuntimeCheckableError is raised by protocol-based metadata
// queries when the target protocol has not opted into runtime checking.
type ProtocolNotRuntimeCheckableError struct {
	Protocol reflect.Type
}

func (e *ProtocolNotRuntimeCheckableError) Error() string {
	return fmt.Sprintf("metadata: protocol %s is not runtime-checkable", e.Protocol)
}

// TraversalError is raised by Walk for invalid parameters.
type TraversalError struct {
	Reason string
}

func (e *TraversalError) Error() string { return "traversal: " + e.Reason }

// InspectionError is the umbrella kind for builder-raised failures.
type InspectionError struct {
	Op       string
	RawRepr  string
	CallID   string
	Wrapped  error
}

func (e *InspectionError) Error() string {
	msg := fmt.Sprintf("inspect %s: %s", e.Op, e.RawRepr)
	if e.CallID != "" {
		msg += fmt.Sprintf(" [call=%s]", e.CallID)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

func (e *InspectionError) Unwrap() error { return e.Wrapped }

// ForwardRefError is a sub-kind of InspectionError: eager-mode forward
// reference resolution failed.
type ForwardRefError struct {
	*InspectionError
	Reference string
}

func newForwardRefError(reference, callID string, cause error) *ForwardRefError {
	return &ForwardRefError{
		InspectionError: &InspectionError{Op: "forward_ref", RawRepr: reference, CallID: callID, Wrapped: cause},
		Reference:       reference,
	}
}

// ReflectionError is a sub-kind of InspectionError: the adapter returned
// an unexpected shape for a raw type.
type ReflectionError struct {
	*InspectionError
}

func newReflectionError(op, rawRepr, callID string, cause error) *ReflectionError {
	return &ReflectionError{InspectionError: &InspectionError{Op: op, RawRepr: rawRepr, CallID: callID, Wrapped: cause}}
}

// nearestName returns the closest candidate to want by Levenshtein
// distance, or "" if candidates is empty or nothing is reasonably close.
func nearestName(want string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(want, c)
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	// Only suggest when the edit distance is a small fraction of the
	// candidate's length; otherwise the suggestion is noise.
	if best == "" || bestDist > (len(best)/2+2) {
		return ""
	}
	return best
}
