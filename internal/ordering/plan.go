package ordering

import "fmt"

// Step names the role a write plays inside an operation
type Step int

const (
	StepLink     Step = iota // point the previous tail at a freshly inserted member
	StepDetach               // clear the moving member's successor
	StepBypass               // point the old predecessor at the old successor
	StepSplice               // point the new predecessor at the moving member
	StepFinalize             // set the moving member's group and successor
	StepRemove               // physically delete the member
)

func (s Step) String() string {
	switch s {
	case StepLink:
		return "link"
	case StepDetach:
		return "detach"
	case StepBypass:
		return "bypass"
	case StepSplice:
		return "splice"
	case StepFinalize:
		return "finalize"
	case StepRemove:
		return "remove"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Cond selects at most one row.
// With ID set it is a point lookup; otherwise it matches the member of Group
// whose successor equals Next (the tail when Next is nil), skipping Exclude.
type Cond[K, G comparable] struct {
	ID      *K
	Group   G
	Next    *K
	Exclude *K
}

// ByID selects the row with the given id
func ByID[K, G comparable](id K) Cond[K, G] {
	return Cond[K, G]{ID: &id}
}

// ByNext selects the row of group whose successor is next
func ByNext[K, G comparable](group G, next *K, exclude *K) Cond[K, G] {
	return Cond[K, G]{Group: group, Next: clonePtr(next), Exclude: clonePtr(exclude)}
}

// Matches reports whether n satisfies the condition
func (c Cond[K, G]) Matches(n Node[K, G]) bool {
	if c.ID != nil {
		return n.ID == *c.ID
	}
	if n.Group != c.Group {
		return false
	}
	if c.Exclude != nil && n.ID == *c.Exclude {
		return false
	}
	if c.Next == nil {
		return n.Next == nil
	}
	return n.PointsAt(*c.Next)
}

// Write is one conditional update or delete.
// SetNext is the new successor (nil makes the row a tail) and is ignored for deletes.
type Write[K, G comparable] struct {
	Step     Step
	Where    Cond[K, G]
	SetNext  *K
	SetGroup *G
	Delete   bool
}

// PlanAppend links the current tail of group to a member that was just inserted
// with no successor. When the group was empty the write matches nothing.
func PlanAppend[K, G comparable](group G, id K) []Write[K, G] {
	return []Write[K, G]{
		{Step: StepLink, Where: ByNext[K](group, nil, &id), SetNext: ptr(id)},
	}
}

// PlanRelink moves target so that it sits immediately before newNext inside
// newGroup, or at the tail of newGroup when newNext is nil.
//
// The writes are ordered so that no two members of a group point at the same
// successor after any single write.
func PlanRelink[K, G comparable](target Node[K, G], newGroup G, newNext *K) ([]Write[K, G], error) {
	if newNext != nil && *newNext == target.ID {
		return nil, ErrSelfReference
	}

	finalize := Write[K, G]{Step: StepFinalize, Where: ByID[K, G](target.ID), SetNext: clonePtr(newNext)}
	if newGroup != target.Group {
		finalize.SetGroup = ptr(newGroup)
	}

	return []Write[K, G]{
		{Step: StepDetach, Where: ByID[K, G](target.ID)},
		{Step: StepBypass, Where: ByNext(target.Group, &target.ID, nil), SetNext: clonePtr(target.Next)},
		{Step: StepSplice, Where: ByNext(newGroup, newNext, &target.ID), SetNext: ptr(target.ID)},
		finalize,
	}, nil
}

// PlanUnlink takes target out of its chain and deletes it.
// If the sequence stops after the bypass the group is still a valid chain
// that merely skips a row which is no longer referenced.
func PlanUnlink[K, G comparable](target Node[K, G]) []Write[K, G] {
	return []Write[K, G]{
		{Step: StepDetach, Where: ByID[K, G](target.ID)},
		{Step: StepBypass, Where: ByNext(target.Group, &target.ID, nil), SetNext: clonePtr(target.Next)},
		{Step: StepRemove, Where: ByID[K, G](target.ID), Delete: true},
	}
}

// Apply runs writes against an in-memory copy of rows.
// Each write touches the first matching row only, mirroring a store that
// updates "the row matching a predicate" with a LIMIT 1 subselect.
func Apply[K, G comparable](rows []Node[K, G], writes []Write[K, G]) ([]Node[K, G], []Result[K, G]) {
	out := make([]Node[K, G], len(rows))
	for i, n := range rows {
		out[i] = Node[K, G]{ID: n.ID, Group: n.Group, Next: clonePtr(n.Next)}
	}

	results := make([]Result[K, G], 0, len(writes))
	for _, w := range writes {
		idx := -1
		for i, n := range out {
			if w.Where.Matches(n) {
				idx = i
				break
			}
		}
		if idx < 0 {
			results = append(results, Result[K, G]{Write: w, Outcome: NoOp})
			continue
		}

		if w.Delete {
			out = append(out[:idx], out[idx+1:]...)
		} else {
			out[idx].Next = clonePtr(w.SetNext)
			if w.SetGroup != nil {
				out[idx].Group = *w.SetGroup
			}
		}
		results = append(results, Result[K, G]{Write: w, Outcome: Applied})
	}

	return out, results
}
