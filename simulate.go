package gpa

import "fmt"

// OpType is a typed string for identifying simulation operations.
type OpType string

// Operation types used in what-if simulations.
const (
	OpTransfer OpType = "transfer"
	OpAddition OpType = "addition"
)

// Operation is a single what-if edit of a credit distribution.
//
// Operations are pure: Apply returns a fresh distribution and never touches
// its input, so several simulation branches can be explored from the same
// snapshot.
type Operation interface {
	What() OpType // What returns the operation type (e.g. "transfer").
	Apply(Distribution) (Distribution, error)
}

// InvalidGradeError reports a simulation operation that references a grade
// outside the grading scale.
type InvalidGradeError struct {
	Grade string
}

func (e *InvalidGradeError) Error() string {
	return fmt.Sprintf("invalid grade %q", e.Grade)
}

// InsufficientCreditsError reports a transfer requesting more credits than
// the source grade holds.
type InsufficientCreditsError struct {
	Grade     Grade
	Requested int
	Available int
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits under %s: requested %d, available %d", e.Grade, e.Requested, e.Available)
}

// Transfer moves credits from one grade to another. It models retaking a
// course for a better result: the course's credits change bucket, the total
// stays the same.
type Transfer struct {
	From    Grade
	To      Grade
	Credits int
}

// What returns the operation type.
func (t Transfer) What() OpType { return OpTransfer }

// Apply moves t.Credits from t.From to t.To in a copy of dist. A grade
// absent from dist holds zero credits; asking for more than the source
// balance fails with InsufficientCreditsError and leaves dist untouched.
func (t Transfer) Apply(dist Distribution) (Distribution, error) {
	if !t.From.Valid() {
		return nil, &InvalidGradeError{Grade: string(t.From)}
	}
	if !t.To.Valid() {
		return nil, &InvalidGradeError{Grade: string(t.To)}
	}
	if t.Credits < 0 {
		return nil, fmt.Errorf("negative credits %d", t.Credits)
	}
	if available := dist[t.From]; t.Credits > available {
		return nil, &InsufficientCreditsError{Grade: t.From, Requested: t.Credits, Available: available}
	}
	out := dist.Clone()
	if t.Credits > 0 {
		out[t.From] -= t.Credits
		out[t.To] += t.Credits
	}
	return out, nil
}

// Addition introduces new credits under a grade. It models a course not yet
// taken: the total grows by the added credits.
type Addition struct {
	Grade   Grade
	Credits int
}

// What returns the operation type.
func (a Addition) What() OpType { return OpAddition }

// Apply adds a.Credits under a.Grade in a copy of dist.
func (a Addition) Apply(dist Distribution) (Distribution, error) {
	if !a.Grade.Valid() {
		return nil, &InvalidGradeError{Grade: string(a.Grade)}
	}
	if a.Credits < 0 {
		return nil, fmt.Errorf("negative credits %d", a.Credits)
	}
	out := dist.Clone()
	if a.Credits > 0 {
		out[a.Grade] += a.Credits
	}
	return out, nil
}

// ApplyChain applies the operations strictly in the order given, each one on
// the result of the previous. The first failure aborts the whole chain: no
// partial result escapes, and the error names the failing operation by its
// position in the chain.
//
// Chains are order sensitive when operations share a source grade; replaying
// the same chain against the same snapshot always gives the same result.
func ApplyChain(dist Distribution, ops ...Operation) (Distribution, error) {
	out := dist.Clone()
	for i, op := range ops {
		var err error
		out, err = op.Apply(out)
		if err != nil {
			return nil, fmt.Errorf("operation %d of %d (%s): %w", i+1, len(ops), op.What(), err)
		}
	}
	return out, nil
}
