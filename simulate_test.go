package gpa

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestTransfer_Apply(t *testing.T) {
	original := Distribution{B: 6, A: 4}

	got, err := Transfer{From: B, To: A, Credits: 6}.Apply(original)
	if err != nil {
		t.Fatalf("Apply() error = %v, want none", err)
	}

	want := Distribution{B: 0, A: 10}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
	if got.CGPA() != 9.0 {
		t.Errorf("CGPA() after transfer = %v, want 9", got.CGPA())
	}
	// Conservation: a transfer moves credits, it never creates or destroys them.
	if got.TotalCredits() != original.TotalCredits() {
		t.Errorf("TotalCredits() after transfer = %d, want %d", got.TotalCredits(), original.TotalCredits())
	}
	// The input snapshot is untouched.
	if !reflect.DeepEqual(original, Distribution{B: 6, A: 4}) {
		t.Errorf("input distribution modified: %v", original)
	}
}

func TestTransfer_InsufficientCredits(t *testing.T) {
	original := Distribution{B: 3}

	_, err := Transfer{From: B, To: A, Credits: 5}.Apply(original)
	var insufficient *InsufficientCreditsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("Apply() error = %v, want an InsufficientCreditsError", err)
	}
	if insufficient.Grade != B || insufficient.Requested != 5 || insufficient.Available != 3 {
		t.Errorf("InsufficientCreditsError = %+v, want grade B requested 5 available 3", insufficient)
	}
	if !reflect.DeepEqual(original, Distribution{B: 3}) {
		t.Errorf("input distribution modified by a failed transfer: %v", original)
	}
}

func TestTransfer_AbsentGradeHoldsZero(t *testing.T) {
	_, err := Transfer{From: F, To: A, Credits: 1}.Apply(Distribution{A: 4})
	var insufficient *InsufficientCreditsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("Apply() error = %v, want an InsufficientCreditsError", err)
	}
	if insufficient.Available != 0 {
		t.Errorf("InsufficientCreditsError.Available = %d, want 0", insufficient.Available)
	}
}

func TestTransfer_InvalidGrade(t *testing.T) {
	testCases := []struct {
		name     string
		transfer Transfer
		want     string
	}{
		{"bad source", Transfer{From: "X", To: A, Credits: 1}, "X"},
		{"bad target", Transfer{From: A, To: "Y", Credits: 1}, "Y"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.transfer.Apply(Distribution{A: 4})
			var invalid *InvalidGradeError
			if !errors.As(err, &invalid) {
				t.Fatalf("Apply() error = %v, want an InvalidGradeError", err)
			}
			if invalid.Grade != tc.want {
				t.Errorf("InvalidGradeError.Grade = %q, want %q", invalid.Grade, tc.want)
			}
		})
	}
}

func TestTransfer_NegativeCredits(t *testing.T) {
	if _, err := (Transfer{From: B, To: A, Credits: -2}).Apply(Distribution{B: 6}); err == nil {
		t.Fatal("Apply() with negative credits succeeded, want an error")
	}
}

func TestTransfer_ZeroCreditsIsNoop(t *testing.T) {
	original := Distribution{A: 4}
	got, err := Transfer{From: B, To: A, Credits: 0}.Apply(original)
	if err != nil {
		t.Fatalf("Apply() error = %v, want none", err)
	}
	if !reflect.DeepEqual(got, original) {
		t.Errorf("Apply() = %v, want %v", got, original)
	}
	got[A] = 99
	if original[A] != 4 {
		t.Errorf("no-op result shares storage with its input: %v", original)
	}
}

func TestAddition_Apply(t *testing.T) {
	original := Distribution{A: 4}

	got, err := Addition{Grade: S, Credits: 3}.Apply(original)
	if err != nil {
		t.Fatalf("Apply() error = %v, want none", err)
	}

	want := Distribution{A: 4, S: 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
	// New work grows the total.
	if got.TotalCredits() != 7 {
		t.Errorf("TotalCredits() after addition = %d, want 7", got.TotalCredits())
	}
	if !reflect.DeepEqual(original, Distribution{A: 4}) {
		t.Errorf("input distribution modified: %v", original)
	}
}

func TestAddition_InvalidGrade(t *testing.T) {
	_, err := Addition{Grade: "Z", Credits: 3}.Apply(Distribution{})
	var invalid *InvalidGradeError
	if !errors.As(err, &invalid) {
		t.Fatalf("Apply() error = %v, want an InvalidGradeError", err)
	}
	if invalid.Grade != "Z" {
		t.Errorf("InvalidGradeError.Grade = %q, want %q", invalid.Grade, "Z")
	}
}

func TestAddition_NegativeCredits(t *testing.T) {
	if _, err := (Addition{Grade: A, Credits: -1}).Apply(Distribution{}); err == nil {
		t.Fatal("Apply() with negative credits succeeded, want an error")
	}
}

func TestAddition_ZeroCreditsIsNoop(t *testing.T) {
	got, err := Addition{Grade: S, Credits: 0}.Apply(Distribution{A: 4})
	if err != nil {
		t.Fatalf("Apply() error = %v, want none", err)
	}
	if !reflect.DeepEqual(got, Distribution{A: 4}) {
		t.Errorf("Apply() = %v, want %v", got, Distribution{A: 4})
	}
}

func TestApplyChain(t *testing.T) {
	original := Distribution{B: 6, C: 3, A: 4}
	ops := []Operation{
		Transfer{From: B, To: A, Credits: 4},
		Transfer{From: C, To: S, Credits: 3},
		Addition{Grade: S, Credits: 2},
	}

	got, err := ApplyChain(original, ops...)
	if err != nil {
		t.Fatalf("ApplyChain() error = %v, want none", err)
	}

	// The chain equals the same operations threaded one by one.
	want := original.Clone()
	for _, op := range ops {
		want, err = op.Apply(want)
		if err != nil {
			t.Fatalf("Apply() error = %v, want none", err)
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ApplyChain() = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(original, Distribution{B: 6, C: 3, A: 4}) {
		t.Errorf("input distribution modified: %v", original)
	}
}

func TestApplyChain_AbortsOnFirstFailure(t *testing.T) {
	original := Distribution{B: 6, A: 4}
	ops := []Operation{
		Transfer{From: B, To: A, Credits: 4},  // fine, leaves B with 2
		Transfer{From: B, To: S, Credits: 5},  // fails, only 2 left
		Addition{Grade: S, Credits: 3},        // never reached
	}

	got, err := ApplyChain(original, ops...)
	if got != nil {
		t.Errorf("ApplyChain() = %v, want no partial result", got)
	}
	var insufficient *InsufficientCreditsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("ApplyChain() error = %v, want an InsufficientCreditsError", err)
	}
	if !strings.Contains(err.Error(), "operation 2 of 3") {
		t.Errorf("ApplyChain() error = %q, want it to name operation 2 of 3", err)
	}
	if !reflect.DeepEqual(original, Distribution{B: 6, A: 4}) {
		t.Errorf("input distribution modified by a failed chain: %v", original)
	}
}

func TestApplyChain_Empty(t *testing.T) {
	original := Distribution{A: 4}
	got, err := ApplyChain(original)
	if err != nil {
		t.Fatalf("ApplyChain() error = %v, want none", err)
	}
	if !reflect.DeepEqual(got, original) {
		t.Errorf("ApplyChain() = %v, want %v", got, original)
	}
	got[A] = 99
	if original[A] != 4 {
		t.Errorf("empty chain result shares storage with its input: %v", original)
	}
}

func TestApplyChain_OrderSensitive(t *testing.T) {
	// Chains sharing a source grade are order sensitive: moving B's
	// credits away first leaves nothing for the second transfer.
	original := Distribution{B: 4}

	if _, err := ApplyChain(original,
		Transfer{From: B, To: A, Credits: 4},
		Transfer{From: A, To: S, Credits: 4},
	); err != nil {
		t.Errorf("ApplyChain() error = %v, want none", err)
	}

	if _, err := ApplyChain(original,
		Transfer{From: A, To: S, Credits: 4},
		Transfer{From: B, To: A, Credits: 4},
	); err == nil {
		t.Error("ApplyChain() succeeded, want a failure when the source is still empty")
	}
}
