package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are distinct and can be
// checked with errors.Is()
func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrOutOfBounds, ErrGameOver, ErrNoPiece, ErrWrongTurn, ErrKingCapture,
		ErrIllegalMove, ErrSelfCheck, ErrCastlingDenied, ErrInvalidPromotion,
		ErrNoHistory, ErrInvalidFEN, ErrInvalidSquare, ErrInvalidConfig,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if got := errors.Is(a, b); got != (i == j) {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", a, b, got, i == j)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to load position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
		want     string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:  ErrSelfCheck,
				Move: "e1e2",
				Side: "White",
				Ply:  12,
			},
			contains: []string{"ply 12", "White", "e1e2", "leaves king in check"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrNoPiece},
			contains: []string{"no piece"},
			want:     "no piece on source square",
		},
		{
			name:     "no underlying error",
			err:      &MoveError{Move: "a2a3"},
			contains: []string{"a2a3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
			if tt.want != "" && msg != tt.want {
				t.Errorf("MoveError.Error() = %q, want %q", msg, tt.want)
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{
		Err:  ErrWrongTurn,
		Move: "e7e5",
	}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrWrongTurn) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrWrongTurn)
	}

	if !errors.Is(moveErr, ErrWrongTurn) {
		t.Error("errors.Is(moveErr, ErrWrongTurn) = false, want true")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:  ErrCastlingDenied,
		Move: "e1g1",
		Ply:  9,
	}

	wrapped := fmt.Errorf("session: %w", moveErr)

	var extractedErr *MoveError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}

	if extractedErr.Ply != 9 {
		t.Errorf("extractedErr.Ply = %d, want 9", extractedErr.Ply)
	}
	if extractedErr.Move != "e1g1" {
		t.Errorf("extractedErr.Move = %q, want %q", extractedErr.Move, "e1g1")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "loading position") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d of game %d", 15, 3)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
