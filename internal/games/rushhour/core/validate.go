package core

import "fmt"

// ValidationError contains details about an invalid configuration.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validation error codes.
const (
	CodeInvalidName        = "INVALID_NAME"
	CodeDuplicateName      = "DUPLICATE_NAME"
	CodeInvalidOrientation = "INVALID_ORIENTATION"
	CodeInvalidLength      = "INVALID_LENGTH"
	CodeOutOfBounds        = "OUT_OF_BOUNDS"
	CodeOverlap            = "OVERLAP"
	CodeMissingTarget      = "MISSING_TARGET"
	CodeTargetOrientation  = "TARGET_ORIENTATION"
	CodeTargetRow          = "TARGET_ROW"
	CodeInvalidExitRow     = "INVALID_EXIT_ROW"
)

// Validate checks a set of vehicles against the board invariants.
// Checks, in order:
//   - exit row lies on the grid
//   - names are printable, single-byte and unique
//   - orientation is h or v and length is 2 or 3
//   - every vehicle fits on the grid
//   - no two vehicles share a cell
//   - the target exists, is horizontal and sits on the exit row
func Validate(vehicles []Vehicle, exitRow int) error {
	if exitRow < 0 || exitRow >= Size {
		return ValidationError{
			Code:    CodeInvalidExitRow,
			Message: fmt.Sprintf("exit row %d outside 0..%d", exitRow, Size-1),
		}
	}

	seen := make(map[byte]bool, len(vehicles))
	for _, v := range vehicles {
		if err := validateVehicle(v); err != nil {
			return err
		}
		if seen[v.Name] {
			return ValidationError{
				Code:    CodeDuplicateName,
				Message: fmt.Sprintf("vehicle %q appears more than once", v.Name),
			}
		}
		seen[v.Name] = true
	}

	if err := validateOverlap(vehicles); err != nil {
		return err
	}

	return validateTarget(vehicles, exitRow)
}

// validateVehicle checks a single vehicle in isolation.
func validateVehicle(v Vehicle) error {
	if v.Name < '!' || v.Name > '~' || v.Name == EmptyCell {
		return ValidationError{
			Code:    CodeInvalidName,
			Message: fmt.Sprintf("vehicle name %#x is not a printable identifier", v.Name),
		}
	}
	if !v.Orientation.Normalize().Valid() {
		return ValidationError{
			Code:    CodeInvalidOrientation,
			Message: fmt.Sprintf("vehicle %q has orientation %q, want h or v", v.Name, byte(v.Orientation)),
		}
	}
	if v.Length != 2 && v.Length != 3 {
		return ValidationError{
			Code:    CodeInvalidLength,
			Message: fmt.Sprintf("vehicle %q has length %d, want 2 or 3", v.Name, v.Length),
		}
	}
	if !C(v.X, v.Y).InBounds() || !v.Tail().InBounds() {
		return ValidationError{
			Code:    CodeOutOfBounds,
			Message: fmt.Sprintf("vehicle %s does not fit on the %dx%d grid", v, Size, Size),
		}
	}
	return nil
}

// validateOverlap checks that occupied cells are pairwise disjoint.
func validateOverlap(vehicles []Vehicle) error {
	owner := make(map[Coord]byte)
	for _, v := range vehicles {
		for _, c := range v.Cells() {
			if other, taken := owner[c]; taken {
				return ValidationError{
					Code:    CodeOverlap,
					Message: fmt.Sprintf("vehicles %q and %q both occupy %s", other, v.Name, c),
				}
			}
			owner[c] = v.Name
		}
	}
	return nil
}

// validateTarget checks the target vehicle can reach the exit at all.
func validateTarget(vehicles []Vehicle, exitRow int) error {
	for _, v := range vehicles {
		if v.Name != Target {
			continue
		}
		if v.Orientation.Normalize() != Horizontal {
			return ValidationError{
				Code:    CodeTargetOrientation,
				Message: fmt.Sprintf("target %q must be horizontal", v.Name),
			}
		}
		if v.Y != exitRow {
			return ValidationError{
				Code:    CodeTargetRow,
				Message: fmt.Sprintf("target %q is on row %d, exit is on row %d", v.Name, v.Y, exitRow),
			}
		}
		return nil
	}
	return ValidationError{
		Code:    CodeMissingTarget,
		Message: fmt.Sprintf("no vehicle named %q", Target),
	}
}
