package models

// FieldState is the display state of one form field.
type FieldState string

const (
	FieldUntouched FieldState = "untouched"
	FieldValid     FieldState = "valid"
	FieldInvalid   FieldState = "invalid"
)

// FieldValidation pairs a field state with the reason when invalid.
type FieldValidation struct {
	State  FieldState `json:"state"`
	Reason string     `json:"reason,omitempty"`
}

// FieldValidationMap maps field names to their validation display state.
// Absence of an entry means the field has not been touched yet.
type FieldValidationMap map[string]FieldValidation

// BuildFieldValidationMap marks every named field valid, then overrides the
// ones present in errs as invalid with their reason.
func BuildFieldValidationMap(fields []string, errs map[string]string) FieldValidationMap {
	out := make(FieldValidationMap, len(fields))
	for _, f := range fields {
		out[f] = FieldValidation{State: FieldValid}
	}
	for f, reason := range errs {
		out[f] = FieldValidation{State: FieldInvalid, Reason: reason}
	}
	return out
}

// HasInvalid reports whether any field in the map failed validation.
func (m FieldValidationMap) HasInvalid() bool {
	for _, v := range m {
		if v.State == FieldInvalid {
			return true
		}
	}
	return false
}
