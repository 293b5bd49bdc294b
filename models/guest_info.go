package models

// RoomPreferences carries optional room wishes collected on the guest form.
type RoomPreferences struct {
	BedType      string `json:"bedType,omitempty"`
	Smoking      bool   `json:"smoking,omitempty"`
	EarlyCheckIn bool   `json:"earlyCheckIn,omitempty"`
	LateCheckOut bool   `json:"lateCheckOut,omitempty"`
}

// GuestInfo is the lead guest captured on step one. Once submitted it is
// immutable except via an explicit edit transition back to the guest step.
type GuestInfo struct {
	FirstName       string           `json:"firstName" validate:"required,min=2"`
	LastName        string           `json:"lastName" validate:"required,min=2"`
	Email           string           `json:"email" validate:"required,email"`
	CountryCode     string           `json:"countryCode" validate:"required"`
	Phone           string           `json:"phone" validate:"required,number,min=10,max=15"`
	SpecialRequests string           `json:"specialRequests,omitempty" validate:"max=500"`
	Preferences     *RoomPreferences `json:"preferences,omitempty"`
	TermsAgreed     bool             `json:"termsAgreed" validate:"eq=true"`
}

// FullName joins the guest's first and last name for display and handoffs.
func (g GuestInfo) FullName() string {
	return g.FirstName + " " + g.LastName
}
