package domain

import "strings"

// GuestDetails holds the personal information entered on the guest-details
// step of the wizard. All fields except SpecialRequest are required.
type GuestDetails struct {
	FirstName      string
	LastName       string
	Email          string
	Mobile         string
	Address        string
	City           string
	State          string
	Country        string
	ZipCode        string
	SpecialRequest string
}

// MissingFields returns the names of required fields that are empty.
func (g GuestDetails) MissingFields() []string {
	var missing []string

	required := []struct {
		name  string
		value string
	}{
		{"first_name", g.FirstName},
		{"last_name", g.LastName},
		{"email", g.Email},
		{"mobile", g.Mobile},
		{"address", g.Address},
		{"city", g.City},
		{"state", g.State},
		{"country", g.Country},
		{"zip_code", g.ZipCode},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}

	return missing
}
