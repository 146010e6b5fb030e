// internal/domain/models/user.go
package models

import "time"

// User is a citizen account. Names are carried in both scripts; the
// password hash is only set for accounts created through registration
// (the demo citizen logs in without one).
type User struct {
	ID               string    `json:"id"`
	NationalID       string    `json:"national_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	FirstNameArabic  string    `json:"first_name_arabic"`
	LastNameArabic   string    `json:"last_name_arabic"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	DateOfBirth      time.Time `json:"date_of_birth"`
	Gender           string    `json:"gender"` // "male" | "female"
	Nationality      string    `json:"nationality"`
	Address          Address   `json:"address"`
	PasswordHash     string    `json:"-"`
	IsVerified       bool      `json:"is_verified"`
	RegistrationDate time.Time `json:"registration_date"`
}

// Address is the citizen's registered address, bilingual where the
// original registry records both scripts.
type Address struct {
	Street         string `json:"street"`
	StreetArabic   string `json:"street_arabic"`
	Building       string `json:"building"`
	City           string `json:"city"`
	CityArabic     string `json:"city_arabic"`
	District       string `json:"district"`
	DistrictArabic string `json:"district_arabic"`
	PostalCode     string `json:"postal_code"`
}

// FullName returns the citizen's display name in the requested script.
func (u User) FullName(lang Language) string {
	if lang.IsArabic() && u.FirstNameArabic != "" {
		return u.FirstNameArabic + " " + u.LastNameArabic
	}
	return u.FirstName + " " + u.LastName
}
