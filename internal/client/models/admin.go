// Package models holds the remote-owned records exchanged with the
// AlloDocta directory API and the payload subsets the client submits.
// Identity (`_id`) and timestamps always originate on the server.
package models

// Admin is the back-office staff profile returned by /me.
type Admin struct {
	ID          string   `json:"_id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Img         string   `json:"img,omitempty"`
	Email       string   `json:"email"`
	Permissions []string `json:"permissions"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// AuthUser is the compact profile returned alongside the token on login.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// MainStats are the aggregate counters shown on the dashboard.
type MainStats struct {
	Doctors      int `json:"doctors"`
	Pharmacies   int `json:"pharmacies"`
	Ads          int `json:"ads"`
	Medecines    int `json:"medecines"`
	Regions      int `json:"regions"`
	Cities       int `json:"cities"`
	Articles     int `json:"articles"`
	Specialities int `json:"specilities"`
	Kyc          int `json:"kyc"`
}
