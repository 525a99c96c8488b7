package models

// Doctor is a registered practitioner record. The client only ever submits
// field subsets for updates; the full record is remote-owned.
type Doctor struct {
	ID                  string   `json:"_id"`
	FirebaseID          string   `json:"firebaseId"`
	Email               string   `json:"email"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	District            string   `json:"district"`
	Region              string   `json:"region"`
	City                string   `json:"city"`
	Address             string   `json:"address"`
	Img                 string   `json:"img"`
	Hospital            string   `json:"hospital"`
	Speciality          string   `json:"speciality"`
	Specialities        []string `json:"specialities"`
	University          string   `json:"university"`
	CountryUniversity   string   `json:"countryUniversity"`
	Phone               string   `json:"phone"`
	IsPhoneHidden       bool     `json:"isPhoneHidden"`
	Lat                 float64  `json:"lat"`
	Lng                 float64  `json:"lng"`
	Years               int      `json:"years"`
	Bio                 string   `json:"bio"`
	Sex                 string   `json:"sex"`
	IsActive            bool     `json:"isActive"`
	OrderNumber         string   `json:"orderNumber"`
	IsOrderNumberHidden bool     `json:"isOrderNumberHidden"`
	DeviceID            string   `json:"deviceId"`
	Promotion           string   `json:"promotion"`
	KycStatus           string   `json:"kycStatus"`
	CreatedAt           string   `json:"createdAt"`
	UpdatedAt           string   `json:"updatedAt"`
}

// Verification is a KYC identity-verification request submitted by a doctor.
type Verification struct {
	ID             string `json:"_id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DocumentNumber string `json:"documentNumber"`
	DocumentType   string `json:"documentType"`
	Recto          string `json:"recto"`
	Verso          string `json:"verso"`
	Picture        string `json:"picture"`
	User           string `json:"user"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// AccountDeletion is a doctor's request to delete their account.
type AccountDeletion struct {
	ID        string `json:"_id"`
	UserID    string `json:"userId"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Speciality is a medical speciality label.
type Speciality struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// SpecialityPayload is the field subset submitted on create/update.
type SpecialityPayload struct {
	Name string `json:"name"`
}
