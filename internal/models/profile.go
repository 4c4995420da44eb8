package models

// Profile is the single store profile of an installation.
type Profile struct {
	StoreName      string  `json:"storeName"`
	OwnerName      string  `json:"ownerName"`
	OpeningBalance float64 `json:"openingBalance"`
}

// ProfileUpdate is a partial profile update. Nil fields are left unchanged.
type ProfileUpdate struct {
	StoreName      *string  `json:"storeName,omitempty"`
	OwnerName      *string  `json:"ownerName,omitempty"`
	OpeningBalance *float64 `json:"openingBalance,omitempty"`
}

// Apply returns p with the non-nil fields of u merged in.
func (u ProfileUpdate) Apply(p Profile) Profile {
	if u.StoreName != nil {
		p.StoreName = *u.StoreName
	}
	if u.OwnerName != nil {
		p.OwnerName = *u.OwnerName
	}
	if u.OpeningBalance != nil {
		p.OpeningBalance = *u.OpeningBalance
	}
	return p
}
