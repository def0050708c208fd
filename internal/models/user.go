package models

// User is a marketplace member. Email is unique and doubles as the login key.
type User struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	Location      string   `json:"location"`
	Avatar        string   `json:"avatar"`
	Bio           string   `json:"bio"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount   int      `json:"reviewCount" validate:"gte=0"`
	OfferedSkills SkillSet `json:"offeredSkills" validate:"dive"`
	WantedSkills  SkillSet `json:"wantedSkills" validate:"dive"`
	Availability  string   `json:"availability"`
	JoinedDate    string   `json:"joinedDate"`
}

// Clone returns a deep copy so snapshots never share skill slices with the live record.
func (u User) Clone() User {
	u.OfferedSkills = u.OfferedSkills.Clone()
	u.WantedSkills = u.WantedSkills.Clone()
	return u
}

// UserFilter captures search criteria for the user directory.
type UserFilter struct {
	Search string
}
