package model

// ProfileInfo holds contact metadata for a profile. At most one record
// exists per profile value; updates replace every field.
type ProfileInfo struct {
	Profile   string `bson:"profile" json:"profile"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`
	Languages string `bson:"languages" json:"languages"`
}
