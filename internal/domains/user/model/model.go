package model

const (
	EntityName        = "user"
	SessionEntityName = "session"

	UserCollectionName     = "users"
	PasswordCollectionName = "passwords"
	SessionCollectionName  = "sessions"
)

type User struct {
	ID           string `bson:"id" json:"id"`
	EmailAddress string `bson:"emailAddress" json:"emailAddress"`
	AvatarSeed   string `bson:"avatarSeed,omitempty" json:"avatarSeed,omitempty"`
}

// PasswordCred holds the hash for exactly one user. It is created together
// with the user and never independently.
type PasswordCred struct {
	UserID       string `bson:"userId" json:"userId"`
	PasswordHash string `bson:"passwordHash" json:"passwordHash"`
}

type Session struct {
	ID     string `bson:"id" json:"id"`
	UserID string `bson:"userId" json:"userId"`
}

// UserPatch is a partial update for a user. The id always comes from the
// existing entity.
type UserPatch struct {
	EmailAddress *string
	AvatarSeed   *string
}

func (p UserPatch) Apply(existing User) User {
	updated := existing
	if p.EmailAddress != nil {
		updated.EmailAddress = *p.EmailAddress
	}
	if p.AvatarSeed != nil {
		updated.AvatarSeed = *p.AvatarSeed
	}

	return updated
}
