package dto

import (
	"checklist/internal/domains/user/model"
	"checklist/shared/avatar"

	"github.com/google/uuid"
)

type SignupRequest struct {
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=2,max=100"`
	AvatarSeed   string `json:"avatarSeed" validate:"omitempty,max=100"`
}

// ToModel builds the user entity, generating an avatar seed when the client
// did not pick one.
func (r *SignupRequest) ToModel() model.User {
	seed := r.AvatarSeed
	if seed == "" {
		seed = avatar.RandomSeed()
	}

	return model.User{
		ID:           uuid.NewString(),
		EmailAddress: r.EmailAddress,
		AvatarSeed:   seed,
	}
}

type LoginRequest struct {
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
}

type PatchUserRequest struct {
	EmailAddress *string `json:"emailAddress" validate:"omitempty,email"`
	AvatarSeed   *string `json:"avatarSeed" validate:"omitempty,max=100"`
}

func (r *PatchUserRequest) ToPatch() model.UserPatch {
	return model.UserPatch{
		EmailAddress: r.EmailAddress,
		AvatarSeed:   r.AvatarSeed,
	}
}

// SessionResponse is returned by signup and login.
type SessionResponse struct {
	SessionID string `json:"sessionId"`
}

// CurrentSessionResponse resolves a session id to its user.
type CurrentSessionResponse struct {
	UserID string `json:"userId"`
}

type UserResponse struct {
	ID           string `json:"id"`
	EmailAddress string `json:"emailAddress"`
	AvatarSeed   string `json:"avatarSeed,omitempty"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.EmailAddress = user.EmailAddress
	r.AvatarSeed = user.AvatarSeed
	if user.AvatarSeed != "" {
		r.AvatarURL = avatar.URL(user.AvatarSeed)
	}
}
