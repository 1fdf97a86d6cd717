package dto

type RegisterRequest struct {
	Role                string `json:"role" validate:"required,oneof=seeker contributor moderator"`
	FullName            string `json:"full_name" validate:"required,min=3"`
	Email               string `json:"email" validate:"required,email"`
	Phone               string `json:"phone" validate:"omitempty,min=7"`
	CulturalAffiliation string `json:"cultural_affiliation" validate:"omitempty,max=64"`
	Password            string `json:"password" validate:"required,min=8"`
	TermsAgreed         bool   `json:"terms_agreed" validate:"required"`
	EthicsAgreed        bool   `json:"ethics_agreed" validate:"required"`
	NewsletterAgreed    bool   `json:"newsletter_agreed"`
}

// RegisterResponse mirrors LoginResponse: registration logs the new user
// straight in.
type RegisterResponse struct {
	Token string              `json:"token"`
	User  UserProfileResponse `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string              `json:"token"`
	User  UserProfileResponse `json:"user"`
}
