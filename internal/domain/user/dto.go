package user

type SignupInput struct {
	Username        string `json:"username" binding:"required"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginInput struct {
	// Login matches against either email or username.
	Login    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileInput struct {
	OldPassword     string  `json:"oldPassword" binding:"required"`
	NewPassword     string  `json:"newPassword" binding:"required"`
	ConfirmPassword string  `json:"confirmPassword" binding:"required"`
	ProfileImage    *string `json:"profileImage,omitempty"`
}

type UpdateRoleInput struct {
	Role Role `json:"role" binding:"required"`
}
