package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hsinyu-lin/trackdesk/internal/api/middleware"
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
	"github.com/hsinyu-lin/trackdesk/internal/repository"
	"github.com/hsinyu-lin/trackdesk/pkg/storage"
	"github.com/hsinyu-lin/trackdesk/pkg/utils"
)

const profileImgFolder = "profile-img"

var validate = validator.New()

// strongPassword requires at least 8 characters carrying an upper, a
// lower, a digit and a symbol.
func strongPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

type UserService struct {
	Repos  *repository.Repos
	Images storage.ImageStore
}

func NewUserService(repos *repository.Repos, images storage.ImageStore) *UserService {
	return &UserService{Repos: repos, Images: images}
}

// Signup registers a new account and issues a session token. The role
// tier is classified exactly once here; "superadmin" accounts come out
// as admins.
func (s *UserService) Signup(c *gin.Context, input user.SignupInput) (user.User, string, error) {
	// Emails are lowercased once; the uniqueness check and the stored
	// row see the same value.
	email := strings.ToLower(input.Email)
	if err := validate.Var(email, "required,email"); err != nil {
		return user.User{}, "", ErrInvalidEmail
	}
	if !strongPassword(input.Password) {
		return user.User{}, "", ErrWeakPassword
	}
	if input.Password != input.ConfirmPassword {
		return user.User{}, "", ErrPasswordMismatch
	}

	if _, err := s.Repos.User.GetByEmail(email); err == nil {
		return user.User{}, "", ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, "", err
	}
	if _, err := s.Repos.User.GetByUsername(input.Username); err == nil {
		return user.User{}, "", ErrUsernameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	usr := user.User{
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     email,
		Password:  string(hashed),
		Role:      user.ClassifyRole(email, input.Username),
	}
	if err := s.Repos.User.Create(&usr); err != nil {
		return user.User{}, "", err
	}

	token, err := middleware.GenerateToken(usr.UID, usr.Username, string(usr.Role), 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}

	utils.LogAuditWithConsole(c, "signup", "user", usr.Username, nil, usr, s.Repos.Audit)

	return usr, token, nil
}

// Login matches the credential against email or username.
func (s *UserService) Login(login, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetByLogin(login)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.UID, usr.Username, string(usr.Role), 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

// GetByUsername hides superadmin accounts from non-admin actors.
func (s *UserService) GetByUsername(actor user.User, username string) (user.User, error) {
	if actor.Role != user.RoleAdmin && strings.Contains(strings.ToLower(username), "superadmin") {
		return user.User{}, forbidden("you don't have permission to access superadmin details")
	}
	usr, err := s.Repos.User.GetByUsername(username)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	return usr, nil
}

// ListUsers is the admin-only listing; admin accounts themselves are
// excluded, newest signup first.
func (s *UserService) ListUsers(actor user.User) ([]user.User, error) {
	if actor.Role != user.RoleAdmin {
		return nil, forbidden("you don't have permission to access this route")
	}
	return s.Repos.User.ListNonAdmins()
}

// UpdateProfile changes the actor's own password and, optionally, the
// profile image. The stored image URL moves only after the new upload
// is confirmed; the previous blob is destroyed first.
func (s *UserService) UpdateProfile(c *gin.Context, actorID uint, input user.UpdateProfileInput) (user.User, error) {
	usr, err := s.Repos.User.GetByID(actorID)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	before := usr

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(input.OldPassword)); err != nil {
		return user.User{}, ErrIncorrectPassword
	}
	if input.NewPassword != input.ConfirmPassword {
		return user.User{}, ErrPasswordMismatch
	}
	if !strongPassword(input.NewPassword) {
		return user.User{}, ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}
	usr.Password = string(hashed)

	if input.ProfileImage != nil {
		url, err := s.replaceImage(c.Request.Context(), profileImgFolder, usr.ProfileImage, *input.ProfileImage)
		if err != nil {
			return user.User{}, err
		}
		usr.ProfileImage = url
	}

	if err := s.Repos.User.Save(&usr); err != nil {
		return user.User{}, err
	}

	utils.LogAuditWithConsole(c, "update", "user", usr.Username, before, usr, s.Repos.Audit)

	return usr, nil
}

// UpdateRole is admin-only; the tier of any user can be changed after
// creation, admins included.
func (s *UserService) UpdateRole(c *gin.Context, actor user.User, username string, role user.Role) (user.User, error) {
	if actor.Role != user.RoleAdmin {
		return user.User{}, forbidden("you don't have permission to update user's role")
	}
	if !role.Valid() {
		return user.User{}, ErrInvalidRole
	}

	usr, err := s.Repos.User.GetByUsername(username)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	before := usr

	usr.Role = role
	if err := s.Repos.User.Save(&usr); err != nil {
		return user.User{}, err
	}

	utils.LogAuditWithConsole(c, "update_role", "user", usr.Username, before, usr, s.Repos.Audit)

	return usr, nil
}

// replaceImage destroys the previous blob (when present), uploads the
// new payload and returns the confirmed URL.
func (s *UserService) replaceImage(ctx context.Context, folder, oldURL, payload string) (string, error) {
	data, contentType, err := storage.DecodeImage(payload)
	if err != nil {
		return "", ErrInvalidImage
	}
	if oldURL != "" {
		if err := s.Images.Destroy(ctx, folder, storage.PublicID(oldURL)); err != nil {
			return "", err
		}
	}
	return s.Images.Upload(ctx, folder, data, contentType)
}
