package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/xpyvent/xpyvent-api/internal/auth"
	"github.com/xpyvent/xpyvent-api/internal/domain/user"
	"github.com/xpyvent/xpyvent-api/internal/logger"
	"github.com/xpyvent/xpyvent-api/internal/response"
	"github.com/xpyvent/xpyvent-api/internal/storage/postgres"
	"github.com/xpyvent/xpyvent-api/internal/validation"
)

type UserHandler struct {
	store postgres.RepositoryContainer
	log   *log.Logger
}

func NewUserHandler(store postgres.RepositoryContainer) *UserHandler {
	return &UserHandler{
		store: store,
		log:   logger.Handler("user"),
	}
}

type CreateUserRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type CreateUserResponse struct {
	Success bool              `json:"success"`
	UserID  string            `json:"userId,omitempty"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// CreateUser handles POST /user/create.
// The user row and its optional profile row are written in one transaction.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	_, err := h.store.Users().GetByEmail(req.Email)
	if err == nil {
		c.JSON(http.StatusOK, CreateUserResponse{
			Success: false,
			Message: "Email already in use",
			Errors:  map[string]string{"email": "This email is already associated with another account."},
		})
		return
	}
	if !errors.Is(err, postgres.ErrNotFound) {
		h.log.Error("Failed to check existing user", "error", err)
		response.InternalError(c, err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Error("Failed to hash password", "error", err)
		response.InternalError(c, err.Error())
		return
	}

	newUser := user.NewUser(req.Email, hash)
	err = h.store.WithTransaction(func(tx postgres.RepositoryContainer) error {
		if err := tx.Users().Create(newUser); err != nil {
			return err
		}

		// a profile row exists only when at least one name field was supplied
		if req.FirstName != "" || req.LastName != "" {
			return tx.Profiles().Create(user.NewProfile(newUser.ID, req.FirstName, req.LastName))
		}
		return nil
	})
	if err != nil {
		// the unique index is the authoritative duplicate check; a
		// concurrent create slipping past the pre-check lands here
		if errors.Is(err, postgres.ErrDuplicateEmail) {
			c.JSON(http.StatusOK, CreateUserResponse{
				Success: false,
				Message: "Email already in use",
				Errors:  map[string]string{"email": "This email is already associated with another account."},
			})
			return
		}
		h.log.Error("Failed to create user", "error", err)
		response.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, CreateUserResponse{
		Success: true,
		UserID:  newUser.ID.String(),
		Message: "User created successfully",
	})
}

type AuthenticateUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthenticateUserResponse struct {
	Token   string `json:"token,omitempty"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// AuthenticateUser handles POST /user/authenticate.
// The failure message never reveals whether the email or the password was
// wrong, to avoid user enumeration.
func (h *UserHandler) AuthenticateUser(c *gin.Context) {
	var req AuthenticateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	u, err := h.store.Users().GetByEmail(req.Email)
	if err != nil && !errors.Is(err, postgres.ErrNotFound) {
		h.log.Error("Failed to look up user", "error", err)
		response.InternalError(c, err.Error())
		return
	}

	if err == nil && auth.CheckPassword(req.Password, u.PasswordHash) {
		c.JSON(http.StatusOK, AuthenticateUserResponse{
			Token:   auth.PlaceholderToken,
			Message: "Authentication successful.",
			Success: true,
		})
		return
	}

	c.JSON(http.StatusOK, AuthenticateUserResponse{
		Message: "Authentication failed. Incorrect email or password.",
		Success: false,
	})
}

type UserProfileResponse struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// GetUserProfile handles GET /user/profile/{userId}.
// Absence of either the user or its profile propagates as a fault.
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	userID := c.Param("userId")
	if err := validation.ValidateUUID(userID, "userId"); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.store.Users().GetByID(userID)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.InternalError(c, "User or User Profile not found")
			return
		}
		h.log.Error("Failed to get user", "error", err, "user_id", userID)
		response.InternalError(c, err.Error())
		return
	}

	profile, err := h.store.Profiles().GetByUserID(userID)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.InternalError(c, "User or User Profile not found")
			return
		}
		h.log.Error("Failed to get profile", "error", err, "user_id", userID)
		response.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, UserProfileResponse{
		UserID:    u.ID.String(),
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	})
}

type UpdateProfileRequest struct {
	UserID        string `json:"userId" binding:"required"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email" binding:"required"`
	ContactNumber string `json:"contactNumber"`
}

type UpdateProfileResponse struct {
	Success       bool           `json:"success"`
	UserID        string         `json:"user_id"`
	Message       string         `json:"message"`
	UpdatedFields map[string]any `json:"updated_fields"`
}

// UpdateProfile handles PUT /user/profile/update.
// Name fields are diffed against the stored profile; contactNumber is
// written whenever a non-empty value is supplied; an email change is
// checked for uniqueness first.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := validation.ValidateUUID(req.UserID, "userId"); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.store.Users().GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.InternalError(c, "User with id "+req.UserID+" does not exist.")
			return
		}
		h.log.Error("Failed to get user", "error", err, "user_id", req.UserID)
		response.InternalError(c, err.Error())
		return
	}

	updatedFields := map[string]any{}

	profile, err := h.store.Profiles().GetByUserID(req.UserID)
	if err != nil && !errors.Is(err, postgres.ErrNotFound) {
		h.log.Error("Failed to get profile", "error", err, "user_id", req.UserID)
		response.InternalError(c, err.Error())
		return
	}
	if err == nil {
		var update postgres.ProfileUpdate
		if req.FirstName != profile.FirstName {
			update.FirstName = &req.FirstName
			updatedFields["firstName"] = req.FirstName
		}
		if req.LastName != profile.LastName {
			update.LastName = &req.LastName
			updatedFields["lastName"] = req.LastName
		}
		if req.ContactNumber != "" {
			update.ContactNumber = &req.ContactNumber
			updatedFields["contactNumber"] = req.ContactNumber
		}

		if err := h.store.Profiles().Update(req.UserID, update); err != nil {
			h.log.Error("Failed to update profile", "error", err, "user_id", req.UserID)
			response.InternalError(c, err.Error())
			return
		}
	}

	if req.Email != u.Email {
		_, err := h.store.Users().GetByEmail(req.Email)
		if err == nil {
			c.JSON(http.StatusOK, UpdateProfileResponse{
				Success:       false,
				UserID:        req.UserID,
				Message:       "Email already in use, please choose a different one.",
				UpdatedFields: map[string]any{},
			})
			return
		}
		if !errors.Is(err, postgres.ErrNotFound) {
			h.log.Error("Failed to check email uniqueness", "error", err)
			response.InternalError(c, err.Error())
			return
		}

		if err := h.store.Users().UpdateEmail(req.UserID, req.Email); err != nil {
			if errors.Is(err, postgres.ErrDuplicateEmail) {
				c.JSON(http.StatusOK, UpdateProfileResponse{
					Success:       false,
					UserID:        req.UserID,
					Message:       "Email already in use, please choose a different one.",
					UpdatedFields: map[string]any{},
				})
				return
			}
			h.log.Error("Failed to update email", "error", err, "user_id", req.UserID)
			response.InternalError(c, err.Error())
			return
		}
		updatedFields["email"] = req.Email
	}

	c.JSON(http.StatusOK, UpdateProfileResponse{
		Success:       true,
		UserID:        req.UserID,
		Message:       "Profile updated successfully.",
		UpdatedFields: updatedFields,
	})
}
