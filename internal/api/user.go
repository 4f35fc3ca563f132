package api

import (
	"music_library/internal/apperr"     // Typed failures
	"music_library/internal/domain"     // Importing domain models
	"music_library/internal/dto"        // Response shapes
	"music_library/internal/repository" // Data access
	"music_library/internal/utils"      // Cache
	"net/http"                          // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
)

type listUsersQuery struct {
	pageQuery
	Role string `form:"role" binding:"omitempty,oneof=editor viewer"`
}

// Request struct for admin-created accounts
type AddUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=editor viewer"` // Admins cannot be created here
}

// Request struct for password changes
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// ListUsersHandler lists accounts, optionally filtered by role (admin only)
func ListUsersHandler(users *repository.UserRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q listUsersQuery
		if !bindQuery(c, &q) {
			return
		}
		ctx := c.Request.Context()
		rows, err := cachedList(ctx, cache, resourceUsers, append(q.cacheParts(), "r"+q.Role), func() ([]dto.User, error) {
			list, err := users.List(ctx, repository.UserFilter{Role: domain.Role(q.Role)}, q.page())
			if err != nil {
				return nil, err
			}
			return dto.Map(list, dto.NewUser), nil
		})
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, rows, "Users retrieved successfully.")
	}
}

// AddUserHandler creates an editor or viewer account (admin only)
func AddUserHandler(users *repository.UserRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddUserRequest
		if !bindJSON(c, &req) {
			return
		}
		hash, err := hashPassword(req.Password)
		if err != nil {
			fail(c, err)
			return
		}
		user, err := users.Create(c.Request.Context(), normalizeEmail(req.Email), hash, domain.Role(req.Role))
		if err != nil {
			fail(c, err)
			return
		}
		invalidate(c.Request.Context(), cache, resourceUsers)
		respond(c, http.StatusCreated, dto.NewUser(*user), "User created successfully.")
	}
}

// DeleteUserHandler removes an account. Admins and the caller are protected.
func DeleteUserHandler(users *repository.UserRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := caller(c)
		if !ok {
			return
		}
		id, ok := bindID(c)
		if !ok {
			return
		}
		if err := users.Delete(c.Request.Context(), id, identity.ID); err != nil {
			fail(c, err)
			return
		}
		// Favorites of the user go with it
		invalidate(c.Request.Context(), cache, resourceUsers, resourceFavorites)
		respond(c, http.StatusOK, nil, "User deleted successfully.")
	}
}

// UpdatePasswordHandler changes the caller's own password
func UpdatePasswordHandler(users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := caller(c)
		if !ok {
			return
		}
		var req UpdatePasswordRequest
		if !bindJSON(c, &req) {
			return
		}
		ctx := c.Request.Context()
		user, err := users.GetByID(ctx, identity.ID)
		if err != nil {
			fail(c, err)
			return
		}
		// Verify the old password before replacing it
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
			fail(c, apperr.BadRequest("Invalid old password."))
			return
		}
		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			fail(c, err)
			return
		}
		if err := users.UpdatePassword(ctx, user.ID, hash); err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, nil, "Password updated successfully.")
	}
}
