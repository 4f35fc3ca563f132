package repository

import (
	"context"                       // Request-scoped cancellation
	"fmt"                           // Error wrapping
	"music_library/internal/apperr" // Typed failures
	"music_library/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// UserFilter holds the equality filters of a user listing
type UserFilter struct {
	Role domain.Role
}

// UserRepository reads and writes user accounts
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns users matching the filter, newest first
func (r *UserRepository) List(ctx context.Context, filter UserFilter, page Page) ([]domain.User, error) {
	query := r.db.WithContext(ctx).Model(&domain.User{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role) // Filter by role
	}
	var users []domain.User
	if err := query.Order("created_at desc").Order("id").Scopes(paginate(page)).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// GetByID returns the user with the given id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByEmail returns the user with the given email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserRepository) first(ctx context.Context, cond string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("User not found.")
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return &user, nil
}

// Register inserts a self-registered account. The role is decided inside the
// insert: admin when no user exists yet, viewer otherwise.
func (r *UserRepository) Register(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	ts := now()
	id := domain.NewID()
	res := r.db.WithContext(ctx).Exec(
		`INSERT INTO users (id, email, password, role, created_at, updated_at)
		SELECT ?, ?, ?, CASE WHEN EXISTS (SELECT 1 FROM users) THEN ? ELSE ? END, ?, ?`,
		id, email, passwordHash, domain.RoleViewer, domain.RoleAdmin, ts, ts,
	)
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return nil, apperr.AlreadyExists("Email")
		}
		return nil, fmt.Errorf("registering user: %w", res.Error)
	}
	return r.GetByID(ctx, id)
}

// Create inserts an account with an explicit role
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string, role domain.Role) (*domain.User, error) {
	user := &domain.User{Email: email, Password: passwordHash, Role: role}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicate(err) {
			return nil, apperr.AlreadyExists("Email")
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// Delete removes a user on behalf of callerID. Admin accounts and the
// caller's own account are excluded by the statement itself; when nothing is
// deleted the row is inspected only to report why.
func (r *UserRepository) Delete(ctx context.Context, id, callerID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND role <> ? AND id <> ?", id, domain.RoleAdmin, callerID).
		Delete(&domain.User{})
	if res.Error != nil {
		return fmt.Errorf("deleting user: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleAdmin {
		return apperr.Forbidden("Cannot delete admin user.")
	}
	if user.ID == callerID {
		return apperr.Forbidden("Cannot delete your own account.")
	}
	return apperr.NotFound("User not found.")
}

// UpdatePassword stores a new password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).
		Updates(map[string]any(patch{"password": passwordHash, "updated_at": now()}))
	if res.Error != nil {
		return fmt.Errorf("updating password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("User not found.")
	}
	return nil
}
