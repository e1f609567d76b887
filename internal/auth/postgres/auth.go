package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/frahmantamala/shift-roster/internal/auth"
	userDatamodel "github.com/frahmantamala/shift-roster/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetPasswordForEmail(email string) (string, int64, error) {
	var passwordHash string
	var userID int64
	query := `SELECT id, password_hash FROM users WHERE email = ? AND is_active = true`

	row := r.db.Raw(query, email).Row()
	if err := row.Scan(&userID, &passwordHash); err != nil {
		if err == sql.ErrNoRows {
			return "", 0, auth.ErrInvalidCredentials
		}
		return "", 0, err
	}
	return passwordHash, userID, nil
}

func (r *Repository) GetUserByID(userID int64) (*auth.User, error) {
	var row userDatamodel.User
	err := r.db.Where("id = ? AND is_active = true", userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrProfileNotFound
		}
		return nil, err
	}

	return &auth.User{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		Role:      row.Role,
		ManagerID: row.ManagerID,
	}, nil
}

func (r *Repository) GetManagerIDByEmail(email string) (int64, error) {
	var id int64
	query := `SELECT id FROM users WHERE email = ? AND role = ? AND is_active = true`

	row := r.db.Raw(query, email, auth.RoleManager).Row()
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return 0, auth.ErrManagerNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *Repository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CreateUser(u *auth.User, passwordHash string) error {
	row := &userDatamodel.User{
		Email:        u.Email,
		FullName:     u.FullName,
		PasswordHash: passwordHash,
		Role:         u.Role,
		ManagerID:    u.ManagerID,
		IsActive:     true,
	}

	if err := r.db.Create(row).Error; err != nil {
		// Unique index on email; a racing duplicate shows up here rather
		// than in the pre-check.
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return auth.ErrAlreadyRegistered
		}
		return err
	}

	u.ID = row.ID
	return nil
}
