package auth

import (
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Service is the main auth service with dependencies
type Service struct {
	userRepo       RepositoryAPI
	tokenGenerator TokenGeneratorAPI
	bcryptCost     int
	logger         *slog.Logger
}

// NewService creates a new auth service
func NewService(userRepo RepositoryAPI, tokenGen TokenGeneratorAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// Authenticate validates credentials and returns tokens
func (s *Service) Authenticate(dto LoginDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	storedHash, userID, err := s.userRepo.GetPasswordForEmail(dto.Email)
	if err != nil {
		return AuthTokens{}, ErrInvalidCredentials
	}

	if err := VerifyPassword(storedHash, dto.Password); err != nil {
		return AuthTokens{}, ErrInvalidCredentials
	}

	accessToken, err := s.tokenGenerator.GenerateAccessToken(userID, dto.Email)
	if err != nil {
		return AuthTokens{}, err
	}

	refreshToken, err := s.tokenGenerator.GenerateRefreshToken(userID, dto.Email)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// SignUp creates the credential and profile row in one step. An associate's
// manager_email must resolve to an existing manager before anything is written.
func (s *Service) SignUp(dto SignupDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.EmailExists(dto.Email)
	if err != nil {
		s.logger.Error("signup: email lookup failed", "error", err)
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyRegistered
	}

	var managerID *int64
	if dto.Role == RoleAssociate {
		id, err := s.userRepo.GetManagerIDByEmail(dto.ManagerEmail)
		if err != nil {
			s.logger.Warn("signup: manager email did not resolve", "manager_email", dto.ManagerEmail, "error", err)
			return nil, ErrManagerNotFound
		}
		managerID = &id
	}

	hash, err := HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:     dto.Email,
		FullName:  dto.FullName,
		Role:      dto.Role,
		ManagerID: managerID,
	}

	if err := s.userRepo.CreateUser(u, hash); err != nil {
		s.logger.Error("signup: failed to create user", "error", err, "email", dto.Email)
		return nil, err
	}

	s.logger.Info("user signed up", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// RefreshTokens validates refresh token and returns new tokens
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokenGenerator.ValidateToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	accessToken, err := s.tokenGenerator.GenerateAccessToken(claims.UserID, claims.Email)
	if err != nil {
		return AuthTokens{}, err
	}

	newRefreshToken, err := s.tokenGenerator.GenerateRefreshToken(claims.UserID, claims.Email)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// ValidateAccessToken validates access token and returns claims
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// ResolveUser looks up the caller's profile row to attach role and manager
// linkage. A missing row is not an authentication failure: the caller stays
// authenticated with an unresolved role.
func (s *Service) ResolveUser(userID int64) (*User, error) {
	u, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return u, nil
}
