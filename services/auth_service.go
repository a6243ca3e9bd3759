package services

import (
	"fmt"
	"inventory-api/apperrors"
	"inventory-api/models"
	"inventory-api/repositories"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Tokens are valid for a fixed 24 hours; there is no refresh endpoint, users
// log in again after expiry.
const TokenLifetime = 24 * time.Hour

type IAuthService interface {
	Register(username string, email string, password string) (*string, *models.User, error)
	Login(username string, password string) (*string, *models.User, error)
	GetUserFromToken(tokenString string) (*models.User, error)
	Logout(tokenString string) error
}

type AuthService struct {
	repository      repositories.IAuthRepository
	tokenRepository repositories.ITokenRepository
}

func NewAuthService(repository repositories.IAuthRepository, tokenRepository repositories.ITokenRepository) IAuthService {
	return &AuthService{
		repository:      repository,
		tokenRepository: tokenRepository,
	}
}

// Register creates the user and logs them in immediately. The pre-checks give
// friendly errors; the unique indexes on username and email are the
// authoritative guard when two registrations race.
func (s *AuthService) Register(username string, email string, password string) (*string, *models.User, error) {
	exists, err := s.repository.ExistsByUsername(username)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, apperrors.ErrDuplicateUsername
	}

	exists, err = s.repository.ExistsByEmail(email)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.repository.CreateUser(&user); err != nil {
		if repositories.IsUniqueViolation(err) {
			// Lost a race with a concurrent registration; probe which
			// field collided so the caller gets the same error as the
			// pre-check path.
			if taken, probeErr := s.repository.ExistsByUsername(username); probeErr == nil && taken {
				return nil, nil, apperrors.ErrDuplicateUsername
			}
			return nil, nil, apperrors.ErrDuplicateEmail
		}
		return nil, nil, err
	}

	token, err := CreateToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, nil, err
	}
	return token, &user, nil
}

func (s *AuthService) Login(username string, password string) (*string, *models.User, error) {
	foundUser, err := s.repository.FindByUsername(username)
	if err != nil {
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	token, err := CreateToken(foundUser.ID, foundUser.Username, foundUser.Email)
	if err != nil {
		return nil, nil, err
	}
	return token, foundUser, nil
}

func CreateToken(userID uint, username string, email string) (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"email":    email,
		"exp":      time.Now().Add(TokenLifetime).Unix(),
	})

	tokenString, err := token.SignedString([]byte(os.Getenv("SECRET_KEY")))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	isBlacklisted, err := s.tokenRepository.IsTokenBlacklisted(tokenString)
	if err != nil {
		return nil, err
	}
	if isBlacklisted {
		return nil, fmt.Errorf("token is blacklisted")
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return s.repository.FindByID(uint(sub))
}

// Logout blacklists the token until its expiry so it cannot be replayed.
func (s *AuthService) Logout(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(TokenLifetime).Unix()
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = int64(exp)
		}
	}

	return s.tokenRepository.AddBlacklistedToken(tokenString, expiresAt)
}
