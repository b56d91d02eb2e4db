package user

import (
	"errors"

	"github.com/asphaltlabs/asphalt-companion/internal/apperrors"
)

type UserService struct {
	repo   UserRepository
	tokens *TokenIssuer
}

func NewUserService(repo UserRepository, tokens *TokenIssuer) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

func (u *UserService) Register(req RegisterRequest) (*User, error) {
	created, err := u.repo.CreateUser(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			return nil, apperrors.NewAppError(400, "username taken", err)
		}
		return nil, err
	}
	return created, nil
}

func (u *UserService) Login(creds Credentials) (string, error) {
	retrieved, err := u.repo.ValidateUser(creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return "", apperrors.NewAppError(401, "bad credentials", err)
		}
		return "", err
	}

	token, errJWT := u.tokens.Issue(retrieved.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

// ResolveSubject binds a validated token subject to a stored user. A signed
// token whose subject no longer exists is treated as invalid.
func (u *UserService) ResolveSubject(id uint) (*User, error) {
	retrieved, err := u.repo.GetUser(id)
	if err != nil {
		return nil, err
	}
	if retrieved == nil {
		return nil, apperrors.NewAppError(401, "invalid token", ErrInvalidToken)
	}
	return retrieved, nil
}
