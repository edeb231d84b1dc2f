package user

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type (
	Repository interface {
		CreateUser(ctx context.Context, usr User) (User, error)
		QueryAllUsers(ctx context.Context) ([]User, error)
		GetUserByID(ctx context.Context, id int) (User, error)
		// QueryUsersByUsername returns every row with this exact username, in storage order.
		QueryUsersByUsername(ctx context.Context, username string) ([]User, error)
		UpdateUser(ctx context.Context, usr User) (User, error)
	}

	Service struct {
		repo     Repository
		verifier CredentialVerifier
	}
)

func NewService(repo Repository, verifier CredentialVerifier) *Service {
	if verifier == nil {
		verifier = PlainVerifier{}
	}
	return &Service{repo: repo, verifier: verifier}
}

// Authenticate returns the first user named uname whose stored password matches pwd.
func (svc *Service) Authenticate(ctx context.Context, uname, pwd string) (User, error) {
	users, err := svc.repo.QueryUsersByUsername(ctx, uname)
	if err != nil {
		return User{}, errors.Wrap(err, "querying users by username")
	}
	for _, usr := range users {
		if svc.verifier.Verify(usr.Password, pwd) {
			return usr, nil
		}
	}
	return User{}, ErrInvalidCredentials
}

func (svc *Service) Create(ctx context.Context, nu NewUser, validate *validator.Validate) (User, error) {
	if err := nu.Validate(validate); err != nil {
		return User{}, err
	}
	hash, err := svc.verifier.Hash(nu.Password)
	if err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}
	return svc.repo.CreateUser(ctx, User{
		Username: nu.Username,
		Password: hash,
		Role:     nu.Role,
	})
}

func (svc *Service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryAllUsers(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

// GetByUsername returns the first user with this exact username.
func (svc *Service) GetByUsername(ctx context.Context, uname string) (User, error) {
	users, err := svc.repo.QueryUsersByUsername(ctx, uname)
	if err != nil {
		return User{}, err
	}
	if len(users) == 0 {
		return User{}, ErrNotFound
	}
	return users[0], nil
}

func (svc *Service) SetPassword(ctx context.Context, usr User, pwd string) (User, error) {
	hash, err := svc.verifier.Hash(pwd)
	if err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}
	usr.Password = hash
	return svc.repo.UpdateUser(ctx, usr)
}
