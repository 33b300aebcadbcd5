package service

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/metrics"
	"doctorsportal/cmd/internal/utils"
	"doctorsportal/cmd/internal/utils/apierror"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// TokenIssuer signs access tokens for a user's email.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

type CreateUserRequest struct {
	Name  string `json:"name" validate:"max=80"`
	Email string `json:"email" validate:"required,email"`
}

type AdminStatusResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type RoleUpdateResponse struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedCount int64  `json:"upsertedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

type DefaultUserService struct {
	UserRepo UserRepository
	Validate *validator.Validate
	Tokens   TokenIssuer
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, tokens TokenIssuer) *DefaultUserService {
	return &DefaultUserService{UserRepo: userRepo, Validate: validate, Tokens: tokens}
}

func (u *DefaultUserService) GetUsers(ctx context.Context) ([]*entity.User, apierror.ErrorResponse) {
	users, err := u.UserRepo.FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch all users: %v", err)
		return nil, apierror.InternalServerError
	}
	return users, nil
}

func (u *DefaultUserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*InsertResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	found, err := u.UserRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		log.Errorf("failed to check if user already exists: %v", err)
		return nil, apierror.InternalServerError
	}

	if found {
		return nil, apierror.UserAlreadyExistsError
	}

	user := &entity.User{Name: req.Name, Email: req.Email}
	err = u.UserRepo.Save(ctx, user)
	if errors.Is(err, entity.ErrDuplicateKey) {
		return nil, apierror.UserAlreadyExistsError
	}
	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return nil, apierror.InternalServerError
	}
	return &InsertResponse{Acknowledged: true, InsertedID: user.ID}, nil
}

func (u *DefaultUserService) IsAdmin(ctx context.Context, email string) (*AdminStatusResponse, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Errorf("failed to find user %s: %v", email, err)
		return nil, apierror.InternalServerError
	}
	return &AdminStatusResponse{IsAdmin: user.IsAdmin()}, nil
}

func (u *DefaultUserService) MakeAdmin(ctx context.Context, rawID string) (*RoleUpdateResponse, apierror.ErrorResponse) {
	id, err := entity.ParseID(rawID)
	if err != nil {
		return nil, apierror.InvalidIdentifierError
	}

	res, err := u.UserRepo.PromoteToAdmin(ctx, id)
	if err != nil {
		log.Errorf("failed to update role of user %s: %v", id, err)
		return nil, apierror.InternalServerError
	}

	resp := &RoleUpdateResponse{
		Acknowledged:  true,
		MatchedCount:  res.Matched,
		ModifiedCount: res.Modified,
		UpsertedID:    res.UpsertedID,
	}
	if res.UpsertedID != "" {
		resp.UpsertedCount = 1
	}
	return resp, nil
}

// IssueToken signs a token for email when a user with that email exists.
// Unknown emails get an empty token together with a 401 error; routes
// send the token body with the error's status.
func (u *DefaultUserService) IssueToken(ctx context.Context, email string) (*TokenResponse, apierror.ErrorResponse) {
	if email == "" {
		return nil, apierror.NewMissingParamError("email")
	}

	user, err := u.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Errorf("failed to find user %s: %v", email, err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		metrics.TokensIssued.WithLabelValues("unknown_user").Inc()
		return &TokenResponse{AccessToken: ""}, apierror.NewSimple(http.StatusUnauthorized, "unknown user")
	}

	token, err := u.Tokens.Issue(user.Email)
	if err != nil {
		log.Errorf("failed to sign token for %s: %v", email, err)
		return nil, apierror.InternalServerError
	}

	metrics.TokensIssued.WithLabelValues("issued").Inc()
	return &TokenResponse{AccessToken: token}, nil
}
