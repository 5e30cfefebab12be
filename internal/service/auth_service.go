// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authv1 "github.com/ekaraca/taskshare/api/proto/auth/v1/generated"
	ent "github.com/ekaraca/taskshare/ent/generated"
	"github.com/ekaraca/taskshare/ent/generated/user"
	"github.com/ekaraca/taskshare/pkg/auth"
)

type AuthService struct {
	authv1.UnimplementedAuthServiceServer
	client          *ent.Client
	tokenManager    *auth.TokenManager
	passwordManager *auth.PasswordManager
}

// NewAuthService creates a new authentication service
func NewAuthService(client *ent.Client, tokenManager *auth.TokenManager) *AuthService {
	return &AuthService{
		client:          client,
		tokenManager:    tokenManager,
		passwordManager: auth.NewPasswordManager(),
	}
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, req *authv1.RegisterRequest) (*authv1.RegisterResponse, error) {
	if err := s.validateRegisterRequest(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	exists, err := s.client.User.Query().
		Where(
			user.Or(
				user.EmailEQ(strings.ToLower(req.Email)),
				user.UsernameEQ(strings.ToLower(req.Username)),
			),
		).
		Exist(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to check user existence")
	}
	if exists {
		return nil, status.Error(codes.AlreadyExists, "user with this email or username already exists")
	}

	hashedPassword, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	newUser, err := s.client.User.Create().
		SetUsername(strings.ToLower(req.Username)).
		SetEmail(strings.ToLower(req.Email)).
		SetPasswordHash(hashedPassword).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetIsActive(true).
		Save(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to create user")
	}

	accessToken, refreshToken, expiresIn, err := s.tokenManager.GenerateTokenPair(newUser.ID.String(), newUser.Username)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to generate tokens")
	}

	return &authv1.RegisterResponse{
		User:         convertUserToProto(newUser),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, req *authv1.LoginRequest) (*authv1.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "username and password are required")
	}

	loginID := strings.ToLower(req.Username)
	foundUser, err := s.client.User.Query().
		Where(
			user.Or(
				user.UsernameEQ(loginID),
				user.EmailEQ(loginID),
			),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.Unauthenticated, "invalid credentials")
		}
		return nil, status.Error(codes.Internal, "failed to find user")
	}

	if !foundUser.IsActive {
		return nil, status.Error(codes.PermissionDenied, "account is deactivated")
	}

	if err := s.passwordManager.ComparePassword(foundUser.PasswordHash, req.Password); err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	accessToken, refreshToken, expiresIn, err := s.tokenManager.GenerateTokenPair(foundUser.ID.String(), foundUser.Username)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to generate tokens")
	}

	return &authv1.LoginResponse{
		User:         convertUserToProto(foundUser),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

// RefreshToken exchanges a refresh token for a new access token
func (s *AuthService) RefreshToken(ctx context.Context, req *authv1.RefreshTokenRequest) (*authv1.RefreshTokenResponse, error) {
	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh_token is required")
	}

	accessToken, expiresIn, err := s.tokenManager.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}

	return &authv1.RefreshTokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
	}, nil
}

func (s *AuthService) validateRegisterRequest(req *authv1.RegisterRequest) error {
	if req.Username == "" {
		return errors.New("username is required")
	}
	if len(req.Username) < 3 {
		return errors.New("username must be at least 3 characters")
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return errors.New("a valid email address is required")
	}
	if req.Password == "" {
		return errors.New("password is required")
	}
	return s.passwordManager.ValidatePassword(req.Password)
}

// Helper functions

func convertUserToProto(u *ent.User) *authv1.User {
	return &authv1.User{
		Id:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
