// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authv1 "github.com/ekaraca/taskshare/api/proto/auth/v1/generated"
	"github.com/ekaraca/taskshare/pkg/auth"
)

func newTestTokenManager() *auth.TokenManager {
	return auth.NewTokenManager(
		"test-access-secret",
		"test-refresh-secret",
		15*time.Minute,
		7*24*time.Hour,
	)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name         string
		req          *authv1.RegisterRequest
		setupFunc    func(t *testing.T, h *TestHelpers)
		wantErr      bool
		expectedCode codes.Code
	}{
		{
			name: "valid registration",
			req: &authv1.RegisterRequest{
				Username:  "alice",
				Email:     "alice@example.com",
				Password:  "Str0ngPassword",
				FirstName: "Alice",
				LastName:  "Smith",
			},
		},
		{
			name: "username and email are lowercased",
			req: &authv1.RegisterRequest{
				Username:  "Alice",
				Email:     "Alice@Example.COM",
				Password:  "Str0ngPassword",
				FirstName: "Alice",
				LastName:  "Smith",
			},
		},
		{
			name: "duplicate username",
			req: &authv1.RegisterRequest{
				Username: "alice",
				Email:    "other@example.com",
				Password: "Str0ngPassword",
			},
			setupFunc: func(t *testing.T, h *TestHelpers) {
				h.CreateTestUser("alice")
			},
			wantErr:      true,
			expectedCode: codes.AlreadyExists,
		},
		{
			name: "duplicate email",
			req: &authv1.RegisterRequest{
				Username: "alice2",
				Email:    "alice@example.com",
				Password: "Str0ngPassword",
			},
			setupFunc: func(t *testing.T, h *TestHelpers) {
				h.CreateTestUser("alice")
			},
			wantErr:      true,
			expectedCode: codes.AlreadyExists,
		},
		{
			name: "missing username",
			req: &authv1.RegisterRequest{
				Email:    "alice@example.com",
				Password: "Str0ngPassword",
			},
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
		{
			name: "username too short",
			req: &authv1.RegisterRequest{
				Username: "al",
				Email:    "alice@example.com",
				Password: "Str0ngPassword",
			},
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
		{
			name: "invalid email",
			req: &authv1.RegisterRequest{
				Username: "alice",
				Email:    "not-an-email",
				Password: "Str0ngPassword",
			},
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
		{
			name: "weak password",
			req: &authv1.RegisterRequest{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "weak",
			},
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
		{
			name: "password without numbers",
			req: &authv1.RegisterRequest{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "NoNumbersHere",
			},
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupTestDB(t)
			defer client.Close()

			h := NewTestHelpers(t, client)
			if tt.setupFunc != nil {
				tt.setupFunc(t, h)
			}

			svc := NewAuthService(client, newTestTokenManager())

			resp, err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, status.Code(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp.User)
			assert.Equal(t, "alice", resp.User.Username)
			assert.Equal(t, "alice@example.com", resp.User.Email)
			assert.NotEmpty(t, resp.AccessToken)
			assert.NotEmpty(t, resp.RefreshToken)
			assert.Positive(t, resp.ExpiresIn)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name         string
		username     string
		password     string
		deactivate   bool
		wantErr      bool
		expectedCode codes.Code
	}{
		{
			name:     "login with username",
			username: "alice",
			password: "Str0ngPassword",
		},
		{
			name:     "login with email",
			username: "alice@example.com",
			password: "Str0ngPassword",
		},
		{
			name:     "login is case-insensitive",
			username: "ALICE",
			password: "Str0ngPassword",
		},
		{
			name:         "wrong password",
			username:     "alice",
			password:     "WrongPassw0rd",
			wantErr:      true,
			expectedCode: codes.Unauthenticated,
		},
		{
			name:         "unknown user",
			username:     "mallory",
			password:     "Str0ngPassword",
			wantErr:      true,
			expectedCode: codes.Unauthenticated,
		},
		{
			name:         "missing password",
			username:     "alice",
			password:     "",
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "deactivated account",
			username:     "alice",
			password:     "Str0ngPassword",
			deactivate:   true,
			wantErr:      true,
			expectedCode: codes.PermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupTestDB(t)
			defer client.Close()

			h := NewTestHelpers(t, client)
			u := h.CreateTestUserWithPassword("alice", "Str0ngPassword")

			if tt.deactivate {
				_, err := client.User.UpdateOneID(u.ID).SetIsActive(false).Save(context.Background())
				require.NoError(t, err)
			}

			svc := NewAuthService(client, newTestTokenManager())

			resp, err := svc.Login(context.Background(), &authv1.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, status.Code(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "alice", resp.User.Username)
			assert.NotEmpty(t, resp.AccessToken)
			assert.NotEmpty(t, resp.RefreshToken)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	h := NewTestHelpers(t, client)
	h.CreateTestUserWithPassword("alice", "Str0ngPassword")

	svc := NewAuthService(client, newTestTokenManager())

	loginResp, err := svc.Login(context.Background(), &authv1.LoginRequest{
		Username: "alice",
		Password: "Str0ngPassword",
	})
	require.NoError(t, err)

	refreshResp, err := svc.RefreshToken(context.Background(), &authv1.RefreshTokenRequest{
		RefreshToken: loginResp.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshResp.AccessToken)
	assert.Positive(t, refreshResp.ExpiresIn)

	// Access tokens are not refresh tokens
	_, err = svc.RefreshToken(context.Background(), &authv1.RefreshTokenRequest{
		RefreshToken: loginResp.AccessToken,
	})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	// Empty token
	_, err = svc.RefreshToken(context.Background(), &authv1.RefreshTokenRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
