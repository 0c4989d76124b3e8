package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/machinebox/graphql"

	"github.com/Anuragkundu/WorkFlowHQ/pkg/logger"
)

// UserResponse represents the GraphQL user response from the auth
// provider.
type UserResponse struct {
	User struct {
		UserID   string `json:"userId"`
		Email    string `json:"email"`
		FullName string `json:"fullName"`
	} `json:"user"`
}

// UserService verifies token subjects against the external auth provider.
// When USER_SERVICE_URL is unset the service runs without remote
// verification and trusts the signed token alone.
type UserService struct {
	client  *graphql.Client
	baseURL string
}

func NewUserService() *UserService {
	baseURL := os.Getenv("USER_SERVICE_URL")
	if baseURL == "" {
		logger.Log.Warn().Msg("USER_SERVICE_URL not set; skipping remote user verification")
		return &UserService{}
	}

	return &UserService{
		client:  graphql.NewClient(baseURL),
		baseURL: baseURL,
	}
}

// Enabled reports whether remote verification is configured.
func (s *UserService) Enabled() bool {
	return s.client != nil
}

// GetUserByID fetches a user by id from the auth provider.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*UserResponse, error) {
	req := graphql.NewRequest(`
        query GetUser($userId: ID!) {
            user(userId: $userId) {
                userId
                email
                fullName
            }
        }
    `)
	req.Var("userId", userID)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var response UserResponse
	if err := s.client.Run(ctx, req, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if response.User.UserID == "" {
		return nil, fmt.Errorf("user not found with ID: %s", userID)
	}

	return &response, nil
}
