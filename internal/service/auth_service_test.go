package service

import (
	"context"
	"testing"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/config"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memUserRepo struct {
	users []model.User
}

func (r *memUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users = append(r.users, *u)
	return nil
}

// FindByUsername mirrors the SQL repo: only active users log in.
func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for i := range r.users {
		if r.users[i].Username == username && r.users[i].Active {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]model.User, error) {
	return r.users, nil
}

func (r *memUserRepo) Update(_ context.Context, u *model.User) error {
	for i := range r.users {
		if r.users[i].ID == u.ID {
			r.users[i] = *u
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memUserRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Active = false
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func authTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
}

func newAuthFixture(t *testing.T) (AuthService, *memUserRepo) {
	t.Helper()
	repo := &memUserRepo{}
	return NewAuthService(repo, authTestConfig()), repo
}

func seedUser(t *testing.T, svc AuthService, username, password, role string) *dto.UserResponse {
	t.Helper()
	u, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: username,
		Name:     "Test User",
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)
	return u
}

func TestLogin_IssuesTokenPair(t *testing.T) {
	svc, _ := newAuthFixture(t)
	seedUser(t, svc, "pharma1", "s3cretpass", "pharmacist")

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "pharma1",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, "pharmacist", resp.User.Role)

	// The access token must carry the role claim the middleware checks.
	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "pharmacist", claims["role"])
	assert.Equal(t, "pharma1", claims["username"])
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)
	seedUser(t, svc, "pharma1", "s3cretpass", "pharmacist")

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "pharma1",
		Password: "wrong",
	})
	assert.Error(t, err)
}

func TestLogin_DeactivatedUserRejected(t *testing.T) {
	svc, repo := newAuthFixture(t)
	u := seedUser(t, svc, "reception1", "s3cretpass", "reception")

	require.NoError(t, svc.DeactivateUser(context.Background(), uuid.MustParse(u.ID)))

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "reception1",
		Password: "s3cretpass",
	})
	assert.Error(t, err)
	assert.False(t, repo.users[0].Active)
}

func TestRefresh_RotatesTokens(t *testing.T) {
	svc, _ := newAuthFixture(t)
	seedUser(t, svc, "admin1", "s3cretpass", "admin")

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "admin1",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "admin1", refreshed.User.Username)
}

func TestRefresh_RejectsGarbageToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Refresh(context.Background(), "not.a.token")
	assert.Error(t, err)
}

func TestRefresh_RejectsDeactivatedUser(t *testing.T) {
	svc, _ := newAuthFixture(t)
	u := seedUser(t, svc, "admin1", "s3cretpass", "admin")

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "admin1",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateUser(context.Background(), uuid.MustParse(u.ID)))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.Error(t, err)
}

func TestUpdateUser_RehashesPassword(t *testing.T) {
	svc, repo := newAuthFixture(t)
	u := seedUser(t, svc, "pharma1", "oldpassword", "pharmacist")
	oldHash := repo.users[0].PasswordHash

	_, err := svc.UpdateUser(context.Background(), uuid.MustParse(u.ID), dto.UpdateUserRequest{
		Password: "newpassword",
	})
	require.NoError(t, err)
	assert.NotEqual(t, oldHash, repo.users[0].PasswordHash)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Username: "pharma1",
		Password: "newpassword",
	})
	assert.NoError(t, err)
}
