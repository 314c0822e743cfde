package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/watchearn/backend/internal/model"
	"github.com/watchearn/backend/internal/repository"
	"github.com/watchearn/backend/pkg/testutil"
)

func Test_authDomain_RegisterAndLogin(t *testing.T) {
	ctx := testutil.MockContext()
	d := NewAuthDomain(repository.NewUserRepository())

	registerResp, err := d.Register(ctx, &model.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "super-secret",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", registerResp.User.Name)
	require.NotEmpty(t, registerResp.User.ID)

	loginResp, err := d.Login(ctx, &model.LoginRequest{
		Name:     "alice",
		Password: "super-secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, loginResp.AccessToken)
	require.Equal(t, registerResp.User.ID, loginResp.User.ID)

	_, err = d.Login(ctx, &model.LoginRequest{Name: "alice", Password: "wrong-password"})
	require.Error(t, err)
	require.Equal(t, "Invalid username or password", err.Error())

	_, err = d.Login(ctx, &model.LoginRequest{Name: "nobody", Password: "super-secret"})
	require.Error(t, err)
	require.Equal(t, "Invalid username or password", err.Error())
}

func Test_authDomain_Register_invalid(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := NewAuthDomain(repository.NewUserRepository())

	_, err := d.Register(ctx, &model.RegisterRequest{
		Name: "", Email: "a@example.com", Password: "super-secret",
	})
	require.Error(t, err)

	_, err = d.Register(ctx, &model.RegisterRequest{
		Name: "bob", Email: "bob@example.com", Password: "short",
	})
	require.Error(t, err)
	require.Equal(t, "Password must have at least 8 characters", err.Error())

	_, err = d.Register(ctx, &model.RegisterRequest{
		Name: testutil.User1.Name, Email: "other@example.com", Password: "super-secret",
	})
	require.Error(t, err)
	require.Equal(t, "This username is already taken", err.Error())
}
