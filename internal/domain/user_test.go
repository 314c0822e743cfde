package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/watchearn/backend/internal/model"
	"github.com/watchearn/backend/pkg/testutil"
)

func Test_userDomain_GetMe(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newProfileDomain()

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.GetMe(userCtx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, resp.User.ID)
	require.Equal(t, testutil.User1.Name, resp.User.Name)
	require.Equal(t, testutil.User1.Email, resp.User.Email)
}

func Test_userDomain_GetMyProfile_beforeFirstSubmission(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newProfileDomain()

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	resp, err := d.GetMyProfile(userCtx, &model.GetMyProfileRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User2.ID, resp.Profile.UserID)
	require.Equal(t, "0.00", resp.Profile.TotalEarnings)
	require.Equal(t, "0.00", resp.Profile.PendingRewards)
	require.Equal(t, 0, resp.Profile.TasksCompleted)
	require.Equal(t, 0, resp.Profile.ActiveStreak)
}

func Test_userDomain_GetMyCompletions(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	_, err := newCompletionDomain().Submit(userCtx, &model.SubmitCompletionRequest{
		TaskID:           testutil.Task1.ID,
		CompletedActions: []string{"watch"},
	})
	require.NoError(t, err)

	resp, err := newProfileDomain().GetMyCompletions(userCtx, &model.GetMyCompletionsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Completions, 1)
	require.Equal(t, testutil.Task1.ID, resp.Completions[0].TaskID)
	require.Equal(t, testutil.Task1.VideoTitle, resp.Completions[0].Task.VideoTitle)
	require.Equal(t, "0.20", resp.Completions[0].EarnedReward)
}
