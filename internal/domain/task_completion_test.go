package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/watchearn/backend/internal/entity"
	"github.com/watchearn/backend/internal/model"
	"github.com/watchearn/backend/internal/repository"
	"github.com/watchearn/backend/pkg/testutil"
)

func newCompletionDomain() TaskCompletionDomain {
	return NewTaskCompletionDomain(
		repository.NewTaskCompletionRepository(),
		repository.NewTaskRepository(),
		repository.NewUserRepository(),
		repository.NewProfileRepository(),
	)
}

func newProfileDomain() UserDomain {
	return NewUserDomain(
		repository.NewUserRepository(),
		repository.NewProfileRepository(),
		repository.NewTaskCompletionRepository(),
		repository.NewTaskRepository(),
	)
}

func Test_taskCompletionDomain_Submit(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCompletionDomain()

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Submit(userCtx, &model.SubmitCompletionRequest{
		TaskID:           testutil.Task1.ID,
		CompletedActions: []string{"watch", "like"},
		ScreenshotURL:    "https://cdn.example.com/screenshot.png",
	})
	require.NoError(t, err)
	require.Equal(t, "submitted", resp.Status)
	require.Equal(t, "0.25", resp.EarnedReward)

	// The earned reward lands in the pending balance.
	profileResp, err := newProfileDomain().GetMyProfile(userCtx, &model.GetMyProfileRequest{})
	require.NoError(t, err)
	require.Equal(t, "0.25", profileResp.Profile.PendingRewards)
	require.Equal(t, "0.00", profileResp.Profile.TotalEarnings)
	require.Equal(t, 0, profileResp.Profile.TasksCompleted)
}

func Test_taskCompletionDomain_Submit_invalid(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCompletionDomain()
	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	_, err := d.Submit(userCtx, &model.SubmitCompletionRequest{
		TaskID:           "not-a-task",
		CompletedActions: []string{"watch"},
	})
	require.Error(t, err)
	require.Equal(t, "Not found task", err.Error())

	// The required watch action gates submission.
	_, err = d.Submit(userCtx, &model.SubmitCompletionRequest{
		TaskID:           testutil.Task1.ID,
		CompletedActions: []string{"like", "subscribe"},
	})
	require.Error(t, err)
	require.Equal(t, "You must complete Watch the video before submitting", err.Error())

	_, err = d.Submit(userCtx, &model.SubmitCompletionRequest{
		TaskID:           testutil.Task1.ID,
		CompletedActions: []string{},
	})
	require.Error(t, err)

	_, err = d.Submit(userCtx, &model.SubmitCompletionRequest{
		TaskID:           testutil.Task1.ID,
		CompletedActions: []string{"watch", "share"},
	})
	require.Error(t, err)
}

func Test_taskCompletionDomain_Submit_replacesPrevious(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCompletionDomain()
	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	_, err := d.Submit(userCtx, &model.SubmitCompletionRequest{
		TaskID:           testutil.Task1.ID,
		CompletedActions: []string{"watch"},
	})
	require.NoError(t, err)

	// Resubmitting with more actions replaces the first submission, the
	// pending balance only moves by the difference.
	resp, err := d.Submit(userCtx, &model.SubmitCompletionRequest{
		TaskID:           testutil.Task1.ID,
		CompletedActions: []string{"watch", "like", "subscribe", "comment"},
	})
	require.NoError(t, err)
	require.Equal(t, "0.50", resp.EarnedReward)

	profileResp, err := newProfileDomain().GetMyProfile(userCtx, &model.GetMyProfileRequest{})
	require.NoError(t, err)
	require.Equal(t, "0.50", profileResp.Profile.PendingRewards)
}

func Test_taskCompletionDomain_Review_approve(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCompletionDomain()

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	_, err := d.Submit(userCtx, &model.SubmitCompletionRequest{
		TaskID:           testutil.Task1.ID,
		CompletedActions: []string{"watch", "like"},
	})
	require.NoError(t, err)

	// Regular users cannot review.
	_, err = d.Review(userCtx, &model.ReviewCompletionRequest{
		UserID: testutil.User1.ID,
		TaskID: testutil.Task1.ID,
		Action: "approved",
	})
	require.Error(t, err)
	require.Equal(t, "Permission denied", err.Error())

	adminCtx := testutil.MockContextWithUserID(ctx, testutil.Admin.ID)
	_, err = d.Review(adminCtx, &model.ReviewCompletionRequest{
		UserID:  testutil.User1.ID,
		TaskID:  testutil.Task1.ID,
		Action:  "approved",
		Comment: "Looks good",
	})
	require.NoError(t, err)

	profileResp, err := newProfileDomain().GetMyProfile(userCtx, &model.GetMyProfileRequest{})
	require.NoError(t, err)
	require.Equal(t, "0.25", profileResp.Profile.TotalEarnings)
	require.Equal(t, "0.00", profileResp.Profile.PendingRewards)
	require.Equal(t, 1, profileResp.Profile.TasksCompleted)
	require.Equal(t, 1, profileResp.Profile.ActiveStreak)

	// A reviewed completion cannot be reviewed again.
	_, err = d.Review(adminCtx, &model.ReviewCompletionRequest{
		UserID: testutil.User1.ID,
		TaskID: testutil.Task1.ID,
		Action: "rejected",
	})
	require.Error(t, err)

	// Nor resubmitted.
	_, err = d.Submit(userCtx, &model.SubmitCompletionRequest{
		TaskID:           testutil.Task1.ID,
		CompletedActions: []string{"watch"},
	})
	require.Error(t, err)
	require.Equal(t, "You already completed this task", err.Error())
}

func Test_taskCompletionDomain_Review_reject(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCompletionDomain()

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	_, err := d.Submit(userCtx, &model.SubmitCompletionRequest{
		TaskID:           testutil.Task2.ID,
		CompletedActions: []string{"watch"},
	})
	require.NoError(t, err)

	adminCtx := testutil.MockContextWithUserID(ctx, testutil.Admin.ID)
	_, err = d.Review(adminCtx, &model.ReviewCompletionRequest{
		UserID:  testutil.User1.ID,
		TaskID:  testutil.Task2.ID,
		Action:  "rejected",
		Comment: "Screenshot does not match",
	})
	require.NoError(t, err)

	profileResp, err := newProfileDomain().GetMyProfile(userCtx, &model.GetMyProfileRequest{})
	require.NoError(t, err)
	require.Equal(t, "0.00", profileResp.Profile.PendingRewards)
	require.Equal(t, "0.00", profileResp.Profile.TotalEarnings)
	require.Equal(t, 0, profileResp.Profile.TasksCompleted)

	// A rejected completion may be submitted again.
	_, err = d.Submit(userCtx, &model.SubmitCompletionRequest{
		TaskID:           testutil.Task2.ID,
		CompletedActions: []string{"watch"},
	})
	require.NoError(t, err)
}

func Test_taskCompletionDomain_resubmitClearsReview(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCompletionDomain()

	userCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	_, err := d.Submit(userCtx, &model.SubmitCompletionRequest{
		TaskID:           testutil.Task2.ID,
		CompletedActions: []string{"watch"},
	})
	require.NoError(t, err)

	adminCtx := testutil.MockContextWithUserID(ctx, testutil.Admin.ID)
	_, err = d.Review(adminCtx, &model.ReviewCompletionRequest{
		UserID:  testutil.User1.ID,
		TaskID:  testutil.Task2.ID,
		Action:  "rejected",
		Comment: "Screenshot does not match",
	})
	require.NoError(t, err)

	_, err = d.Submit(userCtx, &model.SubmitCompletionRequest{
		TaskID:           testutil.Task2.ID,
		CompletedActions: []string{"watch"},
	})
	require.NoError(t, err)

	// The resubmitted row must not carry anything of the old review, so it
	// enters the pending queue as a fresh submission.
	completion, err := repository.NewTaskCompletionRepository().
		Get(userCtx, testutil.User1.ID, testutil.Task2.ID)
	require.NoError(t, err)
	require.Equal(t, entity.CompletionSubmitted, completion.Status)
	require.False(t, completion.ReviewerID.Valid)
	require.False(t, completion.ReviewedAt.Valid)
	require.Empty(t, completion.Comment)
}

func Test_taskCompletionDomain_GetPendingList(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCompletionDomain()

	user1Ctx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	_, err := d.Submit(user1Ctx, &model.SubmitCompletionRequest{
		TaskID:           testutil.Task1.ID,
		CompletedActions: []string{"watch"},
	})
	require.NoError(t, err)

	user2Ctx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	_, err = d.Submit(user2Ctx, &model.SubmitCompletionRequest{
		TaskID:           testutil.Task1.ID,
		CompletedActions: []string{"watch", "subscribe"},
	})
	require.NoError(t, err)

	_, err = d.GetPendingList(user1Ctx, &model.GetPendingCompletionsRequest{Limit: 10})
	require.Error(t, err)
	require.Equal(t, "Permission denied", err.Error())

	adminCtx := testutil.MockContextWithUserID(ctx, testutil.Admin.ID)
	resp, err := d.GetPendingList(adminCtx, &model.GetPendingCompletionsRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Completions, 2)
	require.Equal(t, testutil.Task1.ID, resp.Completions[0].TaskID)
	require.Equal(t, "submitted", resp.Completions[0].Status)

	// Filtering by task.
	resp, err = d.GetPendingList(adminCtx, &model.GetPendingCompletionsRequest{
		TaskID: testutil.Task2.ID,
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, resp.Completions, 0)
}
