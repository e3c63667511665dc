package backfill

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/estafette/estafette-ci-relay/pkg/clients/githubapi"
	"github.com/estafette/estafette-ci-relay/pkg/clients/prowapi"
	"github.com/estafette/estafette-ci-relay/pkg/clients/tracker"
	"github.com/estafette/estafette-ci-relay/pkg/services/logilica"
	"github.com/estafette/estafette-ci-relay/pkg/services/prow"
	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

const jobURL = "https://prow.ci.openshift.org/job-history/gs/test-platform-results/logs/periodic-ci-toolchain-e2e-daily"

func getConfig() *api.Config {
	config := &api.Config{}
	config.SetDefaults()
	return config
}

type recordingSleeper struct {
	delays []time.Duration
	err    error
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return s.err
}

type mocks struct {
	githubapiClient *githubapi.MockClient
	prowapiClient   *prowapi.MockClient
	trackerClient   *tracker.MockClient
	prowService     *prow.MockService
	logilicaService *logilica.MockService
	sleeper         *recordingSleeper
}

func getService(ctrl *gomock.Controller) (Service, mocks) {
	m := mocks{
		githubapiClient: githubapi.NewMockClient(ctrl),
		prowapiClient:   prowapi.NewMockClient(ctrl),
		trackerClient:   tracker.NewMockClient(ctrl),
		prowService:     prow.NewMockService(ctrl),
		logilicaService: logilica.NewMockService(ctrl),
		sleeper:         &recordingSleeper{},
	}

	service := NewService(getConfig(), m.githubapiClient, m.prowapiClient, m.trackerClient, m.prowService, m.logilicaService, m.sleeper.Sleep)

	return service, m
}

func historicalRecord(buildID string) *api.BuildRecord {
	return &api.BuildRecord{
		OriginalID:   buildID,
		RepoFullName: "openshift/unknown",
		Conclusion:   api.ConclusionSuccess,
		DisplayName:  "OpenShift CI daily",
	}
}

func TestBackfillJobHistory(t *testing.T) {

	t.Run("SkipsProcessedBuildsAndRecordsUploadedOnes", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := getService(ctrl)

		m.prowapiClient.EXPECT().GetJobHistoryBuildIDs(gomock.Any(), jobURL).Return([]string{"3", "2", "1"}, nil).Times(1)
		m.trackerClient.EXPECT().Load(gomock.Any(), "periodic-ci-toolchain-e2e-daily").Return([]string{"2"}, nil).Times(1)
		m.prowService.EXPECT().NormalizeHistoricalBuild(gomock.Any(), "periodic-ci-toolchain-e2e-daily", "3").Return(historicalRecord("3"), nil).Times(1)
		m.prowService.EXPECT().NormalizeHistoricalBuild(gomock.Any(), "periodic-ci-toolchain-e2e-daily", "1").Return(historicalRecord("1"), nil).Times(1)
		m.prowService.EXPECT().NormalizeHistoricalBuild(gomock.Any(), gomock.Any(), "2").Times(0)
		m.logilicaService.EXPECT().UploadBuild(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.trackerClient.EXPECT().Append(gomock.Any(), "periodic-ci-toolchain-e2e-daily", "3").Return(nil).Times(1)
		m.trackerClient.EXPECT().Append(gomock.Any(), "periodic-ci-toolchain-e2e-daily", "1").Return(nil).Times(1)

		// act
		summary, err := service.BackfillJobHistory(context.Background(), JobHistoryOptions{JobURL: jobURL, Limit: 50})

		assert.Nil(t, err)
		assert.Equal(t, Summary{Discovered: 3, AlreadyProcessed: 1, Total: 2, Succeeded: 2}, summary)
		assert.Equal(t, []time.Duration{time.Second}, m.sleeper.delays)
	})

	t.Run("DryRunNeitherUploadsNorRecords", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := getService(ctrl)

		m.prowapiClient.EXPECT().GetJobHistoryBuildIDs(gomock.Any(), gomock.Any()).Return([]string{"3", "2"}, nil).Times(1)
		m.trackerClient.EXPECT().Load(gomock.Any(), gomock.Any()).Return([]string{}, nil).Times(1)
		m.prowService.EXPECT().NormalizeHistoricalBuild(gomock.Any(), gomock.Any(), "3").Return(historicalRecord("3"), nil).Times(1)
		m.prowService.EXPECT().NormalizeHistoricalBuild(gomock.Any(), gomock.Any(), "2").Return(historicalRecord("2"), nil).Times(1)
		m.logilicaService.EXPECT().UploadBuild(gomock.Any(), gomock.Any()).Times(0)
		m.trackerClient.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		// act
		summary, err := service.BackfillJobHistory(context.Background(), JobHistoryOptions{JobURL: jobURL, DryRun: true})

		assert.Nil(t, err)
		assert.Equal(t, 2, summary.Succeeded)
	})

	t.Run("IsolatesFailuresAndDoesNotRecordFailedBuilds", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := getService(ctrl)

		m.prowapiClient.EXPECT().GetJobHistoryBuildIDs(gomock.Any(), gomock.Any()).Return([]string{"3", "2", "1"}, nil).Times(1)
		m.trackerClient.EXPECT().Load(gomock.Any(), gomock.Any()).Return([]string{}, nil).Times(1)
		m.prowService.EXPECT().NormalizeHistoricalBuild(gomock.Any(), gomock.Any(), "3").Return(nil, errors.New("finished.json does not exist")).Times(1)
		m.prowService.EXPECT().NormalizeHistoricalBuild(gomock.Any(), gomock.Any(), "2").Return(historicalRecord("2"), nil).Times(1)
		m.prowService.EXPECT().NormalizeHistoricalBuild(gomock.Any(), gomock.Any(), "1").Return(historicalRecord("1"), nil).Times(1)
		m.logilicaService.EXPECT().UploadBuild(gomock.Any(), gomock.Eq(*historicalRecord("2"))).Return(errors.New("failed after 7 attempts")).Times(1)
		m.logilicaService.EXPECT().UploadBuild(gomock.Any(), gomock.Eq(*historicalRecord("1"))).Return(nil).Times(1)
		m.trackerClient.EXPECT().Append(gomock.Any(), gomock.Any(), "1").Return(nil).Times(1)

		// act
		summary, err := service.BackfillJobHistory(context.Background(), JobHistoryOptions{JobURL: jobURL})

		assert.Nil(t, err)
		assert.Equal(t, Summary{Discovered: 3, Total: 3, Succeeded: 1, Failed: 2}, summary)
		assert.Equal(t, 2, len(m.sleeper.delays))
	})

	t.Run("ProcessesAtMostLimitBuilds", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := getService(ctrl)

		m.prowapiClient.EXPECT().GetJobHistoryBuildIDs(gomock.Any(), gomock.Any()).Return([]string{"3", "2", "1"}, nil).Times(1)
		m.trackerClient.EXPECT().Load(gomock.Any(), gomock.Any()).Return([]string{}, nil).Times(1)
		m.prowService.EXPECT().NormalizeHistoricalBuild(gomock.Any(), gomock.Any(), "3").Return(historicalRecord("3"), nil).Times(1)
		m.logilicaService.EXPECT().UploadBuild(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		m.trackerClient.EXPECT().Append(gomock.Any(), gomock.Any(), "3").Return(nil).Times(1)

		// act
		summary, err := service.BackfillJobHistory(context.Background(), JobHistoryOptions{JobURL: jobURL, Limit: 1})

		assert.Nil(t, err)
		assert.Equal(t, 1, summary.Total)
		assert.Equal(t, 0, len(m.sleeper.delays))
	})

	t.Run("StopsWhenDelayIsCancelled", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := getService(ctrl)
		m.sleeper.err = context.Canceled

		m.prowapiClient.EXPECT().GetJobHistoryBuildIDs(gomock.Any(), gomock.Any()).Return([]string{"3", "2"}, nil).Times(1)
		m.trackerClient.EXPECT().Load(gomock.Any(), gomock.Any()).Return([]string{}, nil).Times(1)
		m.prowService.EXPECT().NormalizeHistoricalBuild(gomock.Any(), gomock.Any(), "3").Return(historicalRecord("3"), nil).Times(1)
		m.logilicaService.EXPECT().UploadBuild(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		m.trackerClient.EXPECT().Append(gomock.Any(), gomock.Any(), "3").Return(nil).Times(1)

		// act
		summary, err := service.BackfillJobHistory(context.Background(), JobHistoryOptions{JobURL: jobURL})

		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, 1, summary.Succeeded)
	})

	t.Run("ReturnsErrInvalidJobURLWithoutFetching", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := getService(ctrl)
		m.prowapiClient.EXPECT().GetJobHistoryBuildIDs(gomock.Any(), gomock.Any()).Times(0)

		// act
		_, err := service.BackfillJobHistory(context.Background(), JobHistoryOptions{JobURL: "periodic"})

		assert.True(t, errors.Is(err, prowapi.ErrInvalidJobURL))
	})
}

func TestBackfillPullRequests(t *testing.T) {

	t.Run("DefaultsEndToLatestPullRequestAndSkipsPullRequestsWithoutStatus", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := getService(ctrl)

		pullRequest1 := &githubapi.PullRequest{Number: 1, User: githubapi.User{Login: "jdoe"}, Head: githubapi.PullRequestHead{Sha: "sha1"}}
		pullRequest2 := &githubapi.PullRequest{Number: 2, User: githubapi.User{Login: "jdoe"}, Head: githubapi.PullRequestHead{Sha: "sha2"}}
		e2eStatus := githubapi.CommitStatus{Context: "ci/prow/e2e", State: "success", TargetURL: "https://prow/view/gs/test-platform-results/pr-logs/pull/org_repo/1/pull-ci-org-repo-master-e2e/100"}

		m.githubapiClient.EXPECT().GetLatestPullRequestNumber(gomock.Any(), "org/repo").Return(2, nil).Times(1)
		m.trackerClient.EXPECT().Load(gomock.Any(), "org_repo-pull-requests").Return([]string{}, nil).Times(1)
		m.githubapiClient.EXPECT().GetPullRequest(gomock.Any(), "org/repo", 1).Return(pullRequest1, nil).Times(1)
		m.githubapiClient.EXPECT().GetPullRequest(gomock.Any(), "org/repo", 2).Return(pullRequest2, nil).Times(1)
		m.githubapiClient.EXPECT().GetCommitStatus(gomock.Any(), "org/repo", "sha1").Return(&githubapi.CombinedStatus{Statuses: []githubapi.CommitStatus{e2eStatus}}, nil).Times(1)
		m.githubapiClient.EXPECT().GetCommitStatus(gomock.Any(), "org/repo", "sha2").Return(&githubapi.CombinedStatus{Statuses: []githubapi.CommitStatus{{Context: "ci/prow/images", State: "success"}}}, nil).Times(1)
		m.prowService.EXPECT().NormalizePullRequestStatus(gomock.Any(), "org/repo", *pullRequest1, e2eStatus).Return(&api.BuildRecord{OriginalID: "100"}, nil).Times(1)
		m.logilicaService.EXPECT().UploadBuild(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		m.trackerClient.EXPECT().Append(gomock.Any(), "org_repo-pull-requests", "1").Return(nil).Times(1)

		// act
		summary, err := service.BackfillPullRequests(context.Background(), PullRequestOptions{Repo: "org/repo", ContextPrefix: "ci/prow/e2e"})

		assert.Nil(t, err)
		assert.Equal(t, Summary{Discovered: 2, Total: 2, Succeeded: 1, Skipped: 1}, summary)
	})

	t.Run("SkipsMissingPullRequests", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := getService(ctrl)

		m.trackerClient.EXPECT().Load(gomock.Any(), gomock.Any()).Return([]string{"4"}, nil).Times(1)
		m.githubapiClient.EXPECT().GetPullRequest(gomock.Any(), "org/repo", 5).Return(nil, githubapi.ErrNotFound).Times(1)

		// act
		summary, err := service.BackfillPullRequests(context.Background(), PullRequestOptions{Repo: "org/repo", StartPR: 4, EndPR: 5, ContextPrefix: "ci/prow/e2e"})

		assert.Nil(t, err)
		assert.Equal(t, Summary{Discovered: 2, AlreadyProcessed: 1, Total: 1, Skipped: 1}, summary)
	})

	t.Run("ReturnsErrInvalidRangeIfStartIsAfterEnd", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := getService(ctrl)

		// act
		_, err := service.BackfillPullRequests(context.Background(), PullRequestOptions{Repo: "org/repo", StartPR: 10, EndPR: 5})

		assert.True(t, errors.Is(err, ErrInvalidRange))
	})
}
