package logilica

import (
	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/estafette/estafette-ci-relay/pkg/clients/logilicaapi"
)

const (
	statusCompleted = "Completed"
	origin          = "OpenShift_CI"
	lastActivity    = 1
)

// NewCIBuildPayload maps a build record onto logilica's build, stage and job levels; all three share name, times, status and conclusion
func NewCIBuildPayload(record api.BuildRecord) logilicaapi.CIBuildPayload {

	conclusion := record.Conclusion.String()

	job := logilicaapi.CIJob{
		Name:        record.DisplayName,
		StartedAt:   record.StartedAt,
		CompletedAt: record.CompletedAt,
		Status:      statusCompleted,
		Conclusion:  conclusion,
	}

	stage := logilicaapi.CIStage{
		Name:        record.DisplayName,
		ID:          record.OriginalID,
		URL:         record.DetailsURL,
		StartedAt:   record.StartedAt,
		CompletedAt: record.CompletedAt,
		Status:      statusCompleted,
		Conclusion:  conclusion,
		Jobs:        []logilicaapi.CIJob{job},
	}

	return logilicaapi.CIBuildPayload{
		{
			Origin:      origin,
			OriginalID:  record.OriginalID,
			Name:        record.DisplayName,
			URL:         record.DetailsURL,
			StartedAt:   record.StartedAt,
			CreatedAt:   record.StartedAt,
			CompletedAt: record.CompletedAt,
			TriggeredBy: logilicaapi.TriggeredBy{
				Name:         record.TriggeredBy.Name,
				Email:        record.TriggeredBy.Email,
				AccountID:    record.TriggeredBy.AccountID,
				LastActivity: lastActivity,
			},
			Status:          statusCompleted,
			Conclusion:      conclusion,
			RepoURL:         record.RepoURL(),
			Commit:          record.CommitSha,
			PullRequestURLs: []string{record.DetailsURL},
			IsDeployment:    true,
			Stages:          []logilicaapi.CIStage{stage},
		},
	}
}
