package logilicaapi

// Repository is a repository known to logilica
type Repository struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TriggeredBy identifies the account that started a ci build
type TriggeredBy struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	AccountID    string `json:"accountId"`
	LastActivity int64  `json:"lastActivity"`
}

// CIJob is the innermost level of a ci build
type CIJob struct {
	Name        string `json:"name"`
	StartedAt   int64  `json:"startedAt"`
	CompletedAt int64  `json:"completedAt"`
	Status      string `json:"status"`
	Conclusion  string `json:"conclusion"`
}

// CIStage groups the jobs of a ci build
type CIStage struct {
	Name        string  `json:"name"`
	ID          string  `json:"id"`
	URL         string  `json:"url"`
	StartedAt   int64   `json:"startedAt"`
	CompletedAt int64   `json:"completedAt"`
	Status      string  `json:"status"`
	Conclusion  string  `json:"conclusion"`
	Jobs        []CIJob `json:"jobs"`
}

// CIBuild is a single ci build as accepted by the logilica import api
type CIBuild struct {
	Origin          string      `json:"origin"`
	OriginalID      string      `json:"originalID"`
	Name            string      `json:"name"`
	URL             string      `json:"url"`
	StartedAt       int64       `json:"startedAt"`
	CreatedAt       int64       `json:"createdAt"`
	CompletedAt     int64       `json:"completedAt"`
	TriggeredBy     TriggeredBy `json:"triggeredBy"`
	Status          string      `json:"status"`
	Conclusion      string      `json:"conclusion"`
	RepoURL         string      `json:"repoUrl"`
	Commit          string      `json:"commit"`
	PullRequestURLs []string    `json:"pullRequestUrls"`
	IsDeployment    bool        `json:"isDeployment"`
	Stages          []CIStage   `json:"stages"`
}

// CIBuildPayload is the body for the create ci build call; the api takes a list even though the relay always sends one build
type CIBuildPayload []CIBuild
