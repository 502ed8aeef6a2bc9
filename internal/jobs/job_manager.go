package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	reportJob *ReportJob
}

func NewJobManager(reportJob *ReportJob) *JobManager {
	return &JobManager{
		reportJob: reportJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reportJob.Start(); err != nil {
		return fmt.Errorf("failed to start report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reportJob.Stop()
}
