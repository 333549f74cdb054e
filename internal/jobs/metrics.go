package jobs

import (
	"sync"
	"time"

	"github.com/gcbaptista/go-fuzzy-bench/model"
)

// JobMetricsData is a point-in-time metrics snapshot without the mutex,
// safe for copying and JSON encoding
type JobMetricsData struct {
	JobsCreated                int64                           `json:"jobs_created"`
	JobsCompleted              int64                           `json:"jobs_completed"`
	JobsFailed                 int64                           `json:"jobs_failed"`
	TotalExecutionTime         time.Duration                   `json:"total_execution_time_ns"`
	AverageExecutionTime       time.Duration                   `json:"average_execution_time_ns"`
	AverageExecutionTimeByType map[model.JobType]time.Duration `json:"average_execution_time_by_type_ns"`
	JobsByType                 map[model.JobType]int64         `json:"jobs_by_type"`
	JobsByStatus               map[model.JobStatus]int64       `json:"jobs_by_status"`
	LastUpdated                time.Time                       `json:"last_updated"`
}

// JobMetrics tracks performance metrics for job operations
type JobMetrics struct {
	mu                   sync.RWMutex
	jobsCreated          int64
	jobsCompleted        int64
	jobsFailed           int64
	totalExecutionTime   time.Duration
	jobsByType           map[model.JobType]int64
	jobsByStatus         map[model.JobStatus]int64
	executionTimesByType map[model.JobType][]time.Duration
	lastUpdated          time.Time
}

// NewJobMetrics creates a new metrics collector
func NewJobMetrics() *JobMetrics {
	return &JobMetrics{
		jobsByType:           make(map[model.JobType]int64),
		jobsByStatus:         make(map[model.JobStatus]int64),
		executionTimesByType: make(map[model.JobType][]time.Duration),
		lastUpdated:          time.Now(),
	}
}

// RecordJobCreated increments job creation counters
func (m *JobMetrics) RecordJobCreated(jobType model.JobType) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.jobsCreated++
	m.jobsByType[jobType]++
	m.jobsByStatus[model.JobStatusPending]++
	m.lastUpdated = time.Now()
}

// RecordJobStatusChange updates status counters
func (m *JobMetrics) RecordJobStatusChange(oldStatus, newStatus model.JobStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if oldStatus != "" {
		m.jobsByStatus[oldStatus]--
		if m.jobsByStatus[oldStatus] < 0 {
			m.jobsByStatus[oldStatus] = 0
		}
	}
	m.jobsByStatus[newStatus]++
	m.lastUpdated = time.Now()
}

// RecordJobCompleted records successful job completion
func (m *JobMetrics) RecordJobCompleted(jobType model.JobType, executionTime time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.jobsCompleted++
	m.totalExecutionTime += executionTime

	// Track execution times by type
	m.executionTimesByType[jobType] = append(m.executionTimesByType[jobType], executionTime)

	// Keep only last 100 execution times per type to prevent memory growth
	if len(m.executionTimesByType[jobType]) > 100 {
		m.executionTimesByType[jobType] = m.executionTimesByType[jobType][1:]
	}

	m.lastUpdated = time.Now()
}

// RecordJobFailed records job failure
func (m *JobMetrics) RecordJobFailed(jobType model.JobType) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.jobsFailed++
	m.lastUpdated = time.Now()
}

// GetMetrics returns a copy of current metrics, including per-type average
// execution times computed from the retained samples
func (m *JobMetrics) GetMetrics() JobMetricsData {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Create deep copies of the maps
	jobsByType := make(map[model.JobType]int64)
	for k, v := range m.jobsByType {
		jobsByType[k] = v
	}

	jobsByStatus := make(map[model.JobStatus]int64)
	for k, v := range m.jobsByStatus {
		jobsByStatus[k] = v
	}

	averageByType := make(map[model.JobType]time.Duration)
	for jobType, times := range m.executionTimesByType {
		if len(times) == 0 {
			continue
		}
		var total time.Duration
		for _, t := range times {
			total += t
		}
		averageByType[jobType] = total / time.Duration(len(times))
	}

	var average time.Duration
	if m.jobsCompleted > 0 {
		average = m.totalExecutionTime / time.Duration(m.jobsCompleted)
	}

	return JobMetricsData{
		JobsCreated:                m.jobsCreated,
		JobsCompleted:              m.jobsCompleted,
		JobsFailed:                 m.jobsFailed,
		TotalExecutionTime:         m.totalExecutionTime,
		AverageExecutionTime:       average,
		AverageExecutionTimeByType: averageByType,
		JobsByType:                 jobsByType,
		JobsByStatus:               jobsByStatus,
		LastUpdated:                m.lastUpdated,
	}
}

// GetAverageExecutionTimeByType returns the average execution time for a
// specific job type over the retained samples
func (m *JobMetrics) GetAverageExecutionTimeByType(jobType model.JobType) time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	times := m.executionTimesByType[jobType]
	if len(times) == 0 {
		return 0
	}

	var total time.Duration
	for _, t := range times {
		total += t
	}
	return total / time.Duration(len(times))
}

// GetSuccessRate returns the success rate (0.0 to 1.0)
func (m *JobMetrics) GetSuccessRate() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	totalCompleted := m.jobsCompleted + m.jobsFailed
	if totalCompleted == 0 {
		return 1.0 // No jobs yet, assume 100% success
	}
	return float64(m.jobsCompleted) / float64(totalCompleted)
}

// GetCurrentWorkload returns the number of currently active jobs
func (m *JobMetrics) GetCurrentWorkload() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.jobsByStatus[model.JobStatusPending] + m.jobsByStatus[model.JobStatusRunning]
}
