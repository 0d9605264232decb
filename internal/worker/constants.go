package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, dropping job"
	LogMsgPoolStarted     = "Worker pool started"
	LogMsgPoolStopped     = "Worker pool stopped"
)

// DefaultJobTimeout bounds a single background job.
const DefaultJobTimeout = 30 * time.Second

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
