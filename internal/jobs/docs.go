// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request-driven workflows do not cover.
//
// # Available Jobs
//
// 1. CodeSweepJob - Runs every minute to clear expired proof-of-delivery codes
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep job logs failures and retries on the next tick; a failed sweep
// never affects delivery verification, which checks expiry itself.
package jobs
