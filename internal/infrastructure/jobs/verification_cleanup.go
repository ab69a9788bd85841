package jobs

import (
	"context"
	"log"
	"time"
)

// codeCleaner is the slice of the cleanup usecase this job needs
type codeCleaner interface {
	CleanExpiredCodes(ctx context.Context) (int, error)
}

// VerificationCleanupJob periodically removes expired verification codes
type VerificationCleanupJob struct {
	cleaner  codeCleaner
	interval time.Duration
	stop     chan struct{}
}

func NewVerificationCleanupJob(cleaner codeCleaner, interval time.Duration) *VerificationCleanupJob {
	return &VerificationCleanupJob{
		cleaner:  cleaner,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *VerificationCleanupJob) Start(ctx context.Context) {
	log.Println("🕐 Starting verification code cleanup job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Verification code cleanup job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Verification code cleanup job stopped")
			return
		case <-ticker.C:
			j.processExpiredCodes(ctx)
		}
	}
}

func (j *VerificationCleanupJob) Stop() {
	close(j.stop)
}

func (j *VerificationCleanupJob) processExpiredCodes(ctx context.Context) {
	deleted, err := j.cleaner.CleanExpiredCodes(ctx)
	if err != nil {
		log.Printf("❌ Error cleaning expired verification codes: %v", err)
		return
	}
	if deleted == 0 {
		return
	}
	log.Printf("✅ Removed %d expired verification codes", deleted)
}
