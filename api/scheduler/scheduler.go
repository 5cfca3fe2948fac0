// Package scheduler runs the periodic background jobs of the fleet manager.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/fleetworks/fleet-manager-api/databases"
	"github.com/fleetworks/fleet-manager-api/models"
)

// Scheduler handles periodic background jobs, currently the nightly
// compliance status refresh.
type Scheduler struct {
	cron *cron.Cron
	CDB  databases.ComplianceDatabase
}

// NewScheduler creates a new scheduler instance
func NewScheduler(cDB databases.ComplianceDatabase) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		CDB:  cDB,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Refresh stored compliance statuses daily at 1 AM UTC
	_, err := s.cron.AddFunc("0 1 * * *", s.refreshComplianceStatuses)
	if err != nil {
		zap.S().Errorw("failed to register compliance refresh job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Compliance scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Compliance scheduler stopped")
}

// refreshComplianceStatuses recomputes every document's status and
// days-to-expiry from its expiry date and persists the ones that changed.
// Reports always recompute at generation time; the stored values exist for
// list views and expiring-document queries.
func (s *Scheduler) refreshComplianceStatuses() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	now := time.Now().UTC()
	zap.S().Infow("Running compliance status refresh job")

	docs, err := s.CDB.Find(ctx, bson.M{})
	if err != nil {
		zap.S().Errorw("failed to fetch compliance documents", "error", err)
		return
	}

	updated := 0
	for _, doc := range docs {
		days := models.DaysToExpiry(doc.ExpiryDate, now)
		status := models.ComplianceStatusForDays(days)
		if doc.Status == status && doc.DaysToExpiry == days {
			continue
		}
		err := s.CDB.UpdateOne(ctx,
			bson.M{"_id": doc.ID},
			bson.M{"$set": bson.M{"status": status, "daysToExpiry": days}},
		)
		if err != nil {
			zap.S().Errorw("failed to update compliance status",
				"documentId", doc.ID.Hex(),
				"error", err)
			continue
		}
		updated++
	}

	zap.S().Infow("Compliance status refresh complete",
		"documents", len(docs),
		"updated", updated)
}
