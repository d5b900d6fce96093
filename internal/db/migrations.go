package db

import (
	"fmt"

	"gorm.io/gorm"
)

// Each statement is a no-op when the journey table does not exist.
var migrationStatements = []string{
	`DO $$
	BEGIN
		IF EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'analytics_journey_report') THEN
			CREATE INDEX IF NOT EXISTS idx_analytics_journey_report_created_at
				ON analytics_journey_report (created_at);
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'analytics_journey_report') THEN
			CREATE INDEX IF NOT EXISTS idx_analytics_journey_report_completed
				ON analytics_journey_report (created_at)
				WHERE ignition_end_time IS NOT NULL;
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
