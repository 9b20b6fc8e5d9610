package utils

import (
	"cultura/cms"
	"cultura/config"
	"cultura/database"
	"log"

	"github.com/robfig/cron/v3"
)

// InitializeCatalogScheduler runs an initial CMS catalog sync and schedules
// periodic re-syncs so the mirrored catalog tracks CMS edits.
func InitializeCatalogScheduler() {
	log.Println("[CMS-SYNC] Initializing catalog scheduler...")

	client := cms.NewClient(config.AppConfig.CMSBaseURL, config.AppConfig.CMSAPIKey)

	// Initial sync at startup; a CMS outage must not prevent boot, the
	// previous mirror keeps serving.
	if err := cms.SyncCatalog(database.Database.Db, client); err != nil {
		log.Printf("[CMS-SYNC] Initial sync failed, serving existing mirror: %v", err)
	}

	c := cron.New()
	if _, err := c.AddFunc(config.AppConfig.CMSSyncCron, func() {
		if err := cms.SyncCatalog(database.Database.Db, client); err != nil {
			log.Printf("[CMS-SYNC] Scheduled sync failed: %v", err)
		}
	}); err != nil {
		log.Printf("[CMS-SYNC] Invalid cron spec %q: %v", config.AppConfig.CMSSyncCron, err)
		return
	}

	c.Start()
	log.Printf("[CMS-SYNC] Catalog scheduler started with spec %q", config.AppConfig.CMSSyncCron)
}
