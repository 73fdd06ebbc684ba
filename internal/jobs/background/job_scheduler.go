package background

import (
	"context"
	"log"
	"time"

	"chenu2/internal/repositories"
	"chenu2/internal/services"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler runs the platform's periodic maintenance: purging expired
// admin refresh tokens and keeping the option-listing cache warm for every
// company so the first quote of the day doesn't pay the cold-read cost.
type JobScheduler struct {
	scheduler gocron.Scheduler
	tokens    repositories.TokenRepository
	companies repositories.CompanyRepository
	catalog   services.CatalogService
}

func NewJobScheduler(tokens repositories.TokenRepository, companies repositories.CompanyRepository, catalog services.CatalogService) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler: scheduler,
		tokens:    tokens,
		companies: companies,
		catalog:   catalog,
	}
	js.registerJobs()
	return js, nil
}

// Start starts the job scheduler
func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	if _, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(js.purgeExpiredTokens),
		gocron.WithName("expired-token-purge"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		log.Printf("Failed to create token purge job: %v", err)
	}

	if _, err := js.scheduler.NewJob(
		gocron.DurationJob(15*time.Minute),
		gocron.NewTask(js.warmCatalogCache),
		gocron.WithName("catalog-cache-warm"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		log.Printf("Failed to create cache warm job: %v", err)
	}
}

func (js *JobScheduler) purgeExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := js.tokens.DeleteExpired(ctx)
	if err != nil {
		log.Printf("ERROR: expired token purge failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("purged %d expired refresh tokens", deleted)
	}
}

func (js *JobScheduler) warmCatalogCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	companies, err := js.companies.List(ctx)
	if err != nil {
		log.Printf("ERROR: cache warm could not list companies: %v", err)
		return
	}

	for _, company := range companies {
		// reading through the catalog service repopulates the cache entry
		if _, err := js.catalog.OptionsForProduct(ctx, company.ID, 0); err != nil {
			log.Printf("WARN: cache warm failed for company %d: %v", company.ID, err)
		}
	}
}
