// Command seed fills the submission collection with demo employer leads for
// local development. It also creates the indexes the API relies on, so running
// it once against a fresh database is enough to exercise the whole pipeline,
// including the duplicate-submission error path.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studentjobsgroningen/site-services/api/internal/config"
	"github.com/studentjobsgroningen/site-services/api/internal/employer/domain"
	infmongo "github.com/studentjobsgroningen/site-services/api/internal/infrastructure/mongo"
)

type seedOptions struct {
	envFile         string
	submissionCount int
	dropCollection  bool
	randomSeed      int64
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.StringVar(&opts.envFile, "env", ".env", "env file to load before reading configuration")
	flag.IntVar(&opts.submissionCount, "submissions", 12, "number of demo submissions to insert")
	flag.BoolVar(&opts.dropCollection, "drop", false, "drop the submission collection first")
	flag.Int64Var(&opts.randomSeed, "seed", 1, "random seed for generated data")
	flag.Parse()
	return opts
}

func main() {
	opts := parseFlags()

	if err := godotenv.Load(opts.envFile); err != nil {
		log.Printf("env file %s not loaded: %v", opts.envFile, err)
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("mongodb connect failed: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(cfg.MongoDatabase)
	collection := db.Collection(cfg.SubmissionCollection)

	if opts.dropCollection {
		if err := collection.Drop(ctx); err != nil {
			log.Fatalf("dropping %s failed: %v", cfg.SubmissionCollection, err)
		}
		log.Printf("dropped collection %s", cfg.SubmissionCollection)
	}

	if err := ensureIndexes(ctx, collection); err != nil {
		log.Fatalf("index creation failed: %v", err)
	}

	rng := rand.New(rand.NewSource(opts.randomSeed))
	repo := infmongo.NewSubmissionRepository(db, cfg.SubmissionCollection)

	inserted := 0
	for _, submission := range generateSubmissions(rng, cfg, opts.submissionCount) {
		id, err := repo.Insert(ctx, submission)
		if err != nil {
			log.Printf("skipping %s / %s: %v", submission.Company, submission.JobTitle, err)
			continue
		}
		log.Printf("inserted %s (%s / %s)", id, submission.Company, submission.JobTitle)
		inserted++
	}

	log.Printf("done: %d submissions inserted", inserted)
}

// ensureIndexes creates the indexes the API expects. The unique company+title
// index is what turns a re-submitted posting into a duplicate-key write error.
func ensureIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "company", Value: 1}, {Key: "job_title", Value: 1}},
			Options: options.Index().
				SetName("unique_company_job_title").
				SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("status_created_at"),
		},
	})
	return err
}

var demoCompanies = []string{
	"Cafe De Sigaar",
	"Broodje Ben",
	"Fietskoerier Noord",
	"Studiehulp 050",
	"De Drie Gezusters",
	"Noorderzon Events",
}

var demoTitles = []string{
	"Barista",
	"Bezorger",
	"Weekend Hulp",
	"Bijles Wiskunde",
	"Bar Medewerker",
	"Event Crew",
}

var demoCategories = []string{"hospitality", "delivery", "retail", "tutoring", "events"}

func generateSubmissions(rng *rand.Rand, cfg config.Config, count int) []domain.Submission {
	submissions := make([]domain.Submission, 0, count)
	for i := 0; i < count; i++ {
		company := demoCompanies[i%len(demoCompanies)]
		title := demoTitles[i%len(demoTitles)]
		minRate := 12 + rng.Float64()*4
		maxRate := minRate + rng.Float64()*4

		submission := domain.Submission{
			Company:         company,
			ContactName:     fmt.Sprintf("Demo Contact %d", i+1),
			Email:           fmt.Sprintf("demo%d@example.com", i+1),
			JobTitle:        fmt.Sprintf("%s %d", title, i+1),
			EmploymentType:  domain.DefaultEmploymentType,
			Category:        demoCategories[rng.Intn(len(demoCategories))],
			City:            cfg.DefaultCity,
			Region:          cfg.Region,
			Description:     fmt.Sprintf("Demo listing for a %s position at %s. Flexible hours, suitable for students, no prior experience needed.", title, company),
			EnglishFriendly: rng.Intn(2) == 0,
			Plan:            domain.DefaultPlan,
			Status:          domain.StatusPending,
		}
		submission.BaseSalaryMin = &minRate
		submission.BaseSalaryMax = &maxRate
		submissions = append(submissions, submission)
	}
	return submissions
}
