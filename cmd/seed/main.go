package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/common"
	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/user"
	"jobboard/internal/repository/postgres"
)

type seedUser struct {
	username string
	email    string
	password string
	role     user.Role
}

type seedJob struct {
	owner string
	job   job.Job
}

var seedUsers = []seedUser{
	{username: "admin", email: "admin@jobportal.com", password: "admin123", role: user.RoleSuperuser},
	{username: "techcorp_admin", email: "hr@techcorp.com", password: "techcorp123", role: user.RoleCompany},
	{username: "datasoft_admin", email: "hr@datasoft.com", password: "datasoft123", role: user.RoleCompany},
}

var seedJobs = []seedJob{
	{owner: "techcorp_admin", job: job.Job{
		Title:       "Senior Frontend Developer",
		About:       "Join our team to build amazing user interfaces with React and modern web technologies.",
		Description: "We are looking for an experienced Frontend Developer to join our growing team. You will be responsible for building responsive web applications using React, TypeScript, and modern CSS frameworks.",
		SalaryRange: "$80k - $120k",
		Company:     "TechCorp Inc",
		Location:    "San Francisco, CA",
	}},
	{owner: "techcorp_admin", job: job.Job{
		Title:       "DevOps Engineer",
		About:       "Help us build and maintain robust CI/CD pipelines and cloud infrastructure.",
		Description: "Join our DevOps team to manage and improve our infrastructure. You will work with Docker, Kubernetes, and various cloud platforms.",
		SalaryRange: "$95k - $140k",
		Company:     "TechCorp Inc",
		Location:    "Austin, TX",
	}},
	{owner: "datasoft_admin", job: job.Job{
		Title:       "Full Stack Developer",
		About:       "Work on cutting-edge projects using Go, React, and cloud technologies.",
		Description: "We need a talented Full Stack Developer to build scalable web applications and RESTful APIs. Experience with PostgreSQL and cloud platforms expected.",
		SalaryRange: "$90k - $130k",
		Company:     "DataSoft Solutions",
		Location:    "New York, NY",
	}},
	{owner: "datasoft_admin", job: job.Job{
		Title:       "Data Scientist",
		About:       "Analyze complex data sets and build machine learning models to drive business insights.",
		Description: "We are looking for a Data Scientist to help us make data-driven decisions. You will work with large datasets and build predictive models.",
		SalaryRange: "$100k - $150k",
		Company:     "DataSoft Solutions",
		Location:    "Boston, MA",
	}},
}

// Seeds the superuser, two company administrators, and a handful of sample
// postings. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	users := postgres.NewUserRepository(db)
	jobs := postgres.NewJobRepository(db)

	owners := make(map[string]common.UUID)
	for _, seed := range seedUsers {
		existing, err := users.GetByUsername(ctx, seed.username)
		if err == nil {
			owners[seed.username] = existing.ID
			continue
		}
		if !common.Is(err, common.CodeNotFound) {
			log.Fatal(err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		created, err := users.Create(ctx, user.User{
			Username:     seed.username,
			Email:        seed.email,
			PasswordHash: string(hash),
			Role:         seed.role,
		})
		if err != nil {
			log.Fatal(err)
		}
		owners[seed.username] = created.ID
		log.Printf("created user %s (%s)", created.Username, created.Role)
	}

	existing, err := jobs.List(ctx)
	if err != nil {
		log.Fatal(err)
	}
	present := make(map[string]bool, len(existing))
	for _, j := range existing {
		present[j.Title+"|"+j.Company] = true
	}

	created := 0
	for _, seed := range seedJobs {
		if present[seed.job.Title+"|"+seed.job.Company] {
			continue
		}
		seed.job.CreatedBy = owners[seed.owner]
		if _, err := jobs.Create(ctx, seed.job); err != nil {
			log.Fatal(err)
		}
		created++
		log.Printf("created job %q at %s", seed.job.Title, seed.job.Company)
	}
	if created == 0 {
		log.Println("all sample jobs already exist")
	}
}
