package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	workersrepo "github.com/staffline/workforce/domains/workers/be/repo"
	workersservice "github.com/staffline/workforce/domains/workers/be/service"
	workplacesrepo "github.com/staffline/workforce/domains/workplaces/be/repo"
	workplacesservice "github.com/staffline/workforce/domains/workplaces/be/service"
	"github.com/staffline/workforce/platform/go/persistence"
)

// Command groups the demo data helpers.
func Command() *cobra.Command {
	var (
		databaseURL    string
		workerCount    int
		workplaceCount int
		randomSeed     uint64
	)

	c := &cobra.Command{
		Use:   "seed",
		Short: "Insert fake workers and workplaces",
		Long:  "Insert fake workers and workplaces through the domain services, so every record passes the same validation as API traffic.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workerCount < 0 || workplaceCount < 0 {
				return fmt.Errorf("--workers and --workplaces must not be negative")
			}

			ctx := context.Background()

			pool, err := openPool(ctx, databaseURL)
			if err != nil {
				return err
			}
			defer persistence.ClosePool(pool)

			workerStore, err := persistence.NewWorkerStore(pool)
			if err != nil {
				return fmt.Errorf("init worker store: %w", err)
			}
			workplaceStore, err := persistence.NewWorkplaceStore(pool)
			if err != nil {
				return fmt.Errorf("init workplace store: %w", err)
			}

			s := newSeeder(
				gofakeit.New(randomSeed),
				workersservice.New(workersrepo.NewPostgresRepository(workerStore)),
				workplacesservice.New(workplacesrepo.NewPostgresRepository(workplaceStore)),
			)

			result, err := s.run(ctx, workerCount, workplaceCount)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seed complete. Workers: %d created, %d skipped | Workplaces: %d created\n",
				result.workers, result.skippedWorkers, result.workplaces)
			return nil
		},
	}

	c.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string (defaults to DATABASE_URL)")
	c.Flags().IntVar(&workerCount, "workers", 100, "Number of workers to create")
	c.Flags().IntVar(&workplaceCount, "workplaces", 25, "Number of workplaces to create")
	c.Flags().Uint64Var(&randomSeed, "seed", 0, "Faker seed for reproducible data (0 picks a random seed)")

	c.AddCommand(purgeCommand(&databaseURL))
	return c
}

func purgeCommand(databaseURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete every worker and workplace row",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			pool, err := openPool(ctx, *databaseURL)
			if err != nil {
				return err
			}
			defer persistence.ClosePool(pool)

			workerStore, err := persistence.NewWorkerStore(pool)
			if err != nil {
				return fmt.Errorf("init worker store: %w", err)
			}
			workplaceStore, err := persistence.NewWorkplaceStore(pool)
			if err != nil {
				return fmt.Errorf("init workplace store: %w", err)
			}

			workers, workplaces, err := purge(ctx, workerStore, workplaceStore)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Purge complete. Workers: %d deleted | Workplaces: %d deleted\n", workers, workplaces)
			return nil
		},
	}
}

func openPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("--database-url or DATABASE_URL is required")
	}

	pool, err := persistence.NewPool(ctx, persistence.PoolConfig{ConnString: databaseURL})
	if err != nil {
		return nil, fmt.Errorf("init pool: %w", err)
	}
	return pool, nil
}

type workerCreator interface {
	Create(ctx context.Context, input workersservice.CreateInput) (workersservice.Worker, error)
}

type workplaceCreator interface {
	Create(ctx context.Context, input workplacesservice.CreateInput) (workplacesservice.Workplace, error)
}

type seedResult struct {
	workers        int
	skippedWorkers int
	workplaces     int
}

type seeder struct {
	faker      *gofakeit.Faker
	workers    workerCreator
	workplaces workplaceCreator
}

func newSeeder(faker *gofakeit.Faker, workers workerCreator, workplaces workplaceCreator) *seeder {
	return &seeder{faker: faker, workers: workers, workplaces: workplaces}
}

// run creates the requested records. A worker whose generated email already
// exists is skipped rather than failing the whole run.
func (s *seeder) run(ctx context.Context, workerCount, workplaceCount int) (seedResult, error) {
	var result seedResult

	for i := 0; i < workerCount; i++ {
		if _, err := s.workers.Create(ctx, s.workerInput(i)); err != nil {
			if errors.Is(err, workersservice.ErrConflict) {
				result.skippedWorkers++
				continue
			}
			return result, fmt.Errorf("create worker %d: %w", i, err)
		}
		result.workers++
	}

	for i := 0; i < workplaceCount; i++ {
		if _, err := s.workplaces.Create(ctx, s.workplaceInput()); err != nil {
			return result, fmt.Errorf("create workplace %d: %w", i, err)
		}
		result.workplaces++
	}

	return result, nil
}

func (s *seeder) workerInput(i int) workersservice.CreateInput {
	first := s.faker.FirstName()
	last := s.faker.LastName()

	return workersservice.CreateInput{
		FirstName: first,
		LastName:  last,
		Email:     fmt.Sprintf("%s.%s.%d@%s", emailPart(first), emailPart(last), i, s.faker.DomainName()),
	}
}

func (s *seeder) workplaceInput() workplacesservice.CreateInput {
	input := workplacesservice.CreateInput{
		Name:     s.faker.Company(),
		Address1: s.faker.Street(),
		City:     s.faker.City(),
		State:    s.faker.StateAbr(),
		Zip:      s.faker.Numerify("#####"),
	}

	if s.faker.Bool() {
		suite := s.faker.Numerify("Suite ###")
		input.Address2 = &suite
	}

	return input
}

func emailPart(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return unicode.ToLower(r)
		}
		return -1
	}, name)
	if cleaned == "" {
		return "user"
	}
	return cleaned
}

type workerPurger interface {
	PurgeWorkers(ctx context.Context) (int64, error)
}

type workplacePurger interface {
	PurgeWorkplaces(ctx context.Context) (int64, error)
}

func purge(ctx context.Context, workers workerPurger, workplaces workplacePurger) (int64, int64, error) {
	deletedWorkers, err := workers.PurgeWorkers(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("purge workers: %w", err)
	}

	deletedWorkplaces, err := workplaces.PurgeWorkplaces(ctx)
	if err != nil {
		return deletedWorkers, 0, fmt.Errorf("purge workplaces: %w", err)
	}

	return deletedWorkers, deletedWorkplaces, nil
}
