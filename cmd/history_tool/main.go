// Package main exports the finished workout history to a JSON file and,
// with -clear, wipes it from the store afterwards.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/2beens/sensefit/internal"
	"github.com/2beens/sensefit/internal/config"
	"github.com/2beens/sensefit/internal/logging"
	"github.com/2beens/sensefit/internal/workout"
	"github.com/2beens/sensefit/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	fromDate := flag.String("from", "", "export workouts from this date (YYYY-MM-DD or RFC3339)")
	toDate := flag.String("to", "", "export workouts up to this date, inclusive")
	outDir := flag.String("out", "./history_export", "directory to write the export into")
	clearAfter := flag.Bool("clear", false, "clear the whole history after a successful export")
	archive := flag.Bool("archive", false, "also write a tar.gz of the export directory")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logging.Setup(logging.LoggerSetupParams{
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	if err := run(*fromDate, *toDate, *outDir, *clearAfter, *archive, cfg); err != nil {
		log.Fatalf("history tool: %s", err)
	}
}

func run(fromDate, toDate, outDir string, clearAfter, archive bool, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	from, to, err := workout.ParseDateRange(fromDate, toDate)
	if err != nil {
		return err
	}

	storage, err := internal.OpenStorage(ctx, internal.OpenStorageParams{
		Config:           cfg,
		RedisPassword:    os.Getenv("SENSEFIT_REDIS_PASS"),
		PostgresPassword: os.Getenv("SENSEFIT_POSTGRES_PASS"),
	})
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Errorf("close storage: %s", err)
		}
	}()

	repo := workout.NewRepo(storage.Store, nil)
	path, count, err := exportHistory(ctx, repo, from, to, outDir, time.Now())
	if err != nil {
		return err
	}
	log.Infof("exported %d workouts to %s", count, path)

	if archive {
		archivePath := filepath.Clean(outDir) + ".tar.gz"
		f, err := os.Create(archivePath)
		if err != nil {
			return fmt.Errorf("create archive: %w", err)
		}
		if err := pkg.Compress(outDir, f); err != nil {
			_ = f.Close()
			return fmt.Errorf("compress export: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close archive: %w", err)
		}
		log.Infof("archive written to %s", archivePath)
	}

	if clearAfter {
		if err := repo.ClearAll(ctx); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		log.Warnln("workout history cleared")
	}
	return nil
}

type historyReader interface {
	GetByDateRange(ctx context.Context, from, to time.Time) []workout.Workout
}

// exportHistory writes the workouts in [from, to] as indented JSON into outDir.
func exportHistory(
	ctx context.Context,
	repo historyReader,
	from, to time.Time,
	outDir string,
	now time.Time,
) (string, int, error) {
	list := repo.GetByDateRange(ctx, from, to)
	if list == nil {
		list = []workout.Workout{}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("create export dir: %w", err)
	}

	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return "", 0, fmt.Errorf("marshal workouts: %w", err)
	}

	path := filepath.Join(outDir, fmt.Sprintf("workouts_%s.json", now.UTC().Format("20060102_150405")))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", 0, fmt.Errorf("write export: %w", err)
	}
	return path, len(list), nil
}
