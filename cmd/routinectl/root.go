package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/2beens/physioroutines/internal/catalog"
	"github.com/2beens/physioroutines/internal/config"
	"github.com/2beens/physioroutines/internal/db"
	"github.com/2beens/physioroutines/internal/logging"
	"github.com/2beens/physioroutines/internal/storage"
	"github.com/2beens/physioroutines/internal/tracker"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app holds the flags and the opened stores shared by all commands.
type app struct {
	env        string
	configPath string
	storageDir string
	logLevel   string
	jsonOutput bool
	timeout    time.Duration

	backend     storage.Backend
	redisClient *redis.Client
	tracker     *tracker.Tracker
	catalog     *catalog.Catalog
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "routinectl",
		Short:         "Manage physiotherapy routines and progress",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(logging.LoggerSetupParams{LogLevel: a.logLevel})
			log.SetOutput(cmd.ErrOrStderr())
			return a.open(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.env, "env", "development", "config environment [dev | prod]")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().StringVar(&a.storageDir, "storage-dir", "", "use the file storage in this dir, ignoring the config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "print JSON instead of tables")
	rootCmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 30*time.Second, "storage operation timeout")

	rootCmd.AddCommand(
		a.newRoutinesCmd(),
		a.newLogCmd(),
		a.newStatsCmd(),
		a.newRecentCmd(),
		a.newProgressCmd(),
		a.newCatalogCmd(),
		a.newPlayCmd(),
	)

	return rootCmd
}

func (a *app) open(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var (
		cfg *config.Config
		err error
	)
	if a.storageDir != "" {
		cfg = &config.Config{
			StorageDriver: string(storage.DriverFile),
			FileRootPath:  a.storageDir,
		}
	} else {
		cfg, err = config.Load(a.env, a.configPath)
		if err != nil {
			return err
		}
	}

	if cfg.RedisEnabled() && cfg.Driver() == storage.DriverRedis {
		a.redisClient = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: os.Getenv("PHYSIO_REDIS_PASS"),
		})
	}

	a.backend, err = storage.Open(ctx, &storage.OpenParams{
		Driver:          cfg.Driver(),
		FileRootPath:    cfg.FileRootPath,
		MemorySizeBytes: cfg.MemorySizeMB * 1024 * 1024,
		RedisClient:     a.redisClient,
		Postgres: db.NewDBPoolParams{
			DBHost:     cfg.PostgresHost,
			DBPort:     cfg.PostgresPort,
			DBName:     cfg.PostgresName,
			DBUser:     cfg.PostgresUser,
			DBPassword: os.Getenv("PHYSIO_DB_PASSWORD"),
		},
		SqlitePath: cfg.SqlitePath,
		S3: storage.S3Params{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			PathStyle:       cfg.S3PathStyle,
			Prefix:          cfg.S3Prefix,
			AccessKeyID:     os.Getenv("PHYSIO_S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("PHYSIO_S3_SECRET_ACCESS_KEY"),
		},
	})
	if err != nil {
		a.close()
		return fmt.Errorf("open storage: %w", err)
	}

	a.tracker, err = tracker.Open(ctx, tracker.Params{
		Backend: a.backend,
		Key:     cfg.DocumentKey,
	})
	if err != nil {
		a.close()
		return err
	}

	var seed []catalog.Exercise
	if cfg.CatalogSeedPath != "" {
		if seed, err = catalog.LoadSeedFile(cfg.CatalogSeedPath); err != nil {
			a.close()
			return err
		}
	}
	var opts []catalog.Option
	if cfg.CatalogKey != "" {
		opts = append(opts, catalog.WithKey(cfg.CatalogKey))
	}
	a.catalog = catalog.Load(ctx, a.backend, seed, opts...)

	return nil
}

func (a *app) close() {
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			log.Errorf("close storage: %s", err)
		}
		a.backend = nil
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			log.Errorf("close redis: %s", err)
		}
		a.redisClient = nil
	}
}

func (a *app) printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var errNotFound = errors.New("not found")
