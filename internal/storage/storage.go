package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

//go:generate mockgen -source=$GOFILE -destination=../routines/backend_mocks_test.go -package=routines_test

// Backend is a key-value store holding whole documents as opaque blobs.
// Reads of a missing key return ErrNotFound.
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Close() error
}

type Driver string

const (
	DriverFile     Driver = "file"
	DriverMemory   Driver = "memory"
	DriverRedis    Driver = "redis"
	DriverPostgres Driver = "postgres"
	DriverSqlite   Driver = "sqlite"
	DriverS3       Driver = "s3"
)

func ParseDriver(s string) (Driver, error) {
	d := Driver(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DriverFile, DriverMemory, DriverRedis, DriverPostgres, DriverSqlite, DriverS3:
		return d, nil
	case "":
		return DriverFile, nil
	default:
		return "", fmt.Errorf("unknown storage driver: %s", s)
	}
}
