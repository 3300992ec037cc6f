package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"

	"intranet/internal/config"
	"intranet/internal/handlers"
	"intranet/internal/service"
	"intranet/internal/storage"
	"intranet/internal/store"
)

func main() {
	// Initialize environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	// Database connection
	db, err := store.Open(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	// Blob storage
	blobs, filesDir, err := newBlobStore(cfg)
	if err != nil {
		log.Fatalf("Failed to set up blob storage: %v", err)
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Users:      service.NewUserService(db),
		Companies:  service.NewProfileService(db, blobs, service.Companies),
		Associates: service.NewProfileService(db, blobs, service.Associates),
		Events:     service.NewEventService(db, blobs),
		FilesDir:   filesDir,
	})

	log.Printf("Starting API server on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}

// newBlobStore picks the configured blob driver. The second return value is
// the local directory to serve under /files, empty for remote storage.
func newBlobStore(cfg *config.Properties) (storage.BlobStore, string, error) {
	switch cfg.Storage.Driver {
	case "s3":
		client, err := newS3Client(cfg)
		if err != nil {
			return nil, "", err
		}
		return storage.NewS3Store(client, cfg.S3.Bucket), "", nil
	default:
		disk, err := storage.NewDiskStore(cfg.Storage.Dir)
		if err != nil {
			return nil, "", err
		}
		return disk, disk.Dir(), nil
	}
}

// newS3Client builds an R2-compatible S3 client.
func newS3Client(cfg *config.Properties) (*s3.Client, error) {
	// Create custom HTTP client with TLS config
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
			MaxVersion: tls.VersionTLS13,
			CipherSuites: []uint16{
				tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
				tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
				tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
				tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
			},
		},
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithHTTPClient(&http.Client{Transport: tr}),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3.AccessKeyID, cfg.S3.AccessKeySecret, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.S3.AccountID))
	}), nil
}
