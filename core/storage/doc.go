// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so captured screenshots can be mirrored to AWS S3 or a
// self-hosted MinIO instance. Storage is optional: when disabled the capture feature
// keeps screenshots in memory (and optionally on local disk) only.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider, making it easy to mock
// storage interactions in unit tests (see core/storage/mocks).
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the bucket if needed (see EnsureBucket).
//   - PutObject: Uploads content.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
