package main

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/kryon-dev/kir/internal/errors"
	"github.com/kryon-dev/kir/pkg/kir"
	"github.com/kryon-dev/kir/pkg/store"
)

func publishCmd() *cobra.Command {
	var (
		name     string
		dir      string
		s3Bucket string
		s3Prefix string
	)

	cmd := &cobra.Command{
		Use:   "publish <file>",
		Short: "Push a document to a disk or S3 store",
		Long: `Validate a document and store its canonical encoding.

By default documents are written to a local directory store. With
--s3-bucket they are uploaded to S3 instead; AWS credentials and
region come from the usual environment and shared config files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(args[0], name, dir, s3Bucket, s3Prefix)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Document name in the store (default: input basename)")
	cmd.Flags().StringVar(&dir, "dir", ".kir-store", "Directory for the disk store")
	cmd.Flags().StringVar(&s3Bucket, "s3-bucket", "", "Publish to this S3 bucket instead of disk")
	cmd.Flags().StringVar(&s3Prefix, "s3-prefix", "kir/", "Key prefix for S3 objects")

	return cmd
}

func runPublish(path, name, dir, s3Bucket, s3Prefix string) error {
	doc, err := readDocument(path)
	if err != nil {
		return err
	}
	if _, err := kir.Decode(doc); err != nil {
		return decodeError(err)
	}
	data, err := kir.MarshalIndent(doc)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := newStore(ctx, dir, s3Bucket, s3Prefix)
	if err != nil {
		return err
	}

	url, err := st.Put(ctx, name, data)
	if stderrors.Is(err, store.ErrBadName) {
		return errors.New("E400").WithMessagef("Invalid document name: %s", name).Wrap(err)
	}
	if err != nil {
		return errors.New("E402").Wrap(err)
	}

	success("published %s", url)
	return nil
}

func newStore(ctx context.Context, dir, s3Bucket, s3Prefix string) (store.Store, error) {
	if s3Bucket == "" {
		st, err := store.NewDiskStore(dir, nil)
		if err != nil {
			return nil, errors.New("E402").Wrap(err)
		}
		return st, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.New("E402").Wrap(err)
	}
	return store.NewS3Store(s3.NewFromConfig(cfg), s3Bucket, s3Prefix), nil
}
