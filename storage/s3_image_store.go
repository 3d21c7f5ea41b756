package storage

import (
	"mime/multipart"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const defaultS3Region = "us-east-1"

// S3ImageStore is the production blob backend. Keys map 1:1 onto object
// keys in the bucket.
type S3ImageStore struct {
	bucket   string
	uploader *s3manager.Uploader
	svc      *s3.S3
}

func NewS3ImageStore(bucket string) (*S3ImageStore, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = defaultS3Region
	}
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}

	return &S3ImageStore{
		bucket:   bucket,
		uploader: s3manager.NewUploader(sess),
		svc:      s3.New(sess),
	}, nil
}

func (s *S3ImageStore) Store(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := GenerateKey(file.Filename)
	_, err = s.uploader.Upload(&s3manager.UploadInput{
		ACL:    aws.String("public-read"),
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   src,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s *S3ImageStore) Remove(key string) error {
	if key == "" {
		return nil
	}
	// DeleteObject on a missing key succeeds, which matches the no-op
	// contract.
	_, err := s.svc.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3ImageStore) Replace(oldKey string, file *multipart.FileHeader) (string, error) {
	if err := s.Remove(oldKey); err != nil {
		return "", err
	}
	return s.Store(file)
}

func (s *S3ImageStore) Exists(key string) bool {
	if key == "" {
		return false
	}
	_, err := s.svc.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err == nil
}
