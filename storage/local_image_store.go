package storage

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// LocalImageStore keeps blobs as plain files in one directory. It is the
// development and test backend.
type LocalImageStore struct {
	dir string
}

func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	return &LocalImageStore{dir: dir}, nil
}

func (s *LocalImageStore) Store(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := GenerateKey(file.Filename)
	dst, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return key, nil
}

func (s *LocalImageStore) Remove(key string) error {
	if key == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *LocalImageStore) Replace(oldKey string, file *multipart.FileHeader) (string, error) {
	if err := s.Remove(oldKey); err != nil {
		return "", err
	}
	return s.Store(file)
}

func (s *LocalImageStore) Exists(key string) bool {
	if key == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.dir, key))
	return err == nil
}
