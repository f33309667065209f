package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LocalSlipStore writes slip images under the upload directory and returns
// the public URL path.
type LocalSlipStore struct {
	Dir string
}

func NewLocalSlipStore(dir string) *LocalSlipStore {
	return &LocalSlipStore{Dir: dir}
}

func (s *LocalSlipStore) Save(orderID, filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("slip_%s_%d_%s", orderID, time.Now().UnixNano(), filepath.Base(filename))
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0644); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}
