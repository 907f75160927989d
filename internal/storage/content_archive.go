package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dursunaydin1/refik-app/internal/models"
)

const contentPrefix = "content"

// ObjectStore is the subset of S3Storage the archive needs.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) (ObjectStat, error)
	GetObject(ctx context.Context, key string) (io.ReadCloser, ObjectStat, error)
}

// ContentArchive keeps every fetched content unit in object storage. Entries
// never expire.
type ContentArchive struct {
	store   ObjectStore
	edition string
}

func NewContentArchive(store ObjectStore, edition string) *ContentArchive {
	return &ContentArchive{store: store, edition: edition}
}

func (a *ContentArchive) key(number int) (string, error) {
	return SafeJoinKey(contentPrefix, fmt.Sprintf("%s/juz-%02d.json", a.edition, number))
}

func (a *ContentArchive) GetUnit(ctx context.Context, number int) (*models.ContentUnit, error) {
	key, err := a.key(number)
	if err != nil {
		return nil, err
	}
	body, _, err := a.store.GetObject(ctx, key)
	if errors.Is(err, ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var unit models.ContentUnit
	if err := json.NewDecoder(body).Decode(&unit); err != nil {
		return nil, fmt.Errorf("decode archived unit %d: %w", number, err)
	}
	return &unit, nil
}

func (a *ContentArchive) PutUnit(ctx context.Context, unit *models.ContentUnit) error {
	key, err := a.key(unit.Number)
	if err != nil {
		return err
	}
	data, err := json.Marshal(unit)
	if err != nil {
		return err
	}
	_, err = a.store.PutObject(ctx, key, bytes.NewReader(data), int64(len(data)), "application/json")
	return err
}
