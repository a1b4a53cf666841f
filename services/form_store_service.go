package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/thyeshengleng/collection-form/logger"
	"github.com/thyeshengleng/collection-form/repositories"
)

// FormStoreKey is the key holding the serialized record set
const FormStoreKey = "collection_records"

// ErrNotJSONArray is returned when a stored document is not a JSON array
var ErrNotJSONArray = errors.New("body must be a JSON array")

// FormStoreService keeps the record set document served on /api/form
type FormStoreService interface {
	Get(ctx context.Context) (json.RawMessage, error)
	Put(ctx context.Context, body []byte) error
}

type formStoreService struct {
	kvRepo repositories.KVRepository
}

// NewFormStoreService creates a new form store service
func NewFormStoreService(kvRepo repositories.KVRepository) FormStoreService {
	return &formStoreService{kvRepo: kvRepo}
}

// Get returns the stored document, or an empty array when nothing is stored
func (s *formStoreService) Get(ctx context.Context) (json.RawMessage, error) {
	value, err := s.kvRepo.Get(ctx, FormStoreKey)
	if errors.Is(err, repositories.ErrKeyNotFound) {
		return json.RawMessage("[]"), nil
	}
	if err != nil {
		logger.Log.Error("failed to read form store", zap.Error(err))
		return nil, err
	}
	return json.RawMessage(value), nil
}

// Put stores body after checking that it is a JSON array
func (s *formStoreService) Put(ctx context.Context, body []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return fmt.Errorf("%w: %v", ErrNotJSONArray, err)
	}
	if items == nil {
		// JSON null decodes without error
		return ErrNotJSONArray
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, body); err != nil {
		return fmt.Errorf("%w: %v", ErrNotJSONArray, err)
	}

	if err := s.kvRepo.Put(ctx, FormStoreKey, compact.String()); err != nil {
		logger.Log.Error("failed to write form store", zap.Error(err))
		return err
	}

	logger.Log.Debug("form store updated", zap.Int("records", len(items)))
	return nil
}
