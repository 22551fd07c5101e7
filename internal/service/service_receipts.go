package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-expense-keeper/internal/adapter"
	"github.com/MKhiriev/go-expense-keeper/models"
)

type receiptService struct {
	adapter adapter.ServerAdapter
	guard   authGuard
}

// newReceiptService returns a [ReceiptService] backed by the adapter.
func newReceiptService(serverAdapter adapter.ServerAdapter, guard authGuard) ReceiptService {
	return &receiptService{adapter: serverAdapter, guard: guard}
}

func (s *receiptService) Upload(ctx context.Context, path string) (models.ReceiptProcessResult, error) {
	if strings.TrimSpace(path) == "" {
		return models.ReceiptProcessResult{}, ErrEmptyReceiptPath
	}

	f, err := os.Open(path)
	if err != nil {
		return models.ReceiptProcessResult{}, fmt.Errorf("%w: %v", ErrReadReceiptFile, err)
	}
	defer f.Close()

	env, err := s.adapter.UploadReceipt(ctx, filepath.Base(path), f)
	if err = s.guard.check(ctx, "receiptService.Upload", err); err != nil {
		return models.ReceiptProcessResult{}, err
	}

	return adapter.DecodeData[models.ReceiptProcessResult](env)
}

func (s *receiptService) ImageURL(ctx context.Context, receiptPath string) (string, error) {
	if strings.TrimSpace(receiptPath) == "" {
		return "", ErrEmptyReceiptPath
	}
	url, err := s.adapter.GetReceiptImageURL(ctx, receiptPath)
	return url, s.guard.check(ctx, "receiptService.ImageURL", err)
}
