package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"path/filepath"
	"strings"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/repository/storage"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	MaxReceiptSize   = 5 * 1024 * 1024 // 5MB
	MinReceiptWidth  = 50
	MinReceiptHeight = 50
	ThumbnailWidth   = 200
	DisplayWidth     = 800
	JPEGQuality      = 85

	// receiptURLExpiry bounds how long a presigned receipt link stays valid
	receiptURLExpiry = 15 * time.Minute
)

var (
	ErrReceiptTooLarge          = errors.New("file too large. Maximum size is 5MB")
	ErrReceiptInvalidFormat     = errors.New("invalid format. Supported: JPEG, PNG, WebP")
	ErrReceiptTooSmall          = errors.New("image too small. Minimum 50x50 pixels")
	ErrReceiptInvalidData       = errors.New("invalid image data")
	ErrReceiptStorageNotEnabled = errors.New("receipt storage not configured")
)

// AllowedReceiptExtensions maps extensions to content types
var AllowedReceiptExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// ReceiptLinks contains presigned URLs for a receipt's renditions
type ReceiptLinks struct {
	ThumbnailURL string `json:"thumbnailUrl"`
	DisplayURL   string `json:"displayUrl"`
}

// ReceiptService attaches receipt images to expenses. Uploads are
// re-encoded to JPEG in thumbnail and display renditions.
type ReceiptService struct {
	storage     storage.ReceiptRepository
	expenseRepo domain.ExpenseRepository
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(storage storage.ReceiptRepository, expenseRepo domain.ExpenseRepository) *ReceiptService {
	return &ReceiptService{
		storage:     storage,
		expenseRepo: expenseRepo,
	}
}

// IsEnabled indicates whether uploads/deletes are supported (storage configured)
func (s *ReceiptService) IsEnabled() bool {
	return s != nil && s.storage != nil
}

// validateAndDecode validates the upload and returns the decoded image
func (s *ReceiptService) validateAndDecode(data []byte, filename string) (image.Image, error) {
	if len(data) > MaxReceiptSize {
		return nil, ErrReceiptTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := AllowedReceiptExtensions[ext]; !ok {
		return nil, ErrReceiptInvalidFormat
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrReceiptInvalidData
	}

	bounds := img.Bounds()
	if bounds.Dx() < MinReceiptWidth || bounds.Dy() < MinReceiptHeight {
		return nil, ErrReceiptTooSmall
	}

	return img, nil
}

// AttachReceipt validates, processes and stores a receipt image for an
// expense, replacing any previous receipt. The stored key is recorded
// on the expense.
func (s *ReceiptService) AttachReceipt(ctx context.Context, userID, expenseID uuid.UUID, data []byte, filename string) (*domain.Expense, error) {
	if !s.IsEnabled() {
		return nil, ErrReceiptStorageNotEnabled
	}

	expense, err := s.expenseRepo.GetByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	img, err := s.validateAndDecode(data, filename)
	if err != nil {
		return nil, err
	}

	receiptID := uuid.New().String()
	baseKey := fmt.Sprintf("%s/receipts/%s/%s", userID, expenseID, receiptID)

	variants := []struct {
		name     string
		maxWidth int
	}{
		{"thumb", ThumbnailWidth},
		{"display", DisplayWidth},
	}

	uploaded := make([]string, 0, len(variants))
	for _, variant := range variants {
		processed := img
		if img.Bounds().Dx() > variant.maxWidth {
			processed = imaging.Resize(img, variant.maxWidth, 0, imaging.Lanczos)
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, processed, &jpeg.Options{Quality: JPEGQuality}); err != nil {
			return nil, fmt.Errorf("failed to encode receipt: %w", err)
		}

		key := variantKey(baseKey, variant.name)
		if _, err := s.storage.Upload(ctx, key, bytes.NewReader(buf.Bytes()), "image/jpeg", int64(buf.Len())); err != nil {
			s.cleanupKeys(ctx, uploaded)
			return nil, fmt.Errorf("failed to upload %s rendition: %w", variant.name, err)
		}
		uploaded = append(uploaded, key)
	}

	// Replace an existing receipt after the new one is safely stored
	if expense.ReceiptKey != nil {
		s.deleteRenditions(ctx, *expense.ReceiptKey)
	}

	if err := s.expenseRepo.SetReceiptKey(userID, expenseID, &baseKey); err != nil {
		s.cleanupKeys(ctx, uploaded)
		return nil, err
	}

	expense.ReceiptKey = &baseKey
	return expense, nil
}

// GetReceiptLinks returns presigned URLs for an expense's receipt
func (s *ReceiptService) GetReceiptLinks(ctx context.Context, userID, expenseID uuid.UUID) (*ReceiptLinks, error) {
	if !s.IsEnabled() {
		return nil, ErrReceiptStorageNotEnabled
	}

	expense, err := s.expenseRepo.GetByID(userID, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.ReceiptKey == nil {
		return nil, domain.ErrNoReceipt
	}

	thumbURL, err := s.storage.GeneratePresignedURL(ctx, variantKey(*expense.ReceiptKey, "thumb"), receiptURLExpiry)
	if err != nil {
		return nil, err
	}
	displayURL, err := s.storage.GeneratePresignedURL(ctx, variantKey(*expense.ReceiptKey, "display"), receiptURLExpiry)
	if err != nil {
		return nil, err
	}

	return &ReceiptLinks{
		ThumbnailURL: thumbURL,
		DisplayURL:   displayURL,
	}, nil
}

// RemoveReceipt detaches and deletes an expense's receipt
func (s *ReceiptService) RemoveReceipt(ctx context.Context, userID, expenseID uuid.UUID) error {
	if !s.IsEnabled() {
		return ErrReceiptStorageNotEnabled
	}

	expense, err := s.expenseRepo.GetByID(userID, expenseID)
	if err != nil {
		return err
	}
	if expense.ReceiptKey == nil {
		return domain.ErrNoReceipt
	}

	if err := s.expenseRepo.SetReceiptKey(userID, expenseID, nil); err != nil {
		return err
	}

	s.deleteRenditions(ctx, *expense.ReceiptKey)
	return nil
}

func variantKey(baseKey, variant string) string {
	return baseKey + "_" + variant + ".jpg"
}

// deleteRenditions removes all stored renditions, best effort
func (s *ReceiptService) deleteRenditions(ctx context.Context, baseKey string) {
	for _, variant := range []string{"thumb", "display"} {
		key := variantKey(baseKey, variant)
		if err := s.storage.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Failed to delete receipt rendition")
		}
	}
}

func (s *ReceiptService) cleanupKeys(ctx context.Context, keys []string) {
	for _, key := range keys {
		_ = s.storage.Delete(ctx, key)
	}
}
