package services

import (
	"context"

	"github.com/adreenastore/pos_backend/internal/core/ports"
	"github.com/adreenastore/pos_backend/internal/dto"
	"github.com/adreenastore/pos_backend/internal/renderer"
)

// receiptService renders transactions into shareable receipts using the
// session's active store profile.
type receiptService struct {
	txnRepo    ports.TransactionRepository
	profileSvc ports.StoreProfileService
	registry   *renderer.Registry
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(txnRepo ports.TransactionRepository, profileSvc ports.StoreProfileService, registry *renderer.Registry) ports.ReceiptService {
	return &receiptService{
		txnRepo:    txnRepo,
		profileSvc: profileSvc,
		registry:   registry,
	}
}

var _ ports.ReceiptService = (*receiptService)(nil)

// RenderReceipt loads the transaction and the session's active profile, picks
// the profile's renderer and produces the receipt text plus a WhatsApp share
// link when the store has a number configured.
func (s *receiptService) RenderReceipt(ctx context.Context, sessionID string, transactionID string) (*dto.ReceiptResponse, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileSvc.GetActiveProfile(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	text := s.registry.ForProfile(profile).Render(txn, profile)

	return &dto.ReceiptResponse{
		TransactionID: txn.TransactionID,
		Text:          text,
		ShareLink:     renderer.WhatsAppShareLink(profile.StoreWhatsapp, text),
	}, nil
}
