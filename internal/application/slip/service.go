// Package slip orchestrates payment-slip production for the invoicing
// layer: it assembles a payment order from document records, derives the
// reference number, and returns the encoded payload together with the
// print geometry in one synchronous call.
package slip

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fakturo/qrslip/internal/domain/paymentslip"
	"github.com/fakturo/qrslip/internal/domain/printing"
)

// Service builds and encodes payment slips. It is stateless apart from
// its collaborators and safe for concurrent use.
type Service struct {
	log      *zap.Logger
	validate *validator.Validate
}

// NewService creates a new Service
func NewService(log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Encode validates the request, assembles the payment order and encodes
// it. Domain violations come back as paymentslip.ValidationErrors so the
// caller can surface one message per field; the error is never a partial
// payload.
func (s *Service) Encode(req EncodeRequest) (*EncodeResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid encode request: %w", err)
	}

	documentID := uuid.New().String()
	log := s.log.With(
		zap.String("document_id", documentID),
		zap.String("invoice_number", req.InvoiceNumber),
	)

	order, displayRef, err := s.buildOrder(req, log)
	if err != nil {
		return nil, err
	}

	payload, err := order.Encode()
	if err != nil {
		log.Warn("payment order failed validation", zap.Error(err))
		return nil, err
	}

	log.Info("payment slip encoded",
		zap.String("reference_type", string(order.ReferenceType)),
		zap.Int("payload_bytes", len(payload)),
	)

	return &EncodeResult{
		DocumentID: documentID,
		Payload:    payload,
		Reference:  displayRef,
		Account:    paymentslip.FormatIBAN(order.Account),
		Geometry:   printing.Geometry(),
	}, nil
}

// buildOrder turns the request into a domain payment order, deriving the
// reference type from the account when the caller left it open.
func (s *Service) buildOrder(req EncodeRequest, log *zap.Logger) (paymentslip.PaymentOrder, string, error) {
	order := paymentslip.PaymentOrder{
		Account:             req.Account,
		Creditor:            req.Creditor.toDomain(),
		Currency:            paymentslip.Currency(req.Currency),
		UnstructuredMessage: req.Message,
		BillInformation:     req.BillInformation,
	}
	if req.UltimateCreditor != nil {
		a := req.UltimateCreditor.toDomain()
		order.UltimateCreditor = &a
	}
	if req.Debtor != nil {
		a := req.Debtor.toDomain()
		order.Debtor = &a
	}

	if req.Amount != "" {
		amt, err := decimal.NewFromString(req.Amount)
		if err != nil {
			return paymentslip.PaymentOrder{}, "", fmt.Errorf("invalid amount %q: %w", req.Amount, err)
		}
		order.Amount = &amt
	}

	refType := paymentslip.ReferenceType(req.ReferenceType)
	if req.ReferenceType == "" {
		if paymentslip.IsQRIBAN(req.Account) {
			refType = paymentslip.ReferenceTypeQRR
		} else {
			refType = paymentslip.ReferenceTypeNON
		}
	}
	order.ReferenceType = refType

	var displayRef string
	switch refType {
	case paymentslip.ReferenceTypeQRR:
		ref := paymentslip.ReferenceFromSeed(req.InvoiceNumber)
		if ref.IsDegenerate() {
			log.Warn("invoice number contains no digits, reference falls back to the all-zero base")
		}
		order.Reference = ref.Digits()
		displayRef = ref.Formatted()
	case paymentslip.ReferenceTypeSCOR:
		order.Reference = req.Reference
		displayRef = req.Reference
	}

	return order, displayRef, nil
}
