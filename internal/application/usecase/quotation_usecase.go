package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukkanhq/dukkan-api/internal/application/dto"
	"github.com/dukkanhq/dukkan-api/internal/domain"
	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// QuotationUseCase creates priced offers. Totals are computed once at
// creation: subtotal of the lines, minus the absolute discount, plus tax on
// the discounted base.
type QuotationUseCase struct {
	repo      repository.QuotationRepository
	customers repository.CustomerRepository
}

// NewQuotationUseCase builds the use case.
func NewQuotationUseCase(repo repository.QuotationRepository, customers repository.CustomerRepository) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, customers: customers}
}

// Create creates a quotation in draft status.
func (uc *QuotationUseCase) Create(ctx context.Context, storeID string, in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	if len(in.Lines) == 0 || in.Discount.IsNegative() || in.TaxRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.StoreID != storeID {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	quotationID := uuid.New().String()
	subtotal := decimal.Zero
	lines := make([]*entity.QuotationLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.ProductName == "" || l.Quantity <= 0 || l.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		lineSubtotal := l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
		subtotal = subtotal.Add(lineSubtotal)
		lines = append(lines, &entity.QuotationLine{
			ID:          uuid.New().String(),
			QuotationID: quotationID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    lineSubtotal,
		})
	}

	base := subtotal.Sub(in.Discount)
	if base.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	taxTotal := base.Mul(in.TaxRate).Div(hundred).Round(2)

	q := &entity.Quotation{
		ID:         quotationID,
		StoreID:    storeID,
		CustomerID: in.CustomerID,
		Number:     fmt.Sprintf("Q-%s", now.Format("20060102-150405")),
		Status:     entity.QuotationDraft,
		Subtotal:   subtotal,
		Discount:   in.Discount,
		TaxRate:    in.TaxRate,
		TaxTotal:   taxTotal,
		GrandTotal: base.Add(taxTotal),
		ValidUntil: in.ValidUntil,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, q, lines); err != nil {
		return nil, err
	}
	return toQuotationResponse(q, lines), nil
}

// GetByID returns a quotation with its lines, nil when absent.
func (uc *QuotationUseCase) GetByID(ctx context.Context, id string) (*dto.QuotationResponse, error) {
	q, lines, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, nil
	}
	return toQuotationResponse(q, lines), nil
}

// UpdateStatus moves a quotation along draft → sent → accepted/rejected.
func (uc *QuotationUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	switch status {
	case entity.QuotationDraft, entity.QuotationSent, entity.QuotationAccepted, entity.QuotationRejected:
	default:
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdateStatus(ctx, id, status)
}

// List returns the store's quotations with pagination.
func (uc *QuotationUseCase) List(ctx context.Context, storeID string, limit, offset int) (*dto.QuotationListResponse, error) {
	list, err := uc.repo.ListByStore(ctx, storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuotationResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *toQuotationResponse(q, nil))
	}
	return &dto.QuotationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete removes a quotation and its lines.
func (uc *QuotationUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toQuotationResponse(q *entity.Quotation, lines []*entity.QuotationLine) *dto.QuotationResponse {
	out := &dto.QuotationResponse{
		ID:         q.ID,
		CustomerID: q.CustomerID,
		Number:     q.Number,
		Status:     q.Status,
		Subtotal:   q.Subtotal,
		Discount:   q.Discount,
		TaxRate:    q.TaxRate,
		TaxTotal:   q.TaxTotal,
		GrandTotal: q.GrandTotal,
		ValidUntil: q.ValidUntil,
		CreatedAt:  q.CreatedAt,
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.QuotationLineResponse{
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}
	return out
}
