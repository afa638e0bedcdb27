package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukkanhq/dukkan-api/internal/application/dto"
	"github.com/dukkanhq/dukkan-api/internal/domain"
	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

// CheckoutUseCase records a sale: one immutable ledger entry per line with
// name/category/price snapshots, and the matching stock decrement, all inside
// a single transaction.
type CheckoutUseCase struct {
	tx    CheckoutTxRunner
	sales repository.SaleRepository
}

// NewCheckoutUseCase builds the use case. sales serves the read side; writes
// go through the transaction runner.
func NewCheckoutUseCase(tx CheckoutTxRunner, sales repository.SaleRepository) *CheckoutUseCase {
	return &CheckoutUseCase{tx: tx, sales: sales}
}

// Checkout validates the cart and commits it. workerID is whoever rang the
// sale up, admin accounts included; empty is tolerated and reported as
// unattributed. Any failing line rolls back the whole cart, including earlier
// stock decrements.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, storeID, workerID string, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	out := &dto.CheckoutResponse{GrandTotal: decimal.Zero}

	err := uc.tx.Run(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
		for _, line := range in.Lines {
			product, err := productRepo.GetByID(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if product == nil || product.StoreID != storeID {
				return domain.ErrNotFound
			}
			if _, err := productRepo.AdjustStock(ctx, product.ID, -line.Quantity); err != nil {
				return err
			}

			qty := decimal.NewFromInt(line.Quantity)
			total := product.Price.Mul(qty)
			profit := product.Price.Sub(product.Cost).Mul(qty)
			sale := &entity.Sale{
				ID:          uuid.New().String(),
				StoreID:     storeID,
				WorkerID:    workerID,
				ProductName: product.Name,
				Category:    product.Category,
				Quantity:    line.Quantity,
				UnitPrice:   product.Price,
				CostPrice:   product.Cost,
				Total:       total,
				Profit:      profit,
				SaleDate:    now,
				CreatedAt:   now,
			}
			if err := saleRepo.Create(ctx, sale); err != nil {
				return err
			}

			out.Sales = append(out.Sales, toSaleResponse(sale))
			out.GrandTotal = out.GrandTotal.Add(total)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByWorker pages through the ledger entries one user rang up.
func (uc *CheckoutUseCase) ListByWorker(ctx context.Context, storeID, workerID string, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.sales.ListByWorker(ctx, storeID, workerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:          s.ID,
		WorkerID:    s.WorkerID,
		ProductName: s.ProductName,
		Category:    s.Category,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		CostPrice:   s.CostPrice,
		Total:       s.Total,
		Profit:      s.Profit,
		SaleDate:    s.SaleDate,
	}
}
