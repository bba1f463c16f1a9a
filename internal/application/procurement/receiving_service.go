package procurement

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/catalog"
	"github.com/tradecore/backend/internal/domain/inventory"
	ledgerdomain "github.com/tradecore/backend/internal/domain/ledger"
	"github.com/tradecore/backend/internal/domain/procurement"
	"github.com/tradecore/backend/internal/domain/shared"

	ledgerapp "github.com/tradecore/backend/internal/application/ledger"
	"go.uber.org/zap"
)

// ReceivingService applies goods receipts against purchase orders.
//
// A receipt's effects cross three contexts: serials are registered in the
// catalog, stock enters the warehouse, and the inventory value is posted to
// the ledger. All of it commits as one transaction, or none of it does.
type ReceivingService struct {
	productRepo   catalog.ProductRepository
	categoryRepo  catalog.CategoryRepository
	warehouseRepo inventory.WarehouseRepository
	txScope       TransactionScope
	logger        *zap.Logger
}

// NewReceivingService creates a new ReceivingService
func NewReceivingService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	warehouseRepo inventory.WarehouseRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *ReceivingService {
	return &ReceivingService{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		warehouseRepo: warehouseRepo,
		txScope:       txScope,
		logger:        logger,
	}
}

// Receive books goods arriving against a purchase order line. The receipt is
// validated against the product category's identifier requirements, serials
// are registered, a lot and inbound movement enter the warehouse, and the
// inventory value is posted against the supplier.
func (s *ReceivingService) Receive(ctx context.Context, companyID uuid.UUID, req CreateReceiptRequest) (*GoodsReceiptResponse, error) {
	warehouse, err := s.warehouseRepo.FindByIDForCompany(ctx, companyID, req.WarehouseID)
	if err != nil {
		return nil, err
	}
	if !warehouse.IsActive {
		return nil, shared.NewDomainError("WAREHOUSE_INACTIVE", "Cannot receive into an inactive warehouse")
	}

	var response *GoodsReceiptResponse
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		po, err := repos.OrderRepo().FindByIDForCompany(ctx, companyID, req.PurchaseOrderID)
		if err != nil {
			return err
		}
		line, err := po.FindLine(req.OrderLineID)
		if err != nil {
			return err
		}

		product, err := s.productRepo.FindByIDForCompany(ctx, companyID, line.ProductID)
		if err != nil {
			return err
		}

		profile, err := s.complianceProfile(ctx, product)
		if err != nil {
			return err
		}

		receipt, err := procurement.NewGoodsReceipt(
			companyID, po.ID, line.ID, product.ID, req.WarehouseID, req.Quantity, req.EAN, req.Serials)
		if err != nil {
			return err
		}

		serialExists := func(ctx context.Context, serial string) (bool, error) {
			return repos.SerialRepo().Exists(ctx, product.ID, serial)
		}
		if err := receipt.ValidateCompliance(ctx, profile, serialExists); err != nil {
			return err
		}

		reference := fmt.Sprintf("GRN %s", po.OrderNumber)

		for _, serial := range receipt.Serials() {
			ps, err := catalog.NewProductSerial(companyID, product.ID, serial, reference)
			if err != nil {
				return err
			}
			if err := repos.SerialRepo().Save(ctx, ps); err != nil {
				return err
			}
		}

		// The movement carries the received quantity; the lot records the
		// batch with zero quantity so the on-hand derivation counts the
		// goods exactly once.
		lot, err := inventory.NewStockLot(companyID, product.ID, req.WarehouseID, reference, decimal.Zero, nil)
		if err != nil {
			return err
		}
		if err := repos.LotRepo().Save(ctx, lot); err != nil {
			return err
		}

		movement, err := inventory.NewInboundMovement(companyID, product.ID, req.WarehouseID, receipt.Quantity, reference)
		if err != nil {
			return err
		}
		if err := repos.MovementRepo().Append(ctx, movement); err != nil {
			return err
		}

		amount := receipt.Quantity.Mul(product.SalePrice)
		if amount.IsPositive() {
			_, err = ledgerapp.PostEntry(ctx, repos.AccountRepo(), repos.EntryRepo(), companyID, reference,
				[]ledgerdomain.LineSpec{
					{AccountCode: ledgerdomain.AccountInventory, Debit: amount},
					{AccountCode: ledgerdomain.AccountSupplier, Credit: amount},
				})
			if err != nil {
				return err
			}
		}

		if err := po.RecordReceipt(line.ID, receipt.Quantity); err != nil {
			return err
		}
		if err := repos.OrderRepo().Save(ctx, po); err != nil {
			return err
		}

		if err := receipt.MarkApplied(); err != nil {
			return err
		}
		if err := repos.ReceiptRepo().Save(ctx, receipt); err != nil {
			return err
		}

		response = ToGoodsReceiptResponse(receipt)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Goods receipt applied",
		zap.String("receipt_id", response.ID.String()),
		zap.String("order_id", req.PurchaseOrderID.String()),
		zap.String("quantity", req.Quantity.String()))

	return response, nil
}

// GetByID retrieves a goods receipt within the company
func (s *ReceivingService) GetByID(ctx context.Context, companyID, receiptID uuid.UUID) (*GoodsReceiptResponse, error) {
	var response *GoodsReceiptResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		receipt, err := repos.ReceiptRepo().FindByIDForCompany(ctx, companyID, receiptID)
		if err != nil {
			return err
		}
		response = ToGoodsReceiptResponse(receipt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// ListForOrder returns all receipts booked against a purchase order
func (s *ReceivingService) ListForOrder(ctx context.Context, companyID, orderID uuid.UUID) ([]GoodsReceiptResponse, error) {
	var responses []GoodsReceiptResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		receipts, err := repos.ReceiptRepo().FindByPurchaseOrder(ctx, companyID, orderID)
		if err != nil {
			return err
		}
		responses = make([]GoodsReceiptResponse, len(receipts))
		for i := range receipts {
			responses[i] = *ToGoodsReceiptResponse(&receipts[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// complianceProfile assembles what the receipt must satisfy from the
// product's category requirements and its own attributes
func (s *ReceivingService) complianceProfile(ctx context.Context, product *catalog.Product) (procurement.ComplianceProfile, error) {
	profile := procurement.ComplianceProfile{
		ProductBarcode: product.Barcode,
		TrackSerial:    product.TrackSerial,
	}

	if product.CategoryID != nil {
		identifiers, err := s.categoryRepo.FindRequiredIdentifiers(ctx, *product.CategoryID)
		if err != nil {
			return procurement.ComplianceProfile{}, err
		}
		codes := make([]string, len(identifiers))
		for i := range identifiers {
			codes[i] = identifiers[i].Code
		}
		profile.RequiredIdentifiers = codes
	}

	return profile, nil
}
