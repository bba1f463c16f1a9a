package procurement

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	ledgerdomain "github.com/tradecore/backend/internal/domain/ledger"
	"github.com/tradecore/backend/internal/domain/procurement"
	"github.com/tradecore/backend/internal/domain/shared"

	ledgerapp "github.com/tradecore/backend/internal/application/ledger"
	"go.uber.org/zap"
)

// PaymentService handles payment requests and their approval.
//
// Approving a payment is the only place money moves: the decision, the
// ledger posting and the posted stamp commit as one transaction, and the
// solvency check inside the posting can roll the whole approval back.
type PaymentService struct {
	orderRepo procurement.PurchaseOrderRepository
	txScope   TransactionScope
	logger    *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	orderRepo procurement.PurchaseOrderRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		orderRepo: orderRepo,
		txScope:   txScope,
		logger:    logger,
	}
}

// Create records a pending payment request against a purchase order
func (s *PaymentService) Create(ctx context.Context, companyID, requestedBy uuid.UUID, req CreatePaymentRequest) (*PaymentResponse, error) {
	po, err := s.orderRepo.FindByIDForCompany(ctx, companyID, req.PurchaseOrderID)
	if err != nil {
		return nil, err
	}
	if po.SupplierID != req.SupplierID {
		return nil, shared.NewDomainError("SUPPLIER_MISMATCH", "Payment supplier does not match the purchase order")
	}

	payment, err := procurement.NewPayment(
		companyID, req.SupplierID, req.PurchaseOrderID, requestedBy,
		req.Amount, procurement.PaymentMethod(req.Method), req.IsAdvance)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.PaymentRepo().Save(ctx, payment)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment requested",
		zap.String("payment_id", payment.ID.String()),
		zap.String("amount", payment.Amount.String()),
		zap.Bool("is_advance", payment.IsAdvance))

	return ToPaymentResponse(payment), nil
}

// GetByID retrieves a payment within the company
func (s *PaymentService) GetByID(ctx context.Context, companyID, paymentID uuid.UUID) (*PaymentResponse, error) {
	var response *PaymentResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		payment, err := repos.PaymentRepo().FindByIDForCompany(ctx, companyID, paymentID)
		if err != nil {
			return err
		}
		response = ToPaymentResponse(payment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// ListForOrder returns all payments recorded against a purchase order
func (s *PaymentService) ListForOrder(ctx context.Context, companyID, orderID uuid.UUID) ([]PaymentResponse, error) {
	var responses []PaymentResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		payments, err := repos.PaymentRepo().FindByPurchaseOrder(ctx, companyID, orderID)
		if err != nil {
			return err
		}
		responses = make([]PaymentResponse, len(payments))
		for i := range payments {
			responses[i] = *ToPaymentResponse(&payments[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// Decide records an approval or rejection. Approval posts the payment to the
// ledger and stamps it posted, all in one transaction. An advance settles
// from the liquid account into Supplier Advance; a final payment settles the
// supplier balance, drawing on the advance when one was approved earlier.
func (s *PaymentService) Decide(ctx context.Context, companyID, paymentID, approverID uuid.UUID, req DecideRequest) (*PaymentResponse, error) {
	var response *PaymentResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		payment, err := repos.PaymentRepo().FindByIDForCompany(ctx, companyID, paymentID)
		if err != nil {
			return err
		}

		decision := procurement.ApprovalDecision(req.Decision)

		// The advance lookup happens before this payment's own decision is
		// saved, so it only sees earlier approvals.
		hasAdvance := false
		if decision == procurement.DecisionApproved && !payment.IsAdvance {
			hasAdvance, err = repos.PaymentRepo().HasApprovedAdvance(ctx, companyID, payment.PurchaseOrderID)
			if err != nil {
				return err
			}
		}

		if err := payment.Decide(approverID, decision, req.Note); err != nil {
			return err
		}

		if decision == procurement.DecisionApproved {
			debit, credit := payment.PostingAccounts(hasAdvance)
			description := fmt.Sprintf("Payment %s", payment.ID)
			_, err = ledgerapp.PostEntry(ctx, repos.AccountRepo(), repos.EntryRepo(), companyID, description,
				[]ledgerdomain.LineSpec{
					{AccountCode: debit, Debit: payment.Amount},
					{AccountCode: credit, Credit: payment.Amount},
				})
			if err != nil {
				return err
			}
			if err := payment.MarkPosted(); err != nil {
				return err
			}
		}

		if err := repos.PaymentRepo().Save(ctx, payment); err != nil {
			return err
		}

		response = ToPaymentResponse(payment)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment decided",
		zap.String("payment_id", paymentID.String()),
		zap.String("decision", req.Decision))

	return response, nil
}
