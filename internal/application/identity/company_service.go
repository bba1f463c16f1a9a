package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/identity"
	"github.com/tradecore/backend/internal/domain/shared"
	"github.com/tradecore/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// AccountSeeder prepares the books for a freshly registered company. Wired to
// the ledger service in main.
type AccountSeeder interface {
	EnsureDefaultAccounts(ctx context.Context, companyID uuid.UUID) error
}

// CompanyService handles company registration and administration
type CompanyService struct {
	companyRepo  identity.CompanyRepository
	userRepo     identity.UserRepository
	roleRepo     identity.RoleRepository
	userRoleRepo identity.UserRoleRepository
	seeder       AccountSeeder
	logger       *zap.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(
	companyRepo identity.CompanyRepository,
	userRepo identity.UserRepository,
	roleRepo identity.RoleRepository,
	userRoleRepo identity.UserRoleRepository,
	seeder AccountSeeder,
	logger *zap.Logger,
) *CompanyService {
	return &CompanyService{
		companyRepo:  companyRepo,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		userRoleRepo: userRoleRepo,
		seeder:       seeder,
		logger:       logger,
	}
}

// defaultRoles are seeded for every new company. The admin role receives every
// registered capability; the others get the slice of the registry matching
// their duties.
var defaultRoles = map[string][]identity.Capability{
	identity.RoleCodeAdmin: identity.AllCapabilities(),
	identity.RoleCodePurchaser: {
		identity.CapViewSupplier, identity.CapAddSupplier, identity.CapChangeSupplier,
		identity.CapAddRequisition, identity.CapViewQuotation, identity.CapSelectQuotationLine,
		identity.CapViewPurchaseOrder, identity.CapAddPurchaseOrder,
		identity.CapViewProduct, identity.CapViewProductCategory,
	},
	identity.RoleCodeStorekeeper: {
		identity.CapViewWarehouse, identity.CapAddWarehouse,
		identity.CapViewStockOnHand, identity.CapAddStockMovement, identity.CapAddAdjustment,
		identity.CapAddGoodsReceipt, identity.CapViewPurchaseOrder, identity.CapViewProduct,
	},
	identity.RoleCodeAccountant: {
		identity.CapViewLedger, identity.CapPostLedgerEntry,
		identity.CapViewInvoice, identity.CapApproveInvoice,
		identity.CapAddPayment, identity.CapApprovePayment,
		identity.CapViewPurchaseOrder, identity.CapViewSupplier,
	},
}

// Register creates a company, its default roles, the first administrator and
// the initial chart of accounts.
func (s *CompanyService) Register(ctx context.Context, req RegisterCompanyRequest) (*CompanyResponse, error) {
	taken, err := s.companyRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Company with this name already exists")
	}

	code, err := identity.GenerateCompanyCode(ctx, req.Name, s.companyRepo.ExistsByCode)
	if err != nil {
		return nil, err
	}

	company, err := identity.NewCompany(req.Name, code, req.Address)
	if err != nil {
		return nil, err
	}
	if req.Currency != "" {
		if err := company.SetCurrency(valueobject.Currency(req.Currency)); err != nil {
			return nil, err
		}
	}
	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	adminRole, err := s.seedRoles(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	admin, err := identity.NewUser(company.ID, req.AdminEmail, req.AdminName, req.AdminPassword)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, admin); err != nil {
		return nil, err
	}

	assignment, err := identity.NewUserRole(admin.ID, adminRole.ID, company.ID, nil, nil)
	if err != nil {
		return nil, err
	}
	if err := s.userRoleRepo.Save(ctx, assignment); err != nil {
		return nil, err
	}

	if s.seeder != nil {
		if err := s.seeder.EnsureDefaultAccounts(ctx, company.ID); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Company registered",
		zap.String("company_id", company.ID.String()),
		zap.String("code", company.Code))

	return ToCompanyResponse(company), nil
}

// seedRoles creates the default role set and returns the admin role
func (s *CompanyService) seedRoles(ctx context.Context, companyID uuid.UUID) (*identity.Role, error) {
	var adminRole *identity.Role

	for code, caps := range defaultRoles {
		role, err := identity.NewRole(companyID, roleNameForCode(code), code)
		if err != nil {
			return nil, err
		}
		if err := role.SetCapabilities(caps); err != nil {
			return nil, err
		}
		if err := s.roleRepo.Save(ctx, role); err != nil {
			return nil, err
		}
		if code == identity.RoleCodeAdmin {
			adminRole = role
		}
	}

	return adminRole, nil
}

func roleNameForCode(code string) string {
	switch code {
	case identity.RoleCodeAdmin:
		return "Administrator"
	case identity.RoleCodePurchaser:
		return "Purchaser"
	case identity.RoleCodeStorekeeper:
		return "Storekeeper"
	case identity.RoleCodeAccountant:
		return "Accountant"
	default:
		return code
	}
}

// GetByID retrieves a company by ID
func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCompanyResponse(company), nil
}

// Update changes mutable company fields
func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, req UpdateCompanyRequest) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := company.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Address != nil {
		company.SetAddress(*req.Address)
	}
	if req.Currency != nil {
		if err := company.SetCurrency(valueobject.Currency(*req.Currency)); err != nil {
			return nil, err
		}
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}
	return ToCompanyResponse(company), nil
}

// Suspend blocks all activity for a company
func (s *CompanyService) Suspend(ctx context.Context, id uuid.UUID) error {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := company.Suspend(); err != nil {
		return err
	}
	return s.companyRepo.Save(ctx, company)
}

// Activate restores a suspended company
func (s *CompanyService) Activate(ctx context.Context, id uuid.UUID) error {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := company.Activate(); err != nil {
		return err
	}
	return s.companyRepo.Save(ctx, company)
}

// List retrieves companies for platform administration
func (s *CompanyService) List(ctx context.Context, filter shared.Filter) ([]CompanyResponse, error) {
	companies, err := s.companyRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]CompanyResponse, 0, len(companies))
	for i := range companies {
		responses = append(responses, *ToCompanyResponse(&companies[i]))
	}
	return responses, nil
}
