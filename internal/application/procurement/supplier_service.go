package procurement

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/procurement"
	"github.com/tradecore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DocumentUploadExpiry is how long a presigned upload URL stays valid
const DocumentUploadExpiry = 15 * time.Minute

// DocumentDownloadExpiry is how long a presigned download URL stays valid
const DocumentDownloadExpiry = 5 * time.Minute

// ObjectStorageService abstracts presigned object storage for supplier
// documents such as trade licence scans.
type ObjectStorageService interface {
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
	DeleteObject(ctx context.Context, storageKey string) error
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// VerificationThrottle rate limits OTP verification attempts per supplier
type VerificationThrottle interface {
	// Allow reports whether another attempt is permitted for the key
	Allow(ctx context.Context, key string) (bool, error)
	// RecordFailure counts a failed attempt against the key
	RecordFailure(ctx context.Context, key string) error
	// Reset clears the attempt counter for the key
	Reset(ctx context.Context, key string) error
}

// SupplierService handles supplier onboarding, documents and OTP connection
type SupplierService struct {
	supplierRepo procurement.SupplierRepository
	otpRepo      procurement.SupplierOTPRepository
	storage      ObjectStorageService
	throttle     VerificationThrottle
	logger       *zap.Logger
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(
	supplierRepo procurement.SupplierRepository,
	otpRepo procurement.SupplierOTPRepository,
	storage ObjectStorageService,
	throttle VerificationThrottle,
	logger *zap.Logger,
) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		otpRepo:      otpRepo,
		storage:      storage,
		throttle:     throttle,
		logger:       logger,
	}
}

// Create registers a supplier. The email must be unique within the company.
func (s *SupplierService) Create(ctx context.Context, companyID uuid.UUID, req CreateSupplierRequest) (*SupplierResponse, error) {
	exists, err := s.supplierRepo.ExistsByEmailForCompany(ctx, companyID, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_SUPPLIER_EMAIL", "A supplier with this email already exists")
	}

	supplier, err := procurement.NewSupplier(companyID, req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	if err := supplier.SetRegistration(req.TradeLicense, req.TRN); err != nil {
		return nil, err
	}
	if err := supplier.SetBanking(req.IBAN, req.SWIFT); err != nil {
		return nil, err
	}
	supplier.SetAddress(req.Address)

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	s.logger.Info("Supplier created",
		zap.String("supplier_id", supplier.ID.String()),
		zap.String("email", supplier.Email))

	return ToSupplierResponse(supplier), nil
}

// GetByID retrieves a supplier within the company
func (s *SupplierService) GetByID(ctx context.Context, companyID, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, supplierID)
	if err != nil {
		return nil, err
	}
	return ToSupplierResponse(supplier), nil
}

// List returns suppliers for the company, paginated
func (s *SupplierService) List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[SupplierResponse], error) {
	suppliers, err := s.supplierRepo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.supplierRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		items[i] = *ToSupplierResponse(&suppliers[i])
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update changes supplier registration, banking and address details
func (s *SupplierService) Update(ctx context.Context, companyID, supplierID uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, supplierID)
	if err != nil {
		return nil, err
	}

	if req.TradeLicense != nil || req.TRN != nil {
		license := supplier.TradeLicense
		trn := supplier.TRN
		if req.TradeLicense != nil {
			license = *req.TradeLicense
		}
		if req.TRN != nil {
			trn = *req.TRN
		}
		if err := supplier.SetRegistration(license, trn); err != nil {
			return nil, err
		}
	}

	if req.IBAN != nil || req.SWIFT != nil {
		iban := supplier.IBAN
		swift := supplier.SWIFT
		if req.IBAN != nil {
			iban = *req.IBAN
		}
		if req.SWIFT != nil {
			swift = *req.SWIFT
		}
		if err := supplier.SetBanking(iban, swift); err != nil {
			return nil, err
		}
	}

	if req.Address != nil {
		supplier.SetAddress(*req.Address)
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	return ToSupplierResponse(supplier), nil
}

// RequestDocumentUpload issues a presigned upload URL for a trade licence
// scan and records the storage key on the supplier. The caller uploads
// directly to object storage.
func (s *SupplierService) RequestDocumentUpload(ctx context.Context, companyID, supplierID uuid.UUID, fileName, contentType string) (string, time.Time, error) {
	supplier, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, supplierID)
	if err != nil {
		return "", time.Time{}, err
	}

	storageKey := fmt.Sprintf("suppliers/%s/%s/%s%s",
		companyID, supplierID, uuid.New(), path.Ext(fileName))

	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, storageKey, contentType, DocumentUploadExpiry)
	if err != nil {
		return "", time.Time{}, err
	}

	supplier.AttachDocument(storageKey)
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return "", time.Time{}, err
	}

	s.logger.Info("Supplier document upload issued",
		zap.String("supplier_id", supplierID.String()),
		zap.String("storage_key", storageKey))

	return uploadURL, expiresAt, nil
}

// DocumentDownloadURL issues a presigned download URL for the supplier's
// stored document
func (s *SupplierService) DocumentDownloadURL(ctx context.Context, companyID, supplierID uuid.UUID) (string, time.Time, error) {
	supplier, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, supplierID)
	if err != nil {
		return "", time.Time{}, err
	}
	if supplier.DocumentKey == "" {
		return "", time.Time{}, shared.NewDomainError("NO_DOCUMENT", "Supplier has no stored document")
	}

	return s.storage.GenerateDownloadURL(ctx, supplier.DocumentKey, DocumentDownloadExpiry)
}

// GenerateOTP creates a verification code for the supplier contact and
// returns the plain code for out-of-band delivery. Only the hash is stored.
func (s *SupplierService) GenerateOTP(ctx context.Context, companyID, supplierID uuid.UUID) (string, error) {
	supplier, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, supplierID)
	if err != nil {
		return "", err
	}
	if supplier.IsConnected {
		return "", shared.NewDomainError("ALREADY_CONNECTED", "Supplier is already connected")
	}

	otp, code, err := procurement.GenerateSupplierOTP(companyID, supplierID)
	if err != nil {
		return "", err
	}

	if err := s.otpRepo.Save(ctx, otp); err != nil {
		return "", err
	}

	s.logger.Info("Supplier OTP generated",
		zap.String("supplier_id", supplierID.String()),
		zap.Time("expires_at", otp.ExpiresAt))

	return code, nil
}

// VerifyOTP consumes the latest OTP for the supplier. Success marks the
// supplier connected; attempts are throttled per supplier.
func (s *SupplierService) VerifyOTP(ctx context.Context, companyID, supplierID uuid.UUID, req VerifySupplierOTPRequest) (*SupplierResponse, error) {
	throttleKey := fmt.Sprintf("supplier_otp:%s:%s", companyID, supplierID)
	allowed, err := s.throttle.Allow(ctx, throttleKey)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, shared.NewDomainError("TOO_MANY_ATTEMPTS", "Too many verification attempts, try again later")
	}

	supplier, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, supplierID)
	if err != nil {
		return nil, err
	}

	otp, err := s.otpRepo.FindLatestForSupplier(ctx, companyID, supplierID)
	if err != nil {
		return nil, err
	}

	if err := otp.Verify(req.Code, time.Now()); err != nil {
		if throttleErr := s.throttle.RecordFailure(ctx, throttleKey); throttleErr != nil {
			s.logger.Warn("Failed to record OTP attempt", zap.Error(throttleErr))
		}
		return nil, err
	}

	if err := s.otpRepo.Save(ctx, otp); err != nil {
		return nil, err
	}

	supplier.MarkConnected()
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	if err := s.throttle.Reset(ctx, throttleKey); err != nil {
		s.logger.Warn("Failed to reset OTP throttle", zap.Error(err))
	}

	s.logger.Info("Supplier connected",
		zap.String("supplier_id", supplierID.String()))

	return ToSupplierResponse(supplier), nil
}
