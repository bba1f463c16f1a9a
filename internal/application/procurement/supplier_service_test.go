package procurement

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tradecore/backend/internal/domain/procurement"
	"github.com/tradecore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

type supplierFixture struct {
	service      *SupplierService
	supplierRepo *MockSupplierRepository
	otpRepo      *MockSupplierOTPRepository
	storage      *MockObjectStorageService
	throttle     *MockVerificationThrottle
}

func newSupplierFixture() *supplierFixture {
	supplierRepo := new(MockSupplierRepository)
	otpRepo := new(MockSupplierOTPRepository)
	storage := new(MockObjectStorageService)
	throttle := new(MockVerificationThrottle)
	return &supplierFixture{
		service:      NewSupplierService(supplierRepo, otpRepo, storage, throttle, zap.NewNop()),
		supplierRepo: supplierRepo,
		otpRepo:      otpRepo,
		storage:      storage,
		throttle:     throttle,
	}
}

func mustSupplier(t *testing.T, companyID uuid.UUID) *procurement.Supplier {
	t.Helper()
	supplier, err := procurement.NewSupplier(companyID, "Acme Trading", "sales@acme.example", "+971501234567")
	require.NoError(t, err)
	return supplier
}

func TestSupplierServiceCreate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("creates supplier with registration and banking details", func(t *testing.T) {
		f := newSupplierFixture()
		f.supplierRepo.On("ExistsByEmailForCompany", ctx, companyID, "sales@acme.example").Return(false, nil)
		f.supplierRepo.On("Save", ctx, mock.AnythingOfType("*procurement.Supplier")).Return(nil)

		resp, err := f.service.Create(ctx, companyID, CreateSupplierRequest{
			Name:  "Acme Trading",
			Email: "sales@acme.example",
			Phone: "+971501234567",
			IBAN:  "GB82 WEST 1234 5698 7654 32",
			SWIFT: "BOFAUS3N",
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Trading", resp.Name)
		assert.Equal(t, "GB82WEST12345698765432", resp.IBAN)
		assert.False(t, resp.IsConnected)
		f.supplierRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		f := newSupplierFixture()
		f.supplierRepo.On("ExistsByEmailForCompany", ctx, companyID, "sales@acme.example").Return(true, nil)

		_, err := f.service.Create(ctx, companyID, CreateSupplierRequest{
			Name:  "Acme Trading",
			Email: "sales@acme.example",
			Phone: "+971501234567",
		})

		assert.ErrorContains(t, err, "already exists")
		f.supplierRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid IBAN", func(t *testing.T) {
		f := newSupplierFixture()
		f.supplierRepo.On("ExistsByEmailForCompany", ctx, companyID, "sales@acme.example").Return(false, nil)

		_, err := f.service.Create(ctx, companyID, CreateSupplierRequest{
			Name:  "Acme Trading",
			Email: "sales@acme.example",
			Phone: "+971501234567",
			IBAN:  "NOT-AN-IBAN",
		})

		assert.Error(t, err)
		f.supplierRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSupplierServiceDocuments(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("issues upload URL and records the storage key", func(t *testing.T) {
		f := newSupplierFixture()
		supplier := mustSupplier(t, companyID)
		expiresAt := time.Now().Add(DocumentUploadExpiry)

		f.supplierRepo.On("FindByIDForCompany", ctx, companyID, supplier.ID).Return(supplier, nil)
		f.storage.On("GenerateUploadURL", ctx, mock.AnythingOfType("string"), "application/pdf", DocumentUploadExpiry).
			Return("https://storage.example.com/upload", expiresAt, nil)
		f.supplierRepo.On("Save", ctx, supplier).Return(nil)

		url, _, err := f.service.RequestDocumentUpload(ctx, companyID, supplier.ID, "licence.pdf", "application/pdf")

		require.NoError(t, err)
		assert.Equal(t, "https://storage.example.com/upload", url)
		assert.Contains(t, supplier.DocumentKey, "suppliers/")
		assert.Contains(t, supplier.DocumentKey, ".pdf")
	})

	t.Run("refuses download without a stored document", func(t *testing.T) {
		f := newSupplierFixture()
		supplier := mustSupplier(t, companyID)
		f.supplierRepo.On("FindByIDForCompany", ctx, companyID, supplier.ID).Return(supplier, nil)

		_, _, err := f.service.DocumentDownloadURL(ctx, companyID, supplier.ID)

		assert.ErrorContains(t, err, "no stored document")
	})
}

func TestSupplierServiceOTP(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("generates a code and stores only the hash", func(t *testing.T) {
		f := newSupplierFixture()
		supplier := mustSupplier(t, companyID)
		var saved *procurement.SupplierOTP

		f.supplierRepo.On("FindByIDForCompany", ctx, companyID, supplier.ID).Return(supplier, nil)
		f.otpRepo.On("Save", ctx, mock.AnythingOfType("*procurement.SupplierOTP")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*procurement.SupplierOTP) }).
			Return(nil)

		code, err := f.service.GenerateOTP(ctx, companyID, supplier.ID)

		require.NoError(t, err)
		assert.Len(t, code, 6)
		require.NotNil(t, saved)
		assert.NotEqual(t, code, saved.CodeHash)
		assert.WithinDuration(t, time.Now().Add(procurement.OTPValidity), saved.ExpiresAt, time.Minute)
	})

	t.Run("refuses to generate for a connected supplier", func(t *testing.T) {
		f := newSupplierFixture()
		supplier := mustSupplier(t, companyID)
		supplier.MarkConnected()
		f.supplierRepo.On("FindByIDForCompany", ctx, companyID, supplier.ID).Return(supplier, nil)

		_, err := f.service.GenerateOTP(ctx, companyID, supplier.ID)

		assert.ErrorContains(t, err, "already connected")
		f.otpRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("verifying the correct code connects the supplier", func(t *testing.T) {
		f := newSupplierFixture()
		supplier := mustSupplier(t, companyID)
		otp, code, err := procurement.GenerateSupplierOTP(companyID, supplier.ID)
		require.NoError(t, err)

		f.throttle.On("Allow", ctx, mock.AnythingOfType("string")).Return(true, nil)
		f.supplierRepo.On("FindByIDForCompany", ctx, companyID, supplier.ID).Return(supplier, nil)
		f.otpRepo.On("FindLatestForSupplier", ctx, companyID, supplier.ID).Return(otp, nil)
		f.otpRepo.On("Save", ctx, otp).Return(nil)
		f.supplierRepo.On("Save", ctx, supplier).Return(nil)
		f.throttle.On("Reset", ctx, mock.AnythingOfType("string")).Return(nil)

		resp, err := f.service.VerifyOTP(ctx, companyID, supplier.ID, VerifySupplierOTPRequest{Code: code})

		require.NoError(t, err)
		assert.True(t, resp.IsConnected)
		assert.NotNil(t, otp.UsedAt)
	})

	t.Run("wrong code records a throttle failure", func(t *testing.T) {
		f := newSupplierFixture()
		supplier := mustSupplier(t, companyID)
		otp, _, err := procurement.GenerateSupplierOTP(companyID, supplier.ID)
		require.NoError(t, err)

		f.throttle.On("Allow", ctx, mock.AnythingOfType("string")).Return(true, nil)
		f.supplierRepo.On("FindByIDForCompany", ctx, companyID, supplier.ID).Return(supplier, nil)
		f.otpRepo.On("FindLatestForSupplier", ctx, companyID, supplier.ID).Return(otp, nil)
		f.throttle.On("RecordFailure", ctx, mock.AnythingOfType("string")).Return(nil)

		_, err = f.service.VerifyOTP(ctx, companyID, supplier.ID, VerifySupplierOTPRequest{Code: "000000"})

		assert.Error(t, err)
		assert.False(t, supplier.IsConnected)
		f.throttle.AssertCalled(t, "RecordFailure", ctx, mock.AnythingOfType("string"))
	})

	t.Run("throttled supplier is refused before any lookup", func(t *testing.T) {
		f := newSupplierFixture()
		supplierID := uuid.New()
		f.throttle.On("Allow", ctx, mock.AnythingOfType("string")).Return(false, nil)

		_, err := f.service.VerifyOTP(ctx, companyID, supplierID, VerifySupplierOTPRequest{Code: "123456"})

		assert.ErrorContains(t, err, "Too many verification attempts")
		f.supplierRepo.AssertNotCalled(t, "FindByIDForCompany", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("a used code cannot verify again", func(t *testing.T) {
		f := newSupplierFixture()
		supplier := mustSupplier(t, companyID)
		otp, code, err := procurement.GenerateSupplierOTP(companyID, supplier.ID)
		require.NoError(t, err)
		require.NoError(t, otp.Verify(code, time.Now()))

		f.throttle.On("Allow", ctx, mock.AnythingOfType("string")).Return(true, nil)
		f.supplierRepo.On("FindByIDForCompany", ctx, companyID, supplier.ID).Return(supplier, nil)
		f.otpRepo.On("FindLatestForSupplier", ctx, companyID, supplier.ID).Return(otp, nil)
		f.throttle.On("RecordFailure", ctx, mock.AnythingOfType("string")).Return(nil)

		_, err = f.service.VerifyOTP(ctx, companyID, supplier.ID, VerifySupplierOTPRequest{Code: code})

		assert.Error(t, err)
	})
}

func TestSupplierServiceList(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	f := newSupplierFixture()
	supplier := mustSupplier(t, companyID)
	filter := shared.DefaultFilter()

	f.supplierRepo.On("FindAllForCompany", ctx, companyID, filter).Return([]procurement.Supplier{*supplier}, nil)
	f.supplierRepo.On("Count", ctx, filter).Return(int64(1), nil)

	page, err := f.service.List(ctx, companyID, filter)

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, supplier.Email, page.Items[0].Email)
}
