package router

import (
	"github.com/gin-gonic/gin"
	"github.com/tradecore/backend/internal/domain/identity"
	"github.com/tradecore/backend/internal/interfaces/http/handler"
	"github.com/tradecore/backend/internal/interfaces/http/middleware"
)

func capability(c identity.Capability) gin.HandlerFunc {
	return middleware.RequireCapability(c.String())
}

// SystemRoutes registers the health probe at the engine root, outside the
// versioned API group.
type SystemRoutes struct {
	System *handler.SystemHandler
}

// RegisterOn attaches the system routes directly to the engine
func (r *SystemRoutes) RegisterOn(engine *gin.Engine) {
	engine.GET("/health", r.System.Health)
}

// IdentityRoutes registers auth, company, user, role and audit endpoints
type IdentityRoutes struct {
	Auth    *handler.AuthHandler
	Company *handler.CompanyHandler
	User    *handler.UserHandler
	Role    *handler.RoleHandler
	Audit   *handler.AuditHandler
}

// RegisterRoutes implements RouteRegistrar
func (r *IdentityRoutes) RegisterRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.Auth.Login)
		authGroup.POST("/refresh", r.Auth.Refresh)
		authGroup.POST("/logout", r.Auth.Logout)
		authGroup.POST("/logout-all", r.Auth.LogoutAllSessions)
		authGroup.POST("/change-password", r.Auth.ChangePassword)
	}

	companies := api.Group("/companies")
	{
		companies.POST("/register", r.Company.Register)
		companies.GET("", middleware.RequireSuperuser(), r.Company.List)
		companies.GET("/:id", middleware.RequireSuperuser(), r.Company.GetByID)
		companies.PUT("/:id", middleware.RequireSuperuser(), r.Company.Update)
		companies.POST("/:id/suspend", middleware.RequireSuperuser(), r.Company.Suspend)
		companies.POST("/:id/activate", middleware.RequireSuperuser(), r.Company.Activate)
	}

	users := api.Group("/users", capability(identity.CapManageUsers))
	{
		users.POST("", r.User.Create)
		users.GET("", r.User.List)
		users.GET("/:id", r.User.GetByID)
		users.POST("/:id/deactivate", r.User.Deactivate)
		users.POST("/:id/activate", r.User.Activate)
		users.POST("/roles", r.User.AssignRole)
		users.DELETE("/:id/roles/:role_id", r.User.UnassignRole)
	}

	roles := api.Group("/roles", capability(identity.CapManageRoles))
	{
		roles.POST("", r.Role.Create)
		roles.GET("", r.Role.List)
		roles.GET("/:id", r.Role.GetByID)
		roles.PUT("/:id/capabilities", r.Role.SetCapabilities)
		roles.GET("/capabilities", r.Role.ListCapabilities)
	}

	api.GET("/audit-logs", capability(identity.CapViewAuditLog), r.Audit.List)
}

// CatalogRoutes registers category and product endpoints
type CatalogRoutes struct {
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
}

// RegisterRoutes implements RouteRegistrar
func (r *CatalogRoutes) RegisterRoutes(api *gin.RouterGroup) {
	categories := api.Group("/categories")
	{
		categories.POST("", capability(identity.CapAddProductCategory), r.Category.Create)
		categories.GET("/tree", capability(identity.CapViewProductCategory), r.Category.Tree)
		categories.GET("/:id", capability(identity.CapViewProductCategory), r.Category.GetByID)
		categories.PUT("/:id", capability(identity.CapChangeProductCategory), r.Category.Update)
		categories.POST("/:id/move", capability(identity.CapChangeProductCategory), r.Category.Move)
		categories.POST("/:id/discontinue", capability(identity.CapChangeProductCategory), r.Category.Discontinue)
		categories.GET("/:id/identifiers", capability(identity.CapViewProductCategory), r.Category.RequiredIdentifiers)
		categories.POST("/:id/identifiers", capability(identity.CapChangeProductCategory), r.Category.AttachIdentifier)
		categories.DELETE("/:id/identifiers/:code", capability(identity.CapChangeProductCategory), r.Category.DetachIdentifier)
	}

	api.GET("/identifier-types", capability(identity.CapViewProductCategory), r.Category.ListIdentifierTypes)

	products := api.Group("/products")
	{
		products.POST("", capability(identity.CapAddProduct), r.Product.Create)
		products.GET("", capability(identity.CapViewProduct), r.Product.List)
		products.GET("/sku/:sku", capability(identity.CapViewProduct), r.Product.GetBySKU)
		products.GET("/:id", capability(identity.CapViewProduct), r.Product.GetByID)
		products.PUT("/:id", capability(identity.CapChangeProduct), r.Product.Update)
		products.POST("/:id/category", capability(identity.CapChangeProduct), r.Product.ChangeCategory)
		products.POST("/:id/discontinue", capability(identity.CapChangeProduct), r.Product.Discontinue)
		products.POST("/:id/serials", capability(identity.CapChangeProduct), r.Product.RegisterSerial)
		products.GET("/:id/serials", capability(identity.CapViewProduct), r.Product.ListSerials)
	}
}

// InventoryRoutes registers warehouse and stock endpoints
type InventoryRoutes struct {
	Warehouse *handler.WarehouseHandler
	Stock     *handler.StockHandler
}

// RegisterRoutes implements RouteRegistrar
func (r *InventoryRoutes) RegisterRoutes(api *gin.RouterGroup) {
	warehouses := api.Group("/warehouses")
	{
		warehouses.POST("", capability(identity.CapAddWarehouse), r.Warehouse.Create)
		warehouses.GET("", capability(identity.CapViewWarehouse), r.Warehouse.List)
		warehouses.GET("/:id", capability(identity.CapViewWarehouse), r.Warehouse.GetByID)
		warehouses.PUT("/:id", capability(identity.CapAddWarehouse), r.Warehouse.Update)
		warehouses.POST("/:id/deactivate", capability(identity.CapAddWarehouse), r.Warehouse.Deactivate)
	}

	stock := api.Group("/stock")
	{
		stock.POST("/lots", capability(identity.CapAddStockMovement), r.Stock.IntakeLot)
		stock.POST("/movements", capability(identity.CapAddStockMovement), r.Stock.RecordMovement)
		stock.POST("/adjustments", capability(identity.CapAddAdjustment), r.Stock.PostAdjustment)
		stock.GET("/on-hand/:product_id", capability(identity.CapViewStockOnHand), r.Stock.OnHand)
		stock.GET("/on-hand/:product_id/warehouse/:warehouse_id", capability(identity.CapViewStockOnHand), r.Stock.OnHandInWarehouse)
		stock.GET("/low", capability(identity.CapViewStockOnHand), r.Stock.LowStock)
	}
}

// ProcurementRoutes registers supplier and purchase flow endpoints
type ProcurementRoutes struct {
	Supplier    *handler.SupplierHandler
	Requisition *handler.RequisitionHandler
	Quotation   *handler.QuotationHandler
	Order       *handler.OrderHandler
	Receipt     *handler.ReceiptHandler
	Invoice     *handler.InvoiceHandler
	Payment     *handler.PaymentHandler
}

// RegisterRoutes implements RouteRegistrar
func (r *ProcurementRoutes) RegisterRoutes(api *gin.RouterGroup) {
	suppliers := api.Group("/suppliers")
	{
		suppliers.POST("", capability(identity.CapAddSupplier), r.Supplier.Create)
		suppliers.GET("", capability(identity.CapViewSupplier), r.Supplier.List)
		suppliers.GET("/:id", capability(identity.CapViewSupplier), r.Supplier.GetByID)
		suppliers.PUT("/:id", capability(identity.CapChangeSupplier), r.Supplier.Update)
		suppliers.POST("/:id/documents/upload-url", capability(identity.CapChangeSupplier), r.Supplier.RequestDocumentUpload)
		suppliers.GET("/:id/documents/download-url", capability(identity.CapViewSupplier), r.Supplier.DocumentDownloadURL)
		suppliers.POST("/:id/otp", capability(identity.CapChangeSupplier), r.Supplier.GenerateOTP)
		suppliers.POST("/:id/otp/verify", capability(identity.CapChangeSupplier), r.Supplier.VerifyOTP)
	}

	requisitions := api.Group("/requisitions")
	{
		requisitions.POST("", capability(identity.CapAddRequisition), r.Requisition.Create)
		requisitions.GET("", middleware.RequireAnyCapability(
			identity.CapAddRequisition.String(), identity.CapApproveRequisition.String()), r.Requisition.List)
		requisitions.GET("/:id", middleware.RequireAnyCapability(
			identity.CapAddRequisition.String(), identity.CapApproveRequisition.String()), r.Requisition.GetByID)
		requisitions.POST("/:id/items", capability(identity.CapAddRequisition), r.Requisition.AddItem)
		requisitions.POST("/:id/submit", capability(identity.CapAddRequisition), r.Requisition.Submit)
		requisitions.POST("/:id/decide", capability(identity.CapApproveRequisition), r.Requisition.Decide)
	}

	quotations := api.Group("/quotations")
	{
		quotations.POST("", capability(identity.CapViewQuotation), r.Quotation.Create)
		quotations.GET("", capability(identity.CapViewQuotation), r.Quotation.List)
		quotations.GET("/:id", capability(identity.CapViewQuotation), r.Quotation.GetByID)
		quotations.POST("/:id/lines", capability(identity.CapViewQuotation), r.Quotation.AddLine)
		quotations.POST("/:id/lines/:line_id/select", capability(identity.CapSelectQuotationLine), r.Quotation.SelectLine)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", capability(identity.CapViewPurchaseOrder), r.Order.List)
		orders.GET("/number/:number", capability(identity.CapViewPurchaseOrder), r.Order.GetByNumber)
		orders.GET("/:id", capability(identity.CapViewPurchaseOrder), r.Order.GetByID)
		orders.POST("/:id/submit", capability(identity.CapAddPurchaseOrder), r.Order.Submit)
		orders.POST("/:id/acknowledge", capability(identity.CapAddPurchaseOrder), r.Order.Acknowledge)
		orders.GET("/:id/receipts", capability(identity.CapViewPurchaseOrder), r.Receipt.ListForOrder)
		orders.GET("/:id/invoices", capability(identity.CapViewInvoice), r.Invoice.ListForOrder)
		orders.GET("/:id/payments", capability(identity.CapViewPurchaseOrder), r.Payment.ListForOrder)
	}

	receipts := api.Group("/receipts")
	{
		receipts.POST("", capability(identity.CapAddGoodsReceipt), r.Receipt.Receive)
		receipts.GET("/:id", capability(identity.CapViewPurchaseOrder), r.Receipt.GetByID)
	}

	invoices := api.Group("/invoices")
	{
		invoices.POST("", capability(identity.CapViewInvoice), r.Invoice.Create)
		invoices.GET("/:id", capability(identity.CapViewInvoice), r.Invoice.GetByID)
		invoices.POST("/:id/approve", capability(identity.CapApproveInvoice), r.Invoice.Approve)
		invoices.POST("/:id/reject", capability(identity.CapApproveInvoice), r.Invoice.Reject)
	}

	payments := api.Group("/payments")
	{
		payments.POST("", capability(identity.CapAddPayment), r.Payment.Create)
		payments.GET("/:id", capability(identity.CapViewPurchaseOrder), r.Payment.GetByID)
		payments.POST("/:id/decide", capability(identity.CapApprovePayment), r.Payment.Decide)
	}
}

// LedgerRoutes registers ledger account and entry endpoints
type LedgerRoutes struct {
	Ledger *handler.LedgerHandler
}

// RegisterRoutes implements RouteRegistrar
func (r *LedgerRoutes) RegisterRoutes(api *gin.RouterGroup) {
	ledgerGroup := api.Group("/ledger")
	{
		ledgerGroup.POST("/accounts", capability(identity.CapPostLedgerEntry), r.Ledger.CreateAccount)
		ledgerGroup.GET("/accounts", capability(identity.CapViewLedger), r.Ledger.ListAccounts)
		ledgerGroup.GET("/accounts/:code", capability(identity.CapViewLedger), r.Ledger.GetAccount)
		ledgerGroup.GET("/trial-balance", capability(identity.CapViewLedger), r.Ledger.GetTrialBalance)
		ledgerGroup.POST("/entries", capability(identity.CapPostLedgerEntry), r.Ledger.Post)
		ledgerGroup.GET("/entries", capability(identity.CapViewLedger), r.Ledger.ListEntries)
		ledgerGroup.GET("/entries/:id", capability(identity.CapViewLedger), r.Ledger.GetEntry)
	}
}
