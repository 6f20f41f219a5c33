package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// VendorType categorizes what a vendor supplies
type VendorType string

const (
	VendorTypeItem    VendorType = "item"
	VendorTypeService VendorType = "service"
	VendorTypeBoth    VendorType = "both"
)

// OrderType distinguishes item orders from service orders
type OrderType string

const (
	OrderTypeItem    OrderType = "item"
	OrderTypeService OrderType = "service"
)

// OrderStatus is the advisory workflow state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusApproved  OrderStatus = "approved"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCompleted OrderStatus = "completed"
)

// ValidOrderStatus reports whether s is one of the enumerated order statuses
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusDelivered, OrderStatusCompleted:
		return true
	}
	return false
}

// DocumentType enumerates the document kinds in the workflow
type DocumentType string

const (
	DocumentTypeProforma         DocumentType = "proforma"
	DocumentTypeDeliveryNote     DocumentType = "delivery_note"
	DocumentTypePaymentStatement DocumentType = "payment_statement"
	DocumentTypeReceipt          DocumentType = "receipt"
	DocumentTypeJobCard          DocumentType = "job_card"
	DocumentTypeDiagnosis        DocumentType = "diagnosis"
)

// ValidDocumentType reports whether t is one of the enumerated document types
func ValidDocumentType(t DocumentType) bool {
	switch t {
	case DocumentTypeProforma, DocumentTypeDeliveryNote, DocumentTypePaymentStatement,
		DocumentTypeReceipt, DocumentTypeJobCard, DocumentTypeDiagnosis:
		return true
	}
	return false
}

// DocumentStatus is the advisory workflow state of a document
type DocumentStatus string

const (
	DocumentStatusPending   DocumentStatus = "pending"
	DocumentStatusApproved  DocumentStatus = "approved"
	DocumentStatusDelivered DocumentStatus = "delivered"
	DocumentStatusPaid      DocumentStatus = "paid"
)

// ValidDocumentStatus reports whether s is one of the enumerated document statuses
func ValidDocumentStatus(s DocumentStatus) bool {
	switch s {
	case DocumentStatusPending, DocumentStatusApproved, DocumentStatusDelivered, DocumentStatusPaid:
		return true
	}
	return false
}

// Client represents a customer account
type Client struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Name        string    `gorm:"not null" json:"name"`
	Contact     string    `gorm:"not null" json:"contact"`
	Address     *string   `json:"address"`
	CreditLimit float64   `gorm:"not null;default:0" json:"credit_limit"`
	CreditDays  int       `gorm:"not null;default:0" json:"credit_days"`
	Orders      []Order   `gorm:"foreignKey:ClientID" json:"-"`
}

// Vendor represents a supplier of items, services or both
type Vendor struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	Name      string     `gorm:"not null" json:"name"`
	Contact   string     `gorm:"not null" json:"contact"`
	Type      VendorType `gorm:"not null;default:item" json:"type"`
	Items     []Item     `gorm:"foreignKey:VendorID" json:"-"`
	Services  []Service  `gorm:"foreignKey:VendorID" json:"-"`
}

// Item represents a stocked inventory product
type Item struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	Name      string     `gorm:"not null" json:"name"`
	VendorID  *uuid.UUID `gorm:"type:uuid" json:"vendor_id"`
	BuyPrice  float64    `gorm:"not null" json:"buy_price"`
	SellPrice float64    `gorm:"not null" json:"sell_price"`
	StockQty  int        `gorm:"not null;default:0" json:"stock_qty"`
	Warranty  *string    `json:"warranty"`
	Vendor    *Vendor    `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

// Service represents an offered service from the catalog
type Service struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	Name      string     `gorm:"not null" json:"name"`
	VendorID  *uuid.UUID `gorm:"type:uuid" json:"vendor_id"`
	Cost      float64    `gorm:"not null" json:"cost"`
	Vendor    *Vendor    `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

// Technician represents a field technician and the services they cover
type Technician struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
	Name        string      `gorm:"not null" json:"name"`
	Contact     string      `gorm:"not null" json:"contact"`
	ServiceIDs  []uuid.UUID `gorm:"type:jsonb;serializer:json" json:"service_ids"`
	IsAvailable bool        `gorm:"not null;default:true" json:"is_available"`
}

// Order represents a client order for items or services
type Order struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
	ClientID    uuid.UUID     `gorm:"type:uuid;not null" json:"client_id"`
	Type        OrderType     `gorm:"not null" json:"type"`
	TotalAmount float64       `gorm:"not null;default:0" json:"total_amount"`
	Status      OrderStatus   `gorm:"not null;default:pending" json:"status"`
	Client      *Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Details     []OrderDetail `gorm:"foreignKey:OrderID" json:"details,omitempty"`
}

// OrderDetail is a line on an order; subtotal = quantity * unit_price
type OrderDetail struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null" json:"order_id"`
	ItemID    *uuid.UUID `gorm:"type:uuid" json:"item_id"`
	ServiceID *uuid.UUID `gorm:"type:uuid" json:"service_id"`
	Quantity  int        `gorm:"not null;default:1" json:"quantity"`
	UnitPrice float64    `gorm:"not null" json:"unit_price"`
	Subtotal  float64    `gorm:"not null" json:"subtotal"`
}

// Document represents a workflow document tied to an order
type Document struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	OrderID        uuid.UUID      `gorm:"type:uuid;not null" json:"order_id"`
	ClientID       uuid.UUID      `gorm:"type:uuid;not null" json:"client_id"`
	VendorID       *uuid.UUID     `gorm:"type:uuid" json:"vendor_id"`
	Type           DocumentType   `gorm:"not null" json:"type"`
	Status         DocumentStatus `gorm:"not null;default:pending" json:"status"`
	DueDate        *time.Time     `json:"due_date"`
	FilePath       *string        `json:"file_path"`
	DocumentNumber string         `gorm:"not null" json:"document_number"`
	Client         *Client        `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Order          *Order         `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

// Payment records money received against an order
type Payment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	ClientID    uuid.UUID `gorm:"type:uuid;not null" json:"client_id"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null" json:"order_id"`
	AmountPaid  float64   `gorm:"not null" json:"amount_paid"`
	Balance     float64   `gorm:"not null;default:0" json:"balance"`
	PaymentDate time.Time `gorm:"not null" json:"payment_date"`
	Client      *Client   `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Order       *Order    `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

// SetupModels configures GORM models and runs migrations
func SetupModels(db *gorm.DB) error {
	// Summary views are maintained by the database, not migrated here
	err := db.AutoMigrate(
		&Client{},
		&Vendor{},
		&Item{},
		&Service{},
		&Technician{},
		&Order{},
		&OrderDetail{},
		&Document{},
		&Payment{},
	)

	if err != nil {
		return errors.Wrap(err, "failed to run auto migrations")
	}

	return nil
}
