package api

import "time"

// Envelope is the {message, data, total} wrapper used by listing endpoints.
type Envelope[T any] struct {
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
	Total   int    `json:"total,omitempty"`
}

// Category groups products.
type Category struct {
	ID          int    `json:"id"                    yaml:"id"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Vendor is the seller of a product.
type Vendor struct {
	FirstName string `json:"firstName"         yaml:"first_name"`
	LastName  string `json:"lastName"          yaml:"last_name"`
	Picture   string `json:"picture,omitempty" yaml:"picture,omitempty"`
}

// Product is a catalog entry.
type Product struct {
	ID            int       `json:"id"                  yaml:"id"`
	Name          string    `json:"name"                yaml:"name"`
	Image         string    `json:"image,omitempty"     yaml:"image,omitempty"`
	Gallery       []string  `json:"gallery,omitempty"   yaml:"gallery,omitempty"`
	ShortDesc     string    `json:"shortDesc,omitempty" yaml:"short_desc,omitempty"`
	LongDesc      string    `json:"longDesc,omitempty"  yaml:"long_desc,omitempty"`
	Quantity      int       `json:"quantity"            yaml:"quantity"`
	RegularPrice  float64   `json:"regularPrice"        yaml:"regular_price"`
	SalesPrice    float64   `json:"salesPrice"          yaml:"sales_price"`
	Tags          []string  `json:"tags,omitempty"      yaml:"tags,omitempty"`
	Type          string    `json:"type,omitempty"      yaml:"type,omitempty"`
	IsAvailable   bool      `json:"isAvailable"         yaml:"is_available"`
	AverageRating float64   `json:"averageRating"       yaml:"average_rating"`
	CreatedAt     time.Time `json:"createdAt"           yaml:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt"           yaml:"updated_at"`
	Category      *Category `json:"category,omitempty"  yaml:"category,omitempty"`
	Vendor        *Vendor   `json:"vendor,omitempty"    yaml:"vendor,omitempty"`
}

// Price returns the price a buyer pays: the sales price when set, otherwise
// the regular price.
func (p Product) Price() float64 {
	if p.SalesPrice > 0 {
		return p.SalesPrice
	}
	return p.RegularPrice
}

// ProductInput is the body of product create and update requests.
type ProductInput struct {
	Name         string   `json:"name"`
	Image        string   `json:"image,omitempty"`
	Gallery      []string `json:"gallery,omitempty"`
	ShortDesc    string   `json:"shortDesc,omitempty"`
	LongDesc     string   `json:"longDesc,omitempty"`
	CategoryID   int      `json:"categoryId,omitempty"`
	Quantity     int      `json:"quantity"`
	RegularPrice float64  `json:"regularPrice"`
	SalesPrice   float64  `json:"salesPrice,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Type         string   `json:"type,omitempty"`
	IsAvailable  bool     `json:"isAvailable"`
}

// CartItem is one line of the shopping cart.
type CartItem struct {
	ID       int     `json:"id"       yaml:"id"`
	Quantity int     `json:"quantity" yaml:"quantity"`
	Product  Product `json:"product"  yaml:"product"`
}

// Total returns quantity times unit price.
func (c CartItem) Total() float64 {
	return float64(c.Quantity) * c.Product.Price()
}

// DeliveryInfo is the shipping address of an order.
type DeliveryInfo struct {
	Address string `json:"address" yaml:"address"`
	City    string `json:"city"    yaml:"city"`
	Zip     string `json:"zip"     yaml:"zip"`
}

// PaymentInfo records how an order was paid.
type PaymentInfo struct {
	Method    string `json:"method,omitempty"    yaml:"method,omitempty"`
	Reference string `json:"reference,omitempty" yaml:"reference,omitempty"`
}

// OrderDetail is one product line of an order.
type OrderDetail struct {
	ID       int     `json:"id"       yaml:"id"`
	Quantity int     `json:"quantity" yaml:"quantity"`
	Price    float64 `json:"price"    yaml:"price"`
}

// Order statuses reported by the backend.
const (
	OrderPending   = "Pending"
	OrderCompleted = "Completed"
)

// Order is a placed checkout.
type Order struct {
	ID             int           `json:"id"                   yaml:"id"`
	TrackingNumber string        `json:"trackingNumber"       yaml:"tracking_number"`
	Status         string        `json:"status"               yaml:"status"`
	TotalAmount    float64       `json:"totalAmount"          yaml:"total_amount"`
	Country        string        `json:"country,omitempty"    yaml:"country,omitempty"`
	CouponCode     string        `json:"couponCode,omitempty" yaml:"coupon_code,omitempty"`
	DeliveryInfo   DeliveryInfo  `json:"deliveryInfo"         yaml:"delivery_info"`
	PaymentInfo    *PaymentInfo  `json:"paymentInfo"          yaml:"payment_info,omitempty"`
	Paid           bool          `json:"paid"                 yaml:"paid"`
	OrderDetails   []OrderDetail `json:"orderDetails"         yaml:"order_details"`
	CreatedAt      time.Time     `json:"createdAt"            yaml:"created_at"`
	UpdatedAt      time.Time     `json:"updatedAt"            yaml:"updated_at"`
}

// OrderRequest is the body of POST /checkout.
type OrderRequest struct {
	DeliveryInfo DeliveryInfo `json:"deliveryInfo"`
	CouponCode   string       `json:"couponCode,omitempty"`
	Email        string       `json:"email,omitempty"`
	FirstName    string       `json:"firstName,omitempty"`
	LastName     string       `json:"lastName,omitempty"`
}

// Coupon is a discount code.
type Coupon struct {
	ID                 int     `json:"id"                 yaml:"id"`
	Code               string  `json:"code,omitempty"     yaml:"code,omitempty"`
	Description        string  `json:"description"        yaml:"description"`
	Percentage         float64 `json:"percentage"         yaml:"percentage"`
	ExpirationDate     string  `json:"expirationDate"     yaml:"expiration_date"`
	ApplicableProducts []int   `json:"applicableProducts" yaml:"applicable_products"`
}

// Role is a user role with its permissions.
type Role struct {
	ID          int      `json:"id"          yaml:"id"`
	Name        string   `json:"name"        yaml:"name"`
	Permissions []string `json:"permissions" yaml:"permissions"`
}

// Review is a product review.
type Review struct {
	ID        int    `json:"id,omitempty" yaml:"id,omitempty"`
	ProductID int    `json:"productId"    yaml:"product_id"`
	Rating    int    `json:"rating"       yaml:"rating"`
	Content   string `json:"content"      yaml:"content"`
}
