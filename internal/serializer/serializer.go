// Package serializer turns models into API response shapes: absolute media
// URLs, formatted prices and pagination envelopes.
package serializer

import (
	"time"

	"github.com/deppfellow/geology-api/internal/lib/media"
	"github.com/deppfellow/geology-api/internal/lib/utils"
	"github.com/deppfellow/geology-api/internal/model"
)

// URLResolver turns a storage key into an absolute URL.
type URLResolver interface {
	URL(baseURL, key string) string
}

// Serializer is bound to one request: baseURL is its scheme and host.
type Serializer struct {
	urls    URLResolver
	baseURL string
}

func New(urls URLResolver, baseURL string) *Serializer {
	return &Serializer{urls: urls, baseURL: baseURL}
}

func (s *Serializer) url(key *string) *string {
	if key == nil || *key == "" {
		return nil
	}
	u := s.urls.URL(s.baseURL, *key)
	return &u
}

type Category struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Image    *string `json:"image"`
	ImageURL *string `json:"image_url"`
	IsSVG    bool    `json:"is_svg"`
}

// CategoryDetail embeds the category's products.
type CategoryDetail struct {
	Category
	Products []Product `json:"products"`
}

func (s *Serializer) Category(c *model.Category) Category {
	imageURL := s.url(c.Image)
	return Category{
		ID:       c.ID,
		Name:     c.Name,
		Image:    imageURL,
		ImageURL: imageURL,
		IsSVG:    c.Image != nil && media.IsSVG(*c.Image),
	}
}

func (s *Serializer) Categories(categories []model.Category) []Category {
	out := make([]Category, 0, len(categories))
	for i := range categories {
		out = append(out, s.Category(&categories[i]))
	}
	return out
}

func (s *Serializer) CategoryDetail(c *model.Category) CategoryDetail {
	return CategoryDetail{Category: s.Category(c), Products: s.Products(c.Products)}
}

type ProductImage struct {
	ID        int64   `json:"id"`
	ImageURL  *string `json:"image_url"`
	IsSVG     bool    `json:"is_svg"`
	IsMain    bool    `json:"is_main"`
	Order     int     `json:"order"`
	ProductID int64   `json:"product"`
}

func (s *Serializer) ProductImage(img *model.Image) ProductImage {
	return ProductImage{
		ID:        img.ID,
		ImageURL:  s.url(&img.Key),
		IsSVG:     media.IsSVG(img.Key),
		IsMain:    img.IsMain,
		Order:     img.SortOrder,
		ProductID: img.OwnerID,
	}
}

func (s *Serializer) ProductImages(images []model.Image) []ProductImage {
	out := make([]ProductImage, 0, len(images))
	for i := range images {
		out = append(out, s.ProductImage(&images[i]))
	}
	return out
}

type Product struct {
	ID                int64          `json:"id"`
	Name              string         `json:"name"`
	Size              *string        `json:"size"`
	Description       string         `json:"description"`
	Quantity          int            `json:"quantity"`
	Brand             *string        `json:"brand"`
	ThreadConnection  *string        `json:"thread_connection"`
	ThreadConnection2 *string        `json:"thread_connection_2"`
	Armament          *string        `json:"armament"`
	Seal              *string        `json:"seal"`
	IADC              *string        `json:"iadc"`
	CategoryID        int64          `json:"category"`
	Images            []ProductImage `json:"images"`
	MainImage         *string        `json:"main_image"`
	ImageURLs         []string       `json:"image_urls"`
	Price             string         `json:"price"`
	DisplayPrice      string         `json:"display_price"`
}

func (s *Serializer) Product(p *model.Product) Product {
	out := Product{
		ID:                p.ID,
		Name:              p.Name,
		Size:              p.Size,
		Description:       p.Description,
		Quantity:          p.Quantity,
		Brand:             p.Brand,
		ThreadConnection:  p.ThreadConnection,
		ThreadConnection2: p.ThreadConnection2,
		Armament:          p.Armament,
		Seal:              p.Seal,
		IADC:              p.IADC,
		CategoryID:        p.CategoryID,
		Images:            s.ProductImages(p.Images),
		ImageURLs:         make([]string, 0, len(p.Images)),
		Price:             p.Price.StringFixed(2),
		DisplayPrice:      utils.FormatRubles(p.Price),
	}

	for i := range p.Images {
		if u := s.url(&p.Images[i].Key); u != nil {
			out.ImageURLs = append(out.ImageURLs, *u)
		}
	}

	// Main image falls back to the first image.
	if main := model.MainImage(p.Images); main != nil {
		out.MainImage = s.url(&main.Key)
	} else if len(p.Images) > 0 {
		out.MainImage = s.url(&p.Images[0].Key)
	}

	return out
}

func (s *Serializer) Products(products []model.Product) []Product {
	out := make([]Product, 0, len(products))
	for i := range products {
		out = append(out, s.Product(&products[i]))
	}
	return out
}

type SaleItemImage struct {
	ID         int64   `json:"id"`
	SaleItemID int64   `json:"sale_item"`
	Image      *string `json:"image"`
	ImageURL   *string `json:"image_url"`
	IsMain     bool    `json:"is_main"`
	Order      int     `json:"order"`
}

func (s *Serializer) SaleItemImage(img *model.Image) SaleItemImage {
	u := s.url(&img.Key)
	return SaleItemImage{
		ID:         img.ID,
		SaleItemID: img.OwnerID,
		Image:      u,
		ImageURL:   u,
		IsMain:     img.IsMain,
		Order:      img.SortOrder,
	}
}

func (s *Serializer) SaleItemImages(images []model.Image) []SaleItemImage {
	out := make([]SaleItemImage, 0, len(images))
	for i := range images {
		out = append(out, s.SaleItemImage(&images[i]))
	}
	return out
}

type SaleItem struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	OldPrice     string          `json:"old_price"`
	NewPrice     string          `json:"new_price"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	MainImageURL *string         `json:"main_image_url"`
	Images       []SaleItemImage `json:"images"`
}

// SaleItem only reports a main image when one is flagged; there is no
// fallback to the first image.
func (s *Serializer) SaleItem(item *model.SaleItem) SaleItem {
	out := SaleItem{
		ID:          item.ID,
		Title:       item.Title,
		Slug:        item.Slug,
		Description: item.Description,
		OldPrice:    item.OldPrice.StringFixed(2),
		NewPrice:    item.NewPrice.StringFixed(2),
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
		Images:      s.SaleItemImages(item.Images),
	}
	if main := model.MainImage(item.Images); main != nil {
		out.MainImageURL = s.url(&main.Key)
	}
	return out
}

func (s *Serializer) SaleItems(items []model.SaleItem) []SaleItem {
	out := make([]SaleItem, 0, len(items))
	for i := range items {
		out = append(out, s.SaleItem(&items[i]))
	}
	return out
}

type Employee struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Photo     *string   `json:"photo"`
	PhotoURL  *string   `json:"photo_url"`
	Positions string    `json:"positions"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Serializer) Employee(e *model.Employee) Employee {
	photoURL := s.url(e.Photo)
	return Employee{
		ID:        e.ID,
		FullName:  e.FullName,
		Photo:     photoURL,
		PhotoURL:  photoURL,
		Positions: e.Positions,
		Bio:       e.Bio,
		CreatedAt: e.CreatedAt,
	}
}

func (s *Serializer) Employees(employees []model.Employee) []Employee {
	out := make([]Employee, 0, len(employees))
	for i := range employees {
		out = append(out, s.Employee(&employees[i]))
	}
	return out
}

type ContactMessage struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func ContactMessageOf(m *model.ContactMessage) ContactMessage {
	return ContactMessage{ID: m.ID, Email: m.Email, Message: m.Message, CreatedAt: m.CreatedAt}
}

type OrderProduct struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type Order struct {
	ID             int64          `json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Status         string         `json:"status"`
	Total          string         `json:"total"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	Comment        string         `json:"comment"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Company        string         `json:"company"`
	Country        string         `json:"country"`
	ZipCode        string         `json:"zip_code"`
	Region         string         `json:"region"`
	City           string         `json:"city"`
	Address        string         `json:"address"`
	DeliveryMethod string         `json:"delivery_method"`
	AgreedToTerms  bool           `json:"agreed_to_terms"`
	Products       []OrderProduct `json:"products"`
}

func OrderOf(o *model.Order) Order {
	out := Order{
		ID:             o.ID,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		Status:         o.Status,
		Total:          o.Total.StringFixed(2),
		Phone:          o.Phone,
		Email:          o.Email,
		Comment:        o.Comment,
		FirstName:      o.FirstName,
		LastName:       o.LastName,
		Company:        o.Company,
		Country:        o.Country,
		ZipCode:        o.ZipCode,
		Region:         o.Region,
		City:           o.City,
		Address:        o.Address,
		DeliveryMethod: o.DeliveryMethod,
		AgreedToTerms:  o.AgreedToTerms,
		Products:       make([]OrderProduct, 0, len(o.Items)),
	}
	for _, p := range o.Products() {
		out.Products = append(out.Products, OrderProduct{
			ProductID: p.ProductID,
			Name:      p.Name,
			Price:     p.Price.StringFixed(2),
			Quantity:  p.Quantity,
			LineTotal: p.LineTotal.StringFixed(2),
		})
	}
	return out
}
