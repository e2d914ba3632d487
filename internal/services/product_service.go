// Package services – ProductService
//
// This file implements ProductService, the catalog-management component used
// by the back office. Registration creates the whole product graph in one
// transaction: the identity row with a generated code, the first detail
// fact, one option per (color, size) combination with its launch stock
// opened as a ledger fact, and the listing images. Later merchandising
// changes never mutate rows in place: UpdateDetail supersedes the current
// fact, Delist retires it, and SetStock moves the counter and the ledger
// together.
//
// Product codes are derived from the merchandising name: lowercased word
// runs joined with dashes plus a random tail, so two products named alike
// still get distinct codes.

package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"

	"github.com/tbourn/go-shop-backend/internal/domain"
	"github.com/tbourn/go-shop-backend/internal/repo"
	"github.com/tbourn/go-shop-backend/internal/timeline"

	// OpenTelemetry
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ProductDetailInput carries one merchandising revision. Every field lands
// on the detail fact opened or superseded by the call; omitted optional
// fields (nil pointers) are stored as NULL, not inherited from the previous
// revision.
type ProductDetailInput struct {
	Name             string
	ShortDescription string
	Description      string
	SubCategoryID    *uint
	Price            int64
	DiscountRate     *int64
	DiscountStart    *time.Time
	DiscountEnd      *time.Time
	MinSalesQuantity int64
	MaxSalesQuantity int64
	IsActivated      bool
	IsDisplayed      bool
}

// RegisterOption is one sellable (color, size) combination with its launch
// stock.
type RegisterOption struct {
	ColorID  uint
	SizeID   uint
	Quantity int64
}

// RegisterImage is one listing image attached at registration.
type RegisterImage struct {
	URL    string
	IsMain bool
}

// RegisterProductInput is the complete registration payload.
type RegisterProductInput struct {
	Detail  ProductDetailInput
	Options []RegisterOption
	Images  []RegisterImage
}

// ProductAttributes bundles the lookup tables the registration form needs.
type ProductAttributes struct {
	Colors         []domain.Color        `json:"colors"`
	Sizes          []domain.Size         `json:"sizes"`
	MainCategories []domain.MainCategory `json:"main_categories"`
	SubCategories  []domain.SubCategory  `json:"sub_categories"`
}

// ProductService owns catalog mutations and the back-office product search.
type ProductService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// Now supplies fact validity instants; tests inject a fixed clock. A nil
	// Now falls back to time.Now in UTC.
	Now func() time.Time

	// CodeLocale selects the casing rules for generated product codes.
	CodeLocale language.Tag
}

// NewProductService constructs a ProductService using the wall clock.
func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{DB: db}
}

func (s *ProductService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Register creates a product and puts it on sale in one transaction: the
// identity row, the first detail fact, every option with its counter and
// opening ledger fact, and the listing images. All facts share one validity
// start, so the product's whole launch state is resolvable at any instant
// from then on. Returns the new product id.
func (s *ProductService) Register(ctx context.Context, in RegisterProductInput) (uint, error) {
	tr := otel.Tracer("services/ProductService")
	ctx, span := tr.Start(ctx, "Register",
		trace.WithAttributes(
			attribute.String("product.name", in.Detail.Name),
			attribute.Int("options", len(in.Options)),
		),
	)
	defer span.End()

	if err := validateDetail(in.Detail); err != nil {
		return 0, err
	}
	for _, opt := range in.Options {
		if opt.Quantity < 0 {
			return 0, ErrInvalidQuantity
		}
	}

	now := s.now()
	var productID uint
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := repo.CreateProduct(ctx, tx, s.generateCode(in.Detail.Name))
		if err != nil {
			return err
		}

		if err := timeline.Open(tx, detailFact(p.ID, in.Detail), now); err != nil {
			return err
		}

		for _, opt := range in.Options {
			o, err := repo.CreateOption(ctx, tx, p.ID, opt.ColorID, opt.SizeID, opt.Quantity)
			if err != nil {
				return err
			}
			if err := timeline.Open(tx, &domain.StockLevel{
				ProductOptionID: o.ID,
				Quantity:        opt.Quantity,
			}, now); err != nil {
				return err
			}
		}

		for _, img := range in.Images {
			if err := timeline.Open(tx, &domain.ProductImage{
				ProductID: p.ID,
				URL:       img.URL,
				IsMain:    img.IsMain,
			}, now); err != nil {
				return err
			}
		}

		productID = p.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return productID, nil
}

// UpdateDetail supersedes the product's current merchandising fact with a
// new revision. The closed revision stays queryable, so orders placed under
// it keep resolving to the values that were binding then. A delisted product
// has no open fact to supersede and reports ErrProductNotFound.
func (s *ProductService) UpdateDetail(ctx context.Context, productID uint, in ProductDetailInput) error {
	if err := validateDetail(in); err != nil {
		return err
	}
	now := s.now()
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetProduct(ctx, tx, productID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		if err := timeline.Supersede(tx, detailFact(productID, in), now); err != nil {
			if errors.Is(err, timeline.ErrNoOpenFact) {
				return ErrProductNotFound
			}
			return err
		}
		return nil
	})
}

// Delist takes a product off sale: the open detail fact is retired, open
// image intervals are closed, and the identity row is soft-deleted. Options,
// the stock ledger, and order history are untouched; past orders keep
// resolving through the closed intervals.
func (s *ProductService) Delist(ctx context.Context, productID uint) error {
	now := s.now()
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetProduct(ctx, tx, productID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		// Already-delisted facts are fine to skip; the identity row is the
		// source of truth for "gone".
		err := timeline.Retire(tx, &domain.ProductDetail{ProductID: productID}, now)
		if err != nil && !errors.Is(err, timeline.ErrNoOpenFact) {
			return err
		}

		imgs, err := repo.ActiveImagesAt(ctx, tx, productID, now)
		if err != nil {
			return err
		}
		for i := range imgs {
			proto := &domain.ProductImage{ProductID: productID, URL: imgs[i].URL}
			if err := timeline.Retire(tx, proto, now); err != nil {
				return err
			}
		}

		return repo.SoftDeleteProduct(ctx, tx, productID)
	})
}

// SetStock overwrites an option's stock to an absolute quantity, moving the
// counter and the ledger together in one transaction.
func (s *ProductService) SetStock(ctx context.Context, optionID uint, qty int64) error {
	if qty < 0 {
		return ErrInvalidQuantity
	}
	now := s.now()
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.SetStockLevel(ctx, tx, optionID, qty, now); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrOptionNotFound
			}
			return err
		}
		return nil
	})
}

// Search returns one page of registered products for the back office, plus
// the unpaginated total.
func (s *ProductService) Search(ctx context.Context, f repo.ProductFilter, page, pageSize int) ([]repo.RegisteredProduct, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return repo.SearchRegisteredProducts(ctx, s.DB, f, offset, pageSize)
}

// Attributes returns colors, sizes, and the category tree for the
// registration form.
func (s *ProductService) Attributes(ctx context.Context) (*ProductAttributes, error) {
	colors, err := repo.ListColors(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	sizes, err := repo.ListSizes(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	mains, err := repo.ListMainCategories(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	subs, err := repo.ListAllSubCategories(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	return &ProductAttributes{
		Colors:         colors,
		Sizes:          sizes,
		MainCategories: mains,
		SubCategories:  subs,
	}, nil
}

// validateDetail checks the cross-field rules of a merchandising revision.
// Shape validation (required fields, formats) is the handlers' concern.
func validateDetail(in ProductDetailInput) error {
	if in.Price < 0 {
		return ErrInvalidPrice
	}
	if in.DiscountRate != nil && (*in.DiscountRate < 0 || *in.DiscountRate > 100) {
		return ErrInvalidDiscount
	}
	if in.MinSalesQuantity < 1 || in.MaxSalesQuantity < in.MinSalesQuantity {
		return ErrInvalidSalesBounds
	}
	return nil
}

// detailFact builds the fact row for one revision. Validity is stamped by
// the timeline call, never here.
func detailFact(productID uint, in ProductDetailInput) *domain.ProductDetail {
	return &domain.ProductDetail{
		ProductID:        productID,
		Name:             in.Name,
		ShortDescription: in.ShortDescription,
		Description:      in.Description,
		SubCategoryID:    in.SubCategoryID,
		Price:            in.Price,
		DiscountRate:     in.DiscountRate,
		DiscountStart:    in.DiscountStart,
		DiscountEnd:      in.DiscountEnd,
		MinSalesQuantity: in.MinSalesQuantity,
		MaxSalesQuantity: in.MaxSalesQuantity,
		IsActivated:      in.IsActivated,
		IsDisplayed:      in.IsDisplayed,
	}
}

// codeWordRE extracts letter/digit runs; everything else separates code words.
var codeWordRE = regexp.MustCompile(`[\p{L}\p{N}]+`)

// codeFold strips diacritics (NFKD decompose, drop combining marks) so
// generated codes stay plain even for accented merchandising names.
var codeFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// generateCode derives a product code from the merchandising name: up to six
// folded, lowercased word runs joined with dashes plus a random tail for
// uniqueness.
func (s *ProductService) generateCode(name string) string {
	folded, _, err := transform.String(codeFold, name)
	if err != nil {
		folded = name
	}
	lower := cases.Lower(s.codeLocaleOrDefault())
	toks := codeWordRE.FindAllString(lower.String(folded), -1)
	if len(toks) > 6 {
		toks = toks[:6]
	}
	tail := strings.SplitN(uuid.NewString(), "-", 2)[0]
	if len(toks) == 0 {
		return "product-" + tail
	}
	return strings.Join(toks, "-") + "-" + tail
}

// codeLocaleOrDefault returns the configured locale for code casing or
// English if unset.
func (s *ProductService) codeLocaleOrDefault() language.Tag {
	if s.CodeLocale == language.Und {
		return language.English
	}
	return s.CodeLocale
}
