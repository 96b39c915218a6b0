// Package reports implements the eight analytical reports of the bicycle
// manufacturer sales analysis as pure transforms over an immutable in-memory
// snapshot of the source tables. Report functions never mutate their input
// and share no state, so any number of them may run concurrently over the
// same snapshot.
package reports

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adventureworks/models"
)

// Snapshot is a read-only view of the seven source tables. The loader fills
// it once per analysis run; reports only ever read from it.
type Snapshot struct {
	OrderDetails   []models.SalesOrderDetail
	OrderHeaders   []models.SalesOrderHeader
	SpecialOffers  []models.SpecialOffer
	WorkOrders     []models.WorkOrder
	PurchaseOrders []models.PurchaseOrderHeader
	Products       []models.Product
	Subcategories  []models.ProductSubcategory
}

// TableError reports invalid input data, naming the offending table and column.
type TableError struct {
	Table  string
	Column string
	Reason string
}

func (e *TableError) Error() string {
	return fmt.Sprintf("invalid input: table %q column %q: %s", e.Table, e.Column, e.Reason)
}

// tableSet selects which tables a report consumes, so validation stays local
// to the tables that invocation actually reads.
type tableSet uint

const (
	tabOrderDetails tableSet = 1 << iota
	tabOrderHeaders
	tabSpecialOffers
	tabWorkOrders
	tabPurchaseOrders
	tabProducts
	tabSubcategories

	tabAll = tabOrderDetails | tabOrderHeaders | tabSpecialOffers |
		tabWorkOrders | tabPurchaseOrders | tabProducts | tabSubcategories
)

// Validate checks every table of the snapshot. The loader calls this once
// after materializing; individual reports re-check only the tables they use.
func (s *Snapshot) Validate() error {
	return s.validate(tabAll)
}

func (s *Snapshot) validate(tables tableSet) error {
	if tables&tabOrderDetails != 0 {
		seen := make(map[uint]struct{}, len(s.OrderDetails))
		for _, d := range s.OrderDetails {
			if _, dup := seen[d.SalesOrderDetailID]; dup {
				return dupKeyError(models.SalesOrderDetail{}.TableName(), "sales_order_detail_id", d.SalesOrderDetailID)
			}
			seen[d.SalesOrderDetailID] = struct{}{}
			if d.OrderQty < 0 {
				return &TableError{
					Table:  models.SalesOrderDetail{}.TableName(),
					Column: "order_qty",
					Reason: fmt.Sprintf("negative quantity %d on detail %d", d.OrderQty, d.SalesOrderDetailID),
				}
			}
		}
	}
	if tables&tabOrderHeaders != 0 {
		seen := make(map[uint]struct{}, len(s.OrderHeaders))
		for _, h := range s.OrderHeaders {
			if _, dup := seen[h.SalesOrderID]; dup {
				return dupKeyError(models.SalesOrderHeader{}.TableName(), "sales_order_id", h.SalesOrderID)
			}
			seen[h.SalesOrderID] = struct{}{}
		}
	}
	if tables&tabSpecialOffers != 0 {
		seen := make(map[uint]struct{}, len(s.SpecialOffers))
		for _, o := range s.SpecialOffers {
			if _, dup := seen[o.SpecialOfferID]; dup {
				return dupKeyError(models.SpecialOffer{}.TableName(), "special_offer_id", o.SpecialOfferID)
			}
			seen[o.SpecialOfferID] = struct{}{}
		}
	}
	if tables&tabWorkOrders != 0 {
		seen := make(map[uint]struct{}, len(s.WorkOrders))
		for _, w := range s.WorkOrders {
			if _, dup := seen[w.WorkOrderID]; dup {
				return dupKeyError(models.WorkOrder{}.TableName(), "work_order_id", w.WorkOrderID)
			}
			seen[w.WorkOrderID] = struct{}{}
		}
	}
	if tables&tabPurchaseOrders != 0 {
		seen := make(map[uint]struct{}, len(s.PurchaseOrders))
		for _, p := range s.PurchaseOrders {
			if _, dup := seen[p.PurchaseOrderID]; dup {
				return dupKeyError(models.PurchaseOrderHeader{}.TableName(), "purchase_order_id", p.PurchaseOrderID)
			}
			seen[p.PurchaseOrderID] = struct{}{}
		}
	}
	if tables&tabProducts != 0 {
		seen := make(map[uint]struct{}, len(s.Products))
		for _, p := range s.Products {
			if _, dup := seen[p.ProductID]; dup {
				return dupKeyError(models.Product{}.TableName(), "product_id", p.ProductID)
			}
			seen[p.ProductID] = struct{}{}
			if _, _, err := subcategoryKey(p); err != nil {
				return err
			}
		}
	}
	if tables&tabSubcategories != 0 {
		seen := make(map[uint]struct{}, len(s.Subcategories))
		for _, sc := range s.Subcategories {
			if _, dup := seen[sc.ProductSubcategoryID]; dup {
				return dupKeyError(models.ProductSubcategory{}.TableName(), "product_subcategory_id", sc.ProductSubcategoryID)
			}
			seen[sc.ProductSubcategoryID] = struct{}{}
		}
	}
	return nil
}

func dupKeyError(table, column string, key uint) error {
	return &TableError{Table: table, Column: column, Reason: fmt.Sprintf("duplicate key %d", key)}
}

// subcategoryKey coerces a product's text-typed subcategory reference to the
// integer key space of product_subcategories. The source extract stores the
// two sides of this join as different physical types, so the coercion happens
// here, at the access boundary, not inside the transforms. A null or blank
// reference means "no subcategory".
func subcategoryKey(p models.Product) (uint, bool, error) {
	if p.ProductSubcategoryID == nil {
		return 0, false, nil
	}
	raw := strings.TrimSpace(*p.ProductSubcategoryID)
	if raw == "" {
		return 0, false, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false, &TableError{
			Table:  models.Product{}.TableName(),
			Column: "product_subcategory_id",
			Reason: fmt.Sprintf("value %q on product %d is not an integer key", raw, p.ProductID),
		}
	}
	return uint(id), true, nil
}

// subcategoryNameByProduct resolves each product to its subcategory name.
// Products without a subcategory, or referencing an unknown one, are absent
// from the result; callers joining through this map get inner-join semantics.
// The snapshot must already be validated for the products table.
func (s *Snapshot) subcategoryNameByProduct() map[uint]string {
	names := make(map[uint]string, len(s.Subcategories))
	for _, sc := range s.Subcategories {
		names[sc.ProductSubcategoryID] = sc.Name
	}
	out := make(map[uint]string, len(s.Products))
	for _, p := range s.Products {
		key, ok, err := subcategoryKey(p)
		if err != nil || !ok {
			continue
		}
		if name, found := names[key]; found {
			out[p.ProductID] = name
		}
	}
	return out
}

// productNameByID resolves product IDs to names for left joins; missing
// products simply have no entry.
func (s *Snapshot) productNameByID() map[uint]string {
	out := make(map[uint]string, len(s.Products))
	for _, p := range s.Products {
		out[p.ProductID] = p.Name
	}
	return out
}

func (s *Snapshot) offerByID() map[uint]models.SpecialOffer {
	out := make(map[uint]models.SpecialOffer, len(s.SpecialOffers))
	for _, o := range s.SpecialOffers {
		out[o.SpecialOfferID] = o
	}
	return out
}

func (s *Snapshot) headerByOrderID() map[uint]models.SalesOrderHeader {
	out := make(map[uint]models.SalesOrderHeader, len(s.OrderHeaders))
	for _, h := range s.OrderHeaders {
		out[h.SalesOrderID] = h
	}
	return out
}
