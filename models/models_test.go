package models

import "testing"

func TestTableNames(t *testing.T) {
	cases := map[string]interface{ TableName() string }{
		"sales_order_headers":    SalesOrderHeader{},
		"sales_order_details":    SalesOrderDetail{},
		"special_offers":         SpecialOffer{},
		"work_orders":            WorkOrder{},
		"purchase_order_headers": PurchaseOrderHeader{},
		"products":               Product{},
		"product_subcategories":  ProductSubcategory{},
	}
	for want, m := range cases {
		if got := m.TableName(); got != want {
			t.Fatalf("table name mismatch: got %q, want %q", got, want)
		}
	}
}

func TestAllModels_CoversEveryTable(t *testing.T) {
	all := AllModels()
	if len(all) != 7 {
		t.Fatalf("expected 7 models, got %d", len(all))
	}
	// Parents must precede the tables that reference them.
	pos := make(map[string]int, len(all))
	for i, m := range all {
		named, ok := m.(interface{ TableName() string })
		if !ok {
			t.Fatalf("model %T has no TableName", m)
		}
		pos[named.TableName()] = i
	}
	if pos["products"] > pos["sales_order_details"] {
		t.Fatal("products must migrate before sales_order_details")
	}
	if pos["products"] > pos["work_orders"] {
		t.Fatal("products must migrate before work_orders")
	}
	if pos["sales_order_headers"] > pos["sales_order_details"] {
		t.Fatal("sales_order_headers must migrate before sales_order_details")
	}
}
