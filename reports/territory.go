package reports

import "sort"

// TerritoryRow is one territory's yearly order quantity with its rank inside
// that year.
type TerritoryRow struct {
	Year        int
	TerritoryID uint
	Qty         int
	Rank        int
}

// TopTerritories reports, for every year, the three top-ranked territories by
// order quantity. Ranking is dense, so tied territories share a rank and all
// territories ranked three or better are kept. Order lines without a matching
// order header are dropped (inner join).
func TopTerritories(s *Snapshot) ([]TerritoryRow, error) {
	if err := s.validate(tabOrderDetails | tabOrderHeaders); err != nil {
		return nil, err
	}

	headers := s.headerByOrderID()

	type key struct {
		year      int
		territory uint
	}
	totals := make(map[key]int)
	for _, d := range s.OrderDetails {
		h, ok := headers[d.SalesOrderID]
		if !ok {
			continue
		}
		totals[key{year: h.ModifiedDate.Year(), territory: h.TerritoryID}] += d.OrderQty
	}

	byYear := make(map[int][]TerritoryRow)
	for k, qty := range totals {
		byYear[k.year] = append(byYear[k.year], TerritoryRow{
			Year:        k.year,
			TerritoryID: k.territory,
			Qty:         qty,
		})
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]TerritoryRow, 0)
	for _, y := range years {
		rows := byYear[y]
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Qty != rows[j].Qty {
				return rows[i].Qty > rows[j].Qty
			}
			return rows[i].TerritoryID < rows[j].TerritoryID
		})
		ranks := denseRanks(len(rows), func(i int) bool {
			return rows[i].Qty == rows[i-1].Qty
		})
		for i := range rows {
			if ranks[i] > 3 {
				break
			}
			rows[i].Rank = ranks[i]
			out = append(out, rows[i])
		}
	}
	return out, nil
}
