package register_repo

import (
	"strings"
	"testing"
)

func TestBalancesByNamesQueryShape(t *testing.T) {
	repo := NewStockRepo(nil)

	sql, args, err := repo.balancesByNamesQuery([]string{"Salmon", "Sea Bream"})
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	// Inactive rows must come back too: reconciliation excludes them by
	// flag, and an SQL-side filter would make them look like missing stock.
	if strings.Contains(sql, "active =") {
		t.Errorf("query must not filter on the active flag: %s", sql)
	}
	if !strings.Contains(sql, "lower(product_name)") {
		t.Errorf("query must match on lowered product name: %s", sql)
	}
	if !strings.Contains(sql, "ORDER BY product_name ASC") {
		t.Errorf("query must order by product name: %s", sql)
	}

	want := map[string]bool{"salmon": false, "sea bream": false}
	for _, arg := range args {
		if s, ok := arg.(string); ok {
			if _, known := want[s]; known {
				want[s] = true
			}
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("lowered name %q missing from args %v", name, args)
		}
	}
}
