package lead

import (
	"strings"

	common_models "sales-crm/internal/common/models"
)

// ListFilter mirrors the leads page controls: one search box plus two
// categorical dropdowns with an "all" sentinel.
type ListFilter struct {
	Search string
	Status string
	Source string
}

// Apply narrows the full loaded set in memory. Search is a
// case-insensitive substring match over name, email and company;
// status and source are exact matches. The filters are independent,
// so application order does not change the result.
func (f ListFilter) Apply(records []Lead) []Lead {
	out := make([]Lead, 0, len(records))
	for _, record := range records {
		if !f.matches(record) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func (f ListFilter) matches(record Lead) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(record.Name), needle) &&
			!strings.Contains(strings.ToLower(record.Email), needle) &&
			!strings.Contains(strings.ToLower(record.Company), needle) {
			return false
		}
	}
	if f.Status != "" && f.Status != common_models.FilterAll && string(record.Status) != f.Status {
		return false
	}
	if f.Source != "" && f.Source != common_models.FilterAll && record.Source != f.Source {
		return false
	}
	return true
}
