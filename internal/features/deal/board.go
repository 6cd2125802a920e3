package deal

import "strings"

// BoardColumn is one kanban lane.
type BoardColumn struct {
	Stage      DealStage `json:"stage"`
	Deals      []Deal    `json:"deals"`
	TotalValue float64   `json:"total_value"`
}

// GroupByStage partitions deals into the fixed ordered stage columns.
// A record whose stage is not in StageOrder lands in no column at all;
// the board simply does not show it.
func GroupByStage(deals []Deal) []BoardColumn {
	columns := make([]BoardColumn, len(StageOrder))
	index := make(map[DealStage]int, len(StageOrder))
	for i, stage := range StageOrder {
		columns[i] = BoardColumn{Stage: stage, Deals: make([]Deal, 0)}
		index[stage] = i
	}

	for _, d := range deals {
		i, ok := index[d.Stage]
		if !ok {
			continue
		}
		columns[i].Deals = append(columns[i].Deals, d)
		columns[i].TotalValue += d.Value
	}

	return columns
}

// SearchFilter is the deals page search box: case-insensitive
// substring over title and description.
func SearchFilter(deals []Deal, query string) []Deal {
	if query == "" {
		return deals
	}
	needle := strings.ToLower(query)
	out := make([]Deal, 0, len(deals))
	for _, d := range deals {
		if strings.Contains(strings.ToLower(d.Title), needle) ||
			strings.Contains(strings.ToLower(d.Description), needle) {
			out = append(out, d)
		}
	}
	return out
}
