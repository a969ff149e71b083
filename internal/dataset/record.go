package dataset

// Record is one parsed measurement: a batch identifier and an (x, y) sample
// position with its measured value. Records are immutable once parsed.
type Record struct {
	Batch string
	X     float64
	Y     float64
	Value float64
}

// BatchGroup maps batch ids to their records. Batch order is first-seen file
// order; records within a batch keep file order.
type BatchGroup struct {
	order   []string
	records map[string][]Record
}

// NewBatchGroup returns an empty group.
func NewBatchGroup() *BatchGroup {
	return &BatchGroup{records: make(map[string][]Record)}
}

// Add appends a record to its batch, registering the batch on first sight.
func (g *BatchGroup) Add(r Record) {
	if _, ok := g.records[r.Batch]; !ok {
		g.order = append(g.order, r.Batch)
	}
	g.records[r.Batch] = append(g.records[r.Batch], r)
}

// Batches returns the batch ids in first-seen order.
func (g *BatchGroup) Batches() []string {
	return g.order
}

// Records returns the records of one batch in file order, or nil if the
// batch is unknown.
func (g *BatchGroup) Records(batch string) []Record {
	return g.records[batch]
}

// Len returns the number of batches.
func (g *BatchGroup) Len() int {
	return len(g.order)
}

// Size returns the total number of records across all batches.
func (g *BatchGroup) Size() int {
	n := 0
	for _, recs := range g.records {
		n += len(recs)
	}
	return n
}
