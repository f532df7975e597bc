package domain

const DefaultPageSize = 5

// Pager walks a record slice in fixed windows. It cannot be rewound; start
// over with a new Pager.
type Pager struct {
	records []TripRecord
	size    int
	cursor  int
}

func NewPager(records []TripRecord, size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{records: records, size: size}
}

// Next returns records [cursor, cursor+size) clipped to the end and moves
// the cursor forward by size. An empty page means nothing is left.
func (p *Pager) Next() []TripRecord {
	start := p.cursor
	p.cursor += p.size
	if start >= len(p.records) {
		return []TripRecord{}
	}
	end := start + p.size
	if end > len(p.records) {
		end = len(p.records)
	}
	return p.records[start:end:end]
}

func (p *Pager) Cursor() int { return p.cursor }
func (p *Pager) Size() int   { return p.size }
func (p *Pager) Len() int    { return len(p.records) }
func (p *Pager) Done() bool  { return p.cursor >= len(p.records) }
