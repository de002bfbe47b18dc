package core

// winnerRing is a fixed-capacity ring buffer of winner records. Evicting the
// oldest entry on overflow is O(1), index arithmetic only.
type winnerRing struct {
	records []WinnerRecord
	next    int
	size    int
}

func newWinnerRing(capacity int) *winnerRing {
	return &winnerRing{
		records: make([]WinnerRecord, capacity),
	}
}

func (r *winnerRing) push(rec WinnerRecord) {
	r.records[r.next] = rec
	r.next = (r.next + 1) % len(r.records)
	if r.size < len(r.records) {
		r.size++
	}
}

// recent returns up to n records, most recent first.
func (r *winnerRing) recent(n int) []WinnerRecord {
	if n > r.size {
		n = r.size
	}
	out := make([]WinnerRecord, 0, n)
	for i := 1; i <= n; i++ {
		idx := (r.next - i + len(r.records)) % len(r.records)
		rec := r.records[idx]
		rec.Amount = rec.Amount.Clone()
		out = append(out, rec)
	}
	return out
}
