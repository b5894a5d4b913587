package store

// ItemStats holds per-item usage statistics for the stats command.
type ItemStats struct {
	ID             string
	LongTermCount  int64
	ShortTermCount int64
	Deprioritized  bool
}
