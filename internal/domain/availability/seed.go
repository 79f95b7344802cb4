package availability

// DefaultRanges returns the salon's initial February 2025 schedule.
func DefaultRanges() []Range {
	return []Range{
		NewRange("avail-1", TypeWeekly, "2025-02-01", "2025-02-07", DefaultHours),
		NewRange("avail-2", TypeWeekly, "2025-02-08", "2025-02-14", DefaultHours),
		NewRange("avail-3", TypeMonthly, "2025-02-01", "2025-02-28", DefaultHours),
	}
}
