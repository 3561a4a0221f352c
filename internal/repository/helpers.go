package repository

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// sqlLimit maps "no limit" onto SQLite's LIMIT -1.
func sqlLimit(n int) int {
	if n <= 0 {
		return -1
	}
	return n
}
