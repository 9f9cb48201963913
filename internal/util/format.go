package util

import "time"

// TruncatePath truncates a breadcrumb path from the left, keeping the
// rightmost part visible.
func TruncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// ShortDate formats a timestamp for list rows. The zero value renders as a
// dash, matching rows whose metadata carries no usable date.
func ShortDate(t time.Time) string {
	if t.IsZero() || t.Unix() == 0 {
		return "—"
	}
	return t.Local().Format("2006-01-02")
}
