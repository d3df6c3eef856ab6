package util

import "time"

// RecordTimeFormat is the display format stored in the createdAt field of
// console records, e.g. "19/10/2026 | 09:30:00 AM".
const RecordTimeFormat = "02/01/2006 | 03:04:05 PM"

// RecordTime formats t for a record createdAt field.
func RecordTime(t time.Time) string {
	return t.Format(RecordTimeFormat)
}
