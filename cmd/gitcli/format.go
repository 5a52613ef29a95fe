package main

import "time"

// gitDateFormat formats a time.Time the same way upstream commit/tag
// signature lines render dates in human-facing output.
// Layout: "Mon Jan 2 15:04:05 2006 -0700".
func gitDateFormat(t time.Time) string {
	return t.Format("Mon Jan 2 15:04:05 2006 -0700")
}
