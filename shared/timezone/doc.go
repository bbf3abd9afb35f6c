// Package timezone keeps every timestamp the application writes or renders in one configured zone.
//
//	now := timezone.Now()
//	formatted := timezone.Format(room.BookedAt.Time, "2006-01-02 15:04")
//	day, err := timezone.Parse("2006-01-02", "2024-01-01")
//
// The zone comes from APP_TIMEZONE (IANA names such as "UTC" or "Asia/Jakarta") and is loaded
// when the package is imported; SetLocation overrides it.
package timezone
