// Package timezone provides timezone utilities for the application.
//
// Booking dates entered at the front desk are calendar dates. They are parsed
// as midnight in the application location, so a stay from 2024-03-01 to
// 2024-03-04 covers three nights and a guest checking out on 2024-03-04 frees
// the room for an arrival on the same day.
//
//	arrival, err := timezone.ParseDate("2024-03-01")
//	label := timezone.FormatDate(arrival)
//
// The location is read from APP_TIMEZONE when the package is imported and can
// be re-applied with Init. Use IANA names such as "UTC" or "Europe/London".
package timezone
