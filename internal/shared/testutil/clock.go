package testutil

import (
	"time"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/dateutil"
)

// Now is the fixed instant every service test runs at: 2026-10-18 10:00 KST
var Now = time.Date(2026, 10, 18, 1, 0, 0, 0, time.UTC)

// Clock pins service clocks to Now
func Clock() dateutil.Clock {
	return dateutil.FixedClock(Now)
}

// Seoul is the studio timezone used in tests
func Seoul() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}
