package creditmemo

import "time"

// SystemClock reloj del sistema.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
