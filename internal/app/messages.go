package app

import "time"

// TickMsg triggers a frame update for the replay.
type TickMsg time.Time
