package store

import "time"

type Run struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Outcome    string    `json:"outcome"`
	ConfigPath string    `json:"config_path"`
	Performed  []string  `json:"performed"`
	Cleaned    int       `json:"cleaned"`
	Error      string    `json:"error"`
}
