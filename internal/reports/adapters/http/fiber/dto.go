package fiber

type DailyRowResponse struct {
	Date             string           `json:"date" example:"2025-08-10"`
	NewByRole        map[string]int64 `json:"new_by_role"`
	NewTotal         int64            `json:"new_total"`
	CumulativeByRole map[string]int64 `json:"cumulative_by_role"`
	CumulativeTotal  int64            `json:"cumulative_total"`
}

type TotalsResponse struct {
	ByRole map[string]int64 `json:"by_role"`
	Total  int64            `json:"total"`
}

type SkippedEventResponse struct {
	EventID string `json:"event_id"`
	Reason  string `json:"reason"`
}

type RegistrationReportResponse struct {
	Timezone     string                 `json:"timezone" example:"Africa/Cairo"`
	Rows         []DailyRowResponse     `json:"rows"`
	Totals       TotalsResponse         `json:"totals"`
	NewToday     int64                  `json:"new_today"`
	SkippedCount int                    `json:"skipped_count"`
	Skipped      []SkippedEventResponse `json:"skipped,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid date range"`
}
