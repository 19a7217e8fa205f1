package model

// UserProfile is the backend's view of the authenticated user.
type UserProfile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	IsActive bool   `json:"is_active"`
}

// SubscriptionPlan is read-only catalog data; the client never mutates it.
type SubscriptionPlan struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	YearlyPrice    float64  `json:"yearly_price,omitempty"`
	MonthlyQuota   int      `json:"monthly_quota"`
	Features       []string `json:"features,omitempty"`
	MaxVideoLength int      `json:"max_video_length,omitempty"`
}

type SubscriptionStatus struct {
	PlanID           string   `json:"plan_id"`
	Status           string   `json:"status"`
	CurrentPeriodEnd string   `json:"current_period_end"`
	MonthlyQuota     int      `json:"monthly_quota"`
	UsedQuota        int      `json:"used_quota"`
	Features         []string `json:"features,omitempty"`
	MaxVideoLength   int      `json:"max_video_length,omitempty"`
}
