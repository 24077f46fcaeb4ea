package models

// User represents an authenticated user of the system.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
}

// ChatRecord represents one stored exchange with the assistant.
// A record is written once after a successful AI call and never mutated.
type ChatRecord struct {
	ID          int64  `db:"id" json:"id"`
	UserID      int64  `db:"user_id" json:"user_id"`
	Category    string `db:"category" json:"category"`
	UserMessage string `db:"user_message" json:"user_message"`
	AIResponse  string `db:"ai_response" json:"ai_response"`
}

// DashboardStats is the aggregate payload for the admin dashboard
// and the analytics page.
type DashboardStats struct {
	TotalUsers  int64            `json:"total_users"`
	TotalChats  int64            `json:"total_chats"`
	RecentChats []ChatRecord     `json:"recent_chats"`
	Categories  map[string]int64 `json:"categories"`
}
