package domain

// Stats are the landing page counters.
type Stats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalGroups   int64 `json:"totalGroups"`
	TotalPosts    int64 `json:"totalPosts"`
	ReturnedItems int64 `json:"returnedItems"`
}
