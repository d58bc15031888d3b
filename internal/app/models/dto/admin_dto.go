package dto

// DashboardResponse is the admin overview
type DashboardResponse struct {
	StudentCount               int                   `json:"studentCount"`
	AnnouncementCount          int                   `json:"announcementCount"`
	ClubCount                  int                   `json:"clubCount"`
	PendingClubRequests        int                   `json:"pendingClubRequests"`
	PendingConfessions         int                   `json:"pendingConfessions"`
	RecentClubRequests         []ClubRequestResponse `json:"recentClubRequests"`
	RecentConfessionCategories []string              `json:"recentConfessionCategories"`
}

// HomeResponse is a student's landing summary
type HomeResponse struct {
	ClubsJoined       int              `json:"clubsJoined"`
	AnnouncementCount int              `json:"announcementCount"`
	CampusMembers     int              `json:"campusMembers"`
	ConfessionCount   int              `json:"confessionCount"`
	RecentConfessions []HomeConfession `json:"recentConfessions"`
}

// HomeConfession previews an approved confession on the home summary
type HomeConfession struct {
	ID           string `json:"id"`
	Category     string `json:"category"`
	Text         string `json:"text"`
	AnonymousID  string `json:"anonymousId"`
	LikeCount    int    `json:"likeCount"`
	CommentCount int    `json:"commentCount"`
}
