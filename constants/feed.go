package constants

// FeedKind names one synchronized list instance. Stable values; they key
// notices and log lines, so keep them stable.
type FeedKind string

const (
	FeedNews        FeedKind = "news"
	FeedGallery     FeedKind = "gallery"
	FeedActiveUsers FeedKind = "active_users"
	FeedDonations   FeedKind = "donations"
	FeedExpenses    FeedKind = "expenses"
)

// Snapshot bounds. The offline snapshot is a small "last known good" page,
// never an incremental cache, so the bounds stay tight.
const (
	DefaultSnapshotLimit = 10
	DefaultPageSize      = 20
)

// GalleryStatus values accepted by the gallery endpoint.
var GalleryStatuses = []string{"approved", "pending", "all"}
