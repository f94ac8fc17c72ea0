package job

// PlatformStatusCount is the number of jobs in one status on one platform.
type PlatformStatusCount struct {
	Platform string
	Status   Status
	Jobs     int64
}

// PlatformUserCount is the number of distinct submitters on one platform.
type PlatformUserCount struct {
	Platform string
	Users    int64
}
