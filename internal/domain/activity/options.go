package activity

// ListActivityOptions provides filtering options for listing activity.
type ListActivityOptions struct {
	ProjectID    string
	SceneID      *string
	ActivityType *ActivityType
	Limit        int
	Offset       int
}
