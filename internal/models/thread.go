package models

type Thread struct {
	BaseModel
	Content string `gorm:"not null" json:"content"`
	// Image is the relative URL of the attachment ("/uploads/<name>"),
	// nil when the thread has no image. While non-nil it must point to an
	// existing file in the attachment store.
	Image *string `json:"image"`
	// AuthorID is immutable after creation. No FK constraint: deleting a
	// user does not cascade to their threads.
	AuthorID     string `gorm:"type:uuid;not null;index" json:"author"`
	LikeCount    int    `gorm:"not null;default:0" json:"likeCount"`
	CommentCount int    `gorm:"not null;default:0" json:"commentCount"`
}
