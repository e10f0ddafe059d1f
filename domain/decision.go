package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	FeedbackUp    = "up"
	FeedbackDown  = "down"
	FeedbackRetry = "retry"

	SourceAI            = "ai"
	SourceDeterministic = "deterministic"
)

// Decision is the persisted outcome of one recommendation for an
// authenticated user. Feedback fields are the only mutable part.
type Decision struct {
	ID                 string         `gorm:"primaryKey;type:uuid" json:"id"`
	UserID             string         `gorm:"column:user_id;index;not null" json:"userId"`
	InputJSON          datatypes.JSON `gorm:"column:input_json" json:"inputJson"`
	SelectedActivityID string         `gorm:"column:selected_activity_id;not null" json:"selectedActivityId"`
	PlanBActivityID    *string        `gorm:"column:plan_b_activity_id" json:"planBActivityId"`
	Reason             string         `gorm:"column:reason;type:text" json:"reason"`
	FirstStep          string         `gorm:"column:first_step;type:text" json:"firstStep"`
	Source             string         `gorm:"column:source;default:deterministic" json:"source"`
	Feedback           *string        `gorm:"column:feedback" json:"feedback"`
	FeedbackReason     *string        `gorm:"column:feedback_reason;type:text" json:"feedbackReason"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`

	SelectedActivity *Activity `gorm:"foreignKey:SelectedActivityID" json:"selectedActivity,omitempty"`
	PlanBActivity    *Activity `gorm:"foreignKey:PlanBActivityID" json:"planBActivity,omitempty"`
}

func (Decision) TableName() string {
	return "decision_history"
}

type FeedbackInput struct {
	DecisionID string
	Feedback   string
	Reason     *string
}

type DecisionPage struct {
	Decisions  []Decision `json:"decisions"`
	Pagination Pagination `json:"pagination"`
}
