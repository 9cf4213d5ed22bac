package dto

// RegisterPlantRequest is the classifier result or the user's manual entry.
type RegisterPlantRequest struct {
	Species          string `json:"species" validate:"required,max=200"`
	Nickname         string `json:"nickname" validate:"max=100"`
	AcquiredAt       string `json:"acquired_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	WateringInterval *int   `json:"watering_interval" validate:"omitempty,min=1,max=365"`
	FeedingInterval  *int   `json:"feeding_interval" validate:"omitempty,min=1,max=365"`
	PhotoRef         string `json:"photo_ref"`
	HealthState      string `json:"health_state" validate:"omitempty,oneof=healthy flowering active_growth dormancy stress adaptation"`
}

// UpdatePlantRequest replaces the editable care parameters of a plant.
type UpdatePlantRequest struct {
	Species          string `json:"species" validate:"required,max=200"`
	Nickname         string `json:"nickname" validate:"max=100"`
	WateringInterval *int   `json:"watering_interval" validate:"omitempty,min=1,max=365"`
	FeedingInterval  *int   `json:"feeding_interval" validate:"omitempty,min=1,max=365"`
	PhotoRef         string `json:"photo_ref"`
	HealthState      string `json:"health_state" validate:"omitempty,oneof=healthy flowering active_growth dormancy stress adaptation"`
}

// CareActionRequest records a care action.
type CareActionRequest struct {
	Kind       string `json:"kind" validate:"required,oneof=water feed skip snooze"`
	Target     string `json:"target" validate:"omitempty,oneof=water feed"`
	OccurredAt string `json:"occurred_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Note       string `json:"note" validate:"max=1000"`
	PhotoRef   string `json:"photo_ref"`
}
