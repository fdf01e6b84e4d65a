package httptransport

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RuleConditionsDTO struct {
	Areas []string `json:"areas"`
}

type RuleActionsDTO struct {
	UserIDs []string `json:"userIds"`
}

type CreateRuleRequest struct {
	ContractID  string            `json:"contract_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Conditions  RuleConditionsDTO `json:"conditions"`
	Actions     RuleActionsDTO    `json:"actions"`
}

type UpdateRuleRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Conditions  RuleConditionsDTO `json:"conditions"`
	Actions     RuleActionsDTO    `json:"actions"`
	IsActive    bool              `json:"is_active"`
}

type SaveRulesRequest struct {
	ContractID string          `json:"contract_id"`
	Rules      []SaveRuleInput `json:"rules"`
}

type SaveRuleInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Conditions  RuleConditionsDTO `json:"conditions"`
	Actions     RuleActionsDTO    `json:"actions"`
	IsActive    bool              `json:"is_active"`
}

type RuleDTO struct {
	ID          string            `json:"id"`
	ContractID  string            `json:"contract_id,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Conditions  RuleConditionsDTO `json:"conditions"`
	Actions     RuleActionsDTO    `json:"actions"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

type RuleListResponse struct {
	Rules []RuleDTO `json:"rules"`
}

type NotificationDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	IsRead    bool   `json:"is_read"`
	ReadAt    string `json:"read_at,omitempty"`
	CreatedAt string `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationDTO `json:"notifications"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type DeliveryLogDTO struct {
	ID             string `json:"id"`
	RuleID         string `json:"rule_id"`
	EntityType     string `json:"entity_type"`
	EntityID       string `json:"entity_id"`
	EntityRevision int    `json:"entity_revision"`
	RecipientType  string `json:"recipient_type"`
	RecipientID    string `json:"recipient_id"`
	Status         string `json:"status"`
	Message        string `json:"message"`
	SentAt         string `json:"sent_at"`
	CreatedAt      string `json:"created_at"`
}

type DeliveryLogListResponse struct {
	Logs []DeliveryLogDTO `json:"logs"`
}

type SystemEventDTO struct {
	ID                string `json:"id"`
	UserID            string `json:"user_id"`
	UserName          string `json:"user_name"`
	UserEmail         string `json:"user_email"`
	ActionType        string `json:"action_type"`
	EntityType        string `json:"entity_type"`
	EntityID          string `json:"entity_id"`
	EntityDescription string `json:"entity_description"`
	Details           string `json:"details"`
	CreatedAt         string `json:"created_at"`
}

type SystemEventListResponse struct {
	Events []SystemEventDTO `json:"events"`
}
