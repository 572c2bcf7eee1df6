package docusign

// Workflow describes the workflow attached to an envelope or template.
type Workflow struct {
	CurrentWorkflowStepID string         `json:"currentWorkflowStepId,omitempty" yaml:"current_workflow_step_id,omitempty"`
	ResumeDate            string         `json:"resumeDate,omitempty"            yaml:"resume_date,omitempty"`
	WorkflowStatus        string         `json:"workflowStatus,omitempty"        yaml:"workflow_status,omitempty"`
	WorkflowSteps         []WorkflowStep `json:"workflowSteps,omitempty"         yaml:"workflow_steps,omitempty"`
}

// WorkflowStep is one step of a Workflow.
type WorkflowStep struct {
	Action           string            `json:"action,omitempty"           yaml:"action,omitempty"`
	CompletedDate    string            `json:"completedDate,omitempty"    yaml:"completed_date,omitempty"`
	DelayedRouting   *DelayedRouting   `json:"delayedRouting,omitempty"   yaml:"delayed_routing,omitempty"`
	ItemID           string            `json:"itemId,omitempty"           yaml:"item_id,omitempty"`
	RecipientRouting *RecipientRouting `json:"recipientRouting,omitempty" yaml:"recipient_routing,omitempty"`
	Status           string            `json:"status,omitempty"           yaml:"status,omitempty"`
	TriggerOnItem    string            `json:"triggerOnItem,omitempty"    yaml:"trigger_on_item,omitempty"`
	TriggeredDate    string            `json:"triggeredDate,omitempty"    yaml:"triggered_date,omitempty"`
	WorkflowStepID   string            `json:"workflowStepId,omitempty"   yaml:"workflow_step_id,omitempty"`
}

// DelayedRouting holds the delay rules of a routing step.
type DelayedRouting struct {
	ResumeDate string              `json:"resumeDate,omitempty" yaml:"resume_date,omitempty"`
	Rules      []EnvelopeDelayRule `json:"rules,omitempty"      yaml:"rules,omitempty"`
	Status     string              `json:"status,omitempty"     yaml:"status,omitempty"`
}

// EnvelopeDelayRule delays sending either by a duration or until a date.
type EnvelopeDelayRule struct {
	// Delay is a duration in the form d.hh:mm:ss.
	Delay      string `json:"delay,omitempty"      yaml:"delay,omitempty"`
	ResumeDate string `json:"resumeDate,omitempty" yaml:"resume_date,omitempty"`
}

// RecipientRouting holds conditional recipient rules.
type RecipientRouting struct {
	Rules *RecipientRules `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// RecipientRules groups conditional recipient rules.
type RecipientRules struct {
	ConditionalRecipients []ConditionalRecipientRule `json:"conditionalRecipients,omitempty" yaml:"conditional_recipients,omitempty"`
}

// ConditionalRecipientRule routes to a recipient group when its conditions hold.
type ConditionalRecipientRule struct {
	Conditions     []ConditionalRecipientRuleCondition `json:"conditions,omitempty"     yaml:"conditions,omitempty"`
	Order          string                              `json:"order,omitempty"          yaml:"order,omitempty"`
	RecipientGroup *RecipientGroup                     `json:"recipientGroup,omitempty" yaml:"recipient_group,omitempty"`
	RecipientID    string                              `json:"recipientId,omitempty"    yaml:"recipient_id,omitempty"`
}

// ConditionalRecipientRuleCondition is a set of filters evaluated together.
type ConditionalRecipientRuleCondition struct {
	Filters []ConditionalRecipientRuleFilter `json:"filters,omitempty" yaml:"filters,omitempty"`
	Order   string                           `json:"order,omitempty"   yaml:"order,omitempty"`
}

// ConditionalRecipientRuleFilter compares a tab value.
type ConditionalRecipientRuleFilter struct {
	Operator    string `json:"operator,omitempty"    yaml:"operator,omitempty"`
	RecipientID string `json:"recipientId,omitempty" yaml:"recipient_id,omitempty"`
	Scope       string `json:"scope,omitempty"       yaml:"scope,omitempty"`
	TabID       string `json:"tabId,omitempty"       yaml:"tab_id,omitempty"`
	TabLabel    string `json:"tabLabel,omitempty"    yaml:"tab_label,omitempty"`
	TabType     string `json:"tabType,omitempty"     yaml:"tab_type,omitempty"`
	Value       string `json:"value,omitempty"       yaml:"value,omitempty"`
}

// RecipientGroup is a named group of recipient options.
type RecipientGroup struct {
	GroupMessage string            `json:"groupMessage,omitempty" yaml:"group_message,omitempty"`
	GroupName    string            `json:"groupName,omitempty"    yaml:"group_name,omitempty"`
	Recipients   []RecipientOption `json:"recipients,omitempty"   yaml:"recipients,omitempty"`
}

// RecipientOption is one candidate recipient of a RecipientGroup.
type RecipientOption struct {
	Email          string `json:"email,omitempty"          yaml:"email,omitempty"`
	Name           string `json:"name,omitempty"           yaml:"name,omitempty"`
	RoleName       string `json:"roleName,omitempty"       yaml:"role_name,omitempty"`
	SigningGroupID string `json:"signingGroupId,omitempty" yaml:"signing_group_id,omitempty"`
}
