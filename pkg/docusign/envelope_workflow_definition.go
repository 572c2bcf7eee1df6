package docusign

import (
	"context"
	"net/http"

	"github.com/detailyang/third-party-api-clients/pkg/rest"
)

const (
	envelopeWorkflowPath = "/v2.1/accounts/{accountId}/envelopes/{envelopeId}/workflow"
	templateWorkflowPath = "/v2.1/accounts/{accountId}/templates/{templateId}/workflow"
)

var (
	getEnvelopeWorkflow = rest.Endpoint{
		Name:   "envelope_workflow_definition.get",
		Method: http.MethodGet,
		Path:   envelopeWorkflowPath,
	}
	putEnvelopeWorkflow = rest.Endpoint{
		Name:   "envelope_workflow_definition.put",
		Method: http.MethodPut,
		Path:   envelopeWorkflowPath,
	}
	deleteEnvelopeWorkflow = rest.Endpoint{
		Name:   "envelope_workflow_definition.delete",
		Method: http.MethodDelete,
		Path:   envelopeWorkflowPath,
	}
	getTemplateWorkflow = rest.Endpoint{
		Name:   "envelope_workflow_definition.get_template",
		Method: http.MethodGet,
		Path:   templateWorkflowPath,
	}
	putTemplateWorkflow = rest.Endpoint{
		Name:   "envelope_workflow_definition.put_template",
		Method: http.MethodPut,
		Path:   templateWorkflowPath,
	}
	deleteTemplateWorkflow = rest.Endpoint{
		Name:   "envelope_workflow_definition.delete_template",
		Method: http.MethodDelete,
		Path:   templateWorkflowPath,
	}
)

// EnvelopeWorkflowDefinition reads and replaces workflow definitions of
// envelopes and templates.
type EnvelopeWorkflowDefinition struct {
	transport rest.Transport
}

// NewEnvelopeWorkflowDefinition creates the binding over transport.
func NewEnvelopeWorkflowDefinition(transport rest.Transport) *EnvelopeWorkflowDefinition {
	return &EnvelopeWorkflowDefinition{transport: transport}
}

// Get returns the workflow definition of an envelope.
func (c *EnvelopeWorkflowDefinition) Get(ctx context.Context, accountID, envelopeID string) (*Workflow, error) {
	return rest.Get[Workflow](ctx, c.transport, getEnvelopeWorkflow, rest.Call{
		Path: []string{accountID, envelopeID},
	})
}

// Put replaces the workflow definition of an envelope.
func (c *EnvelopeWorkflowDefinition) Put(ctx context.Context, accountID, envelopeID string, body *Workflow) (*Workflow, error) {
	return rest.Put[Workflow](ctx, c.transport, putEnvelopeWorkflow, rest.Call{
		Path: []string{accountID, envelopeID},
		Body: body,
	})
}

// Delete removes the workflow definition of an envelope.
func (c *EnvelopeWorkflowDefinition) Delete(ctx context.Context, accountID, envelopeID string) error {
	return rest.Delete(ctx, c.transport, deleteEnvelopeWorkflow, rest.Call{
		Path: []string{accountID, envelopeID},
	})
}

// GetTemplate returns the workflow definition of a template.
func (c *EnvelopeWorkflowDefinition) GetTemplate(ctx context.Context, accountID, templateID string) (*Workflow, error) {
	return rest.Get[Workflow](ctx, c.transport, getTemplateWorkflow, rest.Call{
		Path: []string{accountID, templateID},
	})
}

// PutTemplate replaces the workflow definition of a template.
func (c *EnvelopeWorkflowDefinition) PutTemplate(ctx context.Context, accountID, templateID string, body *Workflow) (*Workflow, error) {
	return rest.Put[Workflow](ctx, c.transport, putTemplateWorkflow, rest.Call{
		Path: []string{accountID, templateID},
		Body: body,
	})
}

// DeleteTemplate removes the workflow definition of a template.
func (c *EnvelopeWorkflowDefinition) DeleteTemplate(ctx context.Context, accountID, templateID string) error {
	return rest.Delete(ctx, c.transport, deleteTemplateWorkflow, rest.Call{
		Path: []string{accountID, templateID},
	})
}
