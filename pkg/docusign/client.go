// Package docusign binds the DocuSign eSignature REST API v2.1.
package docusign

import "github.com/detailyang/third-party-api-clients/pkg/rest"

// Client groups the DocuSign resource bindings over one shared transport.
type Client struct {
	envelopeWorkflowDefinition *EnvelopeWorkflowDefinition
}

// New creates a DocuSign client. The transport is shared by every binding.
func New(transport rest.Transport) *Client {
	return &Client{
		envelopeWorkflowDefinition: NewEnvelopeWorkflowDefinition(transport),
	}
}

// EnvelopeWorkflowDefinition returns the envelope workflow definition binding.
func (c *Client) EnvelopeWorkflowDefinition() *EnvelopeWorkflowDefinition {
	return c.envelopeWorkflowDefinition
}

// Endpoints lists every endpoint this package can call.
func Endpoints() []rest.Endpoint {
	return []rest.Endpoint{
		getEnvelopeWorkflow,
		putEnvelopeWorkflow,
		deleteEnvelopeWorkflow,
		getTemplateWorkflow,
		putTemplateWorkflow,
		deleteTemplateWorkflow,
	}
}
