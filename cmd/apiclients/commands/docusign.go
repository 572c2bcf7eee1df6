package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/detailyang/third-party-api-clients/internal/constants"
	"github.com/detailyang/third-party-api-clients/pkg/docusign"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewDocuSignCommand creates the docusign command group.
func NewDocuSignCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docusign",
		Short: "DocuSign eSignature operations",
		Long:  "Call the DocuSign eSignature REST API",
	}

	cmd.AddCommand(newDocuSignWorkflowCommand())

	return cmd
}

func newDocuSignWorkflowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workflow",
		Aliases: []string{"wf"},
		Short:   "Manage envelope and template workflow definitions",
		Long:    "Read, replace and delete the workflow definition of an envelope or template",
	}

	cmd.AddCommand(newWorkflowGetCommand(false))
	cmd.AddCommand(newWorkflowUpdateCommand(false))
	cmd.AddCommand(newWorkflowDeleteCommand(false))
	cmd.AddCommand(newWorkflowGetCommand(true))
	cmd.AddCommand(newWorkflowUpdateCommand(true))
	cmd.AddCommand(newWorkflowDeleteCommand(true))

	return cmd
}

func workflowUse(verb string, template bool) string {
	if template {
		return "template-" + verb + " ACCOUNT_ID TEMPLATE_ID"
	}

	return verb + " ACCOUNT_ID ENVELOPE_ID"
}

func workflowTarget(template bool) string {
	if template {
		return "template"
	}

	return "envelope"
}

func newWorkflowGetCommand(template bool) *cobra.Command {
	return &cobra.Command{
		Use:   workflowUse("get", template),
		Short: "Get the workflow definition of an " + workflowTarget(template),
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newDocuSignClient()
			if err != nil {
				return err
			}

			bindings := client.EnvelopeWorkflowDefinition()
			get := bindings.Get
			if template {
				get = bindings.GetTemplate
			}

			workflow, err := get(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get %s workflow: %w", workflowTarget(template), err)
			}

			return renderWorkflow(cmd.OutOrStdout(), workflow)
		},
	}
}

func newWorkflowUpdateCommand(template bool) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   workflowUse("update", template),
		Short: "Replace the workflow definition of an " + workflowTarget(template),
		Long: `Replace the workflow definition with the JSON document read from --file,
or from stdin when no file is given.`,
		Args: cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow, err := readWorkflow(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			client, err := newDocuSignClient()
			if err != nil {
				return err
			}

			bindings := client.EnvelopeWorkflowDefinition()
			put := bindings.Put
			if template {
				put = bindings.PutTemplate
			}

			updated, err := put(cmd.Context(), args[0], args[1], workflow)
			if err != nil {
				return fmt.Errorf("failed to update %s workflow: %w", workflowTarget(template), err)
			}

			return renderWorkflow(cmd.OutOrStdout(), updated)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "workflow JSON file")

	return cmd
}

func newWorkflowDeleteCommand(template bool) *cobra.Command {
	return &cobra.Command{
		Use:   workflowUse("delete", template),
		Short: "Delete the workflow definition of an " + workflowTarget(template),
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newDocuSignClient()
			if err != nil {
				return err
			}

			bindings := client.EnvelopeWorkflowDefinition()
			remove := bindings.Delete
			if template {
				remove = bindings.DeleteTemplate
			}

			err = remove(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to delete %s workflow: %w", workflowTarget(template), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workflow of %s %s\n", workflowTarget(template), args[1])

			return nil
		},
	}
}

func readWorkflow(stdin io.Reader, file string) (*docusign.Workflow, error) {
	var (
		data []byte
		err  error
	)

	if file != "" {
		data, err = os.ReadFile(filepath.Clean(file))
		if err != nil {
			return nil, fmt.Errorf("failed to read workflow file: %w", err)
		}
	} else {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read workflow from stdin: %w", err)
		}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, constants.ErrNoWorkflowProvided
	}

	workflow := &docusign.Workflow{}

	err = json.Unmarshal(data, workflow)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workflow JSON: %w", err)
	}

	return workflow, nil
}

func renderWorkflow(w io.Writer, workflow *docusign.Workflow) error {
	return renderOutput(w, workflow, func(table *tablewriter.Table, workflow *docusign.Workflow) {
		table.Header("Step", "Action", "Status", "Item", "Date")
		_ = table.Append("workflow", constants.NotAvailable, valueOrNA(workflow.WorkflowStatus),
			valueOrNA(workflow.CurrentWorkflowStepID), valueOrNA(workflow.ResumeDate))

		for _, step := range workflow.WorkflowSteps {
			_ = table.Append(
				valueOrNA(step.WorkflowStepID),
				valueOrNA(step.Action),
				valueOrNA(step.Status),
				valueOrNA(step.ItemID),
				valueOrNA(step.TriggeredDate),
			)
		}
	})
}
