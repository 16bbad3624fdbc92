package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/shaiso/cloudctl/internal/handler"
)

// NewDeploymentCmd создаёт группу команд для публикаций API gateway.
func NewDeploymentCmd(sessionFn SessionFunc, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api-deployment",
		Short: "Manage API gateway deployments",
	}

	run := func(cmd *cobra.Command, c handler.DeploymentCommand) error {
		return execute(cmd, sessionFn, outputFn, func(ctx context.Context, s *Session) (handler.Result, error) {
			return handler.NewDeployments(s.Clients.Deployments, s.Resolver).Handle(ctx, c)
		})
	}

	cmd.AddCommand(
		newDeploymentGetCmd(run),
		newDeploymentAddCmd(run),
		newDeploymentDeleteCmd(run),
	)
	return cmd
}

type deploymentRunner func(cmd *cobra.Command, c handler.DeploymentCommand) error

func newDeploymentGetCmd(run deploymentRunner) *cobra.Command {
	var project projectFlags
	var definitionID string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List deployments of an API definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := project.ref()
			if err != nil {
				return err
			}
			return run(cmd, handler.DeploymentGet{Project: ref, DefinitionID: definitionID})
		},
	}

	project.register(cmd)
	cmd.Flags().StringVarP(&definitionID, "definition-id", "d", "", "API definition ID (required)")
	cmd.MarkFlagRequired("definition-id")
	return cmd
}

func newDeploymentAddCmd(run deploymentRunner) *cobra.Command {
	var project projectFlags
	var definitionID, host, subdomain string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Deploy an API definition to a site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := project.ref()
			if err != nil {
				return err
			}
			return run(cmd, handler.DeploymentAdd{
				Project:      ref,
				DefinitionID: definitionID,
				Host:         host,
				Subdomain:    subdomain,
			})
		},
	}

	project.register(cmd)
	cmd.Flags().StringVarP(&definitionID, "definition-id", "d", "", "API definition ID (required)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Site host (required)")
	cmd.Flags().StringVarP(&subdomain, "subdomain", "s", "", "Site subdomain (required)")
	cmd.MarkFlagRequired("definition-id")
	cmd.MarkFlagRequired("host")
	cmd.MarkFlagRequired("subdomain")
	return cmd
}

func newDeploymentDeleteCmd(run deploymentRunner) *cobra.Command {
	var project projectFlags
	var definitionID, site string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove a deployment from a site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := project.ref()
			if err != nil {
				return err
			}
			return run(cmd, handler.DeploymentDelete{Project: ref, Site: site, DefinitionID: definitionID})
		},
	}

	project.register(cmd)
	cmd.Flags().StringVarP(&definitionID, "definition-id", "d", "", "API definition ID (required)")
	cmd.Flags().StringVarP(&site, "site", "s", "", "Site, e.g. tenant1.api.example.com (required)")
	cmd.MarkFlagRequired("definition-id")
	cmd.MarkFlagRequired("site")
	return cmd
}
