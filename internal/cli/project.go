package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shaiso/cloudctl/internal/domain"
	"github.com/shaiso/cloudctl/internal/handler"
)

// NewProjectCmd создаёт группу команд для управления проектами.
func NewProjectCmd(sessionFn SessionFunc, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	run := func(cmd *cobra.Command, c handler.ProjectCommand) error {
		return execute(cmd, sessionFn, outputFn, func(ctx context.Context, s *Session) (handler.Result, error) {
			return handler.NewProjects(s.Clients.Projects, s.Auth.AccountID()).Handle(ctx, c)
		})
	}

	var name, description string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := handler.ProjectList{}
			if cmd.Flags().Changed("project-name") {
				c.Name = &name
			}
			return run(cmd, c)
		},
	}
	listCmd.Flags().StringVarP(&name, "project-name", "p", "", "Filter by exact project name")

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, handler.ProjectAdd{Name: name, Description: description})
		},
	}
	addCmd.Flags().StringVarP(&name, "project-name", "p", "", "Project name (required)")
	addCmd.Flags().StringVarP(&description, "project-description", "t", "", "Project description")
	addCmd.MarkFlagRequired("project-name")

	defaultCmd := &cobra.Command{
		Use:   "default",
		Short: "Show the default project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, handler.ProjectDefault{})
		},
	}

	cmd.AddCommand(listCmd, addCmd, defaultCmd)
	return cmd
}

// NewPolicyCmd создаёт группу команд для управления политиками проектов.
func NewPolicyCmd(sessionFn SessionFunc, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project-policy",
		Short: "Manage project policies",
	}

	run := func(cmd *cobra.Command, c handler.PolicyCommand) error {
		return execute(cmd, sessionFn, outputFn, func(ctx context.Context, s *Session) (handler.Result, error) {
			return handler.NewPolicies(s.Clients.Policies).Handle(ctx, c)
		})
	}

	var name string
	var actions []domain.ProjectAction

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, handler.PolicyAdd{Name: name, Actions: actions})
		},
	}
	addCmd.Flags().StringVar(&name, "project-policy-name", "", "Policy name (required)")
	addCmd.Flags().Var(&actionsFlag{value: &actions}, "project-actions", "Project actions, repeatable or comma separated (required)")
	addCmd.MarkFlagRequired("project-policy-name")
	addCmd.MarkFlagRequired("project-actions")

	getCmd := &cobra.Command{
		Use:   "get POLICY_ID",
		Short: "Show a project policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid policy id %q: %w", args[0], err)
			}
			return run(cmd, handler.PolicyGet{PolicyID: domain.ProjectPolicyID{UUID: id}})
		},
	}

	cmd.AddCommand(addCmd, getCmd)
	return cmd
}

// NewShareCmd создаёт команду выдачи доступа к проекту другому аккаунту.
func NewShareCmd(sessionFn SessionFunc, outputFn func() *Output) *cobra.Command {
	var (
		project   projectFlags
		recipient string
		policyID  *uuid.UUID
		actions   []domain.ProjectAction
	)

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Share a project with another account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := project.ref()
			if err != nil {
				return err
			}
			c := handler.Share{
				Project:   ref,
				Recipient: domain.AccountID(recipient),
				Actions:   actions,
			}
			if policyID != nil {
				c.PolicyID = &domain.ProjectPolicyID{UUID: *policyID}
			}
			return execute(cmd, sessionFn, outputFn, func(ctx context.Context, s *Session) (handler.Result, error) {
				return handler.NewSharing(s.Clients.ProjectGrants, s.Resolver).Handle(ctx, c)
			})
		},
	}

	project.register(cmd)
	cmd.Flags().StringVar(&recipient, "recipient-account-id", "", "Account to share the project with (required)")
	cmd.Flags().Var(&uuidFlag{value: &policyID}, "project-policy-id", "Existing project policy")
	cmd.Flags().Var(&actionsFlag{value: &actions}, "project-actions", "Project actions for a new anonymous policy")
	cmd.MarkFlagRequired("recipient-account-id")
	cmd.MarkFlagsOneRequired("project-policy-id", "project-actions")
	cmd.MarkFlagsMutuallyExclusive("project-policy-id", "project-actions")

	return cmd
}
