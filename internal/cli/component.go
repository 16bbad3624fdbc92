package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shaiso/cloudctl/internal/domain"
	"github.com/shaiso/cloudctl/internal/handler"
)

// NewComponentCmd создаёт группу команд для управления компонентами.
func NewComponentCmd(sessionFn SessionFunc, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "component",
		Short: "Manage components",
	}

	run := func(cmd *cobra.Command, c handler.ComponentCommand) error {
		return execute(cmd, sessionFn, outputFn, func(ctx context.Context, s *Session) (handler.Result, error) {
			return handler.NewComponents(s.Clients.Components, s.Resolver).Handle(ctx, c)
		})
	}

	cmd.AddCommand(
		newComponentAddCmd(run),
		newComponentUpdateCmd(run),
		newComponentListCmd(run),
		newComponentGetCmd(run),
	)
	return cmd
}

type componentRunner func(cmd *cobra.Command, c handler.ComponentCommand) error

func newComponentAddCmd(run componentRunner) *cobra.Command {
	var project projectFlags
	var name string

	cmd := &cobra.Command{
		Use:   "add FILE",
		Short: "Upload a new component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := project.ref()
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open component file: %w", err)
			}
			defer f.Close()

			return run(cmd, handler.ComponentAdd{Project: ref, Name: domain.ComponentName(name), Content: f})
		},
	}

	project.register(cmd)
	cmd.Flags().StringVarP(&name, "component-name", "c", "", "Component name (required)")
	cmd.MarkFlagRequired("component-name")

	return cmd
}

func newComponentUpdateCmd(run componentRunner) *cobra.Command {
	var component componentFlags

	cmd := &cobra.Command{
		Use:   "update FILE",
		Short: "Upload a new version of a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := component.ref()
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open component file: %w", err)
			}
			defer f.Close()

			return run(cmd, handler.ComponentUpdate{Component: ref, Content: f})
		},
	}

	component.register(cmd)
	return cmd
}

func newComponentListCmd(run componentRunner) *cobra.Command {
	var project projectFlags
	var name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List components of a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := project.ref()
			if err != nil {
				return err
			}
			c := handler.ComponentList{Project: ref}
			if cmd.Flags().Changed("component-name") {
				n := domain.ComponentName(name)
				c.Name = &n
			}
			return run(cmd, c)
		},
	}

	project.register(cmd)
	cmd.Flags().StringVarP(&name, "component-name", "c", "", "Filter by component name")
	return cmd
}

func newComponentGetCmd(run componentRunner) *cobra.Command {
	var component componentFlags
	var version uint64

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a component",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := component.ref()
			if err != nil {
				return err
			}
			c := handler.ComponentGet{Component: ref}
			if cmd.Flags().Changed("version") {
				c.Version = &version
			}
			return run(cmd, c)
		},
	}

	component.register(cmd)
	cmd.Flags().Uint64Var(&version, "version", 0, "Component version (latest if not specified)")
	return cmd
}

// NewWorkerCmd создаёт группу команд для управления воркерами.
func NewWorkerCmd(sessionFn SessionFunc, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Manage workers",
	}

	run := func(cmd *cobra.Command, c handler.WorkerCommand) error {
		return execute(cmd, sessionFn, outputFn, func(ctx context.Context, s *Session) (handler.Result, error) {
			return handler.NewWorkers(s.Clients.Workers, s.Resolver).Handle(ctx, c)
		})
	}

	// workerCmd создаёт подкоманду с флагами компонента и имени воркера.
	workerCmd := func(use, short string, build func(ref domain.ComponentIDOrName, name string) (handler.WorkerCommand, error)) *cobra.Command {
		var component componentFlags
		var name string

		c := &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ref, err := component.ref()
				if err != nil {
					return err
				}
				wc, err := build(ref, name)
				if err != nil {
					return err
				}
				return run(cmd, wc)
			},
		}
		component.register(c)
		c.Flags().StringVarP(&name, "worker-name", "w", "", "Worker name (required)")
		c.MarkFlagRequired("worker-name")
		return c
	}

	var workerArgs, workerEnv []string
	addCmd := workerCmd("add", "Start a new worker", func(ref domain.ComponentIDOrName, name string) (handler.WorkerCommand, error) {
		env, err := parseEnv(workerEnv)
		if err != nil {
			return nil, err
		}
		return handler.WorkerAdd{Component: ref, Name: name, Args: workerArgs, Env: env}, nil
	})
	addCmd.Flags().StringArrayVarP(&workerArgs, "arg", "a", nil, "Worker argument (repeatable)")
	addCmd.Flags().StringArrayVarP(&workerEnv, "env", "e", nil, "Environment variable as KEY=VALUE (repeatable)")

	getCmd := workerCmd("get", "Show worker metadata", func(ref domain.ComponentIDOrName, name string) (handler.WorkerCommand, error) {
		return handler.WorkerGet{Component: ref, Name: name}, nil
	})

	deleteCmd := workerCmd("delete", "Delete a worker", func(ref domain.ComponentIDOrName, name string) (handler.WorkerCommand, error) {
		return handler.WorkerDelete{Component: ref, Name: name}, nil
	})

	var recoverImmediately bool
	interruptCmd := workerCmd("interrupt", "Interrupt a worker", func(ref domain.ComponentIDOrName, name string) (handler.WorkerCommand, error) {
		return handler.WorkerInterrupt{Component: ref, Name: name, RecoverImmediately: recoverImmediately}, nil
	})
	interruptCmd.Flags().BoolVar(&recoverImmediately, "recover-immediately", false, "Restart the worker right after the interrupt")

	cmd.AddCommand(addCmd, getCmd, deleteCmd, interruptCmd)
	return cmd
}

func parseEnv(pairs []string) (map[string]string, error) {
	env := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid env format %q, expected KEY=VALUE", kv)
		}
		env[parts[0]] = parts[1]
	}
	return env, nil
}
