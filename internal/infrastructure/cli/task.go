package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garvitthakral/GrindChain/pkg/domain/events"
	"github.com/garvitthakral/GrindChain/pkg/domain/task"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Work with the task list",
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch and display the task list",
	RunE: func(cmd *cobra.Command, args []string) error {
		cc, err := buildClientContext(cmd)
		if err != nil {
			return err
		}
		if err := cc.service.Refresh(cmd.Context()); err != nil {
			return err
		}

		mine, _ := cmd.Flags().GetBool("mine")
		tasks := cc.service.Tasks()
		shown := 0
		for _, t := range tasks {
			if mine && !task.IsAssignedToActor(t, cc.cfg.ActorID) {
				continue
			}
			printTask(cmd, t)
			shown++
		}
		if shown == 0 {
			cmd.Println("No tasks.")
		}
		return nil
	},
}

var taskToggleCmd = &cobra.Command{
	Use:   "toggle <task-id> <position>",
	Short: "Toggle one roadmap checkbox",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		position, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("position must be a number: %w", err)
		}

		cc, err := buildClientContext(cmd)
		if err != nil {
			return err
		}
		if err := cc.service.Refresh(cmd.Context()); err != nil {
			return err
		}

		registerUpdateOutput(cmd, cc.dispatcher)

		t, ok := findTask(cc.service.Tasks(), args[0])
		if !ok {
			return fmt.Errorf("task %s not found", args[0])
		}
		if position < 0 || position >= len(t.RoadmapItems) {
			return fmt.Errorf("task %s has no roadmap item %d", args[0], position)
		}
		current := t.RoadmapItems[position].Completed

		if err := cc.service.ToggleRoadmapItem(cmd.Context(), args[0], position, current); err != nil {
			return err
		}

		updated, _ := findTask(cc.service.Tasks(), args[0])
		cmd.Printf("%s: item %d -> %v, progress %d%%\n",
			updated.Title, position, !current, updated.OverallProgress)
		return nil
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cc, err := buildClientContext(cmd)
		if err != nil {
			return err
		}
		registerUpdateOutput(cmd, cc.dispatcher)
		if err := cc.service.DeleteTask(cmd.Context(), args[0]); err != nil {
			return err
		}
		cmd.Printf("Deleted %s\n", args[0])
		return nil
	},
}

var taskWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow server pushes of the task list until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cc, err := buildClientContext(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		stream, err := cc.client.OpenStream(ctx)
		if err != nil {
			return err
		}
		defer stream.Close()

		err = stream.Listen(ctx, func(tasks []task.Task) {
			cc.service.ReplaceSnapshot(tasks)
			cmd.Printf("snapshot: %d task(s)\n", len(cc.service.Tasks()))
		})
		if ctx.Err() != nil {
			return nil
		}
		return err
	},
}

var taskMembersCmd = &cobra.Command{
	Use:   "members <task-id>",
	Short: "Show sub-assignments of a group task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cc, err := buildClientContext(cmd)
		if err != nil {
			return err
		}
		if err := cc.service.Refresh(cmd.Context()); err != nil {
			return err
		}

		t, ok := findTask(cc.service.Tasks(), args[0])
		if !ok {
			return fmt.Errorf("task %s not found", args[0])
		}
		members := cc.service.GroupMembers(cmd.Context(), args[0])
		for _, h := range t.TaskHeaders {
			cmd.Printf("  %-30s %s\n", h.Title, task.ResolveAssigneeName(h, members))
		}
		return nil
	},
}

func findTask(tasks []task.Task, taskID string) (task.Task, bool) {
	for _, t := range tasks {
		if t.ID == taskID {
			return t, true
		}
	}
	return task.Task{}, false
}

func printTask(cmd *cobra.Command, t task.Task) {
	done := 0
	for _, item := range t.RoadmapItems {
		if item.Completed {
			done++
		}
	}
	cmd.Printf("%-12s %-40s %-8s %3d%% (%d/%d)\n",
		t.ID, t.Title, t.Priority.DisplayName(), t.OverallProgress, done, len(t.RoadmapItems))
}

// registerUpdateOutput echoes reconciliation outcomes so the user sees when
// the server confirmed a change.
func registerUpdateOutput(cmd *cobra.Command, dispatcher *events.EventDispatcher) {
	dispatcher.RegisterHandler("cli-output", func(ctx context.Context, e events.DomainEvent) error {
		cmd.Printf("confirmed: %s %s\n", e.EventType(), e.AggregateID())
		return nil
	}, events.TypeTaskUpdated, events.TypeTaskDeleted)
}

func init() {
	taskListCmd.Flags().Bool("mine", false, "only tasks assigned to the configured actor")
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskToggleCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskWatchCmd)
	taskCmd.AddCommand(taskMembersCmd)
	RootCmd.AddCommand(taskCmd)
}
