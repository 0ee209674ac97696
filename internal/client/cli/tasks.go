package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskvault/internal/common"
)

// List prompts the user for optional filters and prints the matching tasks.
func (a *App) List(ctx context.Context) error {
	status, err := getSimpleText(a.reader, "Filter by status (OPEN/IN_PROGRESS/DONE, empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	search, err := getSimpleText(a.reader, "Search text (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	tasks, err := a.api.ListTasks(ctx, status, search)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(tasks) == 0 {
		printlnFn("No tasks found")
		return nil
	}

	for _, t := range tasks {
		printlnFn(fmt.Sprintf("%s  [%s]  %s", t.ID, t.Status, t.Title))
		if t.Description != "" {
			printlnFn("    " + t.Description)
		}
	}
	return nil
}

// Add prompts for a title and description and creates a new task.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	task, err := a.api.CreateTask(ctx, title, description)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Created task", task.ID)
	return nil
}

// Status prompts for a task id and a new status and applies the change.
func (a *App) Status(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter task id", os.Stdout)
	if err != nil {
		return err
	}

	status, err := getSimpleText(a.reader, "Enter new status (OPEN/IN_PROGRESS/DONE)", os.Stdout)
	if err != nil {
		return err
	}

	task, err := a.api.UpdateTaskStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("Task not found")
		} else {
			printlnFn("Error:", err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("%s is now %s", task.ID, task.Status))
	return nil
}

// Done prompts for a task id and marks the task DONE.
func (a *App) Done(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter task id", os.Stdout)
	if err != nil {
		return err
	}

	task, err := a.api.UpdateTaskStatus(ctx, id, "DONE")
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("Task not found")
		} else {
			printlnFn("Error:", err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("%s is now %s", task.ID, task.Status))
	return nil
}

// Delete prompts for a task id and deletes the task.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter task id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("Task not found")
		} else {
			printlnFn("Error:", err.Error())
		}
		return err
	}

	printlnFn("Deleted")
	return nil
}
