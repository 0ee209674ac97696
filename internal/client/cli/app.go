package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskvault/internal/client/api"
	"github.com/dmitrijs2005/taskvault/internal/client/config"
)

// taskAPI is the server client surface the CLI commands need.
// The real api.Client satisfies it; tests substitute a fake.
type taskAPI interface {
	IsLoggedIn() bool
	Logout()
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	CreateTask(ctx context.Context, title, description string) (*api.Task, error)
	ListTasks(ctx context.Context, status, search string) ([]api.Task, error)
	UpdateTaskStatus(ctx context.Context, id, status string) (*api.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

type App struct {
	config   *config.Config
	api      taskAPI
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.api.IsLoggedIn()
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Run(ctx context.Context) {
	printlnFn("TaskVault CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
