package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/taskvault/internal/client/api"
	"github.com/dmitrijs2005/taskvault/internal/common"
)

func stubInputs(t *testing.T, texts []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			t.Fatalf("unexpected text prompt #%d", i)
		}
		s := texts[i]
		i++
		return s, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

func muteOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

type fakeAPI struct {
	loggedIn bool

	regUser, regPass     string
	regErr               error
	loginUser, loginPass string
	loginErr             error

	created    *api.Task
	createErr  error
	listStatus string
	listSearch string
	listed     []api.Task
	listErr    error
	updated    *api.Task
	updateErr  error
	deletedID  string
	deleteErr  error
}

func (f *fakeAPI) IsLoggedIn() bool { return f.loggedIn }
func (f *fakeAPI) Logout()          { f.loggedIn = false }
func (f *fakeAPI) Register(_ context.Context, username, password string) error {
	f.regUser, f.regPass = username, password
	if f.regErr == nil {
		f.loggedIn = true
	}
	return f.regErr
}
func (f *fakeAPI) Login(_ context.Context, username, password string) error {
	f.loginUser, f.loginPass = username, password
	if f.loginErr == nil {
		f.loggedIn = true
	}
	return f.loginErr
}
func (f *fakeAPI) CreateTask(_ context.Context, title, description string) (*api.Task, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &api.Task{ID: "t1", Title: title, Description: description, Status: "OPEN"}
	return f.created, nil
}
func (f *fakeAPI) ListTasks(_ context.Context, status, search string) ([]api.Task, error) {
	f.listStatus, f.listSearch = status, search
	return f.listed, f.listErr
}
func (f *fakeAPI) UpdateTaskStatus(_ context.Context, id, status string) (*api.Task, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = &api.Task{ID: id, Status: status}
	return f.updated, nil
}
func (f *fakeAPI) DeleteTask(_ context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

func TestRegister_Success(t *testing.T) {
	muteOutput(t)
	restore := stubInputs(t, []string{"alice"}, []byte("secret"))
	defer restore()

	f := &fakeAPI{}
	a := &App{api: f}

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regUser != "alice" || f.regPass != "secret" {
		t.Fatalf("credentials mismatch: %q %q", f.regUser, f.regPass)
	}
	if a.userName != "alice" {
		t.Fatalf("userName not set: %q", a.userName)
	}
	if !a.isLoggedIn() {
		t.Fatal("expected logged in after register")
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	lines := muteOutput(t)
	restore := stubInputs(t, []string{"alice"}, []byte("secret"))
	defer restore()

	f := &fakeAPI{regErr: common.ErrorUsernameTaken}
	a := &App{api: f}

	if err := a.Register(context.Background()); !errors.Is(err, common.ErrorUsernameTaken) {
		t.Fatalf("want ErrorUsernameTaken, got %v", err)
	}
	if a.userName != "" {
		t.Fatalf("userName should stay empty, got %q", a.userName)
	}
	found := false
	for _, l := range *lines {
		if l == "Username is already taken" {
			found = true
		}
	}
	if !found {
		t.Fatalf("conflict message missing: %v", *lines)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	muteOutput(t)
	restore := stubInputs(t, []string{"alice"}, []byte("wrong"))
	defer restore()

	f := &fakeAPI{loginErr: common.ErrorInvalidCredentials}
	a := &App{api: f}

	if err := a.Login(context.Background()); !errors.Is(err, common.ErrorInvalidCredentials) {
		t.Fatalf("want ErrorInvalidCredentials, got %v", err)
	}
	if a.userName != "" || a.isLoggedIn() {
		t.Fatal("should not be logged in")
	}
}

func TestLogout(t *testing.T) {
	muteOutput(t)
	f := &fakeAPI{loggedIn: true}
	a := &App{api: f, userName: "alice"}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if a.userName != "" || f.loggedIn {
		t.Fatal("session not cleared")
	}
}

func TestAdd_PassesTitleAndDescription(t *testing.T) {
	muteOutput(t)
	restore := stubInputs(t, []string{"buy milk", "two liters"}, nil)
	defer restore()

	f := &fakeAPI{}
	a := &App{api: f}

	if err := a.Add(context.Background()); err != nil {
		t.Fatalf("Add err: %v", err)
	}
	if f.created == nil || f.created.Title != "buy milk" || f.created.Description != "two liters" {
		t.Fatalf("created mismatch: %+v", f.created)
	}
}

func TestList_PassesFilters(t *testing.T) {
	muteOutput(t)
	restore := stubInputs(t, []string{"OPEN", "milk"}, nil)
	defer restore()

	f := &fakeAPI{listed: []api.Task{{ID: "t1", Title: "buy milk", Status: "OPEN"}}}
	a := &App{api: f}

	if err := a.List(context.Background()); err != nil {
		t.Fatalf("List err: %v", err)
	}
	if f.listStatus != "OPEN" || f.listSearch != "milk" {
		t.Fatalf("filters mismatch: %q %q", f.listStatus, f.listSearch)
	}
}

func TestStatus_NotFound(t *testing.T) {
	lines := muteOutput(t)
	restore := stubInputs(t, []string{"missing-id", "DONE"}, nil)
	defer restore()

	f := &fakeAPI{updateErr: common.ErrorNotFound}
	a := &App{api: f}

	if err := a.Status(context.Background()); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
	found := false
	for _, l := range *lines {
		if l == "Task not found" {
			found = true
		}
	}
	if !found {
		t.Fatalf("not-found message missing: %v", *lines)
	}
}

func TestDone_MarksTaskDone(t *testing.T) {
	muteOutput(t)
	restore := stubInputs(t, []string{"t1"}, nil)
	defer restore()

	f := &fakeAPI{}
	a := &App{api: f}

	if err := a.Done(context.Background()); err != nil {
		t.Fatalf("Done err: %v", err)
	}
	if f.updated == nil || f.updated.ID != "t1" || f.updated.Status != "DONE" {
		t.Fatalf("update mismatch: %+v", f.updated)
	}
}

func TestDelete_Success(t *testing.T) {
	muteOutput(t)
	restore := stubInputs(t, []string{"t1"}, nil)
	defer restore()

	f := &fakeAPI{}
	a := &App{api: f}

	if err := a.Delete(context.Background()); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if f.deletedID != "t1" {
		t.Fatalf("deleted id mismatch: %q", f.deletedID)
	}
}
