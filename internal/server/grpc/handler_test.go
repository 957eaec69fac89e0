package grpc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/dmitrijs2005/listbot/internal/engine"
	"github.com/dmitrijs2005/listbot/internal/models"
	"github.com/dmitrijs2005/listbot/internal/server/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const testSecret = "test-secret"

// ---- fakes ----

type fakeExecutor struct {
	mu  sync.Mutex
	got []engine.Command

	reply        engine.Reply
	summaries    []models.Summary
	summariesErr error
}

func (f *fakeExecutor) Execute(ctx context.Context, cmd engine.Command) engine.Reply {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, cmd)
	return f.reply
}

func (f *fakeExecutor) Summaries(ctx context.Context, owner int64) ([]models.Summary, error) {
	return f.summaries, f.summariesErr
}

func newHandlerServer(exec Executor) *GRPCServer {
	return NewGRPCServer(":0", nopLogger{}, exec, testSecret)
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	return s
}

// ---- Execute ----

func TestExecute_OK(t *testing.T) {
	exec := &fakeExecutor{reply: engine.Reply{
		Message: `Added "FLCL" at rank 1.`,
		Pages:   []models.Page{{Title: "anime", Body: "1. FLCL", Footer: "7/2048", Color: 3447003}},
	}}
	s := newHandlerServer(exec)

	resp, err := s.Execute(context.Background(), mustStruct(t, map[string]any{
		"function":     "add",
		"parameter":    "FLCL",
		"owner":        42,
		"display_name": "Ryuko",
		"list_id":      "anime",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := engine.Command{Function: "add", Parameter: "FLCL", Owner: 42, DisplayName: "Ryuko", ListID: "anime"}
	if len(exec.got) != 1 || exec.got[0] != want {
		t.Fatalf("unexpected command: %+v", exec.got)
	}

	fields := resp.GetFields()
	if !fields["ok"].GetBoolValue() {
		t.Fatalf("expected ok=true, got %v", resp)
	}
	if fields["message"].GetStringValue() != exec.reply.Message {
		t.Fatalf("unexpected message: %q", fields["message"].GetStringValue())
	}
	pages := fields["pages"].GetListValue().GetValues()
	if len(pages) != 1 {
		t.Fatalf("expected one page, got %d", len(pages))
	}
	page := pages[0].GetStructValue().GetFields()
	if page["body"].GetStringValue() != "1. FLCL" || page["color"].GetNumberValue() != 3447003 {
		t.Fatalf("unexpected page: %v", page)
	}
}

func TestExecute_UserErrorIsNotRPCError(t *testing.T) {
	exec := &fakeExecutor{reply: engine.Reply{Message: "No list in use.", Err: common.ErrNoActiveList}}
	s := newHandlerServer(exec)

	resp, err := s.Execute(context.Background(), mustStruct(t, map[string]any{"function": "add", "owner": 1}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetFields()["ok"].GetBoolValue() {
		t.Fatal("expected ok=false")
	}
	if resp.GetFields()["message"].GetStringValue() != "No list in use." {
		t.Fatalf("unexpected message: %v", resp)
	}
}

func TestExecute_InvalidArgument(t *testing.T) {
	s := newHandlerServer(&fakeExecutor{})

	for name, req := range map[string]map[string]any{
		"unknown field":    {"function": "add", "owner": 1, "color": "red"},
		"no owner":         {"function": "add"},
		"fractional owner": {"function": "add", "owner": 1.5},
		"owner as text":    {"function": "add", "owner": "one"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Execute(context.Background(), mustStruct(t, req))
			if status.Code(err) != codes.InvalidArgument {
				t.Fatalf("expected InvalidArgument, got %v", err)
			}
		})
	}
}

// ---- ListSummaries ----

func TestListSummaries_OK(t *testing.T) {
	exec := &fakeExecutor{summaries: []models.Summary{
		{ListID: "anime", Count: 2, Active: true},
		{ListID: "manga", Title: "Manga", Count: 0},
	}}
	s := newHandlerServer(exec)

	resp, err := s.ListSummaries(context.Background(), wrapperspb.Int64(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values := resp.GetValues()
	if len(values) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(values))
	}
	first := values[0].GetStructValue().GetFields()
	if first["list_id"].GetStringValue() != "anime" || first["count"].GetNumberValue() != 2 || !first["active"].GetBoolValue() {
		t.Fatalf("unexpected first summary: %v", first)
	}
	if values[1].GetStructValue().GetFields()["title"].GetStringValue() != "Manga" {
		t.Fatalf("unexpected second summary: %v", values[1])
	}
}

func TestListSummaries_EmptyAndErrors(t *testing.T) {
	s := newHandlerServer(&fakeExecutor{})

	resp, err := s.ListSummaries(context.Background(), wrapperspb.Int64(7))
	if err != nil || len(resp.GetValues()) != 0 {
		t.Fatalf("expected empty list, got %v, %v", resp, err)
	}

	if _, err := s.ListSummaries(context.Background(), wrapperspb.Int64(0)); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}

	s = newHandlerServer(&fakeExecutor{summariesErr: errors.New("db down")})
	_, err = s.ListSummaries(context.Background(), wrapperspb.Int64(7))
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
	if status.Convert(err).Message() != common.ErrorInternal.Error() {
		t.Fatalf("internal details leaked: %v", err)
	}
}

// ---- over the wire ----

func TestLists_OverGRPC(t *testing.T) {
	exec := &fakeExecutor{reply: engine.Reply{Message: "Cleared."}}
	_, conn, cancel, done := startServer(t, exec)
	defer func() {
		cancel()
		<-done
	}()
	client := NewListsClient(conn)

	tok, err := auth.GenerateToken("discord", []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	ctx, cancelCall := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelCall()

	req := mustStruct(t, map[string]any{"function": "clear", "owner": 5})

	if _, err := client.Execute(ctx, req); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated without token, got %v", err)
	}

	authed := metadata.AppendToOutgoingContext(ctx, AccessTokenMetadataKey, tok)
	resp, err := client.Execute(authed, req)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.GetFields()["message"].GetStringValue() != "Cleared." {
		t.Fatalf("unexpected reply: %v", resp)
	}

	if _, err := client.ListSummaries(authed, wrapperspb.Int64(5)); err != nil {
		t.Fatalf("ListSummaries: %v", err)
	}

	exec.mu.Lock()
	defer exec.mu.Unlock()
	if len(exec.got) != 1 || exec.got[0].Owner != 5 {
		t.Fatalf("unexpected commands: %+v", exec.got)
	}
}
