package grpc

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/dmitrijs2005/listbot/internal/engine"
	"github.com/dmitrijs2005/listbot/internal/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Executor runs commands against the lists.
type Executor interface {
	Execute(ctx context.Context, cmd engine.Command) engine.Reply
	Summaries(ctx context.Context, owner int64) ([]models.Summary, error)
}

// commandReply mirrors the webhook reply so both transports answer alike.
type commandReply struct {
	OK      bool          `json:"ok"`
	Message string        `json:"message,omitempty"`
	Pages   []models.Page `json:"pages,omitempty"`
}

// Execute runs one command. Like the webhook, a rejected command is not an
// RPC error: the reply carries ok=false and the message for the user.
func (s *GRPCServer) Execute(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	raw, err := protojson.Marshal(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "malformed command")
	}

	var cmd engine.Command
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cmd); err != nil {
		return nil, status.Error(codes.InvalidArgument, "malformed command")
	}
	if cmd.Owner <= 0 {
		return nil, status.Error(codes.InvalidArgument, "owner is required")
	}

	reply := s.exec.Execute(ctx, cmd)
	s.logger.Debug(ctx, "command handled",
		"gateway", gatewayFromContext(ctx),
		"owner", cmd.Owner,
		"function", cmd.Function,
		"ok", reply.Err == nil,
	)

	out := &structpb.Struct{}
	if err := convert(commandReply{OK: reply.Err == nil, Message: reply.Message, Pages: reply.Pages}, out); err != nil {
		s.logger.Error(ctx, "encode reply failed", "error", err)
		return nil, status.Error(codes.Internal, common.ErrorInternal.Error())
	}
	return out, nil
}

func (s *GRPCServer) ListSummaries(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.ListValue, error) {
	owner := req.GetValue()
	if owner <= 0 {
		return nil, status.Error(codes.InvalidArgument, "invalid owner id")
	}

	summaries, err := s.exec.Summaries(ctx, owner)
	if err != nil {
		s.logger.Error(ctx, "summaries failed", "owner", owner, "error", err)
		return nil, status.Error(codes.Internal, common.ErrorInternal.Error())
	}
	if summaries == nil {
		summaries = []models.Summary{}
	}

	out := &structpb.ListValue{}
	if err := convert(summaries, out); err != nil {
		s.logger.Error(ctx, "encode summaries failed", "error", err)
		return nil, status.Error(codes.Internal, common.ErrorInternal.Error())
	}
	return out, nil
}

// convert copies v into the well-known message m through its JSON form, so
// the json tags of the engine types define the wire fields.
func convert(v any, m proto.Message) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return protojson.Unmarshal(raw, m)
}
