package grpc

import (
	"context"
	"errors"
	"log"
	"net"

	"github.com/apervushin/commons-validator/pkg/domain"
	"github.com/apervushin/commons-validator/pkg/tld"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type Server struct {
	validator *domain.Validator
}

func NewServer(v *domain.Validator) *Server {
	return &Server{validator: v}
}

const maxInputLen = 1024

// requireInput rejects absent and oversized input. Anything else, blank
// strings included, goes to the validator, which fails closed on it.
func requireInput(in *wrapperspb.StringValue, what string) (string, error) {
	s := in.GetValue()
	if s == "" {
		return "", status.Errorf(codes.InvalidArgument, "%s is required", what)
	}
	if len(s) > maxInputLen {
		return "", status.Errorf(codes.InvalidArgument, "%s is too long", what)
	}
	return s, nil
}

func (s *Server) CheckDomain(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	name, err := requireInput(in, "domain")
	if err != nil {
		return nil, err
	}
	return wrapperspb.Bool(s.validator.IsValid(name)), nil
}

func (s *Server) CheckDomainSyntax(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	name, err := requireInput(in, "domain")
	if err != nil {
		return nil, err
	}
	return wrapperspb.Bool(s.validator.IsValidDomainSyntax(name)), nil
}

func (s *Server) CheckTld(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	name, err := requireInput(in, "tld")
	if err != nil {
		return nil, err
	}
	return wrapperspb.Bool(s.validator.IsValidTld(name)), nil
}

func (s *Server) ToASCII(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	name, err := requireInput(in, "domain")
	if err != nil {
		return nil, err
	}
	return wrapperspb.String(domain.UnicodeToASCII(name)), nil
}

// ListTlds returns a raw list when given a list name such as
// "country-code-plus", or the effective set when given a kind name such as
// "generic".
func (s *Server) ListTlds(ctx context.Context, in *wrapperspb.StringValue) (*structpb.ListValue, error) {
	name, err := requireInput(in, "list")
	if err != nil {
		return nil, err
	}

	var entries []string
	if lt, err := tld.ParseListType(name); err == nil {
		entries = s.validator.TldEntries(lt)
	} else if kind, err := tld.ParseKind(name); err == nil {
		entries = s.validator.EffectiveTlds(kind)
	} else {
		return nil, status.Errorf(codes.InvalidArgument, "unknown list %q", name)
	}

	values := make([]*structpb.Value, len(entries))
	for i, e := range entries {
		values[i] = structpb.NewStringValue(e)
	}
	return &structpb.ListValue{Values: values}, nil
}

// RunGRPCServer starts a gRPC server on the given address and
// shuts it down gracefully when the context is canceled.
func RunGRPCServer(ctx context.Context, addr string, v *domain.Validator) error {
	if addr == "" {
		// Reasonable default if nothing is provided.
		addr = ":9090"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	s := grpc.NewServer()
	RegisterDomainCheckerServer(s, NewServer(v))
	reflection.Register(s)

	// Stop the server once the context is done (SIGTERM, timeout, etc.).
	go func() {
		<-ctx.Done()
		s.GracefulStop()
	}()

	log.Printf("gRPC server listening on %s", lis.Addr().String())
	if err := s.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
