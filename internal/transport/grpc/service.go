package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const serviceName = "domaincheck.v1.DomainChecker"

// Full method names of the DomainChecker service.
const (
	MethodCheckDomain       = "/" + serviceName + "/CheckDomain"
	MethodCheckDomainSyntax = "/" + serviceName + "/CheckDomainSyntax"
	MethodCheckTld          = "/" + serviceName + "/CheckTld"
	MethodToASCII           = "/" + serviceName + "/ToASCII"
	MethodListTlds          = "/" + serviceName + "/ListTlds"
)

// DomainCheckerServer is the server API of the DomainChecker service. The
// messages are protobuf well-known types, so the service needs no generated
// code.
type DomainCheckerServer interface {
	CheckDomain(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	CheckDomainSyntax(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	CheckTld(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	ToASCII(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	ListTlds(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
}

// unaryHandler adapts one DomainCheckerServer method taking a StringValue to
// a grpc.MethodHandler.
func unaryHandler[Resp any](fullMethod string, call func(DomainCheckerServer, context.Context, *wrapperspb.StringValue) (Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(wrapperspb.StringValue)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(DomainCheckerServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(DomainCheckerServer), ctx, req.(*wrapperspb.StringValue))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*DomainCheckerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CheckDomain", Handler: unaryHandler(MethodCheckDomain, DomainCheckerServer.CheckDomain)},
		{MethodName: "CheckDomainSyntax", Handler: unaryHandler(MethodCheckDomainSyntax, DomainCheckerServer.CheckDomainSyntax)},
		{MethodName: "CheckTld", Handler: unaryHandler(MethodCheckTld, DomainCheckerServer.CheckTld)},
		{MethodName: "ToASCII", Handler: unaryHandler(MethodToASCII, DomainCheckerServer.ToASCII)},
		{MethodName: "ListTlds", Handler: unaryHandler(MethodListTlds, DomainCheckerServer.ListTlds)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: protoFile,
}

// RegisterDomainCheckerServer registers srv on s.
func RegisterDomainCheckerServer(s grpc.ServiceRegistrar, srv DomainCheckerServer) {
	s.RegisterService(&serviceDesc, srv)
}

// Client is the client API of the DomainChecker service.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invokeBool(ctx context.Context, method, in string, opts ...grpc.CallOption) (bool, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, method, wrapperspb.String(in), out, opts...); err != nil {
		return false, err
	}
	return out.GetValue(), nil
}

func (c *Client) CheckDomain(ctx context.Context, name string, opts ...grpc.CallOption) (bool, error) {
	return c.invokeBool(ctx, MethodCheckDomain, name, opts...)
}

func (c *Client) CheckDomainSyntax(ctx context.Context, name string, opts ...grpc.CallOption) (bool, error) {
	return c.invokeBool(ctx, MethodCheckDomainSyntax, name, opts...)
}

func (c *Client) CheckTld(ctx context.Context, tld string, opts ...grpc.CallOption) (bool, error) {
	return c.invokeBool(ctx, MethodCheckTld, tld, opts...)
}

func (c *Client) ToASCII(ctx context.Context, name string, opts ...grpc.CallOption) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, MethodToASCII, wrapperspb.String(name), out, opts...); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}

func (c *Client) ListTlds(ctx context.Context, list string, opts ...grpc.CallOption) ([]string, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, MethodListTlds, wrapperspb.String(list), out, opts...); err != nil {
		return nil, err
	}

	entries := make([]string, 0, len(out.GetValues()))
	for _, v := range out.GetValues() {
		entries = append(entries, v.GetStringValue())
	}
	return entries, nil
}
