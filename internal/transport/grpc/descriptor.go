package grpc

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

const protoFile = "domaincheck/v1/domaincheck.proto"

// fileDescriptorProto describes the DomainChecker service as protoc would for
// a .proto file that imports the wrappers and struct well-known types.
func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	const (
		stringValue = ".google.protobuf.StringValue"
		boolValue   = ".google.protobuf.BoolValue"
		listValue   = ".google.protobuf.ListValue"
	)

	method := func(name, in, out string) *descriptorpb.MethodDescriptorProto {
		return &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(name),
			InputType:  proto.String(in),
			OutputType: proto.String(out),
		}
	}

	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(protoFile),
		Package: proto.String("domaincheck.v1"),
		Dependency: []string{
			"google/protobuf/struct.proto",
			"google/protobuf/wrappers.proto",
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("DomainChecker"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("CheckDomain", stringValue, boolValue),
				method("CheckDomainSyntax", stringValue, boolValue),
				method("CheckTld", stringValue, boolValue),
				method("ToASCII", stringValue, stringValue),
				method("ListTlds", stringValue, listValue),
			},
		}},
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/apervushin/commons-validator/internal/transport/grpc"),
		},
		Syntax: proto.String("proto3"),
	}
}

// Registered in the global registry so server reflection can describe the
// service and its methods.
func init() {
	fd, err := protodesc.NewFile(fileDescriptorProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic("domaincheck: build file descriptor: " + err.Error())
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic("domaincheck: register file descriptor: " + err.Error())
	}
}
