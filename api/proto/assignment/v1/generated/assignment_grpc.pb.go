// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: assignment/v1/assignment.proto

package assignmentv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	AssignmentService_AssignTodo_FullMethodName          = "/assignment.v1.AssignmentService/AssignTodo"
	AssignmentService_RespondToAssignment_FullMethodName = "/assignment.v1.AssignmentService/RespondToAssignment"
	AssignmentService_ListMyAssignments_FullMethodName   = "/assignment.v1.AssignmentService/ListMyAssignments"
)

// AssignmentServiceClient is the client API for AssignmentService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AssignmentService manages the delegation workflow between a todo owner
// and an assignee.
type AssignmentServiceClient interface {
	// Delegate a todo owned by the caller to another user.
	AssignTodo(ctx context.Context, in *AssignTodoRequest, opts ...grpc.CallOption) (*AssignTodoResponse, error)
	// Accept or decline an assignment delegated to the caller.
	RespondToAssignment(ctx context.Context, in *RespondToAssignmentRequest, opts ...grpc.CallOption) (*RespondToAssignmentResponse, error)
	// List assignments delegated to the caller, in any status.
	ListMyAssignments(ctx context.Context, in *ListMyAssignmentsRequest, opts ...grpc.CallOption) (*ListMyAssignmentsResponse, error)
}

type assignmentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAssignmentServiceClient(cc grpc.ClientConnInterface) AssignmentServiceClient {
	return &assignmentServiceClient{cc}
}

func (c *assignmentServiceClient) AssignTodo(ctx context.Context, in *AssignTodoRequest, opts ...grpc.CallOption) (*AssignTodoResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AssignTodoResponse)
	err := c.cc.Invoke(ctx, AssignmentService_AssignTodo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assignmentServiceClient) RespondToAssignment(ctx context.Context, in *RespondToAssignmentRequest, opts ...grpc.CallOption) (*RespondToAssignmentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RespondToAssignmentResponse)
	err := c.cc.Invoke(ctx, AssignmentService_RespondToAssignment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assignmentServiceClient) ListMyAssignments(ctx context.Context, in *ListMyAssignmentsRequest, opts ...grpc.CallOption) (*ListMyAssignmentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListMyAssignmentsResponse)
	err := c.cc.Invoke(ctx, AssignmentService_ListMyAssignments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AssignmentServiceServer is the server API for AssignmentService service.
// All implementations must embed UnimplementedAssignmentServiceServer
// for forward compatibility.
//
// AssignmentService manages the delegation workflow between a todo owner
// and an assignee.
type AssignmentServiceServer interface {
	// Delegate a todo owned by the caller to another user.
	AssignTodo(context.Context, *AssignTodoRequest) (*AssignTodoResponse, error)
	// Accept or decline an assignment delegated to the caller.
	RespondToAssignment(context.Context, *RespondToAssignmentRequest) (*RespondToAssignmentResponse, error)
	// List assignments delegated to the caller, in any status.
	ListMyAssignments(context.Context, *ListMyAssignmentsRequest) (*ListMyAssignmentsResponse, error)
	mustEmbedUnimplementedAssignmentServiceServer()
}

// UnimplementedAssignmentServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAssignmentServiceServer struct{}

func (UnimplementedAssignmentServiceServer) AssignTodo(context.Context, *AssignTodoRequest) (*AssignTodoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssignTodo not implemented")
}
func (UnimplementedAssignmentServiceServer) RespondToAssignment(context.Context, *RespondToAssignmentRequest) (*RespondToAssignmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RespondToAssignment not implemented")
}
func (UnimplementedAssignmentServiceServer) ListMyAssignments(context.Context, *ListMyAssignmentsRequest) (*ListMyAssignmentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMyAssignments not implemented")
}
func (UnimplementedAssignmentServiceServer) mustEmbedUnimplementedAssignmentServiceServer() {}
func (UnimplementedAssignmentServiceServer) testEmbeddedByValue()                           {}

// UnsafeAssignmentServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AssignmentServiceServer will
// result in compilation errors.
type UnsafeAssignmentServiceServer interface {
	mustEmbedUnimplementedAssignmentServiceServer()
}

func RegisterAssignmentServiceServer(s grpc.ServiceRegistrar, srv AssignmentServiceServer) {
	// If the following call pancis, it indicates UnimplementedAssignmentServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AssignmentService_ServiceDesc, srv)
}

func _AssignmentService_AssignTodo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AssignTodoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssignmentServiceServer).AssignTodo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AssignmentService_AssignTodo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssignmentServiceServer).AssignTodo(ctx, req.(*AssignTodoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AssignmentService_RespondToAssignment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RespondToAssignmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssignmentServiceServer).RespondToAssignment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AssignmentService_RespondToAssignment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssignmentServiceServer).RespondToAssignment(ctx, req.(*RespondToAssignmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AssignmentService_ListMyAssignments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMyAssignmentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssignmentServiceServer).ListMyAssignments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AssignmentService_ListMyAssignments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssignmentServiceServer).ListMyAssignments(ctx, req.(*ListMyAssignmentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AssignmentService_ServiceDesc is the grpc.ServiceDesc for AssignmentService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AssignmentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "assignment.v1.AssignmentService",
	HandlerType: (*AssignmentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AssignTodo",
			Handler:    _AssignmentService_AssignTodo_Handler,
		},
		{
			MethodName: "RespondToAssignment",
			Handler:    _AssignmentService_RespondToAssignment_Handler,
		},
		{
			MethodName: "ListMyAssignments",
			Handler:    _AssignmentService_ListMyAssignments_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "assignment/v1/assignment.proto",
}
