// api/proto/generate.go
//
// Regenerates the gRPC bindings into the per-service generated directories.
// Requires protoc with protoc-gen-go and protoc-gen-go-grpc on PATH.
package proto

//go:generate protoc --go_out=. --go_opt=module=github.com/ekaraca/taskshare/api/proto --go-grpc_out=. --go-grpc_opt=module=github.com/ekaraca/taskshare/api/proto auth/v1/auth.proto todo/v1/todo.proto assignment/v1/assignment.proto notification/v1/notification.proto
