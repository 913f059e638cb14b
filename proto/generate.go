// Package proto holds the gRPC contract between the Go agents and the
// Python sidecar services. The Go bindings are generated from foundry.proto.
package proto

//go:generate protoc --go_out=paths=source_relative:. --go-grpc_out=paths=source_relative:. foundry.proto
