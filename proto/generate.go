// Package proto holds the wire definitions for the local control surface.
// Generated code lands under gen/proto.
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative community/v1/feed.proto
