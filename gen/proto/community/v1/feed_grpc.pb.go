// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: community/v1/feed.proto

package communitypb

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
	FeedService_LoadNews_FullMethodName           = "/community.v1.FeedService/LoadNews"
	FeedService_LoadGallery_FullMethodName        = "/community.v1.FeedService/LoadGallery"
	FeedService_LoadActiveUsers_FullMethodName    = "/community.v1.FeedService/LoadActiveUsers"
	FeedService_LoadTransactions_FullMethodName   = "/community.v1.FeedService/LoadTransactions"
	FeedService_ListCategories_FullMethodName     = "/community.v1.FeedService/ListCategories"
	FeedService_ListSubcategories_FullMethodName  = "/community.v1.FeedService/ListSubcategories"
	FeedService_PinCategory_FullMethodName        = "/community.v1.FeedService/PinCategory"
	FeedService_UnpinCategory_FullMethodName      = "/community.v1.FeedService/UnpinCategory"
	FeedService_ExportTransactions_FullMethodName = "/community.v1.FeedService/ExportTransactions"
)

// FeedServiceClient is the client API for FeedService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// FeedService is the local control surface the UI shell drives. Each Load RPC
// maps to one UI trigger: mount, pull-to-refresh or scroll-to-end.
type FeedServiceClient interface {
	LoadNews(ctx context.Context, in *LoadNewsRequest, opts ...grpc.CallOption) (*LoadNewsResponse, error)
	LoadGallery(ctx context.Context, in *LoadGalleryRequest, opts ...grpc.CallOption) (*LoadGalleryResponse, error)
	LoadActiveUsers(ctx context.Context, in *LoadActiveUsersRequest, opts ...grpc.CallOption) (*LoadActiveUsersResponse, error)
	LoadTransactions(ctx context.Context, in *LoadTransactionsRequest, opts ...grpc.CallOption) (*LoadTransactionsResponse, error)
	ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error)
	ListSubcategories(ctx context.Context, in *ListSubcategoriesRequest, opts ...grpc.CallOption) (*ListSubcategoriesResponse, error)
	PinCategory(ctx context.Context, in *PinCategoryRequest, opts ...grpc.CallOption) (*PinCategoryResponse, error)
	UnpinCategory(ctx context.Context, in *UnpinCategoryRequest, opts ...grpc.CallOption) (*UnpinCategoryResponse, error)
	ExportTransactions(ctx context.Context, in *ExportTransactionsRequest, opts ...grpc.CallOption) (*ExportTransactionsResponse, error)
}

type feedServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFeedServiceClient(cc grpc.ClientConnInterface) FeedServiceClient {
	return &feedServiceClient{cc}
}

func (c *feedServiceClient) LoadNews(ctx context.Context, in *LoadNewsRequest, opts ...grpc.CallOption) (*LoadNewsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LoadNewsResponse)
	err := c.cc.Invoke(ctx, FeedService_LoadNews_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedServiceClient) LoadGallery(ctx context.Context, in *LoadGalleryRequest, opts ...grpc.CallOption) (*LoadGalleryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LoadGalleryResponse)
	err := c.cc.Invoke(ctx, FeedService_LoadGallery_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedServiceClient) LoadActiveUsers(ctx context.Context, in *LoadActiveUsersRequest, opts ...grpc.CallOption) (*LoadActiveUsersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LoadActiveUsersResponse)
	err := c.cc.Invoke(ctx, FeedService_LoadActiveUsers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedServiceClient) LoadTransactions(ctx context.Context, in *LoadTransactionsRequest, opts ...grpc.CallOption) (*LoadTransactionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LoadTransactionsResponse)
	err := c.cc.Invoke(ctx, FeedService_LoadTransactions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedServiceClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListCategoriesResponse)
	err := c.cc.Invoke(ctx, FeedService_ListCategories_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedServiceClient) ListSubcategories(ctx context.Context, in *ListSubcategoriesRequest, opts ...grpc.CallOption) (*ListSubcategoriesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSubcategoriesResponse)
	err := c.cc.Invoke(ctx, FeedService_ListSubcategories_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedServiceClient) PinCategory(ctx context.Context, in *PinCategoryRequest, opts ...grpc.CallOption) (*PinCategoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PinCategoryResponse)
	err := c.cc.Invoke(ctx, FeedService_PinCategory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedServiceClient) UnpinCategory(ctx context.Context, in *UnpinCategoryRequest, opts ...grpc.CallOption) (*UnpinCategoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UnpinCategoryResponse)
	err := c.cc.Invoke(ctx, FeedService_UnpinCategory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedServiceClient) ExportTransactions(ctx context.Context, in *ExportTransactionsRequest, opts ...grpc.CallOption) (*ExportTransactionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportTransactionsResponse)
	err := c.cc.Invoke(ctx, FeedService_ExportTransactions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FeedServiceServer is the server API for FeedService service.
// All implementations must embed UnimplementedFeedServiceServer
// for forward compatibility.
//
// FeedService is the local control surface the UI shell drives. Each Load RPC
// maps to one UI trigger: mount, pull-to-refresh or scroll-to-end.
type FeedServiceServer interface {
	LoadNews(context.Context, *LoadNewsRequest) (*LoadNewsResponse, error)
	LoadGallery(context.Context, *LoadGalleryRequest) (*LoadGalleryResponse, error)
	LoadActiveUsers(context.Context, *LoadActiveUsersRequest) (*LoadActiveUsersResponse, error)
	LoadTransactions(context.Context, *LoadTransactionsRequest) (*LoadTransactionsResponse, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	ListSubcategories(context.Context, *ListSubcategoriesRequest) (*ListSubcategoriesResponse, error)
	PinCategory(context.Context, *PinCategoryRequest) (*PinCategoryResponse, error)
	UnpinCategory(context.Context, *UnpinCategoryRequest) (*UnpinCategoryResponse, error)
	ExportTransactions(context.Context, *ExportTransactionsRequest) (*ExportTransactionsResponse, error)
	mustEmbedUnimplementedFeedServiceServer()
}

// UnimplementedFeedServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedFeedServiceServer struct{}

func (UnimplementedFeedServiceServer) LoadNews(context.Context, *LoadNewsRequest) (*LoadNewsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LoadNews not implemented")
}
func (UnimplementedFeedServiceServer) LoadGallery(context.Context, *LoadGalleryRequest) (*LoadGalleryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LoadGallery not implemented")
}
func (UnimplementedFeedServiceServer) LoadActiveUsers(context.Context, *LoadActiveUsersRequest) (*LoadActiveUsersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LoadActiveUsers not implemented")
}
func (UnimplementedFeedServiceServer) LoadTransactions(context.Context, *LoadTransactionsRequest) (*LoadTransactionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LoadTransactions not implemented")
}
func (UnimplementedFeedServiceServer) ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCategories not implemented")
}
func (UnimplementedFeedServiceServer) ListSubcategories(context.Context, *ListSubcategoriesRequest) (*ListSubcategoriesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSubcategories not implemented")
}
func (UnimplementedFeedServiceServer) PinCategory(context.Context, *PinCategoryRequest) (*PinCategoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PinCategory not implemented")
}
func (UnimplementedFeedServiceServer) UnpinCategory(context.Context, *UnpinCategoryRequest) (*UnpinCategoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UnpinCategory not implemented")
}
func (UnimplementedFeedServiceServer) ExportTransactions(context.Context, *ExportTransactionsRequest) (*ExportTransactionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportTransactions not implemented")
}
func (UnimplementedFeedServiceServer) mustEmbedUnimplementedFeedServiceServer() {}
func (UnimplementedFeedServiceServer) testEmbeddedByValue()                     {}

// UnsafeFeedServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to FeedServiceServer will
// result in compilation errors.
type UnsafeFeedServiceServer interface {
	mustEmbedUnimplementedFeedServiceServer()
}

func RegisterFeedServiceServer(s grpc.ServiceRegistrar, srv FeedServiceServer) {
	// If the following call pancis, it indicates UnimplementedFeedServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&FeedService_ServiceDesc, srv)
}

func _FeedService_LoadNews_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoadNewsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).LoadNews(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_LoadNews_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).LoadNews(ctx, req.(*LoadNewsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedService_LoadGallery_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoadGalleryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).LoadGallery(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_LoadGallery_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).LoadGallery(ctx, req.(*LoadGalleryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedService_LoadActiveUsers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoadActiveUsersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).LoadActiveUsers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_LoadActiveUsers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).LoadActiveUsers(ctx, req.(*LoadActiveUsersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedService_LoadTransactions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoadTransactionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).LoadTransactions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_LoadTransactions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).LoadTransactions(ctx, req.(*LoadTransactionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedService_ListCategories_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCategoriesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).ListCategories(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_ListCategories_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).ListCategories(ctx, req.(*ListCategoriesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedService_ListSubcategories_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSubcategoriesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).ListSubcategories(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_ListSubcategories_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).ListSubcategories(ctx, req.(*ListSubcategoriesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedService_PinCategory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PinCategoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).PinCategory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_PinCategory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).PinCategory(ctx, req.(*PinCategoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedService_UnpinCategory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UnpinCategoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).UnpinCategory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_UnpinCategory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).UnpinCategory(ctx, req.(*UnpinCategoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedService_ExportTransactions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportTransactionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).ExportTransactions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_ExportTransactions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).ExportTransactions(ctx, req.(*ExportTransactionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FeedService_ServiceDesc is the grpc.ServiceDesc for FeedService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var FeedService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "community.v1.FeedService",
	HandlerType: (*FeedServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "LoadNews",
			Handler:    _FeedService_LoadNews_Handler,
		},
		{
			MethodName: "LoadGallery",
			Handler:    _FeedService_LoadGallery_Handler,
		},
		{
			MethodName: "LoadActiveUsers",
			Handler:    _FeedService_LoadActiveUsers_Handler,
		},
		{
			MethodName: "LoadTransactions",
			Handler:    _FeedService_LoadTransactions_Handler,
		},
		{
			MethodName: "ListCategories",
			Handler:    _FeedService_ListCategories_Handler,
		},
		{
			MethodName: "ListSubcategories",
			Handler:    _FeedService_ListSubcategories_Handler,
		},
		{
			MethodName: "PinCategory",
			Handler:    _FeedService_PinCategory_Handler,
		},
		{
			MethodName: "UnpinCategory",
			Handler:    _FeedService_UnpinCategory_Handler,
		},
		{
			MethodName: "ExportTransactions",
			Handler:    _FeedService_ExportTransactions_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "community/v1/feed.proto",
}

const (
	AuthService_SaveToken_FullMethodName  = "/community.v1.AuthService/SaveToken"
	AuthService_ClearToken_FullMethodName = "/community.v1.AuthService/ClearToken"
)

// AuthServiceClient is the client API for AuthService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AuthService stores the bearer token the REST client sends upstream.
type AuthServiceClient interface {
	SaveToken(ctx context.Context, in *SaveTokenRequest, opts ...grpc.CallOption) (*SaveTokenResponse, error)
	ClearToken(ctx context.Context, in *ClearTokenRequest, opts ...grpc.CallOption) (*ClearTokenResponse, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc}
}

func (c *authServiceClient) SaveToken(ctx context.Context, in *SaveTokenRequest, opts ...grpc.CallOption) (*SaveTokenResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SaveTokenResponse)
	err := c.cc.Invoke(ctx, AuthService_SaveToken_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) ClearToken(ctx context.Context, in *ClearTokenRequest, opts ...grpc.CallOption) (*ClearTokenResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClearTokenResponse)
	err := c.cc.Invoke(ctx, AuthService_ClearToken_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AuthServiceServer is the server API for AuthService service.
// All implementations must embed UnimplementedAuthServiceServer
// for forward compatibility.
//
// AuthService stores the bearer token the REST client sends upstream.
type AuthServiceServer interface {
	SaveToken(context.Context, *SaveTokenRequest) (*SaveTokenResponse, error)
	ClearToken(context.Context, *ClearTokenRequest) (*ClearTokenResponse, error)
	mustEmbedUnimplementedAuthServiceServer()
}

// UnimplementedAuthServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAuthServiceServer struct{}

func (UnimplementedAuthServiceServer) SaveToken(context.Context, *SaveTokenRequest) (*SaveTokenResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveToken not implemented")
}
func (UnimplementedAuthServiceServer) ClearToken(context.Context, *ClearTokenRequest) (*ClearTokenResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearToken not implemented")
}
func (UnimplementedAuthServiceServer) mustEmbedUnimplementedAuthServiceServer() {}
func (UnimplementedAuthServiceServer) testEmbeddedByValue()                     {}

// UnsafeAuthServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AuthServiceServer will
// result in compilation errors.
type UnsafeAuthServiceServer interface {
	mustEmbedUnimplementedAuthServiceServer()
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	// If the following call pancis, it indicates UnimplementedAuthServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

func _AuthService_SaveToken_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveTokenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).SaveToken(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuthService_SaveToken_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuthServiceServer).SaveToken(ctx, req.(*SaveTokenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AuthService_ClearToken_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClearTokenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).ClearToken(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuthService_ClearToken_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuthServiceServer).ClearToken(ctx, req.(*ClearTokenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AuthService_ServiceDesc is the grpc.ServiceDesc for AuthService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "community.v1.AuthService",
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SaveToken",
			Handler:    _AuthService_SaveToken_Handler,
		},
		{
			MethodName: "ClearToken",
			Handler:    _AuthService_ClearToken_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "community/v1/feed.proto",
}
