package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "pokedex.api.v1alpha1.PokedexService"

const (
	PokedexService_StartSession_FullMethodName       = "/" + ServiceName + "/StartSession"
	PokedexService_GetState_FullMethodName           = "/" + ServiceName + "/GetState"
	PokedexService_EndSession_FullMethodName         = "/" + ServiceName + "/EndSession"
	PokedexService_SubmitSearch_FullMethodName       = "/" + ServiceName + "/SubmitSearch"
	PokedexService_ChangeGeneration_FullMethodName   = "/" + ServiceName + "/ChangeGeneration"
	PokedexService_ChangeMethodFilter_FullMethodName = "/" + ServiceName + "/ChangeMethodFilter"
)

// PokedexServiceClient is the client API for PokedexService.
type PokedexServiceClient interface {
	StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error)
	GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error)
	EndSession(ctx context.Context, in *EndSessionRequest, opts ...grpc.CallOption) (*EndSessionResponse, error)
	SubmitSearch(ctx context.Context, in *SubmitSearchRequest, opts ...grpc.CallOption) (*SubmitSearchResponse, error)
	ChangeGeneration(ctx context.Context, in *ChangeGenerationRequest, opts ...grpc.CallOption) (*ChangeGenerationResponse, error)
	ChangeMethodFilter(ctx context.Context, in *ChangeMethodFilterRequest, opts ...grpc.CallOption) (*ChangeMethodFilterResponse, error)
}

type pokedexServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPokedexServiceClient returns a client whose calls use the JSON codec.
func NewPokedexServiceClient(cc grpc.ClientConnInterface) PokedexServiceClient {
	return &pokedexServiceClient{cc}
}

func (c *pokedexServiceClient) StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error) {
	out := new(StartSessionResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, PokedexService_StartSession_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pokedexServiceClient) GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error) {
	out := new(GetStateResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, PokedexService_GetState_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pokedexServiceClient) EndSession(ctx context.Context, in *EndSessionRequest, opts ...grpc.CallOption) (*EndSessionResponse, error) {
	out := new(EndSessionResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, PokedexService_EndSession_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pokedexServiceClient) SubmitSearch(ctx context.Context, in *SubmitSearchRequest, opts ...grpc.CallOption) (*SubmitSearchResponse, error) {
	out := new(SubmitSearchResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, PokedexService_SubmitSearch_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pokedexServiceClient) ChangeGeneration(ctx context.Context, in *ChangeGenerationRequest, opts ...grpc.CallOption) (*ChangeGenerationResponse, error) {
	out := new(ChangeGenerationResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, PokedexService_ChangeGeneration_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pokedexServiceClient) ChangeMethodFilter(ctx context.Context, in *ChangeMethodFilterRequest, opts ...grpc.CallOption) (*ChangeMethodFilterResponse, error) {
	out := new(ChangeMethodFilterResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, PokedexService_ChangeMethodFilter_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// PokedexServiceServer is the server API for PokedexService.
// All implementations should embed UnimplementedPokedexServiceServer.
type PokedexServiceServer interface {
	StartSession(context.Context, *StartSessionRequest) (*StartSessionResponse, error)
	GetState(context.Context, *GetStateRequest) (*GetStateResponse, error)
	EndSession(context.Context, *EndSessionRequest) (*EndSessionResponse, error)
	SubmitSearch(context.Context, *SubmitSearchRequest) (*SubmitSearchResponse, error)
	ChangeGeneration(context.Context, *ChangeGenerationRequest) (*ChangeGenerationResponse, error)
	ChangeMethodFilter(context.Context, *ChangeMethodFilterRequest) (*ChangeMethodFilterResponse, error)
}

// UnimplementedPokedexServiceServer should be embedded to have forward
// compatible implementations.
type UnimplementedPokedexServiceServer struct{}

func (UnimplementedPokedexServiceServer) StartSession(context.Context, *StartSessionRequest) (*StartSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartSession not implemented")
}

func (UnimplementedPokedexServiceServer) GetState(context.Context, *GetStateRequest) (*GetStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetState not implemented")
}

func (UnimplementedPokedexServiceServer) EndSession(context.Context, *EndSessionRequest) (*EndSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EndSession not implemented")
}

func (UnimplementedPokedexServiceServer) SubmitSearch(context.Context, *SubmitSearchRequest) (*SubmitSearchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitSearch not implemented")
}

func (UnimplementedPokedexServiceServer) ChangeGeneration(context.Context, *ChangeGenerationRequest) (*ChangeGenerationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ChangeGeneration not implemented")
}

func (UnimplementedPokedexServiceServer) ChangeMethodFilter(context.Context, *ChangeMethodFilterRequest) (*ChangeMethodFilterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ChangeMethodFilter not implemented")
}

// RegisterPokedexServiceServer registers srv on s.
func RegisterPokedexServiceServer(s grpc.ServiceRegistrar, srv PokedexServiceServer) {
	s.RegisterService(&PokedexService_ServiceDesc, srv)
}

func _PokedexService_StartSession_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StartSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokedexServiceServer).StartSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PokedexService_StartSession_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PokedexServiceServer).StartSession(ctx, req.(*StartSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PokedexService_GetState_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokedexServiceServer).GetState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PokedexService_GetState_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PokedexServiceServer).GetState(ctx, req.(*GetStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PokedexService_EndSession_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(EndSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokedexServiceServer).EndSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PokedexService_EndSession_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PokedexServiceServer).EndSession(ctx, req.(*EndSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PokedexService_SubmitSearch_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SubmitSearchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokedexServiceServer).SubmitSearch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PokedexService_SubmitSearch_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PokedexServiceServer).SubmitSearch(ctx, req.(*SubmitSearchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PokedexService_ChangeGeneration_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ChangeGenerationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokedexServiceServer).ChangeGeneration(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PokedexService_ChangeGeneration_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PokedexServiceServer).ChangeGeneration(ctx, req.(*ChangeGenerationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PokedexService_ChangeMethodFilter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ChangeMethodFilterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokedexServiceServer).ChangeMethodFilter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PokedexService_ChangeMethodFilter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PokedexServiceServer).ChangeMethodFilter(ctx, req.(*ChangeMethodFilterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PokedexService_ServiceDesc is the grpc.ServiceDesc for PokedexService.
var PokedexService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PokedexServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartSession",
			Handler:    _PokedexService_StartSession_Handler,
		},
		{
			MethodName: "GetState",
			Handler:    _PokedexService_GetState_Handler,
		},
		{
			MethodName: "EndSession",
			Handler:    _PokedexService_EndSession_Handler,
		},
		{
			MethodName: "SubmitSearch",
			Handler:    _PokedexService_SubmitSearch_Handler,
		},
		{
			MethodName: "ChangeGeneration",
			Handler:    _PokedexService_ChangeGeneration_Handler,
		},
		{
			MethodName: "ChangeMethodFilter",
			Handler:    _PokedexService_ChangeMethodFilter_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/pokedex/v1alpha1/service.go",
}
