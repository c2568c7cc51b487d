package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified name clients dial
const ServiceName = "wealthcast.v1.ForecastService"

// ForecastServiceServer is the server API for the forecast service.
// Requests and responses are google.protobuf.Struct documents: decimals travel
// as strings and dates as YYYY-MM-DD.
type ForecastServiceServer interface {
	GetForecast(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ProjectAt(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListAssets(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RegisterAsset(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RevalueAsset(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RecordTransaction(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetLedger(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(ForecastServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// ForecastServiceDesc describes the forecast service for grpc.Server registration
var ForecastServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ForecastServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetForecast", Handler: unaryHandler("GetForecast", ForecastServiceServer.GetForecast)},
		{MethodName: "ProjectAt", Handler: unaryHandler("ProjectAt", ForecastServiceServer.ProjectAt)},
		{MethodName: "ListAssets", Handler: unaryHandler("ListAssets", ForecastServiceServer.ListAssets)},
		{MethodName: "RegisterAsset", Handler: unaryHandler("RegisterAsset", ForecastServiceServer.RegisterAsset)},
		{MethodName: "RevalueAsset", Handler: unaryHandler("RevalueAsset", ForecastServiceServer.RevalueAsset)},
		{MethodName: "RecordTransaction", Handler: unaryHandler("RecordTransaction", ForecastServiceServer.RecordTransaction)},
		{MethodName: "GetLedger", Handler: unaryHandler("GetLedger", ForecastServiceServer.GetLedger)},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterForecastServiceServer registers srv on s
func RegisterForecastServiceServer(s grpc.ServiceRegistrar, srv ForecastServiceServer) {
	s.RegisterService(&ForecastServiceDesc, srv)
}

func unaryHandler(method string, call unaryMethod) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	fullMethod := "/" + ServiceName + "/" + method
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ForecastServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(ForecastServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ForecastServiceClient is the client API for the forecast service
type ForecastServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewForecastServiceClient creates a client over an established connection
func NewForecastServiceClient(cc grpc.ClientConnInterface) *ForecastServiceClient {
	return &ForecastServiceClient{cc: cc}
}

func (c *ForecastServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ForecastServiceClient) GetForecast(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "GetForecast", in, opts...)
}

func (c *ForecastServiceClient) ProjectAt(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "ProjectAt", in, opts...)
}

func (c *ForecastServiceClient) ListAssets(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "ListAssets", in, opts...)
}

func (c *ForecastServiceClient) RegisterAsset(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "RegisterAsset", in, opts...)
}

func (c *ForecastServiceClient) RevalueAsset(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "RevalueAsset", in, opts...)
}

func (c *ForecastServiceClient) RecordTransaction(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "RecordTransaction", in, opts...)
}

func (c *ForecastServiceClient) GetLedger(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "GetLedger", in, opts...)
}
