package store_service_api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "airbooking.v1.StoreService"

const (
	methodLargestAirport           = "/" + ServiceName + "/LargestAirport"
	methodCalculateFare            = "/" + ServiceName + "/CalculateFare"
	methodRevenueForFlight         = "/" + ServiceName + "/RevenueForFlight"
	methodCountBookingsByPassenger = "/" + ServiceName + "/CountBookingsByPassenger"
)

// StoreServiceServer is the read side of the store over gRPC. Messages are
// protobuf well-known types, so no generated code is needed.
type StoreServiceServer interface {
	LargestAirport(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	CalculateFare(context.Context, *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error)
	RevenueForFlight(context.Context, *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error)
	CountBookingsByPassenger(context.Context, *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error)
}

var StoreServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StoreServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "LargestAirport", Handler: largestAirportHandler},
		{MethodName: "CalculateFare", Handler: int64Handler(methodCalculateFare, StoreServiceServer.CalculateFare)},
		{MethodName: "RevenueForFlight", Handler: int64Handler(methodRevenueForFlight, StoreServiceServer.RevenueForFlight)},
		{MethodName: "CountBookingsByPassenger", Handler: int64Handler(methodCountBookingsByPassenger, StoreServiceServer.CountBookingsByPassenger)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "airbooking/v1/store.proto",
}

func RegisterStoreServiceServer(s grpc.ServiceRegistrar, srv StoreServiceServer) {
	s.RegisterService(&StoreServiceDesc, srv)
}

func largestAirportHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StoreServiceServer).LargestAirport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodLargestAirport}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StoreServiceServer).LargestAirport(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

type int64Method func(StoreServiceServer, context.Context, *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error)

func int64Handler(fullMethod string, call int64Method) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(wrapperspb.Int64Value)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StoreServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(StoreServiceServer), ctx, req.(*wrapperspb.Int64Value))
		}
		return interceptor(ctx, in, info, handler)
	}
}

type StoreServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStoreServiceClient(cc grpc.ClientConnInterface) *StoreServiceClient {
	return &StoreServiceClient{cc: cc}
}

func (c *StoreServiceClient) LargestAirport(ctx context.Context, opts ...grpc.CallOption) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, methodLargestAirport, &emptypb.Empty{}, out, opts...); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}

func (c *StoreServiceClient) CalculateFare(ctx context.Context, flightID int64, opts ...grpc.CallOption) (int64, error) {
	return c.invokeInt64(ctx, methodCalculateFare, flightID, opts...)
}

func (c *StoreServiceClient) RevenueForFlight(ctx context.Context, flightID int64, opts ...grpc.CallOption) (int64, error) {
	return c.invokeInt64(ctx, methodRevenueForFlight, flightID, opts...)
}

func (c *StoreServiceClient) CountBookingsByPassenger(ctx context.Context, passengerID int64, opts ...grpc.CallOption) (int64, error) {
	return c.invokeInt64(ctx, methodCountBookingsByPassenger, passengerID, opts...)
}

func (c *StoreServiceClient) invokeInt64(ctx context.Context, method string, id int64, opts ...grpc.CallOption) (int64, error) {
	out := new(wrapperspb.Int64Value)
	if err := c.cc.Invoke(ctx, method, wrapperspb.Int64(id), out, opts...); err != nil {
		return 0, err
	}
	return out.GetValue(), nil
}
