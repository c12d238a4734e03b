package storefront

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "storefront.v1.StorefrontService"

// Method names served by ServiceDesc.
const (
	MethodCreateProduct         = "CreateProduct"
	MethodUpdateProduct         = "UpdateProduct"
	MethodGetProduct            = "GetProduct"
	MethodListProducts          = "ListProducts"
	MethodCreateCompetitorPrice = "CreateCompetitorPrice"
	MethodCreatePriceHistory    = "CreatePriceHistory"
	MethodListPriceHistory      = "ListPriceHistory"
	MethodCreateSale            = "CreateSale"
	MethodListSales             = "ListSales"
	MethodCountSales            = "CountSales"
)

// StorefrontServer is the server API. Requests and replies are JSON-shaped
// structpb.Struct messages with camelCase keys.
type StorefrontServer interface {
	CreateProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateCompetitorPrice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreatePriceHistory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListPriceHistory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateSale(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListSales(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CountSales(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(StorefrontServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(StorefrontServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(StorefrontServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes StorefrontServer for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StorefrontServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(MethodCreateProduct, StorefrontServer.CreateProduct),
		unaryHandler(MethodUpdateProduct, StorefrontServer.UpdateProduct),
		unaryHandler(MethodGetProduct, StorefrontServer.GetProduct),
		unaryHandler(MethodListProducts, StorefrontServer.ListProducts),
		unaryHandler(MethodCreateCompetitorPrice, StorefrontServer.CreateCompetitorPrice),
		unaryHandler(MethodCreatePriceHistory, StorefrontServer.CreatePriceHistory),
		unaryHandler(MethodListPriceHistory, StorefrontServer.ListPriceHistory),
		unaryHandler(MethodCreateSale, StorefrontServer.CreateSale),
		unaryHandler(MethodListSales, StorefrontServer.ListSales),
		unaryHandler(MethodCountSales, StorefrontServer.CountSales),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/v1/storefront.proto",
}

func RegisterStorefrontServer(s grpc.ServiceRegistrar, srv StorefrontServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// FullMethod returns "/storefront.v1.StorefrontService/<method>".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// Client calls the storefront service over an existing connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes method with in and returns the decoded reply.
func (c *Client) Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
