package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpg.player.v1alpha1.PlayerService"

// Method names
const (
	MethodGetProfile     = "GetProfile"
	MethodChat           = "Chat"
	MethodDaily          = "Daily"
	MethodGiveReputation = "GiveReputation"
	MethodLimitbreak     = "Limitbreak"
	MethodChangePath     = "ChangePath"
	MethodAddClass       = "AddClass"
	MethodChangeClass    = "ChangeClass"
	MethodSetLevelPing   = "SetLevelPing"
	MethodBeginAction    = "BeginAction"
	MethodEndAction      = "EndAction"
	MethodClearLock      = "ClearLock"
	MethodDeleteProfile  = "DeleteProfile"
)

// PlayerServiceServer is the server API for the player service. Requests
// and responses are JSON-shaped structs.
type PlayerServiceServer interface {
	GetProfile(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Chat(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Daily(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GiveReputation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Limitbreak(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ChangePath(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddClass(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ChangeClass(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetLevelPing(context.Context, *structpb.Struct) (*structpb.Struct, error)
	BeginAction(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EndAction(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearLock(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteProfile(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryFunc func(PlayerServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryMethod(name string, call unaryFunc) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(PlayerServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(PlayerServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// FullMethod returns the gRPC path for a method name
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// PlayerServiceDesc is the grpc.ServiceDesc for the player service
var PlayerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PlayerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodGetProfile, PlayerServiceServer.GetProfile),
		unaryMethod(MethodChat, PlayerServiceServer.Chat),
		unaryMethod(MethodDaily, PlayerServiceServer.Daily),
		unaryMethod(MethodGiveReputation, PlayerServiceServer.GiveReputation),
		unaryMethod(MethodLimitbreak, PlayerServiceServer.Limitbreak),
		unaryMethod(MethodChangePath, PlayerServiceServer.ChangePath),
		unaryMethod(MethodAddClass, PlayerServiceServer.AddClass),
		unaryMethod(MethodChangeClass, PlayerServiceServer.ChangeClass),
		unaryMethod(MethodSetLevelPing, PlayerServiceServer.SetLevelPing),
		unaryMethod(MethodBeginAction, PlayerServiceServer.BeginAction),
		unaryMethod(MethodEndAction, PlayerServiceServer.EndAction),
		unaryMethod(MethodClearLock, PlayerServiceServer.ClearLock),
		unaryMethod(MethodDeleteProfile, PlayerServiceServer.DeleteProfile),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpg/player/v1alpha1/player.proto",
}

// RegisterPlayerServiceServer registers srv with s
func RegisterPlayerServiceServer(s grpc.ServiceRegistrar, srv PlayerServiceServer) {
	s.RegisterService(&PlayerServiceDesc, srv)
}

// PlayerServiceClient calls the player service by method name
type PlayerServiceClient interface {
	Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type playerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPlayerServiceClient creates a client over cc
func NewPlayerServiceClient(cc grpc.ClientConnInterface) PlayerServiceClient {
	return &playerServiceClient{cc: cc}
}

func (c *playerServiceClient) Call(
	ctx context.Context,
	method string,
	req *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
