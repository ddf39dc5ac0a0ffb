// Package v1alpha1 handles the pokemon game grpc service. Messages are
// google.protobuf.Struct values carrying the JSON shapes in dto.go.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified grpc service name
const ServiceName = "pokemon.game.v1alpha1.GameService"

// GameServiceServer is the server API for the game service
type GameServiceServer interface {
	CreateNewGame(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListGameSaves(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	StartGameSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	EndGameSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetGameSaveData(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	SaveGameData(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetOwnedPokemonInDeck(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetOwnedPokemonByID(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	RefillDeckHp(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	AddExperience(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	InGrassRandomPokemonEncounter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(srv GameServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(name string, method unaryMethod) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(
			srv any,
			ctx context.Context,
			dec func(any) error,
			interceptor grpc.UnaryServerInterceptor,
		) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return method(srv.(GameServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return method(srv.(GameServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// GameServiceDesc describes the game service for grpc registration
var GameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("CreateNewGame", GameServiceServer.CreateNewGame),
		unaryHandler("ListGameSaves", GameServiceServer.ListGameSaves),
		unaryHandler("StartGameSession", GameServiceServer.StartGameSession),
		unaryHandler("EndGameSession", GameServiceServer.EndGameSession),
		unaryHandler("GetGameSaveData", GameServiceServer.GetGameSaveData),
		unaryHandler("SaveGameData", GameServiceServer.SaveGameData),
		unaryHandler("GetOwnedPokemonInDeck", GameServiceServer.GetOwnedPokemonInDeck),
		unaryHandler("GetOwnedPokemonByID", GameServiceServer.GetOwnedPokemonByID),
		unaryHandler("RefillDeckHp", GameServiceServer.RefillDeckHp),
		unaryHandler("AddExperience", GameServiceServer.AddExperience),
		unaryHandler("InGrassRandomPokemonEncounter", GameServiceServer.InGrassRandomPokemonEncounter),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pokemon/game/v1alpha1/game.proto",
}

// RegisterGameServiceServer registers the handler on a grpc server
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameServiceDesc, srv)
}
