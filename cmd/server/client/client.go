// Package client provides test commands for the Pokemon API gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/pokemon-api/internal/handlers/game/v1alpha1"
)

var (
	// Connection flags
	serverAddr   string
	timeout      time.Duration
	userID       string
	connectionID string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the Pokemon API",
	Long:  `Client commands allow you to test the Pokemon API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&userID, "user", "", "caller user id")
	ClientCmd.PersistentFlags().StringVar(&connectionID, "connection", "cli", "caller connection id")

	ClientCmd.AddCommand(callCmd)
	ClientCmd.AddCommand(createGameCmd)
	ClientCmd.AddCommand(listSavesCmd)
	ClientCmd.AddCommand(startSessionCmd)
	ClientCmd.AddCommand(encounterCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// invoke calls method with req as the caller named by the flags and prints
// the response as JSON
func invoke(method string, req map[string]any) error {
	if userID == "" {
		return fmt.Errorf("--user is required")
	}

	in, err := structpb.NewStruct(req)
	if err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx,
		v1alpha1.MetadataUserID, userID,
		v1alpha1.MetadataConnectionID, connectionID)

	out := &structpb.Struct{}
	if err := conn.Invoke(ctx, "/"+v1alpha1.ServiceName+"/"+method, in, out); err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	body, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to print response: %w", err)
	}
	fmt.Println(string(body))
	return nil
}
