// Package client provides test commands for the player gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/KirkDiggler/rpg-player/internal/errors"
	"github.com/KirkDiggler/rpg-player/internal/handlers/player/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Shared request flags
	actionToken string
	adminTier   string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the player service",
	Long:  `Client commands let you drive the player service by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Profile and rewards
	ClientCmd.AddCommand(profileCmd)
	ClientCmd.AddCommand(chatCmd)
	ClientCmd.AddCommand(dailyCmd)
	ClientCmd.AddCommand(giveRepCmd)

	// Progression choices
	ClientCmd.AddCommand(limitbreakCmd)
	ClientCmd.AddCommand(changePathCmd)
	ClientCmd.AddCommand(addClassCmd)
	ClientCmd.AddCommand(changeClassCmd)
	ClientCmd.AddCommand(levelPingCmd)

	// Action lock and administration
	ClientCmd.AddCommand(beginActionCmd)
	ClientCmd.AddCommand(endActionCmd)
	ClientCmd.AddCommand(clearLockCmd)
	ClientCmd.AddCommand(deleteCmd)
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

// createPlayerClient creates a player service client
func createPlayerClient() (v1alpha1.PlayerServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewPlayerServiceClient(conn), cleanup, nil
}

// invoke sends one request and prints the response as JSON
func invoke(cmd *cobra.Command, method string, req *v1alpha1.Request) error {
	client, cleanup, err := createPlayerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	msg, err := v1alpha1.NewRequest(req)
	if err != nil {
		return err
	}

	resp, err := client.Call(ctx, method, msg)
	if err != nil {
		err = errors.FromGRPCError(err)
		return fmt.Errorf("%s failed: %w", method, err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
