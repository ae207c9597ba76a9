package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-player/internal/handlers/player/v1alpha1"
)

var beginActionCmd = &cobra.Command{
	Use:   "begin-action [player-id]",
	Short: "Take the player's action lock and print its token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodBeginAction, &v1alpha1.Request{PlayerID: args[0]})
	},
}

var endActionCmd = &cobra.Command{
	Use:   "end-action [player-id] [token]",
	Short: "Release the action lock held under token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodEndAction, &v1alpha1.Request{PlayerID: args[0], Token: args[1]})
	},
}

var clearLockCmd = &cobra.Command{
	Use:   "clear-lock [player-id]",
	Short: "Force-release a stuck action lock",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodClearLock, &v1alpha1.Request{PlayerID: args[0]})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [player-id]",
	Short: "Delete a player's profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodDeleteProfile, &v1alpha1.Request{
			PlayerID:    args[0],
			ActionToken: actionToken,
		})
	},
}
