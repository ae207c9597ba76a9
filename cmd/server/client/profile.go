package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-player/internal/handlers/player/v1alpha1"
)

var profileCmd = &cobra.Command{
	Use:   "profile [player-id]",
	Short: "Show a player's profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodGetProfile, &v1alpha1.Request{PlayerID: args[0]})
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat [player-id]",
	Short: "Grant chat experience",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodChat, &v1alpha1.Request{PlayerID: args[0]})
	},
}

var dailyCmd = &cobra.Command{
	Use:   "daily [player-id]",
	Short: "Claim the daily reward",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodDaily, &v1alpha1.Request{PlayerID: args[0]})
	},
}

var giveRepCmd = &cobra.Command{
	Use:   "give-rep [player-id] [target-id]",
	Short: "Give another player one reputation point",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodGiveReputation, &v1alpha1.Request{
			PlayerID: args[0],
			TargetID: args[1],
		})
	},
}
