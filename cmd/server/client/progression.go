package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-player/internal/handlers/player/v1alpha1"
)

var limitbreakCmd = &cobra.Command{
	Use:   "limitbreak [player-id]",
	Short: "Trade the level cap for a prestige",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodLimitbreak, &v1alpha1.Request{
			PlayerID:    args[0],
			ActionToken: actionToken,
		})
	},
}

var changePathCmd = &cobra.Command{
	Use:   "change-path [player-id] [path]",
	Short: "Pick or switch a path",
	Long: `Pick a path at level 10, or switch paths for a fee. Examples:

  change-path u1 Warrior
  change-path u1 Caster --token action_1`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodChangePath, &v1alpha1.Request{
			PlayerID:    args[0],
			Path:        args[1],
			ActionToken: actionToken,
		})
	},
}

var addClassCmd = &cobra.Command{
	Use:   "add-class [player-id] [class]",
	Short: "Equip a class in the next open slot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodAddClass, &v1alpha1.Request{
			PlayerID:    args[0],
			Class:       args[1],
			AdminTier:   adminTier,
			ActionToken: actionToken,
		})
	},
}

var changeClassCmd = &cobra.Command{
	Use:   "change-class [player-id] [class] [slot]",
	Short: "Replace the class in slot 0 or 1",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid slot %q: %w", args[2], err)
		}
		return invoke(cmd, v1alpha1.MethodChangeClass, &v1alpha1.Request{
			PlayerID:    args[0],
			Class:       args[1],
			Slot:        slot,
			AdminTier:   adminTier,
			ActionToken: actionToken,
		})
	},
}

var levelPingCmd = &cobra.Command{
	Use:   "level-ping [player-id] [on|off]",
	Short: "Toggle level-up notifications",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ping bool
		switch args[1] {
		case "on":
			ping = true
		case "off":
		default:
			return fmt.Errorf("expected on or off, got %q", args[1])
		}
		return invoke(cmd, v1alpha1.MethodSetLevelPing, &v1alpha1.Request{PlayerID: args[0], Ping: ping})
	},
}

func init() {
	for _, c := range []*cobra.Command{limitbreakCmd, changePathCmd, addClassCmd, changeClassCmd, deleteCmd} {
		c.Flags().StringVar(&actionToken, "token", "", "Action token from begin-action")
	}
	for _, c := range []*cobra.Command{addClassCmd, changeClassCmd} {
		c.Flags().StringVar(&adminTier, "admin", "none", "Admin tier: none, regular, owner or superuser")
	}
}
