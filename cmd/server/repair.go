package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	"github.com/KirkDiggler/rpg-player/internal/progression"
	redisclient "github.com/KirkDiggler/rpg-player/internal/redis"
	playerrepo "github.com/KirkDiggler/rpg-player/internal/repositories/player"
)

var (
	repairRedisAddr string
	repairDelete    bool
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Scan stored players for corrupt or inconsistent records",
	Long: `Scan every player:* key in Redis. Records that do not decode are
reported as corrupt and, with --delete, removed. Records that decode but
break a progression rule are only reported.`,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().StringVar(&repairRedisAddr, "redis-addr", "localhost:6379", "Redis address")
	repairCmd.Flags().BoolVar(&repairDelete, "delete", false, "Delete corrupt records")
	rootCmd.AddCommand(repairCmd)
}

type finding struct {
	Key    string
	Reason string
}

type auditReport struct {
	Checked int
	Corrupt []string
	Invalid []finding
}

// checkRecord returns the progression rules rec breaks
func checkRecord(key string, rec *rpg.Record) []string {
	var reasons []string

	if want := strings.TrimPrefix(key, playerrepo.GetKey("")); rec.ID != want {
		reasons = append(reasons, fmt.Sprintf("id %q does not match key", rec.ID))
	}
	if rec.Level < 1 || rec.Level > progression.MaxLevel(rec.Prestige) {
		reasons = append(reasons, fmt.Sprintf("level %d outside 1..%d", rec.Level, progression.MaxLevel(rec.Prestige)))
	} else {
		low := progression.CumulativeExperience(rec.Level)
		high := low + progression.LevelThreshold(rec.Level)
		if rec.Experience < low || rec.Experience >= high {
			reasons = append(reasons, fmt.Sprintf("experience %d outside [%d, %d) for level %d",
				rec.Experience, low, high, rec.Level))
		}
	}
	if len(rec.Classes) > 2 {
		reasons = append(reasons, fmt.Sprintf("%d classes equipped", len(rec.Classes)))
	}
	if _, err := progression.Growths(rec.Path, rec.Classes); err != nil {
		reasons = append(reasons, err.Error())
	}
	return reasons
}

func auditPlayers(ctx context.Context, client redisclient.Client) (*auditReport, error) {
	report := &auditReport{}

	iter := client.Scan(ctx, 0, playerrepo.GetKey("*"), 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		report.Checked++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", key, err)
		}

		var rec rpg.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			report.Corrupt = append(report.Corrupt, key)
			continue
		}
		for _, reason := range checkRecord(key, &rec) {
			report.Invalid = append(report.Invalid, finding{Key: key, Reason: reason})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("error during scan: %w", err)
	}

	return report, nil
}

func printReport(w io.Writer, report *auditReport) {
	_, _ = fmt.Fprintf(w, "Checked %d keys, %d corrupt, %d rule violations\n",
		report.Checked, len(report.Corrupt), len(report.Invalid))
	for _, key := range report.Corrupt {
		_, _ = fmt.Fprintf(w, "  corrupt   %s\n", key)
	}
	for _, f := range report.Invalid {
		_, _ = fmt.Fprintf(w, "  invalid   %s: %s\n", f.Key, f.Reason)
	}
}

func runRepair(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	client, err := redisclient.NewClient(repairRedisAddr, nil)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", repairRedisAddr, err)
	}

	report, err := auditPlayers(ctx, client)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printReport(out, report)

	if !repairDelete || len(report.Corrupt) == 0 {
		return nil
	}

	deleted, err := client.Del(ctx, report.Corrupt...).Result()
	if err != nil {
		return fmt.Errorf("failed to delete corrupt records: %w", err)
	}
	_, _ = fmt.Fprintf(out, "Deleted %d corrupt records\n", deleted)
	return nil
}
