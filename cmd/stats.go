package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/sixteen/internal/personality"
	"github.com/abhisek/sixteen/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics from the local event log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()
		counts, err := repo.Counts(ctx)
		if err != nil {
			return fmt.Errorf("count events: %w", err)
		}
		dist, err := repo.TypeDistribution(ctx)
		if err != nil {
			return fmt.Errorf("type distribution: %w", err)
		}
		recentN, _ := cmd.Flags().GetInt("recent")
		var recent []store.QuizEvent
		if recentN > 0 {
			recent, err = repo.Recent(ctx, store.QueryOpts{Limit: recentN})
			if err != nil {
				return fmt.Errorf("recent events: %w", err)
			}
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Sessions started:   %d\n", counts.Starts)
		fmt.Fprintf(w, "Sessions completed: %d (%.0f%%)\n", counts.Completions, counts.CompletionRate()*100)
		fmt.Fprintf(w, "Link clicks:        %d (%.0f%%)\n", counts.CTAClicks, counts.ClickThroughRate()*100)

		if len(dist) > 0 {
			fmt.Fprintln(w)
			writeDistribution(w, dist, counts.Completions)
		}

		if len(recent) > 0 {
			fmt.Fprintln(w)
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SEQ\tTIME\tEVENT\tTYPE\tSESSION")
			for _, e := range recent {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
					e.Sequence, e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					e.Name, dash(e.ResultType), shortID(e.SessionID))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("recent", 0, "Also list the N most recent events")
}

// writeDistribution prints one bar per type, most common first.
func writeDistribution(w io.Writer, dist map[string]int, total int) {
	types := make([]string, 0, len(dist))
	for t := range dist {
		types = append(types, t)
	}
	order := make(map[string]int, 16)
	for i, t := range personality.AllTypes() {
		order[string(t)] = i
	}
	sort.Slice(types, func(i, j int) bool {
		if dist[types[i]] != dist[types[j]] {
			return dist[types[i]] > dist[types[j]]
		}
		return order[types[i]] < order[types[j]]
	})

	const barWidth = 30
	maxN := dist[types[0]]
	for _, t := range types {
		n := dist[t]
		bar := strings.Repeat("█", max(1, n*barWidth/maxN))
		pct := 0.0
		if total > 0 {
			pct = float64(n) / float64(total) * 100
		}
		fmt.Fprintf(w, "  %s %-*s %3d  %4.1f%%\n", t, barWidth, bar, n, pct)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
