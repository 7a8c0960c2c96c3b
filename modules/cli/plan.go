package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"story-album-server/modules/common/config"
	"story-album-server/modules/common/logger"
	"story-album-server/modules/planner"
)

var planOpts struct {
	count   int
	trip    string
	moods   []string
	title   string
	session string
	useAI   bool
	check   bool
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print an album layout as JSON",
	Long: `Print the layout for the given images and trip.

Without --ai the deterministic template planner answers. With --ai the Gemini
planner is tried first (GEMINI_API_KEY) and the template is used when it fails.`,
	Example: `  story-album plan --count 5 --type friends --mood fun
  story-album plan --count 3 --type couple --mood romantic --mood emotional --ai --check`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := planner.GeneratePlanRequest{
			ImageCount: planOpts.count,
			Type:       planner.TripType(planOpts.trip),
			Title:      planOpts.title,
			SessionID:  planOpts.session,
		}
		for _, m := range planOpts.moods {
			req.Moods = append(req.Moods, planner.Mood(m))
		}
		if err := req.Validate(); err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		service, cleanup, err := planServiceFor(ctx, planOpts.useAI)
		if err != nil {
			return err
		}
		defer cleanup()

		result := service.ProducePlan(ctx, req.ToPlanRequest())

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		if planOpts.check {
			if err := planner.CheckPlan(result, req.ImageCount); err != nil {
				return fmt.Errorf("plan failed structural check:\n%w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "✅ plan passes structural checks")
		}
		return nil
	},
}

func init() {
	f := planCmd.Flags()
	f.IntVarP(&planOpts.count, "count", "n", 0, "number of images (1-10)")
	f.StringVarP(&planOpts.trip, "type", "t", "", "trip type: couple, friends, solo, family")
	f.StringArrayVarP(&planOpts.moods, "mood", "m", nil, "mood (repeat up to 2 times)")
	f.StringVar(&planOpts.title, "title", "", "album title (generated when empty)")
	f.StringVar(&planOpts.session, "session", "", "session id for the AI quota")
	f.BoolVar(&planOpts.useAI, "ai", false, "try the Gemini planner first")
	f.BoolVar(&planOpts.check, "check", false, "verify the structural layout rules")
	_ = planCmd.MarkFlagRequired("count")
	_ = planCmd.MarkFlagRequired("type")
}

// planServiceFor - --ai 없으면 설정 없이 템플릿 플래너
func planServiceFor(ctx context.Context, useAI bool) (*planner.Service, func(), error) {
	if !useAI {
		return planner.NewService(nil, nil, zerolog.Nop()), func() {}, nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	// 로그는 stdout의 JSON 출력과 섞이지 않도록 stderr로
	log := logger.NewWithWriter(cfg.AppEnv, os.Stderr)

	service, rdb := newPlannerService(ctx, cfg, log)
	cleanup := func() {
		if rdb != nil {
			rdb.Close()
		}
	}
	return service, cleanup, nil
}
